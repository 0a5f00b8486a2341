//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=pages_test
package pages

import (
	"context"

	"khaogully-admin/pkg/realtime"
)

// Channel realtime-канал страницы. После Close канал не переиспользуется,
// поэтому страница получает новый экземпляр на каждое монтирование.
type Channel interface {
	Name() string
	State() realtime.State
	Start(ctx context.Context) error
	Close() error
}
