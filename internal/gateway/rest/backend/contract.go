//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=backend_test
package backend

import (
	"context"

	"khaogully-admin/internal/gateway/rest/transport"
)

type doer interface {
	Do(ctx context.Context, req transport.Request, out any) error
}
