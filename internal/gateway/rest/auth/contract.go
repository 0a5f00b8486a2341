//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_test
package auth

import (
	"context"

	"khaogully-admin/internal/gateway/rest/transport"
)

type doer interface {
	Do(ctx context.Context, req transport.Request, out any) error
}
