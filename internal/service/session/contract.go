//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=session_test
package session

import (
	"context"

	"khaogully-admin/internal/entities"
)

type Authenticator interface {
	AdminLogin(ctx context.Context, email, password string) (*entities.AuthResult, error)
}

// TokenStore хранит один сырой bearer-токен между перезапусками.
type TokenStore interface {
	Load(ctx context.Context) (string, error)
	Save(ctx context.Context, token string) error
	Clear(ctx context.Context) error
}
