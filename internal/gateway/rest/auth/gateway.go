package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"khaogully-admin/internal/entities"
	"khaogully-admin/internal/gateway/rest/transport"
)

var ErrEmptyToken = errors.New("login response has no access token")

// Gateway вызывает эндпоинты аутентификации без bearer-токена.
type Gateway struct {
	transport doer
}

func New(transport doer) *Gateway {
	return &Gateway{transport: transport}
}

func (g *Gateway) AdminLogin(ctx context.Context, email, password string) (*entities.AuthResult, error) {
	var resp entities.AuthResult
	err := g.transport.Do(ctx, transport.Request{
		Method: http.MethodPost,
		Route:  "/auth/admin/login",
		Path:   "/auth/admin/login",
		Body:   entities.LoginRequest{Email: email, Password: password},
	}, &resp)
	if err != nil {
		return nil, fmt.Errorf("gateway auth, admin login: %w", err)
	}
	if resp.AccessToken == "" {
		return nil, ErrEmptyToken
	}
	return &resp, nil
}
