package transport

import (
	"context"
	"net/http"
)

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// TokenSource отдаёт текущий bearer-токен; пустая строка - запрос без авторизации.
type TokenSource interface {
	Token() string
}

type retryExecutor interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
