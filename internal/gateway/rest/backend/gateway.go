package backend

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"khaogully-admin/internal/gateway/rest/transport"
)

// Gateway клиент REST API платформы под токеном администратора.
type Gateway struct {
	transport doer
}

func New(transport doer) *Gateway {
	return &Gateway{transport: transport}
}

func (g *Gateway) get(ctx context.Context, route, path string, query url.Values, out any) error {
	return g.call(ctx, http.MethodGet, route, path, query, nil, out)
}

func (g *Gateway) call(ctx context.Context, method, route, path string, query url.Values, body, out any) error {
	err := g.transport.Do(ctx, transport.Request{
		Method: method,
		Route:  route,
		Path:   path,
		Query:  query,
		Body:   body,
	}, out)
	if err != nil {
		return fmt.Errorf("gateway backend, %s %s: %w", method, route, err)
	}
	return nil
}

func id(v int64) string {
	return strconv.FormatInt(v, 10)
}

// optional добавляет параметр, только если значение не пустое.
func optional(q url.Values, key, value string) url.Values {
	if value == "" {
		return q
	}
	if q == nil {
		q = url.Values{}
	}
	q.Set(key, value)
	return q
}
