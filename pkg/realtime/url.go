package realtime

import (
	"fmt"
	"net/url"
)

const adminPath = "/api/v1/ws/admin"

// URLBuilder строит адрес подключения для текущего токена.
type URLBuilder func(token string) (string, error)

// BuildAdminURL адрес админского канала. Для origin на localhost
// подставляется devHost, потому что dev-сервер backend живёт на другом порту.
func BuildAdminURL(origin, devHost, token string) (string, error) {
	u, err := url.Parse(origin)
	if err != nil {
		return "", fmt.Errorf("parse origin %q: %w", origin, err)
	}
	if u.Host == "" {
		return "", fmt.Errorf("origin %q has no host", origin)
	}

	scheme := "ws"
	if u.Scheme == "https" {
		scheme = "wss"
	}

	host := u.Host
	if u.Hostname() == "localhost" && devHost != "" {
		host = devHost
	}

	out := url.URL{
		Scheme:   scheme,
		Host:     host,
		Path:     adminPath,
		RawQuery: url.Values{"token": {token}}.Encode(),
	}
	return out.String(), nil
}

func AdminURL(origin, devHost string) URLBuilder {
	return func(token string) (string, error) {
		return BuildAdminURL(origin, devHost, token)
	}
}

// RedactToken маскирует токен в адресе для логов.
func RedactToken(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	q := u.Query()
	if q.Has("token") {
		q.Set("token", "redacted")
		u.RawQuery = q.Encode()
	}
	return u.String()
}
