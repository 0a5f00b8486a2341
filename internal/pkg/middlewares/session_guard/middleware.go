package session_guard

import (
	"net/http"
)

type Session interface {
	IsAuthenticated() bool
}

const unauthenticatedBody = `{"detail":"not authenticated: log in first"}`

// Middleware закрывает страницы консоли до входа администратора.
// Без сессии страницы не смонтированы и их представления пусты.
func Middleware(session Session) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !session.IsAuthenticated() {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(unauthenticatedBody))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
