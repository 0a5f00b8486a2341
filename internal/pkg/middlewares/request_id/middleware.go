package request_id

import (
	"net/http"

	"github.com/google/uuid"

	"khaogully-admin/internal/gateway/rest/transport"
)

const Header = "X-Request-ID"

// Middleware принимает X-Request-ID клиента или выдаёт новый и передаёт его
// дальше в запросы к backend.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(Header)
		if _, err := uuid.Parse(id); err != nil {
			id = uuid.NewString()
		}
		w.Header().Set(Header, id)

		next.ServeHTTP(w, r.WithContext(transport.WithRequestID(r.Context(), id)))
	})
}
