package healthcheck_head

import (
	"net/http"
	"sync/atomic"
)

const sessionHeader = "X-Console-Session"

// Handler HEAD-проба готовности. Во время остановки отвечает 503, чтобы
// балансировщик снял консоль до закрытия соединений. Состояние сессии
// уходит в заголовке: без входа консоль жива, но страницы не обновляются.
type Handler struct {
	isShuttingDown *atomic.Bool
	session        Session
}

// New session может быть nil, тогда заголовок не ставится.
func New(isShuttingDown *atomic.Bool, session Session) *Handler {
	return &Handler{
		isShuttingDown: isShuttingDown,
		session:        session,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, _ *http.Request) {
	if h.session != nil {
		state := "anonymous"
		if h.session.IsAuthenticated() {
			state = "authenticated"
		}
		w.Header().Set(sessionHeader, state)
	}

	if h.isShuttingDown.Load() {
		w.WriteHeader(http.StatusServiceUnavailable)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
