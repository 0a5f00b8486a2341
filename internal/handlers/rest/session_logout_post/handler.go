package session_logout_post

import (
	"net/http"

	"khaogully-admin/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "session_logout_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if err := h.service.Logout(r.Context()); err != nil {
		// сессия в памяти уже сброшена, не удалось только очистить хранилище
		h.log.Warn("logout", logger.NewField("error", err))
	}
	w.WriteHeader(http.StatusNoContent)
}
