package commission_history_get

import (
	"net/http"

	"khaogully-admin/internal/handlers/rest/httpio"
	"khaogully-admin/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "commission_history_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := httpio.PathID(r, "id")
	if err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	history, err := h.service.History(r.Context(), restaurantID)
	if err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, history)
}
