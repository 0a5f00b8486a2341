package commission_rate_toggle_post

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
		log:     log.With(logger.NewField("handler", "commission_rate_toggle_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rateID, err := httpio.PathID(r, "id")
	if err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	rate, err := h.service.ToggleActive(r.Context(), rateID)
	if err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, rate)
}
