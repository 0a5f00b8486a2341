package commission_rate_delete

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
		log:     log.With(logger.NewField("handler", "commission_rate_delete")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	rateID, err := httpio.PathID(r, "id")
	if err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	if err := h.service.DeleteRate(r.Context(), rateID); err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
