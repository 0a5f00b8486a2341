package pool_drivers_get

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
		log:     log.With(logger.NewField("handler", "pool_drivers_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	available, err := httpio.BoolQuery(r, "available", true)
	if err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	if available {
		res, err := h.service.AvailableDrivers(r.Context())
		if err != nil {
			httpio.WriteError(w, h.log, err)
			return
		}
		httpio.WriteJSON(w, h.log, http.StatusOK, res)
		return
	}

	res, err := h.service.ApprovedDrivers(r.Context())
	if err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}
	httpio.WriteJSON(w, h.log, http.StatusOK, res)
}
