package driver_status_patch

import (
	"net/http"

	"khaogully-admin/internal/entities"
	"khaogully-admin/internal/handlers/rest/httpio"
	"khaogully-admin/pkg/logger"
)

type request struct {
	Status entities.DriverStatus `json:"status" validate:"required"`
}

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "driver_status_patch")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	driverID, err := httpio.PathID(r, "id")
	if err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	var req request
	if err := httpio.Decode(r, &req); err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	if err := h.service.UpdateStatus(r.Context(), driverID, req.Status); err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
