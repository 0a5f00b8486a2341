package livemap_get

import (
	"net/http"

	"khaogully-admin/internal/entities"
	"khaogully-admin/internal/handlers/rest/httpio"
	"khaogully-admin/pkg/logger"
)

type response struct {
	Drivers []entities.DriverLocation `json:"drivers"`
	Count   int                       `json:"count"`
}

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "livemap_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	drivers := h.service.Snapshot()
	httpio.WriteJSON(w, h.log, http.StatusOK, response{
		Drivers: drivers,
		Count:   len(drivers),
	})
}
