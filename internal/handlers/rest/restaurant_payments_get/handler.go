package restaurant_payments_get

import (
	"net/http"
	"strings"

	"khaogully-admin/internal/entities"
	"khaogully-admin/internal/handlers/rest/httpio"
	"khaogully-admin/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "restaurant_payments_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if q := r.URL.Query(); q.Has("status") {
		status := entities.RestaurantEarningStatus(strings.ToLower(q.Get("status")))
		if err := h.service.SetStatusFilter(r.Context(), status); err != nil {
			httpio.WriteError(w, h.log, err)
			return
		}
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, h.service.View())
}
