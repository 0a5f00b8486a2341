package orders_get

import (
	"net/http"
	"strings"

	"khaogully-admin/internal/entities"
	"khaogully-admin/internal/handlers/rest/httpio"
	"khaogully-admin/internal/service/orders"
	"khaogully-admin/pkg/logger"
)

type response struct {
	orders.View
	AssignableDrivers []entities.Driver `json:"assignable_drivers"`
}

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "orders_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if q := r.URL.Query(); q.Has("status") {
		status := entities.OrderStatus(strings.ToUpper(q.Get("status")))
		if err := h.service.SetStatusFilter(r.Context(), status); err != nil {
			httpio.WriteError(w, h.log, err)
			return
		}
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, response{
		View:              h.service.View(),
		AssignableDrivers: h.service.AssignableDrivers(),
	})
}
