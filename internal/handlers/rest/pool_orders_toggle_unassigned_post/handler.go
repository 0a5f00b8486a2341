package pool_orders_toggle_unassigned_post

import (
	"net/http"

	"khaogully-admin/internal/handlers/rest/httpio"
	"khaogully-admin/internal/service/pools"
	"khaogully-admin/pkg/logger"
)

type response struct {
	AllSelected bool           `json:"all_selected"`
	Selection   pools.Selected `json:"selection"`
}

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "pool_orders_toggle_unassigned_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	poolID, err := httpio.PathID(r, "id")
	if err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	selected, err := h.service.ToggleUnassigned(poolID)
	if err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, response{
		AllSelected: selected,
		Selection:   h.service.Selected(),
	})
}
