package earnings_selection_post

import (
	"fmt"
	"net/http"

	"khaogully-admin/internal/apperr"
	"khaogully-admin/internal/handlers/rest/httpio"
	"khaogully-admin/pkg/logger"
)

const (
	actionToggle            = "toggle"
	actionSelectAllEligible = "select_all_eligible"
	actionClear             = "clear"
)

type request struct {
	Action   string `json:"action" validate:"required,oneof=toggle select_all_eligible clear"`
	DriverID int64  `json:"driver_id"`
}

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "earnings_selection_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req request
	if err := httpio.Decode(r, &req); err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	switch req.Action {
	case actionToggle:
		if req.DriverID <= 0 {
			httpio.WriteError(w, h.log, fmt.Errorf("%w: driver_id is required for toggle", apperr.Invalid))
			return
		}
		if _, err := h.service.ToggleDriver(req.DriverID); err != nil {
			httpio.WriteError(w, h.log, err)
			return
		}
	case actionSelectAllEligible:
		h.service.SelectAllEligible()
	case actionClear:
		h.service.ClearSelection()
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, h.service.View())
}
