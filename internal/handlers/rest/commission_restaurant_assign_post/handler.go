package commission_restaurant_assign_post

import (
	"net/http"

	"khaogully-admin/internal/handlers/rest/httpio"
	"khaogully-admin/pkg/logger"
)

type request struct {
	CommissionRateID int64 `json:"commission_rate_id"`
}

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "commission_restaurant_assign_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	restaurantID, err := httpio.PathID(r, "id")
	if err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	var req request
	if err := httpio.Decode(r, &req); err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	res, err := h.service.AssignRate(r.Context(), restaurantID, req.CommissionRateID)
	if err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, res)
}
