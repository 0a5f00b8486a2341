package restaurant_payments_payout_post

import (
	"errors"
	"net/http"

	"khaogully-admin/internal/entities"
	"khaogully-admin/internal/handlers/rest/httpio"
	"khaogully-admin/internal/service/restaurantpayments"
	"khaogully-admin/pkg/logger"
)

type issuesResponse struct {
	Detail string                           `json:"detail"`
	Result *entities.RestaurantPayoutResult `json:"result"`
}

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "restaurant_payments_payout_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var form entities.PayoutForm
	if err := httpio.Decode(r, &form); err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	res, err := h.service.ProcessPayout(r.Context(), form)

	var issues *restaurantpayments.PayoutIssuesError
	switch {
	case errors.As(err, &issues):
		// часть выплат прошла: оператору нужен и текст, и список неудачных
		httpio.WriteJSON(w, h.log, http.StatusConflict, issuesResponse{
			Detail: issues.Error(),
			Result: issues.Result,
		})
		return
	case err != nil:
		httpio.WriteError(w, h.log, err)
		return
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, res)
}
