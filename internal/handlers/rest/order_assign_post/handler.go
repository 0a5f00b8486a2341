package order_assign_post

import (
	"net/http"

	"github.com/shopspring/decimal"

	"khaogully-admin/internal/handlers/rest/httpio"
	"khaogully-admin/internal/service/orders"
	"khaogully-admin/pkg/logger"
)

// request driver_earnings по умолчанию 50.
type request struct {
	DriverID       int64            `json:"driver_id"`
	DriverEarnings *decimal.Decimal `json:"driver_earnings"`
}

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "order_assign_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	orderID, err := httpio.PathID(r, "id")
	if err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	var req request
	if err := httpio.Decode(r, &req); err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	form := orders.DefaultAssignmentForm()
	form.OrderID = orderID
	form.DriverID = req.DriverID
	if req.DriverEarnings != nil {
		form.DriverEarnings = *req.DriverEarnings
	}

	next, err := h.service.Assign(r.Context(), form)
	if err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, next)
}
