package earnings_driver_get

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
		log:     log.With(logger.NewField("handler", "earnings_driver_get")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	driverID, err := httpio.PathID(r, "id")
	if err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}
	showPaid, err := httpio.BoolQuery(r, "show_paid", false)
	if err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}
	rng, err := httpio.DateRange(r)
	if err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	detail, err := h.service.Detail(r.Context(), driverID, showPaid, rng)
	if err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, detail)
}
