package driver_bank_patch

import (
	"net/http"

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
		log:     log.With(logger.NewField("handler", "driver_bank_patch")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	driverID, err := httpio.PathID(r, "id")
	if err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	var bank entities.BankDetails
	if err := httpio.Decode(r, &bank); err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	driver, err := h.service.UpdateBankDetails(r.Context(), driverID, bank)
	if err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, driver)
}
