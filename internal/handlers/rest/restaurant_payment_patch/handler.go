package restaurant_payment_patch

import (
	"fmt"
	"net/http"

	"khaogully-admin/internal/apperr"
	"khaogully-admin/internal/entities"
	"khaogully-admin/internal/handlers/rest/httpio"
	"khaogully-admin/pkg/logger"
)

// request контакты и реквизиты обновляются независимо.
type request struct {
	entities.BankDetails
	Phone *string `json:"phone"`
	Email *string `json:"email"`
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "restaurant_payment_patch")),
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

	contact := req.Phone != nil || req.Email != nil
	bank := req.BankDetails != (entities.BankDetails{})
	if !contact && !bank {
		httpio.WriteError(w, h.log, fmt.Errorf("%w: nothing to update", apperr.Invalid))
		return
	}

	if contact {
		if err := h.service.UpdateContact(r.Context(), restaurantID, deref(req.Phone), deref(req.Email)); err != nil {
			httpio.WriteError(w, h.log, err)
			return
		}
	}
	if bank {
		if err := h.service.UpdateBankDetails(r.Context(), restaurantID, req.BankDetails); err != nil {
			httpio.WriteError(w, h.log, err)
			return
		}
	}

	w.WriteHeader(http.StatusNoContent)
}
