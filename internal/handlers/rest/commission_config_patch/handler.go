package commission_config_patch

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
		log:     log.With(logger.NewField("handler", "commission_config_patch")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var req entities.PlatformConfigUpdate
	if err := httpio.Decode(r, &req); err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	cfg, err := h.service.UpdatePlatformConfig(r.Context(), req)
	if err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, cfg)
}
