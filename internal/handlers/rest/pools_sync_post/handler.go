package pools_sync_post

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
		log:     log.With(logger.NewField("handler", "pools_sync_post")),
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	// пустое тело: fetch_latest=true, force_resync=false
	var req *entities.PoolSyncRequest
	body := &entities.PoolSyncRequest{}
	ok, err := httpio.DecodeOptional(r, body)
	if err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}
	if ok {
		req = body
	}

	res, err := h.service.Sync(r.Context(), req)
	if err != nil {
		httpio.WriteError(w, h.log, err)
		return
	}

	httpio.WriteJSON(w, h.log, http.StatusOK, res)
}
