package status_get

import (
	"net/http"

	"khaogully-admin/internal/handlers/rest/httpio"
	"khaogully-admin/internal/pages"
	"khaogully-admin/internal/service/session"
	"khaogully-admin/pkg/logger"
)

type response struct {
	Session session.State      `json:"session"`
	Pages   []pages.PageStatus `json:"pages"`
}

type Handler struct {
	log     handlerLogger
	session Session
	pages   Pages
}

func New(log handlerLogger, session Session, pages Pages) *Handler {
	return &Handler{
		log:     log.With(logger.NewField("handler", "status_get")),
		session: session,
		pages:   pages,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	httpio.WriteJSON(w, h.log, http.StatusOK, response{
		Session: h.session.State(),
		Pages:   h.pages.Status(),
	})
}
