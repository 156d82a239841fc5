package http

import (
	"net/http"

	"github.com/rkhalikov/go-task-keeper/internal/logger"
)

// redirectWithFlash queues message and answers 303 See Other to target.
// A failed flash save is logged but never blocks the redirect.
func (h *Handler) redirectWithFlash(w http.ResponseWriter, r *http.Request, target, message string) {
	if err := h.sessions.Flash(w, r, message); err != nil {
		logger.FromRequest(r).Err(err).Msg("error saving flash message")
	}

	http.Redirect(w, r, target, http.StatusSeeOther)
}

// failRequest finishes a request that ended in err. Expected errors become
// a flash message and a redirect to fallback; anything else is an opaque
// 500.
func (h *Handler) failRequest(w http.ResponseWriter, r *http.Request, err error, fallback string) {
	log := logger.FromRequest(r)

	if message, ok := flashFromError(err); ok {
		log.Debug().Err(err).Msg("request rejected")
		h.redirectWithFlash(w, r, fallback, message)
		return
	}

	log.Err(err).Msg("unexpected error handling request")
	http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
}
