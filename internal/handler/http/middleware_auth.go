package http

import (
	"context"
	"net/http"

	"github.com/rkhalikov/go-task-keeper/internal/logger"
	"github.com/rkhalikov/go-task-keeper/internal/utils"
)

// requireAuth is an HTTP middleware that enforces session-based
// authentication.
//
// It resolves the session cookie via the session manager and, on success,
// stores the logged-in user's ID in the request context under
// [utils.UserIDCtxKey] before delegating to the next handler. The session's
// expiry is extended on every authenticated request, so sessions time out
// after inactivity rather than a fixed window from login.
//
// Requests without a valid session are redirected to the login page with a
// flash message instead of receiving a bare 401: the web surface is meant
// to be driven by a browser.
func (h *Handler) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		userID, ok := h.sessions.CurrentUserID(r)
		if !ok {
			log.Debug().Str("uri", r.RequestURI).Msg("unauthenticated request, redirecting to login")

			if err := h.sessions.Flash(w, r, "Please log in to continue"); err != nil {
				log.Err(err).Msg("error flashing login prompt")
			}

			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}

		if err := h.sessions.Touch(w, r); err != nil {
			log.Err(err).Msg("error refreshing session expiry")
		}

		ctx := context.WithValue(r.Context(), utils.UserIDCtxKey, userID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
