package http

import (
	"net/http"

	"github.com/rkhalikov/go-task-keeper/internal/logger"
	"github.com/rkhalikov/go-task-keeper/internal/utils"
	"github.com/rkhalikov/go-task-keeper/models"
)

// authForm answers the data needed to render the registration and login
// pages: the pending flash messages, consumed on read.
func (h *Handler) authForm(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.AuthFormResponse{
		Flashes: h.sessions.Flashes(w, r),
	}, http.StatusOK)
}

// register creates a new account from the submitted form and redirects to
// the login page. Expected failures (taken username, empty fields) redirect
// back to the registration page with a flash message.
func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		http.Error(w, "invalid form was passed", http.StatusBadRequest)
		return
	}

	creds := models.Credentials{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	registered, err := h.services.AuthService.Register(ctx, creds)
	if err != nil {
		h.failRequest(w, r, err, "/register")
		return
	}

	log.Debug().Int64("user_id", registered.UserID).Msg("user registered")

	h.redirectWithFlash(w, r, "/login", "Registration successful, please log in")
}

// login verifies the submitted credentials, binds a server-side session and
// redirects to the task listing.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		log.Err(err).Msg("invalid form was passed")
		http.Error(w, "invalid form was passed", http.StatusBadRequest)
		return
	}

	creds := models.Credentials{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	user, err := h.services.AuthService.Login(ctx, creds)
	if err != nil {
		h.failRequest(w, r, err, "/login")
		return
	}

	if err := h.sessions.Bind(w, r, user.UserID); err != nil {
		log.Err(err).Msg("error binding session")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	log.Debug().Int64("user_id", user.UserID).Msg("user logged in")

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// logout ends the session, if any, and redirects to the login page.
// Logging out while not logged in is a harmless no-op.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := h.sessions.Clear(w, r); err != nil {
		log.Err(err).Msg("error clearing session")
	}

	http.Redirect(w, r, "/login", http.StatusSeeOther)
}
