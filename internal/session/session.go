// Package session manages server-side login sessions.
//
// Session state lives in files under a configured directory; the browser
// only ever holds an opaque, authenticated session ID cookie. Besides the
// logged-in user ID a session carries one-shot flash messages that survive
// exactly one redirect.
package session

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gorilla/sessions"

	"github.com/rkhalikov/go-task-keeper/internal/config"
	"github.com/rkhalikov/go-task-keeper/internal/logger"
)

const (
	// sessionName is the name of the session ID cookie.
	sessionName = "task_keeper_session"

	// userIDKey is the session value under which the logged-in user's ID
	// is stored.
	userIDKey = "user_id"
)

// Manager wraps a [sessions.FilesystemStore] with the small surface the
// handlers need: bind a user, read the current user, clear, and flash
// messages.
type Manager struct {
	store    *sessions.FilesystemStore
	lifetime int // seconds
	logger   *logger.Logger
}

// NewManager constructs a session [Manager] storing session files under
// cfg.SessionsDir. The directory is created if absent.
func NewManager(cfg config.App, logger *logger.Logger) (*Manager, error) {
	logger.Debug().Str("dir", cfg.SessionsDir).Msg("creating session manager")

	if err := os.MkdirAll(cfg.SessionsDir, 0o700); err != nil {
		return nil, fmt.Errorf("error creating sessions directory: %w", err)
	}

	lifetime := int(cfg.SessionLifetime.Seconds())

	store := sessions.NewFilesystemStore(cfg.SessionsDir, []byte(cfg.SessionSecret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   lifetime,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}

	return &Manager{
		store:    store,
		lifetime: lifetime,
		logger:   logger,
	}, nil
}

// Bind starts a login session for userID and writes the session cookie.
// Any previous session state in the same cookie is replaced.
func (m *Manager) Bind(w http.ResponseWriter, r *http.Request, userID int64) error {
	s, _ := m.store.Get(r, sessionName)

	s.Values[userIDKey] = userID

	if err := s.Save(r, w); err != nil {
		return fmt.Errorf("error saving session: %w", err)
	}

	return nil
}

// CurrentUserID returns the logged-in user's ID, or false when the request
// carries no valid session. A cookie that fails authentication is treated
// the same as no cookie at all.
func (m *Manager) CurrentUserID(r *http.Request) (int64, bool) {
	s, err := m.store.Get(r, sessionName)
	if err != nil || s.IsNew {
		return 0, false
	}

	userID, ok := s.Values[userIDKey].(int64)
	if !ok {
		return 0, false
	}

	return userID, true
}

// Touch re-saves the current session, extending its expiry by the full
// lifetime. Sessions therefore expire after inactivity, not after a fixed
// window from login.
func (m *Manager) Touch(w http.ResponseWriter, r *http.Request) error {
	s, err := m.store.Get(r, sessionName)
	if err != nil || s.IsNew {
		return nil
	}

	if err := s.Save(r, w); err != nil {
		return fmt.Errorf("error refreshing session: %w", err)
	}

	return nil
}

// Clear ends the session, if any. Clearing an absent or already-cleared
// session is a no-op, so logout is always safe to call.
func (m *Manager) Clear(w http.ResponseWriter, r *http.Request) error {
	s, err := m.store.Get(r, sessionName)
	if err != nil {
		// An undecodable cookie still gets expired client-side.
		s, _ = m.store.New(r, sessionName)
	}

	s.Options.MaxAge = -1
	s.Values = make(map[any]any)

	if err := s.Save(r, w); err != nil {
		return fmt.Errorf("error clearing session: %w", err)
	}

	return nil
}

// Flash queues a one-shot message to be shown after the next redirect.
func (m *Manager) Flash(w http.ResponseWriter, r *http.Request, message string) error {
	s, _ := m.store.Get(r, sessionName)

	s.AddFlash(message)

	if err := s.Save(r, w); err != nil {
		return fmt.Errorf("error saving flash message: %w", err)
	}

	return nil
}

// Flashes returns and consumes all queued flash messages. Reading flashes
// saves the session so each message is delivered at most once.
func (m *Manager) Flashes(w http.ResponseWriter, r *http.Request) []string {
	s, err := m.store.Get(r, sessionName)
	if err != nil {
		return nil
	}

	raw := s.Flashes()
	if len(raw) == 0 {
		return nil
	}

	if err := s.Save(r, w); err != nil {
		m.logger.Err(err).Str("func", "*Manager.Flashes").Msg("error consuming flash messages")
		return nil
	}

	messages := make([]string, 0, len(raw))
	for _, f := range raw {
		if msg, ok := f.(string); ok {
			messages = append(messages, msg)
		}
	}

	return messages
}
