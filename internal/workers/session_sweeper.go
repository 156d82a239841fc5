package workers

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/rkhalikov/go-task-keeper/internal/config"
	"github.com/rkhalikov/go-task-keeper/internal/logger"
)

// sessionFilePrefix is the filename prefix the session store uses for its
// files. Anything else in the directory is left alone.
const sessionFilePrefix = "session_"

// sessionSweeper periodically removes expired session files from the
// sessions directory. The session store expires cookies client-side but
// never deletes its own files, so without the sweeper the directory grows
// unboundedly.
type sessionSweeper struct {
	dir      string
	lifetime time.Duration
	schedule string

	cron   *cron.Cron
	logger *logger.Logger
}

// NewSessionSweeper constructs a [Worker] that sweeps cfg.SessionsDir on the
// given cron schedule, removing session files untouched for longer than the
// session lifetime.
func NewSessionSweeper(cfg config.App, schedule string, logger *logger.Logger) Worker {
	return &sessionSweeper{
		dir:      cfg.SessionsDir,
		lifetime: cfg.SessionLifetime,
		schedule: schedule,
		cron:     cron.New(),
		logger:   logger,
	}
}

// Run schedules the periodic sweep and returns; the cron scheduler works in
// its own goroutine.
func (s *sessionSweeper) Run() {
	if _, err := s.cron.AddFunc(s.schedule, s.sweep); err != nil {
		s.logger.Err(err).Str("schedule", s.schedule).Msg("error scheduling session sweeper")
		return
	}

	s.logger.Info().
		Str("schedule", s.schedule).
		Str("dir", s.dir).
		Msg("session sweeper scheduled")

	s.cron.Start()
}

// sweep removes every session file whose last modification is older than
// the session lifetime. The modification time is refreshed on every session
// save, so an actively used session is never swept.
func (s *sessionSweeper) sweep() {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.logger.Err(err).Str("dir", s.dir).Msg("error reading sessions directory")
		return
	}

	deadline := time.Now().Add(-s.lifetime)
	removed := 0

	for _, entry := range entries {
		if entry.IsDir() || !strings.HasPrefix(entry.Name(), sessionFilePrefix) {
			continue
		}

		info, err := entry.Info()
		if err != nil {
			continue
		}
		if info.ModTime().After(deadline) {
			continue
		}

		if err := os.Remove(filepath.Join(s.dir, entry.Name())); err != nil {
			s.logger.Err(err).Str("file", entry.Name()).Msg("error removing expired session file")
			continue
		}

		removed++
	}

	if removed > 0 {
		s.logger.Debug().Int("removed", removed).Msg("expired session files swept")
	}
}
