package workers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rkhalikov/go-task-keeper/internal/config"
	"github.com/rkhalikov/go-task-keeper/internal/logger"
)

func TestNewWorkers(t *testing.T) {
	// The config is passed around as a pointer, same as main receives it
	// from config.GetStructuredConfig.
	cfg := &config.StructuredConfig{
		App: config.App{
			SessionsDir:     t.TempDir(),
			SessionLifetime: 30 * time.Minute,
		},
		Workers: config.Workers{
			SessionSweepSchedule: "@every 10m",
		},
	}

	w := NewWorkers(cfg, logger.Nop())

	assert.Len(t, w.workers, 1)
}
