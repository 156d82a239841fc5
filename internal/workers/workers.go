package workers

import (
	"github.com/rkhalikov/go-task-keeper/internal/config"
	"github.com/rkhalikov/go-task-keeper/internal/logger"
)

type Workers struct {
	workers []Worker
}

// NewWorkers assembles every background worker of the application.
func NewWorkers(cfg *config.StructuredConfig, logger *logger.Logger) *Workers {
	return &Workers{
		workers: []Worker{
			NewSessionSweeper(cfg.App, cfg.Workers.SessionSweepSchedule, logger),
		},
	}
}

func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
