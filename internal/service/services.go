package service

import (
	"github.com/rkhalikov/go-task-keeper/internal/classifier"
	"github.com/rkhalikov/go-task-keeper/internal/logger"
	"github.com/rkhalikov/go-task-keeper/internal/store"
	"github.com/rkhalikov/go-task-keeper/internal/validators"
)

type Services struct {
	AuthService AuthService
	TaskService TaskService
}

// NewServices wires the business-logic layer. clf may be nil when no
// classification endpoint is configured; the task service then assigns the
// sentinel category instead of calling out.
func NewServices(storages *store.Storages, clf classifier.Classifier, logger *logger.Logger) *Services {
	validator := validators.NewTaskValidator()

	return &Services{
		AuthService: NewAuthService(storages.UserRepository, validator, logger),
		TaskService: NewTaskService(storages.TaskRepository, clf, validator, logger),
	}
}
