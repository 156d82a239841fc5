// Package service implements the application's business logic on top of the
// persistence and classification layers. Handlers talk to services only;
// services own validation, ownership checks and the category inference
// policy.
package service

import (
	"context"

	"github.com/rkhalikov/go-task-keeper/models"
)

// AuthService handles user account registration and credential verification.
// Session lifecycle is the transport layer's concern.
type AuthService interface {
	// Register creates a new account. The password is hashed with bcrypt
	// before persistence; the plaintext is never stored.
	//
	// Returns ErrInvalidDataProvided for empty credentials and passes
	// store.ErrUsernameAlreadyExists through for duplicates.
	Register(ctx context.Context, creds models.Credentials) (models.User, error)

	// Login verifies the credentials against the stored hash.
	//
	// Returns ErrInvalidCredentials both for an unknown username and for a
	// wrong password, so a caller cannot probe which usernames exist.
	Login(ctx context.Context, creds models.Credentials) (models.User, error)
}

// TaskService handles the task lifecycle, including the category inference
// policy applied when a task is saved without an explicit category.
type TaskService interface {
	// CreateTask persists a new task. When input.Category is empty the
	// category is inferred from the task text; inference failure degrades
	// to the sentinel category and is reported on the result, never as an
	// error.
	CreateTask(ctx context.Context, input models.TaskInput) (models.TaskResult, error)

	// GetTask returns the task identified by taskID.
	//
	// Returns store.ErrTaskNotFound when absent and ErrForbidden when the
	// task belongs to a different user.
	GetTask(ctx context.Context, userID, taskID int64) (models.Task, error)

	// ListTasks returns userID's tasks in insertion order, narrowed by the
	// filter.
	ListTasks(ctx context.Context, userID int64, filter models.TaskFilter) ([]models.Task, error)

	// UpdateTask overwrites the task identified by taskID with the input.
	// An empty input.Category triggers re-classification; an empty
	// input.FileName keeps the existing attachment.
	UpdateTask(ctx context.Context, taskID int64, input models.TaskInput) (models.TaskResult, error)

	// DeleteTask removes the task row. The attachment, if any, stays on
	// disk.
	DeleteTask(ctx context.Context, userID, taskID int64) error
}
