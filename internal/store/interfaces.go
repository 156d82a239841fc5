package store

import (
	"context"
	"io"

	"github.com/rkhalikov/go-task-keeper/models"
)

// UserRepository provides persistence for user accounts.
type UserRepository interface {
	// CreateUser persists a new user and returns it with server-assigned
	// fields populated. Returns ErrUsernameAlreadyExists when the username
	// is taken.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByUsername retrieves the user with the given username.
	// Returns ErrNoUserWasFound when no such user exists.
	FindUserByUsername(ctx context.Context, username string) (models.User, error)
}

// TaskRepository provides persistence for tasks. All methods that accept a
// userID scope their effect to tasks owned by that user; GetTask is the one
// exception: ownership is checked by the service layer so that non-owner
// access can be distinguished from absence.
type TaskRepository interface {
	CreateTask(ctx context.Context, task models.Task) (models.Task, error)
	GetTask(ctx context.Context, taskID int64) (models.Task, error)

	// ListTasks returns the user's tasks in insertion order, optionally
	// narrowed by a case-insensitive title substring and an exact category.
	ListTasks(ctx context.Context, userID int64, filter models.TaskFilter) ([]models.Task, error)

	UpdateTask(ctx context.Context, task models.Task) (models.Task, error)

	// DeleteTask removes the task row only. An attached file referenced by
	// file_path is intentionally left on disk; see FileStorage.
	DeleteTask(ctx context.Context, userID, taskID int64) error
}

// FileStorage stores and serves task attachments under a single configured
// upload directory.
type FileStorage interface {
	// SaveUpload validates the extension against the allow-list, sanitizes
	// name, lazily creates the upload directory, and writes the content.
	// Returns the stored (sanitized) filename to be referenced from the
	// task row. A later upload under the same name overwrites the earlier
	// file; no collision detection is performed.
	SaveUpload(ctx context.Context, name string, content io.Reader) (string, error)

	// Open resolves name strictly inside the upload directory and opens it
	// for reading. Returns ErrFileNotFound when absent. The caller closes
	// the returned reader.
	Open(name string) (io.ReadSeekCloser, error)
}

// Storages bundles every persistence backend handed to the service layer.
type Storages struct {
	UserRepository UserRepository
	TaskRepository TaskRepository
	FileStorage    FileStorage

	DB *DB
}
