package models

import "time"

// Task represents a single to-do item owned by a user. A task optionally
// carries a category and a reference to an uploaded attachment.
type Task struct {
	// TaskID is the internal unique identifier of the task, assigned at
	// creation and immutable afterwards.
	TaskID int64 `json:"id"`

	// UserID is the identifier of the owning user. Every task has exactly
	// one owner.
	UserID int64 `json:"-"`

	// Title is the required short description of the task.
	Title string `json:"title"`

	// Description is optional free-form text.
	Description string `json:"description"`

	// Status reports whether the task is completed. Defaults to false.
	Status bool `json:"status"`

	// Category is one of the known category labels or CategoryUndetermined.
	Category string `json:"category"`

	// FilePath is the sanitized filename of the attached upload, relative
	// to the configured upload directory. Empty when no file is attached.
	FilePath string `json:"file_path,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Task model.
func (t Task) TableName() string {
	return "tasks"
}

// TaskFilter narrows a task listing. Zero values mean "no filtering".
type TaskFilter struct {
	// Search is a case-insensitive substring matched against task titles.
	Search string

	// Category, when non-empty, restricts the listing to an exact
	// category match.
	Category string
}

// TaskInput carries the validated form fields of a task create or update
// request. FileName is the already-stored attachment reference; an empty
// value on update leaves the existing attachment untouched.
type TaskInput struct {
	UserID      int64
	Title       string
	Description string
	Status      bool
	Category    string
	FileName    string
}

// TaskResult is the outcome of a task mutation. CategoryInferred reports
// that the category was produced by the classifier rather than supplied by
// the caller; ClassificationFailed reports that inference was attempted (or
// skipped because no classifier is configured) and the sentinel
// CategoryUndetermined was assigned instead.
type TaskResult struct {
	Task                 Task
	CategoryInferred     bool
	ClassificationFailed bool
}
