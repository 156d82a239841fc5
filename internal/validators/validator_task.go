package validators

import (
	"context"
	"strings"

	"github.com/rkhalikov/go-task-keeper/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldUserID targets the owner identifier of a task.
	FieldUserID = "user_id"

	// FieldTitle targets the task title.
	FieldTitle = "title"

	// FieldCategory targets the task category label.
	FieldCategory = "category"

	// FieldUsername targets the username of a credentials pair.
	FieldUsername = "username"

	// FieldPassword targets the password of a credentials pair.
	FieldPassword = "password"
)

// TaskValidator validates task input and login credentials.
type TaskValidator struct {
}

func NewTaskValidator() Validator {
	return &TaskValidator{}
}

func (v *TaskValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.TaskInput:
		return v.validateTaskInput(ctx, value, fields...)
	case *models.TaskInput:
		return v.validateTaskInput(ctx, *value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *TaskValidator) validateTaskInput(_ context.Context, input models.TaskInput, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldTitle, FieldCategory}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if input.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldTitle:
			if strings.TrimSpace(input.Title) == "" {
				return ErrEmptyTitle
			}
		case FieldCategory:
			// An empty category means "classify for me"; anything else
			// must be a known label.
			if input.Category != "" && !models.ValidCategory(input.Category) {
				return ErrInvalidCategory
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *TaskValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if strings.TrimSpace(creds.Username) == "" {
				return ErrEmptyUsername
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
