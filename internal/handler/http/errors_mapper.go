package http

import (
	"errors"
	"net/http"

	"github.com/rkhalikov/go-task-keeper/internal/service"
	"github.com/rkhalikov/go-task-keeper/internal/store"
)

// errorStatusMap translates sentinel errors into HTTP status codes for the
// JSON read endpoints. Anything unmapped is a 500.
var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrForbidden:           http.StatusForbidden,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrTaskNotFound:          http.StatusNotFound,
	store.ErrFileNotFound:          http.StatusNotFound,
	store.ErrUnsupportedFileType:   http.StatusBadRequest,
	store.ErrInvalidFilename:       http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// errorFlashMap translates expected errors into the flash message shown to
// the user after a redirect. Errors missing from this map are unexpected
// and answered with a 500 instead of a redirect.
var errorFlashMap = map[error]string{
	service.ErrInvalidDataProvided: "Please check the form and try again",
	service.ErrInvalidCredentials:  "Invalid username or password",
	service.ErrForbidden:           "You cannot access another user's task",

	store.ErrUsernameAlreadyExists: "This username is already taken",
	store.ErrTaskNotFound:          "Task not found",
	store.ErrFileNotFound:          "File not found on the server",
	store.ErrUnsupportedFileType:   "This file type is not allowed",
	store.ErrInvalidFilename:       "The file name could not be used",
}

func flashFromError(err error) (string, bool) {
	for target, message := range errorFlashMap {
		if errors.Is(err, target) {
			return message, true
		}
	}
	return "", false
}
