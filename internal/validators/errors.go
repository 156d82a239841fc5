package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID   = errors.New("invalid user ID")
	ErrEmptyTitle      = errors.New("title is required")
	ErrInvalidCategory = errors.New("unknown category")
	ErrEmptyUsername   = errors.New("username is required")
	ErrEmptyPassword   = errors.New("password is required")
)
