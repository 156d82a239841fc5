package service

import "errors"

var (
	// ErrInvalidDataProvided indicates the input failed validation.
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials indicates the username/password pair did not
	// match an account. Unknown username and wrong password are deliberately
	// indistinguishable.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrForbidden indicates the requested resource exists but belongs to a
	// different user.
	ErrForbidden = errors.New("access to another user's resource is forbidden")
)
