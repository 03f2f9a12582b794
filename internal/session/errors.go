package session

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicateEmail     = errors.New("user already exists with that email")
	ErrEmptyCredentials   = errors.New("email and password required")
)
