// File: internal/service/errors.go
package service

import "errors"

var (
	ErrDuplicateEmail     = errors.New("email already registered")
	ErrDuplicateTitle     = errors.New("post title already exists")
	ErrUnknownUser        = errors.New("unknown user")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthenticated    = errors.New("login required")
	ErrForbidden          = errors.New("forbidden")
	ErrNotFound           = errors.New("not found")
)
