// Package service holds the business operations behind the HTTP
// handlers. Failures are reported as typed sentinel errors; the HTTP
// layer maps them to status codes and never sees raw storage errors
// as response bodies.
package service

import "errors"

var (
	ErrValidation         = errors.New("invalid input")
	ErrNotFound           = errors.New("not found")
	ErrConflict           = errors.New("already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)
