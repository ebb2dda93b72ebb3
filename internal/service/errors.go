package service

import "errors"

// Sentinel errors mapped to HTTP statuses by the handlers.
var (
	ErrStudentNotFound    = errors.New("student not found")
	ErrCollegeNotFound    = errors.New("college not found")
	ErrUsernameTaken      = errors.New("username already registered")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid username or password")
)
