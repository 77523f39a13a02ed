package services

import "errors"

// Common errors
var (
	ErrUserNotFound = errors.New("user not found")
	ErrTaskNotFound = errors.New("task not found")
	ErrEmailExists  = errors.New("email already registered")
	ErrInternal     = errors.New("internal server error")
)
