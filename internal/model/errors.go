package model

import "errors"

var (
	// Admin / auth errors
	ErrAdminNotFound      = errors.New("admin not found")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")

	// Job role errors
	ErrRoleNotFound   = errors.New("role not found")
	ErrRoleTitleTaken = errors.New("role title already exists")

	// Question errors
	ErrQuestionNotFound = errors.New("question not found")

	// Application errors
	ErrApplicationNotFound = errors.New("application not found")
	ErrFileMissing         = errors.New("file not available")

	// Generic errors
	ErrInvalidInput = errors.New("invalid input")
)
