package services

import "errors"

var (
	ErrValidation         = errors.New("invalid input")
	ErrConflict           = errors.New("username or email already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotFound           = errors.New("resource not found")
)
