package domain

import "errors"

// Authentication errors
var (
	ErrMissingCredential  = errors.New("missing credential")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrPositionInactive   = errors.New("position is inactive")
)

// Authorization errors
var (
	ErrUnauthenticated = errors.New("authentication required")
	ErrForbidden       = errors.New("forbidden")
)

// Entity errors
var (
	ErrUserNotFound      = errors.New("user not found")
	ErrPositionNotFound  = errors.New("position not found")
	ErrPositionHasUsers  = errors.New("position has associated users")
	ErrEmailTaken        = errors.New("email already exists")
	ErrPositionNameTaken = errors.New("position name already exists")
)
