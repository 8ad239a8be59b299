package services

import "errors"

var (
	ErrDuplicateEmail       = errors.New("email already exists")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrUnknownUser          = errors.New("unknown user")
	ErrInvalidOrExpiredCode = errors.New("invalid or expired code")
	ErrInvalidToken         = errors.New("invalid token")
	ErrNotFound             = errors.New("not found")
)
