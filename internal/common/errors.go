// Package common defines shared constants and sentinel errors used across
// client and server layers of lockify. Callers should use errors.Is to
// match these values.
package common

import (
	"errors"
	"fmt"
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Snapshot load/save failures. Never surfaced past the user store.
	ErrorPersistence = errors.New("persistence error")

	// Service-level errors.
	ErrorInternal     = errors.New("internal error")
	ErrorValidation   = errors.New("validation error")
	ErrorUnauthorized = errors.New("unauthorized")

	// Auth errors. All of them match ErrorUnauthorized.
	ErrInvalidCredentials = fmt.Errorf("%w: invalid credentials", ErrorUnauthorized)
	ErrInvalidToken       = fmt.Errorf("%w: invalid token", ErrorUnauthorized)
	ErrMissingToken       = fmt.Errorf("%w: missing token", ErrorUnauthorized)
	ErrUserNotFound       = fmt.Errorf("%w: user not found", ErrorUnauthorized)

	// Token lifecycle errors. An expired token is also an invalid one.
	ErrTokenExpired = fmt.Errorf("%w: token expired", ErrInvalidToken)
)
