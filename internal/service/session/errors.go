package session

import (
	"errors"
	"fmt"

	"khaogully-admin/internal/apperr"
)

var (
	// ErrTokenNotFound хранилище пусто.
	ErrTokenNotFound = errors.New("token not found")

	ErrMissingCredentials = fmt.Errorf("%w: email and password are required", apperr.Invalid)
	ErrNotAuthenticated   = fmt.Errorf("session: %w", apperr.Unauthenticated)
)
