package errs

import (
	"errors"
	"fmt"
)

// Shared error taxonomy; controllers map these onto HTTP statuses with
// errors.Is.
var (
	ErrNotAuthenticated = errors.New("not authenticated")
	ErrPermissionDenied = errors.New("permission denied")
	ErrNotFound         = errors.New("not found")
	ErrInvalidWindow    = errors.New("time outside the allowed option window")
	ErrQuotaExceeded    = errors.New("option proposal quota exceeded")
)

// PermissionDenied wraps ErrPermissionDenied with a human-readable reason.
func PermissionDenied(reason string) error {
	return fmt.Errorf("%w: %s", ErrPermissionDenied, reason)
}

// NotFound wraps ErrNotFound naming the missing entity.
func NotFound(what string) error {
	return fmt.Errorf("%s %w", what, ErrNotFound)
}
