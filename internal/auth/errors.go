package auth

import (
	"errors"
	"fmt"
)

// ErrEmailTaken is returned when an invite or update would reuse an email.
var ErrEmailTaken = errors.New("email already in use")

// ErrInvalidCredentials covers unknown email, pending account and wrong
// password alike, so the response never reveals which one happened.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrInvalidToken is returned when no admin record matches a reset token.
var ErrInvalidToken = errors.New("invalid token")

// ErrExpiredToken is returned when a reset token is past its expiry.
var ErrExpiredToken = errors.New("expired token")

// ErrInvalidRefreshToken is returned for malformed, tampered or expired
// refresh tokens; the causes are deliberately not distinguished.
var ErrInvalidRefreshToken = errors.New("invalid refresh token")

// ErrSamePassword is returned when a password change repeats the current one.
var ErrSamePassword = errors.New("new password must differ from the current one")

// ErrUnauthorized is returned when the authenticated identity cannot be
// resolved to an admin record.
var ErrUnauthorized = errors.New("unauthorized")

// ErrNotFound is returned when a token subject no longer exists.
var ErrNotFound = errors.New("admin not found")

// PolicyError reports which password complexity rules failed, keyed by rule
// name, so the caller can correct the input.
type PolicyError struct {
	Rules map[string]string
}

func (e *PolicyError) Error() string {
	return fmt.Sprintf("password policy violated: %d rule(s) failed", len(e.Rules))
}
