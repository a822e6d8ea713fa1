package navigation

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrEmptyEmail is returned when login is requested without an email.
	ErrEmptyEmail = errors.New("email is required")

	// ErrLoginPending is returned when login is requested while another is in flight.
	ErrLoginPending = errors.New("login already in progress")

	// ErrClosed is returned by intents issued after the controller was closed.
	ErrClosed = errors.New("controller closed")

	// ErrInvalidCredentials matches AuthErrors of kind AuthInvalidCredentials.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrNetworkFailure matches AuthErrors of kind AuthNetworkFailure.
	ErrNetworkFailure = errors.New("network failure")

	// ErrTimeout matches AuthErrors of kind AuthTimeout.
	ErrTimeout = errors.New("authentication timed out")

	errNoAuthenticator = errors.New("no authenticator configured")
)

// AuthErrorKind classifies a failed credential check.
type AuthErrorKind int

// Credential check failure kinds.
const (
	AuthInvalidCredentials AuthErrorKind = iota + 1
	AuthNetworkFailure
	AuthTimeout
)

// String returns the kind name.
func (k AuthErrorKind) String() string {
	switch k {
	case AuthInvalidCredentials:
		return "invalid_credentials"
	case AuthNetworkFailure:
		return "network_failure"
	case AuthTimeout:
		return "timeout"
	default:
		return "unknown"
	}
}

func (k AuthErrorKind) sentinel() error {
	switch k {
	case AuthInvalidCredentials:
		return ErrInvalidCredentials
	case AuthNetworkFailure:
		return ErrNetworkFailure
	case AuthTimeout:
		return ErrTimeout
	default:
		return nil
	}
}

// AuthError reports a rejected login. The pending login is discarded: the
// loading flag clears, no session is created and the route stays put.
type AuthError struct {
	Kind  AuthErrorKind
	Email string
	Err   error
}

// NewAuthError builds an AuthError of the given kind.
func NewAuthError(kind AuthErrorKind, email string, err error) *AuthError {
	return &AuthError{Kind: kind, Email: email, Err: err}
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	msg := fmt.Sprintf("login failed for %s: %s", e.Email, e.Kind.sentinel())
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap returns the underlying cause.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// Is matches the sentinel error of the same kind.
func (e *AuthError) Is(target error) bool {
	s := e.Kind.sentinel()
	return s != nil && target == s
}

// classifyAuthError normalises whatever the authenticator returned into an
// AuthError. Errors that are already AuthErrors pass through unchanged; bare or
// wrapped sentinels keep their kind; anything else is a network failure.
func classifyAuthError(ctx context.Context, email string, err error) error {
	if err == nil {
		return nil
	}
	var authErr *AuthError
	if errors.As(err, &authErr) {
		return err
	}
	kind := AuthNetworkFailure
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		kind = AuthInvalidCredentials
	case errors.Is(err, ErrTimeout), errors.Is(err, context.DeadlineExceeded),
		errors.Is(ctx.Err(), context.DeadlineExceeded):
		kind = AuthTimeout
	}
	// a bare sentinel carries no detail beyond its kind
	if err == kind.sentinel() {
		err = nil
	}
	return NewAuthError(kind, email, err)
}
