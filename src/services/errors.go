package services

import (
	"errors"
	"strings"
)

// Sentinel errors for explicit error handling
// These errors allow the handler boundary to pick the right status code
// using errors.Is() instead of string matching

var (
	// ErrNotFound indicates the requested record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrInvalidID indicates a malformed record id; treated like a miss (404)
	ErrInvalidID = errors.New("malformed id")

	// ErrDuplicateUsername indicates the username is already taken
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidCredentials indicates login failed; message is deliberately
	// uniform for unknown username and wrong password
	ErrInvalidCredentials = errors.New("incorrect username or password")

	// ErrInvalidToken indicates a malformed token or a bad signature
	ErrInvalidToken = errors.New("invalid token or session expired")

	// ErrExpiredToken indicates the token's expiry has passed
	ErrExpiredToken = errors.New("token has expired")

	// ErrUnknownIdentity indicates the token subject no longer resolves to an
	// active admin account
	ErrUnknownIdentity = errors.New("the admin belonging to this token no longer exists")
)

// ValidationError collects field-level validation messages for one write.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ". ")
}

func (e *ValidationError) add(msg string) {
	e.Messages = append(e.Messages, msg)
}

// errOrNil returns the error only when at least one message was collected.
func (e *ValidationError) errOrNil() error {
	if len(e.Messages) == 0 {
		return nil
	}
	return e
}
