// Package common defines shared sentinel errors used across the store and
// platform layers of Visual Notes. Callers should use errors.Is to match
// these values.
package common

import "errors"

var (
	// repository-level errors
	ErrNotFound = errors.New("not found")

	// identity errors
	ErrUnauthorized = errors.New("unauthorized")
	ErrUserExists   = errors.New("user already exists")
	ErrInvalidToken = errors.New("invalid token")

	// store preconditions
	ErrNoFolderSelected = errors.New("no folder selected")
	ErrDeletionInFlight = errors.New("deletion already in progress")
	ErrNothingToConfirm = errors.New("no pending deletion")
)
