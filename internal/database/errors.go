// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package database

import (
	"errors"
	"fmt"
)

// Sentinel error kinds. Check with errors.Is.
var (
	// ErrNotFound indicates no catalog row matched the key.
	ErrNotFound = errors.New("not found")

	// ErrValidation indicates the caller supplied an unusable key or value.
	ErrValidation = errors.New("validation failed")

	// ErrStorage indicates the driver or store failed.
	ErrStorage = errors.New("storage failure")
)

// Error is a classified catalog store error. It matches its Kind and its
// underlying cause with errors.Is.
type Error struct {
	Op   string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Kind)
}

// Unwrap exposes both the kind and the cause.
func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func notFoundError(op string, format string, args ...any) error {
	return &Error{Op: op, Kind: ErrNotFound, Err: fmt.Errorf(format, args...)}
}

func validationError(op string, format string, args ...any) error {
	return &Error{Op: op, Kind: ErrValidation, Err: fmt.Errorf(format, args...)}
}

func storageError(op string, err error) error {
	return &Error{Op: op, Kind: ErrStorage, Err: err}
}
