// ClubAPI - Espoir Sportif de Chorbane Club Backend
// Copyright 2026 ESC Chorbane
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/esc-chorbane/clubapi

// Package service implements the resource operations of the ClubAPI. Each
// service receives its store as an interface, validates payloads, applies
// business rules and assembles the wire views. Transport concerns stay in
// the api package.
package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/esc-chorbane/clubapi/internal/database"
	"github.com/esc-chorbane/clubapi/internal/metrics"
	"github.com/esc-chorbane/clubapi/internal/validation"
)

// Kind classifies a service error for status mapping at the transport
// layer.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuthentication
	KindNotFound
	KindConflict
	KindInternal
)

// Error is the single error type returned across service boundaries.
// Details carries the per-field message list for validation failures.
type Error struct {
	Kind    Kind
	Message string
	Details []string
	cause   error
}

func (e *Error) Error() string {
	if len(e.Details) > 0 {
		return e.Message + ": " + strings.Join(e.Details, "; ")
	}
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is chains.
func (e *Error) Unwrap() error { return e.cause }

func validationFailed(verr *validation.RequestValidationError) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: "Validation failed",
		Details: verr.Messages(),
	}
}

func invalidField(messages ...string) *Error {
	return &Error{
		Kind:    KindValidation,
		Message: "Validation failed",
		Details: messages,
	}
}

func notFoundError(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

func conflictError(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

func authenticationError(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

// internalError wraps a failed store operation; the failure is also
// counted in the database error metric.
func internalError(op string, err error) *Error {
	metrics.RecordDBError(op)
	return internalFailure(op, err)
}

// internalFailure wraps a non-store internal failure.
func internalFailure(op string, err error) *Error {
	return &Error{
		Kind:    KindInternal,
		Message: "Internal server error",
		cause:   fmt.Errorf("%s: %w", op, err),
	}
}

// storeError maps a store failure: the not-found sentinel becomes a
// client-visible 404, everything else an internal error.
func storeError(resource, op string, err error) *Error {
	if errors.Is(err, database.ErrNotFound) {
		return notFoundError(resource)
	}
	return internalError(op, err)
}
