// ClubAPI - Espoir Sportif de Chorbane Club Backend
// Copyright 2026 ESC Chorbane
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/esc-chorbane/clubapi

// Package api provides the HTTP transport: request decoding, response
// envelopes, per-resource handlers and the chi router.
package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/esc-chorbane/clubapi/internal/logging"
	"github.com/esc-chorbane/clubapi/internal/models"
	"github.com/esc-chorbane/clubapi/internal/service"
)

// notFoundRoute is the error returned for unmatched routes.
var notFoundRoute = &service.Error{
	Kind:    service.KindNotFound,
	Message: "Resource not found",
}

// respondJSON writes the success envelope.
func respondJSON(w http.ResponseWriter, status int, message string, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(&models.APIResponse{
		Status:   "success",
		Message:  message,
		Data:     data,
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
	}); err != nil {
		logging.Error().Err(err).Msg("Failed to encode response")
	}
}

// respondError maps a service error onto the error envelope. Anything that
// is not a *service.Error is treated as internal; internal causes are
// logged but never leaked to the client.
func respondError(w http.ResponseWriter, err error) {
	apiErr := &models.APIError{
		Code:    models.CodeInternal,
		Message: "Internal server error",
	}
	status := http.StatusInternalServerError

	var serr *service.Error
	if errors.As(err, &serr) {
		apiErr.Message = serr.Message
		switch serr.Kind {
		case service.KindValidation:
			status = http.StatusBadRequest
			apiErr.Code = models.CodeValidation
			apiErr.Details = map[string]interface{}{"errors": serr.Details}
			if len(serr.Details) > 0 {
				apiErr.Message = serr.Details[0]
			}
		case service.KindAuthentication:
			status = http.StatusUnauthorized
			apiErr.Code = models.CodeAuthentication
		case service.KindNotFound:
			status = http.StatusNotFound
			apiErr.Code = models.CodeNotFound
		case service.KindConflict:
			status = http.StatusConflict
			apiErr.Code = models.CodeConflict
		default:
			apiErr.Message = "Internal server error"
		}
	}

	if status == http.StatusInternalServerError {
		logging.Error().Err(err).Msg("Request failed")
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if encErr := json.NewEncoder(w).Encode(&models.APIResponse{
		Status:   "error",
		Metadata: models.Metadata{Timestamp: time.Now().UTC()},
		Error:    apiErr,
	}); encErr != nil {
		logging.Error().Err(encErr).Msg("Failed to encode error response")
	}
}

// decodeJSON decodes the request body into dst. Malformed JSON is a
// client error, reported in the validation shape.
func decodeJSON(r *http.Request, dst interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return &service.Error{
			Kind:    service.KindValidation,
			Message: "Invalid JSON payload",
		}
	}
	return nil
}

// pathID parses the named id path parameter. A malformed id cannot
// address any resource, so it reports not found rather than bad request.
func pathID(r *http.Request, param, resource string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, param))
	if err != nil {
		return uuid.Nil, &service.Error{
			Kind:    service.KindNotFound,
			Message: resource + " not found",
		}
	}
	return id, nil
}

// queryString returns a pointer to the named query parameter, nil when
// absent or empty.
func queryString(r *http.Request, name string) *string {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil
	}
	return &v
}

// queryUUID parses an optional uuid query parameter.
func queryUUID(r *http.Request, name string) (*uuid.UUID, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return nil, nil
	}
	id, err := uuid.Parse(v)
	if err != nil {
		return nil, &service.Error{
			Kind:    service.KindValidation,
			Message: "Validation failed",
			Details: []string{name + " must be a valid id"},
		}
	}
	return &id, nil
}
