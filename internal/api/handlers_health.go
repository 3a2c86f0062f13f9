// ClubAPI - Espoir Sportif de Chorbane Club Backend
// Copyright 2026 ESC Chorbane
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/esc-chorbane/clubapi

package api

import (
	"net/http"
)

// Health handles GET /api/health. It reports degraded (503) when the
// database does not answer.
func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	status := "healthy"
	httpStatus := http.StatusOK
	if err := h.db.Ping(r.Context()); err != nil {
		status = "degraded"
		httpStatus = http.StatusServiceUnavailable
	}

	respondJSON(w, httpStatus, "", map[string]string{
		"status":   status,
		"database": status,
	})
}
