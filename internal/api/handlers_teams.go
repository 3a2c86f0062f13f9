// ClubAPI - Espoir Sportif de Chorbane Club Backend
// Copyright 2026 ESC Chorbane
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/esc-chorbane/clubapi

package api

import (
	"net/http"

	"github.com/esc-chorbane/clubapi/internal/models"
)

// ListTeams handles GET /api/teams.
func (h *Handlers) ListTeams(w http.ResponseWriter, r *http.Request) {
	views, err := h.teams.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "", views)
}

// GetTeam handles GET /api/teams/{id}.
func (h *Handlers) GetTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "Team")
	if err != nil {
		respondError(w, err)
		return
	}

	view, err := h.teams.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "", view)
}

// CreateTeam handles POST /api/teams.
func (h *Handlers) CreateTeam(w http.ResponseWriter, r *http.Request) {
	var req models.TeamCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	view, err := h.teams.Create(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, "Team created successfully", view)
}

// UpdateTeam handles PUT /api/teams/{id}.
func (h *Handlers) UpdateTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "Team")
	if err != nil {
		respondError(w, err)
		return
	}

	var patch models.TeamPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, err)
		return
	}

	view, err := h.teams.Update(r.Context(), id, &patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "Team updated successfully", view)
}

// DeleteTeam handles DELETE /api/teams/{id}.
func (h *Handlers) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "Team")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.teams.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "Team deleted successfully", nil)
}
