// ClubAPI - Espoir Sportif de Chorbane Club Backend
// Copyright 2026 ESC Chorbane
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/esc-chorbane/clubapi

package api

import (
	"net/http"

	"github.com/esc-chorbane/clubapi/internal/models"
	"github.com/esc-chorbane/clubapi/internal/service"
)

// ListPlayers handles GET /api/players with optional category and team_id
// filters.
func (h *Handlers) ListPlayers(w http.ResponseWriter, r *http.Request) {
	teamID, err := queryUUID(r, "team_id")
	if err != nil {
		respondError(w, err)
		return
	}

	views, err := h.players.List(r.Context(), service.PlayerFilter{
		Category: queryString(r, "category"),
		TeamID:   teamID,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "", views)
}

// GetPlayer handles GET /api/players/{id}.
func (h *Handlers) GetPlayer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "Player")
	if err != nil {
		respondError(w, err)
		return
	}

	view, err := h.players.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "", view)
}

// CreatePlayer handles POST /api/players.
func (h *Handlers) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	var req models.PlayerCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	view, err := h.players.Create(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, "Player created successfully", view)
}

// UpdatePlayer handles PUT /api/players/{id}.
func (h *Handlers) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "Player")
	if err != nil {
		respondError(w, err)
		return
	}

	var patch models.PlayerPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, err)
		return
	}

	view, err := h.players.Update(r.Context(), id, &patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "Player updated successfully", view)
}

// DeletePlayer handles DELETE /api/players/{id}.
func (h *Handlers) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "Player")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.players.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "Player deleted successfully", nil)
}
