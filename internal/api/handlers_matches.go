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

// ListMatches handles GET /api/matches with optional status, season and
// team_id filters.
func (h *Handlers) ListMatches(w http.ResponseWriter, r *http.Request) {
	teamID, err := queryUUID(r, "team_id")
	if err != nil {
		respondError(w, err)
		return
	}

	views, err := h.matches.List(r.Context(), service.MatchFilter{
		Status: queryString(r, "status"),
		Season: queryString(r, "season"),
		TeamID: teamID,
	})
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "", views)
}

// GetMatch handles GET /api/matches/{id}.
func (h *Handlers) GetMatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "Match")
	if err != nil {
		respondError(w, err)
		return
	}

	view, err := h.matches.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "", view)
}

// CreateMatch handles POST /api/matches.
func (h *Handlers) CreateMatch(w http.ResponseWriter, r *http.Request) {
	var req models.MatchCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	view, err := h.matches.Create(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, "Match created successfully", view)
}

// UpdateMatch handles PUT /api/matches/{id}.
func (h *Handlers) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "Match")
	if err != nil {
		respondError(w, err)
		return
	}

	var patch models.MatchPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, err)
		return
	}

	view, err := h.matches.Update(r.Context(), id, &patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "Match updated successfully", view)
}

// DeleteMatch handles DELETE /api/matches/{id}.
func (h *Handlers) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "Match")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.matches.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "Match deleted successfully", nil)
}

// UpsertMatchStats handles PUT /api/matches/{id}/stats/{playerID}.
func (h *Handlers) UpsertMatchStats(w http.ResponseWriter, r *http.Request) {
	matchID, err := pathID(r, "id", "Match")
	if err != nil {
		respondError(w, err)
		return
	}
	playerID, err := pathID(r, "playerID", "Player")
	if err != nil {
		respondError(w, err)
		return
	}

	var req models.StatsUpsertRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	view, err := h.matches.UpsertPlayerStats(r.Context(), matchID, playerID, &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "Player statistics recorded successfully", view)
}

// ListMatchStats handles GET /api/matches/{id}/stats.
func (h *Handlers) ListMatchStats(w http.ResponseWriter, r *http.Request) {
	matchID, err := pathID(r, "id", "Match")
	if err != nil {
		respondError(w, err)
		return
	}

	views, err := h.matches.ListPlayerStats(r.Context(), matchID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "", views)
}
