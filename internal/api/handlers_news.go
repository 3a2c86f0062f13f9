// ClubAPI - Espoir Sportif de Chorbane Club Backend
// Copyright 2026 ESC Chorbane
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/esc-chorbane/clubapi

package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/esc-chorbane/clubapi/internal/auth"
	"github.com/esc-chorbane/clubapi/internal/models"
)

// ListNews handles GET /api/news with an optional category filter.
func (h *Handlers) ListNews(w http.ResponseWriter, r *http.Request) {
	views, err := h.news.List(r.Context(), queryString(r, "category"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "", views)
}

// GetNews handles GET /api/news/{id}.
func (h *Handlers) GetNews(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "News article")
	if err != nil {
		respondError(w, err)
		return
	}

	view, err := h.news.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "", view)
}

// CreateNews handles POST /api/news. Articles without an explicit author
// are attributed to the authenticated user.
func (h *Handlers) CreateNews(w http.ResponseWriter, r *http.Request) {
	var req models.NewsCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	var authorID *uuid.UUID
	if claims := auth.GetClaims(r.Context()); claims != nil {
		authorID = &claims.UserID
	}

	view, err := h.news.Create(r.Context(), &req, authorID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, "News article created successfully", view)
}

// UpdateNews handles PUT /api/news/{id}.
func (h *Handlers) UpdateNews(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "News article")
	if err != nil {
		respondError(w, err)
		return
	}

	var patch models.NewsPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, err)
		return
	}

	view, err := h.news.Update(r.Context(), id, &patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "News article updated successfully", view)
}

// DeleteNews handles DELETE /api/news/{id}.
func (h *Handlers) DeleteNews(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "News article")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.news.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "News article deleted successfully", nil)
}
