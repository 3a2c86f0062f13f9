// ClubAPI - Espoir Sportif de Chorbane Club Backend
// Copyright 2026 ESC Chorbane
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/esc-chorbane/clubapi

package api

import (
	"net/http"

	"github.com/esc-chorbane/clubapi/internal/models"
)

// ListPartners handles GET /api/partners.
func (h *Handlers) ListPartners(w http.ResponseWriter, r *http.Request) {
	views, err := h.partners.List(r.Context())
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "", views)
}

// GetPartner handles GET /api/partners/{id}.
func (h *Handlers) GetPartner(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "Partner")
	if err != nil {
		respondError(w, err)
		return
	}

	view, err := h.partners.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "", view)
}

// CreatePartner handles POST /api/partners.
func (h *Handlers) CreatePartner(w http.ResponseWriter, r *http.Request) {
	var req models.PartnerCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	view, err := h.partners.Create(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, "Partner created successfully", view)
}

// UpdatePartner handles PUT /api/partners/{id}.
func (h *Handlers) UpdatePartner(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "Partner")
	if err != nil {
		respondError(w, err)
		return
	}

	var patch models.PartnerPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, err)
		return
	}

	view, err := h.partners.Update(r.Context(), id, &patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "Partner updated successfully", view)
}

// DeletePartner handles DELETE /api/partners/{id}.
func (h *Handlers) DeletePartner(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "Partner")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.partners.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "Partner deleted successfully", nil)
}
