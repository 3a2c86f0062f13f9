// ClubAPI - Espoir Sportif de Chorbane Club Backend
// Copyright 2026 ESC Chorbane
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/esc-chorbane/clubapi

package api

import (
	"net/http"

	"github.com/esc-chorbane/clubapi/internal/models"
)

// ListStaff handles GET /api/staff with an optional role filter.
func (h *Handlers) ListStaff(w http.ResponseWriter, r *http.Request) {
	views, err := h.staff.List(r.Context(), queryString(r, "role"))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "", views)
}

// GetStaff handles GET /api/staff/{id}.
func (h *Handlers) GetStaff(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "Staff member")
	if err != nil {
		respondError(w, err)
		return
	}

	view, err := h.staff.Get(r.Context(), id)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "", view)
}

// CreateStaff handles POST /api/staff.
func (h *Handlers) CreateStaff(w http.ResponseWriter, r *http.Request) {
	var req models.StaffCreateRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	view, err := h.staff.Create(r.Context(), &req)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, "Staff member created successfully", view)
}

// UpdateStaff handles PUT /api/staff/{id}.
func (h *Handlers) UpdateStaff(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "Staff member")
	if err != nil {
		respondError(w, err)
		return
	}

	var patch models.StaffPatch
	if err := decodeJSON(r, &patch); err != nil {
		respondError(w, err)
		return
	}

	view, err := h.staff.Update(r.Context(), id, &patch)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "Staff member updated successfully", view)
}

// DeleteStaff handles DELETE /api/staff/{id}.
func (h *Handlers) DeleteStaff(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id", "Staff member")
	if err != nil {
		respondError(w, err)
		return
	}

	if err := h.staff.Delete(r.Context(), id); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "Staff member deleted successfully", nil)
}
