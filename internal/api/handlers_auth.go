// ClubAPI - Espoir Sportif de Chorbane Club Backend
// Copyright 2026 ESC Chorbane
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/esc-chorbane/clubapi

package api

import (
	"net/http"

	"github.com/esc-chorbane/clubapi/internal/auth"
	"github.com/esc-chorbane/clubapi/internal/metrics"
	"github.com/esc-chorbane/clubapi/internal/models"
	"github.com/esc-chorbane/clubapi/internal/service"
)

// Register handles POST /api/auth/register.
func (h *Handlers) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	resp, err := h.auth.Register(r.Context(), &req)
	metrics.RecordAuthAttempt("register", err == nil)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusCreated, "User registered successfully", resp)
}

// Login handles POST /api/auth/login.
func (h *Handlers) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	resp, err := h.auth.Login(r.Context(), &req)
	metrics.RecordAuthAttempt("login", err == nil)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "Login successful", resp)
}

// Me handles GET /api/auth/me.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	claims := auth.GetClaims(r.Context())
	if claims == nil {
		respondError(w, &service.Error{
			Kind:    service.KindAuthentication,
			Message: "Authentication required",
		})
		return
	}

	view, err := h.auth.Me(r.Context(), claims.UserID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, "", view)
}
