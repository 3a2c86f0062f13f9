// ClubAPI - Espoir Sportif de Chorbane Club Backend
// Copyright 2026 ESC Chorbane
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/esc-chorbane/clubapi

package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/esc-chorbane/clubapi/internal/models"
)

func TestAuthenticate(t *testing.T) {
	m := newTestManager(t, time.Hour)
	mw := NewMiddleware(m)
	userID := uuid.New()

	token, _, err := m.GenerateToken(userID, "kais", "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	var gotClaims *Claims
	handler := mw.Authenticate(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotClaims = GetClaims(r.Context())
		w.WriteHeader(http.StatusNoContent)
	}))

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{"valid token", "Bearer " + token, http.StatusNoContent},
		{"missing header", "", http.StatusUnauthorized},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized},
		{"empty token", "Bearer ", http.StatusUnauthorized},
		{"garbage token", "Bearer nope", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotClaims = nil
			req := httptest.NewRequest(http.MethodPost, "/api/teams", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusNoContent {
				if gotClaims == nil || gotClaims.UserID != userID {
					t.Errorf("claims not propagated: %+v", gotClaims)
				}
				return
			}

			var resp models.APIResponse
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("decode error body: %v", err)
			}
			if resp.Status != "error" || resp.Error == nil || resp.Error.Code != models.CodeAuthentication {
				t.Errorf("error envelope = %+v", resp)
			}
		})
	}
}

func TestGetClaimsWithoutAuthentication(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/teams", nil)
	if claims := GetClaims(req.Context()); claims != nil {
		t.Errorf("GetClaims() on public request = %+v, want nil", claims)
	}
}
