// ClubAPI - Espoir Sportif de Chorbane Club Backend
// Copyright 2026 ESC Chorbane
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/esc-chorbane/clubapi

package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/esc-chorbane/clubapi/internal/config"
)

const testSecret = "test-secret-at-least-32-characters-long"

func newTestManager(t *testing.T, ttl time.Duration) *JWTManager {
	t.Helper()

	m, err := NewJWTManager(&config.SecurityConfig{JWTSecret: testSecret, TokenTTL: ttl})
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}
	return m
}

func TestNewJWTManagerEmptySecret(t *testing.T) {
	if _, err := NewJWTManager(&config.SecurityConfig{}); err == nil {
		t.Fatal("NewJWTManager() with empty secret succeeded, want error")
	}
}

func TestGenerateAndValidateToken(t *testing.T) {
	m := newTestManager(t, time.Hour)
	userID := uuid.New()

	token, expiresAt, err := m.GenerateToken(userID, "kais", "admin")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}
	if token == "" {
		t.Fatal("GenerateToken() returned empty token")
	}
	if remaining := time.Until(expiresAt); remaining < 59*time.Minute || remaining > time.Hour {
		t.Errorf("expiry %v not about an hour out", remaining)
	}

	claims, err := m.ValidateToken(token)
	if err != nil {
		t.Fatalf("ValidateToken() error = %v", err)
	}
	if claims.UserID != userID {
		t.Errorf("UserID = %v, want %v", claims.UserID, userID)
	}
	if claims.Username != "kais" || claims.Role != "admin" {
		t.Errorf("claims = %q/%q, want kais/admin", claims.Username, claims.Role)
	}
	if claims.Subject != userID.String() {
		t.Errorf("Subject = %q, want %q", claims.Subject, userID.String())
	}
}

func TestValidateTokenRejections(t *testing.T) {
	m := newTestManager(t, time.Hour)

	expired := newTestManager(t, -time.Minute)
	expiredToken, _, err := expired.GenerateToken(uuid.New(), "kais", "user")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	otherManager, err := NewJWTManager(&config.SecurityConfig{
		JWTSecret: "another-secret-also-32-characters-xx",
		TokenTTL:  time.Hour,
	})
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}
	foreignToken, _, err := otherManager.GenerateToken(uuid.New(), "kais", "user")
	if err != nil {
		t.Fatalf("GenerateToken() error = %v", err)
	}

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not.a.token"},
		{"empty", ""},
		{"expired", expiredToken},
		{"wrong key", foreignToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := m.ValidateToken(tt.token); err == nil {
				t.Errorf("ValidateToken(%s) succeeded, want error", tt.name)
			}
		})
	}
}
