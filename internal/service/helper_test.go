// ClubAPI - Espoir Sportif de Chorbane Club Backend
// Copyright 2026 ESC Chorbane
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/esc-chorbane/clubapi

package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/esc-chorbane/clubapi/internal/auth"
	"github.com/esc-chorbane/clubapi/internal/config"
	"github.com/esc-chorbane/clubapi/internal/database"
	"github.com/esc-chorbane/clubapi/internal/models"
)

// The DuckDB store must satisfy every service's store interface.
var (
	_ UserStore    = (*database.DB)(nil)
	_ TeamStore    = (*database.DB)(nil)
	_ PlayerStore  = (*database.DB)(nil)
	_ MatchStore   = (*database.DB)(nil)
	_ StaffStore   = (*database.DB)(nil)
	_ NewsStore    = (*database.DB)(nil)
	_ PartnerStore = (*database.DB)(nil)
)

// setupStore opens an in-memory store for service tests.
func setupStore(t *testing.T) *database.DB {
	t.Helper()

	db, err := database.NewInMemory()
	if err != nil {
		t.Fatalf("NewInMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func newTestJWTManager(t *testing.T) *auth.JWTManager {
	t.Helper()

	m, err := auth.NewJWTManager(&config.SecurityConfig{
		JWTSecret: "test-secret-at-least-32-characters-long",
		TokenTTL:  time.Hour,
	})
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}
	return m
}

// mustCreateTeam inserts a team directly through the store.
func mustCreateTeam(t *testing.T, db *database.DB, name string) *models.Team {
	t.Helper()

	now := time.Now().UTC()
	team := &models.Team{ID: uuid.New(), Name: name, CreatedAt: now, UpdatedAt: now}
	if err := db.CreateTeam(context.Background(), team); err != nil {
		t.Fatalf("CreateTeam(%q) error = %v", name, err)
	}
	return team
}

// mustCreatePlayer inserts a player directly through the store.
func mustCreatePlayer(t *testing.T, db *database.DB, first, last string, teamID *uuid.UUID) *models.Player {
	t.Helper()

	now := time.Now().UTC()
	player := &models.Player{
		ID: uuid.New(), FirstName: first, LastName: last, TeamID: teamID,
		CreatedAt: now, UpdatedAt: now,
	}
	if err := db.CreatePlayer(context.Background(), player); err != nil {
		t.Fatalf("CreatePlayer(%q %q) error = %v", first, last, err)
	}
	return player
}

// mustCreateUser inserts a user directly through the store.
func mustCreateUser(t *testing.T, db *database.DB, username string) *models.User {
	t.Helper()

	now := time.Now().UTC()
	user := &models.User{
		ID: uuid.New(), Username: username, Email: username + "@example.com",
		PasswordHash: "x", Role: models.RoleUser, CreatedAt: now, UpdatedAt: now,
	}
	if err := db.CreateUser(context.Background(), user); err != nil {
		t.Fatalf("CreateUser(%q) error = %v", username, err)
	}
	return user
}

// mustCreateMatch inserts an upcoming match directly through the store.
func mustCreateMatch(t *testing.T, db *database.DB, homeID, awayID uuid.UUID) *models.Match {
	t.Helper()

	now := time.Now().UTC()
	match := &models.Match{
		ID: uuid.New(), Date: now, HomeTeamID: homeID, AwayTeamID: awayID,
		Status: models.MatchStatusUpcoming, CreatedAt: now, UpdatedAt: now,
	}
	if err := db.CreateMatch(context.Background(), match); err != nil {
		t.Fatalf("CreateMatch() error = %v", err)
	}
	return match
}

// wantKind fails unless err is a *Error of the given kind.
func wantKind(t *testing.T, err error, kind Kind) *Error {
	t.Helper()

	if err == nil {
		t.Fatalf("error = nil, want kind %d", kind)
	}
	serr, ok := err.(*Error)
	if !ok {
		t.Fatalf("error = %T(%v), want *Error", err, err)
	}
	if serr.Kind != kind {
		t.Fatalf("error kind = %d (%s), want %d", serr.Kind, serr.Message, kind)
	}
	return serr
}

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
