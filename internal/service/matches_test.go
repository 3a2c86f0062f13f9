// ClubAPI - Espoir Sportif de Chorbane Club Backend
// Copyright 2026 ESC Chorbane
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/esc-chorbane/clubapi

package service

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/esc-chorbane/clubapi/internal/models"
)

func TestMatchCreate(t *testing.T) {
	db := setupStore(t)
	svc := NewMatchService(db)
	ctx := context.Background()

	home := mustCreateTeam(t, db, "ES Chorbane")
	away := mustCreateTeam(t, db, "CS Hammamet")

	created, err := svc.Create(ctx, &models.MatchCreateRequest{
		Date:       "2026-09-13T15:00:00Z",
		HomeTeamID: home.ID.String(),
		AwayTeamID: away.ID.String(),
		Venue:      strPtr("Stade Municipal"),
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.Status != models.MatchStatusUpcoming {
		t.Errorf("default status = %q, want %q", created.Status, models.MatchStatusUpcoming)
	}
	if created.HomeTeam.Name != "ES Chorbane" || created.AwayTeam.Name != "CS Hammamet" {
		t.Errorf("team refs = %+v / %+v", created.HomeTeam, created.AwayTeam)
	}
	if len(created.PlayerStats) != 0 {
		t.Errorf("new match has %d stat lines, want 0", len(created.PlayerStats))
	}
}

func TestMatchCreateValidation(t *testing.T) {
	db := setupStore(t)
	svc := NewMatchService(db)
	ctx := context.Background()

	home := mustCreateTeam(t, db, "ES Chorbane")

	tests := []struct {
		name string
		req  models.MatchCreateRequest
		want string
	}{
		{
			"team plays itself",
			models.MatchCreateRequest{
				Date:       "2026-09-13T15:00:00Z",
				HomeTeamID: home.ID.String(),
				AwayTeamID: home.ID.String(),
			},
			"away_team_id must differ from home_team_id",
		},
		{
			"unknown away team",
			models.MatchCreateRequest{
				Date:       "2026-09-13T15:00:00Z",
				HomeTeamID: home.ID.String(),
				AwayTeamID: uuid.New().String(),
			},
			"away_team_id does not reference an existing team",
		},
		{
			"bad status",
			models.MatchCreateRequest{
				Date:       "2026-09-13T15:00:00Z",
				HomeTeamID: home.ID.String(),
				AwayTeamID: uuid.New().String(),
				Status:     "postponed",
			},
			"status must be one of: upcoming played cancelled",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, &tt.req)
			serr := wantKind(t, err, KindValidation)
			if len(serr.Details) == 0 || serr.Details[0] != tt.want {
				t.Errorf("Details = %v, want first %q", serr.Details, tt.want)
			}
		})
	}
}

func TestMatchUpdateMergedSelfPlay(t *testing.T) {
	db := setupStore(t)
	svc := NewMatchService(db)
	ctx := context.Background()

	home := mustCreateTeam(t, db, "ES Chorbane")
	away := mustCreateTeam(t, db, "CS Hammamet")
	match := mustCreateMatch(t, db, home.ID, away.ID)

	// Patching away to the stored home team must be rejected.
	homeID := home.ID.String()
	_, err := svc.Update(ctx, match.ID, &models.MatchPatch{AwayTeamID: &homeID})
	serr := wantKind(t, err, KindValidation)
	if serr.Details[0] != "away_team_id must differ from home_team_id" {
		t.Errorf("Details = %v", serr.Details)
	}

	// Recording the result leaves the fixture otherwise intact.
	played := models.MatchStatusPlayed
	updated, err := svc.Update(ctx, match.ID, &models.MatchPatch{
		Status:    &played,
		HomeScore: intPtr(2),
		AwayScore: intPtr(1),
	})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Status != models.MatchStatusPlayed {
		t.Errorf("Status = %q, want played", updated.Status)
	}
	if updated.HomeScore == nil || *updated.HomeScore != 2 || updated.AwayScore == nil || *updated.AwayScore != 1 {
		t.Errorf("score = %v-%v, want 2-1", updated.HomeScore, updated.AwayScore)
	}
	if updated.HomeTeamID != home.ID || updated.AwayTeamID != away.ID {
		t.Errorf("teams changed by patch: %+v", updated)
	}
}

func TestMatchListFilters(t *testing.T) {
	db := setupStore(t)
	svc := NewMatchService(db)
	ctx := context.Background()

	a := mustCreateTeam(t, db, "ES Chorbane")
	b := mustCreateTeam(t, db, "CS Hammamet")
	c := mustCreateTeam(t, db, "AS Mahdia")
	mustCreateMatch(t, db, a.ID, b.ID)
	mustCreateMatch(t, db, b.ID, c.ID)

	all, err := svc.List(ctx, MatchFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("List() = %d matches, want 2", len(all))
	}

	// TeamID matches either side.
	forB, err := svc.List(ctx, MatchFilter{TeamID: &b.ID})
	if err != nil {
		t.Fatalf("List(team) error = %v", err)
	}
	if len(forB) != 2 {
		t.Errorf("List(b) = %d matches, want 2", len(forB))
	}
	forC, err := svc.List(ctx, MatchFilter{TeamID: &c.ID})
	if err != nil {
		t.Fatalf("List(team) error = %v", err)
	}
	if len(forC) != 1 {
		t.Errorf("List(c) = %d matches, want 1", len(forC))
	}

	upcoming := models.MatchStatusUpcoming
	byStatus, err := svc.List(ctx, MatchFilter{Status: &upcoming})
	if err != nil {
		t.Fatalf("List(status) error = %v", err)
	}
	if len(byStatus) != 2 {
		t.Errorf("List(upcoming) = %d matches, want 2", len(byStatus))
	}
}

func TestMatchStats(t *testing.T) {
	db := setupStore(t)
	svc := NewMatchService(db)
	ctx := context.Background()

	home := mustCreateTeam(t, db, "ES Chorbane")
	away := mustCreateTeam(t, db, "CS Hammamet")
	match := mustCreateMatch(t, db, home.ID, away.ID)
	player := mustCreatePlayer(t, db, "Ahmed", "Trabelsi", &home.ID)

	line, err := svc.UpsertPlayerStats(ctx, match.ID, player.ID, &models.StatsUpsertRequest{
		Goals: 1, MinutesPlayed: 90,
	})
	if err != nil {
		t.Fatalf("UpsertPlayerStats() error = %v", err)
	}
	if line.Goals != 1 || line.MinutesPlayed != 90 {
		t.Errorf("stats line = %+v", line)
	}

	// A second upsert replaces, never duplicates.
	if _, err := svc.UpsertPlayerStats(ctx, match.ID, player.ID, &models.StatsUpsertRequest{
		Goals: 2, Assists: 1, MinutesPlayed: 90,
	}); err != nil {
		t.Fatalf("UpsertPlayerStats(again) error = %v", err)
	}

	lines, err := svc.ListPlayerStats(ctx, match.ID)
	if err != nil {
		t.Fatalf("ListPlayerStats() error = %v", err)
	}
	if len(lines) != 1 || lines[0].Goals != 2 || lines[0].Assists != 1 {
		t.Errorf("stats = %+v, want one replaced line", lines)
	}

	// Existence checks on both sides of the join.
	_, err = svc.UpsertPlayerStats(ctx, uuid.New(), player.ID, &models.StatsUpsertRequest{})
	wantKind(t, err, KindNotFound)
	_, err = svc.UpsertPlayerStats(ctx, match.ID, uuid.New(), &models.StatsUpsertRequest{})
	wantKind(t, err, KindNotFound)
	_, err = svc.ListPlayerStats(ctx, uuid.New())
	wantKind(t, err, KindNotFound)

	// Card limits enforced.
	_, err = svc.UpsertPlayerStats(ctx, match.ID, player.ID, &models.StatsUpsertRequest{YellowCards: 3})
	wantKind(t, err, KindValidation)
}

func TestMatchDeleteRemovesStats(t *testing.T) {
	db := setupStore(t)
	svc := NewMatchService(db)
	ctx := context.Background()

	home := mustCreateTeam(t, db, "ES Chorbane")
	away := mustCreateTeam(t, db, "CS Hammamet")
	match := mustCreateMatch(t, db, home.ID, away.ID)
	player := mustCreatePlayer(t, db, "Ahmed", "Trabelsi", &home.ID)
	if _, err := svc.UpsertPlayerStats(ctx, match.ID, player.ID, &models.StatsUpsertRequest{Goals: 1}); err != nil {
		t.Fatalf("UpsertPlayerStats() error = %v", err)
	}

	if err := svc.Delete(ctx, match.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}
	wantKind(t, svc.Delete(ctx, match.ID), KindNotFound)

	// The player is untouched by the cascade.
	if _, err := db.GetPlayer(ctx, player.ID); err != nil {
		t.Fatalf("GetPlayer() after match delete error = %v", err)
	}
}
