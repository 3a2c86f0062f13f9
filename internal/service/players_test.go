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

func TestPlayerCreate(t *testing.T) {
	db := setupStore(t)
	svc := NewPlayerService(db)
	ctx := context.Background()

	team := mustCreateTeam(t, db, "ES Chorbane")
	teamID := team.ID.String()

	created, err := svc.Create(ctx, &models.PlayerCreateRequest{
		FirstName: "Ahmed",
		LastName:  "Trabelsi",
		Position:  strPtr(models.PositionForward),
		BirthDate: strPtr("2001-05-20"),
		TeamID:    &teamID,
	})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if created.Team == nil || created.Team.Name != "ES Chorbane" {
		t.Errorf("Team = %+v, want ES Chorbane", created.Team)
	}
	if created.BirthDate == nil || *created.BirthDate != "2001-05-20" {
		t.Errorf("BirthDate = %v, want 2001-05-20", created.BirthDate)
	}

	// Unassigned player: nil and "" both mean no team.
	empty := ""
	free, err := svc.Create(ctx, &models.PlayerCreateRequest{
		FirstName: "Bilel",
		LastName:  "Amri",
		TeamID:    &empty,
	})
	if err != nil {
		t.Fatalf("Create(unassigned) error = %v", err)
	}
	if free.Team != nil || free.TeamID != nil {
		t.Errorf("unassigned player got team %+v", free.Team)
	}
}

func TestPlayerCreateBadTeamID(t *testing.T) {
	svc := NewPlayerService(setupStore(t))
	ctx := context.Background()

	tests := []struct {
		name   string
		teamID string
		want   string
	}{
		{"unknown team", uuid.New().String(), "team_id does not reference an existing team"},
		{"malformed id", "team-1", "team_id must be a valid id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Create(ctx, &models.PlayerCreateRequest{
				FirstName: "Ahmed",
				LastName:  "Trabelsi",
				TeamID:    &tt.teamID,
			})
			serr := wantKind(t, err, KindValidation)
			if len(serr.Details) != 1 || serr.Details[0] != tt.want {
				t.Errorf("Details = %v, want [%q]", serr.Details, tt.want)
			}
		})
	}
}

func TestPlayerUpdateTeamAssignment(t *testing.T) {
	db := setupStore(t)
	svc := NewPlayerService(db)
	ctx := context.Background()

	team := mustCreateTeam(t, db, "ES Chorbane")
	player := mustCreatePlayer(t, db, "Ahmed", "Trabelsi", &team.ID)

	// Detach with an explicit empty string.
	empty := ""
	detached, err := svc.Update(ctx, player.ID, &models.PlayerPatch{TeamID: &empty})
	if err != nil {
		t.Fatalf("Update(detach) error = %v", err)
	}
	if detached.TeamID != nil || detached.Team != nil {
		t.Errorf("detached player still has team: %+v", detached.Team)
	}

	// Reattach.
	teamID := team.ID.String()
	attached, err := svc.Update(ctx, player.ID, &models.PlayerPatch{TeamID: &teamID})
	if err != nil {
		t.Fatalf("Update(attach) error = %v", err)
	}
	if attached.Team == nil || attached.Team.ID != team.ID {
		t.Errorf("attached player team = %+v", attached.Team)
	}

	// Untouched fields survive the patches.
	if attached.FirstName != "Ahmed" || attached.LastName != "Trabelsi" {
		t.Errorf("name changed by patch: %+v", attached)
	}
}

func TestPlayerListFilters(t *testing.T) {
	db := setupStore(t)
	svc := NewPlayerService(db)
	ctx := context.Background()

	team := mustCreateTeam(t, db, "ES Chorbane")
	inTeam := mustCreatePlayer(t, db, "Ahmed", "Trabelsi", &team.ID)
	mustCreatePlayer(t, db, "Bilel", "Amri", nil)

	all, err := svc.List(ctx, PlayerFilter{})
	if err != nil {
		t.Fatalf("List() error = %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("List() = %d players, want 2", len(all))
	}

	byTeam, err := svc.List(ctx, PlayerFilter{TeamID: &team.ID})
	if err != nil {
		t.Fatalf("List(team) error = %v", err)
	}
	if len(byTeam) != 1 || byTeam[0].ID != inTeam.ID {
		t.Fatalf("List(team) = %+v, want only the assigned player", byTeam)
	}
	if byTeam[0].Team == nil || byTeam[0].Team.Name != "ES Chorbane" {
		t.Errorf("team reference not resolved: %+v", byTeam[0].Team)
	}
}

func TestPlayerDeleteRemovesStats(t *testing.T) {
	db := setupStore(t)
	svc := NewPlayerService(db)
	ctx := context.Background()

	home := mustCreateTeam(t, db, "ES Chorbane")
	away := mustCreateTeam(t, db, "CS Hammamet")
	player := mustCreatePlayer(t, db, "Ahmed", "Trabelsi", &home.ID)
	match := mustCreateMatch(t, db, home.ID, away.ID)
	if err := db.UpsertStats(ctx, &models.MatchPlayerStats{
		PlayerID: player.ID, MatchID: match.ID, Goals: 1,
	}); err != nil {
		t.Fatalf("UpsertStats() error = %v", err)
	}

	if err := svc.Delete(ctx, player.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	stats, err := db.ListStatsByMatch(ctx, match.ID)
	if err != nil {
		t.Fatalf("ListStatsByMatch() error = %v", err)
	}
	if len(stats) != 0 {
		t.Errorf("stats after player delete = %d lines, want 0", len(stats))
	}

	wantKind(t, svc.Delete(ctx, player.ID), KindNotFound)
}

func TestPlayerGetNotFound(t *testing.T) {
	svc := NewPlayerService(setupStore(t))
	_, err := svc.Get(context.Background(), uuid.New())
	wantKind(t, err, KindNotFound)
}
