// ClubAPI - Espoir Sportif de Chorbane Club Backend
// Copyright 2026 ESC Chorbane
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/esc-chorbane/clubapi

package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/esc-chorbane/clubapi/internal/logging"
	"github.com/esc-chorbane/clubapi/internal/models"
	"github.com/esc-chorbane/clubapi/internal/validation"
)

// TeamStore is the persistence surface the team service needs.
type TeamStore interface {
	CreateTeam(ctx context.Context, t *models.Team) error
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	ListTeams(ctx context.Context) ([]*models.Team, error)
	UpdateTeam(ctx context.Context, t *models.Team) error
	DeleteTeam(ctx context.Context, id uuid.UUID) error
	TeamHasMatches(ctx context.Context, id uuid.UUID) (bool, error)
	ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]*models.Player, error)
}

// TeamService implements team CRUD with roster assembly.
type TeamService struct {
	store TeamStore
}

// NewTeamService creates the team service.
func NewTeamService(store TeamStore) *TeamService {
	return &TeamService{store: store}
}

// Create stores a new team. The roster starts empty.
func (s *TeamService) Create(ctx context.Context, req *models.TeamCreateRequest) (*models.TeamView, error) {
	if verr := validation.ValidateStruct(req); verr != nil {
		return nil, validationFailed(verr)
	}

	now := time.Now().UTC()
	team := &models.Team{
		ID:          uuid.New(),
		Name:        req.Name,
		LogoURL:     req.LogoURL,
		FoundedYear: req.FoundedYear,
		HomeStadium: req.HomeStadium,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.store.CreateTeam(ctx, team); err != nil {
		return nil, internalError("create team", err)
	}

	logging.Info().Str("team_id", team.ID.String()).Str("name", team.Name).Msg("Team created")
	view := models.NewTeamView(team, nil)
	return &view, nil
}

// Get returns one team with its full roster.
func (s *TeamService) Get(ctx context.Context, id uuid.UUID) (*models.TeamView, error) {
	team, err := s.store.GetTeam(ctx, id)
	if err != nil {
		return nil, storeError("Team", "get team", err)
	}
	return s.assembleView(ctx, team)
}

// List returns all teams with their rosters, ordered by name.
func (s *TeamService) List(ctx context.Context) ([]models.TeamView, error) {
	teams, err := s.store.ListTeams(ctx)
	if err != nil {
		return nil, internalError("list teams", err)
	}

	views := make([]models.TeamView, 0, len(teams))
	for _, team := range teams {
		view, err := s.assembleView(ctx, team)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// Update applies a partial update and returns the fresh view.
func (s *TeamService) Update(ctx context.Context, id uuid.UUID, patch *models.TeamPatch) (*models.TeamView, error) {
	if verr := validation.ValidateStruct(patch); verr != nil {
		return nil, validationFailed(verr)
	}

	team, err := s.store.GetTeam(ctx, id)
	if err != nil {
		return nil, storeError("Team", "get team", err)
	}

	applyTeamPatch(team, patch)
	team.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateTeam(ctx, team); err != nil {
		return nil, storeError("Team", "update team", err)
	}
	return s.assembleView(ctx, team)
}

// Delete removes a team. Teams with recorded matches cannot be deleted;
// players on the team are detached, not deleted.
func (s *TeamService) Delete(ctx context.Context, id uuid.UUID) error {
	has, err := s.store.TeamHasMatches(ctx, id)
	if err != nil {
		return internalError("check team matches", err)
	}
	if has {
		return conflictError("Team has recorded matches and cannot be deleted")
	}

	if err := s.store.DeleteTeam(ctx, id); err != nil {
		return storeError("Team", "delete team", err)
	}
	logging.Info().Str("team_id", id.String()).Msg("Team deleted")
	return nil
}

func (s *TeamService) assembleView(ctx context.Context, team *models.Team) (*models.TeamView, error) {
	players, err := s.store.ListPlayersByTeam(ctx, team.ID)
	if err != nil {
		return nil, internalError("list team players", err)
	}
	view := models.NewTeamView(team, players)
	return &view, nil
}

// applyTeamPatch merges present patch fields into the stored team.
func applyTeamPatch(t *models.Team, p *models.TeamPatch) {
	if p.Name != nil {
		t.Name = *p.Name
	}
	if p.LogoURL != nil {
		t.LogoURL = p.LogoURL
	}
	if p.FoundedYear != nil {
		t.FoundedYear = p.FoundedYear
	}
	if p.HomeStadium != nil {
		t.HomeStadium = p.HomeStadium
	}
	if p.Description != nil {
		t.Description = p.Description
	}
}
