// ClubAPI - Espoir Sportif de Chorbane Club Backend
// Copyright 2026 ESC Chorbane
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/esc-chorbane/clubapi

package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/esc-chorbane/clubapi/internal/database"
	"github.com/esc-chorbane/clubapi/internal/logging"
	"github.com/esc-chorbane/clubapi/internal/models"
	"github.com/esc-chorbane/clubapi/internal/validation"
)

// PlayerStore is the persistence surface the player service needs.
type PlayerStore interface {
	CreatePlayer(ctx context.Context, p *models.Player) error
	GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error)
	ListPlayers(ctx context.Context, filter database.PlayerFilter) ([]*models.Player, error)
	UpdatePlayer(ctx context.Context, p *models.Player) error
	DeletePlayer(ctx context.Context, id uuid.UUID) error
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	TeamExists(ctx context.Context, id uuid.UUID) (bool, error)
}

// PlayerFilter narrows player listings.
type PlayerFilter struct {
	Category *string
	TeamID   *uuid.UUID
}

// PlayerService implements player CRUD with team assembly.
type PlayerService struct {
	store PlayerStore
}

// NewPlayerService creates the player service.
func NewPlayerService(store PlayerStore) *PlayerService {
	return &PlayerService{store: store}
}

// Create stores a new player. A team id, when given, must reference an
// existing team.
func (s *PlayerService) Create(ctx context.Context, req *models.PlayerCreateRequest) (*models.PlayerView, error) {
	if verr := validation.ValidateStruct(req); verr != nil {
		return nil, validationFailed(verr)
	}

	teamID, err := s.resolveTeamID(ctx, req.TeamID)
	if err != nil {
		return nil, err
	}

	birthDate, perr := parseOptionalDate(req.BirthDate, "birth_date")
	if perr != nil {
		return nil, perr
	}

	now := time.Now().UTC()
	player := &models.Player{
		ID:           uuid.New(),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		JerseyNumber: req.JerseyNumber,
		Position:     req.Position,
		BirthDate:    birthDate,
		Nationality:  req.Nationality,
		PhotoURL:     req.PhotoURL,
		Bio:          req.Bio,
		Height:       req.Height,
		Weight:       req.Weight,
		TeamID:       teamID,
		Category:     req.Category,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.CreatePlayer(ctx, player); err != nil {
		return nil, internalError("create player", err)
	}

	logging.Info().
		Str("player_id", player.ID.String()).
		Str("name", player.FirstName+" "+player.LastName).
		Msg("Player created")
	return s.assembleView(ctx, player)
}

// Get returns one player with a shallow team reference.
func (s *PlayerService) Get(ctx context.Context, id uuid.UUID) (*models.PlayerView, error) {
	player, err := s.store.GetPlayer(ctx, id)
	if err != nil {
		return nil, storeError("Player", "get player", err)
	}
	return s.assembleView(ctx, player)
}

// List returns players matching the filter, ordered by name. Team
// references are resolved once per distinct team.
func (s *PlayerService) List(ctx context.Context, filter PlayerFilter) ([]models.PlayerView, error) {
	players, err := s.store.ListPlayers(ctx, database.PlayerFilter{
		Category: filter.Category,
		TeamID:   filter.TeamID,
	})
	if err != nil {
		return nil, internalError("list players", err)
	}

	teams := make(map[uuid.UUID]*models.Team)
	views := make([]models.PlayerView, 0, len(players))
	for _, player := range players {
		var team *models.Team
		if player.TeamID != nil {
			cached, ok := teams[*player.TeamID]
			if !ok {
				cached, err = s.store.GetTeam(ctx, *player.TeamID)
				if err != nil {
					return nil, storeError("Team", "get player team", err)
				}
				teams[*player.TeamID] = cached
			}
			team = cached
		}
		views = append(views, models.NewPlayerView(player, team))
	}
	return views, nil
}

// Update applies a partial update. Sending "team_id": "" detaches the
// player from its team.
func (s *PlayerService) Update(ctx context.Context, id uuid.UUID, patch *models.PlayerPatch) (*models.PlayerView, error) {
	if verr := validation.ValidateStruct(patch); verr != nil {
		return nil, validationFailed(verr)
	}

	player, err := s.store.GetPlayer(ctx, id)
	if err != nil {
		return nil, storeError("Player", "get player", err)
	}

	if err := s.applyPlayerPatch(ctx, player, patch); err != nil {
		return nil, err
	}
	player.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdatePlayer(ctx, player); err != nil {
		return nil, storeError("Player", "update player", err)
	}
	return s.assembleView(ctx, player)
}

// Delete removes a player together with its per-match stat lines.
func (s *PlayerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeletePlayer(ctx, id); err != nil {
		return storeError("Player", "delete player", err)
	}
	logging.Info().Str("player_id", id.String()).Msg("Player deleted")
	return nil
}

func (s *PlayerService) assembleView(ctx context.Context, player *models.Player) (*models.PlayerView, error) {
	var team *models.Team
	if player.TeamID != nil {
		var err error
		team, err = s.store.GetTeam(ctx, *player.TeamID)
		if err != nil {
			return nil, storeError("Team", "get player team", err)
		}
	}
	view := models.NewPlayerView(player, team)
	return &view, nil
}

// resolveTeamID turns the wire team id into a validated reference. Empty
// string and nil both mean unassigned.
func (s *PlayerService) resolveTeamID(ctx context.Context, wire *string) (*uuid.UUID, error) {
	if wire == nil || *wire == "" {
		return nil, nil
	}
	id, err := uuid.Parse(*wire)
	if err != nil {
		return nil, invalidField("team_id must be a valid id")
	}
	exists, err := s.store.TeamExists(ctx, id)
	if err != nil {
		return nil, internalError("check team existence", err)
	}
	if !exists {
		return nil, invalidField("team_id does not reference an existing team")
	}
	return &id, nil
}

func (s *PlayerService) applyPlayerPatch(ctx context.Context, pl *models.Player, p *models.PlayerPatch) error {
	if p.FirstName != nil {
		pl.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		pl.LastName = *p.LastName
	}
	if p.JerseyNumber != nil {
		pl.JerseyNumber = p.JerseyNumber
	}
	if p.Position != nil {
		pl.Position = p.Position
	}
	if p.BirthDate != nil {
		birthDate, err := parseOptionalDate(p.BirthDate, "birth_date")
		if err != nil {
			return err
		}
		pl.BirthDate = birthDate
	}
	if p.Nationality != nil {
		pl.Nationality = p.Nationality
	}
	if p.PhotoURL != nil {
		pl.PhotoURL = p.PhotoURL
	}
	if p.Bio != nil {
		pl.Bio = p.Bio
	}
	if p.Height != nil {
		pl.Height = p.Height
	}
	if p.Weight != nil {
		pl.Weight = p.Weight
	}
	if p.TeamID != nil {
		teamID, err := s.resolveTeamID(ctx, p.TeamID)
		if err != nil {
			return err
		}
		pl.TeamID = teamID
	}
	if p.Category != nil {
		pl.Category = p.Category
	}
	return nil
}

// parseOptionalDate parses a 2006-01-02 wire date; nil and "" mean absent.
func parseOptionalDate(wire *string, field string) (*time.Time, error) {
	if wire == nil || *wire == "" {
		return nil, nil
	}
	t, err := models.ParseDateOnly(*wire)
	if err != nil {
		return nil, invalidField(field + " must be a valid date")
	}
	return &t, nil
}
