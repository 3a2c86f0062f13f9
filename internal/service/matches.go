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

// MatchStore is the persistence surface the match service needs.
type MatchStore interface {
	CreateMatch(ctx context.Context, m *models.Match) error
	GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error)
	ListMatches(ctx context.Context, filter database.MatchFilter) ([]*models.Match, error)
	UpdateMatch(ctx context.Context, m *models.Match) error
	DeleteMatch(ctx context.Context, id uuid.UUID) error
	MatchExists(ctx context.Context, id uuid.UUID) (bool, error)
	UpsertStats(ctx context.Context, s *models.MatchPlayerStats) error
	ListStatsByMatch(ctx context.Context, matchID uuid.UUID) ([]*models.MatchPlayerStats, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	TeamExists(ctx context.Context, id uuid.UUID) (bool, error)
	PlayerExists(ctx context.Context, id uuid.UUID) (bool, error)
}

// MatchFilter narrows match listings. TeamID matches either side.
type MatchFilter struct {
	Status *string
	Season *string
	TeamID *uuid.UUID
}

// MatchService implements match CRUD and the per-player statistics lines.
type MatchService struct {
	store MatchStore
}

// NewMatchService creates the match service.
func NewMatchService(store MatchStore) *MatchService {
	return &MatchService{store: store}
}

// Create stores a new match. Both teams must exist and must differ.
func (s *MatchService) Create(ctx context.Context, req *models.MatchCreateRequest) (*models.MatchView, error) {
	if verr := validation.ValidateStruct(req); verr != nil {
		return nil, validationFailed(verr)
	}

	date, err := models.ParseDateTime(req.Date)
	if err != nil {
		return nil, invalidField("date must be a valid date")
	}
	homeID, err := s.resolveTeam(ctx, req.HomeTeamID, "home_team_id")
	if err != nil {
		return nil, err
	}
	awayID, err := s.resolveTeam(ctx, req.AwayTeamID, "away_team_id")
	if err != nil {
		return nil, err
	}

	status := req.Status
	if status == "" {
		status = models.MatchStatusUpcoming
	}

	now := time.Now().UTC()
	match := &models.Match{
		ID:         uuid.New(),
		Date:       date,
		HomeTeamID: homeID,
		AwayTeamID: awayID,
		HomeScore:  req.HomeScore,
		AwayScore:  req.AwayScore,
		Venue:      req.Venue,
		MatchType:  req.MatchType,
		Season:     req.Season,
		Status:     status,
		Summary:    req.Summary,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.store.CreateMatch(ctx, match); err != nil {
		return nil, internalError("create match", err)
	}

	logging.Info().
		Str("match_id", match.ID.String()).
		Str("home_team_id", match.HomeTeamID.String()).
		Str("away_team_id", match.AwayTeamID.String()).
		Msg("Match created")
	return s.assembleView(ctx, match)
}

// Get returns one match with both team references and its stat lines.
func (s *MatchService) Get(ctx context.Context, id uuid.UUID) (*models.MatchView, error) {
	match, err := s.store.GetMatch(ctx, id)
	if err != nil {
		return nil, storeError("Match", "get match", err)
	}
	return s.assembleView(ctx, match)
}

// List returns matches matching the filter in chronological order.
func (s *MatchService) List(ctx context.Context, filter MatchFilter) ([]models.MatchView, error) {
	matches, err := s.store.ListMatches(ctx, database.MatchFilter{
		Status: filter.Status,
		Season: filter.Season,
		TeamID: filter.TeamID,
	})
	if err != nil {
		return nil, internalError("list matches", err)
	}

	views := make([]models.MatchView, 0, len(matches))
	for _, match := range matches {
		view, err := s.assembleView(ctx, match)
		if err != nil {
			return nil, err
		}
		views = append(views, *view)
	}
	return views, nil
}

// Update applies a partial update. If the merged result would have a team
// playing itself, the update is rejected.
func (s *MatchService) Update(ctx context.Context, id uuid.UUID, patch *models.MatchPatch) (*models.MatchView, error) {
	if verr := validation.ValidateStruct(patch); verr != nil {
		return nil, validationFailed(verr)
	}

	match, err := s.store.GetMatch(ctx, id)
	if err != nil {
		return nil, storeError("Match", "get match", err)
	}

	if err := s.applyMatchPatch(ctx, match, patch); err != nil {
		return nil, err
	}
	if match.HomeTeamID == match.AwayTeamID {
		return nil, invalidField("away_team_id must differ from home_team_id")
	}
	match.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateMatch(ctx, match); err != nil {
		return nil, storeError("Match", "update match", err)
	}
	return s.assembleView(ctx, match)
}

// Delete removes a match together with its stat lines.
func (s *MatchService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeleteMatch(ctx, id); err != nil {
		return storeError("Match", "delete match", err)
	}
	logging.Info().Str("match_id", id.String()).Msg("Match deleted")
	return nil
}

// UpsertPlayerStats records or replaces one player's stat line for a
// match. Both the match and the player must exist.
func (s *MatchService) UpsertPlayerStats(ctx context.Context, matchID, playerID uuid.UUID, req *models.StatsUpsertRequest) (*models.StatsView, error) {
	if verr := validation.ValidateStruct(req); verr != nil {
		return nil, validationFailed(verr)
	}

	exists, err := s.store.MatchExists(ctx, matchID)
	if err != nil {
		return nil, internalError("check match existence", err)
	}
	if !exists {
		return nil, notFoundError("Match")
	}

	exists, err = s.store.PlayerExists(ctx, playerID)
	if err != nil {
		return nil, internalError("check player existence", err)
	}
	if !exists {
		return nil, notFoundError("Player")
	}

	stats := &models.MatchPlayerStats{
		PlayerID:      playerID,
		MatchID:       matchID,
		Goals:         req.Goals,
		Assists:       req.Assists,
		YellowCards:   req.YellowCards,
		RedCards:      req.RedCards,
		MinutesPlayed: req.MinutesPlayed,
	}
	if err := s.store.UpsertStats(ctx, stats); err != nil {
		return nil, internalError("upsert match stats", err)
	}

	view := models.NewStatsView(stats)
	return &view, nil
}

// ListPlayerStats returns all stat lines recorded for a match.
func (s *MatchService) ListPlayerStats(ctx context.Context, matchID uuid.UUID) ([]models.StatsView, error) {
	exists, err := s.store.MatchExists(ctx, matchID)
	if err != nil {
		return nil, internalError("check match existence", err)
	}
	if !exists {
		return nil, notFoundError("Match")
	}

	stats, err := s.store.ListStatsByMatch(ctx, matchID)
	if err != nil {
		return nil, internalError("list match stats", err)
	}

	views := make([]models.StatsView, 0, len(stats))
	for _, line := range stats {
		views = append(views, models.NewStatsView(line))
	}
	return views, nil
}

func (s *MatchService) assembleView(ctx context.Context, match *models.Match) (*models.MatchView, error) {
	home, err := s.store.GetTeam(ctx, match.HomeTeamID)
	if err != nil {
		return nil, storeError("Team", "get home team", err)
	}
	away, err := s.store.GetTeam(ctx, match.AwayTeamID)
	if err != nil {
		return nil, storeError("Team", "get away team", err)
	}
	stats, err := s.store.ListStatsByMatch(ctx, match.ID)
	if err != nil {
		return nil, internalError("list match stats", err)
	}
	view := models.NewMatchView(match, home, away, stats)
	return &view, nil
}

// resolveTeam parses a wire team id and verifies the team exists.
func (s *MatchService) resolveTeam(ctx context.Context, wire, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(wire)
	if err != nil {
		return uuid.Nil, invalidField(field + " must be a valid id")
	}
	exists, err := s.store.TeamExists(ctx, id)
	if err != nil {
		return uuid.Nil, internalError("check team existence", err)
	}
	if !exists {
		return uuid.Nil, invalidField(field + " does not reference an existing team")
	}
	return id, nil
}

func (s *MatchService) applyMatchPatch(ctx context.Context, m *models.Match, p *models.MatchPatch) error {
	if p.Date != nil {
		date, err := models.ParseDateTime(*p.Date)
		if err != nil {
			return invalidField("date must be a valid date")
		}
		m.Date = date
	}
	if p.HomeTeamID != nil {
		id, err := s.resolveTeam(ctx, *p.HomeTeamID, "home_team_id")
		if err != nil {
			return err
		}
		m.HomeTeamID = id
	}
	if p.AwayTeamID != nil {
		id, err := s.resolveTeam(ctx, *p.AwayTeamID, "away_team_id")
		if err != nil {
			return err
		}
		m.AwayTeamID = id
	}
	if p.HomeScore != nil {
		m.HomeScore = p.HomeScore
	}
	if p.AwayScore != nil {
		m.AwayScore = p.AwayScore
	}
	if p.Venue != nil {
		m.Venue = p.Venue
	}
	if p.MatchType != nil {
		m.MatchType = p.MatchType
	}
	if p.Season != nil {
		m.Season = p.Season
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	if p.Summary != nil {
		m.Summary = p.Summary
	}
	return nil
}
