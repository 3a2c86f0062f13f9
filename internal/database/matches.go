// ClubAPI - Espoir Sportif de Chorbane Club Backend
// Copyright 2026 ESC Chorbane
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/esc-chorbane/clubapi

package database

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/esc-chorbane/clubapi/internal/models"
)

const matchColumns = `id, date, home_team_id, away_team_id, home_score, away_score,
	venue, match_type, season, status, summary, created_at, updated_at`

const statsColumns = `player_id, match_id, goals, assists, yellow_cards, red_cards, minutes_played`

// MatchFilter narrows ListMatches. Nil fields mean no constraint. TeamID
// matches either side of the fixture.
type MatchFilter struct {
	Status *string
	Season *string
	TeamID *uuid.UUID
}

// CreateMatch inserts a new match row.
func (db *DB) CreateMatch(ctx context.Context, m *models.Match) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO matches (`+matchColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.Date, m.HomeTeamID, m.AwayTeamID, m.HomeScore, m.AwayScore,
		m.Venue, m.MatchType, m.Season, m.Status, m.Summary, m.CreatedAt, m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert match: %w", err)
	}
	return nil
}

// GetMatch returns the match with the given id, or ErrNotFound.
func (db *DB) GetMatch(ctx context.Context, id uuid.UUID) (*models.Match, error) {
	return scanMatch(db.conn.QueryRowContext(ctx,
		`SELECT `+matchColumns+` FROM matches WHERE id = ?`, id))
}

// ListMatches returns matches matching the filter in chronological order.
func (db *DB) ListMatches(ctx context.Context, filter MatchFilter) ([]*models.Match, error) {
	query := `SELECT ` + matchColumns + ` FROM matches`
	var (
		conds []string
		args  []interface{}
	)
	if filter.Status != nil {
		conds = append(conds, `status = ?`)
		args = append(args, *filter.Status)
	}
	if filter.Season != nil {
		conds = append(conds, `season = ?`)
		args = append(args, *filter.Season)
	}
	if filter.TeamID != nil {
		conds = append(conds, `(home_team_id = ? OR away_team_id = ?)`)
		args = append(args, *filter.TeamID, *filter.TeamID)
	}
	query += whereClause(conds) + ` ORDER BY date`

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query matches: %w", err)
	}
	defer rows.Close()

	matches := make([]*models.Match, 0)
	for rows.Next() {
		m, err := scanMatch(rows)
		if err != nil {
			return nil, err
		}
		matches = append(matches, m)
	}
	return matches, rows.Err()
}

// UpdateMatch writes all mutable columns of an existing match.
func (db *DB) UpdateMatch(ctx context.Context, m *models.Match) error {
	res, err := db.conn.ExecContext(ctx,
		`UPDATE matches
		 SET date = ?, home_team_id = ?, away_team_id = ?, home_score = ?, away_score = ?,
		     venue = ?, match_type = ?, season = ?, status = ?, summary = ?, updated_at = ?
		 WHERE id = ?`,
		m.Date, m.HomeTeamID, m.AwayTeamID, m.HomeScore, m.AwayScore,
		m.Venue, m.MatchType, m.Season, m.Status, m.Summary, m.UpdatedAt, m.ID,
	)
	return affectedOrNotFound(res, err)
}

// DeleteMatch removes a match together with its stat lines.
func (db *DB) DeleteMatch(ctx context.Context, id uuid.UUID) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM match_player_stats WHERE match_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete match stats: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM matches WHERE id = ?`, id)
	if err := affectedOrNotFound(res, err); err != nil {
		return err
	}

	return tx.Commit()
}

// MatchExists reports whether a match row with the given id exists.
func (db *DB) MatchExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := db.conn.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM matches WHERE id = ?)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check match existence: %w", err)
	}
	return exists, nil
}

// UpsertStats writes one player's stat line for one match, replacing any
// existing line for the same (player, match) pair.
func (db *DB) UpsertStats(ctx context.Context, s *models.MatchPlayerStats) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO match_player_stats (`+statsColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (player_id, match_id) DO UPDATE SET
		   goals = excluded.goals,
		   assists = excluded.assists,
		   yellow_cards = excluded.yellow_cards,
		   red_cards = excluded.red_cards,
		   minutes_played = excluded.minutes_played`,
		s.PlayerID, s.MatchID, s.Goals, s.Assists, s.YellowCards, s.RedCards, s.MinutesPlayed,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert match stats: %w", err)
	}
	return nil
}

// ListStatsByMatch returns all stat lines recorded for a match.
func (db *DB) ListStatsByMatch(ctx context.Context, matchID uuid.UUID) ([]*models.MatchPlayerStats, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT `+statsColumns+` FROM match_player_stats WHERE match_id = ?`, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to query match stats: %w", err)
	}
	defer rows.Close()

	stats := make([]*models.MatchPlayerStats, 0)
	for rows.Next() {
		var s models.MatchPlayerStats
		if err := rows.Scan(&s.PlayerID, &s.MatchID, &s.Goals, &s.Assists,
			&s.YellowCards, &s.RedCards, &s.MinutesPlayed); err != nil {
			return nil, err
		}
		stats = append(stats, &s)
	}
	return stats, rows.Err()
}

func scanMatch(row rowScanner) (*models.Match, error) {
	var m models.Match
	err := row.Scan(&m.ID, &m.Date, &m.HomeTeamID, &m.AwayTeamID, &m.HomeScore,
		&m.AwayScore, &m.Venue, &m.MatchType, &m.Season, &m.Status, &m.Summary,
		&m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &m, nil
}
