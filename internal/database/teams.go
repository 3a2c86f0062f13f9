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

const teamColumns = `id, name, logo_url, founded_year, home_stadium, description, created_at, updated_at`

// CreateTeam inserts a new team row.
func (db *DB) CreateTeam(ctx context.Context, t *models.Team) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO teams (`+teamColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		t.ID, t.Name, t.LogoURL, t.FoundedYear, t.HomeStadium, t.Description, t.CreatedAt, t.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert team: %w", err)
	}
	return nil
}

// GetTeam returns the team with the given id, or ErrNotFound.
func (db *DB) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	return scanTeam(db.conn.QueryRowContext(ctx,
		`SELECT `+teamColumns+` FROM teams WHERE id = ?`, id))
}

// ListTeams returns all teams ordered by name.
func (db *DB) ListTeams(ctx context.Context) ([]*models.Team, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT `+teamColumns+` FROM teams ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query teams: %w", err)
	}
	defer rows.Close()

	teams := make([]*models.Team, 0)
	for rows.Next() {
		t, err := scanTeam(rows)
		if err != nil {
			return nil, err
		}
		teams = append(teams, t)
	}
	return teams, rows.Err()
}

// UpdateTeam writes all mutable columns of an existing team.
func (db *DB) UpdateTeam(ctx context.Context, t *models.Team) error {
	res, err := db.conn.ExecContext(ctx,
		`UPDATE teams
		 SET name = ?, logo_url = ?, founded_year = ?, home_stadium = ?, description = ?, updated_at = ?
		 WHERE id = ?`,
		t.Name, t.LogoURL, t.FoundedYear, t.HomeStadium, t.Description, t.UpdatedAt, t.ID,
	)
	return affectedOrNotFound(res, err)
}

// DeleteTeam removes a team. Players on the team are detached first; there
// is no cascading delete of people. Matches still referencing the team are
// checked by the service layer before this is called.
func (db *DB) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`UPDATE players SET team_id = NULL WHERE team_id = ?`, id); err != nil {
		return fmt.Errorf("failed to detach players: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM teams WHERE id = ?`, id)
	if err := affectedOrNotFound(res, err); err != nil {
		return err
	}

	return tx.Commit()
}

// TeamExists reports whether a team row with the given id exists.
func (db *DB) TeamExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := db.conn.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM teams WHERE id = ?)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check team existence: %w", err)
	}
	return exists, nil
}

// TeamHasMatches reports whether any match references the team on either side.
func (db *DB) TeamHasMatches(ctx context.Context, id uuid.UUID) (bool, error) {
	var has bool
	err := db.conn.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM matches WHERE home_team_id = ? OR away_team_id = ?)`,
		id, id).Scan(&has)
	if err != nil {
		return false, fmt.Errorf("failed to check team matches: %w", err)
	}
	return has, nil
}

func scanTeam(row rowScanner) (*models.Team, error) {
	var t models.Team
	err := row.Scan(&t.ID, &t.Name, &t.LogoURL, &t.FoundedYear, &t.HomeStadium,
		&t.Description, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &t, nil
}
