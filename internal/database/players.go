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

const playerColumns = `id, first_name, last_name, jersey_number, position, birth_date,
	nationality, photo_url, bio, height, weight, team_id, category, created_at, updated_at`

// PlayerFilter narrows ListPlayers. Nil fields mean no constraint.
type PlayerFilter struct {
	Category *string
	TeamID   *uuid.UUID
}

// CreatePlayer inserts a new player row.
func (db *DB) CreatePlayer(ctx context.Context, p *models.Player) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO players (`+playerColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.FirstName, p.LastName, p.JerseyNumber, p.Position, p.BirthDate,
		p.Nationality, p.PhotoURL, p.Bio, p.Height, p.Weight, p.TeamID, p.Category,
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert player: %w", err)
	}
	return nil
}

// GetPlayer returns the player with the given id, or ErrNotFound.
func (db *DB) GetPlayer(ctx context.Context, id uuid.UUID) (*models.Player, error) {
	return scanPlayer(db.conn.QueryRowContext(ctx,
		`SELECT `+playerColumns+` FROM players WHERE id = ?`, id))
}

// ListPlayers returns players matching the filter, ordered by last then
// first name.
func (db *DB) ListPlayers(ctx context.Context, filter PlayerFilter) ([]*models.Player, error) {
	query := `SELECT ` + playerColumns + ` FROM players`
	var (
		conds []string
		args  []interface{}
	)
	if filter.Category != nil {
		conds = append(conds, `category = ?`)
		args = append(args, *filter.Category)
	}
	if filter.TeamID != nil {
		conds = append(conds, `team_id = ?`)
		args = append(args, *filter.TeamID)
	}
	query += whereClause(conds) + ` ORDER BY last_name, first_name`

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query players: %w", err)
	}
	defer rows.Close()

	players := make([]*models.Player, 0)
	for rows.Next() {
		p, err := scanPlayer(rows)
		if err != nil {
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}

// ListPlayersByTeam returns all players currently assigned to a team.
func (db *DB) ListPlayersByTeam(ctx context.Context, teamID uuid.UUID) ([]*models.Player, error) {
	return db.ListPlayers(ctx, PlayerFilter{TeamID: &teamID})
}

// UpdatePlayer writes all mutable columns of an existing player.
func (db *DB) UpdatePlayer(ctx context.Context, p *models.Player) error {
	res, err := db.conn.ExecContext(ctx,
		`UPDATE players
		 SET first_name = ?, last_name = ?, jersey_number = ?, position = ?, birth_date = ?,
		     nationality = ?, photo_url = ?, bio = ?, height = ?, weight = ?, team_id = ?,
		     category = ?, updated_at = ?
		 WHERE id = ?`,
		p.FirstName, p.LastName, p.JerseyNumber, p.Position, p.BirthDate,
		p.Nationality, p.PhotoURL, p.Bio, p.Height, p.Weight, p.TeamID,
		p.Category, p.UpdatedAt, p.ID,
	)
	return affectedOrNotFound(res, err)
}

// DeletePlayer removes a player together with its per-match stat lines.
func (db *DB) DeletePlayer(ctx context.Context, id uuid.UUID) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM match_player_stats WHERE player_id = ?`, id); err != nil {
		return fmt.Errorf("failed to delete player stats: %w", err)
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM players WHERE id = ?`, id)
	if err := affectedOrNotFound(res, err); err != nil {
		return err
	}

	return tx.Commit()
}

// PlayerExists reports whether a player row with the given id exists.
func (db *DB) PlayerExists(ctx context.Context, id uuid.UUID) (bool, error) {
	var exists bool
	err := db.conn.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM players WHERE id = ?)`, id).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check player existence: %w", err)
	}
	return exists, nil
}

func scanPlayer(row rowScanner) (*models.Player, error) {
	var p models.Player
	err := row.Scan(&p.ID, &p.FirstName, &p.LastName, &p.JerseyNumber, &p.Position,
		&p.BirthDate, &p.Nationality, &p.PhotoURL, &p.Bio, &p.Height, &p.Weight,
		&p.TeamID, &p.Category, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}
