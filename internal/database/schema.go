// ClubAPI - Espoir Sportif de Chorbane Club Backend
// Copyright 2026 ESC Chorbane
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/esc-chorbane/clubapi

package database

import (
	"context"
	"fmt"
	"time"
)

// schemaContext returns a context with timeout for schema operations.
func schemaContext() (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), 30*time.Second)
}

// createTables creates the tables if they do not exist. All columns are
// defined up front; there is no migration machinery.
func (db *DB) createTables() error {
	ctx, cancel := schemaContext()
	defer cancel()

	for _, query := range tableCreationQueries {
		if _, err := db.conn.ExecContext(ctx, query); err != nil {
			return fmt.Errorf("failed to execute schema statement: %w", err)
		}
	}
	return nil
}

// tableCreationQueries holds the DDL. References between tables are NOT
// declared as foreign keys: DuckDB rejects deleting a parent row even when
// its children were removed or detached earlier in the same transaction,
// which would break every delete path here. Referential integrity is
// enforced by the services, which pre-check references on write and remove
// or detach dependents explicitly on delete.
var tableCreationQueries = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL UNIQUE,
		password_hash TEXT NOT NULL,
		role TEXT NOT NULL DEFAULT 'user',
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS teams (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		logo_url TEXT,
		founded_year INTEGER,
		home_stadium TEXT,
		description TEXT,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS players (
		id UUID PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		jersey_number INTEGER,
		position TEXT,
		birth_date DATE,
		nationality TEXT,
		photo_url TEXT,
		bio TEXT,
		height DOUBLE,
		weight DOUBLE,
		team_id UUID,
		category TEXT,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS matches (
		id UUID PRIMARY KEY,
		date TIMESTAMP NOT NULL,
		home_team_id UUID NOT NULL,
		away_team_id UUID NOT NULL,
		home_score INTEGER,
		away_score INTEGER,
		venue TEXT,
		match_type TEXT,
		season TEXT,
		status TEXT NOT NULL DEFAULT 'upcoming',
		summary TEXT,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS match_player_stats (
		player_id UUID NOT NULL,
		match_id UUID NOT NULL,
		goals INTEGER NOT NULL DEFAULT 0,
		assists INTEGER NOT NULL DEFAULT 0,
		yellow_cards INTEGER NOT NULL DEFAULT 0,
		red_cards INTEGER NOT NULL DEFAULT 0,
		minutes_played INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (player_id, match_id)
	)`,

	`CREATE TABLE IF NOT EXISTS staff_members (
		id UUID PRIMARY KEY,
		first_name TEXT NOT NULL,
		last_name TEXT NOT NULL,
		role TEXT NOT NULL,
		photo_url TEXT,
		bio TEXT,
		start_date DATE,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS news (
		id UUID PRIMARY KEY,
		title TEXT NOT NULL,
		content TEXT NOT NULL,
		image_url TEXT,
		published_date TIMESTAMP NOT NULL,
		category TEXT,
		author_id UUID,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS partners (
		id UUID PRIMARY KEY,
		name TEXT NOT NULL,
		logo_url TEXT,
		website_url TEXT,
		description TEXT,
		partnership_level TEXT,
		created_at TIMESTAMP NOT NULL,
		updated_at TIMESTAMP NOT NULL
	)`,

	`CREATE INDEX IF NOT EXISTS idx_players_team ON players(team_id)`,
	`CREATE INDEX IF NOT EXISTS idx_matches_date ON matches(date)`,
	`CREATE INDEX IF NOT EXISTS idx_matches_home ON matches(home_team_id)`,
	`CREATE INDEX IF NOT EXISTS idx_matches_away ON matches(away_team_id)`,
	`CREATE INDEX IF NOT EXISTS idx_news_published ON news(published_date)`,
}
