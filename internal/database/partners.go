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

const partnerColumns = `id, name, logo_url, website_url, description, partnership_level, created_at, updated_at`

// CreatePartner inserts a new partner row.
func (db *DB) CreatePartner(ctx context.Context, p *models.Partner) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO partners (`+partnerColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.ID, p.Name, p.LogoURL, p.WebsiteURL, p.Description, p.PartnershipLevel, p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert partner: %w", err)
	}
	return nil
}

// GetPartner returns the partner with the given id, or ErrNotFound.
func (db *DB) GetPartner(ctx context.Context, id uuid.UUID) (*models.Partner, error) {
	return scanPartner(db.conn.QueryRowContext(ctx,
		`SELECT `+partnerColumns+` FROM partners WHERE id = ?`, id))
}

// ListPartners returns all partners ordered by name.
func (db *DB) ListPartners(ctx context.Context) ([]*models.Partner, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT `+partnerColumns+` FROM partners ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to query partners: %w", err)
	}
	defer rows.Close()

	partners := make([]*models.Partner, 0)
	for rows.Next() {
		p, err := scanPartner(rows)
		if err != nil {
			return nil, err
		}
		partners = append(partners, p)
	}
	return partners, rows.Err()
}

// UpdatePartner writes all mutable columns of an existing partner.
func (db *DB) UpdatePartner(ctx context.Context, p *models.Partner) error {
	res, err := db.conn.ExecContext(ctx,
		`UPDATE partners
		 SET name = ?, logo_url = ?, website_url = ?, description = ?, partnership_level = ?, updated_at = ?
		 WHERE id = ?`,
		p.Name, p.LogoURL, p.WebsiteURL, p.Description, p.PartnershipLevel, p.UpdatedAt, p.ID,
	)
	return affectedOrNotFound(res, err)
}

// DeletePartner removes a partner.
func (db *DB) DeletePartner(ctx context.Context, id uuid.UUID) error {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM partners WHERE id = ?`, id)
	return affectedOrNotFound(res, err)
}

func scanPartner(row rowScanner) (*models.Partner, error) {
	var p models.Partner
	err := row.Scan(&p.ID, &p.Name, &p.LogoURL, &p.WebsiteURL, &p.Description,
		&p.PartnershipLevel, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &p, nil
}
