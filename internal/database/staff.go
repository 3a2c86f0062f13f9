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

const staffColumns = `id, first_name, last_name, role, photo_url, bio, start_date, created_at, updated_at`

// CreateStaffMember inserts a new staff row.
func (db *DB) CreateStaffMember(ctx context.Context, s *models.StaffMember) error {
	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO staff_members (`+staffColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.FirstName, s.LastName, s.Role, s.PhotoURL, s.Bio, s.StartDate, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert staff member: %w", err)
	}
	return nil
}

// GetStaffMember returns the staff member with the given id, or ErrNotFound.
func (db *DB) GetStaffMember(ctx context.Context, id uuid.UUID) (*models.StaffMember, error) {
	return scanStaffMember(db.conn.QueryRowContext(ctx,
		`SELECT `+staffColumns+` FROM staff_members WHERE id = ?`, id))
}

// ListStaffMembers returns staff, optionally restricted to one role,
// ordered by last then first name.
func (db *DB) ListStaffMembers(ctx context.Context, role *string) ([]*models.StaffMember, error) {
	query := `SELECT ` + staffColumns + ` FROM staff_members`
	var args []interface{}
	if role != nil {
		query += ` WHERE role = ?`
		args = append(args, *role)
	}
	query += ` ORDER BY last_name, first_name`

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query staff members: %w", err)
	}
	defer rows.Close()

	staff := make([]*models.StaffMember, 0)
	for rows.Next() {
		s, err := scanStaffMember(rows)
		if err != nil {
			return nil, err
		}
		staff = append(staff, s)
	}
	return staff, rows.Err()
}

// UpdateStaffMember writes all mutable columns of an existing staff member.
func (db *DB) UpdateStaffMember(ctx context.Context, s *models.StaffMember) error {
	res, err := db.conn.ExecContext(ctx,
		`UPDATE staff_members
		 SET first_name = ?, last_name = ?, role = ?, photo_url = ?, bio = ?, start_date = ?, updated_at = ?
		 WHERE id = ?`,
		s.FirstName, s.LastName, s.Role, s.PhotoURL, s.Bio, s.StartDate, s.UpdatedAt, s.ID,
	)
	return affectedOrNotFound(res, err)
}

// DeleteStaffMember removes a staff member.
func (db *DB) DeleteStaffMember(ctx context.Context, id uuid.UUID) error {
	res, err := db.conn.ExecContext(ctx, `DELETE FROM staff_members WHERE id = ?`, id)
	return affectedOrNotFound(res, err)
}

func scanStaffMember(row rowScanner) (*models.StaffMember, error) {
	var s models.StaffMember
	err := row.Scan(&s.ID, &s.FirstName, &s.LastName, &s.Role, &s.PhotoURL,
		&s.Bio, &s.StartDate, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		return nil, notFound(err)
	}
	return &s, nil
}
