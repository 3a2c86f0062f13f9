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

// StaffStore is the persistence surface the staff service needs.
type StaffStore interface {
	CreateStaffMember(ctx context.Context, s *models.StaffMember) error
	GetStaffMember(ctx context.Context, id uuid.UUID) (*models.StaffMember, error)
	ListStaffMembers(ctx context.Context, role *string) ([]*models.StaffMember, error)
	UpdateStaffMember(ctx context.Context, s *models.StaffMember) error
	DeleteStaffMember(ctx context.Context, id uuid.UUID) error
}

// StaffService implements staff member CRUD.
type StaffService struct {
	store StaffStore
}

// NewStaffService creates the staff service.
func NewStaffService(store StaffStore) *StaffService {
	return &StaffService{store: store}
}

// Create stores a new staff member.
func (s *StaffService) Create(ctx context.Context, req *models.StaffCreateRequest) (*models.StaffView, error) {
	if verr := validation.ValidateStruct(req); verr != nil {
		return nil, validationFailed(verr)
	}

	startDate, perr := parseOptionalDate(req.StartDate, "start_date")
	if perr != nil {
		return nil, perr
	}

	now := time.Now().UTC()
	member := &models.StaffMember{
		ID:        uuid.New(),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      req.Role,
		PhotoURL:  req.PhotoURL,
		Bio:       req.Bio,
		StartDate: startDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.CreateStaffMember(ctx, member); err != nil {
		return nil, internalError("create staff member", err)
	}

	logging.Info().
		Str("staff_id", member.ID.String()).
		Str("role", member.Role).
		Msg("Staff member created")
	view := models.NewStaffView(member)
	return &view, nil
}

// Get returns one staff member.
func (s *StaffService) Get(ctx context.Context, id uuid.UUID) (*models.StaffView, error) {
	member, err := s.store.GetStaffMember(ctx, id)
	if err != nil {
		return nil, storeError("Staff member", "get staff member", err)
	}
	view := models.NewStaffView(member)
	return &view, nil
}

// List returns staff members, optionally restricted to one role.
func (s *StaffService) List(ctx context.Context, role *string) ([]models.StaffView, error) {
	members, err := s.store.ListStaffMembers(ctx, role)
	if err != nil {
		return nil, internalError("list staff members", err)
	}

	views := make([]models.StaffView, 0, len(members))
	for _, member := range members {
		views = append(views, models.NewStaffView(member))
	}
	return views, nil
}

// Update applies a partial update and returns the fresh view.
func (s *StaffService) Update(ctx context.Context, id uuid.UUID, patch *models.StaffPatch) (*models.StaffView, error) {
	if verr := validation.ValidateStruct(patch); verr != nil {
		return nil, validationFailed(verr)
	}

	member, err := s.store.GetStaffMember(ctx, id)
	if err != nil {
		return nil, storeError("Staff member", "get staff member", err)
	}

	if err := applyStaffPatch(member, patch); err != nil {
		return nil, err
	}
	member.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdateStaffMember(ctx, member); err != nil {
		return nil, storeError("Staff member", "update staff member", err)
	}
	view := models.NewStaffView(member)
	return &view, nil
}

// Delete removes a staff member.
func (s *StaffService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeleteStaffMember(ctx, id); err != nil {
		return storeError("Staff member", "delete staff member", err)
	}
	logging.Info().Str("staff_id", id.String()).Msg("Staff member deleted")
	return nil
}

func applyStaffPatch(m *models.StaffMember, p *models.StaffPatch) error {
	if p.FirstName != nil {
		m.FirstName = *p.FirstName
	}
	if p.LastName != nil {
		m.LastName = *p.LastName
	}
	if p.Role != nil {
		m.Role = *p.Role
	}
	if p.PhotoURL != nil {
		m.PhotoURL = p.PhotoURL
	}
	if p.Bio != nil {
		m.Bio = p.Bio
	}
	if p.StartDate != nil {
		startDate, err := parseOptionalDate(p.StartDate, "start_date")
		if err != nil {
			return err
		}
		m.StartDate = startDate
	}
	return nil
}
