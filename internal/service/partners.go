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

// PartnerStore is the persistence surface the partner service needs.
type PartnerStore interface {
	CreatePartner(ctx context.Context, p *models.Partner) error
	GetPartner(ctx context.Context, id uuid.UUID) (*models.Partner, error)
	ListPartners(ctx context.Context) ([]*models.Partner, error)
	UpdatePartner(ctx context.Context, p *models.Partner) error
	DeletePartner(ctx context.Context, id uuid.UUID) error
}

// PartnerService implements partner CRUD.
type PartnerService struct {
	store PartnerStore
}

// NewPartnerService creates the partner service.
func NewPartnerService(store PartnerStore) *PartnerService {
	return &PartnerService{store: store}
}

// Create stores a new partner.
func (s *PartnerService) Create(ctx context.Context, req *models.PartnerCreateRequest) (*models.PartnerView, error) {
	if verr := validation.ValidateStruct(req); verr != nil {
		return nil, validationFailed(verr)
	}

	now := time.Now().UTC()
	partner := &models.Partner{
		ID:               uuid.New(),
		Name:             req.Name,
		LogoURL:          req.LogoURL,
		WebsiteURL:       req.WebsiteURL,
		Description:      req.Description,
		PartnershipLevel: req.PartnershipLevel,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
	if err := s.store.CreatePartner(ctx, partner); err != nil {
		return nil, internalError("create partner", err)
	}

	logging.Info().Str("partner_id", partner.ID.String()).Str("name", partner.Name).Msg("Partner created")
	view := models.NewPartnerView(partner)
	return &view, nil
}

// Get returns one partner.
func (s *PartnerService) Get(ctx context.Context, id uuid.UUID) (*models.PartnerView, error) {
	partner, err := s.store.GetPartner(ctx, id)
	if err != nil {
		return nil, storeError("Partner", "get partner", err)
	}
	view := models.NewPartnerView(partner)
	return &view, nil
}

// List returns all partners ordered by name.
func (s *PartnerService) List(ctx context.Context) ([]models.PartnerView, error) {
	partners, err := s.store.ListPartners(ctx)
	if err != nil {
		return nil, internalError("list partners", err)
	}

	views := make([]models.PartnerView, 0, len(partners))
	for _, partner := range partners {
		views = append(views, models.NewPartnerView(partner))
	}
	return views, nil
}

// Update applies a partial update and returns the fresh view.
func (s *PartnerService) Update(ctx context.Context, id uuid.UUID, patch *models.PartnerPatch) (*models.PartnerView, error) {
	if verr := validation.ValidateStruct(patch); verr != nil {
		return nil, validationFailed(verr)
	}

	partner, err := s.store.GetPartner(ctx, id)
	if err != nil {
		return nil, storeError("Partner", "get partner", err)
	}

	applyPartnerPatch(partner, patch)
	partner.UpdatedAt = time.Now().UTC()

	if err := s.store.UpdatePartner(ctx, partner); err != nil {
		return nil, storeError("Partner", "update partner", err)
	}
	view := models.NewPartnerView(partner)
	return &view, nil
}

// Delete removes a partner.
func (s *PartnerService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.store.DeletePartner(ctx, id); err != nil {
		return storeError("Partner", "delete partner", err)
	}
	logging.Info().Str("partner_id", id.String()).Msg("Partner deleted")
	return nil
}

func applyPartnerPatch(pt *models.Partner, p *models.PartnerPatch) {
	if p.Name != nil {
		pt.Name = *p.Name
	}
	if p.LogoURL != nil {
		pt.LogoURL = p.LogoURL
	}
	if p.WebsiteURL != nil {
		pt.WebsiteURL = p.WebsiteURL
	}
	if p.Description != nil {
		pt.Description = p.Description
	}
	if p.PartnershipLevel != nil {
		pt.PartnershipLevel = p.PartnershipLevel
	}
}
