// ClubAPI - Espoir Sportif de Chorbane Club Backend
// Copyright 2026 ESC Chorbane
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/esc-chorbane/clubapi

package api

import (
	"github.com/esc-chorbane/clubapi/internal/database"
	"github.com/esc-chorbane/clubapi/internal/service"
)

// Handlers bundles the per-resource HTTP handlers over the services.
type Handlers struct {
	auth     *service.AuthService
	teams    *service.TeamService
	players  *service.PlayerService
	matches  *service.MatchService
	staff    *service.StaffService
	news     *service.NewsService
	partners *service.PartnerService
	db       *database.DB
}

// NewHandlers wires all services over one store.
func NewHandlers(db *database.DB, auth *service.AuthService) *Handlers {
	return &Handlers{
		auth:     auth,
		teams:    service.NewTeamService(db),
		players:  service.NewPlayerService(db),
		matches:  service.NewMatchService(db),
		staff:    service.NewStaffService(db),
		news:     service.NewNewsService(db),
		partners: service.NewPartnerService(db),
		db:       db,
	}
}
