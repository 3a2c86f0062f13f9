// ClubAPI - Espoir Sportif de Chorbane Club Backend
// Copyright 2026 ESC Chorbane
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/esc-chorbane/clubapi

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/esc-chorbane/clubapi/internal/auth"
	"github.com/esc-chorbane/clubapi/internal/config"
	"github.com/esc-chorbane/clubapi/internal/middleware"
)

// NewRouter assembles the chi router. Reads are public; every write goes
// through the bearer-token middleware. Auth endpoints carry a strict
// per-IP rate limit against credential stuffing.
func NewRouter(h *Handlers, authMW *auth.Middleware, cfg *config.SecurityConfig) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RequestLogger)
	r.Use(middleware.PrometheusMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: false,
		MaxAge:           86400,
	}))

	r.Handle("/metrics", promhttp.Handler())
	r.Get("/api/health", h.Health)

	r.Route("/api/auth", func(r chi.Router) {
		r.Group(func(r chi.Router) {
			r.Use(httprate.LimitByIP(cfg.AuthRateLimit, cfg.AuthRateWindow))
			r.Post("/register", h.Register)
			r.Post("/login", h.Login)
		})
		r.With(authMW.Authenticate).Get("/me", h.Me)
	})

	r.Route("/api/teams", func(r chi.Router) {
		r.Get("/", h.ListTeams)
		r.Get("/{id}", h.GetTeam)
		r.Group(func(r chi.Router) {
			r.Use(authMW.Authenticate)
			r.Post("/", h.CreateTeam)
			r.Put("/{id}", h.UpdateTeam)
			r.Delete("/{id}", h.DeleteTeam)
		})
	})

	r.Route("/api/players", func(r chi.Router) {
		r.Get("/", h.ListPlayers)
		r.Get("/{id}", h.GetPlayer)
		r.Group(func(r chi.Router) {
			r.Use(authMW.Authenticate)
			r.Post("/", h.CreatePlayer)
			r.Put("/{id}", h.UpdatePlayer)
			r.Delete("/{id}", h.DeletePlayer)
		})
	})

	r.Route("/api/matches", func(r chi.Router) {
		r.Get("/", h.ListMatches)
		r.Get("/{id}", h.GetMatch)
		r.Get("/{id}/stats", h.ListMatchStats)
		r.Group(func(r chi.Router) {
			r.Use(authMW.Authenticate)
			r.Post("/", h.CreateMatch)
			r.Put("/{id}", h.UpdateMatch)
			r.Delete("/{id}", h.DeleteMatch)
			r.Put("/{id}/stats/{playerID}", h.UpsertMatchStats)
		})
	})

	r.Route("/api/staff", func(r chi.Router) {
		r.Get("/", h.ListStaff)
		r.Get("/{id}", h.GetStaff)
		r.Group(func(r chi.Router) {
			r.Use(authMW.Authenticate)
			r.Post("/", h.CreateStaff)
			r.Put("/{id}", h.UpdateStaff)
			r.Delete("/{id}", h.DeleteStaff)
		})
	})

	r.Route("/api/news", func(r chi.Router) {
		r.Get("/", h.ListNews)
		r.Get("/{id}", h.GetNews)
		r.Group(func(r chi.Router) {
			r.Use(authMW.Authenticate)
			r.Post("/", h.CreateNews)
			r.Put("/{id}", h.UpdateNews)
			r.Delete("/{id}", h.DeleteNews)
		})
	})

	r.Route("/api/partners", func(r chi.Router) {
		r.Get("/", h.ListPartners)
		r.Get("/{id}", h.GetPartner)
		r.Group(func(r chi.Router) {
			r.Use(authMW.Authenticate)
			r.Post("/", h.CreatePartner)
			r.Put("/{id}", h.UpdatePartner)
			r.Delete("/{id}", h.DeletePartner)
		})
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		respondError(w, notFoundRoute)
	})

	return r
}
