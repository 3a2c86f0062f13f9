// ClubAPI - Espoir Sportif de Chorbane Club Backend
// Copyright 2026 ESC Chorbane
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/esc-chorbane/clubapi

// Package main is the entry point for the ClubAPI server.
//
// ClubAPI is the backend of the Espoir Sportif de Chorbane club website and
// admin console: teams, players, matches with per-player statistics, staff,
// news and partners, behind JWT-authenticated write access.
//
// The server initializes components in the following order:
//
//  1. Configuration: defaults, optional YAML file, CLUBAPI_* env vars (Koanf v2)
//  2. Logging: zerolog, JSON or console format
//  3. Database: DuckDB file (or in-memory), schema created on first start
//  4. Authentication: HS256 JWT manager and bearer middleware
//  5. HTTP server: chi router, public reads, protected writes, /metrics
//
// Required configuration:
//   - CLUBAPI_SECURITY_JWT_SECRET: 32+ character secret for token signing
//
// The server shuts down gracefully on SIGINT and SIGTERM: it stops
// accepting connections, drains in-flight requests (10s timeout), then
// closes the database.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/esc-chorbane/clubapi/internal/api"
	"github.com/esc-chorbane/clubapi/internal/auth"
	"github.com/esc-chorbane/clubapi/internal/config"
	"github.com/esc-chorbane/clubapi/internal/database"
	"github.com/esc-chorbane/clubapi/internal/logging"
	"github.com/esc-chorbane/clubapi/internal/service"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		// Logging is not configured yet; write the failure plainly.
		logging.Init(logging.Config{Level: "info", Format: "console"})
		logging.Fatal().Err(err).Msg("Failed to load configuration")
	}

	logging.Init(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Caller: cfg.Logging.Caller,
	})

	logging.Info().
		Str("addr", cfg.Server.Addr()).
		Str("database", cfg.Database.Path).
		Msg("Starting ClubAPI")

	db, err := database.New(&cfg.Database)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if err := db.Close(); err != nil {
			logging.Error().Err(err).Msg("Failed to close database")
		}
	}()

	jwtManager, err := auth.NewJWTManager(&cfg.Security)
	if err != nil {
		logging.Fatal().Err(err).Msg("Failed to initialize JWT manager")
	}

	handlers := api.NewHandlers(db, service.NewAuthService(db, jwtManager))
	router := api.NewRouter(handlers, auth.NewMiddleware(jwtManager), &cfg.Security)

	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      router,
		ReadTimeout:  cfg.Server.Timeout,
		WriteTimeout: cfg.Server.Timeout,
		IdleTimeout:  2 * cfg.Server.Timeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logging.Info().Str("addr", srv.Addr).Msg("HTTP server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		logging.Info().Str("signal", sig.String()).Msg("Shutdown signal received")
	case err := <-errCh:
		logging.Error().Err(err).Msg("HTTP server failed")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logging.Error().Err(err).Msg("Graceful shutdown failed")
	}
	logging.Info().Msg("Server stopped")
}
