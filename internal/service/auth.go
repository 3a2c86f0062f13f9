// ClubAPI - Espoir Sportif de Chorbane Club Backend
// Copyright 2026 ESC Chorbane
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/esc-chorbane/clubapi

package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/esc-chorbane/clubapi/internal/auth"
	"github.com/esc-chorbane/clubapi/internal/database"
	"github.com/esc-chorbane/clubapi/internal/logging"
	"github.com/esc-chorbane/clubapi/internal/models"
	"github.com/esc-chorbane/clubapi/internal/validation"
)

// UserStore is the persistence surface the auth service needs.
type UserStore interface {
	CreateUser(ctx context.Context, u *models.User) error
	GetUser(ctx context.Context, id uuid.UUID) (*models.User, error)
	GetUserByLogin(ctx context.Context, identifier string) (*models.User, error)
	UsernameOrEmailTaken(ctx context.Context, username, email string) (bool, error)
}

// AuthService handles registration, login and identity lookups.
type AuthService struct {
	store UserStore
	jwt   *auth.JWTManager
}

// NewAuthService creates the auth service.
func NewAuthService(store UserStore, jwt *auth.JWTManager) *AuthService {
	return &AuthService{store: store, jwt: jwt}
}

// Register creates an account and returns it with a fresh access token.
// Username and email must both be unused.
func (s *AuthService) Register(ctx context.Context, req *models.RegisterRequest) (*models.AuthResponse, error) {
	if verr := validation.ValidateStruct(req); verr != nil {
		return nil, validationFailed(verr)
	}

	taken, err := s.store.UsernameOrEmailTaken(ctx, req.Username, req.Email)
	if err != nil {
		return nil, internalError("check username/email", err)
	}
	if taken {
		return nil, conflictError("Username or email already registered")
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, internalFailure("hash password", err)
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	now := time.Now().UTC()
	user := &models.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, internalError("create user", err)
	}

	logging.Info().Str("username", user.Username).Str("role", user.Role).Msg("User registered")
	return s.authResponse(user)
}

// Login authenticates by username or email. Unknown identifier and wrong
// password produce the same error so the response never confirms whether
// an account exists.
func (s *AuthService) Login(ctx context.Context, req *models.LoginRequest) (*models.AuthResponse, error) {
	if verr := validation.ValidateStruct(req); verr != nil {
		return nil, validationFailed(verr)
	}

	user, err := s.store.GetUserByLogin(ctx, req.Identifier)
	if err != nil {
		if errors.Is(err, database.ErrNotFound) {
			return nil, authenticationError("Invalid credentials")
		}
		return nil, internalError("get user by login", err)
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, authenticationError("Invalid credentials")
	}

	logging.Info().Str("username", user.Username).Msg("User logged in")
	return s.authResponse(user)
}

// Me returns the account behind an authenticated token.
func (s *AuthService) Me(ctx context.Context, userID uuid.UUID) (*models.UserView, error) {
	user, err := s.store.GetUser(ctx, userID)
	if err != nil {
		return nil, storeError("User", "get user", err)
	}
	view := models.NewUserView(user)
	return &view, nil
}

func (s *AuthService) authResponse(user *models.User) (*models.AuthResponse, error) {
	token, expiresAt, err := s.jwt.GenerateToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, internalFailure("generate token", err)
	}
	return &models.AuthResponse{
		User:        models.NewUserView(user),
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
