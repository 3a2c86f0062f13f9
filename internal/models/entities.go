// ClubAPI - Espoir Sportif de Chorbane Club Backend
// Copyright 2026 ESC Chorbane
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/esc-chorbane/clubapi

// Package models defines the stored entities, their wire representations,
// and the request payloads of the ClubAPI.
//
// Stored entities deliberately carry no JSON tags: everything that crosses
// the wire goes through the view types in views.go. This makes it
// structurally impossible to leak internal fields such as User.PasswordHash.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User roles.
const (
	RoleAdmin  = "admin"
	RoleCoach  = "coach"
	RolePlayer = "player"
	RoleUser   = "user"
)

// Player positions.
const (
	PositionGoalkeeper = "goalkeeper"
	PositionDefender   = "defender"
	PositionMidfielder = "midfielder"
	PositionForward    = "forward"
)

// Match statuses.
const (
	MatchStatusUpcoming  = "upcoming"
	MatchStatusPlayed    = "played"
	MatchStatusCancelled = "cancelled"
)

// Match types.
const (
	MatchTypeChampionship = "championship"
	MatchTypeCup          = "cup"
	MatchTypeFriendly     = "friendly"
)

// User is an account with write access to the API.
type User struct {
	ID           uuid.UUID
	Username     string
	Email        string
	PasswordHash string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Team is a football team; the club's own squads and their opponents.
type Team struct {
	ID          uuid.UUID
	Name        string
	LogoURL     *string
	FoundedYear *int
	HomeStadium *string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Player belongs to at most one team (TeamID nil = unassigned).
type Player struct {
	ID           uuid.UUID
	FirstName    string
	LastName     string
	JerseyNumber *int
	Position     *string
	BirthDate    *time.Time
	Nationality  *string
	PhotoURL     *string
	Bio          *string
	Height       *float64
	Weight       *float64
	TeamID       *uuid.UUID
	Category     *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// Match references two existing teams. Scores stay nil until played.
type Match struct {
	ID         uuid.UUID
	Date       time.Time
	HomeTeamID uuid.UUID
	AwayTeamID uuid.UUID
	HomeScore  *int
	AwayScore  *int
	Venue      *string
	MatchType  *string
	Season     *string
	Status     string
	Summary    *string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// MatchPlayerStats is one player's performance line in one match,
// keyed by (PlayerID, MatchID).
type MatchPlayerStats struct {
	PlayerID      uuid.UUID
	MatchID       uuid.UUID
	Goals         int
	Assists       int
	YellowCards   int
	RedCards      int
	MinutesPlayed int
}

// StaffMember is a coach, physio or other non-playing member. Role is
// free text, unlike User.Role.
type StaffMember struct {
	ID        uuid.UUID
	FirstName string
	LastName  string
	Role      string
	PhotoURL  *string
	Bio       *string
	StartDate *time.Time
	CreatedAt time.Time
	UpdatedAt time.Time
}

// News is an article on the club site, optionally attributed to a User.
type News struct {
	ID            uuid.UUID
	Title         string
	Content       string
	ImageURL      *string
	PublishedDate time.Time
	Category      *string
	AuthorID      *uuid.UUID
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Partner is a sponsor or institutional partner of the club.
type Partner struct {
	ID               uuid.UUID
	Name             string
	LogoURL          *string
	WebsiteURL       *string
	Description      *string
	PartnershipLevel *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
}
