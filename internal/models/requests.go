// ClubAPI - Espoir Sportif de Chorbane Club Backend
// Copyright 2026 ESC Chorbane
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/esc-chorbane/clubapi

package models

import (
	"time"
)

// Request payloads. Create payloads enforce the full rule set; patch
// payloads are explicit per-entity structs enumerating every updatable
// field as a pointer. A nil pointer means "leave unchanged"; a present
// field must satisfy the same rules as on create (omitempty guards).
//
// Ids and dates arrive as strings ("uuid4", RFC3339, or 2006-01-02) and are
// parsed by the services after validation. Unknown JSON fields are ignored
// by the decoder, matching the API's documented leniency.
//
// Clearing a nullable reference: send the field with an empty string
// (e.g. {"team_id": ""} unassigns a player). These reference fields carry
// no uuid4 tag — the validator would reject the clearing empty string, so
// format and existence are both checked by the owning service.

// rfc3339 is the validator layout for datetime fields.
const rfc3339 = "2006-01-02T15:04:05Z07:00"

// RegisterRequest creates a user account.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=80"`
	Email    string `json:"email" validate:"required,email,max=120"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"omitempty,oneof=admin coach player user"`
}

// LoginRequest authenticates by username or email plus password.
type LoginRequest struct {
	// Identifier is the username or email. The legacy "username" key is
	// kept on the wire.
	Identifier string `json:"username" validate:"required"`
	Password   string `json:"password" validate:"required"`
}

// TeamCreateRequest creates a team.
type TeamCreateRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	LogoURL     *string `json:"logo_url" validate:"omitempty,max=255"`
	FoundedYear *int    `json:"founded_year" validate:"omitempty,min=1800,max=2100"`
	HomeStadium *string `json:"home_stadium" validate:"omitempty,max=100"`
	Description *string `json:"description"`
}

// TeamPatch updates a team; only present fields change.
type TeamPatch struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=100"`
	LogoURL     *string `json:"logo_url" validate:"omitempty,max=255"`
	FoundedYear *int    `json:"founded_year" validate:"omitempty,min=1800,max=2100"`
	HomeStadium *string `json:"home_stadium" validate:"omitempty,max=100"`
	Description *string `json:"description"`
}

// PlayerCreateRequest creates a player. TeamID may be empty for an
// unassigned player.
type PlayerCreateRequest struct {
	FirstName    string   `json:"first_name" validate:"required,max=50"`
	LastName     string   `json:"last_name" validate:"required,max=50"`
	JerseyNumber *int     `json:"jersey_number" validate:"omitempty,min=0,max=99"`
	Position     *string  `json:"position" validate:"omitempty,oneof=goalkeeper defender midfielder forward"`
	BirthDate    *string  `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Nationality  *string  `json:"nationality" validate:"omitempty,max=50"`
	PhotoURL     *string  `json:"photo_url" validate:"omitempty,max=255"`
	Bio          *string  `json:"bio"`
	Height       *float64 `json:"height" validate:"omitempty,gt=0"`
	Weight       *float64 `json:"weight" validate:"omitempty,gt=0"`
	TeamID       *string  `json:"team_id"`
	Category     *string  `json:"category" validate:"omitempty,max=20"`
}

// PlayerPatch updates a player; only present fields change.
type PlayerPatch struct {
	FirstName    *string  `json:"first_name" validate:"omitempty,min=1,max=50"`
	LastName     *string  `json:"last_name" validate:"omitempty,min=1,max=50"`
	JerseyNumber *int     `json:"jersey_number" validate:"omitempty,min=0,max=99"`
	Position     *string  `json:"position" validate:"omitempty,oneof=goalkeeper defender midfielder forward"`
	BirthDate    *string  `json:"birth_date" validate:"omitempty,datetime=2006-01-02"`
	Nationality  *string  `json:"nationality" validate:"omitempty,max=50"`
	PhotoURL     *string  `json:"photo_url" validate:"omitempty,max=255"`
	Bio          *string  `json:"bio"`
	Height       *float64 `json:"height" validate:"omitempty,gt=0"`
	Weight       *float64 `json:"weight" validate:"omitempty,gt=0"`
	TeamID       *string  `json:"team_id"`
	Category     *string  `json:"category" validate:"omitempty,max=20"`
}

// MatchCreateRequest creates a match. Both team ids are required and a
// team cannot play itself.
type MatchCreateRequest struct {
	Date       string  `json:"date" validate:"required,datetime=2006-01-02T15:04:05Z07:00"`
	HomeTeamID string  `json:"home_team_id" validate:"required,uuid4"`
	AwayTeamID string  `json:"away_team_id" validate:"required,uuid4,nefield=HomeTeamID"`
	HomeScore  *int    `json:"home_score" validate:"omitempty,min=0"`
	AwayScore  *int    `json:"away_score" validate:"omitempty,min=0"`
	Venue      *string `json:"venue" validate:"omitempty,max=100"`
	MatchType  *string `json:"match_type" validate:"omitempty,oneof=championship cup friendly"`
	Season     *string `json:"season" validate:"omitempty,max=20"`
	Status     string  `json:"status" validate:"omitempty,oneof=upcoming played cancelled"`
	Summary    *string `json:"summary"`
}

// MatchPatch updates a match; only present fields change. Team ids stay
// subject to the no-self-play rule when both end up equal after merge,
// which the service checks against the stored row.
type MatchPatch struct {
	Date       *string `json:"date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	HomeTeamID *string `json:"home_team_id" validate:"omitempty,uuid4"`
	AwayTeamID *string `json:"away_team_id" validate:"omitempty,uuid4"`
	HomeScore  *int    `json:"home_score" validate:"omitempty,min=0"`
	AwayScore  *int    `json:"away_score" validate:"omitempty,min=0"`
	Venue      *string `json:"venue" validate:"omitempty,max=100"`
	MatchType  *string `json:"match_type" validate:"omitempty,oneof=championship cup friendly"`
	Season     *string `json:"season" validate:"omitempty,max=20"`
	Status     *string `json:"status" validate:"omitempty,oneof=upcoming played cancelled"`
	Summary    *string `json:"summary"`
}

// StatsUpsertRequest records or replaces one player's statistics line for
// a match.
type StatsUpsertRequest struct {
	Goals         int `json:"goals" validate:"min=0"`
	Assists       int `json:"assists" validate:"min=0"`
	YellowCards   int `json:"yellow_cards" validate:"min=0,max=2"`
	RedCards      int `json:"red_cards" validate:"min=0,max=1"`
	MinutesPlayed int `json:"minutes_played" validate:"min=0,max=150"`
}

// StaffCreateRequest creates a staff member.
type StaffCreateRequest struct {
	FirstName string  `json:"first_name" validate:"required,max=50"`
	LastName  string  `json:"last_name" validate:"required,max=50"`
	Role      string  `json:"role" validate:"required,max=50"`
	PhotoURL  *string `json:"photo_url" validate:"omitempty,max=255"`
	Bio       *string `json:"bio"`
	StartDate *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
}

// StaffPatch updates a staff member; only present fields change.
type StaffPatch struct {
	FirstName *string `json:"first_name" validate:"omitempty,min=1,max=50"`
	LastName  *string `json:"last_name" validate:"omitempty,min=1,max=50"`
	Role      *string `json:"role" validate:"omitempty,min=1,max=50"`
	PhotoURL  *string `json:"photo_url" validate:"omitempty,max=255"`
	Bio       *string `json:"bio"`
	StartDate *string `json:"start_date" validate:"omitempty,datetime=2006-01-02"`
}

// NewsCreateRequest creates a news item. AuthorID defaults to the
// authenticated user when omitted.
type NewsCreateRequest struct {
	Title         string  `json:"title" validate:"required,max=200"`
	Content       string  `json:"content" validate:"required"`
	ImageURL      *string `json:"image_url" validate:"omitempty,max=255"`
	PublishedDate *string `json:"published_date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Category      *string `json:"category" validate:"omitempty,max=50"`
	AuthorID      *string `json:"author_id"`
}

// NewsPatch updates a news item; only present fields change.
type NewsPatch struct {
	Title         *string `json:"title" validate:"omitempty,min=1,max=200"`
	Content       *string `json:"content" validate:"omitempty,min=1"`
	ImageURL      *string `json:"image_url" validate:"omitempty,max=255"`
	PublishedDate *string `json:"published_date" validate:"omitempty,datetime=2006-01-02T15:04:05Z07:00"`
	Category      *string `json:"category" validate:"omitempty,max=50"`
	AuthorID      *string `json:"author_id"`
}

// PartnerCreateRequest creates a partner.
type PartnerCreateRequest struct {
	Name             string  `json:"name" validate:"required,max=100"`
	LogoURL          *string `json:"logo_url" validate:"omitempty,max=255"`
	WebsiteURL       *string `json:"website_url" validate:"omitempty,max=255"`
	Description      *string `json:"description"`
	PartnershipLevel *string `json:"partnership_level" validate:"omitempty,max=50"`
}

// PartnerPatch updates a partner; only present fields change.
type PartnerPatch struct {
	Name             *string `json:"name" validate:"omitempty,min=1,max=100"`
	LogoURL          *string `json:"logo_url" validate:"omitempty,max=255"`
	WebsiteURL       *string `json:"website_url" validate:"omitempty,max=255"`
	Description      *string `json:"description"`
	PartnershipLevel *string `json:"partnership_level" validate:"omitempty,max=50"`
}

// ParseDateOnly parses a 2006-01-02 wire date. Callers validate the format
// first; the error path covers direct (non-HTTP) users of the services.
func ParseDateOnly(s string) (time.Time, error) {
	return time.Parse(dateOnly, s)
}

// ParseDateTime parses an RFC3339 wire timestamp.
func ParseDateTime(s string) (time.Time, error) {
	return time.Parse(rfc3339, s)
}
