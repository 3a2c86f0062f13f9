// ClubAPI - Espoir Sportif de Chorbane Club Backend
// Copyright 2026 ESC Chorbane
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/esc-chorbane/clubapi

package models

import (
	"time"

	"github.com/google/uuid"
)

// Wire representations. Each entity that appears nested inside another has
// two shapes: a full view used at the top level and a reference view used
// when embedded. The reference shape omits the back-pointing collection so
// Team<->Player embedding cannot cycle.

// dateOnly is the wire format for birth dates and start dates.
const dateOnly = "2006-01-02"

// UserView is the public shape of a User. It has no password field of any
// kind; the hash never leaves the models/database packages.
type UserView struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// UserRef is the minimal author reference embedded in news items.
type UserRef struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
}

// TeamRef is a Team without its player list, for embedding in players
// and matches.
type TeamRef struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	LogoURL     *string   `json:"logo_url"`
	FoundedYear *int      `json:"founded_year"`
	HomeStadium *string   `json:"home_stadium"`
	Description *string   `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TeamView is the top-level Team shape: the team plus its players. The
// embedded players carry no team reference back.
type TeamView struct {
	TeamRef
	Players []PlayerRef `json:"players"`
}

// PlayerRef is a Player without its embedded team.
type PlayerRef struct {
	ID           uuid.UUID  `json:"id"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	JerseyNumber *int       `json:"jersey_number"`
	Position     *string    `json:"position"`
	BirthDate    *string    `json:"birth_date"`
	Nationality  *string    `json:"nationality"`
	PhotoURL     *string    `json:"photo_url"`
	Bio          *string    `json:"bio"`
	Height       *float64   `json:"height"`
	Weight       *float64   `json:"weight"`
	TeamID       *uuid.UUID `json:"team_id"`
	Category     *string    `json:"category"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// PlayerView is the top-level Player shape: the player plus a shallow team
// reference (nil when unassigned).
type PlayerView struct {
	PlayerRef
	Team *TeamRef `json:"team"`
}

// StatsView is one row of the match/player statistics join.
type StatsView struct {
	PlayerID      uuid.UUID `json:"player_id"`
	MatchID       uuid.UUID `json:"match_id"`
	Goals         int       `json:"goals"`
	Assists       int       `json:"assists"`
	YellowCards   int       `json:"yellow_cards"`
	RedCards      int       `json:"red_cards"`
	MinutesPlayed int       `json:"minutes_played"`
}

// MatchView embeds both team references (without player lists) and the
// per-player statistics recorded for the match.
type MatchView struct {
	ID          uuid.UUID   `json:"id"`
	Date        time.Time   `json:"date"`
	HomeTeamID  uuid.UUID   `json:"home_team_id"`
	AwayTeamID  uuid.UUID   `json:"away_team_id"`
	HomeTeam    *TeamRef    `json:"home_team"`
	AwayTeam    *TeamRef    `json:"away_team"`
	HomeScore   *int        `json:"home_score"`
	AwayScore   *int        `json:"away_score"`
	Venue       *string     `json:"venue"`
	MatchType   *string     `json:"match_type"`
	Season      *string     `json:"season"`
	Status      string      `json:"status"`
	Summary     *string     `json:"summary"`
	PlayerStats []StatsView `json:"player_stats"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// StaffView is the single wire shape of a StaffMember.
type StaffView struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Role      string    `json:"role"`
	PhotoURL  *string   `json:"photo_url"`
	Bio       *string   `json:"bio"`
	StartDate *string   `json:"start_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewsView embeds a minimal author reference (nil when the article has no
// author on record).
type NewsView struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Content       string     `json:"content"`
	ImageURL      *string    `json:"image_url"`
	PublishedDate time.Time  `json:"published_date"`
	Category      *string    `json:"category"`
	AuthorID      *uuid.UUID `json:"author_id"`
	Author        *UserRef   `json:"author"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// PartnerView is the single wire shape of a Partner.
type PartnerView struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	LogoURL          *string   `json:"logo_url"`
	WebsiteURL       *string   `json:"website_url"`
	Description      *string   `json:"description"`
	PartnershipLevel *string   `json:"partnership_level"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateOnly)
	return &s
}

// NewUserView builds the public shape of a user.
func NewUserView(u *User) UserView {
	return UserView{
		ID:        u.ID,
		Username:  u.Username,
		Email:     u.Email,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// NewUserRef builds the minimal author reference.
func NewUserRef(u *User) UserRef {
	return UserRef{ID: u.ID, Username: u.Username}
}

// NewTeamRef builds the embeddable team shape.
func NewTeamRef(t *Team) TeamRef {
	return TeamRef{
		ID:          t.ID,
		Name:        t.Name,
		LogoURL:     t.LogoURL,
		FoundedYear: t.FoundedYear,
		HomeStadium: t.HomeStadium,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

// NewTeamView builds the top-level team shape with its roster.
func NewTeamView(t *Team, players []*Player) TeamView {
	refs := make([]PlayerRef, 0, len(players))
	for _, p := range players {
		refs = append(refs, NewPlayerRef(p))
	}
	return TeamView{TeamRef: NewTeamRef(t), Players: refs}
}

// NewPlayerRef builds the embeddable player shape.
func NewPlayerRef(p *Player) PlayerRef {
	return PlayerRef{
		ID:           p.ID,
		FirstName:    p.FirstName,
		LastName:     p.LastName,
		JerseyNumber: p.JerseyNumber,
		Position:     p.Position,
		BirthDate:    formatDate(p.BirthDate),
		Nationality:  p.Nationality,
		PhotoURL:     p.PhotoURL,
		Bio:          p.Bio,
		Height:       p.Height,
		Weight:       p.Weight,
		TeamID:       p.TeamID,
		Category:     p.Category,
		CreatedAt:    p.CreatedAt,
		UpdatedAt:    p.UpdatedAt,
	}
}

// NewPlayerView builds the top-level player shape. team may be nil for
// unassigned players.
func NewPlayerView(p *Player, team *Team) PlayerView {
	view := PlayerView{PlayerRef: NewPlayerRef(p)}
	if team != nil {
		ref := NewTeamRef(team)
		view.Team = &ref
	}
	return view
}

// NewStatsView builds one statistics row.
func NewStatsView(s *MatchPlayerStats) StatsView {
	return StatsView{
		PlayerID:      s.PlayerID,
		MatchID:       s.MatchID,
		Goals:         s.Goals,
		Assists:       s.Assists,
		YellowCards:   s.YellowCards,
		RedCards:      s.RedCards,
		MinutesPlayed: s.MinutesPlayed,
	}
}

// NewMatchView builds the top-level match shape. The team arguments may be
// nil if lookup failed; ids are always present on the view regardless.
func NewMatchView(m *Match, home, away *Team, stats []*MatchPlayerStats) MatchView {
	view := MatchView{
		ID:          m.ID,
		Date:        m.Date,
		HomeTeamID:  m.HomeTeamID,
		AwayTeamID:  m.AwayTeamID,
		HomeScore:   m.HomeScore,
		AwayScore:   m.AwayScore,
		Venue:       m.Venue,
		MatchType:   m.MatchType,
		Season:      m.Season,
		Status:      m.Status,
		Summary:     m.Summary,
		PlayerStats: make([]StatsView, 0, len(stats)),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if home != nil {
		ref := NewTeamRef(home)
		view.HomeTeam = &ref
	}
	if away != nil {
		ref := NewTeamRef(away)
		view.AwayTeam = &ref
	}
	for _, s := range stats {
		view.PlayerStats = append(view.PlayerStats, NewStatsView(s))
	}
	return view
}

// NewStaffView builds the staff member wire shape.
func NewStaffView(s *StaffMember) StaffView {
	return StaffView{
		ID:        s.ID,
		FirstName: s.FirstName,
		LastName:  s.LastName,
		Role:      s.Role,
		PhotoURL:  s.PhotoURL,
		Bio:       s.Bio,
		StartDate: formatDate(s.StartDate),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// NewNewsView builds the news wire shape. author may be nil.
func NewNewsView(n *News, author *User) NewsView {
	view := NewsView{
		ID:            n.ID,
		Title:         n.Title,
		Content:       n.Content,
		ImageURL:      n.ImageURL,
		PublishedDate: n.PublishedDate,
		Category:      n.Category,
		AuthorID:      n.AuthorID,
		CreatedAt:     n.CreatedAt,
		UpdatedAt:     n.UpdatedAt,
	}
	if author != nil {
		ref := NewUserRef(author)
		view.Author = &ref
	}
	return view
}

// NewPartnerView builds the partner wire shape.
func NewPartnerView(p *Partner) PartnerView {
	return PartnerView{
		ID:               p.ID,
		Name:             p.Name,
		LogoURL:          p.LogoURL,
		WebsiteURL:       p.WebsiteURL,
		Description:      p.Description,
		PartnershipLevel: p.PartnershipLevel,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}
}
