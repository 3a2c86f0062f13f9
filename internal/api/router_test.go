// ClubAPI - Espoir Sportif de Chorbane Club Backend
// Copyright 2026 ESC Chorbane
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/esc-chorbane/clubapi

package api

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"

	"github.com/esc-chorbane/clubapi/internal/auth"
	"github.com/esc-chorbane/clubapi/internal/config"
	"github.com/esc-chorbane/clubapi/internal/database"
	"github.com/esc-chorbane/clubapi/internal/models"
	"github.com/esc-chorbane/clubapi/internal/service"
)

// envelope mirrors models.APIResponse with raw data for per-test decoding.
type envelope struct {
	Status  string           `json:"status"`
	Message string           `json:"message"`
	Data    json.RawMessage  `json:"data"`
	Error   *models.APIError `json:"error"`
}

// newTestRouter assembles the full router over an in-memory store.
func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	db, err := database.NewInMemory()
	if err != nil {
		t.Fatalf("NewInMemory() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	secCfg := &config.SecurityConfig{
		JWTSecret:      "test-secret-at-least-32-characters-long",
		TokenTTL:       time.Hour,
		AuthRateLimit:  100,
		AuthRateWindow: time.Minute,
		CORSOrigins:    []string{"*"},
	}
	jwtManager, err := auth.NewJWTManager(secCfg)
	if err != nil {
		t.Fatalf("NewJWTManager() error = %v", err)
	}

	h := NewHandlers(db, service.NewAuthService(db, jwtManager))
	return NewRouter(h, auth.NewMiddleware(jwtManager), secCfg)
}

// doJSON performs one request against the router and decodes the envelope.
func doJSON(t *testing.T, router http.Handler, method, path, token string, body interface{}) (int, envelope) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("Marshal() error = %v", err)
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("%s %s: decode envelope: %v (body %q)", method, path, err, rec.Body.String())
	}
	return rec.Code, env
}

// registerAndLogin creates an account and returns a valid bearer token.
func registerAndLogin(t *testing.T, router http.Handler) string {
	t.Helper()

	status, env := doJSON(t, router, http.MethodPost, "/api/auth/register", "", map[string]string{
		"username": "editor",
		"email":    "editor@example.com",
		"password": "secret123",
	})
	if status != http.StatusCreated {
		t.Fatalf("register status = %d, body %+v", status, env)
	}

	var resp models.AuthResponse
	if err := json.Unmarshal(env.Data, &resp); err != nil {
		t.Fatalf("decode auth response: %v", err)
	}
	if resp.AccessToken == "" {
		t.Fatal("register returned no access token")
	}
	return resp.AccessToken
}

func TestAuthEndpoints(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	// Login with the registered credentials.
	status, env := doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "editor",
		"password": "secret123",
	})
	if status != http.StatusOK || env.Message != "Login successful" {
		t.Errorf("login = %d %q", status, env.Message)
	}

	// Wrong password is a generic 401.
	status, env = doJSON(t, router, http.MethodPost, "/api/auth/login", "", map[string]string{
		"username": "editor",
		"password": "wrong-password",
	})
	if status != http.StatusUnauthorized || env.Error == nil || env.Error.Code != models.CodeAuthentication {
		t.Errorf("bad login = %d %+v", status, env.Error)
	}
	if env.Error.Message != "Invalid credentials" {
		t.Errorf("bad login message = %q", env.Error.Message)
	}

	// /me requires and honors the token.
	status, env = doJSON(t, router, http.MethodGet, "/api/auth/me", token, nil)
	if status != http.StatusOK {
		t.Fatalf("me = %d %+v", status, env)
	}
	var user models.UserView
	if err := json.Unmarshal(env.Data, &user); err != nil {
		t.Fatalf("decode user: %v", err)
	}
	if user.Username != "editor" {
		t.Errorf("me username = %q", user.Username)
	}

	status, env = doJSON(t, router, http.MethodGet, "/api/auth/me", "", nil)
	if status != http.StatusUnauthorized || env.Error == nil || env.Error.Message != "Authentication required" {
		t.Errorf("me without token = %d %+v", status, env.Error)
	}
}

func TestWritesRequireAuthentication(t *testing.T) {
	router := newTestRouter(t)

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodPost, "/api/teams/"},
		{http.MethodPost, "/api/players/"},
		{http.MethodPost, "/api/matches/"},
		{http.MethodPost, "/api/staff/"},
		{http.MethodPost, "/api/news/"},
		{http.MethodPost, "/api/partners/"},
		{http.MethodPut, "/api/teams/00000000-0000-0000-0000-000000000000"},
		{http.MethodDelete, "/api/teams/00000000-0000-0000-0000-000000000000"},
	}

	for _, tt := range paths {
		status, env := doJSON(t, router, tt.method, tt.path, "", map[string]string{})
		if status != http.StatusUnauthorized {
			t.Errorf("%s %s = %d, want 401", tt.method, tt.path, status)
		}
		if env.Error == nil || env.Error.Code != models.CodeAuthentication {
			t.Errorf("%s %s error = %+v", tt.method, tt.path, env.Error)
		}
	}

	// Forged tokens are rejected too.
	status, env := doJSON(t, router, http.MethodPost, "/api/teams/", "not-a-token", map[string]string{"name": "x"})
	if status != http.StatusUnauthorized || env.Error.Message != "Invalid or expired token" {
		t.Errorf("forged token = %d %+v", status, env.Error)
	}
}

func TestTeamLifecycle(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	status, env := doJSON(t, router, http.MethodPost, "/api/teams/", token, map[string]interface{}{
		"name":         "ES Chorbane",
		"founded_year": 1975,
	})
	if status != http.StatusCreated || env.Message != "Team created successfully" {
		t.Fatalf("create = %d %q %+v", status, env.Message, env.Error)
	}
	var team models.TeamView
	if err := json.Unmarshal(env.Data, &team); err != nil {
		t.Fatalf("decode team: %v", err)
	}
	if team.Players == nil || len(team.Players) != 0 {
		t.Errorf("players = %v, want empty list", team.Players)
	}

	// Public read.
	status, env = doJSON(t, router, http.MethodGet, "/api/teams/"+team.ID.String(), "", nil)
	if status != http.StatusOK {
		t.Fatalf("get = %d %+v", status, env.Error)
	}

	// Partial update.
	status, env = doJSON(t, router, http.MethodPut, "/api/teams/"+team.ID.String(), token, map[string]string{
		"home_stadium": "Stade Municipal",
	})
	if status != http.StatusOK {
		t.Fatalf("update = %d %+v", status, env.Error)
	}
	var updated models.TeamView
	if err := json.Unmarshal(env.Data, &updated); err != nil {
		t.Fatalf("decode team: %v", err)
	}
	if updated.Name != "ES Chorbane" || updated.HomeStadium == nil || *updated.HomeStadium != "Stade Municipal" {
		t.Errorf("update merged wrong: %+v", updated)
	}

	status, env = doJSON(t, router, http.MethodDelete, "/api/teams/"+team.ID.String(), token, nil)
	if status != http.StatusOK || env.Message != "Team deleted successfully" {
		t.Fatalf("delete = %d %q", status, env.Message)
	}

	status, env = doJSON(t, router, http.MethodGet, "/api/teams/"+team.ID.String(), "", nil)
	if status != http.StatusNotFound || env.Error == nil || env.Error.Code != models.CodeNotFound {
		t.Errorf("get deleted = %d %+v", status, env.Error)
	}
}

func TestValidationEnvelope(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	status, env := doJSON(t, router, http.MethodPost, "/api/teams/", token, map[string]string{})
	if status != http.StatusBadRequest || env.Error == nil {
		t.Fatalf("empty create = %d %+v", status, env)
	}
	if env.Error.Code != models.CodeValidation || env.Error.Message != "name is required" {
		t.Errorf("error = %+v", env.Error)
	}
	errs, ok := env.Error.Details["errors"].([]interface{})
	if !ok || len(errs) != 1 || errs[0] != "name is required" {
		t.Errorf("details = %+v", env.Error.Details)
	}

	// Malformed JSON body.
	req := httptest.NewRequest(http.MethodPost, "/api/teams/", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("malformed body = %d, want 400", rec.Code)
	}
}

func TestPathAndQueryIDs(t *testing.T) {
	router := newTestRouter(t)

	// Malformed path id addresses nothing: 404.
	status, env := doJSON(t, router, http.MethodGet, "/api/teams/not-a-uuid", "", nil)
	if status != http.StatusNotFound || env.Error == nil || env.Error.Code != models.CodeNotFound {
		t.Errorf("bad path id = %d %+v", status, env.Error)
	}

	// Malformed query filter is a client mistake: 400.
	status, env = doJSON(t, router, http.MethodGet, "/api/players/?team_id=not-a-uuid", "", nil)
	if status != http.StatusBadRequest || env.Error == nil || env.Error.Code != models.CodeValidation {
		t.Errorf("bad query id = %d %+v", status, env.Error)
	}

	// Unknown route uses the same envelope.
	status, env = doJSON(t, router, http.MethodGet, "/api/nothing-here", "", nil)
	if status != http.StatusNotFound || env.Error == nil || env.Error.Message != "Resource not found" {
		t.Errorf("unknown route = %d %+v", status, env.Error)
	}
}

func TestMatchStatsEndpoints(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	createTeam := func(name string) models.TeamView {
		status, env := doJSON(t, router, http.MethodPost, "/api/teams/", token, map[string]string{"name": name})
		if status != http.StatusCreated {
			t.Fatalf("create team = %d %+v", status, env.Error)
		}
		var team models.TeamView
		if err := json.Unmarshal(env.Data, &team); err != nil {
			t.Fatalf("decode team: %v", err)
		}
		return team
	}
	home := createTeam("ES Chorbane")
	away := createTeam("CS Hammamet")

	status, env := doJSON(t, router, http.MethodPost, "/api/players/", token, map[string]string{
		"first_name": "Ahmed",
		"last_name":  "Trabelsi",
		"team_id":    home.ID.String(),
	})
	if status != http.StatusCreated {
		t.Fatalf("create player = %d %+v", status, env.Error)
	}
	var player models.PlayerView
	if err := json.Unmarshal(env.Data, &player); err != nil {
		t.Fatalf("decode player: %v", err)
	}

	status, env = doJSON(t, router, http.MethodPost, "/api/matches/", token, map[string]string{
		"date":         "2026-09-13T15:00:00Z",
		"home_team_id": home.ID.String(),
		"away_team_id": away.ID.String(),
	})
	if status != http.StatusCreated {
		t.Fatalf("create match = %d %+v", status, env.Error)
	}
	var match models.MatchView
	if err := json.Unmarshal(env.Data, &match); err != nil {
		t.Fatalf("decode match: %v", err)
	}

	statsPath := fmt.Sprintf("/api/matches/%s/stats/%s", match.ID, player.ID)
	status, env = doJSON(t, router, http.MethodPut, statsPath, token, map[string]int{
		"goals":          2,
		"minutes_played": 90,
	})
	if status != http.StatusOK || env.Message != "Player statistics recorded successfully" {
		t.Fatalf("upsert stats = %d %q %+v", status, env.Message, env.Error)
	}

	// The stat lines are readable without a token.
	status, env = doJSON(t, router, http.MethodGet, fmt.Sprintf("/api/matches/%s/stats", match.ID), "", nil)
	if status != http.StatusOK {
		t.Fatalf("list stats = %d %+v", status, env.Error)
	}
	var lines []models.StatsView
	if err := json.Unmarshal(env.Data, &lines); err != nil {
		t.Fatalf("decode stats: %v", err)
	}
	if len(lines) != 1 || lines[0].Goals != 2 {
		t.Errorf("stats = %+v", lines)
	}

	// And they show up embedded in the match view.
	status, env = doJSON(t, router, http.MethodGet, "/api/matches/"+match.ID.String(), "", nil)
	if status != http.StatusOK {
		t.Fatalf("get match = %d %+v", status, env.Error)
	}
	if err := json.Unmarshal(env.Data, &match); err != nil {
		t.Fatalf("decode match: %v", err)
	}
	if len(match.PlayerStats) != 1 || match.HomeTeam == nil || match.AwayTeam == nil {
		t.Errorf("match view = %+v", match)
	}
}

func TestTeamDeleteConflictStatus(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	createTeam := func(name string) models.TeamView {
		status, env := doJSON(t, router, http.MethodPost, "/api/teams/", token, map[string]string{"name": name})
		if status != http.StatusCreated {
			t.Fatalf("create team = %d %+v", status, env.Error)
		}
		var team models.TeamView
		if err := json.Unmarshal(env.Data, &team); err != nil {
			t.Fatalf("decode team: %v", err)
		}
		return team
	}
	home := createTeam("ES Chorbane")
	away := createTeam("CS Hammamet")

	status, env := doJSON(t, router, http.MethodPost, "/api/matches/", token, map[string]string{
		"date":         "2026-09-13T15:00:00Z",
		"home_team_id": home.ID.String(),
		"away_team_id": away.ID.String(),
	})
	if status != http.StatusCreated {
		t.Fatalf("create match = %d %+v", status, env.Error)
	}

	status, env = doJSON(t, router, http.MethodDelete, "/api/teams/"+home.ID.String(), token, nil)
	if status != http.StatusConflict || env.Error == nil || env.Error.Code != models.CodeConflict {
		t.Errorf("delete = %d %+v, want 409 CONFLICT", status, env.Error)
	}
}

func TestNewsAuthorDefaultsToCaller(t *testing.T) {
	router := newTestRouter(t)
	token := registerAndLogin(t, router)

	status, env := doJSON(t, router, http.MethodPost, "/api/news/", token, map[string]string{
		"title":   "Victoire 2-1",
		"content": "Résumé du match.",
	})
	if status != http.StatusCreated {
		t.Fatalf("create news = %d %+v", status, env.Error)
	}
	var article models.NewsView
	if err := json.Unmarshal(env.Data, &article); err != nil {
		t.Fatalf("decode news: %v", err)
	}
	if article.Author == nil || article.Author.Username != "editor" {
		t.Errorf("author = %+v, want the caller", article.Author)
	}
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestRouter(t)

	status, env := doJSON(t, router, http.MethodGet, "/api/health", "", nil)
	if status != http.StatusOK || env.Status != "success" {
		t.Fatalf("health = %d %+v", status, env)
	}
	var data map[string]string
	if err := json.Unmarshal(env.Data, &data); err != nil {
		t.Fatalf("decode health data: %v", err)
	}
	if data["status"] != "healthy" || data["database"] != "healthy" {
		t.Errorf("health data = %v", data)
	}
}
