package api

import (
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arkanite/skillforge/internal/character"
	"github.com/arkanite/skillforge/internal/engine"
	"github.com/arkanite/skillforge/internal/runegen"
	"github.com/arkanite/skillforge/internal/store"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	db, err := store.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	rng := rand.New(rand.NewSource(1))
	now := func() time.Time {
		return time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC)
	}
	return &Server{
		Store:    db,
		Engine:   engine.New(nil, runegen.NewGenerator(rng, now), rng, now),
		Addr:     ":0",
		AdminKey: "sekrit",
	}
}

func createCharacter(t *testing.T, s *Server) character.Character {
	t.Helper()
	body := `{"name":"Asha","base_class":"Engineer","background":{
		"subjects":["Programming"],"career_goals":["Software Engineer"],
		"current_role":"Software Engineer"}}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/characters", strings.NewReader(body))
	rec := httptest.NewRecorder()
	s.handleCharacters(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var ch character.Character
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ch))
	return ch
}

func TestCreateCharacter(t *testing.T) {
	s := testServer(t)
	ch := createCharacter(t, s)

	assert.NotEmpty(t, ch.ID)
	assert.Equal(t, "Asha", ch.Name)
	assert.Equal(t, 1, ch.Level)
	assert.Equal(t, "Engineer", ch.Class.BaseClass)
	require.NotNil(t, ch.Rune)

	// Persisted.
	stored, err := s.Store.Get(ch.ID)
	require.NoError(t, err)
	assert.Equal(t, ch.ID, stored.ID)
}

func TestCreateValidation(t *testing.T) {
	s := testServer(t)

	tests := []struct {
		name string
		body string
		code int
	}{
		{"missing name", `{"base_class":"Engineer"}`, http.StatusBadRequest},
		{"unknown class", `{"name":"A","base_class":"Necromancer"}`, http.StatusBadRequest},
		{"garbage body", `{`, http.StatusBadRequest},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/v1/characters", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			s.handleCharacters(rec, req)
			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestSnapshotNotFound(t *testing.T) {
	s := testServer(t)
	req := httptest.NewRequest(http.MethodGet, "/api/v1/characters/missing", nil)
	rec := httptest.NewRecorder()
	s.handleCharacterRoutes(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestExperienceLevelsUp(t *testing.T) {
	s := testServer(t)
	ch := createCharacter(t, s)

	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/characters/"+ch.ID+"/experience", strings.NewReader(`{"amount":950}`))
	rec := httptest.NewRecorder()
	s.handleCharacterRoutes(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Result engine.LevelUpResult `json:"result"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Result.LeveledUp)
	assert.Equal(t, 10, resp.Result.NewLevel)
	assert.NotNil(t, resp.Result.Analysis, "class gate analysis attached at level 10")

	stored, err := s.Store.Get(ch.ID)
	require.NoError(t, err)
	assert.Equal(t, 10, stored.Level)
	assert.True(t, stored.BackgroundAnalyzed)
}

func TestAnalysisEndpoint(t *testing.T) {
	s := testServer(t)
	ch := createCharacter(t, s)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/characters/"+ch.ID+"/analysis", nil)
	rec := httptest.NewRecorder()
	s.handleCharacterRoutes(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		UnlockEligible bool `json:"unlock_eligible"`
		CanUnlockAt    bool `json:"can_unlock_at"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.CanUnlockAt, "level 1 cannot unlock yet")
}

func TestRegressRequiresAdminToken(t *testing.T) {
	s := testServer(t)
	ch := createCharacter(t, s)
	url := "/api/v1/characters/" + ch.ID + "/regress"

	req := httptest.NewRequest(http.MethodPost, url, nil)
	rec := httptest.NewRecorder()
	s.handleCharacterRoutes(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	req = httptest.NewRequest(http.MethodPost, url, nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec = httptest.NewRecorder()
	s.handleCharacterRoutes(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	// Authorized but below the level gate: the engine rejects it.
	req = httptest.NewRequest(http.MethodPost, url, nil)
	req.Header.Set("Authorization", "Bearer sekrit")
	rec = httptest.NewRecorder()
	s.handleCharacterRoutes(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegressDisabledWithoutKey(t *testing.T) {
	s := testServer(t)
	s.AdminKey = ""
	ch := createCharacter(t, s)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/characters/"+ch.ID+"/regress", nil)
	rec := httptest.NewRecorder()
	s.handleCharacterRoutes(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestKnowledgeSpend(t *testing.T) {
	s := testServer(t)
	ch := createCharacter(t, s)

	// Seed a skill and some knowledge directly.
	stored, err := s.Store.Get(ch.ID)
	require.NoError(t, err)
	stored.Skills = []character.Skill{{Name: "Programming", Level: 1}}
	stored.Regression.RetainedKnowledge = 50
	require.NoError(t, s.Store.Update(&stored))

	req := httptest.NewRequest(http.MethodPost,
		"/api/v1/characters/"+ch.ID+"/knowledge",
		strings.NewReader(`{"skill":"Programming","amount":10}`))
	rec := httptest.NewRecorder()
	s.handleCharacterRoutes(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Remaining int `json:"remaining"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 40, resp.Remaining)

	// Overspend rejected.
	req = httptest.NewRequest(http.MethodPost,
		"/api/v1/characters/"+ch.ID+"/knowledge",
		strings.NewReader(`{"skill":"Programming","amount":999}`))
	rec = httptest.NewRecorder()
	s.handleCharacterRoutes(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBonusesEndpoint(t *testing.T) {
	s := testServer(t)
	ch := createCharacter(t, s)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/characters/"+ch.ID+"/bonuses", nil)
	rec := httptest.NewRecorder()
	s.handleCharacterRoutes(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Bonuses struct {
			ExperienceMultiplier float64 `json:"experience_multiplier"`
		} `json:"bonuses"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.InDelta(t, 1.0, resp.Bonuses.ExperienceMultiplier, 1e-9, "fresh character has the identity profile")
}

func TestClassesEndpoints(t *testing.T) {
	s := testServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/classes", nil)
	rec := httptest.NewRecorder()
	s.handleClasses(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var listResp struct {
		Classes []struct {
			Name string `json:"name"`
		} `json:"classes"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &listResp))
	assert.Len(t, listResp.Classes, 7)

	req = httptest.NewRequest(http.MethodGet,
		"/api/v1/classes/Engineer/Software%20Engineer/Senior%20Developer", nil)
	rec = httptest.NewRecorder()
	s.handleClassDetail(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodGet, "/api/v1/classes/Alchemist", nil)
	rec = httptest.NewRecorder()
	s.handleClassDetail(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLeaderboardEndpoint(t *testing.T) {
	s := testServer(t)
	createCharacter(t, s)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/leaderboard?limit=5", nil)
	rec := httptest.NewRecorder()
	s.handleLeaderboard(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Leaderboard []struct {
			Rank              int    `json:"rank"`
			Name              string `json:"name"`
			ExperienceDisplay string `json:"experience_display"`
		} `json:"leaderboard"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Leaderboard, 1)
	assert.Equal(t, 1, resp.Leaderboard[0].Rank)
	assert.Equal(t, "0", resp.Leaderboard[0].ExperienceDisplay)
}
