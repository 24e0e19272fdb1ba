package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"cricket-club-site/database"
	"cricket-club-site/services"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryStore struct {
	saved map[string][]byte
}

func (m *memoryStore) Save(_ context.Context, key, _ string, body io.Reader) (string, error) {
	b, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}
	m.saved[key] = b
	return "https://cdn.example/" + key, nil
}

type testServer struct {
	app    *fiber.App
	deps   Deps
	images *memoryStore
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	db, err := database.Open("sqlite://" + filepath.Join(t.TempDir(), "club.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close(db) })
	require.NoError(t, database.Migrate(db))

	images := &memoryStore{saved: map[string][]byte{}}
	deps := Deps{
		Auth:          services.NewAuthService(db, "handler-secret", 0),
		HeroSlides:    services.NewHeroSlideService(db),
		News:          services.NewNewsService(db),
		Players:       services.NewPlayerService(db),
		Gallery:       services.NewGalleryService(db),
		Social:        services.NewSocialService(db),
		Comments:      services.NewCommentService(db),
		Registrations: services.NewRegistrationService(db),
		Stats:         services.NewStatsService(db),
		Tournaments:   services.NewTournamentService(db),
		Images:        images,
	}

	_, err = deps.Auth.CreateUser("admin", "club-password", "")
	require.NoError(t, err)
	res, err := deps.Auth.Login("admin", "club-password")
	require.NoError(t, err)

	return &testServer{
		app:    NewApp(deps, AppConfig{AllowedOrigins: "http://localhost:5173"}),
		deps:   deps,
		images: images,
		token:  res.Token,
	}
}

// do sends a JSON request; admin adds the bearer token.
func (s *testServer) do(t *testing.T, method, path string, body interface{}, admin bool) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if admin {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode(t *testing.T, resp *http.Response, v interface{}) {
	t.Helper()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(v))
}

func messageOf(t *testing.T, resp *http.Response) string {
	t.Helper()
	var body struct {
		Message string `json:"message"`
	}
	decode(t, resp, &body)
	return body.Message
}

func TestLoginRoute(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, "POST", "/api/auth/login", map[string]string{"username": "admin", "password": "club-password"}, false)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var res struct {
		Token string                 `json:"token"`
		User  map[string]interface{} `json:"user"`
	}
	decode(t, resp, &res)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, "admin", res.User["username"])
	assert.NotContains(t, res.User, "password")

	resp = s.do(t, "POST", "/api/auth/login", map[string]string{"username": "admin", "password": "nope"}, false)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid credentials", messageOf(t, resp))

	resp = s.do(t, "POST", "/api/auth/login", map[string]string{"username": "admin"}, false)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Username and password required", messageOf(t, resp))

	resp = s.do(t, "GET", "/api/auth/me", nil, true)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var me services.Principal
	decode(t, resp, &me)
	assert.Equal(t, "admin", me.Username)
}

func TestMutationsRequireToken(t *testing.T) {
	s := newTestServer(t)

	for _, route := range []struct{ method, path string }{
		{"POST", "/api/hero-slides"},
		{"PUT", "/api/news/1"},
		{"DELETE", "/api/players/1"},
		{"PUT", "/api/players/1/stats"},
		{"POST", "/api/gallery"},
		{"DELETE", "/api/comments/1"},
		{"GET", "/api/registrations"},
		{"PUT", "/api/registrations/1/status"},
		{"POST", "/api/tournaments"},
		{"GET", "/api/admin/news"},
		{"POST", "/api/uploads"},
	} {
		resp := s.do(t, route.method, route.path, nil, false)
		assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode, "%s %s", route.method, route.path)
		assert.Equal(t, "No token provided", messageOf(t, resp))
	}

	req := httptest.NewRequest("GET", "/api/registrations", nil)
	req.Header.Set("Authorization", "Bearer forged.token.value")
	resp, err := s.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
	assert.Equal(t, "Invalid token", messageOf(t, resp))
}

func TestHeroSlideCRUD(t *testing.T) {
	s := newTestServer(t)

	slide := map[string]interface{}{
		"title": "Championship Victory!", "description": "d", "date": "15 MAR, 2024",
		"image": "https://cdn.example/h.jpg", "order": 2,
	}
	resp := s.do(t, "POST", "/api/hero-slides", slide, true)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created map[string]interface{}
	decode(t, resp, &created)
	assert.Equal(t, true, created["isActive"])

	slide["title"] = "Training Excellence"
	slide["order"] = 1
	resp = s.do(t, "POST", "/api/hero-slides", slide, true)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = s.do(t, "GET", "/api/hero-slides", nil, false)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var slides []map[string]interface{}
	decode(t, resp, &slides)
	require.Len(t, slides, 2)
	assert.Equal(t, "Training Excellence", slides[0]["title"])

	resp = s.do(t, "DELETE", "/api/hero-slides/1", nil, true)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)

	resp = s.do(t, "DELETE", "/api/hero-slides/1", nil, true)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Hero slide not found", messageOf(t, resp))

	resp = s.do(t, "PUT", "/api/hero-slides/abc", slide, true)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = s.do(t, "POST", "/api/hero-slides", map[string]string{"title": "only"}, true)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestSocialRoutes(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, "GET", "/api/social/news/9", nil, false)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var counters map[string]interface{}
	decode(t, resp, &counters)
	assert.Equal(t, float64(0), counters["likes"])

	for i := 0; i < 3; i++ {
		resp = s.do(t, "POST", "/api/social/news/9/like", nil, false)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}
	resp = s.do(t, "POST", "/api/social/news/9/share", nil, false)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &counters)
	assert.Equal(t, float64(3), counters["likes"])
	assert.Equal(t, float64(0), counters["dislikes"])
	assert.Equal(t, float64(1), counters["shares"])
	assert.Equal(t, "news", counters["contentType"])

	resp = s.do(t, "POST", "/api/social/video/9/like", nil, false)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid content type", messageOf(t, resp))

	resp = s.do(t, "POST", "/api/social/news/x/like", nil, false)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid id", messageOf(t, resp))

	resp = s.do(t, "GET", "/api/social/video/9", nil, false)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid content type", messageOf(t, resp))
}

func TestCommentRoutes(t *testing.T) {
	s := newTestServer(t)

	for _, text := range []string{"Great match!", "Well played"} {
		resp := s.do(t, "POST", "/api/comments", map[string]interface{}{
			"contentType": "news", "contentId": 1, "userName": "fan", "text": text,
		}, false)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}

	resp := s.do(t, "GET", "/api/comments/news/1", nil, false)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var comments []map[string]interface{}
	decode(t, resp, &comments)
	require.Len(t, comments, 2)
	assert.Equal(t, "Well played", comments[0]["text"])

	resp = s.do(t, "POST", "/api/comments", map[string]interface{}{"contentType": "news", "contentId": 1}, false)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = s.do(t, "GET", "/api/comments/video/1", nil, false)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid content type", messageOf(t, resp))

	resp = s.do(t, "GET", "/api/comments/news/0", nil, false)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid id", messageOf(t, resp))

	id := int(comments[0]["id"].(float64))
	resp = s.do(t, "DELETE", "/api/comments/"+itoa(id), nil, true)
	assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
}

func TestPlayerStatsAndTeamStats(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, "POST", "/api/players", map[string]interface{}{
		"name": "HARDIK PANDYA", "role": "ALL-ROUNDER", "jerseyNumber": 7, "image": "https://cdn.example/p.jpg", "isCaptain": true,
	}, true)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = s.do(t, "PUT", "/api/players/1/stats", map[string]interface{}{"matches": 18, "runsScored": 485, "wicketsTaken": 23}, true)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = s.do(t, "PUT", "/api/players/99/stats", map[string]interface{}{"matches": 1}, true)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = s.do(t, "GET", "/api/players/with-stats", nil, false)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var players []map[string]interface{}
	decode(t, resp, &players)
	require.Len(t, players, 1)
	stats := players[0]["stats"].(map[string]interface{})
	assert.Equal(t, float64(485), stats["runsScored"])

	resp = s.do(t, "GET", "/api/stats/team", nil, false)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var team services.TeamStatistics
	decode(t, resp, &team)
	assert.Equal(t, services.TeamStatistics{MatchesPlayed: 18, MatchesWon: 14, TotalRuns: 485, TotalWickets: 23, WinRate: 78}, team)
}

func TestRegistrationRoutes(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, "POST", "/api/registrations", map[string]interface{}{
		"firstName": "Ann", "lastName": "Smith", "email": "ann@example.com", "phone": "0770",
		"dateOfBirth": "2001-04-12", "position": "Batter", "status": "approved",
	}, false)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var reg map[string]interface{}
	decode(t, resp, &reg)
	assert.Equal(t, "pending", reg["status"])

	resp = s.do(t, "PUT", "/api/registrations/1/status", map[string]string{"status": "maybe"}, true)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "Invalid status", messageOf(t, resp))

	resp = s.do(t, "PUT", "/api/registrations/1/status", map[string]string{"status": "approved"}, true)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	decode(t, resp, &reg)
	assert.Equal(t, "approved", reg["status"])

	resp = s.do(t, "GET", "/api/registrations", nil, true)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestNewsVisibility(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, "POST", "/api/news", map[string]interface{}{
		"title": "Draft", "description": "d", "content": "c", "date": "01 JUN, 2025",
		"image": "https://cdn.example/n.jpg", "isPublished": false,
	}, true)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = s.do(t, "GET", "/api/news/1", nil, false)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp = s.do(t, "GET", "/api/admin/news/1", nil, true)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp = s.do(t, "GET", "/api/news?limit=5", nil, false)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var articles []map[string]interface{}
	decode(t, resp, &articles)
	assert.Empty(t, articles)
}

func TestTournamentRoutes(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, "POST", "/api/tournaments", map[string]string{
		"name": "Summer Cup", "startDate": "2025-07-01", "endDate": "2025-07-03", "venue": "Home Ground",
	}, true)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp = s.do(t, "GET", "/api/tournaments/1", nil, false)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var cup map[string]interface{}
	decode(t, resp, &cup)
	assert.Equal(t, "upcoming", cup["status"])

	resp = s.do(t, "PUT", "/api/tournaments/1", map[string]string{
		"name": "Summer Cup", "startDate": "2025-07-05", "endDate": "2025-07-03", "venue": "Home Ground",
	}, true)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUploadRoute(t *testing.T) {
	s := newTestServer(t)

	resp := s.upload(t, "gallery", "Final Over.png", []byte("\x89PNG fake"))
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var body map[string]string
	decode(t, resp, &body)
	assert.Contains(t, body["url"], "https://cdn.example/gallery/final-over-")
	assert.Len(t, s.images.saved, 1)

	resp = s.upload(t, "gallery", "notes.pdf", []byte("%PDF"))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp = s.upload(t, "secrets", "a.png", []byte("x"))
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUnknownRouteIsJSON(t *testing.T) {
	s := newTestServer(t)

	resp := s.do(t, "GET", "/api/nope", nil, false)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.NotEmpty(t, messageOf(t, resp))
}
