// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"
	"github.com/rs/zerolog"

	_ "github.com/tomtom215/cinephile/docs"
	"github.com/tomtom215/cinephile/internal/database"
	"github.com/tomtom215/cinephile/internal/models"
	"github.com/tomtom215/cinephile/internal/ratings"
	"github.com/tomtom215/cinephile/internal/recommend"
)

// mockService is an in-memory Service.
type mockService struct {
	mu       sync.Mutex
	movies   map[int64]*models.CatalogRow
	posters  map[int64]string
	writeErr error

	// similarErr overrides the result of Similar.
	similarErr error
}

func newMockService() *mockService {
	return &mockService{
		movies: map[int64]*models.CatalogRow{
			19995:  {MovieID: 19995, Title: "Avatar", Tags: "space marine alien", RawRatings: "[4, 5]"},
			285:    {MovieID: 285, Title: "Pirates", Tags: "sea pirate curse", RawRatings: "[]"},
			206647: {MovieID: 206647, Title: "Spectre", Tags: "spy agent", RawRatings: "[3]"},
		},
		posters: map[int64]string{19995: "https://image.tmdb.org/t/p/w500/avatar.jpg"},
	}
}

func (m *mockService) Titles(context.Context) []string {
	return []string{"Avatar", "Pirates", "Spectre"}
}

func (m *mockService) RecommendDetailed(_ context.Context, title string) ([]models.Recommendation, bool) {
	if title != "Avatar" {
		return []models.Recommendation{}, false
	}
	return []models.Recommendation{
		{Title: "Spectre", MovieID: 206647, Score: 0.3},
		{Title: "Pirates", MovieID: 285, Score: 0.1, PosterURL: "https://img/285.jpg"},
	}, true
}

func (m *mockService) Similar(_ context.Context, id int64) ([]models.Recommendation, error) {
	if m.similarErr != nil {
		return nil, m.similarErr
	}
	if id != 19995 {
		return nil, fmt.Errorf("similar: %w", recommend.ErrUnknownMovie)
	}
	items, _ := m.RecommendDetailed(context.Background(), "Avatar")
	return items, nil
}

func (m *mockService) row(id int64) (*models.CatalogRow, error) {
	row, ok := m.movies[id]
	if !ok {
		return nil, &database.Error{Op: "get movie", Kind: database.ErrNotFound, Err: fmt.Errorf("no movie with id %d", id)}
	}
	return row, nil
}

func (m *mockService) GetMovie(_ context.Context, id int64) (*models.MovieResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, err := m.row(id)
	if err != nil {
		return nil, err
	}
	return &models.MovieResponse{
		Movie:     database.ToMovie(row),
		Summary:   ratings.Aggregate(row.RawRatings).Model(),
		PosterURL: m.posters[id],
	}, nil
}

func (m *mockService) MovieRatings(_ context.Context, id int64) (*models.RatingsResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	row, err := m.row(id)
	if err != nil {
		return nil, err
	}
	values, _ := ratings.Parse(row.RawRatings)
	return &models.RatingsResponse{MovieID: id, Ratings: values, Summary: ratings.Aggregate(row.RawRatings).Model()}, nil
}

func (m *mockService) RateMovie(ctx context.Context, id int64, value int) (*models.RatingsResponse, error) {
	m.mu.Lock()
	if m.writeErr != nil {
		m.mu.Unlock()
		return nil, m.writeErr
	}
	row, err := m.row(id)
	if err != nil {
		m.mu.Unlock()
		return nil, err
	}
	row.RawRatings = ratings.Append(row.RawRatings, value)
	m.mu.Unlock()
	return m.MovieRatings(ctx, id)
}

func (m *mockService) WriteRatingByTitle(ctx context.Context, title string, value int) (*models.RatingsResponse, error) {
	m.mu.Lock()
	var id int64
	for _, row := range m.movies {
		if row.Title == title {
			id = row.MovieID
		}
	}
	m.mu.Unlock()
	if id == 0 {
		return nil, &database.Error{Op: "append rating", Kind: database.ErrNotFound, Err: fmt.Errorf("no movie titled %q", title)}
	}
	return m.RateMovie(ctx, id, value)
}

func (m *mockService) AggregateRatings(raw any) ratings.Summary {
	return ratings.Aggregate(raw)
}

func (m *mockService) Poster(_ context.Context, id int64) (string, bool) {
	url, ok := m.posters[id]
	return url, ok
}

type pingerFunc func(context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

type staticBreaker string

func (s staticBreaker) BreakerState() string { return string(s) }

func newTestEngine(t *testing.T, built bool) *recommend.Engine {
	t.Helper()
	engine, err := recommend.NewEngine(recommend.DefaultConfig(), nil, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}
	if built {
		movies := []models.Movie{
			{MovieID: 19995, Title: "Avatar", Tags: "space marine alien"},
			{MovieID: 285, Title: "Pirates", Tags: "sea pirate curse"},
			{MovieID: 206647, Title: "Spectre", Tags: "spy agent"},
		}
		if err := engine.BuildFrom(context.Background(), movies); err != nil {
			t.Fatalf("BuildFrom() error = %v", err)
		}
	}
	return engine
}

type testEnv struct {
	handler http.Handler
	svc     *mockService
}

func setupTestRouter(t *testing.T, built bool, mwCfg *ChiMiddlewareConfig) *testEnv {
	t.Helper()
	if mwCfg == nil {
		mwCfg = DefaultChiMiddlewareConfig()
		mwCfg.CORSAllowedOrigins = []string{"*"}
		mwCfg.RateLimitDisabled = true
	}
	svc := newMockService()
	h := NewHandler(Dependencies{
		Service: svc,
		Index:   newTestEngine(t, built),
		DB:      pingerFunc(func(context.Context) error { return nil }),
		Posters: staticBreaker("closed"),
		Version: "test",
	})
	return &testEnv{
		handler: NewRouter(h, NewChiMiddleware(mwCfg), nil).Setup(),
		svc:     svc,
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   *APIError       `json:"error"`
	Meta    *APIMeta        `json:"meta"`
}

func (e *testEnv) do(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)

	var env envelope
	if strings.HasPrefix(rec.Header().Get("Content-Type"), "application/json") {
		if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
			t.Fatalf("decode response %q: %v", rec.Body.String(), err)
		}
	}
	return rec, env
}

func decodeData(t *testing.T, env envelope, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data %s: %v", env.Data, err)
	}
}

func TestTitles(t *testing.T) {
	t.Parallel()
	env := setupTestRouter(t, true, nil)

	rec, body := env.do(t, http.MethodGet, "/api/v1/titles", "")
	if rec.Code != http.StatusOK || !body.Success {
		t.Fatalf("status = %d, success = %v", rec.Code, body.Success)
	}
	var titles []string
	decodeData(t, body, &titles)
	if len(titles) != 3 || titles[0] != "Avatar" {
		t.Errorf("titles = %v", titles)
	}
	if body.Meta == nil || body.Meta.Count == nil || *body.Meta.Count != 3 {
		t.Errorf("meta.count = %+v, want 3", body.Meta)
	}
	if rec.Header().Get("X-Request-ID") == "" || body.Meta.RequestID != rec.Header().Get("X-Request-ID") {
		t.Errorf("request id header %q, meta %q", rec.Header().Get("X-Request-ID"), body.Meta.RequestID)
	}
}

func TestRecommendations(t *testing.T) {
	t.Parallel()
	env := setupTestRouter(t, true, nil)

	t.Run("known title", func(t *testing.T) {
		t.Parallel()
		rec, body := env.do(t, http.MethodGet, "/api/v1/recommendations?title=Avatar", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var resp models.RecommendationsResponse
		decodeData(t, body, &resp)
		if !resp.Found || resp.Query != "Avatar" {
			t.Errorf("found = %v, query = %q", resp.Found, resp.Query)
		}
		if len(resp.Titles) != 2 || len(resp.Posters) != 2 || len(resp.Items) != 2 {
			t.Fatalf("lengths: titles %d, posters %d, items %d", len(resp.Titles), len(resp.Posters), len(resp.Items))
		}
		if resp.Titles[1] != "Pirates" || resp.Posters[0] != "" || resp.Posters[1] != "https://img/285.jpg" {
			t.Errorf("titles = %v, posters = %v", resp.Titles, resp.Posters)
		}
	})

	t.Run("unknown title", func(t *testing.T) {
		t.Parallel()
		rec, body := env.do(t, http.MethodGet, "/api/v1/recommendations?title=Nope", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d, want 200", rec.Code)
		}
		var resp models.RecommendationsResponse
		decodeData(t, body, &resp)
		if resp.Found || len(resp.Titles) != 0 || len(resp.Posters) != 0 {
			t.Errorf("unknown title response = %+v, want empty", resp)
		}
	})

	t.Run("missing title", func(t *testing.T) {
		t.Parallel()
		for _, target := range []string{"/api/v1/recommendations", "/api/v1/recommendations?title=%20%20"} {
			rec, body := env.do(t, http.MethodGet, target, "")
			if rec.Code != http.StatusBadRequest || body.Error == nil || body.Error.Code != ErrCodeValidationFailed {
				t.Errorf("%s: status = %d, error = %+v, want 400 VALIDATION_FAILED", target, rec.Code, body.Error)
			}
		}
	})
}

func TestMovie(t *testing.T) {
	t.Parallel()
	env := setupTestRouter(t, true, nil)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCode   string
	}{
		{name: "found", target: "/api/v1/movies/19995", wantStatus: http.StatusOK},
		{name: "not found", target: "/api/v1/movies/1", wantStatus: http.StatusNotFound, wantCode: ErrCodeNotFound},
		{name: "non numeric id", target: "/api/v1/movies/abc", wantStatus: http.StatusBadRequest, wantCode: ErrCodeValidationFailed},
		{name: "negative id", target: "/api/v1/movies/-3", wantStatus: http.StatusBadRequest, wantCode: ErrCodeValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, body := env.do(t, http.MethodGet, tt.target, "")
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantCode != "" {
				if body.Error == nil || body.Error.Code != tt.wantCode {
					t.Errorf("error = %+v, want code %s", body.Error, tt.wantCode)
				}
				return
			}
			var resp models.MovieResponse
			decodeData(t, body, &resp)
			if resp.Movie.Title != "Avatar" || resp.Summary.Count != 2 || resp.Summary.Filled != 4 {
				t.Errorf("movie = %+v", resp)
			}
		})
	}
}

func TestSimilarMovies(t *testing.T) {
	t.Parallel()
	env := setupTestRouter(t, true, nil)

	tests := []struct {
		name       string
		target     string
		wantStatus int
		wantCode   string
	}{
		{name: "known id", target: "/api/v1/movies/19995/similar", wantStatus: http.StatusOK},
		{name: "unknown id", target: "/api/v1/movies/1/similar", wantStatus: http.StatusNotFound, wantCode: ErrCodeNotFound},
		{name: "non numeric id", target: "/api/v1/movies/abc/similar", wantStatus: http.StatusBadRequest, wantCode: ErrCodeValidationFailed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			rec, body := env.do(t, http.MethodGet, tt.target, "")
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantCode != "" {
				if body.Error == nil || body.Error.Code != tt.wantCode {
					t.Errorf("error = %+v, want code %s", body.Error, tt.wantCode)
				}
				return
			}
			var resp models.SimilarResponse
			decodeData(t, body, &resp)
			if resp.MovieID != 19995 || len(resp.Items) != 2 || resp.Items[0].Title != "Spectre" {
				t.Errorf("similar = %+v", resp)
			}
			if body.Meta == nil || body.Meta.Count == nil || *body.Meta.Count != 2 {
				t.Errorf("meta.count = %+v, want 2", body.Meta)
			}
		})
	}

	t.Run("index not built", func(t *testing.T) {
		t.Parallel()
		notReady := setupTestRouter(t, false, nil)
		notReady.svc.similarErr = recommend.ErrNotReady
		rec, body := notReady.do(t, http.MethodGet, "/api/v1/movies/19995/similar", "")
		if rec.Code != http.StatusServiceUnavailable || body.Error == nil || body.Error.Code != ErrCodeServiceUnavailable {
			t.Errorf("status = %d, error = %+v, want 503 SERVICE_UNAVAILABLE", rec.Code, body.Error)
		}
	})
}

func TestRateMovie(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		target     string
		body       string
		writeErr   error
		wantStatus int
		wantCode   string
	}{
		{name: "created", target: "/api/v1/movies/285/ratings", body: `{"rating":4}`, wantStatus: http.StatusCreated},
		{name: "rating too high", target: "/api/v1/movies/285/ratings", body: `{"rating":6}`, wantStatus: http.StatusBadRequest, wantCode: ErrCodeValidationFailed},
		{name: "rating missing", target: "/api/v1/movies/285/ratings", body: `{}`, wantStatus: http.StatusBadRequest, wantCode: ErrCodeValidationFailed},
		{name: "fractional rating", target: "/api/v1/movies/285/ratings", body: `{"rating":4.5}`, wantStatus: http.StatusBadRequest, wantCode: ErrCodeValidationFailed},
		{name: "unknown field", target: "/api/v1/movies/285/ratings", body: `{"rating":4,"stars":2}`, wantStatus: http.StatusBadRequest, wantCode: ErrCodeValidationFailed},
		{name: "malformed body", target: "/api/v1/movies/285/ratings", body: `{"rating":`, wantStatus: http.StatusBadRequest, wantCode: ErrCodeValidationFailed},
		{name: "unknown movie", target: "/api/v1/movies/7/ratings", body: `{"rating":4}`, wantStatus: http.StatusNotFound, wantCode: ErrCodeNotFound},
		{name: "bad id", target: "/api/v1/movies/x/ratings", body: `{"rating":4}`, wantStatus: http.StatusBadRequest, wantCode: ErrCodeValidationFailed},
		{
			name: "storage failure", target: "/api/v1/movies/285/ratings", body: `{"rating":4}`,
			writeErr:   &database.Error{Op: "append rating", Kind: database.ErrStorage, Err: errors.New("disk full")},
			wantStatus: http.StatusInternalServerError, wantCode: ErrCodeDatabaseError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			env := setupTestRouter(t, true, nil)
			env.svc.writeErr = tt.writeErr

			rec, body := env.do(t, http.MethodPost, tt.target, tt.body)
			if rec.Code != tt.wantStatus {
				t.Fatalf("status = %d, want %d (%s)", rec.Code, tt.wantStatus, rec.Body.String())
			}
			if tt.wantCode != "" {
				if body.Error == nil || body.Error.Code != tt.wantCode {
					t.Errorf("error = %+v, want code %s", body.Error, tt.wantCode)
				}
				if body.Error != nil && strings.Contains(body.Error.Message, "disk full") {
					t.Errorf("storage cause leaked to client: %q", body.Error.Message)
				}
				if env.svc.movies[285].RawRatings != "[]" {
					t.Errorf("stored ratings = %q after failed write", env.svc.movies[285].RawRatings)
				}
				return
			}

			var resp models.RatingsResponse
			decodeData(t, body, &resp)
			if len(resp.Ratings) != 1 || resp.Ratings[0] != 4 || resp.Summary.Filled != 4 {
				t.Errorf("response = %+v", resp)
			}
		})
	}
}

func TestRateByTitle_Deprecated(t *testing.T) {
	t.Parallel()
	env := setupTestRouter(t, true, nil)

	rec, body := env.do(t, http.MethodPut, "/api/v1/ratings/by-title", `{"title":"Avatar","rating":3}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d (%s)", rec.Code, rec.Body.String())
	}
	if rec.Header().Get("Deprecation") != "true" {
		t.Errorf("Deprecation header = %q, want true", rec.Header().Get("Deprecation"))
	}
	var resp models.RatingsResponse
	decodeData(t, body, &resp)
	if resp.MovieID != 19995 || len(resp.Ratings) != 3 || resp.Ratings[2] != 3 {
		t.Errorf("response = %+v", resp)
	}

	rec, body = env.do(t, http.MethodPut, "/api/v1/ratings/by-title", `{"title":"  ","rating":3}`)
	if rec.Code != http.StatusBadRequest || rec.Header().Get("Deprecation") != "true" {
		t.Errorf("blank title: status = %d, deprecation = %q", rec.Code, rec.Header().Get("Deprecation"))
	}
	if body.Error == nil || body.Error.Code != ErrCodeValidationFailed {
		t.Errorf("blank title error = %+v", body.Error)
	}

	rec, _ = env.do(t, http.MethodPut, "/api/v1/ratings/by-title", `{"title":"Unknown","rating":3}`)
	if rec.Code != http.StatusNotFound {
		t.Errorf("unknown title status = %d, want 404", rec.Code)
	}
}

func TestRatingSummary(t *testing.T) {
	t.Parallel()
	env := setupTestRouter(t, true, nil)

	tests := []struct {
		raw         string
		wantFilled  int
		wantCount   int
		wantDisplay string
	}{
		{raw: "%5B3%2C%204%5D", wantFilled: 4, wantCount: 2, wantDisplay: "★★★★☆ (2 ratings)"},
		{raw: "%5B%5D", wantFilled: 0, wantCount: 0, wantDisplay: "No ratings available"},
		{raw: "", wantFilled: 0, wantCount: 0, wantDisplay: "No ratings available"},
		{raw: "%5B%22bad%22%5D", wantFilled: 0, wantCount: 0, wantDisplay: "No valid ratings"},
	}
	for _, tt := range tests {
		rec, body := env.do(t, http.MethodGet, "/api/v1/ratings/summary?raw="+tt.raw, "")
		if rec.Code != http.StatusOK {
			t.Fatalf("raw=%s: status = %d", tt.raw, rec.Code)
		}
		var got models.RatingSummary
		decodeData(t, body, &got)
		if got.Filled != tt.wantFilled || got.Count != tt.wantCount || got.Display != tt.wantDisplay {
			t.Errorf("raw=%s: summary = %+v, want filled %d count %d display %q", tt.raw, got, tt.wantFilled, tt.wantCount, tt.wantDisplay)
		}
	}
}

func TestPoster(t *testing.T) {
	t.Parallel()
	env := setupTestRouter(t, true, nil)

	rec, body := env.do(t, http.MethodGet, "/api/v1/posters/19995", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d", rec.Code)
	}
	var resp models.PosterResponse
	decodeData(t, body, &resp)
	if resp.MovieID != 19995 || resp.PosterURL == "" {
		t.Errorf("poster = %+v", resp)
	}

	rec, _ = env.do(t, http.MethodGet, "/api/v1/posters/285", "")
	if rec.Code != http.StatusNotFound {
		t.Errorf("missing poster status = %d, want 404", rec.Code)
	}
}

func TestHealth(t *testing.T) {
	t.Parallel()

	t.Run("built index", func(t *testing.T) {
		t.Parallel()
		env := setupTestRouter(t, true, nil)

		rec, body := env.do(t, http.MethodGet, "/api/v1/health", "")
		if rec.Code != http.StatusOK {
			t.Fatalf("status = %d", rec.Code)
		}
		var health models.HealthStatus
		decodeData(t, body, &health)
		if health.Status != "healthy" || !health.IndexReady || health.CatalogSize != 3 || health.IndexVersion != 1 {
			t.Errorf("health = %+v", health)
		}
		if health.PosterBreaker != "closed" || health.Version != "test" || !health.DatabaseOK {
			t.Errorf("health = %+v", health)
		}

		rec, _ = env.do(t, http.MethodGet, "/api/v1/health/ready", "")
		if rec.Code != http.StatusOK {
			t.Errorf("ready status = %d, want 200", rec.Code)
		}
	})

	t.Run("index not built", func(t *testing.T) {
		t.Parallel()
		env := setupTestRouter(t, false, nil)

		rec, body := env.do(t, http.MethodGet, "/api/v1/health/ready", "")
		if rec.Code != http.StatusServiceUnavailable || body.Error == nil || body.Error.Code != ErrCodeServiceUnavailable {
			t.Errorf("ready status = %d, error = %+v, want 503", rec.Code, body.Error)
		}

		rec, body = env.do(t, http.MethodGet, "/api/v1/health", "")
		var health models.HealthStatus
		decodeData(t, body, &health)
		if rec.Code != http.StatusOK || health.Status != "degraded" || health.IndexReady {
			t.Errorf("health = %d %+v, want 200 degraded", rec.Code, health)
		}

		rec, _ = env.do(t, http.MethodGet, "/api/v1/health/live", "")
		if rec.Code != http.StatusOK {
			t.Errorf("live status = %d, want 200", rec.Code)
		}
	})
}

func TestHealthReady_DatabaseDown(t *testing.T) {
	t.Parallel()

	h := NewHandler(Dependencies{
		Service: newMockService(),
		Index:   newTestEngine(t, true),
		DB:      pingerFunc(func(context.Context) error { return errors.New("connection closed") }),
	})
	handler := NewRouter(h, nil, nil).Setup()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/health/ready", nil))
	if rec.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want 503", rec.Code)
	}
}

func TestRouter_Fallbacks(t *testing.T) {
	t.Parallel()
	env := setupTestRouter(t, true, nil)

	rec, body := env.do(t, http.MethodGet, "/api/v1/unknown", "")
	if rec.Code != http.StatusNotFound || body.Error == nil || body.Error.Code != ErrCodeNotFound {
		t.Errorf("unknown route: status = %d, error = %+v", rec.Code, body.Error)
	}

	rec, _ = env.do(t, http.MethodDelete, "/api/v1/titles", "")
	if rec.Code != http.StatusMethodNotAllowed {
		t.Errorf("DELETE /titles status = %d, want 405", rec.Code)
	}

	env.do(t, http.MethodGet, "/api/v1/titles", "")
	rec, _ = env.do(t, http.MethodGet, "/metrics", "")
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "api_requests_total") {
		t.Errorf("/metrics status = %d, want exposition with api_requests_total", rec.Code)
	}
}

func TestRouter_Swagger(t *testing.T) {
	t.Parallel()
	env := setupTestRouter(t, true, nil)

	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/doc.json", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("/swagger/doc.json status = %d, want 200", rec.Code)
	}

	var doc struct {
		BasePath string                                `json:"basePath"`
		Paths    map[string]map[string]json.RawMessage `json:"paths"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &doc); err != nil {
		t.Fatalf("decode doc.json: %v", err)
	}
	if doc.BasePath != "/api/v1" {
		t.Errorf("basePath = %q, want /api/v1", doc.BasePath)
	}

	// Every mounted /api/v1 route must be documented.
	routes, ok := env.handler.(chi.Routes)
	if !ok {
		t.Fatalf("router %T does not expose its routes", env.handler)
	}
	err := chi.Walk(routes, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		path, found := strings.CutPrefix(route, doc.BasePath)
		if !found {
			return nil
		}
		path = strings.TrimSuffix(path, "/")
		if _, documented := doc.Paths[path][strings.ToLower(method)]; !documented {
			t.Errorf("%s %s is not in doc.json", method, route)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("walk routes: %v", err)
	}

	rec = httptest.NewRecorder()
	env.handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/swagger/index.html", nil))
	if rec.Code != http.StatusOK || !strings.Contains(rec.Body.String(), "swagger-ui") {
		t.Errorf("/swagger/index.html status = %d, want Swagger UI page", rec.Code)
	}
}

func TestRouter_SecurityHeaders(t *testing.T) {
	t.Parallel()
	env := setupTestRouter(t, true, nil)

	rec, _ := env.do(t, http.MethodGet, "/api/v1/titles", "")
	for header, want := range map[string]string{
		"X-Content-Type-Options": "nosniff",
		"X-Frame-Options":        "DENY",
		"Cache-Control":          "no-store",
	} {
		if got := rec.Header().Get(header); got != want {
			t.Errorf("%s = %q, want %q", header, got, want)
		}
	}
}

func TestRouter_RateLimit(t *testing.T) {
	t.Parallel()

	cfg := DefaultChiMiddlewareConfig()
	cfg.RateLimitRequests = 2
	cfg.RateLimitWindow = time.Minute
	env := setupTestRouter(t, true, cfg)

	for i := 0; i < 2; i++ {
		if rec, _ := env.do(t, http.MethodGet, "/api/v1/titles", ""); rec.Code != http.StatusOK {
			t.Fatalf("request %d status = %d, want 200", i+1, rec.Code)
		}
	}
	rec, body := env.do(t, http.MethodGet, "/api/v1/titles", "")
	if rec.Code != http.StatusTooManyRequests || body.Error == nil || body.Error.Code != ErrCodeTooManyRequests {
		t.Errorf("third request status = %d, error = %+v, want 429", rec.Code, body.Error)
	}

	// health has its own, more permissive budget
	if rec, _ := env.do(t, http.MethodGet, "/api/v1/health/live", ""); rec.Code != http.StatusOK {
		t.Errorf("health after API limit status = %d, want 200", rec.Code)
	}
}

func TestRouter_CORS(t *testing.T) {
	t.Parallel()
	env := setupTestRouter(t, true, nil)

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/titles", nil)
	req.Header.Set("Origin", "https://example.com")
	req.Header.Set("Access-Control-Request-Method", "GET")
	rec := httptest.NewRecorder()
	env.handler.ServeHTTP(rec, req)

	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want *", got)
	}
}
