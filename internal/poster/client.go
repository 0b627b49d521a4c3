// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package poster

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	gobreaker "github.com/sony/gobreaker/v2"
	"golang.org/x/time/rate"

	"github.com/tomtom215/cinephile/internal/config"
	"github.com/tomtom215/cinephile/internal/logging"
	"github.com/tomtom215/cinephile/internal/metrics"
)

// ErrExternalService marks a TMDB failure. Client.Poster absorbs it; it is
// exported so tests and callers of Lookup can classify errors.
var ErrExternalService = errors.New("external service error")

// errPosterNotFound means TMDB answered but has no poster for the movie.
var errPosterNotFound = errors.New("poster not found")

const (
	// maxBodySize bounds how much of a TMDB response is decoded.
	maxBodySize = 1 << 20
	// maxErrorBodySize bounds how much of an error response is logged.
	maxErrorBodySize = 4 * 1024
)

// movieResponse is the subset of TMDB's /3/movie/{id} payload we read.
type movieResponse struct {
	ID         int64  `json:"id"`
	Title      string `json:"title"`
	PosterPath string `json:"poster_path"`
}

// Client looks up poster URLs on TMDB. It is safe for concurrent use.
type Client struct {
	cfg        *config.TMDBConfig
	httpClient *http.Client
	limiter    *rate.Limiter
	breaker    *gobreaker.CircuitBreaker[string]
	cache      Cache
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithBreakerName names the circuit breaker. Used by tests so that
// independent clients do not share breaker metrics.
func WithBreakerName(name string) Option {
	return func(c *Client) { c.breaker = newBreaker(name) }
}

// NewClient creates a TMDB poster client. A nil cache disables caching.
func NewClient(cfg *config.TMDBConfig, c Cache, opts ...Option) *Client {
	if c == nil {
		c = NoopCache{}
	}

	rps := cfg.RequestsPerSecond
	if rps <= 0 {
		rps = 20
	}
	burst := cfg.Burst
	if burst < 1 {
		burst = 1
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	client := &Client{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(rate.Limit(rps), burst),
		cache:      c,
	}
	for _, opt := range opts {
		opt(client)
	}
	if client.breaker == nil {
		client.breaker = newBreaker(breakerName)
	}
	return client
}

// Enabled reports whether lookups can reach TMDB at all.
func (c *Client) Enabled() bool {
	return c.cfg.Enabled && c.cfg.APIKey != ""
}

// BreakerState returns the circuit breaker state: closed, half-open or open.
func (c *Client) BreakerState() string {
	return stateToString(c.breaker.State())
}

// CacheBackend returns the name of the configured cache backend.
func (c *Client) CacheBackend() string {
	return c.cache.Backend()
}

// Poster returns the poster URL for movieID, or ("", false) when it is not
// available for any reason. It never returns an error.
func (c *Client) Poster(ctx context.Context, movieID int64) (string, bool) {
	posterURL, err := c.Lookup(ctx, movieID)
	switch {
	case err == nil:
		metrics.PosterFetches.WithLabelValues("found").Inc()
		return posterURL, true
	case errors.Is(err, errPosterNotFound):
		metrics.PosterFetches.WithLabelValues("missing").Inc()
	case errors.Is(err, errSkipped):
		metrics.PosterFetches.WithLabelValues("skipped").Inc()
	case isBreakerRejection(err):
		metrics.PosterFetches.WithLabelValues("rejected").Inc()
		logging.Ctx(ctx).Debug().Int64("movie_id", movieID).Msg("Poster lookup rejected by circuit breaker")
	default:
		metrics.PosterFetches.WithLabelValues("error").Inc()
		logging.Ctx(ctx).Warn().Err(err).Int64("movie_id", movieID).Msg("Poster lookup failed")
	}
	return "", false
}

var errSkipped = errors.New("poster lookup skipped")

// Lookup resolves the poster URL for movieID through the cache, the rate
// limiter and the circuit breaker. Errors wrap ErrExternalService, except
// for skipped lookups and movies TMDB has no poster for.
func (c *Client) Lookup(ctx context.Context, movieID int64) (string, error) {
	if movieID <= 0 {
		return "", fmt.Errorf("%w: missing movie id", errSkipped)
	}
	if !c.Enabled() {
		return "", fmt.Errorf("%w: tmdb disabled or api key not set", errSkipped)
	}

	backend := c.cache.Backend()
	if cached, ok := c.cache.Get(ctx, movieID); ok {
		metrics.RecordPosterCacheLookup(backend, true)
		if cached == "" {
			return "", errPosterNotFound
		}
		return cached, nil
	}
	if backend != BackendNone {
		metrics.RecordPosterCacheLookup(backend, false)
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return "", fmt.Errorf("%w: rate limit wait: %v", ErrExternalService, err)
	}

	posterURL, err := c.breaker.Execute(func() (string, error) {
		return c.fetch(ctx, movieID)
	})
	recordBreakerResult(c.breaker, err)

	switch {
	case err == nil:
		c.cache.Set(ctx, movieID, posterURL)
		return posterURL, nil
	case errors.Is(err, errPosterNotFound):
		c.cache.Set(ctx, movieID, "")
		return "", err
	case isBreakerRejection(err):
		return "", fmt.Errorf("%w: %v", ErrExternalService, err)
	default:
		return "", err
	}
}

// fetch performs one TMDB request.
func (c *Client) fetch(ctx context.Context, movieID int64) (string, error) {
	endpoint := fmt.Sprintf("%s/3/movie/%d?api_key=%s",
		strings.TrimSuffix(c.cfg.BaseURL, "/"), movieID, url.QueryEscape(c.cfg.APIKey))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("%w: build request: %v", ErrExternalService, redact(err))
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	metrics.TMDBRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return "", fmt.Errorf("%w: request failed: %v", ErrExternalService, redact(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", errPosterNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("%w: status %d: %s", ErrExternalService, resp.StatusCode, readBodyForError(resp.Body))
	}

	var payload movieResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodySize)).Decode(&payload); err != nil {
		return "", fmt.Errorf("%w: decode response: %v", ErrExternalService, err)
	}
	if payload.PosterPath == "" {
		return "", errPosterNotFound
	}
	return joinImageURL(c.cfg.ImageBaseURL, payload.PosterPath), nil
}

// joinImageURL joins base and path with exactly one slash.
func joinImageURL(base, path string) string {
	return strings.TrimSuffix(base, "/") + "/" + strings.TrimPrefix(path, "/")
}

// redact strips the request URL, which carries the API key, from
// transport errors.
func redact(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}

// readBodyForError reads at most maxErrorBodySize bytes of an error response.
func readBodyForError(r io.Reader) string {
	body, err := io.ReadAll(io.LimitReader(r, maxErrorBodySize))
	if err != nil {
		return "(failed to read response body)"
	}
	return strings.TrimSpace(string(body))
}
