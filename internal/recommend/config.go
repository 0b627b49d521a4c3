// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package recommend

import (
	"fmt"
	"time"

	"github.com/tomtom215/cinephile/internal/similarity"
)

// Config contains all configuration for the recommendation engine.
type Config struct {
	// TopN is the maximum number of recommendations returned per query.
	TopN int `json:"top_n"`

	// MaxFeatures caps the similarity vocabulary size.
	MaxFeatures int `json:"max_features"`

	// Workers bounds concurrent matrix row computation. Zero means GOMAXPROCS.
	Workers int `json:"workers"`

	// BuildTimeout bounds a single index build. Zero disables the timeout.
	BuildTimeout time.Duration `json:"build_timeout"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		TopN:         20,
		MaxFeatures:  similarity.DefaultMaxFeatures,
		BuildTimeout: 5 * time.Minute,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.TopN < 1 {
		return fmt.Errorf("top_n must be at least 1, got %d", c.TopN)
	}
	if c.MaxFeatures < 1 {
		return fmt.Errorf("max_features must be at least 1, got %d", c.MaxFeatures)
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must be non-negative, got %d", c.Workers)
	}
	if c.BuildTimeout < 0 {
		return fmt.Errorf("build_timeout must be non-negative, got %s", c.BuildTimeout)
	}
	return nil
}
