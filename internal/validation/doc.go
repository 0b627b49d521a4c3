// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

// Package validation validates request structs with go-playground/validator v10.
//
// A single validator instance is shared process-wide. Field names in error
// messages use the json/query tag name, so a failure on
//
//	type RateRequest struct {
//	    Rating int `json:"rating" validate:"min=1,max=5"`
//	}
//
// reads "rating must be at most 5". The custom "notblank" tag rejects
// whitespace-only strings.
package validation
