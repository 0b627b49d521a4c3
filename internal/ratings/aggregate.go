// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package ratings

import (
	"fmt"
	"math"
	"strings"

	"github.com/tomtom215/cinephile/internal/models"
)

const (
	// MaxStars is the width of the star display.
	MaxStars = 5

	FilledStar = "★"
	EmptyStar  = "☆"

	NoRatingsMessage      = "No ratings available"
	NoValidRatingsMessage = "No valid ratings"
)

// Summary is the aggregated view of one rating collection.
type Summary struct {
	// Filled is the rounded mean clamped to 0..MaxStars.
	Filled int
	// Count is the number of numeric ratings included in the mean.
	Count int
	// Entries is the number of raw entries before filtering.
	Entries int
	Average float64
}

// Aggregate reduces raw ratings to a Summary. It never fails: malformed
// input yields an empty summary.
//
// The mean is rounded half to even, so [1, 2] and [2, 3] both give 2 stars.
func Aggregate(raw any) Summary {
	entries, _ := Decode(raw)
	values := Numeric(entries)

	s := Summary{Count: len(values), Entries: len(entries)}
	if len(values) == 0 {
		return s
	}

	var sum float64
	for _, v := range values {
		sum += v
	}
	s.Average = sum / float64(len(values))

	filled := int(math.RoundToEven(s.Average))
	s.Filled = max(0, min(MaxStars, filled))
	return s
}

// Stars renders Filled as exactly MaxStars glyphs, or "" when nothing was rated.
func (s Summary) Stars() string {
	if s.Count == 0 {
		return ""
	}
	return strings.Repeat(FilledStar, s.Filled) + strings.Repeat(EmptyStar, MaxStars-s.Filled)
}

// Message is the text shown in place of stars when there is nothing to show.
func (s Summary) Message() string {
	switch {
	case s.Entries == 0:
		return NoRatingsMessage
	case s.Count == 0:
		return NoValidRatingsMessage
	default:
		return ""
	}
}

// CountLabel renders the rating count, e.g. "(3 ratings)".
func (s Summary) CountLabel() string {
	if s.Count == 1 {
		return "(1 rating)"
	}
	return fmt.Sprintf("(%d ratings)", s.Count)
}

// String is the single-line display form, e.g. "★★★★☆ (3 ratings)".
func (s Summary) String() string {
	if msg := s.Message(); msg != "" {
		return msg
	}
	return s.Stars() + " " + s.CountLabel()
}

// Model converts the summary to its API representation.
func (s Summary) Model() models.RatingSummary {
	return models.RatingSummary{
		Display: s.String(),
		Filled:  s.Filled,
		Count:   s.Count,
		Average: s.Average,
	}
}
