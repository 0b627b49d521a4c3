// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

// Package ratings decodes, encodes and aggregates per-movie rating lists.
//
// Ratings are stored as a serialized list in the movies table, e.g. "[3, 4, 5]".
// Rows imported from older datasets may hold single-quoted lists, bare scalars
// or junk; Decode accepts all of them and Aggregate never fails, so a bad
// record only changes how that movie's stars render.
//
//	s := ratings.Aggregate("[3, 4]")
//	s.Filled        // 4 (3.5 rounds half to even)
//	s.Count         // 2
//	s.String()      // "★★★★☆ (2 ratings)"
package ratings
