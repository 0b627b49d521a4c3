// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

/*
Package web serves the server-rendered recommendation UI.

Routes:
  - GET  /           title picker
  - GET  /recommend  results for ?title=, five per row
  - POST /rate       appends a rating, then redirects back with 303 See Other

Templates are embedded with go:embed and parsed once at startup. Long titles
are wrapped by FormatTitle so every card has the same three-line header.
*/
package web
