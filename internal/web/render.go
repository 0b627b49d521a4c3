// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/tomtom215/cinephile/internal/logging"
	"github.com/tomtom215/cinephile/internal/ratings"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	// Columns is the number of result cards per row.
	Columns = 5

	titleHeightEm = 4.5
)

// card is one recommendation as rendered on the results page.
type card struct {
	Title     string
	Lines     []string
	MovieID   int64
	PosterURL string
	Rating    ratings.Summary
	Rateable  bool
}

// flash is a one-shot status banner shown after a redirect.
type flash struct {
	Kind    string
	Message string
}

// page is the data passed to the layout template.
type page struct {
	Query    string
	Titles   []string
	Searched bool
	Found    bool
	Rows     [][]card
	Flash    *flash
	Scale    []int

	Columns       int
	TitleHeightEm float64
}

func newPage(titles []string) *page {
	return &page{
		Titles:        titles,
		Scale:         []int{5, 4, 3, 2, 1},
		Columns:       Columns,
		TitleHeightEm: titleHeightEm,
	}
}

// renderer holds the parsed templates.
type renderer struct {
	tmpl *template.Template
}

func newRenderer() (*renderer, error) {
	tmpl, err := template.New("web").ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}
	return &renderer{tmpl: tmpl}, nil
}

// render writes the layout with data. Output is buffered so a template
// error still yields a clean 500.
func (rn *renderer) render(w http.ResponseWriter, r *http.Request, status int, data *page) {
	var buf bytes.Buffer
	if err := rn.tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		logging.Ctx(r.Context()).Error().Err(err).Msg("render page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w) //nolint:errcheck // client may have disconnected
}

// chunk splits cards into rows of size n.
func chunk(cards []card, n int) [][]card {
	rows := make([][]card, 0, (len(cards)+n-1)/n)
	for start := 0; start < len(cards); start += n {
		end := min(start+n, len(cards))
		rows = append(rows, cards[start:end])
	}
	return rows
}
