// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package web

import (
	"reflect"
	"strings"
	"testing"
	"unicode/utf8"
)

func TestFormatTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		title string
		want  []string
	}{
		{
			name:  "empty title",
			title: "",
			want:  []string{"", "", ""},
		},
		{
			name:  "whitespace only",
			title: "   ",
			want:  []string{"", "", ""},
		},
		{
			name:  "short title padded",
			title: "Avatar",
			want:  []string{"Avatar", "", ""},
		},
		{
			name:  "wraps at word boundary",
			title: "Pirates of the Caribbean: At World's End",
			want:  []string{"Pirates of the Caribbean:", "At World's End", ""},
		},
		{
			name:  "breaks after hyphen",
			title: "Spider-Man: Into the Spider-Verse Extended",
			want:  []string{"Spider-Man: Into the", "Spider-Verse Extended", ""},
		},
		{
			name:  "long word fills the current line",
			title: "Up " + strings.Repeat("x", 30),
			want:  []string{"Up " + strings.Repeat("x", 22), strings.Repeat("x", 8), ""},
		},
		{
			name:  "exactly three lines",
			title: strings.Repeat("a", 60),
			want:  []string{strings.Repeat("a", 25), strings.Repeat("a", 25), strings.Repeat("a", 10)},
		},
		{
			name:  "truncated with ellipsis",
			title: strings.Repeat("a", 80),
			want:  []string{strings.Repeat("a", 25), strings.Repeat("a", 25), strings.Repeat("a", 22) + "..."},
		},
		{
			name: "short third line becomes ellipsis",
			title: strings.Repeat("a", 25) + " " + strings.Repeat("b", 25) + " cc " +
				strings.Repeat("d", 24),
			want: []string{strings.Repeat("a", 25), strings.Repeat("b", 25), "..."},
		},
		{
			name:  "counts characters not bytes",
			title: "Amélie Amélie Amélie Amélie",
			want:  []string{"Amélie Amélie Amélie", "Amélie", ""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := FormatTitle(tt.title)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FormatTitle(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestFormatTitle_Invariants(t *testing.T) {
	t.Parallel()

	titles := []string{
		"The Lord of the Rings: The Fellowship of the Ring",
		"Dr. Strangelove or: How I Learned to Stop Worrying and Love the Bomb",
		"Night of the Day of the Dawn of the Son of the Bride of the Return of the Revenge of the Terror of the Attack of the Evil, Mutant, Alien, Flesh Eating, Hellbound, Zombified Living Dead",
		strings.Repeat("supercalifragilistic", 10),
	}

	for _, title := range titles {
		lines := FormatTitle(title)
		if len(lines) != TitleLines {
			t.Errorf("FormatTitle(%q) returned %d lines, want %d", title, len(lines), TitleLines)
		}
		for i, line := range lines {
			if n := utf8.RuneCountInString(line); n > TitleWidth {
				t.Errorf("FormatTitle(%q) line %d has %d characters, want <= %d", title, i, n, TitleWidth)
			}
		}
	}
}

func TestChunk(t *testing.T) {
	t.Parallel()

	cards := make([]card, 12)
	rows := chunk(cards, Columns)
	if len(rows) != 3 {
		t.Fatalf("chunk(12) = %d rows, want 3", len(rows))
	}
	if len(rows[0]) != 5 || len(rows[1]) != 5 || len(rows[2]) != 2 {
		t.Errorf("row sizes = %d, %d, %d, want 5, 5, 2", len(rows[0]), len(rows[1]), len(rows[2]))
	}
	if got := chunk(nil, Columns); len(got) != 0 {
		t.Errorf("chunk(nil) = %d rows, want 0", len(got))
	}
}
