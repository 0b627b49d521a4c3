// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package web

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	// TitleWidth is the maximum number of characters per title line.
	TitleWidth = 25

	// TitleLines is the exact number of lines a formatted title occupies.
	TitleLines = 3

	ellipsis = "..."
)

// FormatTitle wraps title to TitleWidth characters and returns exactly
// TitleLines lines. Short titles are padded with empty lines. Longer ones
// are cut after the last line, whose final three characters become "...".
func FormatTitle(title string) []string {
	lines := wrap(title, TitleWidth)

	out := make([]string, TitleLines)
	if len(lines) > TitleLines {
		copy(out, lines[:TitleLines])
		last := []rune(out[TitleLines-1])
		if len(last) > len(ellipsis) {
			out[TitleLines-1] = string(last[:len(last)-len(ellipsis)]) + ellipsis
		} else {
			out[TitleLines-1] = ellipsis
		}
		return out
	}

	copy(out, lines)
	return out
}

// wrap greedily fills lines of at most width characters. Words longer than
// width are split across lines, and hyphenated words may break after the
// hyphen. Whitespace between words is kept as written, except at line edges.
func wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}

	chunks := splitChunks(text)
	var lines []string

	for len(chunks) > 0 {
		var cur []string
		curLen := 0

		if len(lines) > 0 && isSpace(chunks[0]) {
			chunks = chunks[1:]
		}

		for len(chunks) > 0 {
			n := utf8.RuneCountInString(chunks[0])
			if curLen+n > width {
				break
			}
			cur = append(cur, chunks[0])
			curLen += n
			chunks = chunks[1:]
		}

		if len(chunks) > 0 && utf8.RuneCountInString(chunks[0]) > width && curLen < width {
			head, tail := splitRunes(chunks[0], width-curLen)
			cur = append(cur, head)
			chunks[0] = tail
		}

		if len(cur) > 0 && isSpace(cur[len(cur)-1]) {
			cur = cur[:len(cur)-1]
		}
		if len(cur) > 0 {
			lines = append(lines, strings.Join(cur, ""))
		}
	}

	return lines
}

// splitChunks breaks text into alternating word and whitespace chunks.
// A word containing a hyphen between two letters is split after the hyphen.
func splitChunks(text string) []string {
	var chunks []string
	runes := []rune(text)

	for i := 0; i < len(runes); {
		j := i
		space := unicode.IsSpace(runes[i])
		for j < len(runes) && unicode.IsSpace(runes[j]) == space {
			if !space && runes[j] == '-' && j > i && j+1 < len(runes) &&
				unicode.IsLetter(runes[j-1]) && unicode.IsLetter(runes[j+1]) {
				j++
				break
			}
			j++
		}
		chunks = append(chunks, string(runes[i:j]))
		i = j
	}

	return chunks
}

func splitRunes(s string, n int) (head, tail string) {
	r := []rune(s)
	if n >= len(r) {
		return s, ""
	}
	return string(r[:n]), string(r[n:])
}

func isSpace(chunk string) bool {
	return strings.TrimSpace(chunk) == ""
}
