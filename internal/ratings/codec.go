// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package ratings

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
)

// ErrParse reports a rating list that could not be decoded. Callers outside
// this package never see it: aggregation and decoding degrade instead.
var ErrParse = errors.New("ratings: malformed rating list")

// Decode turns a stored or submitted rating collection into its entries.
//
// Accepted forms are numeric slices, []any, []string, a serialized list such
// as "[3, 4]", a serialized scalar such as "4", and nil. A serialized value
// that is neither JSON nor a bracketed list is kept as a single string entry
// and reported with ErrParse; the entries are still usable.
func Decode(raw any) ([]any, error) {
	switch v := raw.(type) {
	case nil:
		return nil, nil
	case []any:
		return v, nil
	case []float64:
		out := make([]any, len(v))
		for i, f := range v {
			out[i] = f
		}
		return out, nil
	case []int:
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = float64(n)
		}
		return out, nil
	case []int64:
		out := make([]any, len(v))
		for i, n := range v {
			out[i] = float64(n)
		}
		return out, nil
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out, nil
	case []byte:
		return decodeString(string(v))
	case string:
		return decodeString(v)
	case float64, float32, int, int64, int32:
		return []any{v}, nil
	default:
		return []any{v}, fmt.Errorf("%w: unsupported type %T", ErrParse, raw)
	}
}

func decodeString(s string) ([]any, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	var parsed any
	if err := json.Unmarshal([]byte(s), &parsed); err == nil {
		switch p := parsed.(type) {
		case nil:
			return nil, nil
		case []any:
			return p, nil
		default:
			return []any{p}, nil
		}
	}

	if strings.HasPrefix(s, "[") && strings.HasSuffix(s, "]") {
		return decodeLoose(s[1 : len(s)-1]), nil
	}

	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return []any{f}, nil
	}
	return []any{s}, fmt.Errorf("%w: %q", ErrParse, truncate(s, 40))
}

// decodeLoose splits a bracketed list that is not valid JSON, such as one
// written with single quotes or None/True literals.
func decodeLoose(inner string) []any {
	if strings.TrimSpace(inner) == "" {
		return nil
	}
	parts := strings.Split(inner, ",")
	out := make([]any, 0, len(parts))
	for _, part := range parts {
		tok := strings.TrimSpace(part)
		switch tok {
		case "None", "null", "":
			out = append(out, nil)
		case "True", "true":
			out = append(out, true)
		case "False", "false":
			out = append(out, false)
		default:
			if f, err := strconv.ParseFloat(tok, 64); err == nil {
				out = append(out, f)
				continue
			}
			out = append(out, strings.Trim(tok, `'"`))
		}
	}
	return out
}

// Numeric returns the finite numeric entries in order. Booleans, strings,
// nulls, nested values, NaN and infinities are dropped.
func Numeric(entries []any) []float64 {
	out := make([]float64, 0, len(entries))
	for _, e := range entries {
		var f float64
		switch v := e.(type) {
		case float64:
			f = v
		case float32:
			f = float64(v)
		case int:
			f = float64(v)
		case int64:
			f = float64(v)
		case int32:
			f = float64(v)
		case json.Number:
			parsed, err := v.Float64()
			if err != nil {
				continue
			}
			f = parsed
		default:
			continue
		}
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// Encode serializes entries in the stored form, e.g. [3, 4, 5].
// Numbers use the shortest representation that parses back exactly.
func Encode(entries []any) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range entries {
		if i > 0 {
			b.WriteString(", ")
		}
		switch v := e.(type) {
		case float64:
			b.WriteString(formatNumber(v))
		case int:
			b.WriteString(strconv.Itoa(v))
		case int64:
			b.WriteString(strconv.FormatInt(v, 10))
		default:
			if encoded, err := json.Marshal(v); err == nil {
				b.Write(encoded)
			} else {
				b.WriteString("null")
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}

func formatNumber(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Format serializes a numeric list, the inverse of Parse.
func Format(values []float64) string {
	entries := make([]any, len(values))
	for i, v := range values {
		entries[i] = v
	}
	return Encode(entries)
}

// Parse strictly decodes a serialized numeric list. Unlike Decode it fails
// with ErrParse on any non-numeric entry.
func Parse(s string) ([]float64, error) {
	entries, err := decodeString(s)
	if err != nil {
		return nil, err
	}
	values := Numeric(entries)
	if len(values) != len(entries) {
		return nil, fmt.Errorf("%w: non-numeric entries in %q", ErrParse, truncate(s, 40))
	}
	return values, nil
}

// Append decodes stored, appends value and re-encodes. Existing entries,
// including non-numeric legacy ones, are preserved in order.
func Append(stored string, value int) string {
	entries, _ := Decode(stored)
	entries = append(entries, float64(value))
	return Encode(entries)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}
