// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package ratings

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestDecode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		raw     any
		want    []any
		wantErr bool
	}{
		{"nil", nil, nil, false},
		{"empty string", "", nil, false},
		{"empty list", "[]", []any{}, false},
		{"json list", "[3, 4]", []any{3.0, 4.0}, false},
		{"json scalar", "4", []any{4.0}, false},
		{"json null", "null", nil, false},
		{"bytes", []byte("[5]"), []any{5.0}, false},
		{"python list", "[3, 'bad', None, True]", []any{3.0, "bad", nil, true}, false},
		{"junk", "not a list", []any{"not a list"}, true},
		{"int slice", []int{1, 2}, []any{1.0, 2.0}, false},
		{"int64 slice", []int64{5}, []any{5.0}, false},
		{"float slice", []float64{2.5}, []any{2.5}, false},
		{"scalar int", 3, []any{3}, false},
		{"unsupported", struct{}{}, []any{struct{}{}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := Decode(tt.raw)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Decode(%v) error = %v, wantErr %v", tt.raw, err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, ErrParse) {
				t.Errorf("error should wrap ErrParse, got %v", err)
			}
			if len(got) == 0 && len(tt.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Decode(%v) = %#v, want %#v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestNumeric(t *testing.T) {
	t.Parallel()

	entries := []any{1.0, "2", true, nil, []any{3.0}, math.NaN(), math.Inf(1), 4, int64(5), float32(1.5)}
	got := Numeric(entries)
	want := []float64{1, 4, 5, 1.5}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Numeric() = %v, want %v", got, want)
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	tests := []struct {
		entries []any
		want    string
	}{
		{nil, "[]"},
		{[]any{3.0, 4.0}, "[3, 4]"},
		{[]any{2.5, 5}, "[2.5, 5]"},
		{[]any{"bad", nil, true}, `["bad", null, true]`},
	}
	for _, tt := range tests {
		if got := Encode(tt.entries); got != tt.want {
			t.Errorf("Encode(%v) = %q, want %q", tt.entries, got, tt.want)
		}
	}
}

func TestParseFormatRoundTrip(t *testing.T) {
	t.Parallel()

	cases := [][]float64{
		{},
		{5},
		{3, 4},
		{1, 2, 3, 4, 5, 5, 5},
		{2.5, 0.1, 4.75},
	}
	for _, values := range cases {
		encoded := Format(values)
		decoded, err := Parse(encoded)
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", encoded, err)
		}
		if len(values) == 0 && len(decoded) == 0 {
			continue
		}
		if !reflect.DeepEqual(decoded, values) {
			t.Errorf("round trip %v -> %q -> %v", values, encoded, decoded)
		}
	}
}

func TestParse_Strict(t *testing.T) {
	t.Parallel()

	for _, in := range []string{"[1, 'x']", "abc", `["3"]`} {
		if _, err := Parse(in); !errors.Is(err, ErrParse) {
			t.Errorf("Parse(%q) error = %v, want ErrParse", in, err)
		}
	}
}

func TestAppend(t *testing.T) {
	t.Parallel()

	tests := []struct {
		stored string
		value  int
		want   string
	}{
		{"", 4, "[4]"},
		{"[]", 4, "[4]"},
		{"[3, 5]", 1, "[3, 5, 1]"},
		{"['x', 2]", 3, `["x", 2, 3]`},
		{"5", 2, "[5, 2]"},
	}
	for _, tt := range tests {
		if got := Append(tt.stored, tt.value); got != tt.want {
			t.Errorf("Append(%q, %d) = %q, want %q", tt.stored, tt.value, got, tt.want)
		}
	}
}
