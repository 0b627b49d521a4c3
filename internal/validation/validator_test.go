// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package validation

import (
	"strings"
	"testing"
)

type rateRequest struct {
	Rating int `json:"rating" validate:"min=1,max=5"`
}

type lookupRequest struct {
	Title string `query:"title" validate:"required,notblank,max=20"`
	Limit int    `json:"limit" validate:"omitempty,gte=1,lte=50"`
}

func TestGetValidator_Singleton(t *testing.T) {
	v1 := GetValidator()
	v2 := GetValidator()

	if v1 == nil {
		t.Fatal("GetValidator() returned nil")
	}
	if v1 != v2 {
		t.Error("GetValidator() should return the same instance")
	}
}

func TestValidateStruct(t *testing.T) {
	tests := []struct {
		name      string
		input     interface{}
		wantField string
		wantMsg   string
	}{
		{"valid rating", &rateRequest{Rating: 3}, "", ""},
		{"rating too low", &rateRequest{Rating: 0}, "rating", "rating must be at least 1"},
		{"rating too high", &rateRequest{Rating: 6}, "rating", "rating must be at most 5"},
		{"valid title", &lookupRequest{Title: "Avatar"}, "", ""},
		{"missing title", &lookupRequest{}, "title", "title is required"},
		{"blank title", &lookupRequest{Title: "   "}, "title", "title must not be blank"},
		{"long title", &lookupRequest{Title: strings.Repeat("a", 21)}, "title", "title must be at most 20 characters"},
		{"limit too big", &lookupRequest{Title: "Up", Limit: 51}, "limit", "limit must be less than or equal to 50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateStruct(tt.input)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("ValidateStruct() unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("ValidateStruct() expected error, got nil")
			}
			errs := err.Errors()
			if len(errs) != 1 {
				t.Fatalf("expected 1 field error, got %d: %v", len(errs), err)
			}
			if errs[0].Field() != tt.wantField {
				t.Errorf("Field() = %q, want %q", errs[0].Field(), tt.wantField)
			}
			if errs[0].Error() != tt.wantMsg {
				t.Errorf("message = %q, want %q", errs[0].Error(), tt.wantMsg)
			}
		})
	}
}

func TestToAPIError(t *testing.T) {
	single := ValidateStruct(&rateRequest{Rating: 9}).ToAPIError()
	if single.Code != "VALIDATION_ERROR" {
		t.Errorf("Code = %q", single.Code)
	}
	if single.Details["field"] != "rating" {
		t.Errorf("Details[field] = %v, want rating", single.Details["field"])
	}

	multi := ValidateStruct(&lookupRequest{Title: "", Limit: 99}).ToAPIError()
	fields, ok := multi.Details["fields"].([]map[string]interface{})
	if !ok || len(fields) != 2 {
		t.Fatalf("expected 2 field entries, got %#v", multi.Details["fields"])
	}
	if !strings.Contains(multi.Message, ";") {
		t.Errorf("expected joined message, got %q", multi.Message)
	}

	empty := (&RequestValidationError{}).ToAPIError()
	if empty.Message != "Validation failed" {
		t.Errorf("empty Message = %q", empty.Message)
	}
}
