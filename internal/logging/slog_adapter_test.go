// Cinephile - Content-Based Movie Recommendation Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/cinephile

package logging

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestHandler(buf *bytes.Buffer, level zerolog.Level) *SlogHandler {
	return &SlogHandler{logger: zerolog.New(buf).Level(level)}
}

func TestSlogHandler_Enabled(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	h := newTestHandler(&buf, zerolog.WarnLevel)

	tests := []struct {
		level slog.Level
		want  bool
	}{
		{slog.LevelDebug, false},
		{slog.LevelInfo, false},
		{slog.LevelWarn, true},
		{slog.LevelError, true},
	}
	for _, tt := range tests {
		if got := h.Enabled(context.Background(), tt.level); got != tt.want {
			t.Errorf("Enabled(%v) = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestSlogHandler_Handle(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(newTestHandler(&buf, zerolog.DebugLevel))

	logger.Warn("service restarted",
		slog.String("service", "index"),
		slog.Int("attempt", 2),
		slog.Bool("backoff", true),
		slog.Duration("delay", time.Second),
	)

	out := buf.String()
	for _, want := range []string{
		`"level":"warn"`,
		`"message":"service restarted"`,
		`"service":"index"`,
		`"attempt":2`,
		`"backoff":true`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in output: %s", want, out)
		}
	}
}

func TestSlogHandler_WithAttrsAndGroup(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	base := newTestHandler(&buf, zerolog.DebugLevel)
	logger := slog.New(base.WithAttrs([]slog.Attr{slog.String("supervisor", "root")}).WithGroup("event"))

	logger.Info("failure", slog.String("kind", "panic"))

	out := buf.String()
	if !strings.Contains(out, `"supervisor":"root"`) {
		t.Errorf("expected pre-configured attribute, got: %s", out)
	}
	if !strings.Contains(out, `"event.kind":"panic"`) {
		t.Errorf("expected grouped key, got: %s", out)
	}
}

func TestSlogHandler_WithGroupEmpty(t *testing.T) {
	t.Parallel()

	h := NewSlogHandler()
	if h.WithGroup("") != h {
		t.Error("expected empty group to return the same handler")
	}
}

func TestNewSlogLogger(t *testing.T) {
	t.Parallel()

	if NewSlogLogger() == nil {
		t.Fatal("expected non-nil slog logger")
	}
}
