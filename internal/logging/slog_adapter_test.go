// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

package logging

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogHandler_WritesThroughZerolog(t *testing.T) {
	var buf bytes.Buffer
	slogger := NewSlogLogger(zerolog.New(&buf))

	slogger.Warn("service restarted", "service", "http-server", "attempt", 2)

	out := buf.String()
	for _, want := range []string{`"level":"warn"`, `"service":"http-server"`, `"attempt":2`, "service restarted"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in output: %s", want, out)
		}
	}
}

func TestSlogHandler_AttrKinds(t *testing.T) {
	var buf bytes.Buffer
	slogger := NewSlogLogger(zerolog.New(&buf))

	slogger.Info("kinds",
		slog.Bool("ok", true),
		slog.Float64("ratio", 0.5),
		slog.Duration("elapsed", time.Second),
		slog.Any("err", errors.New("boom")),
	)

	out := buf.String()
	for _, want := range []string{`"ok":true`, `"ratio":0.5`, `"elapsed":`, `"err":"boom"`} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %s in output: %s", want, out)
		}
	}
}

func TestSlogHandler_WithGroupAndAttrs(t *testing.T) {
	var buf bytes.Buffer
	handler := NewSlogHandler(zerolog.New(&buf))

	slogger := slog.New(handler.WithAttrs([]slog.Attr{slog.String("tree", "api")}).WithGroup("event"))
	slogger.Error("failure", "name", "http")

	out := buf.String()
	if !strings.Contains(out, `"tree":"api"`) {
		t.Errorf("expected pre-set attribute in output: %s", out)
	}
	if !strings.Contains(out, `"event.name":"http"`) {
		t.Errorf("expected grouped key in output: %s", out)
	}
}

func TestSlogHandler_Enabled(t *testing.T) {
	handler := NewSlogHandler(zerolog.New(&bytes.Buffer{}).Level(zerolog.WarnLevel))

	if handler.Enabled(context.Background(), slog.LevelInfo) {
		t.Error("info should be disabled on a warn-level logger")
	}
	if !handler.Enabled(context.Background(), slog.LevelError) {
		t.Error("error should be enabled on a warn-level logger")
	}
}

func TestSlogToZerologLevel(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug - 4, zerolog.TraceLevel},
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		if got := slogToZerologLevel(tt.in); got != tt.want {
			t.Errorf("slogToZerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
