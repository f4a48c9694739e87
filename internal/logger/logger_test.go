package logger

import (
	"bytes"
	"context"
	"log/slog"
	"strings"
	"testing"

	"github.com/GuiiMoreira/jobah-api/internal/config"
)

func TestNewUsesConfiguredLevelAndFormat(t *testing.T) {
	l := New(&config.Config{LogLevel: "info", LogFormat: "json"})
	if !l.Enabled(context.Background(), slog.LevelInfo) {
		t.Errorf("expected info level to be enabled")
	}
	if l.Enabled(context.Background(), slog.LevelDebug) {
		t.Errorf("did not expect debug level to be enabled")
	}
	if _, ok := l.Handler().(*slog.JSONHandler); !ok {
		t.Fatalf("expected JSON handler, got %T", l.Handler())
	}

	text := New(&config.Config{LogLevel: "debug", LogFormat: "TEXT"})
	if _, ok := text.Handler().(*slog.TextHandler); !ok {
		t.Fatalf("expected text handler, got %T", text.Handler())
	}
	if !text.Enabled(context.Background(), slog.LevelDebug) {
		t.Errorf("expected debug level to be enabled")
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]slog.Level{
		"debug":   slog.LevelDebug,
		" WARN ":  slog.LevelWarn,
		"warning": slog.LevelWarn,
		"error":   slog.LevelError,
		"info":    slog.LevelInfo,
		"":        slog.LevelInfo,
		"bogus":   slog.LevelInfo,
	}
	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q) = %v, want %v", in, got, want)
		}
	}
}

func TestNewWithWriterWritesStructuredRecords(t *testing.T) {
	var buf bytes.Buffer
	l := newWithWriter(&buf, "info", "json")
	l.Info("order transitioned", slog.String("order_id", "o-1"), slog.String("to", "SCHEDULED"))

	out := buf.String()
	if !strings.Contains(out, `"order_id":"o-1"`) || !strings.Contains(out, `"to":"SCHEDULED"`) {
		t.Fatalf("unexpected log output: %s", out)
	}
}

func TestNewZap(t *testing.T) {
	l, err := NewZap("debug")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !l.Core().Enabled(-1) {
		t.Fatal("expected debug level to be enabled")
	}

	fallback, err := NewZap("nonsense")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fallback.Core().Enabled(-1) {
		t.Fatal("expected info fallback")
	}
}
