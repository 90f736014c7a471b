package gamelog

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestTextAdapterWritesKeyValues(t *testing.T) {
	var buf bytes.Buffer
	l := NewText(&buf, slog.LevelInfo).With("session", "s1")

	l.Info("game over", "score", 800)
	l.Debug("hidden")

	out := buf.String()
	if !strings.Contains(out, "game over") || !strings.Contains(out, "score=800") {
		t.Fatalf("missing record fields: %q", out)
	}
	if !strings.Contains(out, "session=s1") {
		t.Fatalf("expected attached key-values, got %q", out)
	}
	if strings.Contains(out, "hidden") {
		t.Fatalf("debug record should be filtered at info level: %q", out)
	}
}

func TestNopDiscards(t *testing.T) {
	var l Logger = Nop()
	l.Info("x")
	l.Warn("x")
	l.Error("x")
	l.Debug("x")
}

func TestWithHelper(t *testing.T) {
	var buf bytes.Buffer
	var l Logger = NewText(&buf, slog.LevelInfo)
	With(l, "room", "r1").Warn("dropped")
	if !strings.Contains(buf.String(), "room=r1") {
		t.Fatalf("With did not attach key-values: %q", buf.String())
	}

	nop := Nop()
	if With(nop, "k", "v") != nop {
		t.Fatal("With should return loggers without key-value support unchanged")
	}
}
