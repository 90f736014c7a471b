package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"waveshooter/leaderboard"
)

func fixedNow() time.Time { return time.UnixMilli(1700000000000) }

func TestAddListClear(t *testing.T) {
	store := leaderboard.NewMemoryStore("")
	var out bytes.Buffer

	for _, args := range [][]string{{"add", "A", "500"}, {"add", "B", "800"}} {
		out.Reset()
		if err := run(store, args, &out, fixedNow); err != nil {
			t.Fatalf("run %v: %v", args, err)
		}
	}

	out.Reset()
	if err := run(store, []string{"list", "-n", "1"}, &out, fixedNow); err != nil {
		t.Fatalf("list: %v", err)
	}
	if got := out.String(); !strings.Contains(got, "B") || strings.Count(got, "\n") != 2 {
		t.Fatalf("list -n 1 output:\n%s", got)
	}

	out.Reset()
	if err := run(store, []string{"list", "-json"}, &out, fixedNow); err != nil {
		t.Fatalf("list -json: %v", err)
	}
	want := `[{"name":"B","score":800,"timestamp":1700000000000},{"name":"A","score":500,"timestamp":1700000000000}]`
	if got := strings.TrimSpace(out.String()); got != want {
		t.Fatalf("json = %s, want %s", got, want)
	}

	if err := run(store, []string{"clear"}, &out, fixedNow); err != nil {
		t.Fatalf("clear: %v", err)
	}
	out.Reset()
	if err := run(store, nil, &out, fixedNow); err != nil {
		t.Fatalf("default list: %v", err)
	}
	if !strings.Contains(out.String(), "no scores yet") {
		t.Fatalf("after clear: %q", out.String())
	}
}

func TestRunErrors(t *testing.T) {
	store := leaderboard.NewMemoryStore("")
	for _, args := range [][]string{
		{"add", "A"},
		{"add", "A", "lots"},
		{"frobnicate"},
	} {
		if err := run(store, args, &bytes.Buffer{}, fixedNow); err == nil {
			t.Fatalf("run %v: expected an error", args)
		}
	}
}

func TestListWarnsOnMalformedBoard(t *testing.T) {
	store := leaderboard.NewMemoryStore("{")
	var out bytes.Buffer
	if err := run(store, []string{"list"}, &out, fixedNow); err != nil {
		t.Fatalf("list: %v", err)
	}
	if !strings.Contains(out.String(), "warning") || !strings.Contains(out.String(), "no scores yet") {
		t.Fatalf("output = %q", out.String())
	}
}

func TestAddRefusesMalformedBoard(t *testing.T) {
	store := leaderboard.NewMemoryStore("{")
	if err := run(store, []string{"add", "A", "10"}, &bytes.Buffer{}, fixedNow); err == nil {
		t.Fatal("add over a malformed board should fail")
	}
	if stored, _ := store.Read(); stored != "{" {
		t.Fatalf("stored = %q, want untouched", stored)
	}
}
