package game

import (
	"testing"
	"time"
)

func TestChainResetsAfterWindow(t *testing.T) {
	c := NewChainTracker(0.8, 9)
	t0 := time.Unix(1_700_000_000, 0)

	steps := []struct {
		at   time.Duration
		want int
	}{
		{0, 1},
		{500 * time.Millisecond, 2},
		{2 * time.Second, 1},
	}
	for _, s := range steps {
		if got := c.RegisterKill(t0.Add(s.at)); got != s.want {
			t.Fatalf("kill at %v: chain = %d, want %d", s.at, got, s.want)
		}
	}
}

func TestChainWindowIsInclusive(t *testing.T) {
	c := NewChainTracker(0.8, 9)
	t0 := time.Unix(1_700_000_000, 0)
	c.RegisterKill(t0)
	if got := c.RegisterKill(t0.Add(800 * time.Millisecond)); got != 2 {
		t.Fatalf("kill exactly at the window edge: chain = %d, want 2", got)
	}
}

func TestChainCapsAtMax(t *testing.T) {
	c := NewChainTracker(0.8, 9)
	t0 := time.Unix(1_700_000_000, 0)
	var got int
	for i := 0; i < 20; i++ {
		got = c.RegisterKill(t0.Add(time.Duration(i) * 100 * time.Millisecond))
	}
	if got != 9 {
		t.Fatalf("chain = %d, want 9", got)
	}
}

func TestChainScoresAccumulate(t *testing.T) {
	c := NewChainTracker(0.8, 9)
	t0 := time.Unix(1_700_000_000, 0)
	score := 0
	for i := 0; i < 3; i++ {
		score += 100 * c.RegisterKill(t0.Add(time.Duration(i)*200*time.Millisecond))
	}
	if score != 600 {
		t.Fatalf("score = %d, want 600", score)
	}
}

func TestChainLabelText(t *testing.T) {
	cases := []struct {
		label ChainLabel
		want  string
	}{
		{ChainLabel{Chain: 1}, "x1"},
		{ChainLabel{Chain: 8}, "x8"},
		{ChainLabel{Chain: 12}, "x12"},
		{ChainLabel{Chain: 3, Max: true}, "MAX"},
	}
	for _, c := range cases {
		if got := c.label.Text(); got != c.want {
			t.Fatalf("Text(%+v) = %q, want %q", c.label, got, c.want)
		}
	}
}
