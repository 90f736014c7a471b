package game

import (
	"encoding/json"
	"testing"
)

func patternStrings(p Pattern) []string {
	out := make([]string, len(p))
	for i, c := range p {
		out[i] = c.String()
	}
	return out
}

func TestPatternGrowThenShrinkRestores(t *testing.T) {
	p := NewPattern()
	grown := p.Grow()
	if got := patternStrings(grown); len(got) != 2 || got[0] != "center" || got[1] != "l1" {
		t.Fatalf("Grow() = %v, want [center l1]", got)
	}
	if back := grown.Shrink(); !back.Equal(p) {
		t.Fatalf("Shrink(Grow()) = %v, want %v", patternStrings(back), patternStrings(p))
	}
	if len(p) != 1 {
		t.Fatalf("Grow mutated its receiver: %v", patternStrings(p))
	}
}

func TestPatternShrinkUndoesGrowAtEveryWidth(t *testing.T) {
	p := NewPattern()
	for n := 1; n < MaxColumns; n++ {
		if len(p) != n {
			t.Fatalf("len = %d, want %d", len(p), n)
		}
		if back := p.Grow().Shrink(); !back.Equal(p) {
			t.Fatalf("width %d: Shrink(Grow()) = %v, want %v", n, patternStrings(back), patternStrings(p))
		}
		p = p.Grow()
	}
	// a full pattern no longer grows, so shrinking drops a column instead
	if back := p.Grow().Shrink(); len(back) != MaxColumns-1 {
		t.Fatalf("full width: Shrink(Grow()) has %d columns, want %d", len(back), MaxColumns-1)
	}
}

func TestPatternGrowsOutwardAlternating(t *testing.T) {
	p := NewPattern()
	for i := 0; i < 10; i++ {
		p = p.Grow()
	}
	want := []string{"center", "l1", "r1", "l2", "r2", "l3", "r3", "l4", "r4", "l5", "r5"}
	got := patternStrings(p)
	if len(got) != len(want) {
		t.Fatalf("len = %d, want %d (%v)", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("column %d = %s, want %s", i, got[i], want[i])
		}
	}
	if !p.Full() {
		t.Fatalf("11-column pattern should be full")
	}
	if again := p.Grow(); !again.Equal(p) {
		t.Fatalf("growing a full pattern changed it: %v", patternStrings(again))
	}
}

func TestPatternShrinkKeepsCenter(t *testing.T) {
	p := NewPattern().Shrink()
	if len(p) != 1 || p[0] != Center {
		t.Fatalf("Shrink([center]) = %v", patternStrings(p))
	}
}

func TestPatternOffsets(t *testing.T) {
	p := NewPattern().Grow().Grow()
	got := p.Offsets(0.6, nil)
	want := []float64{0, -0.6, 0.6}
	if len(got) != len(want) {
		t.Fatalf("Offsets = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Offsets[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPatternJSONUsesColumnNames(t *testing.T) {
	data, err := json.Marshal(NewPattern().Grow().Grow())
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != `["center","l1","r1"]` {
		t.Fatalf("json = %s", data)
	}

	var back Pattern
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if !back.Equal(NewPattern().Grow().Grow()) {
		t.Fatalf("decoded %v", patternStrings(back))
	}

	if err := json.Unmarshal([]byte(`["x9"]`), &back); err == nil {
		t.Fatalf("expected error for unknown column")
	}
}
