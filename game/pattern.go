package game

import (
	"fmt"
	"strconv"
)

// Column is one lane of the firing pattern: 0 is the center, -n is the n-th lane to the
// left and +n the n-th lane to the right.
type Column int

// Center is the lane every pattern starts from and never loses
const Center Column = 0

// MaxColumns is the widest pattern, center plus five lanes a side
const MaxColumns = 11

func (c Column) String() string {
	switch {
	case c == Center:
		return "center"
	case c < 0:
		return "l" + strconv.Itoa(int(-c))
	default:
		return "r" + strconv.Itoa(int(c))
	}
}

func (c Column) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Column) UnmarshalText(text []byte) error {
	s := string(text)
	if s == "center" {
		*c = Center
		return nil
	}
	if len(s) < 2 || (s[0] != 'l' && s[0] != 'r') {
		return fmt.Errorf("invalid column %q", s)
	}
	n, err := strconv.Atoi(s[1:])
	if err != nil || n < 1 || n > MaxColumns/2 {
		return fmt.Errorf("invalid column %q", s)
	}
	if s[0] == 'l' {
		n = -n
	}
	*c = Column(n)
	return nil
}

// Pattern is the ordered set of firing lanes, center first, then lanes alternating left
// and right outward in the order they were gained.
type Pattern []Column

// NewPattern returns the single-lane pattern
func NewPattern() Pattern { return Pattern{Center} }

// Full reports whether Grow would be a no-op
func (p Pattern) Full() bool { return len(p) >= MaxColumns }

// Grow returns a copy with the next lane appended: l1, r1, l2, r2 and so on. A full
// pattern is returned unchanged; awarding a bonus instead is up to the caller.
func (p Pattern) Grow() Pattern {
	if len(p) == 0 {
		return NewPattern()
	}
	if p.Full() {
		return p
	}
	layer := Column((len(p) + 1) / 2)
	next := layer
	if len(p)%2 == 1 {
		next = -layer
	}
	out := make(Pattern, len(p), len(p)+1)
	copy(out, p)
	return append(out, next)
}

// Shrink returns a copy without the most recently gained lane. The center lane stays.
func (p Pattern) Shrink() Pattern {
	if len(p) <= 1 {
		return NewPattern()
	}
	out := make(Pattern, len(p)-1)
	copy(out, p)
	return out
}

// Offsets appends the lateral offset of each lane, in pattern order, to dst
func (p Pattern) Offsets(spacing float64, dst []float64) []float64 {
	for _, c := range p {
		dst = append(dst, float64(c)*spacing)
	}
	return dst
}

// Equal reports whether both patterns list the same lanes in the same order
func (p Pattern) Equal(o Pattern) bool {
	if len(p) != len(o) {
		return false
	}
	for i := range p {
		if p[i] != o[i] {
			return false
		}
	}
	return true
}
