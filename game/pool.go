package game

// Pool is a fixed-capacity arena. Live records occupy slots [0, Len()) in insertion order;
// removal compacts survivors forward in a single pass. Nothing allocates after NewPool.
type Pool[T any] struct {
	slots []T
	n     int
}

// NewPool preallocates capacity slots
func NewPool[T any](capacity int) *Pool[T] {
	if capacity < 0 {
		capacity = 0
	}
	return &Pool[T]{slots: make([]T, capacity)}
}

// Len returns the number of live records
func (p *Pool[T]) Len() int { return p.n }

// Cap returns the fixed capacity
func (p *Pool[T]) Cap() int { return len(p.slots) }

// Full reports whether Add would fail
func (p *Pool[T]) Full() bool { return p.n >= len(p.slots) }

// Add appends v. It returns false, leaving the pool untouched, when the pool is full.
func (p *Pool[T]) Add(v T) bool {
	if p.n >= len(p.slots) {
		return false
	}
	p.slots[p.n] = v
	p.n++
	return true
}

// At returns a pointer to the i-th live record for in-place mutation
func (p *Pool[T]) At(i int) *T { return &p.slots[i] }

// Live returns the live records. The slice aliases the pool and is only valid until the
// next mutation.
func (p *Pool[T]) Live() []T { return p.slots[:p.n] }

// Compact keeps the records for which keep returns true, preserving their order, and
// returns how many were removed.
func (p *Pool[T]) Compact(keep func(*T) bool) int {
	w := 0
	for i := 0; i < p.n; i++ {
		if !keep(&p.slots[i]) {
			continue
		}
		if w != i {
			p.slots[w] = p.slots[i]
		}
		w++
	}
	removed := p.n - w
	p.truncate(w)
	return removed
}

// RemoveMarked drops every record whose index is set in marked and clears those marks.
// marked must be at least Len() long.
func (p *Pool[T]) RemoveMarked(marked []bool) int {
	w := 0
	for i := 0; i < p.n; i++ {
		if marked[i] {
			marked[i] = false
			continue
		}
		if w != i {
			p.slots[w] = p.slots[i]
		}
		w++
	}
	removed := p.n - w
	p.truncate(w)
	return removed
}

// Clear empties the pool
func (p *Pool[T]) Clear() { p.truncate(0) }

func (p *Pool[T]) truncate(n int) {
	var zero T
	for i := n; i < p.n; i++ {
		p.slots[i] = zero
	}
	p.n = n
}
