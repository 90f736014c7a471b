package leaderboard

import "sync"

// MemoryStore keeps the serialized board in process memory.
type MemoryStore struct {
	mu   sync.Mutex
	text string
}

// NewMemoryStore returns a store seeded with text.
func NewMemoryStore(text string) *MemoryStore {
	return &MemoryStore{text: text}
}

func (m *MemoryStore) Read() (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.text, nil
}

func (m *MemoryStore) Write(text string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.text = text
	return nil
}
