package leaderboard

import (
	"fmt"
	"sync"
)

// Store is the key-value accessor the board is persisted through. Read returns "" when
// nothing has been stored yet.
type Store interface {
	Read() (string, error)
	Write(text string) error
}

// Load reads and parses the board. A read failure is returned as is; malformed text
// produces an empty board and an error wrapping ErrMalformed.
func Load(s Store) (Board, error) {
	if l, ok := s.(sync.Locker); ok {
		l.Lock()
		defer l.Unlock()
	}
	return load(s)
}

func load(s Store) (Board, error) {
	text, err := s.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard: %w", err)
	}
	return Parse(text)
}

// Record appends e to the stored board and writes the result back. Malformed stored text
// is left alone: the update is skipped and an empty board is returned with an error
// wrapping ErrMalformed. Read or write failures leave the store untouched.
//
// A store that is also a sync.Locker is held for the whole read-modify-write.
func Record(s Store, e Entry) (Board, error) {
	if l, ok := s.(sync.Locker); ok {
		l.Lock()
		defer l.Unlock()
	}
	board, err := load(s)
	if err != nil {
		return board, err
	}

	board = board.Insert(e)
	text, err := board.Encode()
	if err != nil {
		return nil, err
	}
	if err := s.Write(text); err != nil {
		return nil, fmt.Errorf("failed to write leaderboard: %w", err)
	}
	return board, nil
}

// LockedStore serializes Load and Record calls on a store shared by several games
type LockedStore struct {
	sync.Mutex
	Store
}

// NewLocked wraps s
func NewLocked(s Store) *LockedStore {
	return &LockedStore{Store: s}
}
