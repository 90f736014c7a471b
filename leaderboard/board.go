// Package leaderboard keeps the shared top-10 score list. The list travels as a JSON array
// of {name, score, timestamp} through whatever key-value Store the host provides.
package leaderboard

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MaxEntries is the number of scores kept on the board.
const MaxEntries = 10

// DefaultKey is the key the board is stored under in shared stores.
const DefaultKey = "game3-highscores-v1"

// ErrMalformed marks stored text that could not be decoded. Callers treat the board as empty.
var ErrMalformed = errors.New("malformed leaderboard")

// Entry is one finished run.
type Entry struct {
	Name      string `json:"name" msgpack:"name"`
	Score     int    `json:"score" msgpack:"score"`
	Timestamp int64  `json:"timestamp" msgpack:"timestamp"` // unix milliseconds
}

// Board is ordered by descending score and never longer than MaxEntries.
type Board []Entry

// Parse decodes stored text. Blank text is an empty board. Malformed text yields an empty
// board together with an error wrapping ErrMalformed.
func Parse(text string) (Board, error) {
	if strings.TrimSpace(text) == "" {
		return Board{}, nil
	}
	var b Board
	if err := json.Unmarshal([]byte(text), &b); err != nil {
		return Board{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	if b == nil {
		b = Board{}
	}
	return b.normalize(), nil
}

// Encode renders the board as a JSON array. An empty board encodes as "[]".
func (b Board) Encode() (string, error) {
	if b == nil {
		b = Board{}
	}
	data, err := json.Marshal(b)
	if err != nil {
		return "", fmt.Errorf("failed to encode leaderboard: %w", err)
	}
	return string(data), nil
}

// Insert returns a new board with e added, sorted and truncated. The receiver is untouched.
func (b Board) Insert(e Entry) Board {
	out := make(Board, 0, len(b)+1)
	out = append(out, b...)
	out = append(out, e)
	return out.normalize()
}

// Top returns at most n leading entries
func (b Board) Top(n int) Board {
	if n < 0 {
		n = 0
	}
	if n < len(b) {
		return b[:n]
	}
	return b
}

// Rank returns the 1-based position of the first entry equal to e, or 0 if absent.
func (b Board) Rank(e Entry) int {
	for i, got := range b {
		if got == e {
			return i + 1
		}
	}
	return 0
}

func (b Board) normalize() Board {
	// Stable keeps earlier entries ahead of later ones on equal scores.
	sort.SliceStable(b, func(i, j int) bool {
		return b[i].Score > b[j].Score
	})
	if len(b) > MaxEntries {
		b = b[:MaxEntries]
	}
	return b
}
