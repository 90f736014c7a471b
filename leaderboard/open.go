package leaderboard

import (
	"fmt"
	"io"
	"strings"
)

// Open builds a store from a DSN:
//
//	mem:                 in-process only
//	file:<path>          JSON file
//	sqlite:<path>        sqlite kv table
//	convex:<https-url>   Convex deployment
//
// The returned closer releases any handle the store holds; it is never nil.
func Open(dsn string) (Store, io.Closer, error) {
	scheme, rest, _ := strings.Cut(dsn, ":")
	switch scheme {
	case "", "mem":
		return NewMemoryStore(""), nopCloser{}, nil
	case "file":
		if rest == "" {
			return nil, nil, fmt.Errorf("file store needs a path: %q", dsn)
		}
		return NewFileStore(rest), nopCloser{}, nil
	case "sqlite":
		if rest == "" {
			return nil, nil, fmt.Errorf("sqlite store needs a path: %q", dsn)
		}
		s, err := OpenSQLite(rest, DefaultKey)
		if err != nil {
			return nil, nil, err
		}
		return s, s, nil
	case "convex":
		if rest == "" {
			return nil, nil, fmt.Errorf("convex store needs a deployment url: %q", dsn)
		}
		return NewConvexStore(rest, DefaultKey), nopCloser{}, nil
	default:
		return nil, nil, fmt.Errorf("unknown leaderboard store %q", scheme)
	}
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
