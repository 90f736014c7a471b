package leaderboard

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync"
	"testing"
)

func roundTrip(t *testing.T, s Store) {
	t.Helper()

	got, err := s.Read()
	if err != nil {
		t.Fatalf("initial Read: %v", err)
	}
	if got != "" {
		t.Fatalf("initial Read = %q, want empty", got)
	}

	if _, err := Record(s, Entry{Name: "A", Score: 500, Timestamp: 1}); err != nil {
		t.Fatalf("Record A: %v", err)
	}
	board, err := Record(s, Entry{Name: "B", Score: 800, Timestamp: 2})
	if err != nil {
		t.Fatalf("Record B: %v", err)
	}
	if len(board) != 2 || board[0].Name != "B" {
		t.Fatalf("board = %+v", board)
	}

	loaded, err := Load(s)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(loaded) != 2 || loaded[0] != board[0] || loaded[1] != board[1] {
		t.Fatalf("Load = %+v, want %+v", loaded, board)
	}
}

func TestFileStore(t *testing.T) {
	roundTrip(t, NewFileStore(filepath.Join(t.TempDir(), "nested", "scores.json")))
}

func TestSQLiteStore(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "scores.db"), "")
	if err != nil {
		t.Fatalf("OpenSQLite: %v", err)
	}
	defer s.Close()
	roundTrip(t, s)
}

// fakeConvex emulates the kv:get / kv:set functions of a deployment.
func fakeConvex(t *testing.T) *httptest.Server {
	t.Helper()
	var mu sync.Mutex
	values := map[string]string{}

	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		var req convexRequest
		if err := json.Unmarshal(body, &req); err != nil {
			http.Error(w, "bad body", http.StatusBadRequest)
			return
		}
		key, _ := req.Args["key"].(string)

		mu.Lock()
		defer mu.Unlock()
		switch {
		case r.URL.Path == "/api/query" && req.Path == "kv:get":
			v, ok := values[key]
			if !ok {
				w.Write([]byte(`{"status":"success","value":null}`))
				return
			}
			raw, _ := json.Marshal(v)
			w.Write([]byte(`{"status":"success","value":` + string(raw) + `}`))
		case r.URL.Path == "/api/mutation" && req.Path == "kv:set":
			values[key], _ = req.Args["value"].(string)
			w.Write([]byte(`{"status":"success","value":null}`))
		default:
			w.Write([]byte(`{"status":"error","errorMessage":"no such function"}`))
		}
	}))
}

func TestConvexStore(t *testing.T) {
	srv := fakeConvex(t)
	defer srv.Close()
	roundTrip(t, NewConvexStore(srv.URL+"/", ""))
}

func TestConvexStoreSurfacesErrors(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	s := NewConvexStore(srv.URL, "")
	if _, err := s.Read(); err == nil {
		t.Fatalf("expected read error on 500")
	}
	if err := s.Write("[]"); err == nil {
		t.Fatalf("expected write error on 500")
	}
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()
	cases := []struct {
		dsn     string
		wantErr bool
	}{
		{"mem:", false},
		{"", false},
		{"file:" + filepath.Join(dir, "a.json"), false},
		{"sqlite:" + filepath.Join(dir, "a.db"), false},
		{"convex:https://example.convex.cloud", false},
		{"file:", true},
		{"redis://localhost", true},
	}
	for _, tc := range cases {
		t.Run(tc.dsn, func(t *testing.T) {
			s, closer, err := Open(tc.dsn)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("Open(%q) expected error", tc.dsn)
				}
				return
			}
			if err != nil {
				t.Fatalf("Open(%q): %v", tc.dsn, err)
			}
			defer closer.Close()
			if s == nil {
				t.Fatalf("Open(%q) returned nil store", tc.dsn)
			}
		})
	}
}
