// Package testutil provides a fake document store server for tests.
package testutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/aretw0/haste/pkg/adapters/memory"
	"github.com/aretw0/haste/pkg/core"
)

// Server serves GET /documents/{key} and POST /documents from a memory.Store.
type Server struct {
	*httptest.Server
	Store *memory.Store

	mu        sync.Mutex
	requests  int
	posts     []string
	nextKey   string
	putStatus int
	putBody   string
}

// NewServer starts a server that is closed when the test ends.
func NewServer(t testing.TB) *Server {
	t.Helper()
	s := &Server{Store: memory.NewStore()}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /documents/{key}", s.handleGet)
	mux.HandleFunc("POST /documents", s.handlePost)

	s.Server = httptest.NewServer(s.count(mux))
	t.Cleanup(s.Close)
	return s
}

// NextKey makes the next successful POST store its document under key.
func (s *Server) NextKey(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextKey = key
}

// FailPuts makes every POST answer with status and the raw body.
func (s *Server) FailPuts(status int, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.putStatus = status
	s.putBody = body
}

// Requests returns how many requests the server has received.
func (s *Server) Requests() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.requests
}

// Posts returns the bodies of every POST received, in order.
func (s *Server) Posts() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.posts...)
}

func (s *Server) count(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests++
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) handleGet(w http.ResponseWriter, r *http.Request) {
	content, err := s.Store.Get(r.Context(), r.PathValue("key"))
	if errors.Is(err, core.ErrNotFound) {
		writeJSON(w, http.StatusNotFound, map[string]any{"message": "Document not found."})
		return
	}
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]any{"message": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": content})
}

func (s *Server) handlePost(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(r.Body)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]any{"message": err.Error()})
		return
	}

	s.mu.Lock()
	s.posts = append(s.posts, string(data))
	status, body := s.putStatus, s.putBody
	key := s.nextKey
	s.nextKey = ""
	s.mu.Unlock()

	if status != 0 {
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
		return
	}

	if key != "" {
		s.Store.Set(key, string(data))
	} else {
		key, err = s.Store.Put(r.Context(), string(data))
		if err != nil {
			writeJSON(w, http.StatusInternalServerError, map[string]any{"message": err.Error()})
			return
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{"key": key})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
