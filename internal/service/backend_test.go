package service

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"examadmin/internal/apiclient"
)

// fakeBackend is an httptest exam backend that records every request.
type fakeBackend struct {
	mu       sync.Mutex
	requests []string
	bodies   map[string]json.RawMessage
	server   *httptest.Server
}

func newFakeBackend(t *testing.T, routes map[string]http.HandlerFunc) (*fakeBackend, *apiclient.Client) {
	t.Helper()
	fb := &fakeBackend{bodies: map[string]json.RawMessage{}}
	mux := http.NewServeMux()
	for pattern, handler := range routes {
		mux.HandleFunc(pattern, handler)
	}
	fb.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		key := r.Method + " " + r.URL.RequestURI()
		fb.mu.Lock()
		fb.requests = append(fb.requests, key)
		if len(body) > 0 {
			fb.bodies[key] = body
		}
		fb.mu.Unlock()
		r.Body = io.NopCloser(bytes.NewReader(body))
		mux.ServeHTTP(w, r)
	}))
	t.Cleanup(fb.server.Close)
	return fb, apiclient.New(fb.server.URL, nil)
}

// calls returns how many requests matched key ("METHOD /path?query").
func (fb *fakeBackend) calls(key string) int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	n := 0
	for _, r := range fb.requests {
		if r == key {
			n++
		}
	}
	return n
}

func (fb *fakeBackend) count() int {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return len(fb.requests)
}

func (fb *fakeBackend) body(key string) json.RawMessage {
	fb.mu.Lock()
	defer fb.mu.Unlock()
	return fb.bodies[key]
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func respond(status int, v interface{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, status, v)
	}
}

// unreachable returns a client pointed at a server that is already closed.
func unreachable() *apiclient.Client {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()
	return apiclient.New(url, nil)
}
