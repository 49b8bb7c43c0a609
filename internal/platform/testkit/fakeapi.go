package testkit

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
)

// FakeAPIPrefix is where FakeAPI mounts its routes, mirroring the real backend
const FakeAPIPrefix = "/api/v1"

// Recorded is one request observed by FakeAPI
// Path is relative to FakeAPIPrefix
type Recorded struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// FakeAPI is an httptest backend routed with chi that records every request
// and answers registered routes with canned JSON. Unregistered routes 404
type FakeAPI struct {
	srv *httptest.Server
	mux *chi.Mux

	mu   sync.Mutex
	reqs []Recorded
}

// NewFakeAPI starts a FakeAPI that is closed when the test ends
func NewFakeAPI(t *testing.T) *FakeAPI {
	t.Helper()
	f := &FakeAPI{mux: chi.NewRouter()}
	f.mux.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = io.WriteString(w, `{"statusCode":404,"message":"Not Found"}`)
	})
	// record wraps the mux so unmatched requests are captured too
	f.srv = httptest.NewServer(f.record(f.mux))
	t.Cleanup(f.srv.Close)
	return f
}

// BaseURL is the URL clients should use as their API base
func (f *FakeAPI) BaseURL() string { return f.srv.URL + FakeAPIPrefix }

// Reply registers a canned JSON answer for method and chi pattern (e.g. "/order/{id}")
func (f *FakeAPI) Reply(method, pattern string, status int, body string) {
	f.Handle(method, pattern, func(w http.ResponseWriter, _ *http.Request) {
		if body == "" {
			w.WriteHeader(status)
			return
		}
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
}

// Handle registers a custom handler for method and chi pattern
func (f *FakeAPI) Handle(method, pattern string, h http.HandlerFunc) {
	f.mux.Method(method, FakeAPIPrefix+pattern, h)
}

// Requests returns a copy of every request seen so far
func (f *FakeAPI) Requests() []Recorded {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]Recorded, len(f.reqs))
	copy(out, f.reqs)
	return out
}

// Last returns the most recent request; it fails the test when none was seen
func (f *FakeAPI) Last(t *testing.T) Recorded {
	t.Helper()
	reqs := f.Requests()
	if len(reqs) == 0 {
		t.Fatalf("fake api saw no requests")
	}
	return reqs[len(reqs)-1]
}

func (f *FakeAPI) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		f.mu.Lock()
		f.reqs = append(f.reqs, Recorded{
			Method: r.Method,
			Path:   strings.TrimPrefix(r.URL.Path, FakeAPIPrefix),
			Query:  r.URL.Query(),
			Header: r.Header.Clone(),
			Body:   body,
		})
		f.mu.Unlock()

		next.ServeHTTP(w, r)
	})
}
