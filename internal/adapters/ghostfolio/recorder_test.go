package ghostfolio

import (
	"context"
	"encoding/json"
	"net/url"
	"sync"
	"testing"
)

// call is one request seen by recorder
type call struct {
	Method string
	Path   string
	Query  url.Values
	Body   []byte
}

// recorder is an in-memory Transport answering with canned JSON per method and path
type recorder struct {
	mu      sync.Mutex
	calls   []call
	replies map[string]string
	err     error
}

func newRecorder() *recorder { return &recorder{replies: map[string]string{}} }

func (r *recorder) reply(method, path, body string) *recorder {
	r.replies[method+" "+path] = body
	return r
}

func (r *recorder) record(ctx context.Context, method, path string, q url.Values, body, out any) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c := call{Method: method, Path: path, Query: q}
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}
		c.Body = b
	}
	r.mu.Lock()
	r.calls = append(r.calls, c)
	resp := r.replies[method+" "+path]
	r.mu.Unlock()

	if r.err != nil {
		return r.err
	}
	if out == nil || resp == "" {
		return nil
	}
	return json.Unmarshal([]byte(resp), out)
}

func (r *recorder) Get(ctx context.Context, path string, q url.Values, out any) error {
	return r.record(ctx, "GET", path, q, nil, out)
}

func (r *recorder) Post(ctx context.Context, path string, body, out any) error {
	return r.record(ctx, "POST", path, nil, body, out)
}

func (r *recorder) Put(ctx context.Context, path string, body, out any) error {
	return r.record(ctx, "PUT", path, nil, body, out)
}

func (r *recorder) Delete(ctx context.Context, path string, out any) error {
	return r.record(ctx, "DELETE", path, nil, nil, out)
}

func (r *recorder) last(t *testing.T) call {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.calls) == 0 {
		t.Fatalf("no calls recorded")
	}
	return r.calls[len(r.calls)-1]
}

func (r *recorder) all() []call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]call(nil), r.calls...)
}
