// Package ghostfolio is the client for the portfolio backend REST API (/api/v1)
package ghostfolio

import (
	"context"
	"net/url"

	"folio/internal/core/info"
	"folio/internal/platform/localstore"
)

// Client has one method per backend operation. It holds no per call state
// and is safe for concurrent use
type Client struct {
	t     Transport
	info  *info.Store
	local localstore.Reader
}

// Option customizes a Client
type Option func(*Client)

// WithInfo sets the info store FetchInfo reads from
func WithInfo(s *info.Store) Option {
	return func(c *Client) {
		if s != nil {
			c.info = s
		}
	}
}

// WithLocalStore sets the local key/value store consulted by FetchInfo
func WithLocalStore(r localstore.Reader) Option {
	return func(c *Client) {
		if r != nil {
			c.local = r
		}
	}
}

// NewClient wraps t. Without options FetchInfo reads info.Default and an empty local store
func NewClient(t Transport, opts ...Option) *Client {
	c := &Client{
		t:     t,
		info:  info.Default(),
		local: localstore.Map{},
	}
	for _, o := range opts {
		o(c)
	}
	return c
}

func get[T any](ctx context.Context, c *Client, path string, q url.Values) (T, error) {
	var out T
	if err := c.t.Get(ctx, path, q, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func post[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	var out T
	if err := c.t.Post(ctx, path, body, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func put[T any](ctx context.Context, c *Client, path string, body any) (T, error) {
	var out T
	if err := c.t.Put(ctx, path, body, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

func del[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T
	if err := c.t.Delete(ctx, path, &out); err != nil {
		var zero T
		return zero, err
	}
	return out, nil
}

// normalizer is a wire record that can be mapped to its parsed form
type normalizer[T any] interface {
	normalize() (T, error)
}

func getNormalized[W normalizer[T], T any](ctx context.Context, c *Client, path string) (T, error) {
	w, err := get[W](ctx, c, path, nil)
	if err != nil {
		var zero T
		return zero, err
	}
	return w.normalize()
}

// seg escapes one path segment
func seg(s string) string { return url.PathEscape(s) }
