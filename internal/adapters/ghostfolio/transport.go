package ghostfolio

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"folio/internal/core/version"
	perr "folio/internal/platform/errors"
	"folio/internal/platform/logger"

	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

const (
	// DefaultBaseURL is where a self hosted backend listens out of the box
	DefaultBaseURL = "http://localhost:3333/api/v1"

	defaultTimeout  = 30 * time.Second
	defaultMaxBody  = 8 << 20
	errorBodyLimit  = 2048
	headerRequestID = "X-Request-ID"
)

// Transport issues verb specific requests against the API base.
// path is relative to the base URL; out may be nil when the body is not needed
type Transport interface {
	Get(ctx context.Context, path string, query url.Values, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
}

// Options configures HTTPTransport
type Options struct {
	BaseURL   string
	Token     string
	UserAgent string
	Timeout   time.Duration

	// MaxBodyBytes caps how much of a success body is read
	MaxBodyBytes int64

	// RatePerSecond throttles outgoing requests; 0 means unlimited
	RatePerSecond float64
	RateBurst     int

	// HTTPClient overrides the client built from Timeout
	HTTPClient *http.Client
}

// HTTPTransport is the net/http Transport
type HTTPTransport struct {
	http  *http.Client
	opts  Options
	limit *rate.Limiter
	log   logger.Logger
	now   func() time.Time
	newID func() string
}

// NewHTTPTransport creates a transport with defaults filled in
func NewHTTPTransport(o Options) *HTTPTransport {
	o.BaseURL = strings.TrimRight(o.BaseURL, "/")
	if o.BaseURL == "" {
		o.BaseURL = DefaultBaseURL
	}
	if o.UserAgent == "" {
		o.UserAgent = version.UserAgent()
	}
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}
	if o.MaxBodyBytes <= 0 {
		o.MaxBodyBytes = defaultMaxBody
	}
	hc := o.HTTPClient
	if hc == nil {
		hc = &http.Client{Timeout: o.Timeout}
	}
	var lim *rate.Limiter
	if o.RatePerSecond > 0 {
		if o.RateBurst <= 0 {
			o.RateBurst = 1
		}
		lim = rate.NewLimiter(rate.Limit(o.RatePerSecond), o.RateBurst)
	}
	return &HTTPTransport{
		http:  hc,
		opts:  o,
		limit: lim,
		log:   *logger.Named("ghostfolio"),
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// BaseURL returns the normalized base URL
func (t *HTTPTransport) BaseURL() string { return t.opts.BaseURL }

// Get implements Transport
func (t *HTTPTransport) Get(ctx context.Context, path string, query url.Values, out any) error {
	return t.do(ctx, http.MethodGet, path, query, nil, out)
}

// Post implements Transport
func (t *HTTPTransport) Post(ctx context.Context, path string, body, out any) error {
	return t.do(ctx, http.MethodPost, path, nil, body, out)
}

// Put implements Transport
func (t *HTTPTransport) Put(ctx context.Context, path string, body, out any) error {
	return t.do(ctx, http.MethodPut, path, nil, body, out)
}

// Delete implements Transport
func (t *HTTPTransport) Delete(ctx context.Context, path string, out any) error {
	return t.do(ctx, http.MethodDelete, path, nil, nil, out)
}

func (t *HTTPTransport) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	target := t.opts.BaseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	if t.limit != nil {
		if err := t.limit.Wait(ctx); err != nil {
			return perr.Wrapf(err, perr.ErrorCodeTooManyRequests, "%s %s throttled", method, path)
		}
	}

	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return perr.Wrapf(err, perr.ErrorCodeJSON, "encode %s %s body", method, path)
		}
		rd = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, rd)
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "build %s %s request", method, path)
	}

	reqID := logger.RequestID(ctx)
	if reqID == "" {
		reqID = t.newID()
	}
	req.Header.Set("User-Agent", t.opts.UserAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set(headerRequestID, reqID)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.opts.Token != "" {
		req.Header.Set("Authorization", "Bearer "+t.opts.Token)
	}

	start := t.now()
	resp, err := t.http.Do(req)
	lat := t.now().Sub(start)
	if err != nil {
		// keep ctx errors reachable through errors.Is
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			err = errors.Join(ctxErr, err)
		}
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "%s %s failed", method, path)
	}
	defer func() {
		if cerr := drainAndClose(resp.Body); cerr != nil {
			t.log.Error().Err(cerr).Str("path", path).Msg("ghostfolio close body failed")
		}
	}()

	t.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", lat).
		Str("request_id", reqID).
		Msg("ghostfolio http response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		tail, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return newStatusError(method, path, resp.StatusCode, tail)
	}

	if out == nil {
		return nil
	}
	b, err := io.ReadAll(io.LimitReader(resp.Body, t.opts.MaxBodyBytes+1))
	if err != nil {
		return perr.Wrapf(err, perr.ErrorCodeUnavailable, "read %s %s body", method, path)
	}
	if int64(len(b)) > t.opts.MaxBodyBytes {
		return perr.Newf(perr.ErrorCodeJSON, "%s %s body exceeds %d bytes", method, path, t.opts.MaxBodyBytes)
	}
	if len(bytes.TrimSpace(b)) == 0 {
		return nil
	}
	if err := json.Unmarshal(b, out); err != nil {
		return perr.Wrapf(err, perr.ErrorCodeJSON, "decode %s %s body", method, path)
	}
	return nil
}
