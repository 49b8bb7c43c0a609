package ghostfolio

import (
	"errors"
	"io"
	"net/http"
	"strings"

	perr "folio/internal/platform/errors"
)

// StatusError wraps non-2xx responses from the backend
type StatusError struct {
	Status int
	Body   string
	Err    error
}

// Error interface
func (e *StatusError) Error() string { return e.Err.Error() }

// Unwrap interface
func (e *StatusError) Unwrap() error { return e.Err }

// HTTPStatus interface
func (e *StatusError) HTTPStatus() int { return e.Status }

func newStatusError(method, path string, status int, body []byte) *StatusError {
	msg := strings.TrimSpace(string(body))
	return &StatusError{
		Status: status,
		Body:   msg,
		Err: perr.Newf(perr.CodeFromHTTPStatus(status),
			"%s %s: unexpected status %d %s", method, path, status, http.StatusText(status)),
	}
}

// StatusOf returns the HTTP status carried by err, or 0
func StatusOf(err error) int {
	var se *StatusError
	if errors.As(err, &se) {
		return se.Status
	}
	return 0
}

// IsUnauthorized reports whether err is a 401 from the backend
func IsUnauthorized(err error) bool { return StatusOf(err) == http.StatusUnauthorized }

// IsNotFound reports whether err is a 404 from the backend
func IsNotFound(err error) bool { return StatusOf(err) == http.StatusNotFound }

func drainAndClose(rc io.ReadCloser) error {
	_, _ = io.Copy(io.Discard, io.LimitReader(rc, 512))
	return rc.Close()
}
