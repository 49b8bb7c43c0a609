package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
	"testing"
)

func TestCodeFromHTTPStatus(t *testing.T) {
	cases := []struct {
		status int
		want   ErrorCode
	}{
		{http.StatusBadRequest, ErrorCodeInvalidArgument},
		{http.StatusUnprocessableEntity, ErrorCodeInvalidArgument},
		{http.StatusUnauthorized, ErrorCodeUnauthorized},
		{http.StatusForbidden, ErrorCodeForbidden},
		{http.StatusNotFound, ErrorCodeNotFound},
		{http.StatusConflict, ErrorCodeConflict},
		{http.StatusTooManyRequests, ErrorCodeTooManyRequests},
		{http.StatusInternalServerError, ErrorCodeUnavailable},
		{http.StatusBadGateway, ErrorCodeUnavailable},
		{http.StatusTeapot, ErrorCodeUnknown},
	}
	for _, c := range cases {
		if got := CodeFromHTTPStatus(c.status); got != c.want {
			t.Fatalf("CodeFromHTTPStatus(%d) = %v, want %v", c.status, got, c.want)
		}
	}
}

func TestErrorCodeString(t *testing.T) {
	if got := ErrorCodeTooManyRequests.String(); got != "too_many_requests" {
		t.Fatalf("String() = %q", got)
	}
	if got := ErrorCode(500).String(); got != "code(500)" {
		t.Fatalf("String() out of range = %q", got)
	}
}

func TestErrorTypeAndMethods(t *testing.T) {
	// nil *Error should render "<nil>"
	var e *Error
	if e.Error() != "<nil>" {
		t.Fatalf("nil *Error render = %q, want <nil>", e.Error())
	}

	// New / Newf
	e1 := New(ErrorCodeValidation, "bad stuff")
	if CodeOf(e1) != ErrorCodeValidation {
		t.Fatalf("CodeOf(New) = %v", CodeOf(e1))
	}
	e2 := Newf(ErrorCodeJSON, "bad json %d", 12)
	if got := e2.Error(); got != "bad json 12" {
		t.Fatalf("Newf().Error = %q", got)
	}

	// Wrap / Wrapf / Unwrap
	src := stderrs.New("root")
	e3 := Wrap(src, ErrorCodeUnavailable, "transport failed")
	if u := stderrs.Unwrap(e3); u == nil || u.Error() != "root" {
		t.Fatalf("Wrap did not keep orig")
	}
	if !stderrs.Is(e3, src) {
		t.Fatalf("errors.Is should see through Wrap")
	}
	e4 := Wrapf(src, ErrorCodeForbidden, "nope %s", "here")
	if want := "nope here: root"; e4.Error() != want {
		t.Fatalf("Wrapf().Error = %q, want %q", e4.Error(), want)
	}
	if got, _ := As(e4); got.Message() != "nope here" {
		t.Fatalf("Message() = %q", got.Message())
	}

	// As
	if got, ok := As(e4); !ok || got.Code() != ErrorCodeForbidden {
		t.Fatalf("As() failed for our error")
	}
	if _, ok := As(src); ok {
		t.Fatalf("As() true for foreign error")
	}

	// WithField (copy-on-write) and WithOp
	e5 := Wrap(src, ErrorCodeInvalidArgument, "oops")
	e6 := WithField(e5, "priceId")
	e7 := WithOp(e6, "checkout")
	if fe, ok := As(e6); !ok || fe.Field() != "priceId" {
		t.Fatalf("WithField failed")
	}
	if oe, ok := As(e7); !ok || oe.Op() != "checkout" {
		t.Fatalf("WithOp failed")
	}
	if fe0, _ := As(e5); fe0.Field() != "" || fe0.Op() != "" {
		t.Fatalf("copy-on-write mutated original")
	}
	if WithField(src, "x") != src || WithOp(src, "x") != src {
		t.Fatalf("mutators should leave foreign errors alone")
	}

	// Sugar and IsCode
	if !IsCode(NotFoundf("x"), ErrorCodeNotFound) ||
		!IsCode(InvalidArgf("x"), ErrorCodeInvalidArgument) ||
		!IsCode(Validationf("x"), ErrorCodeValidation) ||
		!IsCode(JSONErrf("x"), ErrorCodeJSON) {
		t.Fatalf("sugar helpers code mismatch")
	}

	// Root traversal
	deep := fmt.Errorf("level2: %w", fmt.Errorf("level1: %w", src))
	if got := Root(deep); got == nil || got.Error() != "root" {
		t.Fatalf("Root() failed, got %v", got)
	}
}

func TestRetryable(t *testing.T) {
	if !Retryable(Wrap(stderrs.New("dial"), ErrorCodeUnavailable, "down")) {
		t.Fatalf("unavailable should be retryable")
	}
	if !Retryable(New(ErrorCodeTooManyRequests, "slow down")) {
		t.Fatalf("rate limited should be retryable")
	}
	if Retryable(NotFoundf("gone")) || Retryable(stderrs.New("plain")) {
		t.Fatalf("not found and foreign errors are not retryable")
	}
}
