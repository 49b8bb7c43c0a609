package testkit

import (
	"io"
	"net/http"
	"strings"
	"testing"
)

func TestFakeAPI_ReplyAndRecord(t *testing.T) {
	f := NewFakeAPI(t)
	f.Reply(http.MethodPut, "/order/{id}", http.StatusOK, `{"id":"o-1"}`)

	req, err := http.NewRequest(http.MethodPut, f.BaseURL()+"/order/o-1?x=1", strings.NewReader(`{"fee":1}`))
	if err != nil {
		t.Fatalf("new request: %v", err)
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("do: %v", err)
	}
	b, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusOK || string(b) != `{"id":"o-1"}` {
		t.Fatalf("unexpected reply %d %s", resp.StatusCode, b)
	}

	got := f.Last(t)
	if got.Method != http.MethodPut || got.Path != "/order/o-1" {
		t.Fatalf("recorded %s %s", got.Method, got.Path)
	}
	if got.Query.Get("x") != "1" || string(got.Body) != `{"fee":1}` {
		t.Fatalf("recorded query %v body %s", got.Query, got.Body)
	}
}

func TestFakeAPI_UnknownRoute404(t *testing.T) {
	f := NewFakeAPI(t)
	resp, err := http.Get(f.BaseURL() + "/nope")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	_ = resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", resp.StatusCode)
	}
	if n := len(f.Requests()); n != 1 {
		t.Fatalf("requests = %d, want 1", n)
	}
}
