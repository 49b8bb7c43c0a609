package main

import (
	"bytes"
	"context"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	kit "folio/internal/platform/testkit"
)

// setup points the CLI at a fresh fake backend and a temp local store
func setup(t *testing.T) *kit.FakeAPI {
	t.Helper()
	api := kit.NewFakeAPI(t)
	t.Setenv("FOLIO_API_BASE_URL", api.BaseURL())
	t.Setenv("FOLIO_API_TOKEN", "cli-token")
	t.Setenv("FOLIO_LOCAL_STORE", filepath.Join(t.TempDir(), "local.json"))
	t.Setenv("FOLIO_INFO_FILE", "")
	return api
}

func runCLI(t *testing.T, stdin string, args ...string) (int, string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := run(context.Background(), args, strings.NewReader(stdin), &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestAccountsWithPath(t *testing.T) {
	api := setup(t)
	api.Reply(http.MethodGet, "/account", http.StatusOK,
		`{"accounts":[{"id":"a1","name":"Broker","currency":"USD","balance":0}],"totalBalanceInBaseCurrency":0,"totalValueInBaseCurrency":0,"transactionCount":0}`)

	code, out, errOut := runCLI(t, "", "-path", "$.accounts[*].name", "accounts")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if strings.TrimSpace(out) != `"Broker"` {
		t.Fatalf("out = %q", out)
	}
	if h := api.Last(t).Header.Get("Authorization"); h != "Bearer cli-token" {
		t.Fatalf("Authorization = %q", h)
	}
}

func TestOrdersCompact(t *testing.T) {
	api := setup(t)
	api.Reply(http.MethodGet, "/order", http.StatusOK,
		`{"activities":[{"id":"o1","createdAt":"2023-01-02T00:00:00Z","date":"2023-01-01T00:00:00Z","type":"BUY","quantity":1,"unitPrice":10,"fee":0}]}`)

	code, out, errOut := runCLI(t, "", "-compact", "orders")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if strings.Count(out, "\n") != 1 {
		t.Fatalf("expected one line, got %q", out)
	}
	kit.MustContain(t, out, `"date":"2023-01-01T00:00:00Z"`)
	kit.MustContain(t, out, `"unitPrice":10`)
}

func TestDetailsFilters(t *testing.T) {
	api := setup(t)
	api.Reply(http.MethodGet, "/portfolio/details", http.StatusOK, `{"accounts":{},"holdings":{},"hasErrors":false}`)

	code, _, errOut := runCLI(t, "", "details", "-account", "x", "-tag", "y", "-tag", "z")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	q := api.Last(t).Query
	if q.Get("accounts") != "x" || q.Get("tags") != "y,z" || q.Has("assetClasses") {
		t.Fatalf("query = %v", q)
	}
}

func TestPerformanceParams(t *testing.T) {
	api := setup(t)
	api.Reply(http.MethodGet, "/portfolio/performance", http.StatusOK, `{"hasErrors":false,"performance":{"currentValue":1}}`)

	code, out, errOut := runCLI(t, "", "-path", "$.performance.currentValue", "performance", "range=ytd")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if strings.TrimSpace(out) != "1" {
		t.Fatalf("out = %q", out)
	}
	if v := api.Last(t).Query.Get("range"); v != "ytd" {
		t.Fatalf("range = %q", v)
	}

	code, _, errOut = runCLI(t, "", "performance", "range")
	if code != 2 {
		t.Fatalf("exit %d for bad param", code)
	}
	kit.MustContain(t, errOut, "key=value")
}

func TestCreateOrderValidatesPayload(t *testing.T) {
	api := setup(t)
	api.Reply(http.MethodPost, "/order", http.StatusCreated, `{"id":"o1","createdAt":"2024-01-01T00:00:00Z","date":"2024-01-01T00:00:00Z","type":"BUY"}`)

	code, _, errOut := runCLI(t, `{"currency":"USD","date":"2024-01-01","type":"BUY","quantity":1,"unitPrice":5,"fee":0}`, "create-order")
	if code != 1 {
		t.Fatalf("exit %d, want failure", code)
	}
	kit.MustContain(t, errOut, "invalid payload")
	kit.MustContain(t, errOut, "symbol")
	if n := len(api.Requests()); n != 0 {
		t.Fatalf("invalid payload reached the backend (%d requests)", n)
	}

	code, out, errOut := runCLI(t, `{"currency":"USD","date":"2024-01-01","symbol":"VT","type":"BUY","quantity":1,"unitPrice":"5.5","fee":0}`, "create-order")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	kit.MustContain(t, out, `"id": "o1"`)
	body := string(api.Last(t).Body)
	kit.MustContain(t, body, `"symbol":"VT"`)
	kit.MustContain(t, body, `"unitPrice":5.5`)
}

func TestUpdateAdminSettingFromFile(t *testing.T) {
	api := setup(t)
	api.Reply(http.MethodPut, "/admin/settings/{key}", http.StatusOK, "")

	file := filepath.Join(t.TempDir(), "setting.json")
	if err := os.WriteFile(file, []byte(`{"value":"maintenance at 10pm"}`), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	code, out, errOut := runCLI(t, "", "update-admin-setting", "-f", file, "SYSTEM_MESSAGE")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	if out != "" {
		t.Fatalf("unexpected output %q", out)
	}
	req := api.Last(t)
	if req.Path != "/admin/settings/SYSTEM_MESSAGE" || string(req.Body) != `{"value":"maintenance at 10pm"}` {
		t.Fatalf("got %s %s", req.Path, req.Body)
	}
}

func TestBackendErrorReported(t *testing.T) {
	api := setup(t)
	api.Reply(http.MethodDelete, "/order/{id}", http.StatusForbidden, `{"message":"Forbidden","statusCode":403}`)

	code, _, errOut := runCLI(t, "", "delete-order", "o1")
	if code != 1 {
		t.Fatalf("exit %d", code)
	}
	kit.MustContain(t, errOut, "403")
	kit.MustContain(t, errOut, `"statusCode":403`)
}

func TestBackendErrorHints(t *testing.T) {
	cases := []struct {
		status int
		hint   string
	}{
		{http.StatusUnauthorized, "FOLIO_API_TOKEN"},
		{http.StatusNotFound, "FOLIO_API_BASE_URL"},
		{http.StatusServiceUnavailable, "try again later"},
	}
	for _, tc := range cases {
		api := setup(t)
		api.Reply(http.MethodGet, "/account", tc.status, `{}`)

		code, _, errOut := runCLI(t, "", "accounts")
		if code != 1 {
			t.Fatalf("%d: exit %d", tc.status, code)
		}
		kit.MustContain(t, errOut, "hint: ")
		kit.MustContain(t, errOut, tc.hint)
		if id := api.Last(t).Header.Get("X-Request-ID"); len(id) != 36 {
			t.Fatalf("%d: request id = %q", tc.status, id)
		}
	}

	api := setup(t)
	api.Reply(http.MethodGet, "/account", http.StatusForbidden, `{}`)
	_, _, errOut := runCLI(t, "", "accounts")
	kit.MustNotContain(t, errOut, "hint: ")
}

func TestUsageErrors(t *testing.T) {
	setup(t)

	if code, _, _ := runCLI(t, "", "symbol", "YAHOO"); code != 2 {
		t.Fatalf("symbol with one arg: exit %d", code)
	}
	if code, _, errOut := runCLI(t, "", "checkout-session"); code != 2 {
		t.Fatalf("checkout without price: exit %d %s", code, errOut)
	}
	if code, _, _ := runCLI(t, "", "no-such-command"); code == 0 {
		t.Fatalf("unknown command succeeded")
	}
}

func TestLocalStoreAndInfo(t *testing.T) {
	setup(t)

	infoFile := filepath.Join(t.TempDir(), "info.json")
	blob := `{"currencies":["USD"],"globalPermissions":["enableImport","enableSubscription"],"platforms":[],"subscriptions":[]}`
	if err := os.WriteFile(infoFile, []byte(blob), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv("FOLIO_INFO_FILE", infoFile)

	code, out, errOut := runCLI(t, "", "-compact", "-path", "$.globalPermissions", "info")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	kit.MustContain(t, out, "enableSubscription")

	if code, _, errOut := runCLI(t, "", "local", "set", "utm_source", "trusted-web-activity"); code != 0 {
		t.Fatalf("local set: exit %d %s", code, errOut)
	}
	code, out, _ = runCLI(t, "", "local", "get", "utm_source")
	if code != 0 || strings.TrimSpace(out) != "trusted-web-activity" {
		t.Fatalf("local get = %d %q", code, out)
	}

	code, out, errOut = runCLI(t, "", "-compact", "-path", "$.globalPermissions", "info")
	if code != 0 {
		t.Fatalf("exit %d: %s", code, errOut)
	}
	kit.MustNotContain(t, out, "enableSubscription")
	kit.MustContain(t, out, "enableImport")

	if code, _, _ := runCLI(t, "", "local", "delete", "utm_source"); code != 0 {
		t.Fatalf("local delete: exit %d", code)
	}
	if code, _, _ := runCLI(t, "", "local", "get", "utm_source"); code != 1 {
		t.Fatalf("deleted key still readable")
	}
}
