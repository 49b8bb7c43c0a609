package ghostfolio

import (
	"encoding/json"
	"testing"
	"time"

	perr "folio/internal/platform/errors"
	kit "folio/internal/platform/testkit"
)

func TestParseISO(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in   string
		want time.Time
	}{
		{"2023-01-02T03:04:05Z", time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)},
		{"2023-01-02T03:04:05.123Z", time.Date(2023, 1, 2, 3, 4, 5, 123e6, time.UTC)},
		{"2023-01-02T03:04:05+02:00", time.Date(2023, 1, 2, 1, 4, 5, 0, time.UTC)},
		{"2023-01-02T03:04:05", time.Date(2023, 1, 2, 3, 4, 5, 0, time.UTC)},
		{"2023-01-02T03:04", time.Date(2023, 1, 2, 3, 4, 0, 0, time.UTC)},
		{"2023-01-02", time.Date(2023, 1, 2, 0, 0, 0, 0, time.UTC)},
	}
	for _, tc := range cases {
		got, err := parseISO("date", tc.in)
		if err != nil {
			t.Fatalf("%s: %v", tc.in, err)
		}
		if !got.Equal(tc.want) {
			t.Fatalf("%s: got %v want %v", tc.in, got, tc.want)
		}
	}

	_, err := parseISO("date", "02/01/2023")
	if !perr.IsCode(err, perr.ErrorCodeJSON) {
		t.Fatalf("expected JSON error, got %v", err)
	}
	kit.MustContain(t, err.Error(), "02/01/2023")
}

func TestToActivity_EmptyDatesStayZero(t *testing.T) {
	t.Parallel()

	a, err := Order{OrderFields: OrderFields{ID: "x"}}.ToActivity()
	if err != nil {
		t.Fatalf("ToActivity: %v", err)
	}
	if !a.CreatedAt.IsZero() || !a.Date.IsZero() || a.ID != "x" {
		t.Fatalf("activity = %+v", a)
	}
}

func TestSummaryWire_ShadowsFirstOrderDate(t *testing.T) {
	t.Parallel()

	var w summaryWire
	if err := json.Unmarshal([]byte(`{"firstOrderDate":null,"fees":"1.5"}`), &w); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	s, err := w.normalize()
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if s.FirstOrderDate != nil || s.Fees.String() != "1.5" {
		t.Fatalf("summary = %+v", s)
	}

	b, _ := json.Marshal(s)
	kit.MustNotContain(t, string(b), "firstOrderDate")
}

func TestActivitiesWire_NilStaysNil(t *testing.T) {
	t.Parallel()

	got, err := activitiesWire{}.normalize()
	if err != nil || got.Activities != nil {
		t.Fatalf("got %+v, %v", got, err)
	}
}

func TestInvestmentsWire_ZeroFirstOrderDateKept(t *testing.T) {
	t.Parallel()

	var w investmentsWire
	if err := json.Unmarshal([]byte(`{"firstOrderDate":"0001-01-01T00:00:00Z","investments":[]}`), &w); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	got, err := w.normalize()
	if err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if got.FirstOrderDate == nil || !got.FirstOrderDate.IsZero() {
		t.Fatalf("firstOrderDate = %v", got.FirstOrderDate)
	}
}
