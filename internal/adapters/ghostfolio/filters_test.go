package ghostfolio

import "testing"

func TestFilterQuery(t *testing.T) {
	t.Parallel()

	q := FilterQuery([]Filter{
		{ID: "t1", Type: FilterTag},
		{ID: "EQUITY", Type: FilterAssetClass},
		{ID: "t2", Type: FilterTag},
		{ID: "ignored", Type: "PLATFORM"},
		{ID: "a1", Type: FilterAccount},
	})
	if q.Get("tags") != "t1,t2" || q.Get("assetClasses") != "EQUITY" || q.Get("accounts") != "a1" {
		t.Fatalf("query = %v", q)
	}
	if len(q) != 3 {
		t.Fatalf("unexpected params: %v", q)
	}
}

func TestFilterQuery_Empty(t *testing.T) {
	t.Parallel()

	if q := FilterQuery(nil); q != nil {
		t.Fatalf("q = %v", q)
	}
	if q := FilterQuery([]Filter{{ID: "x", Type: "UNKNOWN"}}); q != nil {
		t.Fatalf("q = %v", q)
	}
}
