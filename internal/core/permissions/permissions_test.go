package permissions

import "testing"

func TestWithout(t *testing.T) {
	in := []string{EnableImport, EnableSubscription, EnableStatistics, EnableSubscription}
	got := Without(in, EnableSubscription)
	if len(got) != 2 || got[0] != EnableImport || got[1] != EnableStatistics {
		t.Fatalf("Without = %v", got)
	}
	if in[1] != EnableSubscription || len(in) != 4 {
		t.Fatalf("input mutated: %v", in)
	}
	if Without(nil, EnableBlog) != nil {
		t.Fatalf("nil in should stay nil")
	}
	if got := Without([]string{}, EnableBlog); got == nil || len(got) != 0 {
		t.Fatalf("empty in should give empty non-nil slice, got %#v", got)
	}
}

func TestHas(t *testing.T) {
	if !Has([]string{EnableBlog, EnableSubscription}, EnableSubscription) {
		t.Fatalf("Has should find token")
	}
	if Has(nil, EnableSubscription) {
		t.Fatalf("Has on nil should be false")
	}
}
