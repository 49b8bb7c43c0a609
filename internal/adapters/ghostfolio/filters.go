package ghostfolio

import (
	"net/url"
	"strings"
)

// filterParams maps filter facets to their query parameter
var filterParams = []struct {
	typ   FilterType
	param string
}{
	{FilterAccount, "accounts"},
	{FilterAssetClass, "assetClasses"},
	{FilterTag, "tags"},
}

// FilterQuery groups filters by type into comma joined ids, keeping input order.
// Facets without filters and unknown types produce no parameter
func FilterQuery(filters []Filter) url.Values {
	if len(filters) == 0 {
		return nil
	}
	buckets := make(map[FilterType][]string, len(filterParams))
	for _, f := range filters {
		buckets[f.Type] = append(buckets[f.Type], f.ID)
	}
	q := url.Values{}
	for _, fp := range filterParams {
		if ids := buckets[fp.typ]; len(ids) > 0 {
			q.Set(fp.param, strings.Join(ids, ","))
		}
	}
	if len(q) == 0 {
		return nil
	}
	return q
}
