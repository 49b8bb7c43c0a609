// Package time contains time related helpers
package time

import (
	"strings"
	"time"
)

// isoLayouts are tried in order by ParseISO
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02",
}

// ParseISO parses the ISO-8601 shapes JSON APIs emit: full timestamps with an
// offset or Z, local date-times and bare dates. Values without an offset are UTC
func ParseISO(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	var err error
	for _, layout := range isoLayouts {
		var t time.Time
		if t, err = time.Parse(layout, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, err
}
