// Package strings provides small string helpers shared by the CLI and adapters
package strings

import std "strings"

// SplitList splits s on sep, trims every item and drops empty ones.
// Returns nil when nothing is left
func SplitList(s, sep string) []string {
	var out []string
	for _, item := range std.Split(s, sep) {
		if item = std.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}
