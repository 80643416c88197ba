// Package strings normalises user-supplied name lists (query parameters,
// CLI arguments) before they are used as exact-match keys.
package strings

import (
	"strings"
)

// DedupeAndTrim trims whitespace from each element and drops empties and
// repeats, keeping first-seen order. Matching stays case-sensitive because
// record keys are.
//
//	DedupeAndTrim([]string{" Asia", "Europe", "Asia", ""})
//	// []string{"Asia", "Europe"}
func DedupeAndTrim(values []string) []string {
	result := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			continue
		}
		if _, dup := seen[trimmed]; dup {
			continue
		}
		seen[trimmed] = struct{}{}
		result = append(result, trimmed)
	}
	return result
}

// SplitList splits a comma-separated list and normalises it with DedupeAndTrim.
func SplitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return DedupeAndTrim(strings.Split(s, ","))
}
