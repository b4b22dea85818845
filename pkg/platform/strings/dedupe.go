// Package strings provides string list normalization shared by tag and
// template inputs.
package strings

import (
	"strings"
)

// DedupeAndTrim removes duplicates and blanks from values, trimming
// whitespace from each element. Order is preserved.
//
//	DedupeAndTrim([]string{"  vip ", "fraud", "vip", "", "  "})
//	// []string{"vip", "fraud"}
func DedupeAndTrim(values []string) []string {
	return DedupeFunc(values, strings.TrimSpace)
}

// DedupeAndTrimUpper is like DedupeAndTrim but also uppercases each element.
// Country codes are normalized this way.
//
//	DedupeAndTrimUpper([]string{" us", "US", "gb "})
//	// []string{"US", "GB"}
func DedupeAndTrimUpper(values []string) []string {
	return DedupeFunc(values, func(v string) string {
		return strings.ToUpper(strings.TrimSpace(v))
	})
}

// DedupeFunc maps each value through normalize, then drops empty results and
// repeats. Order of first occurrence is preserved. Nil and empty input are
// returned as given.
func DedupeFunc(values []string, normalize func(string) string) []string {
	if len(values) == 0 {
		return values
	}

	seen := make(map[string]struct{}, len(values))
	result := make([]string, 0, len(values))

	for _, v := range values {
		n := normalize(v)
		if n == "" {
			continue
		}
		if _, ok := seen[n]; !ok {
			seen[n] = struct{}{}
			result = append(result, n)
		}
	}

	return result
}
