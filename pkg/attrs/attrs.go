// Package attrs reads values back out of slog-style key/value attribute lists.
package attrs

// ExtractString returns the string value stored under key in a
// [key1, value1, key2, value2, ...] slice, or "" when absent or not a string.
func ExtractString(attrs []any, key string) string {
	for i := 0; i+1 < len(attrs); i += 2 {
		if k, ok := attrs[i].(string); ok && k == key {
			if v, ok := attrs[i+1].(string); ok {
				return v
			}
		}
	}
	return ""
}

// ExtractFirst returns the value of the first key in keys that is present
// with a non-empty string value.
func ExtractFirst(attrs []any, keys ...string) string {
	for _, key := range keys {
		if v := ExtractString(attrs, key); v != "" {
			return v
		}
	}
	return ""
}
