package dataset

// FindByID returns the first item whose id matches. The zero value and false
// are returned when nothing matches.
func FindByID[T any](items []T, id string, idOf func(T) string) (T, bool) {
	for _, item := range items {
		if idOf(item) == id {
			return item, true
		}
	}
	var zero T
	return zero, false
}

// FilterByForeignKey returns every item whose key equals parentID, in
// collection order. A parent with no children yields an empty, non-nil slice.
func FilterByForeignKey[T any](items []T, key func(T) string, parentID string) []T {
	out := make([]T, 0)
	for _, item := range items {
		if key(item) == parentID {
			out = append(out, item)
		}
	}
	return out
}
