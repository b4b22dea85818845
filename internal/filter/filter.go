// Package filter narrows dashboard collections by the criteria the list
// views expose: status, template, tags, and created or completed ranges.
package filter

import (
	"slices"
	"strings"
	"time"

	"verifydesk/internal/domain"
)

// Record is anything the list filters can evaluate.
type Record interface {
	RecordStatus() string
	RecordTemplate() string
	RecordTags() []string
	RecordCreatedAt() time.Time
	RecordCompletedAt() *time.Time
}

// Range is an inclusive time window. It only constrains records when both
// bounds are set.
type Range struct {
	From *time.Time
	To   *time.Time
}

func (r Range) active() bool {
	return r.From != nil && r.To != nil
}

func (r Range) set() bool {
	return r.From != nil || r.To != nil
}

func (r Range) contains(t time.Time) bool {
	return !t.Before(*r.From) && !t.After(*r.To)
}

// Criteria combine with AND across fields. Tags match when a record carries
// any of them.
type Criteria struct {
	Statuses  []string
	Templates []string
	Tags      []string
	Created   Range
	Completed Range
}

// IsEmpty reports whether no criterion is populated. A range with a single
// bound counts as populated even though it filters nothing.
func (c Criteria) IsEmpty() bool {
	return len(c.Statuses) == 0 &&
		len(c.Templates) == 0 &&
		len(c.Tags) == 0 &&
		!c.Created.set() &&
		!c.Completed.set()
}

// Matches reports whether rec satisfies every populated criterion. A record
// with no completion time fails an active completed range.
func (c Criteria) Matches(rec Record) bool {
	if len(c.Statuses) > 0 && !slices.Contains(c.Statuses, rec.RecordStatus()) {
		return false
	}
	if len(c.Templates) > 0 && !slices.Contains(c.Templates, rec.RecordTemplate()) {
		return false
	}
	if len(c.Tags) > 0 && !hasAny(rec.RecordTags(), c.Tags) {
		return false
	}
	if c.Created.active() && !c.Created.contains(rec.RecordCreatedAt()) {
		return false
	}
	if c.Completed.active() {
		completed := rec.RecordCompletedAt()
		if completed == nil || !c.Completed.contains(*completed) {
			return false
		}
	}
	return true
}

// Apply returns the records matching c, preserving order. When c is empty the
// input slice itself is returned.
func Apply[T Record](data []T, c Criteria) []T {
	if c.IsEmpty() {
		return data
	}
	out := make([]T, 0, len(data))
	for _, rec := range data {
		if c.Matches(rec) {
			out = append(out, rec)
		}
	}
	return out
}

// Inquiries applies c to a list of inquiries.
func Inquiries(data []domain.Inquiry, c Criteria) []domain.Inquiry {
	return Apply(data, c)
}

// Searchable exposes the fields free-text search looks at.
type Searchable interface {
	SearchFields() []string
}

// Search keeps records where any search field contains query, ignoring case.
// A blank query returns data unchanged.
func Search[T Searchable](data []T, query string) []T {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return data
	}
	out := make([]T, 0, len(data))
	for _, rec := range data {
		for _, f := range rec.SearchFields() {
			if f != "" && strings.Contains(strings.ToLower(f), q) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

func hasAny(have, want []string) bool {
	for _, w := range want {
		if slices.Contains(have, w) {
			return true
		}
	}
	return false
}
