package filter

import (
	"fmt"
	"net/url"
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// FromQuery reads criteria from list-view query parameters. Multi-valued
// fields accept repeated keys or comma-separated values:
//
//	?status=approved,declined&tag=vip&created_from=2026-02-01&created_to=2026-02-10
//
// Bounds are RFC 3339 instants or calendar dates. A date used as an upper
// bound covers the whole day.
func FromQuery(q url.Values) (Criteria, error) {
	c := Criteria{
		Statuses:  values(q, "status"),
		Templates: values(q, "template"),
		Tags:      values(q, "tag"),
	}
	var err error
	if c.Created, err = rangeFrom(q, "created_from", "created_to"); err != nil {
		return Criteria{}, err
	}
	if c.Completed, err = rangeFrom(q, "completed_from", "completed_to"); err != nil {
		return Criteria{}, err
	}
	return c, nil
}

func values(q url.Values, key string) []string {
	var out []string
	for _, raw := range q[key] {
		for _, v := range strings.Split(raw, ",") {
			if v = strings.TrimSpace(v); v != "" {
				out = append(out, v)
			}
		}
	}
	return out
}

func rangeFrom(q url.Values, fromKey, toKey string) (Range, error) {
	from, err := parseBound(q.Get(fromKey), false)
	if err != nil {
		return Range{}, fmt.Errorf("%s: %w", fromKey, err)
	}
	to, err := parseBound(q.Get(toKey), true)
	if err != nil {
		return Range{}, fmt.Errorf("%s: %w", toKey, err)
	}
	return Range{From: from, To: to}, nil
}

func parseBound(raw string, upper bool) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return &t, nil
	}
	t, err := time.Parse(dateLayout, raw)
	if err != nil {
		return nil, fmt.Errorf("expected RFC 3339 time or YYYY-MM-DD date, got %q", raw)
	}
	if upper {
		t = t.AddDate(0, 0, 1).Add(-time.Nanosecond)
	}
	return &t, nil
}
