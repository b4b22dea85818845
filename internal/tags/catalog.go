// Package tags manages the inquiry tag vocabulary shown on the settings page.
package tags

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"sync"

	"verifydesk/internal/domain"
	pkgstrings "verifydesk/pkg/platform/strings"
	"verifydesk/pkg/platform/sentinel"
)

// Tag is a tag name and how many inquiries carry it.
type Tag struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Catalog is the editable tag list. Renames and deletions change the list
// only; the inquiries it was counted from are not rewritten.
type Catalog struct {
	mu   sync.RWMutex
	tags []Tag
}

// NewCatalog counts the tags carried by inquiries.
func NewCatalog(inquiries []domain.Inquiry) *Catalog {
	counts := make(map[string]int)
	for _, inq := range inquiries {
		for _, t := range pkgstrings.DedupeAndTrim(inq.Tags) {
			counts[t]++
		}
	}
	tags := make([]Tag, 0, len(counts))
	for name, n := range counts {
		tags = append(tags, Tag{Name: name, Count: n})
	}
	sortTags(tags)
	return &Catalog{tags: tags}
}

// List returns the tags sorted by name.
func (c *Catalog) List() []Tag {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.tags)
}

// Rename changes oldName to newName, keeping its count. A blank or unchanged
// newName leaves the catalog alone and returns the current tag. Renaming onto
// another existing tag fails with sentinel.ErrConflict; an unknown oldName
// with sentinel.ErrNotFound.
func (c *Catalog) Rename(oldName, newName string) (Tag, error) {
	newName = strings.TrimSpace(newName)

	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(oldName)
	if i < 0 {
		return Tag{}, fmt.Errorf("tag %q: %w", oldName, sentinel.ErrNotFound)
	}
	if newName == "" || newName == oldName {
		return c.tags[i], nil
	}
	if c.indexOf(newName) >= 0 {
		return Tag{}, fmt.Errorf("tag %q: %w", newName, sentinel.ErrConflict)
	}

	tags := slices.Clone(c.tags)
	tags[i].Name = newName
	sortTags(tags)
	c.tags = tags
	return tags[slices.IndexFunc(tags, func(t Tag) bool { return t.Name == newName })], nil
}

// Delete removes name and reports whether it was present.
func (c *Catalog) Delete(name string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(name)
	if i < 0 {
		return false
	}
	c.tags = slices.Delete(slices.Clone(c.tags), i, i+1)
	return true
}

func (c *Catalog) indexOf(name string) int {
	return slices.IndexFunc(c.tags, func(t Tag) bool { return t.Name == name })
}

// Distinct returns every tag used by inquiries in first-seen order, for tag
// pickers.
func Distinct(inquiries []domain.Inquiry) []string {
	var all []string
	for _, inq := range inquiries {
		all = append(all, inq.Tags...)
	}
	out := pkgstrings.DedupeAndTrim(all)
	if out == nil {
		return []string{}
	}
	return out
}

func sortTags(tags []Tag) {
	slices.SortFunc(tags, func(a, b Tag) int {
		return cmp.Compare(a.Name, b.Name)
	})
}
