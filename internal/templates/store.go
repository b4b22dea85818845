// Package templates owns the runtime-mutable template collections. Records
// are copy-on-write: a create or update installs a new value and every read
// returns a deep clone, so callers never share state with the store.
package templates

import (
	"errors"
	"fmt"
	"slices"
	"sync"
	"time"

	"verifydesk/internal/ids"
	"verifydesk/internal/templates/models"
)

// ErrStoreNotInitialized is the panic value raised when a Store that was not
// built by NewStore is used.
var ErrStoreNotInitialized = errors.New("templates: store used before initialization; construct it with templates.NewStore")

const maxIDAttempts = 64

// Builder turns a create input into a record.
type Builder[T any] interface {
	Build(id string, now time.Time) T
}

// Patcher merges a partial update over a record.
type Patcher[T any] interface {
	ApplyTo(T) T
}

// Collection is one template kind. It is safe for concurrent use; concurrent
// updates to the same id are last-write-wins.
type Collection[T models.Record[T], In Builder[T], P Patcher[T]] struct {
	mu    sync.RWMutex
	kind  models.Kind
	items []T
	owner *Store
}

type (
	InquiryCollection      = Collection[models.InquiryTemplate, models.InquiryTemplateInput, models.InquiryTemplatePatch]
	VerificationCollection = Collection[models.VerificationTemplate, models.VerificationTemplateInput, models.VerificationTemplatePatch]
	ReportCollection       = Collection[models.ReportTemplate, models.ReportTemplateInput, models.ReportTemplatePatch]
)

func newCollection[T models.Record[T], In Builder[T], P Patcher[T]](owner *Store, kind models.Kind, seed []T) *Collection[T, In, P] {
	items := make([]T, len(seed))
	for i, item := range seed {
		items[i] = item.Clone()
	}
	return &Collection[T, In, P]{kind: kind, items: items, owner: owner}
}

// Kind reports which collection this is.
func (c *Collection[T, In, P]) Kind() models.Kind {
	return c.kind
}

// List returns every record, most recently created first.
func (c *Collection[T, In, P]) List() []T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]T, len(c.items))
	for i, item := range c.items {
		out[i] = item.Clone()
	}
	return out
}

// Get returns the record with id. A missing id is reported through ok.
func (c *Collection[T, In, P]) Get(id string) (T, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if i := c.indexOf(id); i >= 0 {
		return c.items[i].Clone(), true
	}
	var zero T
	return zero, false
}

// Create assigns a fresh id, stamps createdAt and updatedAt, and prepends the
// record. A record created as active is published at creation.
func (c *Collection[T, In, P]) Create(in In) T {
	now := c.owner.clock()
	rec := in.Build(c.owner.issue(c.kind), now)
	rec = rec.Stamped(now, rec.RecordStatus() == models.TemplateStatusActive)

	c.mu.Lock()
	items := make([]T, 0, len(c.items)+1)
	items = append(items, rec)
	c.items = append(items, c.items...)
	c.mu.Unlock()

	return rec.Clone()
}

// Update merges patch over the record and stamps updatedAt. createdAt never
// changes. lastPublishedAt is stamped when the status becomes active.
// Nothing changes and ok is false when id is unknown.
func (c *Collection[T, In, P]) Update(id string, patch P) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexOf(id)
	if i < 0 {
		var zero T
		return zero, false
	}
	prev := c.items[i]
	next := patch.ApplyTo(prev)
	published := next.RecordStatus() == models.TemplateStatusActive &&
		prev.RecordStatus() != models.TemplateStatusActive
	next = next.Stamped(c.owner.clock(), published)

	items := slices.Clone(c.items)
	items[i] = next
	c.items = items
	return next.Clone(), true
}

// Delete removes the record. It reports whether anything was removed; an
// unknown id is not an error.
func (c *Collection[T, In, P]) Delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	i := c.indexOf(id)
	if i < 0 {
		return false
	}
	c.items = slices.Delete(slices.Clone(c.items), i, i+1)
	return true
}

func (c *Collection[T, In, P]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}

func (c *Collection[T, In, P]) indexOf(id string) int {
	return slices.IndexFunc(c.items, func(item T) bool { return item.RecordID() == id })
}

// Store holds the three template collections.
type Store struct {
	inquiries     *InquiryCollection
	verifications *VerificationCollection
	reports       *ReportCollection

	clock func() time.Time
	newID func(prefix string) string

	idMu   sync.Mutex
	issued map[string]struct{}
}

type storeConfig struct {
	clock    func() time.Time
	newID    func(prefix string) string
	fixtures *Fixtures
}

// Option configures NewStore.
type Option func(*storeConfig)

// WithClock replaces time.Now as the source of record timestamps.
func WithClock(now func() time.Time) Option {
	return func(c *storeConfig) {
		if now != nil {
			c.clock = now
		}
	}
}

// WithIDSource replaces the random id generator. fn receives the kind's
// prefix and must return a prefixed id.
func WithIDSource(fn func(prefix string) string) Option {
	return func(c *storeConfig) {
		if fn != nil {
			c.newID = fn
		}
	}
}

// WithFixtures seeds the store from fx instead of DefaultFixtures.
func WithFixtures(fx Fixtures) Option {
	return func(c *storeConfig) {
		c.fixtures = &fx
	}
}

// NewStore builds a Store seeded with deep copies of the fixtures. Fixture
// ids count as issued and are never handed out again.
func NewStore(opts ...Option) *Store {
	cfg := storeConfig{clock: time.Now, newID: ids.Random}
	for _, opt := range opts {
		opt(&cfg)
	}
	fx := DefaultFixtures()
	if cfg.fixtures != nil {
		fx = *cfg.fixtures
	}

	s := &Store{
		clock:  cfg.clock,
		newID:  cfg.newID,
		issued: make(map[string]struct{}),
	}
	s.inquiries = newCollection[models.InquiryTemplate, models.InquiryTemplateInput, models.InquiryTemplatePatch](s, models.KindInquiry, fx.Inquiries)
	s.verifications = newCollection[models.VerificationTemplate, models.VerificationTemplateInput, models.VerificationTemplatePatch](s, models.KindVerification, fx.Verifications)
	s.reports = newCollection[models.ReportTemplate, models.ReportTemplateInput, models.ReportTemplatePatch](s, models.KindReport, fx.Reports)

	for _, t := range fx.Inquiries {
		s.issued[t.ID] = struct{}{}
	}
	for _, t := range fx.Verifications {
		s.issued[t.ID] = struct{}{}
	}
	for _, t := range fx.Reports {
		s.issued[t.ID] = struct{}{}
	}
	return s
}

// Inquiries panics with ErrStoreNotInitialized on a Store not built by NewStore.
func (s *Store) Inquiries() *InquiryCollection {
	s.mustBeInitialized()
	return s.inquiries
}

func (s *Store) Verifications() *VerificationCollection {
	s.mustBeInitialized()
	return s.verifications
}

func (s *Store) Reports() *ReportCollection {
	s.mustBeInitialized()
	return s.reports
}

// Delete removes id from the kind's collection.
func (s *Store) Delete(kind models.Kind, id string) bool {
	switch kind {
	case models.KindInquiry:
		return s.Inquiries().Delete(id)
	case models.KindVerification:
		return s.Verifications().Delete(id)
	case models.KindReport:
		return s.Reports().Delete(id)
	}
	return false
}

func (s *Store) mustBeInitialized() {
	if s == nil || s.issued == nil {
		panic(ErrStoreNotInitialized)
	}
}

// issue returns an id no collection has seen during this process.
func (s *Store) issue(kind models.Kind) string {
	s.idMu.Lock()
	defer s.idMu.Unlock()
	for range maxIDAttempts {
		id := s.newID(kind.IDPrefix())
		if _, taken := s.issued[id]; !taken {
			s.issued[id] = struct{}{}
			return id
		}
	}
	panic(fmt.Sprintf("templates: id source returned %d issued ids in a row for %s", maxIDAttempts, kind))
}
