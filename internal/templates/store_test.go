package templates

import (
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"verifydesk/internal/domain"
	"verifydesk/internal/templates/models"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(time.Minute)
	return c.now
}

type StoreSuite struct {
	suite.Suite
	clock *fakeClock
	store *Store
}

func TestStoreSuite(t *testing.T) {
	suite.Run(t, new(StoreSuite))
}

func (s *StoreSuite) SetupTest() {
	s.clock = &fakeClock{now: time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC)}
	s.store = NewStore(WithClock(s.clock.Now))
}

func (s *StoreSuite) draftInput(name string) models.InquiryTemplateInput {
	return models.InquiryTemplateInput{
		Name:   name,
		Status: models.TemplateStatusDraft,
		Steps: []models.InquiryTemplateStep{
			{VerificationType: domain.VerificationTypeGovernmentID, Required: true},
		},
		Settings: models.InquirySettings{ExpiresInDays: 30, MaxRetries: 3},
	}
}

func (s *StoreSuite) TestSeeding() {
	s.Run("collections start from the default fixtures", func() {
		fx := DefaultFixtures()
		s.Len(s.store.Inquiries().List(), len(fx.Inquiries))
		s.Len(s.store.Verifications().List(), len(fx.Verifications))
		s.Len(s.store.Reports().List(), len(fx.Reports))
	})

	s.Run("fixtures are copied on construction", func() {
		fx := DefaultFixtures()
		store := NewStore(WithFixtures(fx))
		fx.Inquiries[0].Name = "mutated"
		fx.Inquiries[0].Steps[0].Required = false

		got, ok := store.Inquiries().Get(fx.Inquiries[0].ID)
		s.Require().True(ok)
		s.NotEqual("mutated", got.Name)
		s.True(got.Steps[0].Required)
	})
}

func (s *StoreSuite) TestGet() {
	s.Run("unknown ids are not found", func() {
		_, ok := s.store.Inquiries().Get("itmpl_missing")
		s.False(ok)
		_, ok = s.store.Verifications().Get("vtmpl_missing")
		s.False(ok)
		_, ok = s.store.Reports().Get("rptp_missing")
		s.False(ok)
	})
}

func (s *StoreSuite) TestCreate() {
	s.Run("stamps identity and prepends", func() {
		created := s.store.Inquiries().Create(s.draftInput("New flow"))

		s.Regexp(`^itmpl_[0-9a-f]{12}$`, created.ID)
		s.Equal(created.CreatedAt, created.UpdatedAt)
		s.Nil(created.LastPublishedAt)
		s.Equal(created, s.store.Inquiries().List()[0])
	})

	s.Run("each kind uses its own prefix", func() {
		v := s.store.Verifications().Create(models.VerificationTemplateInput{
			Name: "Selfie v2", Type: domain.VerificationTypeSelfie, Status: models.TemplateStatusDraft,
		})
		r := s.store.Reports().Create(models.ReportTemplateInput{
			Name: "PEP v2", Type: domain.ReportTypePEP, Status: models.TemplateStatusDraft,
		})
		s.Regexp(`^vtmpl_`, v.ID)
		s.Regexp(`^rptp_`, r.ID)
	})

	s.Run("active on create is published at creation", func() {
		in := s.draftInput("Live flow")
		in.Status = models.TemplateStatusActive
		created := s.store.Inquiries().Create(in)
		s.Require().NotNil(created.LastPublishedAt)
		s.Equal(created.CreatedAt, *created.LastPublishedAt)
	})

	s.Run("works on an empty collection", func() {
		store := NewStore(WithFixtures(Fixtures{}), WithClock(s.clock.Now))
		created := store.Reports().Create(models.ReportTemplateInput{Name: "Only", Type: domain.ReportTypeWatchlist})
		list := store.Reports().List()
		s.Require().Len(list, 1)
		s.Equal(created.ID, list[0].ID)
		s.Equal(created.CreatedAt, created.UpdatedAt)
	})
}

func (s *StoreSuite) TestUpdate() {
	s.Run("changes named fields and preserves the rest", func() {
		created := s.store.Inquiries().Create(s.draftInput("Original"))
		name := "Renamed"

		updated, ok := s.store.Inquiries().Update(created.ID, models.InquiryTemplatePatch{Name: &name})
		s.Require().True(ok)
		s.Equal("Renamed", updated.Name)
		s.Equal(created.CreatedAt, updated.CreatedAt)
		s.True(updated.UpdatedAt.After(created.UpdatedAt))
		s.Equal(created.Steps, updated.Steps)
		s.Equal(created.Settings, updated.Settings)
		s.Equal(created.Status, updated.Status)
	})

	s.Run("publishing stamps lastPublishedAt once", func() {
		created := s.store.Inquiries().Create(s.draftInput("Publish me"))
		active := models.TemplateStatusActive

		first, ok := s.store.Inquiries().Update(created.ID, models.InquiryTemplatePatch{Status: &active})
		s.Require().True(ok)
		s.Require().NotNil(first.LastPublishedAt)
		s.Equal(first.UpdatedAt, *first.LastPublishedAt)

		name := "Still active"
		second, _ := s.store.Inquiries().Update(created.ID, models.InquiryTemplatePatch{Name: &name})
		s.Equal(*first.LastPublishedAt, *second.LastPublishedAt)

		archived := models.TemplateStatusArchived
		third, _ := s.store.Inquiries().Update(created.ID, models.InquiryTemplatePatch{Status: &archived})
		s.Require().NotNil(third.LastPublishedAt, "archiving never clears the publish time")
		s.Equal(*first.LastPublishedAt, *third.LastPublishedAt)
	})

	s.Run("unknown id changes nothing", func() {
		before := s.store.Reports().List()
		name := "ghost"
		_, ok := s.store.Reports().Update("rptp_missing", models.ReportTemplatePatch{Name: &name})
		s.False(ok)
		s.Equal(before, s.store.Reports().List())
	})

	s.Run("earlier snapshots are unaffected", func() {
		created := s.store.Verifications().Create(models.VerificationTemplateInput{
			Name:   "Snapshot",
			Type:   domain.VerificationTypeDocument,
			Status: models.TemplateStatusDraft,
			Settings: models.VerificationSettings{
				AllowedCountries: []string{"US"},
			},
		})
		snapshot := s.store.Verifications().List()

		s.store.Verifications().Update(created.ID, models.VerificationTemplatePatch{
			Settings: &models.VerificationSettings{AllowedCountries: []string{"GB"}},
		})
		s.Equal([]string{"US"}, snapshot[0].Settings.AllowedCountries)
	})
}

func (s *StoreSuite) TestDelete() {
	s.Run("removes the record", func() {
		created := s.store.Reports().Create(models.ReportTemplateInput{Name: "Temp", Type: domain.ReportTypePEP})
		s.True(s.store.Reports().Delete(created.ID))
		_, ok := s.store.Reports().Get(created.ID)
		s.False(ok)
	})

	s.Run("unknown id is a no-op", func() {
		before := s.store.Inquiries().Len()
		s.False(s.store.Inquiries().Delete("itmpl_missing"))
		s.Equal(before, s.store.Inquiries().Len())
	})

	s.Run("dispatches by kind", func() {
		created := s.store.Verifications().Create(models.VerificationTemplateInput{Name: "Temp", Type: domain.VerificationTypeSelfie})
		s.False(s.store.Delete(models.KindInquiry, created.ID))
		s.True(s.store.Delete(models.KindVerification, created.ID))
	})
}

func (s *StoreSuite) TestIsolation() {
	s.Run("mutating a listed record does not leak into the store", func() {
		list := s.store.Inquiries().List()
		list[0].Name = "mutated"
		list[0].Steps[0].MaxRetries = 99

		again := s.store.Inquiries().List()
		s.NotEqual("mutated", again[0].Name)
		s.NotEqual(99, again[0].Steps[0].MaxRetries)
	})

	s.Run("mutating a created record does not leak into the store", func() {
		created := s.store.Reports().Create(models.ReportTemplateInput{
			Name:             "Isolated",
			Type:             domain.ReportTypeWatchlist,
			ScreeningSources: []string{"OFAC SDN List"},
		})
		created.ScreeningSources[0] = "changed"

		got, _ := s.store.Reports().Get(created.ID)
		s.Equal([]string{"OFAC SDN List"}, got.ScreeningSources)
	})
}

func TestIDsAreNeverReused(t *testing.T) {
	calls := 0
	// Replays a fixture id and a deleted id before yielding fresh ones.
	source := func(prefix string) string {
		calls++
		switch calls {
		case 1:
			return prefix + "first0000000"
		case 2:
			return prefix + "first0000000"
		case 3:
			return DefaultFixtures().Inquiries[0].ID
		}
		return fmt.Sprintf("%s%012d", prefix, calls)
	}
	store := NewStore(WithIDSource(source))

	first := store.Inquiries().Create(models.InquiryTemplateInput{Name: "a"})
	require.True(t, store.Inquiries().Delete(first.ID))
	second := store.Inquiries().Create(models.InquiryTemplateInput{Name: "b"})

	assert.Equal(t, "itmpl_first0000000", first.ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEqual(t, DefaultFixtures().Inquiries[0].ID, second.ID)
	assert.Equal(t, "itmpl_000000000004", second.ID)
}

func TestConcurrentCreates(t *testing.T) {
	store := NewStore(WithFixtures(Fixtures{}))
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Inquiries().Create(models.InquiryTemplateInput{Name: fmt.Sprintf("t%d", i)})
		}()
	}
	wg.Wait()

	seen := map[string]bool{}
	for _, tmpl := range store.Inquiries().List() {
		assert.False(t, seen[tmpl.ID])
		seen[tmpl.ID] = true
	}
	assert.Len(t, seen, 50)
}

func TestZeroValueStorePanics(t *testing.T) {
	var store Store
	assert.PanicsWithValue(t, ErrStoreNotInitialized, func() { store.Inquiries() })

	var nilStore *Store
	assert.PanicsWithValue(t, ErrStoreNotInitialized, func() { nilStore.Reports() })
}

func TestStatusTransitions(t *testing.T) {
	tests := []struct {
		from, to models.TemplateStatus
		allowed  bool
	}{
		{models.TemplateStatusDraft, models.TemplateStatusActive, true},
		{models.TemplateStatusDraft, models.TemplateStatusArchived, true},
		{models.TemplateStatusActive, models.TemplateStatusArchived, true},
		{models.TemplateStatusActive, models.TemplateStatusDraft, false},
		{models.TemplateStatusArchived, models.TemplateStatusActive, false},
		{models.TemplateStatusArchived, models.TemplateStatusArchived, true},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+" to "+string(tt.to), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestPresets(t *testing.T) {
	catalog := Presets()
	assert.Len(t, catalog.Inquiry, 6)
	assert.Len(t, catalog.Verification, 4)
	assert.Len(t, catalog.Report, 3)

	p, ok := VerificationPreset("ver_preset_selfie")
	require.True(t, ok)
	require.Len(t, p.Defaults.Checks, 4)
	assert.Equal(t, "Glasses Detection", p.Defaults.Checks[3].Name)
	assert.False(t, p.Defaults.Checks[3].Enabled)

	_, ok = InquiryPreset("nope")
	assert.False(t, ok)

	checks := Checks()
	assert.Len(t, checks.Checks, len(domain.VerificationTypes))
	assert.Len(t, checks.Categories, 4)
	assert.Equal(t, "Biometrics", checks.Categories[3].Label)
}
