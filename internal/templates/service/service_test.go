package service

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	promtest "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"verifydesk/internal/domain"
	"verifydesk/internal/templates"
	"verifydesk/internal/templates/metrics"
	"verifydesk/internal/templates/models"
	dErrors "verifydesk/pkg/domain-errors"
	"verifydesk/pkg/platform/audit"
	auditmemory "verifydesk/pkg/platform/audit/store/memory"
	"verifydesk/pkg/platform/middleware/metadata"
	"verifydesk/pkg/requestcontext"
)

const (
	draftInquiryID  = "itmpl_c0v6ls2ph8ij"
	activeInquiryID = "itmpl_3fj9d0plr6ve"
	draftReportID   = "rptp_e6w2oj8lc3qa"
	archivedReport  = "rptp_k7t4fq0bz2uh"
	activeVerifID   = "vtmpl_p4e7ru1kx3wa"
)

type ServiceSuite struct {
	suite.Suite
	ctx     context.Context
	now     time.Time
	audit   *auditmemory.InMemoryStore
	metrics *metrics.Metrics
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.now = time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC)
	s.ctx = requestcontext.WithRequestID(requestcontext.WithTime(context.Background(), s.now), "req-42")
	s.ctx = metadata.WithClientMetadata(s.ctx, "192.0.2.1", "dashboard-test")
	s.audit = auditmemory.NewInMemoryStore(0)
	s.metrics = metrics.New(prometheus.NewRegistry())

	store := templates.NewStore(templates.WithClock(func() time.Time { return s.now }))
	svc, err := New(store, WithAuditPublisher(s.audit), WithMetrics(s.metrics))
	s.Require().NoError(err)
	s.service = svc
}

func (s *ServiceSuite) lastEvent() audit.Event {
	events, err := s.audit.ListRecent(s.ctx, 1)
	s.Require().NoError(err)
	s.Require().Len(events, 1)
	return events[0]
}

func (s *ServiceSuite) inquiryInput(name string) models.InquiryTemplateInput {
	return models.InquiryTemplateInput{
		Name: name,
		Steps: []models.InquiryTemplateStep{
			{VerificationType: domain.VerificationTypeSelfie, Required: true, OnPass: models.StepActionApprove},
		},
		Settings: models.InquirySettings{ExpiresInDays: 14, MaxRetries: 2},
	}
}

func (s *ServiceSuite) TestCreateInquiryTemplate() {
	s.Run("trims the name and defaults to draft", func() {
		created, err := s.service.CreateInquiryTemplate(s.ctx, s.inquiryInput("  Returning users  "))
		s.Require().NoError(err)
		s.Equal("Returning users", created.Name)
		s.Equal(models.TemplateStatusDraft, created.Status)
		s.Nil(created.LastPublishedAt)
		s.Equal(s.now, created.CreatedAt)

		ev := s.lastEvent()
		s.Equal(string(audit.EventTemplateCreated), ev.Action)
		s.Equal(created.ID, ev.Subject)
		s.Equal(string(models.KindInquiry), ev.Kind)
		s.Equal("req-42", ev.RequestID)
		s.Equal("192.0.2.1", ev.ClientIP)
		s.Equal(s.now, ev.Timestamp)
		s.Equal(audit.CategoryOperations, ev.Category)
	})

	s.Run("active on create is published", func() {
		in := s.inquiryInput("Live flow")
		in.Status = models.TemplateStatusActive
		created, err := s.service.CreateInquiryTemplate(s.ctx, in)
		s.Require().NoError(err)
		s.Require().NotNil(created.LastPublishedAt)
		s.Equal(string(audit.EventTemplatePublished), s.lastEvent().Action)
		s.Equal(1.0, promtest.ToFloat64(s.metrics.TemplatesPublished.WithLabelValues(string(models.KindInquiry))))
	})

	s.Run("rejects invalid input without touching the store", func() {
		before := len(s.service.ListInquiryTemplates(s.ctx))
		cases := map[string]func(*models.InquiryTemplateInput){
			"blank name":       func(in *models.InquiryTemplateInput) { in.Name = "   " },
			"no steps":         func(in *models.InquiryTemplateInput) { in.Steps = nil },
			"unknown status":   func(in *models.InquiryTemplateInput) { in.Status = "paused" },
			"unknown step":     func(in *models.InquiryTemplateInput) { in.Steps[0].VerificationType = "voice" },
			"unknown action":   func(in *models.InquiryTemplateInput) { in.Steps[0].OnFail = "explode" },
			"expiry too short": func(in *models.InquiryTemplateInput) { in.Settings.ExpiresInDays = 0 },
			"too many retries": func(in *models.InquiryTemplateInput) { in.Settings.MaxRetries = 11 },
		}
		for name, mutate := range cases {
			in := s.inquiryInput("Flow")
			mutate(&in)
			_, err := s.service.CreateInquiryTemplate(s.ctx, in)
			s.True(dErrors.HasCode(err, dErrors.CodeValidation), name)
		}
		s.Len(s.service.ListInquiryTemplates(s.ctx), before)
	})
}

func (s *ServiceSuite) TestUpdateInquiryTemplate() {
	s.Run("publishing a draft stamps lastPublishedAt and emits a compliance event", func() {
		status := models.TemplateStatusActive
		updated, err := s.service.UpdateInquiryTemplate(s.ctx, draftInquiryID, models.InquiryTemplatePatch{Status: &status})
		s.Require().NoError(err)
		s.Equal(models.TemplateStatusActive, updated.Status)
		s.Require().NotNil(updated.LastPublishedAt)
		s.Equal(s.now, *updated.LastPublishedAt)

		ev := s.lastEvent()
		s.Equal(string(audit.EventTemplatePublished), ev.Action)
		s.Equal(audit.CategoryCompliance, ev.Category)
		s.Equal(draftInquiryID, ev.Subject)
	})

	s.Run("archiving emits an archived event", func() {
		status := models.TemplateStatusArchived
		_, err := s.service.UpdateInquiryTemplate(s.ctx, activeInquiryID, models.InquiryTemplatePatch{Status: &status})
		s.Require().NoError(err)
		s.Equal(string(audit.EventTemplateArchived), s.lastEvent().Action)
	})

	s.Run("archived templates cannot be reactivated", func() {
		status := models.TemplateStatusActive
		_, err := s.service.UpdateInquiryTemplate(s.ctx, activeInquiryID, models.InquiryTemplatePatch{Status: &status})
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})

	s.Run("a plain edit keeps status and createdAt", func() {
		before, err := s.service.GetInquiryTemplate(s.ctx, draftInquiryID)
		s.Require().NoError(err)
		name := " Database Check v2 "
		updated, err := s.service.UpdateInquiryTemplate(s.ctx, draftInquiryID, models.InquiryTemplatePatch{Name: &name})
		s.Require().NoError(err)
		s.Equal("Database Check v2", updated.Name)
		s.Equal(before.CreatedAt, updated.CreatedAt)
		s.Equal(string(audit.EventTemplateUpdated), s.lastEvent().Action)
	})

	s.Run("invalid merge is rejected", func() {
		empty := ""
		_, err := s.service.UpdateInquiryTemplate(s.ctx, draftInquiryID, models.InquiryTemplatePatch{Name: &empty})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("unknown id is not found", func() {
		name := "x"
		_, err := s.service.UpdateInquiryTemplate(s.ctx, "itmpl_missing", models.InquiryTemplatePatch{Name: &name})
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
		s.Equal("inquiry template not found", dErrors.MessageOf(err))
	})
}

func (s *ServiceSuite) TestVerificationTemplates() {
	s.Run("normalizes countries, capture method, and check categories", func() {
		created, err := s.service.CreateVerificationTemplate(s.ctx, models.VerificationTemplateInput{
			Name: "Passport",
			Type: domain.VerificationTypeGovernmentID,
			Checks: []models.CheckConfig{
				{Name: "ID Not Expired", Required: true, Enabled: true},
			},
			Settings: models.VerificationSettings{AllowedCountries: []string{" us", "US", "gb"}},
		})
		s.Require().NoError(err)
		s.Equal([]string{"US", "GB"}, created.Settings.AllowedCountries)
		s.Equal(models.CaptureMethodAuto, created.Settings.CaptureMethod)
		s.Equal(domain.CheckCategoryValidity, created.Checks[0].Category)
	})

	s.Run("rejects checks outside the type's catalog", func() {
		_, err := s.service.CreateVerificationTemplate(s.ctx, models.VerificationTemplateInput{
			Name:   "Selfie",
			Type:   domain.VerificationTypeSelfie,
			Checks: []models.CheckConfig{{Name: "Barcode Detection"}},
		})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("rejects malformed country codes", func() {
		_, err := s.service.CreateVerificationTemplate(s.ctx, models.VerificationTemplateInput{
			Name:     "Selfie",
			Type:     domain.VerificationTypeSelfie,
			Settings: models.VerificationSettings{AllowedCountries: []string{"USA"}},
		})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("changing type revalidates existing checks", func() {
		vt := domain.VerificationTypeSelfie
		_, err := s.service.UpdateVerificationTemplate(s.ctx, activeVerifID, models.VerificationTemplatePatch{Type: &vt})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})
}

func (s *ServiceSuite) TestReportTemplates() {
	s.Run("sources must belong to the report type", func() {
		_, err := s.service.CreateReportTemplate(s.ctx, models.ReportTemplateInput{
			Name:             "PEP",
			Type:             domain.ReportTypePEP,
			ScreeningSources: []string{"OFAC SDN List"},
		})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("continuous monitoring needs a frequency", func() {
		_, err := s.service.CreateReportTemplate(s.ctx, models.ReportTemplateInput{
			Name:             "Watchlist",
			Type:             domain.ReportTypeWatchlist,
			ScreeningSources: []string{"OFAC SDN List"},
			Settings:         models.ReportSettings{MatchThreshold: 80, ContinuousMonitoring: true},
		})
		s.True(dErrors.HasCode(err, dErrors.CodeValidation))
	})

	s.Run("draft to archived is allowed, archived stays archived", func() {
		archived := models.TemplateStatusArchived
		_, err := s.service.UpdateReportTemplate(s.ctx, draftReportID, models.ReportTemplatePatch{Status: &archived})
		s.Require().NoError(err)

		draft := models.TemplateStatusDraft
		_, err = s.service.UpdateReportTemplate(s.ctx, archivedReport, models.ReportTemplatePatch{Status: &draft})
		s.True(dErrors.HasCode(err, dErrors.CodeConflict))
	})
}

func (s *ServiceSuite) TestDeleteTemplate() {
	s.Run("removes the template and records it", func() {
		s.Require().NoError(s.service.DeleteTemplate(s.ctx, models.KindInquiry, draftInquiryID))
		_, err := s.service.GetInquiryTemplate(s.ctx, draftInquiryID)
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))

		ev := s.lastEvent()
		s.Equal(string(audit.EventTemplateDeleted), ev.Action)
		s.Equal(audit.CategoryCompliance, ev.Category)
		s.Equal(1.0, promtest.ToFloat64(s.metrics.TemplatesDeleted.WithLabelValues(string(models.KindInquiry))))
	})

	s.Run("unknown id succeeds silently", func() {
		s.audit.Clear()
		s.Require().NoError(s.service.DeleteTemplate(s.ctx, models.KindReport, "rptp_missing"))
		events, err := s.audit.ListRecent(s.ctx, 0)
		s.Require().NoError(err)
		s.Empty(events)
	})

	s.Run("unknown kind is a bad request", func() {
		err := s.service.DeleteTemplate(s.ctx, "widgets", "x")
		s.True(dErrors.HasCode(err, dErrors.CodeBadRequest))
	})
}

func (s *ServiceSuite) TestCreateFromPreset() {
	s.Run("creates a draft from each kind", func() {
		got, err := s.service.CreateFromPreset(s.ctx, models.KindInquiry, "inq_preset_enhanced_dd")
		s.Require().NoError(err)
		inq, ok := got.(models.InquiryTemplate)
		s.Require().True(ok)
		s.Equal("Enhanced Due Diligence", inq.Name)
		s.Equal(models.TemplateStatusDraft, inq.Status)
		s.Len(inq.Steps, 3)

		got, err = s.service.CreateFromPreset(s.ctx, models.KindVerification, "ver_preset_selfie")
		s.Require().NoError(err)
		s.IsType(models.VerificationTemplate{}, got)

		got, err = s.service.CreateFromPreset(s.ctx, models.KindReport, "rep_preset_pep")
		s.Require().NoError(err)
		s.IsType(models.ReportTemplate{}, got)
	})

	s.Run("preset of another kind is not found", func() {
		_, err := s.service.CreateFromPreset(s.ctx, models.KindReport, "inq_preset_enhanced_dd")
		s.True(dErrors.HasCode(err, dErrors.CodeNotFound))
	})
}

func TestNewRequiresStore(t *testing.T) {
	svc, err := New(nil)
	require.Error(t, err)
	assert.Nil(t, svc)
	assert.Equal(t, "template store is required", err.Error())
}

func TestFixturesPassValidation(t *testing.T) {
	fx := templates.DefaultFixtures()
	for _, tmpl := range fx.Inquiries {
		assert.NoError(t, validateInquiry(tmpl), tmpl.Name)
	}
	for _, tmpl := range fx.Verifications {
		assert.NoError(t, validateVerification(tmpl), tmpl.Name)
	}
	for _, tmpl := range fx.Reports {
		assert.NoError(t, validateReport(tmpl), tmpl.Name)
	}
}
