package templates

import (
	"time"

	"verifydesk/internal/domain"
	"verifydesk/internal/synth"
	"verifydesk/internal/templates/models"
)

// Fixtures seeds a Store.
type Fixtures struct {
	Inquiries     []models.InquiryTemplate
	Verifications []models.VerificationTemplate
	Reports       []models.ReportTemplate
}

func day(d int) time.Time {
	return time.Date(2025, time.October, 1, 9, 0, 0, 0, time.UTC).AddDate(0, 0, d)
}

func published(d int) *time.Time {
	t := day(d)
	return &t
}

// DefaultFixtures returns a fresh copy of the templates the dashboard ships
// with, matching the template names the generated inquiries reference.
func DefaultFixtures() Fixtures {
	return Fixtures{
		Inquiries: []models.InquiryTemplate{
			{
				ID:              "itmpl_8x2kq7wm4nca",
				Name:            "KYC + AML: GovID + Selfie",
				Description:     "Identity verification with government ID, selfie match, and sanctions screening",
				Status:          models.TemplateStatusActive,
				LastPublishedAt: published(40),
				Steps:           govIDSelfieSteps(),
				Settings:        models.InquirySettings{ExpiresInDays: 30, MaxRetries: 3},
				CreatedAt:       day(0),
				UpdatedAt:       day(40),
			},
			{
				ID:              "itmpl_3fj9d0plr6ve",
				Name:            "KYC: GovID + Selfie",
				Description:     "Identity verification with government ID and selfie match",
				Status:          models.TemplateStatusActive,
				LastPublishedAt: published(12),
				Steps:           govIDSelfieSteps(),
				Settings:        models.InquirySettings{ExpiresInDays: 30, MaxRetries: 3},
				CreatedAt:       day(2),
				UpdatedAt:       day(12),
			},
			{
				ID:              "itmpl_q1z5hb7tk0sy",
				Name:            "KYC: GovID Only",
				Description:     "Basic identity verification with government ID only",
				Status:          models.TemplateStatusActive,
				LastPublishedAt: published(9),
				Steps: []models.InquiryTemplateStep{
					step(domain.VerificationTypeGovernmentID, models.StepActionApprove, models.StepActionDecline, 3),
				},
				Settings:  models.InquirySettings{ExpiresInDays: 14, MaxRetries: 3},
				CreatedAt: day(5),
				UpdatedAt: day(9),
			},
			{
				ID:              "itmpl_w6c2ga9ue4ob",
				Name:            "Quick Onboarding: Selfie Only",
				Description:     "Selfie-only flow for low-friction returning user verification",
				Status:          models.TemplateStatusActive,
				LastPublishedAt: published(21),
				Steps: []models.InquiryTemplateStep{
					step(domain.VerificationTypeSelfie, models.StepActionApprove, models.StepActionNeedsReview, 2),
				},
				Settings:  models.InquirySettings{AutoApprove: true, ExpiresInDays: 3, MaxRetries: 2},
				CreatedAt: day(14),
				UpdatedAt: day(21),
			},
			{
				ID:              "itmpl_m5r8yx3jn2dk",
				Name:            "Enhanced Due Diligence",
				Description:     "Multi-step verification for high-risk accounts with document, selfie, and database checks",
				Status:          models.TemplateStatusActive,
				LastPublishedAt: published(33),
				Steps: []models.InquiryTemplateStep{
					step(domain.VerificationTypeGovernmentID, models.StepActionContinue, models.StepActionDecline, 2),
					step(domain.VerificationTypeSelfie, models.StepActionContinue, models.StepActionNeedsReview, 2),
					step(domain.VerificationTypeDatabase, models.StepActionApprove, models.StepActionNeedsReview, 1),
				},
				Settings:  models.InquirySettings{ExpiresInDays: 7, MaxRetries: 2},
				CreatedAt: day(20),
				UpdatedAt: day(33),
			},
			{
				ID:              "itmpl_t7b4nw1qz9fe",
				Name:            "Document Verification",
				Description:     "Document upload verification for proof of address or other documents",
				Status:          models.TemplateStatusActive,
				LastPublishedAt: published(28),
				Steps: []models.InquiryTemplateStep{
					step(domain.VerificationTypeDocument, models.StepActionApprove, models.StepActionNeedsReview, 2),
				},
				Settings:  models.InquirySettings{ExpiresInDays: 21, MaxRetries: 2, RedirectURL: "https://app.verifydesk.example/done"},
				CreatedAt: day(25),
				UpdatedAt: day(28),
			},
			{
				ID:          "itmpl_c0v6ls2ph8ij",
				Name:        "Database Check",
				Description: "Automated database verification without document or biometric steps",
				Status:      models.TemplateStatusDraft,
				Steps: []models.InquiryTemplateStep{
					step(domain.VerificationTypeDatabase, models.StepActionApprove, models.StepActionNeedsReview, 1),
				},
				Settings:  models.InquirySettings{ExpiresInDays: 7, MaxRetries: 1},
				CreatedAt: day(60),
				UpdatedAt: day(61),
			},
		},
		Verifications: []models.VerificationTemplate{
			{
				ID:              "vtmpl_p4e7ru1kx3wa",
				Name:            "Government ID",
				Type:            domain.VerificationTypeGovernmentID,
				Status:          models.TemplateStatusActive,
				LastPublishedAt: published(10),
				Checks:          catalogChecks(domain.VerificationTypeGovernmentID),
				Settings: models.VerificationSettings{
					AllowedCountries: []string{"US", "CA", "GB", "DE", "ES", "SE", "IE"},
					MaxRetries:       3,
					CaptureMethod:    models.CaptureMethodAuto,
				},
				CreatedAt: day(0),
				UpdatedAt: day(10),
			},
			{
				ID:              "vtmpl_z2h6md8qs5yo",
				Name:            "Selfie",
				Type:            domain.VerificationTypeSelfie,
				Status:          models.TemplateStatusActive,
				LastPublishedAt: published(11),
				Checks:          catalogChecks(domain.VerificationTypeSelfie),
				Settings: models.VerificationSettings{
					AllowedCountries: []string{"US", "CA", "AU", "NZ"},
					MaxRetries:       2,
					CaptureMethod:    models.CaptureMethodBoth,
				},
				CreatedAt: day(1),
				UpdatedAt: day(11),
			},
			{
				ID:              "vtmpl_f9k1ct5vb7ng",
				Name:            "Document Upload",
				Type:            domain.VerificationTypeDocument,
				Status:          models.TemplateStatusActive,
				LastPublishedAt: published(26),
				Checks:          catalogChecks(domain.VerificationTypeDocument),
				Settings: models.VerificationSettings{
					AllowedCountries: []string{"US", "GB", "IE"},
					MaxRetries:       2,
					CaptureMethod:    models.CaptureMethodManual,
				},
				CreatedAt: day(24),
				UpdatedAt: day(26),
			},
			{
				ID:     "vtmpl_a3s0ej6yu4lr",
				Name:   "Database Verification",
				Type:   domain.VerificationTypeDatabase,
				Status: models.TemplateStatusDraft,
				Checks: catalogChecks(domain.VerificationTypeDatabase),
				Settings: models.VerificationSettings{
					AllowedCountries: []string{"US"},
					MaxRetries:       2,
					CaptureMethod:    models.CaptureMethodAuto,
				},
				CreatedAt: day(45),
				UpdatedAt: day(47),
			},
		},
		Reports: []models.ReportTemplate{
			{
				ID:               "rptp_n8d3xa5wq1tm",
				Name:             "KYC + AML: Watchlist Report",
				Type:             domain.ReportTypeWatchlist,
				Status:           models.TemplateStatusActive,
				LastPublishedAt:  published(38),
				ScreeningSources: synth.ScreeningSources(domain.ReportTypeWatchlist),
				Settings:         models.ReportSettings{MatchThreshold: 85, ContinuousMonitoring: true, MonitoringFrequencyDays: 1, EnableFuzzyMatch: true},
				CreatedAt:        day(0),
				UpdatedAt:        day(38),
			},
			{
				ID:               "rptp_h2y7kc4ez0pv",
				Name:             "KYC + AML: PEP Report",
				Type:             domain.ReportTypePEP,
				Status:           models.TemplateStatusActive,
				LastPublishedAt:  published(38),
				ScreeningSources: synth.ScreeningSources(domain.ReportTypePEP),
				Settings:         models.ReportSettings{MatchThreshold: 82, ContinuousMonitoring: true, MonitoringFrequencyDays: 7, EnableFuzzyMatch: true},
				CreatedAt:        day(0),
				UpdatedAt:        day(38),
			},
			{
				ID:               "rptp_r5g1ub9mi6xs",
				Name:             "Manual Watchlist Screening",
				Type:             domain.ReportTypeWatchlist,
				Status:           models.TemplateStatusActive,
				LastPublishedAt:  published(50),
				ScreeningSources: []string{"OFAC SDN List", "UN Consolidated List"},
				Settings:         models.ReportSettings{MatchThreshold: 80, MonitoringFrequencyDays: 30, EnableFuzzyMatch: true},
				CreatedAt:        day(48),
				UpdatedAt:        day(50),
			},
			{
				ID:               "rptp_e6w2oj8lc3qa",
				Name:             "Adverse Media Monitoring",
				Type:             domain.ReportTypeAdverseMedia,
				Status:           models.TemplateStatusDraft,
				ScreeningSources: synth.ScreeningSources(domain.ReportTypeAdverseMedia),
				Settings:         models.ReportSettings{MatchThreshold: 68, ContinuousMonitoring: true, MonitoringFrequencyDays: 2, EnableFuzzyMatch: true},
				CreatedAt:        day(70),
				UpdatedAt:        day(72),
			},
			{
				ID:               "rptp_k7t4fq0bz2uh",
				Name:             "Legacy Sanctions Screen",
				Type:             domain.ReportTypeWatchlist,
				Status:           models.TemplateStatusArchived,
				LastPublishedAt:  published(-120),
				ScreeningSources: []string{"OFAC SDN List"},
				Settings:         models.ReportSettings{MatchThreshold: 90, MonitoringFrequencyDays: 30},
				CreatedAt:        day(-200),
				UpdatedAt:        day(15),
			},
		},
	}
}

func step(vt domain.VerificationType, onPass, onFail models.StepAction, maxRetries int) models.InquiryTemplateStep {
	return models.InquiryTemplateStep{
		VerificationType: vt,
		Required:         true,
		OnPass:           onPass,
		OnFail:           onFail,
		OnRetry:          models.StepActionRetry,
		MaxRetries:       maxRetries,
	}
}

func govIDSelfieSteps() []models.InquiryTemplateStep {
	return []models.InquiryTemplateStep{
		step(domain.VerificationTypeGovernmentID, models.StepActionContinue, models.StepActionDecline, 3),
		step(domain.VerificationTypeSelfie, models.StepActionApprove, models.StepActionNeedsReview, 2),
	}
}

// catalogChecks configures every catalog check for vt with its defaults.
// When names are given only those checks are included, in catalog order.
func catalogChecks(vt domain.VerificationType, names ...string) []models.CheckConfig {
	want := make(map[string]bool, len(names))
	for _, n := range names {
		want[n] = true
	}
	var out []models.CheckConfig
	for _, c := range domain.AvailableChecks(vt) {
		if len(want) > 0 && !want[c.Name] {
			continue
		}
		out = append(out, models.CheckConfig{
			Name:     c.Name,
			Category: c.Category,
			Required: c.DefaultRequired,
			Enabled:  c.DefaultEnabled,
		})
	}
	return out
}
