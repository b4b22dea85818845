package templates

import (
	"slices"

	"verifydesk/internal/domain"
	"verifydesk/internal/synth"
	"verifydesk/internal/templates/models"
)

type (
	inquiryPreset      = models.Preset[models.InquiryTemplateInput]
	verificationPreset = models.Preset[models.VerificationTemplateInput]
	reportPreset       = models.Preset[models.ReportTemplateInput]
)

// Presets returns a fresh copy of every template preset.
func Presets() models.PresetCatalog {
	return models.PresetCatalog{
		Inquiry:      inquiryPresets(),
		Verification: verificationPresets(),
		Report:       reportPresets(),
	}
}

func InquiryPreset(id string) (inquiryPreset, bool) {
	return findPreset(inquiryPresets(), id)
}

func VerificationPreset(id string) (verificationPreset, bool) {
	return findPreset(verificationPresets(), id)
}

func ReportPreset(id string) (reportPreset, bool) {
	return findPreset(reportPresets(), id)
}

func findPreset[In any](presets []models.Preset[In], id string) (models.Preset[In], bool) {
	i := slices.IndexFunc(presets, func(p models.Preset[In]) bool { return p.ID == id })
	if i < 0 {
		var zero models.Preset[In]
		return zero, false
	}
	return presets[i], true
}

// Checks returns the verification check catalog with category labels.
func Checks() models.CheckCatalog {
	catalog := models.CheckCatalog{
		Checks: make(map[domain.VerificationType][]domain.AvailableCheck, len(domain.VerificationTypes)),
	}
	for _, vt := range domain.VerificationTypes {
		catalog.Checks[vt] = domain.AvailableChecks(vt)
	}
	for _, c := range []domain.CheckCategory{
		domain.CheckCategoryFraud,
		domain.CheckCategoryUserActionRequired,
		domain.CheckCategoryValidity,
		domain.CheckCategoryBiometrics,
	} {
		catalog.Categories = append(catalog.Categories, models.CheckCategoryInfo{
			Category:    c,
			Label:       domain.CheckCategoryLabels[c],
			Description: domain.CheckCategoryDescriptions[c],
		})
	}
	return catalog
}

func inquiryPresets() []inquiryPreset {
	settings := func(days int) models.InquirySettings {
		return models.InquirySettings{ExpiresInDays: days, MaxRetries: 3}
	}
	return []inquiryPreset{
		{
			ID:          "inq_preset_gov_id_selfie",
			Name:        "Government ID + Selfie",
			Description: "Full identity verification with government ID and biometric selfie match",
			Kind:        models.KindInquiry,
			Defaults: models.InquiryTemplateInput{
				Name:        "KYC: GovID + Selfie",
				Description: "Identity verification with government ID and selfie match",
				Steps:       govIDSelfieSteps(),
				Settings:    settings(30),
			},
		},
		{
			ID:          "inq_preset_gov_id_only",
			Name:        "Government ID Only",
			Description: "Basic identity check using a government-issued ID document",
			Kind:        models.KindInquiry,
			Defaults: models.InquiryTemplateInput{
				Name:        "KYC: GovID Only",
				Description: "Basic identity verification with government ID only",
				Steps: []models.InquiryTemplateStep{
					step(domain.VerificationTypeGovernmentID, models.StepActionApprove, models.StepActionDecline, 3),
				},
				Settings: settings(14),
			},
		},
		{
			ID:          "inq_preset_selfie_only",
			Name:        "Selfie Only",
			Description: "Low-friction selfie-based liveness check for returning users",
			Kind:        models.KindInquiry,
			Defaults: models.InquiryTemplateInput{
				Name:        "Quick Onboarding: Selfie Only",
				Description: "Selfie-only flow for low-friction returning user verification",
				Steps: []models.InquiryTemplateStep{
					step(domain.VerificationTypeSelfie, models.StepActionApprove, models.StepActionNeedsReview, 2),
				},
				Settings: settings(3),
			},
		},
		{
			ID:          "inq_preset_document",
			Name:        "Document Verification",
			Description: "Verify uploaded documents like utility bills or bank statements",
			Kind:        models.KindInquiry,
			Defaults: models.InquiryTemplateInput{
				Name:        "Document Verification",
				Description: "Document upload verification for proof of address or other documents",
				Steps: []models.InquiryTemplateStep{
					step(domain.VerificationTypeDocument, models.StepActionApprove, models.StepActionNeedsReview, 2),
				},
				Settings: settings(21),
			},
		},
		{
			ID:          "inq_preset_enhanced_dd",
			Name:        "Enhanced Due Diligence",
			Description: "Multi-step verification for high-risk accounts with all check types",
			Kind:        models.KindInquiry,
			Defaults: models.InquiryTemplateInput{
				Name:        "Enhanced Due Diligence",
				Description: "Multi-step verification for high-risk accounts with document, selfie, and database checks",
				Steps: []models.InquiryTemplateStep{
					step(domain.VerificationTypeGovernmentID, models.StepActionContinue, models.StepActionDecline, 2),
					step(domain.VerificationTypeSelfie, models.StepActionContinue, models.StepActionNeedsReview, 2),
					step(domain.VerificationTypeDatabase, models.StepActionApprove, models.StepActionNeedsReview, 1),
				},
				Settings: settings(7),
			},
		},
		{
			ID:          "inq_preset_database_only",
			Name:        "Database Check Only",
			Description: "Automated database verification without document or biometric steps",
			Kind:        models.KindInquiry,
			Defaults: models.InquiryTemplateInput{
				Name:        "Database Check",
				Description: "Automated database verification without document or biometric steps",
				Steps: []models.InquiryTemplateStep{
					step(domain.VerificationTypeDatabase, models.StepActionApprove, models.StepActionNeedsReview, 1),
				},
				Settings: settings(7),
			},
		},
	}
}

func verificationPresets() []verificationPreset {
	return []verificationPreset{
		{
			ID:          "ver_preset_gov_id",
			Name:        "Government ID",
			Description: "Standard government ID verification with authenticity and expiry checks",
			Kind:        models.KindVerification,
			Defaults: models.VerificationTemplateInput{
				Name: "Government ID",
				Type: domain.VerificationTypeGovernmentID,
				Checks: catalogChecks(domain.VerificationTypeGovernmentID,
					"ID Document Authenticity", "ID Not Expired", "Barcode Detection",
					"ID Tampering Detection", "Face Clarity", "Country Supported"),
				Settings: models.VerificationSettings{
					AllowedCountries: []string{"US", "CA", "GB"},
					MaxRetries:       3,
					CaptureMethod:    models.CaptureMethodAuto,
				},
			},
		},
		{
			ID:          "ver_preset_selfie",
			Name:        "Selfie",
			Description: "Biometric selfie verification with liveness detection and face matching",
			Kind:        models.KindVerification,
			Defaults: models.VerificationTemplateInput{
				Name: "Selfie",
				Type: domain.VerificationTypeSelfie,
				Checks: catalogChecks(domain.VerificationTypeSelfie,
					"Liveness Detection", "Face Match to ID", "Face Clarity", "Glasses Detection"),
				Settings: models.VerificationSettings{
					AllowedCountries: []string{"US", "CA", "AU", "NZ"},
					MaxRetries:       2,
					CaptureMethod:    models.CaptureMethodBoth,
				},
			},
		},
		{
			ID:          "ver_preset_document",
			Name:        "Document",
			Description: "Document upload verification for proof of address and similar documents",
			Kind:        models.KindVerification,
			Defaults: models.VerificationTemplateInput{
				Name: "Document Upload",
				Type: domain.VerificationTypeDocument,
				Checks: catalogChecks(domain.VerificationTypeDocument,
					"Document Readable", "Document Not Expired", "Document Tampering", "Name Matches ID"),
				Settings: models.VerificationSettings{
					AllowedCountries: []string{"US", "GB", "IE"},
					MaxRetries:       2,
					CaptureMethod:    models.CaptureMethodManual,
				},
			},
		},
		{
			ID:          "ver_preset_database",
			Name:        "Database",
			Description: "Automated database verification against identity records",
			Kind:        models.KindVerification,
			Defaults: models.VerificationTemplateInput{
				Name: "Database Verification",
				Type: domain.VerificationTypeDatabase,
				Checks: catalogChecks(domain.VerificationTypeDatabase,
					"Name Match", "Date of Birth Match", "Address Match", "SSN/TIN Match"),
				Settings: models.VerificationSettings{
					AllowedCountries: []string{"US"},
					MaxRetries:       2,
					CaptureMethod:    models.CaptureMethodAuto,
				},
			},
		},
	}
}

func reportPresets() []reportPreset {
	return []reportPreset{
		{
			ID:          "rep_preset_watchlist",
			Name:        "Watchlist",
			Description: "Screen against global sanctions and watchlists including OFAC, UN, and EU",
			Kind:        models.KindReport,
			Defaults: models.ReportTemplateInput{
				Name:             "Watchlist Screening",
				Type:             domain.ReportTypeWatchlist,
				ScreeningSources: synth.ScreeningSources(domain.ReportTypeWatchlist),
				Settings:         models.ReportSettings{MatchThreshold: 85, ContinuousMonitoring: true, MonitoringFrequencyDays: 1, EnableFuzzyMatch: true},
			},
		},
		{
			ID:          "rep_preset_pep",
			Name:        "Politically Exposed Person",
			Description: "Identify politically exposed persons and their close associates",
			Kind:        models.KindReport,
			Defaults: models.ReportTemplateInput{
				Name:             "PEP Report",
				Type:             domain.ReportTypePEP,
				ScreeningSources: synth.ScreeningSources(domain.ReportTypePEP),
				Settings:         models.ReportSettings{MatchThreshold: 82, ContinuousMonitoring: true, MonitoringFrequencyDays: 7, EnableFuzzyMatch: true},
			},
		},
		{
			ID:          "rep_preset_adverse_media",
			Name:        "Adverse Media",
			Description: "Monitor for negative news coverage including financial crime and regulatory actions",
			Kind:        models.KindReport,
			Defaults: models.ReportTemplateInput{
				Name:             "Adverse Media Monitoring",
				Type:             domain.ReportTypeAdverseMedia,
				ScreeningSources: synth.ScreeningSources(domain.ReportTypeAdverseMedia),
				Settings:         models.ReportSettings{MatchThreshold: 68, ContinuousMonitoring: true, MonitoringFrequencyDays: 2, EnableFuzzyMatch: true},
			},
		},
	}
}
