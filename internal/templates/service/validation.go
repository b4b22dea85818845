package service

import (
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"verifydesk/internal/domain"
	"verifydesk/internal/synth"
	"verifydesk/internal/templates/models"
	dErrors "verifydesk/pkg/domain-errors"
	pkgstrings "verifydesk/pkg/platform/strings"
)

const (
	maxNameLength    = 128
	maxExpiresInDays = 365
	maxRetries       = 10
	maxThreshold     = 100
)

func invalid(format string, args ...any) error {
	return dErrors.New(dErrors.CodeValidation, fmt.Sprintf(format, args...))
}

func normalizeInquiryInput(in models.InquiryTemplateInput) models.InquiryTemplateInput {
	in.Name = strings.TrimSpace(in.Name)
	in.Description = strings.TrimSpace(in.Description)
	if in.Status == "" {
		in.Status = models.TemplateStatusDraft
	}
	return in
}

func normalizeInquiryPatch(_ models.InquiryTemplate, p models.InquiryTemplatePatch) models.InquiryTemplatePatch {
	p.Name = trimmed(p.Name)
	p.Description = trimmed(p.Description)
	return p
}

func normalizeVerificationInput(in models.VerificationTemplateInput) models.VerificationTemplateInput {
	in.Name = strings.TrimSpace(in.Name)
	if in.Status == "" {
		in.Status = models.TemplateStatusDraft
	}
	in.Checks = withCatalogCategories(in.Type, in.Checks)
	in.Settings = normalizeVerificationSettings(in.Settings)
	return in
}

func normalizeVerificationPatch(current models.VerificationTemplate, p models.VerificationTemplatePatch) models.VerificationTemplatePatch {
	p.Name = trimmed(p.Name)
	vt := current.Type
	if p.Type != nil {
		vt = *p.Type
	}
	if p.Checks != nil {
		p.Checks = withCatalogCategories(vt, p.Checks)
	}
	if p.Settings != nil {
		settings := normalizeVerificationSettings(*p.Settings)
		p.Settings = &settings
	}
	return p
}

func normalizeVerificationSettings(s models.VerificationSettings) models.VerificationSettings {
	s.AllowedCountries = pkgstrings.DedupeAndTrimUpper(s.AllowedCountries)
	if s.CaptureMethod == "" {
		s.CaptureMethod = models.CaptureMethodAuto
	}
	return s
}

// withCatalogCategories fills blank check categories from the catalog.
func withCatalogCategories(vt domain.VerificationType, checks []models.CheckConfig) []models.CheckConfig {
	if checks == nil {
		return nil
	}
	catalog := domain.AvailableChecks(vt)
	out := slices.Clone(checks)
	for i, c := range out {
		out[i].Name = strings.TrimSpace(c.Name)
		if c.Category != "" {
			continue
		}
		if j := slices.IndexFunc(catalog, func(a domain.AvailableCheck) bool { return a.Name == out[i].Name }); j >= 0 {
			out[i].Category = catalog[j].Category
		}
	}
	return out
}

func normalizeReportInput(in models.ReportTemplateInput) models.ReportTemplateInput {
	in.Name = strings.TrimSpace(in.Name)
	if in.Status == "" {
		in.Status = models.TemplateStatusDraft
	}
	in.ScreeningSources = pkgstrings.DedupeAndTrim(in.ScreeningSources)
	return in
}

func normalizeReportPatch(_ models.ReportTemplate, p models.ReportTemplatePatch) models.ReportTemplatePatch {
	p.Name = trimmed(p.Name)
	if p.ScreeningSources != nil {
		p.ScreeningSources = pkgstrings.DedupeAndTrim(p.ScreeningSources)
	}
	return p
}

func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

func validateCommon(name string, status models.TemplateStatus) error {
	if name == "" {
		return invalid("name is required")
	}
	if utf8.RuneCountInString(name) > maxNameLength {
		return invalid("name must be at most %d characters", maxNameLength)
	}
	if !status.IsValid() {
		return invalid("invalid status: %s", status)
	}
	return nil
}

func validateInquiry(t models.InquiryTemplate) error {
	if err := validateCommon(t.Name, t.Status); err != nil {
		return err
	}
	if len(t.Steps) == 0 {
		return invalid("at least one step is required")
	}
	for i, step := range t.Steps {
		if !step.VerificationType.IsValid() {
			return invalid("step %d: invalid verification type: %s", i+1, step.VerificationType)
		}
		for _, action := range []models.StepAction{step.OnPass, step.OnFail, step.OnRetry} {
			if !action.IsValid() {
				return invalid("step %d: invalid action: %s", i+1, action)
			}
		}
		if step.MaxRetries < 0 || step.MaxRetries > maxRetries {
			return invalid("step %d: maxRetries must be between 0 and %d", i+1, maxRetries)
		}
	}
	if t.Settings.ExpiresInDays < 1 || t.Settings.ExpiresInDays > maxExpiresInDays {
		return invalid("expiresInDays must be between 1 and %d", maxExpiresInDays)
	}
	if t.Settings.MaxRetries < 0 || t.Settings.MaxRetries > maxRetries {
		return invalid("maxRetries must be between 0 and %d", maxRetries)
	}
	return nil
}

func validateVerification(t models.VerificationTemplate) error {
	if err := validateCommon(t.Name, t.Status); err != nil {
		return err
	}
	if !t.Type.IsValid() {
		return invalid("invalid verification type: %s", t.Type)
	}
	catalog := domain.AvailableChecks(t.Type)
	seen := make(map[string]bool, len(t.Checks))
	for _, c := range t.Checks {
		j := slices.IndexFunc(catalog, func(a domain.AvailableCheck) bool { return a.Name == c.Name })
		if j < 0 {
			return invalid("check %q is not available for %s", c.Name, t.Type)
		}
		if c.Category != catalog[j].Category {
			return invalid("check %q belongs to category %s", c.Name, catalog[j].Category)
		}
		if seen[c.Name] {
			return invalid("check %q is listed twice", c.Name)
		}
		seen[c.Name] = true
	}
	for _, country := range t.Settings.AllowedCountries {
		if !isCountryCode(country) {
			return invalid("invalid country code: %s", country)
		}
	}
	if t.Settings.MaxRetries < 0 || t.Settings.MaxRetries > maxRetries {
		return invalid("maxRetries must be between 0 and %d", maxRetries)
	}
	if !t.Settings.CaptureMethod.IsValid() {
		return invalid("invalid capture method: %s", t.Settings.CaptureMethod)
	}
	return nil
}

func isCountryCode(s string) bool {
	if len(s) != 2 {
		return false
	}
	for _, r := range s {
		if r < 'A' || r > 'Z' {
			return false
		}
	}
	return true
}

func validateReport(t models.ReportTemplate) error {
	if err := validateCommon(t.Name, t.Status); err != nil {
		return err
	}
	if !t.Type.IsValid() {
		return invalid("invalid report type: %s", t.Type)
	}
	if len(t.ScreeningSources) == 0 {
		return invalid("at least one screening source is required")
	}
	known := synth.ScreeningSources(t.Type)
	for _, src := range t.ScreeningSources {
		if !slices.Contains(known, src) {
			return invalid("screening source %q is not available for %s", src, t.Type)
		}
	}
	if t.Settings.MatchThreshold < 0 || t.Settings.MatchThreshold > maxThreshold {
		return invalid("matchThreshold must be between 0 and %d", maxThreshold)
	}
	if t.Settings.ContinuousMonitoring && t.Settings.MonitoringFrequencyDays < 1 {
		return invalid("monitoringFrequencyDays must be at least 1 when continuous monitoring is on")
	}
	return nil
}
