package models

import (
	"slices"
	"time"

	"verifydesk/internal/domain"
)

// Inputs carry everything a caller may set on create. Identity and
// timestamps are assigned by the store.

type InquiryTemplateInput struct {
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Status      TemplateStatus        `json:"status"`
	Steps       []InquiryTemplateStep `json:"steps"`
	Settings    InquirySettings       `json:"settings"`
}

func (in InquiryTemplateInput) Build(id string, now time.Time) InquiryTemplate {
	return InquiryTemplate{
		ID:          id,
		Name:        in.Name,
		Description: in.Description,
		Status:      in.Status,
		Steps:       slices.Clone(in.Steps),
		Settings:    in.Settings,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

type VerificationTemplateInput struct {
	Name     string                  `json:"name"`
	Type     domain.VerificationType `json:"type"`
	Status   TemplateStatus          `json:"status"`
	Checks   []CheckConfig           `json:"checks"`
	Settings VerificationSettings    `json:"settings"`
}

func (in VerificationTemplateInput) Build(id string, now time.Time) VerificationTemplate {
	settings := in.Settings
	settings.AllowedCountries = slices.Clone(in.Settings.AllowedCountries)
	return VerificationTemplate{
		ID:        id,
		Name:      in.Name,
		Type:      in.Type,
		Status:    in.Status,
		Checks:    slices.Clone(in.Checks),
		Settings:  settings,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

type ReportTemplateInput struct {
	Name             string            `json:"name"`
	Type             domain.ReportType `json:"type"`
	Status           TemplateStatus    `json:"status"`
	ScreeningSources []string          `json:"screeningSources"`
	Settings         ReportSettings    `json:"settings"`
}

func (in ReportTemplateInput) Build(id string, now time.Time) ReportTemplate {
	return ReportTemplate{
		ID:               id,
		Name:             in.Name,
		Type:             in.Type,
		Status:           in.Status,
		ScreeningSources: slices.Clone(in.ScreeningSources),
		Settings:         in.Settings,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

// Patches are partial updates. A nil field leaves the stored value alone;
// settings are replaced as a whole when present.

type InquiryTemplatePatch struct {
	Name        *string               `json:"name,omitempty"`
	Description *string               `json:"description,omitempty"`
	Status      *TemplateStatus       `json:"status,omitempty"`
	Steps       []InquiryTemplateStep `json:"steps,omitempty"`
	Settings    *InquirySettings      `json:"settings,omitempty"`
}

func (p InquiryTemplatePatch) ApplyTo(t InquiryTemplate) InquiryTemplate {
	out := t.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.Steps != nil {
		out.Steps = slices.Clone(p.Steps)
	}
	if p.Settings != nil {
		out.Settings = *p.Settings
	}
	return out
}

type VerificationTemplatePatch struct {
	Name     *string                  `json:"name,omitempty"`
	Type     *domain.VerificationType `json:"type,omitempty"`
	Status   *TemplateStatus          `json:"status,omitempty"`
	Checks   []CheckConfig            `json:"checks,omitempty"`
	Settings *VerificationSettings    `json:"settings,omitempty"`
}

func (p VerificationTemplatePatch) ApplyTo(t VerificationTemplate) VerificationTemplate {
	out := t.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Type != nil {
		out.Type = *p.Type
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.Checks != nil {
		out.Checks = slices.Clone(p.Checks)
	}
	if p.Settings != nil {
		out.Settings = *p.Settings
		out.Settings.AllowedCountries = slices.Clone(p.Settings.AllowedCountries)
	}
	return out
}

type ReportTemplatePatch struct {
	Name             *string            `json:"name,omitempty"`
	Type             *domain.ReportType `json:"type,omitempty"`
	Status           *TemplateStatus    `json:"status,omitempty"`
	ScreeningSources []string           `json:"screeningSources,omitempty"`
	Settings         *ReportSettings    `json:"settings,omitempty"`
}

func (p ReportTemplatePatch) ApplyTo(t ReportTemplate) ReportTemplate {
	out := t.Clone()
	if p.Name != nil {
		out.Name = *p.Name
	}
	if p.Type != nil {
		out.Type = *p.Type
	}
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.ScreeningSources != nil {
		out.ScreeningSources = slices.Clone(p.ScreeningSources)
	}
	if p.Settings != nil {
		out.Settings = *p.Settings
	}
	return out
}

