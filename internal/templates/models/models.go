// Package models defines the reusable workflow definitions the dashboard
// manages: inquiry, verification, and report templates.
package models

import (
	"slices"
	"time"

	"verifydesk/internal/domain"
)

// Kind names one of the three template collections.
type Kind string

const (
	KindInquiry      Kind = "inquiries"
	KindVerification Kind = "verifications"
	KindReport       Kind = "reports"
)

func (k Kind) IsValid() bool {
	switch k {
	case KindInquiry, KindVerification, KindReport:
		return true
	}
	return false
}

// IDPrefix is prepended to every id issued for the kind.
func (k Kind) IDPrefix() string {
	switch k {
	case KindInquiry:
		return "itmpl_"
	case KindVerification:
		return "vtmpl_"
	case KindReport:
		return "rptp_"
	}
	return ""
}

type TemplateStatus string

const (
	TemplateStatusDraft    TemplateStatus = "draft"
	TemplateStatusActive   TemplateStatus = "active"
	TemplateStatusArchived TemplateStatus = "archived"
)

func (s TemplateStatus) IsValid() bool {
	switch s {
	case TemplateStatusDraft, TemplateStatusActive, TemplateStatusArchived:
		return true
	}
	return false
}

// CanTransitionTo reports whether a template may move from s to next.
// Drafts publish or archive, active templates archive, archived templates
// stay archived. Staying in place is always allowed.
func (s TemplateStatus) CanTransitionTo(next TemplateStatus) bool {
	if s == next {
		return true
	}
	switch s {
	case TemplateStatusDraft:
		return next == TemplateStatusActive || next == TemplateStatusArchived
	case TemplateStatusActive:
		return next == TemplateStatusArchived
	}
	return false
}

// StepAction is what an inquiry does after a step resolves.
type StepAction string

const (
	StepActionContinue    StepAction = "continue"
	StepActionApprove     StepAction = "approve"
	StepActionDecline     StepAction = "decline"
	StepActionNeedsReview StepAction = "needs_review"
	StepActionRetry       StepAction = "retry"
)

func (a StepAction) IsValid() bool {
	switch a {
	case "", StepActionContinue, StepActionApprove, StepActionDecline, StepActionNeedsReview, StepActionRetry:
		return true
	}
	return false
}

type InquiryTemplateStep struct {
	VerificationType domain.VerificationType `json:"verificationType"`
	Required         bool                    `json:"required"`
	OnPass           StepAction              `json:"onPass,omitempty"`
	OnFail           StepAction              `json:"onFail,omitempty"`
	OnRetry          StepAction              `json:"onRetry,omitempty"`
	MaxRetries       int                     `json:"maxRetries,omitempty"`
}

type InquirySettings struct {
	AutoApprove   bool   `json:"autoApprove"`
	ExpiresInDays int    `json:"expiresInDays"`
	MaxRetries    int    `json:"maxRetries"`
	RedirectURL   string `json:"redirectUrl,omitempty"`
}

type InquiryTemplate struct {
	ID              string                `json:"id"`
	Name            string                `json:"name"`
	Description     string                `json:"description,omitempty"`
	Status          TemplateStatus        `json:"status"`
	LastPublishedAt *time.Time            `json:"lastPublishedAt,omitempty"`
	Steps           []InquiryTemplateStep `json:"steps"`
	Settings        InquirySettings       `json:"settings"`
	CreatedAt       time.Time             `json:"createdAt"`
	UpdatedAt       time.Time             `json:"updatedAt"`
}

func (t InquiryTemplate) Clone() InquiryTemplate {
	out := t
	out.LastPublishedAt = cloneTime(t.LastPublishedAt)
	out.Steps = slices.Clone(t.Steps)
	return out
}

type CaptureMethod string

const (
	CaptureMethodAuto   CaptureMethod = "auto"
	CaptureMethodManual CaptureMethod = "manual"
	CaptureMethodBoth   CaptureMethod = "both"
)

func (m CaptureMethod) IsValid() bool {
	switch m {
	case CaptureMethodAuto, CaptureMethodManual, CaptureMethodBoth:
		return true
	}
	return false
}

// CheckConfig toggles one catalog check inside a verification template.
type CheckConfig struct {
	Name     string               `json:"name"`
	Category domain.CheckCategory `json:"category"`
	Required bool                 `json:"required"`
	Enabled  bool                 `json:"enabled"`
}

type VerificationSettings struct {
	AllowedCountries []string      `json:"allowedCountries"`
	MaxRetries       int           `json:"maxRetries"`
	CaptureMethod    CaptureMethod `json:"captureMethod"`
}

type VerificationTemplate struct {
	ID              string                  `json:"id"`
	Name            string                  `json:"name"`
	Type            domain.VerificationType `json:"type"`
	Status          TemplateStatus          `json:"status"`
	LastPublishedAt *time.Time              `json:"lastPublishedAt,omitempty"`
	Checks          []CheckConfig           `json:"checks"`
	Settings        VerificationSettings    `json:"settings"`
	CreatedAt       time.Time               `json:"createdAt"`
	UpdatedAt       time.Time               `json:"updatedAt"`
}

func (t VerificationTemplate) Clone() VerificationTemplate {
	out := t
	out.LastPublishedAt = cloneTime(t.LastPublishedAt)
	out.Checks = slices.Clone(t.Checks)
	out.Settings.AllowedCountries = slices.Clone(t.Settings.AllowedCountries)
	return out
}

type ReportSettings struct {
	MatchThreshold          int  `json:"matchThreshold"`
	ContinuousMonitoring    bool `json:"continuousMonitoring"`
	MonitoringFrequencyDays int  `json:"monitoringFrequencyDays"`
	EnableFuzzyMatch        bool `json:"enableFuzzyMatch"`
}

type ReportTemplate struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Type             domain.ReportType `json:"type"`
	Status           TemplateStatus    `json:"status"`
	LastPublishedAt  *time.Time        `json:"lastPublishedAt,omitempty"`
	ScreeningSources []string          `json:"screeningSources"`
	Settings         ReportSettings    `json:"settings"`
	CreatedAt        time.Time         `json:"createdAt"`
	UpdatedAt        time.Time         `json:"updatedAt"`
}

func (t ReportTemplate) Clone() ReportTemplate {
	out := t
	out.LastPublishedAt = cloneTime(t.LastPublishedAt)
	out.ScreeningSources = slices.Clone(t.ScreeningSources)
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
