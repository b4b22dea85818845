package models

import "verifydesk/internal/domain"

// Preset is a starting point for a new template. Defaults carry no status;
// templates created from a preset start as drafts.
type Preset[In any] struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Kind        Kind   `json:"templateType"`
	Defaults    In     `json:"defaults"`
}

type PresetCatalog struct {
	Inquiry      []Preset[InquiryTemplateInput]      `json:"inquiry"`
	Verification []Preset[VerificationTemplateInput] `json:"verification"`
	Report       []Preset[ReportTemplateInput]       `json:"report"`
}

type CheckCategoryInfo struct {
	Category    domain.CheckCategory `json:"category"`
	Label       string               `json:"label"`
	Description string               `json:"description"`
}

// CheckCatalog lists the checks a verification template can toggle, per
// verification type.
type CheckCatalog struct {
	Checks     map[domain.VerificationType][]domain.AvailableCheck `json:"checks"`
	Categories []CheckCategoryInfo                                 `json:"categories"`
}
