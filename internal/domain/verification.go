package domain

import (
	"maps"
	"slices"
	"time"
)

type VerificationType string

const (
	VerificationTypeGovernmentID VerificationType = "government_id"
	VerificationTypeSelfie       VerificationType = "selfie"
	VerificationTypeDatabase     VerificationType = "database"
	VerificationTypeDocument     VerificationType = "document"
)

// VerificationTypes lists every type in display order.
var VerificationTypes = []VerificationType{
	VerificationTypeGovernmentID,
	VerificationTypeSelfie,
	VerificationTypeDatabase,
	VerificationTypeDocument,
}

func (t VerificationType) IsValid() bool {
	return slices.Contains(VerificationTypes, t)
}

type VerificationStatus string

const (
	VerificationStatusInitiated     VerificationStatus = "initiated"
	VerificationStatusSubmitted     VerificationStatus = "submitted"
	VerificationStatusPassed        VerificationStatus = "passed"
	VerificationStatusFailed        VerificationStatus = "failed"
	VerificationStatusRequiresRetry VerificationStatus = "requires_retry"
)

type CheckCategory string

const (
	CheckCategoryFraud              CheckCategory = "fraud"
	CheckCategoryValidity           CheckCategory = "validity"
	CheckCategoryBiometrics         CheckCategory = "biometrics"
	CheckCategoryUserActionRequired CheckCategory = "user_action_required"
)

func (c CheckCategory) IsValid() bool {
	switch c {
	case CheckCategoryFraud, CheckCategoryValidity, CheckCategoryBiometrics, CheckCategoryUserActionRequired:
		return true
	}
	return false
}

type CheckStatus string

const (
	CheckStatusPassed        CheckStatus = "passed"
	CheckStatusFailed        CheckStatus = "failed"
	CheckStatusNotApplicable CheckStatus = "not_applicable"
)

// Check is one pass/fail test run inside a verification.
type Check struct {
	Name     string        `json:"name"`
	Category CheckCategory `json:"category"`
	Required bool          `json:"required"`
	Status   CheckStatus   `json:"status"`
}

// Photo is a labeled capture reference.
type Photo struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// Verification is a single check instance executed for one inquiry.
// ExtractedData values are strings or ints.
type Verification struct {
	ID            string             `json:"id"`
	InquiryID     string             `json:"inquiryId"`
	Type          VerificationType   `json:"type"`
	Status        VerificationStatus `json:"status"`
	Checks        []Check            `json:"checks"`
	ExtractedData map[string]any     `json:"extractedData,omitempty"`
	Photos        []Photo            `json:"photos,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	CompletedAt   *time.Time         `json:"completedAt,omitempty"`
}

func (v Verification) Clone() Verification {
	out := v
	out.Checks = slices.Clone(v.Checks)
	out.Photos = slices.Clone(v.Photos)
	out.ExtractedData = maps.Clone(v.ExtractedData)
	if v.CompletedAt != nil {
		t := *v.CompletedAt
		out.CompletedAt = &t
	}
	return out
}
