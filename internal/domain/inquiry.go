package domain

import (
	"slices"
	"time"
)

type InquiryStatus string

const (
	InquiryStatusCreated     InquiryStatus = "created"
	InquiryStatusPending     InquiryStatus = "pending"
	InquiryStatusCompleted   InquiryStatus = "completed"
	InquiryStatusApproved    InquiryStatus = "approved"
	InquiryStatusDeclined    InquiryStatus = "declined"
	InquiryStatusNeedsReview InquiryStatus = "needs_review"
	InquiryStatusExpired     InquiryStatus = "expired"
	InquiryStatusFailed      InquiryStatus = "failed"
)

// IsStarted reports whether anything has been observed for the inquiry yet.
func (s InquiryStatus) IsStarted() bool {
	return s != InquiryStatusCreated
}

// IsFinished reports whether the inquiry reached a terminal decision.
func (s InquiryStatus) IsFinished() bool {
	switch s {
	case InquiryStatusCompleted, InquiryStatusApproved, InquiryStatusDeclined, InquiryStatusNeedsReview:
		return true
	}
	return false
}

type VerificationAttempts struct {
	GovernmentID int `json:"governmentId"`
	Selfie       int `json:"selfie"`
}

// Inquiry is one verification session requested for an account.
type Inquiry struct {
	ID                   string               `json:"id"`
	AccountID            string               `json:"accountId"`
	AccountName          string               `json:"accountName"`
	ReferenceID          string               `json:"referenceId,omitempty"`
	Status               InquiryStatus        `json:"status"`
	TemplateName         string               `json:"templateName"`
	Tags                 []string             `json:"tags"`
	CreatedAt            time.Time            `json:"createdAt"`
	UpdatedAt            time.Time            `json:"updatedAt"`
	CompletedAt          *time.Time           `json:"completedAt,omitempty"`
	VerificationAttempts VerificationAttempts `json:"verificationAttempts"`
	// TimeToFinish is in seconds; zero when the inquiry has not finished.
	TimeToFinish int `json:"timeToFinish,omitempty"`
}

func (i Inquiry) Clone() Inquiry {
	out := i
	out.Tags = slices.Clone(i.Tags)
	if i.CompletedAt != nil {
		t := *i.CompletedAt
		out.CompletedAt = &t
	}
	return out
}

// HasAnyTag reports whether the inquiry carries at least one of tags.
func (i Inquiry) HasAnyTag(tags []string) bool {
	for _, t := range tags {
		if slices.Contains(i.Tags, t) {
			return true
		}
	}
	return false
}
