package models

import "time"

// Record is the behavior the template store needs from every template kind.
type Record[T any] interface {
	RecordID() string
	RecordStatus() TemplateStatus
	// Stamped returns a copy with UpdatedAt set to now. LastPublishedAt is set
	// as well when published is true.
	Stamped(now time.Time, published bool) T
	Clone() T
}

func (t InquiryTemplate) RecordID() string             { return t.ID }
func (t InquiryTemplate) RecordStatus() TemplateStatus { return t.Status }

func (t InquiryTemplate) Stamped(now time.Time, published bool) InquiryTemplate {
	out := t.Clone()
	out.UpdatedAt = now
	if published {
		out.LastPublishedAt = &now
	}
	return out
}

func (t VerificationTemplate) RecordID() string             { return t.ID }
func (t VerificationTemplate) RecordStatus() TemplateStatus { return t.Status }

func (t VerificationTemplate) Stamped(now time.Time, published bool) VerificationTemplate {
	out := t.Clone()
	out.UpdatedAt = now
	if published {
		out.LastPublishedAt = &now
	}
	return out
}

func (t ReportTemplate) RecordID() string             { return t.ID }
func (t ReportTemplate) RecordStatus() TemplateStatus { return t.Status }

func (t ReportTemplate) Stamped(now time.Time, published bool) ReportTemplate {
	out := t.Clone()
	out.UpdatedAt = now
	if published {
		out.LastPublishedAt = &now
	}
	return out
}
