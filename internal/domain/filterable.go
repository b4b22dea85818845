package domain

import "time"

// The accessors below let the filter package evaluate criteria over
// inquiries and reports alike.

func (i Inquiry) RecordStatus() string          { return string(i.Status) }
func (i Inquiry) RecordTemplate() string        { return i.TemplateName }
func (i Inquiry) RecordTags() []string          { return i.Tags }
func (i Inquiry) RecordCreatedAt() time.Time    { return i.CreatedAt }
func (i Inquiry) RecordCompletedAt() *time.Time { return i.CompletedAt }

// Reports carry no tags, so a tag criterion never matches one.
func (r Report) RecordStatus() string          { return string(r.Status) }
func (r Report) RecordTemplate() string        { return r.TemplateName }
func (r Report) RecordTags() []string          { return nil }
func (r Report) RecordCreatedAt() time.Time    { return r.CreatedAt }
func (r Report) RecordCompletedAt() *time.Time { return r.CompletedAt }

// SearchFields are the values the dashboard search box matches against.

func (a Account) SearchFields() []string      { return []string{a.ID, a.ReferenceID, a.Name} }
func (i Inquiry) SearchFields() []string      { return []string{i.ID, i.ReferenceID, i.AccountName, i.AccountID} }
func (v Verification) SearchFields() []string { return []string{v.ID, v.InquiryID} }
func (r Report) SearchFields() []string       { return []string{r.ID, r.PrimaryInput, r.AccountID, r.InquiryID} }
