// Package dataset holds the seeded, read-only records the dashboard browses
// and the relationship lookups between them.
package dataset

import (
	"verifydesk/internal/domain"
	"verifydesk/internal/synth"
)

// Store serves the dataset. It is immutable after construction, so it is safe
// for concurrent readers. Every accessor hands out copies.
type Store struct {
	accounts      []domain.Account
	inquiries     []domain.Inquiry
	verifications []domain.Verification
	reports       []domain.Report
	sessions      []domain.Session
	events        []domain.Event
}

// AccountOverview is an account with every record that hangs off it.
type AccountOverview struct {
	Account       domain.Account        `json:"account"`
	Inquiries     []domain.Inquiry      `json:"inquiries"`
	Verifications []domain.Verification `json:"verifications"`
	Reports       []domain.Report       `json:"reports"`
}

// New copies fx into a Store. Later changes to fx are not observed.
func New(fx Fixtures) *Store {
	return &Store{
		accounts:      cloneAll(fx.Accounts, domain.Account.Clone),
		inquiries:     cloneAll(fx.Inquiries, domain.Inquiry.Clone),
		verifications: cloneAll(fx.Verifications, domain.Verification.Clone),
		reports:       cloneAll(fx.Reports, domain.Report.Clone),
		sessions:      cloneAll(fx.Sessions, identity[domain.Session]),
		events:        cloneAll(fx.Events, identity[domain.Event]),
	}
}

func accountKey(a domain.Account) string           { return a.ID }
func inquiryKey(i domain.Inquiry) string           { return i.ID }
func verificationKey(v domain.Verification) string { return v.ID }
func reportKey(r domain.Report) string             { return r.ID }

func (s *Store) Accounts() []domain.Account {
	return cloneAll(s.accounts, domain.Account.Clone)
}

func (s *Store) Inquiries() []domain.Inquiry {
	return cloneAll(s.inquiries, domain.Inquiry.Clone)
}

func (s *Store) Verifications() []domain.Verification {
	return cloneAll(s.verifications, domain.Verification.Clone)
}

func (s *Store) Reports() []domain.Report {
	return cloneAll(s.reports, domain.Report.Clone)
}

func (s *Store) Account(id string) (domain.Account, bool) {
	a, ok := FindByID(s.accounts, id, accountKey)
	return a.Clone(), ok
}

func (s *Store) Inquiry(id string) (domain.Inquiry, bool) {
	i, ok := FindByID(s.inquiries, id, inquiryKey)
	return i.Clone(), ok
}

func (s *Store) Verification(id string) (domain.Verification, bool) {
	v, ok := FindByID(s.verifications, id, verificationKey)
	return v.Clone(), ok
}

func (s *Store) Report(id string) (domain.Report, bool) {
	r, ok := FindByID(s.reports, id, reportKey)
	return r.Clone(), ok
}

func (s *Store) InquiriesForAccount(accountID string) []domain.Inquiry {
	found := FilterByForeignKey(s.inquiries, func(i domain.Inquiry) string { return i.AccountID }, accountID)
	return cloneAll(found, domain.Inquiry.Clone)
}

func (s *Store) VerificationsForInquiry(inquiryID string) []domain.Verification {
	found := FilterByForeignKey(s.verifications, func(v domain.Verification) string { return v.InquiryID }, inquiryID)
	return cloneAll(found, domain.Verification.Clone)
}

// VerificationsForAccount collects the verifications of every inquiry the
// account owns, grouped by inquiry.
func (s *Store) VerificationsForAccount(accountID string) []domain.Verification {
	out := make([]domain.Verification, 0)
	for _, inq := range s.InquiriesForAccount(accountID) {
		out = append(out, s.VerificationsForInquiry(inq.ID)...)
	}
	return out
}

func (s *Store) ReportsForInquiry(inquiryID string) []domain.Report {
	found := FilterByForeignKey(s.reports, func(r domain.Report) string { return r.InquiryID }, inquiryID)
	return cloneAll(found, domain.Report.Clone)
}

func (s *Store) ReportsForAccount(accountID string) []domain.Report {
	found := FilterByForeignKey(s.reports, func(r domain.Report) string { return r.AccountID }, accountID)
	return cloneAll(found, domain.Report.Clone)
}

func (s *Store) SessionsForInquiry(inquiryID string) []domain.Session {
	return FilterByForeignKey(s.sessions, func(se domain.Session) string { return se.InquiryID }, inquiryID)
}

func (s *Store) EventsForInquiry(inquiryID string) []domain.Event {
	return FilterByForeignKey(s.events, func(e domain.Event) string { return e.InquiryID }, inquiryID)
}

// SignalsForInquiry synthesizes the inquiry's telemetry from its id. Unknown
// inquiries and inquiries still in created have observed nothing and yield an
// empty list.
func (s *Store) SignalsForInquiry(inquiryID string) []domain.InquirySignal {
	if !s.observed(inquiryID) {
		return []domain.InquirySignal{}
	}
	return synth.Signals(synth.Seed(inquiryID))
}

// BehavioralRiskForInquiry returns nil for unknown or unstarted inquiries.
func (s *Store) BehavioralRiskForInquiry(inquiryID string) *domain.BehavioralRisk {
	if !s.observed(inquiryID) {
		return nil
	}
	risk := synth.BehavioralRisk(synth.Seed(inquiryID))
	return &risk
}

func (s *Store) observed(inquiryID string) bool {
	inq, ok := FindByID(s.inquiries, inquiryID, inquiryKey)
	return ok && inq.Status.IsStarted()
}

// AccountOverview gathers an account and its inquiries, verifications, and
// reports. ok is false when the account does not exist.
func (s *Store) AccountOverview(id string) (AccountOverview, bool) {
	acct, ok := s.Account(id)
	if !ok {
		return AccountOverview{}, false
	}
	return AccountOverview{
		Account:       acct,
		Inquiries:     s.InquiriesForAccount(id),
		Verifications: s.VerificationsForAccount(id),
		Reports:       s.ReportsForAccount(id),
	}, true
}

func cloneAll[T any](items []T, clone func(T) T) []T {
	out := make([]T, len(items))
	for i, item := range items {
		out[i] = clone(item)
	}
	return out
}

func identity[T any](v T) T { return v }
