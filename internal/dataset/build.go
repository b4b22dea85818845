package dataset

import (
	"fmt"
	"strings"
	"time"

	"verifydesk/internal/domain"
	"verifydesk/internal/ids"
	"verifydesk/internal/synth"
)

// DefaultAnchor is the instant generated records are placed relative to.
var DefaultAnchor = time.Date(2026, time.February, 10, 17, 0, 0, 0, time.UTC)

const (
	personIndexBase = 100
	reportIndexBase = 300
	manualIndexBase = 200

	amlMarker              = "AML"
	watchlistReportTmpl    = "KYC + AML: Watchlist Report"
	pepReportTmpl          = "KYC + AML: PEP Report"
	manualWatchlistTmpl    = "Manual Watchlist Screening"
	manualScreeningSubject = "Lars Eriksson"
	captureBaseURL         = "https://assets.verifydesk.example/captures"
)

// Fixtures is the full set of records a Store serves.
type Fixtures struct {
	Accounts      []domain.Account
	Inquiries     []domain.Inquiry
	Verifications []domain.Verification
	Reports       []domain.Report
	Sessions      []domain.Session
	Events        []domain.Event
}

type buildConfig struct {
	anchor time.Time
}

// Option configures Build.
type Option func(*buildConfig)

// WithAnchor places generated records relative to t instead of DefaultAnchor.
func WithAnchor(t time.Time) Option {
	return func(c *buildConfig) {
		if !t.IsZero() {
			c.anchor = t.UTC()
		}
	}
}

// Build generates the seeded dataset and wraps it in a Store.
func Build(opts ...Option) *Store {
	cfg := buildConfig{anchor: DefaultAnchor}
	for _, opt := range opts {
		opt(&cfg)
	}
	return New(Generate(cfg.anchor))
}

// Generate produces one account and one inquiry per seeded person. Started
// inquiries also get verifications, a session, and an event timeline.
// Finished inquiries on an AML template get a watchlist and PEP report pair.
func Generate(anchor time.Time) Fixtures {
	g := &generator{anchor: anchor, repIdx: reportIndexBase}
	for i, p := range people {
		g.addPerson(i, p)
	}
	g.addManualReports()
	return g.fx
}

type generator struct {
	anchor time.Time
	repIdx int
	fx     Fixtures
}

func (g *generator) addPerson(i int, p person) {
	idx := personIndexBase + i
	accountID := ids.Generate("act", idx)
	inquiryID := ids.Generate("inq", idx)
	seed := synth.Seed(inquiryID)
	created := g.anchor.Add(-time.Duration(p.minutesAgo) * time.Minute)
	c := cities[p.city]

	acct := domain.Account{
		ID:          accountID,
		ReferenceID: fmt.Sprintf("usr_%06d", 40000+idx*37),
		Name:        p.name,
		Status:      accountStatus(p.status),
		Type:        domain.AccountTypeIndividual,
		Birthdate:   p.birthdate,
		Age:         ageAt(p.birthdate, g.anchor),
		Address: &domain.Address{
			Street:      fmt.Sprintf("%d %s", 100+(idx*7)%900, streets[i%len(streets)]),
			City:        c.name,
			Subdivision: c.subdivision,
			PostalCode:  fmt.Sprintf("%05d", (idx*3917)%100000),
			Country:     c.country,
		},
		Tags:      append([]string{}, p.tags...),
		CreatedAt: created.AddDate(0, 0, -(1 + i%60)),
		UpdatedAt: created,
	}
	if p.business {
		acct.Type = domain.AccountTypeBusiness
	}
	g.fx.Accounts = append(g.fx.Accounts, acct)

	// Verification steps are spread over the completion window.
	total := synth.CompletionSeconds(seed)
	inq := domain.Inquiry{
		ID:           inquiryID,
		AccountID:    accountID,
		AccountName:  p.name,
		ReferenceID:  acct.ReferenceID,
		Status:       p.status,
		TemplateName: p.template,
		Tags:         append([]string{}, p.tags...),
		CreatedAt:    created,
		UpdatedAt:    created,
	}
	if p.status.IsFinished() {
		done := created.Add(time.Duration(total) * time.Second)
		inq.CompletedAt = &done
		inq.UpdatedAt = done
		inq.TimeToFinish = total
	}

	if !p.status.IsStarted() {
		g.fx.Inquiries = append(g.fx.Inquiries, inq)
		return
	}

	steps := templateSteps[p.template]
	span := time.Duration(total/(len(steps)+1)) * time.Second
	verifications := make([]domain.Verification, 0, len(steps))
	for j, vt := range steps {
		status := verificationStatus(p.status, j, len(steps))
		vid := ids.Generate("ver", idx*10+j)
		vCreated := created.Add(time.Duration(j+1) * span)
		v := domain.Verification{
			ID:            vid,
			InquiryID:     inquiryID,
			Type:          vt,
			Status:        status,
			Checks:        checksFor(vt, status),
			ExtractedData: extractedData(vt, p, c, idx, g.anchor),
			Photos:        photosFor(vt, vid),
			CreatedAt:     vCreated,
		}
		if isTerminal(status) {
			t := vCreated.Add(span / 2)
			v.CompletedAt = &t
		}
		attempts := 1
		if status == domain.VerificationStatusRequiresRetry {
			attempts = 2
		}
		switch vt {
		case domain.VerificationTypeGovernmentID:
			inq.VerificationAttempts.GovernmentID += attempts
		case domain.VerificationTypeSelfie:
			inq.VerificationAttempts.Selfie += attempts
		}
		if !p.status.IsFinished() {
			inq.UpdatedAt = vCreated
		}
		verifications = append(verifications, v)
	}

	g.fx.Inquiries = append(g.fx.Inquiries, inq)
	g.fx.Verifications = append(g.fx.Verifications, verifications...)
	g.fx.Sessions = append(g.fx.Sessions, sessionFor(inquiryID, idx, seed, c, created))
	g.fx.Events = append(g.fx.Events, timeline(inq, idx, verifications)...)

	if strings.Contains(p.template, amlMarker) && isScreened(p.status) {
		g.addScreeningReports(i, p, inq)
	}
}

// addScreeningReports appends the watchlist and PEP pair for a finished AML
// inquiry. Inquiries sent to review carry watchlist hits.
func (g *generator) addScreeningReports(i int, p person, inq domain.Inquiry) {
	reportDate := inq.CreatedAt
	if inq.CompletedAt != nil {
		reportDate = *inq.CompletedAt
	}
	reportTime := reportDate.Add(time.Second)
	doneTime := reportTime.Add(time.Second)
	subject := strings.ToUpper(p.name)

	watchlist := domain.Report{
		ID:           ids.Generate("rep", g.repIdx),
		InquiryID:    inq.ID,
		AccountID:    inq.AccountID,
		Type:         domain.ReportTypeWatchlist,
		Status:       domain.ReportStatusNoMatches,
		PrimaryInput: subject,
		TemplateName: watchlistReportTmpl,
		CreatedBy:    domain.ReportCreatedByWorkflow,
		CreatedAt:    reportTime,
		CompletedAt:  &doneTime,
	}
	g.repIdx++
	if p.status == domain.InquiryStatusNeedsReview {
		watchlist.Status = domain.ReportStatusMatch
		watchlist.MatchCount = 1 + i%3
		watchlist.Matches = synth.ReportMatches(subject, watchlist.MatchCount, watchlist.Type, synth.Seed(watchlist.ID))
	}
	watchlist.ContinuousMonitoring = watchlist.Status == domain.ReportStatusMatch || i%4 == 0

	pepDone := doneTime
	pep := domain.Report{
		ID:           ids.Generate("rep", g.repIdx),
		InquiryID:    inq.ID,
		AccountID:    inq.AccountID,
		Type:         domain.ReportTypePEP,
		Status:       domain.ReportStatusNoMatches,
		PrimaryInput: subject,
		TemplateName: pepReportTmpl,
		CreatedBy:    domain.ReportCreatedByWorkflow,
		CreatedAt:    reportTime,
		CompletedAt:  &pepDone,
	}
	g.repIdx++

	g.fx.Reports = append(g.fx.Reports, watchlist, pep)
}

// addManualReports appends the hand-run screening that is not tied to an
// inquiry.
func (g *generator) addManualReports() {
	acct, ok := FindByID(g.fx.Accounts, manualScreeningSubject, func(a domain.Account) string { return a.Name })
	if !ok {
		return
	}
	created := g.anchor.Add(-(31*time.Hour + 21*time.Minute))
	done := created.Add(5 * time.Second)
	r := domain.Report{
		ID:                   ids.Generate("rep", manualIndexBase),
		AccountID:            acct.ID,
		Type:                 domain.ReportTypeWatchlist,
		Status:               domain.ReportStatusMatch,
		PrimaryInput:         strings.ToUpper(acct.Name),
		TemplateName:         manualWatchlistTmpl,
		MatchCount:           1,
		ContinuousMonitoring: true,
		CreatedBy:            domain.ReportCreatedByManual,
		CreatedAt:            created,
		CompletedAt:          &done,
	}
	r.Matches = synth.ReportMatches(r.PrimaryInput, r.MatchCount, r.Type, synth.Seed(r.ID))
	g.fx.Reports = append(g.fx.Reports, r)
}

func isScreened(s domain.InquiryStatus) bool {
	switch s {
	case domain.InquiryStatusApproved, domain.InquiryStatusDeclined, domain.InquiryStatusNeedsReview:
		return true
	}
	return false
}

func accountStatus(s domain.InquiryStatus) domain.AccountStatus {
	switch s {
	case domain.InquiryStatusCreated, domain.InquiryStatusPending:
		return domain.AccountStatusPending
	case domain.InquiryStatusDeclined:
		return domain.AccountStatusSuspended
	default:
		return domain.AccountStatusActive
	}
}

func ageAt(birthdate string, at time.Time) int {
	born, err := time.Parse(time.DateOnly, birthdate)
	if err != nil {
		return 0
	}
	age := at.Year() - born.Year()
	if at.YearDay() < born.YearDay() {
		age--
	}
	return age
}

// verificationStatus decides the outcome of step j of n. Earlier steps pass;
// the last step carries the inquiry's outcome.
func verificationStatus(s domain.InquiryStatus, j, n int) domain.VerificationStatus {
	if j < n-1 {
		return domain.VerificationStatusPassed
	}
	switch s {
	case domain.InquiryStatusApproved, domain.InquiryStatusCompleted:
		return domain.VerificationStatusPassed
	case domain.InquiryStatusDeclined, domain.InquiryStatusFailed:
		return domain.VerificationStatusFailed
	case domain.InquiryStatusNeedsReview:
		return domain.VerificationStatusRequiresRetry
	case domain.InquiryStatusExpired:
		return domain.VerificationStatusInitiated
	default:
		return domain.VerificationStatusSubmitted
	}
}

func isTerminal(s domain.VerificationStatus) bool {
	switch s {
	case domain.VerificationStatusPassed, domain.VerificationStatusFailed, domain.VerificationStatusRequiresRetry:
		return true
	}
	return false
}

// checksFor runs the enabled catalog checks. A failing verification fails its
// first required check; an unfinished one has nothing to report yet.
func checksFor(vt domain.VerificationType, status domain.VerificationStatus) []domain.Check {
	catalog := domain.AvailableChecks(vt)
	out := make([]domain.Check, 0, len(catalog))
	failed := false
	for _, ac := range catalog {
		if !ac.DefaultEnabled {
			continue
		}
		cs := domain.CheckStatusPassed
		switch status {
		case domain.VerificationStatusInitiated, domain.VerificationStatusSubmitted:
			cs = domain.CheckStatusNotApplicable
		case domain.VerificationStatusFailed, domain.VerificationStatusRequiresRetry:
			if ac.DefaultRequired && !failed {
				cs = domain.CheckStatusFailed
				failed = true
			}
		}
		out = append(out, domain.Check{
			Name:     ac.Name,
			Category: ac.Category,
			Required: ac.DefaultRequired,
			Status:   cs,
		})
	}
	return out
}

func extractedData(vt domain.VerificationType, p person, c city, idx int, anchor time.Time) map[string]any {
	first, last := splitName(p.name)
	switch vt {
	case domain.VerificationTypeGovernmentID:
		idClass := "dl"
		if idx%3 == 0 {
			idClass = "pp"
		}
		return map[string]any{
			"firstName":      first,
			"lastName":       last,
			"birthdate":      p.birthdate,
			"idClass":        idClass,
			"idNumber":       fmt.Sprintf("D%07d", (idx*7919)%10000000),
			"issuingCountry": c.country,
			"expirationDate": anchor.AddDate(2+idx%6, idx%12, 0).Format(time.DateOnly),
		}
	case domain.VerificationTypeSelfie:
		return map[string]any{
			"captureMethod": "passive",
			"ageEstimate":   ageAt(p.birthdate, anchor),
		}
	case domain.VerificationTypeDatabase:
		return map[string]any{
			"firstName": first,
			"lastName":  last,
			"birthdate": p.birthdate,
			"country":   c.country,
			"sources":   2 + idx%3,
		}
	case domain.VerificationTypeDocument:
		docType := "Utility bill"
		if idx%2 == 0 {
			docType = "Bank statement"
		}
		return map[string]any{
			"documentType":   docType,
			"nameOnDocument": p.name,
			"city":           c.name,
			"country":        c.country,
		}
	}
	return nil
}

func photosFor(vt domain.VerificationType, verificationID string) []domain.Photo {
	var labels []string
	switch vt {
	case domain.VerificationTypeGovernmentID:
		labels = []string{"Front", "Back"}
	case domain.VerificationTypeSelfie:
		labels = []string{"Center", "Left", "Right"}
	case domain.VerificationTypeDocument:
		labels = []string{"Page 1"}
	default:
		return nil
	}
	out := make([]domain.Photo, len(labels))
	for i, l := range labels {
		slug := strings.ReplaceAll(strings.ToLower(l), " ", "-")
		out[i] = domain.Photo{Label: l, URL: fmt.Sprintf("%s/%s/%s.jpg", captureBaseURL, verificationID, slug)}
	}
	return out
}

func sessionFor(inquiryID string, idx, seed int, c city, created time.Time) domain.Session {
	location := c.name
	if c.subdivision != "" {
		location += ", " + c.subdivision
	}
	location += ", " + c.country
	return domain.Session{
		ID:         ids.Generate("ses", idx),
		InquiryID:  inquiryID,
		DeviceType: deviceTypes[seed%len(deviceTypes)],
		DeviceID:   ids.Generate("dev", idx),
		Browser:    browsers[seed%len(browsers)],
		OS:         systems[(seed/3)%len(systems)],
		IPAddress:  fmt.Sprintf("%d.%d.%d.%d", 24+seed%180, (seed*7)%256, (seed*13)%256, 1+(seed*31)%254),
		Location:   location,
		Country:    c.country,
		Latitude:   c.lat,
		Longitude:  c.lng,
		CreatedAt:  created,
		StartedAt:  created.Add(20 * time.Second),
	}
}

// timeline is the event history of a started inquiry, oldest first.
func timeline(inq domain.Inquiry, idx int, verifications []domain.Verification) []domain.Event {
	var out []domain.Event
	add := func(name string, at time.Time) {
		out = append(out, domain.Event{
			ID:        ids.Generate("evt", idx*100+len(out)),
			InquiryID: inq.ID,
			Name:      name,
			Timestamp: at,
		})
	}

	add("inquiry.created", inq.CreatedAt)
	add("inquiry.started", inq.CreatedAt.Add(20*time.Second))
	last := inq.CreatedAt
	for _, v := range verifications {
		add("verification.created", v.CreatedAt)
		last = v.CreatedAt
		if v.Status == domain.VerificationStatusInitiated {
			continue
		}
		add("verification.submitted", v.CreatedAt.Add(time.Second))
		if v.CompletedAt != nil {
			add("verification."+strings.ReplaceAll(string(v.Status), "_", "-"), *v.CompletedAt)
			last = *v.CompletedAt
		}
	}

	switch inq.Status {
	case domain.InquiryStatusCompleted, domain.InquiryStatusApproved, domain.InquiryStatusDeclined, domain.InquiryStatusNeedsReview:
		done := *inq.CompletedAt
		add("inquiry.completed", done)
		switch inq.Status {
		case domain.InquiryStatusApproved:
			add("inquiry.approved", done.Add(time.Second))
		case domain.InquiryStatusDeclined:
			add("inquiry.declined", done.Add(time.Second))
		case domain.InquiryStatusNeedsReview:
			add("inquiry.marked-for-review", done.Add(time.Second))
		}
	case domain.InquiryStatusExpired:
		add("inquiry.expired", inq.CreatedAt.Add(24*time.Hour))
	case domain.InquiryStatusFailed:
		add("inquiry.failed", last.Add(time.Minute))
	}
	return out
}

func splitName(name string) (first, last string) {
	parts := strings.Fields(name)
	switch len(parts) {
	case 0:
		return "", ""
	case 1:
		return parts[0], ""
	default:
		return parts[0], parts[len(parts)-1]
	}
}
