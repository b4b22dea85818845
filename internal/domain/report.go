package domain

import (
	"slices"
	"time"
)

type ReportType string

const (
	ReportTypeWatchlist    ReportType = "watchlist"
	ReportTypePEP          ReportType = "pep"
	ReportTypeAdverseMedia ReportType = "adverse_media"
)

func (t ReportType) IsValid() bool {
	switch t {
	case ReportTypeWatchlist, ReportTypePEP, ReportTypeAdverseMedia:
		return true
	}
	return false
}

type ReportStatus string

const (
	ReportStatusNoMatches ReportStatus = "no_matches"
	ReportStatusMatch     ReportStatus = "match"
)

type ReportCreatedBy string

const (
	ReportCreatedByWorkflow ReportCreatedBy = "workflow"
	ReportCreatedByManual   ReportCreatedBy = "manual"
)

type MatchType string

const (
	MatchTypeExact   MatchType = "exact"
	MatchTypePartial MatchType = "partial"
	MatchTypeFuzzy   MatchType = "fuzzy"
)

type ReviewStatus string

const (
	ReviewStatusPending   ReviewStatus = "pending"
	ReviewStatusConfirmed ReviewStatus = "confirmed"
	ReviewStatusDismissed ReviewStatus = "dismissed"
)

// ReportMatch is one watchlist, PEP or media hit.
type ReportMatch struct {
	ID           string       `json:"id"`
	MatchedName  string       `json:"matchedName"`
	Score        int          `json:"score"`
	Source       string       `json:"source"`
	Country      string       `json:"country"`
	MatchType    MatchType    `json:"matchType"`
	ListedDate   string       `json:"listedDate"`
	Aliases      []string     `json:"aliases,omitempty"`
	ReviewStatus ReviewStatus `json:"reviewStatus"`
}

// Report is a screening result for an account, usually tied to an inquiry.
type Report struct {
	ID                   string          `json:"id"`
	InquiryID            string          `json:"inquiryId,omitempty"`
	AccountID            string          `json:"accountId"`
	Type                 ReportType      `json:"type"`
	Status               ReportStatus    `json:"status"`
	PrimaryInput         string          `json:"primaryInput"`
	TemplateName         string          `json:"templateName"`
	MatchCount           int             `json:"matchCount"`
	Matches              []ReportMatch   `json:"matches,omitempty"`
	ContinuousMonitoring bool            `json:"continuousMonitoring"`
	CreatedBy            ReportCreatedBy `json:"createdBy"`
	CreatedAt            time.Time       `json:"createdAt"`
	CompletedAt          *time.Time      `json:"completedAt,omitempty"`
}

func (r Report) Clone() Report {
	out := r
	if r.Matches != nil {
		out.Matches = make([]ReportMatch, len(r.Matches))
		for i, m := range r.Matches {
			m.Aliases = slices.Clone(m.Aliases)
			out.Matches[i] = m
		}
	}
	if r.CompletedAt != nil {
		t := *r.CompletedAt
		out.CompletedAt = &t
	}
	return out
}
