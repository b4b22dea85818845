package filter

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"verifydesk/internal/domain"
)

func at(day, hour int) time.Time {
	return time.Date(2026, time.February, day, hour, 0, 0, 0, time.UTC)
}

func ptr(t time.Time) *time.Time { return &t }

func sample() []domain.Inquiry {
	return []domain.Inquiry{
		{ID: "inq_1", Status: domain.InquiryStatusCompleted, TemplateName: "KYC: GovID Only", Tags: []string{"vip"}, CreatedAt: at(1, 9), CompletedAt: ptr(at(1, 10))},
		{ID: "inq_2", Status: domain.InquiryStatusApproved, TemplateName: "KYC: GovID Only", Tags: []string{"fraud"}, CreatedAt: at(3, 9), CompletedAt: ptr(at(4, 9))},
		{ID: "inq_3", Status: domain.InquiryStatusCompleted, TemplateName: "Document Verification", Tags: []string{"vip", "fraud"}, CreatedAt: at(5, 9)},
		{ID: "inq_4", Status: domain.InquiryStatusPending, TemplateName: "Document Verification", Tags: nil, CreatedAt: at(7, 9)},
	}
}

func ids(data []domain.Inquiry) []string {
	out := make([]string, len(data))
	for i, d := range data {
		out[i] = d.ID
	}
	return out
}

func TestInquiries(t *testing.T) {
	data := sample()

	t.Run("empty criteria return the input unchanged", func(t *testing.T) {
		got := Inquiries(data, Criteria{})
		assert.Equal(t, data, got)
		assert.Same(t, &data[0], &got[0])
	})

	t.Run("tags match any selected tag", func(t *testing.T) {
		got := Inquiries(data, Criteria{Tags: []string{"vip", "fraud"}})
		assert.Equal(t, []string{"inq_1", "inq_2", "inq_3"}, ids(got))
	})

	t.Run("fields combine with and", func(t *testing.T) {
		got := Inquiries(data, Criteria{Tags: []string{"vip"}, Statuses: []string{"completed"}})
		assert.Equal(t, []string{"inq_1", "inq_3"}, ids(got))

		got = Inquiries(data, Criteria{Tags: []string{"vip"}, Templates: []string{"KYC: GovID Only"}})
		assert.Equal(t, []string{"inq_1"}, ids(got))
	})

	t.Run("created range is inclusive on both bounds", func(t *testing.T) {
		got := Inquiries(data, Criteria{Created: Range{From: ptr(at(3, 9)), To: ptr(at(5, 9))}})
		assert.Equal(t, []string{"inq_2", "inq_3"}, ids(got))
	})

	t.Run("a range with one bound filters nothing", func(t *testing.T) {
		got := Inquiries(data, Criteria{Created: Range{From: ptr(at(6, 0))}})
		assert.Equal(t, ids(data), ids(got))
	})

	t.Run("completed range drops records that never completed", func(t *testing.T) {
		got := Inquiries(data, Criteria{Completed: Range{From: ptr(at(1, 0)), To: ptr(at(28, 0))}})
		assert.Equal(t, []string{"inq_1", "inq_2"}, ids(got))
	})

	t.Run("no match yields an empty slice", func(t *testing.T) {
		got := Inquiries(data, Criteria{Statuses: []string{"expired"}})
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestApplyReports(t *testing.T) {
	reports := []domain.Report{
		{ID: "rep_1", Status: domain.ReportStatusMatch, TemplateName: "KYC + AML: Watchlist Report", CreatedAt: at(2, 9)},
		{ID: "rep_2", Status: domain.ReportStatusNoMatches, TemplateName: "KYC + AML: PEP Report", CreatedAt: at(2, 9)},
	}

	got := Apply(reports, Criteria{Statuses: []string{string(domain.ReportStatusMatch)}})
	require.Len(t, got, 1)
	assert.Equal(t, "rep_1", got[0].ID)

	assert.Empty(t, Apply(reports, Criteria{Tags: []string{"vip"}}))
}

func TestSearch(t *testing.T) {
	data := []domain.Inquiry{
		{ID: "inq_A1", AccountName: "Alexander Sample"},
		{ID: "inq_B2", AccountName: "Yuki Tanaka", ReferenceID: "ref-991"},
	}

	assert.Equal(t, []string{"inq_A1"}, ids(Search(data, "alexander")))
	assert.Equal(t, []string{"inq_B2"}, ids(Search(data, " REF-99 ")))
	assert.Equal(t, []string{"inq_A1", "inq_B2"}, ids(Search(data, "inq_")))
	assert.Equal(t, ids(data), ids(Search(data, "  ")))
}

func TestFromQuery(t *testing.T) {
	t.Run("parses lists and ranges", func(t *testing.T) {
		q := url.Values{
			"status":       {"approved,declined", "needs_review"},
			"tag":          {"vip"},
			"created_from": {"2026-02-01"},
			"created_to":   {"2026-02-10"},
		}
		c, err := FromQuery(q)
		require.NoError(t, err)
		assert.Equal(t, []string{"approved", "declined", "needs_review"}, c.Statuses)
		assert.Equal(t, []string{"vip"}, c.Tags)
		assert.Nil(t, c.Templates)
		require.NotNil(t, c.Created.To)
		assert.Equal(t, time.Date(2026, 2, 10, 23, 59, 59, 999999999, time.UTC), *c.Created.To)
		assert.False(t, c.Completed.set())
	})

	t.Run("accepts RFC 3339 instants", func(t *testing.T) {
		c, err := FromQuery(url.Values{"completed_from": {"2026-02-10T16:00:00Z"}})
		require.NoError(t, err)
		assert.Equal(t, at(10, 16), *c.Completed.From)
	})

	t.Run("rejects malformed bounds", func(t *testing.T) {
		_, err := FromQuery(url.Values{"created_to": {"last tuesday"}})
		assert.ErrorContains(t, err, "created_to")
	})

	t.Run("no parameters is empty", func(t *testing.T) {
		c, err := FromQuery(url.Values{})
		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
	})
}
