package synth

import (
	"strings"
	"time"

	"verifydesk/internal/domain"
	"verifydesk/internal/ids"
)

const (
	minMatchScore = 55
	maxMatchScore = 98
)

var (
	watchlistSources = []string{
		"OFAC SDN List",
		"UN Consolidated List",
		"EU Sanctions List",
		"UK HMT Sanctions",
		"Australia DFAT Sanctions",
		"Canada OSFI",
	}
	pepSources = []string{
		"Global PEP Database",
		"National PEP Lists",
		"Relatives & Close Associates",
		"State-Owned Enterprises",
	}
	adverseMediaSources = []string{
		"Financial Crime News",
		"Regulatory Actions",
		"Court Records",
		"Negative News Screening",
	}
	matchCountries = []string{
		"United States", "United Kingdom", "Russia", "Iran", "Venezuela",
		"Syria", "North Korea", "Belarus", "Myanmar", "Cuba",
	}

	listedEpoch = time.Date(2008, time.January, 1, 0, 0, 0, 0, time.UTC)
)

// ScreeningSources returns the lists a report type screens against.
func ScreeningSources(t domain.ReportType) []string {
	switch t {
	case domain.ReportTypePEP:
		return append([]string(nil), pepSources...)
	case domain.ReportTypeAdverseMedia:
		return append([]string(nil), adverseMediaSources...)
	default:
		return append([]string(nil), watchlistSources...)
	}
}

// MatchTypeForScore: above 85 exact, above 70 partial, otherwise fuzzy.
func MatchTypeForScore(score int) domain.MatchType {
	switch {
	case score > 85:
		return domain.MatchTypeExact
	case score > 70:
		return domain.MatchTypePartial
	default:
		return domain.MatchTypeFuzzy
	}
}

// ReportMatches synthesizes count hits for primaryInput. The first match
// scores 92 - seed%10; each later one decays by 7 per position plus a
// seed-based jitter in [-3, 3]. Scores are clamped to [55, 98].
func ReportMatches(primaryInput string, count int, reportType domain.ReportType, seed int) []domain.ReportMatch {
	if count <= 0 {
		return nil
	}
	variants := NameVariants(primaryInput)
	sources := ScreeningSources(reportType)

	out := make([]domain.ReportMatch, count)
	for i := range count {
		score := MatchScore(seed, i)
		matchType := MatchTypeForScore(score)
		name := variants[(seed+i)%len(variants)]

		var aliases []string
		if matchType != domain.MatchTypeFuzzy {
			if alias := variants[(seed+i+1)%len(variants)]; alias != name {
				aliases = []string{alias}
			}
		}

		out[i] = domain.ReportMatch{
			ID:           ids.Generate("mtch", seed*100+i),
			MatchedName:  name,
			Score:        score,
			Source:       sources[(seed+i)%len(sources)],
			Country:      matchCountries[(seed+i*3)%len(matchCountries)],
			MatchType:    matchType,
			ListedDate:   listedEpoch.AddDate(0, 0, (seed*37+i*113)%5400).Format(time.DateOnly),
			Aliases:      aliases,
			ReviewStatus: domain.ReviewStatusPending,
		}
	}
	return out
}

// MatchScore is the clamped score of the i-th match for seed.
func MatchScore(seed, i int) int {
	score := 92 - seed%10
	if i > 0 {
		jitter := (seed*(i+3))%7 - 3
		score = score - 7*i + jitter
	}
	return clamp(score, minMatchScore, maxMatchScore)
}

// NameVariants derives the spellings a list might carry for name:
// as given, first name initialed, surname first, and hyphenated.
// Single-token names have only themselves.
func NameVariants(name string) []string {
	parts := strings.Fields(name)
	if len(parts) == 0 {
		return []string{name}
	}
	full := strings.Join(parts, " ")
	if len(parts) == 1 {
		return []string{full}
	}
	first, last := parts[0], parts[len(parts)-1]
	return []string{
		full,
		string([]rune(first)[:1]) + ". " + last,
		last + ", " + strings.Join(parts[:len(parts)-1], " "),
		strings.Join(parts, "-"),
	}
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
