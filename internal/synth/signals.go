package synth

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"verifydesk/internal/domain"
)

// SignalDef names a signal and where it is displayed.
type SignalDef struct {
	Name     string
	Type     domain.SignalType
	Category domain.SignalCategory
}

var (
	featuredSignals = []SignalDef{
		{"Behavior Threat Level", domain.SignalTypeProcessed, domain.SignalCategoryFeatured},
		{"Geolocation To Residency Delta", domain.SignalTypeRaw, domain.SignalCategoryFeatured},
		{"Proxy Detected", domain.SignalTypeRaw, domain.SignalCategoryFeatured},
		{"Rooted Device Detected", domain.SignalTypeRaw, domain.SignalCategoryFeatured},
		{"Sessions Geolocation Delta", domain.SignalTypeRaw, domain.SignalCategoryFeatured},
		{"Network Threat Level", domain.SignalTypeRaw, domain.SignalCategoryFeatured},
		{"User Agent Spoof Attempts", domain.SignalTypeRaw, domain.SignalCategoryFeatured},
	}

	networkSignals = []SignalDef{
		{"IP Count", domain.SignalTypeRaw, domain.SignalCategoryNetwork},
		{"ISP Count", domain.SignalTypeRaw, domain.SignalCategoryNetwork},
		{"Proxy Detected", domain.SignalTypeRaw, domain.SignalCategoryNetwork},
		{"Network Threat Level", domain.SignalTypeRaw, domain.SignalCategoryNetwork},
		{"Tor Detected", domain.SignalTypeRaw, domain.SignalCategoryNetwork},
	}

	behavioralSignals = []SignalDef{
		{"Apple App Attestation", domain.SignalTypeRaw, domain.SignalCategoryBehavioral},
		{"Behavior Anomaly", domain.SignalTypeRaw, domain.SignalCategoryBehavioral},
		{"Behavior Threat Level", domain.SignalTypeProcessed, domain.SignalCategoryBehavioral},
		{"Bot Score", domain.SignalTypeRaw, domain.SignalCategoryBehavioral},
		{"Country Comparison", domain.SignalTypeRaw, domain.SignalCategoryBehavioral},
		{"Distraction Events", domain.SignalTypeRaw, domain.SignalCategoryBehavioral},
		{"Geolocation To Residency Delta", domain.SignalTypeRaw, domain.SignalCategoryBehavioral},
		{"Google Play Integrity", domain.SignalTypeRaw, domain.SignalCategoryBehavioral},
		{"Impossible Travel GPS", domain.SignalTypeRaw, domain.SignalCategoryBehavioral},
		{"Last Two Verifications Geolocation Delta", domain.SignalTypeRaw, domain.SignalCategoryBehavioral},
		{"Off-hours Activity", domain.SignalTypeProcessed, domain.SignalCategoryBehavioral},
		{"Selfie Liveness Risk Level", domain.SignalTypeRaw, domain.SignalCategoryBehavioral},
		{"Session Count", domain.SignalTypeRaw, domain.SignalCategoryBehavioral},
		{"Sessions Geolocation Delta", domain.SignalTypeRaw, domain.SignalCategoryBehavioral},
		{"Shortcut Copies", domain.SignalTypeRaw, domain.SignalCategoryBehavioral},
		{"Shortcut Pastes", domain.SignalTypeRaw, domain.SignalCategoryBehavioral},
		{"Time to Complete", domain.SignalTypeRaw, domain.SignalCategoryBehavioral},
		{"Unrecognized Referer", domain.SignalTypeRaw, domain.SignalCategoryBehavioral},
		{"Virtual Camera Risk Level", domain.SignalTypeRaw, domain.SignalCategoryBehavioral},
	}

	deviceSignals = []SignalDef{
		{"Browser Count", domain.SignalTypeRaw, domain.SignalCategoryDevice},
		{"Incognito Browsing Detected", domain.SignalTypeRaw, domain.SignalCategoryDevice},
		{"Locale", domain.SignalTypeRaw, domain.SignalCategoryDevice},
		{"Request Spoof Attempts", domain.SignalTypeRaw, domain.SignalCategoryDevice},
		{"Timezone", domain.SignalTypeRaw, domain.SignalCategoryDevice},
	}

	locales   = []string{"English", "Spanish", "French", "German", "Japanese", "Chinese"}
	timezones = []string{"America/Los_Angeles", "America/New_York", "Europe/London", "Europe/Berlin", "Asia/Tokyo", "Asia/Shanghai"}
)

// SignalDefs returns every signal definition in display order:
// featured, network, behavioral, device.
func SignalDefs() []SignalDef {
	out := make([]SignalDef, 0, len(featuredSignals)+len(networkSignals)+len(behavioralSignals)+len(deviceSignals))
	out = append(out, featuredSignals...)
	out = append(out, networkSignals...)
	out = append(out, behavioralSignals...)
	out = append(out, deviceSignals...)
	return out
}

// Signals evaluates every definition against seed.
func Signals(seed int) []domain.InquirySignal {
	defs := SignalDefs()
	out := make([]domain.InquirySignal, len(defs))
	for i, def := range defs {
		value, flagged := SignalValue(def.Name, seed)
		out[i] = domain.InquirySignal{
			Name:     def.Name,
			Type:     def.Type,
			Category: def.Category,
			Value:    value,
			Flagged:  flagged,
		}
	}
	return out
}

// SignalValue is total: unknown names render as an em dash, unflagged.
func SignalValue(name string, seed int) (string, bool) {
	switch name {
	case "Behavior Threat Level":
		return pick(seed%5 == 0, "Medium", "Low"), seed%5 == 0
	case "Geolocation To Residency Delta":
		dist := (seed * 317) % 5000
		return formatDistance(dist), dist > 2000
	case "Proxy Detected":
		return boolString(seed%7 == 0), seed%7 == 0
	case "Rooted Device Detected", "Tor Detected", "Unrecognized Referer":
		return "false", false
	case "Sessions Geolocation Delta":
		return fmt.Sprintf("%d m", (seed*13)%100), false
	case "Network Threat Level":
		return pick(seed%4 == 0, "Medium", "Low"), seed%4 == 0
	case "User Agent Spoof Attempts":
		n := (seed * 3) % 2
		return strconv.Itoa(n), n > 0

	case "IP Count", "Bot Score":
		n := 1 + seed%3
		return strconv.Itoa(n), seed%3 > 1
	case "ISP Count", "Session Count", "Browser Count":
		return strconv.Itoa(1 + seed%2), false

	case "Apple App Attestation", "Google Play Integrity", "Selfie Liveness Risk Level":
		return "N/A", false
	case "Behavior Anomaly":
		return pick(seed%6 == 0, "Moderate", "Minimal"), seed%6 == 0
	case "Country Comparison":
		return boolString(seed%10 != 0), seed%10 == 0
	case "Distraction Events":
		n := (seed * 7) % 12
		return strconv.Itoa(n), n > 8
	case "Impossible Travel GPS":
		return pick(seed%8 == 0, "Medium", "Low"), seed%8 == 0
	case "Last Two Verifications Geolocation Delta":
		return fmt.Sprintf("%d m", (seed*5)%50), false
	case "Off-hours Activity":
		return boolString(seed%9 == 0), seed%9 == 0
	case "Shortcut Copies":
		return strconv.Itoa((seed * 2) % 3), false
	case "Shortcut Pastes":
		return strconv.Itoa((seed * 3) % 4), false
	case "Time to Complete":
		return FormatDuration(CompletionSeconds(seed)), false
	case "Virtual Camera Risk Level":
		return "Minimal", false

	case "Incognito Browsing Detected":
		return boolString(seed%12 == 0), seed%12 == 0
	case "Locale":
		return locales[seed%len(locales)], false
	case "Request Spoof Attempts":
		n := (seed * 2) % 2
		return strconv.Itoa(n), n > 0
	case "Timezone":
		return timezones[seed%len(timezones)], false
	}
	return "—", false
}

// CompletionSeconds is the synthetic time an applicant took to finish.
func CompletionSeconds(seed int) int {
	return 120 + (seed*17)%600
}

// FormatDuration renders seconds as "Xm Ys".
func FormatDuration(secs int) string {
	return fmt.Sprintf("%dm %ds", secs/60, secs%60)
}

// formatDistance renders meters up to 1000 and kilometers with one decimal
// above, rounding half away from zero.
func formatDistance(meters int) string {
	if meters > 1000 {
		return decimal.New(int64(meters), -3).StringFixed(1) + " km"
	}
	return fmt.Sprintf("%d m", meters)
}

func boolString(b bool) string {
	return strconv.FormatBool(b)
}

func pick(cond bool, yes, no string) string {
	if cond {
		return yes
	}
	return no
}
