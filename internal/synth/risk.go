package synth

import (
	"github.com/shopspring/decimal"

	"verifydesk/internal/domain"
)

var (
	hesitationFactor = decimal.RequireFromString("11.3")
	hesitationRange  = decimal.NewFromInt(55)
	hesitationFloor  = decimal.NewFromInt(40)
)

// BehavioralRisk builds the risk snapshot for seed. The counters reuse the
// same formulas as the matching signals so both views agree.
func BehavioralRisk(seed int) domain.BehavioralRisk {
	threat := domain.ThreatLevelLow
	if seed%5 == 0 {
		threat = domain.ThreatLevelMedium
	}
	return domain.BehavioralRisk{
		BehaviorThreatLevel:    threat,
		BotScore:               1 + seed%3,
		RequestSpoofAttempts:   (seed * 2) % 2,
		UserAgentSpoofAttempts: (seed * 3) % 2,
		CompletionTime:         CompletionSeconds(seed),
		DistractionEvents:      (seed * 7) % 12,
		HesitationPercent:      HesitationPercent(seed),
		ShortcutCopies:         (seed * 2) % 3,
		Pastes:                 (seed * 3) % 4,
		AutofillStarts:         seed % 3,
	}
}

// HesitationPercent is 40 + (seed*11.3 mod 55), rounded to three decimals.
// Decimal arithmetic keeps the result free of binary float drift.
func HesitationPercent(seed int) float64 {
	return decimal.NewFromInt(int64(seed)).
		Mul(hesitationFactor).
		Mod(hesitationRange).
		Add(hesitationFloor).
		Round(3).
		InexactFloat64()
}
