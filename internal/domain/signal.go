package domain

type SignalType string

const (
	SignalTypeRaw       SignalType = "Raw"
	SignalTypeProcessed SignalType = "Processed"
)

type SignalCategory string

const (
	SignalCategoryFeatured   SignalCategory = "featured"
	SignalCategoryNetwork    SignalCategory = "network"
	SignalCategoryBehavioral SignalCategory = "behavioral"
	SignalCategoryDevice     SignalCategory = "device"
)

// InquirySignal is one risk telemetry reading for an inquiry.
type InquirySignal struct {
	Name     string         `json:"name"`
	Type     SignalType     `json:"type"`
	Category SignalCategory `json:"category"`
	Value    string         `json:"value"`
	Flagged  bool           `json:"flagged"`
}

type ThreatLevel string

const (
	ThreatLevelLow    ThreatLevel = "low"
	ThreatLevelMedium ThreatLevel = "medium"
	ThreatLevelHigh   ThreatLevel = "high"
)

// BehavioralRisk is the aggregate risk snapshot for one inquiry.
type BehavioralRisk struct {
	BehaviorThreatLevel    ThreatLevel `json:"behaviorThreatLevel"`
	BotScore               int         `json:"botScore"`
	RequestSpoofAttempts   int         `json:"requestSpoofAttempts"`
	UserAgentSpoofAttempts int         `json:"userAgentSpoofAttempts"`
	// CompletionTime is in seconds.
	CompletionTime       int     `json:"completionTime"`
	DistractionEvents    int     `json:"distractionEvents"`
	HesitationPercent    float64 `json:"hesitationPercent"`
	ShortcutCopies       int     `json:"shortcutCopies"`
	Pastes               int     `json:"pastes"`
	AutofillStarts       int     `json:"autofillStarts"`
	MobileSDKRestricted  int     `json:"mobileSdkRestricted"`
	APIVersionRestricted int     `json:"apiVersionRestricted"`
}
