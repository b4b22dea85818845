package domain

// AvailableCheck is a check a verification of some type can run, with the
// defaults a new template starts from.
type AvailableCheck struct {
	Name            string        `json:"name"`
	Category        CheckCategory `json:"category"`
	DefaultRequired bool          `json:"defaultRequired"`
	DefaultEnabled  bool          `json:"defaultEnabled"`
}

var availableChecks = map[VerificationType][]AvailableCheck{
	VerificationTypeGovernmentID: {
		{"ID Document Authenticity", CheckCategoryFraud, true, true},
		{"ID Not Expired", CheckCategoryValidity, true, true},
		{"Barcode Detection", CheckCategoryValidity, false, true},
		{"ID Tampering Detection", CheckCategoryFraud, true, true},
		{"Face Clarity", CheckCategoryBiometrics, false, true},
		{"Country Supported", CheckCategoryValidity, true, true},
		{"Hologram Presence", CheckCategoryFraud, false, false},
		{"Passport MRZ Validation", CheckCategoryValidity, false, false},
	},
	VerificationTypeSelfie: {
		{"Liveness Detection", CheckCategoryBiometrics, true, true},
		{"Face Match to ID", CheckCategoryBiometrics, true, true},
		{"Face Clarity", CheckCategoryBiometrics, false, true},
		{"Glasses Detection", CheckCategoryBiometrics, false, false},
		{"Head Movement Challenge", CheckCategoryBiometrics, false, false},
	},
	VerificationTypeDatabase: {
		{"Name Match", CheckCategoryValidity, true, true},
		{"Date of Birth Match", CheckCategoryValidity, true, true},
		{"Address Match", CheckCategoryValidity, false, true},
		{"SSN/TIN Match", CheckCategoryValidity, false, false},
		{"Phone Ownership Match", CheckCategoryValidity, false, false},
		{"Carrier Risk Score", CheckCategoryFraud, false, false},
	},
	VerificationTypeDocument: {
		{"Document Readable", CheckCategoryValidity, true, true},
		{"Document Not Expired", CheckCategoryValidity, true, true},
		{"Document Tampering", CheckCategoryFraud, true, true},
		{"Name Matches ID", CheckCategoryValidity, false, true},
		{"Address Line Extraction", CheckCategoryValidity, false, false},
		{"Issue Date Window", CheckCategoryValidity, false, false},
	},
}

// AvailableChecks returns a copy of the catalog for t, nil for unknown types.
func AvailableChecks(t VerificationType) []AvailableCheck {
	checks, ok := availableChecks[t]
	if !ok {
		return nil
	}
	return append([]AvailableCheck(nil), checks...)
}

var CheckCategoryLabels = map[CheckCategory]string{
	CheckCategoryFraud:              "Fraud",
	CheckCategoryUserActionRequired: "User action required",
	CheckCategoryValidity:           "Validity",
	CheckCategoryBiometrics:         "Biometrics",
}

var CheckCategoryDescriptions = map[CheckCategory]string{
	CheckCategoryFraud:              "Detects forgery, tampering, and other fraudulent manipulation of documents or identity",
	CheckCategoryUserActionRequired: "Checks that depend on input quality such as photo clarity, glare, blur, or missing information",
	CheckCategoryValidity:           "Verifies document authenticity: expiration, allowed country or type, MRZ, barcode",
	CheckCategoryBiometrics:         "Compares facial features between selfie and ID photo, and checks liveness",
}
