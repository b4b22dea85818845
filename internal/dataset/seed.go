package dataset

import "verifydesk/internal/domain"

const (
	tmplGovIDSelfie    = "KYC: GovID + Selfie"
	tmplAMLGovIDSelfie = "KYC + AML: GovID + Selfie"
	tmplGovIDOnly      = "KYC: GovID Only"
	tmplSelfieOnly     = "Quick Onboarding: Selfie Only"
	tmplEnhancedDD     = "Enhanced Due Diligence"
	tmplDocument       = "Document Verification"
)

// templateSteps lists the verification types each inquiry template runs, in order.
var templateSteps = map[string][]domain.VerificationType{
	tmplGovIDSelfie:    {domain.VerificationTypeGovernmentID, domain.VerificationTypeSelfie},
	tmplAMLGovIDSelfie: {domain.VerificationTypeGovernmentID, domain.VerificationTypeSelfie},
	tmplGovIDOnly:      {domain.VerificationTypeGovernmentID},
	tmplSelfieOnly:     {domain.VerificationTypeSelfie},
	tmplEnhancedDD:     {domain.VerificationTypeGovernmentID, domain.VerificationTypeSelfie, domain.VerificationTypeDatabase},
	tmplDocument:       {domain.VerificationTypeDocument},
}

type city struct {
	name        string
	subdivision string
	country     string
	lat, lng    float64
}

var cities = []city{
	{"San Francisco", "CA", "US", 37.7749, -122.4194},
	{"New York", "NY", "US", 40.7128, -74.0060},
	{"Austin", "TX", "US", 30.2672, -97.7431},
	{"Toronto", "ON", "CA", 43.6532, -79.3832},
	{"London", "", "GB", 51.5074, -0.1278},
	{"Berlin", "", "DE", 52.5200, 13.4050},
	{"Madrid", "", "ES", 40.4168, -3.7038},
	{"Tokyo", "", "JP", 35.6762, 139.6503},
	{"Sydney", "NSW", "AU", -33.8688, 151.2093},
	{"Mexico City", "", "MX", 19.4326, -99.1332},
	{"Stockholm", "", "SE", 59.3293, 18.0686},
	{"Dublin", "", "IE", 53.3498, -6.2603},
}

// person is one synthetic applicant. Each yields an account and an inquiry.
type person struct {
	name      string
	status    domain.InquiryStatus
	template  string
	city      int
	birthdate string
	tags      []string
	// minutesAgo places the inquiry relative to the build anchor.
	minutesAgo int
	business   bool
}

var people = []person{
	{"Alexander J Sample", domain.InquiryStatusApproved, tmplAMLGovIDSelfie, 0, "1977-07-17", []string{"vip"}, 16, false},
	{"Maria Gonzalez", domain.InquiryStatusApproved, tmplAMLGovIDSelfie, 9, "1988-03-02", nil, 152, false},
	{"Yuki Tanaka", domain.InquiryStatusNeedsReview, tmplAMLGovIDSelfie, 7, "1991-11-23", []string{"fraud", "manual-review"}, 379, false},
	{"Lars Eriksson", domain.InquiryStatusNeedsReview, tmplAMLGovIDSelfie, 10, "1969-05-30", []string{"fraud"}, 1881, false},
	{"Priya Raman", domain.InquiryStatusCompleted, tmplGovIDSelfie, 4, "1994-01-12", nil, 420, false},
	{"Daniel Okafor", domain.InquiryStatusPending, tmplGovIDSelfie, 4, "1985-08-08", nil, 30, false},
	{"Chloe Martin", domain.InquiryStatusCreated, tmplGovIDOnly, 6, "2000-04-19", nil, 12, false},
	{"Noah Williams", domain.InquiryStatusDeclined, tmplAMLGovIDSelfie, 1, "1979-12-01", []string{"fraud"}, 2300, false},
	{"Sofia Rossi", domain.InquiryStatusApproved, tmplSelfieOnly, 5, "1998-06-25", []string{"returning"}, 2890, false},
	{"Ethan Brown", domain.InquiryStatusExpired, tmplGovIDSelfie, 2, "1990-10-10", nil, 10080, false},
	{"Amara Nwosu", domain.InquiryStatusApproved, tmplEnhancedDD, 11, "1983-02-14", []string{"vip", "high-risk"}, 3320, false},
	{"Lucas Silva", domain.InquiryStatusFailed, tmplGovIDOnly, 9, "1996-09-09", nil, 4100, false},
	{"Hannah Schmidt", domain.InquiryStatusApproved, tmplAMLGovIDSelfie, 5, "1987-07-07", nil, 4410, false},
	{"Mateo Fernandez", domain.InquiryStatusNeedsReview, tmplEnhancedDD, 6, "1975-03-03", []string{"high-risk"}, 5020, false},
	{"Olivia Chen", domain.InquiryStatusApproved, tmplGovIDSelfie, 0, "1993-12-24", []string{"vip"}, 5600, false},
	{"Liam O'Brien", domain.InquiryStatusPending, tmplDocument, 11, "1982-05-05", nil, 45, false},
	{"Acme Logistics Ltd", domain.InquiryStatusApproved, tmplDocument, 4, "", []string{"business"}, 6010, true},
	{"Fatima Al-Sayed", domain.InquiryStatusApproved, tmplAMLGovIDSelfie, 4, "1989-08-18", nil, 6500, false},
	{"Kenji Watanabe", domain.InquiryStatusCreated, tmplSelfieOnly, 7, "2001-01-01", nil, 3, false},
	{"Isabella Costa", domain.InquiryStatusDeclined, tmplGovIDSelfie, 9, "1992-02-29", []string{"fraud"}, 7200, false},
	{"Oliver Smith", domain.InquiryStatusApproved, tmplGovIDOnly, 8, "1980-11-11", nil, 7800, false},
	{"Emma Johansson", domain.InquiryStatusApproved, tmplAMLGovIDSelfie, 10, "1995-04-04", []string{"returning"}, 8300, false},
	{"Wei Zhang", domain.InquiryStatusNeedsReview, tmplAMLGovIDSelfie, 7, "1986-06-06", []string{"manual-review"}, 8900, false},
	{"Grace Kelly", domain.InquiryStatusCompleted, tmplDocument, 11, "1978-09-19", nil, 9400, false},
	{"Northwind Traders Inc", domain.InquiryStatusPending, tmplEnhancedDD, 1, "", []string{"business", "high-risk"}, 95, true},
	{"Ava Thompson", domain.InquiryStatusApproved, tmplSelfieOnly, 2, "1999-12-31", nil, 9950, false},
	{"Mohammed Haddad", domain.InquiryStatusDeclined, tmplAMLGovIDSelfie, 5, "1984-10-21", []string{"fraud", "vip"}, 10500, false},
	{"Zoe Dubois", domain.InquiryStatusApproved, tmplGovIDSelfie, 6, "1997-07-27", nil, 11200, false},
	{"Samuel Adeyemi", domain.InquiryStatusExpired, tmplAMLGovIDSelfie, 3, "1991-03-15", nil, 12000, false},
	{"Elena Petrova", domain.InquiryStatusNeedsReview, tmplAMLGovIDSelfie, 10, "1976-01-30", []string{"high-risk"}, 12800, false},
}

var (
	deviceTypes = []string{"Desktop", "Mobile", "Tablet"}
	browsers    = []string{"Chrome 121", "Safari 17", "Firefox 122", "Edge 121"}
	systems     = []string{"macOS 14", "iOS 17", "Windows 11", "Android 14"}
)

var streets = []string{
	"Market St", "Elm Ave", "Harbor Rd", "King St W", "Baker St",
	"Oranienstrasse", "Calle de Alcala", "Sakura Dori", "George St", "Av Reforma",
}
