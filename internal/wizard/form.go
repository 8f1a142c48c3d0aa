package wizard

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Form holds every field collected across the five wizard steps. Values
// persist for the whole session regardless of which step is showing.
type Form struct {
	// Step 1: Business & Contact
	FullName     string
	Email        string
	Phone        string
	BusinessName string
	BusinessType string

	// Step 2: Website Purpose
	WebsitePurpose string
	TargetAudience string
	MainGoal       string

	// Step 3: Design Preferences
	DesignStyle       string
	ColorPreference   string
	ReferenceWebsites string

	// Step 4: Content & Pages
	RequiredPages   []string
	HasContent      string
	SpecialFeatures string

	// Step 5: Domain & Agreement
	DomainPreference string
	ExistingDomain   string
	Timeline         string
	AgreeToTerms     bool
}

// NewForm returns a form with the starter page selection.
func NewForm() Form {
	return Form{
		RequiredPages: []string{"Home Page", "About Us", "Contact Us"},
	}
}

// TogglePage adds the page to the selection, or removes it if present.
func (f *Form) TogglePage(page string) {
	for i, p := range f.RequiredPages {
		if p == page {
			f.RequiredPages = append(f.RequiredPages[:i], f.RequiredPages[i+1:]...)
			return
		}
	}
	f.RequiredPages = append(f.RequiredPages, page)
}

// Fixed option sets presented by the wizard.
var (
	BusinessTypes = []string{
		"Small Business",
		"Startup",
		"E-commerce Store",
		"Restaurant / Cafe",
		"Healthcare / Medical",
		"Real Estate",
		"Professional Services",
		"Non-Profit Organization",
		"Personal Brand / Portfolio",
		"Educational Institution",
		"Other",
	}

	WebsitePurposes = []string{
		"Showcase my products/services",
		"Generate leads and inquiries",
		"Sell products online (E-commerce)",
		"Build brand awareness",
		"Provide information to customers",
		"Portfolio / Personal branding",
		"Community / Membership platform",
	}

	DesignStyles = []string{
		"modern-minimal",
		"bold-creative",
		"professional-corporate",
		"elegant-luxury",
		"friendly-approachable",
	}

	PageOptions = []string{
		"Home Page",
		"About Us",
		"Services",
		"Products / Shop",
		"Portfolio / Gallery",
		"Testimonials",
		"Blog",
		"Contact Us",
		"FAQ",
		"Pricing",
		"Team Members",
		"Booking / Appointments",
	}

	ContentOptions  = []string{"yes", "partial", "no"}
	DomainOptions   = []string{"have-domain", "need-domain", "undecided"}
	TimelineOptions = []string{"urgent", "normal", "flexible"}
)

// validateStep checks only the fields owned by the given step and returns
// one message per invalid field, keyed by field name.
func validateStep(f Form, step int) map[string]string {
	errs := map[string]string{}

	switch step {
	case 1:
		if runeLen(f.FullName) < 2 {
			errs["fullName"] = "Please enter your full name"
		}
		if !validEmail(f.Email) {
			errs["email"] = "Please enter a valid email address"
		}
		if runeLen(f.Phone) < 6 {
			errs["phone"] = "Please enter a valid phone number"
		}
		if runeLen(f.BusinessName) < 2 {
			errs["businessName"] = "Please enter your business name"
		}
		if !oneOf(f.BusinessType, BusinessTypes) {
			errs["businessType"] = "Please select your business type"
		}
	case 2:
		if !oneOf(f.WebsitePurpose, WebsitePurposes) {
			errs["websitePurpose"] = "Please select a purpose"
		}
		if runeLen(f.TargetAudience) < 10 {
			errs["targetAudience"] = "Please describe your target audience"
		}
		if runeLen(f.MainGoal) < 10 {
			errs["mainGoal"] = "Please describe your main goal"
		}
	case 3:
		if !oneOf(f.DesignStyle, DesignStyles) {
			errs["designStyle"] = "Please select a design style"
		}
	case 4:
		if len(f.RequiredPages) == 0 {
			errs["requiredPages"] = "Please select at least one page"
		}
		if !oneOf(f.HasContent, ContentOptions) {
			errs["hasContent"] = "Please select an option"
		}
	case 5:
		if !oneOf(f.DomainPreference, DomainOptions) {
			errs["domainPreference"] = "Please select an option"
		}
		if !oneOf(f.Timeline, TimelineOptions) {
			errs["timeline"] = "Please select a timeline"
		}
		if !f.AgreeToTerms {
			errs["agreeToTerms"] = "You must agree to proceed"
		}
	}

	return errs
}

func oneOf(v string, set []string) bool {
	for _, s := range set {
		if v == s {
			return true
		}
	}
	return false
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }

func validEmail(s string) bool {
	if s == "" {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Address != s {
		return false
	}
	at := strings.LastIndex(s, "@")
	if at < 1 {
		return false
	}
	domain := s[at+1:]
	return strings.Contains(domain, ".") && !strings.HasPrefix(domain, ".") && !strings.HasSuffix(domain, ".")
}
