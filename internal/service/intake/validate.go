package intake

import (
	"net/mail"
	"strings"
	"unicode/utf8"
)

// Field caps for the onboarding schema.
const (
	maxNameLen      = 100
	maxEmailLen     = 255
	maxPhoneLen     = 30
	maxBusinessLen  = 200
	maxTypeLen      = 100
	maxPurposeLen   = 500
	maxAudienceLen  = 500
	maxGoalLen      = 500
	maxStyleLen     = 100
	maxColorLen     = 200
	maxRefsLen      = 500
	maxPageLen      = 50
	maxPages        = 20
	maxContentLen   = 50
	maxFeaturesLen  = 1000
	maxDomPrefLen   = 50
	maxDomainLen    = 100
	maxTimelineLen  = 50
	maxSubjectLen   = 200
	maxMessageLen   = 2000
	minNameLen      = 2
	minSubjectLen   = 3
	minMessageLen   = 10
)

func trimContact(r ContactRequest) ContactRequest {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
	return r
}

func trimOnboarding(r OnboardingRequest) OnboardingRequest {
	r.FullName = strings.TrimSpace(r.FullName)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.BusinessName = strings.TrimSpace(r.BusinessName)
	r.BusinessType = strings.TrimSpace(r.BusinessType)
	r.WebsitePurpose = strings.TrimSpace(r.WebsitePurpose)
	r.TargetAudience = strings.TrimSpace(r.TargetAudience)
	r.MainGoal = strings.TrimSpace(r.MainGoal)
	r.DesignStyle = strings.TrimSpace(r.DesignStyle)
	r.ColorPreference = strings.TrimSpace(r.ColorPreference)
	r.ReferenceWebsites = strings.TrimSpace(r.ReferenceWebsites)
	r.HasContent = strings.TrimSpace(r.HasContent)
	r.SpecialFeatures = strings.TrimSpace(r.SpecialFeatures)
	r.DomainPreference = strings.TrimSpace(r.DomainPreference)
	r.ExistingDomain = strings.TrimSpace(r.ExistingDomain)
	r.Timeline = strings.TrimSpace(r.Timeline)
	if r.RequiredPages == nil {
		r.RequiredPages = []string{}
	}
	for i, p := range r.RequiredPages {
		r.RequiredPages[i] = strings.TrimSpace(p)
	}
	return r
}

// validateContact returns every violated-field message; all fields are
// required.
func validateContact(r ContactRequest) []string {
	var details []string

	if runeLen(r.Name) < minNameLen {
		details = append(details, "Name must be at least 2 characters")
	} else if runeLen(r.Name) > maxNameLen {
		details = append(details, "Name must be less than 100 characters")
	}

	if !validEmail(r.Email) {
		details = append(details, "Invalid email address")
	} else if runeLen(r.Email) > maxEmailLen {
		details = append(details, "Email must be less than 255 characters")
	}

	if runeLen(r.Subject) < minSubjectLen {
		details = append(details, "Subject must be at least 3 characters")
	} else if runeLen(r.Subject) > maxSubjectLen {
		details = append(details, "Subject must be less than 200 characters")
	}

	if runeLen(r.Message) < minMessageLen {
		details = append(details, "Message must be at least 10 characters")
	} else if runeLen(r.Message) > maxMessageLen {
		details = append(details, "Message must be less than 2000 characters")
	}

	return details
}

// validateOnboarding returns every violated-field message. Only name and
// email are required; the rest are optional but capped.
func validateOnboarding(r OnboardingRequest) []string {
	var details []string

	if runeLen(r.FullName) < minNameLen {
		details = append(details, "Name must be at least 2 characters")
	} else if runeLen(r.FullName) > maxNameLen {
		details = append(details, "Name must be less than 100 characters")
	}

	if !validEmail(r.Email) {
		details = append(details, "Invalid email address")
	} else if runeLen(r.Email) > maxEmailLen {
		details = append(details, "Email must be less than 255 characters")
	}

	capped := []struct {
		value string
		max   int
		msg   string
	}{
		{r.Phone, maxPhoneLen, "Phone must be less than 30 characters"},
		{r.BusinessName, maxBusinessLen, "Business name must be less than 200 characters"},
		{r.BusinessType, maxTypeLen, "Business type must be less than 100 characters"},
		{r.WebsitePurpose, maxPurposeLen, "Website purpose must be less than 500 characters"},
		{r.TargetAudience, maxAudienceLen, "Target audience must be less than 500 characters"},
		{r.MainGoal, maxGoalLen, "Main goal must be less than 500 characters"},
		{r.DesignStyle, maxStyleLen, "Design style must be less than 100 characters"},
		{r.ColorPreference, maxColorLen, "Color preference must be less than 200 characters"},
		{r.ReferenceWebsites, maxRefsLen, "Reference websites must be less than 500 characters"},
		{r.HasContent, maxContentLen, "Content status must be less than 50 characters"},
		{r.SpecialFeatures, maxFeaturesLen, "Special features must be less than 1000 characters"},
		{r.DomainPreference, maxDomPrefLen, "Domain preference must be less than 50 characters"},
		{r.ExistingDomain, maxDomainLen, "Domain must be less than 100 characters"},
		{r.Timeline, maxTimelineLen, "Timeline must be less than 50 characters"},
	}
	for _, f := range capped {
		if runeLen(f.value) > f.max {
			details = append(details, f.msg)
		}
	}

	if len(r.RequiredPages) > maxPages {
		details = append(details, "Maximum 20 pages allowed")
	}
	for _, p := range r.RequiredPages {
		if runeLen(p) > maxPageLen {
			details = append(details, "Page name must be less than 50 characters")
			break
		}
	}

	return details
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }

// validEmail accepts a bare RFC 5322 address with a dotted domain, which
// matches what the form accepts client-side. Display names are rejected.
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
