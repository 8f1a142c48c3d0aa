package intake

import "strings"

// htmlEscaper escapes the five HTML-significant characters. User input
// crosses an untrusted-content boundary when interpolated into email HTML,
// even though the transport is email rather than a browser.
var htmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#039;",
)

func escapeHTML(s string) string { return htmlEscaper.Replace(s) }

func sanitizeContact(r ContactRequest) ContactRequest {
	return ContactRequest{
		Name:    escapeHTML(r.Name),
		Email:   escapeHTML(r.Email),
		Subject: escapeHTML(r.Subject),
		Message: escapeHTML(r.Message),
	}
}

func sanitizeOnboarding(r OnboardingRequest) OnboardingRequest {
	pages := make([]string, len(r.RequiredPages))
	for i, p := range r.RequiredPages {
		pages[i] = escapeHTML(p)
	}
	return OnboardingRequest{
		FullName:          escapeHTML(r.FullName),
		Email:             escapeHTML(r.Email),
		Phone:             escapeHTML(r.Phone),
		BusinessName:      escapeHTML(r.BusinessName),
		BusinessType:      escapeHTML(r.BusinessType),
		WebsitePurpose:    escapeHTML(r.WebsitePurpose),
		TargetAudience:    escapeHTML(r.TargetAudience),
		MainGoal:          escapeHTML(r.MainGoal),
		DesignStyle:       escapeHTML(r.DesignStyle),
		ColorPreference:   escapeHTML(r.ColorPreference),
		ReferenceWebsites: escapeHTML(r.ReferenceWebsites),
		RequiredPages:     pages,
		HasContent:        escapeHTML(r.HasContent),
		SpecialFeatures:   escapeHTML(r.SpecialFeatures),
		DomainPreference:  escapeHTML(r.DomainPreference),
		ExistingDomain:    escapeHTML(r.ExistingDomain),
		Timeline:          escapeHTML(r.Timeline),
	}
}
