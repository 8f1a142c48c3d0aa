package intake

// Human-readable labels for enum-coded form fields. Lookups are total:
// unrecognized values fall back to the raw (sanitized) value so a new or
// malformed code never breaks email composition.

var designStyleLabels = map[string]string{
	"modern-minimal":         "Modern & Minimal",
	"bold-creative":          "Bold & Creative",
	"professional-corporate": "Professional & Corporate",
	"elegant-luxury":         "Elegant & Luxury",
	"friendly-approachable":  "Friendly & Approachable",
}

var contentStatusLabels = map[string]string{
	"yes":     "Has all content ready",
	"partial": "Has some content, needs help with the rest",
	"no":      "Needs content creation assistance",
}

var domainStatusLabels = map[string]string{
	"have-domain": "Has existing domain",
	"need-domain": "Needs domain registration",
	"undecided":   "Needs guidance on domain",
}

var timelineLabels = map[string]string{
	"urgent":   "Urgent (1-2 weeks)",
	"normal":   "Standard (2-4 weeks)",
	"flexible": "Flexible timeline",
}

func labelOr(labels map[string]string, code string) string {
	if l, ok := labels[code]; ok {
		return l
	}
	return code
}

func designStyleLabel(code string) string   { return labelOr(designStyleLabels, code) }
func contentStatusLabel(code string) string { return labelOr(contentStatusLabels, code) }
func domainStatusLabel(code string) string  { return labelOr(domainStatusLabels, code) }
func timelineLabel(code string) string      { return labelOr(timelineLabels, code) }
