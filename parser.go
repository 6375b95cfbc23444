package simpleval

import "strings"

// ParsedRule is one segment of a rule declaration.
// Params are raw strings; each rule converts them itself.
type ParsedRule struct {
	Name   string
	Params []string
}

// ParseRules splits a declaration like "required|btw:2,4" into rules.
// A segment without ':' has a single empty parameter. An empty declaration
// yields an empty slice.
func ParseRules(declaration string) []ParsedRule {
	if declaration == "" {
		return []ParsedRule{}
	}

	segments := strings.Split(declaration, "|")
	rules := make([]ParsedRule, 0, len(segments))
	for _, segment := range segments {
		name, raw, _ := strings.Cut(segment, ":")
		rules = append(rules, ParsedRule{
			Name:   name,
			Params: strings.Split(raw, ","),
		})
	}
	return rules
}
