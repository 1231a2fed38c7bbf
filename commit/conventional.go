package commit

import "regexp"

// conventionalRE matches "type(scope)!: description", optionally preceded by
// a :shortcode: or pictographic emoji and spaces. It isn't anchored.
var conventionalRE = regexp.MustCompile(`(?i)` +
	`(?P<emoji>:.+:|[\x{1F300}-\x{1F64F}]|[\x{1F680}-\x{1F6FF}]|[\x{2600}-\x{2B55}])?` +
	`( *)` +
	`(?P<type>[a-z]+)` +
	`(?:\((?P<scope>.+)\))?` +
	`(?P<breaking>!)?` +
	`: (?P<description>.+)`)

var breakingFooterRE = regexp.MustCompile(`(?i)breaking[ -]changes?:`)

var (
	emojiIdx       = conventionalRE.SubexpIndex("emoji")
	typeIdx        = conventionalRE.SubexpIndex("type")
	scopeIdx       = conventionalRE.SubexpIndex("scope")
	breakingIdx    = conventionalRE.SubexpIndex("breaking")
	descriptionIdx = conventionalRE.SubexpIndex("description")
)

// Conventional holds the groups captured from a conventional subject line.
type Conventional struct {
	Emoji string
	// Type is returned as written; callers that need a canonical form
	// lowercase it.
	Type string
	// Scope is nil when the subject has no parenthesized scope.
	Scope       *string
	Breaking    bool
	Description string
}

// MatchConventional matches a subject line against the conventional commits
// grammar, returning nil if it doesn't match.
func MatchConventional(subject string) *Conventional {
	loc := conventionalRE.FindStringSubmatchIndex(subject)
	if loc == nil {
		return nil
	}
	group := func(i int) (string, bool) {
		start, end := loc[2*i], loc[2*i+1]
		if start < 0 {
			return "", false
		}
		return subject[start:end], true
	}

	cc := &Conventional{}
	cc.Emoji, _ = group(emojiIdx)
	cc.Type, _ = group(typeIdx)
	if scope, ok := group(scopeIdx); ok {
		cc.Scope = &scope
	}
	_, cc.Breaking = group(breakingIdx)
	cc.Description, _ = group(descriptionIdx)
	return cc
}

// HasBreakingFooter reports whether body contains a "BREAKING CHANGE:"
// style footer. Case, plurals and "BREAKING-CHANGE" are accepted.
func HasBreakingFooter(body string) bool {
	return breakingFooterRE.MatchString(body)
}
