package commit

import (
	"regexp"
	"strings"

	"github.com/jeffrom/gitcommits/model"
)

var (
	// (#123), (closes #123)
	pullRequestRE = regexp.MustCompile(`\([ a-z]*(#\d+)\s*\)`)
	issueRE       = regexp.MustCompile(`#\d+`)
)

// referenceSet is an insertion-ordered map of reference value to type.
type referenceSet struct {
	values []string
	types  map[string]model.ReferenceType
}

func newReferenceSet() *referenceSet {
	return &referenceSet{types: make(map[string]model.ReferenceType)}
}

func (s *referenceSet) set(value string, typ model.ReferenceType) {
	if _, ok := s.types[value]; !ok {
		s.values = append(s.values, value)
	}
	s.types[value] = typ
}

func (s *referenceSet) has(value string) bool {
	_, ok := s.types[value]
	return ok
}

// scan records pull requests first so they take precedence over issues
// citing the same number.
func (s *referenceSet) scan(text string) {
	for _, m := range pullRequestRE.FindAllStringSubmatch(text, -1) {
		s.set(m[1], model.ReferencePullRequest)
	}
	for _, value := range issueRE.FindAllString(text, -1) {
		if !s.has(value) {
			s.set(value, model.ReferenceIssue)
		}
	}
}

func (s *referenceSet) references() []model.Reference {
	refs := make([]model.Reference, len(s.values))
	for i, value := range s.values {
		refs[i] = model.Reference{Type: s.types[value], Value: value}
	}
	return refs
}

// ExtractReferences collects pull request and issue references from the
// description, then the body, in discovery order. Each value appears once;
// a number seen as a pull request is always typed as one. The returned
// description has pull request annotations removed and is trimmed. Bare
// issue references are left in place.
func ExtractReferences(description, body string) ([]model.Reference, string) {
	set := newReferenceSet()
	set.scan(description)
	if body != "" {
		set.scan(body)
	}

	cleaned := strings.TrimSpace(pullRequestRE.ReplaceAllLiteralString(description, ""))
	return set.references(), cleaned
}
