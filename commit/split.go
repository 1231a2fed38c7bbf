package commit

import (
	"strings"

	"github.com/jeffrom/gitcommits/model"
)

// FieldSep separates the fields of a raw record.
const FieldSep = "|"

// shortHash|hash|subject|authorName|authorEmail|date, then the body.
const numLeadingFields = 6

// ParseRaw splits one record of the form
//
//	shortHash|hash|subject|authorName|authorEmail|date|body...
//
// Missing fields are left empty. Every segment after the date is a line of
// the body: empty segments are dropped and the rest joined with newlines, so
// a "|" inside the body survives as a line break.
func ParseRaw(s string) *model.RawCommit {
	parts := strings.Split(s, FieldSep)
	field := func(i int) string {
		if i < len(parts) {
			return parts[i]
		}
		return ""
	}

	var lines []string
	if len(parts) > numLeadingFields {
		for _, part := range parts[numLeadingFields:] {
			if part == "" {
				continue
			}
			lines = append(lines, part)
		}
	}

	return &model.RawCommit{
		ShortHash: field(0),
		Hash:      field(1),
		Message:   field(2),
		Author: model.Author{
			Name:  field(3),
			Email: field(4),
		},
		Date: field(5),
		Body: strings.Join(lines, "\n"),
	}
}
