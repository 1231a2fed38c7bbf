package commit

import (
	"regexp"
	"strings"

	"github.com/jeffrom/gitcommits/model"
)

var coAuthoredByRE = regexp.MustCompile(`(?i)co-authored-by:\s*(?P<name>.+)<(?P<email>.+)>`)

// ExtractAuthors returns primary followed by every "Co-authored-by: name
// <email>" trailer in body, in order. Repeated co-authors are kept.
func ExtractAuthors(body string, primary model.Author) []model.Author {
	authors := []model.Author{primary}
	for _, m := range coAuthoredByRE.FindAllStringSubmatch(body, -1) {
		authors = append(authors, model.Author{
			Name:  strings.TrimSpace(m[1]),
			Email: strings.TrimSpace(m[2]),
		})
	}
	return authors
}
