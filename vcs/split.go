package vcs

import (
	"regexp"
	"strings"
)

// legacySepRE matches the "----" line that older log formats used to frame
// records.
var legacySepRE = regexp.MustCompile(`(?m)^----\n`)

// SplitRecords splits history output into records. Records are framed by
// RecordSep, or by "----" lines when no RecordSep is present. Empty records
// are dropped and trailing newlines left by the framing are trimmed.
func SplitRecords(out string) []string {
	out = strings.TrimSpace(out)
	var parts []string
	if strings.Contains(out, RecordSep) {
		parts = strings.Split(out, RecordSep)
	} else {
		parts = legacySepRE.Split(out+"\n", -1)
	}

	var records []string
	for _, part := range parts {
		part = strings.TrimRight(part, "\n")
		if part == "" {
			continue
		}
		records = append(records, part)
	}
	return records
}
