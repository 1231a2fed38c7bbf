// Package commit parses delimited git log records and classifies them
// against the conventional commits grammar
// (https://www.conventionalcommits.org/en/v1.0.0/).
//
// Every function in this package is pure and total: malformed input yields
// empty fields, never an error, so a single bad record can't fail a batch.
// They are safe to call concurrently.
package commit

import "github.com/jeffrom/gitcommits/model"

// Parse classifies a raw commit. A subject that doesn't match the
// conventional grammar yields IsConventional == false and the whole subject
// as the description.
func Parse(raw *model.RawCommit) *model.Commit {
	if raw == nil {
		raw = &model.RawCommit{}
	}

	c := &model.Commit{
		ShortHash: raw.ShortHash,
		Hash:      raw.Hash,
		Message:   raw.Message,
		Date:      raw.Date,
		Body:      raw.Body,
	}

	description := raw.Message
	breaking := false
	if cc := MatchConventional(raw.Message); cc != nil {
		c.IsConventional = true
		c.Type = cc.Type
		c.Scope = cc.Scope
		description = cc.Description
		breaking = cc.Breaking
	}
	c.IsBreaking = breaking || HasBreakingFooter(raw.Body)

	c.References, c.Description = ExtractReferences(description, raw.Body)
	c.Authors = ExtractAuthors(raw.Body, raw.Author)
	return c
}

// ParseAll splits and classifies each raw record, preserving order.
func ParseAll(records []string) []*model.Commit {
	commits := make([]*model.Commit, len(records))
	for i, rec := range records {
		commits[i] = Parse(ParseRaw(rec))
	}
	return commits
}
