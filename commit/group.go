package commit

import (
	"strings"

	"github.com/jeffrom/gitcommits/model"
)

// DefaultNonConventionalKey is the group for commits that don't follow the
// conventional grammar.
const DefaultNonConventionalKey = "misc"

// GroupOptions controls GroupByType.
type GroupOptions struct {
	IncludeNonConventional bool     `json:"include_non_conventional"`
	NonConventionalKey     string   `json:"non_conventional_key"`
	ExcludeKeys            []string `json:"exclude_keys,omitempty"`
}

// DefaultGroupOptions includes non-conventional commits under "misc".
func DefaultGroupOptions() GroupOptions {
	return GroupOptions{
		IncludeNonConventional: true,
		NonConventionalKey:     DefaultNonConventionalKey,
	}
}

// Group is a set of commits sharing a lowercased type.
type Group struct {
	Key     string          `json:"key"`
	Commits []*model.Commit `json:"commits"`
}

// Groups is ordered by the first appearance of each key.
type Groups []*Group

func (g Groups) find(key string) *Group {
	for _, grp := range g {
		if grp.Key == key {
			return grp
		}
	}
	return nil
}

// Get returns the commits grouped under key.
func (g Groups) Get(key string) []*model.Commit {
	if grp := g.find(key); grp != nil {
		return grp.Commits
	}
	return nil
}

func (g Groups) Has(key string) bool {
	return g.find(key) != nil
}

func (g Groups) Keys() []string {
	keys := make([]string, len(g))
	for i, grp := range g {
		keys[i] = grp.Key
	}
	return keys
}

// GroupByType groups commits by lowercased type. Non-conventional commits
// go under opts.NonConventionalKey, or are skipped when
// opts.IncludeNonConventional is false. Conventional commits with an empty
// type are skipped, as is any key in opts.ExcludeKeys.
func GroupByType(commits []*model.Commit, opts GroupOptions) Groups {
	var groups Groups
	for _, c := range commits {
		if c == nil {
			continue
		}
		if !c.IsConventional && !opts.IncludeNonConventional {
			continue
		}

		key := opts.NonConventionalKey
		if c.IsConventional {
			key = strings.ToLower(c.Type)
			if key == "" {
				continue
			}
		}
		if inStrs(key, opts.ExcludeKeys) {
			continue
		}

		grp := groups.find(key)
		if grp == nil {
			grp = &Group{Key: key}
			groups = append(groups, grp)
		}
		grp.Commits = append(grp.Commits, c)
	}
	return groups
}

func inStrs(s string, cands []string) bool {
	for _, cand := range cands {
		if s == cand {
			return true
		}
	}
	return false
}
