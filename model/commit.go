package model

// RawCommit holds the positional fields of a single delimited git log
// record. Date is kept exactly as git printed it.
type RawCommit struct {
	ShortHash string `json:"shortHash"`
	Hash      string `json:"hash"`
	Message   string `json:"message"`
	Author    Author `json:"author"`
	Date      string `json:"date"`
	Body      string `json:"body"`
}

// Commit is a RawCommit classified against the conventional commits
// grammar.
type Commit struct {
	ShortHash      string `json:"shortHash"`
	Hash           string `json:"hash"`
	Message        string `json:"message"`
	Date           string `json:"date"`
	Body           string `json:"body"`
	IsConventional bool   `json:"isConventional"`
	IsBreaking     bool   `json:"isBreaking"`
	Type           string `json:"type"`
	// Scope is nil when the subject has no scope group.
	Scope       *string     `json:"scope,omitempty"`
	Description string      `json:"description"`
	References  []Reference `json:"references"`
	Authors     []Author    `json:"authors"`
}

// HasScope reports whether the subject carried a scope.
func (c *Commit) HasScope() bool {
	return c.Scope != nil
}

// ScopeName returns the scope, or "" when there is none.
func (c *Commit) ScopeName() string {
	if c.Scope == nil {
		return ""
	}
	return *c.Scope
}

// Author returns the primary author.
func (c *Commit) Author() Author {
	if len(c.Authors) == 0 {
		return Author{}
	}
	return c.Authors[0]
}

// ShortID returns the short hash, falling back to the first 7 characters of
// the full hash.
func (c *Commit) ShortID() string {
	if c.ShortHash != "" {
		return c.ShortHash
	}
	if len(c.Hash) < 7 {
		return c.Hash
	}
	return c.Hash[:7]
}
