// Package model contains the data models shared by the parser, the history
// sources and the runner.
package model

// Author is a commit author or co-author.
type Author struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ReferenceType is the kind of item a Reference points at.
type ReferenceType string

const (
	ReferenceIssue       ReferenceType = "issue"
	ReferencePullRequest ReferenceType = "pull-request"
)

// Reference is an issue or pull request number cited in commit text. Value
// keeps the literal marker, e.g. "#123".
type Reference struct {
	Type  ReferenceType `json:"type"`
	Value string        `json:"value"`
}
