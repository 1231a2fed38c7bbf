// Package vcs abstracts the history source that yields raw, delimited
// commit records. Implementations: gitcli (the git binary) and gogit.
package vcs

import (
	"context"
	"fmt"
)

// LogFormat is the git pretty format of one record, prefixed by RecordSep.
// Fields are separated by commit.FieldSep; the body comes last.
const LogFormat = "%x1e%h|%H|%s|%an|%ae|%ad|%b"

// RecordSep frames records in history output.
const RecordSep = "\x1e"

type NotFoundError struct {
	Ref string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("vcs: ref %q not found", e.Ref)
}

type Interface interface {
	// ReadRawCommits returns one delimited record per commit, newest first.
	ReadRawCommits(ctx context.Context, opts LogOpts) ([]string, error)
}

type LogOpts struct {
	// From, when set, makes the range From...To.
	From string
	// To defaults to HEAD.
	To string
	// Folder limits history to commits touching this path.
	Folder string
}

// Range returns the revision range in git syntax.
func (o LogOpts) Range() string {
	to := o.To
	if to == "" {
		to = "HEAD"
	}
	if o.From == "" {
		return to
	}
	return o.From + "..." + to
}
