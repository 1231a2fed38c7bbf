package runner

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jeffrom/gitcommits/commit"
	"github.com/jeffrom/gitcommits/model"
)

type CheckFailure struct {
	Failures []FailureEntry
}

type FailureEntry struct {
	commitID    string
	commitTitle string
	err         error
}

func (f FailureEntry) Error() string {
	return f.err.Error()
}

func (f FailureEntry) Unwrap() error {
	return f.err
}

func (cf CheckFailure) Error() string {
	return fmt.Sprintf("%d check(s) failed", len(cf.Failures))
}

func (cf CheckFailure) Is(other error) bool {
	_, ok := other.(CheckFailure)
	return ok
}

var (
	ErrNotConventional = errors.New("commit is not conventional")
	ErrDisallowedType  = errors.New("commit type is disallowed")
	ErrDisallowedScope = errors.New("scope is disallowed")
)

// WriteFailure writes failures grouped by commit.
func (cf CheckFailure) WriteFailure(w io.Writer) error {
	if len(cf.Failures) == 0 {
		return nil
	}
	bw := bufio.NewWriter(w)

	var byCommit [][]FailureEntry
	for _, failure := range cf.Failures {
		foundPrev := false
		for i, prev := range byCommit {
			if sameCommit(prev[0], failure) {
				byCommit[i] = append(prev, failure)
				foundPrev = true
				break
			}
		}
		if !foundPrev {
			byCommit = append(byCommit, []FailureEntry{failure})
		}
	}

	for _, failures := range byCommit {
		title := failures[0].commitTitle
		if id := failures[0].commitID; id != "" {
			title = id + " " + title
		}
		bw.WriteString(title)
		bw.WriteString("\n")
		for _, failure := range failures {
			bw.WriteString("  ")
			bw.WriteString(failure.err.Error())
			bw.WriteString("\n")
		}
	}

	return bw.Flush()
}

func sameCommit(a, b FailureEntry) bool {
	if a.commitID != "" || b.commitID != "" {
		return a.commitID == b.commitID
	}
	return a.commitTitle == b.commitTitle
}

// CheckCommits checks raw commit messages.
func (r *Runner) CheckCommits(ctx context.Context, messages []string) ([]*model.Commit, error) {
	var commits []*model.Commit
	for _, msg := range messages {
		commits = append(commits, commit.Parse(parseMessage(msg)))
	}
	return r.check(commits)
}

// CheckReadCommit checks a single commit message, as passed to a commit-msg
// hook.
func (r *Runner) CheckReadCommit(ctx context.Context, rdr io.Reader) ([]*model.Commit, error) {
	raw, err := io.ReadAll(rdr)
	if err != nil {
		return nil, err
	}
	return r.CheckCommits(ctx, []string{string(raw)})
}

// CheckCommitsFromGit checks every commit in the configured range.
func (r *Runner) CheckCommitsFromGit(ctx context.Context) ([]*model.Commit, error) {
	return r.check(r.Commits(ctx))
}

func (r *Runner) check(commits []*model.Commit) ([]*model.Commit, error) {
	var failures []FailureEntry
	for _, c := range commits {
		failures = append(failures, r.checkCommit(c)...)
	}
	if len(failures) > 0 {
		return nil, CheckFailure{Failures: failures}
	}
	return commits, nil
}

func (r *Runner) checkCommit(c *model.Commit) []FailureEntry {
	entry := func(err error) FailureEntry {
		return FailureEntry{commitID: c.ShortID(), commitTitle: c.Message, err: err}
	}
	if !c.IsConventional {
		return []FailureEntry{entry(ErrNotConventional)}
	}

	var failures []FailureEntry
	if typ := strings.ToLower(c.Type); len(r.cfg.AllowedTypes) > 0 && !inStrs(typ, r.cfg.AllowedTypes) {
		failures = append(failures, entry(fmt.Errorf("%w: %q", ErrDisallowedType, c.Type)))
	}
	if c.HasScope() && len(r.cfg.AllowedScopes) > 0 && !inStrs(c.ScopeName(), r.cfg.AllowedScopes) {
		failures = append(failures, entry(fmt.Errorf("%w: %q", ErrDisallowedScope, c.ScopeName())))
	}
	return failures
}

// parseMessage reads a commit message as written to COMMIT_EDITMSG: the
// subject, a blank line, then the body. Comment lines are dropped.
func parseMessage(s string) *model.RawCommit {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) < 2 {
		return &model.RawCommit{Message: lines[0]}
	}
	var cleaned []string
	for _, line := range lines[2:] {
		if strings.HasPrefix(line, "#") {
			continue
		}
		cleaned = append(cleaned, line)
	}
	return &model.RawCommit{Message: lines[0], Body: strings.Join(cleaned, "\n")}
}

func inStrs(s string, cands []string) bool {
	for _, cand := range cands {
		if s == cand {
			return true
		}
	}
	return false
}
