// Package gogit implements vcs.Interface with go-git, so history can be read
// without a git binary, including from a repository cloned into memory.
package gogit

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/storage/memory"
	"go.uber.org/zap"

	"github.com/jeffrom/gitcommits/commit"
	"github.com/jeffrom/gitcommits/config"
	"github.com/jeffrom/gitcommits/vcs"
)

// DateFormat is git's default date format, as printed by %ad.
const DateFormat = "Mon Jan 2 15:04:05 2006 -0700"

type Repo struct {
	cfg  config.Config
	repo *git.Repository
}

// Open opens the repository containing path.
func Open(cfg config.Config, path string) (*Repo, error) {
	if path == "" {
		path = "."
	}
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return nil, fmt.Errorf("gogit: open %s: %w", path, err)
	}
	return &Repo{cfg: cfg, repo: repo}, nil
}

// Clone clones url into memory.
func Clone(ctx context.Context, cfg config.Config, url string) (*Repo, error) {
	cfg.Log().Debug("clone", zap.String("url", url))
	repo, err := git.CloneContext(ctx, memory.NewStorage(), nil, &git.CloneOptions{URL: url})
	if err != nil {
		return nil, fmt.Errorf("gogit: clone %s: %w", url, err)
	}
	return &Repo{cfg: cfg, repo: repo}, nil
}

func (r *Repo) ReadRawCommits(ctx context.Context, opts vcs.LogOpts) ([]string, error) {
	to := opts.To
	if to == "" {
		to = "HEAD"
	}
	commits, err := r.log(ctx, to, opts.Folder)
	if err != nil {
		return nil, err
	}

	if opts.From != "" {
		fromCommits, err := r.log(ctx, opts.From, opts.Folder)
		if err != nil {
			return nil, err
		}
		commits = symmetricDifference(commits, fromCommits)
	}

	records := make([]string, len(commits))
	for i, c := range commits {
		records[i] = FormatRecord(c)
	}
	r.cfg.Log().Debug("read commits", zap.String("range", opts.Range()), zap.Int("count", len(records)))
	return records, nil
}

func (r *Repo) log(ctx context.Context, rev, folder string) ([]*object.Commit, error) {
	hash, err := r.repo.ResolveRevision(plumbing.Revision(rev))
	if err != nil {
		return nil, vcs.NotFoundError{Ref: rev}
	}

	logOpts := &git.LogOptions{From: *hash, Order: git.LogOrderCommitterTime}
	if folder != "" {
		prefix := strings.TrimSuffix(folder, "/") + "/"
		logOpts.PathFilter = func(p string) bool {
			return p+"/" == prefix || strings.HasPrefix(p, prefix)
		}
	}
	iter, err := r.repo.Log(logOpts)
	if err != nil {
		return nil, fmt.Errorf("gogit: log %s: %w", rev, err)
	}
	defer iter.Close()

	var commits []*object.Commit
	err = iter.ForEach(func(c *object.Commit) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		commits = append(commits, c)
		return nil
	})
	if err != nil && !errors.Is(err, plumbing.ErrObjectNotFound) {
		return nil, fmt.Errorf("gogit: log %s: %w", rev, err)
	}
	return commits, nil
}

// symmetricDifference returns commits in exactly one of a and b, newest
// first by committer time.
func symmetricDifference(a, b []*object.Commit) []*object.Commit {
	inA := make(map[plumbing.Hash]bool, len(a))
	for _, c := range a {
		inA[c.Hash] = true
	}
	inB := make(map[plumbing.Hash]bool, len(b))
	for _, c := range b {
		inB[c.Hash] = true
	}

	var res []*object.Commit
	for _, c := range a {
		if !inB[c.Hash] {
			res = append(res, c)
		}
	}
	for _, c := range b {
		if !inA[c.Hash] {
			res = append(res, c)
		}
	}
	sort.SliceStable(res, func(i, j int) bool {
		return res[i].Committer.When.After(res[j].Committer.When)
	})
	return res
}

// FormatRecord renders c the way git log renders vcs.LogFormat, minus the
// record separator.
func FormatRecord(c *object.Commit) string {
	hash := c.Hash.String()
	subject, body := SplitMessage(c.Message)
	return strings.Join([]string{
		hash[:7],
		hash,
		subject,
		c.Author.Name,
		c.Author.Email,
		c.Author.When.Format(DateFormat),
		body,
	}, commit.FieldSep)
}

// SplitMessage splits a commit message like git's %s and %b: the subject is
// the first paragraph joined onto one line, the body is everything after
// the blank lines that follow it.
func SplitMessage(msg string) (string, string) {
	lines := strings.Split(strings.TrimLeft(msg, "\n"), "\n")

	i := 0
	var subject []string
	for ; i < len(lines) && strings.TrimSpace(lines[i]) != ""; i++ {
		subject = append(subject, strings.TrimSpace(lines[i]))
	}
	for ; i < len(lines) && strings.TrimSpace(lines[i]) == ""; i++ {
	}

	body := strings.TrimRight(strings.Join(lines[i:], "\n"), "\n")
	return strings.Join(subject, " "), body
}
