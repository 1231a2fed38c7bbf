// Package gitcommits reads git history and classifies each commit against
// the conventional commits grammar, extracting issue and pull request
// references and co-authors.
//
// Related packages: config, commit, runner, model, vcs, vcs/gitcli, vcs/gogit
package gitcommits

import (
	"context"

	"github.com/jeffrom/gitcommits/commit"
	"github.com/jeffrom/gitcommits/config"
	"github.com/jeffrom/gitcommits/model"
	"github.com/jeffrom/gitcommits/runner"
)

// Config holds the configuration for reading history. This struct is
// intended for command-line use, so not all of its attributes are applicable
// to every operation.
//
// See "go doc github.com/jeffrom/gitcommits/config Config" for more
// information.
type Config = config.Config

// GetCommits reads the history range configured in cfg and classifies each
// commit, newest first. It fails on an invalid config or a repository the
// go-git backend can't open. Once open, a history source that can't be read
// yields an empty list.
func GetCommits(ctx context.Context, cfg Config) ([]*model.Commit, error) {
	src, err := runner.NewHistorySource(ctx, cfg)
	if err != nil {
		return nil, err
	}
	rnr, err := runner.New(cfg, src)
	if err != nil {
		return nil, err
	}
	return rnr.Commits(ctx), nil
}

// ParseRawCommit splits a single "|"-delimited log record.
func ParseRawCommit(record string) *model.RawCommit {
	return commit.ParseRaw(record)
}

// ParseCommit classifies a raw commit.
func ParseCommit(raw *model.RawCommit) *model.Commit {
	return commit.Parse(raw)
}

// GroupByType groups commits by lowercased conventional type.
func GroupByType(commits []*model.Commit, opts commit.GroupOptions) commit.Groups {
	return commit.GroupByType(commits, opts)
}
