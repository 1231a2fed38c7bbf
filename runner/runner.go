// Package runner ties a history source to the commit parser for
// command-line use.
package runner

import (
	"context"

	"go.uber.org/zap"

	"github.com/jeffrom/gitcommits/commit"
	"github.com/jeffrom/gitcommits/config"
	"github.com/jeffrom/gitcommits/model"
	"github.com/jeffrom/gitcommits/vcs"
)

type Runner struct {
	cfg config.Config
	vcs vcs.Interface
}

func New(cfg config.Config, vcs vcs.Interface) (*Runner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Runner{
		cfg: cfg,
		vcs: vcs,
	}, nil
}

func (r *Runner) logOpts() vcs.LogOpts {
	return vcs.LogOpts{
		From:   r.cfg.From,
		To:     r.cfg.To,
		Folder: r.cfg.Folder,
	}
}

// Commits reads the configured history range and classifies every commit.
// A failing history source is logged and yields no commits.
func (r *Runner) Commits(ctx context.Context) []*model.Commit {
	opts := r.logOpts()
	records, err := r.vcs.ReadRawCommits(ctx, opts)
	if err != nil {
		r.cfg.Log().Warn("reading history failed", zap.String("range", opts.Range()), zap.Error(err))
		return []*model.Commit{}
	}
	return commit.ParseAll(records)
}

// Group reads commits and groups them by type.
func (r *Runner) Group(ctx context.Context) commit.Groups {
	return commit.GroupByType(r.Commits(ctx), r.cfg.GroupOptions())
}
