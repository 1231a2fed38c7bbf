package runner

import (
	"context"

	"github.com/jeffrom/gitcommits/config"
	"github.com/jeffrom/gitcommits/vcs"
	"github.com/jeffrom/gitcommits/vcs/gitcli"
	"github.com/jeffrom/gitcommits/vcs/gogit"
)

// NewHistorySource returns the history source selected by cfg.Backend.
// With the go-git backend, a configured Remote is cloned into memory.
func NewHistorySource(ctx context.Context, cfg config.Config) (vcs.Interface, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Backend != config.BackendGoGit {
		return gitcli.New(cfg, cfg.Dir), nil
	}
	if cfg.Remote != "" {
		return gogit.Clone(ctx, cfg, cfg.Remote)
	}
	return gogit.Open(cfg, cfg.Dir)
}
