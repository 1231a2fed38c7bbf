// Package gitcli implements vcs.Interface using the git commandline tool.
package gitcli

import (
	"context"

	"go.uber.org/zap"

	"github.com/jeffrom/gitcommits/config"
	"github.com/jeffrom/gitcommits/vcs"
)

// Git implements vcs.Interface using the git commandline tool.
type Git struct {
	cfg config.Config
	wd  string
}

func New(cfg config.Config, wd string) *Git {
	return &Git{
		cfg: cfg,
		wd:  wd,
	}
}

// LogArgs returns the git arguments ReadRawCommits runs.
func LogArgs(opts vcs.LogOpts) []string {
	args := []string{
		"--no-pager", "log", opts.Range(), "--pretty=format:" + vcs.LogFormat,
		// pinned so a user's log.date setting can't change %ad.
		"--date=default",
	}
	if opts.Folder != "" {
		args = append(args, "--", opts.Folder)
	}
	return args
}

func (g *Git) ReadRawCommits(ctx context.Context, opts vcs.LogOpts) ([]string, error) {
	b, err := g.call(ctx, LogArgs(opts))
	if err != nil {
		return nil, err
	}
	records := vcs.SplitRecords(string(b))
	g.cfg.Log().Debug("read commits", zap.String("range", opts.Range()), zap.Int("count", len(records)))
	return records, nil
}
