// Package config holds gitcommits configuration along with terminal output
// and logging helpers.
package config

import (
	"errors"
	"fmt"
	"io"

	"github.com/imdario/mergo"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/jeffrom/gitcommits/commit"
)

const (
	BackendGit   = "git"
	BackendGoGit = "go-git"
)

type Config struct {
	Debug bool `json:"debug,omitempty" toml:"debug"`
	Quiet bool `json:"quiet,omitempty" toml:"quiet"`

	// From and To bound the history range. When From is set the range is
	// From...To.
	From   string `json:"from,omitempty" toml:"from"`
	To     string `json:"to,omitempty" toml:"to"`
	Folder string `json:"folder,omitempty" toml:"folder"`
	Dir    string `json:"dir,omitempty" toml:"dir"`

	Backend string `json:"backend,omitempty" toml:"backend"`
	// Remote is a repository URL cloned into memory by the go-git backend.
	Remote string `json:"remote,omitempty" toml:"remote"`

	SkipNonConventional bool     `json:"skip_non_conventional,omitempty" toml:"skip_non_conventional"`
	NonConventionalKey  string   `json:"non_conventional_key,omitempty" toml:"non_conventional_key"`
	ExcludeKeys         []string `json:"exclude_keys,omitempty" toml:"exclude_keys"`

	AllowedTypes  []string `json:"allowed_types,omitempty" toml:"allowed_types"`
	AllowedScopes []string `json:"allowed_scopes,omitempty" toml:"allowed_scopes"`

	Term   TerminalIO  `json:"-" toml:"-"`
	Logger *zap.Logger `json:"-" toml:"-"`
}

func New(overrides *Config) Config {
	return NewWithTerminalIO(overrides, nil)
}

func NewWithTerminalIO(overrides *Config, termio *TerminalIO) Config {
	cfg := GetDefault()
	if termio == nil {
		termio = &DefaultTermIO
	}
	cfg.Term = *termio

	if overrides != nil {
		o := *overrides
		o.Logger = nil
		if err := mergo.Merge(&cfg, o, mergo.WithOverride); err != nil {
			panic(err)
		}
	}
	cfg.ResetLogger()
	return cfg
}

// ResetLogger rebuilds the logger after Debug, Quiet or Term change.
func (c *Config) ResetLogger() {
	c.Logger = NewLogger(c.Term.Stderr, c.Debug, c.Quiet)
}

// Log returns the configured logger, or a no-op logger.
func (c Config) Log() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}

// NewLogger returns a console logger writing to w. It logs warnings and
// errors by default, everything when debug is set, and only errors when
// quiet is set.
func NewLogger(w io.Writer, debug, quiet bool) *zap.Logger {
	if w == nil {
		return zap.NewNop()
	}
	level := zapcore.WarnLevel
	if debug {
		level = zapcore.DebugLevel
	} else if quiet {
		level = zapcore.ErrorLevel
	}

	encCfg := zap.NewDevelopmentEncoderConfig()
	encCfg.TimeKey = ""
	core := zapcore.NewCore(zapcore.NewConsoleEncoder(encCfg), zapcore.AddSync(w), level)
	return zap.New(core)
}

func (c Config) Printf(msg string, args ...interface{}) {
	if c.Quiet {
		return
	}
	fmt.Fprintf(c.Term.Stdout, msg+"\n", args...)
}

func (c Config) Errorf(msg string, args ...interface{}) {
	fmt.Fprintf(c.Term.Stderr, msg+"\n", args...)
}

func (c Config) Debugf(msg string, args ...interface{}) {
	c.Log().Sugar().Debugf(msg, args...)
}

func (c Config) Validate() error {
	switch c.Backend {
	case "", BackendGit, BackendGoGit:
	default:
		return fmt.Errorf("config: unknown backend %q", c.Backend)
	}
	if c.Remote != "" && c.Backend != BackendGoGit {
		return fmt.Errorf("config: remote requires the %s backend", BackendGoGit)
	}
	if !c.SkipNonConventional && c.NonConventionalKey == "" {
		return errors.New("config: non-conventional key is required when non-conventional commits are grouped")
	}
	return nil
}

// GroupOptions returns the options for commit.GroupByType.
func (c Config) GroupOptions() commit.GroupOptions {
	return commit.GroupOptions{
		IncludeNonConventional: !c.SkipNonConventional,
		NonConventionalKey:     c.NonConventionalKey,
		ExcludeKeys:            c.ExcludeKeys,
	}
}
