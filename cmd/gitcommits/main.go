package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"

	"github.com/ghodss/yaml"
	"github.com/imdario/mergo"
	"github.com/spf13/pflag"

	"github.com/jeffrom/gitcommits/config"
	"github.com/jeffrom/gitcommits/runner"
	"github.com/jeffrom/gitcommits/vcs"
)

var (
	// overridden by go build -X
	Version string
)

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(rawArgs []string) error {
	return runWithIO(rawArgs, config.DefaultTermIO)
}

func runWithIO(rawArgs []string, termio config.TerminalIO) error {
	// flag values only override the config file when set, so defaults are
	// applied by config.New.
	flagCfg := config.Config{}

	var help bool
	var version bool
	var cfgFile string
	var group bool
	var readStats bool
	var checkCommits []string
	var checkCommitsFromGit bool
	var printConfig bool
	flags := pflag.NewFlagSet("gitcommits", pflag.ContinueOnError)
	flags.SetOutput(termio.Stderr)
	flags.BoolVarP(&help, "help", "h", false, "show help")
	flags.BoolVarP(&version, "version", "V", false, "print version and exit")
	flags.StringVar(&flagCfg.From, "from", "", "read commits since `ref` (exclusive)")
	flags.StringVar(&flagCfg.To, "to", "", "read commits up to `ref` (default HEAD)")
	flags.StringVar(&flagCfg.Folder, "folder", "", "only read commits touching `path`")
	flags.StringVarP(&flagCfg.Dir, "dir", "C", "", "run in repository `dir`")
	flags.StringVar(&flagCfg.Backend, "backend", "", "history backend: git or go-git")
	flags.StringVar(&flagCfg.Remote, "remote", "", "clone repository `url` into memory (go-git backend)")
	flags.BoolVar(&group, "group", false, "print commits grouped by type")
	flags.BoolVar(&flagCfg.SkipNonConventional, "skip-non-conventional", false, "leave non-conventional commits out of groups")
	flags.StringVar(&flagCfg.NonConventionalKey, "misc-key", "", "group `key` for non-conventional commits (default misc)")
	flags.StringArrayVar(&flagCfg.ExcludeKeys, "exclude", nil, "leave group `key` out of groups")
	flags.BoolVarP(&readStats, "stats", "S", false, "print commit stats")
	flags.BoolVar(&checkCommitsFromGit, "check", false, "validate commits in the range")
	flags.StringArrayVar(&checkCommits, "check-commit", nil, "only validate commit `message` (- reads stdin)")
	flags.StringArrayVar(&flagCfg.AllowedTypes, "allowed-type", nil, "declare allowed commit `type`s")
	flags.StringArrayVar(&flagCfg.AllowedScopes, "allowed-scope", nil, "declare allowed scopes' `name`s")
	flags.BoolVarP(&flagCfg.Debug, "verbose", "v", false, "print additional debugging info")
	flags.BoolVarP(&flagCfg.Quiet, "quiet", "q", false, "print as little as necessary")
	flags.StringVarP(&cfgFile, "config", "c", "", "specify config `file`")
	flags.BoolVar(&printConfig, "print-config", false, "print configuration and exit")

	if err := flags.Parse(rawArgs); err != nil {
		return err
	}
	args := flags.Args()
	if len(args) > 0 {
		args = args[1:]
	}

	if help || version {
		cfg := config.NewWithTerminalIO(&flagCfg, &termio)
		if help {
			usage(cfg, flags)
		} else {
			cfg.Printf("%s", Version)
		}
		return nil
	}

	overrides, cfgPath, err := readConfigFile(cfgFile, flagCfg.Dir)
	if err != nil {
		return err
	}
	if err := mergo.Merge(overrides, flagCfg, mergo.WithOverride); err != nil {
		return err
	}
	cfg := config.NewWithTerminalIO(overrides, &termio)

	if printConfig {
		b, err := yaml.Marshal(cfg)
		if err != nil {
			return err
		}
		cfg.Printf("%s", string(b))
		return nil
	}
	if cfgPath != "" {
		cfg.Debugf("config: read %s", cfgPath)
	}
	if cfg.Debug {
		b, err := json.MarshalIndent(cfg, "", "  ")
		die(err)
		cfg.Debugf("config: %s", string(b))
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	// done setting up config

	ctx := context.Background()
	if len(args) > 1 || (len(args) == 1 && args[0] != "-") {
		return fmt.Errorf("unexpected arguments: %q", args)
	}
	readStdin := len(args) == 1
	if readStdin && !termio.StdinIsPipe() {
		return errors.New("- reads records from stdin, but stdin is a terminal")
	}

	if flags.Lookup("check-commit").Changed {
		rnr, err := runner.New(cfg, nil)
		if err != nil {
			return err
		}
		if len(checkCommits) == 1 && checkCommits[0] == "-" && termio.StdinIsPipe() {
			_, err = rnr.CheckReadCommit(ctx, termio.Stdin)
		} else {
			_, err = rnr.CheckCommits(ctx, checkCommits)
		}
		return reportCheck(cfg, err)
	}

	var src vcs.Interface
	if readStdin {
		src = vcs.NewReader(termio.Stdin)
	} else {
		src, err = runner.NewHistorySource(ctx, cfg)
		if err != nil {
			return err
		}
	}
	rnr, err := runner.New(cfg, src)
	if err != nil {
		return err
	}

	switch {
	case checkCommitsFromGit:
		_, err := rnr.CheckCommitsFromGit(ctx)
		return reportCheck(cfg, err)
	case readStats:
		return rnr.Stats(ctx).TextSummary(cfg.Term.Stdout)
	case group:
		return writeJSON(cfg, rnr.Group(ctx))
	default:
		return writeJSON(cfg, rnr.Commits(ctx))
	}
}

func reportCheck(cfg config.Config, err error) error {
	if err != nil {
		cf := runner.CheckFailure{}
		if errors.As(err, &cf) {
			if err := cf.WriteFailure(cfg.Term.Stdout); err != nil {
				cfg.Errorf("failed to write invalid commit information: %v", err)
			}
		}
		return err
	}
	cfg.Printf("OK")
	return nil
}

func writeJSON(cfg config.Config, v interface{}) error {
	b, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	// json output is the result, so it's written even when quiet.
	_, err = fmt.Fprintln(cfg.Term.Stdout, string(b))
	return err
}

func die(err error) {
	if err != nil {
		panic(err)
	}
}

// readConfigFile loads p, or the nearest config file above dir. It returns
// an empty config when there is none.
func readConfigFile(p, dir string) (*config.Config, string, error) {
	if p != "" {
		cfg, err := config.Load(p)
		return cfg, p, err
	}
	if dir == "" {
		dir = "."
	}
	cfg, path, err := config.Find(dir)
	if err != nil {
		return nil, "", err
	}
	if cfg == nil {
		return &config.Config{}, "", nil
	}
	return cfg, path, nil
}

func usage(cfg config.Config, flags *pflag.FlagSet) {
	cfg.Printf(`%s [-]

Reads git history and classifies each commit against the conventional
commits grammar (https://www.conventionalcommits.org).

FLAGS
%s

Configuration is read from the first gitcommits.yaml, gitcommits.yml or
gitcommits.toml found walking up from the repository directory. Flags take
precedence.

EXAMPLES

# print commits on HEAD as json
$ gitcommits

# print commits since the last release, grouped by type
$ gitcommits --from v1.2.0 --group

# classify pre-formatted records
$ git log --pretty=format:'%%x1e%%h|%%H|%%s|%%an|%%ae|%%ad|%%b' | gitcommits -

# validate a commit message in a commit-msg hook
$ gitcommits --check-commit - --allowed-type feat --allowed-type fix < "$1"

# read history from a remote without a checkout
$ gitcommits --backend go-git --remote https://github.com/jeffrom/gitcommits.git --stats
`, "gitcommits", flags.FlagUsages())
}
