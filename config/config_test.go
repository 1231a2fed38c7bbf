package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func mockTermIO() (TerminalIO, *bytes.Buffer, *bytes.Buffer) {
	ob := &bytes.Buffer{}
	eb := &bytes.Buffer{}
	return TerminalIO{Stdout: ob, Stderr: eb}, ob, eb
}

func TestConfig(t *testing.T) {
	cfg := New(nil)
	if cfg.To != "HEAD" {
		t.Fatalf("expected default to %q, got %q", "HEAD", cfg.To)
	}
	if cfg.NonConventionalKey != "misc" {
		t.Fatalf("expected default non-conventional key %q, got %q", "misc", cfg.NonConventionalKey)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestConfigOverrides(t *testing.T) {
	cfg := New(&Config{To: "main", From: "v1.0.0", ExcludeKeys: []string{"chore"}})
	if cfg.To != "main" {
		t.Errorf("expected to %q, got %q", "main", cfg.To)
	}
	if cfg.From != "v1.0.0" {
		t.Errorf("expected from %q, got %q", "v1.0.0", cfg.From)
	}
	if cfg.Backend != BackendGit {
		t.Errorf("expected backend %q, got %q", BackendGit, cfg.Backend)
	}

	opts := cfg.GroupOptions()
	if !opts.IncludeNonConventional {
		t.Error("expected non-conventional commits to be included")
	}
	if diff := cmp.Diff([]string{"chore"}, opts.ExcludeKeys); diff != "" {
		t.Errorf("exclude keys mismatch (-expect +got):\n%s", diff)
	}
}

func TestConfigValidate(t *testing.T) {
	tcs := []struct {
		name string
		cfg  *Config
	}{
		{
			name: "unknown-backend",
			cfg:  &Config{Backend: "hg"},
		},
		{
			name: "remote-without-gogit",
			cfg:  &Config{Remote: "https://example.com/repo.git"},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			cfg := New(tc.cfg)
			if err := cfg.Validate(); err == nil {
				t.Fatal("expected config to be invalid")
			} else {
				t.Log(err)
			}
		})
	}

	cfg := New(nil)
	cfg.NonConventionalKey = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected empty non-conventional key to be invalid")
	}
	cfg.SkipNonConventional = true
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestConfigOutput(t *testing.T) {
	tio, ob, eb := mockTermIO()
	cfg := NewWithTerminalIO(&Config{Debug: true}, &tio)

	cfg.Printf("hello %s", "there")
	cfg.Errorf("oh %s", "no")
	cfg.Debugf("debug %d", 1)

	if out := ob.String(); out != "hello there\n" {
		t.Errorf("expected stdout %q, got %q", "hello there\n", out)
	}
	errOut := eb.String()
	if !strings.HasPrefix(errOut, "oh no\n") {
		t.Errorf("expected stderr to start with %q, got %q", "oh no\n", errOut)
	}
	if !strings.Contains(errOut, "debug 1") {
		t.Errorf("expected debug output in stderr, got %q", errOut)
	}

	tio, ob, eb = mockTermIO()
	cfg = NewWithTerminalIO(&Config{Quiet: true}, &tio)
	cfg.Printf("hello")
	cfg.Debugf("debug")
	if ob.Len() != 0 || eb.Len() != 0 {
		t.Errorf("expected no output when quiet, got stdout %q stderr %q", ob.String(), eb.String())
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	yamlPath := filepath.Join(dir, "gitcommits.yaml")
	if err := os.WriteFile(yamlPath, []byte("to: main\nexclude_keys: [chore, docs]\nskip_non_conventional: true\n"), 0644); err != nil {
		t.Fatal(err)
	}
	tomlPath := filepath.Join(dir, "other.toml")
	if err := os.WriteFile(tomlPath, []byte("to = \"develop\"\nnon_conventional_key = \"other\"\nallowed_types = [\"feat\", \"fix\"]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	ycfg, err := Load(yamlPath)
	if err != nil {
		t.Fatal(err)
	}
	if ycfg.To != "main" || !ycfg.SkipNonConventional {
		t.Errorf("unexpected yaml config: %+v", ycfg)
	}
	if diff := cmp.Diff([]string{"chore", "docs"}, ycfg.ExcludeKeys); diff != "" {
		t.Errorf("exclude keys mismatch (-expect +got):\n%s", diff)
	}

	tcfg, err := Load(tomlPath)
	if err != nil {
		t.Fatal(err)
	}
	if tcfg.To != "develop" || tcfg.NonConventionalKey != "other" {
		t.Errorf("unexpected toml config: %+v", tcfg)
	}
	if diff := cmp.Diff([]string{"feat", "fix"}, tcfg.AllowedTypes); diff != "" {
		t.Errorf("allowed types mismatch (-expect +got):\n%s", diff)
	}

	if err := os.WriteFile(tomlPath, []byte("to = "), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(tomlPath); err == nil {
		t.Fatal("expected invalid toml error")
	}
}

func TestFind(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0755); err != nil {
		t.Fatal(err)
	}
	expectPath := filepath.Join(root, "gitcommits.toml")
	if err := os.WriteFile(expectPath, []byte("from = \"v1.0.0\"\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cfg, p, err := Find(nested)
	if err != nil {
		t.Fatal(err)
	}
	if cfg == nil {
		t.Fatal("expected config")
	}
	if p != expectPath {
		t.Errorf("expected path %q, got %q", expectPath, p)
	}
	if cfg.From != "v1.0.0" {
		t.Errorf("expected from %q, got %q", "v1.0.0", cfg.From)
	}
}

func TestStdinIsPipe(t *testing.T) {
	tio, _, _ := mockTermIO()
	tio.Stdin = strings.NewReader("feat: x")
	if tio.StdinIsPipe() {
		t.Error("expected a non-file reader not to count as a pipe")
	}

	r, w, err := os.Pipe()
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	defer w.Close()
	tio.Stdin = r
	if !tio.StdinIsPipe() {
		t.Error("expected a pipe to count as a pipe")
	}
}
