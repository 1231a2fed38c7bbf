package runner

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/jeffrom/gitcommits/config"
)

func TestCheckCommits(t *testing.T) {
	tcs := []struct {
		name      string
		overrides *config.Config
		messages  []string
		expectErr []error
	}{
		{
			name:     "ok",
			messages: []string{"feat: add thing", "fix(api)!: drop v1"},
		},
		{
			name:      "not-conventional",
			messages:  []string{"add thing"},
			expectErr: []error{ErrNotConventional},
		},
		{
			name:      "allowed-types",
			overrides: &config.Config{AllowedTypes: []string{"feat", "fix"}},
			messages:  []string{"Feat: ok", "chore: nope"},
			expectErr: []error{ErrDisallowedType},
		},
		{
			name:      "allowed-scopes",
			overrides: &config.Config{AllowedScopes: []string{"api"}},
			messages:  []string{"feat(api): ok", "feat: no scope is fine", "feat(ui): nope"},
			expectErr: []error{ErrDisallowedScope},
		},
		{
			name:      "type-and-scope",
			overrides: &config.Config{AllowedTypes: []string{"feat"}, AllowedScopes: []string{"api"}},
			messages:  []string{"chore(ui): nope"},
			expectErr: []error{ErrDisallowedType, ErrDisallowedScope},
		},
		{
			name: "comments-dropped",
			messages: []string{
				"feat: add thing\n\nsome body\n# Please enter the commit message\n# Lines starting with '#' are ignored\n",
			},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			rnr, _, _ := newTestRunner(t, tc.overrides)
			commits, err := rnr.CheckCommits(context.Background(), tc.messages)
			if len(tc.expectErr) == 0 {
				if err != nil {
					t.Fatal(err)
				}
				if len(commits) != len(tc.messages) {
					t.Fatalf("expected %d commits, got %d", len(tc.messages), len(commits))
				}
				return
			}

			var failure CheckFailure
			if !errors.As(err, &failure) {
				t.Fatalf("expected CheckFailure, got %v", err)
			}
			if !errors.Is(err, CheckFailure{}) {
				t.Error("expected errors.Is to match CheckFailure")
			}
			if len(failure.Failures) != len(tc.expectErr) {
				t.Fatalf("expected %d failures, got %d: %v", len(tc.expectErr), len(failure.Failures), failure.Failures)
			}
			for i, expect := range tc.expectErr {
				if !errors.Is(failure.Failures[i], expect) {
					t.Errorf("failure %d: expected %v, got %v", i, expect, failure.Failures[i])
				}
			}
		})
	}
}

func TestParseMessage(t *testing.T) {
	raw := parseMessage("feat: add thing\r\n\r\nfirst\r\n# comment\r\nCo-authored-by: Bob <bob@example.com>\r\n")
	if raw.Message != "feat: add thing" {
		t.Errorf("expected subject %q, got %q", "feat: add thing", raw.Message)
	}
	if expect := "first\nCo-authored-by: Bob <bob@example.com>"; raw.Body != expect {
		t.Errorf("expected body %q, got %q", expect, raw.Body)
	}

	raw = parseMessage("fix: oneline\n")
	if raw.Message != "fix: oneline" || raw.Body != "" {
		t.Errorf("unexpected one-line parse: %#v", raw)
	}
}

func TestCheckReadCommit(t *testing.T) {
	rnr, _, _ := newTestRunner(t, nil)
	commits, err := rnr.CheckReadCommit(context.Background(), strings.NewReader("feat(cli): add check\n\nCo-authored-by: Bob <bob@example.com>\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(commits) != 1 {
		t.Fatalf("expected 1 commit, got %d", len(commits))
	}
	if n := len(commits[0].Authors); n != 2 {
		t.Errorf("expected 2 authors, got %d", n)
	}

	if _, err := rnr.CheckReadCommit(context.Background(), strings.NewReader("wip")); err == nil {
		t.Fatal("expected non-conventional message to fail")
	}
}

func TestCheckCommitsFromGit(t *testing.T) {
	rnr, _, _ := newTestRunner(t, nil, testRecords...)
	_, err := rnr.CheckCommitsFromGit(context.Background())

	var failure CheckFailure
	if !errors.As(err, &failure) {
		t.Fatalf("expected CheckFailure, got %v", err)
	}
	if len(failure.Failures) != 1 {
		t.Fatalf("expected 1 failure, got %d", len(failure.Failures))
	}

	b := &bytes.Buffer{}
	if err := failure.WriteFailure(b); err != nil {
		t.Fatal(err)
	}
	expect := "ccccccc update readme\n  commit is not conventional\n"
	if diff := cmp.Diff(expect, b.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteFailureGroupsByCommit(t *testing.T) {
	rnr, _, _ := newTestRunner(t, &config.Config{AllowedTypes: []string{"feat"}, AllowedScopes: []string{"api"}})
	_, err := rnr.CheckCommits(context.Background(), []string{"chore(ui): nope", "wip"})

	var failure CheckFailure
	if !errors.As(err, &failure) {
		t.Fatalf("expected CheckFailure, got %v", err)
	}
	b := &bytes.Buffer{}
	if err := failure.WriteFailure(b); err != nil {
		t.Fatal(err)
	}
	expect := `chore(ui): nope
  commit type is disallowed: "chore"
  scope is disallowed: "ui"
wip
  commit is not conventional
`
	if diff := cmp.Diff(expect, b.String()); diff != "" {
		t.Errorf("output mismatch (-want +got):\n%s", diff)
	}
}
