package gitremote

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

func TestNewProber(t *testing.T) {
	tests := []struct {
		name     string
		expected interface{}
	}{
		{"", &LsRemoteProber{}},
		{"git", &LsRemoteProber{}},
		{"go-git", &GoGitProber{}},
	}
	for _, tt := range tests {
		prober, err := NewProber(tt.name)
		if err != nil {
			t.Fatalf("NewProber(%q): %v", tt.name, err)
		}
		switch tt.expected.(type) {
		case *LsRemoteProber:
			if _, ok := prober.(*LsRemoteProber); !ok {
				t.Errorf("NewProber(%q): expected LsRemoteProber, got %T", tt.name, prober)
			}
		case *GoGitProber:
			if _, ok := prober.(*GoGitProber); !ok {
				t.Errorf("NewProber(%q): expected GoGitProber, got %T", tt.name, prober)
			}
		}
	}

	if _, err := NewProber("svn"); err == nil {
		t.Error("expected an error for an unknown probe")
	}
}

func TestLsRemoteProber_MissingTool(t *testing.T) {
	prober := &LsRemoteProber{GitPath: "gg-test-no-such-git"}
	err := prober.Probe(context.Background(), "git@github.com:org/repo.git")
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("expected a missing git to fail the probe with exec.ErrNotFound, got %v", err)
	}
}

func TestLsRemoteProber_DisablesTerminalPrompt(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("needs a POSIX sh")
	}
	t.Setenv("GIT_TERMINAL_PROMPT", "1")

	// stand-in git that only succeeds when prompting is off and it was asked to list url
	fakeGit := filepath.Join(t.TempDir(), "git")
	script := "#!/bin/sh\n[ \"$GIT_TERMINAL_PROMPT\" = 0 ] && [ \"$1\" = ls-remote ] && [ \"$2\" = https://example.com/org/repo.git ]\n"
	if err := os.WriteFile(fakeGit, []byte(script), 0o755); err != nil {
		t.Fatal(err)
	}

	err := (&LsRemoteProber{GitPath: fakeGit}).Probe(context.Background(), "https://example.com/org/repo.git")
	if err != nil {
		t.Errorf("expected git to run with GIT_TERMINAL_PROMPT=0, got %v", err)
	}
}

func TestGoGitProber_UnreachableRemote(t *testing.T) {
	// file transport against a path that does not exist fails without touching the network
	err := (&GoGitProber{}).Probe(context.Background(), "file:///gg-test/does/not/exist.git")
	if err == nil {
		t.Error("expected probe of a missing repository to fail")
	}
}
