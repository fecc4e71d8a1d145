package setup

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gg/internal/color"
)

type viewerAnswer int

const (
	acceptDefault viewerAnswer = iota
	noViewer
	customViewer
)

// answers builds stdin for the wizard: root, protocol, viewer, aliases, then the final action.
func answers(vscode bool, root, protocol string, viewer viewerAnswer, custom string, aliases []string, action string) string {
	lines := []string{root, protocol}
	switch viewer {
	case acceptDefault:
		lines = append(lines, "")
	case noViewer:
		if vscode {
			lines = append(lines, "n")
		}
		lines = append(lines, "-")
	case customViewer:
		if vscode {
			lines = append(lines, "n")
		}
		lines = append(lines, custom)
	}
	lines = append(lines, aliases...)
	lines = append(lines, "", action)
	return strings.Join(lines, "\n") + "\n"
}

type setupResult struct {
	stdout string
	stderr string
	zshrc  string
	err    error
}

func runWizard(t *testing.T, home string, vscode bool, input string) setupResult {
	t.Helper()
	color.SetEnabled(false)
	var stdout, stderr bytes.Buffer
	err := NewWizard(home, "/usr/local/bin/gg", vscode, strings.NewReader(input), &stdout, &stderr).Run()
	content, _ := os.ReadFile(filepath.Join(home, ".zshrc"))
	return setupResult{stdout: stdout.String(), stderr: stderr.String(), zshrc: string(content), err: err}
}

func TestWizard_AlreadyInstalled(t *testing.T) {
	home := t.TempDir()
	existing := "eval \"$(gg -i zsh)\"\n"
	if err := os.WriteFile(filepath.Join(home, ".zshrc"), []byte(existing), 0o644); err != nil {
		t.Fatal(err)
	}

	r := runWizard(t, home, false, "")
	if r.err != nil {
		t.Fatalf("unexpected error: %v", r.err)
	}
	if !strings.Contains(r.stderr, "already installed") {
		t.Errorf("expected already installed notice, got %q", r.stderr)
	}
	if r.zshrc != existing {
		t.Errorf("expected .zshrc unchanged, got %q", r.zshrc)
	}
}

func TestWizard_DefaultsAppend(t *testing.T) {
	for _, vscode := range []bool{false, true} {
		home := t.TempDir()
		r := runWizard(t, home, vscode, answers(vscode, "", "", acceptDefault, "", nil, "y"))
		if r.err != nil {
			t.Fatalf("vscode=%v: unexpected error: %v", vscode, r.err)
		}
		for _, expected := range []string{BlockStart, BlockEnd, "-i zsh)\""} {
			if !strings.Contains(r.zshrc, expected) {
				t.Errorf("vscode=%v: expected %q in .zshrc:\n%s", vscode, expected, r.zshrc)
			}
		}
		if strings.Contains(r.zshrc, "export GGROOT") || strings.Contains(r.zshrc, "export GGHTTP") {
			t.Errorf("vscode=%v: defaults must not export GGROOT or GGHTTP:\n%s", vscode, r.zshrc)
		}
		if !strings.Contains(r.stderr, "Installed!") {
			t.Errorf("vscode=%v: expected confirmation, got %q", vscode, r.stderr)
		}
	}
}

func TestWizard_FullConfig(t *testing.T) {
	home := t.TempDir()
	input := answers(false, "~/code", "https", customViewer, "subl", []string{"gh github.com", "gl gitlab.com"}, "y")
	r := runWizard(t, home, false, input)
	if r.err != nil {
		t.Fatalf("unexpected error: %v", r.err)
	}

	expected := "\n" + BlockStart + "\n" +
		"export GGROOT=~/code\n" +
		"export GGHTTP=1\n" +
		"export GGDIRVIEWER=subl\n" +
		"eval \"$(/usr/local/bin/gg -i zsh)\"\n" +
		"eval \"$(/usr/local/bin/gg -i zsh gh github.com)\"\n" +
		"eval \"$(/usr/local/bin/gg -i zsh gl gitlab.com)\"\n" +
		BlockEnd + "\n"
	if r.zshrc != expected {
		t.Errorf("\nexpected %q\n     got %q", expected, r.zshrc)
	}
}

func TestWizard_NoViewerWithVSCode(t *testing.T) {
	home := t.TempDir()
	r := runWizard(t, home, true, answers(true, "", "", noViewer, "", nil, "y"))
	if r.err != nil {
		t.Fatalf("unexpected error: %v", r.err)
	}
	if !strings.Contains(r.zshrc, "export GGDIRVIEWER=-") {
		t.Errorf("expected viewer disabled:\n%s", r.zshrc)
	}
}

func TestWizard_InvalidAliasIsRetried(t *testing.T) {
	home := t.TempDir()
	r := runWizard(t, home, false, answers(false, "", "", acceptDefault, "", []string{"ghg", "ghg github.com"}, "y"))
	if r.err != nil {
		t.Fatalf("unexpected error: %v", r.err)
	}
	if !strings.Contains(r.stderr, "Expected: CMD PREFIX") {
		t.Errorf("expected usage hint for a bad alias, got %q", r.stderr)
	}
	if !strings.Contains(r.zshrc, "-i zsh ghg github.com)\"") {
		t.Errorf("expected the corrected alias:\n%s", r.zshrc)
	}
}

func TestWizard_PreservesExistingContent(t *testing.T) {
	home := t.TempDir()
	existing := "# My existing config\nexport PATH=$HOME/bin:$PATH\n"
	if err := os.WriteFile(filepath.Join(home, ".zshrc"), []byte(existing), 0o644); err != nil {
		t.Fatal(err)
	}

	r := runWizard(t, home, false, answers(false, "", "", acceptDefault, "", nil, "y"))
	if r.err != nil {
		t.Fatalf("unexpected error: %v", r.err)
	}
	if !strings.HasPrefix(r.zshrc, existing) {
		t.Errorf("expected existing content first:\n%s", r.zshrc)
	}
	if !strings.Contains(r.zshrc, BlockStart) {
		t.Errorf("expected block appended:\n%s", r.zshrc)
	}
}

func TestWizard_Decline(t *testing.T) {
	home := t.TempDir()
	r := runWizard(t, home, false, answers(false, "", "", acceptDefault, "", nil, "n"))
	if r.err != nil {
		t.Fatalf("unexpected error: %v", r.err)
	}
	if _, err := os.Stat(filepath.Join(home, ".zshrc")); !os.IsNotExist(err) {
		t.Error("expected no .zshrc to be written")
	}
	if !strings.Contains(r.stderr, "No changes made") {
		t.Errorf("expected no-change notice, got %q", r.stderr)
	}
}

func TestWizard_Print(t *testing.T) {
	home := t.TempDir()
	r := runWizard(t, home, false, answers(false, "", "", acceptDefault, "", nil, "print"))
	if r.err != nil {
		t.Fatalf("unexpected error: %v", r.err)
	}
	if _, err := os.Stat(filepath.Join(home, ".zshrc")); !os.IsNotExist(err) {
		t.Error("expected no .zshrc to be written")
	}
	if !strings.HasPrefix(r.stdout, BlockStart+"\n") || !strings.HasSuffix(r.stdout, BlockEnd+"\n") {
		t.Errorf("expected the block on stdout, got %q", r.stdout)
	}
}

func TestWizard_UnexpectedEOF(t *testing.T) {
	home := t.TempDir()
	r := runWizard(t, home, false, "~/work\n")
	if !errors.Is(r.err, ErrUnexpectedEOF) {
		t.Errorf("expected ErrUnexpectedEOF, got %v", r.err)
	}
}
