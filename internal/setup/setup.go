package setup

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gg/internal/color"
	"gg/internal/ext"
	"gg/internal/log"
)

const (
	BlockStart = "# --- gg ---"
	BlockEnd   = "# --- end gg ---"

	installedMarker = "-i zsh)\""
)

var ErrUnexpectedEOF = errors.New("unexpected end of input")

// Wizard asks a few questions on stderr and appends the resulting block to ~/.zshrc.
type Wizard struct {
	Home            string
	ExePath         string
	VSCodeInstalled bool

	in     *bufio.Reader
	stdout io.Writer
	stderr io.Writer
}

func NewWizard(home, exePath string, vscodeInstalled bool, stdin io.Reader, stdout, stderr io.Writer) *Wizard {
	return &Wizard{
		Home:            home,
		ExePath:         exePath,
		VSCodeInstalled: vscodeInstalled,
		in:              bufio.NewReader(stdin),
		stdout:          stdout,
		stderr:          stderr,
	}
}

func (w *Wizard) Run() error {
	zshrc := filepath.Join(w.Home, ".zshrc")

	if content, err := os.ReadFile(zshrc); err == nil && strings.Contains(string(content), installedMarker) {
		fmt.Fprintf(w.stderr, "gg is already installed in %s\n", color.FgCyan("%s", ext.ReplaceHomeDirWithTilde(zshrc)))
		return nil
	}

	lines, err := w.ask()
	if err != nil {
		return err
	}
	block := BlockStart + "\n" + strings.Join(lines, "\n") + "\n" + BlockEnd + "\n"

	fmt.Fprintln(w.stderr)
	fmt.Fprintln(w.stderr, color.Bold("Generated configuration:"))
	fmt.Fprintln(w.stderr)
	for _, line := range strings.Split(strings.TrimSuffix(block, "\n"), "\n") {
		fmt.Fprintf(w.stderr, "  %s\n", line)
	}
	fmt.Fprintln(w.stderr)

	action, err := w.prompt(fmt.Sprintf("Append to %s? [Y/n/print]", ext.ReplaceHomeDirWithTilde(zshrc)), "y")
	if err != nil {
		return err
	}

	switch strings.ToLower(action) {
	case "y", "yes", "":
		if err := appendBlock(zshrc, block); err != nil {
			return err
		}
		logger.Log.Debugf("Appended gg block to %s", zshrc)
		fmt.Fprintf(w.stderr, "%s Open a new shell to activate gg.\n", color.FgGreen("Installed!"))
	case "print", "p":
		_, err := io.WriteString(w.stdout, block)
		return err
	default:
		fmt.Fprintln(w.stderr, "No changes made.")
	}
	return nil
}

func (w *Wizard) ask() ([]string, error) {
	var lines []string

	root, err := w.prompt("Repo root directory", "~/work")
	if err != nil {
		return nil, err
	}
	if root != "~/work" {
		lines = append(lines, "export GGROOT="+root)
	}

	protocol, err := w.prompt("Default git protocol [ssh/https]", "ssh")
	if err != nil {
		return nil, err
	}
	if protocol == "https" {
		lines = append(lines, "export GGHTTP=1")
	}

	viewerLine, err := w.askViewer()
	if err != nil {
		return nil, err
	}
	if viewerLine != "" {
		lines = append(lines, viewerLine)
	}

	lines = append(lines, fmt.Sprintf("eval \"$(%s -i zsh)\"", w.ExePath))

	fmt.Fprintln(w.stderr)
	fmt.Fprintf(w.stderr, "You can add shorthand aliases, e.g., %s creates a\n", color.FgGreen("ghg github.com"))
	fmt.Fprintf(w.stderr, "command %s that prefixes its argument with %s.\n", color.FgGreen("ghg"), color.FgGreen("github.com"))
	for {
		alias, err := w.prompt("Add alias (CMD PREFIX, or Enter to skip)", "")
		if err != nil {
			return nil, err
		}
		if alias == "" {
			break
		}
		command, prefix, ok := strings.Cut(alias, " ")
		prefix = strings.TrimSpace(prefix)
		if !ok || prefix == "" {
			fmt.Fprintln(w.stderr, "  Expected: CMD PREFIX (e.g., ghg github.com)")
			continue
		}
		lines = append(lines, fmt.Sprintf("eval \"$(%s -i zsh %s %s)\"", w.ExePath, command, prefix))
	}
	return lines, nil
}

// askViewer returns the export line for GGDIRVIEWER, or "" when the default applies.
func (w *Wizard) askViewer() (string, error) {
	if w.VSCodeInstalled {
		answer, err := w.prompt("Open repos in VSCode after clone? [Y/n/-]", "y")
		if err != nil {
			return "", err
		}
		switch answer {
		case "n", "N":
		case "-":
			return "export GGDIRVIEWER=-", nil
		default:
			return "", nil
		}
	}

	viewer, err := w.prompt("Command to open repos after clone (or - for none)", "-")
	if err != nil {
		return "", err
	}
	if viewer == "" {
		return "", nil
	}
	return "export GGDIRVIEWER=" + viewer, nil
}

func (w *Wizard) prompt(question, defaultValue string) (string, error) {
	if defaultValue == "" {
		fmt.Fprintf(w.stderr, "%s: ", question)
	} else {
		fmt.Fprintf(w.stderr, "%s [%s]: ", question, defaultValue)
	}

	line, err := w.in.ReadString('\n')
	if err == io.EOF && line == "" {
		return "", ErrUnexpectedEOF
	}
	if err != nil && err != io.EOF {
		return "", err
	}

	input := strings.TrimSpace(line)
	if input == "" {
		return defaultValue, nil
	}
	return input, nil
}

func appendBlock(path, block string) error {
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("could not open %s: %w", path, err)
	}
	defer func(file *os.File) {
		err := file.Close()
		if err != nil {
			logger.Log.Errorf("failed to close %s: %v", path, err)
		}
	}(file)

	if _, err := file.WriteString("\n" + block); err != nil {
		return fmt.Errorf("failed to write to %s: %w", path, err)
	}
	return nil
}
