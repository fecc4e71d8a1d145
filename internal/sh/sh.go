package sh

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
)

type DirectoryPath string

// CommandError is returned when a command ran but exited non-zero.
type CommandError struct {
	Command  []string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("%s failed (exit %d): %s", strings.Join(e.Command, " "), e.ExitCode, e.Stderr)
	}
	return fmt.Sprintf("%s failed (exit %d)", strings.Join(e.Command, " "), e.ExitCode)
}

// ExecuteCommand runs name with args in cwd and returns trimmed stdout. The arguments are passed
// straight to the process, never through a shell, so URLs need no quoting.
// A missing executable surfaces as an error wrapping exec.ErrNotFound.
func ExecuteCommand(ctx context.Context, cwd DirectoryPath, name string, args ...string) (string, error) {
	return ExecuteCommandWithEnv(ctx, cwd, nil, name, args...)
}

// ExecuteCommandWithEnv is ExecuteCommand with extra KEY=value entries added to the inherited environment.
func ExecuteCommandWithEnv(ctx context.Context, cwd DirectoryPath, env []string, name string, args ...string) (string, error) {
	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = string(cwd)
	cmd.Env = append(os.Environ(), env...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return "", &CommandError{
				Command:  append([]string{name}, args...),
				ExitCode: exitErr.ExitCode(),
				Stderr:   strings.TrimSpace(stderr.String()),
			}
		}
		return "", err
	}
	return strings.TrimSpace(stdout.String()), nil
}
