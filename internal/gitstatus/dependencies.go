package gitstatus

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
)

// CommandRunner executes external commands in a working directory.
type CommandRunner interface {
	OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error)
}

// Dependencies holds all external dependencies for the gitstatus package.
type Dependencies struct {
	Runner CommandRunner
}

// ExitError reports a command that ran but exited non-zero. It carries the
// exit code so callers can distinguish "not a repository" (128) from other
// failures without depending on exec internals.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("command exited with code %d", e.Code)
}

// realCommandRunner is the production implementation of CommandRunner.
// It forces the C locale so git's free-text output is stable enough to
// pattern-match.
type realCommandRunner struct{}

func (r *realCommandRunner) OutputContext(ctx context.Context, dir, name string, args ...string) ([]byte, error) {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(), "LC_ALL=C", "LANG=C")
	output, err := cmd.Output()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return output, fmt.Errorf("get command output %s: %w", name, &ExitError{Code: exitErr.ExitCode()})
		}
		return nil, fmt.Errorf("get command output %s: %w", name, err)
	}
	return output, nil
}

// NewDefaultDependencies creates production dependencies.
func NewDefaultDependencies() *Dependencies {
	return &Dependencies{
		Runner: &realCommandRunner{},
	}
}

// exitCode extracts the exit code from a wrapped ExitError, or -1 when the
// error did not come from a non-zero exit (spawn failure, timeout).
func exitCode(err error) int {
	var exitErr *ExitError
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return -1
}
