// Package precommit implements the pre-commit gate: run the test command and
// fail when its combined output contains the failure signal.
package precommit

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// FailureSignal is the substring that marks a failed run. The match is
// deliberately naive: output such as "3 tests run, 0 Errors" also trips it.
// That false positive is accepted behavior.
const FailureSignal = "Error"

// Fixed verdict messages printed after the captured output.
const (
	FailureMessage = "Tests failed. Commit aborted."
	SuccessMessage = "All tests passed."
)

// Runner executes the test command for the pre-commit gate.
type Runner struct {
	// TestCommand is the command whose combined output is inspected.
	TestCommand []string
	// Dir is the working directory for the test command.
	Dir string
}

// Result holds the outcome of one pre-commit run.
type Result struct {
	Output string
	Passed bool
}

// NewRunner returns a runner with the default test command.
func NewRunner() *Runner {
	return &Runner{
		TestCommand: []string{"go", "test", "./..."},
	}
}

// Run executes the test command and inspects its combined output. A non-zero
// exit status of the test command is not itself a failure signal; only the
// output substring is.
func (r *Runner) Run(ctx context.Context) (*Result, error) {
	if len(r.TestCommand) == 0 {
		return nil, fmt.Errorf("no test command configured")
	}

	cmd := exec.CommandContext(ctx, r.TestCommand[0], r.TestCommand[1:]...)
	cmd.Dir = r.Dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		var exitErr *exec.ExitError
		if !errors.As(err, &exitErr) {
			return nil, fmt.Errorf("failed to run %s: %w", r.TestCommand[0], err)
		}
	}

	return Evaluate(string(out)), nil
}

// Evaluate applies the substring check to captured output.
func Evaluate(output string) *Result {
	return &Result{
		Output: output,
		Passed: !strings.Contains(output, FailureSignal),
	}
}

// hookScript is the stub installed into .git/hooks/pre-commit.
const hookScript = `#!/bin/sh
# Installed by matforge hooks install.
exec matforge hooks run
`

// HookPath returns the pre-commit hook path for the repository containing
// dir, walking upward until a .git directory is found.
func HookPath(dir string) (string, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}
	for {
		gitDir := filepath.Join(abs, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return filepath.Join(gitDir, "hooks", "pre-commit"), nil
		}
		parent := filepath.Dir(abs)
		if parent == abs {
			return "", fmt.Errorf("not inside a git repository")
		}
		abs = parent
	}
}

// Install writes the pre-commit hook stub and returns its path.
func Install(dir string) (string, error) {
	path, err := HookPath(dir)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create hooks directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(hookScript), 0755); err != nil {
		return "", fmt.Errorf("failed to write hook: %w", err)
	}
	return path, nil
}

// IsInstalled reports whether the pre-commit hook stub is present.
func IsInstalled(dir string) bool {
	path, err := HookPath(dir)
	if err != nil {
		return false
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return false
	}
	return strings.Contains(string(data), "matforge hooks run")
}
