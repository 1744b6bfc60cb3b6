package precommit

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name   string
		output string
		passed bool
	}{
		{
			name:   "clean output",
			output: "ok  \tmodule/pkg\t0.012s\n",
			passed: true,
		},
		{
			name:   "empty output",
			output: "",
			passed: true,
		},
		{
			name:   "explicit error",
			output: "--- FAIL: TestThing\nError: assertion failed\n",
			passed: false,
		},
		{
			// The substring check is naive on purpose; a summary line
			// mentioning zero errors still aborts the commit.
			name:   "zero errors summary",
			output: "3 tests run, 0 Errors\n",
			passed: false,
		},
		{
			name:   "lowercase error passes",
			output: "no errors here\n",
			passed: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Evaluate(tt.output)
			if result.Passed != tt.passed {
				t.Errorf("Expected passed=%v for %q, got %v", tt.passed, tt.output, result.Passed)
			}
			if result.Output != tt.output {
				t.Errorf("Expected output to be preserved")
			}
		})
	}
}

func TestRun(t *testing.T) {
	r := &Runner{TestCommand: []string{"echo", "all good"}}
	result, err := r.Run(context.Background())
	if err != nil {
		t.Fatalf("Failed to run: %v", err)
	}
	if !result.Passed {
		t.Errorf("Expected clean run to pass, output: %q", result.Output)
	}

	// A non-zero exit alone is not a failure signal
	r = &Runner{TestCommand: []string{"sh", "-c", "echo fine; exit 1"}}
	result, err = r.Run(context.Background())
	if err != nil {
		t.Fatalf("Failed to run: %v", err)
	}
	if !result.Passed {
		t.Errorf("Expected run without Error output to pass, output: %q", result.Output)
	}

	// Failure is signalled by the output
	r = &Runner{TestCommand: []string{"sh", "-c", "echo 'Error: boom'; exit 1"}}
	result, err = r.Run(context.Background())
	if err != nil {
		t.Fatalf("Failed to run: %v", err)
	}
	if result.Passed {
		t.Errorf("Expected run with Error output to fail, output: %q", result.Output)
	}
}

func TestRunErrors(t *testing.T) {
	r := &Runner{}
	if _, err := r.Run(context.Background()); err == nil {
		t.Error("Expected error for empty test command")
	}

	r = &Runner{TestCommand: []string{"definitely-not-a-command-9c1b"}}
	if _, err := r.Run(context.Background()); err == nil {
		t.Error("Expected error for missing command")
	}
}

func TestHookInstall(t *testing.T) {
	repo := t.TempDir()
	if err := os.MkdirAll(filepath.Join(repo, ".git"), 0755); err != nil {
		t.Fatal(err)
	}

	if IsInstalled(repo) {
		t.Error("Expected hook not to be installed yet")
	}

	path, err := Install(repo)
	if err != nil {
		t.Fatalf("Failed to install hook: %v", err)
	}
	if path != filepath.Join(repo, ".git", "hooks", "pre-commit") {
		t.Errorf("Unexpected hook path: %s", path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read hook: %v", err)
	}
	if !strings.HasPrefix(string(data), "#!/bin/sh") {
		t.Errorf("Hook missing shebang:\n%s", data)
	}
	if !strings.Contains(string(data), "matforge hooks run") {
		t.Errorf("Hook missing run command:\n%s", data)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode()&0111 == 0 {
		t.Error("Expected hook to be executable")
	}

	if !IsInstalled(repo) {
		t.Error("Expected hook to be reported as installed")
	}

	// Installation works from a subdirectory too
	sub := filepath.Join(repo, "pkg", "deep")
	if err := os.MkdirAll(sub, 0755); err != nil {
		t.Fatal(err)
	}
	if !IsInstalled(sub) {
		t.Error("Expected hook to be found from a subdirectory")
	}
}

func TestHookPathOutsideRepo(t *testing.T) {
	if _, err := HookPath(t.TempDir()); err == nil {
		t.Error("Expected error outside a git repository")
	}
}
