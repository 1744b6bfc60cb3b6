// Package report records run reports for gate and build commands.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// RunReport captures one run of a tooling command.
type RunReport struct {
	ID         string                 `json:"id"`
	Kind       string                 `json:"kind"`
	StartedAt  time.Time              `json:"started_at"`
	FinishedAt time.Time              `json:"finished_at"`
	Passed     bool                   `json:"passed"`
	Details    map[string]interface{} `json:"details,omitempty"`
}

// New starts a report of the given kind.
func New(kind string) *RunReport {
	return &RunReport{
		ID:        uuid.NewString(),
		Kind:      kind,
		StartedAt: time.Now().UTC(),
		Details:   make(map[string]interface{}),
	}
}

// Finish records the outcome and completion time.
func (r *RunReport) Finish(passed bool) {
	r.Passed = passed
	r.FinishedAt = time.Now().UTC()
}

// DefaultDir is where reports are written relative to the repository root.
func DefaultDir() string {
	return filepath.Join(".matforge", "reports")
}

// Write stores the report as JSON under dir and returns the file path.
func (r *RunReport) Write(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report: %w", err)
	}
	path := filepath.Join(dir, r.ID+".json")
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report: %w", err)
	}
	return path, nil
}
