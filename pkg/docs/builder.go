// Package docs implements the documentation build pipeline: generate API
// pages, prune test-module pages, strip generator noise, build the HTML site
// and copy static assets.
package docs

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/matforge/matforge/pkg/logger"
)

// Builder runs the documentation pipeline. The steps are fixed and run in
// order; the first failing step aborts the build.
type Builder struct {
	// APIDir receives the generated API pages.
	APIDir string
	// SiteDir receives the built HTML site.
	SiteDir string
	// GeneratorCommand produces the API pages.
	GeneratorCommand []string
	// SiteCommand builds the HTML site from the pages.
	SiteCommand []string
	// StripSubstring: lines containing it are removed from every generated
	// page.
	StripSubstring string
	// Assets are static files copied into SiteDir after the build.
	Assets []string
}

// NewBuilder returns a builder with the default pipeline configuration.
func NewBuilder() *Builder {
	return &Builder{
		APIDir:           filepath.Join("docs", "api"),
		SiteDir:          "site",
		GeneratorCommand: []string{"gomarkdoc", "--output", "docs/api/{{.Dir}}.md", "./..."},
		SiteCommand:      []string{"mkdocs", "build"},
		StripSubstring:   "<!-- Code generated",
		Assets: []string{
			filepath.Join("docs", "assets", "logo.png"),
			filepath.Join("docs", "assets", "favicon.ico"),
			filepath.Join("docs", "assets", "extra.css"),
		},
	}
}

// Build runs the full pipeline.
func (b *Builder) Build(ctx context.Context) error {
	if err := logger.WithSpinner("Generating API pages", func() error {
		return b.runCommand(ctx, b.GeneratorCommand)
	}); err != nil {
		return err
	}

	pruned, err := b.PruneTestPages()
	if err != nil {
		return err
	}
	if pruned > 0 {
		logger.Infof("Removed %d test-module pages", pruned)
	}

	stripped, err := b.StripLines()
	if err != nil {
		return err
	}
	if stripped > 0 {
		logger.Infof("Stripped %d generator marker lines", stripped)
	}

	if err := logger.WithSpinner("Building HTML site", func() error {
		return b.runCommand(ctx, b.SiteCommand)
	}); err != nil {
		return err
	}

	return b.CopyAssets()
}

func (b *Builder) runCommand(ctx context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("no command configured")
	}
	cmd := exec.CommandContext(ctx, args[0], args[1:]...)
	out, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("%s failed: %w\n%s", args[0], err, string(out))
	}
	return nil
}

// PruneTestPages deletes generated pages for test modules and returns how
// many were removed.
func (b *Builder) PruneTestPages() (int, error) {
	removed := 0
	err := filepath.WalkDir(b.APIDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		name := d.Name()
		if strings.Contains(name, "_test") || strings.HasPrefix(name, "test_") {
			if err := os.Remove(path); err != nil {
				return fmt.Errorf("failed to remove %s: %w", path, err)
			}
			removed++
		}
		return nil
	})
	if err != nil {
		return removed, fmt.Errorf("failed to prune test pages: %w", err)
	}
	return removed, nil
}

// StripLines removes lines containing StripSubstring from every generated
// page and returns how many lines were dropped.
func (b *Builder) StripLines() (int, error) {
	if b.StripSubstring == "" {
		return 0, nil
	}
	stripped := 0
	err := filepath.WalkDir(b.APIDir, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		lines := strings.Split(string(data), "\n")
		kept := lines[:0]
		for _, line := range lines {
			if strings.Contains(line, b.StripSubstring) {
				stripped++
				continue
			}
			kept = append(kept, line)
		}
		if len(kept) == len(lines) {
			return nil
		}
		return os.WriteFile(path, []byte(strings.Join(kept, "\n")), 0644)
	})
	if err != nil {
		return stripped, fmt.Errorf("failed to strip pages: %w", err)
	}
	return stripped, nil
}

// CopyAssets copies the static asset files into the site tree. Missing assets
// are an error: the pipeline has no optional steps.
func (b *Builder) CopyAssets() error {
	for _, asset := range b.Assets {
		data, err := os.ReadFile(asset)
		if err != nil {
			return fmt.Errorf("failed to read asset %s: %w", asset, err)
		}
		dst := filepath.Join(b.SiteDir, filepath.Base(asset))
		if err := os.MkdirAll(filepath.Dir(dst), 0755); err != nil {
			return err
		}
		if err := os.WriteFile(dst, data, 0644); err != nil {
			return fmt.Errorf("failed to copy asset %s: %w", asset, err)
		}
	}
	return nil
}
