package docs

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		t.Fatal(err)
	}
}

func TestPruneTestPages(t *testing.T) {
	apiDir := t.TempDir()
	writeFile(t, filepath.Join(apiDir, "cfg.md"), "# cfg\n")
	writeFile(t, filepath.Join(apiDir, "cfg_test.md"), "# cfg_test\n")
	writeFile(t, filepath.Join(apiDir, "test_helpers.md"), "# test_helpers\n")
	writeFile(t, filepath.Join(apiDir, "sub", "inputset_test.md"), "# inputset_test\n")

	b := &Builder{APIDir: apiDir}
	removed, err := b.PruneTestPages()
	if err != nil {
		t.Fatalf("Failed to prune: %v", err)
	}
	if removed != 3 {
		t.Errorf("Expected 3 pages removed, got %d", removed)
	}

	if _, err := os.Stat(filepath.Join(apiDir, "cfg.md")); err != nil {
		t.Error("Expected cfg.md to survive pruning")
	}
	if _, err := os.Stat(filepath.Join(apiDir, "cfg_test.md")); !os.IsNotExist(err) {
		t.Error("Expected cfg_test.md to be removed")
	}
}

func TestStripLines(t *testing.T) {
	apiDir := t.TempDir()
	writeFile(t, filepath.Join(apiDir, "a.md"),
		"<!-- Code generated by tool; DO NOT EDIT. -->\n# a\nbody\n")
	writeFile(t, filepath.Join(apiDir, "b.md"), "# b\nno markers here\n")

	b := &Builder{APIDir: apiDir, StripSubstring: "<!-- Code generated"}
	stripped, err := b.StripLines()
	if err != nil {
		t.Fatalf("Failed to strip: %v", err)
	}
	if stripped != 1 {
		t.Errorf("Expected 1 line stripped, got %d", stripped)
	}

	data, err := os.ReadFile(filepath.Join(apiDir, "a.md"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "# a\nbody\n" {
		t.Errorf("Unexpected stripped page:\n%s", data)
	}

	// Untouched file keeps its contents
	data, err = os.ReadFile(filepath.Join(apiDir, "b.md"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "# b\nno markers here\n" {
		t.Errorf("Unexpected untouched page:\n%s", data)
	}
}

func TestStripLinesDisabled(t *testing.T) {
	b := &Builder{APIDir: t.TempDir(), StripSubstring: ""}
	stripped, err := b.StripLines()
	if err != nil {
		t.Fatalf("Failed: %v", err)
	}
	if stripped != 0 {
		t.Errorf("Expected no stripping with empty substring, got %d", stripped)
	}
}

func TestCopyAssets(t *testing.T) {
	srcDir := t.TempDir()
	siteDir := t.TempDir()

	logo := filepath.Join(srcDir, "logo.png")
	css := filepath.Join(srcDir, "extra.css")
	writeFile(t, logo, "PNG")
	writeFile(t, css, "body {}")

	b := &Builder{SiteDir: siteDir, Assets: []string{logo, css}}
	if err := b.CopyAssets(); err != nil {
		t.Fatalf("Failed to copy assets: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(siteDir, "logo.png"))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "PNG" {
		t.Errorf("Unexpected copied asset: %q", data)
	}
}

func TestCopyAssetsMissing(t *testing.T) {
	b := &Builder{
		SiteDir: t.TempDir(),
		Assets:  []string{filepath.Join(t.TempDir(), "missing.png")},
	}
	if err := b.CopyAssets(); err == nil {
		t.Error("Expected error for missing asset")
	}
}
