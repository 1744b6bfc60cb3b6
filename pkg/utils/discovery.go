package utils

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/matforge/matforge/pkg/cfg"
	"github.com/matforge/matforge/pkg/inputset"
)

// PresetFileInfo contains information about a discovered preset file
type PresetFileInfo struct {
	Path    string
	Presets []*inputset.Preset
}

// DiscoverPresetFiles finds user-defined input-set preset files. It scans the
// inputsets directory of the current project (when inside one) and
// ~/.matforge/inputsets.
func DiscoverPresetFiles() ([]PresetFileInfo, error) {
	var dirs []string

	if root, err := FindProjectRoot(); err == nil {
		dirs = append(dirs, filepath.Join(root, "inputsets"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".matforge", "inputsets"))
	}

	var infos []PresetFileInfo
	for _, dir := range dirs {
		entries, err := os.ReadDir(dir)
		if err != nil {
			continue
		}
		for _, entry := range entries {
			if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".cfg") {
				continue
			}
			path := filepath.Join(dir, entry.Name())
			info, err := loadPresetFile(path)
			if err != nil {
				// Log error but continue scanning
				fmt.Printf("Warning: failed to load %s: %v\n", path, err)
				continue
			}
			infos = append(infos, *info)
		}
	}

	return infos, nil
}

// RegisterDiscovered loads user preset files into the registry. Presets whose
// names collide with already registered sets are skipped with a warning.
func RegisterDiscovered(r *inputset.Registry) error {
	infos, err := DiscoverPresetFiles()
	if err != nil {
		return err
	}
	for _, info := range infos {
		for _, p := range info.Presets {
			p := p
			if err := r.Register(p.Name(), func() inputset.InputSet { return p }); err != nil {
				fmt.Printf("Warning: %s: %v\n", info.Path, err)
			}
		}
	}
	return nil
}

// loadPresetFile parses one preset file
func loadPresetFile(path string) (*PresetFileInfo, error) {
	f, err := cfg.ParseFile(path)
	if err != nil {
		return nil, err
	}
	presets, err := inputset.LoadPresets(f)
	if err != nil {
		return nil, err
	}
	return &PresetFileInfo{Path: path, Presets: presets}, nil
}

// FindProjectRoot finds the project root by looking for go.mod
func FindProjectRoot() (string, error) {
	// Start from current directory
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}

	// Walk up until we find go.mod
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached root without finding go.mod
			return "", fmt.Errorf("could not find project root (no go.mod found)")
		}
		dir = parent
	}
}
