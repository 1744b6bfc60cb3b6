package inputset

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/matforge/matforge/pkg/periodic"
)

// DeckOptions adjust input deck generation.
type DeckOptions struct {
	// GridDensity overrides the preset k-point density when > 0.
	GridDensity int
	// PotcarLibrary is the path to a pseudopotential library. When set, a
	// full POTCAR is assembled; otherwise a potcar.spec listing is written.
	PotcarLibrary string
}

// WriteDeck writes the INCAR, KPOINTS and POTCAR (or potcar.spec) files for a
// composition into dir, creating it if needed. It returns the written file
// names.
func WriteDeck(set InputSet, c periodic.Composition, dir string, opts DeckOptions) ([]string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	var written []string

	incar, err := set.Incar(c)
	if err != nil {
		return nil, fmt.Errorf("failed to build INCAR: %w", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "INCAR"), []byte(incar.String()), 0644); err != nil {
		return nil, fmt.Errorf("failed to write INCAR: %w", err)
	}
	written = append(written, "INCAR")

	kpoints := set.Kpoints(c)
	if opts.GridDensity > 0 {
		kpoints.GridDensity = opts.GridDensity
	}
	if err := os.WriteFile(filepath.Join(dir, "KPOINTS"), []byte(kpoints.String()), 0644); err != nil {
		return nil, fmt.Errorf("failed to write KPOINTS: %w", err)
	}
	written = append(written, "KPOINTS")

	symbols, err := set.PotcarSymbols(c)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve POTCAR symbols: %w", err)
	}
	if opts.PotcarLibrary != "" {
		potcar, err := AssemblePotcar(opts.PotcarLibrary, symbols)
		if err != nil {
			return nil, err
		}
		if err := os.WriteFile(filepath.Join(dir, "POTCAR"), potcar, 0644); err != nil {
			return nil, fmt.Errorf("failed to write POTCAR: %w", err)
		}
		written = append(written, "POTCAR")
	} else {
		if err := WritePotcarSpec(filepath.Join(dir, "potcar.spec"), symbols); err != nil {
			return nil, err
		}
		written = append(written, "potcar.spec")
	}

	return written, nil
}
