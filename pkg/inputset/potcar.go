package inputset

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WritePotcarSpec writes a potcar.spec file listing one pseudopotential
// symbol per line. Real POTCAR data is licensed, so the listing is the
// default output when no library is configured.
func WritePotcarSpec(path string, symbols []string) error {
	body := strings.Join(symbols, "\n") + "\n"
	if err := os.WriteFile(path, []byte(body), 0644); err != nil {
		return fmt.Errorf("failed to write potcar spec: %w", err)
	}
	return nil
}

// AssemblePotcar concatenates per-species POTCAR files from a
// pseudopotential library laid out as <library>/<symbol>/POTCAR.
func AssemblePotcar(libraryDir string, symbols []string) ([]byte, error) {
	var out []byte
	for _, sym := range symbols {
		path := filepath.Join(libraryDir, sym, "POTCAR")
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("missing pseudopotential %s: %w", sym, err)
		}
		out = append(out, data...)
	}
	return out, nil
}
