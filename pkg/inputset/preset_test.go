package inputset

import (
	"math"
	"strings"
	"testing"

	"github.com/matforge/matforge/pkg/cfg"
	"github.com/matforge/matforge/pkg/periodic"
)

func mustParse(t *testing.T, formula string) periodic.Composition {
	t.Helper()
	c, err := periodic.ParseFormula(formula)
	if err != nil {
		t.Fatalf("Failed to parse %s: %v", formula, err)
	}
	return c
}

func mustGet(t *testing.T, name string) InputSet {
	t.Helper()
	set, err := DefaultRegistry.Get(name)
	if err != nil {
		t.Fatalf("Failed to get input set %s: %v", name, err)
	}
	return set
}

func TestBuiltinPresetsRegistered(t *testing.T) {
	names := DefaultRegistry.List()

	found := make(map[string]bool)
	for _, n := range names {
		found[n] = true
	}
	for _, want := range []string{"MaterialsProject", "MIT"} {
		if !found[want] {
			t.Errorf("Expected built-in input set %s to be registered, got %v", want, names)
		}
	}

	mp := mustGet(t, "MaterialsProject")
	if mp.Description() == "" {
		t.Error("Expected MaterialsProject to carry a description")
	}
}

func TestIncarWithLDAU(t *testing.T) {
	set := mustGet(t, "MaterialsProject")
	c := mustParse(t, "LiFePO4")

	inc, err := set.Incar(c)
	if err != nil {
		t.Fatalf("Failed to build INCAR: %v", err)
	}

	// Scalars are carried over verbatim
	if inc["ENCUT"] != 520 {
		t.Errorf("Expected ENCUT 520, got %v", inc["ENCUT"])
	}
	if inc["ALGO"] != "Fast" {
		t.Errorf("Expected ALGO 'Fast', got %v", inc["ALGO"])
	}
	if inc["LDAU"] != true {
		t.Errorf("Expected LDAU true, got %v", inc["LDAU"])
	}

	// EDIFF_PER_ATOM is scaled by the atom count
	ediff, ok := inc["EDIFF"].(float64)
	if !ok {
		t.Fatalf("Expected EDIFF to be a float, got %T", inc["EDIFF"])
	}
	if math.Abs(ediff-7*5e-05) > 1e-12 {
		t.Errorf("Expected EDIFF 3.5e-04, got %v", ediff)
	}
	if _, ok := inc["EDIFF_PER_ATOM"]; ok {
		t.Error("EDIFF_PER_ATOM must not appear in the INCAR")
	}

	// Element tables expand over the species sorted by electronegativity:
	// Li, Fe, P, O
	ldauu, ok := inc["LDAUU"].([]float64)
	if !ok {
		t.Fatalf("Expected LDAUU to be a float list, got %T", inc["LDAUU"])
	}
	expected := []float64{0, 5.3, 0, 0}
	if len(ldauu) != len(expected) {
		t.Fatalf("Expected %d LDAUU values, got %d", len(expected), len(ldauu))
	}
	for i, want := range expected {
		if ldauu[i] != want {
			t.Errorf("Expected LDAUU[%d] %v, got %v", i, want, ldauu[i])
		}
	}

	// MAGMOM is run-length encoded per species
	moments, ok := inc["MAGMOM"].([]Magmom)
	if !ok {
		t.Fatalf("Expected MAGMOM to be a moment list, got %T", inc["MAGMOM"])
	}
	wantMoments := []Magmom{
		{Count: 1, Value: 0.6},
		{Count: 1, Value: 5},
		{Count: 1, Value: 0.6},
		{Count: 4, Value: 0.6},
	}
	if len(moments) != len(wantMoments) {
		t.Fatalf("Expected %d MAGMOM groups, got %d", len(wantMoments), len(moments))
	}
	for i, want := range wantMoments {
		if moments[i] != want {
			t.Errorf("Expected MAGMOM[%d] %+v, got %+v", i, want, moments[i])
		}
	}
}

func TestIncarWithoutLDAU(t *testing.T) {
	set := mustGet(t, "MaterialsProject")

	// Co carries a U value but there is no O or F present
	inc, err := set.Incar(mustParse(t, "CoS"))
	if err != nil {
		t.Fatalf("Failed to build INCAR: %v", err)
	}
	for _, key := range []string{"LDAU", "LDAUJ", "LDAUL", "LDAUU", "LDAUTYPE", "LDAUPRINT", "LMAXMIX"} {
		if _, ok := inc[key]; ok {
			t.Errorf("Expected %s to be omitted for a sulfide", key)
		}
	}

	// No species carries a U value
	inc, err = set.Incar(mustParse(t, "Al2O3"))
	if err != nil {
		t.Fatalf("Failed to build INCAR: %v", err)
	}
	if _, ok := inc["LDAU"]; ok {
		t.Error("Expected LDAU to be omitted when no species carries a U value")
	}
}

func TestIncarString(t *testing.T) {
	inc := Incar{
		"ENCUT":  520,
		"LDAU":   true,
		"LWAVE":  false,
		"MAGMOM": []Magmom{{Count: 1, Value: 5}, {Count: 4, Value: 0.6}},
		"LDAUU":  []float64{0, 5.3},
		"SIGMA":  0.05,
		"ALGO":   "Fast",
	}

	got := inc.String()
	want := "ALGO = Fast\n" +
		"ENCUT = 520\n" +
		"LDAU = .TRUE.\n" +
		"LDAUU = 0 5.3\n" +
		"LWAVE = .FALSE.\n" +
		"MAGMOM = 1*5 4*0.6\n" +
		"SIGMA = 0.05\n"
	if got != want {
		t.Errorf("Unexpected INCAR body:\n%s\nwant:\n%s", got, want)
	}
}

func TestKpoints(t *testing.T) {
	mp := mustGet(t, "MaterialsProject")
	c := mustParse(t, "LiFePO4")

	k := mp.Kpoints(c)
	if k.GridDensity != 1000 {
		t.Errorf("Expected MaterialsProject grid density 1000, got %d", k.GridDensity)
	}

	mit := mustGet(t, "MIT")
	if got := mit.Kpoints(c).GridDensity; got != 500 {
		t.Errorf("Expected MIT grid density 500, got %d", got)
	}

	body := k.String()
	if !strings.HasSuffix(body, "0\nAuto\n  1000\n") {
		t.Errorf("Unexpected KPOINTS body:\n%s", body)
	}
}

func TestPotcarSymbols(t *testing.T) {
	set := mustGet(t, "MaterialsProject")
	c := mustParse(t, "LiFePO4")

	symbols, err := set.PotcarSymbols(c)
	if err != nil {
		t.Fatalf("Failed to resolve POTCAR symbols: %v", err)
	}

	expected := []string{"Li_sv", "Fe_pv", "P", "O"}
	if len(symbols) != len(expected) {
		t.Fatalf("Expected %d symbols, got %d", len(expected), len(symbols))
	}
	for i, want := range expected {
		if symbols[i] != want {
			t.Errorf("Expected symbol %d to be %s, got %s", i, want, symbols[i])
		}
	}
}

func TestLoadPresetsRequiresKpoints(t *testing.T) {
	f, err := cfg.Parse(strings.NewReader("[CustomINCAR]\nENCUT = 450\n"))
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	if _, err := LoadPresets(f); err == nil {
		t.Error("Expected error for input set without KPOINTS section")
	}
}

func TestLoadCustomPreset(t *testing.T) {
	const custom = `[Custom]
description = A minimal test set

[CustomINCAR]
ENCUT = 450
EDIFF_PER_ATOM = 1e-04

[CustomKPOINTS]
grid_density = 250
`
	f, err := cfg.Parse(strings.NewReader(custom))
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	presets, err := LoadPresets(f)
	if err != nil {
		t.Fatalf("Failed to load presets: %v", err)
	}
	if len(presets) != 1 {
		t.Fatalf("Expected 1 preset, got %d", len(presets))
	}

	p := presets[0]
	if p.Name() != "Custom" {
		t.Errorf("Expected name 'Custom', got '%s'", p.Name())
	}
	if p.Description() != "A minimal test set" {
		t.Errorf("Unexpected description: %s", p.Description())
	}

	c := mustParse(t, "Fe2O3")
	inc, err := p.Incar(c)
	if err != nil {
		t.Fatalf("Failed to build INCAR: %v", err)
	}
	ediff, _ := inc["EDIFF"].(float64)
	if math.Abs(ediff-5e-04) > 1e-12 {
		t.Errorf("Expected EDIFF 5e-04, got %v", ediff)
	}
	if got := p.Kpoints(c).GridDensity; got != 250 {
		t.Errorf("Expected grid density 250, got %d", got)
	}

	// No POTCAR mapping: bare symbols
	symbols, err := p.PotcarSymbols(c)
	if err != nil {
		t.Fatalf("Failed to resolve POTCAR symbols: %v", err)
	}
	if len(symbols) != 2 || symbols[0] != "Fe" || symbols[1] != "O" {
		t.Errorf("Expected bare symbols [Fe O], got %v", symbols)
	}
}

func TestRegistry(t *testing.T) {
	r := NewRegistry()

	p := &Preset{name: "Test", description: "test set"}
	if err := r.Register("Test", func() InputSet { return p }); err != nil {
		t.Fatalf("Failed to register: %v", err)
	}

	if err := r.Register("Test", func() InputSet { return p }); err == nil {
		t.Error("Expected error registering a duplicate name")
	}

	got, err := r.Get("Test")
	if err != nil {
		t.Fatalf("Failed to get: %v", err)
	}
	if got.Name() != "Test" {
		t.Errorf("Expected name 'Test', got '%s'", got.Name())
	}

	if _, err := r.Get("Missing"); err == nil {
		t.Error("Expected error for unknown input set")
	}
}
