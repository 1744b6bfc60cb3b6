package periodic

import (
	"math"
	"testing"
)

func TestFromSymbol(t *testing.T) {
	fe, err := FromSymbol("Fe")
	if err != nil {
		t.Fatalf("Failed to look up Fe: %v", err)
	}

	if fe.Z() != 26 {
		t.Errorf("Expected Fe atomic number 26, got %d", fe.Z())
	}
	if fe.Name() != "Iron" {
		t.Errorf("Expected name 'Iron', got '%s'", fe.Name())
	}
	if math.Abs(fe.AtomicMass()-55.845) > 1e-3 {
		t.Errorf("Expected Fe atomic mass 55.845, got %f", fe.AtomicMass())
	}

	if _, err := FromSymbol("Xx"); err == nil {
		t.Error("Expected error for unknown symbol")
	}
}

func TestFromZ(t *testing.T) {
	el, err := FromZ(26)
	if err != nil {
		t.Fatalf("Failed to look up Z=26: %v", err)
	}
	if el.Symbol() != "Fe" {
		t.Errorf("Expected symbol 'Fe', got '%s'", el.Symbol())
	}

	if _, err := FromZ(0); err == nil {
		t.Error("Expected error for Z=0")
	}
	if _, err := FromZ(200); err == nil {
		t.Error("Expected error for Z=200")
	}
}

func TestRowGroupBlock(t *testing.T) {
	tests := []struct {
		symbol string
		row    int
		group  int
		block  string
	}{
		{"H", 1, 1, "s"},
		{"He", 1, 18, "p"},
		{"Li", 2, 1, "s"},
		{"O", 2, 16, "p"},
		{"Si", 3, 14, "p"},
		{"Fe", 4, 8, "d"},
		{"Ge", 4, 14, "p"},
		{"U", 9, 6, "f"},
	}

	for _, tt := range tests {
		t.Run(tt.symbol, func(t *testing.T) {
			el, err := FromSymbol(tt.symbol)
			if err != nil {
				t.Fatalf("Failed to look up %s: %v", tt.symbol, err)
			}
			if el.Row() != tt.row {
				t.Errorf("Expected %s row %d, got %d", tt.symbol, tt.row, el.Row())
			}
			if el.Group() != tt.group {
				t.Errorf("Expected %s group %d, got %d", tt.symbol, tt.group, el.Group())
			}
			if el.Block() != tt.block {
				t.Errorf("Expected %s block %s, got %s", tt.symbol, tt.block, el.Block())
			}
		})
	}
}

func TestOxidationStates(t *testing.T) {
	fe, _ := FromSymbol("Fe")

	if fe.MaxOxidationState() != 6 {
		t.Errorf("Expected Fe max oxidation state 6, got %d", fe.MaxOxidationState())
	}
	if fe.MinOxidationState() != -2 {
		t.Errorf("Expected Fe min oxidation state -2, got %d", fe.MinOxidationState())
	}

	common := fe.CommonOxidationStates()
	if len(common) != 2 || common[0] != 2 || common[1] != 3 {
		t.Errorf("Expected Fe common oxidation states [2 3], got %v", common)
	}
}

func TestCategories(t *testing.T) {
	tests := []struct {
		symbol string
		check  func(Element) bool
		want   bool
	}{
		{"Li", Element.IsAlkali, true},
		{"Fe", Element.IsAlkali, false},
		{"Mg", Element.IsAlkaline, true},
		{"Fe", Element.IsTransitionMetal, true},
		{"Si", Element.IsMetalloid, true},
		{"F", Element.IsHalogen, true},
		{"Ar", Element.IsNobleGas, true},
		{"Ce", Element.IsLanthanoid, true},
		{"Ce", Element.IsRareEarthMetal, true},
		{"U", Element.IsActinoid, true},
		{"O", Element.IsTransitionMetal, false},
	}

	for _, tt := range tests {
		el, err := FromSymbol(tt.symbol)
		if err != nil {
			t.Fatalf("Failed to look up %s: %v", tt.symbol, err)
		}
		if got := tt.check(el); got != tt.want {
			t.Errorf("Category check for %s: expected %v, got %v", tt.symbol, tt.want, got)
		}
	}
}

func TestSortByElectronegativity(t *testing.T) {
	syms := []string{"Fe", "O", "P", "Li"}
	els := make([]Element, len(syms))
	for i, s := range syms {
		els[i], _ = FromSymbol(s)
	}

	SortByElectronegativity(els)

	expected := []string{"Li", "Fe", "P", "O"}
	for i, want := range expected {
		if els[i].Symbol() != want {
			t.Errorf("Expected position %d to be %s, got %s", i, want, els[i].Symbol())
		}
	}
}

func TestFromRowAndGroup(t *testing.T) {
	el, ok := FromRowAndGroup(4, 8)
	if !ok {
		t.Fatal("Expected an element at row 4, group 8")
	}
	if el.Symbol() != "Fe" {
		t.Errorf("Expected Fe at row 4 group 8, got %s", el.Symbol())
	}

	// Row 1 only has groups 1 and 18
	if _, ok := FromRowAndGroup(1, 5); ok {
		t.Error("Expected no element at row 1, group 5")
	}
}

func TestSpecies(t *testing.T) {
	sp, err := ParseSpecies("Fe3+")
	if err != nil {
		t.Fatalf("Failed to parse Fe3+: %v", err)
	}
	if sp.Element.Symbol() != "Fe" {
		t.Errorf("Expected element Fe, got %s", sp.Element.Symbol())
	}
	if sp.OxiState != 3 {
		t.Errorf("Expected oxidation state 3, got %v", sp.OxiState)
	}
	if r, ok := sp.IonicRadius(); !ok || r != 78.5 {
		t.Errorf("Expected Fe3+ ionic radius 78.5 pm, got %v (ok=%v)", r, ok)
	}
	if sp.String() != "Fe3+" {
		t.Errorf("Expected string 'Fe3+', got '%s'", sp.String())
	}

	o, err := ParseSpecies("O2-")
	if err != nil {
		t.Fatalf("Failed to parse O2-: %v", err)
	}
	if o.OxiState != -2 {
		t.Errorf("Expected oxidation state -2, got %v", o.OxiState)
	}

	// Bare sign means a single charge
	na, err := ParseSpecies("Na+")
	if err != nil {
		t.Fatalf("Failed to parse Na+: %v", err)
	}
	if na.OxiState != 1 {
		t.Errorf("Expected oxidation state 1, got %v", na.OxiState)
	}

	if _, err := ParseSpecies("Fe"); err == nil {
		t.Error("Expected error for species without charge")
	}
	if _, err := ParseSpecies("Xx2+"); err == nil {
		t.Error("Expected error for unknown element")
	}
}
