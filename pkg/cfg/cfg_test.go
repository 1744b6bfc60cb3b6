package cfg

import (
	"strings"
	"testing"
)

const sampleFile = `# comment line
[MaterialsProjectINCAR]
ALGO = Fast
EDIFF_PER_ATOM = 5e-05
ENCUT = 520
ISPIN = 2
LDAU = true
LDAUL = {"Co": 2, "Fe": 2}
LDAUU = {"Co": 3.32, "Fe": 5.3}
SYSTEM = "Generated input"

[MaterialsProjectKPOINTS]
grid_density = 1000
`

func TestParse(t *testing.T) {
	f, err := Parse(strings.NewReader(sampleFile))
	if err != nil {
		t.Fatalf("Failed to parse sample file: %v", err)
	}

	names := f.SectionNames()
	if len(names) != 2 {
		t.Fatalf("Expected 2 sections, got %d", len(names))
	}
	if names[0] != "MaterialsProjectINCAR" || names[1] != "MaterialsProjectKPOINTS" {
		t.Errorf("Unexpected section order: %v", names)
	}

	incar, ok := f.Section("MaterialsProjectINCAR")
	if !ok {
		t.Fatal("MaterialsProjectINCAR section not found")
	}

	if v, ok := incar.String("ALGO"); !ok || v != "Fast" {
		t.Errorf("Expected ALGO 'Fast', got %q (ok=%v)", v, ok)
	}

	if v, ok := incar.Float("EDIFF_PER_ATOM"); !ok || v != 5e-05 {
		t.Errorf("Expected EDIFF_PER_ATOM 5e-05, got %v (ok=%v)", v, ok)
	}

	if v, ok := incar.Int("ENCUT"); !ok || v != 520 {
		t.Errorf("Expected ENCUT 520, got %d (ok=%v)", v, ok)
	}

	if v, ok := incar.Bool("LDAU"); !ok || !v {
		t.Errorf("Expected LDAU true, got %v (ok=%v)", v, ok)
	}

	if v, ok := incar.String("SYSTEM"); !ok || v != "Generated input" {
		t.Errorf("Expected quoted string to be unquoted, got %q (ok=%v)", v, ok)
	}

	kpoints, ok := f.Section("MaterialsProjectKPOINTS")
	if !ok {
		t.Fatal("MaterialsProjectKPOINTS section not found")
	}
	if v, ok := kpoints.Int("grid_density"); !ok || v != 1000 {
		t.Errorf("Expected grid_density 1000, got %d (ok=%v)", v, ok)
	}
}

func TestParseElementMap(t *testing.T) {
	f, err := Parse(strings.NewReader(sampleFile))
	if err != nil {
		t.Fatalf("Failed to parse sample file: %v", err)
	}

	incar, _ := f.Section("MaterialsProjectINCAR")

	ldaul, ok := incar.ElementMap("LDAUL")
	if !ok {
		t.Fatal("Expected LDAUL to be an element map")
	}
	if ldaul["Co"] != 2 {
		t.Errorf("Expected LDAUL Co 2, got %v", ldaul["Co"])
	}

	ldauu, ok := incar.ElementMap("LDAUU")
	if !ok {
		t.Fatal("Expected LDAUU to be an element map")
	}
	if ldauu["Fe"] != 5.3 {
		t.Errorf("Expected LDAUU Fe 5.3, got %v", ldauu["Fe"])
	}

	// Scalar keys are not element maps
	if _, ok := incar.ElementMap("ENCUT"); ok {
		t.Error("Expected ENCUT not to be an element map")
	}
}

func TestFloatWidensInt(t *testing.T) {
	f, err := Parse(strings.NewReader("[S]\nENCUT = 520\n"))
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	s, _ := f.Section("S")
	if v, ok := s.Float("ENCUT"); !ok || v != 520.0 {
		t.Errorf("Expected Float to widen integer 520, got %v (ok=%v)", v, ok)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "key outside section",
			input: "ENCUT = 520\n",
		},
		{
			name:  "malformed section header",
			input: "[INCAR\nENCUT = 520\n",
		},
		{
			name:  "empty section name",
			input: "[]\n",
		},
		{
			name:  "duplicate section",
			input: "[A]\n[A]\n",
		},
		{
			name:  "duplicate key",
			input: "[A]\nENCUT = 520\nENCUT = 400\n",
		},
		{
			name:  "missing equals",
			input: "[A]\nENCUT\n",
		},
		{
			name:  "malformed element map",
			input: "[A]\nLDAUU = {\"Fe\": }\n",
		},
		{
			name:  "element map with bad key",
			input: "[A]\nLDAUU = {\"Iron\": 5.3}\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Parse(strings.NewReader(tt.input)); err == nil {
				t.Errorf("Expected parse error for %s", tt.name)
			}
		})
	}
}

func TestKeysPreserveOrder(t *testing.T) {
	f, err := Parse(strings.NewReader("[A]\nZ_LAST = 1\nA_FIRST = 2\nM_MID = 3\n"))
	if err != nil {
		t.Fatalf("Failed to parse: %v", err)
	}
	s, _ := f.Section("A")
	keys := s.Keys()
	expected := []string{"Z_LAST", "A_FIRST", "M_MID"}
	if len(keys) != len(expected) {
		t.Fatalf("Expected %d keys, got %d", len(expected), len(keys))
	}
	for i, k := range expected {
		if keys[i] != k {
			t.Errorf("Expected key %d to be %s, got %s", i, k, keys[i])
		}
	}
}
