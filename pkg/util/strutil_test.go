package util

import "testing"

func TestFormulaDoubleFormat(t *testing.T) {
	tests := []struct {
		amount     float64
		ignoreOnes bool
		want       string
	}{
		{1, true, ""},
		{1, false, "1"},
		{4, true, "4"},
		{2.0000000001, true, "2"},
		{1.5, true, "1.5"},
		{0.5, false, "0.5"},
	}

	for _, tt := range tests {
		if got := FormulaDoubleFormat(tt.amount, tt.ignoreOnes); got != tt.want {
			t.Errorf("FormulaDoubleFormat(%v, %v): expected %q, got %q",
				tt.amount, tt.ignoreOnes, tt.want, got)
		}
	}
}

func TestStrAligned(t *testing.T) {
	rows := [][]string{
		{"Fe", "26"},
		{"O", "8"},
	}

	got := StrAligned(rows, nil)
	want := "Fe   26\n O    8"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestStrAlignedWithHeader(t *testing.T) {
	rows := [][]string{{"Fe", "26"}}
	got := StrAligned(rows, []string{"Symbol", "Z"})

	want := "Symbol    Z\n-----------\n    Fe   26"
	if got != want {
		t.Errorf("Expected %q, got %q", want, got)
	}
}

func TestStrAlignedEmpty(t *testing.T) {
	if got := StrAligned(nil, nil); got != "" {
		t.Errorf("Expected empty string, got %q", got)
	}
}
