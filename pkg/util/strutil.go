// Package util provides small string formatting helpers shared across
// packages.
package util

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// FormulaDoubleFormat formats an amount for use in chemical formulas.
// Amounts of 1 are omitted and near-integers are rounded, so Li1.0 Fe1.0
// P1.0 O4.0 renders as LiFePO4.
func FormulaDoubleFormat(amount float64, ignoreOnes bool) string {
	const tol = 1e-8
	if ignoreOnes && amount == 1 {
		return ""
	}
	if math.Abs(amount-math.Round(amount)) < tol {
		return strconv.Itoa(int(math.Round(amount)))
	}
	return strconv.FormatFloat(amount, 'g', -1, 64)
}

// StrAligned renders rows of cells as a right-aligned table with an optional
// header, separated by three spaces.
func StrAligned(rows [][]string, header []string) string {
	if len(rows) == 0 && len(header) == 0 {
		return ""
	}
	cols := len(header)
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	widths := make([]int, cols)
	measure := func(r []string) {
		for i, cell := range r {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}
	if header != nil {
		measure(header)
	}
	for _, r := range rows {
		measure(r)
	}

	format := func(r []string) string {
		cells := make([]string, cols)
		for i := 0; i < cols; i++ {
			cell := ""
			if i < len(r) {
				cell = r[i]
			}
			cells[i] = fmt.Sprintf("%*s", widths[i], cell)
		}
		return strings.Join(cells, "   ")
	}

	var b strings.Builder
	if header != nil {
		h := format(header)
		b.WriteString(h)
		b.WriteByte('\n')
		b.WriteString(strings.Repeat("-", len(h)))
		b.WriteByte('\n')
	}
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(format(r))
	}
	return b.String()
}
