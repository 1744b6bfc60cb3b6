package periodic

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/matforge/matforge/pkg/util"
)

var (
	formulaTokenRe = regexp.MustCompile(`([A-Z][a-z]*)([\d.]*)`)
	parenGroupRe   = regexp.MustCompile(`\(([^()]*)\)([\d.]*)`)
)

// Composition is an immutable mapping from elements to amounts, representing
// a chemical formula.
type Composition struct {
	amounts map[Element]float64
}

// NewComposition builds a composition from a symbol-to-amount map.
func NewComposition(amounts map[string]float64) (Composition, error) {
	m := make(map[Element]float64, len(amounts))
	for sym, amt := range amounts {
		el, err := FromSymbol(sym)
		if err != nil {
			return Composition{}, err
		}
		if amt < 0 {
			return Composition{}, fmt.Errorf("negative amount %g for %s", amt, sym)
		}
		if amt > 0 {
			m[el] += amt
		}
	}
	if len(m) == 0 {
		return Composition{}, fmt.Errorf("empty composition")
	}
	return Composition{amounts: m}, nil
}

// ParseFormula parses a chemical formula such as "LiFePO4", "Fe2O3" or
// "Ca(OH)2" into a composition. Parenthesized groups may carry a multiplier
// and may be nested.
func ParseFormula(formula string) (Composition, error) {
	f := strings.ReplaceAll(formula, " ", "")
	if f == "" {
		return Composition{}, fmt.Errorf("empty formula")
	}

	// Expand parenthesized groups innermost-first until none remain.
	for {
		loc := parenGroupRe.FindStringSubmatchIndex(f)
		if loc == nil {
			break
		}
		inner := f[loc[2]:loc[3]]
		mult := 1.0
		if loc[4] != loc[5] {
			var err error
			mult, err = strconv.ParseFloat(f[loc[4]:loc[5]], 64)
			if err != nil {
				return Composition{}, fmt.Errorf("invalid formula %q: %w", formula, err)
			}
		}
		expanded, err := parseFlat(inner)
		if err != nil {
			return Composition{}, fmt.Errorf("invalid formula %q: %w", formula, err)
		}
		var b strings.Builder
		for sym, amt := range expanded {
			fmt.Fprintf(&b, "%s%g", sym, amt*mult)
		}
		f = f[:loc[0]] + b.String() + f[loc[1]:]
	}
	if strings.ContainsAny(f, "()") {
		return Composition{}, fmt.Errorf("invalid formula %q: unbalanced parentheses", formula)
	}

	flat, err := parseFlat(f)
	if err != nil {
		return Composition{}, fmt.Errorf("invalid formula %q: %w", formula, err)
	}
	return NewComposition(flat)
}

// parseFlat parses a formula with no parentheses into symbol -> amount.
func parseFlat(f string) (map[string]float64, error) {
	amounts := make(map[string]float64)
	consumed := 0
	for _, loc := range formulaTokenRe.FindAllStringSubmatchIndex(f, -1) {
		if loc[0] != consumed {
			return nil, fmt.Errorf("unexpected %q", f[consumed:loc[0]])
		}
		consumed = loc[1]
		sym := f[loc[2]:loc[3]]
		if !IsValidSymbol(sym) {
			return nil, fmt.Errorf("unknown element %q", sym)
		}
		amt := 1.0
		if loc[4] != loc[5] {
			var err error
			amt, err = strconv.ParseFloat(f[loc[4]:loc[5]], 64)
			if err != nil {
				return nil, err
			}
		}
		amounts[sym] += amt
	}
	if consumed != len(f) {
		return nil, fmt.Errorf("unexpected %q", f[consumed:])
	}
	return amounts, nil
}

// Elements returns the elements present, sorted by electronegativity.
func (c Composition) Elements() []Element {
	els := make([]Element, 0, len(c.amounts))
	for el := range c.amounts {
		els = append(els, el)
	}
	SortByElectronegativity(els)
	return els
}

// Amount returns the amount of the given element, 0 when absent.
func (c Composition) Amount(el Element) float64 {
	return c.amounts[el]
}

// Contains reports whether the element is present.
func (c Composition) Contains(el Element) bool {
	_, ok := c.amounts[el]
	return ok
}

// NumAtoms returns the total number of atoms per formula unit.
func (c Composition) NumAtoms() float64 {
	var n float64
	for _, amt := range c.amounts {
		n += amt
	}
	return n
}

// Weight returns the molecular weight in amu.
func (c Composition) Weight() float64 {
	var w float64
	for el, amt := range c.amounts {
		w += el.AtomicMass() * amt
	}
	return w
}

// Formula returns the formula with explicit amounts, elements sorted by
// electronegativity, e.g. "Li1 Fe1 P1 O4".
func (c Composition) Formula() string {
	parts := make([]string, 0, len(c.amounts))
	for _, el := range c.Elements() {
		parts = append(parts, el.Symbol()+util.FormulaDoubleFormat(c.amounts[el], false))
	}
	return strings.Join(parts, " ")
}

// ReducedFormula returns the pretty reduced formula, e.g. "LiFePO4" for
// Li2Fe2P2O8.
func (c Composition) ReducedFormula() string {
	els := c.Elements()
	factor := c.reductionFactor()
	var b strings.Builder
	for _, el := range els {
		b.WriteString(el.Symbol())
		b.WriteString(util.FormulaDoubleFormat(c.amounts[el]/factor, true))
	}
	return b.String()
}

// reductionFactor returns the greatest common divisor of the amounts when all
// amounts are integral, else 1.
func (c Composition) reductionFactor() float64 {
	const tol = 1e-8
	g := 0
	for _, amt := range c.amounts {
		if math.Abs(amt-math.Round(amt)) > tol {
			return 1
		}
		g = gcd(g, int(math.Round(amt)))
	}
	if g <= 1 {
		return 1
	}
	return float64(g)
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

func (c Composition) String() string { return c.Formula() }
