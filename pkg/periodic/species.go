package periodic

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/matforge/matforge/pkg/util"
)

var speciesRe = regexp.MustCompile(`^([A-Z][a-z]*)([0-9.]*)([+-])$`)

// Species is an element together with an oxidation state, e.g. Fe2+.
// Two species are equal only if both element and oxidation state match.
type Species struct {
	Element  Element
	OxiState float64
}

// NewSpecies returns a species for the given element symbol and oxidation
// state.
func NewSpecies(symbol string, oxiState float64) (Species, error) {
	el, err := FromSymbol(symbol)
	if err != nil {
		return Species{}, err
	}
	return Species{Element: el, OxiState: oxiState}, nil
}

// ParseSpecies parses a species string such as "Mn2+", "Fe3+" or "O2-".
func ParseSpecies(s string) (Species, error) {
	m := speciesRe.FindStringSubmatch(s)
	if m == nil {
		return Species{}, fmt.Errorf("invalid species string %q", s)
	}
	num := 1.0
	if m[2] != "" {
		var err error
		num, err = strconv.ParseFloat(m[2], 64)
		if err != nil {
			return Species{}, fmt.Errorf("invalid species string %q: %w", s, err)
		}
	}
	if m[3] == "-" {
		num = -num
	}
	return NewSpecies(m[1], num)
}

// IonicRadius returns the tabulated ionic radius in pm for this oxidation
// state. The second return value is false when no data is present.
func (sp Species) IonicRadius() (float64, bool) {
	r, ok := sp.Element.d.Radii[int(sp.OxiState)]
	return r, ok
}

func (sp Species) String() string {
	amount := sp.OxiState
	sign := "+"
	if amount < 0 {
		amount = -amount
		sign = "-"
	}
	return sp.Element.Symbol() + util.FormulaDoubleFormat(amount, true) + sign
}
