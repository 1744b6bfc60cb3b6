// Package periodic provides the periodic table of elements, species with
// oxidation states, and chemical formula handling.
package periodic

import (
	"fmt"
	"sort"
	"strings"
)

// rowSizes are the lengths of the first seven periodic table rows.
var rowSizes = [...]int{2, 8, 8, 18, 18, 32, 32}

// Element is an immutable handle on one element of the periodic table.
// Elements with the same symbol compare equal.
type Element struct {
	d *elementData
}

// FromSymbol returns the element with the given symbol, e.g. "Fe".
func FromSymbol(symbol string) (Element, error) {
	if d, ok := bySymbol[symbol]; ok {
		return Element{d}, nil
	}
	return Element{}, fmt.Errorf("unknown element symbol %q", symbol)
}

// FromZ returns the element with the given atomic number.
func FromZ(z int) (Element, error) {
	if d, ok := byNumber[z]; ok {
		return Element{d}, nil
	}
	return Element{}, fmt.Errorf("no element with atomic number %d", z)
}

// FromRowAndGroup returns the element at the given row and group, using the
// 18-group numbering (noble gases are group 18). The second return value is
// false if no element occupies that position.
func FromRowAndGroup(row, group int) (Element, bool) {
	for i := range elementTable {
		el := Element{&elementTable[i]}
		if el.Row() == row && el.Group() == group {
			return el, true
		}
	}
	return Element{}, false
}

// IsValidSymbol reports whether symbol names a known element.
func IsValidSymbol(symbol string) bool {
	_, ok := bySymbol[symbol]
	return ok
}

// AllElements returns every known element in order of atomic number.
func AllElements() []Element {
	els := make([]Element, len(elementTable))
	for i := range elementTable {
		els[i] = Element{&elementTable[i]}
	}
	return els
}

// IsZero reports whether e is the zero Element.
func (e Element) IsZero() bool { return e.d == nil }

// Z returns the atomic number.
func (e Element) Z() int { return e.d.Z }

// Symbol returns the element symbol.
func (e Element) Symbol() string { return e.d.Symbol }

// Name returns the full element name.
func (e Element) Name() string { return e.d.Name }

// AtomicMass returns the atomic mass in amu.
func (e Element) AtomicMass() float64 { return e.d.Mass }

// Electronegativity returns the Pauling electronegativity, or 0 where no
// value is tabulated.
func (e Element) Electronegativity() float64 { return e.d.X }

// OxidationStates returns all known oxidation states.
func (e Element) OxidationStates() []int {
	return append([]int(nil), e.d.Oxi...)
}

// CommonOxidationStates returns the commonly observed oxidation states.
func (e Element) CommonOxidationStates() []int {
	return append([]int(nil), e.d.Common...)
}

// MaxOxidationState returns the maximum known oxidation state, or 0 when no
// states are tabulated.
func (e Element) MaxOxidationState() int {
	maxState := 0
	for i, s := range e.d.Oxi {
		if i == 0 || s > maxState {
			maxState = s
		}
	}
	return maxState
}

// MinOxidationState returns the minimum known oxidation state, or 0 when no
// states are tabulated.
func (e Element) MinOxidationState() int {
	minState := 0
	for i, s := range e.d.Oxi {
		if i == 0 || s < minState {
			minState = s
		}
	}
	return minState
}

// IonicRadii returns the tabulated ionic radii in pm keyed by oxidation state.
func (e Element) IonicRadii() map[int]float64 {
	radii := make(map[int]float64, len(e.d.Radii))
	for k, v := range e.d.Radii {
		radii[k] = v
	}
	return radii
}

// AverageIonicRadius returns the ionic radius averaged over all oxidation
// states with data, or 0 when none are tabulated.
func (e Element) AverageIonicRadius() float64 {
	if len(e.d.Radii) == 0 {
		return 0
	}
	var sum float64
	for _, r := range e.d.Radii {
		sum += r
	}
	return sum / float64(len(e.d.Radii))
}

// Row returns the periodic table row. Lanthanoids and actinoids are placed in
// rows 8 and 9 respectively.
func (e Element) Row() int {
	z := e.d.Z
	if z >= 57 && z <= 70 {
		return 8
	}
	if z >= 89 && z <= 102 {
		return 9
	}
	total := 0
	for i, size := range rowSizes {
		total += size
		if total >= z {
			return i + 1
		}
	}
	return 8
}

// Group returns the periodic table group using 18-group numbering.
func (e Element) Group() int {
	z := e.d.Z
	switch {
	case z == 1:
		return 1
	case z == 2:
		return 18
	case z >= 3 && z <= 18:
		switch {
		case (z-2)%8 == 0:
			return 18
		case (z-2)%8 <= 2:
			return (z - 2) % 8
		default:
			return 10 + (z-2)%8
		}
	case z >= 19 && z <= 54:
		if (z-18)%18 == 0 {
			return 18
		}
		return (z - 18) % 18
	}
	switch {
	case (z-54)%32 == 0:
		return 18
	case (z-54)%32 >= 17:
		return (z-54)%32 - 14
	default:
		return (z - 54) % 32
	}
}

// Block returns the block character: s, p, d or f.
func (e Element) Block() string {
	g := e.Group()
	switch {
	case g == 1 || g == 2:
		return "s"
	case g >= 13 && g <= 18:
		return "p"
	case e.IsLanthanoid() || e.IsActinoid():
		return "f"
	case g >= 3 && g <= 12:
		return "d"
	}
	return ""
}

// IsNobleGas reports whether the element is a noble gas.
func (e Element) IsNobleGas() bool {
	switch e.d.Z {
	case 2, 10, 18, 36, 54, 86, 118:
		return true
	}
	return false
}

// IsTransitionMetal reports whether the element is a transition metal.
func (e Element) IsTransitionMetal() bool {
	z := e.d.Z
	return (z >= 21 && z <= 30) ||
		(z >= 39 && z <= 48) ||
		z == 57 ||
		(z >= 72 && z <= 80) ||
		z == 89 ||
		(z >= 104 && z <= 112)
}

// IsRareEarthMetal reports whether the element is a rare earth metal.
func (e Element) IsRareEarthMetal() bool {
	return e.IsLanthanoid() || e.IsActinoid()
}

// IsMetalloid reports whether the element is a metalloid.
func (e Element) IsMetalloid() bool {
	switch e.d.Symbol {
	case "B", "Si", "Ge", "As", "Sb", "Te", "Po":
		return true
	}
	return false
}

// IsAlkali reports whether the element is an alkali metal.
func (e Element) IsAlkali() bool {
	switch e.d.Z {
	case 3, 11, 19, 37, 55, 87:
		return true
	}
	return false
}

// IsAlkaline reports whether the element is an alkaline earth metal.
func (e Element) IsAlkaline() bool {
	switch e.d.Z {
	case 4, 12, 20, 38, 56, 88:
		return true
	}
	return false
}

// IsHalogen reports whether the element is a halogen.
func (e Element) IsHalogen() bool {
	switch e.d.Z {
	case 9, 17, 35, 53, 85:
		return true
	}
	return false
}

// IsLanthanoid reports whether the element is a lanthanoid.
func (e Element) IsLanthanoid() bool {
	return e.d.Z > 56 && e.d.Z < 72
}

// IsActinoid reports whether the element is an actinoid.
func (e Element) IsActinoid() bool {
	return e.d.Z > 88 && e.d.Z < 104
}

func (e Element) String() string { return e.d.Symbol }

// SortByElectronegativity sorts elements in place by electronegativity.
// Sorting species lists this way yields conventional formula ordering, e.g.
// FeO4PLi becomes LiFePO4.
func SortByElectronegativity(els []Element) {
	sort.SliceStable(els, func(i, j int) bool {
		return els[i].d.X < els[j].d.X
	})
}

// TableString renders an ASCII periodic table. Elements failing the filter
// are left blank; a nil filter includes everything.
func TableString(filter func(Element) bool) string {
	var b strings.Builder
	for row := 1; row <= 9; row++ {
		cells := make([]string, 0, 18)
		for group := 1; group <= 18; group++ {
			el, ok := FromRowAndGroup(row, group)
			if ok && (filter == nil || filter(el)) {
				cells = append(cells, fmt.Sprintf("%-3s", el.Symbol()))
			} else {
				cells = append(cells, "   ")
			}
		}
		b.WriteString(strings.TrimRight(strings.Join(cells, " "), " "))
		b.WriteByte('\n')
	}
	return b.String()
}
