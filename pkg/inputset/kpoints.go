package inputset

import "fmt"

// Kpoints describes fully automatic k-point generation driven by a grid
// density. The simulation code derives the actual mesh from the lattice.
type Kpoints struct {
	Comment     string
	GridDensity int
}

// String renders the KPOINTS file body.
func (k Kpoints) String() string {
	comment := k.Comment
	if comment == "" {
		comment = "Automatic mesh"
	}
	return fmt.Sprintf("%s\n0\nAuto\n  %d\n", comment, k.GridDensity)
}
