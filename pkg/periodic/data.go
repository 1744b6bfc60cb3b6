package periodic

// elementData holds the tabulated properties of one element. Electronegativity
// is on the Pauling scale and is zero where no value is tabulated. Ionic radii
// are in pm, keyed by oxidation state.
type elementData struct {
	Z      int
	Symbol string
	Name   string
	Mass   float64
	X      float64
	Oxi    []int
	Common []int
	Radii  map[int]float64
}

var elementTable = []elementData{
	{Z: 1, Symbol: "H", Name: "Hydrogen", Mass: 1.00794, X: 2.20, Oxi: []int{-1, 1}, Common: []int{1}},
	{Z: 2, Symbol: "He", Name: "Helium", Mass: 4.002602},
	{Z: 3, Symbol: "Li", Name: "Lithium", Mass: 6.941, X: 0.98, Oxi: []int{1}, Common: []int{1}, Radii: map[int]float64{1: 90}},
	{Z: 4, Symbol: "Be", Name: "Beryllium", Mass: 9.012182, X: 1.57, Oxi: []int{2}, Common: []int{2}},
	{Z: 5, Symbol: "B", Name: "Boron", Mass: 10.811, X: 2.04, Oxi: []int{3}, Common: []int{3}},
	{Z: 6, Symbol: "C", Name: "Carbon", Mass: 12.0107, X: 2.55, Oxi: []int{-4, -3, -2, -1, 1, 2, 3, 4}, Common: []int{-4, 4}},
	{Z: 7, Symbol: "N", Name: "Nitrogen", Mass: 14.0067, X: 3.04, Oxi: []int{-3, -2, -1, 1, 2, 3, 4, 5}, Common: []int{-3, 3, 5}},
	{Z: 8, Symbol: "O", Name: "Oxygen", Mass: 15.9994, X: 3.44, Oxi: []int{-2, -1, 1, 2}, Common: []int{-2}, Radii: map[int]float64{-2: 126}},
	{Z: 9, Symbol: "F", Name: "Fluorine", Mass: 18.9984032, X: 3.98, Oxi: []int{-1}, Common: []int{-1}, Radii: map[int]float64{-1: 119}},
	{Z: 10, Symbol: "Ne", Name: "Neon", Mass: 20.1797},
	{Z: 11, Symbol: "Na", Name: "Sodium", Mass: 22.98976928, X: 0.93, Oxi: []int{-1, 1}, Common: []int{1}, Radii: map[int]float64{1: 116}},
	{Z: 12, Symbol: "Mg", Name: "Magnesium", Mass: 24.305, X: 1.31, Oxi: []int{1, 2}, Common: []int{2}, Radii: map[int]float64{2: 86}},
	{Z: 13, Symbol: "Al", Name: "Aluminium", Mass: 26.9815386, X: 1.61, Oxi: []int{1, 3}, Common: []int{3}, Radii: map[int]float64{3: 67.5}},
	{Z: 14, Symbol: "Si", Name: "Silicon", Mass: 28.0855, X: 1.90, Oxi: []int{-4, -3, -2, -1, 1, 2, 3, 4}, Common: []int{-4, 4}},
	{Z: 15, Symbol: "P", Name: "Phosphorus", Mass: 30.973762, X: 2.19, Oxi: []int{-3, -2, -1, 1, 2, 3, 4, 5}, Common: []int{-3, 3, 5}},
	{Z: 16, Symbol: "S", Name: "Sulfur", Mass: 32.065, X: 2.58, Oxi: []int{-2, -1, 1, 2, 3, 4, 5, 6}, Common: []int{-2, 2, 4, 6}},
	{Z: 17, Symbol: "Cl", Name: "Chlorine", Mass: 35.453, X: 3.16, Oxi: []int{-1, 1, 2, 3, 4, 5, 6, 7}, Common: []int{-1, 1, 3, 5, 7}, Radii: map[int]float64{-1: 167}},
	{Z: 18, Symbol: "Ar", Name: "Argon", Mass: 39.948},
	{Z: 19, Symbol: "K", Name: "Potassium", Mass: 39.0983, X: 0.82, Oxi: []int{1}, Common: []int{1}, Radii: map[int]float64{1: 152}},
	{Z: 20, Symbol: "Ca", Name: "Calcium", Mass: 40.078, X: 1.00, Oxi: []int{2}, Common: []int{2}, Radii: map[int]float64{2: 114}},
	{Z: 21, Symbol: "Sc", Name: "Scandium", Mass: 44.955912, X: 1.36, Oxi: []int{1, 2, 3}, Common: []int{3}},
	{Z: 22, Symbol: "Ti", Name: "Titanium", Mass: 47.867, X: 1.54, Oxi: []int{-1, 2, 3, 4}, Common: []int{4}, Radii: map[int]float64{2: 100, 3: 81, 4: 74.5}},
	{Z: 23, Symbol: "V", Name: "Vanadium", Mass: 50.9415, X: 1.63, Oxi: []int{-1, 1, 2, 3, 4, 5}, Common: []int{5}, Radii: map[int]float64{2: 93, 3: 78, 4: 72, 5: 68}},
	{Z: 24, Symbol: "Cr", Name: "Chromium", Mass: 51.9961, X: 1.66, Oxi: []int{-2, -1, 1, 2, 3, 4, 5, 6}, Common: []int{3, 6}, Radii: map[int]float64{2: 94, 3: 75.5}},
	{Z: 25, Symbol: "Mn", Name: "Manganese", Mass: 54.938045, X: 1.55, Oxi: []int{-3, -2, -1, 1, 2, 3, 4, 5, 6, 7}, Common: []int{2, 4, 7}, Radii: map[int]float64{2: 97, 3: 78.5, 4: 67}},
	{Z: 26, Symbol: "Fe", Name: "Iron", Mass: 55.845, X: 1.83, Oxi: []int{-2, -1, 1, 2, 3, 4, 5, 6}, Common: []int{2, 3}, Radii: map[int]float64{2: 92, 3: 78.5}},
	{Z: 27, Symbol: "Co", Name: "Cobalt", Mass: 58.933195, X: 1.88, Oxi: []int{-1, 1, 2, 3, 4, 5}, Common: []int{2, 3}, Radii: map[int]float64{2: 88.5, 3: 75}},
	{Z: 28, Symbol: "Ni", Name: "Nickel", Mass: 58.6934, X: 1.91, Oxi: []int{-1, 1, 2, 3, 4}, Common: []int{2}, Radii: map[int]float64{2: 83}},
	{Z: 29, Symbol: "Cu", Name: "Copper", Mass: 63.546, X: 1.90, Oxi: []int{1, 2, 3, 4}, Common: []int{2}, Radii: map[int]float64{1: 91, 2: 87}},
	{Z: 30, Symbol: "Zn", Name: "Zinc", Mass: 65.38, X: 1.65, Oxi: []int{1, 2}, Common: []int{2}, Radii: map[int]float64{2: 88}},
	{Z: 31, Symbol: "Ga", Name: "Gallium", Mass: 69.723, X: 1.81, Oxi: []int{1, 2, 3}, Common: []int{3}},
	{Z: 32, Symbol: "Ge", Name: "Germanium", Mass: 72.64, X: 2.01, Oxi: []int{-4, 1, 2, 3, 4}, Common: []int{2, 4}},
	{Z: 33, Symbol: "As", Name: "Arsenic", Mass: 74.9216, X: 2.18, Oxi: []int{-3, 2, 3, 5}, Common: []int{-3, 3, 5}},
	{Z: 34, Symbol: "Se", Name: "Selenium", Mass: 78.96, X: 2.55, Oxi: []int{-2, 2, 4, 6}, Common: []int{-2, 4, 6}},
	{Z: 35, Symbol: "Br", Name: "Bromine", Mass: 79.904, X: 2.96, Oxi: []int{-1, 1, 3, 4, 5, 7}, Common: []int{-1, 1, 3, 5, 7}, Radii: map[int]float64{-1: 182}},
	{Z: 36, Symbol: "Kr", Name: "Krypton", Mass: 83.798, X: 3.00, Oxi: []int{2}},
	{Z: 37, Symbol: "Rb", Name: "Rubidium", Mass: 85.4678, X: 0.82, Oxi: []int{1}, Common: []int{1}, Radii: map[int]float64{1: 166}},
	{Z: 38, Symbol: "Sr", Name: "Strontium", Mass: 87.62, X: 0.95, Oxi: []int{1, 2}, Common: []int{2}, Radii: map[int]float64{2: 132}},
	{Z: 39, Symbol: "Y", Name: "Yttrium", Mass: 88.90585, X: 1.22, Oxi: []int{1, 2, 3}, Common: []int{3}},
	{Z: 40, Symbol: "Zr", Name: "Zirconium", Mass: 91.224, X: 1.33, Oxi: []int{1, 2, 3, 4}, Common: []int{4}, Radii: map[int]float64{4: 86}},
	{Z: 41, Symbol: "Nb", Name: "Niobium", Mass: 92.90638, X: 1.60, Oxi: []int{-1, 2, 3, 4, 5}, Common: []int{5}},
	{Z: 42, Symbol: "Mo", Name: "Molybdenum", Mass: 95.96, X: 2.16, Oxi: []int{-2, -1, 1, 2, 3, 4, 5, 6}, Common: []int{4, 6}, Radii: map[int]float64{3: 83, 4: 79, 6: 73}},
	{Z: 43, Symbol: "Tc", Name: "Technetium", Mass: 98, X: 1.90, Oxi: []int{-3, -1, 1, 2, 3, 4, 5, 6, 7}, Common: []int{4, 7}},
	{Z: 44, Symbol: "Ru", Name: "Ruthenium", Mass: 101.07, X: 2.20, Oxi: []int{-2, 1, 2, 3, 4, 5, 6, 7, 8}, Common: []int{3, 4}},
	{Z: 45, Symbol: "Rh", Name: "Rhodium", Mass: 102.9055, X: 2.28, Oxi: []int{-1, 1, 2, 3, 4, 5, 6}, Common: []int{3}},
	{Z: 46, Symbol: "Pd", Name: "Palladium", Mass: 106.42, X: 2.20, Oxi: []int{2, 4}, Common: []int{2, 4}},
	{Z: 47, Symbol: "Ag", Name: "Silver", Mass: 107.8682, X: 1.93, Oxi: []int{1, 2, 3}, Common: []int{1}, Radii: map[int]float64{1: 129}},
	{Z: 48, Symbol: "Cd", Name: "Cadmium", Mass: 112.411, X: 1.69, Oxi: []int{1, 2}, Common: []int{2}, Radii: map[int]float64{2: 109}},
	{Z: 49, Symbol: "In", Name: "Indium", Mass: 114.818, X: 1.78, Oxi: []int{1, 2, 3}, Common: []int{3}},
	{Z: 50, Symbol: "Sn", Name: "Tin", Mass: 118.71, X: 1.96, Oxi: []int{-4, 2, 4}, Common: []int{2, 4}},
	{Z: 51, Symbol: "Sb", Name: "Antimony", Mass: 121.76, X: 2.05, Oxi: []int{-3, 3, 5}, Common: []int{-3, 3, 5}},
	{Z: 52, Symbol: "Te", Name: "Tellurium", Mass: 127.6, X: 2.10, Oxi: []int{-2, 2, 4, 5, 6}, Common: []int{-2, 4, 6}},
	{Z: 53, Symbol: "I", Name: "Iodine", Mass: 126.90447, X: 2.66, Oxi: []int{-1, 1, 3, 5, 7}, Common: []int{-1, 1, 3, 5, 7}, Radii: map[int]float64{-1: 206}},
	{Z: 54, Symbol: "Xe", Name: "Xenon", Mass: 131.293, X: 2.60, Oxi: []int{2, 4, 6, 8}},
	{Z: 55, Symbol: "Cs", Name: "Caesium", Mass: 132.9054519, X: 0.79, Oxi: []int{1}, Common: []int{1}, Radii: map[int]float64{1: 181}},
	{Z: 56, Symbol: "Ba", Name: "Barium", Mass: 137.327, X: 0.89, Oxi: []int{2}, Common: []int{2}, Radii: map[int]float64{2: 149}},
	{Z: 57, Symbol: "La", Name: "Lanthanum", Mass: 138.90547, X: 1.10, Oxi: []int{2, 3}, Common: []int{3}, Radii: map[int]float64{3: 117.2}},
	{Z: 58, Symbol: "Ce", Name: "Cerium", Mass: 140.116, X: 1.12, Oxi: []int{2, 3, 4}, Common: []int{3, 4}},
	{Z: 59, Symbol: "Pr", Name: "Praseodymium", Mass: 140.90765, X: 1.13, Oxi: []int{2, 3, 4}, Common: []int{3}},
	{Z: 60, Symbol: "Nd", Name: "Neodymium", Mass: 144.242, X: 1.14, Oxi: []int{2, 3}, Common: []int{3}},
	{Z: 61, Symbol: "Pm", Name: "Promethium", Mass: 145, X: 1.13, Oxi: []int{3}, Common: []int{3}},
	{Z: 62, Symbol: "Sm", Name: "Samarium", Mass: 150.36, X: 1.17, Oxi: []int{2, 3}, Common: []int{3}},
	{Z: 63, Symbol: "Eu", Name: "Europium", Mass: 151.964, X: 1.20, Oxi: []int{2, 3}, Common: []int{2, 3}},
	{Z: 64, Symbol: "Gd", Name: "Gadolinium", Mass: 157.25, X: 1.20, Oxi: []int{1, 2, 3}, Common: []int{3}},
	{Z: 65, Symbol: "Tb", Name: "Terbium", Mass: 158.92535, X: 1.20, Oxi: []int{1, 3, 4}, Common: []int{3}},
	{Z: 66, Symbol: "Dy", Name: "Dysprosium", Mass: 162.5, X: 1.22, Oxi: []int{2, 3}, Common: []int{3}},
	{Z: 67, Symbol: "Ho", Name: "Holmium", Mass: 164.93032, X: 1.23, Oxi: []int{3}, Common: []int{3}},
	{Z: 68, Symbol: "Er", Name: "Erbium", Mass: 167.259, X: 1.24, Oxi: []int{3}, Common: []int{3}},
	{Z: 69, Symbol: "Tm", Name: "Thulium", Mass: 168.93421, X: 1.25, Oxi: []int{2, 3}, Common: []int{3}},
	{Z: 70, Symbol: "Yb", Name: "Ytterbium", Mass: 173.054, X: 1.10, Oxi: []int{2, 3}, Common: []int{3}},
	{Z: 71, Symbol: "Lu", Name: "Lutetium", Mass: 174.9668, X: 1.27, Oxi: []int{3}, Common: []int{3}},
	{Z: 72, Symbol: "Hf", Name: "Hafnium", Mass: 178.49, X: 1.30, Oxi: []int{2, 3, 4}, Common: []int{4}},
	{Z: 73, Symbol: "Ta", Name: "Tantalum", Mass: 180.94788, X: 1.50, Oxi: []int{-1, 2, 3, 4, 5}, Common: []int{5}},
	{Z: 74, Symbol: "W", Name: "Tungsten", Mass: 183.84, X: 2.36, Oxi: []int{-2, -1, 1, 2, 3, 4, 5, 6}, Common: []int{4, 6}, Radii: map[int]float64{4: 80, 6: 74}},
	{Z: 75, Symbol: "Re", Name: "Rhenium", Mass: 186.207, X: 1.90, Oxi: []int{-3, -1, 1, 2, 3, 4, 5, 6, 7}, Common: []int{4}},
	{Z: 76, Symbol: "Os", Name: "Osmium", Mass: 190.23, X: 2.20, Oxi: []int{-2, -1, 1, 2, 3, 4, 5, 6, 7, 8}, Common: []int{4}},
	{Z: 77, Symbol: "Ir", Name: "Iridium", Mass: 192.217, X: 2.20, Oxi: []int{-3, -1, 1, 2, 3, 4, 5, 6}, Common: []int{3, 4}},
	{Z: 78, Symbol: "Pt", Name: "Platinum", Mass: 195.084, X: 2.28, Oxi: []int{2, 4, 5, 6}, Common: []int{2, 4}},
	{Z: 79, Symbol: "Au", Name: "Gold", Mass: 196.966569, X: 2.54, Oxi: []int{-1, 1, 2, 3, 5}, Common: []int{3}},
	{Z: 80, Symbol: "Hg", Name: "Mercury", Mass: 200.59, X: 2.00, Oxi: []int{1, 2, 4}, Common: []int{1, 2}},
	{Z: 81, Symbol: "Tl", Name: "Thallium", Mass: 204.3833, X: 1.62, Oxi: []int{1, 3}, Common: []int{1, 3}},
	{Z: 82, Symbol: "Pb", Name: "Lead", Mass: 207.2, X: 2.33, Oxi: []int{-4, 2, 4}, Common: []int{2}},
	{Z: 83, Symbol: "Bi", Name: "Bismuth", Mass: 208.9804, X: 2.02, Oxi: []int{-3, 3, 5}, Common: []int{3}},
	{Z: 84, Symbol: "Po", Name: "Polonium", Mass: 209, X: 2.00, Oxi: []int{-2, 2, 4, 6}, Common: []int{-2, 2, 4}},
	{Z: 85, Symbol: "At", Name: "Astatine", Mass: 210, X: 2.20, Oxi: []int{-1, 1, 3, 5}, Common: []int{-1, 1}},
	{Z: 86, Symbol: "Rn", Name: "Radon", Mass: 222, Oxi: []int{2}},
	{Z: 87, Symbol: "Fr", Name: "Francium", Mass: 223, X: 0.70, Oxi: []int{1}, Common: []int{1}},
	{Z: 88, Symbol: "Ra", Name: "Radium", Mass: 226, X: 0.90, Oxi: []int{2}, Common: []int{2}},
	{Z: 89, Symbol: "Ac", Name: "Actinium", Mass: 227, X: 1.10, Oxi: []int{3}, Common: []int{3}},
	{Z: 90, Symbol: "Th", Name: "Thorium", Mass: 232.03806, X: 1.30, Oxi: []int{2, 3, 4}, Common: []int{4}},
	{Z: 91, Symbol: "Pa", Name: "Protactinium", Mass: 231.03588, X: 1.50, Oxi: []int{3, 4, 5}, Common: []int{5}},
	{Z: 92, Symbol: "U", Name: "Uranium", Mass: 238.02891, X: 1.38, Oxi: []int{3, 4, 5, 6}, Common: []int{6}},
	{Z: 93, Symbol: "Np", Name: "Neptunium", Mass: 237, X: 1.36, Oxi: []int{3, 4, 5, 6, 7}, Common: []int{5}},
	{Z: 94, Symbol: "Pu", Name: "Plutonium", Mass: 244, X: 1.28, Oxi: []int{3, 4, 5, 6, 7}, Common: []int{4}},
	{Z: 95, Symbol: "Am", Name: "Americium", Mass: 243, X: 1.30, Oxi: []int{2, 3, 4, 5, 6}, Common: []int{3}},
	{Z: 96, Symbol: "Cm", Name: "Curium", Mass: 247, X: 1.28, Oxi: []int{3, 4}, Common: []int{3}},
	{Z: 97, Symbol: "Bk", Name: "Berkelium", Mass: 247, X: 1.30, Oxi: []int{3, 4}, Common: []int{3}},
	{Z: 98, Symbol: "Cf", Name: "Californium", Mass: 251, X: 1.30, Oxi: []int{2, 3, 4}, Common: []int{3}},
	{Z: 99, Symbol: "Es", Name: "Einsteinium", Mass: 252, X: 1.30, Oxi: []int{2, 3}, Common: []int{3}},
	{Z: 100, Symbol: "Fm", Name: "Fermium", Mass: 257, X: 1.30, Oxi: []int{2, 3}, Common: []int{3}},
	{Z: 101, Symbol: "Md", Name: "Mendelevium", Mass: 258, X: 1.30, Oxi: []int{2, 3}, Common: []int{3}},
	{Z: 102, Symbol: "No", Name: "Nobelium", Mass: 259, X: 1.30, Oxi: []int{2, 3}, Common: []int{2}},
	{Z: 103, Symbol: "Lr", Name: "Lawrencium", Mass: 262, X: 1.30, Oxi: []int{3}, Common: []int{3}},
}

var (
	bySymbol = make(map[string]*elementData, len(elementTable))
	byNumber = make(map[int]*elementData, len(elementTable))
)

func init() {
	for i := range elementTable {
		d := &elementTable[i]
		bySymbol[d.Symbol] = d
		byNumber[d.Z] = d
	}
}
