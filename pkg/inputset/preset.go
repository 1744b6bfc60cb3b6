package inputset

import (
	_ "embed"
	"fmt"
	"math"
	"strings"

	"github.com/matforge/matforge/pkg/cfg"
	"github.com/matforge/matforge/pkg/periodic"
)

//go:embed presets.cfg
var builtinPresets string

// defaultMagmom is the initial moment assigned to species without an entry in
// the MAGMOM table.
const defaultMagmom = 0.6

// Preset is an input set defined by sections of a preset configuration file:
// [<Name>INCAR], [<Name>KPOINTS] and optionally [<Name>POTCAR], plus an
// optional [<Name>] section carrying a description.
type Preset struct {
	name        string
	description string
	incar       *cfg.Section
	kpoints     *cfg.Section
	potcar      *cfg.Section
}

// LoadPresets extracts all presets from a parsed preset file.
func LoadPresets(f *cfg.File) ([]*Preset, error) {
	var presets []*Preset
	for _, name := range f.SectionNames() {
		base, found := strings.CutSuffix(name, "INCAR")
		if !found {
			continue
		}
		incar, _ := f.Section(name)
		kpoints, ok := f.Section(base + "KPOINTS")
		if !ok {
			return nil, fmt.Errorf("input set %s has no KPOINTS section", base)
		}
		p := &Preset{
			name:        base,
			description: fmt.Sprintf("VASP input set %s", base),
			incar:       incar,
			kpoints:     kpoints,
		}
		if s, ok := f.Section(base + "POTCAR"); ok {
			p.potcar = s
		}
		if s, ok := f.Section(base); ok {
			if d, ok := s.String("description"); ok {
				p.description = d
			}
		}
		presets = append(presets, p)
	}
	if len(presets) == 0 {
		return nil, fmt.Errorf("no input sets found")
	}
	return presets, nil
}

// Name returns the input-set name
func (p *Preset) Name() string { return p.name }

// Description returns the input-set description
func (p *Preset) Description() string { return p.description }

// Incar builds the INCAR parameters for a composition. Scalar parameters are
// carried over verbatim; element-keyed parameters are expanded over the
// species present, ordered by electronegativity. The LDAU block is emitted
// only for compositions that contain both a species with a U value and O or F.
func (p *Preset) Incar(c periodic.Composition) (Incar, error) {
	els := c.Elements()
	applyLDAU := p.ldauApplies(c)

	inc := make(Incar, len(p.incar.Keys()))
	for _, key := range p.incar.Keys() {
		if !applyLDAU && isLDAUKey(key) {
			continue
		}

		raw, _ := p.incar.Get(key)
		if key == "EDIFF_PER_ATOM" {
			perAtom, ok := p.incar.Float(key)
			if !ok {
				return nil, fmt.Errorf("EDIFF_PER_ATOM must be a number")
			}
			inc["EDIFF"] = perAtom * c.NumAtoms()
			continue
		}

		table, isMap := raw.(map[string]float64)
		if !isMap {
			inc[key] = raw
			continue
		}

		if key == "MAGMOM" {
			moments := make([]Magmom, 0, len(els))
			for _, el := range els {
				value, ok := table[el.Symbol()]
				if !ok {
					value = defaultMagmom
				}
				count := int(math.Round(c.Amount(el)))
				if count < 1 {
					count = 1
				}
				moments = append(moments, Magmom{Count: count, Value: value})
			}
			inc[key] = moments
			continue
		}

		values := make([]float64, 0, len(els))
		for _, el := range els {
			values = append(values, table[el.Symbol()])
		}
		inc[key] = values
	}
	return inc, nil
}

// ldauApplies reports whether the LDAU block should be written: at least one
// species carries a U value and the composition contains O or F.
func (p *Preset) ldauApplies(c periodic.Composition) bool {
	table, ok := p.incar.ElementMap("LDAUU")
	if !ok {
		return false
	}
	hasU := false
	for _, el := range c.Elements() {
		if table[el.Symbol()] > 0 {
			hasU = true
			break
		}
	}
	if !hasU {
		return false
	}
	for _, sym := range []string{"O", "F"} {
		if el, err := periodic.FromSymbol(sym); err == nil && c.Contains(el) {
			return true
		}
	}
	return false
}

func isLDAUKey(key string) bool {
	return strings.HasPrefix(key, "LDAU") || key == "LMAXMIX"
}

// Kpoints builds the k-point sampling for a composition.
func (p *Preset) Kpoints(c periodic.Composition) Kpoints {
	density, ok := p.kpoints.Int("grid_density")
	if !ok {
		density = 1000
	}
	return Kpoints{
		Comment:     fmt.Sprintf("%s grid density %d / atom", p.name, density),
		GridDensity: density,
	}
}

// PotcarSymbols returns the pseudopotential symbol for each element present,
// ordered by electronegativity. Elements without a mapping use their bare
// symbol.
func (p *Preset) PotcarSymbols(c periodic.Composition) ([]string, error) {
	symbols := make([]string, 0, len(c.Elements()))
	for _, el := range c.Elements() {
		sym := el.Symbol()
		if p.potcar != nil {
			if mapped, ok := p.potcar.String(el.Symbol()); ok {
				sym = mapped
			}
		}
		symbols = append(symbols, sym)
	}
	return symbols, nil
}

// RegisterPresets registers every preset from a parsed file.
func RegisterPresets(r *Registry, f *cfg.File) error {
	presets, err := LoadPresets(f)
	if err != nil {
		return err
	}
	for _, p := range presets {
		p := p
		if err := r.Register(p.Name(), func() InputSet { return p }); err != nil {
			return err
		}
	}
	return nil
}

// init registers the built-in input sets
func init() {
	f, err := cfg.Parse(strings.NewReader(builtinPresets))
	if err != nil {
		panic(fmt.Sprintf("built-in presets are malformed: %v", err))
	}
	if err := RegisterPresets(DefaultRegistry, f); err != nil {
		panic(fmt.Sprintf("failed to register built-in input sets: %v", err))
	}
}
