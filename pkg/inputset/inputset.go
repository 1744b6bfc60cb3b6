// Package inputset provides named VASP input-set presets and writers for the
// INCAR, KPOINTS and POTCAR files they generate.
package inputset

import (
	"fmt"
	"sort"
	"sync"

	"github.com/matforge/matforge/pkg/periodic"
)

// InputSet defines the interface all input sets implement.
type InputSet interface {
	// Name returns the name of the input set
	Name() string

	// Description returns a brief description of the input set
	Description() string

	// Incar returns the INCAR parameters for a composition
	Incar(c periodic.Composition) (Incar, error)

	// Kpoints returns the k-point sampling for a composition
	Kpoints(c periodic.Composition) Kpoints

	// PotcarSymbols returns the pseudopotential symbols for a composition,
	// ordered by electronegativity
	PotcarSymbols(c periodic.Composition) ([]string, error)
}

// Registry manages available input sets
type Registry struct {
	mu   sync.RWMutex
	sets map[string]func() InputSet
}

// NewRegistry creates a new input-set registry
func NewRegistry() *Registry {
	return &Registry{
		sets: make(map[string]func() InputSet),
	}
}

// Register adds an input set to the registry
func (r *Registry) Register(name string, factory func() InputSet) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.sets[name]; exists {
		return fmt.Errorf("input set %s already registered", name)
	}

	r.sets[name] = factory
	return nil
}

// Get returns a new instance of the requested input set
func (r *Registry) Get(name string) (InputSet, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	factory, exists := r.sets[name]
	if !exists {
		return nil, fmt.Errorf("input set %s not found", name)
	}

	return factory(), nil
}

// List returns all registered input-set names
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.sets))
	for name := range r.sets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// DefaultRegistry is the global input-set registry
var DefaultRegistry = NewRegistry()
