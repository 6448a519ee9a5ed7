package discovery

import (
	"context"
	"fmt"

	"github.com/docfinder/docfinder-mcp/internal/model"
	"github.com/docfinder/docfinder-mcp/pkg/types"
)

// DefaultGroups is the fixed allow-list of sub-namespace groupings that
// discovery force-includes when the object model exposes them: I/O
// operations, top-level functions, type-conversion helpers, and data-type
// definitions. A missing grouping is silently skipped.
var DefaultGroups = []string{"io", "functions", "convert", "datatypes"}

// Set is the ordered, name-keyed result of component discovery. Iteration
// over Names preserves discovery order; a later strategy writing an
// existing name replaces the component but keeps its original position.
type Set struct {
	names  []string
	byName map[string]model.Component
}

// Names returns the canonical component names in discovery order.
func (s *Set) Names() []string {
	return s.names
}

// Get returns the component registered under the given canonical name.
func (s *Set) Get(name string) (model.Component, bool) {
	comp, ok := s.byName[name]
	return comp, ok
}

// Len reports the number of discovered components.
func (s *Set) Len() int {
	return len(s.names)
}

func (s *Set) add(comp model.Component) {
	name := comp.Name()
	if _, exists := s.byName[name]; !exists {
		s.names = append(s.names, name)
	}
	// Last writer wins on name collisions across strategies.
	s.byName[name] = comp
}

// Discoverer enumerates the indexable components of an object model.
type Discoverer struct {
	model  model.Model
	groups []string
}

// New creates a Discoverer with the default sub-namespace allow-list.
func New(m model.Model) *Discoverer {
	return NewWithGroups(m, DefaultGroups)
}

// NewWithGroups creates a Discoverer with a custom allow-list.
func NewWithGroups(m model.Model, groups []string) *Discoverer {
	return &Discoverer{model: m, groups: groups}
}

// Discover enumerates components fresh from the object model: class-like
// entities first, then free functions, then the allow-listed groupings.
// Discovery is read-only; the only error it can return is total
// unavailability of the model.
func (d *Discoverer) Discover(ctx context.Context) (*Set, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entities, err := d.model.Entities()
	if err != nil {
		return nil, fmt.Errorf("discovering components: %w", err)
	}

	set := &Set{byName: make(map[string]model.Component, len(entities))}

	for _, comp := range entities {
		if comp.Kind() == types.KindClass {
			set.add(comp)
		}
	}
	for _, comp := range entities {
		if comp.Kind() == types.KindFunction {
			set.add(comp)
		}
	}
	for _, name := range d.groups {
		if grp, ok := d.model.Group(name); ok {
			set.add(grp)
		}
	}

	return set, nil
}
