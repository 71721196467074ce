package gamedata

import "fmt"

// Identified is implemented by every definition stored in a Registry.
type Identified interface {
	Key() string
}

// Registry holds definitions in file order and looks them up by ID.
type Registry[T Identified] struct {
	byID map[string]int
	all  []T
}

// NewRegistry indexes the given definitions. Duplicate or empty IDs are an error.
func NewRegistry[T Identified](defs []T) (*Registry[T], error) {
	r := &Registry[T]{
		byID: make(map[string]int, len(defs)),
		all:  defs,
	}
	for i := range defs {
		id := defs[i].Key()
		if id == "" {
			return nil, fmt.Errorf("gamedata: entry %d has an empty id", i)
		}
		if _, dup := r.byID[id]; dup {
			return nil, fmt.Errorf("gamedata: duplicate id %q", id)
		}
		r.byID[id] = i
	}
	return r, nil
}

// Get returns the definition with the given ID.
func (r *Registry[T]) Get(id string) (T, bool) {
	i, ok := r.byID[id]
	if !ok {
		var zero T
		return zero, false
	}
	return r.all[i], true
}

// All returns every definition in file order.
func (r *Registry[T]) All() []T {
	return r.all
}

// IDs returns every ID in file order.
func (r *Registry[T]) IDs() []string {
	ids := make([]string, len(r.all))
	for i := range r.all {
		ids[i] = r.all[i].Key()
	}
	return ids
}

// Count returns the number of definitions.
func (r *Registry[T]) Count() int {
	return len(r.all)
}
