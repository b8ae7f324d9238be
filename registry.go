package relmap

// Registry is the one-to-one mapping from model identity to mapper. It is
// additive only: no removal operation exists, and registering a model twice
// fails.
type Registry struct {
	mappers map[string]*Mapper
}

// NewRegistry returns a new empty registry.
func NewRegistry() *Registry {
	return &Registry{mappers: make(map[string]*Mapper)}
}

// Register adds a mapper under the given model identity. It fails with
// DuplicateMapperError if the model is already present.
func (r *Registry) Register(model string, m *Mapper) error {
	if _, ok := r.mappers[model]; ok {
		return NewDuplicateMapperError(model)
	}
	r.mappers[model] = m
	return nil
}

// Lookup returns the mapper registered for the given model. It fails with
// UnknownMapperError if the model was never registered.
func (r *Registry) Lookup(model string) (*Mapper, error) {
	m, ok := r.mappers[model]
	if !ok {
		return nil, NewUnknownMapperError(model)
	}
	return m, nil
}

// Has reports whether a mapper is registered for the given model.
func (r *Registry) Has(model string) bool {
	_, ok := r.mappers[model]
	return ok
}

// Len returns the number of registered mappers.
func (r *Registry) Len() int {
	return len(r.mappers)
}
