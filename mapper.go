package relmap

import (
	"github.com/go-openapi/inflect"

	"github.com/syssam/relmap/graph"
	"github.com/syssam/relmap/mapping"
	"github.com/syssam/relmap/repo"
)

var rules = inflect.NewDefaultRuleset()

// Mapper binds one domain model to one relation node: the model's identity,
// the repository it lives in, its key and plain attributes, and its declared
// relationships. A mapper is immutable once built; relationships are
// read-only input to the finalize pass.
type Mapper struct {
	model         string
	repository    string
	relation      string
	keys          []string
	attributes    []string
	relationships []graph.Relationship
	node          *graph.Node
}

// newMapper constructs a mapper from a mapping definition. The relation name
// defaults to the pluralized snake-case form of the model name, and the
// relation node carries the repository's gateway as its underlying handle.
func newMapper(model string, r *repo.Repository, def *mapping.Definition) *Mapper {
	relation := def.RelationName()
	if relation == "" {
		relation = rules.Pluralize(rules.Underscore(model))
	}
	m := &Mapper{
		model:      model,
		repository: r.Name(),
		relation:   relation,
		keys:       def.Keys(),
		attributes: def.Attributes(),
		node:       graph.NewNode(relation, r.Gateway(relation)),
	}
	for _, d := range def.Relationships() {
		m.relationships = append(m.relationships, graph.Relationship{
			Name:        d.Name,
			SourceModel: model,
			TargetModel: d.Target,
			Type:        d.Type,
			Predicate: graph.Predicate{
				ForeignKey: d.ForeignKey,
				References: d.References,
			},
		})
	}
	return m
}

// Model returns the model identity the mapper was built for.
func (m *Mapper) Model() string { return m.model }

// Repository returns the name of the repository binding the mapper uses.
func (m *Mapper) Repository() string { return m.repository }

// Relation returns the relation name the model maps to.
func (m *Mapper) Relation() string { return m.relation }

// Label returns the snake-case label of the model.
func (m *Mapper) Label() string { return rules.Underscore(m.model) }

// Keys returns a copy of the key attributes.
func (m *Mapper) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Attributes returns a copy of the plain attributes.
func (m *Mapper) Attributes() []string {
	attrs := make([]string, len(m.attributes))
	copy(attrs, m.attributes)
	return attrs
}

// Relationships returns the relationship declarations in declaration order.
func (m *Mapper) Relationships() []graph.Relationship {
	rels := make([]graph.Relationship, len(m.relationships))
	copy(rels, m.relationships)
	return rels
}

// Node returns the mapper's relation node in the graph.
func (m *Mapper) Node() *graph.Node { return m.node }
