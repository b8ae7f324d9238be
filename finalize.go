package relmap

import (
	"github.com/syssam/relmap/graph"
)

// finalizer resolves every mapper's declared relationships into connectors
// on the shared graph, exactly once.
type finalizer struct {
	registry *Registry
	graph    *graph.Graph
}

// finalize runs the single resolution pass: mappers in build order,
// relationships in declaration order. The whole pass is validated before any
// connector is committed, so a failure leaves the graph exactly as it was.
func (f *finalizer) finalize(mappers []*Mapper) error {
	type resolved struct {
		rel      graph.Relationship
		src, dst *graph.Node
	}
	var plan []resolved
	pending := make(map[string]struct{})
	for _, m := range mappers {
		for _, rel := range m.Relationships() {
			target, err := f.registry.Lookup(rel.TargetModel)
			if err != nil {
				return NewUnknownMapperErrorForRelationship(rel.TargetModel, rel.Name)
			}
			// Connector names are unique across the whole graph, so a
			// collision within the plan fails as early as one against
			// an existing connector.
			if _, ok := pending[rel.Name]; ok || f.graph.HasConnector(rel.Name) {
				return graph.NewDuplicateConnectorError(rel.Name)
			}
			pending[rel.Name] = struct{}{}
			plan = append(plan, resolved{rel: rel, src: m.Node(), dst: target.Node()})
		}
	}
	for _, p := range plan {
		if _, err := f.graph.AddConnector(p.rel.Name, p.rel, p.src, p.dst); err != nil {
			return err
		}
	}
	return nil
}
