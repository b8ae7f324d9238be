package graph

import (
	"github.com/vmihailenco/msgpack/v5"
)

// Snapshot is a serializable view of a graph's topology: node names, edge
// labels with their endpoints, and resolved connectors. It carries no
// relation handles, so it can be cached and diffed across runs.
type Snapshot struct {
	Nodes      []string            `msgpack:"nodes"`
	Edges      []EdgeSnapshot      `msgpack:"edges"`
	Connectors []ConnectorSnapshot `msgpack:"connectors"`
}

// EdgeSnapshot is the serializable form of a structural edge.
type EdgeSnapshot struct {
	Name   string `msgpack:"name"`
	Source string `msgpack:"source"`
	Target string `msgpack:"target"`
}

// ConnectorSnapshot is the serializable form of a connector together with
// its originating relationship declaration.
type ConnectorSnapshot struct {
	Name        string `msgpack:"name"`
	Source      string `msgpack:"source"`
	Target      string `msgpack:"target"`
	SourceModel string `msgpack:"source_model"`
	TargetModel string `msgpack:"target_model"`
	Type        Rel    `msgpack:"type"`
	ForeignKey  string `msgpack:"foreign_key"`
	References  string `msgpack:"references"`
}

// Snapshot returns a point-in-time snapshot of the graph topology. Nodes and
// edges appear in declaration order, connectors in insertion order.
func (g *Graph) Snapshot() *Snapshot {
	s := &Snapshot{
		Nodes:      make([]string, 0, len(g.nodes)),
		Edges:      make([]EdgeSnapshot, 0, len(g.edges)),
		Connectors: make([]ConnectorSnapshot, 0, len(g.corder)),
	}
	for _, n := range g.nodes {
		s.Nodes = append(s.Nodes, n.name)
	}
	for _, e := range g.edges {
		s.Edges = append(s.Edges, EdgeSnapshot{
			Name:   e.name,
			Source: e.source.name,
			Target: e.target.name,
		})
	}
	for _, name := range g.corder {
		c := g.connectors[name]
		s.Connectors = append(s.Connectors, ConnectorSnapshot{
			Name:        c.name,
			Source:      c.source.name,
			Target:      c.target.name,
			SourceModel: c.rel.SourceModel,
			TargetModel: c.rel.TargetModel,
			Type:        c.rel.Type,
			ForeignKey:  c.rel.Predicate.ForeignKey,
			References:  c.rel.Predicate.References,
		})
	}
	return s
}

// MarshalBinary encodes the snapshot with msgpack.
func (s *Snapshot) MarshalBinary() ([]byte, error) {
	return msgpack.Marshal(s)
}

// UnmarshalBinary decodes a msgpack-encoded snapshot.
func (s *Snapshot) UnmarshalBinary(data []byte) error {
	return msgpack.Unmarshal(data, s)
}
