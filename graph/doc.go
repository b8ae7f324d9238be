// Package graph provides the relation graph: the shared topology of relation
// nodes, structural edges and relationship connectors that the mapping core
// builds and consumers read.
//
// # Structure
//
// A Graph aggregates three kinds of elements:
//
//   - relation nodes, ordered, one per mapper
//   - structural edges, ordered, added by explicit join declarations
//   - connectors, name-keyed, created only by the finalize pass
//
// Nodes are added at build time. Edges are added by explicit structural
// declarations before finalization. Connectors are added exclusively by the
// finalize pass, which resolves every declared relationship into one
// connector.
//
// # Integrity
//
// The graph enforces strict referential invariants:
//
//   - node names are unique (DuplicateNodeError)
//   - edges and connectors may only reference member nodes (UnknownNodeError)
//   - connector names are unique across the whole graph (DuplicateConnectorError)
//
// A failed mutation leaves the graph unchanged.
//
// # Relationships
//
// A Relationship declaration names a target model, a cardinality and a join
// predicate:
//
//	graph.Relationship{
//	    Name:        "author",
//	    SourceModel: "Post",
//	    TargetModel: "User",
//	    Type:        graph.M2O,
//	    Predicate:   graph.Predicate{ForeignKey: "user_id", References: "id"},
//	}
//
// Cardinalities follow the usual four relation types:
//
//   - O2O (One-to-One): User has one Profile
//   - O2M (One-to-Many): User has many Posts
//   - M2O (Many-to-One): Post belongs to User
//   - M2M (Many-to-Many): User has many Groups, Group has many Users
//
// # Snapshots
//
// The read accessors (Nodes, Edges, Connectors) return copies; callers must
// treat them as read-only snapshots. Snapshot produces a serializable view
// of the whole topology for caching and diffing:
//
//	data, err := g.Snapshot().MarshalBinary()
package graph
