package graph

// Node is a named relation node: the storage-level equivalent of a table.
// The underlying relation handle is opaque to the graph; it is whatever the
// repository adapter returned for the relation.
type Node struct {
	name   string
	handle any
}

// NewNode returns a new relation node with the given name and underlying
// relation handle.
func NewNode(name string, handle any) *Node {
	return &Node{name: name, handle: handle}
}

// Name returns the relation name.
func (n *Node) Name() string { return n.name }

// Handle returns the opaque underlying-relation handle.
func (n *Node) Handle() any { return n.handle }

// Edge is a structural pairing of two nodes with a name label. Edges are
// declared explicitly (e.g. joins) before finalization and are never created
// by the finalize pass.
type Edge struct {
	name   string
	source *Node
	target *Node
}

// Name returns the edge label.
func (e *Edge) Name() string { return e.name }

// Source returns the source node.
func (e *Edge) Source() *Node { return e.source }

// Target returns the target node.
func (e *Edge) Target() *Node { return e.target }

// Connector is a specialized edge created exclusively during finalization.
// It represents one resolved relationship between two relation nodes.
type Connector struct {
	name   string
	rel    Relationship
	source *Node
	target *Node
}

// Name returns the connector name (the relationship's declared name).
func (c *Connector) Name() string { return c.name }

// Relationship returns the originating relationship declaration.
func (c *Connector) Relationship() Relationship { return c.rel }

// Source returns the source node.
func (c *Connector) Source() *Node { return c.source }

// Target returns the target node.
func (c *Connector) Target() *Node { return c.target }

// Graph holds the relation topology: an ordered set of nodes, an ordered set
// of structural edges, and a name-keyed set of connectors. It is mutated only
// during the build and finalize phases; afterwards all consumers must treat
// it as read-only.
//
// Graph is not safe for concurrent use. The topology is built once at
// startup; callers running builds from multiple goroutines must serialize
// them externally.
type Graph struct {
	nodes      []*Node
	byName     map[string]*Node
	edges      []*Edge
	connectors map[string]*Connector
	corder     []string
}

// New returns a new empty graph.
func New() *Graph {
	return &Graph{
		byName:     make(map[string]*Node),
		connectors: make(map[string]*Connector),
	}
}

// AddNode registers a relation node. It fails with DuplicateNodeError if a
// node with the same name already exists.
func (g *Graph) AddNode(n *Node) error {
	if _, ok := g.byName[n.name]; ok {
		return NewDuplicateNodeError(n.name)
	}
	g.nodes = append(g.nodes, n)
	g.byName[n.name] = n
	return nil
}

// Node returns the node registered under the given relation name.
func (g *Graph) Node(name string) (*Node, bool) {
	n, ok := g.byName[name]
	return n, ok
}

// contains reports whether n is a member of the graph. Name equality is not
// enough: an unregistered node carrying a registered name must not pass.
func (g *Graph) contains(n *Node) bool {
	if n == nil {
		return false
	}
	return g.byName[n.name] == n
}

// AddEdge adds a structural edge between two member nodes. It fails with
// UnknownNodeError if either endpoint is absent from the graph, leaving the
// edge set unchanged.
func (g *Graph) AddEdge(source, target *Node, name string) (*Edge, error) {
	if !g.contains(source) {
		return nil, NewUnknownNodeError(nodeName(source))
	}
	if !g.contains(target) {
		return nil, NewUnknownNodeError(nodeName(target))
	}
	e := &Edge{name: name, source: source, target: target}
	g.edges = append(g.edges, e)
	return e, nil
}

// AddConnector adds a resolved-relationship connector between two member
// nodes. It fails with UnknownNodeError if either endpoint is absent, and
// with DuplicateConnectorError if the name is already in use. Connector
// names are unique across the whole graph.
func (g *Graph) AddConnector(name string, rel Relationship, source, target *Node) (*Connector, error) {
	if !g.contains(source) {
		return nil, NewUnknownNodeError(nodeName(source))
	}
	if !g.contains(target) {
		return nil, NewUnknownNodeError(nodeName(target))
	}
	if _, ok := g.connectors[name]; ok {
		return nil, NewDuplicateConnectorError(name)
	}
	c := &Connector{name: name, rel: rel, source: source, target: target}
	g.connectors[name] = c
	g.corder = append(g.corder, name)
	return c, nil
}

// HasConnector reports whether a connector with the given name exists.
func (g *Graph) HasConnector(name string) bool {
	_, ok := g.connectors[name]
	return ok
}

// Nodes returns the relation nodes in registration order. The returned slice
// is a copy and must be treated as a read-only snapshot.
func (g *Graph) Nodes() []*Node {
	nodes := make([]*Node, len(g.nodes))
	copy(nodes, g.nodes)
	return nodes
}

// Edges returns the structural edges in declaration order. The returned
// slice is a copy and must be treated as a read-only snapshot.
func (g *Graph) Edges() []*Edge {
	edges := make([]*Edge, len(g.edges))
	copy(edges, g.edges)
	return edges
}

// Connectors returns the connectors keyed by name. The returned map is a
// copy and must be treated as a read-only snapshot.
func (g *Graph) Connectors() map[string]*Connector {
	connectors := make(map[string]*Connector, len(g.connectors))
	for name, c := range g.connectors {
		connectors[name] = c
	}
	return connectors
}

// ConnectorNames returns the connector names in insertion order.
func (g *Graph) ConnectorNames() []string {
	names := make([]string, len(g.corder))
	copy(names, g.corder)
	return names
}

func nodeName(n *Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.name
}
