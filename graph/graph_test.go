package graph_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/relmap/graph"
)

// TestAddNode tests node registration and name uniqueness.
func TestAddNode(t *testing.T) {
	t.Parallel()

	g := graph.New()
	users := graph.NewNode("users", nil)
	require.NoError(t, g.AddNode(users))

	t.Run("Lookup", func(t *testing.T) {
		n, ok := g.Node("users")
		assert.True(t, ok)
		assert.Same(t, users, n)

		_, ok = g.Node("posts")
		assert.False(t, ok)
	})

	t.Run("DuplicateName", func(t *testing.T) {
		err := g.AddNode(graph.NewNode("users", nil))
		require.Error(t, err)
		assert.True(t, graph.IsDuplicateNode(err))
		assert.True(t, errors.Is(err, graph.ErrDuplicateNode))

		var e *graph.DuplicateNodeError
		require.True(t, errors.As(err, &e))
		assert.Equal(t, "users", e.Node())
		assert.Len(t, g.Nodes(), 1)
	})
}

// TestAddEdge tests structural edge declarations and endpoint checks.
func TestAddEdge(t *testing.T) {
	t.Parallel()

	g := graph.New()
	users := graph.NewNode("users", nil)
	posts := graph.NewNode("posts", nil)
	require.NoError(t, g.AddNode(users))
	require.NoError(t, g.AddNode(posts))

	t.Run("MemberEndpoints", func(t *testing.T) {
		e, err := g.AddEdge(users, posts, "user_posts")
		require.NoError(t, err)
		assert.Equal(t, "user_posts", e.Name())
		assert.Same(t, users, e.Source())
		assert.Same(t, posts, e.Target())
		assert.Len(t, g.Edges(), 1)
	})

	t.Run("UnregisteredEndpoint", func(t *testing.T) {
		before := len(g.Edges())
		_, err := g.AddEdge(graph.NewNode("tags", nil), posts, "x")
		require.Error(t, err)
		assert.True(t, graph.IsUnknownNode(err))
		assert.Len(t, g.Edges(), before)
	})

	t.Run("UnregisteredNodeWithRegisteredName", func(t *testing.T) {
		// A distinct node instance carrying a member name must not pass.
		before := len(g.Edges())
		impostor := graph.NewNode("users", nil)
		_, err := g.AddEdge(impostor, posts, "x")
		require.Error(t, err)
		assert.True(t, graph.IsUnknownNode(err))
		assert.Len(t, g.Edges(), before)
	})

	t.Run("NilEndpoint", func(t *testing.T) {
		_, err := g.AddEdge(nil, posts, "x")
		require.Error(t, err)
		assert.True(t, graph.IsUnknownNode(err))
	})
}

// TestAddConnector tests connector creation and name uniqueness.
func TestAddConnector(t *testing.T) {
	t.Parallel()

	g := graph.New()
	users := graph.NewNode("users", nil)
	posts := graph.NewNode("posts", nil)
	require.NoError(t, g.AddNode(users))
	require.NoError(t, g.AddNode(posts))

	rel := graph.Relationship{
		Name:        "author",
		SourceModel: "Post",
		TargetModel: "User",
		Type:        graph.M2O,
		Predicate:   graph.Predicate{ForeignKey: "user_id", References: "id"},
	}

	c, err := g.AddConnector("author", rel, posts, users)
	require.NoError(t, err)
	assert.Equal(t, "author", c.Name())
	assert.Equal(t, rel, c.Relationship())
	assert.Same(t, posts, c.Source())
	assert.Same(t, users, c.Target())
	assert.True(t, g.HasConnector("author"))

	t.Run("DuplicateName", func(t *testing.T) {
		_, err := g.AddConnector("author", rel, users, posts)
		require.Error(t, err)
		assert.True(t, graph.IsDuplicateConnector(err))
		assert.True(t, errors.Is(err, graph.ErrDuplicateConnector))
		assert.Len(t, g.Connectors(), 1)
	})

	t.Run("UnknownEndpoint", func(t *testing.T) {
		_, err := g.AddConnector("tags", rel, posts, graph.NewNode("tags", nil))
		require.Error(t, err)
		assert.True(t, graph.IsUnknownNode(err))
		assert.False(t, g.HasConnector("tags"))
	})
}

// TestReadAccessorsAreSnapshots tests that the read accessors return copies.
func TestReadAccessorsAreSnapshots(t *testing.T) {
	t.Parallel()

	g := graph.New()
	users := graph.NewNode("users", nil)
	posts := graph.NewNode("posts", nil)
	require.NoError(t, g.AddNode(users))
	require.NoError(t, g.AddNode(posts))
	_, err := g.AddConnector("posts", graph.Relationship{Name: "posts"}, users, posts)
	require.NoError(t, err)

	nodes := g.Nodes()
	nodes[0] = nil
	fresh, ok := g.Node("users")
	assert.True(t, ok)
	assert.Same(t, users, fresh)
	assert.Same(t, users, g.Nodes()[0])

	connectors := g.Connectors()
	delete(connectors, "posts")
	assert.True(t, g.HasConnector("posts"))
}

// TestConnectorOrder tests that connector insertion order is preserved.
func TestConnectorOrder(t *testing.T) {
	t.Parallel()

	g := graph.New()
	a := graph.NewNode("a", nil)
	b := graph.NewNode("b", nil)
	require.NoError(t, g.AddNode(a))
	require.NoError(t, g.AddNode(b))

	for _, name := range []string{"third", "first", "second"} {
		_, err := g.AddConnector(name, graph.Relationship{Name: name}, a, b)
		require.NoError(t, err)
	}
	assert.Equal(t, []string{"third", "first", "second"}, g.ConnectorNames())
}

// TestRelString tests the cardinality names.
func TestRelString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "O2O", graph.O2O.String())
	assert.Equal(t, "O2M", graph.O2M.String())
	assert.Equal(t, "M2O", graph.M2O.String())
	assert.Equal(t, "M2M", graph.M2M.String())
	assert.Equal(t, "Unknown", graph.Unk.String())
}
