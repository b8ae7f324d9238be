package relmap_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/relmap"
	"github.com/syssam/relmap/mapping"
)

// TestFinalizeOrder tests that connectors are inserted in build order across
// mappers and declaration order within one mapper.
func TestFinalizeOrder(t *testing.T) {
	t.Parallel()

	env, err := relmap.NewEnvironment().Setup("default", "mem://test")
	require.NoError(t, err)

	_, err = env.Build("User", "default", mapping.New().Key("id").
		Relationship(
			mapping.HasMany("posts", "Post"),
			mapping.HasOne("profile", "Profile"),
		))
	require.NoError(t, err)
	_, err = env.Build("Post", "default", mapping.New().Key("id").
		Relationship(
			mapping.BelongsTo("author", "User"),
			mapping.ManyToMany("tags", "Tag"),
		))
	require.NoError(t, err)
	_, err = env.Build("Profile", "default", mapping.New().Key("id"))
	require.NoError(t, err)
	_, err = env.Build("Tag", "default", mapping.New().Key("id"))
	require.NoError(t, err)

	require.NoError(t, env.Finalize())
	assert.Equal(t,
		[]string{"posts", "profile", "author", "tags"},
		env.Graph().ConnectorNames(),
	)
}

// TestFinalizeSelfReference tests a model relating to itself.
func TestFinalizeSelfReference(t *testing.T) {
	t.Parallel()

	env, err := relmap.NewEnvironment().Setup("default", "mem://test")
	require.NoError(t, err)

	users, err := env.Build("User", "default", mapping.New().Key("id").
		Relationship(mapping.BelongsTo("manager", "User").On("manager_id")))
	require.NoError(t, err)

	require.NoError(t, env.Finalize())

	c := env.Graph().Connectors()["manager"]
	require.NotNil(t, c)
	assert.Same(t, users.Node(), c.Source())
	assert.Same(t, users.Node(), c.Target())
}

// TestFinalizeEmptyEnvironment tests that finalizing with no mappers
// succeeds and flips the flag.
func TestFinalizeEmptyEnvironment(t *testing.T) {
	t.Parallel()

	env := relmap.NewEnvironment()
	require.NoError(t, env.Finalize())
	assert.True(t, env.Finalized())
	assert.Empty(t, env.Graph().Connectors())
}

// TestMapperImmutability tests that mapper accessors return detached copies.
func TestMapperImmutability(t *testing.T) {
	t.Parallel()

	env, err := relmap.NewEnvironment().Setup("default", "mem://test")
	require.NoError(t, err)

	m, err := env.Build("User", "default", mapping.New().
		Key("id").
		Attribute("name").
		Relationship(mapping.HasMany("posts", "Post")))
	require.NoError(t, err)

	keys := m.Keys()
	keys[0] = "mutated"
	assert.Equal(t, []string{"id"}, m.Keys())

	rels := m.Relationships()
	rels[0].Name = "mutated"
	assert.Equal(t, "posts", m.Relationships()[0].Name)

	assert.Equal(t, "user", m.Label())
}
