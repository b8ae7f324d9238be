package relmap_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/relmap"
)

func TestDuplicateMapperError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := relmap.NewDuplicateMapperError("User")
		assert.Equal(t, `relmap: mapper for model "User" already built`, err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := relmap.NewDuplicateMapperError("Post")
		assert.True(t, errors.Is(err, relmap.ErrDuplicateMapper))
	})

	t.Run("IsDuplicateMapper", func(t *testing.T) {
		err := relmap.NewDuplicateMapperError("Comment")
		assert.True(t, relmap.IsDuplicateMapper(err))

		// Wrapped error
		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, relmap.IsDuplicateMapper(wrapped))

		// Sentinel error
		assert.True(t, relmap.IsDuplicateMapper(relmap.ErrDuplicateMapper))

		// Non-matching error
		assert.False(t, relmap.IsDuplicateMapper(errors.New("other error")))
		assert.False(t, relmap.IsDuplicateMapper(nil))
	})

	t.Run("Model", func(t *testing.T) {
		assert.Equal(t, "User", relmap.NewDuplicateMapperError("User").Model())
	})
}

func TestUnknownMapperError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := relmap.NewUnknownMapperError("User")
		assert.Equal(t, `relmap: mapper for model "User" was never built`, err.Error())
	})

	t.Run("ErrorWithRelationship", func(t *testing.T) {
		err := relmap.NewUnknownMapperErrorForRelationship("User", "author")
		assert.Equal(t, `relmap: mapper for model "User" was never built (required by relationship "author")`, err.Error())
		assert.Equal(t, "author", err.Relationship())
	})

	t.Run("Is", func(t *testing.T) {
		err := relmap.NewUnknownMapperError("Post")
		assert.True(t, errors.Is(err, relmap.ErrUnknownMapper))
	})

	t.Run("IsUnknownMapper", func(t *testing.T) {
		err := relmap.NewUnknownMapperError("Comment")
		assert.True(t, relmap.IsUnknownMapper(err))

		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, relmap.IsUnknownMapper(wrapped))

		assert.True(t, relmap.IsUnknownMapper(relmap.ErrUnknownMapper))

		assert.False(t, relmap.IsUnknownMapper(errors.New("other error")))
		assert.False(t, relmap.IsUnknownMapper(nil))
	})
}

func TestUnknownRepositoryError(t *testing.T) {
	t.Run("Error", func(t *testing.T) {
		err := relmap.NewUnknownRepositoryError("default")
		assert.Equal(t, `relmap: repository "default" was never set up`, err.Error())
	})

	t.Run("Is", func(t *testing.T) {
		err := relmap.NewUnknownRepositoryError("events")
		assert.True(t, errors.Is(err, relmap.ErrUnknownRepository))
	})

	t.Run("IsUnknownRepository", func(t *testing.T) {
		err := relmap.NewUnknownRepositoryError("events")
		assert.True(t, relmap.IsUnknownRepository(err))

		wrapped := fmt.Errorf("wrapper: %w", err)
		assert.True(t, relmap.IsUnknownRepository(wrapped))

		assert.True(t, relmap.IsUnknownRepository(relmap.ErrUnknownRepository))

		assert.False(t, relmap.IsUnknownRepository(errors.New("other error")))
		assert.False(t, relmap.IsUnknownRepository(nil))
	})

	t.Run("Name", func(t *testing.T) {
		require.Equal(t, "events", relmap.NewUnknownRepositoryError("events").Name())
	})
}

// TestTaxonomyIsDisjoint tests that the helpers do not match each other's
// errors.
func TestTaxonomyIsDisjoint(t *testing.T) {
	dup := relmap.NewDuplicateMapperError("User")
	unk := relmap.NewUnknownMapperError("User")

	assert.False(t, relmap.IsUnknownMapper(dup))
	assert.False(t, relmap.IsDuplicateMapper(unk))
	assert.False(t, relmap.IsUnknownRepository(dup))
}
