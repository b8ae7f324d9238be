// Package mapping provides fluent builders for declaring how domain models
// bind to relations.
//
// A Definition is a mutable draft: keys, attributes and relationships
// accumulate through chained calls, and the environment reads the draft once
// when building the immutable mapper.
//
//	def := mapping.New().
//	    Key("id").
//	    Attribute("title", "body").
//	    Relationship(
//	        mapping.BelongsTo("author", "User").On("user_id"),
//	        mapping.ManyToMany("tags", "Tag"),
//	    )
//
// # Relationship Cardinality
//
// Each relationship builder fixes a cardinality:
//
//	mapping.HasOne("profile", "Profile")     // O2O
//	mapping.HasMany("posts", "Post")         // O2M
//	mapping.BelongsTo("author", "User")      // M2O
//	mapping.ManyToMany("groups", "Group")    // M2M
//
// # Join Predicates
//
// On sets the foreign-key column, References the referenced key column:
//
//	mapping.BelongsTo("author", "User").
//	    On("user_id").
//	    References("id")
//
// Relationships stay unresolved declarations until the environment's
// finalize pass resolves them against the built mappers.
package mapping
