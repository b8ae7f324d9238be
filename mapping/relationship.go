package mapping

import (
	"github.com/syssam/relmap/graph"
)

// Descriptor holds the accumulated declaration of one relationship. It is
// read by the environment when building the mapper.
type Descriptor struct {
	// Name is the declared relationship name.
	Name string
	// Target is the target model name.
	Target string
	// Type holds the cardinality of the relationship.
	Type graph.Rel
	// ForeignKey is the join column holding the reference, if declared.
	ForeignKey string
	// References is the referenced key column, if declared.
	References string
}

// RelationshipBuilder is the fluent builder for a relationship declaration.
type RelationshipBuilder struct {
	desc Descriptor
}

// HasOne declares a one-to-one relationship to the target model.
//
//	mapping.HasOne("profile", "Profile")
func HasOne(name, target string) *RelationshipBuilder {
	return &RelationshipBuilder{desc: Descriptor{Name: name, Target: target, Type: graph.O2O}}
}

// HasMany declares a one-to-many relationship to the target model.
//
//	mapping.HasMany("posts", "Post")
func HasMany(name, target string) *RelationshipBuilder {
	return &RelationshipBuilder{desc: Descriptor{Name: name, Target: target, Type: graph.O2M}}
}

// BelongsTo declares a many-to-one relationship to the target model.
//
//	mapping.BelongsTo("author", "User").On("user_id")
func BelongsTo(name, target string) *RelationshipBuilder {
	return &RelationshipBuilder{desc: Descriptor{Name: name, Target: target, Type: graph.M2O}}
}

// ManyToMany declares a many-to-many relationship to the target model.
//
//	mapping.ManyToMany("tags", "Tag")
func ManyToMany(name, target string) *RelationshipBuilder {
	return &RelationshipBuilder{desc: Descriptor{Name: name, Target: target, Type: graph.M2M}}
}

// On sets the foreign-key column of the join predicate.
func (b *RelationshipBuilder) On(column string) *RelationshipBuilder {
	b.desc.ForeignKey = column
	return b
}

// References sets the referenced key column of the join predicate. When left
// unset, the target mapper's key applies.
func (b *RelationshipBuilder) References(column string) *RelationshipBuilder {
	b.desc.References = column
	return b
}

// Descriptor returns a copy of the accumulated declaration.
func (b *RelationshipBuilder) Descriptor() *Descriptor {
	desc := b.desc
	return &desc
}
