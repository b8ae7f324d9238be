package mapping

// Definition is a mutable draft describing how one domain model binds to a
// relation: its relation name, key attributes, plain attributes and declared
// relationships. A Definition accumulates declarations through its fluent
// methods and is read once when the environment builds the mapper; the
// resulting mapper is immutable.
type Definition struct {
	relation      string
	keys          []string
	attributes    []string
	relationships []*RelationshipBuilder
}

// New returns a new empty mapping definition.
func New() *Definition {
	return &Definition{}
}

// Relation overrides the relation name the model maps to. When left unset,
// the relation name defaults to the pluralized snake-case form of the model
// name (e.g. "BlogPost" maps to "blog_posts").
func (d *Definition) Relation(name string) *Definition {
	d.relation = name
	return d
}

// Key declares one or more key attributes.
func (d *Definition) Key(names ...string) *Definition {
	d.keys = append(d.keys, names...)
	return d
}

// Attribute declares one or more plain attributes.
func (d *Definition) Attribute(names ...string) *Definition {
	d.attributes = append(d.attributes, names...)
	return d
}

// Relationship appends relationship declarations. Declaration order is
// preserved through to connector insertion order during finalization.
func (d *Definition) Relationship(builders ...*RelationshipBuilder) *Definition {
	d.relationships = append(d.relationships, builders...)
	return d
}

// RelationName returns the declared relation name, or empty if the default
// applies.
func (d *Definition) RelationName() string {
	return d.relation
}

// Keys returns a copy of the declared key attributes.
func (d *Definition) Keys() []string {
	keys := make([]string, len(d.keys))
	copy(keys, d.keys)
	return keys
}

// Attributes returns a copy of the declared plain attributes.
func (d *Definition) Attributes() []string {
	attrs := make([]string, len(d.attributes))
	copy(attrs, d.attributes)
	return attrs
}

// Relationships returns the relationship descriptors in declaration order.
func (d *Definition) Relationships() []*Descriptor {
	descs := make([]*Descriptor, len(d.relationships))
	for i, b := range d.relationships {
		descs[i] = b.Descriptor()
	}
	return descs
}
