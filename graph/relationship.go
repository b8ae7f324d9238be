package graph

// Rel is the cardinality of a declared relationship.
type Rel int

// Relationship cardinalities.
const (
	Unk Rel = iota // Unknown.
	O2O            // One to one / has one.
	O2M            // One to many / has many.
	M2O            // Many to one / belongs to.
	M2M            // Many to many.
)

// String returns the cardinality name.
func (r Rel) String() string {
	s := "Unknown"
	switch r {
	case O2O:
		s = "O2O"
	case O2M:
		s = "O2M"
	case M2O:
		s = "M2O"
	case M2M:
		s = "M2M"
	}
	return s
}

// Predicate is the join predicate of a relationship: the foreign-key column
// on the owning side and the key column it references on the target side.
type Predicate struct {
	// ForeignKey is the column holding the reference.
	ForeignKey string
	// References is the referenced key column. Defaults to the target
	// mapper's key when empty.
	References string
}

// Relationship is a declaration made on a mapper, naming another model, a
// cardinality and a join predicate. It stays unresolved until finalization
// turns it into a connector.
type Relationship struct {
	// Name is the declared relationship name. It becomes the connector name.
	Name string
	// SourceModel is the model the declaration was made on.
	SourceModel string
	// TargetModel is the model the relationship points to.
	TargetModel string
	// Type holds the cardinality of the relationship.
	Type Rel
	// Predicate holds the join predicate.
	Predicate Predicate
}
