package relmap

import (
	"errors"
	"fmt"
)

// Sentinel errors for the mapping topology. All violations are static
// configuration errors: they are raised synchronously at the offending call
// and are never retried.
var (
	// ErrDuplicateMapper is returned when a model is built twice on one
	// environment.
	ErrDuplicateMapper = errors.New("relmap: duplicate mapper")

	// ErrUnknownMapper is returned when a model was never built: either on
	// direct lookup, or when a relationship targets it during finalization.
	ErrUnknownMapper = errors.New("relmap: unknown mapper")

	// ErrUnknownRepository is returned when a repository name was never
	// bound with Setup.
	ErrUnknownRepository = errors.New("relmap: unknown repository")
)

// DuplicateMapperError reports a model that was already built.
type DuplicateMapperError struct {
	model string
}

// Error returns the error string.
func (e *DuplicateMapperError) Error() string {
	return fmt.Sprintf("relmap: mapper for model %q already built", e.model)
}

// Is reports whether the target matches the sentinel error for DuplicateMapperError.
func (e *DuplicateMapperError) Is(target error) bool {
	return target == ErrDuplicateMapper
}

// Model returns the model name.
func (e *DuplicateMapperError) Model() string {
	return e.model
}

// NewDuplicateMapperError returns a new DuplicateMapperError for the given model.
func NewDuplicateMapperError(model string) *DuplicateMapperError {
	return &DuplicateMapperError{model: model}
}

// IsDuplicateMapper returns true if the error is a DuplicateMapperError.
func IsDuplicateMapper(err error) bool {
	if err == nil {
		return false
	}
	var e *DuplicateMapperError
	return errors.As(err, &e) || errors.Is(err, ErrDuplicateMapper)
}

// UnknownMapperError reports a model that was never built. When the lookup
// happened while resolving a relationship, Relationship names the offending
// declaration for diagnosis.
type UnknownMapperError struct {
	model        string
	relationship string
}

// Error returns the error string.
func (e *UnknownMapperError) Error() string {
	if e.relationship != "" {
		return fmt.Sprintf("relmap: mapper for model %q was never built (required by relationship %q)", e.model, e.relationship)
	}
	return fmt.Sprintf("relmap: mapper for model %q was never built", e.model)
}

// Is reports whether the target matches the sentinel error for UnknownMapperError.
func (e *UnknownMapperError) Is(target error) bool {
	return target == ErrUnknownMapper
}

// Model returns the model name.
func (e *UnknownMapperError) Model() string {
	return e.model
}

// Relationship returns the relationship that required the model, if any.
func (e *UnknownMapperError) Relationship() string {
	return e.relationship
}

// NewUnknownMapperError returns a new UnknownMapperError for the given model.
func NewUnknownMapperError(model string) *UnknownMapperError {
	return &UnknownMapperError{model: model}
}

// NewUnknownMapperErrorForRelationship returns a new UnknownMapperError with
// the relationship that required the model.
func NewUnknownMapperErrorForRelationship(model, relationship string) *UnknownMapperError {
	return &UnknownMapperError{model: model, relationship: relationship}
}

// IsUnknownMapper returns true if the error is an UnknownMapperError.
func IsUnknownMapper(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownMapperError
	return errors.As(err, &e) || errors.Is(err, ErrUnknownMapper)
}

// UnknownRepositoryError reports a repository name that was never bound.
type UnknownRepositoryError struct {
	name string
}

// Error returns the error string.
func (e *UnknownRepositoryError) Error() string {
	return fmt.Sprintf("relmap: repository %q was never set up", e.name)
}

// Is reports whether the target matches the sentinel error for UnknownRepositoryError.
func (e *UnknownRepositoryError) Is(target error) bool {
	return target == ErrUnknownRepository
}

// Name returns the repository name.
func (e *UnknownRepositoryError) Name() string {
	return e.name
}

// NewUnknownRepositoryError returns a new UnknownRepositoryError for the given name.
func NewUnknownRepositoryError(name string) *UnknownRepositoryError {
	return &UnknownRepositoryError{name: name}
}

// IsUnknownRepository returns true if the error is an UnknownRepositoryError.
func IsUnknownRepository(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownRepositoryError
	return errors.As(err, &e) || errors.Is(err, ErrUnknownRepository)
}
