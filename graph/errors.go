package graph

import (
	"errors"
	"fmt"
)

// Sentinel errors for graph integrity violations.
var (
	// ErrDuplicateNode is returned when a node with the same name was
	// already registered in the graph.
	ErrDuplicateNode = errors.New("relmap: duplicate relation node")

	// ErrUnknownNode is returned when an edge or connector endpoint
	// references a node that is not part of the graph.
	ErrUnknownNode = errors.New("relmap: unknown relation node")

	// ErrDuplicateConnector is returned when a connector name is already
	// in use. Connector names are unique across the whole graph.
	ErrDuplicateConnector = errors.New("relmap: duplicate connector")
)

// DuplicateNodeError reports a node-name collision.
type DuplicateNodeError struct {
	node string
}

// Error returns the error string.
func (e *DuplicateNodeError) Error() string {
	return fmt.Sprintf("relmap: node %q already exists in the graph", e.node)
}

// Is reports whether the target matches the sentinel error for DuplicateNodeError.
func (e *DuplicateNodeError) Is(target error) bool {
	return target == ErrDuplicateNode
}

// Node returns the colliding node name.
func (e *DuplicateNodeError) Node() string {
	return e.node
}

// NewDuplicateNodeError returns a new DuplicateNodeError for the given node name.
func NewDuplicateNodeError(node string) *DuplicateNodeError {
	return &DuplicateNodeError{node: node}
}

// IsDuplicateNode returns true if the error is a DuplicateNodeError.
func IsDuplicateNode(err error) bool {
	if err == nil {
		return false
	}
	var e *DuplicateNodeError
	return errors.As(err, &e) || errors.Is(err, ErrDuplicateNode)
}

// UnknownNodeError reports an endpoint that is absent from the graph.
type UnknownNodeError struct {
	node string
}

// Error returns the error string.
func (e *UnknownNodeError) Error() string {
	return fmt.Sprintf("relmap: node %q is not registered in the graph", e.node)
}

// Is reports whether the target matches the sentinel error for UnknownNodeError.
func (e *UnknownNodeError) Is(target error) bool {
	return target == ErrUnknownNode
}

// Node returns the missing node name.
func (e *UnknownNodeError) Node() string {
	return e.node
}

// NewUnknownNodeError returns a new UnknownNodeError for the given node name.
func NewUnknownNodeError(node string) *UnknownNodeError {
	return &UnknownNodeError{node: node}
}

// IsUnknownNode returns true if the error is an UnknownNodeError.
func IsUnknownNode(err error) bool {
	if err == nil {
		return false
	}
	var e *UnknownNodeError
	return errors.As(err, &e) || errors.Is(err, ErrUnknownNode)
}

// DuplicateConnectorError reports a connector-name collision.
type DuplicateConnectorError struct {
	name string
}

// Error returns the error string.
func (e *DuplicateConnectorError) Error() string {
	return fmt.Sprintf("relmap: connector %q already exists in the graph", e.name)
}

// Is reports whether the target matches the sentinel error for DuplicateConnectorError.
func (e *DuplicateConnectorError) Is(target error) bool {
	return target == ErrDuplicateConnector
}

// Name returns the colliding connector name.
func (e *DuplicateConnectorError) Name() string {
	return e.name
}

// NewDuplicateConnectorError returns a new DuplicateConnectorError for the given name.
func NewDuplicateConnectorError(name string) *DuplicateConnectorError {
	return &DuplicateConnectorError{name: name}
}

// IsDuplicateConnector returns true if the error is a DuplicateConnectorError.
func IsDuplicateConnector(err error) bool {
	if err == nil {
		return false
	}
	var e *DuplicateConnectorError
	return errors.As(err, &e) || errors.Is(err, ErrDuplicateConnector)
}
