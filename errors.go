package eventry

import (
	"errors"
	"fmt"
)

// ErrNoDispatcher is returned when neither a class nor any of its ancestors
// declares a dispatcher.
var ErrNoDispatcher = errors.New("no dispatcher declared")

// ErrInvalidCatalog is returned when a catalog document is not valid JSON.
var ErrInvalidCatalog = errors.New("invalid catalog document")

// ErrInvalidSnapshot is returned when a snapshot document is not valid JSON
// or is missing required fields.
var ErrInvalidSnapshot = errors.New("invalid snapshot document")

// InvalidTargetError indicates a registration call received a target that
// is neither a *Class nor a *Handle.
type InvalidTargetError struct {
	Target any
}

func (e *InvalidTargetError) Error() string {
	return fmt.Sprintf("invalid target %T: want *Class or *Handle", e.Target)
}

// ListenerNotFoundError indicates removal of a listener that is absent from
// the sequence it was being removed from.
type ListenerNotFoundError struct {
	Event string
	Class string
}

func (e *ListenerNotFoundError) Error() string {
	return fmt.Sprintf("listener not found for event %q on class %q", e.Event, e.Class)
}

// UnknownEventError indicates an event name that the target's catalog does
// not declare.
type UnknownEventError struct {
	Event   string
	Catalog string
}

func (e *UnknownEventError) Error() string {
	return fmt.Sprintf("unknown event %q in catalog %q", e.Event, e.Catalog)
}

// ReconstructionError indicates a dispatch handle could not be rebuilt
// because no ancestor of the class declares a dispatcher.
type ReconstructionError struct {
	Class string
}

func (e *ReconstructionError) Error() string {
	return fmt.Sprintf("cannot reconstruct dispatch handle: no ancestor of class %q declares a dispatcher", e.Class)
}
