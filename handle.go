package eventry

import (
	"fmt"

	"github.com/google/uuid"
)

// Handle is the per-instance dispatch surface for one owner of a target
// type. Create one when the owner is constructed and keep it for the
// owner's lifetime; the handle's event collections are materialized lazily
// on first access.
type Handle struct {
	id          string
	owner       *Class
	dispatcher  *Dispatcher
	collections map[string]*Collection
}

// NewHandle binds a fresh dispatch handle to owner. The nearest ancestor
// of owner (including owner itself) that declares a dispatcher provides the
// event set; ErrNoDispatcher is returned when there is none.
func NewHandle(owner *Class) (*Handle, error) {
	d, ok := owner.resolveDispatcher()
	if !ok {
		return nil, fmt.Errorf("%w: class %q", ErrNoDispatcher, owner.Name())
	}
	return newHandle(owner, d), nil
}

func newHandle(owner *Class, d *Dispatcher) *Handle {
	return &Handle{
		id:          uuid.NewString(),
		owner:       owner,
		dispatcher:  d,
		collections: make(map[string]*Collection),
	}
}

// ID returns the handle's identifier. Each handle, including reconstructed
// ones, gets a fresh id.
func (h *Handle) ID() string { return h.id }

// Owner returns the class the handle is keyed by.
func (h *Handle) Owner() *Class { return h.owner }

// Dispatcher returns the dispatcher description the handle is bound to.
func (h *Handle) Dispatcher() *Dispatcher { return h.dispatcher }

// Event returns the collection for the named event, materializing it on
// first access. The class-level sequence reference and the owner class key
// are fixed at materialization and never re-resolved.
func (h *Handle) Event(name string) (*Collection, error) {
	if c, ok := h.collections[name]; ok {
		return c, nil
	}
	r, err := h.dispatcher.descriptor(name)
	if err != nil {
		return nil, err
	}
	c := newCollection(name, r.entryFor(h.owner))
	h.collections[name] = c
	return c, nil
}

// Fire invokes the named event: class-level listeners for the owner's
// class run first, then instance-level listeners, each tier in order. The
// first listener error aborts the rest and is returned unwrapped.
func (h *Handle) Fire(name string, args ...any) error {
	c, err := h.Event(name)
	if err != nil {
		return err
	}
	return c.Call(args...)
}

// FireOnce is the at-most-once variant of Fire: the named event's
// collection executes listeners only the first time, later calls are
// no-ops.
func (h *Handle) FireOnce(name string, args ...any) error {
	c, err := h.Event(name)
	if err != nil {
		return err
	}
	return c.ExecOnce(args...)
}

// UpdateFrom merges other's instance-owned listeners into h for every
// event name the two handles share. With onlyPropagate set, only
// propagate-flagged listeners are copied.
func (h *Handle) UpdateFrom(other *Handle, onlyPropagate bool) error {
	for _, name := range other.dispatcher.order {
		src, ok := other.collections[name]
		if !ok {
			continue
		}
		if _, declared := h.dispatcher.events[name]; !declared {
			continue
		}
		dst, err := h.Event(name)
		if err != nil {
			return err
		}
		dst.Update(src, onlyPropagate)
	}
	return nil
}

// Reconstruct rebuilds a dispatch handle after a serialization boundary.
// Listener callables do not survive such boundaries, so the result has
// empty instance-owned state for every event; class-level listeners remain
// visible through the live registry reference. The nearest ancestor of
// owner that declares a dispatcher provides the event set; with none, a
// ReconstructionError is returned.
func Reconstruct(owner *Class) (*Handle, error) {
	d, ok := owner.resolveDispatcher()
	if !ok {
		return nil, &ReconstructionError{Class: owner.Name()}
	}
	return newHandle(owner, d), nil
}
