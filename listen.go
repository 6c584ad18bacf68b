package eventry

import "fmt"

// ListenOption adjusts how a listener is registered.
type ListenOption func(*listenConfig)

type listenConfig struct {
	insert    bool
	propagate bool
}

// WithInsert places the listener at the front of its tier instead of the
// back. Front and back are evaluated against the tier's contents at call
// time.
func WithInsert() ListenOption {
	return func(c *listenConfig) { c.insert = true }
}

// WithPropagate marks an instance-level listener for copy when one
// handle's state is merged into another with onlyPropagate set. It is
// accepted for class targets but has no class-level effect.
func WithPropagate() ListenOption {
	return func(c *listenConfig) { c.propagate = true }
}

// Listen registers cb for the named event on target.
//
// A *Class target routes to the class-level registry: the registration
// covers the class and every subclass reachable at the moment of the call,
// and does not deduplicate. A *Handle target routes to that instance's
// collection, which deduplicates by identity. Any other target fails with
// InvalidTargetError.
//
//	eventry.Listen(pool, "checkout", logCheckout)
//	eventry.Listen(handle, "checkout", metricCheckout, eventry.WithInsert())
func Listen(target any, event string, cb Listener, opts ...ListenOption) error {
	var cfg listenConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	switch t := target.(type) {
	case *Class:
		r, err := descriptorFor(t, event)
		if err != nil {
			return err
		}
		if cfg.insert {
			r.insert(cb, t)
		} else {
			r.append(cb, t)
		}
		return nil
	case *Handle:
		c, err := t.Event(event)
		if err != nil {
			return err
		}
		if cfg.insert {
			c.Insert(cb, cfg.propagate)
		} else {
			c.Append(cb, cfg.propagate)
		}
		return nil
	default:
		return &InvalidTargetError{Target: target}
	}
}

// Remove unregisters cb for the named event on target. For *Class targets
// the removal covers the current subclass tree and fails with
// ListenerNotFoundError when cb is absent from a visited sequence. For
// *Handle targets an absent listener is ignored.
func Remove(target any, event string, cb Listener) error {
	switch t := target.(type) {
	case *Class:
		r, err := descriptorFor(t, event)
		if err != nil {
			return err
		}
		return r.remove(cb, t)
	case *Handle:
		c, err := t.Event(event)
		if err != nil {
			return err
		}
		c.Remove(cb)
		return nil
	default:
		return &InvalidTargetError{Target: target}
	}
}

// Clear empties the named event's listeners for target. For *Class targets
// this empties every class node's sequence for the event across the whole
// registry; for *Handle targets only the instance-owned tier is cleared.
func Clear(target any, event string) error {
	switch t := target.(type) {
	case *Class:
		r, err := descriptorFor(t, event)
		if err != nil {
			return err
		}
		r.clear()
		return nil
	case *Handle:
		c, err := t.Event(event)
		if err != nil {
			return err
		}
		c.Clear()
		return nil
	default:
		return &InvalidTargetError{Target: target}
	}
}

// descriptorFor resolves the class-level registry for a class-target
// operation via the nearest declared dispatcher.
func descriptorFor(c *Class, event string) (*registry, error) {
	d, ok := c.resolveDispatcher()
	if !ok {
		return nil, fmt.Errorf("%w: class %q", ErrNoDispatcher, c.Name())
	}
	return d.descriptor(event)
}
