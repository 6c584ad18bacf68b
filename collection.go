package eventry

// Collection is the instance-level listener state for one (handle, event)
// pair. It merges a live reference to the event's class-level sequence,
// captured once at materialization, with an independent instance-owned
// sequence.
//
// Obtain collections through Handle.Event; they are created lazily on
// first access and cached for the handle's lifetime.
type Collection struct {
	event     string
	parent    *classEntry
	listeners []Listener
	propagate map[Listener]struct{}

	// fired guards ExecOnce. Plain flag, no atomicity: concurrent first
	// calls may both execute.
	fired bool
}

func newCollection(event string, parent *classEntry) *Collection {
	return &Collection{
		event:     event,
		parent:    parent,
		propagate: make(map[Listener]struct{}),
	}
}

// Event returns the event name this collection serves.
func (c *Collection) Event() string { return c.event }

// Insert adds l to the front of the instance-owned tier. Adding a listener
// already present in the tier is a no-op. With propagate set, l becomes
// eligible for copy by propagate-only merges.
func (c *Collection) Insert(l Listener, propagate bool) {
	if indexOf(c.listeners, l) >= 0 {
		return
	}
	c.listeners = append([]Listener{l}, c.listeners...)
	if propagate {
		c.propagate[l] = struct{}{}
	}
}

// Append adds l to the back of the instance-owned tier, with the same
// dedup and propagate behavior as Insert.
func (c *Collection) Append(l Listener, propagate bool) {
	if indexOf(c.listeners, l) >= 0 {
		return
	}
	c.listeners = append(c.listeners, l)
	if propagate {
		c.propagate[l] = struct{}{}
	}
}

// Remove deletes l from the instance-owned tier and the propagate set.
// Removing a listener that was never added at the instance level is a
// no-op; class-level removal is a registry operation, not this one.
func (c *Collection) Remove(l Listener) {
	if i := indexOf(c.listeners, l); i >= 0 {
		c.listeners = append(c.listeners[:i], c.listeners[i+1:]...)
	}
	delete(c.propagate, l)
}

// Clear empties the instance-owned tier and the propagate set. The
// referenced class-level sequence is untouched.
func (c *Collection) Clear() {
	c.listeners = nil
	c.propagate = make(map[Listener]struct{})
}

// Call invokes every class-level listener in order, then every
// instance-owned listener in order, passing args through unchanged. The
// first listener error aborts the remaining listeners and is returned to
// the caller unwrapped.
func (c *Collection) Call(args ...any) error {
	for _, l := range c.parent.listeners {
		if err := l.Invoke(args...); err != nil {
			return err
		}
	}
	for _, l := range c.listeners {
		if err := l.Invoke(args...); err != nil {
			return err
		}
	}
	return nil
}

// ExecOnce behaves as Call the first time it runs on this collection;
// subsequent calls are no-ops. The guard is set before the listeners run,
// so a failing first call still consumes the one execution.
func (c *Collection) ExecOnce(args ...any) error {
	if c.fired {
		return nil
	}
	c.fired = true
	return c.Call(args...)
}

// Update merges other's instance-owned listeners into c, appending in
// other's order. With onlyPropagate set, only listeners in other's
// propagate set are considered. Listeners already present in c are
// skipped; propagate marking travels with the copy.
func (c *Collection) Update(other *Collection, onlyPropagate bool) {
	for _, l := range other.listeners {
		_, flagged := other.propagate[l]
		if onlyPropagate && !flagged {
			continue
		}
		if indexOf(c.listeners, l) >= 0 {
			continue
		}
		c.listeners = append(c.listeners, l)
		if flagged {
			c.propagate[l] = struct{}{}
		}
	}
}

// Len reports the combined length of the class-level tier and the
// instance-owned tier.
func (c *Collection) Len() int {
	return len(c.parent.listeners) + len(c.listeners)
}

// At returns the listener at position i in the concatenation of the
// class-level tier followed by the instance-owned tier.
func (c *Collection) At(i int) Listener {
	if i < len(c.parent.listeners) {
		return c.parent.listeners[i]
	}
	return c.listeners[i-len(c.parent.listeners)]
}

// Listeners returns a copy of the concatenated view, class-level tier
// first.
func (c *Collection) Listeners() []Listener {
	out := make([]Listener, 0, c.Len())
	out = append(out, c.parent.listeners...)
	return append(out, c.listeners...)
}
