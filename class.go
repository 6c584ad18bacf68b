package eventry

import "fmt"

// Hierarchy owns the class graph that keys class-level listener storage.
// Target types that want listeners register a node per type; instances key
// their dispatch handles by their concrete node.
//
// A Hierarchy performs no locking. Build the graph during setup, before
// dispatch begins.
type Hierarchy struct {
	classes map[string]*Class
}

// NewHierarchy creates an empty class graph.
func NewHierarchy() *Hierarchy {
	return &Hierarchy{classes: make(map[string]*Class)}
}

// NewClass creates a class node with the given base classes and records it
// under name. Names are unique within a hierarchy.
func (h *Hierarchy) NewClass(name string, bases ...*Class) (*Class, error) {
	if name == "" {
		return nil, fmt.Errorf("class name must not be empty")
	}
	if _, ok := h.classes[name]; ok {
		return nil, fmt.Errorf("class %q already defined", name)
	}
	c := &Class{name: name, bases: bases}
	for _, b := range bases {
		b.subs = append(b.subs, c)
	}
	h.classes[name] = c
	return c, nil
}

// Lookup returns the class registered under name.
func (h *Hierarchy) Lookup(name string) (*Class, bool) {
	c, ok := h.classes[name]
	return c, ok
}

// Class is one node in a target-type hierarchy. Class-level listener
// sequences are keyed by node; registering on a node covers the node and
// every subclass reachable at the moment of the call.
type Class struct {
	name       string
	bases      []*Class
	subs       []*Class
	dispatcher *Dispatcher
}

// Name returns the class name.
func (c *Class) Name() string { return c.name }

// SetDispatcher attaches a dispatcher description to the class. A class
// declares at most one dispatcher; instances resolve the nearest ancestor
// declaration, so subclasses inherit it without declaring their own.
func (c *Class) SetDispatcher(d *Dispatcher) error {
	if c.dispatcher != nil {
		return fmt.Errorf("class %q already declares a dispatcher", c.name)
	}
	c.dispatcher = d
	return nil
}

// Dispatcher returns the dispatcher declared on this class, or nil when the
// class declares none. Use resolveDispatcher semantics (via NewHandle or
// Reconstruct) to consult ancestors.
func (c *Class) Dispatcher() *Dispatcher { return c.dispatcher }

// descendants returns c and every class currently reachable through the
// subclass relation, in breadth-first order. The result is a snapshot:
// classes created after the call are not included.
func (c *Class) descendants() []*Class {
	seen := map[*Class]bool{c: true}
	queue := []*Class{c}
	var out []*Class
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		out = append(out, n)
		for _, s := range n.subs {
			if !seen[s] {
				seen[s] = true
				queue = append(queue, s)
			}
		}
	}
	return out
}

// resolveDispatcher walks c and its ancestors breadth-first and returns the
// nearest declared dispatcher.
func (c *Class) resolveDispatcher() (*Dispatcher, bool) {
	seen := map[*Class]bool{c: true}
	queue := []*Class{c}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		if n.dispatcher != nil {
			return n.dispatcher, true
		}
		for _, b := range n.bases {
			if !seen[b] {
				seen[b] = true
				queue = append(queue, b)
			}
		}
	}
	return nil, false
}
