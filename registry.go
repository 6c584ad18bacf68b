package eventry

// classEntry is the ordered listener sequence for one (event, class) pair.
// Collections capture a pointer to the entry at materialization, so
// registrations that reach the same class node later are visible to
// already-materialized collections.
type classEntry struct {
	listeners []Listener
}

// registry stores class-level listeners for a single event, keyed by class
// node. Entries are created lazily on first reference and live until clear.
//
// The registry is process-wide shared mutable state with no internal
// locking; callers that mutate it concurrently with dispatch must serialize
// access externally.
type registry struct {
	event   string
	entries map[*Class]*classEntry
}

func newRegistry(event string) *registry {
	return &registry{
		event:   event,
		entries: make(map[*Class]*classEntry),
	}
}

func (r *registry) entryFor(c *Class) *classEntry {
	e, ok := r.entries[c]
	if !ok {
		e = &classEntry{}
		r.entries[c] = e
	}
	return e
}

// insert places l at the front of target's sequence and of every class
// currently reachable through target's subclass relation. Subclasses
// created after this call are not retroactively touched. Class-level
// sequences do not deduplicate.
func (r *registry) insert(l Listener, target *Class) {
	for _, c := range target.descendants() {
		e := r.entryFor(c)
		e.listeners = append([]Listener{l}, e.listeners...)
	}
}

// append places l at the back of the same traversal's sequences.
func (r *registry) append(l Listener, target *Class) {
	for _, c := range target.descendants() {
		e := r.entryFor(c)
		e.listeners = append(e.listeners, l)
	}
}

// remove deletes the first occurrence of l from target's sequence and from
// every current descendant's sequence. A visited sequence that does not
// contain l fails the removal.
func (r *registry) remove(l Listener, target *Class) error {
	for _, c := range target.descendants() {
		e := r.entryFor(c)
		i := indexOf(e.listeners, l)
		if i < 0 {
			return &ListenerNotFoundError{Event: r.event, Class: c.Name()}
		}
		e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
	}
	return nil
}

// clear empties every class node's sequence for this event.
func (r *registry) clear() {
	for _, e := range r.entries {
		e.listeners = nil
	}
}

// indexOf locates l by identity.
func indexOf(list []Listener, l Listener) int {
	for i, e := range list {
		if e == l {
			return i
		}
	}
	return -1
}
