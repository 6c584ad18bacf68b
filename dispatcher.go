package eventry

// Dispatcher is the generated description for one catalog: a mapping from
// event name to class-level registry descriptor. Build it once per catalog
// and attach it to the target class with Class.SetDispatcher; every
// instance of that class (and of its subclasses) shares it. No
// per-instance state is created here.
type Dispatcher struct {
	catalog Catalog
	events  map[string]*registry
	order   []string
}

// NewDispatcher builds the dispatcher description for a catalog. Event
// names must be non-empty, unique, and not reserved.
func NewDispatcher(cat Catalog) (*Dispatcher, error) {
	if err := cat.validate(); err != nil {
		return nil, err
	}
	d := &Dispatcher{
		catalog: cat,
		events:  make(map[string]*registry, len(cat.Events)),
		order:   make([]string, 0, len(cat.Events)),
	}
	for _, ev := range cat.Events {
		d.events[ev.Name] = newRegistry(ev.Name)
		d.order = append(d.order, ev.Name)
	}
	return d, nil
}

// Catalog returns the declaring catalog.
func (d *Dispatcher) Catalog() Catalog { return d.catalog }

// Events returns the declared event names in declaration order.
func (d *Dispatcher) Events() []string {
	out := make([]string, len(d.order))
	copy(out, d.order)
	return out
}

// descriptor resolves the class-level registry for an event name.
func (d *Dispatcher) descriptor(event string) (*registry, error) {
	r, ok := d.events[event]
	if !ok {
		return nil, &UnknownEventError{Event: event, Catalog: d.catalog.Name}
	}
	return r, nil
}
