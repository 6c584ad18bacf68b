package eventry

// Registrar tracks dispatchers so their class-level listener state can be
// torn down in one place. Create one per application context and build
// dispatchers through it; ClearAll then covers all of them. Dispatchers
// built directly with NewDispatcher are not tracked.
type Registrar struct {
	dispatchers []*Dispatcher
}

// NewRegistrar creates an empty registrar.
func NewRegistrar() *Registrar { return &Registrar{} }

// NewDispatcher builds a dispatcher and records it for teardown.
func (g *Registrar) NewDispatcher(cat Catalog) (*Dispatcher, error) {
	d, err := NewDispatcher(cat)
	if err != nil {
		return nil, err
	}
	g.dispatchers = append(g.dispatchers, d)
	return d, nil
}

// ClearAll empties every class-level listener sequence of every event of
// every dispatcher built through the registrar. Instance-owned listeners
// are unaffected.
func (g *Registrar) ClearAll() {
	for _, d := range g.dispatchers {
		for _, r := range d.events {
			r.clear()
		}
	}
}
