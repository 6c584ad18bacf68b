package eventry

import "testing"

// recorder appends its name to a shared log when invoked, so tests can
// assert listener ordering.
type recorder struct {
	name string
	log  *[]string
	err  error
}

func (r *recorder) Invoke(args ...any) error {
	*r.log = append(*r.log, r.name)
	return r.err
}

func rec(name string, log *[]string) *recorder {
	return &recorder{name: name, log: log}
}

// argRecorder captures the args of each invocation.
type argRecorder struct {
	calls [][]any
}

func (r *argRecorder) Invoke(args ...any) error {
	r.calls = append(r.calls, args)
	return nil
}

// poolFixture is a two-class hierarchy with a pool-style catalog declared
// on the base class.
type poolFixture struct {
	hier  *Hierarchy
	pool  *Class
	queue *Class
	disp  *Dispatcher
}

func newPoolFixture(tb testing.TB) *poolFixture {
	tb.Helper()

	hier := NewHierarchy()
	pool, err := hier.NewClass("Pool")
	if err != nil {
		tb.Fatalf("NewClass(Pool): %v", err)
	}
	queue, err := hier.NewClass("QueuePool", pool)
	if err != nil {
		tb.Fatalf("NewClass(QueuePool): %v", err)
	}

	disp, err := NewDispatcher(Catalog{
		Name: "pool",
		Events: []EventSpec{
			{Name: "connect", Args: []string{"conn", "record"}},
			{Name: "checkout", Args: []string{"conn", "record", "proxy"}},
			{Name: "checkin", Args: []string{"conn", "record"}},
			{Name: "first_connect", Args: []string{"conn", "record"}},
		},
	})
	if err != nil {
		tb.Fatalf("NewDispatcher: %v", err)
	}
	if err := pool.SetDispatcher(disp); err != nil {
		tb.Fatalf("SetDispatcher: %v", err)
	}

	return &poolFixture{hier: hier, pool: pool, queue: queue, disp: disp}
}

func (f *poolFixture) handle(tb testing.TB, owner *Class) *Handle {
	tb.Helper()
	h, err := NewHandle(owner)
	if err != nil {
		tb.Fatalf("NewHandle(%s): %v", owner.Name(), err)
	}
	return h
}
