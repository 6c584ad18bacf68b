package eventry

// Listener receives dispatched events. The args are passed through from the
// dispatch site unchanged; their shape is documented by the event's
// EventSpec but not enforced.
//
// Listener values must be comparable: the instance tier deduplicates by
// identity and removal matches by identity. Pointer receivers are the
// common case.
//
// Example:
//
//	type checkoutLogger struct {
//	    out io.Writer
//	}
//
//	func (l *checkoutLogger) Invoke(args ...any) error {
//	    fmt.Fprintf(l.out, "checkout: %v\n", args)
//	    return nil
//	}
type Listener interface {
	Invoke(args ...any) error
}

// ListenerFunc wraps an ordinary function as a Listener. Each call returns
// a distinct Listener value; keep the returned value if you need to remove
// the listener later.
//
//	logCheckout := eventry.ListenerFunc(func(args ...any) error {
//	    log.Printf("checkout: %v", args)
//	    return nil
//	})
//	eventry.Listen(pool, "checkout", logCheckout)
func ListenerFunc(fn func(args ...any) error) Listener {
	return &listenerFunc{fn: fn}
}

type listenerFunc struct {
	fn func(args ...any) error
}

func (l *listenerFunc) Invoke(args ...any) error { return l.fn(args...) }
