// Package eventry provides listener registration and dispatch for lifecycle
// events of a target type, keyed by an explicit class hierarchy.
//
// The package lets independent code observe lifecycle actions of a target
// type (say, a resource pool's connect/checkout/checkin transitions)
// without the target type depending on its observers. Listeners can be
// registered at the class level, where they cover the class and its current
// subclass tree, or on a single owning instance's dispatch handle.
//
// # Quick Start
//
// Declare a catalog of event names, compile it into a dispatcher, and
// attach it to a class:
//
//	hier := eventry.NewHierarchy()
//	pool, _ := hier.NewClass("Pool")
//
//	disp, _ := eventry.NewDispatcher(eventry.Catalog{
//	    Name: "pool",
//	    Events: []eventry.EventSpec{
//	        {Name: "connect", Args: []string{"conn", "record"}},
//	        {Name: "checkout", Args: []string{"conn", "record", "proxy"}},
//	        {Name: "checkin", Args: []string{"conn", "record"}},
//	    },
//	})
//	pool.SetDispatcher(disp)
//
// Register a listener and dispatch:
//
//	logCheckout := eventry.ListenerFunc(func(args ...any) error {
//	    log.Printf("checkout: %v", args)
//	    return nil
//	})
//	eventry.Listen(pool, "checkout", logCheckout)
//
//	handle, _ := eventry.NewHandle(pool) // one per owner instance
//	handle.Fire("checkout", conn, record, proxy)
//
// # Design
//
// The package separates concerns into four layers:
//
//   - Catalog: declares event names and documented argument lists
//   - Dispatcher: generated once per catalog, maps event names to
//     class-level registries, shared by all instances of the target type
//   - Class-level registry: ordered listener sequences per class node,
//     populated by subclass-tree traversal at registration time
//   - Handle: per-instance dispatch surface with lazily materialized
//     per-event collections
//
// # Ordering
//
// Within one dispatch invocation, class-level listeners for the owner's
// concrete class run strictly before instance-level listeners; each tier
// preserves its own order. Listen appends to the back of the relevant
// tier; WithInsert places at the front. Both are evaluated against the
// tier's contents at call time.
//
// # Subclass Propagation
//
// Registering on a class walks the class and every subclass reachable at
// the moment of the call, breadth first, and touches each visited node's
// sequence. The traversal is a snapshot: classes that become subclasses
// afterward are not retroactively covered by that registration.
//
// # Instance State Transfer
//
// Instance-level listeners registered with WithPropagate are eligible for
// copy when one handle's state is merged into another:
//
//	dst.UpdateFrom(src, true) // copy only propagate-flagged listeners
//
// # Serialization
//
// Listener callables cannot cross serialization boundaries. A handle's
// Snapshot records only its shape (id, owner class, materialized events);
// RestoreSnapshot and Reconstruct rebuild a fresh handle with empty
// instance-level state while class-level listeners remain visible through
// the live registry reference.
//
// # At-Most-Once Dispatch
//
// FireOnce (and Collection.ExecOnce) executes a collection's listeners
// only the first time. The guard is a plain flag with no atomicity
// guarantee: concurrent first calls may both execute.
//
// # Errors
//
// Listener failures are not wrapped: the first error returned by a
// listener aborts the remaining listeners for that call and propagates
// unmodified to the dispatching caller. Registration errors use typed
// values: InvalidTargetError, ListenerNotFoundError, UnknownEventError,
// ReconstructionError.
//
// # Thread Safety
//
// There is no internal locking. The class-level registry is process-wide
// shared mutable state; registration from one goroutine while another is
// mid-dispatch over the same sequence is undefined. Callers needing
// concurrent class-level mutation must serialize access externally.
// Dispatch is synchronous and blocking, with no timeouts or cancellation
// at this layer.
package eventry
