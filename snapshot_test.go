package eventry

import (
	"errors"
	"testing"

	"github.com/tidwall/gjson"
)

func TestHandle_Snapshot(t *testing.T) {
	t.Run("records id, class, and materialized events", func(t *testing.T) {
		f := newPoolFixture(t)
		h := f.handle(t, f.queue)

		if _, err := h.Event("checkout"); err != nil {
			t.Fatalf("Event: %v", err)
		}
		if _, err := h.Event("checkin"); err != nil {
			t.Fatalf("Event: %v", err)
		}

		raw, err := h.Snapshot()
		if err != nil {
			t.Fatalf("Snapshot: %v", err)
		}

		if got := gjson.GetBytes(raw, "id").String(); got != h.ID() {
			t.Errorf("id = %q, want %q", got, h.ID())
		}
		if got := gjson.GetBytes(raw, "class").String(); got != "QueuePool" {
			t.Errorf("class = %q, want %q", got, "QueuePool")
		}
		events := gjson.GetBytes(raw, "events").Array()
		if len(events) != 2 {
			t.Fatalf("events = %v, want 2 entries", events)
		}
		// Declaration order, not materialization order.
		if events[0].String() != "checkout" || events[1].String() != "checkin" {
			t.Errorf("events = [%s %s], want [checkout checkin]", events[0], events[1])
		}
	})

	t.Run("does not carry listeners", func(t *testing.T) {
		f := newPoolFixture(t)
		var log []string

		h := f.handle(t, f.pool)
		_ = Listen(h, "checkout", rec("instance", &log))

		raw, err := h.Snapshot()
		if err != nil {
			t.Fatalf("Snapshot: %v", err)
		}

		restored, err := RestoreSnapshot(raw, f.hier)
		if err != nil {
			t.Fatalf("RestoreSnapshot: %v", err)
		}

		_ = restored.Fire("checkout", "conn", "rec", "proxy")
		if len(log) != 0 {
			t.Errorf("invocations = %d, want 0 (lossy reconstruction)", len(log))
		}
	})
}

func TestRestoreSnapshot(t *testing.T) {
	t.Run("rebuilds against the live registry", func(t *testing.T) {
		f := newPoolFixture(t)
		var log []string

		h := f.handle(t, f.queue)
		if _, err := h.Event("checkout"); err != nil {
			t.Fatalf("Event: %v", err)
		}
		raw, err := h.Snapshot()
		if err != nil {
			t.Fatalf("Snapshot: %v", err)
		}

		// Registered after the snapshot was taken.
		_ = Listen(f.pool, "checkout", rec("class", &log))

		restored, err := RestoreSnapshot(raw, f.hier)
		if err != nil {
			t.Fatalf("RestoreSnapshot: %v", err)
		}
		if restored.Owner() != f.queue {
			t.Errorf("Owner = %s, want QueuePool", restored.Owner().Name())
		}
		if restored.ID() == h.ID() {
			t.Error("restored handle must get a fresh id")
		}

		_ = restored.Fire("checkout", "conn", "rec", "proxy")
		if len(log) != 1 {
			t.Errorf("invocations = %d, want 1", len(log))
		}
	})

	t.Run("rejects invalid documents", func(t *testing.T) {
		f := newPoolFixture(t)

		for _, raw := range [][]byte{
			[]byte(`{not json}`),
			[]byte(`{"id": "x"}`),
		} {
			if _, err := RestoreSnapshot(raw, f.hier); !errors.Is(err, ErrInvalidSnapshot) {
				t.Errorf("RestoreSnapshot(%s) error = %v, want ErrInvalidSnapshot", raw, err)
			}
		}
	})

	t.Run("rejects classes missing from the hierarchy", func(t *testing.T) {
		f := newPoolFixture(t)

		_, err := RestoreSnapshot([]byte(`{"class": "Ghost", "events": []}`), f.hier)
		if !errors.Is(err, ErrInvalidSnapshot) {
			t.Errorf("error = %v, want ErrInvalidSnapshot", err)
		}
	})

	t.Run("rejects events not declared by the catalog", func(t *testing.T) {
		f := newPoolFixture(t)

		_, err := RestoreSnapshot([]byte(`{"class": "Pool", "events": ["disconnect"]}`), f.hier)
		var unknown *UnknownEventError
		if !errors.As(err, &unknown) {
			t.Errorf("error = %v, want *UnknownEventError", err)
		}
	})
}
