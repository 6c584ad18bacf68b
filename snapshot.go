package eventry

import (
	"fmt"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Snapshot serializes the handle's shape as a JSON document: handle id,
// owner class name, and the event names with materialized collections.
// Listener callables are deliberately not carried; restoring a snapshot
// yields empty instance-level state.
func (h *Handle) Snapshot() ([]byte, error) {
	out := []byte(`{}`)
	var err error
	if out, err = sjson.SetBytes(out, "id", h.id); err != nil {
		return nil, err
	}
	if out, err = sjson.SetBytes(out, "class", h.owner.Name()); err != nil {
		return nil, err
	}
	if out, err = sjson.SetBytes(out, "events", []string{}); err != nil {
		return nil, err
	}
	for _, name := range h.dispatcher.order {
		if _, ok := h.collections[name]; !ok {
			continue
		}
		if out, err = sjson.SetBytes(out, "events.-1", name); err != nil {
			return nil, err
		}
	}
	return out, nil
}

// RestoreSnapshot rebuilds a handle from a snapshot document. The owner
// class is resolved by name against hier and the handle is rebuilt via
// Reconstruct: fresh id, empty instance-owned listeners for every event,
// class-level listeners still visible. Event collections named in the
// snapshot are re-materialized.
func RestoreSnapshot(raw []byte, hier *Hierarchy) (*Handle, error) {
	if !gjson.ValidBytes(raw) {
		return nil, ErrInvalidSnapshot
	}
	name := gjson.GetBytes(raw, "class")
	if !name.Exists() || name.Type != gjson.String {
		return nil, fmt.Errorf("%w: missing class name", ErrInvalidSnapshot)
	}
	owner, ok := hier.Lookup(name.String())
	if !ok {
		return nil, fmt.Errorf("%w: class %q not in hierarchy", ErrInvalidSnapshot, name.String())
	}
	h, err := Reconstruct(owner)
	if err != nil {
		return nil, err
	}
	for _, ev := range gjson.GetBytes(raw, "events").Array() {
		if _, err := h.Event(ev.String()); err != nil {
			return nil, err
		}
	}
	return h, nil
}
