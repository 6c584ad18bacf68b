package eventry

import (
	"fmt"
	"strings"

	"github.com/tidwall/gjson"
)

// EventSpec declares one event: its name and the documented positional
// arguments passed to listeners. The argument list is descriptive only and
// is not enforced at dispatch time.
type EventSpec struct {
	Name string
	Args []string
	Doc  string
}

// Catalog declares the events of one target domain, e.g. a resource pool's
// connect/checkout/checkin transitions. A catalog is declared once per
// target type and compiled into a Dispatcher with NewDispatcher; the
// catalog value itself is never mutated.
type Catalog struct {
	Name   string
	Events []EventSpec
}

// validate checks event names: non-empty, not reserved, unique within the
// catalog. Names starting with an underscore and the name "dispatch" are
// reserved.
func (c Catalog) validate() error {
	seen := make(map[string]bool, len(c.Events))
	for _, ev := range c.Events {
		switch {
		case ev.Name == "":
			return fmt.Errorf("catalog %q: event name must not be empty", c.Name)
		case strings.HasPrefix(ev.Name, "_"), ev.Name == "dispatch":
			return fmt.Errorf("catalog %q: event name %q is reserved", c.Name, ev.Name)
		case seen[ev.Name]:
			return fmt.Errorf("catalog %q: duplicate event name %q", c.Name, ev.Name)
		}
		seen[ev.Name] = true
	}
	return nil
}

// CatalogFromJSON parses a declarative catalog document:
//
//	{
//	  "name": "pool",
//	  "events": [
//	    {
//	      "name": "checkout",
//	      "args": ["conn", "record", "proxy"],
//	      "doc": "Called when a connection is retrieved from the pool."
//	    }
//	  ]
//	}
//
// The same reserved-name rules apply as for literal catalogs.
func CatalogFromJSON(raw []byte) (Catalog, error) {
	if !gjson.ValidBytes(raw) {
		return Catalog{}, ErrInvalidCatalog
	}
	doc := gjson.ParseBytes(raw)
	name := doc.Get("name")
	if !name.Exists() || name.Type != gjson.String {
		return Catalog{}, fmt.Errorf("%w: missing catalog name", ErrInvalidCatalog)
	}
	cat := Catalog{Name: name.String()}
	for _, ev := range doc.Get("events").Array() {
		spec := EventSpec{
			Name: ev.Get("name").String(),
			Doc:  ev.Get("doc").String(),
		}
		for _, a := range ev.Get("args").Array() {
			spec.Args = append(spec.Args, a.String())
		}
		cat.Events = append(cat.Events, spec)
	}
	if err := cat.validate(); err != nil {
		return Catalog{}, err
	}
	return cat, nil
}
