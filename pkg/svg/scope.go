package svg

import (
	"io"

	"github.com/google/uuid"
)

// Scope prefixes definition ids so that fragments from different renderers
// or requests can be concatenated without id collisions.
type Scope struct {
	prefix string
}

// NewScope creates a scope named after the renderer. The unique part is a
// UUID drawn from r, so a seeded reader gives stable ids.
func NewScope(name string, r io.Reader) Scope {
	id, err := uuid.NewRandomFromReader(r)
	if err != nil {
		id = uuid.New()
	}
	return Scope{prefix: name + "-" + id.String()[:8] + "-"}
}

// ID returns the scoped id for a local definition name.
func (s Scope) ID(name string) string { return s.prefix + name }

// URL returns a url(#id) reference to a local definition name.
func (s Scope) URL(name string) string { return "url(#" + s.ID(name) + ")" }
