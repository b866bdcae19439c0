package brushgeo

import (
	"sync"

	"github.com/poetahto/brushgeo/brep"
)

// Arena is the per-worker scratch pool described in §5 and §6: one
// reusable *brep.MutableBrep per concurrent brush-building goroutine, so
// BuildModels' worker pool does not allocate a fresh backing array for
// every brush it processes.
//
// §6's "Allocator" is written as a generic acquire/mark/reset interface;
// Go has no generic interface methods, so this is a concrete
// sync.Pool-backed type instead, the same shape clip.Scratch uses for its
// own reusable buffer. See DESIGN.md for the full justification.
type Arena struct {
	pool sync.Pool
}

// NewArena returns a ready-to-use Arena.
func NewArena() *Arena {
	return &Arena{pool: sync.Pool{New: func() any { return brep.New() }}}
}

// Acquire borrows a *brep.MutableBrep, freshly Reset, from the arena.
func (a *Arena) Acquire() *brep.MutableBrep {
	m := a.pool.Get().(*brep.MutableBrep)
	m.Reset()
	return m
}

// Release returns m to the arena for reuse by a later Acquire call.
func (a *Arena) Release(m *brep.MutableBrep) {
	a.pool.Put(m)
}
