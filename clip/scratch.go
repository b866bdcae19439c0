package clip

import "sync"

// Scratch holds the one reusable buffer a Clip call needs beyond what
// already lives on brep.Vertex (Distance): the edge indices of the cap face
// under construction in Phase 3. Reusing it across clips avoids
// reallocating that buffer on every call.
type Scratch struct {
	capEdges []int
}

// NewScratch returns a Scratch with a small initial capacity; it grows as
// needed and is cheap to keep around for the lifetime of one brush.
func NewScratch() *Scratch {
	return &Scratch{capEdges: make([]int, 0, 16)}
}

// Reset clears the scratch for reuse without releasing its backing array.
func (s *Scratch) Reset() {
	s.capEdges = s.capEdges[:0]
}

var pool = sync.Pool{
	New: func() any { return NewScratch() },
}

// Acquire borrows a Scratch from the shared pool. Callers must Release it
// when done; failing to do so merely forces the pool to allocate a new one
// next time; it does not leak correctness.
func Acquire() *Scratch {
	return pool.Get().(*Scratch)
}

// Release returns a Scratch to the shared pool after resetting it.
func Release(s *Scratch) {
	s.Reset()
	pool.Put(s)
}
