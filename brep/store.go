package brep

import "github.com/go-gl/mathgl/mgl64"

// MutableBrep is the growable, sparsely-visible connectivity graph C3
// mutates one clipping plane at a time. It owns three parallel arrays
// (vertices, edges, faces); every cross-reference is an index into one of
// them, never a pointer, so no entity is ever invalidated mid-pass -
// invisible slots are simply skipped and reclaimed later by Compact.
//
// The store never shrinks mid-clip (§4.1); it only grows via append, the
// same geometric-growth Go already gives slices, and only Reset (used when
// the arena recycles a MutableBrep between brushes) truncates it.
type MutableBrep struct {
	vertices []Vertex
	edges    []Edge
	faces    []Face

	visibleVertices int
	visibleEdges    int
	visibleFaces    int
}

// New returns an empty store. Seed builders and tests typically want
// BuildSeedInto instead, which also wires the initial cube.
func New() *MutableBrep {
	return &MutableBrep{}
}

// Reset truncates all three arrays to zero length while keeping their
// backing capacity, so a pooled MutableBrep can be reused for the next
// brush without reallocating (the per-brush scratch-clearing lifecycle of
// §3 and §5).
func (m *MutableBrep) Reset() {
	m.vertices = m.vertices[:0]
	m.edges = m.edges[:0]
	m.faces = m.faces[:0]
	m.visibleVertices = 0
	m.visibleEdges = 0
	m.visibleFaces = 0
}

// AddVertex appends a new, visible vertex and returns its index.
func (m *MutableBrep) AddVertex(position mgl64.Vec3) int {
	idx := len(m.vertices)
	m.vertices = append(m.vertices, Vertex{
		Position: position,
		Visible:  true,
	})
	m.visibleVertices++
	return idx
}

// AddEdge appends a new, visible edge and returns its index.
func (m *MutableBrep) AddEdge(v0, v1, f0, f1 int) int {
	idx := len(m.edges)
	m.edges = append(m.edges, Edge{
		Vertices: [2]int{v0, v1},
		Faces:    [2]int{f0, f1},
		Visible:  true,
	})
	m.visibleEdges++
	return idx
}

// AddFace appends a new, visible face and returns its index. edges may be
// nil; Phase 3 of the clipper grows it as boundary edges are discovered.
func (m *MutableBrep) AddFace(normal mgl64.Vec3, texture *TextureAttrs, edges []int) int {
	idx := len(m.faces)
	m.faces = append(m.faces, Face{
		Edges:   edges,
		Normal:  normal,
		Texture: texture,
		Visible: true,
	})
	m.visibleFaces++
	return idx
}

// Vertex returns a pointer to the vertex at idx for in-place mutation.
// Indices are assumed valid; out-of-range access is a programmer error
// (§4.1) and panics the way any invalid slice index does.
func (m *MutableBrep) Vertex(idx int) *Vertex { return &m.vertices[idx] }

// Edge returns a pointer to the edge at idx.
func (m *MutableBrep) Edge(idx int) *Edge { return &m.edges[idx] }

// Face returns a pointer to the face at idx.
func (m *MutableBrep) Face(idx int) *Face { return &m.faces[idx] }

// VertexCount, EdgeCount and FaceCount return the total number of slots
// (visible and invisible) currently allocated.
func (m *MutableBrep) VertexCount() int { return len(m.vertices) }
func (m *MutableBrep) EdgeCount() int   { return len(m.edges) }
func (m *MutableBrep) FaceCount() int   { return len(m.faces) }

// VisibleVertexCount, VisibleEdgeCount and VisibleFaceCount return the live
// counts the store maintains incrementally as entities are hidden or added.
func (m *MutableBrep) VisibleVertexCount() int { return m.visibleVertices }
func (m *MutableBrep) VisibleEdgeCount() int    { return m.visibleEdges }
func (m *MutableBrep) VisibleFaceCount() int    { return m.visibleFaces }

// SetVertexVisible toggles a vertex's visibility and keeps the live count
// in sync.
func (m *MutableBrep) SetVertexVisible(idx int, visible bool) {
	v := &m.vertices[idx]
	if v.Visible == visible {
		return
	}
	v.Visible = visible
	if visible {
		m.visibleVertices++
	} else {
		m.visibleVertices--
	}
}

// SetEdgeVisible toggles an edge's visibility and keeps the live count in
// sync.
func (m *MutableBrep) SetEdgeVisible(idx int, visible bool) {
	e := &m.edges[idx]
	if e.Visible == visible {
		return
	}
	e.Visible = visible
	if visible {
		m.visibleEdges++
	} else {
		m.visibleEdges--
	}
}

// SetFaceVisible toggles a face's visibility and keeps the live count in
// sync.
func (m *MutableBrep) SetFaceVisible(idx int, visible bool) {
	f := &m.faces[idx]
	if f.Visible == visible {
		return
	}
	f.Visible = visible
	if visible {
		m.visibleFaces++
	} else {
		m.visibleFaces--
	}
}

// FaceAppendEdge grows a face's edge set by one.
func (m *MutableBrep) FaceAppendEdge(faceIdx, edgeIdx int) {
	f := &m.faces[faceIdx]
	f.Edges = append(f.Edges, edgeIdx)
}

// FaceRemoveEdge removes edgeIdx from a face's edge set using swap-with-last
// (the set is unordered, so this is cheaper than a shift). Returns true if
// the edge was found and removed.
func (m *MutableBrep) FaceRemoveEdge(faceIdx, edgeIdx int) bool {
	f := &m.faces[faceIdx]
	for i, e := range f.Edges {
		if e == edgeIdx {
			last := len(f.Edges) - 1
			f.Edges[i] = f.Edges[last]
			f.Edges = f.Edges[:last]
			return true
		}
	}
	return false
}
