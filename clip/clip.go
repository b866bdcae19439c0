package clip

import (
	"errors"
	"fmt"

	"github.com/poetahto/brushgeo/brep"
)

// ErrBrokenFaceLoop is wrapped into the error Clip returns when Phase 3
// finds a face whose post-split edge set has one or more than two open
// endpoints (or a vertex used by more than two of its edges). Per §4.3 and §7 this indicates a programmer error - a
// non-convex brush, multiple planes applied in one call, or an
// ill-conditioned epsilon - not a runtime condition the clipper can
// recover from.
var ErrBrokenFaceLoop = errors.New("clip: face has a broken loop after split")

// Clip slices the visible portion of m by plane, in place, preserving
// invariants I1-I6 (§4.3). It acquires its own Scratch from the shared
// pool; use ClipWithScratch to supply one explicitly (e.g. one Scratch
// reused for every plane of a brush, as BuildGeometry does) and avoid the
// pool round-trip.
//
// Returns degenerate=true when every visible vertex was clipped (the
// brush's planes so far define an empty solid, §7) - the mutable B-rep is
// left with all affected entities marked invisible and no new cap face,
// and building geometry from it should stop without treating this as an
// error.
func Clip(m *brep.MutableBrep, plane Plane, eps float64) (degenerate bool, err error) {
	s := Acquire()
	defer Release(s)
	return ClipWithScratch(m, plane, eps, s)
}

// ClipWithScratch is Clip with an explicit, caller-owned Scratch.
func ClipWithScratch(m *brep.MutableBrep, plane Plane, eps float64, scratch *Scratch) (degenerate bool, err error) {
	nClipped, nTotal := classifyVertices(m, plane, eps)
	if nClipped == 0 {
		return false, nil
	}
	if nClipped == nTotal {
		collapseAll(m)
		return true, nil
	}

	splitEdges(m)

	if err := closeFaces(m, plane, scratch); err != nil {
		return false, err
	}

	return false, nil
}

// classifyVertices is Phase 1 (§4.3): compute signed distances for every
// visible vertex, mark clipped ones invisible, snap near-plane distances
// to exactly zero. Returns the number of vertices clipped and the number
// that were visible before this call.
func classifyVertices(m *brep.MutableBrep, plane Plane, eps float64) (nClipped, nTotal int) {
	for i := 0; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		if !v.Visible {
			continue
		}
		nTotal++

		d := plane.Distance(v.Position)
		switch {
		case d >= eps:
			v.Distance = d
			nClipped++
			// Visibility is flipped after counting so a caller re-reading
			// nTotal mid-loop never sees a partially-updated count.
		case d <= -eps:
			v.Distance = d
		default:
			v.Distance = 0
		}
	}

	// Second pass: apply the visibility flip now that nTotal is final.
	// classifyVertices only flips vertices whose distance placed them on
	// the clipped side; kept and on-plane vertices are untouched.
	if nClipped > 0 {
		for i := 0; i < m.VertexCount(); i++ {
			v := m.Vertex(i)
			if v.Visible && v.Distance >= eps {
				m.SetVertexVisible(i, false)
			}
		}
	}

	return nClipped, nTotal
}

// collapseAll marks every currently-visible edge and face invisible. Used
// only for the degenerate "whole brush clipped away" case, where Phase 2
// and 3 have nothing left to do.
func collapseAll(m *brep.MutableBrep) {
	for i := 0; i < m.EdgeCount(); i++ {
		if m.Edge(i).Visible {
			m.SetEdgeVisible(i, false)
		}
	}
	for i := 0; i < m.FaceCount(); i++ {
		if m.Face(i).Visible {
			m.SetFaceVisible(i, false)
		}
	}
}

// splitEdges is Phase 2 (§4.3): for every visible edge, hide it if both
// endpoints were clipped (cleaning up the faces that reference it), leave
// it alone if both survived, or split it at the plane if mixed.
func splitEdges(m *brep.MutableBrep) {
	// Edge count is captured up front: Phase 2 never creates edges, only
	// the vertices a split edge points at change.
	edgeCount := m.EdgeCount()
	for i := 0; i < edgeCount; i++ {
		e := m.Edge(i)
		if !e.Visible {
			continue
		}

		v0Visible := m.Vertex(e.Vertices[0]).Visible
		v1Visible := m.Vertex(e.Vertices[1]).Visible

		switch {
		case !v0Visible && !v1Visible:
			m.SetEdgeVisible(i, false)
			for _, faceIdx := range e.Faces {
				if m.FaceRemoveEdge(faceIdx, i) && len(m.Face(faceIdx).Edges) == 0 {
					m.SetFaceVisible(faceIdx, false)
				}
			}

		case v0Visible && v1Visible:
			// Unaffected.

		default:
			splitEdge(m, i, v0Visible)
		}
	}
}

// splitEdge replaces the clipped endpoint of edge i with a new vertex
// interpolated at the plane crossing. v0Kept reports which stored endpoint
// survived.
func splitEdge(m *brep.MutableBrep, edgeIdx int, v0Kept bool) {
	e := m.Edge(edgeIdx)
	p0 := m.Vertex(e.Vertices[0])
	p1 := m.Vertex(e.Vertices[1])

	// d0 - d1 has a nonzero, sign-correct denominator away from eps
	// because d0 and d1 have opposite signs by construction (one kept,
	// one clipped) - see §4.3's note on why this is safer than |d0|+|d1|.
	t := p0.Distance / (p0.Distance - p1.Distance)
	newPos := p0.Position.Add(p1.Position.Sub(p0.Position).Mul(t))
	newVertex := m.AddVertex(newPos)

	if v0Kept {
		e.Vertices[1] = newVertex
	} else {
		e.Vertices[0] = newVertex
	}
}

// closeFaces is Phase 3 (§4.3): build one new edge per still-open face
// loop, connecting its two split endpoints, and collect those new edges
// into a single new cap face whose normal is the clipping plane's normal.
func closeFaces(m *brep.MutableBrep, plane Plane, scratch *Scratch) error {
	faceCount := m.FaceCount()
	capFaceIdx := faceCount
	texture := plane.Texture

	// The cap face starts empty on every clip, even when the caller reuses
	// one Scratch across several planes.
	scratch.Reset()

	for i := 0; i < faceCount; i++ {
		f := m.Face(i)
		if !f.Visible {
			continue
		}

		endpoints, err := openEndpoints(m, f.Edges)
		if err != nil {
			return fmt.Errorf("%w: face %d", err, i)
		}
		if len(endpoints) == 0 {
			continue // this face was never touched by the current plane
		}

		newEdge := m.AddEdge(endpoints[0], endpoints[1], i, capFaceIdx)
		m.FaceAppendEdge(i, newEdge)
		scratch.capEdges = append(scratch.capEdges, newEdge)
	}

	if len(scratch.capEdges) == 0 {
		return nil
	}

	capEdges := make([]int, len(scratch.capEdges))
	copy(capEdges, scratch.capEdges)
	m.AddFace(plane.Normal, &texture, capEdges)

	return nil
}

// openEndpoints zeroes and re-counts the occurrence of every vertex
// touched by face's edges, then returns the vertices that occur exactly
// once - the places Phase 2 broke the loop open. The result is either nil
// (face untouched by the current plane) or exactly 2 vertices; any other
// count is ErrBrokenFaceLoop.
func openEndpoints(m *brep.MutableBrep, edges []int) ([]int, error) {
	occurs := map[int]int{}
	for _, edgeIdx := range edges {
		e := m.Edge(edgeIdx)
		occurs[e.Vertices[0]] = 0
		occurs[e.Vertices[1]] = 0
	}
	for _, edgeIdx := range edges {
		e := m.Edge(edgeIdx)
		occurs[e.Vertices[0]]++
		occurs[e.Vertices[1]]++
	}

	var found []int
	for v, count := range occurs {
		switch count {
		case 2:
			continue
		case 1:
			if len(found) == 2 {
				return nil, ErrBrokenFaceLoop
			}
			found = append(found, v)
		default:
			return nil, ErrBrokenFaceLoop
		}
	}

	if len(found) == 1 {
		return nil, ErrBrokenFaceLoop
	}
	return found, nil
}
