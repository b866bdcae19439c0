// Package loopwalk implements the face loop extractor (C5): turning a
// face's unordered edge set into an ordered, correctly-wound vertex loop
// ready for tessellation.
package loopwalk

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/poetahto/brushgeo/brep"
)

// ErrEmptyFace is returned for a face with no edges.
var ErrEmptyFace = errors.New("loopwalk: face has no edges")

// ErrOpenLoop is returned when a face's edges do not form a single closed
// cycle - a dangling endpoint, a branch, or more than one disjoint ring.
// Compact's I3 guarantee (every vertex referenced by a visible face occurs
// exactly twice) should make this unreachable for B-reps that came out of
// the clipper; seeing it means upstream invariants were violated.
var ErrOpenLoop = errors.New("loopwalk: face edges do not form a single closed loop")

// ExtractLoop walks faceIdx's edge set into an ordered vertex loop
// v0, v1, ..., vk-1 (implicitly closing back to v0) and corrects its
// winding against the face's stored normal (§4.5).
//
// reversed reports whether the walked order was flipped (OQ2: a loop is
// reversed when its accumulated cross-product normal has a positive dot
// product with the face's stored normal), so a returned loop's accumulated
// normal never points along the stored normal. verts[0] stays fixed as the fan apex either way;
// only the order of verts[1:] flips, which is what lets meshbuild tessellate
// straight off this slice instead of re-deriving the correction itself.
func ExtractLoop(c *brep.Compacted, faceIdx int) (verts []int, reversed bool, err error) {
	face := c.Faces[faceIdx]
	if len(face.Edges) == 0 {
		return nil, false, fmt.Errorf("%w: face %d", ErrEmptyFace, faceIdx)
	}

	verts, err = walk(c, face.Edges)
	if err != nil {
		return nil, false, fmt.Errorf("%w: face %d", err, faceIdx)
	}

	if accumulatedNormal(c, verts).Dot(face.Normal) > 0 {
		reverse(verts[1:])
		reversed = true
	}

	return verts, reversed, nil
}

// walk reconstructs the ordered vertex sequence of a closed edge loop by
// repeatedly extending a chain with whichever unused edge touches its
// current tail. Starting from edges[0] and discarding edges as they are
// consumed keeps this O(n^2) in the loop length, which is fine: brush
// faces have at most a few dozen edges.
func walk(c *brep.Compacted, edgeIdxs []int) ([]int, error) {
	remaining := make([]brep.CompactEdge, len(edgeIdxs))
	for i, e := range edgeIdxs {
		remaining[i] = c.Edges[e]
	}

	first := remaining[0]
	remaining = remaining[1:]
	verts := make([]int, 0, len(edgeIdxs))
	verts = append(verts, first.Vertices[0])
	tail := first.Vertices[1]

	for len(remaining) > 0 {
		if tail == verts[0] {
			// Closed before consuming every edge: a branch or a second ring.
			return nil, ErrOpenLoop
		}

		found := -1
		for i, e := range remaining {
			if e.Vertices[0] == tail || e.Vertices[1] == tail {
				found = i
				break
			}
		}
		if found == -1 {
			return nil, ErrOpenLoop
		}

		e := remaining[found]
		last := len(remaining) - 1
		remaining[found] = remaining[last]
		remaining = remaining[:last]

		verts = append(verts, tail)
		if e.Vertices[0] == tail {
			tail = e.Vertices[1]
		} else {
			tail = e.Vertices[0]
		}
	}

	if tail != verts[0] {
		return nil, ErrOpenLoop
	}

	return verts, nil
}

// accumulatedNormal sums the cross products of consecutive edge vectors
// around the loop (Newell's method), giving a normal whose sign reflects
// the walked winding direction regardless of the polygon's shape.
func accumulatedNormal(c *brep.Compacted, verts []int) mgl64.Vec3 {
	var acc mgl64.Vec3
	n := len(verts)
	for i := 0; i < n; i++ {
		cur := c.Vertices[verts[i]].Position
		next := c.Vertices[verts[(i+1)%n]].Position
		acc[0] += (cur.Y() - next.Y()) * (cur.Z() + next.Z())
		acc[1] += (cur.Z() - next.Z()) * (cur.X() + next.X())
		acc[2] += (cur.X() - next.X()) * (cur.Y() + next.Y())
	}
	return acc
}

func reverse(verts []int) {
	for i, j := 0, len(verts)-1; i < j; i, j = i+1, j-1 {
		verts[i], verts[j] = verts[j], verts[i]
	}
}
