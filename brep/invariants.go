package brep

import "fmt"

// CheckInvariants verifies I1-I3, I5 and I6 (§3) against the mutable B-rep.
// I4 (outward-pointing normals) requires knowledge of which side is
// "interior" that the store itself does not have, so it is left to callers
// that know the solid's construction (e.g. a test comparing against a
// known centroid, as scenario 3 in §8 does).
//
// This is a debug/test aid, not something the clipper calls on every
// phase - the clipping algorithm is written to preserve these invariants
// by construction rather than re-verifying them on every call.
func CheckInvariants(m *MutableBrep) error {
	for i := 0; i < m.EdgeCount(); i++ {
		e := m.Edge(i)
		if !e.Visible {
			continue
		}
		if e.Vertices[0] == e.Vertices[1] {
			return fmt.Errorf("brep: edge %d is a self-loop", i)
		}
		for _, vIdx := range e.Vertices {
			if !m.Vertex(vIdx).Visible {
				return fmt.Errorf("brep: edge %d references invisible vertex %d", i, vIdx)
			}
		}
		for _, fIdx := range e.Faces {
			if !containsInt(m.Face(fIdx).Edges, i) {
				return fmt.Errorf("brep: edge %d not found in face %d's edge set", i, fIdx)
			}
		}
	}

	for i := 0; i < m.FaceCount(); i++ {
		f := m.Face(i)
		if !f.Visible {
			continue
		}
		if hasDuplicateInt(f.Edges) {
			return fmt.Errorf("brep: face %d has a duplicate edge", i)
		}

		occurs := map[int]int{}
		for _, edgeIdx := range f.Edges {
			e := m.Edge(edgeIdx)
			occurs[e.Vertices[0]]++
			occurs[e.Vertices[1]]++
		}
		for v, count := range occurs {
			if count != 2 {
				return fmt.Errorf("brep: face %d vertex %d occurs %d times, want 2", i, v, count)
			}
		}
	}

	return nil
}

func containsInt(s []int, v int) bool {
	for _, x := range s {
		if x == v {
			return true
		}
	}
	return false
}

func hasDuplicateInt(s []int) bool {
	seen := make(map[int]struct{}, len(s))
	for _, x := range s {
		if _, ok := seen[x]; ok {
			return true
		}
		seen[x] = struct{}{}
	}
	return false
}
