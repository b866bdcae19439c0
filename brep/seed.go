package brep

import "github.com/go-gl/mathgl/mgl64"

// seedVertexOrder fixes the cube's 8 corners: front-bottom-left,
// front-top-left, front-top-right, front-bottom-right, then the back four
// in the same planar order (§4.2). "Front" is an arbitrary but consistent
// choice of -Z; the core treats the coordinate system as opaque (§9 OQ3),
// so nothing downstream depends on which axis is "front".
func seedVertexOrder(half float64) [8]mgl64.Vec3 {
	return [8]mgl64.Vec3{
		{-half, -half, -half}, // 0 front-bottom-left
		{-half, half, -half},  // 1 front-top-left
		{half, half, -half},   // 2 front-top-right
		{half, -half, -half},  // 3 front-bottom-right
		{-half, -half, half},  // 4 back-bottom-left
		{-half, half, half},   // 5 back-top-left
		{half, half, half},    // 6 back-top-right
		{half, -half, half},   // 7 back-bottom-right
	}
}

// NewSeed builds a fresh cube B-rep (C2): 8 vertices, 12 edges, 6 faces,
// fully wired, centered at the origin with half-extent halfExtent. No face
// carries texture attributes - a seed face is only textured once a clip
// caps it with a brush plane.
func NewSeed(halfExtent float64) *MutableBrep {
	m := New()
	BuildSeedInto(m, halfExtent)
	return m
}

// BuildSeedInto resets m and wires a fresh seed cube into it, letting a
// pooled MutableBrep be reused across brushes without reallocating its
// backing arrays (§5 arena allocation).
func BuildSeedInto(m *MutableBrep, halfExtent float64) {
	m.Reset()

	corners := seedVertexOrder(halfExtent)
	v := [8]int{}
	for i, p := range corners {
		v[i] = m.AddVertex(p)
	}

	// 12 edges: 4 front, 4 back, 4 connecting front to back.
	type edgeSpec struct{ a, b int }
	edgeSpecs := [12]edgeSpec{
		{v[0], v[1]}, // e0 front-left
		{v[1], v[2]}, // e1 front-top
		{v[2], v[3]}, // e2 front-right
		{v[3], v[0]}, // e3 front-bottom
		{v[4], v[5]}, // e4 back-left
		{v[5], v[6]}, // e5 back-top
		{v[6], v[7]}, // e6 back-right
		{v[7], v[4]}, // e7 back-bottom
		{v[0], v[4]}, // e8 bottom-left connector
		{v[1], v[5]}, // e9 top-left connector
		{v[2], v[6]}, // e10 top-right connector
		{v[3], v[7]}, // e11 bottom-right connector
	}

	// Faces are added first with empty edge sets (so edges can reference
	// their final face indices), then wired in a second pass. Winding
	// within each face's edge set does not matter - the loop extractor
	// (C5) reconstructs order and corrects winding from the normal alone.
	faceFront := m.AddFace(mgl64.Vec3{0, 0, -1}, nil, nil)
	faceBack := m.AddFace(mgl64.Vec3{0, 0, 1}, nil, nil)
	faceLeft := m.AddFace(mgl64.Vec3{-1, 0, 0}, nil, nil)
	faceRight := m.AddFace(mgl64.Vec3{1, 0, 0}, nil, nil)
	faceTop := m.AddFace(mgl64.Vec3{0, 1, 0}, nil, nil)
	faceBottom := m.AddFace(mgl64.Vec3{0, -1, 0}, nil, nil)

	// Each edge borders exactly the two faces whose planes share that edge.
	edgeFaces := [12][2]int{
		{faceFront, faceLeft},   // e0
		{faceFront, faceTop},    // e1
		{faceFront, faceRight},  // e2
		{faceFront, faceBottom}, // e3
		{faceBack, faceLeft},    // e4
		{faceBack, faceTop},     // e5
		{faceBack, faceRight},   // e6
		{faceBack, faceBottom},  // e7
		{faceLeft, faceBottom},  // e8
		{faceLeft, faceTop},     // e9
		{faceRight, faceTop},    // e10
		{faceRight, faceBottom}, // e11
	}

	for i, spec := range edgeSpecs {
		ef := edgeFaces[i]
		edgeIdx := m.AddEdge(spec.a, spec.b, ef[0], ef[1])
		m.FaceAppendEdge(ef[0], edgeIdx)
		m.FaceAppendEdge(ef[1], edgeIdx)
	}
}
