// Package brep implements the boundary-representation data model shared by
// the plane clipper and the mesh builder: a mutable, sparsely-visible graph
// of vertices, edges and faces (C1), the seed cube that starts every brush
// (C2), and the compactor that turns a clipped mutable graph into a dense,
// immutable one (C4).
package brep

import "github.com/go-gl/mathgl/mgl64"

// TextureID is an opaque identifier for a texture. The core never resolves
// it to pixels; it only groups faces for batching.
type TextureID uint64

// TextureAttrs carries the per-face attributes that originate from a brush
// plane: the texture to draw and the UV projection basis for that plane.
// Faces that do not originate from a brush plane (e.g. an untouched seed
// face) carry a nil *TextureAttrs and are not tessellated by the mesh
// builder.
type TextureAttrs struct {
	Texture          TextureID
	UAxis, VAxis     mgl64.Vec3
	UOffset, VOffset float64
	UScale, VScale   float64
}

// Vertex is a point in the B-rep plus two transient per-clip scalars:
// Distance (signed distance to the active clipping plane, written by the
// clipper's Phase 1) and Occurs (a slot for an endpoint-occurrence counter,
// §4.3 Phase 3). The clipper's Phase 3 counts occurrences in a local map
// and does not write Occurs. Both are meaningless outside of an
// in-progress Clip call.
type Vertex struct {
	Position mgl64.Vec3
	Distance float64
	Occurs   int
	Visible  bool
}

// Edge references exactly two vertices and exactly two faces, the two
// faces every edge of a closed polyhedron is shared by.
type Edge struct {
	Vertices [2]int
	Faces    [2]int
	Visible  bool
}

// Face owns a growable, unordered set of edge indices plus an outward
// normal. Texture is nil unless this face originated from (or was capped
// by) a brush plane.
type Face struct {
	Edges   []int
	Normal  mgl64.Vec3
	Texture *TextureAttrs
	Visible bool
}
