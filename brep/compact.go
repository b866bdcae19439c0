package brep

import "github.com/go-gl/mathgl/mgl64"

// CompactVertex is a vertex in the compacted B-rep: position only, no
// visibility flag, no transient clip scalars.
type CompactVertex struct {
	Position mgl64.Vec3
}

// CompactEdge is an edge in the compacted B-rep, densely indexed.
type CompactEdge struct {
	Vertices [2]int
	Faces    [2]int
}

// CompactFace is a face in the compacted B-rep, densely indexed.
type CompactFace struct {
	Edges   []int
	Normal  mgl64.Vec3
	Texture *TextureAttrs
}

// Compacted is the immutable, densely-indexed B-rep C4 produces: only
// visible entities survive, and every cross-reference has been rewritten
// to point into these three arrays.
type Compacted struct {
	Vertices []CompactVertex
	Edges    []CompactEdge
	Faces    []CompactFace
}

// Compact rewrites the sparse, post-clip mutable B-rep into a dense one
// (C4). It never mutates m.
//
// Two ordered passes, per §4.4:
//  1. Copy each visible vertex/edge/face in source order, filling three
//     old-index -> new-index remap tables.
//  2. Rewrite every edge's vertex and face indices, and every face's edge
//     indices, through those tables.
//
// Because entities are copied in source order, output indices increase
// monotonically with source index: identical mutable input always yields
// identical compacted output (P6).
func Compact(m *MutableBrep) *Compacted {
	vertexRemap := make([]int, m.VertexCount())
	edgeRemap := make([]int, m.EdgeCount())
	faceRemap := make([]int, m.FaceCount())
	for i := range vertexRemap {
		vertexRemap[i] = -1
	}
	for i := range edgeRemap {
		edgeRemap[i] = -1
	}
	for i := range faceRemap {
		faceRemap[i] = -1
	}

	out := &Compacted{
		Vertices: make([]CompactVertex, 0, m.VisibleVertexCount()),
		Edges:    make([]CompactEdge, 0, m.VisibleEdgeCount()),
		Faces:    make([]CompactFace, 0, m.VisibleFaceCount()),
	}

	// Pass 1: copy visible entities, recording the remap.
	for i := 0; i < m.VertexCount(); i++ {
		v := m.Vertex(i)
		if !v.Visible {
			continue
		}
		vertexRemap[i] = len(out.Vertices)
		out.Vertices = append(out.Vertices, CompactVertex{Position: v.Position})
	}

	for i := 0; i < m.EdgeCount(); i++ {
		e := m.Edge(i)
		if !e.Visible {
			continue
		}
		edgeRemap[i] = len(out.Edges)
		out.Edges = append(out.Edges, CompactEdge{Vertices: e.Vertices, Faces: e.Faces})
	}

	for i := 0; i < m.FaceCount(); i++ {
		f := m.Face(i)
		if !f.Visible {
			continue
		}
		faceRemap[i] = len(out.Faces)
		edges := make([]int, len(f.Edges))
		copy(edges, f.Edges)
		out.Faces = append(out.Faces, CompactFace{Edges: edges, Normal: f.Normal, Texture: f.Texture})
	}

	// Pass 2: rewrite cross-references through the remap tables.
	for i := range out.Edges {
		e := &out.Edges[i]
		e.Vertices[0] = vertexRemap[e.Vertices[0]]
		e.Vertices[1] = vertexRemap[e.Vertices[1]]
		e.Faces[0] = faceRemap[e.Faces[0]]
		e.Faces[1] = faceRemap[e.Faces[1]]
	}
	for i := range out.Faces {
		f := &out.Faces[i]
		for j, edgeIdx := range f.Edges {
			f.Edges[j] = edgeRemap[edgeIdx]
		}
	}

	return out
}
