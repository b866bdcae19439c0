package meshbuild

import (
	"fmt"
	"math"

	"github.com/poetahto/brushgeo/brep"
	"github.com/poetahto/brushgeo/loopwalk"
)

// Builder accumulates triangles into per-texture batches across one or
// more compacted B-reps (§4.6, §4.7). Its zero value is not usable; use
// NewBuilder. A Builder is not safe for concurrent use; the pipeline
// creates one Builder per BuildModel call (one per entity), so BuildModels'
// workers never share a Builder (§5).
type Builder struct {
	batches map[brep.TextureID]*Batch
	order   []brep.TextureID

	// vertexMap is cleared at the start of every face (§4.6): sharing one
	// mesh vertex between two faces would share their differing normals
	// and UVs, so dedup only ever applies within a single face's loop.
	// It is allocated once per Builder and reused across every face this
	// Builder ever processes purely to avoid reallocating the map.
	vertexMap map[int]int
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{
		batches:   make(map[brep.TextureID]*Batch),
		vertexMap: make(map[int]int, 16),
	}
}

// AddBrep tessellates every textured face of c into this Builder's
// per-texture batches (§4.6). Faces with a nil Texture - untouched seed
// faces that no clip ever capped - contribute nothing.
func (b *Builder) AddBrep(c *brep.Compacted) error {
	for faceIdx := range c.Faces {
		face := &c.Faces[faceIdx]
		if face.Texture == nil {
			continue
		}

		verts, _, err := loopwalk.ExtractLoop(c, faceIdx)
		if err != nil {
			return fmt.Errorf("meshbuild: %w", err)
		}
		if len(verts) < 3 {
			continue
		}

		b.emitFan(c, face, verts)
	}
	return nil
}

// emitFan projects a triangle fan from verts[0] (§4.6), emitting one new
// mesh vertex per distinct loop vertex and 3 indices per triangle. verts is
// already wound correctly by loopwalk.ExtractLoop - reversal there keeps
// verts[0] fixed as the fan apex and only reorders the tail, which is
// triangle-for-triangle equivalent to swapping the last two indices of
// every fan triangle, so no further correction is needed here.
func (b *Builder) emitFan(c *brep.Compacted, face *brep.CompactFace, verts []int) {
	batch := b.batchFor(face.Texture.Texture)

	clear(b.vertexMap)
	local := make([]uint16, len(verts))
	for i, v := range verts {
		local[i] = b.emitVertex(batch, c, v, face)
	}

	for i := 1; i+1 < len(local); i++ {
		batch.Index = append(batch.Index, local[0], local[i], local[i+1])
	}
}

// emitVertex appends one vertex's attributes to batch and returns its
// local (per-batch) index, reusing an existing one if vertIdx was already
// emitted for the face currently being processed.
func (b *Builder) emitVertex(batch *Batch, c *brep.Compacted, vertIdx int, face *brep.CompactFace) uint16 {
	if local, ok := b.vertexMap[vertIdx]; ok {
		return uint16(local)
	}

	pos := c.Vertices[vertIdx].Position
	tex := face.Texture

	// §9 OQ1: the position stream is rounded to the nearest integer, but
	// UV projection below uses the unrounded position.
	rounded := [3]float64{math.Round(pos.X()), math.Round(pos.Y()), math.Round(pos.Z())}
	batch.Position = append(batch.Position,
		float32(rounded[0]), float32(rounded[1]), float32(rounded[2]))

	batch.Normal = append(batch.Normal,
		float32(face.Normal.X()), float32(face.Normal.Y()), float32(face.Normal.Z()))

	// Tangent is the face's U basis with an explicit 4th component of 0
	// (§4.6, §9 OQ1).
	batch.Tangent = append(batch.Tangent,
		float32(tex.UAxis.X()), float32(tex.UAxis.Y()), float32(tex.UAxis.Z()), 0)

	u := pos.Dot(tex.UAxis)*tex.UScale + tex.UOffset
	v := pos.Dot(tex.VAxis)*tex.VScale + tex.VOffset
	batch.UV = append(batch.UV, float32(u), float32(v))

	local := batch.VertexCount
	batch.VertexCount++
	b.vertexMap[vertIdx] = local
	return uint16(local)
}

// batchFor returns the Batch for tex, creating it (and recording first-seen
// order, so Model's batch list is deterministic for a given input) if this
// is the first face seen for that texture.
func (b *Builder) batchFor(tex brep.TextureID) *Batch {
	if batch, ok := b.batches[tex]; ok {
		return batch
	}
	batch := &Batch{Texture: tex}
	b.batches[tex] = batch
	b.order = append(b.order, tex)
	return batch
}

// Model flushes the accumulated batches into a Model, one entry per
// texture seen, in first-seen order (§4.7).
func (b *Builder) Model() *Model {
	batches := make([]*Batch, len(b.order))
	for i, tex := range b.order {
		batches[i] = b.batches[tex]
	}
	return &Model{Batches: batches}
}
