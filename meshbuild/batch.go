package meshbuild

import "github.com/poetahto/brushgeo/brep"

// Batch is one texture's contribution to a Model: four parallel float
// streams plus a 16-bit index stream (§3 "Mesh batch"). Position is 3
// floats per vertex, Normal 3, Tangent 4 (the U basis with a padded
// trailing 0, §4.6), UV 2.
type Batch struct {
	Texture  brep.TextureID
	Position []float32
	Normal   []float32
	Tangent  []float32
	UV       []float32
	Index    []uint16

	VertexCount int
}

// IndexCount returns the number of indices emitted so far - 3 per
// triangle, since C6 only ever emits triangles.
func (b *Batch) IndexCount() int { return len(b.Index) }

// TriangleCount returns the number of triangles emitted so far.
func (b *Batch) TriangleCount() int { return len(b.Index) / 3 }

// Model is the per-entity output of build_model / build_meshes: one Batch
// per texture identifier actually seen across the entity's brushes (§4.7).
type Model struct {
	Batches []*Batch
}
