package meshbuild_test

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/poetahto/brushgeo/brep"
	"github.com/poetahto/brushgeo/clip"
	"github.com/poetahto/brushgeo/meshbuild"
)

func texturedPlane(normal mgl64.Vec3, constant float64, tex brep.TextureID) clip.Plane {
	return clip.Plane{
		Normal:   normal,
		Constant: constant,
		Texture: brep.TextureAttrs{
			Texture: tex,
			UAxis:   mgl64.Vec3{1, 0, 0},
			VAxis:   mgl64.Vec3{0, 1, 0},
			UScale:  1,
			VScale:  1,
		},
	}
}

// Scenario 6 (§8): a cube cut by two differently-textured planes yields
// exactly two mesh batches, each a 2-triangle quad fan (4 loop vertices ->
// 2 triangles -> 6 index entries for a 4-vertex cap).
func TestBuilder_TwoTextures(t *testing.T) {
	m := brep.NewSeed(2)

	_, err := clip.Clip(m, texturedPlane(mgl64.Vec3{1, 0, 0}, 0.5, 1), 1e-9)
	require.NoError(t, err)
	_, err = clip.Clip(m, texturedPlane(mgl64.Vec3{0, 1, 0}, 0.5, 2), 1e-9)
	require.NoError(t, err)
	require.NoError(t, brep.CheckInvariants(m))

	c := brep.Compact(m)
	b := meshbuild.NewBuilder()
	require.NoError(t, b.AddBrep(c))

	model := b.Model()
	require.Len(t, model.Batches, 2)

	seen := map[brep.TextureID]*meshbuild.Batch{}
	for _, batch := range model.Batches {
		seen[batch.Texture] = batch
	}
	require.Contains(t, seen, brep.TextureID(1))
	require.Contains(t, seen, brep.TextureID(2))

	for tex, batch := range seen {
		require.Equal(t, 2, batch.TriangleCount(), "texture %d should be a 2-triangle quad fan", tex)
		require.Equal(t, 6, batch.IndexCount())
		require.Len(t, batch.Position, batch.VertexCount*3)
		require.Len(t, batch.Normal, batch.VertexCount*3)
		require.Len(t, batch.Tangent, batch.VertexCount*4)
		require.Len(t, batch.UV, batch.VertexCount*2)
	}
}

// Scenario 1 (§8): a brush with no clipping planes at all has no textured
// faces, so the builder produces zero batches.
func TestBuilder_SeedOnlyCubeHasNoBatches(t *testing.T) {
	m := brep.NewSeed(1)
	c := brep.Compact(m)

	b := meshbuild.NewBuilder()
	require.NoError(t, b.AddBrep(c))
	require.Empty(t, b.Model().Batches)
}
