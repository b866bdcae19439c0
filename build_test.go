package brushgeo_test

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/require"

	"github.com/poetahto/brushgeo"
	"github.com/poetahto/brushgeo/brep"
	"github.com/poetahto/brushgeo/diag"
)

func testConfig(seedHalf float64) brushgeo.Config {
	cfg := brushgeo.DefaultConfig()
	cfg.SeedHalfExtent = seedHalf
	cfg.Epsilon = 1e-9
	return cfg
}

func texturedPlane(normal mgl64.Vec3, constant float64, tex brep.TextureID) brushgeo.PlaneDef {
	return brushgeo.PlaneDef{
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

// Scenario 1 (§8): an empty brush yields the bare seed cube - 8 vertices,
// 12 edges, 6 faces - and, since no face is textured, zero mesh batches.
func TestBuildGeometry_SeedOnlyCube(t *testing.T) {
	arena := brushgeo.NewArena()
	c, err := brushgeo.BuildGeometry(arena, brushgeo.Brush{}, testConfig(1), 0, nil)
	require.NoError(t, err)

	require.Len(t, c.Vertices, 8)
	require.Len(t, c.Edges, 12)
	require.Len(t, c.Faces, 6)

	model, err := brushgeo.BuildMeshes([]*brep.Compacted{c})
	require.NoError(t, err)
	require.Empty(t, model.Batches)
}

// Scenario 2 (§8): cutting a 10000-cube with n=(1,0,0), c=0 keeps the
// negative-x half: 4 original corners survive unchanged, 4 new ones appear
// at x=0.
func TestBuildGeometry_SinglePlaneCut(t *testing.T) {
	arena := brushgeo.NewArena()
	brush := brushgeo.Brush{Planes: []brushgeo.PlaneDef{
		texturedPlane(mgl64.Vec3{1, 0, 0}, 0, 1),
	}}

	c, err := brushgeo.BuildGeometry(arena, brush, testConfig(10000), 0, nil)
	require.NoError(t, err)

	require.Len(t, c.Vertices, 8)
	require.Len(t, c.Edges, 12)
	require.Len(t, c.Faces, 6)

	var keptCorners, newOnPlane int
	for _, v := range c.Vertices {
		switch {
		case math.Abs(v.Position.X()+10000) < 1e-6:
			keptCorners++
		case math.Abs(v.Position.X()) < 1e-6:
			newOnPlane++
		default:
			t.Fatalf("unexpected vertex position %v", v.Position)
		}
	}
	require.Equal(t, 4, keptCorners)
	require.Equal(t, 4, newOnPlane)
}

// Scenario 3 (§8): a unit tetrahedron built from 4 half-spaces has 4
// vertices, 6 edges, 4 faces, and every face normal points away from the
// solid's centroid.
func TestBuildGeometry_UnitTetrahedron(t *testing.T) {
	arena := brushgeo.NewArena()
	brush := brushgeo.Brush{Planes: []brushgeo.PlaneDef{
		texturedPlane(mgl64.Vec3{-1, 0, 0}, 0, 1),
		texturedPlane(mgl64.Vec3{0, -1, 0}, 0, 2),
		texturedPlane(mgl64.Vec3{0, 0, -1}, 0, 3),
		texturedPlane(mgl64.Vec3{1, 1, 1}, 1, 4),
	}}

	c, err := brushgeo.BuildGeometry(arena, brush, testConfig(10), 0, nil)
	require.NoError(t, err)

	require.Len(t, c.Vertices, 4)
	require.Len(t, c.Edges, 6)
	require.Len(t, c.Faces, 4)

	centroid := mgl64.Vec3{0.25, 0.25, 0.25}
	for i, f := range c.Faces {
		require.NotEmpty(t, f.Edges)
		firstVert := c.Vertices[c.Edges[f.Edges[0]].Vertices[0]].Position
		toCentroid := centroid.Sub(firstVert)
		require.Lessf(t, f.Normal.Dot(toCentroid), 0.0,
			"face %d normal should point away from the centroid", i)
	}
}

// Scenario 4 (§8): clipping by all six faces of a unit cube leaves 8
// vertices at (±0.5,±0.5,±0.5), and C6 rounds them onto an integer grid.
func TestBuildModel_AxisAlignedCubeRoundsToIntegerGrid(t *testing.T) {
	arena := brushgeo.NewArena()
	brush := brushgeo.Brush{Planes: []brushgeo.PlaneDef{
		texturedPlane(mgl64.Vec3{1, 0, 0}, 0.5, 1),
		texturedPlane(mgl64.Vec3{-1, 0, 0}, 0.5, 1),
		texturedPlane(mgl64.Vec3{0, 1, 0}, 0.5, 1),
		texturedPlane(mgl64.Vec3{0, -1, 0}, 0.5, 1),
		texturedPlane(mgl64.Vec3{0, 0, 1}, 0.5, 1),
		texturedPlane(mgl64.Vec3{0, 0, -1}, 0.5, 1),
	}}

	c, err := brushgeo.BuildGeometry(arena, brush, testConfig(10), 0, nil)
	require.NoError(t, err)
	require.Len(t, c.Vertices, 8)

	model, err := brushgeo.BuildMeshes([]*brep.Compacted{c})
	require.NoError(t, err)
	require.Len(t, model.Batches, 1)

	for i := 0; i < len(model.Batches[0].Position); i++ {
		require.Equal(t, math.Trunc(float64(model.Batches[0].Position[i])), float64(model.Batches[0].Position[i]))
	}
}

// Scenario 6 (§8) exercised through the full BuildModel entry point:
// two differently-textured cap faces become two mesh batches.
func TestBuildModel_TwoTextures(t *testing.T) {
	entity := brushgeo.Entity{Brushes: []brushgeo.Brush{{
		Planes: []brushgeo.PlaneDef{
			texturedPlane(mgl64.Vec3{1, 0, 0}, 0.5, 1),
			texturedPlane(mgl64.Vec3{0, 1, 0}, 0.5, 2),
		},
	}}}

	model, err := brushgeo.BuildModel(entity, testConfig(2), nil)
	require.NoError(t, err)
	require.Len(t, model.Batches, 2)
}

// A brush whose first plane clips away everything is reported through the
// diagnostic sink rather than as an error, and yields an empty compacted
// B-rep (§7, §9 OQ4).
func TestBuildGeometry_DegenerateBrushEmitsEvent(t *testing.T) {
	arena := brushgeo.NewArena()
	sink := diag.NewSink()

	var got []diag.DegenerateBrushEvent
	sink.Subscribe(diag.DegenerateBrush, func(e diag.Event) {
		got = append(got, e.(diag.DegenerateBrushEvent))
	})

	brush := brushgeo.Brush{Planes: []brushgeo.PlaneDef{
		texturedPlane(mgl64.Vec3{1, 0, 0}, -100, 1),
	}}

	c, err := brushgeo.BuildGeometry(arena, brush, testConfig(1), 3, sink)
	require.NoError(t, err)
	require.Empty(t, c.Vertices)
	require.Len(t, got, 1)
	require.Equal(t, 3, got[0].BrushIndex)
}

// BuildModels processes multiple entities and preserves output order
// regardless of how the work was sharded across workers.
func TestBuildModels_PreservesOrder(t *testing.T) {
	cfg := testConfig(2)
	cfg.Workers = 4

	entities := make([]brushgeo.Entity, 5)
	for i := range entities {
		tex := brep.TextureID(i + 1)
		entities[i] = brushgeo.Entity{Brushes: []brushgeo.Brush{{
			Planes: []brushgeo.PlaneDef{texturedPlane(mgl64.Vec3{1, 0, 0}, 0.5, tex)},
		}}}
	}

	models, err := brushgeo.BuildModels(entities, cfg, nil)
	require.NoError(t, err)
	require.Len(t, models, 5)
	for i, m := range models {
		require.Len(t, m.Batches, 1)
		require.Equal(t, brep.TextureID(i+1), m.Batches[0].Texture)
	}
}
