package brushgeo

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/poetahto/brushgeo/brep"
	"github.com/poetahto/brushgeo/clip"
	"github.com/poetahto/brushgeo/diag"
	"github.com/poetahto/brushgeo/meshbuild"
)

// PlaneDef is one half-space of a brush: the plane's orientation plus the
// texture attributes any cap face created by clipping against it inherits
// (§3 "Face").
type PlaneDef struct {
	Normal   mgl64.Vec3
	Constant float64
	Texture  brep.TextureAttrs
}

// Brush is a convex solid defined as the intersection of its Planes'
// kept half-spaces (§1).
type Brush struct {
	Planes []PlaneDef
}

// Entity owns zero or more brushes that share one combined mesh set
// (§4.7 "Models from multiple brushes share the same batching map").
type Entity struct {
	Brushes []Brush
}

// BuildGeometry runs C2-C4 for one brush: seed a cube, clip it by every
// plane in order, then compact (the `build_geometry` entry point, §6).
// brushIndex only labels a DegenerateBrushEvent and any returned error;
// pass 0 for a one-off call outside of BuildModel.
//
// A brush that collapses entirely (every vertex clipped by some plane,
// §7) is not an error: BuildGeometry reports it through sink (which may be
// nil) and returns the resulting empty *brep.Compacted.
func BuildGeometry(arena *Arena, brush Brush, cfg Config, brushIndex int, sink *diag.Sink) (*brep.Compacted, error) {
	m := arena.Acquire()
	defer arena.Release(m)

	brep.BuildSeedInto(m, cfg.SeedHalfExtent)

	scratch := clip.Acquire()
	defer clip.Release(scratch)

	for planeIdx, p := range brush.Planes {
		plane := clip.Plane{Normal: p.Normal, Constant: p.Constant, Texture: p.Texture}

		degenerate, err := clip.ClipWithScratch(m, plane, cfg.Epsilon, scratch)
		if err != nil {
			return nil, fmt.Errorf("brushgeo: brush %d plane %d: %w", brushIndex, planeIdx, err)
		}
		if degenerate {
			sink.Emit(diag.DegenerateBrushEvent{BrushIndex: brushIndex, PlaneIndex: planeIdx})
			break
		}
	}

	return brep.Compact(m), nil
}

// BuildMeshes runs C6 over an already-compacted set of B-reps, batching
// triangles by texture (the `build_meshes` entry point, §6). It is a pure
// function of its input.
func BuildMeshes(compacted []*brep.Compacted) (*meshbuild.Model, error) {
	builder := meshbuild.NewBuilder()
	for i, c := range compacted {
		if err := builder.AddBrep(c); err != nil {
			return nil, fmt.Errorf("brushgeo: brep %d: %w", i, err)
		}
	}
	return builder.Model(), nil
}

// BuildModel runs build_geometry over every brush of entity, then a single
// pass of build_meshes (the `build_model` entry point, §6).
func BuildModel(entity Entity, cfg Config, sink *diag.Sink) (*meshbuild.Model, error) {
	arena := NewArena()
	compacted := make([]*brep.Compacted, len(entity.Brushes))

	for i, brush := range entity.Brushes {
		c, err := BuildGeometry(arena, brush, cfg, i, sink)
		if err != nil {
			return nil, err
		}
		compacted[i] = c
	}

	return BuildMeshes(compacted)
}

// BuildModels runs BuildModel over every entity, sharded across
// cfg.Workers goroutines (§5 "one worker per brush... safe at the brush
// granularity because no shared mutable state exists between brushes" -
// the same argument holds one level up, at entity granularity, since each
// entity owns its own Arena and Builder).
//
// sink is shared across workers; if it is non-nil, its listeners must
// tolerate concurrent Emit calls from different goroutines.
func BuildModels(entities []Entity, cfg Config, sink *diag.Sink) ([]*meshbuild.Model, error) {
	models := make([]*meshbuild.Model, len(entities))
	errs := make([]error, len(entities))

	task(cfg.workerCount(), len(entities), func(start, end int) {
		for i := start; i < end; i++ {
			m, err := BuildModel(entities[i], cfg, sink)
			models[i] = m
			errs[i] = err
		}
	})

	return models, errors.Join(errs...)
}
