// Package brushgeo implements the brush-to-mesh geometric pipeline: plane
// clipping a seed cube into a B-rep (C1-C4), then tessellating that B-rep
// into textured triangle meshes (C5-C6).
package brushgeo

// DefaultWorkers is the worker count used when Config.Workers is left at
// its zero value.
const DefaultWorkers = 1

// DefaultSeedHalfExtent is chosen large enough that, for brushes built at
// ordinary map scales, every plane clips the seed cube strictly inside its
// interior (§4.2) rather than missing it entirely.
const DefaultSeedHalfExtent = 10000

// DefaultEpsilon is the plane-distance tolerance DefaultConfig sets for
// snapping near-coplanar vertices (§4.3). A zero Config.Epsilon is passed
// to the clipper as is; it is not replaced by this default.
const DefaultEpsilon = 0.01

// Config carries the numeric knobs build_geometry/build_model/build_meshes
// read (§6 "Numeric configuration"). The zero Config is not directly
// usable; call DefaultConfig or fill in every field explicitly.
type Config struct {
	// SeedHalfExtent sets the half-extent of the cube every brush starts
	// from (§4.2).
	SeedHalfExtent float64

	// Epsilon is the plane-distance tolerance passed to every clip (§4.3).
	Epsilon float64

	// Workers bounds how many goroutines BuildModels spawns per call
	// (§5 "one worker per brush"). Values below DefaultWorkers are
	// treated as DefaultWorkers.
	Workers int
}

// DefaultConfig returns a Config with the module's default numeric
// constants filled in.
func DefaultConfig() Config {
	return Config{
		SeedHalfExtent: DefaultSeedHalfExtent,
		Epsilon:        DefaultEpsilon,
		Workers:        DefaultWorkers,
	}
}

func (c Config) workerCount() int {
	if c.Workers < DefaultWorkers {
		return DefaultWorkers
	}
	return c.Workers
}
