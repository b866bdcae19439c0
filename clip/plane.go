// Package clip implements the plane clipper (C3): slicing a mutable B-rep
// by one oriented plane while preserving invariants I1-I6.
package clip

import (
	"github.com/go-gl/mathgl/mgl64"
	"github.com/poetahto/brushgeo/brep"
)

// Plane is one brush half-space, carrying the texture attributes the cap
// face created by clipping against it will inherit. A point p is clipped
// when Normal.Dot(p) - Constant >= +eps, kept when <= -eps, and snapped
// to on-plane otherwise (§4.3). Normal points away from the solid's
// interior; the kept half-space is the negative side.
type Plane struct {
	Normal   mgl64.Vec3
	Constant float64
	Texture  brep.TextureAttrs
}

// Distance returns the signed distance from p to the plane.
func (p Plane) Distance(point mgl64.Vec3) float64 {
	return p.Normal.Dot(point) - p.Constant
}
