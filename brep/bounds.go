package brep

import "github.com/go-gl/mathgl/mgl64"

// AABB is an axis-aligned bounding box: Min/Max corners plus a
// ContainsPoint test, used here to check that a brush's extent fits
// inside the seed cube (§4.2 "chosen large enough that all brush
// half-spaces clip the cube strictly inside its interior").
type AABB struct {
	Min mgl64.Vec3
	Max mgl64.Vec3
}

// ContainsPoint reports whether point lies inside the box.
func (a AABB) ContainsPoint(point mgl64.Vec3) bool {
	return point.X() >= a.Min.X() && point.X() <= a.Max.X() &&
		point.Y() >= a.Min.Y() && point.Y() <= a.Max.Y() &&
		point.Z() >= a.Min.Z() && point.Z() <= a.Max.Z()
}

// Bounds computes the AABB of every visible vertex in the compacted B-rep.
// It reads already-built geometry; the tests use it to check a clipped
// brush's extent against its planes and the seed half-extent.
func Bounds(c *Compacted) AABB {
	if len(c.Vertices) == 0 {
		return AABB{}
	}

	min := c.Vertices[0].Position
	max := c.Vertices[0].Position
	for _, v := range c.Vertices[1:] {
		p := v.Position
		if p.X() < min.X() {
			min[0] = p.X()
		}
		if p.Y() < min.Y() {
			min[1] = p.Y()
		}
		if p.Z() < min.Z() {
			min[2] = p.Z()
		}
		if p.X() > max.X() {
			max[0] = p.X()
		}
		if p.Y() > max.Y() {
			max[1] = p.Y()
		}
		if p.Z() > max.Z() {
			max[2] = p.Z()
		}
	}

	return AABB{Min: min, Max: max}
}
