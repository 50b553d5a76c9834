package geom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Shape is anything a pick ray can be tested against. Intersect returns the
// distance along the ray to the hit.
type Shape interface {
	Intersect(r Ray) (float32, bool)
}

// Arrow is a pickable segment starting at Origin and running Length units along
// Axis, with a pick tolerance of Radius.
type Arrow struct {
	Origin mgl32.Vec3
	Axis   mgl32.Vec3
	Length float32
	Radius float32
}

func (a Arrow) Tip() mgl32.Vec3 {
	return a.Origin.Add(a.Axis.Normalize().Mul(a.Length))
}

func (a Arrow) Intersect(r Ray) (float32, bool) {
	if a.Axis.Len() == 0 {
		return 0, false
	}
	t, s, d := ClosestPoints(r.Origin, r.Direction, a.Origin, a.Axis.Normalize())
	if t > 0 && s >= 0 && s <= a.Length && d < a.Radius {
		return t, true
	}
	return 0, false
}

// Ring is a circle of Radius around Center in the plane with the given Normal.
// A hit must land within Tolerance of the circle.
type Ring struct {
	Center    mgl32.Vec3
	Normal    mgl32.Vec3
	Radius    float32
	Tolerance float32
}

func (g Ring) Intersect(r Ray) (float32, bool) {
	if g.Normal.Len() == 0 {
		return 0, false
	}
	t, ok := r.IntersectPlane(g.Center, g.Normal.Normalize())
	if !ok {
		return 0, false
	}
	dist := r.At(t).Sub(g.Center).Len()
	if math32.Abs(dist-g.Radius) < g.Tolerance {
		return t, true
	}
	return 0, false
}

// OrientedBox is a box of half extents HalfSize around Center, rotated by
// Rotation.
type OrientedBox struct {
	Center   mgl32.Vec3
	Rotation mgl32.Mat3
	HalfSize mgl32.Vec3
}

func (b OrientedBox) Intersect(r Ray) (float32, bool) {
	inv := b.Rotation.Transpose()
	local := Ray{
		Origin:    inv.Mul3x1(r.Origin.Sub(b.Center)),
		Direction: inv.Mul3x1(r.Direction),
	}
	return local.IntersectAABB(AABB{Min: b.HalfSize.Mul(-1), Max: b.HalfSize})
}
