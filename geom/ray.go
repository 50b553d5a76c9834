package geom

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Ray is a half-line in world space. Direction is kept normalized.
type Ray struct {
	Origin    mgl32.Vec3
	Direction mgl32.Vec3
}

func NewRay(origin, direction mgl32.Vec3) Ray {
	if direction.Len() > 0 {
		direction = direction.Normalize()
	}
	return Ray{Origin: origin, Direction: direction}
}

// At returns the point at distance t along the ray.
func (r Ray) At(t float32) mgl32.Vec3 {
	return r.Origin.Add(r.Direction.Mul(t))
}

// ScreenToWorldRay builds a pick ray from pixel coordinates. The viewport origin
// is the top-left corner, y grows downwards.
func ScreenToWorldRay(x, y float64, width, height int, viewProj mgl32.Mat4) Ray {
	if width <= 0 || height <= 0 {
		return Ray{Direction: mgl32.Vec3{0, 0, -1}}
	}
	ndcX := float32(2.0*x/float64(width) - 1.0)
	ndcY := float32(1.0 - 2.0*y/float64(height))

	inv := viewProj.Inv()
	near := unproject(inv, mgl32.Vec4{ndcX, ndcY, -1, 1})
	far := unproject(inv, mgl32.Vec4{ndcX, ndcY, 1, 1})

	return NewRay(near, far.Sub(near))
}

func unproject(inv mgl32.Mat4, ndc mgl32.Vec4) mgl32.Vec3 {
	p := inv.Mul4x1(ndc)
	if p.W() != 0 {
		p = p.Mul(1 / p.W())
	}
	return p.Vec3()
}

// WorldToScreen projects p to pixel coordinates. ok is false for points behind
// the camera.
func WorldToScreen(p mgl32.Vec3, viewProj mgl32.Mat4, width, height int) (mgl32.Vec2, bool) {
	clip := viewProj.Mul4x1(p.Vec4(1))
	if clip.W() <= 1e-6 {
		return mgl32.Vec2{}, false
	}
	ndc := clip.Vec3().Mul(1 / clip.W())
	return mgl32.Vec2{
		(ndc.X() + 1) * 0.5 * float32(width),
		(1 - ndc.Y()) * 0.5 * float32(height),
	}, true
}

// ClosestPoints returns the ray parameter t, the line parameter s and the
// distance between the two closest points of the ray (ro, rd) and the line
// (ao, ad). Parallel inputs report t = 0.
func ClosestPoints(ro, rd, ao, ad mgl32.Vec3) (float32, float32, float32) {
	r := ro.Sub(ao)
	a := rd.Dot(rd)
	b := rd.Dot(ad)
	e := ad.Dot(ad)
	f := ad.Dot(r)

	det := a*e - b*b
	if det < 1e-6 {
		return 0, 0, r.Len()
	}

	c := rd.Dot(r)
	t := (b*f - c*e) / det
	s := (a*f - b*c) / det

	p1 := ro.Add(rd.Mul(t))
	p2 := ao.Add(ad.Mul(s))
	return t, s, p1.Sub(p2).Len()
}

// IntersectPlane returns the distance along the ray to the plane through point
// with the given normal.
func (r Ray) IntersectPlane(point, normal mgl32.Vec3) (float32, bool) {
	denom := r.Direction.Dot(normal)
	if math32.Abs(denom) < 1e-6 {
		return 0, false
	}
	t := point.Sub(r.Origin).Dot(normal) / denom
	if t <= 0 {
		return 0, false
	}
	return t, true
}
