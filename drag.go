package hipedit

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Below this clip-space length the axis points (almost) straight at the camera
// and has no usable screen direction.
const minScreenDirection = 1e-6

// DragProjector turns 2D mouse deltas into movement along a world axis.
type DragProjector struct {
	ViewProjection mgl32.Mat4
}

// ScreenDirection is the unit on-screen direction of moving one world unit
// from pivot along axis. Points are transformed to clip space without the
// perspective divide and the depth component is dropped.
func (p DragProjector) ScreenDirection(pivot, axis mgl32.Vec3) (mgl32.Vec2, bool) {
	a := p.ViewProjection.Mul4x1(pivot.Vec4(1)).Vec3()
	b := p.ViewProjection.Mul4x1(pivot.Add(axis).Vec4(1)).Vec3()
	d := b.Sub(a)

	l := math32.Sqrt(d.X()*d.X() + d.Y()*d.Y())
	if l < minScreenDirection || math32.IsNaN(l) || math32.IsInf(l, 0) {
		return mgl32.Vec2{}, false
	}
	return mgl32.Vec2{d.X() / l, d.Y() / l}, true
}

// Movement is the scalar movement along axis for a pixel delta. Screen y grows
// downwards, so the y term is negated.
func (p DragProjector) Movement(pivot, axis mgl32.Vec3, distanceX, distanceY float32) (float32, bool) {
	d, ok := p.ScreenDirection(pivot, axis)
	if !ok {
		return 0, false
	}
	return distanceX*d.X() - distanceY*d.Y(), true
}
