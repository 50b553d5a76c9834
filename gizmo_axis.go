package hipedit

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/hipedit/geom"
)

// Handle proportions, in units of the axis' visual scale.
const (
	arrowLength   = 1.0
	arrowRadius   = 0.15
	ringRadius    = 1.0
	ringTolerance = 0.12
	cubeOffset    = 1.0
	cubeHalf      = 0.1
	centerHalf    = 0.15
)

type handleShape int

const (
	shapeArrow handleShape = iota
	shapeRing
	shapeCube
)

// GizmoAxis is one handle. It is repositioned every frame and never persisted.
type GizmoAxis struct {
	Kind     GizmoKind
	Position mgl32.Vec3
	Rotation mgl32.Mat4
	Scale    float32
	Selected bool

	shape handleShape
}

func newAxis(kind GizmoKind, shape handleShape) GizmoAxis {
	return GizmoAxis{Kind: kind, Rotation: mgl32.Ident4(), Scale: 1, shape: shape}
}

// SetPosition places the handle at pos with the given visual scale and
// orientation.
func (g *GizmoAxis) SetPosition(pos mgl32.Vec3, scale float32, rot mgl32.Mat4) {
	g.Position = pos
	g.Scale = scale
	g.Rotation = rot
}

// WorldAxis is the handle's unit axis after the handle rotation.
func (g *GizmoAxis) WorldAxis() mgl32.Vec3 {
	a := g.Rotation.Mul4x1(g.Kind.unitAxis().Vec4(0)).Vec3()
	if a.Len() == 0 {
		return a
	}
	return a.Normalize()
}

func (g *GizmoAxis) pickShape() geom.Shape {
	switch g.shape {
	case shapeRing:
		return geom.Ring{
			Center:    g.Position,
			Normal:    g.WorldAxis(),
			Radius:    ringRadius * g.Scale,
			Tolerance: ringTolerance * g.Scale,
		}
	case shapeCube:
		return g.cube()
	}
	return geom.Arrow{
		Origin: g.Position,
		Axis:   g.WorldAxis(),
		Length: arrowLength * g.Scale,
		Radius: arrowRadius * g.Scale,
	}
}

func (g *GizmoAxis) cube() geom.OrientedBox {
	if g.Kind == GizmoScaleAll {
		h := centerHalf * g.Scale
		return geom.OrientedBox{Center: g.Position, Rotation: g.Rotation.Mat3(), HalfSize: mgl32.Vec3{h, h, h}}
	}
	h := cubeHalf * g.Scale
	return geom.OrientedBox{
		Center:   g.Position.Add(g.WorldAxis().Mul(cubeOffset * g.Scale)),
		Rotation: g.Rotation.Mat3(),
		HalfSize: mgl32.Vec3{h, h, h},
	}
}

// IntersectsWith returns the ray distance to the handle.
func (g *GizmoAxis) IntersectsWith(r geom.Ray) (float32, bool) {
	return g.pickShape().Intersect(r)
}

func (g *GizmoAxis) DrawRequest() DrawRequest {
	switch g.shape {
	case shapeRing:
		// Circles are drawn in their local XY plane; turn local Z onto the spin axis.
		rot := mgl32.QuatBetweenVectors(mgl32.Vec3{0, 0, 1}, g.WorldAxis())
		return NewGizmoCircle(g.Kind, g.Position, ringRadius*g.Scale, rot, g.Selected)
	case shapeCube:
		box := g.cube()
		return NewGizmoCube(g.Kind, box.Center, box.HalfSize.Mul(2), mgl32.Mat4ToQuat(g.Rotation), g.Selected)
	}
	tip := g.Position.Add(g.WorldAxis().Mul(arrowLength * g.Scale))
	return NewGizmoLine(g.Kind, g.Position, tip, g.Selected)
}
