package asset

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/hipedit/geom"
)

type TriggerShape int

const (
	TriggerSphere TriggerShape = iota
	TriggerBox
	TriggerCylinder
	TriggerVCylinder
)

func (s TriggerShape) String() string {
	switch s {
	case TriggerSphere:
		return "sphere"
	case TriggerBox:
		return "box"
	case TriggerCylinder:
		return "cylinder"
	case TriggerVCylinder:
		return "vcylinder"
	}
	return fmt.Sprintf("TriggerShape(%d)", int(s))
}

// Trigger is a volume with a primary position and a secondary Position0. Box
// triggers use the two as opposite corners; every other shape keeps Position0
// equal to the primary position and uses Radius.
type Trigger struct {
	Base
	Shape     TriggerShape
	Pos       mgl32.Vec3
	Position0 mgl32.Vec3
	Radius    float32
}

func NewBoxTrigger(name string, corner0, corner1 mgl32.Vec3) *Trigger {
	return &Trigger{Base: newBase(name), Shape: TriggerBox, Pos: corner0, Position0: corner1}
}

func NewSphereTrigger(name string, center mgl32.Vec3, radius float32) *Trigger {
	return &Trigger{Base: newBase(name), Shape: TriggerSphere, Pos: center, Position0: center, Radius: radius}
}

func (t *Trigger) Position() mgl32.Vec3              { return t.Pos }
func (t *Trigger) SetPosition(v mgl32.Vec3)          { t.Pos = v }
func (t *Trigger) TriggerShape() TriggerShape        { return t.Shape }
func (t *Trigger) SecondaryPosition() mgl32.Vec3     { return t.Position0 }
func (t *Trigger) SetSecondaryPosition(v mgl32.Vec3) { t.Position0 = v }

func (t *Trigger) BoundingBox() geom.AABB {
	if t.Shape == TriggerBox {
		return geom.AABBFromPoints(t.Pos, t.Position0)
	}
	r := mgl32.Vec3{t.Radius, t.Radius, t.Radius}
	return geom.AABB{Min: t.Position0.Sub(r), Max: t.Position0.Add(r)}
}

func (t *Trigger) String() string {
	return fmt.Sprintf("TRIG %s %s pos=%v pos0=%v", t.AssetName(), t.Shape, t.Pos, t.Position0)
}
