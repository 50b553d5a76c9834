package hipedit

import (
	"strings"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/hipedit/asset"
	"github.com/gekko3d/hipedit/geom"
)

// Selectable is any scene object the editor can hold in its selection. The
// gizmos only query capabilities and write through their accessors; the
// scene keeps ownership.
type Selectable interface {
	AssetName() string
}

type Positionable interface {
	Selectable
	Position() mgl32.Vec3
	SetPosition(mgl32.Vec3)
}

// Rotatable objects store yaw, pitch and roll in degrees, in that order.
type Rotatable interface {
	Positionable
	Rotation() mgl32.Vec3
	SetRotation(mgl32.Vec3)
}

type Scalable interface {
	Positionable
	Scale() mgl32.Vec3
	SetScale(mgl32.Vec3)
}

// Clickable objects have a world bounding box and can be picked in the viewport.
type Clickable interface {
	Positionable
	BoundingBox() geom.AABB
}

// Trigger objects carry a second position triple. Box triggers treat the two
// as independent corners; other shapes mirror the primary into the secondary.
type Trigger interface {
	Clickable
	TriggerShape() asset.TriggerShape
	SecondaryPosition() mgl32.Vec3
	SetSecondaryPosition(mgl32.Vec3)
}

// Dyna is the dynamic-behavior category. Dynas that are not renderable and
// clickable are left out of the position pivot.
type Dyna interface {
	RenderableClickable() bool
}

// DynaChangeNotifier is told after the gizmos mutate one of its properties.
type DynaChangeNotifier interface {
	OnDynaPropertyChange()
}

type Capability uint8

const (
	CapPositionable Capability = 1 << iota
	CapRotatable
	CapScalable
	CapClickable
	CapTrigger
	CapDyna
)

var capabilityNames = []struct {
	c    Capability
	name string
}{
	{CapPositionable, "position"},
	{CapRotatable, "rotation"},
	{CapScalable, "scale"},
	{CapClickable, "clickable"},
	{CapTrigger, "trigger"},
	{CapDyna, "dyna"},
}

func (c Capability) Has(o Capability) bool { return c&o == o }

func (c Capability) String() string {
	var parts []string
	for _, n := range capabilityNames {
		if c.Has(n.c) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "none"
	}
	return strings.Join(parts, "|")
}

func CapabilitiesOf(o Selectable) Capability {
	var c Capability
	if _, ok := o.(Positionable); ok {
		c |= CapPositionable
	}
	if _, ok := o.(Rotatable); ok {
		c |= CapRotatable
	}
	if _, ok := o.(Scalable); ok {
		c |= CapScalable
	}
	if _, ok := o.(Clickable); ok {
		c |= CapClickable
	}
	if _, ok := o.(Trigger); ok {
		c |= CapTrigger
	}
	if _, ok := o.(Dyna); ok {
		c |= CapDyna
	}
	return c
}

func isBoxTrigger(o Selectable) bool {
	t, ok := o.(Trigger)
	return ok && t.TriggerShape() == asset.TriggerBox
}

func shouldUseDyna(o Selectable) bool {
	d, ok := o.(Dyna)
	return !ok || d.RenderableClickable()
}

// Pivot is the point and orientation the gizmos are centered on.
type Pivot struct {
	Position mgl32.Vec3
	Rotation mgl32.Mat4
}

// EulerRotation turns yaw, pitch and roll in degrees into a rotation matrix:
// roll about Z first, then pitch about X, then yaw about Y.
func EulerRotation(yawPitchRoll mgl32.Vec3) mgl32.Mat4 {
	yaw := mgl32.DegToRad(yawPitchRoll[0])
	pitch := mgl32.DegToRad(yawPitchRoll[1])
	roll := mgl32.DegToRad(yawPitchRoll[2])
	return mgl32.HomogRotate3DY(yaw).Mul4(mgl32.HomogRotate3DX(pitch)).Mul4(mgl32.HomogRotate3DZ(roll))
}

func rotationOf(o Selectable) mgl32.Mat4 {
	if r, ok := o.(Rotatable); ok {
		return EulerRotation(r.Rotation())
	}
	return mgl32.Ident4()
}

// Resolution is what the selection resolver found for one frame.
type Resolution struct {
	Pivot Pivot
	Valid bool

	// Trigger is set when the selection is exactly one box trigger in
	// position mode. TriggerBox spans its corners; Secondary is the second
	// corner the TrigX1..Z1 handles sit on.
	Trigger    bool
	TriggerBox geom.AABB
	Secondary  mgl32.Vec3
}

// ResolvePivot computes the pivot for mode from the ordered selection.
func ResolvePivot(mode GizmoMode, sel []Selectable) Resolution {
	res := Resolution{Pivot: Pivot{Rotation: mgl32.Ident4()}}

	switch mode {
	case ModePosition:
		clickables := clickablesOf(sel)
		if len(clickables) == 1 && isBoxTrigger(clickables[0]) {
			trig := clickables[0].(Trigger)
			res.Valid = true
			res.Trigger = true
			res.Pivot.Position = trig.Position()
			res.Secondary = trig.SecondaryPosition()
			res.TriggerBox = trig.BoundingBox()
			return res
		}

		var bb geom.AABB
		found := false
		for _, c := range clickables {
			if !shouldUseDyna(c) {
				continue
			}
			if !found {
				bb = c.BoundingBox()
				found = true
			} else {
				bb = bb.Merge(c.BoundingBox())
			}
		}
		if found {
			res.Valid = true
			res.Pivot.Position = bb.Center()
		}

	case ModeRotation:
		for _, o := range sel {
			if r, ok := o.(Rotatable); ok {
				res.Valid = true
				res.Pivot.Position = r.Position()
				res.Pivot.Rotation = EulerRotation(r.Rotation())
				break
			}
		}

	case ModeScale:
		for _, o := range sel {
			if s, ok := o.(Scalable); ok {
				res.Valid = true
				res.Pivot.Position = s.Position()
				res.Pivot.Rotation = rotationOf(o)
				break
			}
		}

	case ModePositionLocal:
		clickables := clickablesOf(sel)
		if len(clickables) != 1 || isBoxTrigger(clickables[0]) {
			return res
		}
		res.Valid = true
		res.Pivot.Position = clickables[0].BoundingBox().Center()
		res.Pivot.Rotation = rotationOf(clickables[0])
	}
	return res
}

func clickablesOf(sel []Selectable) []Clickable {
	var out []Clickable
	for _, o := range sel {
		if c, ok := o.(Clickable); ok {
			out = append(out, c)
		}
	}
	return out
}
