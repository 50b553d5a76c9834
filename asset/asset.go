// Package asset holds the scene objects the gizmos operate on. The archive
// codec owns the real asset types; these are the in-memory shapes of the
// placeable, trigger, dyna and marker families with just the properties the
// editor widgets read and write.
package asset

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"

	"github.com/gekko3d/hipedit/geom"
)

type AssetId string

func NewAssetId() AssetId {
	return AssetId(uuid.NewString())
}

type Base struct {
	ID   AssetId
	Name string
}

func newBase(name string) Base {
	return Base{ID: NewAssetId(), Name: name}
}

func (b *Base) AssetName() string {
	if b.Name == "" {
		return string(b.ID)
	}
	return b.Name
}

// Placeable is a model-backed object with position, rotation (yaw, pitch, roll
// in degrees) and scale. Size is the unscaled model extent.
type Placeable struct {
	Base
	Pos   mgl32.Vec3
	Euler mgl32.Vec3
	Scl   mgl32.Vec3
	Size  mgl32.Vec3
}

func NewPlaceable(name string, pos mgl32.Vec3) *Placeable {
	return &Placeable{
		Base:  newBase(name),
		Pos:   pos,
		Scl:   mgl32.Vec3{1, 1, 1},
		Size:  mgl32.Vec3{1, 1, 1},
		Euler: mgl32.Vec3{},
	}
}

func (p *Placeable) Position() mgl32.Vec3     { return p.Pos }
func (p *Placeable) SetPosition(v mgl32.Vec3) { p.Pos = v }
func (p *Placeable) Rotation() mgl32.Vec3     { return p.Euler }
func (p *Placeable) SetRotation(v mgl32.Vec3) { p.Euler = v }
func (p *Placeable) Scale() mgl32.Vec3        { return p.Scl }
func (p *Placeable) SetScale(v mgl32.Vec3)    { p.Scl = v }

func (p *Placeable) BoundingBox() geom.AABB {
	size := mgl32.Vec3{
		p.Size.X() * p.Scl.X(),
		p.Size.Y() * p.Scl.Y(),
		p.Size.Z() * p.Scl.Z(),
	}
	return geom.AABBFromCenter(p.Pos, size)
}

func (p *Placeable) String() string {
	return fmt.Sprintf("PLAT %s pos=%v", p.AssetName(), p.Pos)
}

// Dyna is a dynamic-behavior object. Non-renderable, non-clickable dynas are
// left out of position pivot computation.
type Dyna struct {
	Placeable
	Renderable bool

	// Changes counts property-change notifications; the codec re-encodes
	// the dyna payload on each.
	Changes int
}

func NewDyna(name string, pos mgl32.Vec3, renderable bool) *Dyna {
	return &Dyna{Placeable: *NewPlaceable(name, pos), Renderable: renderable}
}

func (d *Dyna) RenderableClickable() bool { return d.Renderable }
func (d *Dyna) OnDynaPropertyChange()     { d.Changes++ }

func (d *Dyna) String() string {
	return fmt.Sprintf("DYNA %s pos=%v", d.AssetName(), d.Pos)
}

// Marker is a bare position.
type Marker struct {
	Base
	Pos mgl32.Vec3
}

func NewMarker(name string, pos mgl32.Vec3) *Marker {
	return &Marker{Base: newBase(name), Pos: pos}
}

const markerExtent = 0.5

func (m *Marker) Position() mgl32.Vec3     { return m.Pos }
func (m *Marker) SetPosition(v mgl32.Vec3) { m.Pos = v }

func (m *Marker) BoundingBox() geom.AABB {
	return geom.AABBFromCenter(m.Pos, mgl32.Vec3{markerExtent, markerExtent, markerExtent})
}
