package hipedit

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Sensitivity divisors applied to the projected pixel movement.
const (
	positionDivisor = 10
	scaleDivisor    = 40
)

// vectorProperty is a get/set accessor pair over one vector-valued property.
// get reports false when the object lacks the capability.
type vectorProperty struct {
	get func(Selectable) (mgl32.Vec3, bool)
	set func(Selectable, mgl32.Vec3)
}

var (
	positionProperty = vectorProperty{
		get: func(o Selectable) (mgl32.Vec3, bool) {
			p, ok := o.(Positionable)
			if !ok {
				return mgl32.Vec3{}, false
			}
			return p.Position(), true
		},
		set: func(o Selectable, v mgl32.Vec3) { o.(Positionable).SetPosition(v) },
	}

	// Only box triggers expose an independently editable second corner.
	cornerProperty = vectorProperty{
		get: func(o Selectable) (mgl32.Vec3, bool) {
			if !isBoxTrigger(o) {
				return mgl32.Vec3{}, false
			}
			return o.(Trigger).SecondaryPosition(), true
		},
		set: func(o Selectable, v mgl32.Vec3) { o.(Trigger).SetSecondaryPosition(v) },
	}

	rotationProperty = vectorProperty{
		get: func(o Selectable) (mgl32.Vec3, bool) {
			r, ok := o.(Rotatable)
			if !ok {
				return mgl32.Vec3{}, false
			}
			return r.Rotation(), true
		},
		set: func(o Selectable, v mgl32.Vec3) { o.(Rotatable).SetRotation(v) },
	}

	scaleProperty = vectorProperty{
		get: func(o Selectable) (mgl32.Vec3, bool) {
			s, ok := o.(Scalable)
			if !ok {
				return mgl32.Vec3{}, false
			}
			return s.Scale(), true
		},
		set: func(o Selectable, v mgl32.Vec3) { o.(Scalable).SetScale(v) },
	}
)

// axisEdit describes how dragging one handle changes one property component.
type axisEdit struct {
	prop    vectorProperty
	divisor float32
	snap    bool

	// local projects the unit axis through the pivot rotation before
	// computing the screen direction.
	local bool

	// raw uses distanceX directly as the movement, one degree per pixel.
	raw bool

	// mirror copies the primary position into the secondary one on
	// non-box triggers after the edit.
	mirror bool
}

var (
	positionEdit = axisEdit{prop: positionProperty, divisor: positionDivisor, snap: true, mirror: true}
	cornerEdit   = axisEdit{prop: cornerProperty, divisor: positionDivisor, snap: true}
	rotationEdit = axisEdit{prop: rotationProperty, divisor: 1, raw: true}
	scaleEdit    = axisEdit{prop: scaleProperty, divisor: scaleDivisor, snap: true, local: true}
)

// editFor returns the edit rule of handle kind within the set used by mode.
func editFor(mode GizmoMode, kind GizmoKind) (axisEdit, bool) {
	switch mode {
	case ModePosition:
		switch kind {
		case GizmoX, GizmoY, GizmoZ:
			return positionEdit, true
		case GizmoTrigX1, GizmoTrigY1, GizmoTrigZ1:
			return cornerEdit, true
		}
	case ModeRotation:
		switch kind {
		case GizmoYaw, GizmoPitch, GizmoRoll:
			return rotationEdit, true
		}
	case ModeScale:
		switch kind {
		case GizmoScaleX, GizmoScaleY, GizmoScaleZ:
			return scaleEdit, true
		}
	}
	return axisEdit{}, false
}

// mutator applies one drag step to the selection.
type mutator struct {
	pivot Pivot
	proj  DragProjector
	grid  GridSpacing
	snap  bool
}

// worldAxis is the world direction of kind, rotated by the pivot when local.
func (mu *mutator) worldAxis(kind GizmoKind, local bool) mgl32.Vec3 {
	a := kind.unitAxis()
	if !local {
		return a
	}
	return mu.pivot.Rotation.Mul4x1(a.Vec4(0)).Vec3()
}

// applyAxis runs edit for kind over the selection and returns how many
// objects changed. ok is false when the axis had no screen direction.
func (mu *mutator) applyAxis(kind GizmoKind, edit axisEdit, sel []Selectable, dx, dy float32) (int, bool) {
	c := kind.component()
	if c < 0 {
		return 0, true
	}

	movement := dx
	if !edit.raw {
		m, ok := mu.proj.Movement(mu.pivot.Position, mu.worldAxis(kind, edit.local), dx, dy)
		if !ok {
			return 0, false
		}
		movement = m
	}

	edited := 0
	for _, o := range sel {
		v, ok := edit.prop.get(o)
		if !ok {
			continue
		}
		next := v[c] + movement/edit.divisor
		if edit.snap && mu.snap {
			next = mu.grid.Snap(next, kind)
		}
		v[c] = next
		edit.prop.set(o, v)
		if edit.mirror {
			mirrorTrigger(o, c)
		}
		notifyDyna(o)
		edited++
	}
	return edited, true
}

// applyScaleAll grows every scale component by distanceX/40, ignoring screen
// direction and grid.
func (mu *mutator) applyScaleAll(sel []Selectable, dx float32) int {
	delta := dx / scaleDivisor
	edited := 0
	for _, o := range sel {
		s, ok := o.(Scalable)
		if !ok {
			continue
		}
		s.SetScale(s.Scale().Add(mgl32.Vec3{delta, delta, delta}))
		notifyDyna(o)
		edited++
	}
	return edited
}

// applyLocal moves along the pivot-rotated axis of kind, decomposing the single
// movement back onto world X, Y and Z.
func (mu *mutator) applyLocal(kind GizmoKind, sel []Selectable, dx, dy float32) (int, bool) {
	dir := mu.worldAxis(kind, true)
	movement, ok := mu.proj.Movement(mu.pivot.Position, dir, dx, dy)
	if !ok {
		return 0, false
	}

	edited := 0
	for _, o := range sel {
		if _, ok := o.(Clickable); !ok {
			continue
		}
		p := o.(Positionable)
		pos := p.Position()
		for i, k := range [3]GizmoKind{GizmoX, GizmoY, GizmoZ} {
			next := pos[i] + dir[i]*movement/positionDivisor
			if mu.snap {
				next = mu.grid.Snap(next, k)
			}
			pos[i] = next
		}
		p.SetPosition(pos)
		notifyDyna(o)
		mirrorTrigger(o, 0, 1, 2)
		edited++
	}
	return edited, true
}

// mirrorTrigger copies the given primary position components into the
// secondary position of a non-box trigger.
func mirrorTrigger(o Selectable, components ...int) {
	t, ok := o.(Trigger)
	if !ok || isBoxTrigger(o) {
		return
	}
	pos, sec := t.Position(), t.SecondaryPosition()
	for _, c := range components {
		sec[c] = pos[c]
	}
	t.SetSecondaryPosition(sec)
}

func notifyDyna(o Selectable) {
	if n, ok := o.(DynaChangeNotifier); ok {
		n.OnDynaPropertyChange()
	}
}
