package hipedit

import (
	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/hipedit/geom"
)

// Visual scale divisors: a handle's size is its camera distance over these.
// Rotation rings are drawn larger so they are easier to grab.
const (
	handleDistanceDivisor = 5
	ringDistanceDivisor   = 2
)

// View is the camera state a frame is drawn and dragged with.
type View struct {
	CameraPosition mgl32.Vec3
	ViewProjection mgl32.Mat4
}

func ViewFromCamera(c *geom.Camera) View {
	return View{CameraPosition: c.Position, ViewProjection: c.ViewProjection()}
}

// GizmoManager owns every handle collection and the mode. Camera, selection and
// view-projection are passed in per call. It is not safe for concurrent use;
// the editor drives it from the render/input thread.
type GizmoManager struct {
	Gizmos *GizmoSet
	Grid   GridSpacing

	log   Logger
	modes modeMachine
	res   Resolution

	dragCompleted  bool
	unsavedChanges bool
}

func NewGizmoManager(grid GridSpacing, logger Logger) *GizmoManager {
	return &GizmoManager{
		Gizmos: NewGizmoSet(),
		Grid:   grid.Clamped(),
		log:    orNop(logger),
		res:    Resolution{Pivot: Pivot{Rotation: mgl32.Ident4()}},
	}
}

func (m *GizmoManager) Mode() GizmoMode { return m.modes.current }

// SetMode switches to mode, or cycles when mode is ModeNull. Every handle is
// deselected and the pivot is dropped until the next Update.
func (m *GizmoManager) SetMode(mode GizmoMode) GizmoMode {
	m.Gizmos.ClearSelection()
	prev := m.modes.current
	next := m.modes.set(mode)
	m.modes.trigger = false
	m.res = Resolution{Pivot: Pivot{Rotation: mgl32.Ident4()}}
	m.log.Debugf("gizmo mode %s -> %s", prev, next)
	return next
}

// TriggerActive reports whether this frame uses the box-trigger handles.
func (m *GizmoManager) TriggerActive() bool { return m.modes.triggerActive() }

// Pivot is the pivot computed by the last Update. ok is false when nothing in
// the selection supports the current mode.
func (m *GizmoManager) Pivot() (Pivot, bool) { return m.res.Pivot, m.res.Valid }

// Update resolves the pivot for the selection and places the handles of the
// current mode. Call once per rendered frame before drawing or picking.
func (m *GizmoManager) Update(view View, sel []Selectable) {
	m.res = ResolvePivot(m.modes.current, sel)
	m.modes.trigger = m.res.Trigger
	if !m.res.Valid {
		return
	}

	pivot := m.res.Pivot
	scale := func(p mgl32.Vec3, divisor float32) float32 {
		return view.CameraPosition.Sub(p).Len() / divisor
	}

	switch m.modes.current {
	case ModePosition:
		ident := mgl32.Ident4()
		if m.res.Trigger {
			s := scale(m.res.TriggerBox.Center(), handleDistanceDivisor)
			for i := range m.Gizmos.Trigger {
				pos := pivot.Position
				if i >= 3 {
					pos = m.res.Secondary
				}
				m.Gizmos.Trigger[i].SetPosition(pos, s, ident)
			}
		}
		s := scale(pivot.Position, handleDistanceDivisor)
		for i := range m.Gizmos.Position {
			m.Gizmos.Position[i].SetPosition(pivot.Position, s, ident)
		}
	case ModeRotation:
		placeAll(m.Gizmos.Rotation, pivot, scale(pivot.Position, ringDistanceDivisor))
	case ModeScale:
		placeAll(m.Gizmos.Scale, pivot, scale(pivot.Position, handleDistanceDivisor))
	case ModePositionLocal:
		placeAll(m.Gizmos.PositionLocal, pivot, scale(pivot.Position, handleDistanceDivisor))
	}
}

func placeAll(set []GizmoAxis, pivot Pivot, scale float32) {
	for i := range set {
		set[i].SetPosition(pivot.Position, scale, pivot.Rotation)
	}
}

// pickSets lists the handle sets of the current mode in hit-test order. The
// box-trigger set comes first and the standard position set is the fallback.
func (m *GizmoManager) pickSets() [][]GizmoAxis {
	switch m.modes.current {
	case ModePosition:
		if m.modes.triggerActive() {
			return [][]GizmoAxis{m.Gizmos.Trigger, m.Gizmos.Position}
		}
		return [][]GizmoAxis{m.Gizmos.Position}
	case ModeRotation:
		return [][]GizmoAxis{m.Gizmos.Rotation}
	case ModeScale:
		return [][]GizmoAxis{m.Gizmos.Scale}
	case ModePositionLocal:
		return [][]GizmoAxis{m.Gizmos.PositionLocal}
	}
	return nil
}

// DrawRequests returns the handles to draw this frame, nil when no pivot.
func (m *GizmoManager) DrawRequests() []DrawRequest {
	if !m.res.Valid {
		return nil
	}
	var set []GizmoAxis
	switch m.modes.current {
	case ModePosition:
		set = m.Gizmos.Position
		if m.modes.triggerActive() {
			// The standard arrows stay pickable as the fallback, so they are
			// drawn after the corner handles.
			set = append(append([]GizmoAxis(nil), m.Gizmos.Trigger...), m.Gizmos.Position...)
		}
	case ModeRotation:
		// Rings are drawn roll first so yaw ends up on top.
		reqs := make([]DrawRequest, 0, len(m.Gizmos.Rotation))
		for i := len(m.Gizmos.Rotation) - 1; i >= 0; i-- {
			reqs = append(reqs, m.Gizmos.Rotation[i].DrawRequest())
		}
		return reqs
	case ModeScale:
		set = m.Gizmos.Scale
	case ModePositionLocal:
		set = m.Gizmos.PositionLocal
	}
	reqs := make([]DrawRequest, 0, len(set))
	for i := range set {
		reqs = append(reqs, set[i].DrawRequest())
	}
	return reqs
}

// Draw hands this frame's draw requests to r.
func (m *GizmoManager) Draw(r Renderer) {
	for _, req := range m.DrawRequests() {
		r.DrawGizmo(req)
	}
}

// Select hit-tests r against the current mode's handles and marks the nearest
// one selected. A miss leaves the selection as it was.
func (m *GizmoManager) Select(r geom.Ray) (GizmoKind, bool) {
	if !m.res.Valid {
		return 0, false
	}
	for _, set := range m.pickSets() {
		idx, dist := pick(set, r)
		if idx == -1 {
			continue
		}
		m.Gizmos.ClearSelection()
		set[idx].Selected = true
		m.log.Debugf("gizmo %s hit at %.3f", set[idx].Kind, dist)
		return set[idx].Kind, true
	}
	return 0, false
}

// SelectedKind returns the kind of the single selected handle of the current mode.
func (m *GizmoManager) SelectedKind() (GizmoKind, bool) {
	sets := m.pickSets()
	if countSelected(sets...) != 1 {
		return 0, false
	}
	for _, set := range sets {
		if i, ok := selected(set); ok {
			return set[i].Kind, true
		}
	}
	return 0, false
}

// Release clears every handle. Call on mouse-up and when the pointer leaves
// the viewport.
func (m *GizmoManager) Release() {
	m.Gizmos.ClearSelection()
}

// Drag applies a mouse move of (dx, dy) pixels to the selection through the
// selected handle. snap enables grid snapping. It reports whether any object
// changed; only then are the drag-completed and unsaved-changes flags set.
func (m *GizmoManager) Drag(viewProj mgl32.Mat4, sel []Selectable, dx, dy float32, snap bool) bool {
	if !m.res.Valid || len(sel) == 0 {
		return false
	}
	kind, ok := m.SelectedKind()
	if !ok {
		return false
	}

	mu := &mutator{
		pivot: m.res.Pivot,
		proj:  DragProjector{ViewProjection: viewProj},
		grid:  m.Grid,
		snap:  snap,
	}

	var edited int
	projected := true
	switch mode := m.modes.current; {
	case mode == ModeScale && kind == GizmoScaleAll:
		edited = mu.applyScaleAll(sel, dx)
	case mode == ModePositionLocal:
		edited, projected = mu.applyLocal(kind, sel, dx, dy)
	default:
		edit, ok := editFor(mode, kind)
		if !ok {
			return false
		}
		edited, projected = mu.applyAxis(kind, edit, sel, dx, dy)
	}

	if !projected {
		m.log.Debugf("gizmo %s axis faces the camera, drag ignored", kind)
		return false
	}
	if edited == 0 {
		return false
	}
	m.log.Debugf("gizmo %s drag (%.1f, %.1f) snap=%v edited %d", kind, dx, dy, snap, edited)
	m.dragCompleted = true
	m.unsavedChanges = true
	return true
}

// DragCompleted reports whether a drag mutated objects since the flag was
// last consumed.
func (m *GizmoManager) DragCompleted() bool { return m.dragCompleted }

// ConsumeDragCompleted returns and clears the drag-completed flag. The click
// handler uses it to skip the click that ends a drag.
func (m *GizmoManager) ConsumeDragCompleted() bool {
	done := m.dragCompleted
	m.dragCompleted = false
	return done
}

func (m *GizmoManager) UnsavedChanges() bool { return m.unsavedChanges }

// MarkSaved clears the unsaved-changes flag after the archive was written.
func (m *GizmoManager) MarkSaved() { m.unsavedChanges = false }
