package hipedit

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gekko3d/hipedit/asset"
	"github.com/gekko3d/hipedit/geom"
)

const testViewportSize = 800

func newTestViewport() *Viewport {
	return &Viewport{Gizmos: NewGizmoManager(DefaultGrid(), nil), Width: testViewportSize, Height: testViewportSize}
}

// frame runs one editor frame: update, handle input, end frame.
func frame(v *Viewport, in *Input, view View, sel []Selectable) ViewportResult {
	v.Gizmos.Update(view, sel)
	res := v.HandleInput(in, view, sel)
	in.EndFrame()
	return res
}

func TestViewportDragMovesObject(t *testing.T) {
	obj := asset.NewPlaceable("crate", mgl32.Vec3{})
	sel := selection(obj)
	view := frontView()
	v := newTestViewport()

	v.Gizmos.Update(view, sel)
	tip, ok := geom.WorldToScreen(mgl32.Vec3{1, 0, 0}, view.ViewProjection, testViewportSize, testViewportSize)
	require.True(t, ok)

	in := &Input{MouseInViewport: true}
	in.MouseX, in.MouseY = float64(tip.X()), float64(tip.Y())
	in.Press(MouseButtonLeft)
	res := frame(v, in, view, sel)
	require.True(t, res.Hit)
	assert.Equal(t, GizmoX, res.HitKind)

	in.MoveMouse(float64(tip.X())+20, float64(tip.Y()))
	res = frame(v, in, view, sel)
	assert.True(t, res.Dragged)
	assert.InDelta(t, 2.0, obj.Pos.X(), 1e-4)

	in.ReleaseSlot(MouseButtonLeft)
	res = frame(v, in, view, sel)
	assert.False(t, res.Click, "the release that ends a drag is not a click")
	assert.False(t, v.Gizmos.DragCompleted())
	assert.True(t, v.Gizmos.UnsavedChanges())
	assert.Zero(t, countSelected(v.Gizmos.Gizmos.all()...))
}

func TestViewportClickWithoutDrag(t *testing.T) {
	obj := asset.NewPlaceable("crate", mgl32.Vec3{})
	sel := selection(obj)
	view := frontView()
	v := newTestViewport()

	in := &Input{MouseInViewport: true, MouseX: 50, MouseY: 50}
	in.Press(MouseButtonLeft)
	res := frame(v, in, view, sel)
	assert.False(t, res.Hit)

	in.ReleaseSlot(MouseButtonLeft)
	res = frame(v, in, view, sel)
	require.True(t, res.Click)
	assert.Equal(t, geom.ScreenToWorldRay(50, 50, testViewportSize, testViewportSize, view.ViewProjection), res.ClickRay)
	assert.False(t, v.Gizmos.UnsavedChanges())
}

func TestViewportSnapWhileHoldingT(t *testing.T) {
	obj := asset.NewPlaceable("crate", mgl32.Vec3{})
	sel := selection(obj)
	view := frontView()
	v := newTestViewport()

	v.Gizmos.Update(view, sel)
	tip, _ := geom.WorldToScreen(mgl32.Vec3{1, 0, 0}, view.ViewProjection, testViewportSize, testViewportSize)

	in := &Input{MouseInViewport: true, MouseX: float64(tip.X()), MouseY: float64(tip.Y())}
	in.Press(KeyT)
	in.Press(MouseButtonLeft)
	frame(v, in, view, sel)

	in.MoveMouse(float64(tip.X())+13, float64(tip.Y()))
	frame(v, in, view, sel)
	assert.Equal(t, float32(1), obj.Pos.X(), "1.3 snaps to 1")
}

func TestViewportCycleKey(t *testing.T) {
	v := newTestViewport()
	in := &Input{MouseInViewport: true}

	in.Press(KeyV)
	res := frame(v, in, frontView(), nil)
	assert.True(t, res.ModeChanged)
	assert.Equal(t, ModeRotation, res.Mode)

	in.ReleaseSlot(KeyV)
	res = frame(v, in, frontView(), nil)
	assert.False(t, res.ModeChanged)
	assert.Equal(t, ModeRotation, res.Mode)
}

func TestViewportMouseLeaveReleases(t *testing.T) {
	obj := asset.NewPlaceable("crate", mgl32.Vec3{})
	sel := selection(obj)
	view := frontView()
	v := newTestViewport()

	v.Gizmos.Update(view, sel)
	v.Gizmos.Gizmos.Position[0].Selected = true

	in := &Input{MouseInViewport: false, MouseLeft: true}
	frame(v, in, view, sel)
	assert.Zero(t, countSelected(v.Gizmos.Gizmos.all()...))
}
