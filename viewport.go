package hipedit

import "github.com/gekko3d/hipedit/geom"

// Viewport routes input to the gizmos. Width and Height are the render panel
// size in pixels.
type Viewport struct {
	Gizmos *GizmoManager
	Width  int
	Height int
}

// ViewportResult tells the host what the frame's input did.
type ViewportResult struct {
	ModeChanged bool
	Mode        GizmoMode

	// Hit is set when a press grabbed a handle.
	Hit     bool
	HitKind GizmoKind

	Dragged bool

	// Click is set when a release was not the end of a drag; the host picks
	// assets with ClickRay.
	Click    bool
	ClickRay geom.Ray
}

func (v *Viewport) ray(in *Input, view View) geom.Ray {
	return geom.ScreenToWorldRay(in.MouseX, in.MouseY, v.Width, v.Height, view.ViewProjection)
}

// HandleInput processes one frame of input. Update must already have run
// for this frame. Holding T snaps drags to the grid; V cycles the mode.
func (v *Viewport) HandleInput(in *Input, view View, sel []Selectable) ViewportResult {
	var res ViewportResult
	m := v.Gizmos

	if in.JustPressed[KeyV] {
		res.Mode = m.SetMode(ModeNull)
		res.ModeChanged = true
		m.Update(view, sel)
	} else {
		res.Mode = m.Mode()
	}

	if in.JustPressed[MouseButtonLeft] {
		// A pending flag means this press follows a drag whose click never
		// arrived; swallow it like the click handler would.
		if !m.ConsumeDragCompleted() {
			res.HitKind, res.Hit = m.Select(v.ray(in, view))
		}
	}

	if in.Pressed[MouseButtonLeft] && (in.MouseDeltaX != 0 || in.MouseDeltaY != 0) {
		res.Dragged = m.Drag(view.ViewProjection, sel, float32(in.MouseDeltaX), float32(in.MouseDeltaY), in.Pressed[KeyT])
	}

	if in.JustReleased[MouseButtonLeft] {
		m.Release()
		if !m.ConsumeDragCompleted() {
			res.Click = true
			res.ClickRay = v.ray(in, view)
		}
	}

	if in.MouseLeft || !in.MouseInViewport {
		m.Release()
	}
	return res
}
