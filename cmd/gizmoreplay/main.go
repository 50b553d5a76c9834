// Command gizmoreplay runs a scripted drag against a small demo scene without
// a window and reports what the gizmos did. It is used to check settings files
// and to produce screenshots of the handles.
package main

import (
	"flag"
	"os"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/gekko3d/hipedit"
	"github.com/gekko3d/hipedit/asset"
	"github.com/gekko3d/hipedit/geom"
	"github.com/gekko3d/hipedit/render/sketch"
)

const (
	viewportWidth  = 1280
	viewportHeight = 720
)

func main() {
	settingsPath := flag.String("settings", "", "gizmo settings file (.toml or .yaml)")
	pngPath := flag.String("png", "", "write the final frame to this PNG file")
	debug := flag.Bool("debug", false, "enable debug logging")
	pixels := flag.Float64("drag", 40, "horizontal drag distance in pixels")
	snap := flag.Bool("snap", false, "hold the grid snap key while dragging")
	flag.Parse()

	settings := hipedit.DefaultSettings()
	if *settingsPath != "" {
		s, err := hipedit.LoadSettings(*settingsPath)
		if err != nil {
			hipedit.NewDefaultLogger("gizmoreplay", true).Errorf("%v", err)
			os.Exit(1)
		}
		settings = s
	}
	if *debug {
		settings.Debug = true
	}
	log := hipedit.NewSettingsLogger(settings)

	crate := asset.NewPlaceable("crate", mgl32.Vec3{0, 0, 0})
	door := asset.NewBoxTrigger("door_trigger", mgl32.Vec3{4, 0, -1}, mgl32.Vec3{6, 2, 1})
	sel := []hipedit.Selectable{crate}

	cam := geom.NewCamera(mgl32.Vec3{3, 4, 12}, mgl32.Vec3{})
	cam.Aspect = float32(viewportWidth) / float32(viewportHeight)
	view := hipedit.ViewFromCamera(cam)

	vp := &hipedit.Viewport{
		Gizmos: hipedit.NewManagerFromSettings(settings, log),
		Width:  viewportWidth,
		Height: viewportHeight,
	}
	m := vp.Gizmos
	m.Update(view, sel)

	pivot, ok := m.Pivot()
	if !ok {
		log.Errorf("mode %s has no pivot for %s", m.Mode(), crate.AssetName())
		os.Exit(1)
	}
	grab := firstHandlePoint(m, pivot)
	start, ok := geom.WorldToScreen(grab, view.ViewProjection, viewportWidth, viewportHeight)
	if !ok {
		log.Errorf("handle at %v is behind the camera", grab)
		os.Exit(1)
	}
	log.Infof("mode %s, grabbing at screen (%.1f, %.1f)", m.Mode(), start.X(), start.Y())

	in := &hipedit.Input{MouseInViewport: true, MouseX: float64(start.X()), MouseY: float64(start.Y())}
	frame := func() hipedit.ViewportResult {
		m.Update(view, sel)
		res := vp.HandleInput(in, view, sel)
		in.EndFrame()
		return res
	}

	if *snap {
		in.Press(hipedit.KeyT)
	}
	in.Press(hipedit.MouseButtonLeft)
	if res := frame(); res.Hit {
		log.Infof("grabbed %s", res.HitKind)
	} else {
		log.Warnf("press at (%.1f, %.1f) missed every handle", start.X(), start.Y())
	}

	// Drag in small steps like a real mouse would.
	const steps = 8
	for i := 0; i < steps; i++ {
		in.MoveMouse(in.MouseX+*pixels/steps, in.MouseY)
		frame()
	}
	in.ReleaseSlot(hipedit.MouseButtonLeft)
	frame()

	log.Infof("%s", crate)
	log.Infof("unsaved changes: %v", m.UnsavedChanges())

	// Second pass: the single box trigger gets its corner handles.
	sel = []hipedit.Selectable{door}
	m.SetMode(hipedit.ModePosition)
	m.Update(view, sel)
	log.Infof("%s: trigger handles %v", door.AssetName(), m.TriggerActive())

	if *pngPath == "" {
		return
	}
	canvas := sketch.NewCanvas(viewportWidth, viewportHeight, view.ViewProjection)
	m.Draw(canvas)
	sel = []hipedit.Selectable{crate}
	m.Update(view, sel)
	m.Draw(canvas)

	f, err := os.Create(*pngPath)
	if err != nil {
		log.Errorf("create %s: %v", *pngPath, err)
		os.Exit(1)
	}
	defer f.Close()
	if err := canvas.WritePNG(f); err != nil {
		log.Errorf("%v", err)
		os.Exit(1)
	}
	log.Infof("wrote %s", *pngPath)
}

// firstHandlePoint is a point on the first handle of the current mode that a
// press can land on.
func firstHandlePoint(m *hipedit.GizmoManager, pivot hipedit.Pivot) mgl32.Vec3 {
	reqs := m.DrawRequests()
	if len(reqs) == 0 {
		return pivot.Position
	}
	r := reqs[0]
	switch r.Type {
	case hipedit.GizmoLine:
		return r.Position.Add(r.LineEnd).Mul(0.5)
	case hipedit.GizmoCircle:
		return r.Position.Add(r.Rotation.Rotate(mgl32.Vec3{r.Radius, 0, 0}))
	}
	return r.Position
}
