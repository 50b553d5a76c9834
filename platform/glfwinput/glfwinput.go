// Package glfwinput fills the viewport input snapshot from a GLFW window.
package glfwinput

import (
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/gekko3d/hipedit"
)

var keyToGlfw = map[int]glfw.Key{
	hipedit.KeyT:       glfw.KeyT,
	hipedit.KeyV:       glfw.KeyV,
	hipedit.KeyControl: glfw.KeyLeftControl,
	hipedit.KeyShift:   glfw.KeyLeftShift,
}

var buttonToGlfw = map[int]glfw.MouseButton{
	hipedit.MouseButtonLeft:   glfw.MouseButtonLeft,
	hipedit.MouseButtonRight:  glfw.MouseButtonRight,
	hipedit.MouseButtonMiddle: glfw.MouseButtonMiddle,
}

// window is the part of *glfw.Window the poller reads.
type window interface {
	GetKey(key glfw.Key) glfw.Action
	GetMouseButton(button glfw.MouseButton) glfw.Action
	GetCursorPos() (x, y float64)
}

// Source polls one window. Create it once; it installs the cursor-enter
// callback and tracks whether the pointer is over the window.
type Source struct {
	window  window
	inside  bool
	leftNow bool
	started bool
}

func New(w *glfw.Window) *Source {
	s := newSource(w)
	w.SetCursorEnterCallback(func(_ *glfw.Window, entered bool) {
		s.cursorEntered(entered)
	})
	return s
}

func newSource(w window) *Source {
	return &Source{window: w, inside: true}
}

func (s *Source) cursorEntered(entered bool) {
	if !entered && s.inside {
		s.leftNow = true
	}
	s.inside = entered
}

// Poll processes pending events and writes this frame's state into in. The
// caller runs in.EndFrame after handling the frame.
func (s *Source) Poll(in *hipedit.Input) {
	glfw.PollEvents()
	s.read(in)
}

func (s *Source) read(in *hipedit.Input) {
	for slot, key := range keyToGlfw {
		apply(in, slot, s.window.GetKey(key))
	}
	for slot, btn := range buttonToGlfw {
		apply(in, slot, s.window.GetMouseButton(btn))
	}

	mx, my := s.window.GetCursorPos()
	if !s.started {
		// No delta on the first frame.
		in.MouseX, in.MouseY = mx, my
		s.started = true
	}
	in.MoveMouse(mx, my)

	in.MouseInViewport = s.inside
	in.MouseLeft = s.leftNow
	s.leftNow = false
}

func apply(in *hipedit.Input, slot int, action glfw.Action) {
	switch action {
	case glfw.Press, glfw.Repeat:
		in.Press(slot)
	case glfw.Release:
		in.ReleaseSlot(slot)
	}
}
