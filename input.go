package hipedit

// Input slots the viewport cares about.
const (
	KeyT int = iota
	KeyV
	KeyControl
	KeyShift
	MouseButtonLeft
	MouseButtonRight
	MouseButtonMiddle

	inputSlots
)

// Input is one frame's snapshot of keyboard and mouse state. Platform layers
// fill it; the viewport only reads it.
type Input struct {
	Pressed      [inputSlots]bool
	JustPressed  [inputSlots]bool
	JustReleased [inputSlots]bool

	MouseX, MouseY           float64
	MouseDeltaX, MouseDeltaY float64

	// MouseInViewport is false once the pointer has left the render panel.
	MouseInViewport bool
	// MouseLeft is set on the frame the pointer left the render panel.
	MouseLeft bool
}

// Press records a press transition for slot.
func (in *Input) Press(slot int) {
	if !in.Pressed[slot] {
		in.JustPressed[slot] = true
	}
	in.Pressed[slot] = true
}

// ReleaseSlot records a release transition for slot.
func (in *Input) ReleaseSlot(slot int) {
	if in.Pressed[slot] {
		in.JustReleased[slot] = true
	}
	in.Pressed[slot] = false
}

// MoveMouse sets the cursor position and accumulates the delta since the
// last frame.
func (in *Input) MoveMouse(x, y float64) {
	in.MouseDeltaX += x - in.MouseX
	in.MouseDeltaY += y - in.MouseY
	in.MouseX, in.MouseY = x, y
}

// EndFrame clears the per-frame transitions and deltas.
func (in *Input) EndFrame() {
	in.JustPressed = [inputSlots]bool{}
	in.JustReleased = [inputSlots]bool{}
	in.MouseDeltaX, in.MouseDeltaY = 0, 0
	in.MouseLeft = false
}
