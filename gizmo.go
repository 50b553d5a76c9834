package hipedit

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// GizmoKind names the transform component a single gizmo handle edits.
type GizmoKind int

const (
	GizmoX GizmoKind = iota
	GizmoY
	GizmoZ
	GizmoYaw
	GizmoPitch
	GizmoRoll
	GizmoScaleX
	GizmoScaleY
	GizmoScaleZ
	GizmoScaleAll
	GizmoTrigX1
	GizmoTrigY1
	GizmoTrigZ1
)

var gizmoKindNames = [...]string{
	GizmoX:        "X",
	GizmoY:        "Y",
	GizmoZ:        "Z",
	GizmoYaw:      "Yaw",
	GizmoPitch:    "Pitch",
	GizmoRoll:     "Roll",
	GizmoScaleX:   "ScaleX",
	GizmoScaleY:   "ScaleY",
	GizmoScaleZ:   "ScaleZ",
	GizmoScaleAll: "ScaleAll",
	GizmoTrigX1:   "TrigX1",
	GizmoTrigY1:   "TrigY1",
	GizmoTrigZ1:   "TrigZ1",
}

func (k GizmoKind) String() string {
	if k >= 0 && int(k) < len(gizmoKindNames) {
		return gizmoKindNames[k]
	}
	return fmt.Sprintf("GizmoKind(%d)", int(k))
}

// component returns the vector component (0, 1, 2) the kind acts on, or -1.
// Yaw spins around Y and pitch around X, so their components follow the
// stored Euler triple (yaw, pitch, roll) rather than the spin axis.
func (k GizmoKind) component() int {
	switch k {
	case GizmoX, GizmoScaleX, GizmoTrigX1, GizmoYaw:
		return 0
	case GizmoY, GizmoScaleY, GizmoTrigY1, GizmoPitch:
		return 1
	case GizmoZ, GizmoScaleZ, GizmoTrigZ1, GizmoRoll:
		return 2
	}
	return -1
}

// gridComponent is the grid axis used when snapping; rotations and ScaleAll
// have none.
func (k GizmoKind) gridComponent() int {
	switch k {
	case GizmoYaw, GizmoPitch, GizmoRoll, GizmoScaleAll:
		return -1
	}
	return k.component()
}

// unitAxis is the local direction of the handle. Rotation rings spin around
// it: yaw around Y, pitch around X, roll around Z.
func (k GizmoKind) unitAxis() mgl32.Vec3 {
	switch k {
	case GizmoX, GizmoScaleX, GizmoTrigX1, GizmoPitch:
		return mgl32.Vec3{1, 0, 0}
	case GizmoY, GizmoScaleY, GizmoTrigY1, GizmoYaw:
		return mgl32.Vec3{0, 1, 0}
	case GizmoZ, GizmoScaleZ, GizmoTrigZ1, GizmoRoll:
		return mgl32.Vec3{0, 0, 1}
	}
	return mgl32.Vec3{}
}

// GizmoType is the wireframe primitive a renderer draws for a handle.
type GizmoType int

const (
	GizmoLine GizmoType = iota
	GizmoCube
	GizmoCircle
)

var (
	colorX        = [4]float32{1, 0, 0, 1}
	colorY        = [4]float32{0, 1, 0, 1}
	colorZ        = [4]float32{0, 0, 1, 1}
	colorUniform  = [4]float32{1, 1, 1, 1}
	colorSelected = [4]float32{1, 1, 0, 1}
)

func kindColor(k GizmoKind, selected bool) [4]float32 {
	if selected {
		return colorSelected
	}
	switch k.unitAxis() {
	case mgl32.Vec3{1, 0, 0}:
		return colorX
	case mgl32.Vec3{0, 1, 0}:
		return colorY
	case mgl32.Vec3{0, 0, 1}:
		return colorZ
	}
	return colorUniform
}

// DrawRequest is one positioned, scaled handle handed to the renderer.
type DrawRequest struct {
	Kind     GizmoKind
	Type     GizmoType
	Color    [4]float32
	Selected bool

	// For Cube and Circle: Position is the center. For Line: Position is the start.
	Position mgl32.Vec3
	Rotation mgl32.Quat
	Scale    mgl32.Vec3

	LineEnd mgl32.Vec3 // GizmoLine end point in world space
	Radius  float32    // GizmoCircle radius; the circle lies in the local XY plane
}

// Renderer consumes draw requests once per frame.
type Renderer interface {
	DrawGizmo(req DrawRequest)
}

func NewGizmoLine(kind GizmoKind, start, end mgl32.Vec3, selected bool) DrawRequest {
	return DrawRequest{
		Kind:     kind,
		Type:     GizmoLine,
		Color:    kindColor(kind, selected),
		Selected: selected,
		Position: start,
		LineEnd:  end,
		Scale:    mgl32.Vec3{1, 1, 1},
		Rotation: mgl32.QuatIdent(),
	}
}

func NewGizmoCube(kind GizmoKind, center, size mgl32.Vec3, rot mgl32.Quat, selected bool) DrawRequest {
	return DrawRequest{
		Kind:     kind,
		Type:     GizmoCube,
		Color:    kindColor(kind, selected),
		Selected: selected,
		Position: center,
		Scale:    size,
		Rotation: rot,
	}
}

func NewGizmoCircle(kind GizmoKind, center mgl32.Vec3, radius float32, rot mgl32.Quat, selected bool) DrawRequest {
	return DrawRequest{
		Kind:     kind,
		Type:     GizmoCircle,
		Color:    kindColor(kind, selected),
		Selected: selected,
		Position: center,
		Radius:   radius,
		Scale:    mgl32.Vec3{1, 1, 1},
		Rotation: rot,
	}
}
