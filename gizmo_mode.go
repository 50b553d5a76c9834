package hipedit

import (
	"fmt"
	"strings"
)

type GizmoMode int

const (
	ModePosition GizmoMode = iota
	ModeRotation
	ModeScale
	ModePositionLocal

	// ModeNull is only a request value for SetMode: cycle to the next mode.
	ModeNull
)

func (m GizmoMode) String() string {
	switch m {
	case ModePosition:
		return "position"
	case ModeRotation:
		return "rotation"
	case ModeScale:
		return "scale"
	case ModePositionLocal:
		return "position-local"
	case ModeNull:
		return "null"
	}
	return fmt.Sprintf("GizmoMode(%d)", int(m))
}

// ParseGizmoMode accepts the names String produces.
func ParseGizmoMode(s string) (GizmoMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "position":
		return ModePosition, nil
	case "rotation":
		return ModeRotation, nil
	case "scale":
		return ModeScale, nil
	case "position-local", "positionlocal", "local":
		return ModePositionLocal, nil
	}
	return ModePosition, fmt.Errorf("unknown gizmo mode %q", s)
}

// next is the cycling order Position -> Rotation -> Scale -> Position.
// PositionLocal is only reachable by an explicit request; cycling from it is
// clamped into the cycle range and lands on Scale.
func (m GizmoMode) next() GizmoMode {
	switch {
	case m == ModePositionLocal:
		return ModeScale
	case m < ModePosition || m >= ModeScale:
		return ModePosition
	}
	return m + 1
}

// modeMachine tracks the active mode and the per-frame box-trigger override
// of position mode.
type modeMachine struct {
	current GizmoMode
	trigger bool
}

func (mm *modeMachine) set(m GizmoMode) GizmoMode {
	if m == ModeNull {
		mm.current = mm.current.next()
	} else if m >= ModePosition && m < ModeNull {
		mm.current = m
	}
	return mm.current
}

// triggerActive reports whether the 6-handle box-trigger set replaces the
// standard position set this frame.
func (mm *modeMachine) triggerActive() bool {
	return mm.current == ModePosition && mm.trigger
}
