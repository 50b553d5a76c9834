package hipedit

import (
	"github.com/chewxy/math32"
)

// GridSpacing is the per-axis snap step. Every component is at least 1.
type GridSpacing struct {
	X float32 `toml:"x" yaml:"x"`
	Y float32 `toml:"y" yaml:"y"`
	Z float32 `toml:"z" yaml:"z"`
}

const minGridSpacing = 1

func DefaultGrid() GridSpacing {
	return GridSpacing{X: 1, Y: 1, Z: 1}
}

// Clamped raises every component below 1 (and NaN) to 1.
func (g GridSpacing) Clamped() GridSpacing {
	return GridSpacing{X: clampSpacing(g.X), Y: clampSpacing(g.Y), Z: clampSpacing(g.Z)}
}

func clampSpacing(v float32) float32 {
	if math32.IsNaN(v) || v < minGridSpacing {
		return minGridSpacing
	}
	return v
}

func (g GridSpacing) component(i int) float32 {
	switch i {
	case 0:
		return g.X
	case 1:
		return g.Y
	case 2:
		return g.Z
	}
	return 0
}

// Snap rounds v to the nearest multiple of the grid step for kind. Kinds with
// no grid axis (rotations, ScaleAll) snap to 0.
func (g GridSpacing) Snap(v float32, kind GizmoKind) float32 {
	c := kind.gridComponent()
	if c < 0 {
		return 0
	}
	return RoundToNearest(v, clampSpacing(g.component(c)))
}

// RoundToNearest rounds n to the nearest multiple of step, halves away from zero.
func RoundToNearest(n, step float32) float32 {
	if step == 0 {
		return n
	}
	return math32.Round(n/step) * step
}
