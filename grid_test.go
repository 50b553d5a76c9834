package hipedit

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

func TestRoundToNearest(t *testing.T) {
	cases := []struct {
		n, step, want float32
	}{
		{1.3, 2, 2},
		{0.9, 2, 0},
		{-1.3, 2, -2},
		{5, 1, 5},
		{4.4, 1, 4},
		{0.5, 1, 1}, // halves round away from zero
		{-0.5, 1, -1},
		{7, 0, 7},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, RoundToNearest(c.n, c.step), "RoundToNearest(%v, %v)", c.n, c.step)
	}
}

func TestSnapIdempotent(t *testing.T) {
	grid := GridSpacing{X: 1, Y: 2.5, Z: 4}
	for _, kind := range []GizmoKind{GizmoX, GizmoY, GizmoZ, GizmoScaleX, GizmoScaleY, GizmoScaleZ, GizmoTrigX1, GizmoTrigY1, GizmoTrigZ1} {
		for _, v := range []float32{-13.7, -1, 0, 0.3, 1.24, 3.75, 99.1} {
			once := grid.Snap(v, kind)
			assert.Equal(t, once, grid.Snap(once, kind), "%s %v", kind, v)
		}
	}
}

func TestSnapPerAxis(t *testing.T) {
	grid := GridSpacing{X: 1, Y: 2, Z: 5}
	assert.Equal(t, float32(1), grid.Snap(1.3, GizmoX))
	assert.Equal(t, float32(2), grid.Snap(1.3, GizmoY))
	assert.Equal(t, float32(0), grid.Snap(1.3, GizmoZ))
	assert.Equal(t, float32(5), grid.Snap(3.1, GizmoTrigZ1))
	assert.Equal(t, float32(2), grid.Snap(1.6, GizmoScaleY))
}

func TestSnapKindsWithoutAxis(t *testing.T) {
	grid := DefaultGrid()
	for _, kind := range []GizmoKind{GizmoYaw, GizmoPitch, GizmoRoll, GizmoScaleAll} {
		assert.Equal(t, float32(0), grid.Snap(3.7, kind), kind.String())
	}
}

func TestGridClamped(t *testing.T) {
	g := GridSpacing{X: -3, Y: math32.NaN(), Z: 0.99}.Clamped()
	assert.Equal(t, GridSpacing{X: 1, Y: 1, Z: 1}, g)

	g = GridSpacing{X: 1, Y: 16, Z: 2.5}.Clamped()
	assert.Equal(t, GridSpacing{X: 1, Y: 16, Z: 2.5}, g)

	// Snap never divides by a spacing below 1, even on an unclamped value.
	assert.Equal(t, float32(3), GridSpacing{}.Snap(3.2, GizmoX))
}
