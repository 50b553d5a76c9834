// Package sketch is a software renderer for gizmo draw requests. It draws
// flat wireframes into an RGBA image, which is enough for previews,
// screenshots in bug reports and the replay tool.
package sketch

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
	"golang.org/x/image/vector"

	"github.com/gekko3d/hipedit"
	"github.com/gekko3d/hipedit/geom"
)

const (
	circleSegments   = 32
	defaultLineWidth = 2
)

// cube corners and the 12 edges between them.
var (
	cubeCorners = [8]mgl32.Vec3{
		{-1, -1, -1}, {1, -1, -1}, {1, 1, -1}, {-1, 1, -1},
		{-1, -1, 1}, {1, -1, 1}, {1, 1, 1}, {-1, 1, 1},
	}
	cubeEdges = [12][2]int{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{4, 5}, {5, 6}, {6, 7}, {7, 4},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
	}
)

type Canvas struct {
	ViewProjection mgl32.Mat4
	LineWidth      float32
	Background     color.Color

	img *image.RGBA
	ras *vector.Rasterizer
}

func NewCanvas(width, height int, viewProj mgl32.Mat4) *Canvas {
	c := &Canvas{
		ViewProjection: viewProj,
		LineWidth:      defaultLineWidth,
		Background:     color.RGBA{0x20, 0x20, 0x24, 0xff},
		img:            image.NewRGBA(image.Rect(0, 0, width, height)),
		ras:            vector.NewRasterizer(width, height),
	}
	c.Clear()
	return c
}

func (c *Canvas) Clear() {
	draw.Draw(c.img, c.img.Bounds(), image.NewUniform(c.Background), image.Point{}, draw.Src)
}

func (c *Canvas) Image() *image.RGBA { return c.img }

func (c *Canvas) WritePNG(w io.Writer) error {
	if err := png.Encode(w, c.img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}

// DrawGizmo implements hipedit.Renderer.
func (c *Canvas) DrawGizmo(req hipedit.DrawRequest) {
	switch req.Type {
	case hipedit.GizmoLine:
		c.stroke(req.Color, [][2]mgl32.Vec3{{req.Position, req.LineEnd}})
	case hipedit.GizmoCircle:
		c.stroke(req.Color, circle(req))
	case hipedit.GizmoCube:
		c.stroke(req.Color, cube(req))
	}
}

func circle(req hipedit.DrawRequest) [][2]mgl32.Vec3 {
	point := func(i int) mgl32.Vec3 {
		a := 2 * math32.Pi * float32(i) / circleSegments
		local := mgl32.Vec3{math32.Cos(a), math32.Sin(a), 0}.Mul(req.Radius)
		return req.Position.Add(req.Rotation.Rotate(local))
	}
	segs := make([][2]mgl32.Vec3, 0, circleSegments)
	for i := 0; i < circleSegments; i++ {
		segs = append(segs, [2]mgl32.Vec3{point(i), point(i + 1)})
	}
	return segs
}

func cube(req hipedit.DrawRequest) [][2]mgl32.Vec3 {
	half := req.Scale.Mul(0.5)
	var world [8]mgl32.Vec3
	for i, corner := range cubeCorners {
		local := mgl32.Vec3{corner[0] * half[0], corner[1] * half[1], corner[2] * half[2]}
		world[i] = req.Position.Add(req.Rotation.Rotate(local))
	}
	segs := make([][2]mgl32.Vec3, 0, len(cubeEdges))
	for _, e := range cubeEdges {
		segs = append(segs, [2]mgl32.Vec3{world[e[0]], world[e[1]]})
	}
	return segs
}

// stroke rasterizes each world-space segment as a thin quad. Segments with an
// end behind the camera are skipped.
func (c *Canvas) stroke(rgba [4]float32, segs [][2]mgl32.Vec3) {
	b := c.img.Bounds()
	c.ras.Reset(b.Dx(), b.Dy())

	half := c.LineWidth / 2
	drawn := false
	for _, s := range segs {
		a, okA := geom.WorldToScreen(s[0], c.ViewProjection, b.Dx(), b.Dy())
		e, okE := geom.WorldToScreen(s[1], c.ViewProjection, b.Dx(), b.Dy())
		if !okA || !okE {
			continue
		}
		d := e.Sub(a)
		if d.Len() == 0 {
			continue
		}
		n := mgl32.Vec2{-d.Y(), d.X()}.Normalize().Mul(half)

		c.ras.MoveTo(a.X()+n.X(), a.Y()+n.Y())
		c.ras.LineTo(e.X()+n.X(), e.Y()+n.Y())
		c.ras.LineTo(e.X()-n.X(), e.Y()-n.Y())
		c.ras.LineTo(a.X()-n.X(), a.Y()-n.Y())
		c.ras.ClosePath()
		drawn = true
	}
	if drawn {
		c.ras.Draw(c.img, b, image.NewUniform(toColor(rgba)), image.Point{})
	}
}

func toColor(c [4]float32) color.NRGBA {
	ch := func(v float32) uint8 {
		return uint8(math32.Round(math32.Max(0, math32.Min(1, v)) * 255))
	}
	return color.NRGBA{R: ch(c[0]), G: ch(c[1]), B: ch(c[2]), A: ch(c[3])}
}
