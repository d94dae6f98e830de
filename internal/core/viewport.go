package core

import (
	"math"

	"github.com/vovakirdan/polyarcade/internal/geom"
)

// Viewport maps a world rectangle with its origin at the bottom-left and Y
// pointing up onto a block of screen cells.
type Viewport struct {
	World geom.Vector // world width and height
	Area  Rect        // destination cells
}

// NewViewport maps a world of the given size onto area.
func NewViewport(worldW, worldH float64, area Rect) Viewport {
	return Viewport{World: geom.V(worldW, worldH), Area: area}
}

// ToCell returns the cell containing world point p. The result may lie
// outside Area.
func (v Viewport) ToCell(p geom.Vector) (x, y int) {
	fx := p.X / v.World.X * float64(v.Area.W)
	fy := p.Y / v.World.Y * float64(v.Area.H)
	return v.Area.X + int(math.Floor(fx)), v.Area.Y + v.Area.H - 1 - int(math.Floor(fy))
}

// ToWorld returns the world position of the center of cell (x, y).
func (v Viewport) ToWorld(x, y int) geom.Vector {
	return geom.V(
		(float64(x-v.Area.X)+0.5)*v.World.X/float64(v.Area.W),
		(float64(v.Area.H-(y-v.Area.Y))-0.5)*v.World.Y/float64(v.Area.H),
	)
}

// FillPolygon paints every cell of Area whose center lies inside p. Shapes
// smaller than a cell still paint the cell under their centroid.
func (v Viewport) FillPolygon(s *Screen, p geom.Polygon, r rune, c Color) {
	if len(p) < 3 || v.Area.W <= 0 || v.Area.H <= 0 {
		return
	}

	lo, hi := p.Bounds()
	x0, y1 := v.ToCell(lo)
	x1, y0 := v.ToCell(hi)
	x0, x1 = Clamp(x0, v.Area.X, v.Area.Right()-1), Clamp(x1, v.Area.X, v.Area.Right()-1)
	y0, y1 = Clamp(y0, v.Area.Y, v.Area.Bottom()-1), Clamp(y1, v.Area.Y, v.Area.Bottom()-1)

	painted := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			if p.Contains(v.ToWorld(x, y)) {
				s.SetCell(x, y, r, c)
				painted = true
			}
		}
	}
	if painted {
		return
	}

	cx, cy := v.ToCell(p.Centroid())
	if v.Area.Contains(cx, cy) {
		s.SetCell(cx, cy, r, c)
	}
}

// DrawLine plots a straight segment between two world points.
func (v Viewport) DrawLine(s *Screen, a, b geom.Vector, r rune, c Color) {
	ax, ay := v.ToCell(a)
	bx, by := v.ToCell(b)
	steps := max(abs(bx-ax), abs(by-ay))
	if steps == 0 {
		if v.Area.Contains(ax, ay) {
			s.SetCell(ax, ay, r, c)
		}
		return
	}
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		x := ax + int(math.Round(t*float64(bx-ax)))
		y := ay + int(math.Round(t*float64(by-ay)))
		if v.Area.Contains(x, y) {
			s.SetCell(x, y, r, c)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
