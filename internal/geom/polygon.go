package geom

import "math"

// Polygon is an ordered list of vertices in a fixed winding order.
// Translate and Rotate mutate the polygon in place.
type Polygon []Vector

// Clone returns an independent copy of the polygon.
func (p Polygon) Clone() Polygon {
	out := make(Polygon, len(p))
	copy(out, p)
	return out
}

// signedArea returns half the shoelace sum. Positive for counter-clockwise winding.
func (p Polygon) signedArea() float64 {
	n := len(p)
	sum := 0.0
	for i := range p {
		sum += p[i].Cross(p[(i+1)%n])
	}
	return 0.5 * sum
}

// Area returns the enclosed area using the shoelace formula.
func (p Polygon) Area() float64 {
	return math.Abs(p.signedArea())
}

// Centroid returns the geometric centroid of the polygon.
// The polygon must enclose positive area; a degenerate polygon yields NaN.
func (p Polygon) Centroid() Vector {
	n := len(p)
	var cx, cy float64
	for i := range p {
		cur, next := p[i], p[(i+1)%n]
		cross := cur.Cross(next)
		cx += (cur.X + next.X) * cross
		cy += (cur.Y + next.Y) * cross
	}
	div := 6.0 * p.signedArea()
	return Vector{X: cx / div, Y: cy / div}
}

// Translate adds v to every vertex.
func (p Polygon) Translate(v Vector) {
	for i := range p {
		p[i] = p[i].Add(v)
	}
}

// Rotate rotates every vertex by angle radians about pivot.
func (p Polygon) Rotate(angle float64, pivot Vector) {
	for i := range p {
		p[i] = p[i].Sub(pivot).Rotate(angle).Add(pivot)
	}
}

// Bounds returns the axis-aligned bounding box of the polygon.
func (p Polygon) Bounds() (min, max Vector) {
	if len(p) == 0 {
		return Vector{}, Vector{}
	}
	min, max = p[0], p[0]
	for _, v := range p[1:] {
		min.X = math.Min(min.X, v.X)
		min.Y = math.Min(min.Y, v.Y)
		max.X = math.Max(max.X, v.X)
		max.Y = math.Max(max.Y, v.Y)
	}
	return min, max
}

// Contains reports whether pt lies inside the polygon (even-odd rule).
func (p Polygon) Contains(pt Vector) bool {
	inside := false
	n := len(p)
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p[i], p[j]
		if (a.Y > pt.Y) != (b.Y > pt.Y) {
			x := (b.X-a.X)*(pt.Y-a.Y)/(b.Y-a.Y) + a.X
			if pt.X < x {
				inside = !inside
			}
		}
	}
	return inside
}

// Rectangle returns an axis-aligned rectangle centered on center, wound counter-clockwise.
func Rectangle(center Vector, width, height float64) Polygon {
	hw, hh := width/2, height/2
	return Polygon{
		{X: center.X - hw, Y: center.Y - hh},
		{X: center.X + hw, Y: center.Y - hh},
		{X: center.X + hw, Y: center.Y + hh},
		{X: center.X - hw, Y: center.Y + hh},
	}
}

// RegularPolygon returns an n-gon of the given circumradius. Use a large n for circles.
func RegularPolygon(center Vector, radius float64, n int) Polygon {
	p := make(Polygon, n)
	for i := range p {
		angle := 2 * math.Pi * float64(i) / float64(n)
		p[i] = center.Add(FromAngle(angle, radius))
	}
	return p
}

// Star returns a star with the given number of points, alternating between the
// outer and inner radius. The first tip points straight up.
func Star(center Vector, outer, inner float64, points int) Polygon {
	p := make(Polygon, 2*points)
	step := math.Pi / float64(points)
	for i := range p {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		p[i] = center.Add(FromAngle(math.Pi/2+float64(i)*step, r))
	}
	return p
}
