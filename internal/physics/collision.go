package physics

import (
	"fmt"
	"math"

	"github.com/vovakirdan/polyarcade/internal/geom"
)

// Collision is the result of a Separating Axis test.
//
// When Collided is false, Axis is the first axis found to separate the shapes.
// When Collided is true, Axis is the candidate axis with the smallest overlap,
// an approximation of the minimum translation direction. Axis is always a unit
// vector and its sign is not meaningful.
type Collision struct {
	Collided bool
	Axis     geom.Vector
}

// FindCollision tests two convex polygons for overlap using the edge normals
// of both as candidate axes. Touching shapes are not considered collided.
// It panics if either polygon has fewer than 3 vertices.
func FindCollision(a, b geom.Polygon) Collision {
	if len(a) < 3 || len(b) < 3 {
		panic(fmt.Sprintf("physics: collision needs polygons with at least 3 vertices, got %d and %d", len(a), len(b)))
	}

	best := math.Inf(1)
	var bestAxis geom.Vector

	for _, shape := range [2]geom.Polygon{a, b} {
		n := len(shape)
		for i := range shape {
			axis := shape[(i+1)%n].Sub(shape[i]).Perp()
			if axis == geom.Zero {
				continue
			}
			minA, maxA := project(a, axis)
			minB, maxB := project(b, axis)
			overlap := math.Min(maxA, maxB) - math.Max(minA, minB)
			if overlap <= 0 {
				return Collision{Collided: false, Axis: axis.Normalize()}
			}
			// Projections are along an unnormalized axis; compare in world units.
			overlap /= axis.Len()
			if overlap < best {
				best = overlap
				bestAxis = axis
			}
		}
	}

	return Collision{Collided: true, Axis: bestAxis.Normalize()}
}

func project(p geom.Polygon, axis geom.Vector) (min, max float64) {
	min = math.Inf(1)
	max = math.Inf(-1)
	for _, v := range p {
		d := v.Dot(axis)
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	return min, max
}
