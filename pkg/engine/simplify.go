package engine

import (
	"math"

	polyclip "github.com/ctessum/polyclip-go"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Simplify reduces the vertex count of each ring with Douglas-Peucker at the
// given tolerance. With preserveTopology set, a ring that would collapse
// below 3 vertices is kept unsimplified; without it the ring is dropped,
// which can empty the geometry entirely.
func Simplify(g Geometry, tolerance float64, preserveTopology bool) (Geometry, error) {
	if g.kind != kindPolygon {
		return g, nil
	}
	if tolerance <= 0 {
		return g, nil
	}

	var out polyclip.Polygon
	for _, c := range g.poly {
		ring := make([]v2.Vec, len(c), len(c)+1)
		for i, p := range c {
			ring[i] = v2.Vec{X: p.X, Y: p.Y}
		}
		// Close the ring so the endpoints themselves are eligible targets,
		// then reopen it after simplification.
		closed := append(ring, ring[0])
		simplified := douglasPeucker(closed, tolerance)
		simplified = simplified[:len(simplified)-1]

		if len(simplified) < 3 {
			if !preserveTopology {
				continue
			}
			simplified = ring
		}
		nc := make(polyclip.Contour, len(simplified))
		for i, p := range simplified {
			nc[i] = polyclip.Point{X: p.X, Y: p.Y}
		}
		out = append(out, nc)
	}
	return polygonGeometry(out), nil
}

// douglasPeucker recursively removes points closer than epsilon to the
// chord between the segment endpoints.
func douglasPeucker(path []v2.Vec, epsilon float64) []v2.Vec {
	if len(path) <= 2 {
		return path
	}

	dmax := 0.0
	index := 0
	end := len(path) - 1
	for i := 1; i < end; i++ {
		d := perpendicularDistance(path[i], path[0], path[end])
		if d > dmax {
			dmax = d
			index = i
		}
	}

	if dmax > epsilon {
		left := douglasPeucker(path[:index+1], epsilon)
		right := douglasPeucker(path[index:], epsilon)
		result := make([]v2.Vec, 0, len(left)+len(right)-1)
		result = append(result, left[:len(left)-1]...)
		result = append(result, right...)
		return result
	}

	return []v2.Vec{path[0], path[end]}
}

// perpendicularDistance is the distance from p to the infinite line through
// a and b, or to a itself when the segment is degenerate.
func perpendicularDistance(p, a, b v2.Vec) float64 {
	dx := b.X - a.X
	dy := b.Y - a.Y
	if dx == 0 && dy == 0 {
		return math.Hypot(p.X-a.X, p.Y-a.Y)
	}
	num := math.Abs(dy*p.X - dx*p.Y + b.X*a.Y - b.Y*a.X)
	return num / math.Hypot(dx, dy)
}
