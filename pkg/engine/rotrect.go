package engine

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"
)

// MinimumRotatedRectangle returns the smallest-area rectangle, at any
// orientation, that contains g. It uses rotating calipers over the convex
// hull: the optimal rectangle shares an edge direction with some hull edge.
// Points and empty geometry are returned unchanged; a collinear geometry
// falls back to its axis-aligned bounding box.
func MinimumRotatedRectangle(g Geometry) (Geometry, error) {
	if g.kind != kindPolygon {
		return g, nil
	}
	hull := convexHull(g.allVertices())
	if len(hull) < 3 {
		minX, minY, maxX, maxY := g.Bounds()
		return NewBox(minX, minY, maxX, maxY), nil
	}

	bestArea := math.Inf(1)
	var best [4]v2.Vec
	n := len(hull)
	for i := 0; i < n; i++ {
		edge := hull[(i+1)%n].Sub(hull[i])
		length := edge.Length()
		if length == 0 {
			continue
		}
		dir := edge.MulScalar(1 / length)
		norm := v2.Vec{X: -dir.Y, Y: dir.X}

		minD, maxD := math.Inf(1), math.Inf(-1)
		minN, maxN := math.Inf(1), math.Inf(-1)
		for _, p := range hull {
			d := p.Dot(dir)
			q := p.Dot(norm)
			minD = math.Min(minD, d)
			maxD = math.Max(maxD, d)
			minN = math.Min(minN, q)
			maxN = math.Max(maxN, q)
		}

		area := (maxD - minD) * (maxN - minN)
		if area < bestArea {
			bestArea = area
			best = [4]v2.Vec{
				dir.MulScalar(minD).Add(norm.MulScalar(minN)),
				dir.MulScalar(maxD).Add(norm.MulScalar(minN)),
				dir.MulScalar(maxD).Add(norm.MulScalar(maxN)),
				dir.MulScalar(minD).Add(norm.MulScalar(maxN)),
			}
		}
	}
	if math.IsInf(bestArea, 1) {
		minX, minY, maxX, maxY := g.Bounds()
		return NewBox(minX, minY, maxX, maxY), nil
	}
	return NewRing(best[:])
}
