package engine

import (
	"slices"

	v2 "github.com/deadsy/sdfx/vec/v2"
)

// ConvexHull returns the smallest convex geometry containing g. Points and
// empty geometry are returned unchanged; a hull that degenerates below 3
// vertices collapses to a bare point.
func ConvexHull(g Geometry) (Geometry, error) {
	if g.kind != kindPolygon {
		return g, nil
	}
	hull := convexHull(g.allVertices())
	switch len(hull) {
	case 0:
		return Empty(), nil
	case 1, 2:
		return NewPoint(hull[0].X, hull[0].Y), nil
	}
	return NewRing(hull)
}

// convexHull computes the convex hull of a point set with the monotone chain
// algorithm, returning vertices in counter-clockwise order. Collinear points
// along hull edges are dropped.
func convexHull(pts []v2.Vec) []v2.Vec {
	if len(pts) == 0 {
		return nil
	}
	sorted := make([]v2.Vec, len(pts))
	copy(sorted, pts)
	slices.SortFunc(sorted, func(a, b v2.Vec) int {
		switch {
		case a.X < b.X:
			return -1
		case a.X > b.X:
			return 1
		case a.Y < b.Y:
			return -1
		case a.Y > b.Y:
			return 1
		}
		return 0
	})
	sorted = slices.CompactFunc(sorted, func(a, b v2.Vec) bool {
		return a.X == b.X && a.Y == b.Y
	})
	if len(sorted) <= 2 {
		return sorted
	}

	var lower []v2.Vec
	for _, p := range sorted {
		for len(lower) > 1 && cross(lower[len(lower)-2], lower[len(lower)-1], p) <= 0 {
			lower = lower[:len(lower)-1]
		}
		lower = append(lower, p)
	}

	var upper []v2.Vec
	for i := len(sorted) - 1; i >= 0; i-- {
		p := sorted[i]
		for len(upper) > 1 && cross(upper[len(upper)-2], upper[len(upper)-1], p) <= 0 {
			upper = upper[:len(upper)-1]
		}
		upper = append(upper, p)
	}

	hull := append(lower[:len(lower)-1], upper[:len(upper)-1]...)
	return hull
}
