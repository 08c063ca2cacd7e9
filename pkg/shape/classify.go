package shape

import (
	"math"

	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/tkrell/hitbox/pkg/engine"
)

// classify converts an engine result into the most specific variant:
// Point for point or empty results, Triangle/Rect/Quad/Polygon by vertex
// count of the exterior ring, with the axis-aligned test deciding Rect vs
// Quad. A multi-part result collapses to its convex hull first; exact
// disjoint representation is out of scope. Polygon-derived coordinates are
// truncated toward zero at the boundary, point results are rounded.
func classify(g engine.Geometry) Shape {
	if g.IsEmpty() {
		return Pt(0, 0)
	}
	if g.IsPoint() {
		x, y := g.PointXY()
		return Pt(int(math.Round(x)), int(math.Round(y)))
	}
	if g.HasDisjointParts() {
		hull, err := engine.ConvexHull(g)
		if err != nil {
			return Pt(0, 0)
		}
		if !hull.HasDisjointParts() {
			return classify(hull)
		}
		return Pt(0, 0)
	}

	idx := g.ExteriorIndex()
	if idx < 0 {
		return Pt(0, 0)
	}
	// The clipper nodes its output at segment intersections, so a clean box
	// can come back with collinear vertices along its edges. Prune them so
	// the vertex count reflects the actual corners.
	ring := pruneCollinear(g.Rings()[idx])
	switch len(ring) {
	case 0:
		return Pt(0, 0)
	case 1, 2:
		return truncPt(ring[0])
	case 3:
		return NewTriangle(truncPt(ring[0]), truncPt(ring[1]), truncPt(ring[2]))
	case 4:
		if axisAligned(ring) {
			minX, minY, maxX, maxY := ringExtent(ring)
			return NewRect(int(minX), int(minY), int(maxX), int(maxY))
		}
		return NewQuad(truncPt(ring[0]), truncPt(ring[1]), truncPt(ring[2]), truncPt(ring[3]))
	}

	verts := make([]Point, len(ring))
	for i, v := range ring {
		verts[i] = truncPt(v)
	}
	poly, err := NewPolygon(verts)
	if err != nil {
		return Pt(0, 0)
	}
	return poly
}

func truncPt(v v2.Vec) Point {
	return Pt(int(v.X), int(v.Y))
}

// pruneCollinear drops vertices that lie on the segment between their
// neighbors. Rings that would fall below three vertices are left alone.
func pruneCollinear(ring []v2.Vec) []v2.Vec {
	n := len(ring)
	if n < 4 {
		return ring
	}
	out := make([]v2.Vec, 0, n)
	for i := 0; i < n; i++ {
		prev := ring[(i+n-1)%n]
		next := ring[(i+1)%n]
		cr := (ring[i].X-prev.X)*(next.Y-prev.Y) - (ring[i].Y-prev.Y)*(next.X-prev.X)
		if math.Abs(cr) > 1e-9 {
			out = append(out, ring[i])
		}
	}
	if len(out) < 3 {
		return ring
	}
	return out
}

// axisAligned reports whether a 4-vertex ring has exactly two distinct x
// values and exactly two distinct y values.
func axisAligned(ring []v2.Vec) bool {
	xs := make(map[float64]struct{}, 4)
	ys := make(map[float64]struct{}, 4)
	for _, v := range ring {
		xs[v.X] = struct{}{}
		ys[v.Y] = struct{}{}
	}
	return len(xs) == 2 && len(ys) == 2
}

func ringExtent(ring []v2.Vec) (minX, minY, maxX, maxY float64) {
	minX, minY = ring[0].X, ring[0].Y
	maxX, maxY = minX, minY
	for _, v := range ring[1:] {
		minX = math.Min(minX, v.X)
		minY = math.Min(minY, v.Y)
		maxX = math.Max(maxX, v.X)
		maxY = math.Max(maxY, v.Y)
	}
	return minX, minY, maxX, maxY
}
