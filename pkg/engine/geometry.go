// Package engine adapts an external 2D polygon clipping engine
// (github.com/ctessum/polyclip-go) behind a small Geometry value type.
// It provides the heavy geometric math that the shape algebra in pkg/shape
// delegates to: boolean set operations, buffering, convex hulls,
// simplification, and minimum rotated rectangles. All operations are pure:
// no operation mutates its input geometry.
package engine

import (
	"math"
	"slices"

	polyclip "github.com/ctessum/polyclip-go"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// geomKind tags the variant held by a Geometry.
type geomKind int

const (
	kindEmpty geomKind = iota
	kindPoint
	kindPolygon
)

// Geometry is the engine-native representation of a shape: nothing, a bare
// point, or one or more closed rings. Rings never repeat their closing
// vertex. A Geometry is immutable once constructed.
type Geometry struct {
	kind geomKind
	pt   v2.Vec
	poly polyclip.Polygon
}

// Empty returns the geometry representing no shape at all.
func Empty() Geometry {
	return Geometry{kind: kindEmpty}
}

// NewPoint returns a bare point geometry.
func NewPoint(x, y float64) Geometry {
	return Geometry{kind: kindPoint, pt: v2.Vec{X: x, Y: y}}
}

// NewRing builds a single-ring polygon geometry from the given vertices.
// The closing vertex must not be repeated. Fewer than 3 vertices is a
// GeometryError.
func NewRing(pts []v2.Vec) (Geometry, error) {
	if len(pts) < 3 {
		return Empty(), errGeometry("ring", "need at least 3 vertices, got %d", len(pts))
	}
	ring := make(polyclip.Contour, len(pts))
	for i, p := range pts {
		ring[i] = polyclip.Point{X: p.X, Y: p.Y}
	}
	// Rings are stored counter-clockwise regardless of the input winding;
	// the clipper returns empty results for clockwise subjects.
	if ringArea(ring) < 0 {
		slices.Reverse(ring)
	}
	return Geometry{kind: kindPolygon, poly: polyclip.Polygon{ring}}, nil
}

// NewBox returns an axis-aligned rectangle geometry. Coordinates are
// normalized so degenerate (inverted) input still forms a valid ring.
func NewBox(x1, y1, x2, y2 float64) Geometry {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	ring := polyclip.Contour{
		{X: x1, Y: y1},
		{X: x2, Y: y1},
		{X: x2, Y: y2},
		{X: x1, Y: y2},
	}
	return Geometry{kind: kindPolygon, poly: polyclip.Polygon{ring}}
}

// NewDisc approximates a circle as a regular polygon. segments is the number
// of segments per quarter circle (so the ring has 4*segments vertices); a
// non-positive value defaults to 16. A non-positive radius degrades to a
// bare point at the center.
func NewDisc(cx, cy, r float64, segments int) Geometry {
	if r <= 0 {
		return NewPoint(cx, cy)
	}
	if segments <= 0 {
		segments = 16
	}
	n := 4 * segments
	ring := make(polyclip.Contour, n)
	for i := 0; i < n; i++ {
		theta := 2 * math.Pi * float64(i) / float64(n)
		ring[i] = polyclip.Point{
			X: cx + r*math.Cos(theta),
			Y: cy + r*math.Sin(theta),
		}
	}
	return Geometry{kind: kindPolygon, poly: polyclip.Polygon{ring}}
}

// polygonGeometry wraps a clipper result, collapsing zero-ring results to
// Empty.
func polygonGeometry(p polyclip.Polygon) Geometry {
	if len(p) == 0 {
		return Empty()
	}
	return Geometry{kind: kindPolygon, poly: p}
}

// IsEmpty reports whether g represents no shape.
func (g Geometry) IsEmpty() bool { return g.kind == kindEmpty }

// IsPoint reports whether g is a bare point.
func (g Geometry) IsPoint() bool { return g.kind == kindPoint }

// PointXY returns the coordinates of a bare point geometry. It is only
// meaningful when IsPoint reports true.
func (g Geometry) PointXY() (x, y float64) { return g.pt.X, g.pt.Y }

// Rings returns the vertex rings of a polygon geometry, closing vertex
// excluded. The slices are fresh copies; callers may modify them freely.
func (g Geometry) Rings() [][]v2.Vec {
	if g.kind != kindPolygon {
		return nil
	}
	rings := make([][]v2.Vec, len(g.poly))
	for i, c := range g.poly {
		ring := make([]v2.Vec, len(c))
		for j, p := range c {
			ring[j] = v2.Vec{X: p.X, Y: p.Y}
		}
		rings[i] = ring
	}
	return rings
}

// ExteriorIndex returns the index of the ring with the largest absolute
// area, which the reclassifier treats as the exterior. Returns -1 for
// non-polygon geometry.
func (g Geometry) ExteriorIndex() int {
	if g.kind != kindPolygon {
		return -1
	}
	best, bestArea := 0, -1.0
	for i, c := range g.poly {
		if a := math.Abs(ringArea(c)); a > bestArea {
			best, bestArea = i, a
		}
	}
	return best
}

// HasDisjointParts reports whether the geometry has rings lying outside the
// exterior ring, i.e. genuinely disjoint parts rather than holes.
func (g Geometry) HasDisjointParts() bool {
	if g.kind != kindPolygon || len(g.poly) < 2 {
		return false
	}
	ext := g.poly[g.ExteriorIndex()]
	for i, c := range g.poly {
		if i == g.ExteriorIndex() || len(c) == 0 {
			continue
		}
		if !ringContains(ext, c[0].X, c[0].Y) {
			return true
		}
	}
	return false
}

// allVertices flattens every ring vertex into one slice.
func (g Geometry) allVertices() []v2.Vec {
	switch g.kind {
	case kindPoint:
		return []v2.Vec{g.pt}
	case kindPolygon:
		var pts []v2.Vec
		for _, c := range g.poly {
			for _, p := range c {
				pts = append(pts, v2.Vec{X: p.X, Y: p.Y})
			}
		}
		return pts
	}
	return nil
}
