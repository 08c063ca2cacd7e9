package engine

import (
	"math"

	polyclip "github.com/ctessum/polyclip-go"
	v2 "github.com/deadsy/sdfx/vec/v2"
)

// Area returns the enclosed area. Rings nested inside another ring count as
// holes and subtract from the total, so the orientation the clipper happens
// to emit does not matter. Points and empty geometry have zero area.
func (g Geometry) Area() float64 {
	if g.kind != kindPolygon {
		return 0
	}
	total := 0.0
	for i, c := range g.poly {
		a := math.Abs(ringArea(c))
		if g.isHole(i) {
			total -= a
		} else {
			total += a
		}
	}
	if total < 0 {
		total = 0
	}
	return total
}

// Perimeter returns the total length of all ring boundaries.
func (g Geometry) Perimeter() float64 {
	if g.kind != kindPolygon {
		return 0
	}
	total := 0.0
	for _, c := range g.poly {
		n := len(c)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			dx := c[j].X - c[i].X
			dy := c[j].Y - c[i].Y
			total += math.Hypot(dx, dy)
		}
	}
	return total
}

// Bounds returns the axis-aligned extent (minx, miny, maxx, maxy).
// Empty geometry bounds are all zero.
func (g Geometry) Bounds() (minX, minY, maxX, maxY float64) {
	switch g.kind {
	case kindEmpty:
		return 0, 0, 0, 0
	case kindPoint:
		return g.pt.X, g.pt.Y, g.pt.X, g.pt.Y
	}
	first := true
	for _, c := range g.poly {
		for _, p := range c {
			if first {
				minX, minY, maxX, maxY = p.X, p.Y, p.X, p.Y
				first = false
				continue
			}
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	return minX, minY, maxX, maxY
}

// Centroid returns the area-weighted centroid. Holes subtract from the
// weighting. Degenerate (near zero area) polygons fall back to the vertex
// average so callers always get a finite answer.
func (g Geometry) Centroid() (x, y float64) {
	switch g.kind {
	case kindEmpty:
		return 0, 0
	case kindPoint:
		return g.pt.X, g.pt.Y
	}

	var cx, cy, weight float64
	for i, c := range g.poly {
		a := ringArea(c)
		rx, ry := ringCentroid(c, a)
		w := math.Abs(a)
		if g.isHole(i) {
			w = -w
		}
		cx += rx * w
		cy += ry * w
		weight += w
	}
	if math.Abs(weight) > 1e-12 {
		return cx / weight, cy / weight
	}

	// Degenerate: average the vertices.
	var sx, sy float64
	n := 0
	for _, c := range g.poly {
		for _, p := range c {
			sx += p.X
			sy += p.Y
			n++
		}
	}
	if n == 0 {
		return 0, 0
	}
	return sx / float64(n), sy / float64(n)
}

// ContainsPoint tests point membership with the even-odd rule across every
// ring, so holes are excluded automatically.
func (g Geometry) ContainsPoint(x, y float64) bool {
	if g.kind != kindPolygon {
		return false
	}
	inside := false
	for _, c := range g.poly {
		if ringContains(c, x, y) {
			inside = !inside
		}
	}
	return inside
}

// isHole reports whether ring i is nested inside another ring.
func (g Geometry) isHole(i int) bool {
	c := g.poly[i]
	if len(c) == 0 {
		return false
	}
	for j, other := range g.poly {
		if j == i {
			continue
		}
		if ringContains(other, c[0].X, c[0].Y) {
			return true
		}
	}
	return false
}

// ringArea is the signed shoelace area of a ring (closing vertex implied).
func ringArea(c polyclip.Contour) float64 {
	a := 0.0
	n := len(c)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		a += c[i].X*c[j].Y - c[j].X*c[i].Y
	}
	return a / 2
}

// ringCentroid is the area-weighted centroid of a single ring given its
// signed area. Falls back to the vertex average when the ring is degenerate.
func ringCentroid(c polyclip.Contour, signedArea float64) (x, y float64) {
	n := len(c)
	if math.Abs(signedArea) < 1e-12 {
		var sx, sy float64
		for _, p := range c {
			sx += p.X
			sy += p.Y
		}
		if n == 0 {
			return 0, 0
		}
		return sx / float64(n), sy / float64(n)
	}
	var cx, cy float64
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := c[i].X*c[j].Y - c[j].X*c[i].Y
		cx += (c[i].X + c[j].X) * cross
		cy += (c[i].Y + c[j].Y) * cross
	}
	f := 1 / (6 * signedArea)
	return cx * f, cy * f
}

// ringContains is a ray-casting point-in-ring test.
func ringContains(c polyclip.Contour, x, y float64) bool {
	if len(c) < 3 {
		return false
	}
	inside := false
	n := len(c)
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		pi, pj := c[i], c[j]
		if ((pi.Y > y) != (pj.Y > y)) &&
			(x < (pj.X-pi.X)*(y-pi.Y)/(pj.Y-pi.Y)+pi.X) {
			inside = !inside
		}
	}
	return inside
}

// cross returns the z component of (a-o) x (b-o).
func cross(o, a, b v2.Vec) float64 {
	return (a.X-o.X)*(b.Y-o.Y) - (a.Y-o.Y)*(b.X-o.X)
}
