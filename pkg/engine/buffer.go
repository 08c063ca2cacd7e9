package engine

import (
	"math"

	polyclip "github.com/ctessum/polyclip-go"
)

// Buffer grows (positive distance) or shrinks (negative distance) a geometry.
// segments controls the polygonal approximation of rounded corners, in
// segments per quarter circle; non-positive values default to 16.
//
// The sweep is a Minkowski construction: a capsule is built along every ring
// edge and either unioned onto the geometry (dilation) or subtracted from it
// (erosion). A bare point dilates to a disc and erodes to nothing.
func Buffer(g Geometry, distance float64, segments int) (Geometry, error) {
	if segments <= 0 {
		segments = 16
	}
	switch g.kind {
	case kindEmpty:
		return Empty(), nil
	case kindPoint:
		if distance > 0 {
			return NewDisc(g.pt.X, g.pt.Y, distance, segments), nil
		}
		return Empty(), nil
	}
	if distance == 0 {
		return g, nil
	}

	r := math.Abs(distance)
	op := OpUnion
	if distance < 0 {
		op = OpDifference
	}

	acc := g.poly
	for _, c := range g.poly {
		n := len(c)
		for i := 0; i < n; i++ {
			j := (i + 1) % n
			sweep := capsule(c[i], c[j], r, segments)
			var err error
			acc, err = construct(acc, op, polyclip.Polygon{sweep})
			if err != nil {
				return Empty(), err
			}
			if len(acc) == 0 {
				// Erosion consumed the whole shape.
				return Empty(), nil
			}
		}
	}
	return polygonGeometry(acc), nil
}

// capsule builds the set of points within radius r of segment a-b: a
// rectangle with a semicircular cap at each end, each cap approximated with
// 2*segments edges.
func capsule(a, b polyclip.Point, r float64, segments int) polyclip.Contour {
	theta := math.Atan2(b.Y-a.Y, b.X-a.X)
	if a.X == b.X && a.Y == b.Y {
		// Degenerate edge: a full disc around the point.
		disc := NewDisc(a.X, a.Y, r, segments)
		return disc.poly[0]
	}

	steps := 2 * segments
	ring := make(polyclip.Contour, 0, 2*steps+2)

	// Cap around b, sweeping from theta-90° to theta+90°.
	for i := 0; i <= steps; i++ {
		ang := theta - math.Pi/2 + math.Pi*float64(i)/float64(steps)
		ring = append(ring, polyclip.Point{
			X: b.X + r*math.Cos(ang),
			Y: b.Y + r*math.Sin(ang),
		})
	}
	// Cap around a, sweeping from theta+90° to theta+270°.
	for i := 1; i <= steps; i++ {
		ang := theta + math.Pi/2 + math.Pi*float64(i)/float64(steps)
		ring = append(ring, polyclip.Point{
			X: a.X + r*math.Cos(ang),
			Y: a.Y + r*math.Sin(ang),
		})
	}
	return ring
}
