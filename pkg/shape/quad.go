package shape

import (
	"fmt"

	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/tkrell/hitbox/pkg/engine"
)

// Quad is a four-vertex shape in the order given, which need not be
// axis-aligned or convex. Axis-aligned four-vertex results of an algebra
// operation reclassify to Rect instead.
type Quad struct {
	P1, P2, P3, P4 Point

	geo geomCache
}

// NewQuad builds a quadrilateral from four vertices in ring order.
func NewQuad(p1, p2, p3, p4 Point) *Quad {
	return &Quad{P1: p1, P2: p2, P3: p3, P4: p4}
}

func (q *Quad) String() string {
	return fmt.Sprintf("Quad(%v, %v, %v, %v)", q.P1, q.P2, q.P3, q.P4)
}

func (q *Quad) Area() float64 {
	return geomArea(q)
}

func (q *Quad) Length() float64 {
	return geomLength(q)
}

func (q *Quad) Bounds() (minX, minY, maxX, maxY float64) {
	return geomBounds(q)
}

func (q *Quad) Center() Point {
	return geomCenter(q)
}

func (q *Quad) Contains(p Point) bool {
	return geomContains(q, p)
}

func (q *Quad) RandomPoint(d Distribution) (Point, error) {
	if err := d.validate(); err != nil {
		return Point{}, err
	}
	return rejectionSample(q), nil
}

func (q *Quad) geometry() (engine.Geometry, error) {
	return q.geo.load(func() (engine.Geometry, error) {
		return engine.NewRing([]v2.Vec{
			{X: float64(q.P1.X), Y: float64(q.P1.Y)},
			{X: float64(q.P2.X), Y: float64(q.P2.Y)},
			{X: float64(q.P3.X), Y: float64(q.P3.Y)},
			{X: float64(q.P4.X), Y: float64(q.P4.Y)},
		})
	})
}
