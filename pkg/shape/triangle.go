package shape

import (
	"fmt"
	"math"
	"math/rand/v2"

	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/tkrell/hitbox/pkg/engine"
)

// Triangle is a three-vertex shape. Vertices are owned by value; degenerate
// (collinear) triangles are legal and simply have zero area.
type Triangle struct {
	P1, P2, P3 Point

	geo geomCache
}

// NewTriangle builds a triangle from three vertices.
func NewTriangle(p1, p2, p3 Point) *Triangle {
	return &Triangle{P1: p1, P2: p2, P3: p3}
}

func (t *Triangle) String() string {
	return fmt.Sprintf("Triangle(%v, %v, %v)", t.P1, t.P2, t.P3)
}

func (t *Triangle) Area() float64 {
	return geomArea(t)
}

func (t *Triangle) Length() float64 {
	return geomLength(t)
}

func (t *Triangle) Bounds() (minX, minY, maxX, maxY float64) {
	return geomBounds(t)
}

func (t *Triangle) Center() Point {
	return geomCenter(t)
}

func (t *Triangle) Contains(p Point) bool {
	return geomContains(t, p)
}

// RandomPoint draws a uniform point by barycentric sampling: two uniforms are
// folded into the unit simplex and used as vertex weights. Rounding the
// result to integer coordinates can push it marginally outside a thin
// triangle, so a containment check follows; on failure the sampler falls back
// to the center instead of retrying.
func (t *Triangle) RandomPoint(d Distribution) (Point, error) {
	if err := d.validate(); err != nil {
		return Point{}, err
	}
	r1, r2 := rand.Float64(), rand.Float64()
	if r1+r2 > 1 {
		r1, r2 = 1-r1, 1-r2
	}
	r3 := 1 - r1 - r2
	x := r1*float64(t.P1.X) + r2*float64(t.P2.X) + r3*float64(t.P3.X)
	y := r1*float64(t.P1.Y) + r2*float64(t.P2.Y) + r3*float64(t.P3.Y)
	p := Pt(int(math.Round(x)), int(math.Round(y)))
	if !t.Contains(p) {
		return t.Center(), nil
	}
	return p, nil
}

func (t *Triangle) geometry() (engine.Geometry, error) {
	return t.geo.load(func() (engine.Geometry, error) {
		return engine.NewRing([]v2.Vec{
			{X: float64(t.P1.X), Y: float64(t.P1.Y)},
			{X: float64(t.P2.X), Y: float64(t.P2.Y)},
			{X: float64(t.P3.X), Y: float64(t.P3.Y)},
		})
	})
}
