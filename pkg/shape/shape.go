// Package shape implements a closed set of 2D spatial primitives (Point,
// Rect, Circle, Triangle, Quad, Polygon and the Null sentinel) sharing one
// algebra of spatial queries, boolean set operations, constructive
// transforms, and random point sampling. Heavy geometric math is delegated
// to pkg/engine; results of combinators are reclassified back into the most
// specific variant.
//
// Shapes are immutable values. The engine representation of a shape is
// materialized lazily, at most once per instance, and never mutated.
package shape

import (
	"math"
	"sync"

	"github.com/tkrell/hitbox/pkg/engine"
)

// Shape is the behavior shared by every variant. The variant set is closed:
// the unexported geometry method keeps outside packages from adding members,
// so type switches over variants stay exhaustive.
type Shape interface {
	// Area returns the enclosed area.
	Area() float64

	// Length returns the perimeter (or path length).
	Length() float64

	// Bounds returns the axis-aligned extent (minx, miny, maxx, maxy).
	Bounds() (minX, minY, maxX, maxY float64)

	// Center returns the centroid rounded to integer coordinates.
	Center() Point

	// Contains reports whether the point lies within the shape.
	Contains(p Point) bool

	// RandomPoint draws one point from the shape's interior under the given
	// distribution. Only Uniform is supported; the zero value means Uniform.
	RandomPoint(d Distribution) (Point, error)

	// geometry returns the engine representation, materializing it on first
	// use. Unexported: the variant set is closed.
	geometry() (engine.Geometry, error)
}

// Distribution names a sampling distribution for RandomPoint.
type Distribution string

// Uniform is the only supported sampling distribution. The empty string is
// treated as Uniform so the zero value does the right thing.
const Uniform Distribution = "uniform"

func (d Distribution) validate() error {
	if d == "" || d == Uniform {
		return nil
	}
	return &UnsupportedDistributionError{Name: string(d)}
}

// geomCache is the write-once cell holding a shape's lazily materialized
// engine representation. Concurrent first access computes it exactly once.
type geomCache struct {
	once sync.Once
	g    engine.Geometry
	err  error
}

func (c *geomCache) load(build func() (engine.Geometry, error)) (engine.Geometry, error) {
	c.once.Do(func() {
		c.g, c.err = build()
	})
	return c.g, c.err
}

// The geom* helpers implement the engine-delegating queries shared by the
// polygonal variants. Shapes whose engine representation cannot be built
// answer with harmless zero values rather than erroring on a query.

func geomArea(s Shape) float64 {
	g, err := s.geometry()
	if err != nil {
		return 0
	}
	return g.Area()
}

func geomLength(s Shape) float64 {
	g, err := s.geometry()
	if err != nil {
		return 0
	}
	return g.Perimeter()
}

func geomBounds(s Shape) (minX, minY, maxX, maxY float64) {
	g, err := s.geometry()
	if err != nil {
		return 0, 0, 0, 0
	}
	return g.Bounds()
}

func geomCenter(s Shape) Point {
	g, err := s.geometry()
	if err != nil {
		return Pt(0, 0)
	}
	x, y := g.Centroid()
	return Pt(int(math.Round(x)), int(math.Round(y)))
}

func geomContains(s Shape, p Point) bool {
	g, err := s.geometry()
	if err != nil {
		return false
	}
	return g.ContainsPoint(float64(p.X), float64(p.Y))
}

// isNull reports whether s is the Null sentinel.
func isNull(s Shape) bool {
	_, ok := s.(Null)
	return ok
}
