package shape

import (
	"fmt"
	"math"

	"github.com/tkrell/hitbox/pkg/engine"
)

// Point is a single integer coordinate. It is a zero-area shape: only the
// exact coordinate is contained, and sampling always returns the point
// itself.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{x, y}.
func Pt(x, y int) Point {
	return Point{X: x, Y: y}
}

// DistanceTo returns the Euclidean distance to q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(float64(q.X-p.X), float64(q.Y-p.Y))
}

func (p Point) String() string {
	return fmt.Sprintf("Point(%d, %d)", p.X, p.Y)
}

func (p Point) Area() float64 {
	return 0
}

func (p Point) Length() float64 {
	return 0
}

func (p Point) Bounds() (minX, minY, maxX, maxY float64) {
	x, y := float64(p.X), float64(p.Y)
	return x, y, x, y
}

func (p Point) Center() Point {
	return p
}

func (p Point) Contains(q Point) bool {
	return p == q
}

func (p Point) RandomPoint(d Distribution) (Point, error) {
	if err := d.validate(); err != nil {
		return Point{}, err
	}
	return p, nil
}

func (p Point) geometry() (engine.Geometry, error) {
	return engine.NewPoint(float64(p.X), float64(p.Y)), nil
}
