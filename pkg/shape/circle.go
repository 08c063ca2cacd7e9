package shape

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/tkrell/hitbox/pkg/engine"
)

// circleSegments is the polygonization density used when a circle enters the
// engine, in segments per quarter circle.
const circleSegments = 32

// Circle is a disc around an integer center. Containment is closed: points
// exactly on the boundary are inside. Set operations and constructive
// transforms see the circle as a regular polygon with 4*circleSegments
// vertices, so areas and perimeters computed through them are slightly below
// the analytic values.
type Circle struct {
	X, Y   int
	Radius float64

	geo geomCache
}

// NewCircle builds a circle. A negative radius is clamped to zero, which
// produces a degenerate circle containing only its center.
func NewCircle(x, y int, radius float64) *Circle {
	if radius < 0 {
		radius = 0
	}
	return &Circle{X: x, Y: y, Radius: radius}
}

func (c *Circle) String() string {
	return fmt.Sprintf("Circle(%d, %d, r=%g)", c.X, c.Y, c.Radius)
}

func (c *Circle) Area() float64 {
	return geomArea(c)
}

func (c *Circle) Length() float64 {
	return geomLength(c)
}

func (c *Circle) Bounds() (minX, minY, maxX, maxY float64) {
	x, y := float64(c.X), float64(c.Y)
	return x - c.Radius, y - c.Radius, x + c.Radius, y + c.Radius
}

func (c *Circle) Center() Point {
	return Pt(c.X, c.Y)
}

func (c *Circle) Contains(p Point) bool {
	return Pt(c.X, c.Y).DistanceTo(p) <= c.Radius
}

// RandomPoint draws a uniform point from the disc in closed form: a radius
// proportional to the square root of a uniform draw (so the density does not
// concentrate at the center) and a uniform angle.
func (c *Circle) RandomPoint(d Distribution) (Point, error) {
	if err := d.validate(); err != nil {
		return Point{}, err
	}
	r := c.Radius * math.Sqrt(rand.Float64())
	theta := 2 * math.Pi * rand.Float64()
	x := c.X + int(math.Round(r*math.Cos(theta)))
	y := c.Y + int(math.Round(r*math.Sin(theta)))
	return Pt(x, y), nil
}

func (c *Circle) geometry() (engine.Geometry, error) {
	return c.geo.load(func() (engine.Geometry, error) {
		return engine.NewDisc(float64(c.X), float64(c.Y), c.Radius, circleSegments), nil
	})
}
