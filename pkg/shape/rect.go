package shape

import (
	"fmt"
	"math/rand/v2"

	"github.com/tkrell/hitbox/pkg/engine"
)

// Rect is an axis-aligned rectangle spanning [X1, X2) x [Y1, Y2).
// Containment is half-open: the left and top edges are inside, the right and
// bottom edges are not, so adjacent grid cells never share a point.
type Rect struct {
	X1, Y1, X2, Y2 int

	geo geomCache
}

// NewRect builds a rectangle from two corners, normalizing them so that
// (X1, Y1) is the minimum corner.
func NewRect(x1, y1, x2, y2 int) *Rect {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return &Rect{X1: x1, Y1: y1, X2: x2, Y2: y2}
}

// Width returns the horizontal extent.
func (r *Rect) Width() int {
	return r.X2 - r.X1
}

// Height returns the vertical extent.
func (r *Rect) Height() int {
	return r.Y2 - r.Y1
}

func (r *Rect) String() string {
	return fmt.Sprintf("Rect(%d, %d, %d, %d)", r.X1, r.Y1, r.X2, r.Y2)
}

func (r *Rect) Area() float64 {
	return float64(r.Width()) * float64(r.Height())
}

func (r *Rect) Length() float64 {
	return 2 * float64(r.Width()+r.Height())
}

func (r *Rect) Bounds() (minX, minY, maxX, maxY float64) {
	return float64(r.X1), float64(r.Y1), float64(r.X2), float64(r.Y2)
}

func (r *Rect) Center() Point {
	return geomCenter(r)
}

func (r *Rect) Contains(p Point) bool {
	return p.X >= r.X1 && p.X < r.X2 && p.Y >= r.Y1 && p.Y < r.Y2
}

// RandomPoint draws a uniform point from [X1, X2) x [Y1, Y2) directly, with
// no rejection loop. A degenerate axis pins the coordinate to its low edge.
func (r *Rect) RandomPoint(d Distribution) (Point, error) {
	if err := d.validate(); err != nil {
		return Point{}, err
	}
	x, y := r.X1, r.Y1
	if w := r.Width(); w > 0 {
		x += rand.IntN(w)
	}
	if h := r.Height(); h > 0 {
		y += rand.IntN(h)
	}
	return Pt(x, y), nil
}

func (r *Rect) geometry() (engine.Geometry, error) {
	return r.geo.load(func() (engine.Geometry, error) {
		return engine.NewBox(float64(r.X1), float64(r.Y1), float64(r.X2), float64(r.Y2)), nil
	})
}
