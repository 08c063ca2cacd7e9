package shape

import "github.com/tkrell/hitbox/pkg/engine"

// Null is the inert sentinel shape. Every query answers with a zero value,
// Contains is always false, and interaction helpers treat it as a no-op
// target. It exists so pipelines can carry "no shape" without nil checks.
type Null struct{}

func (Null) String() string {
	return "NullShape"
}

func (Null) Area() float64 {
	return 0
}

func (Null) Length() float64 {
	return 0
}

func (Null) Bounds() (minX, minY, maxX, maxY float64) {
	return 0, 0, 0, 0
}

func (Null) Center() Point {
	return Pt(0, 0)
}

func (Null) Contains(Point) bool {
	return false
}

func (Null) RandomPoint(d Distribution) (Point, error) {
	if err := d.validate(); err != nil {
		return Point{}, err
	}
	return Pt(0, 0), nil
}

func (Null) geometry() (engine.Geometry, error) {
	return engine.Empty(), nil
}
