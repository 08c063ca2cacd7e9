package shape

import (
	"fmt"
	"slices"

	v2 "github.com/deadsy/sdfx/vec/v2"

	"github.com/tkrell/hitbox/pkg/engine"
)

// Polygon is an arbitrary simple ring of at least three vertices.
type Polygon struct {
	verts []Point

	geo geomCache
}

// NewPolygon builds a polygon over the given ring of vertices. Fewer than
// three vertices is a ConstructionError. The slice is copied.
func NewPolygon(vertices []Point) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, &ConstructionError{
			Reason: fmt.Sprintf("polygon needs at least 3 vertices, got %d", len(vertices)),
		}
	}
	return &Polygon{verts: slices.Clone(vertices)}, nil
}

// Vertices returns a copy of the defining ring.
func (p *Polygon) Vertices() []Point {
	return slices.Clone(p.verts)
}

func (p *Polygon) String() string {
	return fmt.Sprintf("Polygon(%d vertices)", len(p.verts))
}

func (p *Polygon) Area() float64 {
	return geomArea(p)
}

func (p *Polygon) Length() float64 {
	return geomLength(p)
}

func (p *Polygon) Bounds() (minX, minY, maxX, maxY float64) {
	return geomBounds(p)
}

func (p *Polygon) Center() Point {
	return geomCenter(p)
}

func (p *Polygon) Contains(q Point) bool {
	return geomContains(p, q)
}

func (p *Polygon) RandomPoint(d Distribution) (Point, error) {
	if err := d.validate(); err != nil {
		return Point{}, err
	}
	return rejectionSample(p), nil
}

func (p *Polygon) geometry() (engine.Geometry, error) {
	return p.geo.load(func() (engine.Geometry, error) {
		ring := make([]v2.Vec, len(p.verts))
		for i, v := range p.verts {
			ring[i] = v2.Vec{X: float64(v.X), Y: float64(v.Y)}
		}
		return engine.NewRing(ring)
	})
}
