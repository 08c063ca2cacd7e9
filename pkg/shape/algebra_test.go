package shape

import (
	"math"
	"testing"
)

func TestUnionOfOverlappingRects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 0, 15, 10)

	u, err := Union(a, b)
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	r, ok := u.(*Rect)
	if !ok {
		t.Fatalf("Union = %T, want *Rect", u)
	}
	if r.X1 != 0 || r.Y1 != 0 || r.X2 != 15 || r.Y2 != 10 {
		t.Errorf("Union = %v, want Rect(0, 0, 15, 10)", r)
	}
}

func TestDifferenceYieldsLShape(t *testing.T) {
	a := NewRect(0, 0, 4, 4)
	b := NewRect(2, 2, 6, 6)

	d, err := Difference(a, b)
	if err != nil {
		t.Fatalf("Difference: %v", err)
	}
	// An L-shape has six corners; it must never reclassify as a Rect.
	if _, ok := d.(*Rect); ok {
		t.Fatalf("Difference = %v, an L-shape must not be a Rect", d)
	}
	p, ok := d.(*Polygon)
	if !ok {
		t.Fatalf("Difference = %T, want *Polygon", d)
	}
	if got := len(p.Vertices()); got != 6 {
		t.Errorf("L-shape has %d vertices, want 6", got)
	}
	if got := p.Area(); got != 12 {
		t.Errorf("L-shape area = %v, want 12", got)
	}
}

func TestIntersectionOfDisjointRects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, 20, 30, 30)

	i, err := Intersection(a, b)
	if err != nil {
		t.Fatalf("Intersection: %v", err)
	}
	// Empty results collapse to the origin point rather than erroring.
	if i != Pt(0, 0) {
		t.Errorf("Intersection = %v, want Point(0, 0)", i)
	}
}

func TestIntersectionOfOverlappingRects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(5, 5, 15, 15)

	i, err := Intersection(a, b)
	if err != nil {
		t.Fatalf("Intersection: %v", err)
	}
	r, ok := i.(*Rect)
	if !ok {
		t.Fatalf("Intersection = %T, want *Rect", i)
	}
	if r.X1 != 5 || r.Y1 != 5 || r.X2 != 10 || r.Y2 != 10 {
		t.Errorf("Intersection = %v, want Rect(5, 5, 10, 10)", r)
	}
}

func TestSymmetricDifferenceOfIdenticalRects(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(0, 0, 10, 10)

	x, err := SymmetricDifference(a, b)
	if err != nil {
		t.Fatalf("SymmetricDifference: %v", err)
	}
	if got := x.Area(); got != 0 {
		t.Errorf("SymmetricDifference area = %v, want 0", got)
	}
}

func TestUnionOfDisjointRectsCollapsesToHull(t *testing.T) {
	a := NewRect(0, 0, 10, 10)
	b := NewRect(20, 0, 30, 10)

	u, err := Union(a, b)
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	// Disjoint parts collapse to the convex hull, here an axis-aligned box
	// spanning both pieces.
	r, ok := u.(*Rect)
	if !ok {
		t.Fatalf("Union of disjoint rects = %T, want *Rect (hull)", u)
	}
	if r.X1 != 0 || r.Y1 != 0 || r.X2 != 30 || r.Y2 != 10 {
		t.Errorf("hull = %v, want Rect(0, 0, 30, 10)", r)
	}
}

func TestNullIdentityLaws(t *testing.T) {
	r := NewRect(0, 0, 10, 10)

	u, err := Union(Null{}, r)
	if err != nil {
		t.Fatalf("Union: %v", err)
	}
	if u != Shape(r) {
		t.Errorf("Union(null, r) = %v, want r unchanged", u)
	}

	i, err := Intersection(Null{}, r)
	if err != nil {
		t.Fatalf("Intersection: %v", err)
	}
	if !isNull(i) {
		t.Errorf("Intersection(null, r) = %v, want Null", i)
	}

	d, err := Difference(Null{}, r)
	if err != nil {
		t.Fatalf("Difference: %v", err)
	}
	if !isNull(d) {
		t.Errorf("Difference(null, r) = %v, want Null", d)
	}

	d2, err := Difference(r, Null{})
	if err != nil {
		t.Fatalf("Difference: %v", err)
	}
	if d2 != Shape(r) {
		t.Errorf("Difference(r, null) = %v, want r unchanged", d2)
	}

	x, err := SymmetricDifference(Null{}, r)
	if err != nil {
		t.Fatalf("SymmetricDifference: %v", err)
	}
	if x != Shape(r) {
		t.Errorf("SymmetricDifference(null, r) = %v, want r unchanged", x)
	}
}

func TestNullQueries(t *testing.T) {
	n := Null{}
	if got := n.Area(); got != 0 {
		t.Errorf("Area() = %v, want 0", got)
	}
	if got := n.Length(); got != 0 {
		t.Errorf("Length() = %v, want 0", got)
	}
	minX, minY, maxX, maxY := n.Bounds()
	if minX != 0 || minY != 0 || maxX != 0 || maxY != 0 {
		t.Errorf("Bounds() = (%v,%v,%v,%v), want zeros", minX, minY, maxX, maxY)
	}
	if got := n.Center(); got != Pt(0, 0) {
		t.Errorf("Center() = %v, want Point(0, 0)", got)
	}
	if n.Contains(Pt(0, 0)) {
		t.Error("Contains(origin) = true, want false")
	}
}

func TestBufferGrowsAndShrinks(t *testing.T) {
	r := NewRect(10, 10, 30, 30)

	grown, err := Buffer(r, 5, 0)
	if err != nil {
		t.Fatalf("Buffer(+5): %v", err)
	}
	if grown.Area() <= r.Area() {
		t.Errorf("buffered area = %v, want > %v", grown.Area(), r.Area())
	}
	minX, _, maxX, _ := grown.Bounds()
	if minX > 5.01 || maxX < 34.99 {
		t.Errorf("buffered bounds = (%v, %v), want to span ~(5, 35)", minX, maxX)
	}

	shrunk, err := Buffer(r, -5, 0)
	if err != nil {
		t.Fatalf("Buffer(-5): %v", err)
	}
	if shrunk.Area() >= r.Area() {
		t.Errorf("eroded area = %v, want < %v", shrunk.Area(), r.Area())
	}

	gone, err := Buffer(r, -20, 0)
	if err != nil {
		t.Fatalf("Buffer(-20): %v", err)
	}
	if gone != Pt(0, 0) {
		t.Errorf("over-eroded shape = %v, want Point(0, 0)", gone)
	}
}

func TestBufferNull(t *testing.T) {
	b, err := Buffer(Null{}, 100, 0)
	if err != nil {
		t.Fatalf("Buffer: %v", err)
	}
	if !isNull(b) {
		t.Errorf("Buffer(null, 100) = %v, want Null", b)
	}
}

func TestBufferPoint(t *testing.T) {
	b, err := Buffer(Pt(100, 100), 50, 0)
	if err != nil {
		t.Fatalf("Buffer: %v", err)
	}
	p, ok := b.(*Polygon)
	if !ok {
		t.Fatalf("Buffer(point, 50) = %T, want *Polygon", b)
	}
	// Polygonization and coordinate truncation both shave area off the
	// analytic disc.
	want := math.Pi * 50 * 50
	if a := p.Area(); a < 0.93*want || a > want {
		t.Errorf("disc area = %v, want just under %v", a, want)
	}
}

func TestConvexHullOfConcavePolygon(t *testing.T) {
	poly, err := NewPolygon([]Point{
		Pt(0, 0), Pt(100, 0), Pt(100, 100), Pt(50, 30), Pt(0, 100),
	})
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}

	h, err := ConvexHull(poly)
	if err != nil {
		t.Fatalf("ConvexHull: %v", err)
	}
	// The notch vertex drops out, leaving the four corners.
	r, ok := h.(*Rect)
	if !ok {
		t.Fatalf("ConvexHull = %T, want *Rect", h)
	}
	if r.X1 != 0 || r.Y1 != 0 || r.X2 != 100 || r.Y2 != 100 {
		t.Errorf("ConvexHull = %v, want Rect(0, 0, 100, 100)", r)
	}
}

func TestSimplifyDropsRedundantVertices(t *testing.T) {
	// A box with collinear midpoints on every edge.
	poly, err := NewPolygon([]Point{
		Pt(0, 0), Pt(50, 0), Pt(100, 0), Pt(100, 50),
		Pt(100, 100), Pt(50, 100), Pt(0, 100), Pt(0, 50),
	})
	if err != nil {
		t.Fatalf("NewPolygon: %v", err)
	}

	s, err := Simplify(poly, 1, true)
	if err != nil {
		t.Fatalf("Simplify: %v", err)
	}
	r, ok := s.(*Rect)
	if !ok {
		t.Fatalf("Simplify = %T, want *Rect", s)
	}
	if r.X1 != 0 || r.Y1 != 0 || r.X2 != 100 || r.Y2 != 100 {
		t.Errorf("Simplify = %v, want Rect(0, 0, 100, 100)", r)
	}
}

func TestMinimumRotatedRectangle(t *testing.T) {
	t.Run("axis aligned input", func(t *testing.T) {
		m, err := MinimumRotatedRectangle(NewRect(0, 0, 40, 20))
		if err != nil {
			t.Fatalf("MinimumRotatedRectangle: %v", err)
		}
		if math.Abs(m.Area()-800) > 1e-6 {
			t.Errorf("area = %v, want 800", m.Area())
		}
	})
	t.Run("rotated diamond", func(t *testing.T) {
		// A 45°-rotated square with diagonal 200: the optimal rectangle is
		// tilted, so the result must be a Quad, not the bounding Rect.
		q := NewQuad(Pt(100, 0), Pt(200, 100), Pt(100, 200), Pt(0, 100))
		m, err := MinimumRotatedRectangle(q)
		if err != nil {
			t.Fatalf("MinimumRotatedRectangle: %v", err)
		}
		if _, ok := m.(*Quad); !ok {
			t.Fatalf("MinimumRotatedRectangle = %T, want *Quad", m)
		}
		// The diamond is itself a rectangle (a square of side 100*sqrt(2)),
		// so the minimum area is the diamond's own area.
		if math.Abs(m.Area()-20000) > 100 {
			t.Errorf("area = %v, want ~20000", m.Area())
		}
	})
}

func TestTransformsOnNull(t *testing.T) {
	checks := []struct {
		name string
		f    func() (Shape, error)
	}{
		{"convex hull", func() (Shape, error) { return ConvexHull(Null{}) }},
		{"simplify", func() (Shape, error) { return Simplify(Null{}, 1, true) }},
		{"min rotated rect", func() (Shape, error) { return MinimumRotatedRectangle(Null{}) }},
	}
	for _, tt := range checks {
		t.Run(tt.name, func(t *testing.T) {
			s, err := tt.f()
			if err != nil {
				t.Fatalf("%v", err)
			}
			if !isNull(s) {
				t.Errorf("got %v, want Null", s)
			}
		})
	}
}
