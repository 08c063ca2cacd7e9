package engine

import (
	"errors"
	"testing"

	v2 "github.com/deadsy/sdfx/vec/v2"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestNewRingTooFewVertices(t *testing.T) {
	tests := []struct {
		name string
		pts  []v2.Vec
	}{
		{"nil", nil},
		{"one", []v2.Vec{{X: 1, Y: 1}}},
		{"two", []v2.Vec{{X: 0, Y: 0}, {X: 1, Y: 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRing(tt.pts)
			var ge *GeometryError
			if !errors.As(err, &ge) {
				t.Fatalf("NewRing(%d pts) error = %v, want GeometryError", len(tt.pts), err)
			}
		})
	}
}

func TestNewBoxNormalizes(t *testing.T) {
	g := NewBox(10, 10, 0, 0)
	minX, minY, maxX, maxY := g.Bounds()
	if minX != 0 || minY != 0 || maxX != 10 || maxY != 10 {
		t.Errorf("Bounds() = (%v,%v,%v,%v), want (0,0,10,10)", minX, minY, maxX, maxY)
	}
	if got := g.Area(); got != 100 {
		t.Errorf("Area() = %v, want 100", got)
	}
}

func TestNewDisc(t *testing.T) {
	t.Run("vertex count", func(t *testing.T) {
		g := NewDisc(0, 0, 10, 8)
		rings := g.Rings()
		if len(rings) != 1 {
			t.Fatalf("disc has %d rings, want 1", len(rings))
		}
		if len(rings[0]) != 32 {
			t.Errorf("disc has %d vertices, want 32", len(rings[0]))
		}
	})
	t.Run("area approaches analytic", func(t *testing.T) {
		g := NewDisc(0, 0, 10, 32)
		// 128-gon area is within a fraction of a percent of pi*r^2.
		if !scalar.EqualWithinAbs(g.Area(), 314.159, 0.5) {
			t.Errorf("Area() = %v, want ~314.16", g.Area())
		}
	})
	t.Run("zero radius degrades to point", func(t *testing.T) {
		g := NewDisc(3, 4, 0, 16)
		if !g.IsPoint() {
			t.Fatal("IsPoint() = false, want true")
		}
		x, y := g.PointXY()
		if x != 3 || y != 4 {
			t.Errorf("PointXY() = (%v, %v), want (3, 4)", x, y)
		}
	})
}

func TestEmptyGeometry(t *testing.T) {
	g := Empty()
	if !g.IsEmpty() {
		t.Fatal("IsEmpty() = false, want true")
	}
	if got := g.Area(); got != 0 {
		t.Errorf("Area() = %v, want 0", got)
	}
	minX, minY, maxX, maxY := g.Bounds()
	if minX != 0 || minY != 0 || maxX != 0 || maxY != 0 {
		t.Errorf("Bounds() = (%v,%v,%v,%v), want zeros", minX, minY, maxX, maxY)
	}
	if g.ContainsPoint(0, 0) {
		t.Error("ContainsPoint(0, 0) = true, want false")
	}
}

func TestRingsReturnsCopies(t *testing.T) {
	g := NewBox(0, 0, 10, 10)
	rings := g.Rings()
	rings[0][0] = v2.Vec{X: 999, Y: 999}
	if got := g.Rings()[0][0]; got.X != 0 || got.Y != 0 {
		t.Errorf("ring vertex = %v after mutating a returned copy, want (0, 0)", got)
	}
}

func TestCentroid(t *testing.T) {
	tests := []struct {
		name         string
		g            Geometry
		wantX, wantY float64
	}{
		{"box", NewBox(0, 0, 10, 20), 5, 10},
		{"offset box", NewBox(10, 10, 30, 30), 20, 20},
		{"point", NewPoint(7, 8), 7, 8},
		{"empty", Empty(), 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := tt.g.Centroid()
			if !scalar.EqualWithinAbs(x, tt.wantX, 1e-9) || !scalar.EqualWithinAbs(y, tt.wantY, 1e-9) {
				t.Errorf("Centroid() = (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestContainsPointEvenOdd(t *testing.T) {
	// Box with a hole punched through the middle.
	outer := NewBox(0, 0, 10, 10)
	inner := NewBox(4, 4, 6, 6)
	g, err := Combine(outer, OpDifference, inner)
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}

	if got := g.Area(); !scalar.EqualWithinAbs(got, 96, 1e-9) {
		t.Errorf("Area() = %v, want 96", got)
	}
	if !g.ContainsPoint(1, 1) {
		t.Error("ContainsPoint(1, 1) = false, want true")
	}
	if g.ContainsPoint(5, 5) {
		t.Error("ContainsPoint(5, 5) = true, want false (inside hole)")
	}
	if g.ContainsPoint(20, 20) {
		t.Error("ContainsPoint(20, 20) = true, want false")
	}
	// A hole is not a disjoint part.
	if g.HasDisjointParts() {
		t.Error("HasDisjointParts() = true for a holed box, want false")
	}
}

func TestPerimeter(t *testing.T) {
	g := NewBox(0, 0, 10, 20)
	if got := g.Perimeter(); got != 60 {
		t.Errorf("Perimeter() = %v, want 60", got)
	}
}
