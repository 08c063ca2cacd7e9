package engine

import (
	"testing"

	v2 "github.com/deadsy/sdfx/vec/v2"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestMinimumRotatedRectangleAxisAligned(t *testing.T) {
	g, err := MinimumRotatedRectangle(NewBox(0, 0, 40, 20))
	if err != nil {
		t.Fatalf("MinimumRotatedRectangle: %v", err)
	}
	if got := g.Area(); !scalar.EqualWithinAbs(got, 800, 1e-6) {
		t.Errorf("Area() = %v, want 800", got)
	}
}

func TestMinimumRotatedRectangleDiamond(t *testing.T) {
	diamond, err := NewRing([]v2.Vec{
		{X: 100, Y: 0}, {X: 200, Y: 100}, {X: 100, Y: 200}, {X: 0, Y: 100},
	})
	if err != nil {
		t.Fatalf("NewRing: %v", err)
	}

	g, err := MinimumRotatedRectangle(diamond)
	if err != nil {
		t.Fatalf("MinimumRotatedRectangle: %v", err)
	}
	// The diamond is itself a rotated square, so the minimum rectangle is
	// the diamond: half the area of the axis-aligned bounding box.
	if got := g.Area(); !scalar.EqualWithinAbs(got, 20000, 1e-6) {
		t.Errorf("Area() = %v, want 20000", got)
	}
	if got := len(g.Rings()[0]); got != 4 {
		t.Errorf("result has %d vertices, want 4", got)
	}
}

func TestMinimumRotatedRectanglePassThrough(t *testing.T) {
	p, err := MinimumRotatedRectangle(NewPoint(1, 2))
	if err != nil {
		t.Fatalf("MinimumRotatedRectangle: %v", err)
	}
	if !p.IsPoint() {
		t.Error("result of a point is not a point")
	}

	e, err := MinimumRotatedRectangle(Empty())
	if err != nil {
		t.Fatalf("MinimumRotatedRectangle: %v", err)
	}
	if !e.IsEmpty() {
		t.Error("result of empty is not empty")
	}
}
