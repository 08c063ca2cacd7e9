package engine

import (
	"testing"

	v2 "github.com/deadsy/sdfx/vec/v2"
	"gonum.org/v1/gonum/floats/scalar"
)

func TestConvexHullOfConcaveRing(t *testing.T) {
	g, err := NewRing([]v2.Vec{
		{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 100, Y: 100}, {X: 50, Y: 30}, {X: 0, Y: 100},
	})
	if err != nil {
		t.Fatalf("NewRing: %v", err)
	}

	h, err := ConvexHull(g)
	if err != nil {
		t.Fatalf("ConvexHull: %v", err)
	}
	rings := h.Rings()
	if len(rings) != 1 {
		t.Fatalf("hull has %d rings, want 1", len(rings))
	}
	if len(rings[0]) != 4 {
		t.Errorf("hull has %d vertices, want 4 (notch removed)", len(rings[0]))
	}
	if got := h.Area(); !scalar.EqualWithinAbs(got, 10000, 1e-9) {
		t.Errorf("hull area = %v, want 10000", got)
	}
}

func TestConvexHullDropsCollinearPoints(t *testing.T) {
	g, err := NewRing([]v2.Vec{
		{X: 0, Y: 0}, {X: 5, Y: 0}, {X: 10, Y: 0}, {X: 10, Y: 10}, {X: 0, Y: 10},
	})
	if err != nil {
		t.Fatalf("NewRing: %v", err)
	}

	h, err := ConvexHull(g)
	if err != nil {
		t.Fatalf("ConvexHull: %v", err)
	}
	if got := len(h.Rings()[0]); got != 4 {
		t.Errorf("hull has %d vertices, want 4", got)
	}
}

func TestConvexHullPassThrough(t *testing.T) {
	p := NewPoint(3, 4)
	h, err := ConvexHull(p)
	if err != nil {
		t.Fatalf("ConvexHull: %v", err)
	}
	if !h.IsPoint() {
		t.Error("hull of a point is not a point")
	}

	e, err := ConvexHull(Empty())
	if err != nil {
		t.Fatalf("ConvexHull: %v", err)
	}
	if !e.IsEmpty() {
		t.Error("hull of empty is not empty")
	}
}

func TestConvexHullSpansDisjointParts(t *testing.T) {
	g, err := Combine(NewBox(0, 0, 10, 10), OpUnion, NewBox(20, 0, 30, 10))
	if err != nil {
		t.Fatalf("Combine: %v", err)
	}

	h, err := ConvexHull(g)
	if err != nil {
		t.Fatalf("ConvexHull: %v", err)
	}
	if h.HasDisjointParts() {
		t.Error("hull still has disjoint parts")
	}
	if got := h.Area(); !scalar.EqualWithinAbs(got, 300, 1e-9) {
		t.Errorf("hull area = %v, want 300", got)
	}
}
