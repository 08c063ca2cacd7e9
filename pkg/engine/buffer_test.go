package engine

import (
	"math"
	"testing"

	"gonum.org/v1/gonum/floats/scalar"
)

func TestBufferDilatesBox(t *testing.T) {
	g, err := Buffer(NewBox(10, 10, 30, 30), 5, 8)
	if err != nil {
		t.Fatalf("Buffer: %v", err)
	}

	minX, minY, maxX, maxY := g.Bounds()
	if !scalar.EqualWithinAbs(minX, 5, 1e-9) || !scalar.EqualWithinAbs(minY, 5, 1e-9) ||
		!scalar.EqualWithinAbs(maxX, 35, 1e-9) || !scalar.EqualWithinAbs(maxY, 35, 1e-9) {
		t.Errorf("Bounds() = (%v,%v,%v,%v), want (5,5,35,35)", minX, minY, maxX, maxY)
	}

	// Box + edge strips + rounded corners: 400 + 4*100 + ~pi*25.
	want := 400 + 400 + math.Pi*25
	if got := g.Area(); math.Abs(got-want) > 2 {
		t.Errorf("Area() = %v, want ~%v", got, want)
	}
}

func TestBufferErodesBox(t *testing.T) {
	g, err := Buffer(NewBox(10, 10, 30, 30), -5, 8)
	if err != nil {
		t.Fatalf("Buffer: %v", err)
	}
	// Erosion of a box keeps square corners: exactly the inner box remains.
	if got := g.Area(); !scalar.EqualWithinAbs(got, 100, 1e-6) {
		t.Errorf("Area() = %v, want 100", got)
	}
	if !g.ContainsPoint(20, 20) {
		t.Error("ContainsPoint(20, 20) = false, want true")
	}
	if g.ContainsPoint(12, 20) {
		t.Error("ContainsPoint(12, 20) = true, want false (eroded away)")
	}
}

func TestBufferErodesToNothing(t *testing.T) {
	g, err := Buffer(NewBox(0, 0, 10, 10), -20, 8)
	if err != nil {
		t.Fatalf("Buffer: %v", err)
	}
	if !g.IsEmpty() {
		t.Errorf("over-eroded box is not empty, area = %v", g.Area())
	}
}

func TestBufferPoint(t *testing.T) {
	t.Run("dilates to disc", func(t *testing.T) {
		g, err := Buffer(NewPoint(50, 50), 10, 16)
		if err != nil {
			t.Fatalf("Buffer: %v", err)
		}
		want := math.Pi * 100
		if got := g.Area(); math.Abs(got-want) > 2 {
			t.Errorf("Area() = %v, want ~%v", got, want)
		}
	})
	t.Run("erodes to empty", func(t *testing.T) {
		g, err := Buffer(NewPoint(50, 50), -10, 16)
		if err != nil {
			t.Fatalf("Buffer: %v", err)
		}
		if !g.IsEmpty() {
			t.Error("eroded point is not empty")
		}
	})
}

func TestBufferZeroDistance(t *testing.T) {
	box := NewBox(0, 0, 10, 10)
	g, err := Buffer(box, 0, 16)
	if err != nil {
		t.Fatalf("Buffer: %v", err)
	}
	if got := g.Area(); got != 100 {
		t.Errorf("Area() = %v, want 100 (unchanged)", got)
	}
}

func TestBufferEmpty(t *testing.T) {
	g, err := Buffer(Empty(), 10, 16)
	if err != nil {
		t.Fatalf("Buffer: %v", err)
	}
	if !g.IsEmpty() {
		t.Error("buffered empty is not empty")
	}
}
