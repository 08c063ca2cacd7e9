package shape

import "github.com/tkrell/hitbox/pkg/engine"

// The set operations delegate to the engine and reclassify the result into
// the most specific variant. Null operands are handled by identity laws
// before the engine is involved: union and symmetric difference return the
// other operand unchanged, intersection returns Null, and difference returns
// Null when the left operand is Null and the left operand when the right is.

// Union returns the set union of a and b.
func Union(a, b Shape) (Shape, error) {
	return combine(a, engine.OpUnion, b)
}

// Intersection returns the set intersection of a and b.
func Intersection(a, b Shape) (Shape, error) {
	return combine(a, engine.OpIntersection, b)
}

// Difference returns the part of a not covered by b.
func Difference(a, b Shape) (Shape, error) {
	return combine(a, engine.OpDifference, b)
}

// SymmetricDifference returns the parts of a and b not shared by both.
func SymmetricDifference(a, b Shape) (Shape, error) {
	return combine(a, engine.OpSymmetricDifference, b)
}

func combine(a Shape, op engine.Op, b Shape) (Shape, error) {
	if isNull(a) {
		if op == engine.OpUnion || op == engine.OpSymmetricDifference {
			return b, nil
		}
		return Null{}, nil
	}
	if isNull(b) {
		if op == engine.OpIntersection {
			return Null{}, nil
		}
		return a, nil
	}

	ga, err := a.geometry()
	if err != nil {
		return Null{}, err
	}
	gb, err := b.geometry()
	if err != nil {
		return Null{}, err
	}
	res, err := engine.Combine(ga, op, gb)
	if err != nil {
		return Null{}, err
	}
	return classify(res), nil
}

// Buffer grows (positive distance) or shrinks (negative distance) s.
// resolution controls the polygonal approximation of rounded corners in
// segments per quarter circle; values below 1 default to 16. Null buffers to
// Null regardless of distance.
func Buffer(s Shape, distance float64, resolution int) (Shape, error) {
	if isNull(s) {
		return Null{}, nil
	}
	return transform(s, func(g engine.Geometry) (engine.Geometry, error) {
		return engine.Buffer(g, distance, resolution)
	})
}

// ConvexHull returns the convex hull of s.
func ConvexHull(s Shape) (Shape, error) {
	if isNull(s) {
		return Null{}, nil
	}
	return transform(s, engine.ConvexHull)
}

// Simplify reduces the vertex count of s, keeping every remaining vertex
// within tolerance of the original outline. With preserveTopology set, a
// ring that would collapse below three vertices is kept unchanged instead of
// being dropped.
func Simplify(s Shape, tolerance float64, preserveTopology bool) (Shape, error) {
	if isNull(s) {
		return Null{}, nil
	}
	return transform(s, func(g engine.Geometry) (engine.Geometry, error) {
		return engine.Simplify(g, tolerance, preserveTopology)
	})
}

// MinimumRotatedRectangle returns the smallest-area rectangle, at any
// orientation, containing s. The result reclassifies as a Rect only when the
// optimal orientation happens to be axis-aligned; otherwise it is a Quad.
func MinimumRotatedRectangle(s Shape) (Shape, error) {
	if isNull(s) {
		return Null{}, nil
	}
	return transform(s, engine.MinimumRotatedRectangle)
}

// Envelope returns the minimal axis-aligned bounding Rect of s, derived from
// Bounds with the extents truncated to integers. Null envelopes to the
// degenerate Rect at the origin.
func Envelope(s Shape) *Rect {
	minX, minY, maxX, maxY := s.Bounds()
	return NewRect(int(minX), int(minY), int(maxX), int(maxY))
}

func transform(s Shape, f func(engine.Geometry) (engine.Geometry, error)) (Shape, error) {
	g, err := s.geometry()
	if err != nil {
		return Null{}, err
	}
	res, err := f(g)
	if err != nil {
		return Null{}, err
	}
	return classify(res), nil
}
