package engine

import (
	"fmt"
	"slices"

	polyclip "github.com/ctessum/polyclip-go"
)

// Op identifies a boolean set operation.
type Op int

const (
	OpUnion Op = iota
	OpIntersection
	OpDifference
	OpSymmetricDifference
)

func (op Op) String() string {
	switch op {
	case OpUnion:
		return "union"
	case OpIntersection:
		return "intersection"
	case OpDifference:
		return "difference"
	case OpSymmetricDifference:
		return "symmetric difference"
	}
	return fmt.Sprintf("op(%d)", int(op))
}

// clipOp maps an Op to the clipper's operation constant.
func (op Op) clipOp() polyclip.Op {
	switch op {
	case OpIntersection:
		return polyclip.INTERSECTION
	case OpDifference:
		return polyclip.DIFFERENCE
	case OpSymmetricDifference:
		return polyclip.XOR
	default:
		return polyclip.UNION
	}
}

// Combine performs a boolean set operation on two geometries.
//
// Bare points carry no area and are treated as empty operands. Empty
// operands follow the usual identities: union and symmetric difference
// return the other side, intersection returns empty, difference returns
// the subject.
func Combine(a Geometry, op Op, b Geometry) (Geometry, error) {
	if a.kind == kindPoint {
		a = Empty()
	}
	if b.kind == kindPoint {
		b = Empty()
	}

	switch {
	case a.IsEmpty() && b.IsEmpty():
		return Empty(), nil
	case a.IsEmpty():
		if op == OpUnion || op == OpSymmetricDifference {
			return b, nil
		}
		return Empty(), nil
	case b.IsEmpty():
		if op == OpIntersection {
			return Empty(), nil
		}
		return a, nil
	}

	res, err := construct(a.poly, op, b.poly)
	if err != nil {
		return Empty(), err
	}
	return polygonGeometry(res), nil
}

// construct invokes the clipper, converting any panic on pathological input
// into a GeometryError so callers can recover at the call site.
func construct(subject polyclip.Polygon, op Op, clip polyclip.Polygon) (res polyclip.Polygon, err error) {
	defer func() {
		if r := recover(); r != nil {
			res, err = nil, errGeometry(op.String(), "clipper rejected input: %v", r)
		}
	}()
	res = normalizeWinding(subject.Construct(op.clipOp(), clip))
	return res, nil
}

// normalizeWinding reorients every ring counter-clockwise. The clipper emits
// clockwise rings, and a clockwise subject makes a later Construct call come
// back empty, so every result is reoriented before it can be reused as an
// operand.
func normalizeWinding(p polyclip.Polygon) polyclip.Polygon {
	for _, c := range p {
		if ringArea(c) < 0 {
			slices.Reverse(c)
		}
	}
	return p
}
