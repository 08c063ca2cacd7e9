package engine

import "fmt"

// GeometryError reports an operation the clipping engine could not carry out,
// typically because the input geometry is degenerate or self-intersecting in
// a way the clipper cannot validate. It is always returned, never panicked.
type GeometryError struct {
	Op  string // the engine operation that failed
	Err error
}

func (e *GeometryError) Error() string {
	return fmt.Sprintf("geometry %s: %v", e.Op, e.Err)
}

func (e *GeometryError) Unwrap() error { return e.Err }

// errGeometry builds a GeometryError with a formatted cause.
func errGeometry(op, format string, args ...any) *GeometryError {
	return &GeometryError{Op: op, Err: fmt.Errorf(format, args...)}
}
