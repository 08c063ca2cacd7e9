package shape

import "fmt"

// ConstructionError reports defining data that cannot form a valid shape,
// such as a polygon with fewer than three vertices.
type ConstructionError struct {
	Reason string
}

func (e *ConstructionError) Error() string {
	return "shape construction: " + e.Reason
}

// UnsupportedDistributionError reports a RandomPoint call naming a sampling
// distribution the shape cannot produce.
type UnsupportedDistributionError struct {
	Name string
}

func (e *UnsupportedDistributionError) Error() string {
	return fmt.Sprintf("unsupported distribution %q", e.Name)
}
