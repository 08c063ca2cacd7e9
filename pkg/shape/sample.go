package shape

import "math/rand/v2"

// maxRejectionAttempts bounds the generic sampler so shapes with near-zero
// area relative to their bounding box still terminate.
const maxRejectionAttempts = 1000

// rejectionSample draws integer points uniformly from the bounding box until
// one lands inside the shape. After maxRejectionAttempts misses it falls
// back to the center.
func rejectionSample(s Shape) Point {
	minXf, minYf, maxXf, maxYf := s.Bounds()
	minX, minY := int(minXf), int(minYf)
	maxX, maxY := int(maxXf), int(maxYf)
	for i := 0; i < maxRejectionAttempts; i++ {
		p := Pt(randRange(minX, maxX), randRange(minY, maxY))
		if s.Contains(p) {
			return p
		}
	}
	return s.Center()
}

// randRange returns a uniform int in [lo, hi], inclusive on both ends.
func randRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + rand.IntN(hi-lo+1)
}
