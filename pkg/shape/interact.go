package shape

import (
	"time"

	"github.com/tkrell/hitbox/pkg/input"
)

// DefaultMoveDuration is how long pointer motion takes when the caller does
// not say otherwise.
const DefaultMoveDuration = 200 * time.Millisecond

// ClickOptions configures Click. The zero value clicks the left button at a
// random interior point with the default motion duration.
type ClickOptions struct {
	Button   input.Button
	Duration time.Duration

	// AtCenter targets the shape's center instead of a random interior point.
	AtCenter bool
}

// HoverOptions configures Hover. The zero value hovers a random interior
// point with the default motion duration.
type HoverOptions struct {
	Duration time.Duration
	AtCenter bool
}

// Click moves the pointer into s and clicks. Clicking a Null shape is a
// no-op: the injector is never called.
func Click(s Shape, in input.Injector, opts ClickOptions) {
	if isNull(s) {
		return
	}
	p := pickPoint(s, opts.AtCenter)
	in.MoveTo(p.X, p.Y, durationOrDefault(opts.Duration))
	in.Click(opts.Button)
}

// RightClick is Click with the right button.
func RightClick(s Shape, in input.Injector, opts ClickOptions) {
	opts.Button = input.ButtonRight
	Click(s, in, opts)
}

// Hover moves the pointer into s without clicking. Hovering a Null shape is
// a no-op.
func Hover(s Shape, in input.Injector, opts HoverOptions) {
	if isNull(s) {
		return
	}
	p := pickPoint(s, opts.AtCenter)
	in.MoveTo(p.X, p.Y, durationOrDefault(opts.Duration))
}

func pickPoint(s Shape, atCenter bool) Point {
	if atCenter {
		return s.Center()
	}
	p, err := s.RandomPoint(Uniform)
	if err != nil {
		return s.Center()
	}
	return p
}

func durationOrDefault(d time.Duration) time.Duration {
	if d <= 0 {
		return DefaultMoveDuration
	}
	return d
}
