// Package input defines the input-injection collaborator consumed by the
// shape algebra's interactive helpers. The interface is deliberately
// fire-and-forget: implementations report nothing beyond completion, and
// callers needing retries or timeouts must wrap them.
package input

import "time"

// Button identifies a mouse button.
type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

func (b Button) String() string {
	switch b {
	case ButtonRight:
		return "right"
	case ButtonMiddle:
		return "middle"
	default:
		return "left"
	}
}

// Injector performs mouse input. Implementations block until the motion or
// click completes and offer no feedback.
type Injector interface {
	// MoveTo moves the pointer to (x, y), taking roughly duration to arrive.
	MoveTo(x, y int, duration time.Duration)

	// Click presses and releases the given button at the current position.
	Click(button Button)
}

// Event is one recorded injector call.
type Event struct {
	Kind     string // "move" or "click"
	X, Y     int
	Button   Button
	Duration time.Duration
}

// Recorder is an Injector that records calls instead of performing them.
// Useful in tests and dry runs.
type Recorder struct {
	Events []Event
}

func (r *Recorder) MoveTo(x, y int, duration time.Duration) {
	r.Events = append(r.Events, Event{Kind: "move", X: x, Y: y, Duration: duration})
}

func (r *Recorder) Click(button Button) {
	r.Events = append(r.Events, Event{Kind: "click", Button: button})
}
