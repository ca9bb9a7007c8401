// Package gestures delivers pointer events to widgets and tracks drags.
//
// Events are routed the way a browser document routes them: a pointer that
// has been captured is delivered to its [PointerCapture] first, then every
// document-level listener registered on the [PointerRouter] sees it. Widgets
// use document-level listeners so a drag keeps working after the pointer
// leaves their bounds.
package gestures

import "github.com/go-drift/interact/pkg/graphics"

// PointerPhase describes where a pointer event sits in a press sequence.
type PointerPhase int

const (
	// PointerPhaseNone is the zero phase; such events are ignored.
	PointerPhaseNone PointerPhase = iota
	// PointerPhaseDown is a press.
	PointerPhaseDown
	// PointerPhaseMove is motion, pressed or hovering.
	PointerPhaseMove
	// PointerPhaseUp is a release.
	PointerPhaseUp
	// PointerPhaseCancel is an aborted press (the platform took the pointer).
	PointerPhaseCancel
)

func (p PointerPhase) String() string {
	switch p {
	case PointerPhaseDown:
		return "down"
	case PointerPhaseMove:
		return "move"
	case PointerPhaseUp:
		return "up"
	case PointerPhaseCancel:
		return "cancel"
	default:
		return "none"
	}
}

// Ends reports whether the phase terminates a press.
func (p PointerPhase) Ends() bool {
	return p == PointerPhaseUp || p == PointerPhaseCancel
}

// PointerEvent is a single pointer sample.
type PointerEvent struct {
	// PointerID identifies the pointer across a press sequence.
	PointerID int64
	// Position is the pointer location in viewport (client) coordinates.
	Position graphics.Offset
	// Delta is the motion since the previous event for this pointer.
	Delta graphics.Offset
	// Phase is the event kind.
	Phase PointerPhase
}

// Box is anything with on-screen bounds in client coordinates.
type Box interface {
	Bounds() graphics.Rect
}

// BoxFunc adapts a function to the Box interface.
type BoxFunc func() graphics.Rect

// Bounds returns f().
func (f BoxFunc) Bounds() graphics.Rect {
	return f()
}

// FixedBox is a Box whose bounds never change.
type FixedBox graphics.Rect

// Bounds returns the fixed rectangle.
func (b FixedBox) Bounds() graphics.Rect {
	return graphics.Rect(b)
}
