package testing

import (
	"github.com/go-drift/interact/pkg/focus"
	"github.com/go-drift/interact/pkg/gestures"
	"github.com/go-drift/interact/pkg/graphics"
)

// pointerState tracks the last position of a simulated pointer.
type pointerState struct {
	position graphics.Offset
}

// PointerSimulator replays pointer sequences through a router the way a
// browser dispatches them: the press goes to its target element, then
// every event goes through the document.
type PointerSimulator struct {
	Router *gestures.PointerRouter

	pointers map[int64]*pointerState
	nextID   int64
}

// NewPointerSimulator creates a simulator on router.
func NewPointerSimulator(router *gestures.PointerRouter) *PointerSimulator {
	return &PointerSimulator{Router: router, pointers: make(map[int64]*pointerState)}
}

// allocPointerID returns a fresh pointer id so sequences never collide.
func (s *PointerSimulator) allocPointerID() int64 {
	s.nextID++
	return s.nextID
}

// Press sends a pointer-down at pos to target (if non-nil) and the router,
// returning the new pointer's id.
func (s *PointerSimulator) Press(target gestures.PointerHandler, pos graphics.Offset) int64 {
	id := s.allocPointerID()
	s.PressWithID(target, pos, id)
	return id
}

// PressWithID is Press with a caller-chosen pointer id.
func (s *PointerSimulator) PressWithID(target gestures.PointerHandler, pos graphics.Offset, id int64) {
	s.pointers[id] = &pointerState{position: pos}
	event := gestures.PointerEvent{PointerID: id, Position: pos, Phase: gestures.PointerPhaseDown}
	if target != nil {
		target(event)
	}
	s.Router.Dispatch(event)
}

// Move sends a pointer-move for id to pos.
func (s *PointerSimulator) Move(id int64, pos graphics.Offset) {
	s.Router.Dispatch(s.event(id, pos, gestures.PointerPhaseMove))
}

// Release sends a pointer-up for id at pos.
func (s *PointerSimulator) Release(id int64, pos graphics.Offset) {
	s.Router.Dispatch(s.event(id, pos, gestures.PointerPhaseUp))
	delete(s.pointers, id)
}

// Cancel sends a pointer-cancel for id at its last position.
func (s *PointerSimulator) Cancel(id int64) {
	pos := graphics.Offset{}
	if state := s.pointers[id]; state != nil {
		pos = state.position
	}
	s.Router.Dispatch(s.event(id, pos, gestures.PointerPhaseCancel))
	delete(s.pointers, id)
}

// Drag presses target at start, moves to end in steps equal increments and
// releases there.
func (s *PointerSimulator) Drag(target gestures.PointerHandler, start, end graphics.Offset, steps int) int64 {
	if steps < 1 {
		steps = 1
	}
	id := s.Press(target, start)
	for i := 1; i <= steps; i++ {
		frac := float64(i) / float64(steps)
		s.Move(id, graphics.Offset{
			X: start.X + (end.X-start.X)*frac,
			Y: start.Y + (end.Y-start.Y)*frac,
		})
	}
	s.Release(id, end)
	return id
}

// Tap presses and releases target at pos without moving.
func (s *PointerSimulator) Tap(target gestures.PointerHandler, pos graphics.Offset) int64 {
	id := s.Press(target, pos)
	s.Release(id, pos)
	return id
}

func (s *PointerSimulator) event(id int64, pos graphics.Offset, phase gestures.PointerPhase) gestures.PointerEvent {
	delta := graphics.Offset{}
	if state := s.pointers[id]; state != nil {
		delta = pos.Sub(state.position)
		state.position = pos
	}
	return gestures.PointerEvent{PointerID: id, Position: pos, Delta: delta, Phase: phase}
}

// KeyHandler is anything that consumes key events.
type KeyHandler func(event focus.KeyEvent) focus.KeyEventResult

// PressKeys sends each key in order and returns the results.
func PressKeys(handler KeyHandler, keys ...focus.Key) []focus.KeyEventResult {
	results := make([]focus.KeyEventResult, 0, len(keys))
	for _, k := range keys {
		results = append(results, handler(focus.KeyEvent{Key: k}))
	}
	return results
}
