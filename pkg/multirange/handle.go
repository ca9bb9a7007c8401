package multirange

import (
	"math"

	"github.com/go-drift/interact/pkg/focus"
	"github.com/go-drift/interact/pkg/gestures"
	"github.com/go-drift/interact/pkg/graphics"
)

// Handle is the element representing one value. A handle travels with its
// value when sorting reorders the slots; its render id does not survive the
// next render.
type Handle struct {
	slider  *Slider
	id      int
	capture *gestures.PointerCapture
	node    focus.FocusNode

	pressed      bool
	trackDragged bool
	retired      bool

	// stopDrag ends a track press in progress.
	stopDrag func()
}

func newHandle(s *Slider) *Handle {
	h := &Handle{slider: s}
	h.capture = gestures.NewPointerCapture(s.router, h.HandlePointer)
	h.capture.OnLost = func(int64) { h.endDrag() }
	h.node = focus.FocusNode{CanRequestFocus: true, TabIndex: 0, DebugLabel: "multirange.Handle"}
	return h
}

// ID returns the id minted for this handle by the latest render.
func (h *Handle) ID() int {
	return h.id
}

// Slot returns the handle's index in the value sequence, or -1 once the
// handle has been removed.
func (h *Handle) Slot() int {
	return h.slider.slotOf(h)
}

// Value returns the handle's current value.
func (h *Handle) Value() float64 {
	if slot := h.Slot(); slot >= 0 {
		return h.slider.values[slot]
	}
	return math.NaN()
}

// Pressed reports whether a pointer is dragging this handle, either through
// capture or a track press.
func (h *Handle) Pressed() bool {
	return h.pressed || h.trackDragged
}

// Capture returns the handle's pointer capture.
func (h *Handle) Capture() *gestures.PointerCapture {
	return h.capture
}

// FocusNode returns the handle's focus node.
func (h *Handle) FocusNode() *focus.FocusNode {
	return &h.node
}

// Focus moves keyboard focus to the handle.
func (h *Handle) Focus() bool {
	if h.retired {
		return false
	}
	return h.slider.focus.RequestFocus(&h.node)
}

// HandlePointer runs the press state machine:
// idle, pressed (pointer captured), dragging (captured pointer moves), idle
// again on release or cancel. Events for pointers this handle has not
// captured are ignored.
func (h *Handle) HandlePointer(event gestures.PointerEvent) {
	s := h.slider
	switch event.Phase {
	case gestures.PointerPhaseDown:
		if s.disabled || h.retired || h.capture.Has(event.PointerID) {
			return
		}
		h.endDrag()
		h.capture.Set(event.PointerID)
		h.pressed = true
		h.Focus()
	case gestures.PointerPhaseMove:
		if h.trackDragged || !h.capture.Has(event.PointerID) {
			return
		}
		h.dragTo(event.Position.X)
	case gestures.PointerPhaseUp, gestures.PointerPhaseCancel:
		if h.trackDragged || !h.capture.Has(event.PointerID) {
			return
		}
		h.capture.Release()
		h.pressed = false
		s.render()
		s.emitChange()
	}
}

func (h *Handle) dragTo(clientX float64) {
	s := h.slider
	thumb := s.layout.ThumbSize()
	f := ClientXToFraction(s.layout.TrackBounds(), graphics.RectFromLTWH(0, 0, thumb.Width, thumb.Height), clientX)
	h.moveTo(PositionToValue(f, s.rng))
}

func (h *Handle) moveTo(v float64) {
	s := h.slider
	if s.setSlot(h.Slot(), v) {
		s.render()
		s.emitInput()
	}
}

// HandleKey steps the handle's value: arrows move one step, page keys ten
// steps, Home and End jump to the bounds. A key that changes the value
// commits immediately and is reported as handled.
func (h *Handle) HandleKey(event focus.KeyEvent) focus.KeyEventResult {
	s := h.slider
	slot := h.Slot()
	if s.disabled || slot < 0 {
		return focus.KeyEventIgnored
	}
	v := s.values[slot]
	r := s.rng
	switch event.Key {
	case focus.KeyRight, focus.KeyUp:
		v += r.Step
	case focus.KeyLeft, focus.KeyDown:
		v -= r.Step
	case focus.KeyPageUp:
		v += 10 * r.Step
	case focus.KeyPageDown:
		v -= 10 * r.Step
	case focus.KeyHome:
		v = r.Min
	case focus.KeyEnd:
		v = r.Max
	default:
		return focus.KeyEventIgnored
	}
	if !s.setSlot(slot, r.Snap(v)) {
		return focus.KeyEventIgnored
	}
	s.render()
	s.emitInput()
	s.emitChange()
	return focus.KeyEventHandled
}

// endDrag drops any pointer interaction without committing.
func (h *Handle) endDrag() {
	h.capture.Release()
	h.pressed = false
	if h.stopDrag != nil {
		h.trackDragged = false
		h.stopDrag()
	}
}

func (h *Handle) retire() {
	h.endDrag()
	h.slider.focus.Unfocus(&h.node)
	h.retired = true
}
