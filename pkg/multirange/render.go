package multirange

import (
	"fmt"
	"math"

	"github.com/go-drift/interact/pkg/gestures"
	"github.com/go-drift/interact/pkg/semantics"
)

// renderTable maps the ids minted by one render to handles. Ids count up
// from zero and the table is rebuilt on every render, so an id from an
// earlier render never resolves to a handle that has since moved slots.
type renderTable struct {
	handles []*Handle
}

func (s *Slider) render() {
	t := &renderTable{handles: make([]*Handle, 0, len(s.handles))}
	for _, h := range s.handles {
		h.id = len(t.handles)
		t.handles = append(t.handles, h)
	}
	s.frame = t
}

// HandleByID resolves an id from the latest render.
func (s *Slider) HandleByID(id int) *Handle {
	if s.frame == nil || id < 0 || id >= len(s.frame.handles) {
		return nil
	}
	return s.frame.handles[id]
}

// HandleView is the render-ready state of one handle.
type HandleView struct {
	ID    int
	Slot  int
	Value float64
	// Percent is the value's position along the track.
	Percent float64
	// ThumbOffset is subtracted from Percent so the thumb stays inside the
	// track: left = Percent% - ThumbOffset px.
	ThumbOffset float64
	ValueText   string
	Pressed     bool
	Focused     bool
	Semantics   semantics.Properties
}

// CSSLeft returns the handle's left offset as a CSS calc expression.
func (v HandleView) CSSLeft() string {
	return fmt.Sprintf("calc(%g%% - %gpx)", v.Percent, v.ThumbOffset)
}

// Frame is everything the render layer needs to draw the slider.
type Frame struct {
	Handles  []HandleView
	Track    ActiveTrack
	Disabled bool
}

// Render mints fresh handle ids and returns the frame to draw. The
// formatter runs once per handle.
func (s *Slider) Render() Frame {
	s.render()
	thumb := s.layout.ThumbSize().Width
	frame := Frame{
		Handles:  make([]HandleView, 0, len(s.frame.handles)),
		Track:    ComputeActiveTrack(s.values, s.rng),
		Disabled: s.disabled,
	}
	for id, h := range s.frame.handles {
		slot := h.Slot()
		v := s.values[slot]
		f := s.rng.Fraction(v)
		text := s.formatValue(v)
		frame.Handles = append(frame.Handles, HandleView{
			ID:          id,
			Slot:        slot,
			Value:       v,
			Percent:     f * 100,
			ThumbOffset: thumb * f,
			ValueText:   text,
			Pressed:     h.Pressed(),
			Focused:     h.node.HasFocus(),
			Semantics:   s.handleSemantics(slot, v, text),
		})
	}
	return frame
}

func (s *Slider) handleSemantics(slot int, v float64, text string) semantics.Properties {
	label := fmt.Sprintf("%d of %d", slot+1, len(s.values))
	if s.label != "" {
		label = s.label + " " + label
	}
	tabIndex := 0
	if s.disabled {
		tabIndex = -1
	}
	return semantics.Properties{
		Role:     semantics.RoleSlider,
		Label:    label,
		Flags:    semantics.SemanticsIsFocusable.SetTo(semantics.SemanticsIsDisabled, s.disabled),
		TabIndex: tabIndex,
		Range:    &semantics.RangeValue{Min: s.rng.Min, Max: s.rng.Max, Now: v, Text: text},
	}
}

// PressTrack handles a press on the track outside any handle. The handle
// nearest the pressed value (the lower one on a tie) jumps there, takes
// focus and captures the pointer, then follows it until release, which
// commits. Other pointers do not affect the press.
func (s *Slider) PressTrack(event gestures.PointerEvent) bool {
	if s.disabled || len(s.handles) == 0 || event.Phase != gestures.PointerPhaseDown {
		return false
	}
	track := s.layout.TrackBounds()
	thumb := s.layout.ThumbSize().Width
	target := PositionToValue(fractionAt(event.Position.X-track.Left, track.Width(), thumb), s.rng)

	nearest := 0
	for i, v := range s.values {
		if math.Abs(v-target) < math.Abs(s.values[nearest]-target) {
			nearest = i
		}
	}
	h := s.handles[nearest]
	h.endDrag()
	h.capture.Set(event.PointerID)
	h.trackDragged = true
	h.Focus()

	h.stopDrag = gestures.TrackDrag(s.router, gestures.BoxFunc(s.layout.TrackBounds), func(x, _ float64) {
		if h.retired || !h.capture.Has(event.PointerID) {
			return
		}
		width := s.layout.TrackBounds().Width()
		h.moveTo(PositionToValue(fractionAt(x, width, thumb), s.rng))
	}, gestures.DragOptions{
		InitialEvent: &event,
		OnStop: func() {
			commit := h.trackDragged
			h.trackDragged = false
			h.stopDrag = nil
			h.capture.Release()
			if commit {
				s.render()
				s.emitChange()
			}
		},
	})
	return true
}
