package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/interact/pkg/focus"
	"github.com/go-drift/interact/pkg/gestures"
	"github.com/go-drift/interact/pkg/graphics"
)

// mouseID is the pointer id used for the terminal mouse.
const mouseID int64 = 1

// convertKey maps a tcell key event to a widget key.
func convertKey(ev *tcell.EventKey) focus.Key {
	switch ev.Key() {
	case tcell.KeyUp:
		return focus.KeyUp
	case tcell.KeyDown:
		return focus.KeyDown
	case tcell.KeyLeft:
		return focus.KeyLeft
	case tcell.KeyRight:
		return focus.KeyRight
	case tcell.KeyHome:
		return focus.KeyHome
	case tcell.KeyEnd:
		return focus.KeyEnd
	case tcell.KeyPgUp:
		return focus.KeyPageUp
	case tcell.KeyPgDn:
		return focus.KeyPageDown
	case tcell.KeyEnter:
		return focus.KeyEnter
	case tcell.KeyTab, tcell.KeyBacktab:
		return focus.KeyTab
	case tcell.KeyEscape:
		return focus.KeyEscape
	case tcell.KeyRune:
		if ev.Rune() == ' ' {
			return focus.KeySpace
		}
	}
	return focus.KeyUnknown
}

// mouseTracker turns tcell's button-state mouse events into pointer
// phases: a button appearing is a press, staying down is a move, and
// disappearing is a release.
type mouseTracker struct {
	down bool
	last graphics.Offset
}

// convert returns the pointer event for ev. ok is false for motion with no
// button held.
func (m *mouseTracker) convert(ev *tcell.EventMouse) (event gestures.PointerEvent, ok bool) {
	x, y := ev.Position()
	// Cell centers, so a one-cell thumb under the pointer lines up.
	pos := graphics.Offset{X: float64(x) + 0.5, Y: float64(y) + 0.5}
	pressed := ev.Buttons()&tcell.Button1 != 0

	event = gestures.PointerEvent{PointerID: mouseID, Position: pos, Delta: pos.Sub(m.last)}
	switch {
	case pressed && !m.down:
		event.Phase = gestures.PointerPhaseDown
		event.Delta = graphics.Offset{}
	case pressed:
		event.Phase = gestures.PointerPhaseMove
	case m.down:
		event.Phase = gestures.PointerPhaseUp
	default:
		return event, false
	}
	m.down = pressed
	m.last = pos
	return event, true
}
