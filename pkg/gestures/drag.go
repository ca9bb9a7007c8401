package gestures

import "github.com/go-drift/interact/pkg/errors"

// DragOptions configures TrackDrag.
type DragOptions struct {
	// InitialEvent, when set, is reported as the first sample before any
	// listener is attached, so a press can double as the drag start. The
	// drag then follows only that event's pointer.
	InitialEvent *PointerEvent
	// OnStop is called once when the drag ends.
	OnStop func()
}

// TrackDrag reports container-relative pointer positions until the pointer
// is released. Listeners go on the router rather than the container so the
// drag continues outside the container's bounds. Both listeners are removed
// together when the press ends; the returned function ends the drag early.
//
// Positions use the container's top-left corner as origin and account for
// the router's page scroll offset.
func TrackDrag(router *PointerRouter, container Box, onMove func(x, y float64), opts DragOptions) (stop func()) {
	report := func(event PointerEvent) {
		bounds := container.Bounds()
		page := router.PagePosition(event.Position)
		origin := router.PagePosition(bounds.TopLeft())
		if onMove != nil {
			errors.Guard("gestures.TrackDrag", func() {
				onMove(page.X-origin.X, page.Y-origin.Y)
			})
		}
	}

	follows := func(PointerEvent) bool { return true }
	if opts.InitialEvent != nil {
		id := opts.InitialEvent.PointerID
		follows = func(event PointerEvent) bool { return event.PointerID == id }
		report(*opts.InitialEvent)
	}

	var removeMove, removeUp func()
	stopped := false
	stop = func() {
		if stopped {
			return
		}
		stopped = true
		removeMove()
		removeUp()
		if opts.OnStop != nil {
			errors.Guard("gestures.TrackDrag.OnStop", opts.OnStop)
		}
	}

	removeMove = router.Listen(func(event PointerEvent) {
		if event.Phase == PointerPhaseMove && follows(event) {
			report(event)
		}
	})
	removeUp = router.Listen(func(event PointerEvent) {
		if event.Phase.Ends() && follows(event) {
			stop()
		}
	})
	return stop
}
