// Package multirange implements the interaction logic of a range slider
// with any number of handles.
//
// A [Slider] owns an ascending sequence of values. Every value lies in
// [min, max]; values inside the range sit on the step grid measured from
// min. Handles are dragged with a captured pointer or moved with the
// keyboard, and the slider reports two kinds of notification:
//
//   - OnInput fires whenever an interaction changes the values, possibly
//     many times per drag.
//   - OnChange fires once when an interaction commits: on pointer release
//     (even a release without movement) and on every keyboard step.
//
// Typical wiring:
//
//	slider := multirange.New(multirange.Config{
//	    Min: 0, Max: 100, Step: 5,
//	    Value:  []float64{20, 80},
//	    Layout: multirange.FixedLayout{Track: track, Thumb: graphics.Size{Width: 16, Height: 16}},
//	    Router: router,
//	    OnChange: func(v []float64) { save(v) },
//	})
//	frame := slider.Render()
//	for _, h := range frame.Handles {
//	    draw(h.ID, h.Percent, h.ThumbOffset, h.ValueText)
//	}
//
// Host pointer-down and key events for a handle are delivered with
// [Handle.HandlePointer] and [Handle.HandleKey]; the handle is looked up
// from the id it was rendered with via [Slider.HandleByID]. Subsequent moves
// of a captured pointer arrive through the [gestures.PointerRouter].
package multirange
