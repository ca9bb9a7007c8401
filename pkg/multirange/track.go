package multirange

import "fmt"

// ActiveTrack is the highlighted segment between the lowest and highest
// value, in percent of the track.
type ActiveTrack struct {
	Visible bool
	Left    float64
	Width   float64
}

// ComputeActiveTrack returns the envelope of values. It is hidden when fewer
// than two values exist or the range has zero width. values must be sorted.
func ComputeActiveTrack(values []float64, r Range) ActiveTrack {
	if len(values) < 2 || r.Min == r.Max {
		return ActiveTrack{}
	}
	lo := r.Fraction(values[0]) * 100
	hi := r.Fraction(values[len(values)-1]) * 100
	return ActiveTrack{Visible: true, Left: lo, Width: hi - lo}
}

// CSS returns the segment as left/width percentages.
func (t ActiveTrack) CSS() (left, width string) {
	if !t.Visible {
		return "0%", "0%"
	}
	return fmt.Sprintf("%g%%", t.Left), fmt.Sprintf("%g%%", t.Width)
}
