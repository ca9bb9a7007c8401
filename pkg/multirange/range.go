package multirange

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/go-drift/interact/pkg/graphics"
)

// Range holds corrected slider bounds. Min <= Max and 0 < Step hold for
// every Range returned by NormalizeRange.
type Range struct {
	Min  float64
	Max  float64
	Step float64
}

// NormalizeRange corrects bounds: inverted bounds are swapped, a step larger
// than the span is clamped to the span, and a non-positive step becomes 1.
// Applying it to its own output returns the same Range.
func NormalizeRange(min, max, step float64) Range {
	if min > max {
		min, max = max, min
	}
	if step > max-min {
		step = max - min
	}
	if step <= 0 {
		step = 1
	}
	return Range{Min: min, Max: max, Step: step}
}

// Span returns Max - Min.
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Clamp limits v to [Min, Max].
func (r Range) Clamp(v float64) float64 {
	return math.Min(math.Max(v, r.Min), r.Max)
}

// Snap clamps out-of-range values to the nearest bound and rounds in-range
// values to the nearest grid point (halves round up), clamping again when
// rounding overshoots Max.
func (r Range) Snap(v float64) float64 {
	if v <= r.Min {
		return r.Min
	}
	if v >= r.Max {
		return r.Max
	}
	return r.Clamp(r.gridPoint((v - r.Min) / r.Step))
}

// Fraction maps v onto [0, 1] across the range. A zero-width range maps
// everything to 0.
func (r Range) Fraction(v float64) float64 {
	if r.Span() <= 0 {
		return 0
	}
	return (r.Clamp(v) - r.Min) / r.Span()
}

// gridPoint returns Min + Step*round(steps), trimmed of float noise.
func (r Range) gridPoint(steps float64) float64 {
	v := r.Min + r.Step*math.Floor(steps+0.5)
	return roundTo(v, max(decimals(r.Step), decimals(r.Min)))
}

// Normalize snaps every value into r and sorts the result ascending.
// Duplicates are kept.
func Normalize(values []float64, r Range) []float64 {
	out := make([]float64, len(values))
	for i, v := range values {
		out[i] = r.Snap(v)
	}
	sort.Float64s(out)
	return out
}

// PositionToValue snaps a pointer fraction of the track to the nearest
// step boundary.
func PositionToValue(fraction float64, r Range) float64 {
	return r.Clamp(r.gridPoint(fraction * r.Span() / r.Step))
}

// ClientXToFraction converts a client x coordinate into a fraction of the
// usable track, the track width less the thumb width, so the thumb stays
// inside the track at both ends. The thumb's center follows the pointer.
// It returns 0 when there is no usable length.
func ClientXToFraction(track, thumb graphics.Rect, clientX float64) float64 {
	return fractionAt(clientX-track.Left, track.Width(), thumb.Width())
}

func fractionAt(x, trackWidth, thumbWidth float64) float64 {
	usable := trackWidth - thumbWidth
	if usable <= 0 {
		return 0
	}
	f := (x - thumbWidth/2) / usable
	return math.Min(math.Max(f, 0), 1)
}

func decimals(v float64) int {
	s := strconv.FormatFloat(math.Abs(v), 'f', -1, 64)
	if i := strings.IndexByte(s, '.'); i >= 0 {
		return len(s) - i - 1
	}
	return 0
}

func roundTo(v float64, places int) float64 {
	if places > 12 {
		return v
	}
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
