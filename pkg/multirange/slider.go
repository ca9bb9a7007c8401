package multirange

import (
	"fmt"
	"slices"
	"sort"
	"strconv"

	"github.com/go-drift/interact/pkg/errors"
	"github.com/go-drift/interact/pkg/focus"
	"github.com/go-drift/interact/pkg/gestures"
	"github.com/go-drift/interact/pkg/graphics"
)

// Layout supplies the on-screen geometry of a slider.
type Layout interface {
	// TrackBounds is the track rectangle in client coordinates.
	TrackBounds() graphics.Rect
	// ThumbSize is the size of one handle.
	ThumbSize() graphics.Size
}

// FixedLayout is a Layout with constant geometry.
type FixedLayout struct {
	Track graphics.Rect
	Thumb graphics.Size
}

// TrackBounds returns l.Track.
func (l FixedLayout) TrackBounds() graphics.Rect { return l.Track }

// ThumbSize returns l.Thumb.
func (l FixedLayout) ThumbSize() graphics.Size { return l.Thumb }

// Config describes a slider. Min, Max and Step are corrected rather than
// rejected, see NormalizeRange.
type Config struct {
	Min   float64
	Max   float64
	Step  float64
	Value []float64

	Disabled bool
	// Label names the slider in semantics and error reports.
	Label string

	// Formatter renders a value for display. Nil formats with strconv.
	Formatter func(value float64) string
	// OnInput is called for every interaction that changes the values.
	OnInput func(values []float64)
	// OnChange is called when an interaction commits.
	OnChange func(values []float64)

	Layout Layout
	// Router delivers captured pointer events. Nil creates a private router.
	Router *gestures.PointerRouter
	// Focus is the focus manager for handles. Nil uses the global manager.
	Focus *focus.FocusManager
}

// Slider is the multi-handle range engine. It is not safe for concurrent
// use; drive it from the UI thread.
type Slider struct {
	min, max, step float64
	disabled       bool
	label          string
	formatter      func(float64) string
	onInput        func([]float64)
	onChange       func([]float64)
	layout         Layout
	router         *gestures.PointerRouter
	focus          *focus.FocusManager

	rng     Range
	values  []float64
	handles []*Handle

	// external is set by SetValue and consumed by the next update pass.
	external bool

	frame *renderTable
}

// New creates a slider and runs the first update pass.
func New(cfg Config) *Slider {
	s := &Slider{
		min:       cfg.Min,
		max:       cfg.Max,
		step:      cfg.Step,
		disabled:  cfg.Disabled,
		label:     cfg.Label,
		formatter: cfg.Formatter,
		onInput:   cfg.OnInput,
		onChange:  cfg.OnChange,
		layout:    cfg.Layout,
		router:    cfg.Router,
		focus:     cfg.Focus,
	}
	if s.router == nil {
		s.router = gestures.NewPointerRouter()
	}
	if s.focus == nil {
		s.focus = focus.GetFocusManager()
	}
	if s.layout == nil {
		s.layout = FixedLayout{}
	}
	s.values = slices.Clone(cfg.Value)
	s.external = true
	s.Update()
	return s
}

// Range returns the corrected bounds.
func (s *Slider) Range() Range {
	return s.rng
}

// Values returns a copy of the current values, ascending.
func (s *Slider) Values() []float64 {
	return slices.Clone(s.values)
}

// Handles returns the handles in value order.
func (s *Slider) Handles() []*Handle {
	return slices.Clone(s.handles)
}

// Disabled reports whether input is ignored.
func (s *Slider) Disabled() bool {
	return s.disabled
}

// Router returns the router captured pointer events arrive through.
func (s *Slider) Router() *gestures.PointerRouter {
	return s.router
}

// SetRange changes the bounds and revalidates the values. Values moved by
// the new bounds are reported through OnChange.
func (s *Slider) SetRange(min, max, step float64) {
	s.min, s.max, s.step = min, max, step
	s.Update()
}

// SetValue assigns values from the host. The host already knows about this
// change, so normalizing them never fires OnChange.
func (s *Slider) SetValue(values []float64) {
	s.values = slices.Clone(values)
	s.external = true
	s.Update()
}

// SetDisabled enables or disables interaction. Disabling ends any drag.
func (s *Slider) SetDisabled(disabled bool) {
	s.disabled = disabled
	if disabled {
		for _, h := range s.handles {
			h.endDrag()
		}
	}
	s.Update()
}

// SetFormatter replaces the display formatter.
func (s *Slider) SetFormatter(fn func(float64) string) {
	s.formatter = fn
	s.Update()
}

// SetLayout replaces the geometry source.
func (s *Slider) SetLayout(l Layout) {
	if l == nil {
		l = FixedLayout{}
	}
	s.layout = l
}

// Update is the revalidation pass run after every configuration change:
// it corrects the bounds, normalizes the values and re-renders. OnChange
// fires when normalization altered the values, unless SetValue caused the
// difference.
func (s *Slider) Update() {
	s.rng = NormalizeRange(s.min, s.max, s.step)

	raw := s.values
	s.values = make([]float64, len(raw))
	for i, v := range raw {
		s.values[i] = s.rng.Snap(v)
	}
	s.reconcileHandles(len(s.values))
	s.sortSlots()

	external := s.external
	s.external = false
	if !slices.Equal(raw, s.values) && !external {
		s.emitChange()
	}
	s.render()
}

// reconcileHandles matches handles to slots by position, creating handles
// for new slots and retiring handles whose slot disappeared.
func (s *Slider) reconcileHandles(n int) {
	for len(s.handles) > n {
		last := s.handles[len(s.handles)-1]
		last.retire()
		s.handles = s.handles[:len(s.handles)-1]
	}
	for len(s.handles) < n {
		s.handles = append(s.handles, newHandle(s))
	}
}

// sortSlots orders values ascending and moves each handle with its value,
// so a handle that was pressed or focused keeps its pointer and focus when
// its value passes another handle's.
func (s *Slider) sortSlots() {
	idx := make([]int, len(s.values))
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return s.values[idx[a]] < s.values[idx[b]]
	})
	values := make([]float64, len(idx))
	handles := make([]*Handle, len(idx))
	for to, from := range idx {
		values[to] = s.values[from]
		handles[to] = s.handles[from]
	}
	s.values = values
	s.handles = handles
}

// setSlot replaces the value at slot, re-sorts, and reports whether the
// sorted values differ from before.
func (s *Slider) setSlot(slot int, v float64) bool {
	if slot < 0 || slot >= len(s.values) {
		return false
	}
	before := slices.Clone(s.values)
	s.values[slot] = v
	s.sortSlots()
	return !slices.Equal(before, s.values)
}

func (s *Slider) slotOf(h *Handle) int {
	return slices.Index(s.handles, h)
}

func (s *Slider) emitInput() {
	if s.onInput == nil {
		return
	}
	values := slices.Clone(s.values)
	errors.Guard("multirange.Slider.OnInput", func() { s.onInput(values) })
}

func (s *Slider) emitChange() {
	if s.onChange == nil {
		return
	}
	values := slices.Clone(s.values)
	errors.Guard("multirange.Slider.OnChange", func() { s.onChange(values) })
}

// formatValue runs the host formatter, falling back to strconv formatting
// when it panics.
func (s *Slider) formatValue(v float64) (text string) {
	if s.formatter == nil {
		return defaultFormat(v)
	}
	defer func() {
		if r := recover(); r != nil {
			errors.Report(&errors.InteractError{
				Op:         "multirange.Slider.Formatter",
				Kind:       errors.KindCallback,
				Widget:     s.label,
				Err:        fmt.Errorf("formatter panicked: %v", r),
				StackTrace: errors.CaptureStack(),
			})
			text = defaultFormat(v)
		}
	}()
	return s.formatter(v)
}

func defaultFormat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
