package scenario

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/interact/pkg/focus"
	"github.com/go-drift/interact/pkg/gestures"
	"github.com/go-drift/interact/pkg/graphics"
	"github.com/go-drift/interact/pkg/localization"
	"github.com/go-drift/interact/pkg/multirange"
	"github.com/go-drift/interact/pkg/tree"
)

// Result is the state after a replay plus every notification raised.
type Result struct {
	Widget  string       `yaml:"widget"`
	Slider  *SliderState `yaml:"slider,omitempty"`
	Tree    *TreeState   `yaml:"tree,omitempty"`
	Emitted []Emitted    `yaml:"emitted,omitempty"`
}

// SliderState is the final slider frame.
type SliderState struct {
	Values  []float64     `yaml:"values,flow"`
	Track   TrackState    `yaml:"track"`
	Handles []HandleState `yaml:"handles"`
}

// TrackState is the active track segment as CSS percentages.
type TrackState struct {
	Visible bool   `yaml:"visible"`
	Left    string `yaml:"left"`
	Width   string `yaml:"width"`
}

// HandleState is one rendered handle.
type HandleState struct {
	Value   float64 `yaml:"value"`
	Text    string  `yaml:"text"`
	Left    string  `yaml:"left"`
	Pressed bool    `yaml:"pressed,omitempty"`
	Focused bool    `yaml:"focused,omitempty"`
}

// TreeState is the final tree.
type TreeState struct {
	Selection string      `yaml:"selection"`
	Focused   string      `yaml:"focused,omitempty"`
	Items     []ItemState `yaml:"items"`
}

// ItemState is one item in document order.
type ItemState struct {
	Label         string `yaml:"label"`
	Level         int    `yaml:"level"`
	Selected      bool   `yaml:"selected,omitempty"`
	Indeterminate bool   `yaml:"indeterminate,omitempty"`
	Expanded      bool   `yaml:"expanded,omitempty"`
	Disabled      bool   `yaml:"disabled,omitempty"`
	Loading       bool   `yaml:"loading,omitempty"`
	TabIndex      int    `yaml:"tabindex"`
}

// Emitted is one notification raised during the replay.
type Emitted struct {
	Event  string    `yaml:"event"`
	Values []float64 `yaml:"values,flow,omitempty"`
	Items  []string  `yaml:"items,flow,omitempty"`
	Item   string    `yaml:"item,omitempty"`
}

// Run replays s and returns the resulting state.
func Run(s *Scenario) (*Result, error) {
	switch s.Widget {
	case WidgetSlider:
		return runSlider(s)
	case WidgetTree:
		return runTree(s)
	}
	return nil, scenarioError("scenario.Run", fmt.Errorf("unknown widget %q", s.Widget))
}

// Encode writes r as YAML.
func Encode(w io.Writer, r *Result) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return enc.Close()
}

func runSlider(s *Scenario) (*Result, error) {
	conf := s.Slider
	res := &Result{Widget: WidgetSlider}
	thumb := conf.ThumbSize
	width := conf.TrackWidth
	if width <= 0 {
		width = 100 + thumb
	}

	var formatter func(float64) string
	if conf.Format != "" {
		formatter = func(v float64) string { return fmt.Sprintf(conf.Format, v) }
	}
	router := gestures.NewPointerRouter()
	slider := multirange.New(multirange.Config{
		Min:       conf.Min,
		Max:       conf.Max,
		Step:      conf.Step,
		Value:     conf.Values,
		Disabled:  conf.Disabled,
		Label:     conf.Label,
		Formatter: formatter,
		Layout: multirange.FixedLayout{
			Track: graphics.RectFromLTWH(0, 0, width, thumb),
			Thumb: graphics.Size{Width: thumb, Height: thumb},
		},
		Router: router,
		Focus:  focus.NewFocusManager(),
		OnInput: func(v []float64) {
			res.Emitted = append(res.Emitted, Emitted{Event: "input", Values: v})
		},
		OnChange: func(v []float64) {
			res.Emitted = append(res.Emitted, Emitted{Event: "change", Values: v})
		},
	})

	for i, e := range s.Events {
		if err := applySliderEvent(slider, router, e); err != nil {
			return nil, scenarioError("scenario.Run", fmt.Errorf("events[%d] (%s): %w", i, e.Type, err))
		}
	}

	frame := slider.Render()
	left, w := frame.Track.CSS()
	state := &SliderState{
		Values: slider.Values(),
		Track:  TrackState{Visible: frame.Track.Visible, Left: left, Width: w},
	}
	for _, hv := range frame.Handles {
		state.Handles = append(state.Handles, HandleState{
			Value:   hv.Value,
			Text:    hv.ValueText,
			Left:    hv.CSSLeft(),
			Pressed: hv.Pressed,
			Focused: hv.Focused,
		})
	}
	res.Slider = state
	return res, nil
}

func applySliderEvent(slider *multirange.Slider, router *gestures.PointerRouter, e Event) error {
	id := e.Pointer
	if id == 0 {
		id = 1
	}
	event := gestures.PointerEvent{PointerID: id, Position: graphics.Offset{X: e.X}}
	switch e.Type {
	case EventPointerDown:
		event.Phase = gestures.PointerPhaseDown
		if e.Handle == nil {
			slider.PressTrack(event)
			return nil
		}
		h, err := handleAt(slider, *e.Handle)
		if err != nil {
			return err
		}
		h.HandlePointer(event)
		router.Dispatch(event)
	case EventPointerMove:
		event.Phase = gestures.PointerPhaseMove
		router.Dispatch(event)
	case EventPointerUp:
		event.Phase = gestures.PointerPhaseUp
		router.Dispatch(event)
	case EventPointerCancel:
		event.Phase = gestures.PointerPhaseCancel
		router.Dispatch(event)
	case EventKey:
		key := focus.ParseKey(e.Key)
		if key == focus.KeyUnknown {
			return fmt.Errorf("unknown key %q", e.Key)
		}
		var target *multirange.Handle
		if e.Handle != nil {
			h, err := handleAt(slider, *e.Handle)
			if err != nil {
				return err
			}
			h.Focus()
			target = h
		} else {
			for _, h := range slider.Handles() {
				if h.FocusNode().HasFocus() {
					target = h
				}
			}
		}
		if target == nil {
			return fmt.Errorf("no focused handle for key %q", e.Key)
		}
		target.HandleKey(focus.KeyEvent{Key: key})
	case EventSetValue:
		slider.SetValue(e.Values)
	}
	return nil
}

func handleAt(slider *multirange.Slider, slot int) (*multirange.Handle, error) {
	handles := slider.Handles()
	if slot < 0 || slot >= len(handles) {
		return nil, fmt.Errorf("handle %d out of range (have %d)", slot, len(handles))
	}
	return handles[slot], nil
}

func runTree(s *Scenario) (*Result, error) {
	conf := s.Tree
	res := &Result{Widget: WidgetTree}
	mode, err := tree.ParseSelectionMode(conf.Selection)
	if err != nil {
		return nil, scenarioError("scenario.Run", err)
	}

	record := func(name string) func(*tree.Item) {
		return func(it *tree.Item) {
			res.Emitted = append(res.Emitted, Emitted{Event: name, Item: it.Label})
		}
	}
	tr := tree.New(tree.Config{
		Selection: mode,
		Localizer: directionOf(conf.Direction),
		Focus:     focus.NewFocusManager(),
		OnSelectionChange: func(selected []*tree.Item) {
			labels := make([]string, 0, len(selected))
			for _, it := range selected {
				labels = append(labels, it.Label)
			}
			res.Emitted = append(res.Emitted, Emitted{Event: "selection-change", Items: labels})
		},
		OnExpand:   record("expand"),
		OnCollapse: record("collapse"),
		OnLazyLoad: record("lazy-load"),
	}, buildItems(conf.Items)...)

	for i, e := range s.Events {
		if err := applyTreeEvent(tr, e); err != nil {
			return nil, scenarioError("scenario.Run", fmt.Errorf("events[%d] (%s): %w", i, e.Type, err))
		}
	}

	state := &TreeState{Selection: tr.SelectionMode().String()}
	if f := tr.FocusedItem(); f != nil {
		state.Focused = f.Label
	}
	for _, it := range tr.Items() {
		state.Items = append(state.Items, ItemState{
			Label:         it.Label,
			Level:         it.Level(),
			Selected:      it.Selected(),
			Indeterminate: it.Indeterminate(),
			Expanded:      it.Expanded(),
			Disabled:      it.Disabled(),
			Loading:       it.Loading(),
			TabIndex:      it.FocusNode().TabIndex,
		})
	}
	res.Tree = state
	return res, nil
}

func applyTreeEvent(tr *tree.Tree, e Event) error {
	switch e.Type {
	case EventKey:
		key := focus.ParseKey(e.Key)
		if key == focus.KeyUnknown {
			return fmt.Errorf("unknown key %q", e.Key)
		}
		if e.Item != "" {
			it, err := findItem(tr, e.Item)
			if err != nil {
				return err
			}
			tr.FocusItem(it)
		}
		tr.HandleKey(focus.KeyEvent{Key: key})
	case EventSelect, EventClick, EventLoad, EventRemove:
		it, err := findItem(tr, e.Item)
		if err != nil {
			return err
		}
		switch e.Type {
		case EventSelect:
			tr.SelectItem(it)
		case EventClick:
			tr.Click(it, e.ExpandButton)
		case EventLoad:
			tr.Append(it, buildItems(e.Children)...)
		case EventRemove:
			tr.Remove(it)
		}
	case EventMode:
		mode, err := tree.ParseSelectionMode(e.Mode)
		if err != nil {
			return err
		}
		tr.SetSelectionMode(mode)
	}
	return nil
}

func findItem(tr *tree.Tree, label string) (*tree.Item, error) {
	for _, it := range tr.Items() {
		if it.Label == label {
			return it, nil
		}
	}
	return nil, fmt.Errorf("no item labeled %q", label)
}

func buildItems(specs []ItemSpec) []*tree.Item {
	items := make([]*tree.Item, 0, len(specs))
	for _, is := range specs {
		it := tree.NewItem(is.Label, buildItems(is.Children)...)
		it.SetSelected(is.Selected)
		it.SetDisabled(is.Disabled)
		it.SetExpanded(is.Expanded)
		it.SetLazy(is.Lazy)
		items = append(items, it)
	}
	return items
}

func directionOf(s string) localization.Localizer {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "ltr":
		return localization.Fixed(localization.LTR)
	case "rtl":
		return localization.Fixed(localization.RTL)
	}
	return localization.Tag(s)
}
