// Package scenario replays scripted input against a slider or tree and
// reports the resulting state.
//
// A scenario is a YAML document:
//
//	widget: slider
//	slider:
//	  min: 0
//	  max: 100
//	  values: [20, 80]
//	  trackWidth: 110
//	  thumbSize: 10
//	events:
//	  - {type: pointerdown, handle: 0, x: 25}
//	  - {type: pointermove, x: 45}
//	  - {type: pointerup, x: 45}
package scenario

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/go-drift/interact/pkg/errors"
)

// Widget kinds.
const (
	WidgetSlider = "slider"
	WidgetTree   = "tree"
)

// Event types.
const (
	EventPointerDown   = "pointerdown"
	EventPointerMove   = "pointermove"
	EventPointerUp     = "pointerup"
	EventPointerCancel = "pointercancel"
	EventKey           = "key"
	EventSetValue      = "setvalue"
	EventSelect        = "select"
	EventClick         = "click"
	EventMode          = "mode"
	EventLoad          = "load"
	EventRemove        = "remove"
)

var sliderEvents = map[string]bool{
	EventPointerDown: true, EventPointerMove: true, EventPointerUp: true,
	EventPointerCancel: true, EventKey: true, EventSetValue: true,
}

var treeEvents = map[string]bool{
	EventKey: true, EventSelect: true, EventClick: true, EventMode: true,
	EventLoad: true, EventRemove: true,
}

// Scenario is a widget plus the input to replay against it.
type Scenario struct {
	Widget string      `yaml:"widget"`
	Slider *SliderSpec `yaml:"slider,omitempty"`
	Tree   *TreeSpec   `yaml:"tree,omitempty"`
	Events []Event     `yaml:"events"`
}

// SliderSpec describes the slider under test.
type SliderSpec struct {
	Label      string    `yaml:"label,omitempty"`
	Min        float64   `yaml:"min"`
	Max        float64   `yaml:"max"`
	Step       float64   `yaml:"step,omitempty"`
	Values     []float64 `yaml:"values"`
	Disabled   bool      `yaml:"disabled,omitempty"`
	TrackWidth float64   `yaml:"trackWidth,omitempty"`
	ThumbSize  float64   `yaml:"thumbSize,omitempty"`
	// Format is a fmt verb for value text, e.g. "%.1f".
	Format string `yaml:"format,omitempty"`
}

// TreeSpec describes the tree under test.
type TreeSpec struct {
	Selection string     `yaml:"selection,omitempty"`
	Direction string     `yaml:"direction,omitempty"`
	Items     []ItemSpec `yaml:"items"`
}

// ItemSpec describes one tree item and its children.
type ItemSpec struct {
	Label    string     `yaml:"label"`
	Selected bool       `yaml:"selected,omitempty"`
	Disabled bool       `yaml:"disabled,omitempty"`
	Expanded bool       `yaml:"expanded,omitempty"`
	Lazy     bool       `yaml:"lazy,omitempty"`
	Children []ItemSpec `yaml:"children,omitempty"`
}

// Event is one scripted input.
type Event struct {
	Type string `yaml:"type"`

	// Pointer is the pointer id; zero means 1.
	Pointer int64 `yaml:"pointer,omitempty"`
	// Handle is the slot pressed by pointerdown. Without it the press goes
	// to the track.
	Handle *int    `yaml:"handle,omitempty"`
	X      float64 `yaml:"x,omitempty"`

	// Key names a key ("ArrowLeft", "Home", "Enter", "Space", ...). Slider
	// keys go to the focused handle.
	Key string `yaml:"key,omitempty"`

	Values []float64 `yaml:"values,omitempty"`

	Item         string     `yaml:"item,omitempty"`
	ExpandButton bool       `yaml:"expandButton,omitempty"`
	Mode         string     `yaml:"mode,omitempty"`
	Children     []ItemSpec `yaml:"children,omitempty"`
}

// Load reads a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	return Decode(path, data)
}

// Decode parses and validates a scenario. source names it in errors.
func Decode(source string, data []byte) (*Scenario, error) {
	var s Scenario
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if stderrors.Is(err, io.EOF) {
			err = fmt.Errorf("empty document")
		}
		return nil, scenarioError("scenario.Decode", fmt.Errorf("failed to parse %s: %w", source, err))
	}
	if err := s.validate(source); err != nil {
		return nil, scenarioError("scenario.Decode", err)
	}
	return &s, nil
}

func (s *Scenario) validate(source string) error {
	var allowed map[string]bool
	switch s.Widget {
	case WidgetSlider:
		if s.Slider == nil {
			return fmt.Errorf("%s: widget slider needs a slider section", source)
		}
		allowed = sliderEvents
	case WidgetTree:
		if s.Tree == nil {
			return fmt.Errorf("%s: widget tree needs a tree section", source)
		}
		allowed = treeEvents
	default:
		return &errors.DecodeError{Source: source, Field: "widget", Got: s.Widget}
	}
	for i, e := range s.Events {
		if !allowed[e.Type] {
			return &errors.DecodeError{Source: source, Field: fmt.Sprintf("events[%d].type", i), Got: e.Type}
		}
	}
	return nil
}

func scenarioError(op string, err error) error {
	return &errors.InteractError{Op: op, Kind: errors.KindScenario, Err: err}
}
