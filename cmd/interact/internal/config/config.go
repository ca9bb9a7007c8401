// Package config loads the optional interact.yaml project configuration.
package config

import (
	"bytes"
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/mod/modfile"
	"golang.org/x/mod/module"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/interact/pkg/errors"
	"github.com/go-drift/interact/pkg/localization"
	"github.com/go-drift/interact/pkg/tree"
)

// FileName is the configuration file looked up in the project root.
const FileName = "interact.yaml"

// Config represents interact.yaml.
type Config struct {
	App    AppConfig    `yaml:"app"`
	Slider SliderConfig `yaml:"slider"`
	Tree   TreeConfig   `yaml:"tree"`
}

// AppConfig contains application metadata.
type AppConfig struct {
	Name string `yaml:"name,omitempty"`
}

// SliderConfig configures the demo slider. Zero values take defaults.
type SliderConfig struct {
	Min        *float64  `yaml:"min,omitempty"`
	Max        *float64  `yaml:"max,omitempty"`
	Step       float64   `yaml:"step,omitempty"`
	Values     []float64 `yaml:"values,omitempty"`
	ThumbSize  float64   `yaml:"thumbSize,omitempty"`
	TrackWidth float64   `yaml:"trackWidth,omitempty"`
}

// TreeConfig configures the demo tree.
type TreeConfig struct {
	// Selection is single, multiple or leaf.
	Selection string `yaml:"selection,omitempty"`
	// Direction is ltr, rtl, or a BCP 47 language tag.
	Direction string `yaml:"direction,omitempty"`
}

// Slider holds resolved slider settings.
type Slider struct {
	Min, Max, Step float64
	Values         []float64
	ThumbSize      float64
	TrackWidth     float64
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Root       string
	ModulePath string
	AppName    string
	Slider     Slider
	Selection  tree.SelectionMode
	Direction  localization.Direction
}

// LoadOptional reads interact.yaml from dir if present.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, configError("config.LoadOptional", fmt.Errorf("failed to read %s: %w", FileName, err))
	}

	var cfg Config
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !stderrors.Is(err, io.EOF) {
		return nil, configError("config.LoadOptional", fmt.Errorf("failed to parse %s: %w", FileName, err))
	}
	return &cfg, nil
}

// Resolve loads interact.yaml (if present) from dir and fills in defaults.
// A missing go.mod is not an error; the app name then comes from dir.
func Resolve(dir string) (*Resolved, error) {
	modulePath, err := modulePath(dir)
	if err != nil {
		return nil, err
	}

	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	appName := strings.TrimSpace(cfg.App.Name)
	if appName == "" {
		appName = defaultAppName(modulePath, dir)
	}

	mode, err := tree.ParseSelectionMode(strings.TrimSpace(cfg.Tree.Selection))
	if err != nil {
		return nil, configError("config.Resolve", &errors.DecodeError{Source: FileName, Field: "tree.selection", Got: cfg.Tree.Selection})
	}

	return &Resolved{
		Root:       dir,
		ModulePath: modulePath,
		AppName:    appName,
		Slider:     resolveSlider(cfg.Slider),
		Selection:  mode,
		Direction:  resolveDirection(cfg.Tree.Direction),
	}, nil
}

// FindProjectRoot walks up from the current directory to find go.mod. It
// returns the current directory when there is none.
func FindProjectRoot() (string, error) {
	start, err := os.Getwd()
	if err != nil {
		return "", err
	}

	dir := start
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return start, nil
		}
		dir = parent
	}
}

func resolveSlider(c SliderConfig) Slider {
	s := Slider{
		Min:        0,
		Max:        100,
		Step:       c.Step,
		Values:     c.Values,
		ThumbSize:  c.ThumbSize,
		TrackWidth: c.TrackWidth,
	}
	if c.Min != nil {
		s.Min = *c.Min
	}
	if c.Max != nil {
		s.Max = *c.Max
	}
	if s.Step <= 0 {
		s.Step = 1
	}
	if len(s.Values) == 0 {
		s.Values = []float64{s.Min + (s.Max-s.Min)/4, s.Max - (s.Max-s.Min)/4}
	}
	if s.ThumbSize <= 0 {
		s.ThumbSize = 1
	}
	if s.TrackWidth <= 0 {
		s.TrackWidth = 40
	}
	return s
}

func resolveDirection(s string) localization.Direction {
	s = strings.TrimSpace(s)
	switch strings.ToLower(s) {
	case "", "ltr":
		return localization.LTR
	case "rtl":
		return localization.RTL
	}
	return localization.FromTag(s)
}

func modulePath(dir string) (string, error) {
	data, err := os.ReadFile(filepath.Join(dir, "go.mod"))
	if err != nil {
		if stderrors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("failed to read go.mod: %w", err)
	}
	path := modfile.ModulePath(data)
	if path == "" {
		return "", configError("config.Resolve", fmt.Errorf("could not determine module path from go.mod"))
	}
	return path, nil
}

func defaultAppName(modulePath, dir string) string {
	base := filepath.Base(dir)
	if modName, _, ok := module.SplitPathVersion(modulePath); ok && modName != "" {
		parts := strings.Split(modName, "/")
		base = parts[len(parts)-1]
	}
	if base == "" || base == "." || base == string(filepath.Separator) {
		return "interact"
	}
	return base
}

func configError(op string, err error) error {
	return &errors.InteractError{Op: op, Kind: errors.KindConfig, Err: err}
}
