package config

import (
	stderrors "errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/interact/pkg/errors"
	"github.com/go-drift/interact/pkg/localization"
	"github.com/go-drift/interact/pkg/tree"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
}

func TestResolveDefaults(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/tools/sliderlab/v2\n\ngo 1.24\n")

	got, err := Resolve(dir)
	require.NoError(t, err)

	assert.Equal(t, "example.com/tools/sliderlab/v2", got.ModulePath)
	assert.Equal(t, "sliderlab", got.AppName)
	assert.Equal(t, Slider{Min: 0, Max: 100, Step: 1, Values: []float64{25, 75}, ThumbSize: 1, TrackWidth: 40}, got.Slider)
	assert.Equal(t, tree.SelectionSingle, got.Selection)
	assert.Equal(t, localization.LTR, got.Direction)
}

func TestResolveWithoutGoMod(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "playground")
	require.NoError(t, os.Mkdir(dir, 0o755))

	got, err := Resolve(dir)
	require.NoError(t, err)
	assert.Empty(t, got.ModulePath)
	assert.Equal(t, "playground", got.AppName)
}

func TestResolveFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "go.mod", "module example.com/demo\n")
	writeFile(t, dir, FileName, `app:
  name: Range Lab
slider:
  min: -10
  max: 10
  step: 0.5
  values: [-2, 3]
  trackWidth: 60
tree:
  selection: multiple
  direction: ar-EG
`)

	got, err := Resolve(dir)
	require.NoError(t, err)
	assert.Equal(t, "Range Lab", got.AppName)
	assert.Equal(t, Slider{Min: -10, Max: 10, Step: 0.5, Values: []float64{-2, 3}, ThumbSize: 1, TrackWidth: 60}, got.Slider)
	assert.Equal(t, tree.SelectionMultiple, got.Selection)
	assert.Equal(t, localization.RTL, got.Direction)
}

func TestResolveErrors(t *testing.T) {
	cases := map[string]struct {
		content string
	}{
		"BadYAML":      {content: "slider: [:\n"},
		"UnknownField": {content: "slider:\n  width: 3\n"},
		"BadSelection": {content: "tree:\n  selection: several\n"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, FileName, tc.content)

			_, err := Resolve(dir)
			require.Error(t, err)
			var ie *errors.InteractError
			require.True(t, stderrors.As(err, &ie), "error %v should be an InteractError", err)
			assert.Equal(t, errors.KindConfig, ie.Kind)
		})
	}
}

func TestLoadOptionalEmptyFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileName, "")

	cfg, err := LoadOptional(dir)
	require.NoError(t, err)
	assert.Equal(t, &Config{}, cfg)
}

func TestResolveDirection(t *testing.T) {
	tests := []struct {
		in   string
		want localization.Direction
	}{
		{"", localization.LTR},
		{"ltr", localization.LTR},
		{"RTL", localization.RTL},
		{"he", localization.RTL},
		{"en-US", localization.LTR},
		{"not a tag", localization.LTR},
	}
	for _, tt := range tests {
		if got := resolveDirection(tt.in); got != tt.want {
			t.Errorf("resolveDirection(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
