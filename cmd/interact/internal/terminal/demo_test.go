package terminal

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/interact/cmd/interact/internal/config"
	"github.com/go-drift/interact/pkg/errors"
	"github.com/go-drift/interact/pkg/focus"
	"github.com/go-drift/interact/pkg/localization"
	"github.com/go-drift/interact/pkg/tree"
)

func newDemo(t *testing.T) (*Demo, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	// 41 cells with a one-cell thumb leave 40 usable cells, 2.5 per cell.
	cfg := &config.Resolved{
		AppName: "demo",
		Slider: config.Slider{
			Min: 0, Max: 100, Step: 1,
			Values:     []float64{25, 75},
			ThumbSize:  1,
			TrackWidth: 41,
		},
		Selection: tree.SelectionMultiple,
		Direction: localization.LTR,
	}
	return New(screen, cfg), screen
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func char(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func mouse(x, y int, buttons tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, buttons, tcell.ModNone)
}

func row(screen tcell.SimulationScreen, y int) string {
	cells, w, _ := screen.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			b.WriteRune(' ')
			continue
		}
		b.WriteRune(c.Runes[0])
	}
	return strings.TrimRight(b.String(), " ")
}

func TestDemoKeyboardSlider(t *testing.T) {
	d, _ := newDemo(t)

	d.HandleEvent(key(tcell.KeyRight))
	assert.Equal(t, []float64{26, 75}, d.Slider().Values())
	assert.Equal(t, "change [26 75]", d.Status())

	d.HandleEvent(key(tcell.KeyEnd))
	assert.Equal(t, []float64{75, 100}, d.Slider().Values())
}

func TestDemoMouseDrag(t *testing.T) {
	d, _ := newDemo(t)

	d.HandleEvent(mouse(12, trackRow, tcell.Button1))
	require.True(t, d.Slider().Handles()[0].Pressed())
	d.HandleEvent(mouse(22, trackRow, tcell.Button1))
	assert.Equal(t, "input [50 75]", d.Status())
	d.HandleEvent(mouse(22, trackRow, tcell.ButtonNone))

	assert.Equal(t, []float64{50, 75}, d.Slider().Values())
	assert.Equal(t, "change [50 75]", d.Status())
	assert.False(t, d.Slider().Handles()[0].Pressed())
}

func TestDemoTrackPress(t *testing.T) {
	d, _ := newDemo(t)

	d.HandleEvent(mouse(37, trackRow, tcell.Button1))
	d.HandleEvent(mouse(37, trackRow, tcell.ButtonNone))

	assert.Equal(t, []float64{25, 88}, d.Slider().Values())
	assert.True(t, d.Slider().Handles()[1].FocusNode().HasFocus())
}

func TestDemoTabCycle(t *testing.T) {
	d, _ := newDemo(t)
	handles := d.Slider().Handles()

	d.HandleEvent(key(tcell.KeyTab))
	assert.True(t, handles[1].FocusNode().HasFocus())

	d.HandleEvent(key(tcell.KeyTab))
	require.NotNil(t, d.Tree().FocusedItem())
	assert.Equal(t, "Fruits", d.Tree().FocusedItem().Label)

	d.HandleEvent(key(tcell.KeyTab))
	assert.True(t, handles[0].FocusNode().HasFocus())

	d.HandleEvent(key(tcell.KeyBacktab))
	assert.Equal(t, "Fruits", d.Tree().FocusedItem().Label, "the tree restores its last item")
}

func TestDemoTreeKeys(t *testing.T) {
	d, _ := newDemo(t)
	d.Tree().Focus()

	d.HandleEvent(key(tcell.KeyDown))
	d.HandleEvent(char(' '))
	assert.Equal(t, "selected [Apple]", d.Status())

	d.HandleEvent(key(tcell.KeyEnd))
	herbs := d.Tree().FocusedItem()
	require.Equal(t, "Herbs", herbs.Label)
	d.HandleEvent(key(tcell.KeyRight))

	assert.True(t, herbs.Expanded())
	assert.False(t, herbs.Loading())
	assert.Len(t, herbs.Children(), 2)
	assert.Equal(t, "loading Herbs", d.Status())
}

func TestDemoTreeClick(t *testing.T) {
	d, _ := newDemo(t)
	vegetables := d.Tree().Roots()[1]

	d.HandleEvent(mouse(treeLeft, treeRow+4, tcell.Button1))
	d.HandleEvent(mouse(treeLeft, treeRow+4, tcell.ButtonNone))
	assert.True(t, vegetables.Expanded())
	assert.False(t, vegetables.Selected())

	d.HandleEvent(mouse(treeLeft+6, treeRow+4, tcell.Button1))
	assert.True(t, vegetables.Selected())
	assert.Equal(t, "selected [Vegetables, Carrot, Leek]", d.Status())
}

func TestDemoDraw(t *testing.T) {
	d, screen := newDemo(t)
	d.Draw()

	assert.Equal(t, "demo: Tab switches focus, q quits", row(screen, titleRow))
	assert.Equal(t, "  25 - 75", row(screen, valueRow))
	track := row(screen, trackRow)
	assert.Equal(t, '█', []rune(track)[12])
	assert.Equal(t, '█', []rune(track)[32])
	assert.Equal(t, "  ▾ [ ] Fruits", row(screen, treeRow))
	assert.Equal(t, "      [ ] Apple", row(screen, treeRow+1))
	assert.Equal(t, "  ▸ [ ] Herbs", row(screen, treeRow+5))
}

func TestDemoQuit(t *testing.T) {
	cases := map[string]tcell.Event{
		"Q":      char('q'),
		"CtrlC":  key(tcell.KeyCtrlC),
		"Escape": key(tcell.KeyEscape),
		"Closed": nil,
	}
	for name, ev := range cases {
		t.Run(name, func(t *testing.T) {
			d, _ := newDemo(t)
			require.False(t, d.Quit())
			d.HandleEvent(ev)
			assert.True(t, d.Quit())
		})
	}
}

func TestDemoReportsErrors(t *testing.T) {
	d, _ := newDemo(t)
	d.HandlePanic(&errors.PanicError{Op: "tree.Tree.OnSelectionChange", Value: "boom"})
	assert.Equal(t, "error: panic in tree.Tree.OnSelectionChange: boom", d.Status())
}

func TestConvertKey(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want focus.Key
	}{
		{key(tcell.KeyUp), focus.KeyUp},
		{key(tcell.KeyPgDn), focus.KeyPageDown},
		{key(tcell.KeyBacktab), focus.KeyTab},
		{char(' '), focus.KeySpace},
		{char('x'), focus.KeyUnknown},
	}
	for _, tt := range tests {
		if got := convertKey(tt.ev); got != tt.want {
			t.Errorf("convertKey(%v) = %v, want %v", tt.ev.Name(), got, tt.want)
		}
	}
}

func TestMouseTracker(t *testing.T) {
	var m mouseTracker
	_, ok := m.convert(mouse(3, 1, tcell.ButtonNone))
	assert.False(t, ok, "hover without a button is not a pointer event")

	down, _ := m.convert(mouse(3, 1, tcell.Button1))
	move, _ := m.convert(mouse(5, 1, tcell.Button1))
	up, _ := m.convert(mouse(5, 1, tcell.ButtonNone))

	assert.Equal(t, "down", down.Phase.String())
	assert.Equal(t, 3.5, down.Position.X)
	assert.Equal(t, "move", move.Phase.String())
	assert.Equal(t, 2.0, move.Delta.X)
	assert.Equal(t, "up", up.Phase.String())
}
