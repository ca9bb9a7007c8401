// Package terminal runs the interactive demo: a multi-handle slider driven
// by mouse and keyboard, and a tree driven by keyboard, drawn with tcell.
package terminal

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"

	"github.com/go-drift/interact/cmd/interact/internal/config"
	"github.com/go-drift/interact/pkg/errors"
	"github.com/go-drift/interact/pkg/focus"
	"github.com/go-drift/interact/pkg/gestures"
	"github.com/go-drift/interact/pkg/graphics"
	"github.com/go-drift/interact/pkg/localization"
	"github.com/go-drift/interact/pkg/multirange"
	"github.com/go-drift/interact/pkg/tree"
)

// Screen rows.
const (
	titleRow  = 0
	trackRow  = 2
	valueRow  = 3
	treeRow   = 5
	trackLeft = 2
	treeLeft  = 2
)

var (
	styleDefault  = tcell.StyleDefault
	styleTrack    = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleActive   = tcell.StyleDefault.Foreground(tcell.ColorAqua)
	styleHandle   = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleFocused  = tcell.StyleDefault.Reverse(true)
	styleDisabled = tcell.StyleDefault.Dim(true)
)

// Demo owns the widgets and the screen they are drawn on.
type Demo struct {
	screen tcell.Screen
	cfg    *config.Resolved

	focus  *focus.FocusManager
	router *gestures.PointerRouter
	slider *multirange.Slider
	tree   *tree.Tree

	mouse  mouseTracker
	status string
	quit   bool
}

// New builds the demo widgets from cfg on an initialized screen.
func New(screen tcell.Screen, cfg *config.Resolved) *Demo {
	d := &Demo{
		screen: screen,
		cfg:    cfg,
		focus:  focus.NewFocusManager(),
		router: gestures.NewPointerRouter(),
	}
	s := cfg.Slider
	d.slider = multirange.New(multirange.Config{
		Min:   s.Min,
		Max:   s.Max,
		Step:  s.Step,
		Value: s.Values,
		Label: "range",
		Layout: multirange.FixedLayout{
			Track: graphics.RectFromLTWH(trackLeft, trackRow, s.TrackWidth, 1),
			Thumb: graphics.Size{Width: s.ThumbSize, Height: 1},
		},
		Router:   d.router,
		Focus:    d.focus,
		OnInput:  func(v []float64) { d.setStatus("input %v", v) },
		OnChange: func(v []float64) { d.setStatus("change %v", v) },
	})
	d.tree = tree.New(tree.Config{
		Selection: cfg.Selection,
		Label:     "sample",
		Localizer: localization.Fixed(cfg.Direction),
		Focus:     d.focus,
		OnSelectionChange: func(selected []*tree.Item) {
			names := make([]string, 0, len(selected))
			for _, it := range selected {
				names = append(names, it.Label)
			}
			d.setStatus("selected [%s]", strings.Join(names, ", "))
		},
		OnLazyLoad: d.loadChildren,
	}, sampleItems()...)
	if handles := d.slider.Handles(); len(handles) > 0 {
		handles[0].Focus()
	}
	return d
}

func sampleItems() []*tree.Item {
	herbs := tree.NewItem("Herbs")
	herbs.SetLazy(true)
	fruits := tree.NewItem("Fruits",
		tree.NewItem("Apple"),
		tree.NewItem("Banana"),
		tree.NewItem("Cherry"),
	)
	fruits.SetExpanded(true)
	return []*tree.Item{
		fruits,
		tree.NewItem("Vegetables", tree.NewItem("Carrot"), tree.NewItem("Leek")),
		herbs,
	}
}

// loadChildren answers a lazy load immediately; a real host would fetch.
func (d *Demo) loadChildren(it *tree.Item) {
	d.setStatus("loading %s", it.Label)
	d.tree.Append(it, tree.NewItem("Basil"), tree.NewItem("Mint"))
}

func (d *Demo) setStatus(format string, args ...any) {
	d.status = fmt.Sprintf(format, args...)
}

// Status returns the last status line.
func (d *Demo) Status() string { return d.status }

// Slider returns the demo slider.
func (d *Demo) Slider() *multirange.Slider { return d.slider }

// Tree returns the demo tree.
func (d *Demo) Tree() *tree.Tree { return d.tree }

// HandleError shows reported errors on the status line.
func (d *Demo) HandleError(err *errors.InteractError) {
	d.setStatus("error: %v", err)
}

// HandlePanic shows recovered panics on the status line.
func (d *Demo) HandlePanic(err *errors.PanicError) {
	d.setStatus("error: %v", err)
}

// Run draws and dispatches events until the user quits.
func (d *Demo) Run() {
	d.screen.EnableMouse()
	for !d.quit {
		d.Draw()
		d.HandleEvent(d.screen.PollEvent())
	}
}

// HandleEvent dispatches one terminal event.
func (d *Demo) HandleEvent(ev tcell.Event) {
	switch e := ev.(type) {
	case *tcell.EventKey:
		d.handleKey(e)
	case *tcell.EventMouse:
		d.handleMouse(e)
	case *tcell.EventResize:
		d.screen.Sync()
	case nil:
		d.quit = true
	}
}

// Quit reports whether the user asked to leave.
func (d *Demo) Quit() bool { return d.quit }

func (d *Demo) handleKey(ev *tcell.EventKey) {
	if ev.Key() == tcell.KeyCtrlC || (ev.Key() == tcell.KeyRune && ev.Rune() == 'q') {
		d.quit = true
		return
	}
	key := convertKey(ev)
	switch key {
	case focus.KeyEscape:
		d.quit = true
		return
	case focus.KeyTab:
		d.cycleFocus(ev.Key() == tcell.KeyBacktab)
		return
	case focus.KeyUnknown:
		return
	}
	event := focus.KeyEvent{Key: key, Shift: ev.Modifiers()&tcell.ModShift != 0}
	if h := d.focusedHandle(); h != nil {
		h.HandleKey(event)
		return
	}
	d.tree.HandleKey(event)
}

// cycleFocus moves through the handles and then the tree, which is one
// stop thanks to its roving tab index.
func (d *Demo) cycleFocus(backward bool) {
	var stops []func() bool
	current := -1
	for _, h := range d.slider.Handles() {
		if h.FocusNode().HasFocus() {
			current = len(stops)
		}
		stops = append(stops, h.Focus)
	}
	if d.tree.FocusedItem() != nil {
		current = len(stops)
	}
	stops = append(stops, d.tree.Focus)

	next := current + 1
	if backward {
		next = current - 1 + len(stops)
	}
	stops[next%len(stops)]()
}

func (d *Demo) focusedHandle() *multirange.Handle {
	for _, h := range d.slider.Handles() {
		if h.FocusNode().HasFocus() {
			return h
		}
	}
	return nil
}

func (d *Demo) handleMouse(ev *tcell.EventMouse) {
	event, ok := d.mouse.convert(ev)
	if !ok {
		return
	}
	if event.Phase != gestures.PointerPhaseDown {
		d.router.Dispatch(event)
		return
	}
	_, y := ev.Position()
	switch {
	case y == trackRow:
		if h := d.handleAt(event.Position.X); h != nil {
			h.HandlePointer(event)
			d.router.Dispatch(event)
			return
		}
		d.slider.PressTrack(event)
	case y >= treeRow:
		x, _ := ev.Position()
		d.clickTree(x, y)
	}
}

// handleAt hit-tests the drawn thumbs.
func (d *Demo) handleAt(x float64) *multirange.Handle {
	frame := d.slider.Render()
	for _, hv := range frame.Handles {
		left := d.thumbLeft(hv)
		if x >= left && x < left+d.cfg.Slider.ThumbSize {
			return d.slider.HandleByID(hv.ID)
		}
	}
	return nil
}

// thumbLeft is the screen column where a thumb starts.
func (d *Demo) thumbLeft(hv multirange.HandleView) float64 {
	usable := d.cfg.Slider.TrackWidth - d.cfg.Slider.ThumbSize
	return trackLeft + usable*hv.Percent/100
}

func (d *Demo) clickTree(x, y int) {
	rows := d.visibleItems()
	i := y - treeRow
	if i < 0 || i >= len(rows) {
		return
	}
	it := rows[i]
	marker := treeLeft + 2*(it.Level()-1)
	d.tree.Click(it, x == marker)
}

// visibleItems lists the items drawn on screen, including disabled ones.
func (d *Demo) visibleItems() []*tree.Item {
	var rows []*tree.Item
	var visit func([]*tree.Item)
	visit = func(items []*tree.Item) {
		for _, it := range items {
			rows = append(rows, it)
			if it.Expanded() && !it.Loading() {
				visit(it.Children())
			}
		}
	}
	visit(d.tree.Roots())
	return rows
}

// Draw renders both widgets and the status line.
func (d *Demo) Draw() {
	d.screen.Clear()
	d.drawText(0, titleRow, styleDefault, fmt.Sprintf("%s: Tab switches focus, q quits", d.cfg.AppName))
	d.drawSlider()
	d.drawTree()
	_, h := d.screen.Size()
	d.drawText(0, h-1, styleDefault, d.status)
	d.screen.Show()
}

func (d *Demo) drawSlider() {
	frame := d.slider.Render()
	width := int(d.cfg.Slider.TrackWidth)
	style := styleTrack
	if frame.Disabled {
		style = styleDisabled
	}
	activeFrom := trackLeft + int(frame.Track.Left/100*float64(width))
	activeTo := trackLeft + int((frame.Track.Left+frame.Track.Width)/100*float64(width))
	for x := trackLeft; x < trackLeft+width; x++ {
		s := style
		if frame.Track.Visible && x >= activeFrom && x < activeTo {
			s = styleActive
		}
		d.screen.SetContent(x, trackRow, '─', nil, s)
	}

	texts := make([]string, 0, len(frame.Handles))
	for _, hv := range frame.Handles {
		s := styleHandle
		if hv.Focused {
			s = styleFocused
		}
		left := int(d.thumbLeft(hv))
		for x := left; x < left+int(d.cfg.Slider.ThumbSize); x++ {
			d.screen.SetContent(x, trackRow, '█', nil, s)
		}
		texts = append(texts, hv.ValueText)
	}
	d.drawText(trackLeft, valueRow, styleDefault, strings.Join(texts, " - "))
}

func (d *Demo) drawTree() {
	for i, it := range d.visibleItems() {
		x := treeLeft + 2*(it.Level()-1)
		marker := " "
		switch {
		case it.Loading():
			marker = "…"
		case it.Expanded():
			marker = "▾"
		case !it.IsLeaf() || it.Lazy():
			marker = "▸"
		}
		check := ""
		if it.Selectable() {
			switch {
			case it.Indeterminate():
				check = "[-] "
			case it.Selected():
				check = "[x] "
			default:
				check = "[ ] "
			}
		} else if it.Selected() {
			check = "* "
		}
		style := styleDefault
		switch {
		case it.FocusNode().HasFocus():
			style = styleFocused
		case it.Disabled():
			style = styleDisabled
		}
		d.drawText(x, treeRow+i, style, marker+" "+check+it.Label)
	}
}

func (d *Demo) drawText(x, y int, style tcell.Style, text string) {
	for _, r := range text {
		d.screen.SetContent(x, y, r, nil, style)
		x++
	}
}
