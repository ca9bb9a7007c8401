// Package focus provides keyboard focus bookkeeping: key events, focus
// nodes, a focus manager and the roving tab index used by composite widgets.
package focus

// Key identifies a keyboard key relevant to widget navigation.
type Key int

const (
	KeyUnknown Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown
	KeyEnter
	KeySpace
	KeyTab
	KeyEscape
)

var keyNames = map[Key]string{
	KeyUp:       "ArrowUp",
	KeyDown:     "ArrowDown",
	KeyLeft:     "ArrowLeft",
	KeyRight:    "ArrowRight",
	KeyHome:     "Home",
	KeyEnd:      "End",
	KeyPageUp:   "PageUp",
	KeyPageDown: "PageDown",
	KeyEnter:    "Enter",
	KeySpace:    " ",
	KeyTab:      "Tab",
	KeyEscape:   "Escape",
}

// String returns the DOM key name.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unidentified"
}

// ParseKey maps a DOM key name (or "Space") to a Key.
func ParseKey(name string) Key {
	if name == "Space" || name == "Spacebar" {
		return KeySpace
	}
	for k, n := range keyNames {
		if n == name {
			return k
		}
	}
	return KeyUnknown
}

// KeyEvent represents a key press delivered to a focused widget.
type KeyEvent struct {
	Key   Key
	Shift bool
	Ctrl  bool
	Alt   bool
	Meta  bool
}

// KeyEventResult indicates how a key event was handled.
type KeyEventResult int

const (
	// KeyEventIgnored indicates the event was not handled.
	KeyEventIgnored KeyEventResult = iota

	// KeyEventHandled indicates the event was consumed and the host should
	// suppress its default behavior (scrolling, caret movement).
	KeyEventHandled
)

// FocusNode represents a focusable element.
type FocusNode struct {
	CanRequestFocus bool
	DebugLabel      string

	// TabIndex follows DOM semantics: 0 is reachable with Tab, -1 only
	// programmatically.
	TabIndex int

	OnFocusChange func(hasFocus bool)

	hasFocus bool
}

func (n *FocusNode) canReceiveFocus() bool {
	return n != nil && n.CanRequestFocus
}

// HasFocus reports whether this node is the primary focus.
func (n *FocusNode) HasFocus() bool {
	return n != nil && n.hasFocus
}

// Reachable reports whether sequential keyboard navigation stops here.
func (n *FocusNode) Reachable() bool {
	return n != nil && n.CanRequestFocus && n.TabIndex >= 0
}

// FocusManager tracks the primary focus.
type FocusManager struct {
	PrimaryFocus *FocusNode
}

var focusManager = &FocusManager{}

// GetFocusManager returns the process-wide focus manager.
func GetFocusManager() *FocusManager {
	return focusManager
}

// NewFocusManager returns an independent manager, mainly for tests.
func NewFocusManager() *FocusManager {
	return &FocusManager{}
}

// RequestFocus makes node the primary focus if it can receive focus.
func (m *FocusManager) RequestFocus(node *FocusNode) bool {
	if !node.canReceiveFocus() {
		return false
	}
	m.setPrimaryFocus(node)
	return true
}

// Unfocus clears the primary focus when node holds it.
func (m *FocusManager) Unfocus(node *FocusNode) {
	if m.PrimaryFocus == node {
		m.setPrimaryFocus(nil)
	}
}

// Blur clears the primary focus.
func (m *FocusManager) Blur() {
	m.setPrimaryFocus(nil)
}

// setPrimaryFocus updates PrimaryFocus before notifying either node, so a
// losing node's callback can see where focus went.
func (m *FocusManager) setPrimaryFocus(node *FocusNode) {
	if m.PrimaryFocus == node {
		return
	}
	prev := m.PrimaryFocus
	m.PrimaryFocus = node
	if prev != nil {
		prev.setFocusState(false)
	}
	if node != nil {
		node.setFocusState(true)
	}
}

func (n *FocusNode) setFocusState(hasFocus bool) {
	n.hasFocus = hasFocus
	if n.OnFocusChange != nil {
		n.OnFocusChange(hasFocus)
	}
}
