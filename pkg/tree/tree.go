package tree

import (
	"fmt"
	"slices"

	"github.com/go-drift/interact/pkg/errors"
	"github.com/go-drift/interact/pkg/focus"
	"github.com/go-drift/interact/pkg/localization"
	"github.com/go-drift/interact/pkg/semantics"
)

// SelectionMode controls how SelectItem behaves.
type SelectionMode int

const (
	// SelectionSingle allows one selected item.
	SelectionSingle SelectionMode = iota
	// SelectionMultiple toggles items and keeps parents consistent with
	// their children.
	SelectionMultiple
	// SelectionLeaf allows one selected leaf; parents only expand.
	SelectionLeaf
)

func (m SelectionMode) String() string {
	switch m {
	case SelectionMultiple:
		return "multiple"
	case SelectionLeaf:
		return "leaf"
	default:
		return "single"
	}
}

// ParseSelectionMode parses "single", "multiple" or "leaf".
func ParseSelectionMode(s string) (SelectionMode, error) {
	switch s {
	case "single", "":
		return SelectionSingle, nil
	case "multiple":
		return SelectionMultiple, nil
	case "leaf":
		return SelectionLeaf, nil
	}
	return SelectionSingle, fmt.Errorf("unknown selection mode %q", s)
}

// Config describes a tree.
type Config struct {
	Selection SelectionMode
	Label     string

	// Localizer supplies the reading direction for arrow keys. Nil means
	// left to right.
	Localizer localization.Localizer
	// Focus is the focus manager for the tree and its items. Nil uses the
	// global manager.
	Focus *focus.FocusManager

	// OnSelectionChange receives the selected items in document order after
	// every SelectItem.
	OnSelectionChange func(selected []*Item)
	OnExpand          func(item *Item)
	OnCollapse        func(item *Item)
	// OnLazyLoad asks the host to load a lazy item's children. Append them
	// to finish loading.
	OnLazyLoad func(item *Item)
}

// Tree is the selection and navigation engine.
type Tree struct {
	mode      SelectionMode
	label     string
	localizer localization.Localizer
	focus     *focus.FocusManager

	onSelectionChange func([]*Item)
	onExpand          func(*Item)
	onCollapse        func(*Item)
	onLazyLoad        func(*Item)

	roots []*Item

	node        focus.FocusNode
	roving      *focus.RovingGroup
	lastFocused *Item
}

// New creates a tree holding items as its top-level items.
func New(cfg Config, items ...*Item) *Tree {
	t := &Tree{
		label:             cfg.Label,
		localizer:         cfg.Localizer,
		focus:             cfg.Focus,
		onSelectionChange: cfg.OnSelectionChange,
		onExpand:          cfg.OnExpand,
		onCollapse:        cfg.OnCollapse,
		onLazyLoad:        cfg.OnLazyLoad,
	}
	if t.localizer == nil {
		t.localizer = localization.Fixed(localization.LTR)
	}
	if t.focus == nil {
		t.focus = focus.GetFocusManager()
	}
	t.node = focus.FocusNode{CanRequestFocus: true, DebugLabel: "tree.Tree"}
	t.node.OnFocusChange = t.handleContainerFocus
	t.roving = focus.NewRovingGroup(&t.node)
	t.SetSelectionMode(cfg.Selection)
	t.Append(nil, items...)
	return t
}

// SelectionMode returns the current mode.
func (t *Tree) SelectionMode() SelectionMode {
	return t.mode
}

// SetSelectionMode changes the mode and updates every item's selectable
// flag. Switching to SelectionMultiple reconciles existing selection from
// each top-level item down.
func (t *Tree) SetSelectionMode(mode SelectionMode) {
	t.mode = mode
	multiple := mode == SelectionMultiple
	for _, it := range t.Items() {
		it.selectable = multiple
	}
	if multiple {
		for _, root := range t.roots {
			t.syncInitial(root)
		}
	}
}

// Roots returns the top-level items.
func (t *Tree) Roots() []*Item {
	return slices.Clone(t.roots)
}

// Items returns every item in document order.
func (t *Tree) Items() []*Item {
	var items []*Item
	for _, root := range t.roots {
		root.walk(func(it *Item) { items = append(items, it) })
	}
	return items
}

// SelectedItems returns the selected items in document order.
func (t *Tree) SelectedItems() []*Item {
	var selected []*Item
	for _, it := range t.Items() {
		if it.selected {
			selected = append(selected, it)
		}
	}
	return selected
}

// FocusableItems returns, in document order, the enabled items whose
// ancestors are all expanded and not loading. A disabled parent does not
// hide its children.
func (t *Tree) FocusableItems() []*Item {
	var items []*Item
	var visit func([]*Item)
	visit = func(level []*Item) {
		for _, it := range level {
			if !it.disabled {
				items = append(items, it)
			}
			if it.expanded && !it.loading {
				visit(it.children)
			}
		}
	}
	visit(t.roots)
	return items
}

// FocusNode returns the tree container's focus node.
func (t *Tree) FocusNode() *focus.FocusNode {
	return &t.node
}

// Semantics returns the container's accessibility properties.
func (t *Tree) Semantics() semantics.Properties {
	return semantics.Properties{
		Role:     semantics.RoleTree,
		Label:    t.label,
		Flags:    semantics.SemanticsIsFocusable.SetTo(semantics.SemanticsIsMultiSelectable, t.mode == SelectionMultiple),
		TabIndex: t.node.TabIndex,
	}
}

func (t *Tree) emitSelectionChange() {
	if t.onSelectionChange == nil {
		return
	}
	selected := t.SelectedItems()
	errors.Guard("tree.Tree.OnSelectionChange", func() { t.onSelectionChange(selected) })
}

func (t *Tree) emit(op string, fn func(*Item), it *Item) {
	if fn == nil {
		return
	}
	errors.Guard(op, func() { fn(it) })
}
