package tree

import (
	"github.com/go-drift/interact/pkg/focus"
	"github.com/go-drift/interact/pkg/semantics"
)

// Item is one node of a tree. Children are owned by their parent; the parent
// link is a plain back reference.
type Item struct {
	Label string

	tree     *Tree
	parent   *Item
	children []*Item

	selected      bool
	indeterminate bool
	disabled      bool
	expanded      bool
	selectable    bool
	lazy          bool
	loading       bool

	node focus.FocusNode
}

// NewItem creates a detached item with the given children.
func NewItem(label string, children ...*Item) *Item {
	it := &Item{Label: label}
	it.node = focus.FocusNode{CanRequestFocus: true, TabIndex: -1, DebugLabel: "tree.Item " + label}
	for _, c := range children {
		if c == nil {
			continue
		}
		c.detach()
		c.parent = it
		it.children = append(it.children, c)
	}
	return it
}

// Tree returns the tree the item is attached to, or nil.
func (it *Item) Tree() *Tree { return it.tree }

// Parent returns the parent item, or nil for a top-level item.
func (it *Item) Parent() *Item { return it.parent }

// Children returns a copy of the direct children.
func (it *Item) Children() []*Item {
	return append([]*Item(nil), it.children...)
}

// IsLeaf reports whether the item has no children.
func (it *Item) IsLeaf() bool { return len(it.children) == 0 }

func (it *Item) Selected() bool      { return it.selected }
func (it *Item) Indeterminate() bool { return it.indeterminate }
func (it *Item) Disabled() bool      { return it.disabled }
func (it *Item) Expanded() bool      { return it.expanded }
func (it *Item) Lazy() bool          { return it.lazy }
func (it *Item) Loading() bool       { return it.loading }

// Selectable reports whether the item shows a multi-select affordance. It
// is true only in SelectionMultiple.
func (it *Item) Selectable() bool { return it.selectable }

// Level returns the 1-based depth of the item.
func (it *Item) Level() int {
	level := 1
	for p := it.parent; p != nil; p = p.parent {
		level++
	}
	return level
}

// FocusNode returns the item's focus node.
func (it *Item) FocusNode() *focus.FocusNode { return &it.node }

// SetSelected assigns the selected state directly, the way a host sets an
// attribute. It does not propagate; use Tree.SelectItem for user selection.
func (it *Item) SetSelected(selected bool) {
	it.selected = selected
}

// SetIndeterminate assigns the indeterminate state directly.
func (it *Item) SetIndeterminate(indeterminate bool) {
	it.indeterminate = indeterminate
}

// SetDisabled enables or disables the item. Disabled items are skipped by
// keyboard navigation and ignore clicks.
func (it *Item) SetDisabled(disabled bool) {
	it.disabled = disabled
	it.node.CanRequestFocus = !disabled
}

// SetLazy marks the item as loading its children on first expansion.
// Clearing it also ends a pending load.
func (it *Item) SetLazy(lazy bool) {
	it.lazy = lazy
	if !lazy {
		it.loading = false
	}
}

// SetExpanded expands or collapses the item. Attached items go through the
// tree so listeners and lazy loading run.
func (it *Item) SetExpanded(expanded bool) {
	if it.tree == nil {
		it.expanded = expanded
		return
	}
	if expanded {
		it.tree.Expand(it)
	} else {
		it.tree.Collapse(it)
	}
}

// Semantics returns the item's accessibility properties.
func (it *Item) Semantics() semantics.Properties {
	flags := semantics.SemanticsHasSelectedState | semantics.SemanticsIsFocusable
	flags = flags.SetTo(semantics.SemanticsIsSelected, it.selected)
	flags = flags.SetTo(semantics.SemanticsIsMixed, it.selectable && it.indeterminate)
	if !it.IsLeaf() || it.lazy {
		flags = flags.Set(semantics.SemanticsHasExpandedState)
		flags = flags.SetTo(semantics.SemanticsIsExpanded, it.expanded)
	}
	flags = flags.SetTo(semantics.SemanticsIsDisabled, it.disabled)
	flags = flags.SetTo(semantics.SemanticsIsBusy, it.loading)
	return semantics.Properties{
		Role:     semantics.RoleTreeItem,
		Label:    it.Label,
		Flags:    flags,
		Level:    it.Level(),
		TabIndex: it.node.TabIndex,
	}
}

// walk visits it and its descendants in document order.
func (it *Item) walk(fn func(*Item)) {
	fn(it)
	for _, c := range it.children {
		c.walk(fn)
	}
}

// contains reports whether other is it or one of its descendants.
func (it *Item) contains(other *Item) bool {
	for p := other; p != nil; p = p.parent {
		if p == it {
			return true
		}
	}
	return false
}

// detach unlinks the item from its parent's children, leaving tree
// bookkeeping to the caller.
func (it *Item) detach() {
	if it.parent == nil {
		return
	}
	siblings := it.parent.children
	for i, c := range siblings {
		if c == it {
			it.parent.children = append(siblings[:i:i], siblings[i+1:]...)
			break
		}
	}
	it.parent = nil
}
