package tree

import "slices"

// FocusItem moves keyboard focus to it.
func (t *Tree) FocusItem(it *Item) bool {
	if it == nil || it.tree != t {
		return false
	}
	return t.focus.RequestFocus(&it.node)
}

// Focus focuses the tree, which forwards focus to the last focused item or
// the first focusable one.
func (t *Tree) Focus() bool {
	return t.focus.RequestFocus(&t.node)
}

// FocusedItem returns the item holding primary focus, or nil.
func (t *Tree) FocusedItem() *Item {
	primary := t.focus.PrimaryFocus
	if primary == nil {
		return nil
	}
	for _, it := range t.Items() {
		if &it.node == primary {
			return it
		}
	}
	return nil
}

// LastFocused returns the item that holds the roving tab stop, or nil.
func (t *Tree) LastFocused() *Item {
	return t.lastFocused
}

func (t *Tree) handleContainerFocus(hasFocus bool) {
	if !hasFocus {
		return
	}
	target := t.lastFocused
	if target == nil || !slices.Contains(t.FocusableItems(), target) {
		t.focusFirst()
		return
	}
	t.FocusItem(target)
}

func (t *Tree) handleItemFocus(it *Item, hasFocus bool) {
	if hasFocus {
		t.lastFocused = it
		t.roving.Enter(&it.node)
		return
	}
	if t.focus.PrimaryFocus == &t.node || t.FocusedItem() != nil {
		return
	}
	t.roving.Leave()
}

func (t *Tree) focusFirst() {
	if items := t.FocusableItems(); len(items) > 0 {
		t.FocusItem(items[0])
	}
}
