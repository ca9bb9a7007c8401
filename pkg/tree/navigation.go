package tree

import (
	"slices"

	"github.com/go-drift/interact/pkg/focus"
	"github.com/go-drift/interact/pkg/localization"
)

// Expand opens it. A lazy item opens and starts loading: it is marked
// loading and OnLazyLoad asks the host for children. Its subtree stays out
// of keyboard navigation until they are appended.
func (t *Tree) Expand(it *Item) {
	if it == nil || it.tree != t || it.expanded {
		return
	}
	if it.IsLeaf() && !it.lazy {
		return
	}
	load := it.lazy && !it.loading
	it.expanded = true
	if load {
		it.loading = true
	}
	t.emit("tree.Tree.OnExpand", t.onExpand, it)
	if load {
		t.emit("tree.Tree.OnLazyLoad", t.onLazyLoad, it)
	}
}

// Collapse closes it. Focus inside the collapsed subtree moves to it.
func (t *Tree) Collapse(it *Item) {
	if it == nil || it.tree != t || !it.expanded {
		return
	}
	it.expanded = false
	if f := t.FocusedItem(); f != nil && f != it && it.contains(f) {
		t.FocusItem(it)
	}
	t.emit("tree.Tree.OnCollapse", t.onCollapse, it)
}

// Toggle expands a collapsed item and collapses an expanded one.
func (t *Tree) Toggle(it *Item) {
	if it == nil {
		return
	}
	if it.expanded {
		t.Collapse(it)
	} else {
		t.Expand(it)
	}
}

// Click handles a pointer click on it. A click on the expand button toggles
// expansion; any other click selects. Disabled items ignore clicks.
func (t *Tree) Click(it *Item, onExpandButton bool) {
	if it == nil || it.tree != t || it.disabled {
		return
	}
	t.FocusItem(it)
	if onExpandButton {
		t.Toggle(it)
		return
	}
	t.SelectItem(it)
}

// HandleKey moves focus over the focusable items and acts on the focused
// one. The arrow key pointing in the reading direction expands, the other
// collapses.
func (t *Tree) HandleKey(event focus.KeyEvent) focus.KeyEventResult {
	expandKey, collapseKey := focus.KeyRight, focus.KeyLeft
	if t.localizer.Dir() == localization.RTL {
		expandKey, collapseKey = focus.KeyLeft, focus.KeyRight
	}
	items := t.FocusableItems()
	active := t.FocusedItem()
	index := slices.Index(items, active)

	switch event.Key {
	case focus.KeyDown:
		t.focusAt(items, index+1)
	case focus.KeyUp:
		t.focusAt(items, index-1)
	case expandKey:
		if active == nil || active.disabled || active.expanded || (active.IsLeaf() && !active.lazy) {
			t.focusAt(items, index+1)
		} else {
			t.Expand(active)
		}
	case collapseKey:
		if active == nil || active.IsLeaf() || !active.expanded {
			t.focusAt(items, index-1)
		} else {
			t.Collapse(active)
		}
	case focus.KeyHome:
		t.focusAt(items, 0)
	case focus.KeyEnd:
		t.focusAt(items, len(items)-1)
	case focus.KeyEnter, focus.KeySpace:
		if active != nil && !active.disabled {
			t.SelectItem(active)
		}
	default:
		return focus.KeyEventIgnored
	}
	return focus.KeyEventHandled
}

// focusAt focuses items[i], clamping i to the list.
func (t *Tree) focusAt(items []*Item, i int) {
	if len(items) == 0 {
		return
	}
	t.FocusItem(items[max(0, min(i, len(items)-1))])
}
