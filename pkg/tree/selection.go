package tree

// SelectItem applies a user selection to it according to the mode, then
// reports the full selection through OnSelectionChange, even when nothing
// changed:
//   - SelectionMultiple toggles it, expands it when lazy, and reconciles
//     its ancestors and descendants.
//   - SelectionSingle, and SelectionLeaf on a leaf, select it alone.
//   - SelectionLeaf on a parent (or a lazy item) toggles expansion.
func (t *Tree) SelectItem(it *Item) {
	if it == nil || it.tree != t {
		return
	}
	switch {
	case t.mode == SelectionMultiple:
		it.selected = !it.selected
		it.indeterminate = false
		if it.lazy {
			t.Expand(it)
		}
		t.sync(it)
	case t.mode == SelectionSingle || (it.IsLeaf() && !it.lazy):
		for _, other := range t.Items() {
			other.selected = other == it
		}
	default:
		t.Toggle(it)
	}
	t.emitSelectionChange()
}

// sync reconciles the tree after changed was toggled. Ancestors are
// recomputed first from changed's own state, then changed's state is forced
// onto its descendants.
func (t *Tree) sync(changed *Item) {
	t.syncAncestors(changed.parent)
	changed.cascade()
}

// syncInitial reconciles a newly attached subtree. A selected parent
// selects the subtree, each item is then recomputed from its children, and
// the ancestors are recomputed last.
func (t *Tree) syncInitial(it *Item) {
	if it.parent != nil && it.parent.selected {
		it.selected = true
	}
	it.settle()
	t.syncAncestors(it.parent)
}

// syncAncestors recomputes from and every item above it.
func (t *Tree) syncAncestors(from *Item) {
	for p := from; p != nil; p = p.parent {
		p.recompute()
	}
}

// recompute derives selected and indeterminate from the enabled children.
// Items without enabled children keep their state.
func (it *Item) recompute() {
	allSelected, allClear, found := true, true, false
	for _, c := range it.children {
		if c.disabled {
			continue
		}
		found = true
		if !c.selected {
			allSelected = false
		}
		if c.selected || c.indeterminate {
			allClear = false
		}
	}
	if !found {
		return
	}
	it.selected = allSelected
	it.indeterminate = !allSelected && !allClear
}

// cascade forces the item's selection onto every descendant. Disabled children
// are deselected.
func (it *Item) cascade() {
	for _, c := range it.children {
		c.selected = it.selected && !c.disabled
		c.indeterminate = false
		c.cascade()
	}
}

// settle is the initial form of cascade: children keep their own selection
// unless the parent is selected, and each item is recomputed afterwards.
func (it *Item) settle() {
	for _, c := range it.children {
		c.selected = it.selected || c.selected
		c.settle()
	}
	it.recompute()
}
