package tree

// Mutation is one structural change: Removed items are detached, then Added
// items are appended under Parent (nil for top level).
type Mutation struct {
	Parent  *Item
	Added   []*Item
	Removed []*Item
}

// Append adds items as the last children of parent, or as top-level items
// when parent is nil.
func (t *Tree) Append(parent *Item, items ...*Item) {
	t.Apply(Mutation{Parent: parent, Added: items})
}

// Remove detaches items and their subtrees.
func (t *Tree) Remove(items ...*Item) {
	t.Apply(Mutation{Removed: items})
}

// Apply processes a batch of mutations in order. Added items take the
// mode's selectable flag and are reconciled against their new parent; the
// parents of removed items are reconciled against their remaining children.
// Mutations naming a parent from another tree are skipped.
func (t *Tree) Apply(batch ...Mutation) {
	for _, m := range batch {
		for _, it := range m.Removed {
			t.remove(it)
		}
		if m.Parent != nil && m.Parent.tree != t {
			continue
		}
		var added []*Item
		for _, it := range m.Added {
			if it == nil || it == m.Parent || (m.Parent != nil && it.contains(m.Parent)) {
				continue
			}
			t.insert(m.Parent, it)
			added = append(added, it)
		}
		if len(added) == 0 {
			continue
		}
		if p := m.Parent; p != nil && p.loading {
			p.loading = false
			p.lazy = false
		}
		if t.mode == SelectionMultiple {
			for _, it := range added {
				t.syncInitial(it)
			}
		}
	}
}

func (t *Tree) insert(parent, it *Item) {
	switch {
	case it.tree != nil && it.tree != t:
		it.tree.Remove(it)
	case it.tree == t:
		t.unlink(it)
	default:
		it.detach()
	}
	it.parent = parent
	if parent == nil {
		t.roots = append(t.roots, it)
	} else {
		parent.children = append(parent.children, it)
	}
	multiple := t.mode == SelectionMultiple
	it.walk(func(n *Item) {
		n.tree = t
		n.selectable = multiple
		n.node.CanRequestFocus = !n.disabled
		if n != t.lastFocused {
			n.node.TabIndex = -1
		}
		n.node.OnFocusChange = func(hasFocus bool) { t.handleItemFocus(n, hasFocus) }
	})
}

// unlink takes an attached item out of its parent or the top level.
func (t *Tree) unlink(it *Item) {
	if it.parent != nil {
		it.detach()
		return
	}
	for i, r := range t.roots {
		if r == it {
			t.roots = append(t.roots[:i:i], t.roots[i+1:]...)
			break
		}
	}
}

func (t *Tree) remove(it *Item) {
	if it == nil || it.tree != t {
		return
	}
	parent := it.parent
	hadFocus := false
	t.unlink(it)
	it.walk(func(n *Item) {
		if n.node.HasFocus() {
			hadFocus = true
		}
		if n == t.lastFocused {
			t.roving.Forget(&n.node)
			t.lastFocused = nil
		}
		n.tree = nil
		n.node.OnFocusChange = nil
	})
	if hadFocus {
		t.focus.Blur()
		t.focusFirst()
	}
	if parent != nil && t.mode == SelectionMultiple {
		t.syncAncestors(parent)
	}
}
