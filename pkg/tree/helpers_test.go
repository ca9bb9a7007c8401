package tree_test

import (
	"testing"

	"github.com/go-drift/interact/pkg/focus"
	"github.com/go-drift/interact/pkg/tree"
)

type events struct {
	selections [][]string
	expanded   []string
	collapsed  []string
	lazy       []string
}

func labels(items []*tree.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Label)
	}
	return out
}

// newTree builds
//
//	R
//	├── A
//	│   ├── A1
//	│   └── A2
//	└── B
//	C
//
// with R and A expanded.
func newTree(t *testing.T, mode tree.SelectionMode) (*tree.Tree, map[string]*tree.Item, *events) {
	t.Helper()
	items := map[string]*tree.Item{}
	mk := func(label string, children ...*tree.Item) *tree.Item {
		it := tree.NewItem(label, children...)
		items[label] = it
		return it
	}
	r := mk("R", mk("A", mk("A1"), mk("A2")), mk("B"))
	c := mk("C")
	items["R"].SetExpanded(true)
	items["A"].SetExpanded(true)

	ev := &events{}
	tr := tree.New(tree.Config{
		Selection:         mode,
		Focus:             focus.NewFocusManager(),
		OnSelectionChange: func(sel []*tree.Item) { ev.selections = append(ev.selections, labels(sel)) },
		OnExpand:          func(it *tree.Item) { ev.expanded = append(ev.expanded, it.Label) },
		OnCollapse:        func(it *tree.Item) { ev.collapsed = append(ev.collapsed, it.Label) },
		OnLazyLoad:        func(it *tree.Item) { ev.lazy = append(ev.lazy, it.Label) },
	}, r, c)
	return tr, items, ev
}

type state struct {
	Selected      bool
	Indeterminate bool
}

func stateOf(it *tree.Item) state {
	return state{Selected: it.Selected(), Indeterminate: it.Indeterminate()}
}
