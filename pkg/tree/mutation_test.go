package tree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/go-drift/interact/pkg/focus"
	"github.com/go-drift/interact/pkg/tree"
)

func TestAppend_InheritsSelectable(t *testing.T) {
	cases := map[string]struct {
		mode tree.SelectionMode
		want bool
	}{
		"Multiple": {mode: tree.SelectionMultiple, want: true},
		"Single":   {mode: tree.SelectionSingle, want: false},
		"Leaf":     {mode: tree.SelectionLeaf, want: false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			tr, items, _ := newTree(t, tc.mode)
			child := tree.NewItem("B1")
			sub := tree.NewItem("D", child)
			tr.Append(items["B"], sub)

			assert.Same(t, tr, sub.Tree())
			assert.Equal(t, tc.want, sub.Selectable())
			assert.Equal(t, tc.want, child.Selectable())
			assert.Equal(t, 4, child.Level())
		})
	}
}

func TestAppend_UnderSelectedParent(t *testing.T) {
	tr, items, _ := newTree(t, tree.SelectionMultiple)
	tr.SelectItem(items["A"])

	a3 := tree.NewItem("A3")
	tr.Append(items["A"], a3)

	assert.True(t, a3.Selected())
	assert.Equal(t, state{Selected: true}, stateOf(items["A"]))
}

func TestAppend_SelectedSubtreeUpdatesAncestors(t *testing.T) {
	tr, items, _ := newTree(t, tree.SelectionMultiple)

	leaf := tree.NewItem("X1")
	leaf.SetSelected(true)
	x := tree.NewItem("X", leaf, tree.NewItem("X2"))
	tr.Append(items["B"], x)

	assert.Equal(t, state{Indeterminate: true}, stateOf(x))
	assert.Equal(t, state{Indeterminate: true}, stateOf(items["B"]))
	assert.Equal(t, state{Indeterminate: true}, stateOf(items["R"]))
}

func TestRemove_ResyncsParent(t *testing.T) {
	tr, items, _ := newTree(t, tree.SelectionMultiple)
	tr.SelectItem(items["A1"])
	require.True(t, items["A"].Indeterminate())

	tr.Remove(items["A2"])

	assert.Nil(t, items["A2"].Tree())
	assert.Equal(t, state{Selected: true}, stateOf(items["A"]))
	assert.Equal(t, state{Indeterminate: true}, stateOf(items["R"]))
	assert.Equal(t, []string{"R", "A", "A1", "B", "C"}, labels(tr.Items()))
}

func TestRemove_FocusedItemFallsBackToFirst(t *testing.T) {
	tr, items, _ := newTree(t, tree.SelectionSingle)
	tr.FocusItem(items["A1"])

	tr.Remove(items["A"])

	assert.Equal(t, "R", focused(tr))
	assert.Same(t, items["R"], tr.LastFocused())
	assert.False(t, items["A1"].FocusNode().HasFocus())
	assert.Equal(t, []string{"R"}, reachable(tr))
}

func TestRemove_LastFocusedWhileAway(t *testing.T) {
	mgr := focus.NewFocusManager()
	a := tree.NewItem("A")
	b := tree.NewItem("B")
	tr := tree.New(tree.Config{Focus: mgr}, a, b)
	tr.FocusItem(b)
	mgr.RequestFocus(&focus.FocusNode{CanRequestFocus: true})

	tr.Remove(b)
	assert.Nil(t, tr.LastFocused())
	assert.Equal(t, []string{"tree"}, reachable(tr))

	tr.Focus()
	assert.Equal(t, "A", focused(tr))
}

func TestApply_Batch(t *testing.T) {
	tr, items, _ := newTree(t, tree.SelectionSingle)

	tr.Apply(
		tree.Mutation{Removed: []*tree.Item{items["C"]}},
		tree.Mutation{Parent: items["B"], Added: []*tree.Item{items["C"]}},
		tree.Mutation{Parent: items["B"], Added: []*tree.Item{items["A1"]}},
	)

	assert.Equal(t, []string{"R", "A", "A2", "B", "C", "A1"}, labels(tr.Items()))
	assert.Same(t, items["B"], items["C"].Parent())
	assert.Equal(t, []string{"R"}, labels(tr.Roots()))
	assert.Equal(t, []string{"A2"}, labels(items["A"].Children()))
}

func TestApply_RejectsCycles(t *testing.T) {
	tr, items, _ := newTree(t, tree.SelectionSingle)
	tr.Append(items["A1"], items["A"])
	tr.Append(items["A"], items["A"])

	assert.Same(t, items["R"], items["A"].Parent())
	assert.True(t, items["A1"].IsLeaf())
}

func TestAppend_MovesBetweenTrees(t *testing.T) {
	x := tree.NewItem("X")
	other := tree.New(tree.Config{Focus: focus.NewFocusManager()}, x)
	tr, items, _ := newTree(t, tree.SelectionSingle)

	tr.Append(nil, x)
	assert.Empty(t, other.Items())
	assert.Same(t, tr, x.Tree())
	assert.Equal(t, []string{"R", "C", "X"}, labels(tr.Roots()))

	other.Append(items["B"], tree.NewItem("foreign"))
	assert.True(t, items["B"].IsLeaf(), "mutations naming another tree's parent are skipped")
}
