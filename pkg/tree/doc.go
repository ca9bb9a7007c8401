// Package tree is the selection and navigation engine behind a hierarchical
// tree view.
//
// A Tree owns a forest of Items in document order. It keeps selection
// consistent across parents and children, moves keyboard focus over the
// items a user can currently see, and maintains a roving tab index so the
// tree is a single stop in sequential navigation.
//
// Selection modes:
//   - SelectionSingle: at most one item is selected.
//   - SelectionMultiple: items toggle independently; a parent is selected when
//     all of its enabled children are, and indeterminate when they are mixed.
//   - SelectionLeaf: only leaves are selected, at most one at a time; pressing
//     a parent expands or collapses it.
//
// Basic usage:
//
//	root := tree.NewItem("Fruits",
//	    tree.NewItem("Apple"),
//	    tree.NewItem("Pear"),
//	)
//	t := tree.New(tree.Config{
//	    Selection: tree.SelectionMultiple,
//	    OnSelectionChange: func(selected []*tree.Item) { ... },
//	}, root)
//	t.HandleKey(focus.KeyEvent{Key: focus.KeyDown})
//
// The tree is not safe for concurrent use.
package tree
