package focus

// RovingGroup keeps exactly one member of a composite widget reachable by
// Tab. Before any member has held focus, the container itself is reachable.
type RovingGroup struct {
	// Container is the composite widget's own node.
	Container *FocusNode

	last *FocusNode
}

// NewRovingGroup creates a group whose container starts reachable.
func NewRovingGroup(container *FocusNode) *RovingGroup {
	container.TabIndex = 0
	return &RovingGroup{Container: container}
}

// Last returns the most recently focused member, or nil.
func (g *RovingGroup) Last() *FocusNode {
	return g.last
}

// Enter grants reachability to node and revokes it from the previous holder
// and the container.
func (g *RovingGroup) Enter(node *FocusNode) {
	if node == nil {
		return
	}
	if g.last != nil && g.last != node {
		g.last.TabIndex = -1
	}
	g.last = node
	g.Container.TabIndex = -1
	node.TabIndex = 0
}

// Leave hands reachability back to the container after focus left the
// widget. The last member is remembered so focus can be restored.
func (g *RovingGroup) Leave() {
	if g.last != nil {
		g.last.TabIndex = -1
	}
	g.Container.TabIndex = 0
}

// Forget drops node if it is the remembered member and reports whether it
// was. The container becomes reachable again.
func (g *RovingGroup) Forget(node *FocusNode) bool {
	if node == nil || g.last != node {
		return false
	}
	g.last = nil
	node.TabIndex = -1
	g.Container.TabIndex = 0
	return true
}
