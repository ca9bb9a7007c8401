package focus

import "testing"

func TestFocusManager_RequestFocus(t *testing.T) {
	m := NewFocusManager()
	var events []bool
	a := &FocusNode{CanRequestFocus: true, OnFocusChange: func(f bool) { events = append(events, f) }}
	b := &FocusNode{CanRequestFocus: true}
	disabled := &FocusNode{}

	if !m.RequestFocus(a) || !a.HasFocus() {
		t.Fatal("a should take focus")
	}
	if m.RequestFocus(disabled) {
		t.Error("a node that cannot request focus should be refused")
	}
	if m.PrimaryFocus != a {
		t.Error("refused request should leave focus unchanged")
	}
	m.RequestFocus(b)
	if a.HasFocus() || !b.HasFocus() {
		t.Error("focus should move from a to b")
	}
	if len(events) != 2 || !events[0] || events[1] {
		t.Errorf("a focus events = %v, want [true false]", events)
	}
}

func TestFocusManager_LosingNodeSeesNewFocus(t *testing.T) {
	m := NewFocusManager()
	b := &FocusNode{CanRequestFocus: true}
	var seen *FocusNode
	a := &FocusNode{CanRequestFocus: true}
	a.OnFocusChange = func(f bool) {
		if !f {
			seen = m.PrimaryFocus
		}
	}
	m.RequestFocus(a)
	m.RequestFocus(b)
	if seen != b {
		t.Error("blur callback should observe the new primary focus")
	}
}

func TestRovingGroup(t *testing.T) {
	container := &FocusNode{CanRequestFocus: true}
	g := NewRovingGroup(container)
	a := &FocusNode{CanRequestFocus: true, TabIndex: -1}
	b := &FocusNode{CanRequestFocus: true, TabIndex: -1}

	reachable := func() int {
		n := 0
		for _, node := range []*FocusNode{container, a, b} {
			if node.Reachable() {
				n++
			}
		}
		return n
	}

	if !container.Reachable() || reachable() != 1 {
		t.Fatal("container should be the only reachable node initially")
	}

	g.Enter(a)
	if !a.Reachable() || reachable() != 1 {
		t.Error("a should be the only reachable node after Enter(a)")
	}
	g.Enter(b)
	if !b.Reachable() || reachable() != 1 {
		t.Error("b should be the only reachable node after Enter(b)")
	}
	g.Leave()
	if !container.Reachable() || reachable() != 1 {
		t.Error("container should be the only reachable node after Leave")
	}
	if g.Last() != b {
		t.Error("Leave should remember the last member")
	}
	if g.Forget(a) {
		t.Error("Forget should ignore nodes that are not remembered")
	}
	if !g.Forget(b) || g.Last() != nil {
		t.Error("Forget(b) should clear the remembered member")
	}
}

func TestParseKey(t *testing.T) {
	tests := []struct {
		name string
		want Key
	}{
		{"ArrowUp", KeyUp},
		{"End", KeyEnd},
		{" ", KeySpace},
		{"Space", KeySpace},
		{"F13", KeyUnknown},
	}
	for _, tt := range tests {
		if got := ParseKey(tt.name); got != tt.want {
			t.Errorf("ParseKey(%q) = %v, want %v", tt.name, got, tt.want)
		}
		if tt.want != KeyUnknown && tt.want != KeySpace && tt.want.String() != tt.name {
			t.Errorf("Key(%d).String() = %q, want %q", tt.want, tt.want.String(), tt.name)
		}
	}
}
