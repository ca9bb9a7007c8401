// Package semantics describes the accessibility attributes the engines
// compute for the render layer: roles, state flags and range values.
package semantics

import (
	"sort"
	"strconv"
)

// Role is the accessibility role of a node.
type Role int

const (
	RoleNone Role = iota
	RoleSlider
	RoleTree
	RoleTreeItem
	RoleGroup
)

func (r Role) String() string {
	switch r {
	case RoleSlider:
		return "slider"
	case RoleTree:
		return "tree"
	case RoleTreeItem:
		return "treeitem"
	case RoleGroup:
		return "group"
	default:
		return ""
	}
}

// Flags is a bitset of boolean semantic states.
type Flags uint32

const (
	// SemanticsHasSelectedState marks nodes that can be selected.
	SemanticsHasSelectedState Flags = 1 << iota
	// SemanticsIsSelected marks selected nodes.
	SemanticsIsSelected
	// SemanticsIsMixed marks the tri-state "partially selected" value.
	SemanticsIsMixed
	// SemanticsHasExpandedState marks nodes that can expand.
	SemanticsHasExpandedState
	// SemanticsIsExpanded marks expanded nodes.
	SemanticsIsExpanded
	// SemanticsIsDisabled marks nodes that ignore input.
	SemanticsIsDisabled
	// SemanticsIsMultiSelectable marks containers allowing several selected children.
	SemanticsIsMultiSelectable
	// SemanticsIsBusy marks nodes whose content is loading.
	SemanticsIsBusy
	// SemanticsIsFocusable marks nodes that can take focus.
	SemanticsIsFocusable
)

// Has reports whether all bits in flag are set.
func (f Flags) Has(flag Flags) bool {
	return f&flag == flag
}

// Set returns f with flag set.
func (f Flags) Set(flag Flags) Flags {
	return f | flag
}

// Clear returns f with flag cleared.
func (f Flags) Clear(flag Flags) Flags {
	return f &^ flag
}

// SetTo sets or clears flag depending on on.
func (f Flags) SetTo(flag Flags, on bool) Flags {
	if on {
		return f.Set(flag)
	}
	return f.Clear(flag)
}

// RangeValue carries the numeric state of a range control.
type RangeValue struct {
	Min  float64
	Max  float64
	Now  float64
	Text string
}

// Properties is the full semantic description of one node.
type Properties struct {
	Role  Role
	Label string
	Flags Flags
	// Level is the 1-based nesting depth for hierarchical roles.
	Level int
	// TabIndex is the sequential navigation index (0 reachable, -1 not).
	TabIndex int
	// Range is set for slider-like roles.
	Range *RangeValue
}

// IsEmpty reports whether the properties carry no information.
func (p Properties) IsEmpty() bool {
	return p.Role == RoleNone && p.Label == "" && p.Flags == 0 && p.Level == 0 && p.Range == nil
}

// Attributes renders the properties as ARIA attribute name/value pairs.
func (p Properties) Attributes() map[string]string {
	attrs := make(map[string]string)
	if role := p.Role.String(); role != "" {
		attrs["role"] = role
	}
	if p.Label != "" {
		attrs["aria-label"] = p.Label
	}
	if p.Flags.Has(SemanticsHasSelectedState) {
		switch {
		case p.Role == RoleTreeItem && p.Flags.Has(SemanticsIsMixed):
			attrs["aria-checked"] = "mixed"
			attrs["aria-selected"] = "false"
		default:
			attrs["aria-selected"] = strconv.FormatBool(p.Flags.Has(SemanticsIsSelected))
		}
	}
	if p.Flags.Has(SemanticsHasExpandedState) {
		attrs["aria-expanded"] = strconv.FormatBool(p.Flags.Has(SemanticsIsExpanded))
	}
	if p.Flags.Has(SemanticsIsDisabled) {
		attrs["aria-disabled"] = "true"
	}
	if p.Flags.Has(SemanticsIsBusy) {
		attrs["aria-busy"] = "true"
	}
	if p.Role == RoleTree {
		attrs["aria-multiselectable"] = strconv.FormatBool(p.Flags.Has(SemanticsIsMultiSelectable))
	}
	if p.Level > 0 {
		attrs["aria-level"] = strconv.Itoa(p.Level)
	}
	if p.Flags.Has(SemanticsIsFocusable) {
		attrs["tabindex"] = strconv.Itoa(p.TabIndex)
	}
	if p.Range != nil {
		attrs["aria-valuemin"] = formatNumber(p.Range.Min)
		attrs["aria-valuemax"] = formatNumber(p.Range.Max)
		attrs["aria-valuenow"] = formatNumber(p.Range.Now)
		if p.Range.Text != "" {
			attrs["aria-valuetext"] = p.Range.Text
		}
	}
	return attrs
}

// AttributeNames returns the attribute names of Attributes in sorted order.
func (p Properties) AttributeNames() []string {
	attrs := p.Attributes()
	names := make([]string, 0, len(attrs))
	for name := range attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
