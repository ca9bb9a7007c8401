package semantics

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFlags(t *testing.T) {
	var f Flags
	f = f.Set(SemanticsIsSelected).Set(SemanticsIsDisabled)
	if !f.Has(SemanticsIsSelected) || !f.Has(SemanticsIsDisabled) {
		t.Errorf("flags %b should have selected and disabled", f)
	}
	f = f.SetTo(SemanticsIsSelected, false)
	if f.Has(SemanticsIsSelected) {
		t.Error("SetTo(false) should clear the flag")
	}
	if f.Has(SemanticsIsSelected | SemanticsIsDisabled) {
		t.Error("Has should require every bit")
	}
}

func TestAttributes_Slider(t *testing.T) {
	p := Properties{
		Role:     RoleSlider,
		Label:    "1 of 2",
		Flags:    SemanticsIsFocusable,
		TabIndex: 0,
		Range:    &RangeValue{Min: 0, Max: 100, Now: 12.5, Text: "12.5%"},
	}
	want := map[string]string{
		"role":           "slider",
		"aria-label":     "1 of 2",
		"tabindex":       "0",
		"aria-valuemin":  "0",
		"aria-valuemax":  "100",
		"aria-valuenow":  "12.5",
		"aria-valuetext": "12.5%",
	}
	if diff := cmp.Diff(want, p.Attributes()); diff != "" {
		t.Errorf("attributes mismatch (-want +got):\n%s", diff)
	}
}

func TestAttributes_TreeItem(t *testing.T) {
	p := Properties{
		Role:     RoleTreeItem,
		Flags:    SemanticsHasSelectedState | SemanticsIsMixed | SemanticsHasExpandedState | SemanticsIsFocusable,
		Level:    2,
		TabIndex: -1,
	}
	want := map[string]string{
		"role":          "treeitem",
		"aria-checked":  "mixed",
		"aria-selected": "false",
		"aria-expanded": "false",
		"aria-level":    "2",
		"tabindex":      "-1",
	}
	if diff := cmp.Diff(want, p.Attributes()); diff != "" {
		t.Errorf("attributes mismatch (-want +got):\n%s", diff)
	}
}

func TestAttributes_Tree(t *testing.T) {
	p := Properties{Role: RoleTree, Flags: SemanticsIsMultiSelectable}
	if got := p.Attributes()["aria-multiselectable"]; got != "true" {
		t.Errorf("aria-multiselectable = %q, want true", got)
	}
	if got := (Properties{Role: RoleTree}).Attributes()["aria-multiselectable"]; got != "false" {
		t.Errorf("aria-multiselectable = %q, want false", got)
	}
}

func TestIsEmpty(t *testing.T) {
	if !(Properties{}).IsEmpty() {
		t.Error("zero Properties should be empty")
	}
	if (Properties{Level: 1}).IsEmpty() {
		t.Error("Properties with a level should not be empty")
	}
}

func TestAttributeNamesSorted(t *testing.T) {
	p := Properties{Role: RoleSlider, Label: "x", Range: &RangeValue{}}
	want := []string{"aria-label", "aria-valuemax", "aria-valuemin", "aria-valuenow", "role"}
	if diff := cmp.Diff(want, p.AttributeNames()); diff != "" {
		t.Errorf("names mismatch (-want +got):\n%s", diff)
	}
}
