// Package localization supplies the reading direction widgets use to map
// arrow keys to expand and collapse.
package localization

import "golang.org/x/text/language"

// Direction is a text reading direction.
type Direction int

const (
	// LTR is left-to-right.
	LTR Direction = iota
	// RTL is right-to-left.
	RTL
)

func (d Direction) String() string {
	if d == RTL {
		return "rtl"
	}
	return "ltr"
}

// ParseDirection maps "rtl" to RTL and anything else to LTR.
func ParseDirection(s string) Direction {
	if s == "rtl" {
		return RTL
	}
	return LTR
}

// Localizer reports the current text direction.
type Localizer interface {
	Dir() Direction
}

// Fixed is a Localizer with a constant direction.
type Fixed Direction

// Dir returns the fixed direction.
func (f Fixed) Dir() Direction {
	return Direction(f)
}

// rtlScripts lists ISO 15924 codes of scripts written right to left.
var rtlScripts = map[string]bool{
	"Adlm": true,
	"Arab": true,
	"Hebr": true,
	"Mand": true,
	"Nkoo": true,
	"Rohg": true,
	"Samr": true,
	"Syrc": true,
	"Thaa": true,
	"Yezi": true,
}

// FromTag derives the direction of a BCP 47 language tag from its script,
// inferring the script when the tag omits it. Unparseable tags are LTR.
func FromTag(tag string) Direction {
	t, err := language.Parse(tag)
	if err != nil {
		return LTR
	}
	script, _ := t.Script()
	if rtlScripts[script.String()] {
		return RTL
	}
	return LTR
}

// Tag is a Localizer for a fixed language tag.
type Tag string

// Dir returns the direction of the tag's script.
func (t Tag) Dir() Direction {
	return FromTag(string(t))
}
