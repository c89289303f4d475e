package overlay

import "golang.org/x/text/language"

// Direction is a reading direction.
type Direction uint8

const (
	// LeftToRight is the default reading direction.
	LeftToRight Direction = iota
	// RightToLeft mirrors start and end.
	RightToLeft
)

// IsRTL reports whether d is right-to-left.
func (d Direction) IsRTL() bool {
	return d == RightToLeft
}

// String returns "ltr" or "rtl".
func (d Direction) String() string {
	if d == RightToLeft {
		return "rtl"
	}
	return "ltr"
}

// rtlScripts are the ISO 15924 codes of scripts written right-to-left.
var rtlScripts = map[string]bool{
	"Arab": true,
	"Hebr": true,
	"Thaa": true,
	"Syrc": true,
	"Nkoo": true,
	"Adlm": true,
	"Rohg": true,
	"Mand": true,
	"Samr": true,
}

// DirectionForLocale returns the reading direction of a BCP 47 language tag.
// The script is inferred when the tag does not name one ("ar" implies Arab).
// Unparseable tags are treated as left-to-right.
func DirectionForLocale(tag string) Direction {
	t, err := language.Parse(tag)
	if err != nil {
		return LeftToRight
	}
	script, conf := t.Script()
	if conf == language.No {
		return LeftToRight
	}
	if rtlScripts[script.String()] {
		return RightToLeft
	}
	return LeftToRight
}
