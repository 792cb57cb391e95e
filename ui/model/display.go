package model

// TextSize is the user-selected size for recognized text.
type TextSize string

const (
	TextNormal     TextSize = "normal"
	TextLarge      TextSize = "large"
	TextExtraLarge TextSize = "extra-large"
)

// DefaultTextSize is the middle option.
const DefaultTextSize = TextLarge

// Style identifiers for the recognized text region.
const (
	ClassNormal     = "text-display"
	ClassLarge      = "text-display-large"
	ClassExtraLarge = "text-display-extra-large"
)

// TextSizes lists the selectable sizes in display order.
var TextSizes = []TextSize{TextNormal, TextLarge, TextExtraLarge}

// DisplayClassFor maps a size to its style identifier. Unknown sizes get the
// large style.
func DisplayClassFor(s TextSize) string {
	switch s {
	case TextNormal:
		return ClassNormal
	case TextLarge:
		return ClassLarge
	case TextExtraLarge:
		return ClassExtraLarge
	default:
		return ClassLarge
	}
}

// ParseTextSize converts a config or flag value into a TextSize.
func ParseTextSize(v string) (TextSize, bool) {
	for _, s := range TextSizes {
		if string(s) == v {
			return s, true
		}
	}
	return DefaultTextSize, false
}
