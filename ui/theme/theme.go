package theme

// Centralized theming and styling for the camocr window.
// Provides palette constants, text display fonts and SetDark to activate a
// base theme and configure semantic widget styles.

import (
	"github.com/soocke/camocr/ui/model"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

// Palette defines core semantic colors used across widgets.
const (
	ColorBg        = "#f7f9fb" // app background
	ColorSurface   = "#ffffff" // panels, text region
	ColorBorder    = "#d0d7de"
	ColorPrimary   = "#3b82f6" // start camera
	ColorDanger    = "#ef4444" // stop camera
	ColorAccent    = "#22c55e" // capture
	ColorText      = "#1e293b"
	ColorTextMuted = "#64748b"
)

// PaletteSnapshot represents resolved colors for the active mode.
type PaletteSnapshot struct {
	AppBg     string
	Surface   string
	Border    string
	Primary   string
	Danger    string
	Accent    string
	Text      string
	TextMuted string
}

// CurrentPalette returns colors for the current dark/light mode.
func CurrentPalette() PaletteSnapshot {
	if darkMode {
		return PaletteSnapshot{
			AppBg:     "#0f172a",
			Surface:   "#1e293b",
			Border:    "#334155",
			Primary:   "#2563eb",
			Danger:    "#dc2626",
			Accent:    "#16a34a",
			Text:      "#f1f5f9",
			TextMuted: "#94a3b8",
		}
	}
	return PaletteSnapshot{
		AppBg:     ColorBg,
		Surface:   ColorSurface,
		Border:    ColorBorder,
		Primary:   ColorPrimary,
		Danger:    ColorDanger,
		Accent:    ColorAccent,
		Text:      ColorText,
		TextMuted: ColorTextMuted,
	}
}

// style names used with Style("primary.TButton") etc.
const (
	StylePrimaryButton = "primary.TButton"
	StyleDangerButton  = "danger.TButton"
	StyleAccentButton  = "accent.TButton"
	StyleSizeButton    = "size.TButton"
	StyleSizeSelected  = "sizeSelected.TButton"
	StyleHeading       = "heading.TLabel"
)

// TextFamily is used for recognized text; CJK glyphs come from the
// platform's fallback fonts.
const TextFamily = "Helvetica"

// FontSizeFor maps a display class to a point size.
func FontSizeFor(class string) int {
	switch class {
	case model.ClassNormal:
		return 16
	case model.ClassExtraLarge:
		return 36
	default:
		return 24
	}
}

// internal flag for current mode
var darkMode bool

// SetDark toggles dark mode and reapplies styles. Returns new mode value.
func SetDark(dark bool) bool {
	darkMode = dark
	applyStyles(darkMode)
	return darkMode
}

func applyStyles(dark bool) {
	_ = ActivateTheme("azure light")
	p := CurrentPalette()
	App.Configure(Background(p.AppBg))

	button := func(name, bg string) {
		StyleConfigure(name, Background(bg), Foreground("white"), Padding("6p 4p"), Borderwidth(1), Relief("ridge"))
	}
	button(StylePrimaryButton, p.Primary)
	button(StyleDangerButton, p.Danger)
	button(StyleAccentButton, p.Accent)
	StyleConfigure(StyleSizeButton, Foreground(p.TextMuted), Padding("4p 2p"))
	StyleConfigure(StyleSizeSelected, Foreground(p.Text), Padding("4p 2p"), Relief("sunken"))
	StyleConfigure(StyleHeading, Foreground(p.Text), Background(p.AppBg), Padding("2p 4p"))
}
