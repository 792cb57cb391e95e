package view

import (
	"github.com/soocke/camocr/ui/model"
	"github.com/soocke/camocr/ui/theme"

	//lint:ignore ST1001 Dot import is intentional for concise Tk widget DSL builders.
	. "modernc.org/tk9.0"
)

var sizeCaptions = map[model.TextSize]string{
	model.TextNormal:     "標準",
	model.TextLarge:      "大きい",
	model.TextExtraLarge: "特大",
}

// TextPanel shows recognized text and the three size selectors.
type TextPanel interface {
	ShowText(text, class string, size model.TextSize)
}

type textPanel struct {
	heading   *TLabelWidget
	buttons   map[model.TextSize]*TButtonWidget
	textLabel *LabelWidget
	lastClass string
}

// NewTextPanel grids the heading at row, size buttons at row+1 and the text
// at row+2. onSize is called with the chosen size.
func NewTextPanel(row int, wrap string, onSize func(model.TextSize)) TextPanel {
	p := &textPanel{buttons: make(map[model.TextSize]*TButtonWidget)}
	p.heading = TLabel(Txt(""), Style(theme.StyleHeading))
	Grid(p.heading, Row(row), Column(0), Columnspan(3), Pady("0.3m"))
	for i, size := range model.TextSizes {
		size := size
		b := TButton(Txt(sizeCaptions[size]), Style(theme.StyleSizeButton), Command(func() { onSize(size) }))
		Grid(b, Row(row+1), Column(i), Sticky("we"), Padx("0.3m"), Pady("0.3m"))
		p.buttons[size] = b
	}
	pal := theme.CurrentPalette()
	p.textLabel = Label(Txt(""), Wraplength(wrap), Justify("left"), Anchor("nw"),
		Background(pal.Surface), Foreground(pal.Text), Borderwidth(1), Relief("groove"))
	Grid(p.textLabel, Row(row+2), Column(0), Columnspan(3), Sticky("we"), Padx("0.4m"), Pady("0.4m"))
	return p
}

func (p *textPanel) ShowText(text, class string, size model.TextSize) {
	if p == nil || p.textLabel == nil {
		return
	}
	heading := ""
	if text != "" {
		heading = "認識されたテキスト:"
	}
	p.heading.Configure(Txt(heading))
	for s, b := range p.buttons {
		style := theme.StyleSizeButton
		if s == size {
			style = theme.StyleSizeSelected
		}
		b.Configure(Style(style))
	}
	if class != p.lastClass {
		p.textLabel.Configure(Font(theme.TextFamily, theme.FontSizeFor(class)))
		p.lastClass = class
	}
	p.textLabel.Configure(Txt(text))
}
