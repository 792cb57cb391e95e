package presenter

import "github.com/soocke/camocr/ui/model"

// TextSizeModel stores the selected text size.
type TextSizeModel interface{ SetTextSize(model.TextSize) }

// TextSizePresenter forwards size selections to the model.
type TextSizePresenter struct{ model TextSizeModel }

func NewTextSizePresenter(m TextSizeModel) *TextSizePresenter { return &TextSizePresenter{model: m} }

func (p *TextSizePresenter) Select(size model.TextSize) {
	if p == nil || p.model == nil {
		return
	}
	p.model.SetTextSize(size)
}
