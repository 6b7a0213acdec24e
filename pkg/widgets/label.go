package widgets

import (
	"image/color"

	"formkit/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// LabelConfig configures a read-only text widget.
type LabelConfig struct {
	Base
	Text   string
	Align  types.TextAlign
	Bold   bool
	Italic bool
	Wrap   bool
	Color  *color.NRGBA // nil uses the theme foreground
}

// NewLabel builds a display-only text widget. A colored label is rendered
// as canvas text, which does not wrap; plain labels support word wrap.
func NewLabel(cfg LabelConfig) (Instance, error) {
	if err := cfg.prepare(); err != nil {
		return Instance{}, err
	}

	if cfg.Color != nil {
		text := canvas.NewText(cfg.Text, *cfg.Color)
		text.Alignment = textAlign(cfg.Align)
		text.TextStyle = fyne.TextStyle{Bold: cfg.Bold, Italic: cfg.Italic}
		return cfg.apply(text), nil
	}

	label := widget.NewLabelWithStyle(cfg.Text, textAlign(cfg.Align), fyne.TextStyle{Bold: cfg.Bold, Italic: cfg.Italic})
	if cfg.Wrap {
		label.Wrapping = fyne.TextWrapWord
	}
	return cfg.apply(label), nil
}
