package layouts

import (
	"fyne.io/fyne/v2"
)

// Flow places children left to right at their minimum sizes and wraps
// to a new line when the next child would cross the right edge.
type Flow struct {
	Gap float32
}

// NewFlow creates a flow layout with no gap between children.
func NewFlow() *Flow {
	return &Flow{}
}

// MinSize reports the widest child and the height of a single line, the
// smallest bounds the flow can wrap into.
func (f *Flow) MinSize(objects []fyne.CanvasObject) fyne.Size {
	var w, h float32
	for _, o := range visible(objects) {
		min := o.MinSize()
		if min.Width > w {
			w = min.Width
		}
		if min.Height > h {
			h = min.Height
		}
	}
	return fyne.NewSize(w, h)
}

// Layout flows children across the available width.
func (f *Flow) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	var x, y, lineHeight float32
	for _, o := range visible(objects) {
		min := o.MinSize()
		if x > 0 && x+min.Width > size.Width {
			x = 0
			y += lineHeight + f.Gap
			lineHeight = 0
		}
		o.Move(fyne.NewPos(x, y))
		o.Resize(min)
		x += min.Width + f.Gap
		if min.Height > lineHeight {
			lineHeight = min.Height
		}
	}
}
