package layouts_test

import (
	"image/color"
	"testing"

	"formkit/pkg/layouts"
	"formkit/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"github.com/stretchr/testify/assert"
)

func rect(minW, minH float32) *canvas.Rectangle {
	r := canvas.NewRectangle(color.Black)
	r.SetMinSize(fyne.NewSize(minW, minH))
	return r
}

func TestGridSplitsPercentColumnsEvenly(t *testing.T) {
	grid := layouts.NewGrid(
		[]types.SizeRule{types.Percent(50), types.Percent(50)},
		[]types.SizeRule{types.Percent(100)},
	)
	left, right := rect(10, 10), rect(10, 10)
	objects := []fyne.CanvasObject{left, right}

	grid.Layout(objects, fyne.NewSize(200, 100))

	assert.Equal(t, fyne.NewPos(0, 0), left.Position())
	assert.Equal(t, fyne.NewSize(100, 100), left.Size())
	assert.Equal(t, fyne.NewPos(100, 0), right.Position())
	assert.Equal(t, fyne.NewSize(100, 100), right.Size())
}

func TestGridAutoFitRowTakesContentHeight(t *testing.T) {
	grid := layouts.NewGrid(
		[]types.SizeRule{types.Percent(100)},
		[]types.SizeRule{types.Percent(100), types.AutoFit()},
	)
	body, footer := rect(10, 10), rect(10, 40)
	objects := []fyne.CanvasObject{body, footer}

	grid.Layout(objects, fyne.NewSize(100, 200))

	assert.Equal(t, fyne.NewSize(100, 160), body.Size())
	assert.Equal(t, fyne.NewPos(0, 160), footer.Position())
	assert.Equal(t, fyne.NewSize(100, 40), footer.Size())
}

func TestGridFullRowSpanTracksResize(t *testing.T) {
	grid := layouts.NewGrid(
		[]types.SizeRule{types.Percent(50), types.Percent(50)},
		[]types.SizeRule{types.Percent(100), types.AutoFit()},
	)
	header := rect(10, 10)
	left, right := rect(10, 20), rect(10, 20)
	grid.SetSpan(header, types.Span{Columns: 2})
	objects := []fyne.CanvasObject{header, left, right}

	grid.Layout(objects, fyne.NewSize(200, 100))
	assert.Equal(t, float32(200), header.Size().Width)
	assert.Equal(t, fyne.NewPos(0, 80), left.Position())
	assert.Equal(t, fyne.NewPos(100, 80), right.Position())

	// The span keeps covering the whole row after a resize.
	grid.Layout(objects, fyne.NewSize(300, 100))
	assert.Equal(t, float32(300), header.Size().Width)
	assert.Equal(t, fyne.NewPos(150, 80), right.Position())
}

func TestGridSkipsHiddenChildren(t *testing.T) {
	grid := layouts.NewGrid(
		[]types.SizeRule{types.Percent(50), types.Percent(50)},
		[]types.SizeRule{types.Percent(100)},
	)
	hidden, shown := rect(10, 10), rect(10, 10)
	hidden.Hide()
	objects := []fyne.CanvasObject{hidden, shown}

	grid.Layout(objects, fyne.NewSize(200, 100))

	// The visible child takes the first cell.
	assert.Equal(t, fyne.NewPos(0, 0), shown.Position())
}

func TestGridMinSizeSumsTracks(t *testing.T) {
	grid := layouts.NewGrid(
		[]types.SizeRule{types.AutoFit(), types.AutoFit()},
		[]types.SizeRule{types.AutoFit()},
	)
	objects := []fyne.CanvasObject{rect(30, 25), rect(50, 15)}

	min := grid.MinSize(objects)

	assert.Equal(t, fyne.NewSize(80, 25), min)
}

func TestFlowWrapsAtRightEdge(t *testing.T) {
	flow := layouts.NewFlow()
	a, b, c := rect(40, 20), rect(40, 20), rect(40, 20)
	objects := []fyne.CanvasObject{a, b, c}

	flow.Layout(objects, fyne.NewSize(100, 100))

	assert.Equal(t, fyne.NewPos(0, 0), a.Position())
	assert.Equal(t, fyne.NewPos(40, 0), b.Position())
	assert.Equal(t, fyne.NewPos(0, 20), c.Position())
}

func TestFlowMinSizeIsOneLine(t *testing.T) {
	flow := layouts.NewFlow()
	objects := []fyne.CanvasObject{rect(40, 20), rect(60, 30)}

	assert.Equal(t, fyne.NewSize(60, 30), flow.MinSize(objects))
}
