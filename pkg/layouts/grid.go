// Package layouts implements the layout contract of the container
// factory: a rules-based grid (per-row/column sizing, spans) and a
// wrapping flow, both as toolkit layout plugins.
package layouts

import (
	"formkit/pkg/types"

	"fyne.io/fyne/v2"
)

// Grid arranges children into rows and columns sized by explicit rules.
// Auto-fit tracks take the largest minimum size of their occupants;
// percent tracks split the space left over between them. Children fill
// cells row-major; a span makes one child cover several cells.
type Grid struct {
	Columns []types.SizeRule
	Rows    []types.SizeRule

	spans map[fyne.CanvasObject]types.Span
}

// NewGrid creates a grid layout with the given column and row rules.
func NewGrid(columns, rows []types.SizeRule) *Grid {
	return &Grid{
		Columns: columns,
		Rows:    rows,
		spans:   make(map[fyne.CanvasObject]types.Span),
	}
}

// SetSpan declares that obj covers the given number of columns and rows
// starting at the cell it is assigned to.
func (g *Grid) SetSpan(obj fyne.CanvasObject, span types.Span) {
	g.spans[obj] = span.Normalized()
}

// Span returns the span declared for obj, defaulting to a single cell.
func (g *Grid) Span(obj fyne.CanvasObject) types.Span {
	if s, ok := g.spans[obj]; ok {
		return s
	}
	return types.Span{Columns: 1, Rows: 1}
}

// placement is a resolved cell assignment.
type placement struct {
	obj      fyne.CanvasObject
	col, row int
	span     types.Span
}

// assign fills cells row-major, skipping cells covered by earlier spans.
// Objects that do not fit in the grid are left unplaced.
func (g *Grid) assign(objects []fyne.CanvasObject) []placement {
	cols, rows := len(g.Columns), len(g.Rows)
	if cols == 0 || rows == 0 {
		return nil
	}

	occupied := make([][]bool, rows)
	for r := range occupied {
		occupied[r] = make([]bool, cols)
	}

	var placed []placement
	col, row := 0, 0
	for _, obj := range objects {
		// Advance to the next free cell.
		for row < rows && occupied[row][col] {
			col++
			if col == cols {
				col, row = 0, row+1
			}
		}
		if row >= rows {
			break
		}

		span := g.Span(obj)
		if col+span.Columns > cols {
			span.Columns = cols - col
		}
		if row+span.Rows > rows {
			span.Rows = rows - row
		}

		for r := row; r < row+span.Rows; r++ {
			for c := col; c < col+span.Columns; c++ {
				occupied[r][c] = true
			}
		}
		placed = append(placed, placement{obj: obj, col: col, row: row, span: span})
	}
	return placed
}

// contentMins returns the per-column and per-row minimum content sizes,
// measured from single-cell occupants.
func (g *Grid) contentMins(placed []placement) ([]float32, []float32) {
	colMin := make([]float32, len(g.Columns))
	rowMin := make([]float32, len(g.Rows))
	for _, p := range placed {
		min := p.obj.MinSize()
		if p.span.Columns == 1 && min.Width > colMin[p.col] {
			colMin[p.col] = min.Width
		}
		if p.span.Rows == 1 && min.Height > rowMin[p.row] {
			rowMin[p.row] = min.Height
		}
	}
	return colMin, rowMin
}

// tracks resolves the sizing rules into concrete extents for one axis.
func tracks(rules []types.SizeRule, mins []float32, total float32) []float32 {
	out := make([]float32, len(rules))

	var fixed float32
	for i, rule := range rules {
		if rule.Kind == types.SizeAuto {
			out[i] = mins[i]
			fixed += mins[i]
		}
	}

	remaining := total - fixed
	if remaining < 0 {
		remaining = 0
	}
	for i, rule := range rules {
		if rule.Kind == types.SizePercent {
			out[i] = remaining * rule.Percent / 100
		}
	}
	return out
}

func offsets(extents []float32) []float32 {
	out := make([]float32, len(extents))
	var pos float32
	for i, e := range extents {
		out[i] = pos
		pos += e
	}
	return out
}

func sum(extents []float32, from, count int) float32 {
	var total float32
	for i := from; i < from+count && i < len(extents); i++ {
		total += extents[i]
	}
	return total
}

// MinSize reports the size needed to show every auto-fit track at its
// content size; percent tracks contribute their occupants' minimums so
// the grid never collapses below its content.
func (g *Grid) MinSize(objects []fyne.CanvasObject) fyne.Size {
	placed := g.assign(visible(objects))
	colMin, rowMin := g.contentMins(placed)

	var w, h float32
	for _, m := range colMin {
		w += m
	}
	for _, m := range rowMin {
		h += m
	}
	return fyne.NewSize(w, h)
}

// Layout positions each child over the cells it occupies.
func (g *Grid) Layout(objects []fyne.CanvasObject, size fyne.Size) {
	placed := g.assign(visible(objects))
	colMin, rowMin := g.contentMins(placed)

	widths := tracks(g.Columns, colMin, size.Width)
	heights := tracks(g.Rows, rowMin, size.Height)
	xs := offsets(widths)
	ys := offsets(heights)

	for _, p := range placed {
		p.obj.Move(fyne.NewPos(xs[p.col], ys[p.row]))
		p.obj.Resize(fyne.NewSize(
			sum(widths, p.col, p.span.Columns),
			sum(heights, p.row, p.span.Rows),
		))
	}
}

func visible(objects []fyne.CanvasObject) []fyne.CanvasObject {
	out := make([]fyne.CanvasObject, 0, len(objects))
	for _, o := range objects {
		if o.Visible() {
			out = append(out, o)
		}
	}
	return out
}
