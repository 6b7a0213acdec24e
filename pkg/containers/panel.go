package containers

import (
	"fmt"

	"formkit/internal/errors"
	"formkit/pkg/layouts"
	"formkit/pkg/types"
	"formkit/pkg/widgets"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
)

// Cell pairs a widget with the number of grid cells it covers.
type Cell struct {
	Item widgets.Instance
	Span types.Span
}

// GridConfig declares the tracks of a grid panel.
type GridConfig struct {
	Columns []types.SizeRule
	Rows    []types.SizeRule
}

func validateRules(rules []types.SizeRule, param string) error {
	for _, rule := range rules {
		if rule.Kind != types.SizePercent {
			continue
		}
		if rule.Percent <= 0 || rule.Percent > 100 {
			return errors.NewConfigurationError(
				fmt.Sprintf("percentage %v is outside (0, 100]", rule.Percent),
				param, errors.InvalidPercentage, nil)
		}
	}
	return nil
}

// rejectManual refuses children that carry manual coordinates. A panel
// that positions its children by layout cannot honor them, and silently
// dropping them would hide a caller bug.
func rejectManual(cells []Cell) error {
	for i, cell := range cells {
		if cell.Item.Placement.Kind == types.Manual {
			return errors.NewConfigurationError(
				fmt.Sprintf("child %d has manual coordinates inside a managed panel", i),
				"children", errors.PlacementConflict, errors.ErrPlacementConflict)
		}
	}
	return nil
}

// NewGridPanel arranges cells in a grid sized by the configured rules.
// Children are placed row-major in the order given; spans cover the
// cells to the right and below their own.
func NewGridPanel(cfg GridConfig, cells []Cell) (*fyne.Container, error) {
	if len(cfg.Columns) == 0 || len(cfg.Rows) == 0 {
		return nil, errors.NewConfigurationError("grid needs at least one column and one row", "grid", errors.InvalidConfig, errors.ErrInvalidConfig)
	}
	if err := validateRules(cfg.Columns, "columns"); err != nil {
		return nil, err
	}
	if err := validateRules(cfg.Rows, "rows"); err != nil {
		return nil, err
	}
	if err := rejectManual(cells); err != nil {
		return nil, err
	}

	grid := layouts.NewGrid(cfg.Columns, cfg.Rows)
	objects := make([]fyne.CanvasObject, 0, len(cells))
	for i, cell := range cells {
		span := cell.Span.Normalized()
		if span.Columns > len(cfg.Columns) || span.Rows > len(cfg.Rows) {
			return nil, errors.NewConfigurationError(
				fmt.Sprintf("child %d spans %dx%d cells in a %dx%d grid", i, span.Columns, span.Rows, len(cfg.Columns), len(cfg.Rows)),
				"span", errors.SpanOutOfRange, nil)
		}
		if span.Columns > 1 || span.Rows > 1 {
			grid.SetSpan(cell.Item.Object, span)
		}
		objects = append(objects, cell.Item.Object)
	}

	return container.New(grid, objects...), nil
}

// NewFlowPanel lays children out left to right, wrapping at the panel
// edge. Spans have no meaning here and are ignored.
func NewFlowPanel(cells []Cell) (*fyne.Container, error) {
	if err := rejectManual(cells); err != nil {
		return nil, err
	}

	objects := make([]fyne.CanvasObject, 0, len(cells))
	for _, cell := range cells {
		objects = append(objects, cell.Item.Object)
	}
	return container.New(layouts.NewFlow(), objects...), nil
}

// NewAbsolutePanel hosts manually positioned children. Every child must
// carry manual coordinates; the panel applies no layout of its own.
func NewAbsolutePanel(items []widgets.Instance) (*fyne.Container, error) {
	for i, item := range items {
		if item.Placement.Kind != types.Manual {
			return nil, errors.NewConfigurationError(
				fmt.Sprintf("child %d has no coordinates for an absolute panel", i),
				"children", errors.PlacementConflict, errors.ErrPlacementConflict)
		}
	}

	objects := make([]fyne.CanvasObject, 0, len(items))
	for _, item := range items {
		objects = append(objects, item.Object)
	}
	return container.NewWithoutLayout(objects...), nil
}
