package widgets

import (
	"sort"

	"formkit/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"
)

// ListConfig configures a list box over a fixed set of string items.
type ListConfig struct {
	Base
	Items  []string
	Mode   types.SelectionMode
	Sorted bool
}

// NewList builds a list box. Single selection maps to the toolkit's list
// widget; multiple selection maps to its check group, the toolkit's
// multi-select primitive.
func NewList(cfg ListConfig) (Instance, error) {
	if err := cfg.prepare(); err != nil {
		return Instance{}, err
	}

	items := make([]string, len(cfg.Items))
	copy(items, cfg.Items)
	if cfg.Sorted {
		sort.Strings(items)
	}

	if cfg.Mode == types.MultipleSelection {
		group := widget.NewCheckGroup(items, nil)
		return cfg.apply(group), nil
	}

	list := widget.NewList(
		func() int {
			return len(items)
		},
		func() fyne.CanvasObject {
			return widget.NewLabel("")
		},
		func(id widget.ListItemID, obj fyne.CanvasObject) {
			if id < 0 || id >= len(items) {
				return
			}
			obj.(*widget.Label).SetText(items[id])
		},
	)

	return cfg.apply(list), nil
}
