package widgets

import (
	"sort"

	"formkit/internal/errors"

	"fyne.io/fyne/v2/widget"
)

// SelectConfig configures a dropdown over a fixed set of options.
type SelectConfig struct {
	Base
	Options     []string
	Selected    string // initial selection; must be one of Options
	Placeholder string
	Sorted      bool
}

// NewSelect builds a dropdown.
func NewSelect(cfg SelectConfig) (Instance, error) {
	if cfg.Selected != "" && !contains(cfg.Options, cfg.Selected) {
		return Instance{}, errors.NewConfigurationError("initial selection is not an option", "selected", errors.InvalidOption, nil)
	}
	if err := cfg.prepare(); err != nil {
		return Instance{}, err
	}

	options := make([]string, len(cfg.Options))
	copy(options, cfg.Options)
	if cfg.Sorted {
		sort.Strings(options)
	}

	sel := widget.NewSelect(options, nil)
	if cfg.Placeholder != "" {
		sel.PlaceHolder = cfg.Placeholder
	}
	if cfg.Selected != "" {
		sel.SetSelected(cfg.Selected)
	}

	return cfg.apply(sel), nil
}
