package widgets

import (
	"formkit/internal/errors"

	"fyne.io/fyne/v2/widget"
)

// RadioConfig configures a group of radio buttons.
type RadioConfig struct {
	Base
	Options    []string
	Selected   string // initial selection; must be one of Options
	Horizontal bool
}

// NewRadioGroup builds a radio button group with no handler attached.
func NewRadioGroup(cfg RadioConfig) (Instance, error) {
	if cfg.Selected != "" && !contains(cfg.Options, cfg.Selected) {
		return Instance{}, errors.NewConfigurationError("initial selection is not an option", "selected", errors.InvalidOption, nil)
	}
	if err := cfg.prepare(); err != nil {
		return Instance{}, err
	}

	radio := widget.NewRadioGroup(cfg.Options, nil)
	radio.Horizontal = cfg.Horizontal
	if cfg.Selected != "" {
		radio.SetSelected(cfg.Selected)
	}

	return cfg.apply(radio), nil
}
