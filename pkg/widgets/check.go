package widgets

import (
	"fyne.io/fyne/v2/widget"
)

// CheckConfig configures a checkbox.
type CheckConfig struct {
	Base
	Text    string
	Checked bool
}

// NewCheck builds a checkbox with no handler attached.
func NewCheck(cfg CheckConfig) (Instance, error) {
	if err := cfg.prepare(); err != nil {
		return Instance{}, err
	}

	check := widget.NewCheck(cfg.Text, nil)
	check.SetChecked(cfg.Checked)

	return cfg.apply(check), nil
}
