package widgets

import (
	"fyne.io/fyne/v2/widget"
)

// ButtonConfig configures a push button. The tap handler is deliberately
// absent: the factory constructs, callers bind behavior afterwards.
type ButtonConfig struct {
	Base
	Text    string
	Primary bool
}

// NewButton builds a push button with no handler attached.
func NewButton(cfg ButtonConfig) (Instance, error) {
	if err := cfg.prepare(); err != nil {
		return Instance{}, err
	}

	button := widget.NewButton(cfg.Text, nil)
	if cfg.Primary {
		button.Importance = widget.HighImportance
	}

	return cfg.apply(button), nil
}
