package widgets

import (
	"formkit/internal/errors"

	"fyne.io/fyne/v2/widget"
)

// EntryConfig configures an editable text field.
type EntryConfig struct {
	Base
	Text        string
	Placeholder string
	MultiLine   bool
	Password    bool
	ReadOnly    bool
}

// NewEntry builds a text input field. ReadOnly is normalized to the
// toolkit's disabled state, which keeps the text visible but uneditable.
func NewEntry(cfg EntryConfig) (Instance, error) {
	if cfg.MultiLine && cfg.Password {
		return Instance{}, errors.NewConfigurationError("a password field cannot be multi-line", "multiLine", errors.InvalidOption, nil)
	}
	if err := cfg.prepare(); err != nil {
		return Instance{}, err
	}

	var entry *widget.Entry
	switch {
	case cfg.MultiLine:
		entry = widget.NewMultiLineEntry()
	case cfg.Password:
		entry = widget.NewPasswordEntry()
	default:
		entry = widget.NewEntry()
	}

	entry.SetText(cfg.Text)
	entry.SetPlaceHolder(cfg.Placeholder)
	if cfg.ReadOnly {
		entry.Disable()
	}

	return cfg.apply(entry), nil
}
