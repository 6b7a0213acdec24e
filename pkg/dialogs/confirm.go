package dialogs

import (
	"formkit/internal/config"
	"formkit/pkg/containers"
	"formkit/pkg/types"
	"formkit/pkg/widgets"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// ConfirmConfig configures a confirm/deny dialog.
type ConfirmConfig struct {
	Title       string
	Message     string
	ConfirmText string // falls back to the configured confirm text
	DenyText    string // falls back to the configured decline text
}

// Confirm asks a yes/no question. The message spans the full width; the
// two buttons share the row below it half and half. Enter is equivalent
// to confirming, Escape to denying.
type Confirm struct {
	lifecycle
	window   *containers.Window
	confirm  *widget.Button
	deny     *widget.Button
	result   chan types.Outcome
	wmClosed bool
	OnResult func(types.Outcome)
}

// NewConfirm assembles a confirm/deny dialog without showing it.
func NewConfirm(cfg *config.Config, cc ConfirmConfig) (*Confirm, error) {
	win, err := containers.NewWindow(containers.WindowConfig{
		Title:   cc.Title,
		Options: cfg.WindowOptions(),
	})
	if err != nil {
		return nil, err
	}

	message, err := widgets.NewLabel(widgets.LabelConfig{
		Text:  cc.Message,
		Align: types.AlignCenter,
		Wrap:  true,
	})
	if err != nil {
		return nil, err
	}
	confirm, err := widgets.NewButton(widgets.ButtonConfig{
		Text:    orDefault(cc.ConfirmText, cfg.Dialogs.ConfirmText),
		Primary: true,
	})
	if err != nil {
		return nil, err
	}
	deny, err := widgets.NewButton(widgets.ButtonConfig{
		Text: orDefault(cc.DenyText, cfg.Dialogs.DeclineText),
	})
	if err != nil {
		return nil, err
	}

	panel, err := containers.NewGridPanel(containers.GridConfig{
		Columns: []types.SizeRule{types.Percent(50), types.Percent(50)},
		Rows:    []types.SizeRule{types.Percent(100), types.AutoFit()},
	}, []containers.Cell{
		{Item: message, Span: types.Span{Columns: 2}},
		{Item: confirm},
		{Item: deny},
	})
	if err != nil {
		return nil, err
	}

	c := &Confirm{
		window:  win,
		confirm: confirm.Object.(*widget.Button),
		deny:    deny.Object.(*widget.Button),
		result:  make(chan types.Outcome, 1),
	}
	c.confirm.OnTapped = func() { c.Resolve(types.Accepted) }
	c.deny.OnTapped = func() { c.Resolve(types.Declined) }
	// The frame itself stays unpadded; the inset belongs to the panel.
	win.SetContent(container.NewPadded(panel))
	// A window-manager close is a refusal, so waiters on Result are
	// never stranded.
	win.Native().SetOnClosed(func() {
		c.wmClosed = true
		c.Resolve(types.Declined)
	})
	win.Native().Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyReturn, fyne.KeyEnter:
			c.Resolve(types.Accepted)
		case fyne.KeyEscape:
			c.Resolve(types.Declined)
		}
	})
	return c, nil
}

// Show displays the dialog and moves it to the displayed state.
func (c *Confirm) Show() {
	c.displayed()
	c.window.Show()
}

// Resolve closes the dialog with the given outcome. Later calls are
// ignored, so a double-tap or a tap racing a key press settles on the
// first outcome.
func (c *Confirm) Resolve(outcome types.Outcome) {
	if !c.close() {
		return
	}
	if c.OnResult != nil {
		c.OnResult(outcome)
	}
	c.result <- outcome
	if !c.wmClosed {
		c.window.Close()
	}
}

// Result yields the outcome exactly once.
func (c *Confirm) Result() <-chan types.Outcome { return c.result }

// Window exposes the dialog's window wrapper.
func (c *Confirm) Window() *containers.Window { return c.window }

// ConfirmButton exposes the accept button.
func (c *Confirm) ConfirmButton() *widget.Button { return c.confirm }

// DenyButton exposes the decline button.
func (c *Confirm) DenyButton() *widget.Button { return c.deny }
