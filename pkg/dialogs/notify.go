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

// NotifyConfig configures a notification dialog.
type NotifyConfig struct {
	Title      string
	Message    string
	ButtonText string // falls back to the configured dismiss text
}

// Notify shows a message with a single dismiss button. Pressing Enter
// or Escape is equivalent to tapping the button.
type Notify struct {
	lifecycle
	window    *containers.Window
	message   *widget.Label
	dismiss   *widget.Button
	done      chan struct{}
	wmClosed  bool
	OnDismiss func()
}

// NewNotify assembles a notification dialog without showing it.
func NewNotify(cfg *config.Config, nc NotifyConfig) (*Notify, error) {
	win, err := containers.NewWindow(containers.WindowConfig{
		Title:   nc.Title,
		Options: cfg.WindowOptions(),
	})
	if err != nil {
		return nil, err
	}

	message, err := widgets.NewLabel(widgets.LabelConfig{
		Text:  nc.Message,
		Align: types.AlignCenter,
		Wrap:  true,
	})
	if err != nil {
		return nil, err
	}
	button, err := widgets.NewButton(widgets.ButtonConfig{
		Text:    orDefault(nc.ButtonText, cfg.Dialogs.DismissText),
		Primary: true,
	})
	if err != nil {
		return nil, err
	}

	panel, err := containers.NewGridPanel(containers.GridConfig{
		Columns: []types.SizeRule{types.Percent(100)},
		Rows:    []types.SizeRule{types.Percent(100), types.AutoFit()},
	}, []containers.Cell{
		{Item: message},
		{Item: button},
	})
	if err != nil {
		return nil, err
	}

	n := &Notify{
		window:  win,
		message: message.Object.(*widget.Label),
		dismiss: button.Object.(*widget.Button),
		done:    make(chan struct{}, 1),
	}
	n.dismiss.OnTapped = n.Dismiss
	// The frame itself stays unpadded; the inset belongs to the panel.
	win.SetContent(container.NewPadded(panel))
	// A window-manager close counts as a dismissal, so waiters on Done
	// are never stranded.
	win.Native().SetOnClosed(func() {
		n.wmClosed = true
		n.Dismiss()
	})
	win.Native().Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyReturn, fyne.KeyEnter, fyne.KeyEscape:
			n.Dismiss()
		}
	})
	return n, nil
}

// Show displays the dialog and moves it to the displayed state.
func (n *Notify) Show() {
	n.displayed()
	n.window.Show()
}

// Dismiss resolves the dialog. Later calls are ignored.
func (n *Notify) Dismiss() {
	if !n.close() {
		return
	}
	if n.OnDismiss != nil {
		n.OnDismiss()
	}
	n.done <- struct{}{}
	if !n.wmClosed {
		n.window.Close()
	}
}

// Done is signalled once, when the dialog is dismissed.
func (n *Notify) Done() <-chan struct{} { return n.done }

// Window exposes the dialog's window wrapper.
func (n *Notify) Window() *containers.Window { return n.window }

// DismissButton exposes the dismiss button, mainly for driving the
// dialog from tests.
func (n *Notify) DismissButton() *widget.Button { return n.dismiss }
