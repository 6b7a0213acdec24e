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

// PromptConfig configures a text prompt dialog.
type PromptConfig struct {
	Title       string
	Message     string
	Placeholder string
	Initial     string // initial field content
	ButtonText  string // falls back to the configured confirm text
}

// Prompt asks the user for a line of text. Submitting the field with
// Enter is equivalent to tapping the confirm button; the answer is read
// from the field at the moment of submission, so an untouched field
// yields the empty string.
type Prompt struct {
	lifecycle
	window   *containers.Window
	input    *widget.Entry
	confirm  *widget.Button
	result   chan string
	wmClosed bool
	OnSubmit func(text string)
}

// NewPrompt assembles a prompt dialog without showing it.
func NewPrompt(cfg *config.Config, pc PromptConfig) (*Prompt, error) {
	win, err := containers.NewWindow(containers.WindowConfig{
		Title:   pc.Title,
		Options: cfg.WindowOptions(),
	})
	if err != nil {
		return nil, err
	}

	message, err := widgets.NewLabel(widgets.LabelConfig{
		Text: pc.Message,
		Wrap: true,
	})
	if err != nil {
		return nil, err
	}
	input, err := widgets.NewEntry(widgets.EntryConfig{
		Text:        pc.Initial,
		Placeholder: pc.Placeholder,
	})
	if err != nil {
		return nil, err
	}
	button, err := widgets.NewButton(widgets.ButtonConfig{
		Text:    orDefault(pc.ButtonText, cfg.Dialogs.ConfirmText),
		Primary: true,
	})
	if err != nil {
		return nil, err
	}

	panel, err := containers.NewGridPanel(containers.GridConfig{
		Columns: []types.SizeRule{types.Percent(100)},
		Rows:    []types.SizeRule{types.Percent(100), types.AutoFit(), types.AutoFit()},
	}, []containers.Cell{
		{Item: message},
		{Item: input},
		{Item: button},
	})
	if err != nil {
		return nil, err
	}

	p := &Prompt{
		window:  win,
		input:   input.Object.(*widget.Entry),
		confirm: button.Object.(*widget.Button),
		result:  make(chan string, 1),
	}
	p.confirm.OnTapped = p.Submit
	p.input.OnSubmitted = func(string) { p.Submit() }
	// The frame itself stays unpadded; the inset belongs to the panel.
	win.SetContent(container.NewPadded(panel))
	// A window-manager close submits whatever the field holds, so
	// waiters on Result are never stranded.
	win.Native().SetOnClosed(func() {
		p.wmClosed = true
		p.Submit()
	})
	win.Native().Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyReturn, fyne.KeyEnter:
			p.Submit()
		}
	})
	return p, nil
}

// Show displays the dialog and focuses the input field.
func (p *Prompt) Show() {
	p.displayed()
	p.window.Show()
	p.window.Native().Canvas().Focus(p.input)
}

// Submit resolves the dialog with the field's current content. Later
// calls are ignored.
func (p *Prompt) Submit() {
	if !p.close() {
		return
	}
	text := p.input.Text
	if p.OnSubmit != nil {
		p.OnSubmit(text)
	}
	p.result <- text
	if !p.wmClosed {
		p.window.Close()
	}
}

// Result yields the submitted text exactly once.
func (p *Prompt) Result() <-chan string { return p.result }

// Window exposes the dialog's window wrapper.
func (p *Prompt) Window() *containers.Window { return p.window }

// Input exposes the text field, mainly for driving the dialog from
// tests.
func (p *Prompt) Input() *widget.Entry { return p.input }

// ConfirmButton exposes the confirm button.
func (p *Prompt) ConfirmButton() *widget.Button { return p.confirm }
