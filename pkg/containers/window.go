// Package containers builds the hosting surfaces widgets live in:
// top-level windows and grid, flow, and absolute panels.
package containers

import (
	"formkit/internal/errors"
	"formkit/internal/toolkit"
	"formkit/pkg/types"

	"fyne.io/fyne/v2"
)

// WindowConfig configures a top-level window.
type WindowConfig struct {
	Title   string
	Width   int
	Height  int
	Padded  bool
	Options types.WindowOptions
}

// windowSettings is the normalized form of the public window options.
// Negative-sense flags are inverted here, once, at construction; all
// internal state reads positively.
type windowSettings struct {
	state         types.WindowState
	startPosition types.StartPosition
	showInTaskbar bool
}

// Window wraps a native window together with its normalized settings.
// The toolkit has no taskbar or start-position controls on every
// platform, so settings it cannot express are still recorded and
// readable through the accessors.
type Window struct {
	win      fyne.Window
	settings windowSettings
}

// NewWindow creates a window from cfg. Width and height of zero leave
// the size to the content; negative extents are rejected.
func NewWindow(cfg WindowConfig) (*Window, error) {
	if cfg.Width < 0 || cfg.Height < 0 {
		return nil, errors.NewConfigurationError("window size must not be negative", "size", errors.NegativeExtent, nil)
	}
	if err := toolkit.Init(); err != nil {
		return nil, err
	}
	app, err := toolkit.App()
	if err != nil {
		return nil, err
	}

	win := app.NewWindow(cfg.Title)
	if cfg.Width > 0 && cfg.Height > 0 {
		win.Resize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))
	}
	win.SetPadded(cfg.Padded)

	settings := windowSettings{
		state:         cfg.Options.State,
		startPosition: cfg.Options.StartPosition,
		showInTaskbar: !cfg.Options.HideInTaskbar,
	}

	switch settings.startPosition {
	case types.CenterScreen, types.CenterParent:
		win.CenterOnScreen()
	}
	if settings.state == types.StateMaximized {
		win.SetFullScreen(true)
	}

	return &Window{win: win, settings: settings}, nil
}

// Native exposes the underlying toolkit window.
func (w *Window) Native() fyne.Window { return w.win }

// SetContent places content into the window.
func (w *Window) SetContent(content fyne.CanvasObject) {
	w.win.SetContent(content)
}

// Show makes the window visible.
func (w *Window) Show() { w.win.Show() }

// ShowAndRun shows the window and enters the event loop. It does not
// return until the application quits.
func (w *Window) ShowAndRun() { w.win.ShowAndRun() }

// Close closes the window.
func (w *Window) Close() { w.win.Close() }

// State reports the requested window state.
func (w *Window) State() types.WindowState { return w.settings.state }

// StartPosition reports the requested start position.
func (w *Window) StartPosition() types.StartPosition { return w.settings.startPosition }

// ShowInTaskbar reports whether the window should appear in the taskbar.
func (w *Window) ShowInTaskbar() bool { return w.settings.showInTaskbar }
