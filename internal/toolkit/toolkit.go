// Package toolkit owns the process-wide registration of the underlying
// GUI toolkit. Factories call Init lazily before constructing widgets;
// repeated calls are no-ops.
package toolkit

import (
	"sync"

	"formkit/internal/errors"
	"formkit/internal/log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
)

const appID = "io.github.formkit"

var (
	mu      sync.Mutex
	initErr error
	ready   bool
)

// Init ensures the toolkit application exists. The first call creates it
// (or adopts an already-running one, which is how the toolkit's test
// driver injects itself); later calls return the recorded result.
func Init() error {
	mu.Lock()
	defer mu.Unlock()

	if ready || initErr != nil {
		return initErr
	}

	if fyne.CurrentApp() != nil {
		ready = true
		return nil
	}

	func() {
		// A missing display driver surfaces as a panic inside the
		// toolkit; translate it into ToolkitUnavailable.
		defer func() {
			if r := recover(); r != nil {
				initErr = errors.NewToolkitError("toolkit initialization failed", errors.Newf("%v", r))
			}
		}()
		app.NewWithID(appID)
	}()

	if initErr != nil {
		log.LogError(initErr, "could not initialize GUI toolkit")
		return initErr
	}

	if fyne.CurrentApp() == nil {
		initErr = errors.NewToolkitError("toolkit did not register an application", nil)
		return initErr
	}

	ready = true
	log.Debug("GUI toolkit initialized")
	return nil
}

// App returns the toolkit application, initializing it if needed.
func App() (fyne.App, error) {
	if err := Init(); err != nil {
		return nil, err
	}
	return fyne.CurrentApp(), nil
}

// Reset clears the recorded initialization state. Tests use it to run
// Init against a fresh or replaced toolkit application.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	ready = false
	initErr = nil
}
