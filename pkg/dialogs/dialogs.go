// Package dialogs composes windows, panels and widgets from the
// factories into three ready-made dialogs: a notification, a text
// prompt and a confirm/deny question.
//
// Each dialog is a small state machine. It is constructing while being
// assembled, displayed once shown, and closed after the user resolves
// it; resolution happens exactly once. Callbacks are bound to the
// dialog value that owns them, so a handler never has to search the
// widget tree for its inputs.
package dialogs

import (
	"sync"

	"formkit/internal/config"
	"formkit/pkg/types"
)

// State describes where a dialog is in its lifecycle.
type State int

const (
	StateConstructing State = iota
	StateDisplayed
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateConstructing:
		return "constructing"
	case StateDisplayed:
		return "displayed"
	case StateClosed:
		return "closed"
	}
	return "unknown"
}

// lifecycle is the shared state machine. Resolution is guarded so a
// button handler and a key handler firing for the same gesture close
// the dialog only once.
type lifecycle struct {
	mu    sync.Mutex
	state State
}

func (l *lifecycle) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *lifecycle) displayed() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == StateConstructing {
		l.state = StateDisplayed
	}
}

// close reports whether this call performed the transition to closed.
func (l *lifecycle) close() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == StateClosed {
		return false
	}
	l.state = StateClosed
	return true
}

func orDefault(text, fallback string) string {
	if text == "" {
		return fallback
	}
	return text
}

// ShowNotification displays a notification dialog and waits for the
// user to dismiss it. An empty buttonText falls back to the configured
// dismiss text. It blocks until the dialog is resolved and therefore
// must not be called from the event dispatch goroutine.
func ShowNotification(cfg *config.Config, title, message, buttonText string) error {
	n, err := NewNotify(cfg, NotifyConfig{
		Title:      title,
		Message:    message,
		ButtonText: buttonText,
	})
	if err != nil {
		return err
	}
	n.Show()
	<-n.Done()
	return nil
}

// PromptForInput displays a text prompt and waits for the user to
// submit. The returned string is whatever the field holds at
// submission; an untouched field yields the empty string, which is a
// valid answer, not an error. It blocks until the dialog is resolved
// and therefore must not be called from the event dispatch goroutine.
func PromptForInput(cfg *config.Config, title, message, buttonText string) (string, error) {
	p, err := NewPrompt(cfg, PromptConfig{
		Title:      title,
		Message:    message,
		ButtonText: buttonText,
	})
	if err != nil {
		return "", err
	}
	p.Show()
	return <-p.Result(), nil
}

// AskConfirmation displays a confirm/deny dialog and waits for the
// user's choice. Empty button texts fall back to the configured confirm
// and decline texts. It blocks until the dialog is resolved and
// therefore must not be called from the event dispatch goroutine.
func AskConfirmation(cfg *config.Config, title, message, confirmText, denyText string) (types.Outcome, error) {
	c, err := NewConfirm(cfg, ConfirmConfig{
		Title:       title,
		Message:     message,
		ConfirmText: confirmText,
		DenyText:    denyText,
	})
	if err != nil {
		return types.Declined, err
	}
	c.Show()
	return <-c.Result(), nil
}
