package dialogs_test

import (
	"testing"

	"formkit/internal/config"
	"formkit/pkg/dialogs"
	"formkit/pkg/types"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotifyLifecycle(t *testing.T) {
	test.NewApp()
	cfg := config.NewTestConfig()

	n, err := dialogs.NewNotify(cfg, dialogs.NotifyConfig{
		Title:   "heads up",
		Message: "the files were moved",
	})
	require.NoError(t, err)
	assert.Equal(t, dialogs.StateConstructing, n.State())

	n.Show()
	assert.Equal(t, dialogs.StateDisplayed, n.State())

	test.Tap(n.DismissButton())
	assert.Equal(t, dialogs.StateClosed, n.State())

	select {
	case <-n.Done():
	default:
		t.Fatal("dismiss did not signal done")
	}
}

func TestNotifyUsesConfiguredDismissText(t *testing.T) {
	test.NewApp()
	cfg := config.NewTestConfig()

	n, err := dialogs.NewNotify(cfg, dialogs.NotifyConfig{Message: "hi"})
	require.NoError(t, err)

	assert.Equal(t, "Dismiss", n.DismissButton().Text)
}

func TestNotifyEmptyMessageIsValid(t *testing.T) {
	test.NewApp()
	cfg := config.NewTestConfig()

	n, err := dialogs.NewNotify(cfg, dialogs.NotifyConfig{})
	require.NoError(t, err)

	test.Tap(n.DismissButton())
	assert.Equal(t, dialogs.StateClosed, n.State())
}

func TestNotifyEscapeDismisses(t *testing.T) {
	test.NewApp()
	cfg := config.NewTestConfig()

	n, err := dialogs.NewNotify(cfg, dialogs.NotifyConfig{Message: "bye"})
	require.NoError(t, err)
	n.Show()

	n.Window().Native().Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.Equal(t, dialogs.StateClosed, n.State())
}

func TestNotifyDismissIsIdempotent(t *testing.T) {
	test.NewApp()
	cfg := config.NewTestConfig()

	calls := 0
	n, err := dialogs.NewNotify(cfg, dialogs.NotifyConfig{Message: "once"})
	require.NoError(t, err)
	n.OnDismiss = func() { calls++ }
	n.Show()

	n.Dismiss()
	n.Dismiss()

	assert.Equal(t, 1, calls)
}

func TestPromptReturnsTypedText(t *testing.T) {
	test.NewApp()
	cfg := config.NewTestConfig()

	p, err := dialogs.NewPrompt(cfg, dialogs.PromptConfig{
		Title:   "name",
		Message: "Who are you?",
	})
	require.NoError(t, err)
	p.Show()

	test.Type(p.Input(), "Alice")
	test.Tap(p.ConfirmButton())

	assert.Equal(t, "Alice", <-p.Result())
	assert.Equal(t, dialogs.StateClosed, p.State())
}

func TestPromptUntouchedFieldYieldsEmptyString(t *testing.T) {
	test.NewApp()
	cfg := config.NewTestConfig()

	p, err := dialogs.NewPrompt(cfg, dialogs.PromptConfig{Message: "anything?"})
	require.NoError(t, err)
	p.Show()

	// An immediate confirm is a valid empty answer, not an error.
	test.Tap(p.ConfirmButton())
	assert.Equal(t, "", <-p.Result())
}

func TestPromptFieldSubmitEqualsConfirm(t *testing.T) {
	test.NewApp()
	cfg := config.NewTestConfig()

	p, err := dialogs.NewPrompt(cfg, dialogs.PromptConfig{Message: "type"})
	require.NoError(t, err)
	p.Show()

	test.Type(p.Input(), "Bob")
	p.Input().OnSubmitted(p.Input().Text)

	assert.Equal(t, "Bob", <-p.Result())
}

func TestPromptInitialValueAndCallback(t *testing.T) {
	test.NewApp()
	cfg := config.NewTestConfig()

	var got string
	p, err := dialogs.NewPrompt(cfg, dialogs.PromptConfig{
		Message: "confirm name",
		Initial: "Carol",
	})
	require.NoError(t, err)
	p.OnSubmit = func(text string) { got = text }
	p.Show()

	test.Tap(p.ConfirmButton())

	assert.Equal(t, "Carol", got)
	assert.Equal(t, "Carol", <-p.Result())
}

func TestConfirmOutcomes(t *testing.T) {
	test.NewApp()
	cfg := config.NewTestConfig()

	accepted, err := dialogs.NewConfirm(cfg, dialogs.ConfirmConfig{Message: "proceed?"})
	require.NoError(t, err)
	accepted.Show()
	test.Tap(accepted.ConfirmButton())
	assert.Equal(t, types.Accepted, <-accepted.Result())

	declined, err := dialogs.NewConfirm(cfg, dialogs.ConfirmConfig{Message: "proceed?"})
	require.NoError(t, err)
	declined.Show()
	test.Tap(declined.DenyButton())
	assert.Equal(t, types.Declined, <-declined.Result())
}

func TestConfirmKeyboardEquivalents(t *testing.T) {
	test.NewApp()
	cfg := config.NewTestConfig()

	enter, err := dialogs.NewConfirm(cfg, dialogs.ConfirmConfig{Message: "save?"})
	require.NoError(t, err)
	enter.Show()
	enter.Window().Native().Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyReturn})
	assert.Equal(t, types.Accepted, <-enter.Result())

	escape, err := dialogs.NewConfirm(cfg, dialogs.ConfirmConfig{Message: "save?"})
	require.NoError(t, err)
	escape.Show()
	escape.Window().Native().Canvas().OnTypedKey()(&fyne.KeyEvent{Name: fyne.KeyEscape})
	assert.Equal(t, types.Declined, <-escape.Result())
}

func TestConfirmResolvesOnlyOnce(t *testing.T) {
	test.NewApp()
	cfg := config.NewTestConfig()

	var outcomes []types.Outcome
	c, err := dialogs.NewConfirm(cfg, dialogs.ConfirmConfig{Message: "sure?"})
	require.NoError(t, err)
	c.OnResult = func(o types.Outcome) { outcomes = append(outcomes, o) }
	c.Show()

	c.Resolve(types.Accepted)
	c.Resolve(types.Declined)

	assert.Equal(t, []types.Outcome{types.Accepted}, outcomes)
	assert.Equal(t, types.Accepted, <-c.Result())
}

func TestNotifyWindowCloseCountsAsDismiss(t *testing.T) {
	test.NewApp()
	cfg := config.NewTestConfig()

	n, err := dialogs.NewNotify(cfg, dialogs.NotifyConfig{Message: "bye"})
	require.NoError(t, err)
	n.Show()

	n.Window().Native().Close()

	assert.Equal(t, dialogs.StateClosed, n.State())
	select {
	case <-n.Done():
	default:
		t.Fatal("window close did not signal done")
	}
}

func TestPromptWindowCloseSubmitsFieldContent(t *testing.T) {
	test.NewApp()
	cfg := config.NewTestConfig()

	p, err := dialogs.NewPrompt(cfg, dialogs.PromptConfig{Message: "name?"})
	require.NoError(t, err)
	p.Show()

	test.Type(p.Input(), "Dave")
	p.Window().Native().Close()

	assert.Equal(t, "Dave", <-p.Result())
	assert.Equal(t, dialogs.StateClosed, p.State())
}

func TestConfirmWindowCloseIsDeclined(t *testing.T) {
	test.NewApp()
	cfg := config.NewTestConfig()

	c, err := dialogs.NewConfirm(cfg, dialogs.ConfirmConfig{Message: "sure?"})
	require.NoError(t, err)
	c.Show()

	c.Window().Native().Close()

	assert.Equal(t, types.Declined, <-c.Result())
	assert.Equal(t, dialogs.StateClosed, c.State())
}

func TestDialogWindowsAreUnpadded(t *testing.T) {
	test.NewApp()
	cfg := config.NewTestConfig()

	n, err := dialogs.NewNotify(cfg, dialogs.NotifyConfig{Message: "m"})
	require.NoError(t, err)
	assert.False(t, n.Window().Native().Padded())

	p, err := dialogs.NewPrompt(cfg, dialogs.PromptConfig{Message: "m"})
	require.NoError(t, err)
	assert.False(t, p.Window().Native().Padded())

	c, err := dialogs.NewConfirm(cfg, dialogs.ConfirmConfig{Message: "m"})
	require.NoError(t, err)
	assert.False(t, c.Window().Native().Padded())
}

func TestConfirmUsesConfiguredButtonTexts(t *testing.T) {
	test.NewApp()
	cfg := config.NewTestConfig()

	c, err := dialogs.NewConfirm(cfg, dialogs.ConfirmConfig{Message: "?"})
	require.NoError(t, err)

	assert.Equal(t, "Accept", c.ConfirmButton().Text)
	assert.Equal(t, "Reject", c.DenyButton().Text)
}
