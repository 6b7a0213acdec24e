package toolkit_test

import (
	"testing"

	"formkit/internal/toolkit"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitAdoptsRunningApplication(t *testing.T) {
	app := test.NewApp()
	toolkit.Reset()

	require.NoError(t, toolkit.Init())

	got, err := toolkit.App()
	require.NoError(t, err)
	assert.Same(t, app, got)
}

func TestInitIsIdempotent(t *testing.T) {
	test.NewApp()
	toolkit.Reset()

	require.NoError(t, toolkit.Init())
	require.NoError(t, toolkit.Init())

	first, err := toolkit.App()
	require.NoError(t, err)
	second, err := toolkit.App()
	require.NoError(t, err)
	assert.Same(t, first, second)
}
