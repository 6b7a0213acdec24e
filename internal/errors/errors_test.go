package errors_test

import (
	stderrors "errors"
	"testing"

	"formkit/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigurationErrorMessage(t *testing.T) {
	err := errors.NewConfigurationError("extent must be non-negative", "placement", errors.NegativeExtent, nil)

	assert.Equal(t, "extent must be non-negative: placement", err.Error())
	assert.Equal(t, "placement", err.Param())
	assert.Equal(t, errors.NegativeExtent, err.Kind())
}

func TestConfigurationErrorWrapsCause(t *testing.T) {
	cause := stderrors.New("boom")
	err := errors.NewConfigurationError("bad grid", "rows", errors.InvalidPercentage, cause)

	assert.Equal(t, "bad grid: rows: boom", err.Error())
	assert.True(t, errors.Is(err, cause))
}

func TestToolkitError(t *testing.T) {
	cause := stderrors.New("no display")
	err := errors.NewToolkitError("toolkit initialization failed", cause)

	assert.Equal(t, "toolkit initialization failed: no display", err.Error())
	assert.Equal(t, errors.ToolkitUnavailable, err.Kind())
	assert.True(t, errors.Is(err, cause))
}

func TestPredicates(t *testing.T) {
	cfgErr := errors.NewConfigurationError("conflict", "children", errors.PlacementConflict, nil)
	tkErr := errors.NewToolkitError("down", nil)

	assert.True(t, errors.IsInvalidConfiguration(cfgErr))
	assert.True(t, errors.IsPlacementConflict(cfgErr))
	assert.False(t, errors.IsToolkitUnavailable(cfgErr))

	assert.True(t, errors.IsToolkitUnavailable(tkErr))
	assert.False(t, errors.IsInvalidConfiguration(tkErr))

	other := errors.NewConfigurationError("bad option", "selected", errors.InvalidOption, nil)
	assert.True(t, errors.IsInvalidConfiguration(other))
	assert.False(t, errors.IsPlacementConflict(other))
}

func TestPredicatesSeeThroughWrapping(t *testing.T) {
	inner := errors.NewConfigurationError("conflict", "children", errors.PlacementConflict, nil)
	wrapped := errors.Wrap(inner, "building panel")

	require.Error(t, wrapped)
	assert.True(t, errors.IsInvalidConfiguration(wrapped))
	assert.True(t, errors.IsPlacementConflict(wrapped))
}

func TestWrapNilReturnsNil(t *testing.T) {
	assert.NoError(t, errors.Wrap(nil, "context"))
	assert.NoError(t, errors.Wrapf(nil, "context %d", 1))
}

func TestNewAndNewf(t *testing.T) {
	assert.Equal(t, "plain", errors.New("plain").Error())
	assert.Equal(t, "value 42", errors.Newf("value %d", 42).Error())
}
