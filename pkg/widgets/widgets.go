// Package widgets is the primitive factory: one configuration struct and
// one constructor per widget kind. A factory validates its configuration,
// registers the toolkit if this is the first call, constructs exactly one
// widget and hands it back. No parenting and no event binding happen
// here.
package widgets

import (
	"formkit/internal/errors"
	"formkit/internal/toolkit"
	"formkit/pkg/types"

	"fyne.io/fyne/v2"
)

// Instance pairs a constructed toolkit object with the placement it was
// configured with. Containers use the placement to decide whether the
// object participates in layout or keeps its absolute geometry.
type Instance struct {
	Object    fyne.CanvasObject
	Placement types.Placement
}

// Base holds the configuration shared by every widget kind. The boolean
// flags are public negative-sense ("disable", "hide") so the zero value
// yields an enabled, visible widget; they are normalized to the toolkit's
// positive-sense calls inside the factory and never stored inverted.
type Base struct {
	Placement types.Placement
	Disabled  bool
	Hidden    bool
}

// validate rejects out-of-range geometry before any widget is built.
func (b Base) validate() error {
	if b.Placement.Kind != types.Manual {
		return nil
	}
	if b.Placement.X < 0 || b.Placement.Y < 0 {
		return errors.NewConfigurationError("coordinates must be non-negative", "placement", errors.NegativeCoordinate, nil)
	}
	if b.Placement.Width < 0 || b.Placement.Height < 0 {
		return errors.NewConfigurationError("extent must be non-negative", "placement", errors.NegativeExtent, nil)
	}
	return nil
}

// apply normalizes the base configuration onto a freshly built object.
// Manual placement sets the exact requested geometry; docked and
// grid-cell widgets are left for their parent to size.
func (b Base) apply(obj fyne.CanvasObject) Instance {
	if b.Placement.Kind == types.Manual {
		obj.Move(fyne.NewPos(float32(b.Placement.X), float32(b.Placement.Y)))
		obj.Resize(fyne.NewSize(float32(b.Placement.Width), float32(b.Placement.Height)))
	}
	if b.Disabled {
		if d, ok := obj.(fyne.Disableable); ok {
			d.Disable()
		}
	}
	if b.Hidden {
		obj.Hide()
	}
	return Instance{Object: obj, Placement: b.Placement}
}

// prepare runs shared validation and lazy toolkit registration.
func (b Base) prepare() error {
	if err := b.validate(); err != nil {
		return err
	}
	return toolkit.Init()
}

func textAlign(a types.TextAlign) fyne.TextAlign {
	switch a {
	case types.AlignCenter:
		return fyne.TextAlignCenter
	case types.AlignTrailing:
		return fyne.TextAlignTrailing
	default:
		return fyne.TextAlignLeading
	}
}

func contains(options []string, value string) bool {
	for _, o := range options {
		if o == value {
			return true
		}
	}
	return false
}
