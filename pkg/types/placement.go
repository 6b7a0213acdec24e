package types

// PlacementKind selects how a widget obtains its geometry.
type PlacementKind int

const (
	// Docked lets the widget fill whatever cell its parent container
	// assigns. It is the zero value so a default-configured widget drops
	// into any managed panel.
	Docked PlacementKind = iota
	// Manual places the widget at explicit coordinates with an explicit extent.
	Manual
	// GridCell places the widget into the next free cell of a grid panel.
	GridCell
)

// String returns the placement kind name used in error messages.
func (k PlacementKind) String() string {
	switch k {
	case Manual:
		return "manual"
	case Docked:
		return "docked"
	case GridCell:
		return "grid-cell"
	}
	return "unknown"
}

// Placement is the tagged geometry variant carried by every widget
// configuration. The coordinate fields are only meaningful for Manual;
// Docked and GridCell widgets are sized by their parent.
type Placement struct {
	Kind   PlacementKind
	X      int
	Y      int
	Width  int
	Height int
}

// ManualPlacement returns an absolute placement at (x, y) with the given extent.
func ManualPlacement(x, y, width, height int) Placement {
	return Placement{Kind: Manual, X: x, Y: y, Width: width, Height: height}
}

// DockedPlacement returns a placement that fills the parent cell.
func DockedPlacement() Placement {
	return Placement{Kind: Docked}
}

// GridCellPlacement returns a placement managed by a grid panel.
func GridCellPlacement() Placement {
	return Placement{Kind: GridCell}
}
