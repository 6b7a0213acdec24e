package types

// WindowState is the initial state requested for a top-level window.
type WindowState int

const (
	StateNormal WindowState = iota
	StateMaximized
	StateMinimized
)

// String returns the config-file spelling of the state.
func (s WindowState) String() string {
	switch s {
	case StateNormal:
		return "normal"
	case StateMaximized:
		return "maximized"
	case StateMinimized:
		return "minimized"
	}
	return "unknown"
}

// StartPosition is the initial on-screen placement requested for a window.
type StartPosition int

const (
	CenterScreen StartPosition = iota
	ManualPosition
	OSDefaultLocation
	OSDefaultBounds
	CenterParent
)

// String returns the config-file spelling of the start position.
func (p StartPosition) String() string {
	switch p {
	case CenterScreen:
		return "center-screen"
	case ManualPosition:
		return "manual"
	case OSDefaultLocation:
		return "os-default-location"
	case OSDefaultBounds:
		return "os-default-bounds"
	case CenterParent:
		return "center-parent"
	}
	return "unknown"
}

// WindowOptions is the public configuration bundle accepted by the dialog
// entry points. HideInTaskbar is deliberately negative-sense: callers
// reason in terms of hiding, and the container factory maps it to the
// toolkit's positive "show in taskbar" flag at the boundary.
type WindowOptions struct {
	State         WindowState
	StartPosition StartPosition
	HideInTaskbar bool
}
