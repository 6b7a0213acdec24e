package types

// TextAlign is the horizontal alignment of display text.
type TextAlign int

const (
	AlignLeading TextAlign = iota
	AlignCenter
	AlignTrailing
)

// SelectionMode controls how many list entries may be selected at once.
type SelectionMode int

const (
	SingleSelection SelectionMode = iota
	MultipleSelection
)
