package types

// SizeRuleKind selects how a grid row or column is sized.
type SizeRuleKind int

const (
	// SizePercent assigns the track a fixed share of the remaining space.
	SizePercent SizeRuleKind = iota
	// SizeAuto fits the track to the largest content it holds.
	SizeAuto
)

// SizeRule describes the sizing of a single grid row or column.
type SizeRule struct {
	Kind    SizeRuleKind
	Percent float32 // share of remaining space, 0-100; only for SizePercent
}

// Percent returns a rule giving the track p percent of the remaining space.
func Percent(p float32) SizeRule {
	return SizeRule{Kind: SizePercent, Percent: p}
}

// AutoFit returns a rule sizing the track to its content.
func AutoFit() SizeRule {
	return SizeRule{Kind: SizeAuto}
}

// Span declares how many grid cells a child occupies. The zero value
// means a single cell.
type Span struct {
	Columns int
	Rows    int
}

// normalized returns the span with zero fields raised to one.
func (s Span) Normalized() Span {
	if s.Columns < 1 {
		s.Columns = 1
	}
	if s.Rows < 1 {
		s.Rows = 1
	}
	return s
}
