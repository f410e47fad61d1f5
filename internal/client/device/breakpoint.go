package device

// Size is a screen-size category derived from the available width in
// columns (terminal) or logical pixels (graphical shells).
type Size string

const (
	SizeCompact Size = "compact"
	SizeRegular Size = "regular"
	SizeWide    Size = "wide"
)

// Breakpoints between the categories. Widths below compactMax are compact,
// widths at or above regularMax are wide.
const (
	compactMax = 80
	regularMax = 140
)

// Classify maps a width to its size category.
func Classify(width int) Size {
	switch {
	case width < compactMax:
		return SizeCompact
	case width < regularMax:
		return SizeRegular
	default:
		return SizeWide
	}
}
