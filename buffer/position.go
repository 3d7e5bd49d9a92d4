package buffer

// Position is a (column, line) pair in buffer coordinates. Columns count
// graphemes. A Position is never clamped by itself; negative components are
// read as zero by the buffer operations.
type Position struct {
	Column, Line int
}

// Pos is shorthand for Position{Column: col, Line: line}.
func Pos(col, line int) Position {
	return Position{Column: col, Line: line}
}

func (p Position) normalize() Position {
	return Position{Column: max(p.Column, 0), Line: max(p.Line, 0)}
}
