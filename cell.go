package hexes

import "github.com/mattn/go-runewidth"

// Cell represents a single character cell in the render buffer.
// Wide characters (CJK, emoji) occupy multiple cells; the first cell holds
// the rune, subsequent cells are marked as continuations.
//
// Styling beyond geometry is out of scope for the toolkit, so a Cell carries
// no color or attribute information.
type Cell struct {
	Rune  rune  // the character (0 for continuation cells)
	Width uint8 // display width (1 or 2; 0 for continuation)
}

// NewCell creates a new Cell with automatic width detection.
func NewCell(r rune) Cell {
	return Cell{Rune: r, Width: uint8(max(1, runewidth.RuneWidth(r)))}
}

// continuationCell marks the trailing cell of a wide character.
func continuationCell() Cell {
	return Cell{Rune: 0, Width: 0}
}

// IsContinuation returns true if this cell is the trailing half of a wide
// character.
func (c Cell) IsContinuation() bool {
	return c.Width == 0 && c.Rune == 0
}

// IsEmpty returns true if this cell is blank.
func (c Cell) IsEmpty() bool {
	return c.Rune == 0 || c.Rune == ' '
}
