package hexes

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Buffer is an off-screen grid of cells the renderer paints into. The
// dispatch loop flushes it to the driver after every render pass, so the
// driver only ever sees whole frames.
type Buffer struct {
	width  int
	height int
	cells  []Cell
}

// NewBuffer creates a buffer of the given dimensions, filled with spaces.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.Resize(width, height)
	return b
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (width, height int) {
	return b.width, b.height
}

// Resize reallocates the buffer for new dimensions and clears it.
func (b *Buffer) Resize(width, height int) {
	width = max(0, width)
	height = max(0, height)
	b.width = width
	b.height = height
	b.cells = make([]Cell, width*height)
	b.Clear()
}

// Clear fills the entire buffer with spaces.
func (b *Buffer) Clear() {
	blank := NewCell(' ')
	for i := range b.cells {
		b.cells[i] = blank
	}
}

// SetRune places a rune at (x, y) if it falls inside both the buffer and the
// clip rectangle. A wide rune whose continuation cell would cross the clip's
// right edge is dropped rather than half drawn.
func (b *Buffer) SetRune(x, y int, r rune, clip Rect) {
	if !clip.Contains(x, y) || x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	cell := NewCell(r)
	if cell.Width == 2 {
		if !clip.Contains(x+1, y) || x+1 >= b.width {
			return
		}
		b.cells[y*b.width+x] = cell
		b.cells[y*b.width+x+1] = continuationCell()
		return
	}
	b.cells[y*b.width+x] = cell
}

// WriteString writes s starting at (x, y), clipped to the given rectangle.
// Returns the x position after the last cell written.
func (b *Buffer) WriteString(x, y int, s string, clip Rect) int {
	for _, r := range s {
		b.SetRune(x, y, r, clip)
		x += max(1, runewidth.RuneWidth(r))
	}
	return x
}

// CellAt returns the cell at (x, y), or a zero Cell when out of bounds.
func (b *Buffer) CellAt(x, y int) Cell {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Cell{}
	}
	return b.cells[y*b.width+x]
}

// RuneAt returns the rune at (x, y), with blank cells reported as spaces.
func (b *Buffer) RuneAt(x, y int) rune {
	c := b.CellAt(x, y)
	if c.Rune == 0 {
		return ' '
	}
	return c.Rune
}

// String renders the buffer to a newline-separated string for snapshot
// assertions. Continuation cells are skipped so wide runes appear once.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			cell := b.cells[y*b.width+x]
			if cell.IsContinuation() {
				continue
			}
			sb.WriteRune(cellRune(cell))
		}
		if y < b.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// StringTrimmed returns the buffer content with trailing spaces removed from
// each line.
func (b *Buffer) StringTrimmed() string {
	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}

func cellRune(c Cell) rune {
	if c.Rune == 0 {
		return ' '
	}
	return c.Rune
}
