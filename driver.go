package hexes

// Driver abstracts the terminal for the dispatch loop: cell-addressed
// output, terminal dimensions, and a blocking source of input events.
// The production implementation wraps a tcell screen; tests use MockDriver.
//
// The renderer clips everything to box rectangles before it reaches the
// driver, so implementations may assume coordinates are trustworthy and
// simply drop anything outside the screen.
type Driver interface {
	// Init acquires the terminal. It must be called before any other method
	// and balanced by Fini on every exit path.
	Init() error

	// Fini releases the terminal, restoring its pre-Init state.
	Fini()

	// Size returns the current terminal dimensions in cells.
	Size() (width, height int)

	// PollEvent blocks until the next key, resize, or fatal error.
	PollEvent() Event

	// SetCell paints a single rune at (x, y).
	SetCell(x, y int, r rune)

	// Clear erases the whole screen.
	Clear()

	// Show makes everything painted since the last Show visible.
	Show()
}

// flush copies a rendered buffer to the driver and makes it visible.
func flush(d Driver, buf *Buffer) {
	width, height := buf.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			cell := buf.CellAt(x, y)
			if cell.IsContinuation() {
				continue
			}
			d.SetCell(x, y, cellRune(cell))
		}
	}
	d.Show()
}
