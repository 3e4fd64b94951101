package hexes

// Render paints the box tree into the buffer, walking parent before children
// in child order. Each box paints only inside its own computed rectangle;
// clipping is the renderer's responsibility, not the driver's. Render never
// mutates the box tree.
func Render(box *Box, buf *Buffer) {
	renderBox(box, buf)
	for _, child := range box.children {
		Render(child, buf)
	}
}

func renderBox(box *Box, buf *Buffer) {
	rect := box.rect
	if rect.IsEmpty() {
		return
	}

	rs := resolve(box.style)
	if rs.border != BorderNone {
		drawBorder(buf, rect, rs.border)
		if box.title != "" {
			// The title overlays the top border, one cell in from the corner.
			titleClip := Rect{X: rect.X + 1, Y: rect.Y, Width: rect.Width - 2, Height: 1}
			buf.WriteString(rect.X+1, rect.Y, box.title, titleClip)
		}
	}

	if box.text == "" {
		return
	}

	interior := rect.Inset(rs.borderInset())
	if interior.IsEmpty() {
		return
	}

	var lines []string
	if rs.flow {
		lines = splitLines(wrapByParagraph(box.text, interior.Width))
		lines = visibleLines(lines, 0, interior.Height)
	} else {
		lines = visibleLines(splitLines(box.text), box.scrollOffset, interior.Height)
	}

	for i, line := range lines {
		buf.WriteString(interior.X, interior.Y+i, line, interior)
	}
}

// drawBorder paints the border of rect into the buffer. Degenerate
// rectangles narrower than two cells collapse the opposing edges onto the
// same cells, which matches how a terminal box of that size looks anyway.
func drawBorder(buf *Buffer, rect Rect, style BorderStyle) {
	chars := style.Chars()
	right := rect.Right() - 1
	bottom := rect.Bottom() - 1

	for x := rect.X + 1; x < right; x++ {
		buf.SetRune(x, rect.Y, chars.Top, rect)
		buf.SetRune(x, bottom, chars.Bottom, rect)
	}
	for y := rect.Y + 1; y < bottom; y++ {
		buf.SetRune(rect.X, y, chars.Left, rect)
		buf.SetRune(right, y, chars.Right, rect)
	}

	buf.SetRune(rect.X, rect.Y, chars.TopLeft, rect)
	buf.SetRune(right, rect.Y, chars.TopRight, rect)
	buf.SetRune(rect.X, bottom, chars.BottomLeft, rect)
	buf.SetRune(right, bottom, chars.BottomRight, rect)
}
