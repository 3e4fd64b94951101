package hexes

// Calculate computes the concrete screen rectangle for box and recursively
// for every descendant, given the rectangle the subtree must fit in. It is a
// pure function of the subtree and the available rectangle: deterministic,
// idempotent, and free of side effects beyond storing each box's rect.
//
// Content that does not fit is clipped, never reflowed into siblings; a
// degenerate (zero or negative area) available rectangle produces degenerate
// rects rather than an error.
func Calculate(box *Box, available Rect) {
	rs := resolve(box.style)

	// A fixed dimension is anchored at the available rect's origin and never
	// exceeds the available space; overflow is silently dropped.
	box.rect = Rect{
		X:      available.X,
		Y:      available.Y,
		Width:  rs.width.Resolve(available.Width, available.Width),
		Height: rs.height.Resolve(available.Height, available.Height),
	}

	inset := rs.borderInset()

	// Flowing text grows the box to fit its wrapped lines when the height is
	// not fixed, bounded by the space available. A box holding only children
	// keeps the full allotment.
	if box.text != "" && rs.flow && rs.height.IsAuto() && len(box.children) == 0 {
		width := max(0, box.rect.Width-2*inset)
		lines := len(splitLines(wrapByParagraph(box.text, width)))
		box.rect.Height = min(available.Height, lines+2*inset)
	}

	interior := box.rect.Inset(inset)
	layoutChildren(box, rs, interior)
}

// layoutChildren distributes the interior rectangle among box's children
// along the resolved layout axis and recurses into each.
func layoutChildren(box *Box, rs resolvedStyle, interior Rect) {
	if len(box.children) == 0 {
		return
	}

	// Text consumes rows at the top of the interior before children are laid
	// out. A scrolling box's text owns the whole viewport, so children are
	// pushed below it into degenerate space.
	if box.text != "" {
		interior = cutTextRows(box, rs, interior)
	}

	axis := axisExtent(rs.layout, interior)
	sizes := distribute(box.children, rs.layout, axis)

	cursor := 0
	for i, child := range box.children {
		var slot Rect
		if rs.layout == Horizontal {
			slot = Rect{
				X:      interior.X + cursor,
				Y:      interior.Y,
				Width:  sizes[i],
				Height: interior.Height,
			}
		} else {
			slot = Rect{
				X:      interior.X,
				Y:      interior.Y + cursor,
				Width:  interior.Width,
				Height: sizes[i],
			}
		}
		cursor += sizes[i]
		Calculate(child, slot)
	}
}

// distribute splits extent cells among children along the layout axis.
// Children with a fixed size on that axis receive exactly that size, clamped
// to what remains in child order. Children without a fixed size share the
// remainder equally, with any remainder of the division granted to earlier
// children first.
func distribute(children []*Box, axis Layout, extent int) []int {
	sizes := make([]int, len(children))
	remaining := max(0, extent)
	autos := 0

	for i, child := range children {
		v := axisValue(resolve(child.style), axis)
		if v.IsAuto() {
			autos++
			continue
		}
		size := min(max(0, v.Amount), remaining)
		sizes[i] = size
		remaining -= size
	}

	if autos == 0 {
		return sizes
	}

	share := remaining / autos
	extra := remaining % autos
	for i, child := range children {
		if !axisValue(resolve(child.style), axis).IsAuto() {
			continue
		}
		sizes[i] = share
		if extra > 0 {
			sizes[i]++
			extra--
		}
	}
	return sizes
}

// cutTextRows removes the rows occupied by box's own text from the top of
// the interior, returning the space left for children.
func cutTextRows(box *Box, rs resolvedStyle, interior Rect) Rect {
	rows := interior.Height
	if rs.flow {
		wrapped := splitLines(wrapByParagraph(box.text, max(0, interior.Width)))
		rows = min(len(wrapped), interior.Height)
	}
	return Rect{
		X:      interior.X,
		Y:      interior.Y + rows,
		Width:  interior.Width,
		Height: interior.Height - rows,
	}
}

// axisExtent returns the interior's extent along the layout axis.
func axisExtent(axis Layout, interior Rect) int {
	if axis == Horizontal {
		return interior.Width
	}
	return interior.Height
}

// axisValue returns a child's size directive along the layout axis.
func axisValue(rs resolvedStyle, axis Layout) Value {
	if axis == Horizontal {
		return rs.width
	}
	return rs.height
}
