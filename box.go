package hexes

import "fmt"

// Box is a node in the layout tree representing a rectangular screen region.
// A Box owns its children exclusively: the tree has a single root, no sharing
// and no cycles. Boxes are constructed up front when the layout is described;
// their text and scroll offset mutate during the run in response to behaviors.
type Box struct {
	// Tree structure (single source of truth)
	children []*Box
	parent   *Box

	// Layout properties
	style *Style
	rect  Rect // most recent computed rectangle; derived, not authoritative

	// Content properties
	title        string
	text         string
	editable     bool
	scrollOffset int

	// dirty is meaningful on the root only; mutations anywhere in the tree
	// propagate to it so the dispatch loop knows to re-render.
	dirty bool
}

// Option configures a Box.
type Option func(*Box)

// WithTitle sets a short string shown in the upper left of the box border.
func WithTitle(title string) Option {
	return func(b *Box) {
		b.title = title
	}
}

// WithStyle attaches a Style to the box. Styles are immutable once attached;
// attach a distinct Style value to each box.
func WithStyle(s Style) Option {
	return func(b *Box) {
		b.style = &s
	}
}

// WithText sets the box's initial text content.
func WithText(text string) Option {
	return func(b *Box) {
		b.text = text
	}
}

// WithEditable marks the box as a valid target for an edit session.
func WithEditable() Option {
	return func(b *Box) {
		b.editable = true
	}
}

// WithChildren appends child boxes in order.
func WithChildren(children ...*Box) Option {
	return func(b *Box) {
		b.AddChildren(children...)
	}
}

// NewBox creates a Box with the given options applied in order.
func NewBox(opts ...Option) *Box {
	b := &Box{}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// String identifies the box by title when it has one.
func (b *Box) String() string {
	if b.title != "" {
		return fmt.Sprintf("Box(%s)", b.title)
	}
	return "Box"
}

// --- Tree structure ---

// AddChild appends a child box, taking ownership of it.
func (b *Box) AddChild(child *Box) {
	child.parent = b
	b.children = append(b.children, child)
	b.markDirty()
}

// AddChildren appends multiple child boxes in order.
func (b *Box) AddChildren(children ...*Box) {
	for _, child := range children {
		b.AddChild(child)
	}
}

// Children returns the box's children in layout order.
// The returned slice is owned by the box and must not be mutated.
func (b *Box) Children() []*Box {
	return b.children
}

// Parent returns the box's parent, or nil for the root.
func (b *Box) Parent() *Box {
	return b.parent
}

// Root returns the root box of the entire layout.
func (b *Box) Root() *Box {
	node := b
	for node.parent != nil {
		node = node.parent
	}
	return node
}

// Ancestors returns all parent boxes, starting with the immediate parent and
// ending with the root. The root returns an empty slice.
func (b *Box) Ancestors() []*Box {
	var out []*Box
	for node := b.parent; node != nil; node = node.parent {
		out = append(out, node)
	}
	return out
}

// Walk visits the subtree rooted at b in pre-order: the box itself first,
// then each child subtree in order.
func (b *Box) Walk(fn func(*Box)) {
	fn(b)
	for _, child := range b.children {
		child.Walk(fn)
	}
}

// --- Content ---

// Title returns the box's title.
func (b *Box) Title() string {
	return b.title
}

// Text returns the box's current text content. This may change while the
// application runs if the box is editable or a behavior rewrites it.
func (b *Box) Text() string {
	return b.text
}

// SetText replaces the box's text content and marks the tree for re-render.
func (b *Box) SetText(text string) {
	if b.text == text {
		return
	}
	b.text = text
	b.markDirty()
}

// Editable returns whether the box may become the target of an edit session.
func (b *Box) Editable() bool {
	return b.editable
}

// Rect returns the most recently computed screen rectangle for this box.
// It is recomputed on every layout pass and is derived state only.
func (b *Box) Rect() Rect {
	return b.rect
}

// --- Scrolling ---

// ScrollOffset returns the box's current scroll offset in lines. The offset
// is only meaningful for boxes with scrolling enabled (Style.Scroll).
func (b *Box) ScrollOffset() int {
	return b.scrollOffset
}

// Scroll moves the visible contents of the box by delta rows. The offset
// clamps to [0, max(0, lines-viewport)]; scrolling past either end is a
// no-op, not an error.
func (b *Box) Scroll(delta int) {
	offset := b.scrollOffset + delta
	maxOffset := max(0, len(splitLines(b.text))-b.viewportHeight())
	offset = min(offset, maxOffset)
	offset = max(offset, 0)
	if offset == b.scrollOffset {
		return
	}
	b.scrollOffset = offset
	b.markDirty()
}

// viewportHeight returns the number of content rows inside the box's last
// computed rectangle, after the border inset.
func (b *Box) viewportHeight() int {
	return max(0, b.rect.Inset(resolve(b.style).borderInset()).Height)
}

// --- Dirty tracking ---

// markDirty flags the root so the next loop iteration re-renders.
func (b *Box) markDirty() {
	b.Root().dirty = true
}

// consumeDirty reports and clears the root's dirty flag.
func (b *Box) consumeDirty() bool {
	root := b.Root()
	dirty := root.dirty
	root.dirty = false
	return dirty
}
