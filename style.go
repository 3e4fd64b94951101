package hexes

// Layout specifies the axis along which a box distributes its children.
type Layout uint8

const (
	// Vertical stacks children top-to-bottom.
	Vertical Layout = iota
	// Horizontal arranges children left-to-right.
	Horizontal
)

// String returns a human-readable representation of the layout axis.
func (l Layout) String() string {
	if l == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Unit specifies how a Value is interpreted.
type Unit uint8

const (
	// UnitAuto sizes the dimension from the remaining space.
	UnitAuto Unit = iota
	// UnitFixed is an absolute number of terminal cells.
	UnitFixed
)

// Value represents a dimension that is either fixed or computed from the
// space left over after fixed siblings are placed.
type Value struct {
	Amount int
	Unit   Unit
}

// Auto returns a Value computed from remaining space.
func Auto() Value {
	return Value{Unit: UnitAuto}
}

// Fixed returns a Value representing an absolute number of terminal cells.
func Fixed(n int) Value {
	return Value{Amount: n, Unit: UnitFixed}
}

// IsAuto returns true if this value should be computed from remaining space.
func (v Value) IsAuto() bool {
	return v.Unit == UnitAuto
}

// Resolve returns the fixed amount clamped to available, or fallback for an
// auto value. A fixed dimension never exceeds the space it must fit in.
func (v Value) Resolve(available, fallback int) int {
	if v.IsAuto() {
		return fallback
	}
	return min(v.Amount, available)
}

// Style holds the layout directives for a Box. A Style is attached to exactly
// one Box and is immutable once attached; it carries no back-reference.
//
// The zero value is the default style: vertical layout, flowing text, auto
// size, single-line border.
type Style struct {
	// Layout is the axis along which children are distributed.
	Layout Layout

	// Scroll switches the box from flowing text to a fixed viewport.
	// When false (the default), text wraps to the available width and the
	// box grows to fit the wrapped lines. When true, text keeps its literal
	// line structure, is clipped to the viewport, and is addressed through
	// the box's scroll offset.
	Scroll bool

	// Width and Height fix the box's size in cells. The zero Value means
	// "computed from remaining space".
	Width  Value
	Height Value

	// Border selects the border drawn around the box.
	// The zero value is a single-line border; use BorderNone to suppress it.
	Border BorderStyle
}

// resolvedStyle is a Style with derived fields precomputed once per layout
// pass so the layout algorithm never branches on absent attributes.
type resolvedStyle struct {
	layout Layout
	flow   bool
	width  Value
	height Value
	border BorderStyle
}

// resolve overlays s onto the defaults. A nil style yields exactly the
// defaults: vertical layout, flowing text, auto size, single border.
func resolve(s *Style) resolvedStyle {
	if s == nil {
		return resolvedStyle{
			layout: Vertical,
			flow:   true,
			width:  Auto(),
			height: Auto(),
			border: BorderSingle,
		}
	}
	return resolvedStyle{
		layout: s.Layout,
		flow:   !s.Scroll,
		width:  s.Width,
		height: s.Height,
		border: s.Border,
	}
}

// borderInset returns how many cells the border consumes on each edge.
func (r resolvedStyle) borderInset() int {
	if r.border == BorderNone {
		return 0
	}
	return 1
}
