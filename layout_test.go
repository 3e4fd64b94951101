package hexes

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func borderless(opts ...Option) *Box {
	return NewBox(append(opts, WithStyle(Style{Border: BorderNone}))...)
}

func TestCalculate_RootFillsAvailable(t *testing.T) {
	root := NewBox()
	Calculate(root, NewRect(0, 0, 80, 24))

	want := NewRect(0, 0, 80, 24)
	if root.Rect() != want {
		t.Errorf("root rect = %+v, want %+v", root.Rect(), want)
	}
}

func TestCalculate_FixedSizeClampedToAvailable(t *testing.T) {
	root := NewBox(WithStyle(Style{Width: Fixed(100), Height: Fixed(50)}))
	Calculate(root, NewRect(0, 0, 80, 24))

	want := NewRect(0, 0, 80, 24)
	if root.Rect() != want {
		t.Errorf("root rect = %+v, want %+v (fixed size must clamp)", root.Rect(), want)
	}
}

func TestCalculate_FixedSizeAnchoredAtOrigin(t *testing.T) {
	root := NewBox(WithStyle(Style{Width: Fixed(20), Height: Fixed(5)}))
	Calculate(root, NewRect(3, 2, 80, 24))

	want := NewRect(3, 2, 20, 5)
	if root.Rect() != want {
		t.Errorf("root rect = %+v, want %+v", root.Rect(), want)
	}
}

func TestCalculate_EqualSplitRemainderToEarlierChildren(t *testing.T) {
	a := borderless()
	b := borderless()
	c := borderless()
	root := NewBox(
		WithStyle(Style{Layout: Horizontal, Border: BorderNone}),
		WithChildren(a, b, c),
	)

	Calculate(root, NewRect(0, 0, 10, 4))

	widths := []int{a.Rect().Width, b.Rect().Width, c.Rect().Width}
	want := []int{4, 3, 3}
	if diff := cmp.Diff(want, widths); diff != "" {
		t.Errorf("child widths mismatch (-want +got):\n%s", diff)
	}
	if a.Rect().X != 0 || b.Rect().X != 4 || c.Rect().X != 7 {
		t.Errorf("children not packed in order: %+v %+v %+v", a.Rect(), b.Rect(), c.Rect())
	}
}

func TestCalculate_TwoAutoChildrenSplitEvenly(t *testing.T) {
	left := borderless()
	right := borderless()
	root := NewBox(
		WithStyle(Style{Layout: Horizontal, Border: BorderNone}),
		WithChildren(left, right),
	)

	Calculate(root, NewRect(0, 0, 80, 24))

	if left.Rect().Width != 40 || right.Rect().Width != 40 {
		t.Errorf("widths = %d, %d, want 40, 40", left.Rect().Width, right.Rect().Width)
	}
}

func TestCalculate_FixedSiblingReducesAutoShares(t *testing.T) {
	left := borderless()
	right := borderless()
	sidebar := NewBox(WithStyle(Style{Width: Fixed(20), Border: BorderNone}))
	root := NewBox(
		WithStyle(Style{Layout: Horizontal, Border: BorderNone}),
		WithChildren(left, right, sidebar),
	)

	Calculate(root, NewRect(0, 0, 80, 24))

	if sidebar.Rect().Width != 20 {
		t.Errorf("fixed sidebar width = %d, want 20", sidebar.Rect().Width)
	}
	if left.Rect().Width != 30 || right.Rect().Width != 30 {
		t.Errorf("auto widths = %d, %d, want 30, 30", left.Rect().Width, right.Rect().Width)
	}
}

func TestCalculate_CrossAxisGetsFullExtent(t *testing.T) {
	child := borderless()
	root := NewBox(
		WithStyle(Style{Layout: Horizontal, Border: BorderNone}),
		WithChildren(child),
	)

	Calculate(root, NewRect(0, 0, 40, 12))

	if child.Rect().Height != 12 {
		t.Errorf("cross-axis height = %d, want 12", child.Rect().Height)
	}
}

func TestCalculate_CrossAxisFixedSizeRespected(t *testing.T) {
	child := NewBox(WithStyle(Style{Height: Fixed(3), Border: BorderNone}))
	root := NewBox(
		WithStyle(Style{Layout: Horizontal, Border: BorderNone}),
		WithChildren(child),
	)

	Calculate(root, NewRect(0, 0, 40, 12))

	if child.Rect().Height != 3 {
		t.Errorf("cross-axis height = %d, want 3", child.Rect().Height)
	}
}

func TestCalculate_ChildrenContainedInParent(t *testing.T) {
	tree := NewBox(
		WithTitle("Root"),
		WithStyle(Style{Layout: Horizontal}),
		WithChildren(
			NewBox(
				WithChildren(
					NewBox(WithTitle("AA")),
					NewBox(WithTitle("AB"), WithStyle(Style{Height: Fixed(3)})),
				),
			),
			NewBox(WithTitle("B"), WithStyle(Style{Width: Fixed(20)})),
		),
	)

	Calculate(tree, NewRect(0, 0, 100, 40))

	tree.Walk(func(b *Box) {
		if b.Parent() == nil {
			return
		}
		if !b.Parent().Rect().ContainsRect(b.Rect()) {
			t.Errorf("%s rect %+v escapes parent rect %+v", b, b.Rect(), b.Parent().Rect())
		}
	})
}

func TestCalculate_SiblingsDoNotOverlap(t *testing.T) {
	kids := []*Box{NewBox(), NewBox(WithStyle(Style{Width: Fixed(15)})), NewBox()}
	root := NewBox(WithStyle(Style{Layout: Horizontal}), WithChildren(kids...))

	Calculate(root, NewRect(0, 0, 77, 20))

	for i := 0; i < len(kids); i++ {
		for j := i + 1; j < len(kids); j++ {
			if kids[i].Rect().Intersects(kids[j].Rect()) {
				t.Errorf("siblings %d and %d overlap: %+v vs %+v",
					i, j, kids[i].Rect(), kids[j].Rect())
			}
		}
	}
}

func TestCalculate_DeterministicAndIdempotent(t *testing.T) {
	build := func() *Box {
		return NewBox(
			WithStyle(Style{Layout: Horizontal}),
			WithChildren(
				NewBox(WithChildren(NewBox(), NewBox(WithStyle(Style{Height: Fixed(3)})))),
				NewBox(WithStyle(Style{Width: Fixed(20)})),
			),
		)
	}

	collect := func(root *Box) []Rect {
		var rects []Rect
		root.Walk(func(b *Box) { rects = append(rects, b.Rect()) })
		return rects
	}

	tree := build()
	Calculate(tree, NewRect(0, 0, 80, 24))
	first := collect(tree)

	Calculate(tree, NewRect(0, 0, 80, 24))
	second := collect(tree)

	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("repeated layout differs (-first +second):\n%s", diff)
	}

	other := build()
	Calculate(other, NewRect(0, 0, 80, 24))
	if diff := cmp.Diff(first, collect(other)); diff != "" {
		t.Errorf("identical trees laid out differently (-first +other):\n%s", diff)
	}
}

func TestCalculate_DegenerateSpaceDoesNotPanic(t *testing.T) {
	tree := NewBox(WithChildren(NewBox(), NewBox(WithText("text"))))

	Calculate(tree, NewRect(0, 0, 0, 0))
	Calculate(tree, NewRect(0, 0, -5, -5))

	tree.Walk(func(b *Box) {
		if !b.Rect().IsEmpty() {
			t.Errorf("%s rect %+v should be degenerate", b, b.Rect())
		}
	})
}

func TestCalculate_FlowTextGrowsHeightToWrappedLines(t *testing.T) {
	// 26 characters wrapping inside a width-12 interior take 3 lines.
	box := NewBox(WithText("aaaa bbbb cccc dddd eeee ff"))
	Calculate(box, NewRect(0, 0, 14, 20))

	// 3 text lines plus 2 border rows.
	if box.Rect().Height != 5 {
		t.Errorf("flow box height = %d, want 5", box.Rect().Height)
	}
}

func TestCalculate_FlowTextHeightCappedByAvailable(t *testing.T) {
	box := NewBox(WithText("aaaa bbbb cccc dddd eeee ff"))
	Calculate(box, NewRect(0, 0, 14, 4))

	if box.Rect().Height != 4 {
		t.Errorf("flow box height = %d, want 4 (clipped, not overflowing)", box.Rect().Height)
	}
}

func TestCalculate_ScrollBoxKeepsViewport(t *testing.T) {
	box := NewBox(
		WithStyle(Style{Scroll: true, Height: Fixed(5)}),
		WithText("1\n2\n3\n4\n5\n6\n7\n8\n9\n10"),
	)
	Calculate(box, NewRect(0, 0, 20, 24))

	if box.Rect().Height != 5 {
		t.Errorf("scroll box height = %d, want its configured viewport 5", box.Rect().Height)
	}
}

func TestCalculate_TextRowsComeBeforeChildren(t *testing.T) {
	child := borderless()
	box := borderless(WithText("one line"), WithChildren(child))

	Calculate(box, NewRect(0, 0, 20, 10))

	if child.Rect().Y != 1 {
		t.Errorf("child starts at row %d, want 1 (below the text)", child.Rect().Y)
	}
	if child.Rect().Height != 9 {
		t.Errorf("child height = %d, want 9", child.Rect().Height)
	}
}
