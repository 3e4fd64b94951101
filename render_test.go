package hexes

import (
	"strings"
	"testing"
)

func renderToString(box *Box, width, height int) string {
	Calculate(box, NewRect(0, 0, width, height))
	buf := NewBuffer(width, height)
	Render(box, buf)
	return buf.String()
}

func TestRender_BorderAndTitle(t *testing.T) {
	box := NewBox(WithTitle("LS"))

	got := renderToString(box, 10, 4)
	want := strings.Join([]string{
		"┌LS──────┐",
		"│        │",
		"│        │",
		"└────────┘",
	}, "\n")

	if got != want {
		t.Errorf("render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_BorderNone(t *testing.T) {
	box := NewBox(WithStyle(Style{Border: BorderNone}), WithText("hi"))

	got := renderToString(box, 4, 2)
	want := "hi  \n    "

	if got != want {
		t.Errorf("render mismatch:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestRender_FlowTextWraps(t *testing.T) {
	box := NewBox(WithText("hello world"))

	got := renderToString(box, 9, 4)
	want := strings.Join([]string{
		"┌───────┐",
		"│hello  │",
		"│world  │",
		"└───────┘",
	}, "\n")

	if got != want {
		t.Errorf("render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_ScrollWindow(t *testing.T) {
	box := NewBox(
		WithStyle(Style{Scroll: true, Height: Fixed(4)}),
		WithText("1\n2\n3\n4\n5"),
	)
	Calculate(box, NewRect(0, 0, 5, 10))
	box.Scroll(2)

	buf := NewBuffer(5, 10)
	Render(box, buf)
	got := buf.StringTrimmed()
	want := strings.Join([]string{
		"┌───┐",
		"│3  │",
		"│4  │",
		"└───┘",
		"",
		"",
		"",
		"",
		"",
		"",
	}, "\n")

	if got != want {
		t.Errorf("render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_ClipsTextToInterior(t *testing.T) {
	box := NewBox(
		WithStyle(Style{Scroll: true}),
		WithText("abcdefghij"),
	)

	got := renderToString(box, 6, 3)
	want := strings.Join([]string{
		"┌────┐",
		"│abcd│",
		"└────┘",
	}, "\n")

	if got != want {
		t.Errorf("long text must clip at the border:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_NeverPaintsOutsideRect(t *testing.T) {
	// A fixed-size box inside a larger buffer: everything beyond its rect
	// stays blank.
	box := NewBox(
		WithStyle(Style{Width: Fixed(6), Height: Fixed(3), Scroll: true}),
		WithText("overflowing content"),
	)

	Calculate(box, NewRect(0, 0, 20, 10))
	buf := NewBuffer(20, 10)
	Render(box, buf)

	for y := 0; y < 10; y++ {
		for x := 0; x < 20; x++ {
			if box.Rect().Contains(x, y) {
				continue
			}
			if r := buf.RuneAt(x, y); r != ' ' {
				t.Fatalf("painted %q at (%d,%d) outside box rect %+v", r, x, y, box.Rect())
			}
		}
	}
}

func TestRender_ChildrenPaintInsideParent(t *testing.T) {
	left := NewBox(WithTitle("L"))
	right := NewBox(WithTitle("R"))
	root := NewBox(
		WithStyle(Style{Layout: Horizontal, Border: BorderNone}),
		WithChildren(left, right),
	)

	got := renderToString(root, 12, 3)
	want := strings.Join([]string{
		"┌L───┐┌R───┐",
		"│    ││    │",
		"└────┘└────┘",
	}, "\n")

	if got != want {
		t.Errorf("render mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestRender_DoesNotMutateTree(t *testing.T) {
	box := NewBox(WithText("stable"))
	Calculate(box, NewRect(0, 0, 10, 4))
	box.consumeDirty()

	Render(box, NewBuffer(10, 4))

	if box.consumeDirty() {
		t.Error("rendering must not mark the tree dirty")
	}
	if box.Text() != "stable" {
		t.Error("rendering must not change box text")
	}
}
