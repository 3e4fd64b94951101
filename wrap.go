package hexes

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// wrapByParagraph hard-wraps text to the given display width, preserving
// double-linebreaks so paragraphs stay separated. Within a paragraph all
// whitespace, including single newlines, collapses to one space before
// wrapping.
func wrapByParagraph(text string, width int) string {
	paragraphs := strings.Split(text, "\n\n")
	wrapped := make([]string, len(paragraphs))
	for i, paragraph := range paragraphs {
		wrapped[i] = strings.Join(wrapLine(paragraph, width), "\n")
	}
	return strings.Join(wrapped, "\n\n")
}

// wrapLine greedily packs the words of one paragraph into lines no wider
// than width display cells. A word wider than a full line is broken, first
// filling whatever room remains on the current line.
func wrapLine(paragraph string, width int) []string {
	if width <= 0 {
		return nil
	}

	var lines []string
	var cur strings.Builder
	curWidth := 0

	flush := func() {
		lines = append(lines, cur.String())
		cur.Reset()
		curWidth = 0
	}

	words := strings.Fields(paragraph)
	for i := 0; i < len(words); i++ {
		word := words[i]
		wordWidth := runewidth.StringWidth(word)

		switch {
		case curWidth == 0:
			if wordWidth <= width {
				cur.WriteString(word)
				curWidth = wordWidth
				continue
			}
			head, tail := splitAtWidth(word, width)
			cur.WriteString(head)
			flush()
			// Reprocess the remainder as its own word.
			words[i] = tail
			i--

		case curWidth+1+wordWidth <= width:
			cur.WriteByte(' ')
			cur.WriteString(word)
			curWidth += 1 + wordWidth

		case wordWidth > width:
			// Long word: fill the room left on this line before breaking.
			room := width - curWidth - 1
			if room > 0 {
				head, tail := splitAtWidth(word, room)
				if head != "" {
					cur.WriteByte(' ')
					cur.WriteString(head)
					word = tail
				}
			}
			flush()
			words[i] = word
			i--

		default:
			flush()
			words[i] = word
			i--
		}
	}

	if curWidth > 0 {
		flush()
	}
	return lines
}

// splitAtWidth splits s at the last rune boundary that fits in width display
// cells. The head is never empty unless s is, so callers always progress.
func splitAtWidth(s string, width int) (head, tail string) {
	taken := 0
	for i, r := range s {
		w := runewidth.RuneWidth(r)
		if i > 0 && taken+w > width {
			return s[:i], s[i:]
		}
		taken += w
	}
	return s, ""
}

// splitLines splits text into literal lines for fixed-viewport rendering.
// A single trailing newline does not produce a trailing empty line.
func splitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}

// visibleLines windows lines to [offset, offset+height), clamping both ends.
func visibleLines(lines []string, offset, height int) []string {
	if height <= 0 || offset >= len(lines) {
		return nil
	}
	offset = max(offset, 0)
	end := min(offset+height, len(lines))
	return lines[offset:end]
}
