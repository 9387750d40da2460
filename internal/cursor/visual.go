package cursor

import (
	"github.com/rivo/uniseg"

	"github.com/ar-go/nucleus/internal/text"
)

// VisualWidth returns the monospace display width of s, accounting for
// wide runes (e.g. CJK) and combining marks via grapheme clustering.
// Goal-column tracking uses this instead of a raw char count so that a
// vertical motion across lines of mixed script lands in the visually
// correct column.
func VisualWidth(s string) uint32 {
	width := 0
	state := -1
	for len(s) > 0 {
		var (
			w int
		)
		_, s, w, state = uniseg.FirstGraphemeClusterInString(s, state)
		width += w
	}
	return uint32(width)
}

// CharOffsetToColumn returns the visual column of charOffset within
// line (a single line's text, no trailing newline).
func CharOffsetToColumn(line string, charOffset text.CharOffset) uint32 {
	runes := []rune(line)
	if int(charOffset) < len(runes) {
		runes = runes[:charOffset]
	}
	return VisualWidth(string(runes))
}

// ColumnToCharOffset returns the char offset within line whose visual
// column is the closest to col without exceeding it, clamped to the
// line's length. Used to restore a cursor's goal column after moving
// to a line whose content has different-width runes.
func ColumnToCharOffset(line string, col uint32) text.CharOffset {
	width := uint32(0)
	charCount := 0
	state := -1
	rest := line
	for len(rest) > 0 {
		var (
			cluster string
			w       int
		)
		cluster, rest, w, state = uniseg.FirstGraphemeClusterInString(rest, state)
		if width+uint32(w) > col {
			break
		}
		width += uint32(w)
		charCount += len([]rune(cluster))
	}
	total := len([]rune(line))
	if charCount > total {
		charCount = total
	}
	return text.CharOffset(charCount)
}
