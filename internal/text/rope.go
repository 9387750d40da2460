package text

import (
	"unicode"
	"unicode/utf8"

	"github.com/ar-go/nucleus/internal/rope"
)

// Rope is the char-addressed façade over the byte-indexed internal/rope
// tree. Every public method here takes and returns CharOffset; the
// byte-level rope is reached only internally for conversions.
type Rope struct {
	r rope.Rope
}

// NewRope returns an empty Rope.
func NewRope() Rope {
	return Rope{r: rope.New()}
}

// RopeFromString builds a Rope from existing text.
func RopeFromString(s string) Rope {
	return Rope{r: rope.FromString(s)}
}

// String returns the full buffer text.
func (rp Rope) String() string {
	return rp.r.String()
}

// LenChars returns the total number of Unicode scalars in the buffer.
func (rp Rope) LenChars() CharOffset {
	var count CharOffset
	it := rp.r.Chunks()
	for it.Next() {
		count += chunkRuneCount(it.Chunk())
	}
	return count
}

// LenLines returns the number of lines (newlines + 1).
func (rp Rope) LenLines() uint32 {
	return rp.r.LineCount()
}

// chunkRuneCount counts a chunk's runes, skipping the decode loop for
// all-ASCII chunks.
func chunkRuneCount(c rope.Chunk) CharOffset {
	if c.Summary().Flags&rope.FlagASCII != 0 {
		return CharOffset(c.Len())
	}
	return CharOffset(utf8.RuneCountInString(c.String()))
}

// charToByte converts a char offset to the corresponding byte offset,
// walking chunks and stopping at the one that contains the target
// rune. Clamped to the buffer length.
func (rp Rope) charToByte(offset CharOffset) rope.ByteOffset {
	if offset <= 0 {
		return 0
	}
	remaining := offset
	it := rp.r.Chunks()
	for it.Next() {
		c := it.Chunk()
		runes := chunkRuneCount(c)
		if remaining >= runes {
			remaining -= runes
			continue
		}
		if c.Summary().Flags&rope.FlagASCII != 0 {
			return it.Offset() + rope.ByteOffset(remaining)
		}
		for i := range c.String() {
			if remaining == 0 {
				return it.Offset() + rope.ByteOffset(i)
			}
			remaining--
		}
	}
	return rp.r.Len()
}

// byteToChar converts a byte offset to a char offset by counting the
// runes that precede it, chunk by chunk.
func (rp Rope) byteToChar(offset rope.ByteOffset) CharOffset {
	if offset <= 0 {
		return 0
	}
	var count CharOffset
	it := rp.r.Chunks()
	for it.Next() {
		c := it.Chunk()
		end := it.Offset() + rope.ByteOffset(c.Len())
		if offset >= end {
			count += chunkRuneCount(c)
			continue
		}
		return count + CharOffset(utf8.RuneCountInString(c.String()[:offset-it.Offset()]))
	}
	return count
}

// CharAt returns the rune at the given char offset.
func (rp Rope) CharAt(i CharOffset) (rune, bool) {
	if i < 0 {
		return 0, false
	}
	b := rp.charToByte(i)
	total := rp.r.Len()
	if b >= total {
		return 0, false
	}
	end := b + rope.ByteOffset(utf8.UTFMax)
	if end > total {
		end = total
	}
	r, _ := utf8.DecodeRuneInString(rp.r.Slice(b, end))
	return r, true
}

// Slice returns the text in the char range [start, end).
func (rp Rope) Slice(start, end CharOffset) string {
	if start >= end {
		return ""
	}
	bs := rp.charToByte(start)
	be := rp.charToByte(end)
	return rp.r.Slice(rope.ByteOffset(bs), rope.ByteOffset(be))
}

// Insert returns a new Rope with s inserted at char offset i.
func (rp Rope) Insert(i CharOffset, s string) Rope {
	return Rope{r: rp.r.Insert(rp.charToByte(i), s)}
}

// Remove returns a new Rope with the char range [start, end) removed.
func (rp Rope) Remove(start, end CharOffset) Rope {
	if start >= end {
		return rp
	}
	return Rope{r: rp.r.Delete(rp.charToByte(start), rp.charToByte(end))}
}

// LineToChar returns the char offset of the start of a line.
func (rp Rope) LineToChar(line uint32) CharOffset {
	return rp.byteToChar(rp.r.LineStartOffset(clampLine(line, rp.r.LineCount())))
}

// CharToLine returns the 0-based line containing a char offset.
func (rp Rope) CharToLine(offset CharOffset) uint32 {
	b := rp.charToByte(offset)
	return rp.r.OffsetToPoint(b).Line
}

// LineToByte returns the byte offset of the start of a line, for the
// syntax-highlighter boundary.
func (rp Rope) LineToByte(line uint32) ByteOffset {
	return ByteOffset(rp.r.LineStartOffset(clampLine(line, rp.r.LineCount())))
}

// LineLenChars returns the char length of a line, excluding its
// terminal newline.
func (rp Rope) LineLenChars(line uint32) CharOffset {
	line = clampLine(line, rp.r.LineCount())
	start := rp.r.LineStartOffset(line)
	end := rp.r.LineEndOffset(line)
	return rp.byteToChar(end) - rp.byteToChar(start)
}

// LineStartChar returns the char offset of the first char on a line.
func (rp Rope) LineStartChar(line uint32) CharOffset {
	return rp.LineToChar(line)
}

// LineEndChar returns the char offset just before a line's terminal
// newline (or the buffer end, for the last line).
func (rp Rope) LineEndChar(line uint32) CharOffset {
	return rp.LineToChar(line) + rp.LineLenChars(line)
}

// CharToPosition converts a char offset to a line/column Position.
func (rp Rope) CharToPosition(offset CharOffset) Position {
	length := rp.LenChars()
	if length == 0 {
		return Position{}
	}
	if offset > length {
		offset = length
	}
	line := rp.CharToLine(offset)
	lineStart := rp.LineToChar(line)
	return Position{Line: line, Column: uint32(offset - lineStart)}
}

// PositionToChar converts a line/column Position to a char offset,
// clamping the column to the line's length.
func (rp Rope) PositionToChar(pos Position) CharOffset {
	lineCount := rp.LenLines()
	line := pos.Line
	if lineCount > 0 && line >= lineCount {
		line = lineCount - 1
	}
	lineStart := rp.LineToChar(line)
	lineLen := rp.LineLenChars(line)
	col := CharOffset(pos.Column)
	if col > lineLen {
		col = lineLen
	}
	return lineStart + col
}

func clampLine(line, count uint32) uint32 {
	if count == 0 {
		return 0
	}
	if line >= count {
		return count - 1
	}
	return line
}

// IsWordChar reports whether r is a word constituent: Unicode
// alphanumeric or underscore. This is the only notion of "word" used
// by the scanners below; there is no locale awareness.
func IsWordChar(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_'
}

// IsBoundaryChar reports whether r breaks undo coalescing: whitespace
// or ASCII punctuation.
func IsBoundaryChar(r rune) bool {
	if unicode.IsSpace(r) {
		return true
	}
	return r < utf8.RuneSelf && unicode.IsPunct(r)
}

// ForwardWordBoundary scans forward from start, skipping non-word
// chars then word chars, and returns the resulting offset.
func (rp Rope) ForwardWordBoundary(start CharOffset) CharOffset {
	length := rp.LenChars()
	pos := start
	if pos >= length {
		return length
	}
	for pos < length {
		c, _ := rp.CharAt(pos)
		if IsWordChar(c) {
			break
		}
		pos++
	}
	for pos < length {
		c, _ := rp.CharAt(pos)
		if !IsWordChar(c) {
			break
		}
		pos++
	}
	return pos
}

// BackwardWordBoundary scans backward from start, skipping non-word
// chars then word chars, and returns the resulting offset.
func (rp Rope) BackwardWordBoundary(start CharOffset) CharOffset {
	length := rp.LenChars()
	if length == 0 {
		return 0
	}
	pos := start
	if pos > length {
		pos = length
	}
	if pos == 0 {
		return 0
	}
	pos--

	for pos > 0 && pos < length {
		c, _ := rp.CharAt(pos)
		if IsWordChar(c) {
			break
		}
		pos--
	}
	for pos > 0 && pos < length {
		c, _ := rp.CharAt(pos - 1)
		if !IsWordChar(c) {
			break
		}
		pos--
	}

	if pos > 0 && pos < length {
		c, _ := rp.CharAt(pos)
		if !IsWordChar(c) {
			if start > length {
				start = length
			}
			if start > 0 {
				return start - 1
			}
			return 0
		}
	}
	return pos
}
