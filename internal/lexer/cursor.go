package lexer

import (
	"fmt"

	"fortio.org/safecast"

	"qak/internal/source"
)

// Cursor walks the byte buffer of a single source.File, tracking the
// 1-based line the cursor currently sits on alongside the raw byte
// offset. It never sees bytes outside [0, Limit).
type Cursor struct {
	File  *source.File
	Off   uint32
	Limit uint32
	Line  uint32

	spanStart     uint32
	spanLineStart uint32
}

// NewCursor creates a cursor positioned at the start of f, on line 1.
func NewCursor(f *source.File) Cursor {
	limit, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("lexer: source length overflow: %w", err))
	}
	return Cursor{File: f, Off: 0, Limit: limit, Line: 1}
}

// EOF reports whether the cursor has consumed every byte in range.
func (c *Cursor) EOF() bool { return c.Off >= c.Limit }

// Peek returns the current byte, or 0 at EOF.
func (c *Cursor) Peek() byte {
	if c.EOF() {
		return 0
	}
	return c.File.Content[c.Off]
}

// PeekAt returns the byte at off+n, or 0 when out of range.
func (c *Cursor) PeekAt(n uint32) byte {
	idx := c.Off + n
	if idx >= c.Limit {
		return 0
	}
	return c.File.Content[idx]
}

// Rest returns the unconsumed tail of the buffer, up to Limit.
func (c *Cursor) Rest() []byte {
	return c.File.Content[c.Off:c.Limit]
}

// Bump advances past one byte, bumping the line counter on '\n', and
// returns the byte consumed. Returns 0 at EOF without moving.
func (c *Cursor) Bump() byte {
	if c.EOF() {
		return 0
	}
	b := c.File.Content[c.Off]
	c.Off++
	if b == '\n' {
		c.Line++
	}
	return b
}

// Eat consumes the next byte if it equals b.
func (c *Cursor) Eat(b byte) bool {
	if !c.EOF() && c.File.Content[c.Off] == b {
		c.Bump()
		return true
	}
	return false
}

// StartSpan snapshots the cursor's current offset and line for a
// later EndSpan call.
func (c *Cursor) StartSpan() {
	c.spanStart = c.Off
	c.spanLineStart = c.Line
}

// EndSpan returns a Span running from the last StartSpan to the
// cursor's current position.
func (c *Cursor) EndSpan() source.Span {
	return source.Span{
		File:      c.File.ID,
		Start:     c.spanStart,
		End:       c.Off,
		StartLine: c.spanLineStart,
		EndLine:   c.Line,
	}
}

// EmptySpan returns a zero-length span at the cursor's current
// position, used for end-of-input diagnostics.
func (c *Cursor) EmptySpan() source.Span {
	return source.Span{File: c.File.ID, Start: c.Off, End: c.Off, StartLine: c.Line, EndLine: c.Line}
}
