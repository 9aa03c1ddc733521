package source

import (
	"sync"

	"fortio.org/safecast"
)

// File is a single registered Qak source file: an immutable byte
// buffer plus a lazily computed line-start index.
type File struct {
	ID      ID
	Path    string
	Content []byte

	hadBOM   bool
	hadCRLF  bool
	lineOnce sync.Once
	lineIdx  []uint32
}

func newFile(id ID, path string, data []byte) *File {
	data, hadBOM := removeBOM(data)
	data, hadCRLF := normalizeCRLF(data)
	return &File{ID: id, Path: path, Content: data, hadBOM: hadBOM, hadCRLF: hadCRLF}
}

// lines computes, and then caches, the file's line-start table. The
// first line always starts at offset 0, so this never has to run before
// a single byte is inspected.
func (f *File) lines() []uint32 {
	f.lineOnce.Do(func() {
		f.lineIdx = buildLineIndex(f.Content)
	})
	return f.lineIdx
}

// LineOf returns the 1-based line number containing byte offset off.
func (f *File) LineOf(off uint32) uint32 {
	return lineOf(f.lines(), off)
}

// LineCol resolves a byte offset to a 1-based line and column.
func (f *File) LineCol(off uint32) LineCol {
	starts := f.lines()
	line := lineOf(starts, off)
	col := off - starts[line-1] + 1
	return LineCol{Line: line, Col: col}
}

// LineText returns the content of the given 1-based line, without its
// trailing newline.
func (f *File) LineText(line uint32) string {
	starts := f.lines()
	if line == 0 || int(line) > len(starts) {
		return ""
	}
	start := starts[line-1]
	end := uint32(len(f.Content))
	if int(line) < len(starts) {
		end = starts[line]
	}
	text := f.Content[start:end]
	for len(text) > 0 && (text[len(text)-1] == '\n' || text[len(text)-1] == '\r') {
		text = text[:len(text)-1]
	}
	return string(text)
}

// MakeSpan builds a Span over [start, end) in this file, resolving the
// start/end line numbers eagerly so later diagnostic rendering never
// has to touch the file again.
func (f *File) MakeSpan(start, end uint32) Span {
	return Span{
		File:      f.ID,
		Start:     start,
		End:       end,
		StartLine: f.LineOf(start),
		EndLine:   f.LineOf(end),
	}
}

// Text returns the raw bytes a span covers. The returned slice aliases
// f.Content: callers must not retain it past the File's lifetime if they
// intend to mutate it, though Qak never does.
func (f *File) Text(span Span) []byte {
	return f.Content[span.Start:span.End]
}

// Len returns the file size in bytes as a safecast-checked uint32.
func (f *File) Len() uint32 {
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		// A source file larger than 4GiB cannot happen for real input;
		// treat it the same way the cursor treats any other impossible
		// offset.
		return ^uint32(0)
	}
	return n
}
