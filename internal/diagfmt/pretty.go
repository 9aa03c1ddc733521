package diagfmt

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"qak/internal/diag"
	"qak/internal/source"
)

// visualWidthUpTo computes the visual column width of s up to the given
// 1-based byte column, expanding tabs to tabWidth stops and sizing
// other runes by their display width (wide CJK runes count as two).
func visualWidthUpTo(s string, byteCol uint32, tabWidth int) int {
	if byteCol <= 1 {
		return 0
	}
	bytePos, visualPos := 0, 0
	for _, r := range s {
		if bytePos >= int(byteCol-1) {
			break
		}
		if r == '\t' {
			visualPos = (visualPos + tabWidth) / tabWidth * tabWidth
		} else {
			visualPos += runewidth.RuneWidth(r)
		}
		bytePos += len(string(r))
	}
	return visualPos
}

// Pretty renders bag's diagnostics against file as
//
//	<path>:<line>:<col>: <severity> <code>: <message>
//	<line number> | <source line>
//	                    ~~~~^
//
// one block per diagnostic, separated by a blank line. The underline
// row is indented past the gutter with spaces and ends in a caret under
// the span's last column. Colorization is
// controlled by opts.Color; callers decide that from terminal detection.
func Pretty(w io.Writer, bag *diag.Bag, file *source.File, opts PrettyOpts) {
	errorColor := color.New(color.FgRed, color.Bold)
	warningColor := color.New(color.FgYellow, color.Bold)
	infoColor := color.New(color.FgCyan, color.Bold)
	pathColor := color.New(color.FgWhite, color.Bold)
	codeColor := color.New(color.FgMagenta)
	lineNumColor := color.New(color.FgBlue)
	underlineColor := color.New(color.FgRed, color.Bold)

	prevNoColor := color.NoColor
	defer func() { color.NoColor = prevNoColor }()
	color.NoColor = !opts.Color

	const tabWidth = 8
	context := int(opts.Context)

	for idx, d := range bag.Items() {
		if idx > 0 {
			fmt.Fprintln(w)
		}

		start := file.LineCol(d.Primary.Start)
		end := file.LineCol(d.Primary.End)

		var sevColored string
		switch d.Severity {
		case diag.SevError:
			sevColored = errorColor.Sprint(d.Severity.String())
		case diag.SevWarning:
			sevColored = warningColor.Sprint(d.Severity.String())
		default:
			sevColored = infoColor.Sprint(d.Severity.String())
		}

		fmt.Fprintf(w, "%s:%d:%d: %s %s: %s\n",
			pathColor.Sprint(file.Path),
			start.Line, start.Col,
			sevColored,
			codeColor.Sprint(d.Code.String()),
			d.Message,
		)

		totalLines := file.LineOf(file.Len())

		startLine := uint32(1)
		if start.Line > uint32(context) {
			startLine = start.Line - uint32(context)
		}
		endLine := start.Line + uint32(context)
		if endLine > totalLines {
			endLine = totalLines
		}

		lineNumWidth := len(fmt.Sprintf("%d", endLine))
		if lineNumWidth < 3 {
			lineNumWidth = 3
		}

		for line := startLine; line <= endLine; line++ {
			text := file.LineText(line)

			gutter := fmt.Sprintf("%s | ", lineNumColor.Sprint(fmt.Sprintf("%*d", lineNumWidth, line)))
			fmt.Fprintf(w, "%s%s\n", gutter, text)

			if line == start.Line {
				endCol := end.Col
				if end.Line > start.Line {
					endCol = uint32(len(text)) + 1
				}
				visualStart := visualWidthUpTo(text, start.Col, tabWidth)
				visualEnd := visualWidthUpTo(text, endCol, tabWidth)

				var underline strings.Builder
				for i := 0; i < lineNumWidth+3; i++ {
					underline.WriteByte(' ')
				}
				for i := 0; i < visualStart; i++ {
					underline.WriteByte(' ')
				}
				spanLen := visualEnd - visualStart
				if spanLen <= 0 {
					underline.WriteByte('^')
				} else {
					for i := 0; i < spanLen; i++ {
						if i == spanLen-1 {
							underline.WriteByte('^')
						} else {
							underline.WriteByte('~')
						}
					}
				}
				fmt.Fprintln(w, underlineColor.Sprint(underline.String()))
			}
		}

		for _, note := range d.Notes {
			noteStart := file.LineCol(note.Span.Start)
			fmt.Fprintf(w, "  %s: %s:%d:%d: %s\n",
				infoColor.Sprint("note"),
				pathColor.Sprint(file.Path),
				noteStart.Line, noteStart.Col,
				note.Msg,
			)
		}
	}
}
