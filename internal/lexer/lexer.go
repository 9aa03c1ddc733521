package lexer

import (
	"qak/internal/diag"
	"qak/internal/source"
	"qak/internal/token"
)

// Lexer converts one source.File into a buffered sequence of tokens.
// It never aborts on malformed input: an unrecognized byte becomes an
// error token plus one diagnostic, and scanning continues from the
// next byte.
type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
}

// New creates a Lexer over file.
func New(file *source.File, opts Options) *Lexer {
	return &Lexer{file: file, cursor: NewCursor(file), opts: opts}
}

// Tokenize runs a full tokenizer pass over file, reporting lexical
// diagnostics through rep, and returns every token in source order.
// The returned slice always ends with a single EOF token so a token
// stream's expect() can synthesize an end-of-input diagnostic without
// special-casing an empty slice.
func Tokenize(file *source.File, rep diag.Reporter) []token.Token {
	return New(file, Options{Reporter: rep}).Run()
}

// skipTrivia advances over whitespace and '#' line comments. Comments
// run from '#' through (but excluding) the next '\n', which is then
// processed as ordinary whitespace on the next iteration.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isWhitespaceByte(b) {
			lx.cursor.Bump()
			continue
		}
		if b == '#' {
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
			continue
		}
		break
	}
}

// Run scans lx.file front-to-back and returns every token produced, in
// source order, terminated by a single EOF token.
func (lx *Lexer) Run() []token.Token {
	var out []token.Token
	for {
		lx.skipTrivia()
		if lx.cursor.EOF() {
			lx.cursor.StartSpan()
			out = append(out, token.Token{Kind: token.EOF, Span: lx.cursor.EndSpan()})
			return out
		}
		out = append(out, lx.scanOne())
	}
}

// scanOne scans a single significant token starting at the cursor's
// current (non-trivia) position.
func (lx *Lexer) scanOne() token.Token {
	lx.cursor.StartSpan()
	b := lx.cursor.Peek()

	switch {
	case isDigitByte(b):
		return lx.scanNumber()
	case b == '\'':
		return lx.scanChar()
	case b == '"':
		return lx.scanString()
	case isIdentStartByte(b):
		return lx.scanIdent()
	case b >= 0x80:
		if r, _ := decodeRune(lx.cursor.Rest()); isIdentStartRune(r) {
			return lx.scanIdent()
		}
		return lx.scanPunct()
	default:
		return lx.scanPunct()
	}
}
