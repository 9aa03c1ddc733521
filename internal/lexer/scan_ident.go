package lexer

import "qak/internal/token"

// scanIdent scans an identifier or one of the three literal keywords
// recognized directly by the tokenizer (true/false/nothing); every
// other contextual keyword (module, var, while, if, else, end, return,
// fun/function) is classified as a plain Identifier and matched on text
// by the parser.
func (lx *Lexer) scanIdent() token.Token {
	for {
		b := lx.cursor.Peek()
		if b < 0x80 {
			if !isIdentPartByte(b) {
				break
			}
			lx.cursor.Bump()
			continue
		}
		r, sz := decodeRune(lx.cursor.Rest())
		if !isIdentPartRune(r) {
			break
		}
		for i := 0; i < sz; i++ {
			lx.cursor.Bump()
		}
	}

	sp := lx.cursor.EndSpan()
	text := lx.file.Text(sp)
	kind := token.Identifier
	switch string(text) {
	case "true", "false":
		kind = token.BooleanLiteral
	case "nothing":
		kind = token.NothingLiteral
	}
	return token.Token{Kind: kind, Span: sp}
}
