package lexer

import (
	"qak/internal/diag"
	"qak/internal/token"
)

// scanChar scans a character literal: an opening "'", an optional
// backslash escape lead-in, exactly one code point, and a closing "'".
// Escape interpretation is deferred to a later compiler phase; only
// syntactic closure is checked here.
func (lx *Lexer) scanChar() token.Token {
	lx.cursor.Bump() // opening '\''

	if lx.cursor.Peek() == '\\' {
		lx.cursor.Bump()
	}
	if !lx.cursor.EOF() {
		_, sz := decodeRune(lx.cursor.Rest())
		for i := 0; i < sz; i++ {
			lx.cursor.Bump()
		}
	}

	if lx.cursor.Eat('\'') {
		return token.Token{Kind: token.CharacterLiteral, Span: lx.cursor.EndSpan()}
	}

	sp := lx.cursor.EndSpan()
	lx.report(diag.LexUnterminatedChar, sp, "Expected closing ' for character literal.")
	return token.Token{Kind: token.Invalid, Span: sp}
}
