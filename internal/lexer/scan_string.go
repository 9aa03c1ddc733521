package lexer

import (
	"qak/internal/diag"
	"qak/internal/token"
)

// scanString scans a string literal: everything between a pair of
// double quotes, honouring "\<any>" as a two-byte escape the tokenizer
// does not otherwise validate. An unescaped newline, or EOF, before the
// closing quote is a lexical error.
func (lx *Lexer) scanString() token.Token {
	lx.cursor.Bump() // opening '"'

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '"':
			lx.cursor.Bump()
			return token.Token{Kind: token.StringLiteral, Span: lx.cursor.EndSpan()}
		case b == '\\':
			lx.cursor.Bump()
			if lx.cursor.EOF() {
				break
			}
			lx.cursor.Bump()
			continue
		case b == '\n':
			sp := lx.cursor.EndSpan()
			lx.report(diag.LexUnterminatedString, sp, "String literal is not closed by double quote")
			return token.Token{Kind: token.Invalid, Span: sp}
		default:
			lx.cursor.Bump()
			continue
		}
		break
	}

	sp := lx.cursor.EndSpan()
	lx.report(diag.LexUnterminatedString, sp, "String literal is not closed by double quote")
	return token.Token{Kind: token.Invalid, Span: sp}
}
