package lexer

import (
	"qak/internal/diag"
	"qak/internal/token"
)

// twoCharForms maps a first-character Kind to the two-character Kind
// produced when that character is immediately followed by '='.
var twoCharForms = map[token.Kind]token.Kind{
	token.Less:       token.LessEqual,
	token.Greater:    token.GreaterEqual,
	token.Not:        token.NotEqual,
	token.Assignment: token.Equal,
}

// scanPunct scans a single punctuation/operator token, or a two-byte
// "<=", ">=", "==", "!=" form, or reports an unknown token.
func (lx *Lexer) scanPunct() token.Token {
	r, sz := decodeRune(lx.cursor.Rest())
	if r >= 128 {
		for i := 0; i < sz; i++ {
			lx.cursor.Bump()
		}
		sp := lx.cursor.EndSpan()
		lx.report(diag.LexUnknownChar, sp, "Unknown token")
		return token.Token{Kind: token.Unknown, Span: sp}
	}

	c := lx.cursor.Bump()
	kind, ok := token.LookupSingleChar(c)
	if !ok {
		sp := lx.cursor.EndSpan()
		lx.report(diag.LexUnknownChar, sp, "Unknown token")
		return token.Token{Kind: token.Unknown, Span: sp}
	}

	if lx.cursor.Peek() == '=' {
		if two, ok := twoCharForms[kind]; ok {
			lx.cursor.Bump()
			return token.Token{Kind: two, Span: lx.cursor.EndSpan()}
		}
		lx.cursor.Bump()
		sp := lx.cursor.EndSpan()
		lx.report(diag.LexUnknownChar, sp, "Found unknown two character token")
		return token.Token{Kind: token.Unknown, Span: sp}
	}

	return token.Token{Kind: kind, Span: lx.cursor.EndSpan()}
}
