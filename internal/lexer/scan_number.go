package lexer

import (
	"qak/internal/diag"
	"qak/internal/token"
)

// scanNumber scans a numeric literal. A leading "0x"/"0X" switches to
// a hex-digit run with no suffix support; otherwise decimal digits are
// consumed, an optional ".digit+" fraction promotes the literal to
// FloatLiteral, and a single-byte suffix (b/s/l/f/d) picks the final
// token kind. A b/s/l suffix on a literal that already has a decimal
// point is reported but the suffix-implied token is still produced.
func (lx *Lexer) scanNumber() token.Token {
	if lx.cursor.Peek() == '0' && (lx.cursor.PeekAt(1) == 'x' || lx.cursor.PeekAt(1) == 'X') {
		lx.cursor.Bump()
		lx.cursor.Bump()
		for isHexByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return token.Token{Kind: token.IntegerLiteral, Span: lx.cursor.EndSpan()}
	}

	isFloat := false
	for isDigitByte(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == '.' && isDigitByte(lx.cursor.PeekAt(1)) {
		lx.cursor.Bump()
		isFloat = true
		for isDigitByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	kind := token.IntegerLiteral
	if isFloat {
		kind = token.FloatLiteral
	}

	switch lx.cursor.Peek() {
	case 'b':
		kind = token.ByteLiteral
	case 's':
		kind = token.ShortLiteral
	case 'l':
		kind = token.LongLiteral
	case 'f':
		kind = token.FloatLiteral
	case 'd':
		kind = token.DoubleLiteral
	default:
		sp := lx.cursor.EndSpan()
		return token.Token{Kind: kind, Span: sp}
	}

	suffix := lx.cursor.Peek()
	lx.cursor.Bump()
	sp := lx.cursor.EndSpan()
	if isFloat && (suffix == 'b' || suffix == 's' || suffix == 'l') {
		lx.report(diag.LexBadNumberSuffix, sp, suffixTypeName(suffix)+" literal can not have a decimal point.")
	}
	return token.Token{Kind: kind, Span: sp}
}

func suffixTypeName(suffix byte) string {
	switch suffix {
	case 'b':
		return "Byte"
	case 's':
		return "Short"
	case 'l':
		return "Long"
	default:
		return "Number"
	}
}
