package lexer

// This file implements the tokenizer's own UTF-8 decoder rather than
// reaching for unicode/utf8: per the scanner's contract, classification
// of multi-byte characters is driven by raw decoded code point value
// against fixed thresholds (0x80, 0xC0), not real Unicode letter/digit
// categories, so a general-purpose decoder plus unicode.IsLetter would
// answer a different question than the one the grammar asks.

// utf8Len returns how many bytes the sequence starting with lead
// occupies, from 1 (ASCII) up to 6. A lead byte that doesn't start any
// valid sequence reports 1, so callers always make forward progress.
func utf8Len(lead byte) int {
	switch {
	case lead < 0x80:
		return 1
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	case lead&0xFC == 0xF8:
		return 5
	case lead&0xFE == 0xFC:
		return 6
	default:
		return 1
	}
}

// utf8Offsets subtracts the bits contributed by a sequence's leading
// byte once the shift-and-add accumulation has run across every byte,
// indexed by (length-1).
var utf8Offsets = [6]uint32{
	0x00000000,
	0x00003080,
	0x000E2080,
	0x03C82080,
	0xFA082080,
	0x82082080,
}

// decodeRune decodes one code point starting at the cursor's current
// position using the shift-and-add scheme: the accumulator is shifted
// left by 6 bits and the next raw byte added in, for as long as that
// next byte is a well-formed continuation byte (top two bits 10); the
// length-dependent offset is then subtracted out. It returns the
// decoded code point and the number of bytes it occupies (at least 1
// for non-empty data, so callers always make forward progress even on
// malformed input; 0 only when data is empty).
func decodeRune(data []byte) (r rune, size int) {
	if len(data) == 0 {
		return 0, 0
	}
	lead := data[0]
	if lead < 0x80 {
		return rune(lead), 1
	}

	want := utf8Len(lead)
	if want > len(data) {
		want = len(data)
	}

	var acc uint32
	n := 0
	for n < want {
		b := data[n]
		if n > 0 && b&0xC0 != 0x80 {
			break
		}
		acc = (acc << 6) + uint32(b)
		n++
	}
	if n == 0 {
		return rune(lead), 1
	}
	acc -= utf8Offsets[n-1]
	return rune(acc), n
}

// isIdentStartByte reports whether b, taken alone, may begin an
// identifier: the ASCII fast path of the identifier-start class.
func isIdentStartByte(b byte) bool {
	return b == '_' || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}

// isIdentPartByte reports whether b, taken alone, may continue an
// identifier: identifier-start bytes plus digits.
func isIdentPartByte(b byte) bool {
	return isIdentStartByte(b) || isDigitByte(b)
}

// isIdentStartRune reports whether a decoded multi-byte code point may
// begin an identifier: any code point >= 0xC0, per the scanner's
// classification rule.
func isIdentStartRune(r rune) bool {
	return r >= 0xC0
}

// isIdentPartRune reports whether a decoded multi-byte code point may
// continue an identifier: any code point >= 0x80.
func isIdentPartRune(r rune) bool {
	return r >= 0x80
}

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

func isHexByte(b byte) bool {
	return isDigitByte(b) || (b >= 'a' && b <= 'f') || (b >= 'A' && b <= 'F')
}

func isWhitespaceByte(b byte) bool {
	return b == ' ' || b == '\r' || b == '\t' || b == '\n'
}
