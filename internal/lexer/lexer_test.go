package lexer

import (
	"testing"

	"qak/internal/diag"
	"qak/internal/source"
	"qak/internal/token"
)

func mustFile(t *testing.T, data string) *source.File {
	t.Helper()
	reg := source.NewRegistry()
	f, err := reg.AddVirtual("test.qak", []byte(data))
	if err != nil {
		t.Fatalf("AddVirtual: %v", err)
	}
	return f
}

func tokenize(t *testing.T, data string) ([]token.Token, *diag.Bag) {
	t.Helper()
	f := mustFile(t, data)
	bag := diag.NewBag()
	toks := Tokenize(f, diag.BagReporter{Bag: bag})
	return toks, bag
}

func TestFullPunctuationSuite(t *testing.T) {
	const src = `<= >= == != < > = . , ; : + - * / % ( ) [ ] { } & | ^ ! ? 한자🥴 123 123b 123s 123l 123.2 123.3f 123.4d 'c' '\n' true false nothing _Some987Identifier "Hello world. 한자🥴"`

	toks, bag := tokenize(t, src)
	if bag.Len() != 0 {
		t.Fatalf("expected no diagnostics, got %d: %+v", bag.Len(), bag.Items())
	}

	// Drop the trailing EOF sentinel for the count check below.
	significant := toks[:len(toks)-1]
	if got, want := len(significant), 42; got != want {
		t.Fatalf("expected %d tokens, got %d: %+v", want, got, significant)
	}

	if significant[0].Kind != token.LessEqual {
		t.Errorf("first token kind = %s, want LessEqual", significant[0].Kind)
	}
	last := significant[len(significant)-1]
	if last.Kind != token.StringLiteral {
		t.Errorf("last token kind = %s, want StringLiteral", last.Kind)
	}

	wantKinds := []token.Kind{
		token.LessEqual, token.GreaterEqual, token.Equal, token.NotEqual,
		token.Less, token.Greater, token.Assignment,
		token.Period, token.Comma, token.Semicolon, token.Colon,
		token.Plus, token.Minus, token.Asterisk, token.ForwardSlash, token.Percentage,
		token.LeftParenthesis, token.RightParenthesis,
		token.LeftBracket, token.RightBracket,
		token.LeftCurly, token.RightCurly,
		token.And, token.Or, token.Xor, token.Not, token.QuestionMark,
		token.Identifier, // 한자🥴
		token.IntegerLiteral, token.ByteLiteral, token.ShortLiteral, token.LongLiteral,
		token.FloatLiteral, token.FloatLiteral, token.DoubleLiteral,
		token.CharacterLiteral, token.CharacterLiteral,
		token.BooleanLiteral, token.BooleanLiteral, token.NothingLiteral,
		token.Identifier, // _Some987Identifier
		token.StringLiteral,
	}
	if len(wantKinds) != len(significant) {
		t.Fatalf("test bug: want %d kinds, have %d tokens", len(wantKinds), len(significant))
	}
	for i, want := range wantKinds {
		if significant[i].Kind != want {
			t.Errorf("token %d: kind = %s, want %s", i, significant[i].Kind, want)
		}
	}

	f := mustFile(t, src)
	identTok := significant[27]
	if string(f.Text(identTok.Span)) != "한자🥴" {
		t.Errorf("identifier text = %q, want 한자🥴", f.Text(identTok.Span))
	}
}

func TestNumberSuffixes(t *testing.T) {
	toks, bag := tokenize(t, "123 0x1F 123b 123.5 123.5f 123b .5")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	want := []token.Kind{
		token.IntegerLiteral, token.IntegerLiteral, token.ByteLiteral,
		token.FloatLiteral, token.FloatLiteral, token.ByteLiteral,
		token.Period, token.IntegerLiteral, token.EOF,
	}
	if len(toks) != len(want) {
		t.Fatalf("got %d tokens, want %d: %+v", len(toks), len(want), toks)
	}
	for i, w := range want {
		if toks[i].Kind != w {
			t.Errorf("token %d kind = %s, want %s", i, toks[i].Kind, w)
		}
	}
}

func TestBadNumberSuffixDecimalConflict(t *testing.T) {
	toks, bag := tokenize(t, "123.5b")
	if bag.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d: %+v", bag.Len(), bag.Items())
	}
	if toks[0].Kind != token.ByteLiteral {
		t.Errorf("kind = %s, want ByteLiteral (suffix still drives the type)", toks[0].Kind)
	}
}

func TestUnterminatedString(t *testing.T) {
	toks, bag := tokenize(t, `"abc`)
	if bag.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d", bag.Len())
	}
	if toks[0].Kind != token.Invalid {
		t.Errorf("kind = %s, want Invalid", toks[0].Kind)
	}
}

func TestUnterminatedStringNewline(t *testing.T) {
	toks, bag := tokenize(t, "\"abc\ndef\"")
	if bag.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d", bag.Len())
	}
	if toks[0].Kind != token.Invalid {
		t.Errorf("kind = %s, want Invalid", toks[0].Kind)
	}
}

func TestUnterminatedChar(t *testing.T) {
	toks, bag := tokenize(t, "'a")
	if bag.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d", bag.Len())
	}
	if toks[0].Kind != token.Invalid {
		t.Errorf("kind = %s, want Invalid", toks[0].Kind)
	}
}

func TestUnknownByte(t *testing.T) {
	toks, bag := tokenize(t, "~")
	if bag.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d", bag.Len())
	}
	if toks[0].Kind != token.Unknown {
		t.Errorf("kind = %s, want Unknown", toks[0].Kind)
	}
}

func TestUnknownTwoCharToken(t *testing.T) {
	toks, bag := tokenize(t, "+=")
	if bag.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d", bag.Len())
	}
	if toks[0].Kind != token.Unknown {
		t.Errorf("kind = %s, want Unknown", toks[0].Kind)
	}
}

func TestCommentsAndWhitespaceSkipped(t *testing.T) {
	toks, bag := tokenize(t, "# a comment\n  x # trailing\n")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	if len(toks) != 2 || toks[0].Kind != token.Identifier || toks[1].Kind != token.EOF {
		t.Fatalf("unexpected tokens: %+v", toks)
	}
}

func TestLineMonotonicity(t *testing.T) {
	toks, bag := tokenize(t, "a\nb\n\nc")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	for i := 1; i < len(toks); i++ {
		if toks[i].Span.StartLine < toks[i-1].Span.StartLine {
			t.Errorf("token %d starts before token %d: lines %d < %d", i, i-1, toks[i].Span.StartLine, toks[i-1].Span.StartLine)
		}
	}
}

func TestEmptyModuleTokenizesToBareEOF(t *testing.T) {
	toks, bag := tokenize(t, "  \n\t\n")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %+v", bag.Items())
	}
	if len(toks) != 1 || toks[0].Kind != token.EOF {
		t.Fatalf("expected a single EOF token, got %+v", toks)
	}
}
