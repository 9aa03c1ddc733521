package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/vmihailenco/msgpack/v5"

	"qak/internal/source"
	"qak/internal/token"
)

// TokenOutput is the serializable shape of one token, used by both the
// JSON and msgpack dumpers.
type TokenOutput struct {
	Kind      string `json:"kind" msgpack:"kind"`
	Text      string `json:"text,omitempty" msgpack:"text,omitempty"`
	Start     uint32 `json:"start" msgpack:"start"`
	End       uint32 `json:"end" msgpack:"end"`
	StartLine uint32 `json:"startLine" msgpack:"startLine"`
	EndLine   uint32 `json:"endLine" msgpack:"endLine"`
}

// TokenOutputs converts a token vector into its serializable form.
// Identifier text is interned so a name that recurs hundreds of times
// in a large file is backed by one string instead of one copy per
// occurrence.
func TokenOutputs(file *source.File, tokens []token.Token) []TokenOutput {
	interner := source.NewInterner()
	out := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		text := ""
		if tok.Kind == token.Identifier {
			id := interner.Intern(string(file.Text(tok.Span)))
			text, _ = interner.Lookup(id)
		} else if tok.Kind != token.EOF {
			text = string(file.Text(tok.Span))
		}
		out = append(out, TokenOutput{
			Kind:      tok.Kind.String(),
			Text:      text,
			Start:     tok.Span.Start,
			End:       tok.Span.End,
			StartLine: tok.Span.StartLine,
			EndLine:   tok.Span.EndLine,
		})
	}
	return out
}

// FormatTokensPretty writes one line per token: index, kind, quoted
// source text (when the token carries any), and its line:col-line:col
// range.
func FormatTokensPretty(w io.Writer, file *source.File, tokens []token.Token) error {
	for i, tok := range tokens {
		start := file.LineCol(tok.Span.Start)
		end := file.LineCol(tok.Span.End)
		if _, err := fmt.Fprintf(w, "%3d: %-18s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Kind != token.EOF {
			if _, err := fmt.Fprintf(w, " %q", file.Text(tok.Span)); err != nil {
				return err
			}
		}
		if _, err := fmt.Fprintf(w, " at %d:%d-%d:%d\n", start.Line, start.Col, end.Line, end.Col); err != nil {
			return err
		}
	}
	return nil
}

// FormatTokensJSON writes tokens as an indented JSON array.
func FormatTokensJSON(w io.Writer, file *source.File, tokens []token.Token) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(TokenOutputs(file, tokens))
}

// FormatTokensMsgpack writes tokens as a msgpack-encoded array.
func FormatTokensMsgpack(w io.Writer, file *source.File, tokens []token.Token) error {
	return msgpack.NewEncoder(w).Encode(TokenOutputs(file, tokens))
}
