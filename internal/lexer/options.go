package lexer

import (
	"qak/internal/diag"
	"qak/internal/source"
)

// Options configures a tokenizer run.
type Options struct {
	// Reporter receives lexical diagnostics. A nil Reporter silently
	// drops them, which is useful for throwaway scratch tokenization.
	Reporter diag.Reporter
}

func (lx *Lexer) report(code diag.Code, span source.Span, msg string) {
	if lx.opts.Reporter == nil {
		return
	}
	lx.opts.Reporter.Report(code, diag.SevError, span, msg, nil)
}
