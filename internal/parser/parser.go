package parser

import (
	"qak/internal/ast"
	"qak/internal/diag"
	"qak/internal/lexer"
	"qak/internal/source"
	"qak/internal/token"
)

// Parser holds the state for parsing exactly one file: the token
// vector already produced by the tokenizer, a read cursor over it, the
// arena builder new nodes are allocated into, and the diagnostic sink.
// There is no error-recovery state: the first mismatch flips failed to
// true, and every parse method checks it before doing further work, so
// the failure unwinds up to Parse without panics or recursive error
// propagation machinery.
type Parser struct {
	file   *source.File
	tokens []token.Token
	idx    int

	builder *ast.Builder
	bag     *diag.Bag
	failed  bool

	// lastSpan is the span of the most recently consumed token, used to
	// close off a parent node's span once its last child has been parsed.
	lastSpan source.Span
}

// Parse tokenizes file, then parses it into a Module. It returns nil
// if tokenization reported any diagnostic (the parser never even
// starts in that case) or if parsing itself failed; either way every
// diagnostic produced is left in bag.
func Parse(file *source.File, bag *diag.Bag) (*ast.Module, *ast.Builder) {
	toks := lexer.Tokenize(file, diag.BagReporter{Bag: bag})
	return ParseTokens(file, toks, bag)
}

// ParseTokens parses an already-tokenized file. Callers that need the
// token vector itself (the embedding API keeps it around for
// inspection) tokenize once, hold on to the slice, and hand it in
// here; bag must be the same sink the tokenizer reported into, since a
// lexical error in it vetoes parsing entirely.
func ParseTokens(file *source.File, toks []token.Token, bag *diag.Bag) (*ast.Module, *ast.Builder) {
	if bag.HasErrors() {
		return nil, nil
	}

	builder := ast.NewBuilder()
	p := &Parser{file: file, tokens: toks, builder: builder, bag: bag}
	mod := p.parseModule()
	if p.failed {
		return nil, nil
	}
	return mod, builder
}

func (p *Parser) fail(span source.Span, msg string) {
	p.failWithCode(diag.SynUnexpectedToken, span, msg)
}

func (p *Parser) failWithCode(code diag.Code, span source.Span, msg string) {
	if p.failed {
		return
	}
	p.failed = true
	p.bag.Report(code, diag.SevError, span, msg, nil)
}
