package ast

import "qak/internal/source"

// Func is a top-level function declaration.
type Func struct {
	Span source.Span
	Name source.Span

	// KeywordSpan records which spelling ("fun" or "function") introduced
	// this function, resolving the open question of which dialect to
	// accept by accepting both and remembering which one was used.
	KeywordSpan source.Span

	Params     []ParamID
	ReturnType TypeID // NoTypeID if omitted
	Body       []StmtID
}
