package ast

import "qak/internal/source"

// Module is the parser's root node: a named compilation unit holding
// its top-level variables, functions, and statements. Module is not
// itself arena-allocated (a compilation unit owns exactly one), but
// every node it reaches is, via the Builder's arenas.
type Module struct {
	Span source.Span
	Name source.Span

	Variables  []VarID
	Functions  []FuncID
	Statements []StmtID
}
