package ast

import "qak/internal/source"

// Var is a variable declaration: "var name (: type)? (= initializer)?".
type Var struct {
	Span source.Span
	Name source.Span
	Type TypeID // NoTypeID if the annotation was omitted
	Init ExprID // NoExprID if there is no initializer
}
