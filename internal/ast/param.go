package ast

import "qak/internal/source"

// Param is a single function parameter: "name: type".
type Param struct {
	Span source.Span
	Name source.Span
	Type TypeID
}
