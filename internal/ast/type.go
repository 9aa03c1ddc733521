package ast

import "qak/internal/source"

// TypeSpecifier names a type by its identifier span. Qak has no
// generics or compound type syntax: a type is always a single name.
type TypeSpecifier struct {
	Span source.Span
	Name source.Span
}
