package ast

import (
	"testing"

	"qak/internal/source"
)

func dummySpan(start, end uint32) source.Span {
	return source.Span{Start: start, End: end, StartLine: 1, EndLine: 1}
}

func TestArenaIndicesAreStable(t *testing.T) {
	a := NewArena[int](2)

	var ids []uint32
	for i := 0; i < 100; i++ {
		ids = append(ids, a.Allocate(i*7))
	}
	if a.Len() != 100 {
		t.Fatalf("Len = %d, want 100", a.Len())
	}
	for i, id := range ids {
		got := a.Get(id)
		if got == nil || *got != i*7 {
			t.Fatalf("Get(%d) = %v, want %d", id, got, i*7)
		}
	}
}

func TestArenaZeroIndexMeansAbsent(t *testing.T) {
	a := NewArena[Expr](4)
	if a.Get(0) != nil {
		t.Fatalf("Get(0) should be nil")
	}
	id := a.Allocate(Expr{Kind: ExprLiteral})
	if id != 1 {
		t.Fatalf("first allocation got index %d, want 1", id)
	}
}

func TestBuilderConstructorsRoundTrip(t *testing.T) {
	b := NewBuilder()

	lit := b.NewLiteral(dummySpan(0, 1), 0, dummySpan(0, 1))
	access := b.NewVariableAccess(dummySpan(2, 3), dummySpan(2, 3))
	call := b.NewFunctionCall(dummySpan(2, 6), access, []ExprID{lit})

	expr := b.Exprs.Get(uint32(call))
	if expr == nil || expr.Kind != ExprFunctionCall {
		t.Fatalf("expected FunctionCall, got %+v", expr)
	}
	if expr.Target != access || len(expr.Arguments) != 1 || expr.Arguments[0] != lit {
		t.Fatalf("call children wrong: %+v", expr)
	}

	target := b.Exprs.Get(uint32(expr.Target))
	if target.Kind != ExprVariableAccess {
		t.Fatalf("call target should be a VariableAccess, got %+v", target)
	}
}

func TestIDValidity(t *testing.T) {
	if NoExprID.IsValid() || NoStmtID.IsValid() || NoTypeID.IsValid() {
		t.Fatalf("zero ids must be invalid")
	}
	b := NewBuilder()
	id := b.NewType(dummySpan(0, 3), dummySpan(0, 3))
	if !id.IsValid() {
		t.Fatalf("allocated id must be valid")
	}
}
