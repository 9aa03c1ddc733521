package ast

import (
	"qak/internal/source"
	"qak/internal/token"
)

// Builder owns every per-kind Arena for one compilation unit and
// constructs nodes into them. A Builder (and everything it allocated)
// is freed as a unit when the owning compilation unit is discarded;
// nothing inside it is ever freed piecemeal.
type Builder struct {
	Exprs  *Arena[Expr]
	Stmts  *Arena[Stmt]
	Vars   *Arena[Var]
	Funcs  *Arena[Func]
	Params *Arena[Param]
	Types  *Arena[TypeSpecifier]
}

// NewBuilder returns a Builder with modest default capacities, sized
// for a typical single-file module rather than a whole-program arena.
func NewBuilder() *Builder {
	return &Builder{
		Exprs:  NewArena[Expr](64),
		Stmts:  NewArena[Stmt](32),
		Vars:   NewArena[Var](16),
		Funcs:  NewArena[Func](8),
		Params: NewArena[Param](16),
		Types:  NewArena[TypeSpecifier](16),
	}
}

// NewType allocates a TypeSpecifier node.
func (b *Builder) NewType(span, name source.Span) TypeID {
	return TypeID(b.Types.Allocate(TypeSpecifier{Span: span, Name: name}))
}

// NewParam allocates a Param node.
func (b *Builder) NewParam(span, name source.Span, typ TypeID) ParamID {
	return ParamID(b.Params.Allocate(Param{Span: span, Name: name, Type: typ}))
}

// NewVar allocates a Variable node.
func (b *Builder) NewVar(span, name source.Span, typ TypeID, init ExprID) VarID {
	return VarID(b.Vars.Allocate(Var{Span: span, Name: name, Type: typ, Init: init}))
}

// NewFunc allocates a Function node.
func (b *Builder) NewFunc(span, name, keywordSpan source.Span, params []ParamID, ret TypeID, body []StmtID) FuncID {
	return FuncID(b.Funcs.Allocate(Func{
		Span:        span,
		Name:        name,
		KeywordSpan: keywordSpan,
		Params:      params,
		ReturnType:  ret,
		Body:        body,
	}))
}

// NewLiteral allocates a Literal expression.
func (b *Builder) NewLiteral(span source.Span, litType token.Kind, value source.Span) ExprID {
	return ExprID(b.Exprs.Allocate(Expr{Kind: ExprLiteral, Span: span, LiteralType: litType, Value: value}))
}

// NewVariableAccess allocates a VariableAccess expression.
func (b *Builder) NewVariableAccess(span, name source.Span) ExprID {
	return ExprID(b.Exprs.Allocate(Expr{Kind: ExprVariableAccess, Span: span, Name: name}))
}

// NewFunctionCall allocates a FunctionCall expression. target must
// reference an ExprVariableAccess node.
func (b *Builder) NewFunctionCall(span source.Span, target ExprID, args []ExprID) ExprID {
	return ExprID(b.Exprs.Allocate(Expr{Kind: ExprFunctionCall, Span: span, Target: target, Arguments: args}))
}

// NewBinary allocates a BinaryOperation expression.
func (b *Builder) NewBinary(span, opSpan source.Span, opType token.Kind, left, right ExprID) ExprID {
	return ExprID(b.Exprs.Allocate(Expr{Kind: ExprBinary, Span: span, OpSpan: opSpan, OpType: opType, Left: left, Right: right}))
}

// NewUnary allocates a UnaryOperation expression.
func (b *Builder) NewUnary(span, opSpan source.Span, opType token.Kind, operand ExprID) ExprID {
	return ExprID(b.Exprs.Allocate(Expr{Kind: ExprUnary, Span: span, OpSpan: opSpan, OpType: opType, Operand: operand}))
}

// NewTernary allocates a TernaryOperation expression.
func (b *Builder) NewTernary(span source.Span, cond, trueVal, falseVal ExprID) ExprID {
	return ExprID(b.Exprs.Allocate(Expr{Kind: ExprTernary, Span: span, Condition: cond, Then: trueVal, Else: falseVal}))
}

// NewVarStmt wraps a Var declaration as a Stmt.
func (b *Builder) NewVarStmt(span source.Span, v VarID) StmtID {
	return StmtID(b.Stmts.Allocate(Stmt{Kind: StmtVar, Span: span, Var: v}))
}

// NewWhileStmt allocates a While statement.
func (b *Builder) NewWhileStmt(span source.Span, cond ExprID, body []StmtID) StmtID {
	return StmtID(b.Stmts.Allocate(Stmt{Kind: StmtWhile, Span: span, Condition: cond, Body: body}))
}

// NewIfStmt allocates an If statement.
func (b *Builder) NewIfStmt(span source.Span, cond ExprID, trueBlock, falseBlock []StmtID) StmtID {
	return StmtID(b.Stmts.Allocate(Stmt{Kind: StmtIf, Span: span, Condition: cond, Body: trueBlock, FalseBlock: falseBlock}))
}

// NewReturnStmt allocates a Return statement.
func (b *Builder) NewReturnStmt(span source.Span, value ExprID) StmtID {
	return StmtID(b.Stmts.Allocate(Stmt{Kind: StmtReturn, Span: span, Value: value}))
}

// NewExprStmt wraps an expression as a Stmt.
func (b *Builder) NewExprStmt(span source.Span, expr ExprID) StmtID {
	return StmtID(b.Stmts.Allocate(Stmt{Kind: StmtExpr, Span: span, Expr: expr}))
}
