package parser

import (
	"qak/internal/ast"
	"qak/internal/token"
)

// parseStatement implements:
//
//	statement := variable | while | if | return | exprStatement
func (p *Parser) parseStatement() ast.StmtID {
	switch {
	case p.matchText("var", false):
		return p.parseVariable()
	case p.matchText("while", false):
		return p.parseWhile()
	case p.matchText("if", false):
		return p.parseIf()
	case p.matchText("return", false):
		return p.parseReturn()
	default:
		return p.parseExprStatement()
	}
}

// parseVariable implements: variable := "var" IDENT (":" type)? ("=" expression)?
func (p *Parser) parseVariable() ast.StmtID {
	kwTok, ok := p.expectText("var")
	if !ok {
		return ast.NoStmtID
	}
	nameTok, ok := p.expect(token.Identifier)
	if !ok {
		return ast.NoStmtID
	}

	typ := ast.NoTypeID
	if p.match(token.Colon, true) {
		typ, ok = p.parseType()
		if !ok {
			return ast.NoStmtID
		}
	}

	init := ast.NoExprID
	if p.match(token.Assignment, true) {
		init = p.parseExpression()
		if p.failed {
			return ast.NoStmtID
		}
	}

	span := kwTok.Span.Cover(p.lastSpan)
	v := p.builder.NewVar(span, nameTok.Span, typ, init)
	return p.builder.NewVarStmt(span, v)
}

// parseWhile implements: while := "while" expression statement* "end"
func (p *Parser) parseWhile() ast.StmtID {
	kwTok, ok := p.expectText("while")
	if !ok {
		return ast.NoStmtID
	}
	cond := p.parseExpression()
	if p.failed {
		return ast.NoStmtID
	}

	var body []ast.StmtID
	for p.hasMore() && !p.matchText("end", false) {
		stmt := p.parseStatement()
		if p.failed {
			return ast.NoStmtID
		}
		body = append(body, stmt)
	}
	if _, ok = p.expectText("end"); !ok {
		return ast.NoStmtID
	}

	span := kwTok.Span.Cover(p.lastSpan)
	return p.builder.NewWhileStmt(span, cond, body)
}

// parseIf implements: if := "if" expression statement* ("else" statement*)? "end"
//
// There is a single trailing "end" shared by both branches; "else if"
// is just a nested if statement inside the else branch.
func (p *Parser) parseIf() ast.StmtID {
	kwTok, ok := p.expectText("if")
	if !ok {
		return ast.NoStmtID
	}
	cond := p.parseExpression()
	if p.failed {
		return ast.NoStmtID
	}

	var trueBlock []ast.StmtID
	for p.hasMore() && !p.matchText("end", false) && !p.matchText("else", false) {
		stmt := p.parseStatement()
		if p.failed {
			return ast.NoStmtID
		}
		trueBlock = append(trueBlock, stmt)
	}

	var falseBlock []ast.StmtID
	if p.matchText("else", true) {
		for p.hasMore() && !p.matchText("end", false) {
			stmt := p.parseStatement()
			if p.failed {
				return ast.NoStmtID
			}
			falseBlock = append(falseBlock, stmt)
		}
	}
	if _, ok = p.expectText("end"); !ok {
		return ast.NoStmtID
	}

	span := kwTok.Span.Cover(p.lastSpan)
	return p.builder.NewIfStmt(span, cond, trueBlock, falseBlock)
}

// parseReturn implements: return := "return" expression?
//
// The value is optional and nothing in the grammar marks its absence
// explicitly, so presence is inferred from lookahead: a token that
// cannot start an expression (in particular the block terminators
// "end" and "else", or a bare end of input) means there is no value.
func (p *Parser) parseReturn() ast.StmtID {
	kwTok, ok := p.expectText("return")
	if !ok {
		return ast.NoStmtID
	}

	value := ast.NoExprID
	if p.startsExpression() {
		value = p.parseExpression()
		if p.failed {
			return ast.NoStmtID
		}
	}

	span := kwTok.Span.Cover(p.lastSpan)
	return p.builder.NewReturnStmt(span, value)
}

// startsExpression reports whether the current token could begin an
// expression, used to decide whether a bare "return" carries a value.
func (p *Parser) startsExpression() bool {
	if !p.hasMore() {
		return false
	}
	if p.matchText("end", false) || p.matchText("else", false) {
		return false
	}
	tok := p.peek()
	if tok.Kind.IsLiteral() || tok.Kind == token.Identifier {
		return true
	}
	switch tok.Kind {
	case token.LeftParenthesis, token.Not, token.Plus, token.Minus:
		return true
	default:
		return false
	}
}

// parseExprStatement implements: exprStatement := expression
func (p *Parser) parseExprStatement() ast.StmtID {
	expr := p.parseExpression()
	if p.failed {
		return ast.NoStmtID
	}
	span := p.lastSpan
	if e := p.builder.Exprs.Get(uint32(expr)); e != nil {
		span = e.Span
	}
	return p.builder.NewExprStmt(span, expr)
}
