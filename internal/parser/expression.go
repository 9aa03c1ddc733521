package parser

import (
	"qak/internal/ast"
	"qak/internal/token"
)

// Precedence levels, loosest first. Level 0 is the ternary's operand
// grammar ("=" as a binary operator reads oddly but the grammar names
// it as the loosest level); levels 1-5 are the usual operator-
// precedence ladder.
var precedenceLevels = [][]token.Kind{
	{token.Assignment},
	{token.Or, token.And, token.Xor},
	{token.Equal, token.NotEqual},
	{token.Less, token.LessEqual, token.Greater, token.GreaterEqual},
	{token.Plus, token.Minus},
	{token.ForwardSlash, token.Asterisk, token.Percentage},
}

// parseExpression implements: expression := ternary
func (p *Parser) parseExpression() ast.ExprID {
	return p.parseTernary()
}

// parseTernary implements: ternary := binary(0) ("?" expression ":" expression)?
func (p *Parser) parseTernary() ast.ExprID {
	cond := p.parseBinary(0)
	if p.failed {
		return ast.NoExprID
	}
	if !p.match(token.QuestionMark, true) {
		return cond
	}

	thenVal := p.parseExpression()
	if p.failed {
		return ast.NoExprID
	}
	if _, ok := p.expect(token.Colon); !ok {
		return ast.NoExprID
	}
	elseVal := p.parseExpression()
	if p.failed {
		return ast.NoExprID
	}

	condExpr := p.builder.Exprs.Get(uint32(cond))
	span := p.lastSpan
	if condExpr != nil {
		span = condExpr.Span.Cover(p.lastSpan)
	}
	return p.builder.NewTernary(span, cond, thenVal, elseVal)
}

// parseBinary implements the precedence-climbing ladder described by
// precedenceLevels: level 0 is loosest ("="), level 5 tightest
// ("/ * %"). Binary operators are left-associative.
func (p *Parser) parseBinary(level int) ast.ExprID {
	if level >= len(precedenceLevels) {
		return p.parseUnary()
	}

	left := p.parseBinary(level + 1)
	if p.failed {
		return ast.NoExprID
	}

	for {
		opKind, ok := p.peekAnyOf(precedenceLevels[level])
		if !ok {
			return left
		}
		opTok := p.consume()

		right := p.parseBinary(level + 1)
		if p.failed {
			return ast.NoExprID
		}

		leftExpr := p.builder.Exprs.Get(uint32(left))
		span := p.lastSpan
		if leftExpr != nil {
			span = leftExpr.Span.Cover(p.lastSpan)
		}
		left = p.builder.NewBinary(span, opTok.Span, opKind, left, right)
	}
}

// peekAnyOf reports whether the current token's kind is one of kinds,
// without consuming it.
func (p *Parser) peekAnyOf(kinds []token.Kind) (token.Kind, bool) {
	cur := p.peek().Kind
	for _, k := range kinds {
		if cur == k {
			return k, true
		}
	}
	return token.Invalid, false
}
