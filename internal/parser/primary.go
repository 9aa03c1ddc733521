package parser

import (
	"qak/internal/ast"
	"qak/internal/token"
)

// unaryOperators are the prefix operators accepted by parseUnary, all
// right-associative (so "!!x" parses as "!(!x)").
var unaryOperators = map[token.Kind]bool{
	token.Not:   true,
	token.Plus:  true,
	token.Minus: true,
}

// parseUnary implements: unary := ("!" | "+" | "-") unary | primary
func (p *Parser) parseUnary() ast.ExprID {
	tok := p.peek()
	if unaryOperators[tok.Kind] {
		opTok := p.consume()
		operand := p.parseUnary()
		if p.failed {
			return ast.NoExprID
		}
		operandExpr := p.builder.Exprs.Get(uint32(operand))
		span := opTok.Span
		if operandExpr != nil {
			span = opTok.Span.Cover(operandExpr.Span)
		}
		return p.builder.NewUnary(span, opTok.Span, opTok.Kind, operand)
	}
	return p.parsePrimary()
}

// parsePrimary implements:
//
//	primary := literal
//	         | "(" expression ")"
//	         | IDENT ("(" args? ")")?
func (p *Parser) parsePrimary() ast.ExprID {
	tok := p.peek()

	switch {
	case tok.Kind.IsLiteral():
		p.consume()
		return p.builder.NewLiteral(tok.Span, tok.Kind, tok.Span)

	case tok.Kind == token.LeftParenthesis:
		p.consume()
		inner := p.parseExpression()
		if p.failed {
			return ast.NoExprID
		}
		if _, ok := p.expect(token.RightParenthesis); !ok {
			return ast.NoExprID
		}
		return inner

	case tok.Kind == token.Identifier:
		nameTok := p.consume()
		target := p.builder.NewVariableAccess(nameTok.Span, nameTok.Span)
		if !p.match(token.LeftParenthesis, true) {
			return target
		}

		var args []ast.ExprID
		if !p.match(token.RightParenthesis, false) {
			for {
				arg := p.parseExpression()
				if p.failed {
					return ast.NoExprID
				}
				args = append(args, arg)
				if !p.match(token.Comma, true) {
					break
				}
			}
		}
		if _, ok := p.expect(token.RightParenthesis); !ok {
			return ast.NoExprID
		}

		span := nameTok.Span.Cover(p.lastSpan)
		return p.builder.NewFunctionCall(span, target, args)

	default:
		p.failExpected("expression")
		return ast.NoExprID
	}
}
