package parser

import (
	"qak/internal/ast"
	"qak/internal/token"
)

// parseFunction implements:
//
//	function := "fun" IDENT "(" params? ")" (":" type)? statement* "end"
//
// Both "fun" and "function" are accepted as the introducing keyword;
// KeywordSpan records which one was actually used.
func (p *Parser) parseFunction() ast.FuncID {
	var kwTok token.Token
	var ok bool
	switch {
	case p.matchText("fun", false):
		kwTok, ok = p.expectText("fun")
	default:
		kwTok, ok = p.expectText("function")
	}
	if !ok {
		return ast.NoFuncID
	}

	nameTok, ok := p.expect(token.Identifier)
	if !ok {
		return ast.NoFuncID
	}
	if _, ok = p.expect(token.LeftParenthesis); !ok {
		return ast.NoFuncID
	}

	var params []ast.ParamID
	if !p.match(token.RightParenthesis, false) {
		for {
			param, ok := p.parseParam()
			if !ok {
				return ast.NoFuncID
			}
			params = append(params, param)
			if !p.match(token.Comma, true) {
				break
			}
		}
	}
	if _, ok = p.expect(token.RightParenthesis); !ok {
		return ast.NoFuncID
	}

	retType := ast.NoTypeID
	if p.match(token.Colon, true) {
		retType, ok = p.parseType()
		if !ok {
			return ast.NoFuncID
		}
	}

	var body []ast.StmtID
	for p.hasMore() && !p.matchText("end", false) {
		stmt := p.parseStatement()
		if p.failed {
			return ast.NoFuncID
		}
		body = append(body, stmt)
	}
	if _, ok = p.expectText("end"); !ok {
		return ast.NoFuncID
	}

	span := kwTok.Span.Cover(p.lastSpan)
	return p.builder.NewFunc(span, nameTok.Span, kwTok.Span, params, retType, body)
}

// parseParam implements: param := IDENT ":" type
func (p *Parser) parseParam() (ast.ParamID, bool) {
	nameTok, ok := p.expect(token.Identifier)
	if !ok {
		return ast.NoParamID, false
	}
	if _, ok = p.expect(token.Colon); !ok {
		return ast.NoParamID, false
	}
	typ, ok := p.parseType()
	if !ok {
		return ast.NoParamID, false
	}
	span := nameTok.Span.Cover(p.lastSpan)
	return p.builder.NewParam(span, nameTok.Span, typ), true
}

// parseType implements: type := IDENT
func (p *Parser) parseType() (ast.TypeID, bool) {
	nameTok, ok := p.expect(token.Identifier)
	if !ok {
		return ast.NoTypeID, false
	}
	return p.builder.NewType(nameTok.Span, nameTok.Span), true
}
