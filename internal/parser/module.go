package parser

import (
	"qak/internal/ast"
	"qak/internal/token"
)

// parseModule implements:
//
//	module   := "module" IDENT topLevel*
//	topLevel := function | statement
func (p *Parser) parseModule() *ast.Module {
	kwTok, ok := p.expectText("module")
	if !ok {
		return nil
	}
	nameTok, ok := p.expect(token.Identifier)
	if !ok {
		return nil
	}

	mod := &ast.Module{Name: nameTok.Span}

	for p.hasMore() && !p.failed {
		if p.isFunctionKeyword() {
			fn := p.parseFunction()
			if p.failed {
				return nil
			}
			mod.Functions = append(mod.Functions, fn)
			continue
		}

		stmt := p.parseStatement()
		if p.failed {
			return nil
		}
		mod.Statements = append(mod.Statements, stmt)
		if s := p.builder.Stmts.Get(uint32(stmt)); s != nil && s.Kind == ast.StmtVar {
			mod.Variables = append(mod.Variables, s.Var)
		}
	}

	if p.failed {
		return nil
	}
	mod.Span = kwTok.Span.Cover(p.lastSpan)
	return mod
}

// isFunctionKeyword reports whether the current token introduces a
// function: either accepted spelling, "fun" or "function".
func (p *Parser) isFunctionKeyword() bool {
	return p.matchText("fun", false) || p.matchText("function", false)
}
