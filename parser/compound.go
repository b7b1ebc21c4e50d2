package parser

import (
	"pyast/ast"
	"pyast/lexer"
)

// compoundStatement dispatches on the leading keyword (or `@`/`async`
// prefix) to one compound-statement production.
func (p *Parser) compoundStatement() (ast.Stmt, error) {
	start := p.peek()
	switch {
	case p.check(lexer.At):
		decorators, err := p.decorators()
		if err != nil {
			return nil, err
		}
		return p.decoratedStatement(start, decorators)
	case p.check(lexer.Async):
		p.advance()
		return p.asyncStatement(start)
	case p.match(lexer.If):
		return p.ifStatement(start)
	case p.match(lexer.While):
		return p.whileStatement(start)
	case p.match(lexer.For):
		return p.forStatement(start, false)
	case p.match(lexer.Try):
		return p.tryStatement(start)
	case p.match(lexer.With):
		return p.withStatement(start, false)
	case p.match(lexer.Def):
		return p.functionDef(start, nil, false)
	case p.match(lexer.Class):
		return p.classDef(start, nil)
	default:
		return p.matchStatement(start)
	}
}

func (p *Parser) decorators() ([]ast.Expr, error) {
	var list []ast.Expr
	for p.match(lexer.At) {
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		list = append(list, e)
		if _, err := p.consume(lexer.Newline, "expected newline after decorator"); err != nil {
			return nil, err
		}
	}
	return list, nil
}

func (p *Parser) decoratedStatement(start lexer.Token, decorators []ast.Expr) (ast.Stmt, error) {
	switch {
	case p.check(lexer.Async):
		p.advance()
		if _, err := p.consume(lexer.Def, "expected 'def' after 'async' in decorated function"); err != nil {
			return nil, err
		}
		return p.functionDef(start, decorators, true)
	case p.match(lexer.Def):
		return p.functionDef(start, decorators, false)
	case p.match(lexer.Class):
		return p.classDef(start, decorators)
	default:
		return nil, p.errorf("expected 'def' or 'class' after decorator")
	}
}

func (p *Parser) asyncStatement(start lexer.Token) (ast.Stmt, error) {
	switch {
	case p.match(lexer.Def):
		return p.functionDef(start, nil, true)
	case p.match(lexer.For):
		return p.forStatement(start, true)
	case p.match(lexer.With):
		return p.withStatement(start, true)
	default:
		return nil, p.errorf("expected 'def', 'for' or 'with' after 'async'")
	}
}

func (p *Parser) functionDef(start lexer.Token, decorators []ast.Expr, isAsync bool) (ast.Stmt, error) {
	name, err := p.consume(lexer.Identifier, "expected a function name")
	if err != nil {
		return nil, err
	}
	typeParams, err := p.maybeTypeParams()
	if err != nil {
		return nil, err
	}
	args, err := p.parseFunctionArguments()
	if err != nil {
		return nil, err
	}
	var returns ast.Expr
	if p.match(lexer.Arrow) {
		r, err := p.expr()
		if err != nil {
			return nil, err
		}
		returns = r
	}
	if _, err := p.consume(lexer.Colon, "expected ':' to start function body"); err != nil {
		return nil, err
	}
	body, err := p.suite()
	if err != nil {
		return nil, err
	}
	fd := &ast.FunctionDef{
		Name: name.Literal.(string), Args: args, Body: body,
		DecoratorList: decorators, Returns: returns, TypeParams: typeParams, IsAsync: isAsync,
	}
	fd.SetSpan(p.spanFrom(start))
	return fd, nil
}

func (p *Parser) classDef(start lexer.Token, decorators []ast.Expr) (ast.Stmt, error) {
	name, err := p.consume(lexer.Identifier, "expected a class name")
	if err != nil {
		return nil, err
	}
	typeParams, err := p.maybeTypeParams()
	if err != nil {
		return nil, err
	}
	var bases []ast.Expr
	var keywords []*ast.Keyword
	if p.match(lexer.LeftParen) {
		for !p.check(lexer.RightParen) {
			if p.check(lexer.Identifier) && p.peekN(1).Type == lexer.Equal {
				nameTok := p.advance()
				p.advance()
				v, err := p.expr()
				if err != nil {
					return nil, err
				}
				keywords = append(keywords, &ast.Keyword{Name: nameTok.Literal.(string), Value: v})
			} else {
				b, err := p.expr()
				if err != nil {
					return nil, err
				}
				bases = append(bases, b)
			}
			if !p.match(lexer.Comma) {
				break
			}
		}
		if _, err := p.consume(lexer.RightParen, "expected ')' after class bases"); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.Colon, "expected ':' to start class body"); err != nil {
		return nil, err
	}
	body, err := p.suite()
	if err != nil {
		return nil, err
	}
	cd := &ast.ClassDef{
		Name: name.Literal.(string), Bases: bases, Keywords: keywords,
		Body: body, DecoratorList: decorators, TypeParams: typeParams,
	}
	cd.SetSpan(p.spanFrom(start))
	return cd, nil
}

// maybeTypeParams parses an optional PEP 695 `[T, *Ts, **P]` list after a
// def/class/type-alias name.
func (p *Parser) maybeTypeParams() ([]*ast.TypeParam, error) {
	if !p.match(lexer.LeftBracket) {
		return nil, nil
	}
	var params []*ast.TypeParam
	for !p.check(lexer.RightBracket) {
		start := p.peek()
		kind := ast.TypeVarParam
		if p.match(lexer.StarStar) {
			kind = ast.ParamSpecParam
		} else if p.match(lexer.Star) {
			kind = ast.TypeVarTupleParam
		}
		name, err := p.consume(lexer.Identifier, "expected a type parameter name")
		if err != nil {
			return nil, err
		}
		var bound ast.Expr
		if p.match(lexer.Colon) {
			b, err := p.expr()
			if err != nil {
				return nil, err
			}
			bound = b
		}
		tp := &ast.TypeParam{Kind: kind, Name: name.Literal.(string), Bound: bound}
		tp.SetSpan(p.spanFrom(start))
		params = append(params, tp)
		if !p.match(lexer.Comma) {
			break
		}
	}
	if _, err := p.consume(lexer.RightBracket, "expected ']' to close type parameter list"); err != nil {
		return nil, err
	}
	return params, nil
}

// suite parses a compound statement's body: either a single inline
// simple-statement line, or NEWLINE + INDENT + statements + DEDENT.
func (p *Parser) suite() ([]ast.Stmt, error) {
	if !p.check(lexer.Newline) {
		return p.simpleStatementLine()
	}
	p.advance() // NEWLINE
	if _, err := p.consume(lexer.Indent, "expected an indented block"); err != nil {
		return nil, err
	}
	var body []ast.Stmt
	for !p.check(lexer.Dedent) && !p.check(lexer.EOF) {
		stmts, err := p.statement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmts...)
	}
	if _, err := p.consume(lexer.Dedent, "expected a dedent to close the block"); err != nil {
		return nil, err
	}
	return body, nil
}

func (p *Parser) ifStatement(start lexer.Token) (ast.Stmt, error) {
	test, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Colon, "expected ':' after 'if' condition"); err != nil {
		return nil, err
	}
	body, err := p.suite()
	if err != nil {
		return nil, err
	}
	var orElse []ast.Stmt
	switch {
	case p.match(lexer.Elif):
		elif, err := p.ifStatement(start)
		if err != nil {
			return nil, err
		}
		orElse = []ast.Stmt{elif}
	case p.match(lexer.Else):
		if _, err := p.consume(lexer.Colon, "expected ':' after 'else'"); err != nil {
			return nil, err
		}
		b, err := p.suite()
		if err != nil {
			return nil, err
		}
		orElse = b
	}
	n := &ast.If{Test: test, Body: body, OrElse: orElse}
	n.SetSpan(p.spanFrom(start))
	return n, nil
}

func (p *Parser) whileStatement(start lexer.Token) (ast.Stmt, error) {
	test, err := p.expr()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Colon, "expected ':' after 'while' condition"); err != nil {
		return nil, err
	}
	body, err := p.suite()
	if err != nil {
		return nil, err
	}
	orElse, err := p.optionalElseSuite()
	if err != nil {
		return nil, err
	}
	n := &ast.While{Test: test, Body: body, OrElse: orElse}
	n.SetSpan(p.spanFrom(start))
	return n, nil
}

func (p *Parser) optionalElseSuite() ([]ast.Stmt, error) {
	if !p.match(lexer.Else) {
		return nil, nil
	}
	if _, err := p.consume(lexer.Colon, "expected ':' after 'else'"); err != nil {
		return nil, err
	}
	return p.suite()
}

func (p *Parser) forStatement(start lexer.Token, isAsync bool) (ast.Stmt, error) {
	target, err := p.exprListAsTupleOrSingle()
	if err != nil {
		return nil, err
	}
	target, err = p.toStoreTarget(target)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.In, "expected 'in' in 'for' statement"); err != nil {
		return nil, err
	}
	iter, err := p.exprListAsTupleOrSingle()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Colon, "expected ':' after 'for' header"); err != nil {
		return nil, err
	}
	body, err := p.suite()
	if err != nil {
		return nil, err
	}
	orElse, err := p.optionalElseSuite()
	if err != nil {
		return nil, err
	}
	n := &ast.For{Target: target, Iter: iter, Body: body, OrElse: orElse, IsAsync: isAsync}
	n.SetSpan(p.spanFrom(start))
	return n, nil
}

func (p *Parser) withStatement(start lexer.Token, isAsync bool) (ast.Stmt, error) {
	parenthesized := p.match(lexer.LeftParen)
	var items []*ast.WithItem
	for {
		ctxExpr, err := p.expr()
		if err != nil {
			return nil, err
		}
		var optVar ast.Expr
		if p.match(lexer.As) {
			v, err := p.expr()
			if err != nil {
				return nil, err
			}
			optVar, err = p.toStoreTarget(v)
			if err != nil {
				return nil, err
			}
		}
		items = append(items, &ast.WithItem{ContextExpr: ctxExpr, OptionalVar: optVar})
		if !p.match(lexer.Comma) {
			break
		}
	}
	if parenthesized {
		if _, err := p.consume(lexer.RightParen, "expected ')' to close 'with' items"); err != nil {
			return nil, err
		}
	}
	if _, err := p.consume(lexer.Colon, "expected ':' after 'with' items"); err != nil {
		return nil, err
	}
	body, err := p.suite()
	if err != nil {
		return nil, err
	}
	n := &ast.With{Items: items, Body: body, IsAsync: isAsync}
	n.SetSpan(p.spanFrom(start))
	return n, nil
}

func (p *Parser) tryStatement(start lexer.Token) (ast.Stmt, error) {
	if _, err := p.consume(lexer.Colon, "expected ':' after 'try'"); err != nil {
		return nil, err
	}
	body, err := p.suite()
	if err != nil {
		return nil, err
	}
	var handlers []*ast.ExceptHandler
	isStarred := false
	for p.check(lexer.Except) {
		h, starred, err := p.exceptHandler()
		if err != nil {
			return nil, err
		}
		if starred {
			isStarred = true
		}
		handlers = append(handlers, h)
	}
	orElse, err := p.optionalElseSuite()
	if err != nil {
		return nil, err
	}
	var finalBody []ast.Stmt
	if p.match(lexer.Finally) {
		if _, err := p.consume(lexer.Colon, "expected ':' after 'finally'"); err != nil {
			return nil, err
		}
		finalBody, err = p.suite()
		if err != nil {
			return nil, err
		}
	}
	n := &ast.Try{Body: body, Handlers: handlers, OrElse: orElse, FinalBody: finalBody, IsStarred: isStarred}
	n.SetSpan(p.spanFrom(start))
	return n, nil
}

func (p *Parser) exceptHandler() (*ast.ExceptHandler, bool, error) {
	start := p.advance() // 'except'
	starred := p.match(lexer.Star)
	var typeExpr ast.Expr
	name := ""
	if !p.check(lexer.Colon) {
		t, err := p.expr()
		if err != nil {
			return nil, false, err
		}
		typeExpr = t
		if p.match(lexer.As) {
			n, err := p.consume(lexer.Identifier, "expected a name after 'as'")
			if err != nil {
				return nil, false, err
			}
			name = n.Literal.(string)
		}
	}
	if _, err := p.consume(lexer.Colon, "expected ':' after 'except' clause"); err != nil {
		return nil, false, err
	}
	body, err := p.suite()
	if err != nil {
		return nil, false, err
	}
	h := &ast.ExceptHandler{TypeExpr: typeExpr, Name: name, Body: body, Star: starred}
	h.SetSpan(p.spanFrom(start))
	return h, starred, nil
}
