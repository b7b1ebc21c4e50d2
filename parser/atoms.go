package parser

import (
	"pyast/ast"
	"pyast/lexer"
)

// atom parses the innermost expression productions: names, literals,
// parenthesized/bracketed displays (and their comprehension forms),
// f-strings, `...`, and `yield`.
func (p *Parser) atom() (ast.Expr, error) {
	start := p.peek()
	switch {
	case p.check(lexer.Identifier):
		tok := p.advance()
		n := &ast.Name{Id: tok.Literal.(string), Ctx: ast.Load}
		n.SetSpan(p.spanFrom(start))
		return n, nil
	case p.check(lexer.Number):
		tok := p.advance()
		c := numberToConstant(tok)
		c.SetSpan(p.spanFrom(start))
		return c, nil
	case p.check(lexer.String):
		return p.stringAtom(start)
	case p.check(lexer.FStringStart):
		return p.fstringAtom(start)
	case p.match(lexer.Ellipsis):
		c := &ast.Constant{Kind: ast.ConstEllipsis, Raw: "..."}
		c.SetSpan(p.spanFrom(start))
		return c, nil
	case p.match(lexer.True):
		c := &ast.Constant{Kind: ast.ConstBool, Value: true, Raw: "True"}
		c.SetSpan(p.spanFrom(start))
		return c, nil
	case p.match(lexer.False):
		c := &ast.Constant{Kind: ast.ConstBool, Value: false, Raw: "False"}
		c.SetSpan(p.spanFrom(start))
		return c, nil
	case p.match(lexer.None):
		c := &ast.Constant{Kind: ast.ConstNone, Raw: "None"}
		c.SetSpan(p.spanFrom(start))
		return c, nil
	case p.match(lexer.Yield):
		return p.yieldAtom(start)
	case p.match(lexer.LeftParen):
		return p.parenAtom(start)
	case p.match(lexer.LeftBracket):
		return p.listAtom(start)
	case p.match(lexer.LeftBrace):
		return p.braceAtom(start)
	default:
		return nil, p.errorf("expected an expression, found %s", p.peek().Type)
	}
}

func numberToConstant(tok lexer.Token) *ast.Constant {
	kind := ast.ConstInt
	switch tok.Literal.(type) {
	case float64:
		kind = ast.ConstFloat
	case complex128:
		kind = ast.ConstComplex
	}
	return &ast.Constant{Kind: kind, Value: tok.Literal, Raw: tok.Lexeme}
}

func (p *Parser) stringAtom(start lexer.Token) (ast.Expr, error) {
	tok := p.advance()
	switch v := tok.Literal.(type) {
	case []byte:
		c := &ast.Constant{Kind: ast.ConstBytes, Value: v, Raw: tok.Lexeme}
		c.SetSpan(p.spanFrom(start))
		// Adjacent string literals concatenate implicitly in Python.
		return p.maybeConcatString(start, c)
	default:
		c := &ast.Constant{Kind: ast.ConstStr, Value: tok.Literal, QuoteStyle: tok.StringQuote}
		c.SetSpan(p.spanFrom(start))
		return p.maybeConcatString(start, c)
	}
}

// maybeConcatString implements adjacent string-literal concatenation:
// `"a" "b"` is a single Constant("ab"). Only plain String tokens are
// joined; a string literal next to an f-string is not concatenated.
func (p *Parser) maybeConcatString(start lexer.Token, first *ast.Constant) (ast.Expr, error) {
	for p.check(lexer.String) {
		next := p.advance()
		switch v := next.Literal.(type) {
		case []byte:
			if b, ok := first.Value.([]byte); ok {
				first.Value = append(append([]byte{}, b...), v...)
			}
		case string:
			if s, ok := first.Value.(string); ok {
				first.Value = s + v
			}
		}
	}
	first.SetSpan(p.spanFrom(start))
	return first, nil
}

func (p *Parser) yieldAtom(start lexer.Token) (ast.Expr, error) {
	if p.match(lexer.From) {
		v, err := p.expr()
		if err != nil {
			return nil, err
		}
		n := &ast.YieldFrom{Value: v}
		n.SetSpan(p.spanFrom(start))
		return n, nil
	}
	var value ast.Expr
	if !p.atSimpleStatementEnd() && !p.check(lexer.RightParen) && !p.check(lexer.RightBracket) &&
		!p.check(lexer.RightBrace) && !p.check(lexer.Comma) {
		v, err := p.exprListAsTupleOrSingle()
		if err != nil {
			return nil, err
		}
		value = v
	}
	n := &ast.Yield{Value: value}
	n.SetSpan(p.spanFrom(start))
	return n, nil
}

// parenAtom parses the contents of `(...)`: empty tuple, parenthesized
// expression, tuple display, or generator expression (decided on
// encountering `for` at top level inside the parens).
func (p *Parser) parenAtom(start lexer.Token) (ast.Expr, error) {
	if p.match(lexer.RightParen) {
		t := &ast.Tuple{Ctx: ast.Load}
		t.SetSpan(p.spanFrom(start))
		return t, nil
	}
	first, err := p.starOrExpr()
	if err != nil {
		return nil, err
	}
	if p.check(lexer.For) {
		gens, err := p.comprehensionClauses()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.RightParen, "expected ')' to close generator expression"); err != nil {
			return nil, err
		}
		g := &ast.GeneratorExp{Elt: first, Generators: gens}
		g.SetSpan(p.spanFrom(start))
		return g, nil
	}
	if !p.check(lexer.Comma) {
		if _, err := p.consume(lexer.RightParen, "expected ')'"); err != nil {
			return nil, err
		}
		return first, nil
	}
	elts := []ast.Expr{first}
	for p.match(lexer.Comma) {
		if p.check(lexer.RightParen) {
			break
		}
		e, err := p.starOrExpr()
		if err != nil {
			return nil, err
		}
		elts = append(elts, e)
	}
	if _, err := p.consume(lexer.RightParen, "expected ')' to close tuple"); err != nil {
		return nil, err
	}
	t := &ast.Tuple{Elts: elts, Ctx: ast.Load}
	t.SetSpan(p.spanFrom(start))
	return t, nil
}

// listAtom parses the contents of `[...]`: empty list, list display, or
// list comprehension (a single `for` clause promotes it).
func (p *Parser) listAtom(start lexer.Token) (ast.Expr, error) {
	if p.match(lexer.RightBracket) {
		l := &ast.List{Ctx: ast.Load}
		l.SetSpan(p.spanFrom(start))
		return l, nil
	}
	first, err := p.starOrExpr()
	if err != nil {
		return nil, err
	}
	if p.check(lexer.For) {
		gens, err := p.comprehensionClauses()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.RightBracket, "expected ']' to close list comprehension"); err != nil {
			return nil, err
		}
		lc := &ast.ListComp{Elt: first, Generators: gens}
		lc.SetSpan(p.spanFrom(start))
		return lc, nil
	}
	elts := []ast.Expr{first}
	for p.match(lexer.Comma) {
		if p.check(lexer.RightBracket) {
			break
		}
		e, err := p.starOrExpr()
		if err != nil {
			return nil, err
		}
		elts = append(elts, e)
	}
	if _, err := p.consume(lexer.RightBracket, "expected ']' to close list"); err != nil {
		return nil, err
	}
	l := &ast.List{Elts: elts, Ctx: ast.Load}
	l.SetSpan(p.spanFrom(start))
	return l, nil
}

// braceAtom parses `{...}`: empty dict, dict/set display, or
// dict/set comprehension. Dict vs. set is decided by the presence of `:`
// in the first element.
func (p *Parser) braceAtom(start lexer.Token) (ast.Expr, error) {
	if p.match(lexer.RightBrace) {
		d := &ast.Dict{}
		d.SetSpan(p.spanFrom(start))
		return d, nil
	}
	if p.match(lexer.StarStar) {
		v, err := p.orExpr()
		if err != nil {
			return nil, err
		}
		return p.dictAtomTail(start, nil, []ast.Expr{v})
	}
	first, err := p.starOrExpr()
	if err != nil {
		return nil, err
	}
	if p.match(lexer.Colon) {
		key := first
		value, err := p.expr()
		if err != nil {
			return nil, err
		}
		if p.check(lexer.For) {
			gens, err := p.comprehensionClauses()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(lexer.RightBrace, "expected '}' to close dict comprehension"); err != nil {
				return nil, err
			}
			dc := &ast.DictComp{Key: key, Value: value, Generators: gens}
			dc.SetSpan(p.spanFrom(start))
			return dc, nil
		}
		return p.dictAtomTail(start, []ast.Expr{key}, []ast.Expr{value})
	}
	if p.check(lexer.For) {
		gens, err := p.comprehensionClauses()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.RightBrace, "expected '}' to close set comprehension"); err != nil {
			return nil, err
		}
		sc := &ast.SetComp{Elt: first, Generators: gens}
		sc.SetSpan(p.spanFrom(start))
		return sc, nil
	}
	elts := []ast.Expr{first}
	for p.match(lexer.Comma) {
		if p.check(lexer.RightBrace) {
			break
		}
		e, err := p.starOrExpr()
		if err != nil {
			return nil, err
		}
		elts = append(elts, e)
	}
	if _, err := p.consume(lexer.RightBrace, "expected '}' to close set"); err != nil {
		return nil, err
	}
	s := &ast.Set{Elts: elts}
	s.SetSpan(p.spanFrom(start))
	return s, nil
}

func (p *Parser) dictAtomTail(start lexer.Token, keys, values []ast.Expr) (ast.Expr, error) {
	for p.match(lexer.Comma) {
		if p.check(lexer.RightBrace) {
			break
		}
		if p.match(lexer.StarStar) {
			v, err := p.orExpr()
			if err != nil {
				return nil, err
			}
			keys = append(keys, nil)
			values = append(values, v)
			continue
		}
		k, err := p.expr()
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.Colon, "expected ':' in dict display"); err != nil {
			return nil, err
		}
		v, err := p.expr()
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
		values = append(values, v)
	}
	if _, err := p.consume(lexer.RightBrace, "expected '}' to close dict"); err != nil {
		return nil, err
	}
	d := &ast.Dict{Keys: keys, Values: values}
	d.SetSpan(p.spanFrom(start))
	return d, nil
}

// comprehensionClauses parses one or more `for target in iter (if cond)*`
// clauses, as used by every comprehension/generator-expression form.
func (p *Parser) comprehensionClauses() ([]*ast.Comprehension, error) {
	var gens []*ast.Comprehension
	for p.check(lexer.For) || (p.check(lexer.Async) && p.peekN(1).Type == lexer.For) {
		isAsync := p.match(lexer.Async)
		p.advance() // 'for'
		target, err := p.exprListAsTupleOrSingle()
		if err != nil {
			return nil, err
		}
		target, err = p.toStoreTarget(target)
		if err != nil {
			return nil, err
		}
		if _, err := p.consume(lexer.In, "expected 'in' in comprehension clause"); err != nil {
			return nil, err
		}
		iter, err := p.orExpr()
		if err != nil {
			return nil, err
		}
		var ifs []ast.Expr
		for p.match(lexer.If) {
			cond, err := p.orExpr()
			if err != nil {
				return nil, err
			}
			ifs = append(ifs, cond)
		}
		gens = append(gens, &ast.Comprehension{Target: target, Iter: iter, Ifs: ifs, IsAsync: isAsync})
	}
	return gens, nil
}
