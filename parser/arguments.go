package parser

import (
	"pyast/ast"
	"pyast/lexer"
)

// parseFunctionArguments parses a `def`-style parameter list:
// `[posonly /,] params [/,] [*[vararg]] [, kwonly]* [, **kwarg]`.
func (p *Parser) parseFunctionArguments() (*ast.Arguments, error) {
	if _, err := p.consume(lexer.LeftParen, "expected '(' to start parameter list"); err != nil {
		return nil, err
	}
	args, err := p.parseArgumentsBody(true)
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.RightParen, "expected ')' to close parameter list"); err != nil {
		return nil, err
	}
	return args, nil
}

func (p *Parser) parseLambdaArguments() (*ast.Arguments, error) {
	if p.check(lexer.Colon) {
		return &ast.Arguments{}, nil
	}
	return p.parseArgumentsBody(false)
}

// parseArgumentsBody parses the parameter list up to (not including) the
// closing delimiter ('Colon' for lambda or implicitly ')' for def, left
// to the caller). allowAnnotations controls whether `: type` suffixes are
// accepted (lambda parameters may not carry annotations).
func (p *Parser) parseArgumentsBody(allowAnnotations bool) (*ast.Arguments, error) {
	result := &ast.Arguments{}
	seenStar := false
	var plainArgs []*ast.Arg
	var plainDefaults []ast.Expr

	endToken := lexer.Colon
	if allowAnnotations {
		endToken = lexer.RightParen
	}

	for !p.check(endToken) {
		switch {
		case p.match(lexer.Slash):
			result.PosOnlyArgs = plainArgs
			plainArgs = nil
		case p.match(lexer.StarStar):
			arg, err := p.parseOneArg(allowAnnotations)
			if err != nil {
				return nil, err
			}
			result.KwArg = arg
		case p.match(lexer.Star):
			if p.check(lexer.Comma) || p.check(endToken) {
				seenStar = true
			} else {
				arg, err := p.parseOneArg(allowAnnotations)
				if err != nil {
					return nil, err
				}
				result.VarArg = arg
				seenStar = true
			}
		default:
			arg, err := p.parseOneArg(allowAnnotations)
			if err != nil {
				return nil, err
			}
			var def ast.Expr
			if p.match(lexer.Equal) {
				d, err := p.expr()
				if err != nil {
					return nil, err
				}
				def = d
			}
			if seenStar {
				result.KwOnlyArgs = append(result.KwOnlyArgs, arg)
				result.KwDefaults = append(result.KwDefaults, def)
			} else {
				plainArgs = append(plainArgs, arg)
				if def != nil {
					plainDefaults = append(plainDefaults, def)
				} else if len(plainDefaults) > 0 {
					// A non-default parameter after a default is a grammar
					// error in real Python; this core does not enforce it
					// (see the parser's non-goal of semantic validation).
					plainDefaults = append(plainDefaults, nil)
				}
			}
		}
		if !p.match(lexer.Comma) {
			break
		}
	}

	result.Args = plainArgs
	result.Defaults = plainDefaults
	return result, nil
}

func (p *Parser) parseOneArg(allowAnnotation bool) (*ast.Arg, error) {
	start := p.peek()
	tok, err := p.consume(lexer.Identifier, "expected a parameter name")
	if err != nil {
		return nil, err
	}
	var annotation ast.Expr
	if allowAnnotation && p.match(lexer.Colon) {
		a, err := p.expr()
		if err != nil {
			return nil, err
		}
		annotation = a
	}
	arg := &ast.Arg{Name: tok.Literal.(string), Annotation: annotation}
	arg.SetSpan(p.spanFrom(start))
	return arg, nil
}

// callTrailer parses the `(args...)` portion of a call; fn has already
// been parsed as the callee.
func (p *Parser) callTrailer(fn ast.Expr) (*ast.Call, error) {
	if _, err := p.consume(lexer.LeftParen, "expected '('"); err != nil {
		return nil, err
	}
	call := &ast.Call{Func: fn}
	for !p.check(lexer.RightParen) {
		switch {
		case p.match(lexer.StarStar):
			v, err := p.expr()
			if err != nil {
				return nil, err
			}
			call.Keywords = append(call.Keywords, &ast.Keyword{Name: "", Value: v})
		case p.check(lexer.Star):
			start := p.advance()
			v, err := p.orExpr()
			if err != nil {
				return nil, err
			}
			s := &ast.Starred{Value: v, Ctx: ast.Load}
			s.SetSpan(p.spanFrom(start))
			call.Args = append(call.Args, s)
		case p.check(lexer.Identifier) && p.peekN(1).Type == lexer.Equal:
			nameTok := p.advance()
			p.advance() // '='
			v, err := p.expr()
			if err != nil {
				return nil, err
			}
			call.Keywords = append(call.Keywords, &ast.Keyword{Name: nameTok.Literal.(string), Value: v})
		default:
			start := p.peek()
			v, err := p.expr()
			if err != nil {
				return nil, err
			}
			// A bare `for` turns a single positional argument into a
			// generator expression whose enclosing parens may be omitted.
			if p.check(lexer.For) {
				gens, err := p.comprehensionClauses()
				if err != nil {
					return nil, err
				}
				g := &ast.GeneratorExp{Elt: v, Generators: gens}
				g.SetSpan(p.spanFrom(start))
				call.Args = append(call.Args, g)
			} else {
				call.Args = append(call.Args, v)
			}
		}
		if !p.match(lexer.Comma) {
			break
		}
	}
	if _, err := p.consume(lexer.RightParen, "expected ')' to close call"); err != nil {
		return nil, err
	}
	return call, nil
}

// subscriptTrailer parses `[slice]`, including the `a:b:c` slice form and
// tuple-of-slices (`a[i, j:k]`).
func (p *Parser) subscriptTrailer(value ast.Expr) (*ast.Subscript, error) {
	if _, err := p.consume(lexer.LeftBracket, "expected '['"); err != nil {
		return nil, err
	}
	var elts []ast.Expr
	for {
		e, err := p.sliceItem()
		if err != nil {
			return nil, err
		}
		elts = append(elts, e)
		if !p.match(lexer.Comma) {
			break
		}
		if p.check(lexer.RightBracket) {
			break
		}
	}
	if _, err := p.consume(lexer.RightBracket, "expected ']' to close subscript"); err != nil {
		return nil, err
	}
	var slice ast.Expr
	if len(elts) == 1 {
		slice = elts[0]
	} else {
		slice = &ast.Tuple{Elts: elts, Ctx: ast.Load}
	}
	return &ast.Subscript{Value: value, Slice: slice, Ctx: ast.Load}, nil
}

func (p *Parser) sliceItem() (ast.Expr, error) {
	start := p.peek()
	var lower, upper, step ast.Expr
	var err error
	if !p.check(lexer.Colon) && !p.check(lexer.Comma) && !p.check(lexer.RightBracket) {
		lower, err = p.expr()
		if err != nil {
			return nil, err
		}
	}
	if !p.match(lexer.Colon) {
		return lower, nil
	}
	if !p.check(lexer.Colon) && !p.check(lexer.Comma) && !p.check(lexer.RightBracket) {
		upper, err = p.expr()
		if err != nil {
			return nil, err
		}
	}
	if p.match(lexer.Colon) {
		if !p.check(lexer.Comma) && !p.check(lexer.RightBracket) {
			step, err = p.expr()
			if err != nil {
				return nil, err
			}
		}
	}
	s := &ast.Slice{Lower: lower, Upper: upper, Step: step}
	s.SetSpan(p.spanFrom(start))
	return s, nil
}
