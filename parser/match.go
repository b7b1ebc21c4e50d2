package parser

import (
	"pyast/ast"
	"pyast/lexer"
)

// matchStatement parses a `match subject: case pattern: body ...` block.
// By the time this is reached, startsCompoundStatement has already
// confirmed (via matchStatementLookahead) that "match" here is the soft
// keyword, not a plain name.
func (p *Parser) matchStatement(start lexer.Token) (ast.Stmt, error) {
	p.advance() // the "match" identifier

	subject, err := p.exprListAsTupleOrSingle()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Colon, "expected ':' after match subject"); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Newline, "expected a newline before match cases"); err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Indent, "expected an indented block of case clauses"); err != nil {
		return nil, err
	}

	var cases []*ast.MatchCase
	for p.checkIdent("case") {
		c, err := p.matchCase()
		if err != nil {
			return nil, err
		}
		cases = append(cases, c)
	}

	if _, err := p.consume(lexer.Dedent, "expected a dedent to close the match block"); err != nil {
		return nil, err
	}

	m := &ast.Match{Subject: subject, Cases: cases}
	m.SetSpan(p.spanFrom(start))
	return m, nil
}

func (p *Parser) matchCase() (*ast.MatchCase, error) {
	p.advance() // "case"

	pattern, err := p.patterns()
	if err != nil {
		return nil, err
	}

	var guard ast.Expr
	if p.match(lexer.If) {
		g, err := p.expr()
		if err != nil {
			return nil, err
		}
		guard = g
	}

	if _, err := p.consume(lexer.Colon, "expected ':' after case pattern"); err != nil {
		return nil, err
	}
	body, err := p.suite()
	if err != nil {
		return nil, err
	}

	mc := &ast.MatchCase{Pattern: pattern, Guard: guard, Body: body}
	return mc, nil
}

// patterns parses a case's top-level pattern: one or-pattern, or a
// comma-separated open sequence of them (which becomes a MatchSequence),
// optionally followed by an `as` binding that applies to the whole.
func (p *Parser) patterns() (ast.Pattern, error) {
	start := p.peek()
	first, err := p.orPattern()
	if err != nil {
		return nil, err
	}
	if !p.check(lexer.Comma) {
		return p.maybeAsPattern(start, first)
	}
	elts := []ast.Pattern{first}
	for p.match(lexer.Comma) {
		if p.check(lexer.Colon) || p.check(lexer.If) {
			break
		}
		e, err := p.orPattern()
		if err != nil {
			return nil, err
		}
		elts = append(elts, e)
	}
	seq := &ast.MatchSequence{Patterns: elts}
	seq.SetSpan(p.spanFrom(start))
	return p.maybeAsPattern(start, seq)
}

func (p *Parser) orPattern() (ast.Pattern, error) {
	start := p.peek()
	first, err := p.closedPattern()
	if err != nil {
		return nil, err
	}
	if !p.check(lexer.Pipe) {
		return first, nil
	}
	alts := []ast.Pattern{first}
	for p.match(lexer.Pipe) {
		alt, err := p.closedPattern()
		if err != nil {
			return nil, err
		}
		alts = append(alts, alt)
	}
	n := &ast.MatchOr{Patterns: alts}
	n.SetSpan(p.spanFrom(start))
	return n, nil
}

func (p *Parser) maybeAsPattern(start lexer.Token, pat ast.Pattern) (ast.Pattern, error) {
	if !p.match(lexer.As) {
		return pat, nil
	}
	name, err := p.consume(lexer.Identifier, "expected a capture name after 'as'")
	if err != nil {
		return nil, err
	}
	n := &ast.MatchAs{Pattern: pat, Name: name.Literal.(string)}
	n.SetSpan(p.spanFrom(start))
	return n, nil
}

// closedPattern parses one pattern with no top-level `|` or `as`: a
// literal, wildcard, capture, value, sequence, mapping, or class pattern.
func (p *Parser) closedPattern() (ast.Pattern, error) {
	start := p.peek()
	switch {
	case p.check(lexer.Identifier) && p.peek().Lexeme == "_" && !starsSequence(p):
		p.advance()
		n := &ast.MatchAs{Name: "_"}
		n.SetSpan(p.spanFrom(start))
		return n, nil
	case p.match(lexer.Star):
		if p.check(lexer.Identifier) && p.peek().Lexeme != "_" {
			name := p.advance()
			n := &ast.MatchStar{Name: name.Literal.(string)}
			n.SetSpan(p.spanFrom(start))
			return n, nil
		}
		p.advance() // "_"
		n := &ast.MatchStar{}
		n.SetSpan(p.spanFrom(start))
		return n, nil
	case p.match(lexer.None):
		n := &ast.MatchSingleton{Value: nil}
		n.SetSpan(p.spanFrom(start))
		return n, nil
	case p.match(lexer.True):
		n := &ast.MatchSingleton{Value: true}
		n.SetSpan(p.spanFrom(start))
		return n, nil
	case p.match(lexer.False):
		n := &ast.MatchSingleton{Value: false}
		n.SetSpan(p.spanFrom(start))
		return n, nil
	case p.match(lexer.LeftBracket):
		return p.sequencePatternTail(start, lexer.RightBracket)
	case p.match(lexer.LeftParen):
		return p.parenPatternTail(start)
	case p.match(lexer.LeftBrace):
		return p.mappingPatternTail(start)
	case p.check(lexer.Number) || p.check(lexer.String) || p.check(lexer.Minus):
		return p.valuePattern(start)
	case p.check(lexer.Identifier):
		return p.nameOrClassOrValuePattern(start)
	default:
		return nil, p.errorf("expected a pattern, found %s", p.peek().Type)
	}
}

// starsSequence disambiguates a bare wildcard "_" case body from one that
// continues into a dotted value pattern (e.g. "_.x") — "_" alone is never
// followed directly by '.', '(' when used as a wildcard target, so a
// lookahead of one token is enough.
func starsSequence(p *Parser) bool {
	switch p.peekN(1).Type {
	case lexer.Dot, lexer.LeftParen:
		return true
	default:
		return false
	}
}

func (p *Parser) valuePattern(start lexer.Token) (ast.Pattern, error) {
	e, err := p.valuePatternExpr()
	if err != nil {
		return nil, err
	}
	n := &ast.MatchValue{Value: e}
	n.SetSpan(p.spanFrom(start))
	return n, nil
}

// valuePatternExpr parses the narrow literal-expression subset patterns
// allow in value position: signed numbers, strings, and (for complex
// literals) `real +/- imag j`.
func (p *Parser) valuePatternExpr() (ast.Expr, error) {
	start := p.peek()
	if p.match(lexer.Minus) {
		operand, err := p.valuePatternExpr()
		if err != nil {
			return nil, err
		}
		n := &ast.UnaryOp{Op: ast.USub, Operand: operand}
		n.SetSpan(p.spanFrom(start))
		return n, nil
	}
	if p.check(lexer.Number) {
		tok := p.advance()
		c := numberToConstant(tok)
		c.SetSpan(p.spanFrom(start))
		left := ast.Expr(c)
		if p.check(lexer.Plus) || p.check(lexer.Minus) {
			op := ast.Add
			if p.peek().Type == lexer.Minus {
				op = ast.Sub
			}
			p.advance()
			right, err := p.valuePatternExpr()
			if err != nil {
				return nil, err
			}
			n := &ast.BinOp{Left: left, Op: op, Right: right}
			n.SetSpan(p.spanFrom(start))
			return n, nil
		}
		return left, nil
	}
	if p.check(lexer.String) {
		return p.stringAtom(start)
	}
	return nil, p.errorf("expected a literal in pattern, found %s", p.peek().Type)
}

// nameOrClassOrValuePattern resolves the identifier-led ambiguity: a bare
// name with no trailer is a capture pattern; one followed by
// '(' is a class pattern; one containing '.' (an attribute chain, e.g.
// `Color.RED`) is a value pattern.
func (p *Parser) nameOrClassOrValuePattern(start lexer.Token) (ast.Pattern, error) {
	name := p.advance()
	if p.check(lexer.Dot) || p.check(lexer.LeftParen) {
		nameNode := &ast.Name{Id: name.Literal.(string), Ctx: ast.Load}
		nameNode.SetSpan(p.spanFrom(start))
		var expr ast.Expr = nameNode
		for p.match(lexer.Dot) {
			attrName, err := p.consume(lexer.Identifier, "expected an attribute name after '.'")
			if err != nil {
				return nil, err
			}
			a := &ast.Attribute{Value: expr, Attr: attrName.Literal.(string), Ctx: ast.Load}
			a.SetSpan(p.spanFrom(start))
			expr = a
		}
		if p.check(lexer.LeftParen) {
			return p.classPatternTail(start, expr)
		}
		n := &ast.MatchValue{Value: expr}
		n.SetSpan(p.spanFrom(start))
		return n, nil
	}
	n := &ast.MatchAs{Name: name.Literal.(string)}
	n.SetSpan(p.spanFrom(start))
	return n, nil
}

func (p *Parser) classPatternTail(start lexer.Token, cls ast.Expr) (ast.Pattern, error) {
	if _, err := p.consume(lexer.LeftParen, "expected '(' to start class pattern arguments"); err != nil {
		return nil, err
	}
	n := &ast.MatchClass{Cls: cls}
	for !p.check(lexer.RightParen) {
		if p.check(lexer.Identifier) && p.peekN(1).Type == lexer.Equal {
			kw := p.advance()
			p.advance() // '='
			vStart := p.peek()
			v, err := p.orPattern()
			if err != nil {
				return nil, err
			}
			v, err = p.maybeAsPattern(vStart, v)
			if err != nil {
				return nil, err
			}
			n.KwdAttrs = append(n.KwdAttrs, kw.Literal.(string))
			n.KwdPatterns = append(n.KwdPatterns, v)
		} else {
			vStart := p.peek()
			v, err := p.orPattern()
			if err != nil {
				return nil, err
			}
			v, err = p.maybeAsPattern(vStart, v)
			if err != nil {
				return nil, err
			}
			n.Patterns = append(n.Patterns, v)
		}
		if !p.match(lexer.Comma) {
			break
		}
	}
	if _, err := p.consume(lexer.RightParen, "expected ')' to close class pattern"); err != nil {
		return nil, err
	}
	n.SetSpan(p.spanFrom(start))
	return n, nil
}

func (p *Parser) sequencePatternTail(start lexer.Token, closer lexer.TokenType) (ast.Pattern, error) {
	var elts []ast.Pattern
	for !p.check(closer) {
		e, err := p.orPattern()
		if err != nil {
			return nil, err
		}
		e, err = p.maybeAsPattern(start, e)
		if err != nil {
			return nil, err
		}
		elts = append(elts, e)
		if !p.match(lexer.Comma) {
			break
		}
	}
	if _, err := p.consume(closer, "expected a closing bracket in sequence pattern"); err != nil {
		return nil, err
	}
	n := &ast.MatchSequence{Patterns: elts}
	n.SetSpan(p.spanFrom(start))
	return n, nil
}

// parenPatternTail parses `(...)`: an empty/singleton group pattern is
// just its inner pattern; anything with a comma becomes a tuple-shaped
// sequence pattern, same as the expression grammar's parenAtom.
func (p *Parser) parenPatternTail(start lexer.Token) (ast.Pattern, error) {
	if p.check(lexer.RightParen) {
		return p.sequencePatternTail(start, lexer.RightParen)
	}
	first, err := p.orPattern()
	if err != nil {
		return nil, err
	}
	first, err = p.maybeAsPattern(start, first)
	if err != nil {
		return nil, err
	}
	if !p.check(lexer.Comma) {
		if _, err := p.consume(lexer.RightParen, "expected ')' to close pattern group"); err != nil {
			return nil, err
		}
		return first, nil
	}
	elts := []ast.Pattern{first}
	for p.match(lexer.Comma) {
		if p.check(lexer.RightParen) {
			break
		}
		e, err := p.orPattern()
		if err != nil {
			return nil, err
		}
		e, err = p.maybeAsPattern(start, e)
		if err != nil {
			return nil, err
		}
		elts = append(elts, e)
	}
	if _, err := p.consume(lexer.RightParen, "expected ')' to close sequence pattern"); err != nil {
		return nil, err
	}
	n := &ast.MatchSequence{Patterns: elts}
	n.SetSpan(p.spanFrom(start))
	return n, nil
}

func (p *Parser) mappingPatternTail(start lexer.Token) (ast.Pattern, error) {
	n := &ast.MatchMapping{}
	for !p.check(lexer.RightBrace) {
		if p.match(lexer.StarStar) {
			name, err := p.consume(lexer.Identifier, "expected a name after '**' in mapping pattern")
			if err != nil {
				return nil, err
			}
			n.Rest = name.Literal.(string)
		} else {
			key, err := p.valuePatternExpr()
			if err != nil {
				return nil, err
			}
			if _, err := p.consume(lexer.Colon, "expected ':' in mapping pattern"); err != nil {
				return nil, err
			}
			v, err := p.orPattern()
			if err != nil {
				return nil, err
			}
			v, err = p.maybeAsPattern(start, v)
			if err != nil {
				return nil, err
			}
			n.Keys = append(n.Keys, key)
			n.Patterns = append(n.Patterns, v)
		}
		if !p.match(lexer.Comma) {
			break
		}
	}
	if _, err := p.consume(lexer.RightBrace, "expected '}' to close mapping pattern"); err != nil {
		return nil, err
	}
	n.SetSpan(p.spanFrom(start))
	return n, nil
}
