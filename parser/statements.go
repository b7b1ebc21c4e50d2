package parser

import (
	"pyast/ast"
	"pyast/lexer"
)

// statement parses one logical-line statement. It returns a slice because
// a simple-statement line may pack several `;`-separated statements under
// one NEWLINE.
func (p *Parser) statement() ([]ast.Stmt, error) {
	if p.startsCompoundStatement() {
		stmt, err := p.compoundStatement()
		if err != nil {
			return nil, err
		}
		return []ast.Stmt{stmt}, nil
	}
	return p.simpleStatementLine()
}

func (p *Parser) startsCompoundStatement() bool {
	switch p.peek().Type {
	case lexer.If, lexer.While, lexer.For, lexer.Try, lexer.With, lexer.Def, lexer.Class, lexer.Async, lexer.At:
		return true
	}
	if p.checkIdent("match") && p.matchStatementLookahead() {
		return true
	}
	return false
}

// matchStatementLookahead implements the soft-keyword rule: a NAME token
// "match" at the start of a simple statement is treated as the match
// keyword only when, after a subject expression, a `:` is found
// introducing an indented `case` block. We approximate the lookahead by
// scanning forward for a colon before a NEWLINE at the same bracket
// depth, which is sufficient since `match` is otherwise never directly
// followed by `:` in expression-statement position.
func (p *Parser) matchStatementLookahead() bool {
	depth := 0
	for i := p.current + 1; i < len(p.tokens); i++ {
		switch p.tokens[i].Type {
		case lexer.LeftParen, lexer.LeftBracket, lexer.LeftBrace:
			depth++
		case lexer.RightParen, lexer.RightBracket, lexer.RightBrace:
			depth--
		case lexer.Newline:
			if depth <= 0 {
				return false
			}
		case lexer.Colon:
			if depth == 0 {
				return true
			}
		case lexer.Equal, lexer.Semicolon:
			if depth == 0 {
				return false
			}
		}
	}
	return false
}

func (p *Parser) simpleStatementLine() ([]ast.Stmt, error) {
	var stmts []ast.Stmt
	for {
		stmt, err := p.simpleStatement()
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, stmt)
		if !p.match(lexer.Semicolon) {
			break
		}
		if p.check(lexer.Newline) || p.check(lexer.EOF) {
			break
		}
	}
	if p.check(lexer.Newline) {
		p.advance()
	} else if !p.check(lexer.EOF) && !p.check(lexer.Dedent) {
		return nil, p.errorf("expected newline after simple statement")
	}
	return stmts, nil
}

func (p *Parser) simpleStatement() (ast.Stmt, error) {
	start := p.peek()
	switch {
	case p.match(lexer.Pass):
		s := &ast.Pass{}
		s.SetSpan(p.spanFrom(start))
		return s, nil
	case p.match(lexer.Break):
		s := &ast.Break{}
		s.SetSpan(p.spanFrom(start))
		return s, nil
	case p.match(lexer.Continue):
		s := &ast.Continue{}
		s.SetSpan(p.spanFrom(start))
		return s, nil
	case p.match(lexer.Return):
		return p.returnStatement(start)
	case p.match(lexer.Raise):
		return p.raiseStatement(start)
	case p.match(lexer.Global):
		return p.globalStatement(start)
	case p.match(lexer.Nonlocal):
		return p.nonlocalStatement(start)
	case p.match(lexer.Del):
		return p.deleteStatement(start)
	case p.match(lexer.Assert):
		return p.assertStatement(start)
	case p.match(lexer.Import):
		return p.importStatement(start)
	case p.match(lexer.From):
		return p.importFromStatement(start)
	default:
		return p.exprOrAssignStatement(start)
	}
}

func (p *Parser) returnStatement(start lexer.Token) (ast.Stmt, error) {
	var value ast.Expr
	if !p.atSimpleStatementEnd() {
		v, err := p.exprListAsTupleOrSingle()
		if err != nil {
			return nil, err
		}
		value = v
	}
	s := &ast.Return{Value: value}
	s.SetSpan(p.spanFrom(start))
	return s, nil
}

func (p *Parser) raiseStatement(start lexer.Token) (ast.Stmt, error) {
	var exc, cause ast.Expr
	if !p.atSimpleStatementEnd() {
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		exc = e
		if p.match(lexer.From) {
			c, err := p.expr()
			if err != nil {
				return nil, err
			}
			cause = c
		}
	}
	s := &ast.Raise{Exc: exc, Cause: cause}
	s.SetSpan(p.spanFrom(start))
	return s, nil
}

func (p *Parser) globalStatement(start lexer.Token) (ast.Stmt, error) {
	names, err := p.nameList()
	if err != nil {
		return nil, err
	}
	s := &ast.Global{Names: names}
	s.SetSpan(p.spanFrom(start))
	return s, nil
}

func (p *Parser) nonlocalStatement(start lexer.Token) (ast.Stmt, error) {
	names, err := p.nameList()
	if err != nil {
		return nil, err
	}
	s := &ast.Nonlocal{Names: names}
	s.SetSpan(p.spanFrom(start))
	return s, nil
}

func (p *Parser) nameList() ([]string, error) {
	var names []string
	for {
		tok, err := p.consume(lexer.Identifier, "expected a name")
		if err != nil {
			return nil, err
		}
		names = append(names, tok.Literal.(string))
		if !p.match(lexer.Comma) {
			break
		}
	}
	return names, nil
}

func (p *Parser) deleteStatement(start lexer.Token) (ast.Stmt, error) {
	var targets []ast.Expr
	for {
		e, err := p.expr()
		if err != nil {
			return nil, err
		}
		target, err := p.toDelTarget(e)
		if err != nil {
			return nil, err
		}
		targets = append(targets, target)
		if !p.match(lexer.Comma) {
			break
		}
		if p.atSimpleStatementEnd() {
			break
		}
	}
	s := &ast.Delete{Targets: targets}
	s.SetSpan(p.spanFrom(start))
	return s, nil
}

func (p *Parser) assertStatement(start lexer.Token) (ast.Stmt, error) {
	test, err := p.expr()
	if err != nil {
		return nil, err
	}
	var msg ast.Expr
	if p.match(lexer.Comma) {
		m, err := p.expr()
		if err != nil {
			return nil, err
		}
		msg = m
	}
	s := &ast.Assert{Test: test, Msg: msg}
	s.SetSpan(p.spanFrom(start))
	return s, nil
}

func (p *Parser) atSimpleStatementEnd() bool {
	return p.check(lexer.Newline) || p.check(lexer.Semicolon) || p.check(lexer.EOF) || p.check(lexer.Dedent)
}

// exprOrAssignStatement parses the family of statements that begin with
// an expression: plain Expr statements, Assign, AugAssign, and AnnAssign.
// It follows the target-vs-expression design note: parse an expression
// first, then commit based on the token that follows.
func (p *Parser) exprOrAssignStatement(start lexer.Token) (ast.Stmt, error) {
	first, err := p.exprListAsTupleOrSingle()
	if err != nil {
		return nil, err
	}

	if p.match(lexer.Colon) {
		ann, err := p.expr()
		if err != nil {
			return nil, err
		}
		var value ast.Expr
		if p.match(lexer.Equal) {
			v, err := p.exprListAsTupleOrSingle()
			if err != nil {
				return nil, err
			}
			value = v
		}
		target, err := p.toStoreTarget(first)
		if err != nil {
			return nil, err
		}
		_, simple := target.(*ast.Name)
		s := &ast.AnnAssign{Target: target, Annotation: ann, Value: value, Simple: simple}
		s.SetSpan(p.spanFrom(start))
		return s, nil
	}

	if augOp, ok := augAssignOp(p.peek().Type); ok {
		p.advance()
		value, err := p.exprListAsTupleOrSingle()
		if err != nil {
			return nil, err
		}
		target, err := p.toStoreTarget(first)
		if err != nil {
			return nil, err
		}
		s := &ast.AugAssign{Target: target, Op: augOp, Value: value}
		s.SetSpan(p.spanFrom(start))
		return s, nil
	}

	if p.check(lexer.Equal) {
		firstTarget, err := p.toStoreTarget(first)
		if err != nil {
			return nil, err
		}
		targets := []ast.Expr{firstTarget}
		var value ast.Expr
		for p.match(lexer.Equal) {
			v, err := p.exprListAsTupleOrSingle()
			if err != nil {
				return nil, err
			}
			value = v
			if p.check(lexer.Equal) {
				t, err := p.toStoreTarget(value)
				if err != nil {
					return nil, err
				}
				targets = append(targets, t)
			}
		}
		s := &ast.Assign{Targets: targets, Value: value}
		s.SetSpan(p.spanFrom(start))
		return s, nil
	}

	s := &ast.ExprStmt{Value: first}
	s.SetSpan(p.spanFrom(start))
	return s, nil
}

func augAssignOp(tt lexer.TokenType) (ast.Operator, bool) {
	switch tt {
	case lexer.PlusEqual:
		return ast.Add, true
	case lexer.MinusEqual:
		return ast.Sub, true
	case lexer.StarEqual:
		return ast.Mult, true
	case lexer.SlashEqual:
		return ast.Div, true
	case lexer.SlashSlashEqual:
		return ast.FloorDiv, true
	case lexer.PercentEqual:
		return ast.Mod, true
	case lexer.StarStarEqual:
		return ast.Pow, true
	case lexer.AmpEqual:
		return ast.BitAnd, true
	case lexer.PipeEqual:
		return ast.BitOr, true
	case lexer.CaretEqual:
		return ast.BitXor, true
	case lexer.LessLessEqual:
		return ast.LShift, true
	case lexer.GreaterGreaterEqual:
		return ast.RShift, true
	case lexer.AtEqual:
		return ast.MatMult, true
	}
	return 0, false
}

// exprListAsTupleOrSingle parses a comma-separated expression list used
// on either side of `=`, returning the single expression directly or a
// Tuple when more than one (or a trailing comma) was present.
func (p *Parser) exprListAsTupleOrSingle() (ast.Expr, error) {
	start := p.peek()
	first, err := p.starOrExpr()
	if err != nil {
		return nil, err
	}
	if !p.check(lexer.Comma) {
		return first, nil
	}
	elts := []ast.Expr{first}
	for p.match(lexer.Comma) {
		if p.atSimpleStatementEnd() || p.check(lexer.Equal) || p.check(lexer.Colon) {
			break
		}
		e, err := p.starOrExpr()
		if err != nil {
			return nil, err
		}
		elts = append(elts, e)
	}
	t := &ast.Tuple{Elts: elts, Ctx: ast.Load}
	t.SetSpan(p.spanFrom(start))
	return t, nil
}

func (p *Parser) starOrExpr() (ast.Expr, error) {
	if p.check(lexer.Star) {
		start := p.advance()
		v, err := p.orExpr()
		if err != nil {
			return nil, err
		}
		s := &ast.Starred{Value: v, Ctx: ast.Load}
		s.SetSpan(p.spanFrom(start))
		return s, nil
	}
	return p.expr()
}

func (p *Parser) importStatement(start lexer.Token) (ast.Stmt, error) {
	var aliases []*ast.Alias
	for {
		a, err := p.dottedAsName()
		if err != nil {
			return nil, err
		}
		aliases = append(aliases, a)
		if !p.match(lexer.Comma) {
			break
		}
	}
	s := &ast.Import{Names: aliases}
	s.SetSpan(p.spanFrom(start))
	return s, nil
}

func (p *Parser) dottedAsName() (*ast.Alias, error) {
	name, err := p.dottedName()
	if err != nil {
		return nil, err
	}
	asName := ""
	if p.match(lexer.As) {
		tok, err := p.consume(lexer.Identifier, "expected a name after 'as'")
		if err != nil {
			return nil, err
		}
		asName = tok.Literal.(string)
	}
	return &ast.Alias{Name: name, AsName: asName}, nil
}

func (p *Parser) dottedName() (string, error) {
	tok, err := p.consume(lexer.Identifier, "expected a module name")
	if err != nil {
		return "", err
	}
	name := tok.Literal.(string)
	for p.check(lexer.Dot) && p.peekN(1).Type == lexer.Identifier {
		p.advance()
		next, _ := p.consume(lexer.Identifier, "expected a name after '.'")
		name += "." + next.Literal.(string)
	}
	return name, nil
}

func (p *Parser) importFromStatement(start lexer.Token) (ast.Stmt, error) {
	level := 0
	for p.check(lexer.Dot) || p.check(lexer.Ellipsis) {
		if p.match(lexer.Ellipsis) {
			level += 3
			continue
		}
		p.advance()
		level++
	}
	module := ""
	if p.check(lexer.Identifier) {
		m, err := p.dottedName()
		if err != nil {
			return nil, err
		}
		module = m
	}
	if _, err := p.consume(lexer.Import, "expected 'import'"); err != nil {
		return nil, err
	}

	var names []*ast.Alias
	switch {
	case p.match(lexer.Star):
		names = nil
	case p.match(lexer.LeftParen):
		for !p.check(lexer.RightParen) {
			a, err := p.importAsName()
			if err != nil {
				return nil, err
			}
			names = append(names, a)
			if !p.match(lexer.Comma) {
				break
			}
		}
		if _, err := p.consume(lexer.RightParen, "expected ')' to close import list"); err != nil {
			return nil, err
		}
	default:
		for {
			a, err := p.importAsName()
			if err != nil {
				return nil, err
			}
			names = append(names, a)
			if !p.match(lexer.Comma) {
				break
			}
		}
	}

	s := &ast.ImportFrom{Module: module, Names: names, Level: level}
	s.SetSpan(p.spanFrom(start))
	return s, nil
}

func (p *Parser) importAsName() (*ast.Alias, error) {
	tok, err := p.consume(lexer.Identifier, "expected an imported name")
	if err != nil {
		return nil, err
	}
	asName := ""
	if p.match(lexer.As) {
		n, err := p.consume(lexer.Identifier, "expected a name after 'as'")
		if err != nil {
			return nil, err
		}
		asName = n.Literal.(string)
	}
	return &ast.Alias{Name: tok.Literal.(string), AsName: asName}, nil
}
