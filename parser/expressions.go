package parser

import (
	"pyast/ast"
	"pyast/lexer"
)

// expr is the entry point for the full 17-level expression grammar
// starting at the lowest-binding production (lambda) and descending
// through one method per precedence level down to atoms.
func (p *Parser) expr() (ast.Expr, error) {
	return p.lambdaExpr()
}

func (p *Parser) lambdaExpr() (ast.Expr, error) {
	if !p.check(lexer.Lambda) {
		return p.ternaryExpr()
	}
	start := p.advance()
	args, err := p.parseLambdaArguments()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Colon, "expected ':' after lambda parameters"); err != nil {
		return nil, err
	}
	body, err := p.expr()
	if err != nil {
		return nil, err
	}
	l := &ast.Lambda{Args: args, Body: body}
	l.SetSpan(p.spanFrom(start))
	return l, nil
}

func (p *Parser) ternaryExpr() (ast.Expr, error) {
	start := p.peek()
	body, err := p.orExpr()
	if err != nil {
		return nil, err
	}
	if !p.match(lexer.If) {
		return body, nil
	}
	test, err := p.orExpr()
	if err != nil {
		return nil, err
	}
	if _, err := p.consume(lexer.Else, "expected 'else' in conditional expression"); err != nil {
		return nil, err
	}
	orElse, err := p.expr()
	if err != nil {
		return nil, err
	}
	n := &ast.IfExp{Test: test, Body: body, OrElse: orElse}
	n.SetSpan(p.spanFrom(start))
	return n, nil
}

func (p *Parser) orExpr() (ast.Expr, error) {
	start := p.peek()
	first, err := p.andExpr()
	if err != nil {
		return nil, err
	}
	if !p.check(lexer.Or) {
		return first, nil
	}
	values := []ast.Expr{first}
	for p.match(lexer.Or) {
		v, err := p.andExpr()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	n := &ast.BoolOp{Op: ast.Or, Values: values}
	n.SetSpan(p.spanFrom(start))
	return n, nil
}

func (p *Parser) andExpr() (ast.Expr, error) {
	start := p.peek()
	first, err := p.notExpr()
	if err != nil {
		return nil, err
	}
	if !p.check(lexer.And) {
		return first, nil
	}
	values := []ast.Expr{first}
	for p.match(lexer.And) {
		v, err := p.notExpr()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	n := &ast.BoolOp{Op: ast.And, Values: values}
	n.SetSpan(p.spanFrom(start))
	return n, nil
}

func (p *Parser) notExpr() (ast.Expr, error) {
	if p.check(lexer.Not) && !(p.peekN(1).Type == lexer.In) {
		start := p.advance()
		operand, err := p.notExpr()
		if err != nil {
			return nil, err
		}
		n := &ast.UnaryOp{Op: ast.Not, Operand: operand}
		n.SetSpan(p.spanFrom(start))
		return n, nil
	}
	return p.comparisonExpr()
}

var cmpSingle = map[lexer.TokenType]ast.CmpOp{
	lexer.EqualEqual: ast.Eq, lexer.BangEqual: ast.NotEq,
	lexer.Less: ast.Lt, lexer.LessEqual: ast.LtE,
	lexer.Greater: ast.Gt, lexer.GreaterEqual: ast.GtE,
}

func (p *Parser) comparisonExpr() (ast.Expr, error) {
	start := p.peek()
	left, err := p.bitOrExpr()
	if err != nil {
		return nil, err
	}
	var ops []ast.CmpOp
	var comparators []ast.Expr
	for {
		if op, ok := cmpSingle[p.peek().Type]; ok {
			p.advance()
			ops = append(ops, op)
		} else if p.check(lexer.Is) {
			p.advance()
			if p.match(lexer.Not) {
				ops = append(ops, ast.IsNot)
			} else {
				ops = append(ops, ast.Is)
			}
		} else if p.check(lexer.In) {
			p.advance()
			ops = append(ops, ast.In)
		} else if p.check(lexer.Not) && p.peekN(1).Type == lexer.In {
			p.advance()
			p.advance()
			ops = append(ops, ast.NotIn)
		} else {
			break
		}
		rhs, err := p.bitOrExpr()
		if err != nil {
			return nil, err
		}
		comparators = append(comparators, rhs)
	}
	if len(ops) == 0 {
		return left, nil
	}
	n := &ast.Compare{Left: left, Ops: ops, Comparators: comparators}
	n.SetSpan(p.spanFrom(start))
	return n, nil
}

func (p *Parser) binOpChain(next func() (ast.Expr, error), ops map[lexer.TokenType]ast.Operator) (ast.Expr, error) {
	start := p.peek()
	left, err := next()
	if err != nil {
		return nil, err
	}
	for {
		op, ok := ops[p.peek().Type]
		if !ok {
			return left, nil
		}
		p.advance()
		right, err := next()
		if err != nil {
			return nil, err
		}
		n := &ast.BinOp{Left: left, Op: op, Right: right}
		n.SetSpan(p.spanFrom(start))
		left = n
	}
}

var bitOrOps = map[lexer.TokenType]ast.Operator{lexer.Pipe: ast.BitOr}
var bitXorOps = map[lexer.TokenType]ast.Operator{lexer.Caret: ast.BitXor}
var bitAndOps = map[lexer.TokenType]ast.Operator{lexer.Ampersand: ast.BitAnd}
var shiftOps = map[lexer.TokenType]ast.Operator{lexer.LessLess: ast.LShift, lexer.GreaterGreater: ast.RShift}
var addOps = map[lexer.TokenType]ast.Operator{lexer.Plus: ast.Add, lexer.Minus: ast.Sub}
var mulOps = map[lexer.TokenType]ast.Operator{
	lexer.Star: ast.Mult, lexer.Slash: ast.Div, lexer.SlashSlash: ast.FloorDiv,
	lexer.Percent: ast.Mod, lexer.At: ast.MatMult,
}

func (p *Parser) bitOrExpr() (ast.Expr, error)  { return p.binOpChain(p.bitXorExpr, bitOrOps) }
func (p *Parser) bitXorExpr() (ast.Expr, error) { return p.binOpChain(p.bitAndExpr, bitXorOps) }
func (p *Parser) bitAndExpr() (ast.Expr, error) { return p.binOpChain(p.shiftExpr, bitAndOps) }
func (p *Parser) shiftExpr() (ast.Expr, error)  { return p.binOpChain(p.addExpr, shiftOps) }
func (p *Parser) addExpr() (ast.Expr, error)    { return p.binOpChain(p.mulExpr, addOps) }
func (p *Parser) mulExpr() (ast.Expr, error)    { return p.binOpChain(p.unaryExpr, mulOps) }

var unaryOps = map[lexer.TokenType]ast.UnaryOpKind{
	lexer.Plus: ast.UAdd, lexer.Minus: ast.USub, lexer.Tilde: ast.Invert,
}

func (p *Parser) unaryExpr() (ast.Expr, error) {
	if op, ok := unaryOps[p.peek().Type]; ok {
		start := p.advance()
		operand, err := p.unaryExpr()
		if err != nil {
			return nil, err
		}
		n := &ast.UnaryOp{Op: op, Operand: operand}
		n.SetSpan(p.spanFrom(start))
		return n, nil
	}
	return p.powerExpr()
}

// powerExpr implements `**`, right-associative, with the unary-binds-
// tighter-on-the-right rule: the right operand is
// parsed at unaryExpr precedence so that `-2**2` means `-(2**2)` while
// `2**-2` means `2**(-2)`.
func (p *Parser) powerExpr() (ast.Expr, error) {
	start := p.peek()
	left, err := p.awaitExpr()
	if err != nil {
		return nil, err
	}
	if !p.match(lexer.StarStar) {
		return left, nil
	}
	right, err := p.unaryExpr()
	if err != nil {
		return nil, err
	}
	n := &ast.BinOp{Left: left, Op: ast.Pow, Right: right}
	n.SetSpan(p.spanFrom(start))
	return n, nil
}

func (p *Parser) awaitExpr() (ast.Expr, error) {
	if !p.check(lexer.Await) {
		return p.postfixExpr()
	}
	start := p.advance()
	v, err := p.postfixExpr()
	if err != nil {
		return nil, err
	}
	n := &ast.Await{Value: v}
	n.SetSpan(p.spanFrom(start))
	return n, nil
}

// postfixExpr parses an atom followed by any number of trailers: `.attr`,
// `[slice]`, `(args)`.
func (p *Parser) postfixExpr() (ast.Expr, error) {
	start := p.peek()
	e, err := p.atom()
	if err != nil {
		return nil, err
	}
	for {
		switch {
		case p.match(lexer.Dot):
			name, err := p.consume(lexer.Identifier, "expected attribute name after '.'")
			if err != nil {
				return nil, err
			}
			a := &ast.Attribute{Value: e, Attr: name.Literal.(string), Ctx: ast.Load}
			a.SetSpan(p.spanFrom(start))
			e = a
		case p.check(lexer.LeftParen):
			call, err := p.callTrailer(e)
			if err != nil {
				return nil, err
			}
			call.SetSpan(p.spanFrom(start))
			e = call
		case p.check(lexer.LeftBracket):
			sub, err := p.subscriptTrailer(e)
			if err != nil {
				return nil, err
			}
			sub.SetSpan(p.spanFrom(start))
			e = sub
		default:
			return e, nil
		}
	}
}
