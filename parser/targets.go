package parser

import "pyast/ast"

// toStoreTarget retags an expression parsed in Load position into target
// form, per the target-vs-expression design note: the parser always
// parses an expression first and only retags once it sees the committing
// token (`=`, an augmented-assign operator, or `in` in a for-header).
// Literals, calls, comparisons, comprehensions and ternaries are not
// legal targets; retag rejects them with a SyntaxError rather than
// silently accepting them, since target legality is syntactic (not the
// name-resolution/type-checking the core's semantic-analysis non-goal
// excludes).
func (p *Parser) toStoreTarget(e ast.Expr) (ast.Expr, error) {
	return p.retag(e, ast.Store)
}

func (p *Parser) toDelTarget(e ast.Expr) (ast.Expr, error) {
	return p.retag(e, ast.Del)
}

func (p *Parser) retag(e ast.Expr, ctx ast.ExprContext) (ast.Expr, error) {
	switch n := e.(type) {
	case *ast.Name:
		n.Ctx = ctx
		return n, nil
	case *ast.Attribute:
		n.Ctx = ctx
		return n, nil
	case *ast.Subscript:
		n.Ctx = ctx
		return n, nil
	case *ast.Starred:
		n.Ctx = ctx
		v, err := p.retag(n.Value, ctx)
		if err != nil {
			return nil, err
		}
		n.Value = v
		return n, nil
	case *ast.Tuple:
		n.Ctx = ctx
		for i, elt := range n.Elts {
			r, err := p.retag(elt, ctx)
			if err != nil {
				return nil, err
			}
			n.Elts[i] = r
		}
		return n, nil
	case *ast.List:
		n.Ctx = ctx
		for i, elt := range n.Elts {
			r, err := p.retag(elt, ctx)
			if err != nil {
				return nil, err
			}
			n.Elts[i] = r
		}
		return n, nil
	default:
		return nil, p.targetError(e)
	}
}

// targetError reports an expression that landed in assignment/delete/
// for-target/comprehension-target position but isn't a legal target
// (e.g. a Constant, Call, Compare, IfExp or comprehension).
func (p *Parser) targetError(e ast.Expr) error {
	span := e.Span()
	return &SyntaxError{
		Message:  "cannot assign to this expression",
		Filename: p.opts.Filename,
		Line:     span.Start.Line,
		Column:   span.Start.Col,
	}
}
