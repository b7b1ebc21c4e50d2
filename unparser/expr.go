package unparser

import (
	"fmt"

	"pyast/ast"
)

// writeExpr writes e with no parenthesization demanded by any enclosing
// context — the entry point used for statement-level expressions.
func (u *Unparser) writeExpr(e ast.Expr) error {
	return u.writeExprAt(e, ast.PrecNone, true)
}

// writeExprAt writes e, wrapping it in parentheses if its own binding
// precedence is weaker than demand, or equal to demand but disallowed
// there (the side of a non-associative or opposite-associativity
// operator). This single routine is driven by the ast.Precedence table,
// whose level order matches the parser's one-method-per-level cascade;
// the parser itself does not read the table.
func (u *Unparser) writeExprAt(e ast.Expr, demand ast.Precedence, allowEqual bool) error {
	prec := ast.ExprPrecedence(e)
	needParens := prec < demand || (prec == demand && !allowEqual)
	if needParens {
		u.buf.WriteByte('(')
	}
	if err := u.writeExprBare(e); err != nil {
		return err
	}
	if needParens {
		u.buf.WriteByte(')')
	}
	return nil
}

func (u *Unparser) writeExprBare(e ast.Expr) error {
	switch n := e.(type) {
	case *ast.BoolOp:
		return u.writeBoolOp(n)
	case *ast.NamedExpr:
		return u.writeNamedExpr(n)
	case *ast.BinOp:
		return u.writeBinOp(n)
	case *ast.UnaryOp:
		return u.writeUnaryOp(n)
	case *ast.Lambda:
		return u.writeLambda(n)
	case *ast.IfExp:
		return u.writeIfExp(n)
	case *ast.Compare:
		return u.writeCompare(n)
	case *ast.Call:
		return u.writeCall(n)
	case *ast.Attribute:
		return u.writeAttribute(n)
	case *ast.Subscript:
		return u.writeSubscript(n)
	case *ast.Starred:
		u.buf.WriteByte('*')
		return u.writeExprAt(n.Value, ast.PrecOr, true)
	case *ast.Name:
		u.buf.WriteString(n.Id)
		return nil
	case *ast.Constant:
		return u.writeConstant(n)
	case *ast.List:
		return u.writeSequence(n.Elts, '[', ']')
	case *ast.Tuple:
		return u.writeTuple(n)
	case *ast.Slice:
		return u.writeSlice(n)
	case *ast.Yield:
		return u.writeYield(n)
	case *ast.YieldFrom:
		u.buf.WriteString("yield from ")
		return u.writeExprAt(n.Value, ast.PrecOr, true)
	case *ast.Await:
		u.buf.WriteString("await ")
		return u.writeExprAt(n.Value, ast.PrecPostfix, true)
	case *ast.Dict:
		return u.writeDict(n)
	case *ast.Set:
		return u.writeSequence(n.Elts, '{', '}')
	case *ast.ListComp:
		return u.writeComp(n.Elt, nil, n.Generators, '[', ']')
	case *ast.SetComp:
		return u.writeComp(n.Elt, nil, n.Generators, '{', '}')
	case *ast.DictComp:
		return u.writeComp(n.Key, n.Value, n.Generators, '{', '}')
	case *ast.GeneratorExp:
		return u.writeComp(n.Elt, nil, n.Generators, '(', ')')
	case *ast.JoinedStr:
		return u.writeJoinedStr(n)
	case *ast.FormattedValue:
		return u.writeBareFormattedValue(n)
	default:
		return &InvalidASTError{Message: fmt.Sprintf("unparse: unknown expression kind %T", e)}
	}
}

func (u *Unparser) writeBoolOp(n *ast.BoolOp) error {
	sep := " or "
	if n.Op == ast.And {
		sep = " and "
	}
	demand := ast.PrecOr
	if n.Op == ast.And {
		demand = ast.PrecAnd
	}
	for i, v := range n.Values {
		if i > 0 {
			u.buf.WriteString(sep)
		}
		if err := u.writeExprAt(v, demand, true); err != nil {
			return err
		}
	}
	return nil
}

func (u *Unparser) writeNamedExpr(n *ast.NamedExpr) error {
	if err := u.writeExprAt(n.Target, ast.PrecAtom, true); err != nil {
		return err
	}
	u.buf.WriteString(" := ")
	return u.writeExprAt(n.Value, ast.PrecTernary, false)
}

// binOperandDemand returns the precedence each side of a BinOp demands of
// its operand, per op's associativity: the side that can hold an
// equal-precedence chain without parens is the one matching the
// operator's own associativity.
func binOperandDemand(op ast.Operator) (leftDemand ast.Precedence, leftEq bool, rightDemand ast.Precedence, rightEq bool) {
	prec, assoc := ast.BinOpPrecedence(op)
	leftDemand = prec
	leftEq = assoc == ast.AssocLeft
	rightEq = assoc == ast.AssocRight
	if op == ast.Pow {
		// `**`'s right operand is grammatically a unary expression, so a
		// UnaryOp there (`2**-2`) needs no parens even though PrecUnary
		// is below PrecPower.
		rightDemand = ast.PrecUnary
	} else {
		rightDemand = prec
	}
	return
}

func (u *Unparser) writeBinOp(n *ast.BinOp) error {
	leftDemand, leftEq, rightDemand, rightEq := binOperandDemand(n.Op)
	if err := u.writeExprAt(n.Left, leftDemand, leftEq); err != nil {
		return err
	}
	fmt.Fprintf(&u.buf, " %s ", n.Op.String())
	return u.writeExprAt(n.Right, rightDemand, rightEq)
}

func (u *Unparser) writeUnaryOp(n *ast.UnaryOp) error {
	u.buf.WriteString(n.Op.String())
	demand := ast.PrecUnary
	if n.Op == ast.Not {
		demand = ast.PrecNot
	}
	return u.writeExprAt(n.Operand, demand, true)
}

func (u *Unparser) writeLambda(n *ast.Lambda) error {
	u.buf.WriteString("lambda")
	if hasAnyArg(n.Args) {
		u.buf.WriteByte(' ')
		if err := u.writeArguments(n.Args); err != nil {
			return err
		}
	}
	u.buf.WriteString(": ")
	return u.writeExprAt(n.Body, ast.PrecLambda, true)
}

func hasAnyArg(a *ast.Arguments) bool {
	return len(a.PosOnlyArgs) > 0 || len(a.Args) > 0 || a.VarArg != nil || len(a.KwOnlyArgs) > 0 || a.KwArg != nil
}

func (u *Unparser) writeIfExp(n *ast.IfExp) error {
	if err := u.writeExprAt(n.Body, ast.PrecTernary, false); err != nil {
		return err
	}
	u.buf.WriteString(" if ")
	if err := u.writeExprAt(n.Test, ast.PrecTernary, false); err != nil {
		return err
	}
	u.buf.WriteString(" else ")
	return u.writeExprAt(n.OrElse, ast.PrecTernary, true)
}

func (u *Unparser) writeCompare(n *ast.Compare) error {
	if len(n.Ops) != len(n.Comparators) || len(n.Ops) == 0 {
		return &InvalidASTError{Message: "Compare.ops and Compare.comparators must have equal, nonzero length"}
	}
	if err := u.writeExprAt(n.Left, ast.PrecComparison, false); err != nil {
		return err
	}
	for i, op := range n.Ops {
		fmt.Fprintf(&u.buf, " %s ", op.String())
		if err := u.writeExprAt(n.Comparators[i], ast.PrecComparison, false); err != nil {
			return err
		}
	}
	return nil
}

func (u *Unparser) writeCall(n *ast.Call) error {
	if err := u.writeExprAt(n.Func, ast.PrecPostfix, true); err != nil {
		return err
	}
	u.buf.WriteByte('(')
	first := true
	for _, a := range n.Args {
		if !first {
			u.buf.WriteString(", ")
		}
		first = false
		if err := u.writeExprAt(a, ast.PrecLambda, true); err != nil {
			return err
		}
	}
	for _, kw := range n.Keywords {
		if !first {
			u.buf.WriteString(", ")
		}
		first = false
		if kw.Name == "" {
			u.buf.WriteString("**")
		} else {
			u.buf.WriteString(kw.Name)
			u.buf.WriteByte('=')
		}
		if err := u.writeExprAt(kw.Value, ast.PrecLambda, true); err != nil {
			return err
		}
	}
	u.buf.WriteByte(')')
	return nil
}

func (u *Unparser) writeAttribute(n *ast.Attribute) error {
	if err := u.writeExprAt(n.Value, ast.PrecPostfix, true); err != nil {
		return err
	}
	u.buf.WriteByte('.')
	u.buf.WriteString(n.Attr)
	return nil
}

func (u *Unparser) writeSubscript(n *ast.Subscript) error {
	if err := u.writeExprAt(n.Value, ast.PrecPostfix, true); err != nil {
		return err
	}
	u.buf.WriteByte('[')
	if err := u.writeExprAt(n.Slice, ast.PrecNone, true); err != nil {
		return err
	}
	u.buf.WriteByte(']')
	return nil
}

func (u *Unparser) writeSequence(elts []ast.Expr, open, close byte) error {
	u.buf.WriteByte(open)
	for i, e := range elts {
		if i > 0 {
			u.buf.WriteString(", ")
		}
		if err := u.writeExprAt(e, ast.PrecLambda, true); err != nil {
			return err
		}
	}
	u.buf.WriteByte(close)
	return nil
}

func (u *Unparser) writeTuple(n *ast.Tuple) error {
	u.buf.WriteByte('(')
	for i, e := range n.Elts {
		if i > 0 {
			u.buf.WriteString(", ")
		}
		if err := u.writeExprAt(e, ast.PrecLambda, true); err != nil {
			return err
		}
	}
	if len(n.Elts) == 1 {
		u.buf.WriteByte(',')
	}
	u.buf.WriteByte(')')
	return nil
}

func (u *Unparser) writeSlice(n *ast.Slice) error {
	if n.Lower != nil {
		if err := u.writeExprAt(n.Lower, ast.PrecOr, true); err != nil {
			return err
		}
	}
	u.buf.WriteByte(':')
	if n.Upper != nil {
		if err := u.writeExprAt(n.Upper, ast.PrecOr, true); err != nil {
			return err
		}
	}
	if n.Step != nil {
		u.buf.WriteByte(':')
		if err := u.writeExprAt(n.Step, ast.PrecOr, true); err != nil {
			return err
		}
	}
	return nil
}

func (u *Unparser) writeYield(n *ast.Yield) error {
	u.buf.WriteString("yield")
	if n.Value != nil {
		u.buf.WriteByte(' ')
		if err := u.writeExprAt(n.Value, ast.PrecOr, true); err != nil {
			return err
		}
	}
	return nil
}

func (u *Unparser) writeDict(n *ast.Dict) error {
	u.buf.WriteByte('{')
	for i, k := range n.Keys {
		if i > 0 {
			u.buf.WriteString(", ")
		}
		if k == nil {
			u.buf.WriteString("**")
			if err := u.writeExprAt(n.Values[i], ast.PrecLambda, true); err != nil {
				return err
			}
			continue
		}
		if err := u.writeExprAt(k, ast.PrecLambda, true); err != nil {
			return err
		}
		u.buf.WriteString(": ")
		if err := u.writeExprAt(n.Values[i], ast.PrecLambda, true); err != nil {
			return err
		}
	}
	u.buf.WriteByte('}')
	return nil
}

func (u *Unparser) writeComp(elt, value ast.Expr, gens []*ast.Comprehension, open, close byte) error {
	u.buf.WriteByte(open)
	if err := u.writeExprAt(elt, ast.PrecLambda, true); err != nil {
		return err
	}
	if value != nil {
		u.buf.WriteString(": ")
		if err := u.writeExprAt(value, ast.PrecLambda, true); err != nil {
			return err
		}
	}
	for _, g := range gens {
		u.buf.WriteByte(' ')
		if g.IsAsync {
			u.buf.WriteString("async ")
		}
		u.buf.WriteString("for ")
		if err := u.writeExprAt(g.Target, ast.PrecOr, true); err != nil {
			return err
		}
		u.buf.WriteString(" in ")
		if err := u.writeExprAt(g.Iter, ast.PrecOr, true); err != nil {
			return err
		}
		for _, cond := range g.Ifs {
			u.buf.WriteString(" if ")
			if err := u.writeExprAt(cond, ast.PrecOr, true); err != nil {
				return err
			}
		}
	}
	u.buf.WriteByte(close)
	return nil
}
