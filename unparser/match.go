package unparser

import (
	"fmt"

	"pyast/ast"
)

func (u *Unparser) writeMatch(n *ast.Match) error {
	u.writeIndent()
	u.buf.WriteString("match ")
	if err := u.writeExpr(n.Subject); err != nil {
		return err
	}
	u.buf.WriteString(":\n")
	u.level++
	for _, c := range n.Cases {
		if err := u.writeMatchCase(c); err != nil {
			u.level--
			return err
		}
	}
	u.level--
	return nil
}

func (u *Unparser) writeMatchCase(c *ast.MatchCase) error {
	u.writeIndent()
	u.buf.WriteString("case ")
	if err := u.writePattern(c.Pattern); err != nil {
		return err
	}
	if c.Guard != nil {
		u.buf.WriteString(" if ")
		if err := u.writeExpr(c.Guard); err != nil {
			return err
		}
	}
	u.buf.WriteString(":\n")
	return u.writeSuite(c.Body)
}

func (u *Unparser) writePattern(p ast.Pattern) error {
	switch n := p.(type) {
	case *ast.MatchValue:
		return u.writeExpr(n.Value)
	case *ast.MatchSingleton:
		switch n.Value {
		case nil:
			u.buf.WriteString("None")
		case true:
			u.buf.WriteString("True")
		case false:
			u.buf.WriteString("False")
		default:
			return &InvalidASTError{Message: fmt.Sprintf("MatchSingleton.Value must be nil, true, or false, got %v", n.Value)}
		}
		return nil
	case *ast.MatchSequence:
		u.buf.WriteByte('[')
		for i, sub := range n.Patterns {
			if i > 0 {
				u.buf.WriteString(", ")
			}
			if err := u.writePattern(sub); err != nil {
				return err
			}
		}
		u.buf.WriteByte(']')
		return nil
	case *ast.MatchMapping:
		u.buf.WriteByte('{')
		first := true
		for i, key := range n.Keys {
			if !first {
				u.buf.WriteString(", ")
			}
			first = false
			if err := u.writeExpr(key); err != nil {
				return err
			}
			u.buf.WriteString(": ")
			if err := u.writePattern(n.Patterns[i]); err != nil {
				return err
			}
		}
		if n.Rest != "" {
			if !first {
				u.buf.WriteString(", ")
			}
			u.buf.WriteString("**")
			u.buf.WriteString(n.Rest)
		}
		u.buf.WriteByte('}')
		return nil
	case *ast.MatchClass:
		if err := u.writeExprAt(n.Cls, ast.PrecPostfix, true); err != nil {
			return err
		}
		u.buf.WriteByte('(')
		first := true
		for _, sub := range n.Patterns {
			if !first {
				u.buf.WriteString(", ")
			}
			first = false
			if err := u.writePattern(sub); err != nil {
				return err
			}
		}
		for i, attr := range n.KwdAttrs {
			if !first {
				u.buf.WriteString(", ")
			}
			first = false
			u.buf.WriteString(attr)
			u.buf.WriteByte('=')
			if err := u.writePattern(n.KwdPatterns[i]); err != nil {
				return err
			}
		}
		u.buf.WriteByte(')')
		return nil
	case *ast.MatchStar:
		u.buf.WriteByte('*')
		if n.Name == "" {
			u.buf.WriteByte('_')
		} else {
			u.buf.WriteString(n.Name)
		}
		return nil
	case *ast.MatchAs:
		if n.Pattern != nil {
			if err := u.writePattern(n.Pattern); err != nil {
				return err
			}
			u.buf.WriteString(" as ")
			u.buf.WriteString(n.Name)
			return nil
		}
		u.buf.WriteString(n.Name)
		return nil
	case *ast.MatchOr:
		for i, sub := range n.Patterns {
			if i > 0 {
				u.buf.WriteString(" | ")
			}
			if err := u.writePattern(sub); err != nil {
				return err
			}
		}
		return nil
	default:
		return &InvalidASTError{Message: fmt.Sprintf("unparse: unknown pattern kind %T", p)}
	}
}
