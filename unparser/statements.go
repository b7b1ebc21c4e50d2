package unparser

import (
	"fmt"
	"strings"

	"pyast/ast"
)

func (u *Unparser) writeStmt(s ast.Stmt) error {
	switch n := s.(type) {
	case *ast.ExprStmt:
		return u.writeExprStmt(n)
	case *ast.Assign:
		return u.writeAssign(n)
	case *ast.AugAssign:
		return u.writeAugAssign(n)
	case *ast.AnnAssign:
		return u.writeAnnAssign(n)
	case *ast.Return:
		return u.writeReturn(n)
	case *ast.Delete:
		return u.writeDelete(n)
	case *ast.Pass:
		u.writeLine("pass")
		return nil
	case *ast.Break:
		u.writeLine("break")
		return nil
	case *ast.Continue:
		u.writeLine("continue")
		return nil
	case *ast.Global:
		u.writeLine("global " + strings.Join(n.Names, ", "))
		return nil
	case *ast.Nonlocal:
		u.writeLine("nonlocal " + strings.Join(n.Names, ", "))
		return nil
	case *ast.Assert:
		return u.writeAssert(n)
	case *ast.Raise:
		return u.writeRaise(n)
	case *ast.Import:
		return u.writeImport(n)
	case *ast.ImportFrom:
		return u.writeImportFrom(n)
	case *ast.FunctionDef:
		return u.writeFunctionDef(n)
	case *ast.ClassDef:
		return u.writeClassDef(n)
	case *ast.For:
		return u.writeFor(n)
	case *ast.While:
		return u.writeWhile(n)
	case *ast.If:
		return u.writeIf(n)
	case *ast.With:
		return u.writeWith(n)
	case *ast.Try:
		return u.writeTry(n)
	case *ast.TypeAlias:
		return u.writeTypeAlias(n)
	case *ast.Match:
		return u.writeMatch(n)
	default:
		return &InvalidASTError{Message: fmt.Sprintf("unparse: unknown statement kind %T", s)}
	}
}

func (u *Unparser) writeExprStmt(n *ast.ExprStmt) error {
	u.writeIndent()
	if err := u.writeExpr(n.Value); err != nil {
		return err
	}
	u.buf.WriteByte('\n')
	return nil
}

func (u *Unparser) writeAssign(n *ast.Assign) error {
	u.writeIndent()
	for _, t := range n.Targets {
		if err := u.writeExpr(t); err != nil {
			return err
		}
		u.buf.WriteString(" = ")
	}
	if err := u.writeExpr(n.Value); err != nil {
		return err
	}
	u.buf.WriteByte('\n')
	return nil
}

func (u *Unparser) writeAugAssign(n *ast.AugAssign) error {
	u.writeIndent()
	if err := u.writeExpr(n.Target); err != nil {
		return err
	}
	fmt.Fprintf(&u.buf, " %s= ", n.Op.String())
	if err := u.writeExpr(n.Value); err != nil {
		return err
	}
	u.buf.WriteByte('\n')
	return nil
}

func (u *Unparser) writeAnnAssign(n *ast.AnnAssign) error {
	u.writeIndent()
	if err := u.writeExpr(n.Target); err != nil {
		return err
	}
	u.buf.WriteString(": ")
	if err := u.writeExpr(n.Annotation); err != nil {
		return err
	}
	if n.Value != nil {
		u.buf.WriteString(" = ")
		if err := u.writeExpr(n.Value); err != nil {
			return err
		}
	}
	u.buf.WriteByte('\n')
	return nil
}

func (u *Unparser) writeReturn(n *ast.Return) error {
	if n.Value == nil {
		u.writeLine("return")
		return nil
	}
	u.writeIndent()
	u.buf.WriteString("return ")
	if err := u.writeExpr(n.Value); err != nil {
		return err
	}
	u.buf.WriteByte('\n')
	return nil
}

func (u *Unparser) writeDelete(n *ast.Delete) error {
	u.writeIndent()
	u.buf.WriteString("del ")
	for i, t := range n.Targets {
		if i > 0 {
			u.buf.WriteString(", ")
		}
		if err := u.writeExpr(t); err != nil {
			return err
		}
	}
	u.buf.WriteByte('\n')
	return nil
}

func (u *Unparser) writeAssert(n *ast.Assert) error {
	u.writeIndent()
	u.buf.WriteString("assert ")
	if err := u.writeExpr(n.Test); err != nil {
		return err
	}
	if n.Msg != nil {
		u.buf.WriteString(", ")
		if err := u.writeExpr(n.Msg); err != nil {
			return err
		}
	}
	u.buf.WriteByte('\n')
	return nil
}

func (u *Unparser) writeRaise(n *ast.Raise) error {
	u.writeIndent()
	if n.Exc == nil {
		u.buf.WriteString("raise\n")
		return nil
	}
	u.buf.WriteString("raise ")
	if err := u.writeExpr(n.Exc); err != nil {
		return err
	}
	if n.Cause != nil {
		u.buf.WriteString(" from ")
		if err := u.writeExpr(n.Cause); err != nil {
			return err
		}
	}
	u.buf.WriteByte('\n')
	return nil
}

func (u *Unparser) writeAlias(a *ast.Alias) {
	u.buf.WriteString(a.Name)
	if a.AsName != "" {
		u.buf.WriteString(" as ")
		u.buf.WriteString(a.AsName)
	}
}

func (u *Unparser) writeImport(n *ast.Import) error {
	u.writeIndent()
	u.buf.WriteString("import ")
	for i, a := range n.Names {
		if i > 0 {
			u.buf.WriteString(", ")
		}
		u.writeAlias(a)
	}
	u.buf.WriteByte('\n')
	return nil
}

func (u *Unparser) writeImportFrom(n *ast.ImportFrom) error {
	u.writeIndent()
	u.buf.WriteString("from ")
	u.buf.WriteString(strings.Repeat(".", n.Level))
	u.buf.WriteString(n.Module)
	u.buf.WriteString(" import ")
	if n.Names == nil {
		u.buf.WriteString("*")
	} else {
		for i, a := range n.Names {
			if i > 0 {
				u.buf.WriteString(", ")
			}
			u.writeAlias(a)
		}
	}
	u.buf.WriteByte('\n')
	return nil
}

func (u *Unparser) writeFunctionDef(n *ast.FunctionDef) error {
	if err := u.writeDecorators(n.DecoratorList); err != nil {
		return err
	}
	u.writeIndent()
	if n.IsAsync {
		u.buf.WriteString("async ")
	}
	u.buf.WriteString("def ")
	u.buf.WriteString(n.Name)
	u.buf.WriteString(writeTypeParams(n.TypeParams))
	u.buf.WriteByte('(')
	if err := u.writeArguments(n.Args); err != nil {
		return err
	}
	u.buf.WriteByte(')')
	if n.Returns != nil {
		u.buf.WriteString(" -> ")
		if err := u.writeExpr(n.Returns); err != nil {
			return err
		}
	}
	u.buf.WriteString(":\n")
	return u.writeSuite(n.Body)
}

func (u *Unparser) writeClassDef(n *ast.ClassDef) error {
	if err := u.writeDecorators(n.DecoratorList); err != nil {
		return err
	}
	u.writeIndent()
	u.buf.WriteString("class ")
	u.buf.WriteString(n.Name)
	u.buf.WriteString(writeTypeParams(n.TypeParams))
	if len(n.Bases) > 0 || len(n.Keywords) > 0 {
		u.buf.WriteByte('(')
		first := true
		for _, b := range n.Bases {
			if !first {
				u.buf.WriteString(", ")
			}
			first = false
			if err := u.writeExpr(b); err != nil {
				return err
			}
		}
		for _, kw := range n.Keywords {
			if !first {
				u.buf.WriteString(", ")
			}
			first = false
			u.buf.WriteString(kw.Name)
			u.buf.WriteByte('=')
			if err := u.writeExpr(kw.Value); err != nil {
				return err
			}
		}
		u.buf.WriteByte(')')
	}
	u.buf.WriteString(":\n")
	return u.writeSuite(n.Body)
}

func writeTypeParams(params []*ast.TypeParam) string {
	if len(params) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, tp := range params {
		if i > 0 {
			b.WriteString(", ")
		}
		switch tp.Kind {
		case ast.TypeVarTupleParam:
			b.WriteByte('*')
		case ast.ParamSpecParam:
			b.WriteString("**")
		}
		b.WriteString(tp.Name)
		if tp.Bound != nil {
			sub := newUnparser(DefaultOptions())
			if err := sub.writeExprAt(tp.Bound, ast.PrecOr, true); err == nil {
				b.WriteString(": ")
				b.WriteString(sub.buf.String())
			}
		}
	}
	b.WriteByte(']')
	return b.String()
}

func (u *Unparser) writeFor(n *ast.For) error {
	u.writeIndent()
	if n.IsAsync {
		u.buf.WriteString("async ")
	}
	u.buf.WriteString("for ")
	if err := u.writeExpr(n.Target); err != nil {
		return err
	}
	u.buf.WriteString(" in ")
	if err := u.writeExpr(n.Iter); err != nil {
		return err
	}
	u.buf.WriteString(":\n")
	if err := u.writeSuite(n.Body); err != nil {
		return err
	}
	if len(n.OrElse) > 0 {
		u.writeBlockHeader("else")
		return u.writeSuite(n.OrElse)
	}
	return nil
}

func (u *Unparser) writeWhile(n *ast.While) error {
	u.writeIndent()
	u.buf.WriteString("while ")
	if err := u.writeExpr(n.Test); err != nil {
		return err
	}
	u.buf.WriteString(":\n")
	if err := u.writeSuite(n.Body); err != nil {
		return err
	}
	if len(n.OrElse) > 0 {
		u.writeBlockHeader("else")
		return u.writeSuite(n.OrElse)
	}
	return nil
}

func (u *Unparser) writeIf(n *ast.If) error {
	u.writeIndent()
	u.buf.WriteString("if ")
	if err := u.writeExpr(n.Test); err != nil {
		return err
	}
	u.buf.WriteString(":\n")
	if err := u.writeSuite(n.Body); err != nil {
		return err
	}
	return u.writeIfElse(n.OrElse)
}

// writeIfElse emits the else branch, collapsing a single nested If into
// an `elif` line rather than an `else:` wrapping another `if`.
func (u *Unparser) writeIfElse(orElse []ast.Stmt) error {
	if len(orElse) == 0 {
		return nil
	}
	if len(orElse) == 1 {
		if elif, ok := orElse[0].(*ast.If); ok {
			u.writeIndent()
			u.buf.WriteString("elif ")
			if err := u.writeExpr(elif.Test); err != nil {
				return err
			}
			u.buf.WriteString(":\n")
			if err := u.writeSuite(elif.Body); err != nil {
				return err
			}
			return u.writeIfElse(elif.OrElse)
		}
	}
	u.writeBlockHeader("else")
	return u.writeSuite(orElse)
}

func (u *Unparser) writeWith(n *ast.With) error {
	u.writeIndent()
	if n.IsAsync {
		u.buf.WriteString("async ")
	}
	u.buf.WriteString("with ")
	for i, item := range n.Items {
		if i > 0 {
			u.buf.WriteString(", ")
		}
		if err := u.writeExpr(item.ContextExpr); err != nil {
			return err
		}
		if item.OptionalVar != nil {
			u.buf.WriteString(" as ")
			if err := u.writeExpr(item.OptionalVar); err != nil {
				return err
			}
		}
	}
	u.buf.WriteString(":\n")
	return u.writeSuite(n.Body)
}

func (u *Unparser) writeTry(n *ast.Try) error {
	u.writeLine("try:")
	if err := u.writeSuite(n.Body); err != nil {
		return err
	}
	kw := "except"
	if n.IsStarred {
		kw = "except*"
	}
	for _, h := range n.Handlers {
		u.writeIndent()
		u.buf.WriteString(kw)
		if h.TypeExpr != nil {
			u.buf.WriteByte(' ')
			if err := u.writeExpr(h.TypeExpr); err != nil {
				return err
			}
			if h.Name != "" {
				u.buf.WriteString(" as ")
				u.buf.WriteString(h.Name)
			}
		}
		u.buf.WriteString(":\n")
		if err := u.writeSuite(h.Body); err != nil {
			return err
		}
	}
	if len(n.OrElse) > 0 {
		u.writeBlockHeader("else")
		if err := u.writeSuite(n.OrElse); err != nil {
			return err
		}
	}
	if len(n.FinalBody) > 0 {
		u.writeBlockHeader("finally")
		if err := u.writeSuite(n.FinalBody); err != nil {
			return err
		}
	}
	return nil
}

func (u *Unparser) writeTypeAlias(n *ast.TypeAlias) error {
	u.writeIndent()
	u.buf.WriteString("type ")
	u.buf.WriteString(n.Name.Id)
	u.buf.WriteString(writeTypeParams(n.TypeParams))
	u.buf.WriteString(" = ")
	if err := u.writeExpr(n.Value); err != nil {
		return err
	}
	u.buf.WriteByte('\n')
	return nil
}
