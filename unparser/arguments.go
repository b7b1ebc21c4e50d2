package unparser

import "pyast/ast"

// writeArguments renders a function/lambda signature: positional-only args,
// a bare `/` marker if any were given, positional-or-keyword args, `*args`
// or a bare `*` marker before keyword-only args, and finally `**kwargs`.
// Defaults are right-aligned onto the trailing positional parameters per
// Arguments.Defaults' documented convention.
func (u *Unparser) writeArguments(a *ast.Arguments) error {
	first := true
	writeSep := func() {
		if !first {
			u.buf.WriteString(", ")
		}
		first = false
	}

	posCount := len(a.PosOnlyArgs) + len(a.Args)
	defaultStart := posCount - len(a.Defaults)

	pos := 0
	for _, arg := range a.PosOnlyArgs {
		writeSep()
		if err := u.writeArg(arg); err != nil {
			return err
		}
		if err := u.writePositionalDefault(pos, defaultStart, a.Defaults); err != nil {
			return err
		}
		pos++
	}
	if len(a.PosOnlyArgs) > 0 {
		writeSep()
		u.buf.WriteByte('/')
	}
	for _, arg := range a.Args {
		writeSep()
		if err := u.writeArg(arg); err != nil {
			return err
		}
		if err := u.writePositionalDefault(pos, defaultStart, a.Defaults); err != nil {
			return err
		}
		pos++
	}

	if a.VarArg != nil {
		writeSep()
		u.buf.WriteByte('*')
		if err := u.writeArg(a.VarArg); err != nil {
			return err
		}
	} else if len(a.KwOnlyArgs) > 0 {
		writeSep()
		u.buf.WriteByte('*')
	}

	for i, arg := range a.KwOnlyArgs {
		writeSep()
		if err := u.writeArg(arg); err != nil {
			return err
		}
		if i < len(a.KwDefaults) && a.KwDefaults[i] != nil {
			u.buf.WriteByte('=')
			if err := u.writeExprAt(a.KwDefaults[i], ast.PrecOr, true); err != nil {
				return err
			}
		}
	}

	if a.KwArg != nil {
		writeSep()
		u.buf.WriteString("**")
		if err := u.writeArg(a.KwArg); err != nil {
			return err
		}
	}
	return nil
}

func (u *Unparser) writePositionalDefault(pos, defaultStart int, defaults []ast.Expr) error {
	if defaultStart < 0 || pos < defaultStart {
		return nil
	}
	val := defaults[pos-defaultStart]
	if val == nil {
		return nil
	}
	u.buf.WriteByte('=')
	return u.writeExprAt(val, ast.PrecOr, true)
}

func (u *Unparser) writeArg(arg *ast.Arg) error {
	u.buf.WriteString(arg.Name)
	if arg.Annotation != nil {
		u.buf.WriteString(": ")
		if err := u.writeExprAt(arg.Annotation, ast.PrecOr, true); err != nil {
			return err
		}
	}
	return nil
}
