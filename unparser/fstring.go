package unparser

import (
	"strings"

	"pyast/ast"
)

// pickFStringQuote chooses a quote character for an f-string literal: a
// single quote unless one of its literal text pieces already contains an
// unescaped single quote and no double quote, in which case double quotes
// avoid extra escaping.
func pickFStringQuote(n *ast.JoinedStr) byte {
	sawSingle, sawDouble := false, false
	for _, v := range n.Values {
		c, ok := v.(*ast.Constant)
		if !ok {
			continue
		}
		text, _ := c.Value.(string)
		if strings.ContainsRune(text, '\'') {
			sawSingle = true
		}
		if strings.ContainsRune(text, '"') {
			sawDouble = true
		}
	}
	if sawSingle && !sawDouble {
		return '"'
	}
	return '\''
}

func (u *Unparser) writeJoinedStr(n *ast.JoinedStr) error {
	quote := pickFStringQuote(n)
	u.buf.WriteByte('f')
	u.buf.WriteByte(quote)
	if err := u.writeFStringValues(n.Values, quote); err != nil {
		return err
	}
	u.buf.WriteByte(quote)
	return nil
}

func (u *Unparser) writeFStringValues(values []ast.Expr, quote byte) error {
	for _, v := range values {
		switch e := v.(type) {
		case *ast.Constant:
			text, _ := e.Value.(string)
			u.buf.WriteString(escapeFStringLiteral(text, quote))
		case *ast.FormattedValue:
			if err := u.writeFormattedValue(e, quote); err != nil {
				return err
			}
		default:
			return &InvalidASTError{Message: "JoinedStr.Values entries must be *Constant or *FormattedValue"}
		}
	}
	return nil
}

func (u *Unparser) writeFormattedValue(fv *ast.FormattedValue, quote byte) error {
	u.buf.WriteByte('{')
	if err := u.writeExprAt(fv.Value, ast.PrecTernary, true); err != nil {
		return err
	}
	if fv.Conversion != ast.ConvNone {
		u.buf.WriteByte('!')
		u.buf.WriteByte(byte(fv.Conversion))
	}
	if fv.FormatSpec != nil {
		spec, ok := fv.FormatSpec.(*ast.JoinedStr)
		if !ok {
			return &InvalidASTError{Message: "FormattedValue.FormatSpec must be a *JoinedStr"}
		}
		u.buf.WriteByte(':')
		if err := u.writeFStringValues(spec.Values, quote); err != nil {
			return err
		}
	}
	u.buf.WriteByte('}')
	return nil
}

// writeBareFormattedValue handles a FormattedValue encountered outside any
// enclosing JoinedStr (e.g. a tree built by hand rather than by the
// parser), by wrapping it in its own single-field f-string.
func (u *Unparser) writeBareFormattedValue(n *ast.FormattedValue) error {
	u.buf.WriteString("f'")
	if err := u.writeFormattedValue(n, '\''); err != nil {
		return err
	}
	u.buf.WriteByte('\'')
	return nil
}

func escapeFStringLiteral(text string, quote byte) string {
	var b strings.Builder
	for _, r := range text {
		switch r {
		case '{':
			b.WriteString("{{")
		case '}':
			b.WriteString("}}")
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case rune(quote):
			b.WriteByte('\\')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
