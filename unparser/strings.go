package unparser

import (
	"fmt"
	"strconv"
	"strings"

	"pyast/ast"
)

func (u *Unparser) writeConstant(c *ast.Constant) error {
	switch c.Kind {
	case ast.ConstNone:
		u.buf.WriteString("None")
		return nil
	case ast.ConstBool:
		b, _ := c.Value.(bool)
		if b {
			u.buf.WriteString("True")
		} else {
			u.buf.WriteString("False")
		}
		return nil
	case ast.ConstEllipsis:
		u.buf.WriteString("...")
		return nil
	case ast.ConstInt, ast.ConstFloat, ast.ConstComplex:
		if c.Raw != "" {
			u.buf.WriteString(c.Raw)
			return nil
		}
		return u.writeNumericFallback(c)
	case ast.ConstStr:
		s, _ := c.Value.(string)
		u.buf.WriteString(quoteString(s, c.QuoteStyle))
		return nil
	case ast.ConstBytes:
		bs, _ := c.Value.([]byte)
		u.buf.WriteByte('b')
		u.buf.WriteString(quoteString(string(bs), c.QuoteStyle))
		return nil
	default:
		return &InvalidASTError{Message: fmt.Sprintf("unparse: unknown constant kind %v", c.Kind)}
	}
}

// writeNumericFallback formats a number that carries no Raw source text
// (e.g. a Constant built by hand rather than by the parser), using the
// shortest round-tripping representation for its Go type.
func (u *Unparser) writeNumericFallback(c *ast.Constant) error {
	switch v := c.Value.(type) {
	case int64:
		u.buf.WriteString(strconv.FormatInt(v, 10))
	case float64:
		u.buf.WriteString(formatPyFloat(v))
	case complex128:
		u.buf.WriteString(formatPyFloat(imag(v)))
		u.buf.WriteByte('j')
	case string:
		u.buf.WriteString(v)
	default:
		return &InvalidASTError{Message: fmt.Sprintf("unparse: unsupported numeric constant value %T", c.Value)}
	}
	return nil
}

func formatPyFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(s, ".eE") {
		s += ".0"
	}
	return s
}

// quoteString picks a quote style and escapes s for it. hint, when
// non-empty, is the exact quote text the parser originally saw
// (Constant.QuoteStyle) and is honored as-is so round-tripping a triple-
// quoted docstring doesn't collapse it to a single-line literal. Absent a
// hint, single quotes are preferred, falling back to double quotes when s
// contains a single quote but no double quote.
func quoteString(s, hint string) string {
	quote := hint
	if quote == "" {
		quote = "'"
		if strings.Contains(s, "'") && !strings.Contains(s, "\"") {
			quote = "\""
		}
	}
	var b strings.Builder
	b.WriteString(quote)
	triple := len(quote) == 3
	for _, r := range s {
		switch r {
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			if triple {
				b.WriteByte('\n')
			} else {
				b.WriteString(`\n`)
			}
		case '\r':
			b.WriteString(`\r`)
		case rune(quote[0]):
			if !triple {
				b.WriteByte('\\')
			}
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteString(quote)
	return b.String()
}
