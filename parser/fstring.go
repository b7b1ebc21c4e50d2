package parser

import (
	"pyast/ast"
	"pyast/lexer"
)

// fstringAtom builds a JoinedStr from the FSTRING_START/MIDDLE/END token
// run the lexer produced, re-entering the ordinary expression grammar for
// each `{...}` replacement field — the parser-side half of the "reuse the
// lexer and parser recursively" design note; the tokens for a field's
// expression are already ordinary tokens sitting in the stream, so no
// actual re-invocation of the scanner is needed here, only of p.expr.
func (p *Parser) fstringAtom(start lexer.Token) (ast.Expr, error) {
	p.advance() // FStringStart

	var values []ast.Expr
	for !p.check(lexer.FStringEnd) {
		switch {
		case p.check(lexer.FStringMiddle):
			tok := p.advance()
			text, _ := tok.Literal.(string)
			if text != "" {
				c := &ast.Constant{Kind: ast.ConstStr, Value: text}
				c.SetSpan(p.spanBetween(tok, tok))
				values = appendFStringPiece(values, c)
			}
		case p.check(lexer.LeftBrace):
			fv, err := p.formattedValue()
			if err != nil {
				return nil, err
			}
			values = append(values, fv)
		default:
			return nil, p.errorf("malformed f-string: unexpected %s", p.peek().Type)
		}
	}
	end := p.advance() // FStringEnd

	j := &ast.JoinedStr{Values: values}
	j.SetSpan(p.spanBetween(start, end))
	return j, nil
}

// appendFStringPiece enforces the invariant that JoinedStr.values never
// holds two adjacent Constant string pieces: if the last entry is itself
// a plain string Constant, next's text is folded into it instead of
// appending a second entry.
func appendFStringPiece(values []ast.Expr, next *ast.Constant) []ast.Expr {
	if len(values) > 0 {
		if prev, ok := values[len(values)-1].(*ast.Constant); ok && prev.Kind == ast.ConstStr {
			prev.Value = prev.Value.(string) + next.Value.(string)
			return values
		}
	}
	return append(values, next)
}

func (p *Parser) formattedValue() (*ast.FormattedValue, error) {
	start := p.advance() // LeftBrace
	value, err := p.expr()
	if err != nil {
		return nil, err
	}

	conv := ast.ConvNone
	if tok := p.peek(); tok.Type == lexer.Identifier {
		if s, ok := tok.Literal.(string); ok && len(s) == 2 && s[0] == '!' {
			p.advance()
			conv = ast.ConversionKind(s[1])
		}
	}

	var formatSpec ast.Expr
	if p.match(lexer.Colon) {
		fs, err := p.formatSpecJoinedStr()
		if err != nil {
			return nil, err
		}
		formatSpec = fs
	}

	end, err := p.consume(lexer.RightBrace, "expected '}' to close replacement field")
	if err != nil {
		return nil, err
	}

	fv := &ast.FormattedValue{Value: value, Conversion: conv, FormatSpec: formatSpec}
	fv.SetSpan(p.spanBetween(start, end))
	return fv, nil
}

// formatSpecJoinedStr parses the `spec` portion of a replacement field,
// which is itself f-string-shaped: literal runs interleaved with further
// `{...}` substitutions (e.g. `{x:{width}.{precision}}`).
func (p *Parser) formatSpecJoinedStr() (ast.Expr, error) {
	start := p.peek()
	var values []ast.Expr
	for !p.check(lexer.RightBrace) {
		switch {
		case p.check(lexer.FStringMiddle):
			tok := p.advance()
			text, _ := tok.Literal.(string)
			c := &ast.Constant{Kind: ast.ConstStr, Value: text}
			c.SetSpan(p.spanBetween(tok, tok))
			values = appendFStringPiece(values, c)
		case p.check(lexer.LeftBrace):
			fv, err := p.formattedValue()
			if err != nil {
				return nil, err
			}
			values = append(values, fv)
		default:
			return nil, p.errorf("malformed format spec: unexpected %s", p.peek().Type)
		}
	}
	j := &ast.JoinedStr{Values: values}
	j.SetSpan(p.spanFrom(start))
	return j, nil
}
