// Package parser implements a recursive-descent parser over the token
// stream produced by the lexer package, building the typed tree defined
// in the ast package. Expression parsing is a cascade of methods, one per
// precedence level, ordered like the ast.Precedence table; the parser does
// not read that table (only the unparser does). Statement parsing follows
// the grammar shape directly, one production per method.
package parser

import (
	"fmt"

	"pyast/ast"
	"pyast/lexer"
)

// Options configures a single parse. FeatureVersion is accepted and
// ignored, per the core's open question about gating grammar features on
// a Python minor version: no such gating is implemented.
type Options struct {
	Filename       string
	Comments       bool
	FeatureVersion int
	MaxTokens      int // 0 means unlimited
}

func DefaultOptions() Options {
	return Options{Filename: "<unknown>"}
}

// Parser holds the token stream and accumulated state for one parse. It
// never recovers from an error: the first one found is returned to the
// caller and parsing stops.
type Parser struct {
	tokens  []lexer.Token
	current int
	opts    Options
}

// NewParser builds a Parser over an already-scanned token stream.
func NewParser(tokens []lexer.Token, opts Options) *Parser {
	return &Parser{tokens: tokens, opts: opts}
}

// ParseModule scans and parses source as a full module, the primary entry
// point backing the package-level Parse/ParsePython functions.
func ParseModule(source string, opts Options) (*ast.Module, error) {
	sc := lexer.NewScannerWithConfig(source, lexer.Config{StartLine: 1, Comments: opts.Comments})
	tokens := sc.ScanTokens()
	if len(sc.Errors) > 0 {
		e := sc.Errors[0]
		return nil, &SyntaxError{
			Message:  e.Message,
			Filename: opts.Filename,
			Line:     e.Line,
			Column:   e.Column,
			Indent:   e.Indentation,
		}
	}
	if opts.MaxTokens > 0 && len(tokens) > opts.MaxTokens {
		return nil, &ResourceError{Limit: opts.MaxTokens, Filename: opts.Filename}
	}
	if opts.Comments {
		// Comment tokens are not part of the grammar; drop them here.
		kept := tokens[:0]
		for _, t := range tokens {
			if t.Type != lexer.Comment {
				kept = append(kept, t)
			}
		}
		tokens = kept
	}

	p := NewParser(tokens, opts)
	return p.parseModule()
}

// ParseExpression parses source as a single "eval"-grammar expression,
// returning an *ast.Expression root — a trivial specialization of the
// module grammar per the core's non-goals.
func ParseExpression(source string, opts Options) (*ast.Expression, error) {
	sc := lexer.NewScannerWithConfig(source, lexer.Config{StartLine: 1})
	tokens := sc.ScanTokens()
	if len(sc.Errors) > 0 {
		e := sc.Errors[0]
		return nil, &SyntaxError{Message: e.Message, Filename: opts.Filename, Line: e.Line, Column: e.Column, Indent: e.Indentation}
	}
	if opts.MaxTokens > 0 && len(tokens) > opts.MaxTokens {
		return nil, &ResourceError{Limit: opts.MaxTokens, Filename: opts.Filename}
	}
	p := NewParser(tokens, opts)
	start := p.peek()
	expr, err := p.expr()
	if err != nil {
		return nil, err
	}
	for p.check(lexer.Newline) {
		p.advance()
	}
	if !p.check(lexer.EOF) {
		return nil, p.errorf("unexpected trailing input after expression")
	}
	e := &ast.Expression{Body: expr}
	e.SetSpan(p.spanFrom(start))
	return e, nil
}

func (p *Parser) parseModule() (*ast.Module, error) {
	start := p.peek()
	var body []ast.Stmt
	for !p.check(lexer.EOF) {
		for p.check(lexer.Newline) {
			p.advance()
		}
		if p.check(lexer.EOF) {
			break
		}
		stmt, err := p.statement()
		if err != nil {
			return nil, err
		}
		body = append(body, stmt...)
	}
	mod := &ast.Module{Body: body}
	mod.SetSpan(p.spanFrom(start))
	return mod, nil
}

func (p *Parser) spanFrom(start lexer.Token) ast.Span {
	end := p.previous()
	return ast.Span{
		Start: ast.Pos{Line: start.Span.Start.Line, Col: start.Span.Start.Column},
		End:   ast.Pos{Line: end.Span.End.Line, Col: end.Span.End.Column},
	}
}

func (p *Parser) spanBetween(start, end lexer.Token) ast.Span {
	return ast.Span{
		Start: ast.Pos{Line: start.Span.Start.Line, Col: start.Span.Start.Column},
		End:   ast.Pos{Line: end.Span.End.Line, Col: end.Span.End.Column},
	}
}

func (p *Parser) errorf(format string, args ...any) error {
	tok := p.peek()
	msg := fmt.Sprintf(format, args...)
	return &SyntaxError{
		Message:  msg,
		Filename: p.opts.Filename,
		Line:     tok.Span.Start.Line,
		Column:   tok.Span.Start.Column,
		Text:     tok.Lexeme,
	}
}
