package pyast

import (
	"pyast/ast"
	"pyast/parser"
)

// Options configures a parse. Filename is used only in diagnostics.
// Comments, when set, causes the lexer to emit COMMENT tokens instead of
// discarding them (the parser itself never looks at them; only a caller
// walking raw tokens would). FeatureVersion is accepted and ignored: the
// grammar this core implements has no version-gated features to select
// between. MaxTokens caps lexer output at a token count, after which
// parsing aborts with a ResourceError; zero means unlimited.
type Options struct {
	Filename       string
	Comments       bool
	FeatureVersion int
	MaxTokens      int
}

func (o Options) toParserOptions() parser.Options {
	opts := parser.DefaultOptions()
	opts.Filename = o.Filename
	opts.Comments = o.Comments
	opts.FeatureVersion = o.FeatureVersion
	opts.MaxTokens = o.MaxTokens
	return opts
}

// DefaultOptions returns the zero-value-safe Options a bare Parse call
// uses: filename "<unknown>", no comment tokens, no token cap.
func DefaultOptions() Options {
	o := Options{}
	opts := parser.DefaultOptions()
	o.Filename = opts.Filename
	return o
}

// Parse is the primary entry point: it lexes and parses source as a full
// module and returns its root. Options may be omitted (the zero value
// behaves like DefaultOptions except for an empty Filename).
func Parse(source string, options ...Options) (*ast.Module, error) {
	opts := resolveOptions(options)
	return parser.ParseModule(source, opts.toParserOptions())
}

// ParsePython is an alias of Parse.
func ParsePython(source string, options ...Options) (*ast.Module, error) {
	return Parse(source, options...)
}

// ParseModule is a legacy alias of Parse taking a bare filename instead of
// a full Options value.
func ParseModule(source string, filename ...string) (*ast.Module, error) {
	opts := DefaultOptions()
	if len(filename) > 0 {
		opts.Filename = filename[0]
	}
	return Parse(source, opts)
}

// ParseExpr parses source as a single expression (the "eval" grammar)
// rather than a full module.
func ParseExpr(source string, options ...Options) (*ast.Expression, error) {
	opts := resolveOptions(options)
	return parser.ParseExpression(source, opts.toParserOptions())
}

func resolveOptions(options []Options) Options {
	if len(options) > 0 {
		return options[0]
	}
	return DefaultOptions()
}
