package pyast

import (
	"pyast/ast"
	"pyast/unparser"
)

// UnparseOptions configures Unparse/ToSource. Indent is the string used
// for one level of block indentation, default four spaces.
type UnparseOptions struct {
	Indent string
}

// DefaultUnparseOptions returns the default formatting options.
func DefaultUnparseOptions() UnparseOptions {
	return UnparseOptions{Indent: unparser.DefaultOptions().Indent}
}

// Unparse formats node (a Module, a Stmt, or an Expr) as Python source.
// It is total over well-formed ASTs; an ill-formed tree (e.g. a Compare
// whose Ops and Comparators lengths disagree) returns an error rather
// than panicking.
func Unparse(node ast.Node, options ...UnparseOptions) (string, error) {
	opts := unparser.DefaultOptions()
	if len(options) > 0 && options[0].Indent != "" {
		opts.Indent = options[0].Indent
	}
	return unparser.Unparse(node, opts)
}

// ToSource is an alias of Unparse taking a bare indent string.
func ToSource(node ast.Node, indent ...string) (string, error) {
	opts := DefaultUnparseOptions()
	if len(indent) > 0 && indent[0] != "" {
		opts.Indent = indent[0]
	}
	return Unparse(node, opts)
}
