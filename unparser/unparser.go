// Package unparser turns a pyast/ast tree back into Python source text. It
// walks the tree with a type switch rather than a visitor pattern (the ast
// package defines none) — nodes are plain tagged data, so dispatch is a switch, not a
// double-dispatch Accept/Visit pair (see the root package's design notes).
package unparser

import (
	"strings"

	"pyast/ast"
)

// Options configures one unparse call.
type Options struct {
	// Indent is the string used for one level of block indentation.
	Indent string
}

func DefaultOptions() Options {
	return Options{Indent: "    "}
}

// Unparser accumulates formatted source in a single pass over the tree.
type Unparser struct {
	buf    strings.Builder
	level  int
	indent string
}

func newUnparser(opts Options) *Unparser {
	if opts.Indent == "" {
		opts.Indent = "    "
	}
	return &Unparser{indent: opts.Indent}
}

// Unparse formats node (a Module, Stmt, or Expr) as Python source.
func Unparse(node ast.Node, opts Options) (string, error) {
	u := newUnparser(opts)
	switch n := node.(type) {
	case *ast.Module:
		if err := u.writeStmts(n.Body); err != nil {
			return "", err
		}
	case *ast.Interactive:
		if err := u.writeStmts(n.Body); err != nil {
			return "", err
		}
	case *ast.Expression:
		if err := u.writeExpr(n.Body); err != nil {
			return "", err
		}
	case ast.Stmt:
		if err := u.writeStmt(n); err != nil {
			return "", err
		}
	case ast.Expr:
		if err := u.writeExpr(n); err != nil {
			return "", err
		}
	default:
		return "", &InvalidASTError{Message: "unparse: unsupported root node"}
	}
	return u.buf.String(), nil
}

// ToSource is an alias for Unparse kept for call-site parity with the
// package's parse/parsePython naming convention.
func ToSource(node ast.Node, opts Options) (string, error) {
	return Unparse(node, opts)
}

func (u *Unparser) writeIndent() {
	u.buf.WriteString(strings.Repeat(u.indent, u.level))
}

func (u *Unparser) writeLine(s string) {
	u.writeIndent()
	u.buf.WriteString(s)
	u.buf.WriteByte('\n')
}

func (u *Unparser) writeStmts(stmts []ast.Stmt) error {
	if len(stmts) == 0 {
		u.writeLine("pass")
		return nil
	}
	for _, s := range stmts {
		if err := u.writeStmt(s); err != nil {
			return err
		}
	}
	return nil
}

func (u *Unparser) writeSuite(stmts []ast.Stmt) error {
	u.level++
	err := u.writeStmts(stmts)
	u.level--
	return err
}

func (u *Unparser) writeDecorators(decorators []ast.Expr) error {
	for _, d := range decorators {
		u.writeIndent()
		u.buf.WriteByte('@')
		if err := u.writeExpr(d); err != nil {
			return err
		}
		u.buf.WriteByte('\n')
	}
	return nil
}

func (u *Unparser) writeBlockHeader(header string) {
	u.writeIndent()
	u.buf.WriteString(header)
	u.buf.WriteString(":\n")
}
