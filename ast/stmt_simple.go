package ast

// ExprStmt wraps an expression used as a statement (a bare call, a
// docstring, ...).
type ExprStmt struct {
	base
	Value Expr
}

func (*ExprStmt) stmtNode() {}

// Assign is `targets = value`. Targets has length >= 1; chained assignment
// (`a = b = value`) produces multiple targets.
type Assign struct {
	base
	Targets []Expr
	Value   Expr
}

func (*Assign) stmtNode() {}

// AugAssign is `target op= value`, e.g. `x += 1`.
type AugAssign struct {
	base
	Target Expr
	Op     Operator
	Value  Expr
}

func (*AugAssign) stmtNode() {}

// AnnAssign is an annotated assignment: `target: annotation (= value)?`.
// Value is nil for a bare annotation with no initializer. Simple reports
// whether Target is a Name, after CPython's `simple` field (it affects
// whether the annotation is evaluated at class scope vs. stored
// unevaluated). The parser also sets it for a parenthesized name such as
// `(x): int`, which CPython does not.
type AnnAssign struct {
	base
	Target     Expr
	Annotation Expr
	Value      Expr
	Simple     bool
}

func (*AnnAssign) stmtNode() {}

// Return is `return value?`.
type Return struct {
	base
	Value Expr // nil for a bare `return`
}

func (*Return) stmtNode() {}

// Delete is `del targets...`.
type Delete struct {
	base
	Targets []Expr
}

func (*Delete) stmtNode() {}

// Pass is the `pass` statement.
type Pass struct{ base }

func (*Pass) stmtNode() {}

// Break is the `break` statement.
type Break struct{ base }

func (*Break) stmtNode() {}

// Continue is the `continue` statement.
type Continue struct{ base }

func (*Continue) stmtNode() {}

// Global is `global names...`.
type Global struct {
	base
	Names []string
}

func (*Global) stmtNode() {}

// Nonlocal is `nonlocal names...`.
type Nonlocal struct {
	base
	Names []string
}

func (*Nonlocal) stmtNode() {}

// Assert is `assert test, msg?`.
type Assert struct {
	base
	Test Expr
	Msg  Expr // nil if absent
}

func (*Assert) stmtNode() {}

// Raise is `raise exc? (from cause)?`.
type Raise struct {
	base
	Exc   Expr // nil for a bare re-raise
	Cause Expr // nil unless `from` is present
}

func (*Raise) stmtNode() {}

// Alias is one entry of an import list: `name as asname?`.
type Alias struct {
	base
	Name   string
	AsName string // "" if absent
}

// Import is `import names...`, each possibly dotted and possibly aliased.
type Import struct {
	base
	Names []*Alias
}

func (*Import) stmtNode() {}

// ImportFrom is `from (dots)? module? import names|*`.
// Module is "" for a purely-relative import (`from . import x`).
type ImportFrom struct {
	base
	Module string
	Names  []*Alias // nil for `import *`
	Level  int      // number of leading dots
}

func (*ImportFrom) stmtNode() {}
