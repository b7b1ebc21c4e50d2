package ast

// Module is the root of a parsed program: `parse(source)` returns one of
// these. TypeIgnores holds source line numbers of `# type: ignore`
// comments; the parser never fills it, so it is nil on every parsed
// Module.
type Module struct {
	base
	Body        []Stmt
	TypeIgnores []int
}

func (*Module) stmtNode() {}

// Expression wraps a single expression, the root produced when a caller
// asks to parse the "eval" grammar (see ParseExpr).
type Expression struct {
	base
	Body Expr
}

func (*Expression) stmtNode() {}

// Interactive wraps a sequence of statements, the root produced when a
// caller asks to parse the "interactive" grammar — a trivial specialization
// of Module with no distinct semantics in this core.
type Interactive struct {
	base
	Body []Stmt
}

func (*Interactive) stmtNode() {}
