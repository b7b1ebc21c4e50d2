// Package ast defines the typed syntax tree shared by the parser and the
// unparser. Nodes follow the ASDL shape published for Python's own ast
// module: tagged product types grouped into statements, expressions and a
// handful of supporting records (arguments, comprehensions, patterns).
//
// Node shapes are plain data — no behavior lives here beyond span bookkeeping
// and the small amount of reflection-driven introspection (Fields) that
// backs walk/dump. Parsing and formatting are the concern of the parser and
// unparser packages respectively.
package ast

import "fmt"

// Pos is a single source location. Line is 1-based, Col is a 0-based UTF-8
// code point offset within the line — the same convention CPython uses for
// lineno/col_offset.
type Pos struct {
	Line, Col int
}

func (p Pos) String() string { return fmt.Sprintf("%d:%d", p.Line, p.Col) }

// Less reports whether p sorts strictly before q.
func (p Pos) Less(q Pos) bool {
	if p.Line != q.Line {
		return p.Line < q.Line
	}
	return p.Col < q.Col
}

// Span is the [Start, End) source range covered by a node. A zero Span
// means the node carries no location (e.g. a node built by hand rather than
// by the parser).
type Span struct {
	Start, End Pos
}

func (s Span) String() string { return fmt.Sprintf("%s-%s", s.Start, s.End) }

// Node is satisfied by every element of the tree: statements, expressions,
// and the supporting record types (Arguments, Arg, Keyword, ...).
type Node interface {
	Span() Span
}

// Stmt is satisfied only by statement nodes.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is satisfied only by expression nodes.
type Expr interface {
	Node
	exprNode()
}

// base carries the common location field embedded by every concrete node.
// It exists purely to avoid repeating `Loc Span` and its accessor on each
// of the ~60 node types.
type base struct {
	Loc Span
}

func (b base) Span() Span { return b.Loc }

// SetSpan is called by the parser once a production has consumed its
// last token, to fill in the node's location. Nodes built by hand (e.g.
// in tests, or by a tree transformer) may leave it zero.
func (b *base) SetSpan(s Span) { b.Loc = s }

// ExprContext tags a Name (and transitively Tuple/List/Starred/Attribute/
// Subscript used as assignment targets) with how it is being used.
type ExprContext int

const (
	Load ExprContext = iota
	Store
	Del
)

func (c ExprContext) String() string {
	switch c {
	case Load:
		return "Load"
	case Store:
		return "Store"
	case Del:
		return "Del"
	default:
		return "Load"
	}
}

// BoolOpKind distinguishes `and`/`or` inside a BoolOp node.
type BoolOpKind int

const (
	And BoolOpKind = iota
	Or
)

func (k BoolOpKind) String() string {
	if k == And {
		return "And"
	}
	return "Or"
}

// Operator enumerates the binary arithmetic/bitwise operators usable in
// BinOp and AugAssign.
type Operator int

const (
	Add Operator = iota
	Sub
	Mult
	MatMult
	Div
	Mod
	Pow
	LShift
	RShift
	BitOr
	BitXor
	BitAnd
	FloorDiv
)

var operatorSymbols = [...]string{
	Add: "+", Sub: "-", Mult: "*", MatMult: "@", Div: "/", Mod: "%", Pow: "**",
	LShift: "<<", RShift: ">>", BitOr: "|", BitXor: "^", BitAnd: "&", FloorDiv: "//",
}

func (o Operator) String() string { return operatorSymbols[o] }

// UnaryOpKind enumerates the four unary expression operators.
type UnaryOpKind int

const (
	Invert UnaryOpKind = iota
	Not
	UAdd
	USub
)

var unarySymbols = [...]string{Invert: "~", Not: "not ", UAdd: "+", USub: "-"}

func (o UnaryOpKind) String() string { return unarySymbols[o] }

// CmpOp enumerates the comparison operators usable inside a Compare chain.
type CmpOp int

const (
	Eq CmpOp = iota
	NotEq
	Lt
	LtE
	Gt
	GtE
	Is
	IsNot
	In
	NotIn
)

var cmpSymbols = [...]string{
	Eq: "==", NotEq: "!=", Lt: "<", LtE: "<=", Gt: ">", GtE: ">=",
	Is: "is", IsNot: "is not", In: "in", NotIn: "not in",
}

func (o CmpOp) String() string { return cmpSymbols[o] }
