package ast

// BoolOp is a chain of `and`/`or` with no mixing: `a and b and c`.
type BoolOp struct {
	base
	Op     BoolOpKind
	Values []Expr
}

func (*BoolOp) exprNode() {}

// NamedExpr is the walrus operator: `target := value`.
type NamedExpr struct {
	base
	Target *Name
	Value  Expr
}

func (*NamedExpr) exprNode() {}

// BinOp is a binary arithmetic/bitwise expression: `left op right`.
type BinOp struct {
	base
	Left  Expr
	Op    Operator
	Right Expr
}

func (*BinOp) exprNode() {}

// UnaryOp is `op operand`: `-x`, `not x`, `~x`, `+x`.
type UnaryOp struct {
	base
	Op      UnaryOpKind
	Operand Expr
}

func (*UnaryOp) exprNode() {}

// Lambda is `lambda args: body`.
type Lambda struct {
	base
	Args *Arguments
	Body Expr
}

func (*Lambda) exprNode() {}

// IfExp is the conditional expression `body if test else orelse`.
type IfExp struct {
	base
	Test   Expr
	Body   Expr
	OrElse Expr
}

func (*IfExp) exprNode() {}

// Compare is a (possibly chained) comparison: `left op0 c0 op1 c1 ...`.
// Ops and Comparators run in parallel and have the same length.
type Compare struct {
	base
	Left        Expr
	Ops         []CmpOp
	Comparators []Expr
}

func (*Compare) exprNode() {}

// Call is `func(args..., kw=val..., *star, **dstar)`. Starred args and
// double-starred kwargs appear inline in Args/Keywords as *Starred
// expressions and Keywords with an empty Name respectively, matching
// CPython's own flattening.
type Call struct {
	base
	Func     Expr
	Args     []Expr
	Keywords []*Keyword
}

func (*Call) exprNode() {}

// Attribute is `value.attr`.
type Attribute struct {
	base
	Value Expr
	Attr  string
	Ctx   ExprContext
}

func (*Attribute) exprNode() {}

// Subscript is `value[slice]`.
type Subscript struct {
	base
	Value Expr
	Slice Expr
	Ctx   ExprContext
}

func (*Subscript) exprNode() {}

// Starred is `*value`, valid only inside a call's argument list, an
// assignment target list, or a sequence display.
type Starred struct {
	base
	Value Expr
	Ctx   ExprContext
}

func (*Starred) exprNode() {}

// Name is a bare identifier reference. Ctx records whether it is being
// loaded, stored to, or deleted; the parser retags a freshly-parsed Load
// Name to Store/Del once it sees the syntax that commits to that role.
type Name struct {
	base
	Id  string
	Ctx ExprContext
}

func (*Name) exprNode() {}

// ConstantKind tags the Go type held in Constant.Value so the unparser can
// format it without a type switch over interface{} at every call site.
type ConstantKind int

const (
	ConstNone ConstantKind = iota
	ConstBool
	ConstInt
	ConstFloat
	ConstComplex
	ConstStr
	ConstBytes
	ConstEllipsis
)

// Constant is a literal: a number, string, bytes literal, None/True/False,
// or `...`. Value holds the corresponding Go representation (int64 or
// *big.Int-style decimal string for ConstInt — see the comment on
// lexer.Token's Literal — float64 for ConstFloat, string for ConstStr, []byte for
// ConstBytes, bool for ConstBool); Kind disambiguates nil/None from a
// genuinely absent Value.
type Constant struct {
	base
	Kind  ConstantKind
	Value interface{}
	// Raw preserves the exact source text of a numeric literal (e.g.
	// "0x1F", "1_000", "1e10") since reformatting would silently change
	// its radix or grouping; the unparser emits Raw verbatim for numbers.
	Raw string
	// QuoteStyle is the origin hint for a ConstStr Constant: the exact
	// quote characters the source used ("'", `"`, `'''`, `"""`), empty if
	// the Constant was built by hand rather than by the parser. The
	// unparser reuses it instead of recomputing a quote style when set.
	QuoteStyle string
}

func (*Constant) exprNode() {}

// List is `[elts...]`.
type List struct {
	base
	Elts []Expr
	Ctx  ExprContext
}

func (*List) exprNode() {}

// Tuple is `elts...` or `(elts...)`.
type Tuple struct {
	base
	Elts []Expr
	Ctx  ExprContext
}

func (*Tuple) exprNode() {}

// Slice is one `lower:upper:step` component of a Subscript. Any of the
// three may be nil to mean "omitted".
type Slice struct {
	base
	Lower Expr
	Upper Expr
	Step  Expr
}

func (*Slice) exprNode() {}

// Yield is `yield value?`.
type Yield struct {
	base
	Value Expr // nil for a bare `yield`
}

func (*Yield) exprNode() {}

// YieldFrom is `yield from value`.
type YieldFrom struct {
	base
	Value Expr
}

func (*YieldFrom) exprNode() {}

// Await is `await value`.
type Await struct {
	base
	Value Expr
}

func (*Await) exprNode() {}
