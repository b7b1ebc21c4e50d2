package ast

// JoinedStr is an f-string: a sequence of literal Constant(ConstStr)
// pieces interleaved with FormattedValue substitutions, in source order.
type JoinedStr struct {
	base
	Values []Expr // each is *Constant (ConstStr) or *FormattedValue
}

func (*JoinedStr) exprNode() {}

// ConversionKind is the `!s`/`!r`/`!a` conversion flag on an f-string
// replacement field.
type ConversionKind int

const (
	ConvNone  ConversionKind = -1
	ConvStr   ConversionKind = 's'
	ConvRepr  ConversionKind = 'r'
	ConvAscii ConversionKind = 'a'
)

// FormattedValue is one `{expr!conv:format_spec}` replacement field
// inside a JoinedStr. FormatSpec is itself a *JoinedStr (format specs can
// contain nested replacement fields, e.g. `{x:{width}}`), nil if absent.
type FormattedValue struct {
	base
	Value      Expr
	Conversion ConversionKind
	FormatSpec Expr // nil, or *JoinedStr
}

func (*FormattedValue) exprNode() {}
