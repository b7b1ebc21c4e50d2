package pyast

import (
	"fmt"

	"pyast/ast"
	"pyast/parser"
)

// ValueError is returned by LiteralEval when it encounters a construct
// outside the restricted literal subset (Constant, Tuple, List, Dict,
// Set, a unary +/-/~ over a numeric Constant, a complex number built from
// +/- on numeric operands, and the Name spellings of True/False/None).
type ValueError struct {
	Message string
}

func (e *ValueError) Error() string { return fmt.Sprintf("ValueError: %s", e.Message) }

// LiteralEval recursively evaluates the restricted expression subset that
// `ast.literal_eval` supports. source may be either Python source text (a
// single expression) or an already-parsed ast.Expr.
func LiteralEval(sourceOrNode any) (any, error) {
	var node ast.Expr
	switch v := sourceOrNode.(type) {
	case string:
		expr, err := parser.ParseExpression(v, parser.DefaultOptions())
		if err != nil {
			return nil, err
		}
		node = expr.Body
	case ast.Expr:
		node = v
	default:
		return nil, &ValueError{Message: "literal_eval: expected source text or an ast.Expr"}
	}
	return evalLiteral(node)
}

func evalLiteral(e ast.Expr) (any, error) {
	switch n := e.(type) {
	case *ast.Constant:
		return n.Value, nil
	case *ast.Tuple:
		return evalLiteralSeq(n.Elts)
	case *ast.List:
		return evalLiteralSeq(n.Elts)
	case *ast.Set:
		elts, err := evalLiteralSeq(n.Elts)
		if err != nil {
			return nil, err
		}
		return buildSet(elts)
	case *ast.Dict:
		return evalLiteralDict(n)
	case *ast.UnaryOp:
		return evalLiteralUnary(n)
	case *ast.BinOp:
		return evalLiteralBinOp(n)
	case *ast.Name:
		switch n.Id {
		case "True":
			return true, nil
		case "False":
			return false, nil
		case "None":
			return nil, nil
		}
		return nil, &ValueError{Message: fmt.Sprintf("literal_eval: name %q is not a literal", n.Id)}
	default:
		return nil, &ValueError{Message: fmt.Sprintf("literal_eval: %T is not a literal", e)}
	}
}

func evalLiteralSeq(elts []ast.Expr) ([]any, error) {
	out := make([]any, 0, len(elts))
	for _, e := range elts {
		v, err := evalLiteral(e)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func evalLiteralDict(n *ast.Dict) (map[any]any, error) {
	out := make(map[any]any, len(n.Keys))
	for i, k := range n.Keys {
		if k == nil {
			return nil, &ValueError{Message: "literal_eval: dict unpacking (**) is not a literal"}
		}
		key, err := evalLiteral(k)
		if err != nil {
			return nil, err
		}
		val, err := evalLiteral(n.Values[i])
		if err != nil {
			return nil, err
		}
		out[key] = val
	}
	return out, nil
}

func evalLiteralUnary(n *ast.UnaryOp) (any, error) {
	operand, err := evalLiteral(n.Operand)
	if err != nil {
		return nil, err
	}
	switch n.Op {
	case ast.USub:
		return negateNumeric(operand)
	case ast.UAdd:
		if !isNumeric(operand) {
			return nil, &ValueError{Message: "literal_eval: unary + on a non-numeric value"}
		}
		return operand, nil
	case ast.Invert:
		if iv, ok := operand.(int64); ok {
			return ^iv, nil
		}
		return nil, &ValueError{Message: "literal_eval: ~ applies only to an int literal"}
	default:
		return nil, &ValueError{Message: "literal_eval: unary `not` is not a literal-eval operator"}
	}
}

func evalLiteralBinOp(n *ast.BinOp) (any, error) {
	if n.Op != ast.Add && n.Op != ast.Sub {
		return nil, &ValueError{Message: "literal_eval: only +/- combining a real and imaginary part are literals"}
	}
	left, err := evalLiteral(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := evalLiteral(n.Right)
	if err != nil {
		return nil, err
	}
	if !isNumeric(left) || !isNumeric(right) {
		return nil, &ValueError{Message: "literal_eval: +/- requires two numeric literals"}
	}
	lc, rc := toComplex(left), toComplex(right)
	var result complex128
	if n.Op == ast.Add {
		result = lc + rc
	} else {
		result = lc - rc
	}
	if imag(result) == 0 {
		if _, lok := left.(complex128); !lok {
			if _, rok := right.(complex128); !rok {
				return collapseReal(left, right, result), nil
			}
		}
	}
	return result, nil
}

// buildSet inserts elts into a Go map keyed on the literal values
// themselves, turning the "unhashable element" panic Go's map would raise
// for a slice/map key into the same ValueError an unhashable set element
// produces in Python.
func buildSet(elts []any) (set map[any]struct{}, err error) {
	defer func() {
		if r := recover(); r != nil {
			set, err = nil, &ValueError{Message: "literal_eval: unhashable element in set literal"}
		}
	}()
	set = make(map[any]struct{}, len(elts))
	for _, v := range elts {
		set[v] = struct{}{}
	}
	return set, nil
}

func isNumeric(v any) bool {
	switch v.(type) {
	case int64, float64, complex128:
		return true
	default:
		return false
	}
}

func toComplex(v any) complex128 {
	switch n := v.(type) {
	case int64:
		return complex(float64(n), 0)
	case float64:
		return complex(n, 0)
	case complex128:
		return n
	default:
		return 0
	}
}

// collapseReal keeps int+int results as an int64 instead of promoting
// every +/- literal to complex128/float64, matching Python's own int+int
// staying an int.
func collapseReal(left, right any, result complex128) any {
	_, lInt := left.(int64)
	_, rInt := right.(int64)
	if lInt && rInt {
		return int64(real(result))
	}
	return real(result)
}

func negateNumeric(v any) (any, error) {
	switch n := v.(type) {
	case int64:
		return -n, nil
	case float64:
		return -n, nil
	case complex128:
		return -n, nil
	default:
		return nil, &ValueError{Message: "literal_eval: unary - on a non-numeric value"}
	}
}
