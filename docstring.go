package pyast

import "pyast/ast"

// GetDocstring returns the docstring of node — the string value of its
// first statement when that statement is a bare expression-statement
// wrapping a string Constant — or "" if node has no body, an empty body,
// or a first statement that isn't a string literal. node must be a
// *ast.Module, *ast.FunctionDef, or *ast.ClassDef (AsyncFunctionDef is
// represented as a FunctionDef with IsAsync set, so it's covered by the
// same case).
func GetDocstring(node ast.Node) string {
	body := bodyOf(node)
	if len(body) == 0 {
		return ""
	}
	exprStmt, ok := body[0].(*ast.ExprStmt)
	if !ok {
		return ""
	}
	constant, ok := exprStmt.Value.(*ast.Constant)
	if !ok || constant.Kind != ast.ConstStr {
		return ""
	}
	s, _ := constant.Value.(string)
	return s
}

func bodyOf(node ast.Node) []ast.Stmt {
	switch n := node.(type) {
	case *ast.Module:
		return n.Body
	case *ast.FunctionDef:
		return n.Body
	case *ast.ClassDef:
		return n.Body
	case *ast.Interactive:
		return n.Body
	default:
		return nil
	}
}
