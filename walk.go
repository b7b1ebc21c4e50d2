package pyast

import (
	"iter"
	"reflect"

	"pyast/ast"
)

// Walk returns a lazy pre-order traversal of node and every node reachable
// from it: node itself first, then each child's own Walk, depth-first, in
// field declaration order. The sequence stops early if the consumer's
// range breaks.
func Walk(node any) iter.Seq[any] {
	return func(yield func(any) bool) {
		walk(node, yield)
	}
}

func walk(node any, yield func(any) bool) bool {
	if node == nil || !isNodeValue(node) {
		return true
	}
	if !yield(node) {
		return false
	}
	for _, f := range ast.Fields(node) {
		if !walkValue(f.Value, yield) {
			return false
		}
	}
	return true
}

func walkValue(v any, yield func(any) bool) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice {
		for i := 0; i < rv.Len(); i++ {
			if !walkValue(rv.Index(i).Interface(), yield) {
				return false
			}
		}
		return true
	}
	if !isNodeValue(v) {
		return true
	}
	return walk(v, yield)
}

// IterChildNodes returns a lazy traversal of node's immediate children
// only (no grandchildren), in field declaration order.
func IterChildNodes(node any) iter.Seq[any] {
	return func(yield func(any) bool) {
		for _, f := range ast.Fields(node) {
			if !yieldChildren(f.Value, yield) {
				return
			}
		}
	}
}

func yieldChildren(v any, yield func(any) bool) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice {
		for i := 0; i < rv.Len(); i++ {
			if !yieldChildren(rv.Index(i).Interface(), yield) {
				return false
			}
		}
		return true
	}
	if !isNodeValue(v) {
		return true
	}
	return yield(v)
}

// IterFields returns node's declared fields, in declaration order, each
// paired with its raw value (a child node, a slice of children, or a
// scalar). It mirrors CPython's ast.iter_fields.
func IterFields(node any) iter.Seq2[string, any] {
	return func(yield func(string, any) bool) {
		for _, f := range ast.Fields(node) {
			if !yield(f.Name, f.Value) {
				return
			}
		}
	}
}

// isNodeValue reports whether v is itself an AST node (as opposed to a
// plain scalar like a string, int, or operator constant): either it
// implements ast.Node, or it's one of the handful of supporting records
// that carry no span of their own.
func isNodeValue(v any) bool {
	if v == nil {
		return false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return false
		}
	}
	switch v.(type) {
	case ast.Node:
		return true
	case *ast.Arguments, *ast.Comprehension, *ast.WithItem, *ast.MatchCase:
		return true
	default:
		return false
	}
}

// IsASTNode is a structural type guard: v is an AST node if it (or its
// dereferenced pointee) is one of the node kinds this package produces.
func IsASTNode(v any) bool {
	return isNodeValue(v)
}
