// Package pyast is the public surface of a bidirectional Python-source/AST
// converter: parse turns source text into a typed tree (package ast),
// unparse turns that tree back into source, and the introspection helpers
// below (Walk, IterFields, Dump, ...) let callers inspect a tree without
// writing their own traversal.
//
// The three hard subsystems — lexer, parser, unparser — live in their own
// packages and can be used directly; this package only wires them behind
// the handful of free functions a caller reaches for first.
package pyast
