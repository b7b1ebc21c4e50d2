package pyast

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"pyast/ast"
)

// DumpOptions configures Dump.
type DumpOptions struct {
	// AnnotateFields prefixes each value with "name=" (default true);
	// turning it off yields positional-looking output.
	AnnotateFields bool
	// IncludeAttributes adds each node's location attributes
	// (lineno=.., col_offset=.., end_lineno=.., end_col_offset=..).
	IncludeAttributes bool
	// Indent, when non-nil, switches to a multi-line rendering: an int
	// is a space count per level, a string is used verbatim per level.
	Indent any
	// ShowEmpty includes fields whose value is nil or an empty slice
	// (omitted by default, matching ast.dump's default).
	ShowEmpty bool
}

// DefaultDumpOptions returns AnnotateFields: true and everything else at
// its zero value (single-line, no attributes, empty fields hidden).
func DefaultDumpOptions() DumpOptions {
	return DumpOptions{AnnotateFields: true}
}

// Dump renders node as `NodeKind(field=value, ...)`, recursively, the way
// CPython's ast.dump renders a tree for debugging and test fixtures.
func Dump(node any, options ...DumpOptions) string {
	opts := DefaultDumpOptions()
	if len(options) > 0 {
		opts = options[0]
	}
	d := &dumper{opts: opts, indentUnit: indentUnitOf(opts.Indent)}
	var b strings.Builder
	d.value(&b, node, 0)
	return b.String()
}

type dumper struct {
	opts       DumpOptions
	indentUnit string
}

func indentUnitOf(indent any) string {
	switch v := indent.(type) {
	case nil:
		return ""
	case int:
		return strings.Repeat(" ", v)
	case string:
		return v
	default:
		return ""
	}
}

func (d *dumper) multiline() bool { return d.indentUnit != "" }

func (d *dumper) newline(b *strings.Builder, depth int) {
	if !d.multiline() {
		return
	}
	b.WriteByte('\n')
	b.WriteString(strings.Repeat(d.indentUnit, depth))
}

func (d *dumper) value(b *strings.Builder, v any, depth int) {
	if v == nil {
		b.WriteString("None")
		return
	}
	if isNodeValue(v) {
		d.node(b, v, depth)
		return
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Slice {
		d.list(b, rv, depth)
		return
	}
	b.WriteString(scalarRepr(v))
}

func (d *dumper) list(b *strings.Builder, rv reflect.Value, depth int) {
	b.WriteByte('[')
	n := rv.Len()
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(',')
			if !d.multiline() {
				b.WriteByte(' ')
			}
		}
		d.newline(b, depth+1)
		d.value(b, rv.Index(i).Interface(), depth+1)
	}
	if n > 0 {
		d.newline(b, depth)
	}
	b.WriteByte(']')
}

func (d *dumper) node(b *strings.Builder, v any, depth int) {
	b.WriteString(nodeKindName(v))
	b.WriteByte('(')
	fields := ast.Fields(v)
	wrote := false
	for _, f := range fields {
		if !d.opts.ShowEmpty && isEmptyDumpValue(f.Value) {
			continue
		}
		if wrote {
			b.WriteByte(',')
			if !d.multiline() {
				b.WriteByte(' ')
			}
		}
		d.newline(b, depth+1)
		if d.opts.AnnotateFields {
			b.WriteString(f.Name)
			b.WriteByte('=')
		}
		d.value(b, f.Value, depth+1)
		wrote = true
	}
	if d.opts.IncludeAttributes {
		if node, ok := v.(ast.Node); ok {
			span := node.Span()
			for _, attr := range []struct {
				name string
				val  int
			}{
				{"lineno", span.Start.Line},
				{"col_offset", span.Start.Col},
				{"end_lineno", span.End.Line},
				{"end_col_offset", span.End.Col},
			} {
				if wrote {
					b.WriteByte(',')
					if !d.multiline() {
						b.WriteByte(' ')
					}
				}
				d.newline(b, depth+1)
				b.WriteString(attr.name)
				b.WriteByte('=')
				b.WriteString(strconv.Itoa(attr.val))
				wrote = true
			}
		}
	}
	if wrote {
		d.newline(b, depth)
	}
	b.WriteByte(')')
}

func isEmptyDumpValue(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.Ptr && rv.IsNil() {
		return true
	}
	if rv.Kind() == reflect.Slice && rv.Len() == 0 {
		return true
	}
	return false
}

func nodeKindName(v any) string {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

func scalarRepr(v any) string {
	switch x := v.(type) {
	case string:
		return strconv.Quote(x)
	case []byte:
		return fmt.Sprintf("b%s", strconv.Quote(string(x)))
	case bool:
		if x {
			return "True"
		}
		return "False"
	case int:
		return strconv.Itoa(x)
	case int64:
		return strconv.FormatInt(x, 10)
	case float64:
		return strconv.FormatFloat(x, 'g', -1, 64)
	case complex128:
		return fmt.Sprintf("%gj", imag(x))
	case fmt.Stringer:
		return x.String()
	default:
		return fmt.Sprintf("%v", x)
	}
}
