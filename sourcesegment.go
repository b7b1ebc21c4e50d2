package pyast

import (
	"strings"

	"pyast/ast"
)

// GetSourceSegment slices source using node's location attributes and
// returns the exact text it was parsed from, or "", false if node carries
// no location or its span falls outside source (e.g. source was edited
// after parsing). When padded is true, the first line of a multi-line
// segment is prefixed with spaces up to its starting column, so the
// result can be re-parsed on its own with the same column offsets it had
// in the original source.
func GetSourceSegment(source string, node ast.Node, padded ...bool) (string, bool) {
	pad := len(padded) > 0 && padded[0]
	span := node.Span()
	if span.Start.Line == 0 && span.End.Line == 0 {
		return "", false
	}
	lines := strings.Split(source, "\n")
	sl, sc := span.Start.Line, span.Start.Col
	el, ec := span.End.Line, span.End.Col
	if sl < 1 || el < sl || el > len(lines) {
		return "", false
	}

	if sl == el {
		runes := []rune(lines[sl-1])
		if sc < 0 || ec > len(runes) || sc > ec {
			return "", false
		}
		return string(runes[sc:ec]), true
	}

	first := []rune(lines[sl-1])
	last := []rune(lines[el-1])
	if sc < 0 || sc > len(first) || ec < 0 || ec > len(last) {
		return "", false
	}

	var b strings.Builder
	if pad {
		b.WriteString(strings.Repeat(" ", sc))
	}
	b.WriteString(string(first[sc:]))
	for i := sl; i < el-1; i++ {
		b.WriteByte('\n')
		b.WriteString(lines[i])
	}
	b.WriteByte('\n')
	b.WriteString(string(last[:ec]))
	return b.String(), true
}
