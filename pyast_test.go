package pyast

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pyast/ast"
)

// dumpShape renders node ignoring location attributes (IncludeAttributes
// is off by default), so two trees that differ only in span compare
// equal: exactly the fixed point the round-trip law asks for.
func dumpShape(node any) string {
	return Dump(node, DumpOptions{AnnotateFields: true, ShowEmpty: true})
}

func TestParseUnparseRoundTrip(t *testing.T) {
	sources := []string{
		"x = 42\n",
		"-2**2\n",
		"a < b < c\n",
		"def f(a, /, b, *, c=1, **kw):\n    pass\n",
		"[x**2 for x in range(10) if x % 2 == 0]\n",
	}
	for _, src := range sources {
		mod, err := Parse(src)
		require.NoError(t, err, src)

		out, err := Unparse(mod)
		require.NoError(t, err, src)

		reparsed, err := Parse(out)
		require.NoError(t, err, "reparsing unparsed output of %q:\n%s", src, out)

		want, got := dumpShape(mod), dumpShape(reparsed)
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("parse(unparse(parse(%q))) != parse(%q) (-want +got):\n%s", src, src, diff)
		}
	}
}

func TestParseEmptyModule(t *testing.T) {
	mod, err := Parse("")
	require.NoError(t, err)
	assert.Empty(t, mod.Body)
}

func TestParseAliasesAgree(t *testing.T) {
	src := "x = 1\n"
	a, err := Parse(src)
	require.NoError(t, err)
	b, err := ParsePython(src)
	require.NoError(t, err)
	c, err := ParseModule(src)
	require.NoError(t, err)

	assert.Equal(t, Dump(a), Dump(b))
	assert.Equal(t, Dump(a), Dump(c))
}

func TestWalkVisitsEveryNode(t *testing.T) {
	mod, err := Parse("x = 1 + 2\n")
	require.NoError(t, err)

	var kinds []string
	for n := range Walk(mod) {
		kinds = append(kinds, nodeKindName(n))
	}
	assert.Equal(t, []string{"Module", "Assign", "Name", "BinOp", "Constant", "Constant"}, kinds)
}

func TestIterChildNodesIsShallow(t *testing.T) {
	mod, err := Parse("x = 1 + 2\n")
	require.NoError(t, err)

	var kinds []string
	for n := range IterChildNodes(mod) {
		kinds = append(kinds, nodeKindName(n))
	}
	assert.Equal(t, []string{"Assign"}, kinds)
}

func TestIterFieldsEnumeratesDeclaredFields(t *testing.T) {
	mod, err := Parse("x = 1\n")
	require.NoError(t, err)
	assign := mod.Body[0]

	var names []string
	for name := range IterFields(assign) {
		names = append(names, name)
	}
	assert.Equal(t, []string{"Targets", "Value"}, names)
}

func TestGetDocstring(t *testing.T) {
	mod, err := Parse("\"\"\"hello\"\"\"\nx = 1\n")
	require.NoError(t, err)
	assert.Equal(t, "hello", GetDocstring(mod))

	mod2, err := Parse("x = 1\n")
	require.NoError(t, err)
	assert.Equal(t, "", GetDocstring(mod2))
}

func TestGetSourceSegment(t *testing.T) {
	src := "x = (1 +\n     2)\n"
	mod, err := Parse(src)
	require.NoError(t, err)

	assign := mod.Body[0].(*ast.Assign)
	seg, ok := GetSourceSegment(src, assign.Value)
	require.True(t, ok)
	assert.Equal(t, "1 +\n     2", seg)
}

func TestLiteralEval(t *testing.T) {
	cases := []struct {
		src  string
		want any
	}{
		{"42", int64(42)},
		{"-42", int64(-42)},
		{"1.5", 1.5},
		{"'hi'", "hi"},
		{"[1, 2, 3]", []any{int64(1), int64(2), int64(3)}},
		{"(1, 2)", []any{int64(1), int64(2)}},
		{"True", true},
		{"None", nil},
		{"1 + 2j", complex(1, 2)},
	}
	for _, c := range cases {
		got, err := LiteralEval(c.src)
		require.NoError(t, err, c.src)
		if diff := cmp.Diff(c.want, got); diff != "" {
			t.Errorf("literal_eval(%q) mismatch (-want +got):\n%s", c.src, diff)
		}
	}
}

func TestLiteralEvalRejectsNonLiteral(t *testing.T) {
	_, err := LiteralEval("f()")
	require.Error(t, err)
	var ve *ValueError
	require.ErrorAs(t, err, &ve)
}

func TestIsASTNode(t *testing.T) {
	mod, err := Parse("x = 1\n")
	require.NoError(t, err)
	assert.True(t, IsASTNode(mod))
	assert.True(t, IsASTNode(mod.Body[0]))
	assert.False(t, IsASTNode(42))
	assert.False(t, IsASTNode("not a node"))
}

func TestDumpIsDeterministic(t *testing.T) {
	mod, err := Parse("x = 1\n")
	require.NoError(t, err)
	a := Dump(mod)
	b := Dump(mod)
	assert.Equal(t, a, b)
	assert.Contains(t, a, "Module(")
	assert.Contains(t, a, "Assign(")
}
