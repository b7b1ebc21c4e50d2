package unparser

import (
	"strings"
	"testing"

	"pyast/parser"
)

func mustUnparse(t *testing.T, src string) string {
	t.Helper()
	mod, err := parser.ParseModule(src, parser.DefaultOptions())
	if err != nil {
		t.Fatalf("parse %q: %v", src, err)
	}
	out, err := Unparse(mod, DefaultOptions())
	if err != nil {
		t.Fatalf("unparse %q: %v", src, err)
	}
	return out
}

func mustReparse(t *testing.T, src string) {
	t.Helper()
	if _, err := parser.ParseModule(src, parser.DefaultOptions()); err != nil {
		t.Fatalf("unparsed output failed to reparse: %v\n---\n%s", err, src)
	}
}

func TestUnparseSimpleAssignment(t *testing.T) {
	out := mustUnparse(t, "x = 1 + 2\n")
	want := "x = 1 + 2\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
	mustReparse(t, out)
}

func TestUnparsePowerRightAssociativeUnary(t *testing.T) {
	cases := []struct {
		src  string
		want string
	}{
		{"x = -2 ** 2\n", "x = -2 ** 2\n"},
		{"x = 2 ** -2\n", "x = 2 ** -2\n"},
		{"x = (-2) ** 2\n", "x = (-2) ** 2\n"},
		{"x = 2 ** (a + b)\n", "x = 2 ** (a + b)\n"},
		{"x = 2 ** 3 ** 4\n", "x = 2 ** 3 ** 4\n"},
	}
	for _, c := range cases {
		out := mustUnparse(t, c.src)
		if out != c.want {
			t.Errorf("unparse(%q) = %q, want %q", c.src, out, c.want)
		}
		mustReparse(t, out)
	}
}

func TestUnparseChainedComparison(t *testing.T) {
	out := mustUnparse(t, "ok = 0 < x <= 10\n")
	want := "ok = 0 < x <= 10\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
	mustReparse(t, out)
}

func TestUnparseFunctionSignature(t *testing.T) {
	src := "def f(a, /, b, *, c=1, **kw):\n    pass\n"
	out := mustUnparse(t, src)
	if out != src {
		t.Errorf("got %q, want %q", out, src)
	}
	mustReparse(t, out)
}

func TestUnparseListCompWithCondition(t *testing.T) {
	src := "squares = [x * x for x in range(10) if x % 2 == 0]\n"
	out := mustUnparse(t, src)
	if out != src {
		t.Errorf("got %q, want %q", out, src)
	}
	mustReparse(t, out)
}

func TestUnparseFStringConversionAndSpec(t *testing.T) {
	src := "greeting = f'{name!r:>{width}}'\n"
	out := mustUnparse(t, src)
	if out != src {
		t.Errorf("got %q, want %q", out, src)
	}
	mustReparse(t, out)
}

func TestUnparseIfElifElse(t *testing.T) {
	src := "if a:\n    x\nelif b:\n    y\nelse:\n    z\n"
	out := mustUnparse(t, src)
	if out != src {
		t.Errorf("got %q, want %q", out, src)
	}
	mustReparse(t, out)
}

func TestUnparseMatchStatement(t *testing.T) {
	src := "match point:\n    case Point(x=0, y=0):\n        origin()\n    case Point(x=x, y=y) if x == y:\n        diagonal()\n    case _:\n        other()\n"
	out := mustUnparse(t, src)
	if out != src {
		t.Errorf("got %q, want %q", out, src)
	}
	mustReparse(t, out)
}

func TestUnparseWithStatement(t *testing.T) {
	src := "with open('f') as fh, open('g'):\n    read(fh)\n"
	out := mustUnparse(t, src)
	if out != src {
		t.Errorf("got %q, want %q", out, src)
	}
	mustReparse(t, out)
}

func TestUnparseTryExceptStar(t *testing.T) {
	src := "try:\n    risky()\nexcept* ValueError as e:\n    handle(e)\nfinally:\n    cleanup()\n"
	out := mustUnparse(t, src)
	if out != src {
		t.Errorf("got %q, want %q", out, src)
	}
	mustReparse(t, out)
}

func TestUnparseEmptyBodyEmitsPass(t *testing.T) {
	src := "class Marker:\n    pass\n"
	out := mustUnparse(t, src)
	if !strings.Contains(out, "pass") {
		t.Errorf("expected empty-ish class body to render pass, got %q", out)
	}
	mustReparse(t, out)
}

func TestUnparseAugAssign(t *testing.T) {
	out := mustUnparse(t, "total += 1\n")
	want := "total += 1\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
	mustReparse(t, out)
}

func TestUnparseLambdaAsCallArgument(t *testing.T) {
	src := "f(lambda: 1)\n"
	out := mustUnparse(t, src)
	if out != src {
		t.Errorf("got %q, want %q", out, src)
	}
	mustReparse(t, out)
}
