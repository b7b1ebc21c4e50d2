package lexer

import "testing"

func scanTokens(t *testing.T, input string) []Token {
	t.Helper()
	sc := NewScanner(input)
	toks := sc.ScanTokens()
	for _, e := range sc.Errors {
		t.Fatalf("unexpected scanner error: %v", e)
	}
	return toks
}

func assertTokenTypes(t *testing.T, tokens []Token, expected []TokenType) {
	t.Helper()
	if len(tokens) != len(expected) {
		types := make([]TokenType, len(tokens))
		for i, tok := range tokens {
			types[i] = tok.Type
		}
		t.Fatalf("expected %v, got %v", expected, types)
	}
	for i, tok := range tokens {
		if tok.Type != expected[i] {
			t.Errorf("token %d: expected %s, got %s", i, expected[i], tok.Type)
		}
	}
}

func TestSingleCharacterTokens(t *testing.T) {
	tokens := scanTokens(t, "()[]{},:;.")
	assertTokenTypes(t, tokens, []TokenType{
		LeftParen, RightParen, LeftBracket, RightBracket, LeftBrace, RightBrace,
		Comma, Colon, Semicolon, Dot, Newline, EOF,
	})
}

func TestMultiCharacterOperators(t *testing.T) {
	tokens := scanTokens(t, "+= -= **= // ** << >> := -> !=")
	assertTokenTypes(t, tokens, []TokenType{
		PlusEqual, MinusEqual, StarStarEqual, SlashSlash, StarStar,
		LessLess, GreaterGreater, Walrus, Arrow, BangEqual, Newline, EOF,
	})
}

func TestKeywordsVsIdentifiers(t *testing.T) {
	tokens := scanTokens(t, "def match case return")
	assertTokenTypes(t, tokens, []TokenType{Def, Identifier, Identifier, Return, Newline, EOF})
	if tokens[1].Literal != "match" {
		t.Errorf("expected soft keyword 'match' to lex as Identifier, got %v", tokens[1].Literal)
	}
}

func TestIndentationBasic(t *testing.T) {
	src := "if x:\n    y\n    z\nw\n"
	tokens := scanTokens(t, src)
	assertTokenTypes(t, tokens, []TokenType{
		If, Identifier, Colon, Newline,
		Indent, Identifier, Newline, Identifier, Newline,
		Dedent, Identifier, Newline, EOF,
	})
}

func TestIndentationNested(t *testing.T) {
	src := "if a:\n    if b:\n        c\n    d\n"
	tokens := scanTokens(t, src)
	assertTokenTypes(t, tokens, []TokenType{
		If, Identifier, Colon, Newline,
		Indent, If, Identifier, Colon, Newline,
		Indent, Identifier, Newline,
		Dedent, Identifier, Newline,
		Dedent, EOF,
	})
}

func TestIndentationMismatchFails(t *testing.T) {
	sc := NewScanner("if a:\n    b\n  c\n")
	sc.ScanTokens()
	if len(sc.Errors) == 0 {
		t.Fatal("expected an indentation error")
	}
	if !sc.Errors[0].Indentation {
		t.Errorf("expected error to be flagged as indentation, got %+v", sc.Errors[0])
	}
}

func TestImplicitLineJoinInsideBrackets(t *testing.T) {
	src := "x = (1 +\n     2)\n"
	tokens := scanTokens(t, src)
	assertTokenTypes(t, tokens, []TokenType{
		Identifier, Equal, LeftParen, Number, Plus, Number, RightParen, Newline, EOF,
	})
}

func TestBackslashLineContinuation(t *testing.T) {
	src := "x = 1 + \\\n    2\n"
	tokens := scanTokens(t, src)
	assertTokenTypes(t, tokens, []TokenType{
		Identifier, Equal, Number, Plus, Number, Newline, EOF,
	})
}

func TestNumberLiterals(t *testing.T) {
	cases := []struct {
		src  string
		want any
	}{
		{"1_000_000", int64(1000000)},
		{"0x1F", int64(31)},
		{"0o17", int64(15)},
		{"0b101", int64(5)},
		{"1.5", 1.5},
		{"1e10", 1e10},
		{"2j", complex(0, 2)},
	}
	for _, c := range cases {
		tokens := scanTokens(t, c.src)
		if tokens[0].Type != Number {
			t.Fatalf("%s: expected Number, got %s", c.src, tokens[0].Type)
		}
		if tokens[0].Literal != c.want {
			t.Errorf("%s: expected %v, got %v", c.src, c.want, tokens[0].Literal)
		}
	}
}

func TestUnderscoreDigitSeparatorRules(t *testing.T) {
	sc := NewScanner("1__0")
	sc.ScanTokens()
	if len(sc.Errors) == 0 {
		t.Fatal("expected a lexical error for doubled underscore in numeric literal")
	}
}

func TestStringEscapes(t *testing.T) {
	tokens := scanTokens(t, `"a\nb\t\"c\""`)
	if tokens[0].Type != String {
		t.Fatalf("expected String, got %s", tokens[0].Type)
	}
	if tokens[0].Literal != "a\nb\t\"c\"" {
		t.Errorf("got %q", tokens[0].Literal)
	}
}

func TestRawStringKeepsBackslashes(t *testing.T) {
	tokens := scanTokens(t, `r"a\nb"`)
	if tokens[0].Literal != `a\nb` {
		t.Errorf("got %q", tokens[0].Literal)
	}
}

func TestTripleQuotedString(t *testing.T) {
	tokens := scanTokens(t, "\"\"\"a\nb\"\"\"")
	if tokens[0].Type != String {
		t.Fatalf("expected String, got %s", tokens[0].Type)
	}
	if tokens[0].Literal != "a\nb" {
		t.Errorf("got %q", tokens[0].Literal)
	}
}

func TestFStringSimple(t *testing.T) {
	tokens := scanTokens(t, `f"hello {name}"`)
	assertTokenTypes(t, tokens, []TokenType{
		FStringStart, FStringMiddle, LeftBrace, Identifier, RightBrace, FStringEnd, Newline, EOF,
	})
}

func TestFStringEscapedBraces(t *testing.T) {
	tokens := scanTokens(t, `f"{{x}}"`)
	assertTokenTypes(t, tokens, []TokenType{FStringStart, FStringMiddle, FStringEnd, Newline, EOF})
	if tokens[1].Literal != "{x}" {
		t.Errorf("expected literal '{x}', got %q", tokens[1].Literal)
	}
}

func TestFStringConversionAndFormatSpec(t *testing.T) {
	tokens := scanTokens(t, `f"{name!r:>10}"`)
	assertTokenTypes(t, tokens, []TokenType{
		FStringStart, LeftBrace, Identifier, Identifier, Colon, FStringMiddle, RightBrace, FStringEnd, Newline, EOF,
	})
}

func TestCommentsDiscardedByDefault(t *testing.T) {
	tokens := scanTokens(t, "x = 1 # a comment\n")
	assertTokenTypes(t, tokens, []TokenType{Identifier, Equal, Number, Newline, EOF})
}

func TestCommentsEmittedWhenConfigured(t *testing.T) {
	sc := NewScannerWithConfig("x # hi\n", Config{StartLine: 1, Comments: true})
	tokens := sc.ScanTokens()
	assertTokenTypes(t, tokens, []TokenType{Identifier, Comment, Newline, EOF})
}

func TestEmptyInputProducesOnlyEOF(t *testing.T) {
	tokens := scanTokens(t, "")
	assertTokenTypes(t, tokens, []TokenType{EOF})
}
