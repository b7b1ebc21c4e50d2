// Package lexer turns Python 3 source text into a token stream, handling
// indentation-sensitive layout, implicit line joining, and the f-string
// micro-language. It mirrors CPython's own tokenizer surface closely
// enough that the parser package can be written as an almost direct
// transliteration of the reference grammar.
package lexer

import "fmt"

// TokenType enumerates every kind of token the scanner produces.
type TokenType int

const (
	// ── single-character punctuation ─────────────────────────────
	LeftParen TokenType = iota
	RightParen
	LeftBracket
	RightBracket
	LeftBrace
	RightBrace
	Comma
	Colon
	Dot
	Semicolon
	Plus
	Minus
	Star
	Slash
	Percent
	Pipe
	Ampersand
	Caret
	Tilde
	At

	// ── one- or two-character operators ─────────────────────────
	Equal
	PlusEqual
	MinusEqual
	StarEqual
	SlashEqual
	PercentEqual
	PipeEqual
	AmpEqual
	CaretEqual
	Arrow
	AtEqual
	SlashSlash
	SlashSlashEqual
	StarStar
	StarStarEqual
	LessLess
	GreaterGreater
	LessLessEqual
	GreaterGreaterEqual
	BangEqual
	EqualEqual
	Less
	LessEqual
	Greater
	GreaterEqual
	Walrus

	// ── literals & special symbols ──────────────────────────────
	Identifier
	String
	Number
	Ellipsis

	// ── f-string substructure ────────────────────────────────────
	FStringStart
	FStringMiddle
	FStringEnd

	// ── layout / structural tokens ──────────────────────────────
	Newline
	Indent
	Dedent
	Comment

	// ── keywords (hard language keywords) ───────────────────────
	And
	As
	Assert
	Async
	Await
	Break
	Class
	Continue
	Def
	Del
	Elif
	Else
	Except
	False
	Finally
	For
	From
	Global
	If
	Import
	In
	Is
	Lambda
	None
	Nonlocal
	Not
	Or
	Pass
	Raise
	Return
	True
	Try
	While
	With
	Yield

	EOF
	Illegal
)

var tokenTypeNames = [...]string{
	LeftParen: "LeftParen", RightParen: "RightParen", LeftBracket: "LeftBracket",
	RightBracket: "RightBracket", LeftBrace: "LeftBrace", RightBrace: "RightBrace",
	Comma: "Comma", Colon: "Colon", Dot: "Dot", Semicolon: "Semicolon",
	Plus: "Plus", Minus: "Minus", Star: "Star", Slash: "Slash", Percent: "Percent",
	Pipe: "Pipe", Ampersand: "Ampersand", Caret: "Caret", Tilde: "Tilde", At: "At",

	Equal: "Equal", PlusEqual: "PlusEqual", MinusEqual: "MinusEqual",
	StarEqual: "StarEqual", SlashEqual: "SlashEqual", PercentEqual: "PercentEqual",
	PipeEqual: "PipeEqual", AmpEqual: "AmpEqual", CaretEqual: "CaretEqual",
	Arrow: "Arrow", AtEqual: "AtEqual", SlashSlash: "SlashSlash",
	SlashSlashEqual: "SlashSlashEqual", StarStar: "StarStar", StarStarEqual: "StarStarEqual",
	LessLess: "LessLess", GreaterGreater: "GreaterGreater",
	LessLessEqual: "LessLessEqual", GreaterGreaterEqual: "GreaterGreaterEqual",
	BangEqual: "BangEqual", EqualEqual: "EqualEqual", Less: "Less", LessEqual: "LessEqual",
	Greater: "Greater", GreaterEqual: "GreaterEqual", Walrus: "Walrus",

	Identifier: "Identifier", String: "String", Number: "Number", Ellipsis: "Ellipsis",

	FStringStart: "FStringStart", FStringMiddle: "FStringMiddle", FStringEnd: "FStringEnd",

	Newline: "Newline", Indent: "Indent", Dedent: "Dedent", Comment: "Comment",

	And: "And", As: "As", Assert: "Assert", Async: "Async", Await: "Await",
	Break: "Break", Class: "Class", Continue: "Continue", Def: "Def", Del: "Del",
	Elif: "Elif", Else: "Else", Except: "Except", False: "False", Finally: "Finally",
	For: "For", From: "From", Global: "Global", If: "If", Import: "Import",
	In: "In", Is: "Is", Lambda: "Lambda", None: "None", Nonlocal: "Nonlocal",
	Not: "Not", Or: "Or", Pass: "Pass", Raise: "Raise", Return: "Return",
	True: "True", Try: "Try", While: "While", With: "With", Yield: "Yield",

	EOF: "EOF", Illegal: "Illegal",
}

func (tt TokenType) String() string {
	if int(tt) < 0 || int(tt) >= len(tokenTypeNames) || tokenTypeNames[tt] == "" {
		return fmt.Sprintf("TokenType(%d)", tt)
	}
	return tokenTypeNames[tt]
}

// Position is a single location in the source: a 1-based line, a 0-based
// UTF-8 code-point column, and an offset from the start of input. Offset
// counts code points (runes), not bytes.
type Position struct {
	Line   int
	Column int
	Offset int
}

func (p Position) String() string { return fmt.Sprintf("L%d:%d", p.Line, p.Column) }

// Span is the half-open [Start, End) range covered by a token.
type Span struct {
	Start Position
	End   Position
}

func (s Span) String() string { return fmt.Sprintf("%s-%s", s.Start, s.End) }

// Token is one lexical unit. Literal holds the cooked value for NUMBER
// (int64, *big representation as string, float64, or complex128) and
// STRING (decoded string or []byte) tokens; it is nil otherwise.
type Token struct {
	Type    TokenType
	Lexeme  string
	Literal any
	Span    Span

	// StringPrefix and StringQuote record the exact prefix letters and
	// quote style of a String/FStringStart token so the unparser's
	// origin-hint quoting rule can reuse it.
	StringPrefix string
	StringQuote  string
}

func (t Token) String() string {
	return fmt.Sprintf("%s %q %v", t.Type, t.Lexeme, t.Literal)
}

// Keywords maps the exact-case textual form of each hard keyword to its
// TokenType. `match` and `case` are deliberately absent: they are soft
// keywords resolved by the parser via statement-level lookahead, never by
// lexer-level reclassification (see the design notes on soft keywords).
var Keywords = map[string]TokenType{
	"and": And, "as": As, "assert": Assert, "async": Async, "await": Await,
	"break": Break, "class": Class, "continue": Continue, "def": Def, "del": Del,
	"elif": Elif, "else": Else, "except": Except, "False": False, "finally": Finally,
	"for": For, "from": From, "global": Global, "if": If, "import": Import,
	"in": In, "is": Is, "lambda": Lambda, "None": None, "nonlocal": Nonlocal,
	"not": Not, "or": Or, "pass": Pass, "raise": Raise, "return": Return,
	"True": True, "try": Try, "while": While, "with": With, "yield": Yield,
}

// IsKeyword reports whether s is a hard (always-reserved) keyword.
func IsKeyword(s string) bool {
	_, ok := Keywords[s]
	return ok
}
