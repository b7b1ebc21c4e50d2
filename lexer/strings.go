package lexer

import (
	"fmt"
	"strconv"
	"strings"
)

// scanString scans a STRING token, dispatching to the f-string path when
// prefix contains 'f'/'F'. prefix is the already-consumed prefix letters
// ("", "r", "b", "rb", "fr", ...); quote is the opening quote rune just
// consumed by the caller.
func (s *Scanner) scanString(quote rune, prefix string) {
	lower := strings.ToLower(prefix)
	raw := strings.Contains(lower, "r")
	bytesLit := strings.Contains(lower, "b")
	isF := strings.Contains(lower, "f")

	triple := s.peek() == quote && s.peekN(1) == quote
	if triple {
		s.advance()
		s.advance()
	}

	if isF {
		s.scanFString(quote, triple, raw)
		return
	}

	var body []rune
	for {
		if s.atEnd() {
			s.errorf("unterminated string literal")
			return
		}
		if triple {
			if s.peek() == quote && s.peekN(1) == quote && s.peekN(2) == quote {
				s.advance()
				s.advance()
				s.advance()
				break
			}
		} else {
			if s.peek() == '\n' {
				s.errorf("string literal cannot span a newline")
				return
			}
			if s.peek() == quote {
				s.advance()
				break
			}
		}
		if s.peek() == '\\' {
			s.advance()
			s.decodeEscape(raw, bytesLit, &body)
			continue
		}
		body = append(body, s.advance())
	}

	tok := Token{
		Lexeme:       s.lexeme(),
		StringPrefix: prefix,
		StringQuote:  strings.Repeat(string(quote), map[bool]int{true: 3, false: 1}[triple]),
		Span: Span{
			Start: Position{Line: s.lexLine, Column: s.lexCol, Offset: s.start},
			End:   s.pos(),
		},
	}
	if bytesLit {
		tok.Type = String
		tok.Literal = []byte(string(body))
	} else {
		tok.Type = String
		tok.Literal = string(body)
	}
	s.tokens = append(s.tokens, tok)
}

// decodeEscape consumes one escape sequence (the backslash itself is
// already consumed) and appends its decoded rune(s) to body. Raw strings
// keep the backslash and the following character verbatim, matching
// CPython's "backslashes are left in the string" rule for r-strings.
func (s *Scanner) decodeEscape(raw, bytesLit bool, body *[]rune) {
	if raw {
		*body = append(*body, '\\', s.advance())
		return
	}
	c := s.advance()
	switch c {
	case 'n':
		*body = append(*body, '\n')
	case 't':
		*body = append(*body, '\t')
	case 'r':
		*body = append(*body, '\r')
	case '\\':
		*body = append(*body, '\\')
	case '\'':
		*body = append(*body, '\'')
	case '"':
		*body = append(*body, '"')
	case 'a':
		*body = append(*body, '\a')
	case 'b':
		*body = append(*body, '\b')
	case 'f':
		*body = append(*body, '\f')
	case 'v':
		*body = append(*body, '\v')
	case '0':
		*body = append(*body, 0)
	case '\n':
		// backslash-newline inside a string: line continuation, no char emitted.
	case 'x':
		*body = append(*body, s.readHexEscape(2))
	case 'u':
		if !bytesLit {
			*body = append(*body, s.readHexEscape(4))
		} else {
			*body = append(*body, '\\', 'u')
		}
	case 'U':
		if !bytesLit {
			*body = append(*body, s.readHexEscape(8))
		} else {
			*body = append(*body, '\\', 'U')
		}
	case 'N':
		if !bytesLit && s.peek() == '{' {
			s.advance()
			for !s.atEnd() && s.peek() != '}' {
				s.advance()
			}
			if s.peek() == '}' {
				s.advance()
			}
			// Named Unicode escapes require a name→codepoint table this
			// core does not ship; leave a replacement character rather
			// than fail the whole literal.
			*body = append(*body, 0xFFFD)
		} else {
			*body = append(*body, '\\', 'N')
		}
	default:
		s.Errors = append(s.Errors, NewScannerError(
			fmt.Sprintf("unsupported escape sequence \\%c", c), s.line, s.col))
		*body = append(*body, '\\', c)
	}
}

func (s *Scanner) readHexEscape(n int) rune {
	start := s.cur
	for i := 0; i < n && !s.atEnd() && isHexDigit(s.peek()); i++ {
		s.advance()
	}
	v, err := strconv.ParseInt(string(s.src[start:s.cur]), 16, 32)
	if err != nil {
		return 0xFFFD
	}
	return rune(v)
}
