package lexer

// scanFString implements the f-string micro-language: an FStringStart,
// alternating FStringMiddle literal runs and embedded expression token
// runs, and a closing FStringEnd. The embedded expression region is
// scanned by re-entering the very same token-level helpers (scanToken,
// number, scanString, ...) used for ordinary Python source, with the
// brace depth pre-seeded to 1, rather than a one-pass character loop
// that would mishandle nested format-spec braces.
func (s *Scanner) scanFString(quote rune, triple, raw bool) {
	opener := s.lexeme()
	quotes := 1
	if triple {
		quotes = 3
	}
	s.tokens = append(s.tokens, Token{
		Type:         FStringStart,
		StringPrefix: opener[:len(opener)-quotes],
		StringQuote:  opener[len(opener)-quotes:],
		Span:         Span{Start: Position{Line: s.lexLine, Column: s.lexCol, Offset: s.start}, End: s.pos()},
	})

	s.scanFStringBody(quote, triple, raw)
}

// scanFStringBody scans literal/expression runs up to (and including) the
// closing quote, emitting FStringMiddle and FStringEnd. Format specs, which
// may contain further `{...}` substitutions, are scanned separately by
// scanFormatSpec.
func (s *Scanner) scanFStringBody(quote rune, triple, raw bool) {
	var lit []rune
	litStart := s.pos()

	flush := func() {
		if len(lit) == 0 {
			return
		}
		s.tokens = append(s.tokens, Token{
			Type:    FStringMiddle,
			Literal: string(lit),
			Span:    Span{Start: litStart, End: s.pos()},
		})
		lit = nil
	}

	for {
		if s.atEnd() {
			s.errorf("unterminated f-string literal")
			return
		}
		if triple {
			if s.peek() == quote && s.peekN(1) == quote && s.peekN(2) == quote {
				flush()
				s.advance()
				s.advance()
				s.advance()
				s.addToken(FStringEnd)
				return
			}
		} else if s.peek() == quote {
			flush()
			s.advance()
			s.addToken(FStringEnd)
			return
		} else if s.peek() == '\n' {
			s.errorf("f-string literal cannot span a newline")
			return
		}

		switch s.peek() {
		case '{':
			if s.peekN(1) == '{' {
				s.advance()
				s.advance()
				lit = append(lit, '{')
				continue
			}
			flush()
			s.lexLine, s.lexCol = s.line, s.col
			s.start = s.cur
			s.advance() // consume '{'
			s.addToken(LeftBrace)
			s.scanFStringExpr()
			litStart = s.pos()
		case '}':
			if s.peekN(1) == '}' {
				s.advance()
				s.advance()
				lit = append(lit, '}')
				continue
			}
			s.errorf("single '}' is not allowed in an f-string literal")
			s.advance()
		case '\\':
			if raw {
				lit = append(lit, s.advance(), s.advance())
			} else {
				s.advance()
				s.decodeEscape(false, false, &lit)
			}
		default:
			lit = append(lit, s.advance())
		}
	}
}

// scanFStringExpr scans one `{expr(=)?(!conv)?(:spec)?}` replacement
// field. The expression itself is scanned with the ordinary scanToken
// dispatcher; nested braces are counted by a local depth that starts at 1
// for the field's own opening brace.
func (s *Scanner) scanFStringExpr() {
	depth := 1
	for depth > 0 {
		if s.atEnd() {
			s.errorf("unterminated replacement field in f-string")
			return
		}
		switch s.peek() {
		case '{':
			depth++
			s.lexLine, s.lexCol = s.line, s.col
			s.start = s.cur
			s.advance()
			s.addToken(LeftBrace)
		case '}':
			depth--
			if depth == 0 {
				s.lexLine, s.lexCol = s.line, s.col
				s.start = s.cur
				s.advance()
				s.addToken(RightBrace)
				return
			}
			s.lexLine, s.lexCol = s.line, s.col
			s.start = s.cur
			s.advance()
			s.addToken(RightBrace)
		case '!':
			// `!s`/`!r`/`!a` conversion, but not the `!=` operator.
			if s.peekN(1) != '=' {
				start := s.pos()
				s.advance()
				conv := s.advance()
				s.tokens = append(s.tokens, Token{
					Type:    Identifier,
					Lexeme:  "!" + string(conv),
					Literal: "!" + string(conv),
					Span:    Span{Start: start, End: s.pos()},
				})
				continue
			}
			s.lexLine, s.lexCol = s.line, s.col
			s.start = s.cur
			s.scanToken()
		case ':':
			// Format spec: everything up to the matching '}' is scanned as
			// f-string-shaped content (it may itself hold `{subexpr}`).
			s.lexLine, s.lexCol = s.line, s.col
			s.start = s.cur
			s.advance()
			s.addToken(Colon)
			s.scanFormatSpec()
			depth--
			if depth == 0 {
				return
			}
		case ' ', '\t':
			s.advance()
		default:
			s.lexLine, s.lexCol = s.line, s.col
			s.start = s.cur
			s.scanToken()
		}
	}
}

// scanFormatSpec scans the `:spec` portion of a replacement field up to
// (not including) the closing '}', emitting FStringMiddle runs and
// recursing into scanFStringExpr for any nested `{width}`-style
// substitutions, then emits the closing RightBrace itself.
func (s *Scanner) scanFormatSpec() {
	var lit []rune
	litStart := s.pos()
	flush := func() {
		if len(lit) == 0 {
			return
		}
		s.tokens = append(s.tokens, Token{
			Type: FStringMiddle, Literal: string(lit),
			Span: Span{Start: litStart, End: s.pos()},
		})
		lit = nil
	}
	for {
		if s.atEnd() {
			s.errorf("unterminated format spec")
			return
		}
		switch s.peek() {
		case '}':
			flush()
			s.lexLine, s.lexCol = s.line, s.col
			s.start = s.cur
			s.advance()
			s.addToken(RightBrace)
			return
		case '{':
			flush()
			s.lexLine, s.lexCol = s.line, s.col
			s.start = s.cur
			s.advance()
			s.addToken(LeftBrace)
			s.scanFStringExpr()
			litStart = s.pos()
		default:
			lit = append(lit, s.advance())
		}
	}
}
