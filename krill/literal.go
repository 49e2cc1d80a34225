package krill

// scanDigits consumes up to n digits of the given base, reporting an error
// when fewer are present.
func (s *Scanner) scanDigits(ch rune, base, n int) rune {
	for n > 0 && digitVal(ch) < base {
		ch = s.next()
		n--
	}
	if n > 0 {
		s.error("invalid char escape")
	}
	return ch
}

// scanEscape consumes one escape sequence after a '\'. Unknown escape
// targets and truncated hex/unicode forms are reported but never abort the
// enclosing literal.
func (s *Scanner) scanEscape(quote rune) rune {
	ch := s.next() // read character after '\'
	switch ch {
	case 'a', 'b', 'f', 'n', 'r', 't', 'v', '\\', quote:
		// nothing to do
		ch = s.next()
	case '0', '1', '2', '3', '4', '5', '6', '7':
		ch = s.scanDigits(ch, 8, 3)
	case 'x':
		ch = s.scanDigits(s.next(), 16, 2)
	case 'u':
		ch = s.scanDigits(s.next(), 16, 4)
	case 'U':
		ch = s.scanDigits(s.next(), 16, 8)
	default:
		s.error("invalid char escape")
	}
	return ch
}

// scanString consumes a quoted literal after its opening quote and returns
// the number of characters inside it. The token covers whatever was
// consumed when a newline or EOF cuts the literal short.
func (s *Scanner) scanString(quote rune) (n int) {
	ch := s.next() // read character after quote
	for ch != quote {
		if ch == '\n' || ch < 0 {
			s.error("literal not terminated")
			return
		}
		if ch == '\\' {
			ch = s.scanEscape(quote)
		} else {
			ch = s.next()
		}
		n++
	}
	return
}

// scanRawString consumes a raw string after its opening delimiter. A
// doubled delimiter stands for one literal delimiter character and does not
// terminate the literal; newlines pass through verbatim.
func (s *Scanner) scanRawString() rune {
	for {
		ch := s.next() // read character after delimiter
		for ch != s.RawDelim {
			if ch < 0 {
				s.error("literal not terminated")
				return ch
			}
			ch = s.next()
		}
		ch = s.next()
		if ch != s.RawDelim {
			return ch // a lone delimiter ends the literal
		}
	}
}

// scanComment consumes a line comment to the end of the line. ch is the
// character after the leading ';'; a second ';' is part of the same token.
func (s *Scanner) scanComment(ch rune) rune {
	if ch != '\n' {
		ch = s.next()
		for ch != '\n' && ch >= 0 {
			ch = s.next()
		}
	}
	return ch
}
