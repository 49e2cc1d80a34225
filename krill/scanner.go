package krill

import (
	"fmt"
	"io"
	"os"
	"unicode"
	"unicode/utf8"
)

const bufLen = 1024 // at least utf8.UTFMax

// A Scanner implements reading of Unicode characters and tokens from an
// io.Reader. One Scanner serves one input stream; instances share no state,
// so independent inputs may be tokenized on independent goroutines as long
// as each Scanner stays on a single goroutine.
type Scanner struct {
	// Input
	src io.Reader

	// Source buffer
	srcBuf [bufLen + 1]byte // +1 for sentinel for common case of s.next()
	srcPos int              // reading position (srcBuf index)
	srcEnd int              // source end (srcBuf index)

	// Source position
	srcBufOffset int // byte offset of srcBuf[0] in source
	line         int // line count
	column       int // character count
	lastLineLen  int // length of last line in characters (for correct column reporting)
	lastCharLen  int // length of last character in bytes

	// Token text buffer
	// Typically, token text is stored completely in srcBuf, but in general
	// the token text's head may be buffered in tokBuf while the token text's
	// tail is stored in srcBuf.
	tokBuf []byte // token text head that is not in srcBuf anymore
	tokPos int    // token text tail position (srcBuf index); valid if >= 0
	tokEnd int    // token text tail end (srcBuf index)

	// One character look-ahead
	ch rune // character before current srcPos

	// First failure of the underlying reader, if any. Kept apart from
	// lexical errors so callers can tell a broken source from plain EOF.
	srcErr error

	// Error is called for each error encountered. If no Error
	// function is set, the error is reported to os.Stderr.
	Error func(s *Scanner, msg string)

	// ErrorCount is incremented by one for each error encountered.
	ErrorCount int

	// The Mode field controls which token classes are recognized. For
	// instance, to recognize Ints, set the ScanInts bit in Mode. The field
	// may be changed at any time.
	Mode uint

	// The Whitespace field controls which characters are recognized as
	// white space. To recognize a character ch < 64 as white space, set
	// the ch'th bit in Whitespace. Characters with a code point of 64 or
	// above are never white space. The field may be changed at any time.
	Whitespace uint64

	// IsIdentRune is a predicate controlling the characters accepted as
	// the ith rune in an identifier. The set of valid characters must not
	// intersect with the set of white space characters. If no IsIdentRune
	// function is set, the Krill identifier rules apply instead. The field
	// may be changed at any time.
	IsIdentRune func(ch rune, i int) bool

	// RawDelim is the rune delimiting raw string literals. Init sets it
	// to '¬'.
	RawDelim rune

	// Start position of most recently scanned token; set by Scan.
	// Calling Init or Next invalidates the position (Line == 0).
	// The Filename field is always left untouched by the Scanner.
	// If an error is reported (via Error) and Position is invalid,
	// the scanner is not inside a token.
	Position
}

// Init initializes a Scanner with a new source and returns s.
// Error is set to nil, ErrorCount to 0, Mode to KrillTokens,
// Whitespace to KrillWhitespace, and RawDelim to '¬'.
func (s *Scanner) Init(src io.Reader) *Scanner {
	s.src = src

	// initialize source buffer
	// (the first call to next() will fill it by calling src.Read)
	s.srcBuf[0] = utf8.RuneSelf // sentinel
	s.srcPos = 0
	s.srcEnd = 0

	// initialize source position
	s.srcBufOffset = 0
	s.line = 1
	s.column = 0
	s.lastLineLen = 0
	s.lastCharLen = 0

	// initialize token text buffer
	// (required for first call to next()).
	s.tokPos = -1

	// initialize one character look-ahead
	s.ch = -2 // no char read yet, not EOF

	// initialize public fields
	s.srcErr = nil
	s.Error = nil
	s.ErrorCount = 0
	s.Mode = KrillTokens
	s.Whitespace = KrillWhitespace
	s.RawDelim = '¬'
	s.Line = 0 // invalidate token position

	return s
}

// next reads and returns the next Unicode character. It is designed such
// that only a minimal amount of work needs to be done in the common ASCII
// case (one test to check for both ASCII and end-of-buffer, and one test
// to check for newlines).
func (s *Scanner) next() rune {
	ch, width := rune(s.srcBuf[s.srcPos]), 1

	if ch >= utf8.RuneSelf {
		// uncommon case: not ASCII or not enough bytes
		for s.srcPos+utf8.UTFMax > s.srcEnd && !utf8.FullRune(s.srcBuf[s.srcPos:s.srcEnd]) {
			// not enough bytes: read some more, but first
			// save away token text if any
			if s.tokPos >= 0 {
				s.tokBuf = append(s.tokBuf, s.srcBuf[s.tokPos:s.srcPos]...)
				s.tokPos = 0
				// s.tokEnd is set by Scan()
			}
			// move unread bytes to beginning of buffer
			copy(s.srcBuf[0:], s.srcBuf[s.srcPos:s.srcEnd])
			s.srcBufOffset += s.srcPos
			// read more bytes
			// (an io.Reader must return io.EOF when it reaches
			// the end of what it is reading - simply returning
			// n == 0 will make this loop retry forever; but the
			// error is in the reader implementation in that case)
			i := s.srcEnd - s.srcPos
			n, err := s.src.Read(s.srcBuf[i:bufLen])
			s.srcPos = 0
			s.srcEnd = i + n
			s.srcBuf[s.srcEnd] = utf8.RuneSelf // sentinel
			if err != nil {
				if err != io.EOF {
					if s.srcErr == nil {
						s.srcErr = err
					}
					s.error(err.Error())
				}
				if s.srcEnd == 0 {
					if s.lastCharLen > 0 {
						// previous character was not EOF
						s.column++
					}
					s.lastCharLen = 0
					return EOF
				}
				// If err == EOF, we won't be getting more
				// bytes; break to avoid infinite loop. If
				// err is something else, we don't know if
				// we can get more bytes; thus also break.
				break
			}
		}
		// at least one byte
		ch = rune(s.srcBuf[s.srcPos])
		if ch >= utf8.RuneSelf {
			// uncommon case: not ASCII
			ch, width = utf8.DecodeRune(s.srcBuf[s.srcPos:s.srcEnd])
			if ch == utf8.RuneError && width == 1 {
				// advance for correct error position
				s.srcPos += width
				s.lastCharLen = width
				s.column++
				s.error("invalid UTF-8 encoding")
				return ch
			}
		}
	}

	// advance
	s.srcPos += width
	s.lastCharLen = width
	s.column++

	// special situations
	switch ch {
	case 0:
		// for compatibility with other tools
		s.error("invalid character NUL")
	case '\n':
		s.line++
		s.lastLineLen = s.column
		s.column = 0
	}

	return ch
}

// Next reads and returns the next Unicode character.
// It returns EOF at the end of the source. It reports a read error by
// calling s.Error, if not nil; otherwise it prints an error message to
// os.Stderr. Next does not update the Scanner's Position field; use Pos()
// to get the current position.
func (s *Scanner) Next() rune {
	s.tokPos = -1 // don't collect token text
	s.Line = 0    // invalidate token position
	ch := s.Peek()
	if ch != EOF {
		s.ch = s.next()
	}
	return ch
}

// Peek returns the next Unicode character in the source without advancing
// the scanner. It returns EOF if the scanner's position is at the last
// character of the source.
func (s *Scanner) Peek() rune {
	if s.ch == -2 {
		// this code is only run for the very first character
		s.ch = s.next()
		if s.ch == '\uFEFF' {
			s.ch = s.next() // ignore BOM
		}
	}
	return s.ch
}

// Err returns the first failure reported by the underlying reader, or nil.
// A Scan that returned EOF with a nil Err hit true end of input.
func (s *Scanner) Err() error { return s.srcErr }

func (s *Scanner) error(msg string) {
	s.tokEnd = s.srcPos - s.lastCharLen // make sure token text is terminated
	s.ErrorCount++
	if s.Error != nil {
		s.Error(s, msg)
		return
	}
	pos := s.Position
	if !pos.IsValid() {
		pos = s.Pos()
	}
	fmt.Fprintf(os.Stderr, "%s: %s\n", pos, msg)
}

func (s *Scanner) errorf(format string, args ...any) {
	s.error(fmt.Sprintf(format, args...))
}

// isIdentRune applies the configured predicate, falling back to the Krill
// identifier rules: letters and the symbol set `_ $ * + / ? ! < > =` start
// an identifier; digits and '-' may continue one.
func (s *Scanner) isIdentRune(ch rune, i int) bool {
	if s.IsIdentRune != nil {
		return ch != EOF && s.IsIdentRune(ch, i)
	}
	switch ch {
	case '_', '$', '*', '+', '/', '?', '!', '<', '>', '=':
		return true
	}
	return unicode.IsLetter(ch) || i > 0 && (ch == '-' || unicode.IsDigit(ch))
}

func (s *Scanner) scanIdentifier() rune {
	// we know the zero'th rune is OK; start scanning at the next one
	ch := s.next()
	for i := 1; s.isIdentRune(ch, i); i++ {
		ch = s.next()
	}
	return ch
}

// Scan reads the next token or Unicode character from source and returns
// it. It only recognizes tokens t for which the respective Mode bit
// (1<<-t) is set. It returns EOF at the end of the source. It reports
// scanner errors (read and token errors) by calling s.Error, if not nil;
// otherwise it prints an error message to os.Stderr. Scan never aborts on
// malformed input: it returns a best-effort token and bumps ErrorCount.
func (s *Scanner) Scan() Token {
	ch := s.Peek()

	// reset token text position
	s.tokPos = -1
	s.Line = 0

redo:
	// skip white space
	for ch >= 0 && ch < 64 && s.Whitespace&(1<<uint(ch)) != 0 {
		ch = s.next()
	}

	// start collecting token text
	s.tokBuf = s.tokBuf[:0]
	s.tokPos = s.srcPos - s.lastCharLen

	// set token position
	// (this is a slightly optimized version of the code in Pos())
	s.Offset = s.srcBufOffset + s.tokPos
	if s.column > 0 {
		// common case: last character was not a '\n'
		s.Line = s.line
		s.Column = s.column
	} else {
		// last character was a '\n'
		// (we cannot be at the beginning of the source
		// since we have called next() at least once)
		s.Line = s.line - 1
		s.Column = s.lastLineLen
	}

	// determine token value
	tok := ch
	switch {
	case ch == EOF:
		// EOF is sticky; every further Scan returns it again.
	case s.isIdentRune(ch, 0):
		if s.Mode&ScanIdents != 0 {
			tok = Ident
			ch = s.scanIdentifier()
		} else {
			ch = s.next()
		}
	case isDecimal(ch):
		if s.Mode&(ScanInts|ScanFloats) != 0 {
			tok, ch = s.scanNumber(ch, false)
		} else {
			ch = s.next()
		}
	case ch == '-':
		// a leading minus may begin a negative number or a symbol
		ch = s.next()
		switch {
		case s.isIdentRune(ch, 0):
			if s.Mode&ScanIdents != 0 {
				tok = Ident
				ch = s.scanIdentifier()
			}
		case isDecimal(ch):
			if s.Mode&(ScanInts|ScanFloats) != 0 {
				tok, ch = s.scanNumber(ch, false)
			}
		default:
			if s.Mode&ScanIdents != 0 {
				tok = Ident // bare "-" symbol
			}
		}
	default:
		switch ch {
		case '"':
			if s.Mode&ScanStrings != 0 {
				s.scanString('"')
				tok = String
			}
			ch = s.next()
		case ':':
			ch = s.next()
			if s.Mode&ScanKeywords != 0 && s.isIdentRune(ch, 0) {
				tok = Keyword
				ch = s.scanIdentifier()
			}
		case '.':
			ch = s.next()
			if isDecimal(ch) && s.Mode&ScanFloats != 0 {
				tok, ch = s.scanNumber(ch, true)
			}
		case ';':
			ch = s.next()
			if s.Mode&ScanComments != 0 {
				if s.Mode&SkipComments != 0 {
					s.tokPos = -1 // don't collect token text
					ch = s.scanComment(ch)
					goto redo
				}
				ch = s.scanComment(ch)
				tok = Comment
			}
		case '~':
			// "~@" is the splice-unquote symbol of the reader
			ch = s.next()
			if ch == '@' && s.Mode&ScanIdents != 0 {
				tok = Ident
				ch = s.next()
			}
		case '#':
			// "#{" opens a set literal and reaches the parser as a symbol
			ch = s.next()
			if ch == '{' && s.Mode&ScanIdents != 0 {
				tok = Ident
				ch = s.next()
			}
		default:
			if ch == s.RawDelim && s.Mode&ScanRawStrings != 0 {
				tok = RawString
				ch = s.scanRawString()
			} else {
				ch = s.next()
			}
		}
	}

	// end of token text
	s.tokEnd = s.srcPos - s.lastCharLen

	s.ch = ch
	return tok
}

// Pos returns the position of the character immediately after the character
// or token returned by the last call to Next or Scan. Use the Scanner's
// Position field for the start position of the most recently scanned token.
func (s *Scanner) Pos() (pos Position) {
	pos.Filename = s.Filename
	pos.Offset = s.srcBufOffset + s.srcPos - s.lastCharLen
	switch {
	case s.column > 0:
		// common case: last character was not a '\n'
		pos.Line = s.line
		pos.Column = s.column
	case s.lastLineLen > 0:
		// last character was a '\n'
		pos.Line = s.line - 1
		pos.Column = s.lastLineLen
	default:
		// at the beginning of the source
		pos.Line = 1
		pos.Column = 1
	}
	return
}

// TokenText returns the verbatim source text of the most recently scanned
// token. String and raw string tokens keep their delimiters and escape
// sequences; use UnquoteString or UnquoteRaw for the decoded value.
// Valid after calling Scan.
func (s *Scanner) TokenText() string {
	if s.tokPos < 0 {
		// no token text
		return ""
	}

	if s.tokEnd < s.tokPos {
		s.tokEnd = s.tokPos
	}

	if len(s.tokBuf) == 0 {
		// common case: the entire token text is still in srcBuf
		return string(s.srcBuf[s.tokPos:s.tokEnd])
	}

	// part of the token text was saved in tokBuf: save the rest in
	// tokBuf as well and return its content
	s.tokBuf = append(s.tokBuf, s.srcBuf[s.tokPos:s.tokEnd]...)
	s.tokPos = s.tokEnd // ensure idempotency of TokenText() call
	return string(s.tokBuf)
}
