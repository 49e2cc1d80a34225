package krill

import "fmt"

// Token is the result of a single Scan call: one of the class constants
// below, or the Unicode code point of a single character.
type Token = rune

// Token classes occupy a negative range so they can never collide with a
// real code point.
const (
	EOF Token = -(iota + 1)
	Ident
	Int
	Float
	String
	Keyword
	RawString
	Comment
	skipComment
)

// Predefined mode bits to control recognition of tokens. For instance, to
// configure a Scanner that only recognizes identifiers and integers and
// skips comments, set its Mode field to:
//
//	ScanIdents | ScanInts | ScanComments | SkipComments
//
// Unrecognized tokens are not ignored: with a class bit cleared, the scanner
// returns the respective individual characters instead. With ScanStrings
// cleared, `"foo"` becomes the sequence '"' Ident '"'.
const (
	ScanIdents     = 1 << -Ident
	ScanInts       = 1 << -Int
	ScanFloats     = 1 << -Float // includes Ints
	ScanStrings    = 1 << -String
	ScanKeywords   = 1 << -Keyword
	ScanRawStrings = 1 << -RawString
	ScanComments   = 1 << -Comment
	SkipComments   = 1 << -skipComment // if set with ScanComments, comments become white space

	// KrillTokens selects everything the Krill reader consumes.
	KrillTokens = ScanIdents | ScanFloats | ScanStrings | ScanKeywords | ScanRawStrings | ScanComments | SkipComments
)

// KrillWhitespace is the default value for the Scanner's Whitespace field.
const KrillWhitespace = 1<<'\t' | 1<<'\n' | 1<<'\r' | 1<<' '

var tokenNames = map[Token]string{
	EOF:       "EOF",
	Ident:     "Ident",
	Int:       "Int",
	Float:     "Float",
	String:    "String",
	Keyword:   "Keyword",
	RawString: "RawString",
	Comment:   "Comment",
}

// TokenString returns a printable string for a token or Unicode character.
func TokenString(tok Token) string {
	if s, ok := tokenNames[tok]; ok {
		return s
	}
	return fmt.Sprintf("%q", string(tok))
}
