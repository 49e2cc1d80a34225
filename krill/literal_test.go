package krill

import (
	"strings"
	"testing"
)

func TestScanStringForms(t *testing.T) {
	tests := []string{
		`""`,
		`" "`,
		`"a"`,
		`"本"`,
		`"\a"`, `"\b"`, `"\f"`, `"\n"`, `"\r"`, `"\t"`, `"\v"`,
		`"\\"`,
		`"\""`,
		`"\000"`, `"\777"`,
		`"\x00"`, `"\xff"`,
		`"猪"`,
		`"\U00000000"`, `"\U0000ffAB"`,
		`"hel\"lo"`,
		`"mixed \t tabs é and \x41 bytes"`,
	}
	for _, src := range tests {
		tok, text, errs := scanOne(t, src+" ")
		if tok != String || text != src || errs != 0 {
			t.Errorf("%q: got %s %q with %d errors", src, TokenString(tok), text, errs)
		}
	}
}

func TestScanStringErrors(t *testing.T) {
	tests := []struct {
		src  string
		text string
		errs int
	}{
		{`"a\qb"`, `"a\qb"`, 1},   // unsupported escape target
		{`"\x1"`, `"\x1"`, 1},     // truncated hex escape
		{`"\u12"`, `"\u12"`, 1},   // truncated unicode escape
		{`"\U0001"`, `"\U0001"`, 1},
		{`"\09"`, `"\09"`, 1},     // octal escape needs three octal digits
		{`"abc`, `"abc`, 1},       // EOF before closing quote
		{`"a` + "\n", `"a` + "\n", 1}, // newline cuts the literal; it stays in the text
	}
	for _, tt := range tests {
		tok, text, errs := scanOne(t, tt.src)
		if tok != String {
			t.Errorf("%q: tok = %s, want String", tt.src, TokenString(tok))
		}
		if text != tt.text {
			t.Errorf("%q: text = %q, want %q", tt.src, text, tt.text)
		}
		if errs != tt.errs {
			t.Errorf("%q: %d errors, want %d", tt.src, errs, tt.errs)
		}
	}
}

func TestScanRawStringForms(t *testing.T) {
	tests := []string{
		"¬¬",
		"¬hello¬",
		`¬\¬`, // backslashes are literal inside raw strings
		`¬\\¬`,
		"¬hel¬¬lo¬",
		"¬¬¬¬",
		"¬multi\nline\ncontent¬",
		"¬;; not a comment ;;¬",
	}
	for _, src := range tests {
		tok, text, errs := scanOne(t, src+" ")
		if tok != RawString || text != src || errs != 0 {
			t.Errorf("%q: got %s %q with %d errors", src, TokenString(tok), text, errs)
		}
	}
}

func TestScanRawStringDoubledDelimiter(t *testing.T) {
	// the doubled pair must not terminate the literal
	s := new(Scanner).Init(strings.NewReader("¬abc¬¬def¬"))
	if tok := s.Scan(); tok != RawString || s.TokenText() != "¬abc¬¬def¬" {
		t.Fatalf("got %s %q, want one RawString token", TokenString(tok), s.TokenText())
	}
	if got, err := UnquoteRaw(s.TokenText(), s.RawDelim); err != nil || got != "abc¬def" {
		t.Fatalf("UnquoteRaw = %q, %v; want %q", got, err, "abc¬def")
	}
	if tok := s.Scan(); tok != EOF {
		t.Fatalf("tok = %s, want EOF", TokenString(tok))
	}
}

func TestScanRawStringUnterminated(t *testing.T) {
	tok, text, errs := scanOne(t, "¬abc")
	if tok != RawString || text != "¬abc" || errs != 1 {
		t.Fatalf("got %s %q with %d errors, want RawString with 1 error", TokenString(tok), text, errs)
	}
}

func TestScanRawStringCustomDelimiter(t *testing.T) {
	s := new(Scanner).Init(strings.NewReader("|a||b| ¬c¬"))
	s.RawDelim = '|'
	if tok := s.Scan(); tok != RawString || s.TokenText() != "|a||b|" {
		t.Fatalf("got %s %q, want RawString |a||b|", TokenString(tok), s.TokenText())
	}
	// the default delimiter is now an ordinary character pair around c
	if tok := s.Scan(); tok != '¬' {
		t.Fatalf("tok = %s, want '¬'", TokenString(tok))
	}
}

func TestScanRawStringModeGating(t *testing.T) {
	s := new(Scanner).Init(strings.NewReader("¬a¬"))
	s.Mode = KrillTokens &^ ScanRawStrings
	if tok := s.Scan(); tok != '¬' || s.TokenText() != "¬" {
		t.Fatalf("got %s %q, want single '¬'", TokenString(tok), s.TokenText())
	}
}

func TestScanComments(t *testing.T) {
	tests := []struct {
		src  string
		text string
	}{
		{";", ";"},
		{"; comment", "; comment"},
		{";;", ";;"},
		{";; comment", ";; comment"},
		{";;//", ";;//"},
		{"; trailing\nrest", "; trailing"},
	}
	for _, tt := range tests {
		s := new(Scanner).Init(strings.NewReader(tt.src))
		s.Mode = KrillTokens &^ SkipComments
		if tok := s.Scan(); tok != Comment || s.TokenText() != tt.text {
			t.Errorf("%q: got %s %q, want Comment %q", tt.src, TokenString(tok), s.TokenText(), tt.text)
		}
	}
}

func TestScanCommentsSkipped(t *testing.T) {
	s := new(Scanner).Init(strings.NewReader("; one\n(def ;; two\na)"))
	want := []tokenPair{
		{'(', "("},
		{Ident, "def"},
		{Ident, "a"},
		{')', ")"},
	}
	for _, w := range want {
		tok := s.Scan()
		if tok != w.tok || s.TokenText() != w.text {
			t.Fatalf("got %s %q, want %s %q", TokenString(tok), s.TokenText(), TokenString(w.tok), w.text)
		}
	}
	if tok := s.Scan(); tok != EOF {
		t.Fatalf("tok = %s, want EOF", TokenString(tok))
	}
}

func TestScanCommentModeGating(t *testing.T) {
	s := new(Scanner).Init(strings.NewReader("; x"))
	s.Mode = ScanIdents
	if tok := s.Scan(); tok != ';' || s.TokenText() != ";" {
		t.Fatalf("got %s %q, want single ';'", TokenString(tok), s.TokenText())
	}
}

func TestScanStringModeGating(t *testing.T) {
	s := new(Scanner).Init(strings.NewReader(`"foo"`))
	s.Mode = ScanIdents
	want := []tokenPair{
		{'"', `"`},
		{Ident, "foo"},
		{'"', `"`},
	}
	for _, w := range want {
		tok := s.Scan()
		if tok != w.tok || s.TokenText() != w.text {
			t.Fatalf("got %s %q, want %s %q", TokenString(tok), s.TokenText(), TokenString(w.tok), w.text)
		}
	}
}

func TestScanReaderDigraphs(t *testing.T) {
	s := new(Scanner).Init(strings.NewReader("~@ ~ @ #{ # }"))
	want := []tokenPair{
		{Ident, "~@"},
		{'~', "~"},
		{'@', "@"},
		{Ident, "#{"},
		{'#', "#"},
		{'}', "}"},
	}
	for _, w := range want {
		tok := s.Scan()
		if tok != w.tok || s.TokenText() != w.text {
			t.Fatalf("got %s %q, want %s %q", TokenString(tok), s.TokenText(), TokenString(w.tok), w.text)
		}
	}
}
