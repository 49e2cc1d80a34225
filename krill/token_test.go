package krill

import "testing"

func TestTokenString(t *testing.T) {
	tests := []struct {
		tok  Token
		want string
	}{
		{EOF, "EOF"},
		{Ident, "Ident"},
		{Int, "Int"},
		{Float, "Float"},
		{String, "String"},
		{Keyword, "Keyword"},
		{RawString, "RawString"},
		{Comment, "Comment"},
		{'(', `"("`},
		{'\n', `"\n"`},
		{'本', `"本"`},
	}
	for _, tt := range tests {
		if got := TokenString(tt.tok); got != tt.want {
			t.Errorf("TokenString(%d) = %q, want %q", tt.tok, got, tt.want)
		}
	}
}

func TestModeBitsAreDistinct(t *testing.T) {
	bits := []uint{
		ScanIdents, ScanInts, ScanFloats, ScanStrings,
		ScanKeywords, ScanRawStrings, ScanComments, SkipComments,
	}
	var seen uint
	for _, b := range bits {
		if b == 0 || b&(b-1) != 0 {
			t.Errorf("mode bit %#x is not a single bit", b)
		}
		if seen&b != 0 {
			t.Errorf("mode bit %#x overlaps another", b)
		}
		seen |= b
	}
	if KrillTokens&ScanIdents == 0 || KrillTokens&ScanComments == 0 {
		t.Error("KrillTokens is missing expected class bits")
	}
}
