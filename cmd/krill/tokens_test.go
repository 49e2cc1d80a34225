package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDumpTokensListsTokens(t *testing.T) {
	var buf bytes.Buffer
	errs, err := dumpTokens(&buf, "", strings.NewReader("(def a 10)"), false, false)
	if err != nil {
		t.Fatalf("dumpTokens failed: %v", err)
	}
	if errs != 0 {
		t.Fatalf("expected 0 lexical errors, got %d", errs)
	}

	out := buf.String()
	for _, want := range []string{"Ident", "def", "Int", "10", `"("`, `")"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if lines := strings.Count(out, "\n"); lines != 5 {
		t.Errorf("expected 5 token lines, got %d:\n%s", lines, out)
	}
}

func TestDumpTokensReportsPositionsWithFilename(t *testing.T) {
	var buf bytes.Buffer
	if _, err := dumpTokens(&buf, "core.krill", strings.NewReader("x"), false, false); err != nil {
		t.Fatalf("dumpTokens failed: %v", err)
	}
	if !strings.Contains(buf.String(), "core.krill:1:1:") {
		t.Fatalf("output missing position prefix:\n%s", buf.String())
	}
}

func TestDumpTokensCountsErrors(t *testing.T) {
	var buf bytes.Buffer
	errs, err := dumpTokens(&buf, "", strings.NewReader(`"abc`), false, false)
	if err != nil {
		t.Fatalf("dumpTokens failed: %v", err)
	}
	if errs != 1 {
		t.Fatalf("expected 1 lexical error, got %d", errs)
	}
	if !strings.Contains(buf.String(), "literal not terminated") {
		t.Fatalf("output missing error message:\n%s", buf.String())
	}
}

func TestDumpTokensQuietSuppressesListing(t *testing.T) {
	var buf bytes.Buffer
	if _, err := dumpTokens(&buf, "", strings.NewReader("(a b)"), false, true); err != nil {
		t.Fatalf("dumpTokens failed: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected no output in quiet mode, got:\n%s", buf.String())
	}

	buf.Reset()
	errs, err := dumpTokens(&buf, "", strings.NewReader("0b2"), false, true)
	if err != nil {
		t.Fatalf("dumpTokens failed: %v", err)
	}
	if errs != 1 {
		t.Fatalf("expected 1 lexical error, got %d", errs)
	}
	if !strings.Contains(buf.String(), "invalid digit") {
		t.Fatalf("quiet mode should still report errors:\n%s", buf.String())
	}
}

func TestDumpTokensCommentModes(t *testing.T) {
	src := "; note\nx"

	var buf bytes.Buffer
	if _, err := dumpTokens(&buf, "", strings.NewReader(src), false, false); err != nil {
		t.Fatalf("dumpTokens failed: %v", err)
	}
	if strings.Contains(buf.String(), "Comment") {
		t.Fatalf("comments should be skipped by default:\n%s", buf.String())
	}

	buf.Reset()
	if _, err := dumpTokens(&buf, "", strings.NewReader(src), true, false); err != nil {
		t.Fatalf("dumpTokens failed: %v", err)
	}
	if !strings.Contains(buf.String(), "Comment") {
		t.Fatalf("-comments should keep comment tokens:\n%s", buf.String())
	}
}

func TestTokensCommandMissingFile(t *testing.T) {
	err := tokensCommand([]string{filepath.Join(t.TempDir(), "absent.krill")})
	if err == nil {
		t.Fatalf("expected read error")
	}
	if !strings.Contains(err.Error(), "read source") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTokensCommandTooManyFiles(t *testing.T) {
	err := tokensCommand([]string{"a.krill", "b.krill"})
	if err == nil {
		t.Fatalf("expected argument error")
	}
	if !strings.Contains(err.Error(), "at most one file") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTokensCommandReportsErrorCount(t *testing.T) {
	path := writeSource(t, `(def n 0b2)`)
	err := tokensCommand([]string{"-q", path})
	if err == nil {
		t.Fatalf("expected lexical error summary")
	}
	if !strings.Contains(err.Error(), "1 lexical error(s)") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestTokensCommandCleanFile(t *testing.T) {
	path := writeSource(t, "(def greet (fn (name) name))\n")
	if err := tokensCommand([]string{"-q", path}); err != nil {
		t.Fatalf("tokensCommand failed: %v", err)
	}
}

func writeSource(t *testing.T, source string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "source.krill")
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		t.Fatalf("write source: %v", err)
	}
	return path
}
