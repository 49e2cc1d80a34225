package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"

	"github.com/krill-lang/krill/krill"
)

var (
	identStyle   = lipgloss.NewStyle().Foreground(accentColor)
	numberStyle  = lipgloss.NewStyle().Foreground(successColor)
	stringStyle  = lipgloss.NewStyle().Foreground(highlightColor)
	commentStyle = lipgloss.NewStyle().Foreground(mutedColor)
	charStyle    = lipgloss.NewStyle().Bold(true)
	posStyle     = lipgloss.NewStyle().Foreground(mutedColor)
	lexErrStyle  = lipgloss.NewStyle().Foreground(errorColor)
)

func tokensCommand(args []string) error {
	fs := flag.NewFlagSet("tokens", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	keepComments := fs.Bool("comments", false, "emit comment tokens instead of skipping them")
	filename := fs.String("filename", "", "filename to report in positions when reading stdin")
	quiet := fs.Bool("q", false, "suppress the token listing; report errors only")
	if err := fs.Parse(args); err != nil {
		return err
	}

	remaining := fs.Args()
	var src io.Reader
	name := *filename
	switch len(remaining) {
	case 0:
		src = os.Stdin
	case 1:
		path, err := filepath.Abs(remaining[0])
		if err != nil {
			return fmt.Errorf("resolve source path: %w", err)
		}
		f, err := os.Open(path)
		if err != nil {
			return fmt.Errorf("read source: %w", err)
		}
		defer f.Close()
		src = f
		if name == "" {
			name = remaining[0]
		}
	default:
		return fmt.Errorf("krill tokens: expected at most one file, got %d", len(remaining))
	}

	errs, err := dumpTokens(os.Stdout, name, src, *keepComments, *quiet)
	if err != nil {
		return err
	}
	if errs > 0 {
		return fmt.Errorf("%d lexical error(s)", errs)
	}
	return nil
}

// dumpTokens scans src to EOF and writes one line per token to w. It
// returns the number of lexical errors encountered; scanning continues
// past them.
func dumpTokens(w io.Writer, name string, src io.Reader, keepComments, quiet bool) (int, error) {
	s := new(krill.Scanner).Init(src)
	s.Filename = name
	if keepComments {
		s.Mode &^= krill.SkipComments
	}
	s.Error = func(s *krill.Scanner, msg string) {
		pos := s.Pos()
		fmt.Fprintf(w, "%s %s\n", posStyle.Render(pos.String()+":"), lexErrStyle.Render(msg))
	}

	for tok := s.Scan(); tok != krill.EOF; tok = s.Scan() {
		if quiet {
			continue
		}
		fmt.Fprintf(w, "%s %-9s %s\n",
			posStyle.Render(s.Position.String()+":"),
			krill.TokenString(tok),
			styleFor(tok).Render(s.TokenText()))
	}
	if err := s.Err(); err != nil {
		return s.ErrorCount, fmt.Errorf("read source: %w", err)
	}
	return s.ErrorCount, nil
}

func styleFor(tok krill.Token) lipgloss.Style {
	switch tok {
	case krill.Ident, krill.Keyword:
		return identStyle
	case krill.Int, krill.Float:
		return numberStyle
	case krill.String, krill.RawString:
		return stringStyle
	case krill.Comment:
		return commentStyle
	default:
		return charStyle
	}
}
