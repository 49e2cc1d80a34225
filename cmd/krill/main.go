package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	if len(args) < 2 {
		return usageError()
	}
	switch args[1] {
	case "tokens":
		return tokensCommand(args[2:])
	case "inspect":
		return runInspect()
	case "help", "-h", "--help":
		printUsage()
		return nil
	default:
		return usageError()
	}
}

func usageError() error {
	printUsage()
	return errors.New("invalid command")
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "Usage: %s <command> [flags] [args...]\n", prog)
	fmt.Fprintln(os.Stderr, "Commands:")
	fmt.Fprintln(os.Stderr, "  tokens [flags] [file]")
	fmt.Fprintln(os.Stderr, "    scan a source file (or stdin) and print its tokens")
	fmt.Fprintln(os.Stderr, "  inspect")
	fmt.Fprintln(os.Stderr, "    interactively scan expressions and inspect their tokens")
	fmt.Fprintln(os.Stderr, "  help")
	fmt.Fprintln(os.Stderr, "    print this message")
	fmt.Fprintln(os.Stderr, "Flags for tokens:")
	fmt.Fprintln(os.Stderr, "  -comments")
	fmt.Fprintln(os.Stderr, "    emit comment tokens instead of skipping them")
	fmt.Fprintln(os.Stderr, "  -filename string")
	fmt.Fprintln(os.Stderr, "    filename to report in positions when reading stdin")
	fmt.Fprintln(os.Stderr, "  -q")
	fmt.Fprintln(os.Stderr, "    suppress the token listing; report errors only")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
