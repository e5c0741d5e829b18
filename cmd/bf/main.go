package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/mgomes/bfscript/bf"
)

var (
	stderrRenderer = lipgloss.NewRenderer(os.Stderr)

	errorColor  = lipgloss.Color("#EF4444")
	accentColor = lipgloss.Color("#3B82F6")
	mutedColor  = lipgloss.Color("#6B7280")

	errorStyle = stderrRenderer.NewStyle().
			Foreground(errorColor).
			Bold(true)

	headerStyle = stderrRenderer.NewStyle().
			Foreground(accentColor).
			Bold(true)

	mutedStyle = stderrRenderer.NewStyle().
			Foreground(mutedColor)
)

func main() {
	if err := runCLI(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, errorStyle.Render("error:"), err)
		os.Exit(1)
	}
}

func runCLI(args []string) error {
	fs := flag.NewFlagSet("bf", flag.ContinueOnError)
	fs.SetOutput(new(flagErrorSink))
	maxSteps := fs.Int("max-steps", 0, "stop after this many instructions (0 = no limit)")
	if err := fs.Parse(args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage()
			return nil
		}
		printUsage()
		return err
	}
	if *maxSteps < 0 {
		return fmt.Errorf("-max-steps must not be negative, got %d", *maxSteps)
	}

	remaining := fs.Args()
	switch len(remaining) {
	case 0:
		return runREPL()
	case 1:
		return runFile(remaining[0], *maxSteps)
	default:
		return usageError(len(remaining))
	}
}

func runFile(path string, maxSteps int) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read source: %w", err)
	}
	program, err := bf.Compile(string(source))
	if err != nil {
		return fmt.Errorf("compile failed: %w", err)
	}

	out, flush := newOutput(os.Stdout)
	defer flush()
	it := bf.NewInterpreter(program, bf.Config{
		Input:     bufio.NewReader(os.Stdin),
		Output:    out,
		StepQuota: maxSteps,
	})
	if err := it.Run(context.Background()); err != nil {
		return fmt.Errorf("execution failed: %w", err)
	}
	return nil
}

// newOutput writes straight to a terminal and buffers anything else. The
// interpreter flushes buffered output before every input read.
func newOutput(f *os.File) (io.Writer, func()) {
	if isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()) {
		return f, func() {}
	}
	w := bufio.NewWriter(f)
	return w, func() { _ = w.Flush() }
}

func usageError(got int) error {
	printUsage()
	return fmt.Errorf("too many arguments: expected one source file, got %d", got)
}

func printUsage() {
	prog := filepath.Base(os.Args[0])
	fmt.Fprintf(os.Stderr, "%s %s [flags] [file]\n", headerStyle.Render("Usage:"), prog)
	fmt.Fprintln(os.Stderr, "Runs a Brainfuck program, reading input from stdin and writing output to stdout.")
	fmt.Fprintln(os.Stderr, mutedStyle.Render("Running without a file is reserved for an interactive mode, which is not available yet."))
	fmt.Fprintln(os.Stderr, "Flags:")
	fmt.Fprintln(os.Stderr, "  -max-steps int")
	fmt.Fprintln(os.Stderr, "    stop after this many instructions (0 = no limit)")
}

type flagErrorSink struct{}

func (flagErrorSink) Write(p []byte) (int, error) {
	return len(p), nil
}
