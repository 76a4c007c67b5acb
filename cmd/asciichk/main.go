package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime/debug"
	"syscall"

	"github.com/arnodel/ascii"
	"github.com/arnodel/ascii/internal/display"
	"github.com/arnodel/ascii/internal/logging"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

func main() {
	// Do not handle SIGPIPE, we'll do it ourselves (see error handling at the bottom of main).
	signal.Ignore(syscall.SIGPIPE)

	// Display a stack trace on panic
	defer func() {
		if e := recover(); e != nil {
			fmt.Fprintf(os.Stderr, "%s: %s", e, debug.Stack())
		}
	}()

	// Parse the command line arguments
	var all bool
	var quiet bool
	var maxReports int
	var colorMode string
	var verbose bool
	var colorizer *display.Colorizer

	flag.Usage = printUsage

	flag.BoolVar(&all, "a", false, "report every byte, not just the non-ASCII ones")
	flag.BoolVar(&quiet, "q", false, "no output, exit status only")
	flag.IntVar(&maxReports, "max", 0, "stop after N findings (0 means no limit)")
	flag.StringVar(&colorMode, "color", "auto", "colorize output: auto, always, never")
	flag.BoolVar(&verbose, "v", false, "log a scan summary to stderr")
	flag.Parse()

	logger := logging.Setup("asciichk", verbose)

	// Handle color mode
	if isatty.IsTerminal(os.Stdout.Fd()) {
		colorizer = &display.DefaultColorizer
	}
	switch colorMode {
	case "always":
		colorizer = &display.DefaultColorizer
	case "never":
		colorizer = nil
	case "auto":
		// Already set based on isatty check above
	default:
		fatalError("invalid -color value: %q (use auto, always, or never)", colorMode)
	}

	// Set up stdout for handling colors
	var stdout io.Writer = os.Stdout
	if colorizer != nil {
		stdout = colorable.NewColorableStdout()
	}
	out := bufio.NewWriter(stdout)

	ck := &checker{
		out:       out,
		colorizer: colorizer,
		all:       all,
		quiet:     quiet,
		max:       maxReports,
	}

	// Scan stdin, or each file argument in turn
	var scanErr error
	if args := flag.Args(); len(args) == 0 {
		scanErr = ck.checkReader("", os.Stdin)
	} else {
		for _, name := range args {
			f, err := os.Open(name)
			if err != nil {
				fatalError("error opening %q: %s", name, err)
			}
			prefix := name
			if len(args) == 1 {
				prefix = ""
			}
			scanErr = ck.checkReader(prefix, f)
			f.Close()
			if scanErr != nil || ck.done() {
				break
			}
		}
	}

	err := out.Flush()
	if scanErr != nil {
		err = scanErr
	}
	if err != nil && !errors.Is(err, syscall.EPIPE) {
		// A closed pipe on stdout (e.g. 'head' or 'less') is not worth
		// complaining about; anything else is.
		fatalError("error: %s", err)
	}

	logger.Debug().Int64("scanned", ck.scanned).Int64("findings", ck.findings).Msg("scan complete")

	if ck.findings > 0 {
		os.Exit(1)
	}
}

// A checker scans readers byte by byte, reporting non-ASCII bytes, or every
// byte in all mode. Reports accumulate across readers so a whole file list
// shares one findings count.
type checker struct {
	out       *bufio.Writer
	colorizer *display.Colorizer
	all       bool
	quiet     bool
	max       int
	scanned   int64
	findings  int64
}

// done reports whether the findings limit has been reached.
func (ck *checker) done() bool {
	return ck.max > 0 && ck.findings >= int64(ck.max)
}

// checkReader scans r until EOF or until the findings limit is reached.
// The prefix, when not empty, labels each report line with the input name.
func (ck *checker) checkReader(prefix string, r io.Reader) error {
	in := bufio.NewReader(r)
	var offset int64
	for {
		b, err := in.ReadByte()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		ck.scanned++
		c, convErr := ascii.FromByte(b)
		if convErr != nil {
			ck.findings++
			if !ck.quiet {
				if err := ck.reportInvalid(prefix, offset, b, convErr); err != nil {
					return err
				}
			}
			if ck.done() {
				return nil
			}
		} else if ck.all && !ck.quiet {
			if err := ck.reportChar(prefix, offset, c); err != nil {
				return err
			}
		}
		offset++
	}
}

func (ck *checker) reportInvalid(prefix string, offset int64, b byte, convErr error) error {
	ck.printPrefix(prefix, offset)
	ck.colorizer.WriteString(ck.out, display.Invalid, fmt.Sprintf("0x%02X", b))
	_, err := fmt.Fprintf(ck.out, " %s\n", convErr)
	return err
}

func (ck *checker) reportChar(prefix string, offset int64, c ascii.Char) error {
	cat := display.Categorize(c)
	ck.printPrefix(prefix, offset)
	ck.colorizer.WriteString(ck.out, cat, fmt.Sprintf("%-2s", display.Caret(c)))
	_, err := fmt.Fprintf(ck.out, " %3d 0x%02X %-4s %s\n", c.Byte(), c.Byte(), c.Name(), cat)
	return err
}

func (ck *checker) printPrefix(prefix string, offset int64) {
	if prefix != "" {
		fmt.Fprintf(ck.out, "%s:", prefix)
	}
	fmt.Fprintf(ck.out, "%d: ", offset)
}

func fatalError(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, msg, args...)
	os.Exit(2)
}

func printUsage() {
	fmt.Fprint(os.Stderr, `asciichk - find non-ASCII bytes

USAGE:
  asciichk [options] [file...]

DESCRIPTION:
  asciichk scans its input for bytes outside the ASCII range and reports
  each one with its offset. With no file arguments it reads stdin. Input
  is processed as a stream, so arbitrarily large files and pipes work in
  constant memory.

EXIT STATUS:
  0  the input is pure ASCII
  1  at least one non-ASCII byte was found
  2  an error occurred

OPTIONS:
  -a            Report every byte with its code point, name and class,
                not just the non-ASCII ones
  -q            Produce no output, just the exit status
  -max N        Stop after N findings (default: no limit)
  -color MODE   Control color output (default: auto)
                Modes: auto, always, never
  -v            Log a scan summary to stderr

EXAMPLES:
  # Check that a source tree is pure ASCII
  cat src/*.go | asciichk

  # Where is the first stray byte?
  asciichk -max 1 README.md

  # Dump a small file byte by byte
  asciichk -a notes.txt | less
`)
}
