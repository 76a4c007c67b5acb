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
	var cols int
	var colorMode string
	var configPath string
	var verbose bool
	var colorizer *display.Colorizer

	flag.Usage = printUsage

	flag.IntVar(&cols, "cols", 0, "number of table columns (default from config, else 4)")
	flag.StringVar(&colorMode, "color", "auto", "colorize output: auto, always, never")
	flag.StringVar(&configPath, "config", "", "config file to load (default: asciitab/config.toml in the user config directory)")
	flag.BoolVar(&verbose, "v", false, "log debug diagnostics to stderr")
	flag.Parse()

	logger := logging.Setup("asciitab", verbose)

	cfg, path, err := resolveConfig(configPath)
	if err != nil {
		fatalError("error: %s", err)
	}
	if path != "" {
		logger.Debug().Str("path", path).Msg("loaded config")
	}

	if cols != 0 {
		if cols < 1 || cols > maxCols {
			fatalError("invalid -cols value: %d (must be between 1 and %d)", cols, maxCols)
		}
		cfg.Cols = cols
	}

	// Handle color mode
	if isatty.IsTerminal(os.Stdout.Fd()) {
		colorizer = &cfg.Colorizer
	}
	switch colorMode {
	case "always":
		colorizer = &cfg.Colorizer
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

	logger.Debug().Int("cols", cfg.Cols).Bool("colors", colorizer != nil).Msg("rendering table")

	out := bufio.NewWriter(stdout)
	printTable(out, cfg.Cols, colorizer)
	err = out.Flush()
	if err != nil {
		if errors.Is(err, syscall.EPIPE) {
			// stdout is a pipe and something closed it (e.g. 'head' or 'less').
			// In this case we don't want to complain.
			return
		}
		fatalError("error: %s", err)
	}
}

// printTable writes the 128 character table to out in column-major order,
// the way man ascii lays it out. Each cell shows the decimal and
// hexadecimal code points and the conventional name, colored by category
// unless colorizer is nil.
func printTable(out *bufio.Writer, cols int, colorizer *display.Colorizer) {
	rows := (128 + cols - 1) / cols
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			n := row + col*rows
			if n > 0x7F {
				continue
			}
			c := ascii.Char(n)
			last := col == cols-1 || n+rows > 0x7F
			fmt.Fprintf(out, "%3d %02X ", n, n)
			name := c.Name()
			if !last {
				name = fmt.Sprintf("%-4s", name)
			}
			colorizer.WriteString(out, display.Categorize(c), name)
			if !last {
				out.WriteString("  ")
			}
		}
		out.WriteByte('\n')
	}
}

func fatalError(msg string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, msg, args...)
	os.Exit(1)
}

func printUsage() {
	fmt.Fprint(os.Stderr, `asciitab - print the ASCII table

USAGE:
  asciitab [options]

DESCRIPTION:
  asciitab prints the 128 ASCII characters with their decimal and
  hexadecimal code points and conventional names. When stdout is a
  terminal, characters are colored by class.

OPTIONS:
  -cols N       Number of table columns (default: 4)
  -color MODE   Control color output (default: auto)
                Modes: auto, always, never
  -config PATH  Config file to load (default: the asciitab/config.toml
                file in the user config directory, if present)
  -v            Log debug diagnostics to stderr

CONFIG FILE:
  The config file is TOML. It can set the default column count and
  override the color of each character class:

    cols = 8

    [colors]
    digit = "bright-yellow"
    punct = "dim-cyan"

  Classes: control, space, digit, upper, lower, punct
  Colors: black, red, green, yellow, blue, magenta, cyan, white,
  each also in a dim- and a bright- variant.

EXAMPLES:
  # The classic four column table
  asciitab

  # Eight columns, no colors
  asciitab -cols 8 -color never
`)
}
