package display

import (
	"fmt"
	"io"
	"strings"
)

// A Colorizer maps rendering categories to ANSI color codes. The nil
// Colorizer is valid and writes plain text.
type Colorizer struct {
	CategoryCodes [numCategories][]byte
	ResetCode     []byte
}

// CategoryCode returns the color code for cat.
func (c *Colorizer) CategoryCode(cat Category) []byte {
	return c.CategoryCodes[cat]
}

// SetCategoryCode replaces the color code for cat.
func (c *Colorizer) SetCategoryCode(cat Category, code []byte) {
	c.CategoryCodes[cat] = code
}

// WriteString writes text to w wrapped in the color code for cat. Write
// errors are left to the writer: the tools write through a buffered writer
// and check the error once when flushing.
func (c *Colorizer) WriteString(w io.Writer, cat Category, text string) {
	if c == nil {
		io.WriteString(w, text)
		return
	}
	w.Write(c.CategoryCodes[cat])
	io.WriteString(w, text)
	w.Write(c.ResetCode)
}

// Some color ANSI codes
var (
	Reset = []byte("\033[0m")

	Black   = []byte("\033[30m")
	Red     = []byte("\033[31m")
	Green   = []byte("\033[32m")
	Yellow  = []byte("\033[33m")
	Blue    = []byte("\033[34m")
	Magenta = []byte("\033[35m")
	Cyan    = []byte("\033[36m")
	White   = []byte("\033[37m")

	DimBlack   = []byte("\033[30;2m")
	DimRed     = []byte("\033[31;2m")
	DimGreen   = []byte("\033[32;2m")
	DimYellow  = []byte("\033[33;2m")
	DimBlue    = []byte("\033[34;2m")
	DimMagenta = []byte("\033[35;2m")
	DimCyan    = []byte("\033[36;2m")
	DimWhite   = []byte("\033[37;2m")

	BrightBlack   = []byte("\033[30;1m")
	BrightRed     = []byte("\033[31;1m")
	BrightGreen   = []byte("\033[32;1m")
	BrightYellow  = []byte("\033[33;1m")
	BrightBlue    = []byte("\033[34;1m")
	BrightMagenta = []byte("\033[35;1m")
	BrightCyan    = []byte("\033[36;1m")
	BrightWhite   = []byte("\033[37;1m")
)

// Colors maps the color names accepted in configuration files to their
// ANSI codes.
var Colors = map[string][]byte{
	"black":   Black,
	"red":     Red,
	"green":   Green,
	"yellow":  Yellow,
	"blue":    Blue,
	"magenta": Magenta,
	"cyan":    Cyan,
	"white":   White,

	"dim-black":   DimBlack,
	"dim-red":     DimRed,
	"dim-green":   DimGreen,
	"dim-yellow":  DimYellow,
	"dim-blue":    DimBlue,
	"dim-magenta": DimMagenta,
	"dim-cyan":    DimCyan,
	"dim-white":   DimWhite,

	"bright-black":   BrightBlack,
	"bright-red":     BrightRed,
	"bright-green":   BrightGreen,
	"bright-yellow":  BrightYellow,
	"bright-blue":    BrightBlue,
	"bright-magenta": BrightMagenta,
	"bright-cyan":    BrightCyan,
	"bright-white":   BrightWhite,
}

// ColorByName returns the ANSI code for a color name.
func ColorByName(name string) ([]byte, error) {
	code, ok := Colors[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("unknown color: %q", name)
	}
	return code, nil
}

// The colors I chose :)
var DefaultColorizer = Colorizer{
	CategoryCodes: [numCategories][]byte{
		Control: DimWhite,
		Space:   DimCyan,
		Digit:   Yellow,
		Upper:   White,
		Lower:   Green,
		Punct:   Cyan,
		Invalid: BrightRed,
	},
	ResetCode: Reset,
}
