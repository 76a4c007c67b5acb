// Package ascii provides a value type for single ASCII characters.
//
// The Char type is a byte restricted to the range 0x00 to 0x7F. Each of the
// 128 code points has a named constant, so the type behaves like a closed
// enumeration: values are comparable, ordered by code point and usable as
// map keys.
//
// Construction goes through FromByte or FromRune, which reject anything
// outside the ASCII range with ErrNotASCII. FromUnchecked skips the check
// for callers that have already established the range. Byte and Rune
// convert back without any possibility of failure.
//
// Classification follows the C ctype functions (IsAlpha, IsDigit, IsGraph,
// IsPunct, ...), implemented with plain byte arithmetic rather than lookup
// tables. ToUpper and ToLower convert letter case and leave every other
// character untouched.
//
// Two command line tools are built on the package:
//
//   - cmd/asciitab prints the ASCII table with class-based colors
//   - cmd/asciichk reports non-ASCII bytes in its input
//
// You can install them with:
//
//	go install github.com/arnodel/ascii/cmd/asciitab@latest
//	go install github.com/arnodel/ascii/cmd/asciichk@latest
package ascii
