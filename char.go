package ascii

import (
	"errors"
	"fmt"
	"strconv"
)

// A Char is a single ASCII character. It is a byte restricted to the range
// 0x00 to 0x7F, so the 128 values form a closed set: each one has a named
// constant (see NUL, Space, Digit0, UpperA, ...), and values compare and
// order by code point.
//
// The zero value is NUL. Build values with FromByte or FromRune, which
// enforce the range, or with FromUnchecked when the range is already known
// to hold. Converting a byte directly with Char(b) bypasses the check;
// Valid reports whether such a value is in range.
type Char byte

// ErrNotASCII is returned by FromByte and FromRune when their argument lies
// outside the ASCII range.
var ErrNotASCII = errors.New("not an ASCII character")

// FromByte returns the Char with the same code point as b. It fails with
// ErrNotASCII if b is greater than 0x7F.
func FromByte(b byte) (Char, error) {
	if b > 0x7F {
		return 0, ErrNotASCII
	}
	return Char(b), nil
}

// FromRune returns the Char with the same code point as r. It fails with
// ErrNotASCII if r is not an ASCII code point; there is no truncation, so
// multi-byte runes such as 'λ' are rejected rather than mapped to a byte.
func FromRune(r rune) (Char, error) {
	// Converting to uint32 makes negative runes large, so one comparison
	// covers both ends of the range.
	if uint32(r) > 0x7F {
		return 0, ErrNotASCII
	}
	return Char(r), nil
}

// FromUnchecked converts b to a Char without validating it. The caller must
// guarantee that b is at most 0x7F: for larger values the classification
// and conversion methods return unspecified results.
func FromUnchecked[T byte | rune](b T) Char {
	return Char(b)
}

// Must returns c unchanged, panicking if err is not nil. It allows compact
// initialization of values known to be in range:
//
//	bang := ascii.Must(ascii.FromByte('!'))
func Must(c Char, err error) Char {
	if err != nil {
		panic(err)
	}
	return c
}

// Byte returns the code point of c as a byte.
func (c Char) Byte() byte {
	return byte(c)
}

// Rune returns the code point of c as a rune.
func (c Char) Rune() rune {
	return rune(c)
}

// Valid reports whether c lies in the ASCII range. It is true for every
// value built with FromByte or FromRune and can only be false for values
// obtained by direct conversion or FromUnchecked.
func (c Char) Valid() bool {
	return c <= 0x7F
}

// String returns the character itself, e.g. "t" for LowerT.
func (c Char) String() string {
	return string(rune(c))
}

// GoString returns the quoted character, e.g. "'t'" for LowerT, so the %#v
// verb shows Char values in rune literal form.
func (c Char) GoString() string {
	return strconv.QuoteRune(rune(c))
}

var (
	_ fmt.Stringer   = Char(0)
	_ fmt.GoStringer = Char(0)
)
