package ascii

// Classification predicates in the style of the C ctype functions,
// restricted to ASCII. Each one is a few byte operations; range tests use
// the fact that byte subtraction wraps, so a single unsigned comparison
// covers both bounds. No lookup tables.
//
// The predicates are well defined for every byte value: a Char outside the
// ASCII range (see FromUnchecked) is simply not a member of any class.

// IsAlpha reports whether c is a letter, 'A' to 'Z' or 'a' to 'z'.
func (c Char) IsAlpha() bool {
	// Setting the case bit folds uppercase onto lowercase.
	l := byte(c) | 0x20
	return l >= 'a' && l <= 'z'
}

// IsDigit reports whether c is a decimal digit, '0' to '9'.
func (c Char) IsDigit() bool {
	return c >= Digit0 && c <= Digit9
}

// IsAlnum reports whether c is a letter or a decimal digit.
func (c Char) IsAlnum() bool {
	return c.IsAlpha() || c.IsDigit()
}

// IsBlank reports whether c is a space or a horizontal tab.
func (c Char) IsBlank() bool {
	return c == Space || c == HT
}

// IsCtrl reports whether c is a control character: below 0x20, or DEL.
func (c Char) IsCtrl() bool {
	return byte(c) < 0x20 || c == DEL
}

// IsGraph reports whether c has a visible glyph, '!' to '~'. Space is
// printable but not graphic.
func (c Char) IsGraph() bool {
	return byte(c)-0x21 < 0x5E
}

// IsPrint reports whether c is printable, ' ' to '~'.
func (c Char) IsPrint() bool {
	return byte(c)-0x20 < 0x5F
}

// IsLower reports whether c is a lowercase letter.
func (c Char) IsLower() bool {
	return byte(c)-'a' < 26
}

// IsUpper reports whether c is an uppercase letter.
func (c Char) IsUpper() bool {
	return byte(c)-'A' < 26
}

// IsPunct reports whether c is graphic but not alphanumeric.
func (c Char) IsPunct() bool {
	return c.IsGraph() && !c.IsAlnum()
}

// IsHex reports whether c is a hexadecimal digit, '0' to '9', 'a' to 'f'
// or 'A' to 'F'.
func (c Char) IsHex() bool {
	return c.IsDigit() || (byte(c)|0x20)-'a' < 6
}

// IsSpace reports whether c is whitespace: ' ', '\t', '\n', '\v', '\f'
// or '\r'.
func (c Char) IsSpace() bool {
	return c == Space || byte(c)-'\t' < 5
}
