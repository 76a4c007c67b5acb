package ascii

// Case conversion touches only the 26 ASCII letters; every other character
// maps to itself, including letters with diacritics smuggled in through
// FromUnchecked.

// ToUpper returns the uppercase form of c if c is a lowercase letter, and c
// itself otherwise.
func (c Char) ToUpper() Char {
	if c.IsLower() {
		return c - 0x20
	}
	return c
}

// ToLower returns the lowercase form of c if c is an uppercase letter, and
// c itself otherwise.
func (c Char) ToLower() Char {
	if c.IsUpper() {
		return c + 0x20
	}
	return c
}

// EqualFold reports whether c and d are equal ignoring letter case.
func (c Char) EqualFold(d Char) bool {
	return c.ToLower() == d.ToLower()
}
