// Package display renders characters for the command line tools: it groups
// them into rendering categories, maps categories to ANSI color codes and
// produces caret notation for control characters.
package display

import (
	"fmt"
	"strings"

	"github.com/arnodel/ascii"
)

// A Category groups characters for rendering. Unlike the classification
// predicates, categories are mutually exclusive: every byte belongs to
// exactly one.
type Category uint8

const (
	Control Category = iota // control characters, including DEL
	Space                   // the space character
	Digit                   // '0' to '9'
	Upper                   // 'A' to 'Z'
	Lower                   // 'a' to 'z'
	Punct                   // every other graphic character
	Invalid                 // bytes outside the ASCII range
	numCategories
)

var categoryNames = [numCategories]string{
	"control", "space", "digit", "upper", "lower", "punct", "invalid",
}

func (cat Category) String() string {
	if int(cat) < len(categoryNames) {
		return categoryNames[cat]
	}
	return fmt.Sprintf("Category(%d)", uint8(cat))
}

// CategoryByName returns the Category for one of the names accepted in
// configuration files.
func CategoryByName(name string) (Category, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range categoryNames {
		if n == name {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("unknown category: %q", name)
}

// Categorize returns the rendering category of c.
func Categorize(c ascii.Char) Category {
	switch {
	case !c.Valid():
		return Invalid
	case c.IsCtrl():
		return Control
	case c == ascii.Space:
		return Space
	case c.IsDigit():
		return Digit
	case c.IsUpper():
		return Upper
	case c.IsLower():
		return Lower
	default:
		return Punct
	}
}

// Caret returns the caret notation for control characters ("^A" for SOH,
// "^?" for DEL) and the character itself for anything else.
func Caret(c ascii.Char) string {
	if c.IsCtrl() {
		return "^" + string(rune(byte(c)^0x40))
	}
	return c.String()
}
