package ascii

// The 128 ASCII characters, one named constant per code point.
//
// Control characters use their conventional mnemonics, letters and digits
// are named after their case and value, and punctuation after the symbol.

// Control characters, 0x00 to 0x1F.
const (
	NUL Char = 0x00 // null
	SOH Char = 0x01 // start of heading
	STX Char = 0x02 // start of text
	ETX Char = 0x03 // end of text
	EOT Char = 0x04 // end of transmission
	ENQ Char = 0x05 // enquiry
	ACK Char = 0x06 // acknowledge
	BEL Char = 0x07 // bell
	BS  Char = 0x08 // backspace
	HT  Char = 0x09 // horizontal tab
	LF  Char = 0x0A // line feed
	VT  Char = 0x0B // vertical tab
	FF  Char = 0x0C // form feed
	CR  Char = 0x0D // carriage return
	SO  Char = 0x0E // shift out
	SI  Char = 0x0F // shift in
	DLE Char = 0x10 // data link escape
	DC1 Char = 0x11 // device control 1
	DC2 Char = 0x12 // device control 2
	DC3 Char = 0x13 // device control 3
	DC4 Char = 0x14 // device control 4
	NAK Char = 0x15 // negative acknowledge
	SYN Char = 0x16 // synchronous idle
	ETB Char = 0x17 // end of transmission block
	CAN Char = 0x18 // cancel
	EM  Char = 0x19 // end of medium
	SUB Char = 0x1A // substitute
	ESC Char = 0x1B // escape
	FS  Char = 0x1C // file separator
	GS  Char = 0x1D // group separator
	RS  Char = 0x1E // record separator
	US  Char = 0x1F // unit separator
)

// Space and punctuation, 0x20 to 0x2F.
const (
	Space       Char = 0x20 // ' '
	Exclamation Char = 0x21 // '!'
	Quotation   Char = 0x22 // '"'
	Hash        Char = 0x23 // '#'
	Dollar      Char = 0x24 // '$'
	Percent     Char = 0x25 // '%'
	Ampersand   Char = 0x26 // '&'
	Apostrophe  Char = 0x27 // '\''
	ParenOpen   Char = 0x28 // '('
	ParenClose  Char = 0x29 // ')'
	Asterisk    Char = 0x2A // '*'
	Plus        Char = 0x2B // '+'
	Comma       Char = 0x2C // ','
	Minus       Char = 0x2D // '-'
	Dot         Char = 0x2E // '.'
	Slash       Char = 0x2F // '/'
)

// Decimal digits, 0x30 to 0x39.
const (
	Digit0 Char = 0x30 // '0'
	Digit1 Char = 0x31 // '1'
	Digit2 Char = 0x32 // '2'
	Digit3 Char = 0x33 // '3'
	Digit4 Char = 0x34 // '4'
	Digit5 Char = 0x35 // '5'
	Digit6 Char = 0x36 // '6'
	Digit7 Char = 0x37 // '7'
	Digit8 Char = 0x38 // '8'
	Digit9 Char = 0x39 // '9'
)

// Punctuation between digits and uppercase letters, 0x3A to 0x40.
const (
	Colon       Char = 0x3A // ':'
	Semicolon   Char = 0x3B // ';'
	LessThan    Char = 0x3C // '<'
	Equal       Char = 0x3D // '='
	GreaterThan Char = 0x3E // '>'
	Question    Char = 0x3F // '?'
	At          Char = 0x40 // '@'
)

// Uppercase letters, 0x41 to 0x5A.
const (
	UpperA Char = 0x41 // 'A'
	UpperB Char = 0x42 // 'B'
	UpperC Char = 0x43 // 'C'
	UpperD Char = 0x44 // 'D'
	UpperE Char = 0x45 // 'E'
	UpperF Char = 0x46 // 'F'
	UpperG Char = 0x47 // 'G'
	UpperH Char = 0x48 // 'H'
	UpperI Char = 0x49 // 'I'
	UpperJ Char = 0x4A // 'J'
	UpperK Char = 0x4B // 'K'
	UpperL Char = 0x4C // 'L'
	UpperM Char = 0x4D // 'M'
	UpperN Char = 0x4E // 'N'
	UpperO Char = 0x4F // 'O'
	UpperP Char = 0x50 // 'P'
	UpperQ Char = 0x51 // 'Q'
	UpperR Char = 0x52 // 'R'
	UpperS Char = 0x53 // 'S'
	UpperT Char = 0x54 // 'T'
	UpperU Char = 0x55 // 'U'
	UpperV Char = 0x56 // 'V'
	UpperW Char = 0x57 // 'W'
	UpperX Char = 0x58 // 'X'
	UpperY Char = 0x59 // 'Y'
	UpperZ Char = 0x5A // 'Z'
)

// Punctuation between uppercase and lowercase letters, 0x5B to 0x60.
const (
	BracketOpen  Char = 0x5B // '['
	Backslash    Char = 0x5C // '\\'
	BracketClose Char = 0x5D // ']'
	Caret        Char = 0x5E // '^'
	Underscore   Char = 0x5F // '_'
	Grave        Char = 0x60 // '`'
)

// Lowercase letters, 0x61 to 0x7A.
const (
	LowerA Char = 0x61 // 'a'
	LowerB Char = 0x62 // 'b'
	LowerC Char = 0x63 // 'c'
	LowerD Char = 0x64 // 'd'
	LowerE Char = 0x65 // 'e'
	LowerF Char = 0x66 // 'f'
	LowerG Char = 0x67 // 'g'
	LowerH Char = 0x68 // 'h'
	LowerI Char = 0x69 // 'i'
	LowerJ Char = 0x6A // 'j'
	LowerK Char = 0x6B // 'k'
	LowerL Char = 0x6C // 'l'
	LowerM Char = 0x6D // 'm'
	LowerN Char = 0x6E // 'n'
	LowerO Char = 0x6F // 'o'
	LowerP Char = 0x70 // 'p'
	LowerQ Char = 0x71 // 'q'
	LowerR Char = 0x72 // 'r'
	LowerS Char = 0x73 // 's'
	LowerT Char = 0x74 // 't'
	LowerU Char = 0x75 // 'u'
	LowerV Char = 0x76 // 'v'
	LowerW Char = 0x77 // 'w'
	LowerX Char = 0x78 // 'x'
	LowerY Char = 0x79 // 'y'
	LowerZ Char = 0x7A // 'z'
)

// Trailing punctuation and DEL, 0x7B to 0x7F.
const (
	BraceOpen   Char = 0x7B // '{'
	VerticalBar Char = 0x7C // '|'
	BraceClose  Char = 0x7D // '}'
	Tilde       Char = 0x7E // '~'
	DEL         Char = 0x7F // delete
)
