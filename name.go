package ascii

// controlNames holds the conventional mnemonics for the control characters
// 0x00 to 0x1F.
var controlNames = [0x20]string{
	"NUL", "SOH", "STX", "ETX", "EOT", "ENQ", "ACK", "BEL",
	"BS", "HT", "LF", "VT", "FF", "CR", "SO", "SI",
	"DLE", "DC1", "DC2", "DC3", "DC4", "NAK", "SYN", "ETB",
	"CAN", "EM", "SUB", "ESC", "FS", "GS", "RS", "US",
}

// Name returns the conventional display name for c: the mnemonic for
// control characters ("NUL", "ESC", ...), "SP" for the space character,
// "DEL", and the character itself for everything else.
func (c Char) Name() string {
	switch {
	case byte(c) < 0x20:
		return controlNames[c]
	case c == Space:
		return "SP"
	case c == DEL:
		return "DEL"
	default:
		return c.String()
	}
}
