package term

import "fmt"

// DOC: https://www.m-cartereau.fr/intdocs/ascii.html

const (
	NUL byte = 0   // Ctrl+@
	ETX byte = 3   // Ctrl+C
	EOT byte = 4   // Ctrl+D
	BS  byte = 8   // Backspace
	HT  byte = 9   // Tab
	NL  byte = 10  // Enter
	CR  byte = 13  // Enter in raw input
	ESC byte = 27  // Escape
	SP  byte = 32  // Space
	DEL byte = 127 // Delete
)

var keyNames = map[byte]string{
	NUL: "NUL",
	BS:  "BS",
	HT:  "TAB",
	NL:  "NL",
	CR:  "CR",
	ESC: "ESC",
	SP:  "SPACE",
	DEL: "DEL",
}

// KeyName returns a printable label for a single byte: a name for the
// common control keys, caret notation for the other control bytes, the
// quoted character when printable and hex above ASCII.
func KeyName(b byte) string {
	if name, ok := keyNames[b]; ok {
		return name
	}
	switch {
	case b < SP:
		return "^" + string(rune(b+'@'))
	case b < DEL:
		return fmt.Sprintf("%q", rune(b))
	}
	return fmt.Sprintf("0x%02x", b)
}
