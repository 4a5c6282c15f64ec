package symbols

import (
	"fmt"
	"strconv"
)

func hex(v uint64) string {
	return "0x" + strconv.FormatUint(v, 16)
}

func octal(v uint64) string {
	return fmt.Sprintf("0%o", v)
}

// DecodeOctalLiteral renders a mode-shaped value as a C octal literal
// (e.g. the `mode` argument of open/mkdir/chmod, with no filetype nibble).
func DecodeOctalLiteral(v uint64) string {
	return octal(v)
}
