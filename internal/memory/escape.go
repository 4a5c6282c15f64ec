package memory

import "strconv"

// Escape renders raw bytes the way the C-string quoting in spec §4.3
// requires: printable ASCII passes through, the usual C escapes are used
// for the named control characters, and every other byte becomes the
// shortest unambiguous octal escape.
func Escape(b []byte) string {
	out := make([]byte, 0, len(b)+8)
	for i, c := range b {
		switch c {
		case '"':
			out = append(out, '\\', '"')
		case '\\':
			out = append(out, '\\', '\\')
		case '\t':
			out = append(out, '\\', 't')
		case '\n':
			out = append(out, '\\', 'n')
		case '\r':
			out = append(out, '\\', 'r')
		case '\v':
			out = append(out, '\\', 'v')
		case '\f':
			out = append(out, '\\', 'f')
		default:
			if c >= 0x20 && c <= 0x7e {
				out = append(out, c)
				continue
			}
			nextIsDigit := i+1 < len(b) && b[i+1] >= '0' && b[i+1] <= '7'
			out = append(out, escapeOctal(c, nextIsDigit)...)
		}
	}
	return string(out)
}

// escapeOctal renders c as an octal escape. When the following byte is an
// ASCII digit 0-7, the escape must be exactly three digits so the digits
// don't fuse into the escape on re-parsing.
func escapeOctal(c byte, forceThreeDigits bool) []byte {
	s := strconv.FormatUint(uint64(c), 8)
	if forceThreeDigits {
		for len(s) < 3 {
			s = "0" + s
		}
	}
	out := make([]byte, 0, len(s)+1)
	out = append(out, '\\')
	out = append(out, s...)
	return out
}
