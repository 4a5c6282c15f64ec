package symbols

// Terminal flag bits (macOS <sys/termios.h>). Bit positions differ from
// the Linux table the teacher's serial package decoded; the flag names
// and the OR-decomposition approach are kept, the values are not.
var TermiosIflag = FlagMap{
	0x00000001: "IGNBRK",
	0x00000002: "BRKINT",
	0x00000004: "IGNPAR",
	0x00000008: "PARMRK",
	0x00000010: "INPCK",
	0x00000020: "ISTRIP",
	0x00000040: "INLCR",
	0x00000080: "IGNCR",
	0x00000100: "ICRNL",
	0x00000200: "IXON",
	0x00000400: "IXOFF",
	0x00000800: "IXANY",
	0x00002000: "IMAXBEL",
	0x00004000: "IUTF8",
}

var TermiosOflag = FlagMap{
	0x00000001: "OPOST",
	0x00000002: "ONLCR",
	0x00000004: "OXTABS",
	0x00000008: "ONOEOT",
	0x00000010: "OCRNL",
	0x00000020: "ONOCR",
	0x00000040: "ONLRET",
	0x00000080: "OFILL",
	0x00004000: "FFDLY",
	0x00008000: "BSDLY",
	0x00010000: "VTDLY",
	0x00020000: "OFDEL",
}

var TermiosCflag = FlagMap{
	0x00000001: "CIGNORE",
	0x00000400: "CSTOPB",
	0x00000800: "CREAD",
	0x00001000: "PARENB",
	0x00002000: "PARODD",
	0x00004000: "HUPCL",
	0x00008000: "CLOCAL",
	0x00010000: "CCTS_OFLOW",
	0x00020000: "CRTS_IFLOW",
}

var TermiosCsize = ConstMap{
	0x000: "CS5",
	0x100: "CS6",
	0x200: "CS7",
	0x300: "CS8",
}

const TermiosCsizeMask = 0x300

var TermiosLflag = FlagMap{
	0x00000001: "ECHOKE",
	0x00000002: "ECHOE",
	0x00000004: "ECHOK",
	0x00000008: "ECHO",
	0x00000010: "ECHONL",
	0x00000020: "ECHOPRT",
	0x00000040: "ECHOCTL",
	0x00000080: "ISIG",
	0x00000100: "ICANON",
	0x00000200: "ALTWERASE",
	0x00000400: "IEXTEN",
	0x00000800: "EXTPROC",
	0x00400000: "TOSTOP",
	0x00800000: "FLUSHO",
	0x20000000: "PENDIN",
	0x80000000: "NOFLSH",
}

// DecodeCflag renders c_cflag as the CSIZE field followed by the
// remaining single-bit flags, abbreviated with a trailing "|..." per
// spec §4.5's termios entry.
func DecodeCflag(v uint64, noAbbrev bool) string {
	if noAbbrev {
		return hex(v)
	}
	size, ok := TermiosCsize.Lookup(int64(v & TermiosCsizeMask))
	rest := TermiosCflag.Decode(v &^ TermiosCsizeMask)
	if !ok {
		size = hex(v & TermiosCsizeMask)
	}
	return size + "|" + rest + "|..."
}
