package symbols

// ioctl request-number encoding, adapted from the teacher's
// github.com/daedaluz/goioctl helpers (IOR/IOW/IOWR) but reimplemented
// locally against the macOS _IOC layout, which differs from Linux's: the
// direction bits sit at the top of the 32-bit word and the parameter size
// field is 13 bits wide.
const (
	iocVoid  = 0x20000000
	iocOut   = 0x40000000
	iocIn    = 0x80000000
	iocInOut = iocIn | iocOut
	iocParamShift = 16
	iocParamMask  = 0x1fff
	iocGroupShift = 8
)

func ioc(inOut uint64, group byte, num byte, size uint64) uint64 {
	return inOut | ((size & iocParamMask) << iocParamShift) | (uint64(group) << iocGroupShift) | uint64(num)
}

func IO(group byte, num byte) uint64 { return ioc(iocVoid, group, num, 0) }
func IOR(group byte, num byte, size uint64) uint64 { return ioc(iocOut, group, num, size) }
func IOW(group byte, num byte, size uint64) uint64 { return ioc(iocIn, group, num, size) }
func IOWR(group byte, num byte, size uint64) uint64 { return ioc(iocInOut, group, num, size) }

// Well-known tty ioctl requests (macOS <sys/ttycom.h>), computed with the
// encoding above the way the teacher computed its Linux equivalents.
var (
	TIOCGETA  = IOR('t', 19, 72) // struct termios
	TIOCSETA  = IOW('t', 20, 72)
	TIOCSETAW = IOW('t', 21, 72)
	TIOCSETAF = IOW('t', 22, 72)
	TIOCGWINSZ = IOR('t', 104, 8)
	TIOCSWINSZ = IOW('t', 103, 8)
	TIOCEXCL   = IO('t', 13)
	TIOCNXCL   = IO('t', 14)
	FIONBIO    = IOW('f', 126, 4)
	FIOASYNC   = IOW('f', 125, 4)
)

// IoctlCommand names the handful of ioctl requests the catalog renders
// symbolically; everything else is shown as raw hex per spec §4.1.
var IoctlCommand = UConstMap{
	TIOCGETA:   "TIOCGETA",
	TIOCSETA:   "TIOCSETA",
	TIOCSETAW:  "TIOCSETAW",
	TIOCSETAF:  "TIOCSETAF",
	TIOCGWINSZ: "TIOCGWINSZ",
	TIOCSWINSZ: "TIOCSWINSZ",
	TIOCEXCL:   "TIOCEXCL",
	TIOCNXCL:   "TIOCNXCL",
	FIONBIO:    "FIONBIO",
	FIOASYNC:   "FIOASYNC",
}
