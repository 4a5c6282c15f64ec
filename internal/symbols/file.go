package symbols

// Open flags (macOS <fcntl.h>). The low two bits are the access-mode field
// and are decoded separately from the single-bit flags above them, per
// spec §4.1's multi-bit-field rule.
const (
	OAccmode = 0x3
)

var OpenAccessMode = FlagMap{
	0x0: "O_RDONLY",
	0x1: "O_WRONLY",
	0x2: "O_RDWR",
}

var OpenFlags = FlagMap{
	0x00000004: "O_NONBLOCK",
	0x00000008: "O_APPEND",
	0x00000200: "O_CREAT",
	0x00000400: "O_TRUNC",
	0x00000800: "O_EXCL",
	0x00020000: "O_NOCTTY",
	0x00000020: "O_SHLOCK",
	0x00000040: "O_EXLOCK",
	0x00000080: "O_NOFOLLOW",
	0x00100000: "O_SYMLINK",
	0x00010000: "O_EVTONLY",
	0x00001000: "O_SYNC",
	0x00040000: "O_DIRECTORY",
	0x00080000: "O_CLOEXEC",
	0x00400000: "O_DSYNC",
}

// DecodeOpenFlags implements the O_RDONLY|O_WRONLY|O_RDWR access-mode field
// plus the independent single-bit flags above it.
func DecodeOpenFlags(v uint64) string {
	return DecodeBitfield(v, OAccmode, OpenAccessMode, OpenFlags)
}

// File mode bits (S_IFxxx filetype nibble and the permission octal).
const (
	SIfmt   = 0170000
	SIfsock = 0140000
	SIflnk  = 0120000
	SIfreg  = 0100000
	SIfblk  = 0060000
	SIfdir  = 0040000
	SIfchr  = 0020000
	SIffifo = 0010000
)

var fileTypeNames = UConstMap{
	SIfsock: "S_IFSOCK",
	SIflnk:  "S_IFLNK",
	SIfreg:  "S_IFREG",
	SIfblk:  "S_IFBLK",
	SIfdir:  "S_IFDIR",
	SIfchr:  "S_IFCHR",
	SIffifo: "S_IFIFO",
}

// DecodeFileMode formats a mode_t the way spec §4.1 requires: when a
// filetype nibble is present it is rendered as "S_IFxxx|0ooo"; otherwise
// just the octal permission bits.
func DecodeFileMode(v uint64, noAbbrev bool) string {
	perm := v & 07777
	if noAbbrev {
		return hex(v)
	}
	ftype := v & SIfmt
	if ftype == 0 {
		return octal(perm)
	}
	name, ok := fileTypeNames[ftype]
	if !ok {
		return octal(perm)
	}
	return name + "|" + octal(perm)
}

// AT_* dirfd sentinels.
const ATFdcwd = -2

// DecodeDirFd renders a dirfd argument, special-casing AT_FDCWD.
func DecodeDirFd(v int32) string {
	if v == ATFdcwd {
		return "AT_FDCWD"
	}
	return ""
}

// ChflagsFlags are the chflags(2)/fchflags(2) UF_*/SF_* bits (<sys/stat.h>).
var ChflagsFlags = FlagMap{
	0x00000001: "UF_NODUMP",
	0x00000002: "UF_IMMUTABLE",
	0x00000004: "UF_APPEND",
	0x00000008: "UF_OPAQUE",
	0x00000020: "UF_COMPRESSED",
	0x00000040: "UF_TRACKED",
	0x00000080: "UF_DATAVAULT",
	0x00008000: "UF_HIDDEN",
	0x00010000: "SF_ARCHIVED",
	0x00020000: "SF_IMMUTABLE",
	0x00040000: "SF_APPEND",
	0x00080000: "SF_RESTRICTED",
	0x00100000: "SF_NOUNLINK",
}

// AccessMode are the access(2)/faccessat(2) R_OK/W_OK/X_OK bits.
var AccessMode = FlagMap{
	0x1: "X_OK",
	0x2: "W_OK",
	0x4: "R_OK",
}

// FlockOp are the flock(2) LOCK_* operations (<sys/file.h>).
var FlockOp = FlagMap{
	0x01: "LOCK_SH",
	0x02: "LOCK_EX",
	0x04: "LOCK_NB",
	0x08: "LOCK_UN",
}

// XattrFlags are the *xattr(2) XATTR_* option bits (<sys/xattr.h>).
var XattrFlags = FlagMap{
	0x0001: "XATTR_NOFOLLOW",
	0x0002: "XATTR_CREATE",
	0x0004: "XATTR_REPLACE",
	0x0008: "XATTR_NOSECURITY",
	0x0010: "XATTR_NODEFAULT",
	0x0020: "XATTR_SHOWCOMPRESSION",
}
