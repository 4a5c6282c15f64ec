package structs

import (
	"encoding/binary"

	"github.com/gostrace/mstrace/internal/symbols"
)

// Stat is the macOS 64-bit `struct stat` (144 bytes): spec §4.5 calls for
// st_dev, st_mode, st_nlink, st_ino, st_uid, st_gid, st_rdev, four
// timespec pairs (atime/mtime/ctime/birthtime), st_size, st_blocks,
// st_blksize, st_flags, st_gen and 20 bytes of reserved fields. The
// nanosecond half of each timespec and the reserved tail are excluded
// from output.
var Stat = Layout{
	Size: 144,
	Fields: []Field{
		{Name: "st_dev", Offset: 0, Size: 4, Format: I32},
		{Name: "st_mode", Offset: 4, Size: 2, Format: modeField},
		{Name: "st_nlink", Offset: 6, Size: 2, Format: U16},
		{Name: "st_ino", Offset: 8, Size: 8, Format: U64},
		{Name: "st_uid", Offset: 16, Size: 4, Format: U32},
		{Name: "st_gid", Offset: 20, Size: 4, Format: U32},
		{Name: "st_rdev", Offset: 24, Size: 4, Format: I32},
		// 4 bytes of compiler padding here 8-byte-align the timespec fields
		// that follow (see rusage.go's analogous timeval padding).
		{Name: "st_atime", Offset: 32, Size: 8, Format: I64},
		{Name: "st_atime_nsec", Offset: 40, Size: 8, Excluded: true},
		{Name: "st_mtime", Offset: 48, Size: 8, Format: I64},
		{Name: "st_mtime_nsec", Offset: 56, Size: 8, Excluded: true},
		{Name: "st_ctime", Offset: 64, Size: 8, Format: I64},
		{Name: "st_ctime_nsec", Offset: 72, Size: 8, Excluded: true},
		{Name: "st_birthtime", Offset: 80, Size: 8, Format: I64},
		{Name: "st_birthtime_nsec", Offset: 88, Size: 8, Excluded: true},
		{Name: "st_size", Offset: 96, Size: 8, Format: I64},
		{Name: "st_blocks", Offset: 104, Size: 8, Format: I64},
		{Name: "st_blksize", Offset: 112, Size: 4, Format: I32},
		{Name: "st_flags", Offset: 116, Size: 4, Format: U32},
		{Name: "st_gen", Offset: 120, Size: 4, Format: U32},
		{Name: "st_reserved", Offset: 124, Size: 20, Excluded: true},
	},
}

func modeField(raw []byte) any {
	v := uint64(binary.LittleEndian.Uint16(raw))
	return symbols.DecodeFileMode(v, false)
}

// Statfs is the macOS `struct statfs` (StatfsSize, 2168 bytes; only the user-visible fields spec §4.5 names are
// surfaced, block counts plus the three NUL-padded name fields). The
// remainder of the struct (reserved fsid/owner/type/fssubtype padding) is
// treated as opaque and skipped rather than hand-laid-out field by field,
// since none of it is rendered.
const StatfsSize = 2168

var Statfs = Layout{
	Size: StatfsSize,
	Fields: []Field{
		{Name: "f_bsize", Offset: 0, Size: 4, Format: U32},
		{Name: "f_iosize", Offset: 4, Size: 4, Format: I32},
		{Name: "f_blocks", Offset: 8, Size: 8, Format: U64},
		{Name: "f_bfree", Offset: 16, Size: 8, Format: U64},
		{Name: "f_bavail", Offset: 24, Size: 8, Format: U64},
		{Name: "f_files", Offset: 32, Size: 8, Format: U64},
		{Name: "f_ffree", Offset: 40, Size: 8, Format: U64},
		{Name: "f_fstypename", Offset: 96, Size: 16, Format: CString},
		{Name: "f_mntonname", Offset: 112, Size: 1024, Format: CString},
		{Name: "f_mntfromname", Offset: 1136, Size: 1024, Format: CString},
		{Name: "f_flags", Offset: 48, Size: 4, Format: Flags32(statfsFlags.Decode)},
	},
}

var statfsFlags = symbols.FlagMap{
	0x00000001: "MNT_RDONLY",
	0x00000002: "MNT_SYNCHRONOUS",
	0x00000004: "MNT_NOEXEC",
	0x00000008: "MNT_NOSUID",
	0x00000010: "MNT_NODEV",
	0x00040000: "MNT_LOCAL",
	0x00080000: "MNT_QUOTA",
	0x00100000: "MNT_ROOTFS",
}
