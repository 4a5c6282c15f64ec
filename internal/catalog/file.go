package catalog

import (
	"github.com/gostrace/mstrace/internal/decode"
	"github.com/gostrace/mstrace/internal/structs"
	"github.com/gostrace/mstrace/internal/symbols"
)

func openFlagsDecoder() decode.Decoder {
	return decode.Custom(func(v int64) string {
		return symbols.DecodeOpenFlags(uint64(v))
	})
}

func modeDecoder() decode.Decoder {
	return decode.Custom(func(v int64) string {
		return symbols.DecodeFileMode(uint64(v), false)
	})
}

// hasCreateMode skips the mode argument unless O_CREAT is set in the flags
// argument at index flagsIdx — mirrors spec's "the flags of open w.r.t.
// O_CREAT" discriminator example.
func hasCreateMode(flagsIdx int) decode.Decoder {
	return decode.Variant(decode.VariantSpec{
		DiscriminatorIdx: flagsIdx,
		SkipWhenNotSet:   0x00000200, // O_CREAT
		Default:          modeDecoder(),
	})
}

func registerFile(r *Registry) {
	r.Register(&Def{
		Number: 5, Name: "open", Category: CategoryFile, VariadicStart: -1,
		Params:  []decode.Decoder{decode.String, openFlagsDecoder(), hasCreateMode(1)},
		Aliases: []string{"__open_nocancel"},
	})
	r.Register(&Def{
		Number: 463, Name: "openat", Category: CategoryFile, VariadicStart: -1,
		Params:  []decode.Decoder{decode.DirFd, decode.String, openFlagsDecoder(), hasCreateMode(2)},
		Aliases: []string{"__openat_nocancel"},
	})
	r.Register(&Def{
		Number: 6, Name: "close", Category: CategoryFile, VariadicStart: -1,
		Params:  []decode.Decoder{decode.FileDescriptor},
		Aliases: []string{"__close_nocancel"},
	})
	r.Register(&Def{
		Number: 10, Name: "unlink", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String},
	})
	r.Register(&Def{
		Number: 472, Name: "unlinkat", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.DirFd, decode.String, decode.Flags(symbols.FlagMap{0x200: "AT_REMOVEDIR"})},
	})
	r.Register(&Def{
		Number: 3, Name: "read", Category: CategoryFile, VariadicStart: -1,
		Params:  []decode.Decoder{decode.FileDescriptor, decode.Buffer(2, decode.Out), decode.Unsigned},
		Aliases: []string{"__read_nocancel"},
	})
	r.Register(&Def{
		Number: 4, Name: "write", Category: CategoryFile, VariadicStart: -1,
		Params:  []decode.Decoder{decode.FileDescriptor, decode.Buffer(2, decode.In), decode.Unsigned},
		Aliases: []string{"__write_nocancel"},
	})
	r.Register(&Def{
		Number: 121, Name: "writev", Category: CategoryFile, VariadicStart: -1,
		Params:  []decode.Decoder{decode.FileDescriptor, decode.Iovec(2, decode.In), decode.Unsigned},
		Aliases: []string{"__writev_nocancel"},
	})
	r.Register(&Def{
		Number: 120, Name: "readv", Category: CategoryFile, VariadicStart: -1,
		Params:  []decode.Decoder{decode.FileDescriptor, decode.Iovec(2, decode.Out), decode.Unsigned},
		Aliases: []string{"__readv_nocancel"},
	})
	r.Register(&Def{
		Number: 92, Name: "fcntl", Category: CategoryFile, VariadicStart: 2,
		Params: []decode.Decoder{
			decode.FileDescriptor,
			decode.Const(symbols.FcntlCommand),
			decode.Variant(decode.VariantSpec{
				DiscriminatorIdx: 1,
				SkipFor: map[int64]bool{
					1: true, // F_GETFD
					3: true, // F_GETFL
					5: true, // F_GETOWN
				},
				Variants: map[int64]decode.Decoder{
					2: decode.Flags(symbols.FdFlags),             // F_SETFD
					4: openFlagsDecoder(),                        // F_SETFL
					6: decode.Int,                                // F_SETOWN
				},
				Default: decode.Int,
			}),
		},
		Aliases: []string{"__fcntl_nocancel"},
	})
	r.Register(&Def{
		Number: 339, Name: "ioctl", Category: CategoryFile, VariadicStart: 2,
		Params: []decode.Decoder{
			decode.FileDescriptor,
			decode.Custom(func(v int64) string {
				if name, ok := symbols.IoctlCommand.Lookup(uint64(v)); ok {
					return name
				}
				return ""
			}),
			decode.Pointer,
		},
	})
	r.Register(&Def{
		Number: 189, Name: "stat", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Struct(structs.Stat, decode.Out)},
	})
	r.Register(&Def{
		Number: 338, Name: "fstatat", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.DirFd, decode.String, decode.Struct(structs.Stat, decode.Out), decode.Flags(symbols.FlagMap{0x20: "AT_SYMLINK_NOFOLLOW"})},
	})
	r.Register(&Def{
		Number: 190, Name: "fstat", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Struct(structs.Stat, decode.Out)},
	})
	r.Register(&Def{
		Number: 532, Name: "statfs64", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Struct(structs.Statfs, decode.Out)},
	})
	r.Register(&Def{
		Number: 175, Name: "pread", Category: CategoryFile, VariadicStart: -1,
		Params:  []decode.Decoder{decode.FileDescriptor, decode.Buffer(2, decode.Out), decode.Unsigned, decode.Int},
		Aliases: []string{"__pread_nocancel"},
	})
	r.Register(&Def{
		Number: 176, Name: "pwrite", Category: CategoryFile, VariadicStart: -1,
		Params:  []decode.Decoder{decode.FileDescriptor, decode.Buffer(2, decode.In), decode.Unsigned, decode.Int},
		Aliases: []string{"__pwrite_nocancel"},
	})
	r.Register(&Def{
		Number: 136, Name: "mkdir", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, modeDecoder()},
	})
	r.Register(&Def{
		Number: 137, Name: "symlink", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.String},
	})
	r.Register(&Def{
		Number: 9, Name: "link", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.String},
	})
	r.Register(&Def{
		Number: 95, Name: "fchmod", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, modeDecoder()},
	})
	r.Register(&Def{
		Number: 15, Name: "chmod", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, modeDecoder()},
	})
	r.Register(&Def{
		Number: 199, Name: "lseek", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Int, decode.Const(symbols.ConstMap{0: "SEEK_SET", 1: "SEEK_CUR", 2: "SEEK_END"})},
	})
	r.Register(&Def{
		Number: 254, Name: "poll", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.StructArray(structs.Pollfd, 1, decode.In), decode.Unsigned, decode.Int},
	})

	// The rest of the filesystem surface, grounded on
	// original_source/strace_macos/syscalls/definitions/file.py.
	// chdir/fchdir are registered under CategoryProcess (process.go);
	// umask/chroot/mkfifo/pathconf/fpathconf/getfsstat are registered under
	// CategoryMisc (misc.go); msync is registered under CategoryMemory
	// (memory.go); getattrlist/searchfs are registered under CategorySysinfo
	// (sysinfo.go); auditon/csops_audittoken are registered elsewhere too.
	r.Register(&Def{
		Number: 14, Name: "mknod", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, modeDecoder(), decode.Int},
	})
	r.Register(&Def{
		Number: 16, Name: "chown", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Unsigned, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 34, Name: "chflags", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Flags(symbols.ChflagsFlags)},
	})
	r.Register(&Def{
		Number: 33, Name: "access", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Flags(symbols.AccessMode)},
	})
	r.Register(&Def{
		Number: 36, Name: "sync", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{},
	})
	r.Register(&Def{
		Number: 41, Name: "dup", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor},
	})
	r.Register(&Def{
		Number: 42, Name: "pipe", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{},
	})
	r.Register(&Def{
		Number: 56, Name: "revoke", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String},
	})
	r.Register(&Def{
		Number: 58, Name: "readlink", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Buffer(2, decode.Out), decode.Unsigned},
	})
	r.Register(&Def{
		Number: 90, Name: "dup2", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.FileDescriptor},
	})
	r.Register(&Def{
		Number: 95, Name: "fsync", Category: CategoryFile, VariadicStart: -1,
		Params:  []decode.Decoder{decode.FileDescriptor},
		Aliases: []string{"__fsync_nocancel"},
	})
	// fchown already registered under CategoryProcess (process.go).
	r.Register(&Def{
		Number: 128, Name: "rename", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.String},
	})
	r.Register(&Def{
		Number: 131, Name: "flock", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Flags(symbols.FlockOp)},
	})
	r.Register(&Def{
		Number: 137, Name: "rmdir", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String},
	})
	r.Register(&Def{
		Number: 526, Name: "preadv", Category: CategoryFile, VariadicStart: -1,
		Params:  []decode.Decoder{decode.FileDescriptor, decode.Iovec(2, decode.Out), decode.Unsigned, decode.Int},
		Aliases: []string{"__preadv_nocancel"},
	})
	r.Register(&Def{
		Number: 527, Name: "pwritev", Category: CategoryFile, VariadicStart: -1,
		Params:  []decode.Decoder{decode.FileDescriptor, decode.Iovec(2, decode.In), decode.Unsigned, decode.Int},
		Aliases: []string{"__pwritev_nocancel"},
	})
	r.Register(&Def{
		Number: 155, Name: "nfssvc", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Pointer},
	})
	r.Register(&Def{
		Number: 157, Name: "statfs", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Struct(structs.Statfs, decode.Out)},
	})
	r.Register(&Def{
		Number: 158, Name: "fstatfs", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Struct(structs.Statfs, decode.Out)},
	})
	r.Register(&Def{
		Number: 159, Name: "unmount", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Int},
	})
	r.Register(&Def{
		Number: 161, Name: "getfh", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Pointer},
	})
	r.Register(&Def{
		Number: 165, Name: "quotactl", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Int, decode.Int, decode.Pointer},
	})
	r.Register(&Def{
		Number: 167, Name: "mount", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.String, decode.Int, decode.Pointer},
	})
	r.Register(&Def{
		Number: 186, Name: "thread_selfcounts", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 187, Name: "fdatasync", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor},
	})
	r.Register(&Def{
		Number: 188, Name: "lstat", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Struct(structs.Stat, decode.Out)},
	})
	r.Register(&Def{
		Number: 196, Name: "getdirentries", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Buffer(1, decode.Out), decode.Unsigned, decode.Pointer},
	})
	r.Register(&Def{
		Number: 200, Name: "truncate", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Int},
	})
	r.Register(&Def{
		Number: 201, Name: "ftruncate", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Int},
	})
	r.Register(&Def{
		Number: 205, Name: "undelete", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String},
	})
	r.Register(&Def{
		Number: 216, Name: "open_dprotected_np", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, openFlagsDecoder(), decode.Int, decode.Int, decode.Int},
	})
	r.Register(&Def{
		Number: 217, Name: "fsgetpath_ext", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned, decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 218, Name: "openat_dprotected_np", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.DirFd, decode.String, openFlagsDecoder(), decode.Int, decode.Int, decode.Int},
	})
	r.Register(&Def{
		Number: 221, Name: "setattrlist", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Pointer, decode.Pointer, decode.Unsigned, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 222, Name: "getdirentriesattr", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Pointer, decode.Pointer, decode.Unsigned, decode.Pointer, decode.Pointer, decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 223, Name: "exchangedata", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.String, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 226, Name: "delete", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String},
	})
	r.Register(&Def{
		Number: 227, Name: "copyfile", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.String, decode.Int, decode.Int},
	})
	r.Register(&Def{
		Number: 228, Name: "fgetattrlist", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Pointer, decode.Pointer, decode.Unsigned, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 229, Name: "fsetattrlist", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Pointer, decode.Pointer, decode.Unsigned, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 234, Name: "getxattr", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.String, decode.Buffer(3, decode.Out), decode.Unsigned, decode.Unsigned, decode.Flags(symbols.XattrFlags)},
	})
	r.Register(&Def{
		Number: 235, Name: "fgetxattr", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.String, decode.Buffer(3, decode.Out), decode.Unsigned, decode.Unsigned, decode.Flags(symbols.XattrFlags)},
	})
	r.Register(&Def{
		Number: 236, Name: "setxattr", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.String, decode.Buffer(3, decode.In), decode.Unsigned, decode.Unsigned, decode.Flags(symbols.XattrFlags)},
	})
	r.Register(&Def{
		Number: 237, Name: "fsetxattr", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.String, decode.Buffer(3, decode.In), decode.Unsigned, decode.Unsigned, decode.Flags(symbols.XattrFlags)},
	})
	r.Register(&Def{
		Number: 238, Name: "removexattr", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.String, decode.Flags(symbols.XattrFlags)},
	})
	r.Register(&Def{
		Number: 239, Name: "fremovexattr", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.String, decode.Flags(symbols.XattrFlags)},
	})
	r.Register(&Def{
		Number: 240, Name: "listxattr", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Buffer(1, decode.Out), decode.Unsigned, decode.Flags(symbols.XattrFlags)},
	})
	r.Register(&Def{
		Number: 241, Name: "flistxattr", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Buffer(1, decode.Out), decode.Unsigned, decode.Flags(symbols.XattrFlags)},
	})
	r.Register(&Def{
		Number: 242, Name: "fsctl", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Unsigned, decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 245, Name: "ffsctl", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Unsigned, decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 248, Name: "fhopen", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, openFlagsDecoder()},
	})
	r.Register(&Def{
		Number: 266, Name: "shm_open", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, openFlagsDecoder(), modeDecoder()},
	})
	r.Register(&Def{
		Number: 267, Name: "shm_unlink", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String},
	})
	r.Register(&Def{
		Number: 268, Name: "sem_open", Category: CategoryFile, VariadicStart: 2,
		Params: []decode.Decoder{decode.String, openFlagsDecoder(), modeDecoder(), decode.Int},
	})
	r.Register(&Def{
		Number: 269, Name: "sem_close", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer},
	})
	r.Register(&Def{
		Number: 270, Name: "sem_unlink", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String},
	})
	r.Register(&Def{
		Number: 277, Name: "open_extended", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, openFlagsDecoder(), decode.Unsigned, decode.Unsigned, modeDecoder(), decode.Pointer},
	})
	r.Register(&Def{
		Number: 278, Name: "umask_extended", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.Octal, decode.Pointer},
	})
	r.Register(&Def{
		Number: 279, Name: "stat_extended", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Pointer, decode.Pointer, decode.Pointer},
	})
	r.Register(&Def{
		Number: 280, Name: "lstat_extended", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Pointer, decode.Pointer, decode.Pointer},
	})
	r.Register(&Def{
		Number: 281, Name: "fstat_extended", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Pointer, decode.Pointer, decode.Pointer},
	})
	r.Register(&Def{
		Number: 282, Name: "chmod_extended", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Unsigned, decode.Unsigned, modeDecoder(), decode.Pointer},
	})
	r.Register(&Def{
		Number: 283, Name: "fchmod_extended", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Unsigned, decode.Unsigned, modeDecoder(), decode.Pointer},
	})
	r.Register(&Def{
		Number: 284, Name: "access_extended", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Flags(symbols.AccessMode), decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 291, Name: "mkfifo_extended", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Unsigned, decode.Unsigned, modeDecoder(), decode.Pointer},
	})
	r.Register(&Def{
		Number: 292, Name: "mkdir_extended", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Unsigned, decode.Unsigned, modeDecoder(), decode.Pointer},
	})
	r.Register(&Def{
		Number: 297, Name: "psynch_rw_longrdlock", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned, decode.Unsigned, decode.Unsigned, decode.Int},
	})
	r.Register(&Def{
		Number: 298, Name: "psynch_rw_yieldwrlock", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned, decode.Unsigned, decode.Unsigned, decode.Int},
	})
	r.Register(&Def{
		Number: 299, Name: "psynch_rw_downgrade", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned, decode.Unsigned, decode.Unsigned, decode.Int},
	})
	r.Register(&Def{
		Number: 300, Name: "psynch_rw_upgrade", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned, decode.Unsigned, decode.Unsigned, decode.Int},
	})
	r.Register(&Def{
		Number: 350, Name: "audit", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Int},
	})
	r.Register(&Def{
		Number: 353, Name: "getauid", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer},
	})
	r.Register(&Def{
		Number: 354, Name: "setauid", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer},
	})
	r.Register(&Def{
		Number: 357, Name: "getaudit_addr", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Int},
	})
	r.Register(&Def{
		Number: 358, Name: "setaudit_addr", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Int},
	})
	r.Register(&Def{
		Number: 359, Name: "auditctl", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String},
	})
	r.Register(&Def{
		Number: 407, Name: "openbyid_np", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned, openFlagsDecoder()},
	})
	r.Register(&Def{
		Number: 413, Name: "linkat", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.DirFd, decode.String, decode.DirFd, decode.String, decode.Flags(symbols.FlagMap{0x400: "AT_SYMLINK_FOLLOW"})},
	})
	r.Register(&Def{
		Number: 415, Name: "readlinkat", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.DirFd, decode.String, decode.Buffer(2, decode.Out), decode.Unsigned},
	})
	r.Register(&Def{
		Number: 416, Name: "symlinkat", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.DirFd, decode.String},
	})
	r.Register(&Def{
		Number: 417, Name: "mkdirat", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.DirFd, decode.String, modeDecoder()},
	})
	r.Register(&Def{
		Number: 418, Name: "getattrlistat", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.DirFd, decode.String, decode.Pointer, decode.Pointer, decode.Unsigned, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 421, Name: "fchmodat", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.DirFd, decode.String, modeDecoder(), decode.Flags(symbols.FlagMap{0x20: "AT_SYMLINK_NOFOLLOW"})},
	})
	r.Register(&Def{
		Number: 422, Name: "fchownat", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.DirFd, decode.String, decode.Unsigned, decode.Unsigned, decode.Flags(symbols.FlagMap{0x20: "AT_SYMLINK_NOFOLLOW"})},
	})
	r.Register(&Def{
		Number: 423, Name: "fstatat64", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.DirFd, decode.String, decode.Struct(structs.Stat, decode.Out), decode.Flags(symbols.FlagMap{0x20: "AT_SYMLINK_NOFOLLOW"})},
	})
	r.Register(&Def{
		Number: 426, Name: "renameat", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.DirFd, decode.String, decode.DirFd, decode.String},
	})
	r.Register(&Def{
		Number: 428, Name: "faccessat", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.DirFd, decode.String, decode.Flags(symbols.AccessMode), decode.Flags(symbols.FlagMap{0x200: "AT_EACCESS"})},
	})
	r.Register(&Def{
		Number: 429, Name: "fchflags", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Flags(symbols.ChflagsFlags)},
	})
	r.Register(&Def{
		Number: 432, Name: "getattrlistbulk", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Pointer, decode.Pointer, decode.Unsigned, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 442, Name: "guarded_open_np", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Pointer, openFlagsDecoder(), decode.Int},
	})
	r.Register(&Def{
		Number: 444, Name: "guarded_close_np", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Pointer},
	})
	r.Register(&Def{
		Number: 446, Name: "guarded_open_dprotected_np", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Pointer, openFlagsDecoder(), decode.Int, decode.Int, decode.Int},
	})
	r.Register(&Def{
		Number: 451, Name: "change_fdguard_np", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Pointer, decode.Unsigned, decode.Pointer, decode.Unsigned, decode.Pointer},
	})
	r.Register(&Def{
		Number: 554, Name: "guarded_writev_np", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Pointer, decode.Iovec(2, decode.In), decode.Int},
	})
	r.Register(&Def{
		Number: 435, Name: "fsgetpath", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned, decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 436, Name: "fmount", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Int, decode.Int, decode.Pointer},
	})
	r.Register(&Def{
		Number: 445, Name: "fclonefileat", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.DirFd, decode.String, decode.Int},
	})
	r.Register(&Def{
		Number: 449, Name: "fs_snapshot", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned, decode.Int, decode.String, decode.String, decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 456, Name: "mkfifoat", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.DirFd, decode.String, modeDecoder()},
	})
	r.Register(&Def{
		Number: 457, Name: "mknodat", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.DirFd, decode.String, modeDecoder(), decode.Int},
	})
	r.Register(&Def{
		Number: 488, Name: "renameatx_np", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.DirFd, decode.String, decode.DirFd, decode.String, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 338, Name: "stat64", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Struct(structs.Stat, decode.Out)},
	})
	r.Register(&Def{
		Number: 339, Name: "fstat64", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Struct(structs.Stat, decode.Out)},
	})
	r.Register(&Def{
		Number: 340, Name: "lstat64", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Struct(structs.Stat, decode.Out)},
	})
	r.Register(&Def{
		Number: 341, Name: "stat64_extended", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Pointer, decode.Pointer, decode.Pointer},
	})
	r.Register(&Def{
		Number: 342, Name: "lstat64_extended", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Pointer, decode.Pointer, decode.Pointer},
	})
	r.Register(&Def{
		Number: 343, Name: "fstat64_extended", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Pointer, decode.Pointer, decode.Pointer},
	})
	r.Register(&Def{
		Number: 344, Name: "getdirentries64", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Buffer(1, decode.Out), decode.Unsigned, decode.Pointer},
	})
	r.Register(&Def{
		Number: 346, Name: "fstatfs64", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Struct(structs.Statfs, decode.Out)},
	})
	r.Register(&Def{
		Number: 347, Name: "getfsstat64", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Int, decode.Int},
	})
	r.Register(&Def{
		Number: 462, Name: "clonefileat", Category: CategoryFile, VariadicStart: -1,
		Params: []decode.Decoder{decode.DirFd, decode.String, decode.DirFd, decode.String, decode.Unsigned},
	})
}
