package catalog

import "github.com/gostrace/mstrace/internal/decode"

func registerSysinfo(r *Registry) {
	r.Register(&Def{
		Number: 202, Name: "sysctl", Category: CategorySysinfo, VariadicStart: -1,
		Params: []decode.Decoder{
			decode.SysctlMib(1),
			decode.Unsigned,
			decode.SysctlBuffer(3),
			decode.SysctlSizePointer,
			decode.Pointer,
			decode.Unsigned,
		},
	})
	r.Register(&Def{
		Number: 274, Name: "sysctlbyname", Category: CategorySysinfo, VariadicStart: -1,
		Params: []decode.Decoder{
			decode.SysctlBynameName,
			decode.SysctlBynameBuffer(2),
			decode.SysctlSizePointer,
			decode.Pointer,
			decode.Unsigned,
		},
	})
	r.Register(&Def{
		Number: 336, Name: "getattrlist", Category: CategorySysinfo, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Pointer, decode.Buffer(3, decode.Out), decode.Unsigned, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 365, Name: "searchfs", Category: CategorySysinfo, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Pointer, decode.IntPtr(decode.Out), decode.Unsigned, decode.Unsigned, decode.Pointer},
	})
	r.Register(&Def{
		Number: 142, Name: "gethostuuid", Category: CategorySysinfo, VariadicStart: -1,
		Params: []decode.Decoder{decode.Uuid, decode.Pointer},
	})

	// The rest of the system-information surface, grounded on
	// original_source/strace_macos/syscalls/definitions/sysinfo.py.
	// getdtablesize already registered under CategoryMisc (misc.go).
	r.Register(&Def{
		Number: 452, Name: "usrctl", Category: CategorySysinfo, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned},
	})
	r.Register(&Def{
		Number: 500, Name: "getentropy", Category: CategorySysinfo, VariadicStart: -1,
		Params: []decode.Decoder{decode.Buffer(1, decode.Out), decode.Unsigned},
	})
}
