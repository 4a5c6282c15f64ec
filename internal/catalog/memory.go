package catalog

import (
	"github.com/gostrace/mstrace/internal/decode"
	"github.com/gostrace/mstrace/internal/structs"
	"github.com/gostrace/mstrace/internal/symbols"
)

func registerMemory(r *Registry) {
	r.Register(&Def{
		Number: 197, Name: "mmap", Category: CategoryMemory, VariadicStart: -1,
		Params: []decode.Decoder{
			decode.Pointer, decode.Unsigned,
			decode.Flags(symbols.ProtFlags),
			decode.Flags(symbols.MmapFlags),
			decode.FileDescriptor, decode.Int,
		},
	})
	r.Register(&Def{
		Number: 73, Name: "munmap", Category: CategoryMemory, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 74, Name: "mprotect", Category: CategoryMemory, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned, decode.Flags(symbols.ProtFlags)},
	})
	r.Register(&Def{
		Number: 65, Name: "msync", Category: CategoryMemory, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned, decode.Flags(symbols.MsyncFlags)},
	})
	r.Register(&Def{
		Number: 75, Name: "madvise", Category: CategoryMemory, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned, decode.Const(symbols.MadviseAdvice)},
	})
	r.Register(&Def{
		Number: 194, Name: "getrlimit", Category: CategoryMemory, VariadicStart: -1,
		Params: []decode.Decoder{decode.Const(symbols.RlimitResource), decode.Struct(structs.Rlimit, decode.Out)},
	})
	r.Register(&Def{
		Number: 195, Name: "setrlimit", Category: CategoryMemory, VariadicStart: -1,
		Params: []decode.Decoder{decode.Const(symbols.RlimitResource), decode.Struct(structs.Rlimit, decode.In)},
	})

	// The rest of the VM surface, grounded on
	// original_source/strace_macos/syscalls/definitions/memory.py.
	r.Register(&Def{
		Number: 78, Name: "mincore", Category: CategoryMemory, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned, decode.Pointer},
	})
	r.Register(&Def{
		Number: 203, Name: "mlock", Category: CategoryMemory, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 204, Name: "munlock", Category: CategoryMemory, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 250, Name: "minherit", Category: CategoryMemory, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned, decode.Int},
	})
	r.Register(&Def{
		Number: 294, Name: "shared_region_check_np", Category: CategoryMemory, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer},
	})
	r.Register(&Def{
		Number: 296, Name: "vm_pressure_monitor", Category: CategoryMemory, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Int, decode.Pointer},
	})
	r.Register(&Def{
		Number: 324, Name: "mlockall", Category: CategoryMemory, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int},
	})
	r.Register(&Def{
		Number: 325, Name: "munlockall", Category: CategoryMemory, VariadicStart: -1,
		Params: []decode.Decoder{},
	})
	r.Register(&Def{
		Number: 536, Name: "shared_region_map_and_slide_2_np", Category: CategoryMemory, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned, decode.Unsigned, decode.Pointer, decode.Unsigned, decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 489, Name: "mremap_encrypted", Category: CategoryMemory, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned, decode.Unsigned, decode.Unsigned, decode.Unsigned},
	})
}
