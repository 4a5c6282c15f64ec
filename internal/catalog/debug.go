package catalog

import (
	"github.com/gostrace/mstrace/internal/decode"
	"github.com/gostrace/mstrace/internal/symbols"
)

func registerDebug(r *Registry) {
	r.Register(&Def{
		Number: 26, Name: "ptrace", Category: CategoryDebug, VariadicStart: -1,
		Params: []decode.Decoder{decode.Const(symbols.PtraceRequest), decode.Int, decode.Pointer, decode.Int},
	})
	r.Register(&Def{
		Number: 4001, Name: "csops", Category: CategoryDebug, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Unsigned, decode.Buffer(2, decode.Out), decode.Unsigned},
	})
	r.Register(&Def{
		Number: 4002, Name: "csops_audittoken", Category: CategoryDebug, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Unsigned, decode.Buffer(2, decode.Out), decode.Unsigned, decode.Int},
	})
	r.RegisterOverride(&Def{
		Number: 4002, Name: "csops_audittoken", Category: CategoryDebug, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Unsigned, decode.Buffer(2, decode.Out), decode.Unsigned, decode.IntPtr(decode.In)},
	})
	r.Register(&Def{
		Number: 4003, Name: "proc_info", Category: CategoryDebug, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Int, decode.Unsigned, decode.Unsigned, decode.Buffer(4, decode.Out), decode.Int},
	})
	r.Register(&Def{
		Number: 4004, Name: "kdebug_trace", Category: CategoryDebug, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned, decode.Unsigned, decode.Unsigned, decode.Unsigned, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 4005, Name: "task_for_pid", Category: CategoryDebug, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned, decode.Int, decode.Pointer},
	})
	r.Register(&Def{
		Number: 4006, Name: "mach_vm_region", Category: CategoryDebug, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned, decode.Pointer, decode.Pointer, decode.Int, decode.Pointer, decode.Pointer},
	})

	// The rest of the kernel debugging/tracing surface, grounded on
	// original_source/strace_macos/syscalls/definitions/debug.py.
	r.Register(&Def{
		Number: 177, Name: "kdebug_typefilter", Category: CategoryDebug, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Pointer},
	})
	r.Register(&Def{
		Number: 178, Name: "kdebug_trace_string", Category: CategoryDebug, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned, decode.Unsigned, decode.String},
	})
	r.Register(&Def{
		Number: 179, Name: "kdebug_trace64", Category: CategoryDebug, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned, decode.Unsigned, decode.Unsigned, decode.Unsigned, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 185, Name: "panic_with_data", Category: CategoryDebug, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Pointer, decode.Unsigned, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 287, Name: "microstackshot", Category: CategoryDebug, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 482, Name: "stack_snapshot_with_config", Category: CategoryDebug, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 485, Name: "terminate_with_payload", Category: CategoryDebug, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Unsigned, decode.Pointer, decode.Unsigned, decode.Pointer, decode.Unsigned, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 486, Name: "abort_with_payload", Category: CategoryDebug, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Unsigned, decode.Pointer, decode.Unsigned, decode.Pointer, decode.Unsigned, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 513, Name: "os_fault_with_payload", Category: CategoryDebug, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned, decode.Pointer, decode.Unsigned, decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 519, Name: "log_data", Category: CategoryDebug, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned, decode.Unsigned, decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 521, Name: "objc_bp_assist_cfg_np", Category: CategoryDebug, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer},
	})
	r.Register(&Def{
		Number: 542, Name: "debug_syscall_reject", Category: CategoryDebug, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer},
	})
	r.Register(&Def{
		Number: 543, Name: "debug_syscall_reject_config", Category: CategoryDebug, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned},
	})
}
