package catalog

import (
	"github.com/gostrace/mstrace/internal/decode"
	"github.com/gostrace/mstrace/internal/structs"
	"github.com/gostrace/mstrace/internal/symbols"
)

func registerProcess(r *Registry) {
	r.Register(&Def{Number: 20, Name: "getpid", Category: CategoryProcess, VariadicStart: -1, Params: []decode.Decoder{}})
	r.Register(&Def{Number: 39, Name: "getppid", Category: CategoryProcess, VariadicStart: -1, Params: []decode.Decoder{}})
	r.Register(&Def{Number: 24, Name: "getuid", Category: CategoryProcess, VariadicStart: -1, Params: []decode.Decoder{}})
	r.Register(&Def{Number: 47, Name: "getgid", Category: CategoryProcess, VariadicStart: -1, Params: []decode.Decoder{}})
	r.Register(&Def{
		Number: 2, Name: "fork", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{},
	})
	r.Register(&Def{
		Number: 59, Name: "execve", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.ArrayOfStrings, decode.ArrayOfStrings},
	})
	r.Register(&Def{
		Number: 1, Name: "exit", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int},
	})
	r.Register(&Def{
		Number: 360, Name: "exit_group", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int},
	})
	r.Register(&Def{
		Number: 7, Name: "wait4", Category: CategoryProcess, VariadicStart: -1,
		Params:  []decode.Decoder{decode.Int, decode.IntPtr(decode.Out), decode.Int, decode.Pointer},
		Aliases: []string{"__wait4_nocancel"},
	})
	r.Register(&Def{
		Number: 512, Name: "waitid", Category: CategoryProcess, VariadicStart: -1,
		Params:  []decode.Decoder{decode.Int, decode.Int, decode.Pointer, decode.Int},
		Aliases: []string{"__waitid_nocancel"},
	})
	r.Register(&Def{
		Number: 455, Name: "posix_spawn", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.IntPtr(decode.Out), decode.String, decode.Pointer, decode.Pointer, decode.ArrayOfStrings, decode.ArrayOfStrings},
	})
	r.Register(&Def{
		Number: 13, Name: "fchdir", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor},
	})
	r.Register(&Def{
		Number: 12, Name: "chdir", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.String},
	})
	r.Register(&Def{
		Number: 122, Name: "fchown", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Unsigned, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 349, Name: "getrusage", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Struct(structs.Rusage, decode.Out)},
	})
	r.Register(&Def{
		Number: 347, Name: "issetugid", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{},
	})

	// Credentials and session management, grounded on
	// original_source/strace_macos/syscalls/definitions/process.py.
	// setuid/getlogin/setlogin already registered under CategorySecurity
	// (security.go); vfork already registered under CategoryMisc (misc.go).
	r.Register(&Def{Number: 25, Name: "geteuid", Category: CategoryProcess, VariadicStart: -1, Params: []decode.Decoder{}})
	r.Register(&Def{Number: 43, Name: "getegid", Category: CategoryProcess, VariadicStart: -1, Params: []decode.Decoder{}})
	r.Register(&Def{
		Number: 67, Name: "oslog_coproc_reg", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 68, Name: "oslog_coproc", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned, decode.Unsigned},
	})
	// getgroups/setgroups already registered under CategorySecurity (security.go).
	r.Register(&Def{Number: 81, Name: "getpgrp", Category: CategoryProcess, VariadicStart: -1, Params: []decode.Decoder{}})
	r.Register(&Def{
		Number: 82, Name: "setpgid", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Int},
	})
	// setreuid/setregid already registered under CategorySecurity (security.go).
	r.Register(&Def{
		Number: 96, Name: "setpriority", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.Const(symbols.PrioWhich), decode.Int, decode.Int},
	})
	r.Register(&Def{
		Number: 100, Name: "getpriority", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.Const(symbols.PrioWhich), decode.Int},
	})
	r.Register(&Def{Number: 147, Name: "setsid", Category: CategoryProcess, VariadicStart: -1, Params: []decode.Decoder{}})
	r.Register(&Def{Number: 151, Name: "getpgid", Category: CategoryProcess, VariadicStart: -1, Params: []decode.Decoder{decode.Int}})
	r.Register(&Def{Number: 152, Name: "setprivexec", Category: CategoryProcess, VariadicStart: -1, Params: []decode.Decoder{decode.Int}})
	// setgid/setegid/seteuid already registered under CategorySecurity (security.go).
	// getrlimit/setrlimit already registered under CategoryMemory (memory.go).
	r.Register(&Def{
		Number: 243, Name: "initgroups", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Int, decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{Number: 271, Name: "sem_wait", Category: CategoryProcess, VariadicStart: -1, Params: []decode.Decoder{decode.Pointer}})
	r.Register(&Def{Number: 272, Name: "sem_trywait", Category: CategoryProcess, VariadicStart: -1, Params: []decode.Decoder{decode.Pointer}})
	r.Register(&Def{Number: 310, Name: "getsid", Category: CategoryProcess, VariadicStart: -1, Params: []decode.Decoder{decode.Int}})
	r.Register(&Def{
		Number: 334, Name: "__semwait_signal", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Int, decode.Int, decode.Int, decode.Int, decode.Int},
	})
	r.Register(&Def{
		Number: 368, Name: "workq_kernreturn", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Pointer, decode.Int, decode.Int},
	})
	r.Register(&Def{
		Number: 380, Name: "__mac_execve", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.ArrayOfStrings, decode.ArrayOfStrings, decode.Pointer},
	})
	r.Register(&Def{Number: 386, Name: "__mac_get_proc", Category: CategoryProcess, VariadicStart: -1, Params: []decode.Decoder{decode.Pointer}})
	r.Register(&Def{Number: 387, Name: "__mac_set_proc", Category: CategoryProcess, VariadicStart: -1, Params: []decode.Decoder{decode.Pointer}})
	r.Register(&Def{
		Number: 390, Name: "__mac_get_pid", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Pointer},
	})
	r.Register(&Def{
		Number: 457, Name: "sfi_pidctl", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned, decode.Int, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 458, Name: "coalition", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned, decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 459, Name: "coalition_info", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned, decode.Pointer, decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 494, Name: "persona", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned, decode.Unsigned, decode.Pointer, decode.Pointer, decode.Unsigned, decode.Pointer},
	})
	r.Register(&Def{
		Number: 515, Name: "ulock_wait", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned, decode.Pointer, decode.Unsigned, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 533, Name: "coalition_ledger", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned, decode.Unsigned, decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 539, Name: "task_inspect_for_pid", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Int, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 545, Name: "ulock_wait2", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned, decode.Pointer, decode.Unsigned, decode.Unsigned, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 558, Name: "coalition_policy_set", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned, decode.Unsigned, decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 559, Name: "coalition_policy_get", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned, decode.Unsigned, decode.Pointer, decode.Unsigned},
	})

	// *at-family and posix_spawn family variants carried over from
	// process_structs.py / process.py's extended argument shapes.
	r.Register(&Def{
		Number: 7000, Name: "posix_spawnp", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.IntPtr(decode.Out), decode.String, decode.Pointer, decode.Pointer, decode.ArrayOfStrings, decode.ArrayOfStrings},
	})
	r.Register(&Def{
		Number: 7001, Name: "renameat2", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.DirFd, decode.String, decode.DirFd, decode.String, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 7002, Name: "__pthread_chdir", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.String},
	})
	r.Register(&Def{
		Number: 7003, Name: "__pthread_fchdir", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor},
	})
	r.Register(&Def{
		Number: 7004, Name: "settid", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned, decode.Unsigned},
	})
	// gettid already registered under CategoryMisc (misc.go).
	r.Register(&Def{
		Number: 7006, Name: "settid_with_pid", Category: CategoryProcess, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned, decode.Unsigned},
	})
	// proc_info already registered under CategoryDebug (debug.go).
}
