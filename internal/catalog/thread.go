package catalog

import "github.com/gostrace/mstrace/internal/decode"

// registerThread covers the bsdthread_*/pthread_* surface, grounded on
// original_source/strace_macos/syscalls/definitions/thread.py.
// __pthread_chdir/__pthread_fchdir are registered under CategoryProcess
// (process.go); psynch_mutexwait is registered under CategoryIPC (ipc.go).
func registerThread(r *Registry) {
	r.Register(&Def{
		Number: 333, Name: "__pthread_canceled", Category: CategoryThread, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int},
	})
	r.Register(&Def{
		Number: 332, Name: "__pthread_markcancel", Category: CategoryThread, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int},
	})
	r.Register(&Def{
		Number: 360, Name: "bsdthread_create", Category: CategoryThread, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Pointer, decode.Pointer, decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 361, Name: "bsdthread_terminate", Category: CategoryThread, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned, decode.Unsigned, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 366, Name: "bsdthread_register", Category: CategoryThread, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Pointer, decode.Int},
	})
	r.Register(&Def{
		Number: 449, Name: "bsdthread_ctl", Category: CategoryThread, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned, decode.Pointer, decode.Pointer},
	})
	r.Register(&Def{
		Number: 475, Name: "thread_selfusage", Category: CategoryThread, VariadicStart: -1,
		Params: []decode.Decoder{},
	})
	r.Register(&Def{
		Number: 372, Name: "thread_selfid", Category: CategoryThread, VariadicStart: -1,
		Params: []decode.Decoder{},
	})
}
