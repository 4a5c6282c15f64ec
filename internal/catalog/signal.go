package catalog

import (
	"github.com/gostrace/mstrace/internal/decode"
	"github.com/gostrace/mstrace/internal/structs"
	"github.com/gostrace/mstrace/internal/symbols"
)

func registerSignal(r *Registry) {
	r.Register(&Def{
		Number: 48, Name: "sigprocmask", Category: CategorySignal, VariadicStart: -1,
		Params: []decode.Decoder{decode.Const(symbols.SigprocmaskHow), decode.Pointer, decode.Pointer},
	})
	r.Register(&Def{
		Number: 46, Name: "sigaction", Category: CategorySignal, VariadicStart: -1,
		Params: []decode.Decoder{decode.Const(symbols.SignalName), decode.Struct(structs.Sigaction, decode.In), decode.Struct(structs.Sigaction, decode.Out)},
	})
	r.Register(&Def{
		Number: 37, Name: "kill", Category: CategorySignal, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Const(symbols.SignalName)},
	})
	r.Register(&Def{
		Number: 328, Name: "sigaltstack", Category: CategorySignal, VariadicStart: -1,
		Params: []decode.Decoder{decode.Struct(structs.StackT, decode.In), decode.Struct(structs.StackT, decode.Out)},
	})
	r.Register(&Def{
		Number: 41, Name: "pthread_sigmask", Category: CategorySignal, VariadicStart: -1,
		Params: []decode.Decoder{decode.Const(symbols.SigprocmaskHow), decode.Pointer, decode.Pointer},
	})
	r.Register(&Def{
		Number: 330, Name: "sigwait", Category: CategorySignal, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.IntPtr(decode.Out)},
	})
	r.Register(&Def{
		Number: 111, Name: "sigsuspend", Category: CategorySignal, VariadicStart: -1,
		Params:  []decode.Decoder{decode.Unsigned},
		Aliases: []string{"__sigsuspend_nocancel"},
	})

	// The rest of the signal surface, grounded on
	// original_source/strace_macos/syscalls/definitions/signal.py.
	r.Register(&Def{
		Number: 52, Name: "sigpending", Category: CategorySignal, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer},
	})
	r.Register(&Def{
		Number: 184, Name: "sigreturn", Category: CategorySignal, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Int},
	})
	r.Register(&Def{
		Number: 9328, Name: "__pthread_kill", Category: CategorySignal, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Const(symbols.SignalName)},
	})
	r.Register(&Def{
		Number: 422, Name: "__sigwait_nocancel", Category: CategorySignal, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Pointer},
	})
	r.Register(&Def{
		Number: 331, Name: "__disable_threadsignal", Category: CategorySignal, VariadicStart: -1,
		Params: []decode.Decoder{decode.Const(symbols.SignalName)},
	})
}
