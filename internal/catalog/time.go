package catalog

import "github.com/gostrace/mstrace/internal/decode"

func registerTime(r *Registry) {
	r.Register(&Def{
		Number: 116, Name: "gettimeofday", Category: CategoryTime, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Pointer},
	})
	r.Register(&Def{
		Number: 220, Name: "clock_gettime", Category: CategoryTime, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.TimespecDir(decode.Out)},
	})
	r.Register(&Def{
		Number: 240, Name: "nanosleep", Category: CategoryTime, VariadicStart: -1,
		Params:  []decode.Decoder{decode.Timespec, decode.TimespecDir(decode.Out)},
		Aliases: []string{"__nanosleep_nocancel"},
	})
	// select already registered under CategoryIPC (ipc.go).

	// The rest of the timer surface, grounded on
	// original_source/strace_macos/syscalls/definitions/time.py.
	r.Register(&Def{
		Number: 83, Name: "setitimer", Category: CategoryTime, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Pointer, decode.Pointer},
	})
	r.Register(&Def{
		Number: 86, Name: "getitimer", Category: CategoryTime, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Pointer},
	})
	r.Register(&Def{
		Number: 122, Name: "settimeofday", Category: CategoryTime, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Pointer},
	})
	r.Register(&Def{
		Number: 138, Name: "utimes", Category: CategoryTime, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Pointer},
	})
	r.Register(&Def{
		Number: 139, Name: "futimes", Category: CategoryTime, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Pointer},
	})
	r.Register(&Def{
		Number: 140, Name: "adjtime", Category: CategoryTime, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Pointer},
	})
}
