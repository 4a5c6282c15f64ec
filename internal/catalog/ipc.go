package catalog

import (
	"github.com/gostrace/mstrace/internal/decode"
	"github.com/gostrace/mstrace/internal/structs"
	"github.com/gostrace/mstrace/internal/symbols"
)

func registerIPC(r *Registry) {
	r.Register(&Def{
		Number: 491, Name: "semget", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Int, decode.Flags(symbols.IpcFlags)},
	})
	r.Register(&Def{
		Number: 492, Name: "semop", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.StructArray(structs.Sembuf, 2, decode.In), decode.Unsigned},
	})
	r.Register(&Def{
		Number: 493, Name: "semctl", Category: CategoryIPC, VariadicStart: 3,
		Params: []decode.Decoder{decode.Int, decode.Int, decode.Const(symbols.IpcCmd), decode.Int},
	})
	r.Register(&Def{
		Number: 494, Name: "msgget", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Flags(symbols.IpcFlags)},
	})
	r.Register(&Def{
		Number: 495, Name: "msgsnd", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Buffer(2, decode.In), decode.Unsigned, decode.Int},
	})
	r.Register(&Def{
		Number: 496, Name: "msgrcv", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Buffer(2, decode.Out), decode.Unsigned, decode.Int, decode.Int},
	})
	r.Register(&Def{
		Number: 497, Name: "shmat", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Pointer, decode.Int},
	})
	r.Register(&Def{
		Number: 498, Name: "shmdt", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer},
	})
	r.Register(&Def{
		Number: 499, Name: "shmget", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Unsigned, decode.Flags(symbols.IpcFlags)},
	})
	r.Register(&Def{
		Number: 500, Name: "shmctl", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Const(symbols.IpcCmd), decode.Pointer},
	})

	// I/O multiplexing and the rest of the System V / POSIX / kqueue IPC
	// surface, grounded on
	// original_source/strace_macos/syscalls/definitions/ipc.py.
	r.Register(&Def{
		Number: 93, Name: "select", Category: CategoryIPC, VariadicStart: -1,
		Params:  []decode.Decoder{decode.Int, decode.Pointer, decode.Pointer, decode.Pointer, decode.Pointer},
		Aliases: []string{"__select_nocancel"},
	})
	r.Register(&Def{
		Number: 394, Name: "pselect", Category: CategoryIPC, VariadicStart: -1,
		Params:  []decode.Decoder{decode.Int, decode.Pointer, decode.Pointer, decode.Pointer, decode.Pointer, decode.Pointer},
		Aliases: []string{"__pselect_nocancel"},
	})
	r.Register(&Def{
		Number: 395, Name: "semsys", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Int, decode.Int, decode.Int, decode.Int},
	})
	r.Register(&Def{
		Number: 396, Name: "msgsys", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Int, decode.Int, decode.Int, decode.Int},
	})
	r.Register(&Def{
		Number: 397, Name: "shmsys", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Int, decode.Int, decode.Int},
	})
	r.Register(&Def{
		Number: 258, Name: "msgctl", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Const(symbols.IpcCmd), decode.Pointer},
	})
	r.Register(&Def{
		Number: 273, Name: "sem_post", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer},
	})
	r.Register(&Def{
		Number: 314, Name: "aio_return", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Struct(structs.Aiocb, decode.In)},
	})
	r.Register(&Def{
		Number: 315, Name: "aio_suspend", Category: CategoryIPC, VariadicStart: -1,
		Params:  []decode.Decoder{decode.StructArray(structs.Aiocb, 1, decode.In), decode.Int, decode.Pointer},
		Aliases: []string{"__aio_suspend_nocancel"},
	})
	r.Register(&Def{
		Number: 316, Name: "aio_cancel", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Struct(structs.Aiocb, decode.In)},
	})
	r.Register(&Def{
		Number: 317, Name: "aio_error", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Struct(structs.Aiocb, decode.In)},
	})
	r.Register(&Def{
		Number: 320, Name: "lio_listio", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.StructArray(structs.Aiocb, 2, decode.In), decode.Int, decode.Struct(structs.Sigevent, decode.In)},
	})
	r.Register(&Def{
		Number: 362, Name: "kqueue", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{},
	})
	r.Register(&Def{
		Number: 363, Name: "kevent", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Pointer, decode.Int, decode.Pointer, decode.Int, decode.Pointer},
	})
	r.Register(&Def{
		Number: 369, Name: "kevent64", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Pointer, decode.Int, decode.Pointer, decode.Int, decode.Unsigned, decode.Pointer},
	})
	r.Register(&Def{
		Number: 374, Name: "kevent_qos", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Pointer, decode.Int, decode.Pointer, decode.Int, decode.Pointer, decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 375, Name: "kevent_id", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned, decode.Pointer, decode.Int, decode.Pointer, decode.Int, decode.Pointer, decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 301, Name: "psynch_rw_rdlock", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned, decode.Unsigned, decode.Unsigned, decode.Int},
	})
	r.Register(&Def{
		Number: 302, Name: "psynch_rw_wrlock", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned, decode.Unsigned, decode.Unsigned, decode.Int},
	})
	r.Register(&Def{
		Number: 303, Name: "psynch_rw_unlock", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned, decode.Unsigned, decode.Unsigned, decode.Int},
	})
	r.Register(&Def{
		Number: 305, Name: "psynch_cvwait", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned, decode.Unsigned, decode.Pointer, decode.Unsigned, decode.Unsigned, decode.Unsigned, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 306, Name: "psynch_cvbroad", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned, decode.Unsigned, decode.Pointer, decode.Unsigned, decode.Unsigned, decode.Unsigned, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 307, Name: "psynch_cvsignal", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned, decode.Unsigned, decode.Pointer, decode.Unsigned, decode.Unsigned, decode.Unsigned, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 308, Name: "psynch_mutexwait", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned, decode.Unsigned, decode.Unsigned, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 309, Name: "psynch_mutexdrop", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned, decode.Unsigned, decode.Unsigned, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 418, Name: "__msgsnd_nocancel", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Buffer(2, decode.In), decode.Unsigned, decode.Int},
	})
	r.Register(&Def{
		Number: 419, Name: "__msgrcv_nocancel", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Buffer(2, decode.Out), decode.Unsigned, decode.Int, decode.Int},
	})
	r.Register(&Def{
		Number: 420, Name: "__sem_wait_nocancel", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer},
	})
	r.Register(&Def{
		Number: 443, Name: "guarded_kqueue_np", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Int},
	})
	r.Register(&Def{
		Number: 516, Name: "ulock_wake", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned, decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 530, Name: "kqueue_workloop_ctl", Category: CategoryIPC, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned, decode.Pointer, decode.Unsigned},
	})
}
