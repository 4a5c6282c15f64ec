// Package debugger is the external collaborator contract of spec §6: a
// debugger library that exposes breakpoints, thread state, register reads,
// and cross-process memory reads. The tracer drives it synchronously; it
// never issues ptrace syscalls of its own.
package debugger

import "github.com/gostrace/mstrace/internal/archadapt"

// State is a process's current run state, as reported by the debugger.
type State int

const (
	StateStopped State = iota
	StateRunning
	StateExited
	StateCrashed
	StateDetached
	StateUnloaded
)

// Breakpoint is an installed stop point. ID is used to remove it again;
// one-shot breakpoints (return addresses) are removed by the tracer as
// soon as they fire.
type Breakpoint struct {
	ID      uint64
	Address uint64
	Symbol  string
}

// Thread is one target thread. It satisfies archadapt.Thread so the
// architecture adapter can read its registers and stack directly.
type Thread interface {
	ID() uint64
	ReadRegister(name string) (uint64, error)
	StackPointer() (uint64, error)
	ReadMemory(addr uint64, size int) ([]byte, error)
	// PC is the current program counter, used to resolve the top frame's
	// symbol and to match a stop against the pending-event map.
	PC() (uint64, error)
}

// Process is the per-target handle the tracer and memory/decode packages
// read through. It satisfies memory.Reader and archadapt.Thread's memory
// leg for process-wide reads issued outside a specific thread.
type Process interface {
	ReadMemory(addr uint64, size int) ([]byte, error)
	CurrentThread() (Thread, error)
	State() State
	ExitStatus() int
	// Pid is the target's OS process ID, used for event attribution.
	Pid() int
	// SymbolAt resolves the function symbol containing addr, or "" if none.
	SymbolAt(addr uint64) string
}

// Target represents one debuggee across its lifetime: spawned or attached,
// launched, and steppable.
type Target interface {
	// Launch spawns argv[0] with argv[1:] and env, returning the running
	// Process stopped at its first instruction.
	Launch(argv []string, env []string) (Process, error)
	// Attach attaches to an already-running pid.
	Attach(pid int) (Process, error)
	// Architecture is the target triple's first component
	// (aarch64/arm64/x86_64/...), used to select an archadapt.Adapter.
	Architecture(p Process) (string, error)
	// SetBreakpoint installs a breakpoint on every symbol matching name
	// (including debugger-matched wrapper variants like `__name_nocancel`).
	SetBreakpoint(p Process, name string) (*Breakpoint, error)
	// SetOneShotBreakpoint installs a breakpoint at a raw address that
	// removes itself the first time it is hit.
	SetOneShotBreakpoint(p Process, addr uint64) (*Breakpoint, error)
	// RemoveBreakpoint removes a previously installed breakpoint.
	RemoveBreakpoint(p Process, bp *Breakpoint) error
	// Continue resumes a stopped process.
	Continue(p Process) error
	// WaitForStop blocks until the process's state changes.
	WaitForStop(p Process) (State, error)
	// Detach detaches without killing the target (attach-mode Ctrl-C).
	Detach(p Process) error
}

// Debugger is the top-level factory the tracer asks for a Target; it
// mirrors the "load the debugger library, create a target" sequence of
// spec §4.8 step 1, kept abstract since loading the library itself is an
// out-of-scope external collaborator.
type Debugger interface {
	NewTarget(executable string) (Target, error)
	NewEmptyTarget() (Target, error)
}

var _ archadapt.Thread = Thread(nil)
