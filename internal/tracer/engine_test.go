package tracer

import (
	"testing"

	"github.com/gostrace/mstrace/internal/catalog"
	"github.com/gostrace/mstrace/internal/debugger"
)

// fakeThread drives PC() through a scripted sequence: entry, then the
// return address, simulating the one-shot exit breakpoint firing.
type fakeThread struct {
	id   uint64
	pcs  []uint64
	pcAt int
	regs map[string]uint64
}

func (t *fakeThread) ID() uint64 { return t.id }

func (t *fakeThread) ReadRegister(name string) (uint64, error) { return t.regs[name], nil }
func (t *fakeThread) StackPointer() (uint64, error)             { return 0, nil }
func (t *fakeThread) ReadMemory(uint64, int) ([]byte, error)    { return nil, nil }

func (t *fakeThread) PC() (uint64, error) {
	pc := t.pcs[t.pcAt]
	if t.pcAt < len(t.pcs)-1 {
		t.pcAt++
	}
	return pc, nil
}

type fakeProcess struct {
	thread *fakeThread
	states []debugger.State
	at     int
	symbol map[uint64]string
}

func (p *fakeProcess) ReadMemory(uint64, int) ([]byte, error) { return nil, nil }
func (p *fakeProcess) CurrentThread() (debugger.Thread, error) { return p.thread, nil }
func (p *fakeProcess) State() debugger.State                   { return p.states[p.at] }
func (p *fakeProcess) ExitStatus() int                          { return 0 }
func (p *fakeProcess) Pid() int                                 { return 999 }
func (p *fakeProcess) SymbolAt(addr uint64) string              { return p.symbol[addr] }

type fakeTarget struct {
	process *fakeProcess
}

func (f *fakeTarget) Launch([]string, []string) (debugger.Process, error) { return f.process, nil }
func (f *fakeTarget) Attach(int) (debugger.Process, error)                { return f.process, nil }
func (f *fakeTarget) Architecture(debugger.Process) (string, error)       { return "arm64", nil }
func (f *fakeTarget) SetBreakpoint(debugger.Process, string) (*debugger.Breakpoint, error) {
	return &debugger.Breakpoint{}, nil
}
func (f *fakeTarget) SetOneShotBreakpoint(debugger.Process, uint64) (*debugger.Breakpoint, error) {
	return &debugger.Breakpoint{}, nil
}
func (f *fakeTarget) RemoveBreakpoint(debugger.Process, *debugger.Breakpoint) error { return nil }
func (f *fakeTarget) Continue(debugger.Process) error                              { return nil }
func (f *fakeTarget) Detach(debugger.Process) error                                { return nil }

func (f *fakeTarget) WaitForStop(debugger.Process) (debugger.State, error) {
	if f.process.at < len(f.process.states)-1 {
		f.process.at++
	}
	return f.process.states[f.process.at], nil
}

type fakeDebugger struct {
	target *fakeTarget
}

func (d *fakeDebugger) NewTarget(string) (debugger.Target, error)    { return d.target, nil }
func (d *fakeDebugger) NewEmptyTarget() (debugger.Target, error)     { return d.target, nil }

type collectSink struct {
	events []Event
}

func (s *collectSink) Emit(evt Event) error {
	s.events = append(s.events, evt)
	return nil
}

func TestEnginePairsEntryAndExit(t *testing.T) {
	const entryPC, retAddr = uint64(0x1000), uint64(0x2000)

	reg := catalog.NewRegistry()
	reg.Register(&catalog.Def{
		Number: 20, Name: "getpid", Category: catalog.CategoryProcess, VariadicStart: -1,
	})

	th := &fakeThread{
		id:   1,
		pcs:  []uint64{entryPC, retAddr},
		regs: map[string]uint64{"lr": retAddr, "x0": 412},
	}
	proc := &fakeProcess{
		thread: th,
		states: []debugger.State{debugger.StateStopped, debugger.StateStopped, debugger.StateExited},
		symbol: map[uint64]string{entryPC: "getpid"},
	}
	target := &fakeTarget{process: proc}
	dbg := &fakeDebugger{target: target}
	sink := &collectSink{}

	eng := New(Config{Registry: reg, Sink: sink})
	code, err := eng.Spawn(dbg, []string{"/bin/true"}, nil)
	if err != nil {
		t.Fatalf("Spawn returned error: %v", err)
	}
	if code != 0 {
		t.Errorf("exit code = %d, want 0", code)
	}
	if len(sink.events) != 1 {
		t.Fatalf("got %d events, want 1", len(sink.events))
	}
	evt := sink.events[0]
	if evt.Syscall != "getpid" || !evt.HasReturn || evt.Return != 412 {
		t.Errorf("event = %+v", evt)
	}
}

func TestEngineDefaultFilterIsAllowAll(t *testing.T) {
	eng := New(Config{Registry: catalog.NewRegistry(), Sink: &collectSink{}})
	if _, ok := eng.cfg.Filter.(AllowAll); !ok {
		t.Errorf("default filter = %T, want AllowAll", eng.cfg.Filter)
	}
}
