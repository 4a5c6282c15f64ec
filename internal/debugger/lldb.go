package debugger

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

// LLDBDebugger drives an LLDB-backed RPC helper over stdin/stdout: one JSON
// object per line in each direction. The helper process (lldb's own Python
// scripting bridge, or an equivalent) is the actual debugger library; this
// type only implements the line protocol and the Debugger/Target/Process
// contracts described in debugger.go.
type LLDBDebugger struct {
	cmdPath string
	log     *logrus.Entry
}

// NewLLDBDebugger returns a Debugger that starts one cmdPath helper process
// (typically "lldb" or a project-local wrapper script) per target and sends
// every operation on that target to it over stdin/stdout.
func NewLLDBDebugger(cmdPath string, log *logrus.Entry) *LLDBDebugger {
	if log == nil {
		log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &LLDBDebugger{cmdPath: cmdPath, log: log}
}

func (d *LLDBDebugger) NewTarget(executable string) (Target, error) {
	return d.newTarget(executable)
}

func (d *LLDBDebugger) NewEmptyTarget() (Target, error) {
	return d.newTarget("")
}

func (d *LLDBDebugger) newTarget(executable string) (Target, error) {
	cmd := exec.Command(d.cmdPath, "--batch", "-o", "script-bridge")
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, errors.Wrap(err, "debugger: start lldb helper")
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, errors.Wrap(err, "debugger: start lldb helper")
	}
	if err := cmd.Start(); err != nil {
		return nil, errors.Wrap(err, "debugger: start lldb helper")
	}
	t := &lldbTarget{
		executable: executable,
		cmd:        cmd,
		enc:        json.NewEncoder(stdin),
		dec:        json.NewDecoder(bufio.NewReader(stdout)),
		log:        d.log,
		bpSeq:      1,
	}
	return t, nil
}

// rpcRequest/rpcResponse are the line-protocol envelopes exchanged with the
// helper process.
type rpcRequest struct {
	Op   string            `json:"op"`
	Args map[string]string `json:"args,omitempty"`
}

type rpcResponse struct {
	OK     bool   `json:"ok"`
	Error  string `json:"error,omitempty"`
	Value  string `json:"value,omitempty"`
	PID    int    `json:"pid,omitempty"`
	TID    uint64 `json:"tid,omitempty"`
	Hex    string `json:"hex,omitempty"` // hex-encoded memory payload
	State  string `json:"state,omitempty"`
	Status int    `json:"status,omitempty"`
}

type lldbTarget struct {
	executable string
	cmd        *exec.Cmd
	enc        *json.Encoder
	dec        *json.Decoder
	log        *logrus.Entry

	mu    sync.Mutex
	bpSeq uint64
}

func (t *lldbTarget) call(op string, args map[string]string) (rpcResponse, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.enc.Encode(rpcRequest{Op: op, Args: args}); err != nil {
		return rpcResponse{}, errors.Wrapf(err, "debugger: %s request", op)
	}
	var resp rpcResponse
	if err := t.dec.Decode(&resp); err != nil {
		return rpcResponse{}, errors.Wrapf(err, "debugger: %s response", op)
	}
	if !resp.OK {
		return rpcResponse{}, errors.Errorf("debugger: %s failed: %s", op, resp.Error)
	}
	return resp, nil
}

func (t *lldbTarget) Launch(argv []string, env []string) (Process, error) {
	if env == nil {
		env = os.Environ()
	}
	args := map[string]string{"argv": encodeList(argv), "env": encodeList(env)}
	resp, err := t.call("launch", args)
	if err != nil {
		return nil, err
	}
	return &lldbProcess{target: t, pid: resp.PID, state: StateStopped}, nil
}

func (t *lldbTarget) Attach(pid int) (Process, error) {
	_, err := t.call("attach", map[string]string{"pid": strconv.Itoa(pid)})
	if err != nil {
		return nil, err
	}
	return &lldbProcess{target: t, pid: pid, state: StateStopped}, nil
}

func (t *lldbTarget) Architecture(p Process) (string, error) {
	resp, err := t.call("arch", nil)
	if err != nil {
		return "", err
	}
	return resp.Value, nil
}

func (t *lldbTarget) SetBreakpoint(p Process, name string) (*Breakpoint, error) {
	resp, err := t.call("break_by_name", map[string]string{"name": name})
	if err != nil {
		return nil, errors.Wrapf(err, "debugger: install breakpoint on %s", name)
	}
	t.mu.Lock()
	id := t.bpSeq
	t.bpSeq++
	t.mu.Unlock()
	addr, _ := strconv.ParseUint(resp.Value, 0, 64)
	return &Breakpoint{ID: id, Address: addr, Symbol: name}, nil
}

func (t *lldbTarget) SetOneShotBreakpoint(p Process, addr uint64) (*Breakpoint, error) {
	resp, err := t.call("break_by_addr", map[string]string{
		"addr":     fmt.Sprintf("0x%x", addr),
		"one_shot": "1",
	})
	if err != nil {
		return nil, errors.Wrap(err, "debugger: install one-shot breakpoint")
	}
	t.mu.Lock()
	id := t.bpSeq
	t.bpSeq++
	t.mu.Unlock()
	bpAddr, _ := strconv.ParseUint(resp.Value, 0, 64)
	return &Breakpoint{ID: id, Address: bpAddr}, nil
}

func (t *lldbTarget) RemoveBreakpoint(p Process, bp *Breakpoint) error {
	_, err := t.call("break_remove", map[string]string{"id": strconv.FormatUint(bp.ID, 10)})
	return err
}

func (t *lldbTarget) Continue(p Process) error {
	_, err := t.call("continue", nil)
	return err
}

func (t *lldbTarget) WaitForStop(p Process) (State, error) {
	resp, err := t.call("wait", nil)
	if err != nil {
		return StateCrashed, err
	}
	state := parseState(resp.State)
	if lp, ok := p.(*lldbProcess); ok {
		lp.state = state
		lp.status = resp.Status
	}
	return state, nil
}

func (t *lldbTarget) Detach(p Process) error {
	_, err := t.call("detach", nil)
	return err
}

func parseState(s string) State {
	switch s {
	case "stopped":
		return StateStopped
	case "running":
		return StateRunning
	case "exited":
		return StateExited
	case "detached":
		return StateDetached
	case "unloaded":
		return StateUnloaded
	default:
		return StateCrashed
	}
}

func encodeList(items []string) string {
	out := ""
	for i, s := range items {
		if i > 0 {
			out += "\x1f"
		}
		out += s
	}
	return out
}

// lldbProcess and lldbThread implement the Process/Thread contracts over
// the same RPC channel as their owning lldbTarget.
type lldbProcess struct {
	target *lldbTarget
	pid    int
	state  State
	status int
}

func (p *lldbProcess) ReadMemory(addr uint64, size int) ([]byte, error) {
	resp, err := p.target.call("read_mem", map[string]string{
		"addr": fmt.Sprintf("0x%x", addr),
		"size": strconv.Itoa(size),
	})
	if err != nil {
		return nil, err
	}
	return decodeHex(resp.Hex)
}

func (p *lldbProcess) CurrentThread() (Thread, error) {
	resp, err := p.target.call("current_thread", nil)
	if err != nil {
		return nil, err
	}
	return &lldbThread{process: p, tid: resp.TID}, nil
}

func (p *lldbProcess) State() State    { return p.state }
func (p *lldbProcess) ExitStatus() int { return p.status }
func (p *lldbProcess) Pid() int        { return p.pid }

func (p *lldbProcess) SymbolAt(addr uint64) string {
	resp, err := p.target.call("symbol_at", map[string]string{"addr": fmt.Sprintf("0x%x", addr)})
	if err != nil {
		return ""
	}
	return resp.Value
}

type lldbThread struct {
	process *lldbProcess
	tid     uint64
}

func (t *lldbThread) ID() uint64 { return t.tid }

func (t *lldbThread) ReadRegister(name string) (uint64, error) {
	resp, err := t.process.target.call("read_reg", map[string]string{
		"tid": strconv.FormatUint(t.tid, 10),
		"reg": name,
	})
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(resp.Value, 0, 64)
}

func (t *lldbThread) StackPointer() (uint64, error) {
	return t.ReadRegister("sp")
}

func (t *lldbThread) ReadMemory(addr uint64, size int) ([]byte, error) {
	return t.process.ReadMemory(addr, size)
}

func (t *lldbThread) PC() (uint64, error) {
	return t.ReadRegister("pc")
}

func decodeHex(s string) ([]byte, error) {
	if len(s)%2 != 0 {
		return nil, errors.New("debugger: odd-length hex payload")
	}
	out := make([]byte, len(s)/2)
	for i := range out {
		hi, err := hexDigit(s[i*2])
		if err != nil {
			return nil, err
		}
		lo, err := hexDigit(s[i*2+1])
		if err != nil {
			return nil, err
		}
		out[i] = hi<<4 | lo
	}
	return out, nil
}

func hexDigit(c byte) (byte, error) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', nil
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, nil
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, nil
	default:
		return 0, errors.Errorf("debugger: invalid hex digit %q", c)
	}
}
