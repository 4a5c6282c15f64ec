// Package tracer implements the entry/exit pairing engine (C8): the main
// loop that drives a debugger.Debugger, matches syscall entries to their
// returns across threads, and feeds completed events to a Sink.
package tracer

import (
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sys/unix"

	"github.com/gostrace/mstrace/internal/archadapt"
	"github.com/gostrace/mstrace/internal/argvalue"
	"github.com/gostrace/mstrace/internal/catalog"
	"github.com/gostrace/mstrace/internal/debugger"
	"github.com/gostrace/mstrace/internal/decode"
	"github.com/gostrace/mstrace/internal/symbols"
)

const pollInterval = 10 * time.Millisecond

// Config bundles the setup-time choices spec §6 exposes as CLI flags.
type Config struct {
	Registry *catalog.Registry
	Filter   Filter
	Sink     Sink
	NoAbbrev bool
	Log      *logrus.Entry
}

// Engine owns one traced target for its whole lifetime.
type Engine struct {
	cfg     Config
	target  debugger.Target
	process debugger.Process
	adapter archadapt.Adapter
	pending map[pendingKey]*pendingEvent

	interrupted bool
}

func New(cfg Config) *Engine {
	if cfg.Filter == nil {
		cfg.Filter = AllowAll{}
	}
	if cfg.Log == nil {
		cfg.Log = logrus.NewEntry(logrus.StandardLogger())
	}
	return &Engine{cfg: cfg, pending: map[pendingKey]*pendingEvent{}}
}

// Spawn launches argv under dbg and traces it to exit, returning the
// traced process's own exit status (spec §6 exit-code contract).
func (e *Engine) Spawn(dbg debugger.Debugger, argv []string, env []string) (int, error) {
	target, err := dbg.NewTarget(argv[0])
	if err != nil {
		return 1, wrapErr(KindSetup, "create target", err)
	}
	process, err := target.Launch(argv, env)
	if err != nil {
		return 1, wrapErr(KindSetup, "launch target", err)
	}
	return e.run(target, process, false)
}

// Attach attaches to pid and traces it until it exits, detaches, or the
// user interrupts with Ctrl-C (exit code 0 in that last case).
func (e *Engine) Attach(dbg debugger.Debugger, pid int) (int, error) {
	target, err := dbg.NewEmptyTarget()
	if err != nil {
		return 1, wrapErr(KindSetup, "create target", err)
	}
	process, err := target.Attach(pid)
	if err != nil {
		return 1, wrapErr(KindSetup, "attach to pid", err)
	}
	return e.run(target, process, true)
}

func (e *Engine) run(target debugger.Target, process debugger.Process, watchInterrupt bool) (int, error) {
	e.target = target
	e.process = process

	triple, err := target.Architecture(process)
	if err != nil {
		return 1, wrapErr(KindSetup, "detect architecture", err)
	}
	adapter, err := archadapt.Select(triple)
	if err != nil {
		return 1, wrapErr(KindSetup, "select architecture adapter", err)
	}
	e.adapter = adapter

	e.installBreakpoints()

	if watchInterrupt {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, unix.SIGINT)
		defer signal.Stop(sigCh)
		go func() {
			if _, ok := <-sigCh; ok {
				e.interrupted = true
			}
		}()
	}

	state := process.State()
	for {
		if e.interrupted {
			e.target.Detach(e.process)
			return 0, nil
		}
		switch state {
		case debugger.StateExited:
			return e.process.ExitStatus(), nil
		case debugger.StateStopped:
			e.handleStop()
			if e.interrupted {
				e.target.Detach(e.process)
				return 0, nil
			}
			if err := e.target.Continue(e.process); err != nil {
				return 1, nil
			}
		case debugger.StateCrashed, debugger.StateDetached, debugger.StateUnloaded:
			return 1, nil
		default:
			time.Sleep(pollInterval)
		}
		state, err = e.target.WaitForStop(e.process)
		if err != nil {
			return 1, nil
		}
	}
}

// installBreakpoints sets a breakpoint on every registered syscall name
// and alias. A single failed install degrades only that syscall
// (BreakpointInstallError, spec §7) and does not abort setup.
func (e *Engine) installBreakpoints() {
	for _, def := range e.cfg.Registry.IterateAll() {
		names := append([]string{def.Name}, def.Aliases...)
		for _, name := range names {
			if _, err := e.target.SetBreakpoint(e.process, name); err != nil {
				e.cfg.Log.WithError(err).WithField("syscall", name).Warn("breakpoint install failed")
			}
		}
	}
}

func (e *Engine) handleStop() {
	thread, err := e.process.CurrentThread()
	if err != nil {
		e.cfg.Log.WithError(err).Warn("current thread")
		return
	}
	pc, err := thread.PC()
	if err != nil {
		e.cfg.Log.WithError(err).Warn("read pc")
		return
	}
	key := pendingKey{ThreadID: thread.ID(), Addr: pc}
	if pe, ok := e.pending[key]; ok {
		delete(e.pending, key)
		e.handleExit(thread, pe)
		return
	}
	name := strings.TrimPrefix(e.process.SymbolAt(pc), "_")
	def, ok := e.cfg.Registry.LookupByName(name)
	if !ok {
		return
	}
	e.handleEntry(thread, def)
}

func (e *Engine) handleEntry(thread debugger.Thread, def *catalog.Def) {
	rawArgs := make([]uint64, len(def.Params))
	for i := range rawArgs {
		var v uint64
		var err error
		if def.VariadicStart >= 0 && i >= def.VariadicStart {
			v, err = e.adapter.Variadic(thread, i-def.VariadicStart)
		} else {
			v, err = e.adapter.Argument(thread, i)
		}
		if err != nil {
			e.cfg.Log.WithError(err).WithField("syscall", def.Name).Warn("read argument register")
			continue
		}
		rawArgs[i] = v
	}

	cache := decode.Cache{}
	args := make([]argvalue.Value, len(def.Params))
	for i, dec := range def.Params {
		ctx := &decode.Context{
			Reader: e.process, NoAbbrev: e.cfg.NoAbbrev,
			Raw: rawArgs[i], RawArgs: rawArgs,
			AtEntry: true, Cache: cache,
		}
		if val, ok := dec.Decode(ctx); ok {
			args[i] = val
		} else {
			args[i] = argvalue.Unknown()
		}
	}

	retAddr, err := e.adapter.ReturnAddress(thread)
	if err != nil {
		e.cfg.Log.WithError(err).WithField("syscall", def.Name).Warn("recover return address")
		e.emit(def, args, "?", false, 0, thread.ID(), time.Now())
		return
	}

	if _, err := e.target.SetOneShotBreakpoint(e.process, retAddr); err != nil {
		e.cfg.Log.WithError(err).WithField("syscall", def.Name).Warn("install return breakpoint")
		e.emit(def, args, "?", false, 0, thread.ID(), time.Now())
		return
	}

	e.pending[pendingKey{ThreadID: thread.ID(), Addr: retAddr}] = &pendingEvent{
		def: def, args: args, rawArgs: rawArgs, cache: cache, start: time.Now(),
	}
}

func (e *Engine) handleExit(thread debugger.Thread, pe *pendingEvent) {
	rawRet, err := e.adapter.ReturnValue(thread)
	if err != nil {
		e.cfg.Log.WithError(err).WithField("syscall", pe.def.Name).Warn("read return register")
		e.emit(pe.def, pe.args, "?", false, 0, thread.ID(), pe.start)
		return
	}
	ret := int64(rawRet)

	if ret >= 0 {
		for i, dec := range pe.def.Params {
			ctx := &decode.Context{
				Reader: e.process, NoAbbrev: e.cfg.NoAbbrev,
				Raw: pe.rawArgs[i], RawArgs: pe.rawArgs,
				Return: ret, HasReturn: true, AtEntry: false, Cache: pe.cache,
			}
			if val, ok := dec.Decode(ctx); ok {
				pe.args[i] = val
			}
		}
	}

	var returnStr string
	if pe.def.ReturnDecoder != nil {
		var isStr bool
		returnStr, isStr, ret = pe.def.ReturnDecoder(ret, pe.rawArgs, e.cfg.NoAbbrev)
		_ = isStr
	} else {
		returnStr = symbols.Translate(ret, e.cfg.NoAbbrev)
	}

	e.emit(pe.def, pe.args, returnStr, true, ret, thread.ID(), pe.start)
}

func (e *Engine) emit(def *catalog.Def, args []argvalue.Value, returnStr string, hasReturn bool, ret int64, threadID uint64, start time.Time) {
	if !e.cfg.Filter.Allows(def.Name, def.Category) {
		return
	}
	filtered := make([]argvalue.Value, 0, len(args))
	for _, a := range args {
		if a.IsSkip() {
			continue
		}
		filtered = append(filtered, a)
	}
	evt := Event{
		Syscall:   def.Name,
		Category:  def.Category,
		Args:      filtered,
		Return:    ret,
		ReturnStr: returnStr,
		HasReturn: hasReturn,
		PID:       e.process.Pid(),
		ThreadID:  threadID,
		Timestamp: float64(start.UnixNano()) / 1e9,
	}
	if err := e.cfg.Sink.Emit(evt); err != nil {
		e.cfg.Log.WithError(err).Warn("sink emit failed")
	}
}
