// Command mstrace is a macOS syscall tracer that reproduces the
// user-visible behavior of Linux strace by attaching a debugger to a
// target process and decoding each libc syscall wrapper at entry and exit.
package main

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/gostrace/mstrace/internal/catalog"
	"github.com/gostrace/mstrace/internal/debugger"
	"github.com/gostrace/mstrace/internal/format"
	"github.com/gostrace/mstrace/internal/sip"
	"github.com/gostrace/mstrace/internal/tracer"
)

var (
	flagOutput   string
	flagJSON     bool
	flagSummary  bool
	flagNoAbbrev bool
	flagTrace    string
	flagPID      int
	flagLLDBPath string
)

var exitCode int

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
	os.Exit(exitCode)
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mstrace [FLAGS] -- CMD [ARGS...]",
		Short: "Trace macOS syscalls the way strace traces Linux syscalls",
		Args:  cobra.ArbitraryArgs,
		RunE:  runRoot,
	}
	cmd.Flags().StringVarP(&flagOutput, "output", "o", "", "write events to FILE (default stderr)")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "emit one JSON object per line")
	cmd.Flags().BoolVarP(&flagSummary, "summary", "c", false, "suppress per-event output, print a summary table at exit")
	cmd.Flags().BoolVar(&flagNoAbbrev, "no-abbrev", false, "disable symbolic decoding")
	cmd.Flags().StringVarP(&flagTrace, "trace", "e", "", "filter: comma-separated syscall names, or trace=<category>")
	cmd.Flags().IntVarP(&flagPID, "pid", "p", 0, "attach to an existing process instead of spawning")
	cmd.Flags().StringVar(&flagLLDBPath, "lldb-path", "lldb", "path to the lldb binary driving the debugger backend")
	return cmd
}

func runRoot(cmd *cobra.Command, args []string) error {
	log := logrus.NewEntry(logrus.StandardLogger())

	sink, closeSink, err := buildSink()
	if err != nil {
		fmt.Fprintln(os.Stderr, "mstrace:", err)
		return err
	}
	defer closeSink()

	filterSpec := flagTrace
	if len(filterSpec) > len("trace=") && filterSpec[:6] == "trace=" {
		filterSpec = filterSpec[6:]
	}

	eng := tracer.New(tracer.Config{
		Registry: catalog.Build(),
		Filter:   tracer.ParseFilter(filterSpec),
		Sink:     sink,
		NoAbbrev: flagNoAbbrev,
		Log:      log,
	})

	dbg := debugger.NewLLDBDebugger(flagLLDBPath, log)

	var code int
	if flagPID != 0 {
		code, err = eng.Attach(dbg, flagPID)
	} else {
		if len(args) == 0 {
			fmt.Fprintln(os.Stderr, "mstrace: need either -p PID or -- CMD ARGS...")
			return errUsage
		}
		if protected, sipErr := sip.IsProtected(args[0]); sipErr == nil && protected {
			fmt.Fprintln(os.Stderr, sip.Message(args[0]))
			return errUsage
		}
		code, err = eng.Spawn(dbg, args, nil)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "mstrace:", err)
		return err
	}
	exitCode = code
	return nil
}

var errUsage = fmt.Errorf("mstrace: invalid usage")

// buildSink wires the -o/--json/-c flags into the right tracer.Sink, and
// returns a close function that flushes/prints whatever that sink needs
// at exit (the summary table, or a file close).
func buildSink() (tracer.Sink, func(), error) {
	var w = os.Stderr
	closeFn := func() {}

	if flagOutput != "" {
		f, err := os.Create(flagOutput)
		if err != nil {
			return nil, nil, err
		}
		w = f
		closeFn = func() { f.Close() }
	}

	if flagSummary {
		summary := format.NewSummarySink(w)
		prevClose := closeFn
		return summary, func() {
			summary.Close()
			prevClose()
		}, nil
	}
	if flagJSON {
		return format.NewJSONSink(w), closeFn, nil
	}
	isTTY := flagOutput == "" && format.IsTTYFd(w.Fd())
	return format.NewTextSink(w, isTTY), closeFn, nil
}
