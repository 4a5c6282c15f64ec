package symbols

// Signal numbers (macOS <sys/signal.h>).
var SignalName = ConstMap{
	1:  "SIGHUP",
	2:  "SIGINT",
	3:  "SIGQUIT",
	4:  "SIGILL",
	5:  "SIGTRAP",
	6:  "SIGABRT",
	7:  "SIGEMT",
	8:  "SIGFPE",
	9:  "SIGKILL",
	10: "SIGBUS",
	11: "SIGSEGV",
	12: "SIGSYS",
	13: "SIGPIPE",
	14: "SIGALRM",
	15: "SIGTERM",
	16: "SIGURG",
	17: "SIGSTOP",
	18: "SIGTSTP",
	19: "SIGCONT",
	20: "SIGCHLD",
	21: "SIGTTIN",
	22: "SIGTTOU",
	23: "SIGIO",
	24: "SIGXCPU",
	25: "SIGXFSZ",
	26: "SIGVTALRM",
	27: "SIGPROF",
	28: "SIGWINCH",
	29: "SIGINFO",
	30: "SIGUSR1",
	31: "SIGUSR2",
}

// SignalMaskFlags renders a sigset_t bitmap (one bit per signal, bit N-1
// for signal N) the way spec §4.5's sigset_t entry requires: "[SIG…|SIG…]".
func SignalMaskFlags(mask uint32) string {
	m := FlagMap{}
	for num, name := range SignalName {
		if num >= 1 && num <= 32 {
			m[uint64(1)<<(uint(num)-1)] = name
		}
	}
	return "[" + m.Decode(uint64(mask)) + "]"
}

// sigaction flags (SA_*).
var SigactionFlags = FlagMap{
	0x0001: "SA_ONSTACK",
	0x0002: "SA_RESTART",
	0x0004: "SA_RESETHAND",
	0x0008: "SA_NOCLDSTOP",
	0x0010: "SA_NODEFER",
	0x0020: "SA_NOCLDWAIT",
	0x0040: "SA_SIGINFO",
	0x0100: "SA_USERTRAMP",
	0x0200: "SA_64REGSET",
}

const (
	SigDfl = 0
	SigIgn = 1
)

// sigprocmask "how" argument.
var SigprocmaskHow = ConstMap{
	1: "SIG_BLOCK",
	2: "SIG_UNBLOCK",
	3: "SIG_SETMASK",
}
