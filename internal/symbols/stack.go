package symbols

// sigaltstack flags (SS_*) and SIGSTKSZ sentinel per spec §4.5 stack_t entry.
var StackFlags = FlagMap{
	0x1: "SS_DISABLE",
	0x2: "SS_ONSTACK",
}

const SigStkSz = 131072

func DecodeStackSize(v uint64) string {
	if v == SigStkSz {
		return "SIGSTKSZ"
	}
	return hex(v)
}
