package symbols

// ptrace(2) request numbers (macOS <sys/ptrace.h>).
var PtraceRequest = ConstMap{
	0:  "PT_TRACE_ME",
	1:  "PT_READ_I",
	2:  "PT_READ_D",
	3:  "PT_READ_U",
	4:  "PT_WRITE_I",
	5:  "PT_WRITE_D",
	6:  "PT_WRITE_U",
	7:  "PT_CONTINUE",
	8:  "PT_KILL",
	9:  "PT_STEP",
	10: "PT_ATTACH",
	11: "PT_DETACH",
	12: "PT_SIGEXC",
	13: "PT_THUPDATE",
	14: "PT_ATTACHEXC",
	15: "PT_FORCEQUOTA",
	16: "PT_DENY_ATTACH",
}
