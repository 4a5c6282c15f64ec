package symbols

import "strconv"

// RLIMIT_* resource names (macOS <sys/resource.h>).
var RlimitResource = ConstMap{
	0: "RLIMIT_CPU",
	1: "RLIMIT_FSIZE",
	2: "RLIMIT_DATA",
	3: "RLIMIT_STACK",
	4: "RLIMIT_CORE",
	5: "RLIMIT_AS",
	6: "RLIMIT_RSS",
	7: "RLIMIT_MEMLOCK",
	8: "RLIMIT_NPROC",
	9: "RLIMIT_NOFILE",
}

// PrioWhich names setpriority/getpriority's "which" discriminator
// (<sys/resource.h> PRIO_*).
var PrioWhich = ConstMap{
	0: "PRIO_PROCESS",
	1: "PRIO_PGRP",
	2: "PRIO_USER",
	3: "PRIO_DARWIN_THREAD",
	4: "PRIO_DARWIN_PROCESS",
}

// RlimInfinity is the sentinel rlim_t value that prints as "RLIM_INFINITY"
// per spec §4.5's rlimit entry.
const RlimInfinity = uint64(1)<<63 - 1

func DecodeRlim(v uint64) string {
	if v == RlimInfinity {
		return "RLIM_INFINITY"
	}
	return strconv.FormatUint(v, 10)
}
