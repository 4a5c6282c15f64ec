package symbols

// mmap protection and mapping flags (macOS <sys/mman.h>).
var ProtFlags = FlagMap{
	0x0: "PROT_NONE",
	0x1: "PROT_READ",
	0x2: "PROT_WRITE",
	0x4: "PROT_EXEC",
}

var MmapFlags = FlagMap{
	0x0001: "MAP_SHARED",
	0x0002: "MAP_PRIVATE",
	0x0010: "MAP_FIXED",
	0x1000: "MAP_NOCACHE",
	0x0020: "MAP_RENAME",
	0x0040: "MAP_NORESERVE",
	0x0100: "MAP_NOEXTEND",
	0x0200: "MAP_HASSEMAPHORE",
	0x0400: "MAP_NOCACHE_ALT",
	0x0800: "MAP_JIT",
	0x1000000: "MAP_ANON",
	0x2000000: "MAP_RESILIENT_CODESIGN",
	0x4000000: "MAP_RESILIENT_MEDIA",
}

var MsyncFlags = FlagMap{
	0x1: "MS_ASYNC",
	0x2: "MS_INVALIDATE",
	0x4: "MS_SYNC",
	0x8: "MS_KILLPAGES",
	0x10: "MS_DEACTIVATE",
}

var MadviseAdvice = ConstMap{
	0: "MADV_NORMAL",
	1: "MADV_RANDOM",
	2: "MADV_SEQUENTIAL",
	3: "MADV_WILLNEED",
	4: "MADV_DONTNEED",
	5: "MADV_FREE",
	6: "MADV_ZERO_WIRED_PAGES",
	7: "MADV_FREE_REUSABLE",
	8: "MADV_FREE_REUSE",
	9: "MADV_CAN_REUSE",
}
