package symbols

// fcntl commands (macOS <fcntl.h>).
var FcntlCommand = ConstMap{
	0:  "F_DUPFD",
	1:  "F_GETFD",
	2:  "F_SETFD",
	3:  "F_GETFL",
	4:  "F_SETFL",
	5:  "F_GETOWN",
	6:  "F_SETOWN",
	7:  "F_GETLK",
	8:  "F_SETLK",
	9:  "F_SETLKW",
	10: "F_SETLKWTIMEOUT",
	37: "F_PREALLOCATE",
	38: "F_SETSIZE",
	39: "F_RDADVISE",
	48: "F_READBOOTSTRAP",
	49: "F_WRITEBOOTSTRAP",
	50: "F_NOCACHE",
	51: "F_LOG2PHYS",
	52: "F_GETPATH",
	53: "F_FULLFSYNC",
	58: "F_FREEZE_FS",
	59: "F_THAW_FS",
	61: "F_GLOBAL_NOCACHE",
	68: "F_NODIRECT",
	79: "F_SETNOSIGPIPE",
	80: "F_GETNOSIGPIPE",
	85: "F_GETPROTECTIONCLASS",
	86: "F_SETPROTECTIONCLASS",
	92: "F_GETLKPID",
	97: "F_SETBACKINGSTORE",
	98: "F_GETPATH_MTMINFO",
	99: "F_GETCODEDIR",
}

// FdFlags decodes the close-on-exec flag returned/set by F_GETFD/F_SETFD.
var FdFlags = FlagMap{
	0x1: "FD_CLOEXEC",
}

// OpenFileStatusFlags decodes F_GETFL/F_SETFL's argument with open(2)'s
// flag table as is; the creation-only bits are not removed from it.
var OpenFileStatusFlags = OpenFlags
