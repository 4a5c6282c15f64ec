package symbols

// kevent filters (macOS <sys/event.h>). Filter values are negative small
// integers; EVFILTFilter is a ConstMap keyed by the sign-extended int64.
var EVFILTFilter = ConstMap{
	-1:  "EVFILT_READ",
	-2:  "EVFILT_WRITE",
	-3:  "EVFILT_AIO",
	-4:  "EVFILT_VNODE",
	-5:  "EVFILT_PROC",
	-6:  "EVFILT_SIGNAL",
	-7:  "EVFILT_TIMER",
	-8:  "EVFILT_MACHPORT",
	-9:  "EVFILT_FS",
	-10: "EVFILT_USER",
	-12: "EVFILT_VM",
	-13: "EVFILT_EXCEPT",
}

var EVFlags = FlagMap{
	0x0001: "EV_ADD",
	0x0002: "EV_DELETE",
	0x0004: "EV_ENABLE",
	0x0008: "EV_DISABLE",
	0x0010: "EV_ONESHOT",
	0x0020: "EV_CLEAR",
	0x0040: "EV_RECEIPT",
	0x0080: "EV_DISPATCH",
	0x0100: "EV_UDATA_SPECIFIC",
	0x2000: "EV_FLAG0",
	0x1000: "EV_POLL",
	0x8000: "EV_EOF",
	0x4000: "EV_ERROR",
}

var NoteVnode = FlagMap{
	0x00000001: "NOTE_DELETE",
	0x00000002: "NOTE_WRITE",
	0x00000004: "NOTE_EXTEND",
	0x00000008: "NOTE_ATTRIB",
	0x00000010: "NOTE_LINK",
	0x00000020: "NOTE_RENAME",
	0x00000040: "NOTE_REVOKE",
	0x00000080: "NOTE_NONE",
}

var NoteProc = FlagMap{
	0x80000000: "NOTE_EXIT",
	0x40000000: "NOTE_FORK",
	0x20000000: "NOTE_EXEC",
	0x00000008: "NOTE_SIGNAL",
	0x00000004: "NOTE_REAP",
}

var NoteTimer = FlagMap{
	0x00000001: "NOTE_SECONDS",
	0x00000002: "NOTE_USECONDS",
	0x00000004: "NOTE_NSECONDS",
	0x00000010: "NOTE_ABSOLUTE",
	0x00000040: "NOTE_LEEWAY",
	0x00000080: "NOTE_CRITICAL",
	0x00000100: "NOTE_BACKGROUND",
}

var NoteUser = FlagMap{
	0x01000000: "NOTE_FFNOP",
	0x02000000: "NOTE_FFAND",
	0x03000000: "NOTE_FFOR",
	0x04000000: "NOTE_FFCOPY",
	0x80000000: "NOTE_TRIGGER",
}

// FflagsTable returns the flag map appropriate to a given EVFILT filter
// value, or nil when the filter is unrecognized (fflags then falls back
// to raw hex), per spec §4.5's kevent entry.
func FflagsTable(filter int16) FlagMap {
	switch filter {
	case -4:
		return NoteVnode
	case -5:
		return NoteProc
	case -7:
		return NoteTimer
	case -10:
		return NoteUser
	default:
		return nil
	}
}
