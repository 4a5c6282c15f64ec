package symbols

// SemFlags decodes the sembuf sem_flg field (IPC_NOWAIT, SEM_UNDO).
var SemFlags = FlagMap{
	0x1000: "SEM_UNDO",
	0x0800: "IPC_NOWAIT",
}

// IpcFlags decodes the msgget/semget/shmget flags argument: low 9 bits are
// a file-mode, IPC_CREAT/IPC_EXCL sit above it.
var IpcFlags = FlagMap{
	0x0200: "IPC_CREAT",
	0x0400: "IPC_EXCL",
	0x0800: "IPC_NOWAIT",
}

// IpcCmd decodes the *ctl command argument shared by msgctl/semctl/shmctl.
var IpcCmd = ConstMap{
	0:  "IPC_RMID",
	1:  "IPC_SET",
	2:  "IPC_STAT",
	3:  "IPC_INFO",
	11: "SEM_GETPID",
	12: "SEM_GETVAL",
	13: "SEM_GETALL",
	14: "SEM_GETNCNT",
	15: "SEM_GETZCNT",
	16: "SEM_SETVAL",
	17: "SEM_SETALL",
}
