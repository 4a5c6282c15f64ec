package symbols

// Socket address families (macOS <sys/socket.h>).
var AddressFamily = ConstMap{
	0:  "AF_UNSPEC",
	1:  "AF_UNIX",
	2:  "AF_INET",
	12: "AF_ROUTE",
	17: "AF_LINK",
	30: "AF_INET6",
	32: "AF_SYSTEM",
	35: "AF_NDRV",
}

var SocketType = ConstMap{
	1: "SOCK_STREAM",
	2: "SOCK_DGRAM",
	3: "SOCK_RAW",
	4: "SOCK_RDM",
	5: "SOCK_SEQPACKET",
}

var SocketLevel = ConstMap{
	0xffff: "SOL_SOCKET",
}

var MsgFlags = FlagMap{
	0x1:    "MSG_OOB",
	0x2:    "MSG_PEEK",
	0x4:    "MSG_DONTROUTE",
	0x8:    "MSG_EOR",
	0x10:   "MSG_TRUNC",
	0x20:   "MSG_CTRUNC",
	0x40:   "MSG_WAITALL",
	0x80:   "MSG_DONTWAIT",
	0x100:  "MSG_EOF",
	0x1000: "MSG_WAITSTREAM",
	0x20000: "MSG_FLUSH",
	0x40000: "MSG_HOLD",
	0x80000: "MSG_SEND",
	0x100000: "MSG_HAVEMORE",
	0x200000: "MSG_RCVMORE",
	0x400000: "MSG_NEEDSA",
	0x800000: "MSG_NOSIGNAL",
}

var ShutdownHow = ConstMap{
	0: "SHUT_RD",
	1: "SHUT_WR",
	2: "SHUT_RDWR",
}
