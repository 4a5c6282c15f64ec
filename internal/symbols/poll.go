package symbols

// poll(2) event bits (macOS <poll.h>).
var PollEvents = FlagMap{
	0x0001: "POLLIN",
	0x0002: "POLLPRI",
	0x0004: "POLLOUT",
	0x0008: "POLLERR",
	0x0010: "POLLHUP",
	0x0020: "POLLNVAL",
	0x0040: "POLLRDNORM",
	0x0080: "POLLRDBAND",
	0x0100: "POLLWRBAND",
	0x0200: "POLLEXTEND",
	0x0400: "POLLATTRIB",
	0x0800: "POLLNLINK",
	0x1000: "POLLWRITE",
}
