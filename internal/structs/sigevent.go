package structs

import "github.com/gostrace/mstrace/internal/symbols"

// Sigevent is struct sigevent: {notify int32, signo int32, value ptr-sized
// union, notify_function ptr, notify_attributes ptr}, 32 bytes.
var Sigevent = Layout{
	Size: 32,
	Fields: []Field{
		{Name: "sigev_notify", Offset: 0, Size: 4, Format: Const32(sigevNotify.Lookup)},
		{Name: "sigev_signo", Offset: 4, Size: 4, Format: Const32(symbols.SignalName.Lookup)},
		{Name: "sigev_value", Offset: 8, Size: 8, Format: ptrField},
		{Name: "sigev_notify_function", Offset: 16, Size: 8, Format: ptrField},
		{Name: "sigev_notify_attributes", Offset: 24, Size: 8, Format: ptrField},
	},
}

var sigevNotify = symbols.ConstMap{
	0: "SIGEV_NONE",
	1: "SIGEV_SIGNAL",
	2: "SIGEV_THREAD",
}
