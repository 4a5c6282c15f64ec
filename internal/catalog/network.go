package catalog

import (
	"github.com/gostrace/mstrace/internal/argvalue"
	"github.com/gostrace/mstrace/internal/decode"
	"github.com/gostrace/mstrace/internal/structs"
	"github.com/gostrace/mstrace/internal/symbols"
)

// sockaddrDecoder dispatches on the family byte at read time rather than
// through a fixed Layout, since sockaddr's shape depends on its own
// contents (structs.DecodeSockaddr).
func sockaddrDecoder(dir decode.Direction) decode.Decoder {
	return decode.DecoderFunc(func(ctx *decode.Context) (argvalue.Value, bool) {
		if dir == decode.In && !ctx.AtEntry {
			return argvalue.Value{}, false
		}
		if dir == decode.Out && ctx.AtEntry {
			return argvalue.Pointer(ctx.Raw), true
		}
		s, err := structs.DecodeSockaddr(ctx.Reader, ctx.Raw)
		if err != nil {
			return argvalue.BufferFailed(ctx.Raw), true
		}
		return argvalue.StructVal(s), true
	})
}

func msghdrDecoder() decode.Decoder {
	return decode.DecoderFunc(func(ctx *decode.Context) (argvalue.Value, bool) {
		if !ctx.AtEntry {
			return argvalue.Value{}, false
		}
		s, err := structs.DecodeMsghdr(ctx.Reader, ctx.Raw)
		if err != nil {
			return argvalue.BufferFailed(ctx.Raw), true
		}
		return argvalue.StructVal(s), true
	})
}

func registerNetwork(r *Registry) {
	r.Register(&Def{
		Number: 97, Name: "socket", Category: CategoryNetwork, VariadicStart: -1,
		Params: []decode.Decoder{
			decode.Const(symbols.AddressFamily),
			decode.Const(symbols.SocketType),
			decode.Int,
		},
	})
	r.Register(&Def{
		Number: 104, Name: "bind", Category: CategoryNetwork, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, sockaddrDecoder(decode.In), decode.Unsigned},
	})
	r.Register(&Def{
		Number: 98, Name: "connect", Category: CategoryNetwork, VariadicStart: -1,
		Params:  []decode.Decoder{decode.FileDescriptor, sockaddrDecoder(decode.In), decode.Unsigned},
		Aliases: []string{"__connect_nocancel"},
	})
	r.Register(&Def{
		Number: 106, Name: "listen", Category: CategoryNetwork, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Int},
	})
	r.Register(&Def{
		Number: 30, Name: "accept", Category: CategoryNetwork, VariadicStart: -1,
		Params:  []decode.Decoder{decode.FileDescriptor, sockaddrDecoder(decode.Out), decode.IntPtr(decode.Out)},
		Aliases: []string{"__accept_nocancel"},
	})
	r.Register(&Def{
		Number: 29, Name: "recvfrom", Category: CategoryNetwork, VariadicStart: -1,
		Params:  []decode.Decoder{decode.FileDescriptor, decode.Buffer(2, decode.Out), decode.Unsigned, decode.Int, sockaddrDecoder(decode.Out), decode.IntPtr(decode.Out)},
		Aliases: []string{"__recvfrom_nocancel"},
	})
	r.Register(&Def{
		Number: 133, Name: "sendto", Category: CategoryNetwork, VariadicStart: -1,
		Params:  []decode.Decoder{decode.FileDescriptor, decode.Buffer(2, decode.In), decode.Unsigned, decode.Int, sockaddrDecoder(decode.In), decode.Unsigned},
		Aliases: []string{"__sendto_nocancel"},
	})
	r.Register(&Def{
		Number: 27, Name: "recvmsg", Category: CategoryNetwork, VariadicStart: -1,
		Params:  []decode.Decoder{decode.FileDescriptor, msghdrDecoder(), decode.Flags(symbols.MsgFlags)},
		Aliases: []string{"__recvmsg_nocancel"},
	})
	r.Register(&Def{
		Number: 28, Name: "sendmsg", Category: CategoryNetwork, VariadicStart: -1,
		Params:  []decode.Decoder{decode.FileDescriptor, msghdrDecoder(), decode.Flags(symbols.MsgFlags)},
		Aliases: []string{"__sendmsg_nocancel"},
	})
	r.Register(&Def{
		Number: 134, Name: "shutdown", Category: CategoryNetwork, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Const(symbols.ShutdownHow)},
	})
	r.Register(&Def{
		Number: 105, Name: "setsockopt", Category: CategoryNetwork, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Const(symbols.SocketLevel), decode.Int, decode.Buffer(4, decode.In), decode.Unsigned},
	})
	r.Register(&Def{
		Number: 118, Name: "getsockopt", Category: CategoryNetwork, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Const(symbols.SocketLevel), decode.Int, decode.Buffer(4, decode.Out), decode.IntPtr(decode.Out)},
	})
	r.Register(&Def{
		Number: 135, Name: "socketpair", Category: CategoryNetwork, VariadicStart: -1,
		Params: []decode.Decoder{decode.Const(symbols.AddressFamily), decode.Const(symbols.SocketType), decode.Int, decode.IntArray(2, -1, decode.Out)},
	})
	r.Register(&Def{
		Number: 31, Name: "getpeername", Category: CategoryNetwork, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, sockaddrDecoder(decode.Out), decode.IntPtr(decode.Out)},
	})
	r.Register(&Def{
		Number: 32, Name: "getsockname", Category: CategoryNetwork, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, sockaddrDecoder(decode.Out), decode.IntPtr(decode.Out)},
	})
	r.Register(&Def{
		Number: 453, Name: "pid_shutdown_sockets", Category: CategoryNetwork, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Int},
	})
	r.Register(&Def{
		Number: 447, Name: "connectx", Category: CategoryNetwork, VariadicStart: -1,
		Params: []decode.Decoder{
			decode.FileDescriptor, decode.Pointer, decode.Unsigned, decode.Pointer,
			decode.Unsigned, decode.Unsigned, decode.Pointer, decode.Pointer,
		},
	})
	r.Register(&Def{
		Number: 448, Name: "disconnectx", Category: CategoryNetwork, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Unsigned, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 449, Name: "peeloff", Category: CategoryNetwork, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 450, Name: "socket_delegate", Category: CategoryNetwork, VariadicStart: -1,
		Params: []decode.Decoder{decode.Const(symbols.AddressFamily), decode.Const(symbols.SocketType), decode.Int, decode.Int},
	})
	r.Register(&Def{
		Number: 460, Name: "necp_match_policy", Category: CategoryNetwork, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned, decode.Pointer},
	})
	r.Register(&Def{
		Number: 480, Name: "recvmsg_x", Category: CategoryNetwork, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Pointer, decode.Unsigned, decode.Flags(symbols.MsgFlags)},
	})
	r.Register(&Def{
		Number: 481, Name: "sendmsg_x", Category: CategoryNetwork, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Pointer, decode.Unsigned, decode.Flags(symbols.MsgFlags)},
	})
	r.Register(&Def{
		Number: 490, Name: "netagent_trigger", Category: CategoryNetwork, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 502, Name: "necp_client_action", Category: CategoryNetwork, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Unsigned, decode.Pointer, decode.Unsigned, decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 523, Name: "necp_session_action", Category: CategoryNetwork, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Unsigned, decode.Pointer, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 525, Name: "net_qos_guideline", Category: CategoryNetwork, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Pointer},
	})
}
