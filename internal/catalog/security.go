package catalog

import (
	"github.com/gostrace/mstrace/internal/decode"
	"github.com/gostrace/mstrace/internal/symbols"
)

func registerSecurity(r *Registry) {
	r.Register(&Def{
		Number: 23, Name: "setuid", Category: CategorySecurity, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned},
	})
	r.Register(&Def{
		Number: 520, Name: "seteuid", Category: CategorySecurity, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned},
	})
	r.Register(&Def{
		Number: 521, Name: "setegid", Category: CategorySecurity, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned},
	})
	r.Register(&Def{
		Number: 181, Name: "setgid", Category: CategorySecurity, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned},
	})
	r.Register(&Def{
		Number: 522, Name: "setregid", Category: CategorySecurity, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 523, Name: "setreuid", Category: CategorySecurity, VariadicStart: -1,
		Params: []decode.Decoder{decode.Unsigned, decode.Unsigned},
	})
	r.Register(&Def{
		Number: 524, Name: "getgroups", Category: CategorySecurity, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.IntArray(-1, 0, decode.Out)},
	})
	r.Register(&Def{
		Number: 525, Name: "setgroups", Category: CategorySecurity, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.IntArray(-1, 0, decode.In)},
	})
	r.Register(&Def{
		Number: 526, Name: "getlogin", Category: CategorySecurity, VariadicStart: -1,
		Params: []decode.Decoder{decode.Buffer(1, decode.Out), decode.Unsigned},
	})
	r.Register(&Def{
		Number: 527, Name: "setlogin", Category: CategorySecurity, VariadicStart: -1,
		Params: []decode.Decoder{decode.String},
	})
	r.Register(&Def{
		Number: 528, Name: "__mac_syscall", Category: CategorySecurity, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Int, decode.Pointer},
	})
	r.Register(&Def{
		Number: 529, Name: "auditon", Category: CategorySecurity, VariadicStart: -1,
		Params: []decode.Decoder{decode.Const(symbols.AuditCmd), decode.Buffer(1, decode.Out), decode.Int},
	})
}
