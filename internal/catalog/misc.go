package catalog

import "github.com/gostrace/mstrace/internal/decode"

func registerMisc(r *Registry) {
	r.Register(&Def{
		Number: 25, Name: "vfork", Category: CategoryMisc, VariadicStart: -1,
		Params: []decode.Decoder{},
	})
	r.Register(&Def{
		Number: 57, Name: "umask", Category: CategoryMisc, VariadicStart: -1,
		Params: []decode.Decoder{decode.Octal},
	})
	r.Register(&Def{
		Number: 58, Name: "chroot", Category: CategoryMisc, VariadicStart: -1,
		Params: []decode.Decoder{decode.String},
	})
	r.Register(&Def{
		Number: 132, Name: "mkfifo", Category: CategoryMisc, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Octal},
	})
	r.Register(&Def{
		Number: 191, Name: "pathconf", Category: CategoryMisc, VariadicStart: -1,
		Params: []decode.Decoder{decode.String, decode.Int},
	})
	r.Register(&Def{
		Number: 192, Name: "fpathconf", Category: CategoryMisc, VariadicStart: -1,
		Params: []decode.Decoder{decode.FileDescriptor, decode.Int},
	})
	r.Register(&Def{
		Number: 201, Name: "getdtablesize", Category: CategoryMisc, VariadicStart: -1,
		Params: []decode.Decoder{},
	})
	r.Register(&Def{
		Number: 113, Name: "sysarch", Category: CategoryMisc, VariadicStart: -1,
		Params: []decode.Decoder{decode.Int, decode.Pointer},
	})
	r.Register(&Def{
		Number: 117, Name: "getfsstat", Category: CategoryMisc, VariadicStart: -1,
		Params: []decode.Decoder{decode.Buffer(1, decode.Out), decode.Int, decode.Int},
	})
	r.Register(&Def{
		Number: 205, Name: "mkcol", Category: CategoryMisc, VariadicStart: -1,
		Params: []decode.Decoder{decode.String},
	})
	r.Register(&Def{
		Number: 340, Name: "gettid", Category: CategoryMisc, VariadicStart: -1,
		Params: []decode.Decoder{decode.Pointer, decode.Pointer},
	})
}
