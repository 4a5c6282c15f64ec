package decode

import (
	"strconv"

	"github.com/gostrace/mstrace/internal/argvalue"
	"github.com/gostrace/mstrace/internal/symbols"
)

// Int decodes the raw value as a signed 64-bit integer. IN by default.
var Int Decoder = DecoderFunc(func(ctx *Context) (argvalue.Value, bool) {
	if !ctx.AtEntry {
		return argvalue.Value{}, false
	}
	return argvalue.Int(ctx.Signed()), true
})

// Unsigned decodes the raw value as unsigned.
var Unsigned Decoder = DecoderFunc(func(ctx *Context) (argvalue.Value, bool) {
	if !ctx.AtEntry {
		return argvalue.Value{}, false
	}
	return argvalue.Unsigned(ctx.Raw), true
})

// Pointer decodes the raw value as a bare address, with no dereference.
var Pointer Decoder = DecoderFunc(func(ctx *Context) (argvalue.Value, bool) {
	if !ctx.AtEntry {
		return argvalue.Value{}, false
	}
	return argvalue.Pointer(ctx.Raw), true
})

// FileDescriptor decodes the raw value as a signed fd.
var FileDescriptor Decoder = DecoderFunc(func(ctx *Context) (argvalue.Value, bool) {
	if !ctx.AtEntry {
		return argvalue.Value{}, false
	}
	return argvalue.FileDescriptor(ctx.Signed()), true
})

// DirFd decodes a *at-family directory-fd argument, naming AT_FDCWD.
var DirFd Decoder = DecoderFunc(func(ctx *Context) (argvalue.Value, bool) {
	if !ctx.AtEntry {
		return argvalue.Value{}, false
	}
	v := int32(ctx.Raw)
	if int64(v) == symbols.ATFdcwd {
		return argvalue.IntSym(int64(v), "AT_FDCWD"), true
	}
	return argvalue.Int(int64(v)), true
})

// Flags returns a decoder that OR-decomposes the raw value against m.
func Flags(m symbols.FlagMap) Decoder {
	return DecoderFunc(func(ctx *Context) (argvalue.Value, bool) {
		if !ctx.AtEntry {
			return argvalue.Value{}, false
		}
		if ctx.NoAbbrev {
			return argvalue.Flags(ctx.Raw, ""), true
		}
		return argvalue.Flags(ctx.Raw, m.Decode(ctx.Raw)), true
	})
}

// Const returns a decoder that looks the signed 32-bit raw value up in m.
func Const(m symbols.ConstMap) Decoder {
	return DecoderFunc(func(ctx *Context) (argvalue.Value, bool) {
		if !ctx.AtEntry {
			return argvalue.Value{}, false
		}
		v := int64(int32(ctx.Raw))
		if ctx.NoAbbrev {
			return argvalue.Int(v), true
		}
		if name, ok := m.Lookup(v); ok {
			return argvalue.IntSym(v, name), true
		}
		return argvalue.Int(v), true
	})
}

// Octal renders the raw value as a C octal literal, or hex under no_abbrev
// (used for file-mode-shaped arguments without a filetype nibble).
var Octal Decoder = DecoderFunc(func(ctx *Context) (argvalue.Value, bool) {
	if !ctx.AtEntry {
		return argvalue.Value{}, false
	}
	v := ctx.Raw
	if ctx.NoAbbrev {
		return argvalue.IntSym(int64(v), "0x"+strconv.FormatUint(v, 16)), true
	}
	return argvalue.IntSym(int64(v), symbols.DecodeOctalLiteral(v)), true
})

// Custom returns a decoder whose symbolic rendering comes from fn(signed).
func Custom(fn func(int64) string) Decoder {
	return DecoderFunc(func(ctx *Context) (argvalue.Value, bool) {
		if !ctx.AtEntry {
			return argvalue.Value{}, false
		}
		v := ctx.Signed()
		if ctx.NoAbbrev {
			return argvalue.Int(v), true
		}
		return argvalue.IntSym(v, fn(v)), true
	})
}
