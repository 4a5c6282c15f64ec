package decode

import (
	"encoding/binary"
	"fmt"

	"github.com/gostrace/mstrace/internal/argvalue"
	"github.com/gostrace/mstrace/internal/memory"
	"github.com/gostrace/mstrace/internal/symbols"
)

const (
	cacheKeySysctlMIB  = "sysctl_mib_cache"
	cacheKeySysctlName = "sysctlbyname_cache"
)

// SysctlMib reads the MIB int32 array (its length comes from a sibling
// "namelen" argument) and stores it in the per-invocation MIB cache for
// SysctlBuffer to consult at exit.
func SysctlMib(namelenIdx int) Decoder {
	return DecoderFunc(func(ctx *Context) (argvalue.Value, bool) {
		if !ctx.AtEntry {
			return argvalue.Value{}, false
		}
		n := 0
		if namelenIdx >= 0 && namelenIdx < len(ctx.RawArgs) {
			n = int(int64(ctx.RawArgs[namelenIdx]))
		}
		mib, err := memory.ReadInt32Array(ctx.Reader, ctx.Raw, n)
		if err != nil {
			return argvalue.Pointer(ctx.Raw), true
		}
		if ctx.Cache != nil {
			ctx.Cache[cacheKeySysctlMIB] = mib
		}
		return argvalue.Raw(symbols.MIBName(mib)), true
	})
}

// SysctlBuffer runs only at exit: it looks the cached MIB up in the
// (CTL, second-level) -> kind table and reads the buffer accordingly.
func SysctlBuffer(sizeIdx int) Decoder {
	return DecoderFunc(func(ctx *Context) (argvalue.Value, bool) {
		if ctx.AtEntry {
			return argvalue.Pointer(ctx.Raw), true
		}
		mib, _ := ctx.Cache[cacheKeySysctlMIB].([]int32)
		if len(mib) < 2 {
			return argvalue.Pointer(ctx.Raw), true
		}
		kind, ok := symbols.SysctlMIBType[[2]int32{mib[0], mib[1]}]
		if !ok {
			kind = symbols.SysctlOpaque
		}
		return decodeSysctlValue(ctx, sizeIdx, kind), true
	})
}

// SysctlBynameName decodes the dotted name argument and stores it in the
// byname cache for SysctlBynameBuffer to consult at exit.
var SysctlBynameName Decoder = DecoderFunc(func(ctx *Context) (argvalue.Value, bool) {
	if !ctx.AtEntry {
		return argvalue.Value{}, false
	}
	data, ok := memory.ReadCString(ctx.Reader, ctx.Raw)
	if !ok {
		return argvalue.StringFailed(ctx.Raw, nil), true
	}
	if ctx.Cache != nil {
		ctx.Cache[cacheKeySysctlName] = string(data)
	}
	return argvalue.StringVal(data), true
})

// SysctlBynameBuffer runs only at exit: looks the cached name up in the
// name -> kind table and reads the buffer accordingly.
func SysctlBynameBuffer(sizeIdx int) Decoder {
	return DecoderFunc(func(ctx *Context) (argvalue.Value, bool) {
		if ctx.AtEntry {
			return argvalue.Pointer(ctx.Raw), true
		}
		name, _ := ctx.Cache[cacheKeySysctlName].(string)
		kind, ok := symbols.SysctlNameType[name]
		if !ok {
			kind = symbols.SysctlOpaque
		}
		return decodeSysctlValue(ctx, sizeIdx, kind), true
	})
}

func decodeSysctlValue(ctx *Context, sizeIdx int, kind symbols.SysctlBufferKind) argvalue.Value {
	size := 0
	if sizeIdx >= 0 && sizeIdx < len(ctx.RawArgs) {
		sizeRaw, err := ctx.Reader.ReadMemory(ctx.RawArgs[sizeIdx], 8)
		if err == nil {
			size = int(binary.LittleEndian.Uint64(sizeRaw))
		}
	}
	switch kind {
	case symbols.SysctlString:
		data, ok := memory.ReadCString(ctx.Reader, ctx.Raw)
		if !ok {
			return argvalue.BufferFailed(ctx.Raw)
		}
		return argvalue.StringVal(data)
	case symbols.SysctlInt32:
		raw, err := ctx.Reader.ReadMemory(ctx.Raw, 4)
		if err != nil {
			return argvalue.BufferFailed(ctx.Raw)
		}
		return argvalue.Int(int64(int32(binary.LittleEndian.Uint32(raw))))
	case symbols.SysctlInt64:
		raw, err := ctx.Reader.ReadMemory(ctx.Raw, 8)
		if err != nil {
			return argvalue.BufferFailed(ctx.Raw)
		}
		return argvalue.Int(int64(binary.LittleEndian.Uint64(raw)))
	default:
		data, _, err := memory.ReadBuffer(ctx.Reader, ctx.Raw, size, ctx.NoAbbrev)
		if err != nil {
			return argvalue.BufferFailed(ctx.Raw)
		}
		return argvalue.Buffer(data, ctx.Raw, false)
	}
}

// SysctlSizePointer reads one size_t and formats it as a single-element
// array.
var SysctlSizePointer Decoder = DecoderFunc(func(ctx *Context) (argvalue.Value, bool) {
	if !ctx.AtEntry {
		return argvalue.Value{}, false
	}
	raw, err := ctx.Reader.ReadMemory(ctx.Raw, 8)
	if err != nil {
		return argvalue.Pointer(ctx.Raw), true
	}
	n := binary.LittleEndian.Uint64(raw)
	return argvalue.Raw(fmt.Sprintf("[%d]", n)), true
})
